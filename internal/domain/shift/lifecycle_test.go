package shift

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/geofence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = mustLoad("Asia/Jakarta")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func tod(h, m int) civil.TimeOfDay { return civil.TimeOfDay{Hour: h, Minute: m} }

func at(day, h, m int) time.Time {
	return time.Date(2024, time.January, day, h, m, 0, 0, jakarta)
}

func overnightShift() Shift {
	in := tod(22, 0)
	return Shift{
		ID:              "shift-1",
		ShiftDate:       civil.Date{Year: 2024, Month: time.January, Day: 10},
		ScheduledStart:  tod(22, 0),
		ScheduledEnd:    tod(6, 0),
		ClockIn:         &in,
		ClockInLocation: &geofence.Point{Latitude: -6.2, Longitude: 106.816666},
		Status:          StatusOngoing,
	}
}

func TestEffectiveEnd(t *testing.T) {
	date := civil.Date{Year: 2024, Month: time.January, Day: 10}

	tests := []struct {
		name       string
		start, end civil.TimeOfDay
		want       time.Time
	}{
		{"day shift", tod(8, 0), tod(16, 0), at(10, 16, 0)},
		{"overnight", tod(22, 0), tod(6, 0), at(11, 6, 0)},
		{"ends at midnight", tod(16, 0), tod(0, 0), at(11, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(EffectiveEnd(date, tt.start, tt.end, jakarta)))
		})
	}
}

func TestEffectiveEnd_MonthBoundary(t *testing.T) {
	date := civil.Date{Year: 2024, Month: time.January, Day: 31}
	got := EffectiveEnd(date, tod(22, 0), tod(6, 0), jakarta)
	assert.Equal(t, time.Date(2024, time.February, 1, 6, 0, 0, 0, jakarta), got)
}

func TestClassifyClockIn(t *testing.T) {
	date := civil.Date{Year: 2024, Month: time.January, Day: 10}

	assert.Equal(t, StatusOngoing, ClassifyClockIn(date, tod(9, 0), at(10, 8, 30), jakarta))
	assert.Equal(t, StatusOngoing, ClassifyClockIn(date, tod(9, 0), at(10, 9, 14), jakarta))
	assert.Equal(t, StatusOngoing, ClassifyClockIn(date, tod(9, 0), at(10, 9, 15), jakarta), "grace boundary is inclusive")
	assert.Equal(t, StatusLate, ClassifyClockIn(date, tod(9, 0), at(10, 9, 16), jakarta))
}

func TestWorkingHours(t *testing.T) {
	assert.Equal(t, 8.5, WorkingHours(tod(8, 0), tod(16, 30)))
	assert.Equal(t, 8.0, WorkingHours(tod(22, 0), tod(6, 0)))
	assert.Equal(t, 0.0, WorkingHours(tod(9, 0), tod(9, 0)))
	assert.Equal(t, 0.33, WorkingHours(tod(9, 0), tod(9, 20)))
}

func TestIsAbsent(t *testing.T) {
	s := Shift{
		ShiftDate:      civil.Date{Year: 2024, Month: time.January, Day: 10},
		ScheduledStart: tod(8, 0),
		ScheduledEnd:   tod(16, 0),
		Status:         StatusOngoing,
	}

	assert.False(t, IsAbsent(s, at(10, 15, 59), jakarta))
	assert.True(t, IsAbsent(s, at(10, 16, 0), jakarta))
	assert.Equal(t, StatusAbsent, EffectiveStatus(s, at(10, 17, 0), jakarta))

	in := tod(8, 5)
	s.ClockIn = &in
	assert.False(t, IsAbsent(s, at(11, 0, 0), jakarta))
	assert.Equal(t, StatusOngoing, EffectiveStatus(s, at(11, 0, 0), jakarta))
}

func TestEffectiveStatus_Completed(t *testing.T) {
	s := overnightShift()
	out := tod(6, 0)
	s.ClockOut = &out
	s.Status = StatusCompleted

	assert.Equal(t, StatusCompleted, EffectiveStatus(s, at(12, 0, 0), jakarta))
}

func TestAutoCheckout(t *testing.T) {
	s := overnightShift()

	assert.False(t, AutoCheckout(&s, at(11, 2, 0), jakarta), "shift still running")
	assert.Nil(t, s.ClockOut)

	require.True(t, AutoCheckout(&s, at(11, 7, 0), jakarta))
	require.NotNil(t, s.ClockOut)
	assert.Equal(t, tod(6, 0), *s.ClockOut)
	assert.Equal(t, StatusCompleted, s.Status)
	assert.Equal(t, s.ClockInLocation, s.ClockOutLocation)
	assert.NotSame(t, s.ClockInLocation, s.ClockOutLocation)
	assert.Equal(t, 8.0, s.WorkedHours())
}

func TestAutoCheckout_Idempotent(t *testing.T) {
	s := overnightShift()
	require.True(t, AutoCheckout(&s, at(11, 7, 0), jakarta))
	first := s

	assert.False(t, AutoCheckout(&s, at(11, 9, 0), jakarta))
	assert.Equal(t, first, s)
}

func TestAutoCheckout_NotClockedIn(t *testing.T) {
	s := overnightShift()
	s.ClockIn = nil

	assert.False(t, AutoCheckout(&s, at(12, 0, 0), jakarta))
	assert.Nil(t, s.ClockOut)
}

func TestApplyClockIn(t *testing.T) {
	s := Shift{
		ShiftDate:      civil.Date{Year: 2024, Month: time.January, Day: 10},
		ScheduledStart: tod(9, 0),
		ScheduledEnd:   tod(17, 0),
		Notes:          "scheduled by manager",
	}
	confidence := 91.5

	ApplyClockIn(&s, ClockInInput{
		Location:            &geofence.Point{Latitude: 1, Longitude: 2},
		Notes:               "traffic",
		FaceMatchConfidence: &confidence,
	}, at(10, 9, 16), jakarta)

	require.NotNil(t, s.ClockIn)
	assert.Equal(t, tod(9, 16), *s.ClockIn)
	assert.Equal(t, StatusLate, s.Status)
	assert.Equal(t, "scheduled by manager\ntraffic", s.Notes)
	assert.Equal(t, &confidence, s.FaceMatchConfidence)
	assert.True(t, s.IsActive())
}

func TestAppendNotes(t *testing.T) {
	assert.Equal(t, "first", AppendNotes("", "first"))
	assert.Equal(t, "first\nsecond", AppendNotes("first", "second"))
	assert.Equal(t, "first", AppendNotes("first", "   "))
}
