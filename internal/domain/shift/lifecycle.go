package shift

import (
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/geofence"
)

// LateGrace is how long after the scheduled start a clock-in still counts
// as on time.
const LateGrace = 15 * time.Minute

const secondsPerDay = 24 * 60 * 60

// IsOvernight reports whether a shift ends on the day after it starts.
func IsOvernight(start, end civil.TimeOfDay) bool {
	return end.Before(start)
}

// EffectiveEnd returns the instant a shift scheduled on date is over.
func EffectiveEnd(date civil.Date, start, end civil.TimeOfDay, loc *time.Location) time.Time {
	if IsOvernight(start, end) {
		date = date.AddDays(1)
	}
	return civil.Combine(date, end, loc)
}

func (s Shift) EffectiveEnd(loc *time.Location) time.Time {
	return EffectiveEnd(s.ShiftDate, s.ScheduledStart, s.ScheduledEnd, loc)
}

// IsActive reports whether the shift is clocked in and not yet closed.
func (s Shift) IsActive() bool {
	return s.ClockIn != nil && s.ClockOut == nil && s.Status != StatusCompleted
}

// IsAbsent is the single absence predicate used by every read path: the
// shift was never clocked in and its effective end has passed.
func IsAbsent(s Shift, now time.Time, loc *time.Location) bool {
	return s.ClockIn == nil && !now.Before(s.EffectiveEnd(loc))
}

// EffectiveStatus returns the stored status with absence applied.
func EffectiveStatus(s Shift, now time.Time, loc *time.Location) Status {
	if IsAbsent(s, now, loc) {
		return StatusAbsent
	}
	if s.ClockOut != nil {
		return StatusCompleted
	}
	if s.ClockIn == nil && s.Status == StatusAbsent {
		// Persisted as absent by an older writer but not yet over.
		return StatusOngoing
	}
	return s.Status
}

// ClassifyClockIn returns late when now is past the scheduled start plus
// LateGrace, otherwise ongoing.
func ClassifyClockIn(date civil.Date, start civil.TimeOfDay, now time.Time, loc *time.Location) Status {
	if now.After(civil.Combine(date, start, loc).Add(LateGrace)) {
		return StatusLate
	}
	return StatusOngoing
}

// WorkingHours returns the hours between clock-in and clock-out rounded to
// two decimals. A clock-out earlier than the clock-in falls on the next day.
func WorkingHours(clockIn, clockOut civil.TimeOfDay) float64 {
	secs := clockOut.Seconds() - clockIn.Seconds()
	if clockOut.Before(clockIn) {
		secs += secondsPerDay
	}
	return Round2(float64(secs) / 3600)
}

// WorkedHours returns the shift's working hours, or 0 when it is not closed.
func (s Shift) WorkedHours() float64 {
	if s.ClockIn == nil || s.ClockOut == nil {
		return 0
	}
	return WorkingHours(*s.ClockIn, *s.ClockOut)
}

// AutoCheckout closes an active shift whose effective end has passed. The
// clock-out is the scheduled end and the clock-in location is reused since
// no fix was taken. It reports whether the shift was closed; shifts that are
// not active are left untouched.
func AutoCheckout(s *Shift, now time.Time, loc *time.Location) bool {
	if !s.IsActive() {
		return false
	}
	end := s.EffectiveEnd(loc)
	if now.Before(end) {
		return false
	}

	clockOut := civil.TimeOf(end)
	s.ClockOut = &clockOut
	if s.ClockInLocation != nil {
		p := *s.ClockInLocation
		s.ClockOutLocation = &p
	}
	s.Status = StatusCompleted
	return true
}

// ClockInInput is the data recorded when an employee clocks in.
type ClockInInput struct {
	Location            *geofence.Point
	Notes               string
	FaceMatchConfidence *float64
}

// ApplyClockIn records a clock-in at now on s.
func ApplyClockIn(s *Shift, in ClockInInput, now time.Time, loc *time.Location) {
	clockIn := civil.TimeOf(now)
	s.ClockIn = &clockIn
	s.ClockInLocation = in.Location
	s.Notes = AppendNotes(s.Notes, in.Notes)
	if in.FaceMatchConfidence != nil {
		s.FaceMatchConfidence = in.FaceMatchConfidence
	}
	s.Status = ClassifyClockIn(s.ShiftDate, s.ScheduledStart, now, loc)
}

// AppendNotes appends note to existing on a new line.
func AppendNotes(existing, note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return existing
	}
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
