package shift

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/geofence"
)

var (
	ErrShiftNotFound        = errors.New("shift not found")
	ErrNotShiftOwner        = errors.New("you are not allowed to modify this shift")
	ErrAlreadyClockedOut    = errors.New("shift has already been clocked out")
	ErrNotYetClockedIn      = errors.New("shift has not been clocked in yet")
	ErrActiveShiftConflict  = errors.New("an active shift is still in progress")
	ErrLocationRejected     = errors.New("location rejected")
	ErrInvalidShiftSchedule = errors.New("end_time must differ from start_time")
)

// ActiveShiftError is returned when a clock-in is blocked by a shift that
// has not reached its effective end.
type ActiveShiftError struct {
	ShiftDate      civil.Date
	ScheduledStart civil.TimeOfDay
	ScheduledEnd   civil.TimeOfDay
}

func (e *ActiveShiftError) Error() string {
	return fmt.Sprintf("you still have an active shift on %s starting %s, clock out first",
		e.ShiftDate, e.ScheduledStart)
}

func (e *ActiveShiftError) Unwrap() error {
	return ErrActiveShiftConflict
}

// LocationError carries the geofence result that rejected a clock action.
type LocationError struct {
	Result geofence.Result
}

func (e *LocationError) Error() string {
	return e.Result.Message
}

func (e *LocationError) Unwrap() error {
	return ErrLocationRejected
}
