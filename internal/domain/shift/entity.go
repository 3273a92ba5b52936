package shift

import (
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/geofence"
)

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusLate      Status = "late"
	StatusCompleted Status = "completed"
	StatusAbsent    Status = "absent"
)

// Statuses lists every status a shift can report.
var Statuses = []string{
	string(StatusOngoing),
	string(StatusLate),
	string(StatusCompleted),
	string(StatusAbsent),
}

// Key identifies the employee a shift belongs to. At most one shift per Key
// may be active at a time.
type Key struct {
	UserID     string
	OutletID   string
	BusinessID string
}

type Shift struct {
	ID                  string
	BusinessID          string
	OutletID            string
	UserID              string
	ShiftDate           civil.Date
	ScheduledStart      civil.TimeOfDay
	ScheduledEnd        civil.TimeOfDay
	ClockIn             *civil.TimeOfDay
	ClockInLocation     *geofence.Point
	ClockInPhotoRef     *string
	ClockOut            *civil.TimeOfDay
	ClockOutLocation    *geofence.Point
	ClockOutPhotoRef    *string
	FaceMatchConfidence *float64
	Status              Status
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// DTO
	UserName   *string
	OutletName *string
}

func (s Shift) Key() Key {
	return Key{UserID: s.UserID, OutletID: s.OutletID, BusinessID: s.BusinessID}
}

// PhotoKind selects which photo column a stored photo is attached to.
type PhotoKind string

const (
	PhotoClockIn  PhotoKind = "clock_in"
	PhotoClockOut PhotoKind = "clock_out"
)
