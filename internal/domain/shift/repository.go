package shift

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks ShiftRepository

import (
	"context"

	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
)

// ShiftRepository defines data access for employee shifts. Every read is
// scoped by business so a caller can never reach another tenant's rows.
type ShiftRepository interface {
	// LockEmployee serializes shift mutations for k until the surrounding
	// transaction ends. It must be called inside a READ COMMITTED transaction
	// before any read, so later statements see what the previous holder
	// committed.
	LockEmployee(ctx context.Context, k Key) error

	// ListActive returns the shifts of k that are clocked in and not closed.
	ListActive(ctx context.Context, k Key) ([]Shift, error)

	// FindLatestBySchedule returns the most recent shift of k for the given
	// date and scheduled start, or ErrShiftNotFound.
	FindLatestBySchedule(ctx context.Context, k Key, date civil.Date, start civil.TimeOfDay) (Shift, error)

	// Create inserts s and fills its ID and timestamps.
	Create(ctx context.Context, s *Shift) error

	// Update persists the mutable fields of s.
	Update(ctx context.Context, s *Shift) error

	// GetForUpdate loads a shift within the business and outlet and locks
	// the row. It returns ErrShiftNotFound when the shift is out of scope.
	GetForUpdate(ctx context.Context, id, businessID, outletID string) (Shift, error)

	// AttachPhoto stores a photo reference on an existing shift.
	AttachPhoto(ctx context.Context, id string, kind PhotoKind, ref string) error

	// FindForUserOnDate returns the user's shifts on date, optionally scoped
	// to one outlet, newest scheduled start first.
	FindForUserOnDate(ctx context.Context, userID, businessID string, outletID *string, date civil.Date) ([]Shift, error)

	// List returns the shifts matching filter ordered by shift date and
	// scheduled start, newest first.
	List(ctx context.Context, filter ListFilter) ([]Shift, error)
}
