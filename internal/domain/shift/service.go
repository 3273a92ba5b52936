package shift

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks ShiftService

import "context"

// ShiftService drives the clock-in and clock-out lifecycle.
type ShiftService interface {
	// ClockIn opens a shift for the authenticated employee, closing any
	// stale one whose effective end has passed.
	ClockIn(ctx context.Context, req ClockInRequest) (ClockInResponse, error)

	// ClockOut closes a shift.
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockOutResponse, error)

	// Today returns the shift the employee is working now, if any.
	Today(ctx context.Context, req TodayRequest) (TodayResponse, error)

	List(ctx context.Context, req ListShiftsRequest) (ListShiftsResponse, error)
}
