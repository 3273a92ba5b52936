package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/outlet"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/shift"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/clock"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/geofence"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/pos-attendance-go/internal/service/file"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/cmlabs-hris/pos-attendance-go/internal/service/shift"

type ShiftServiceImpl struct {
	tx      database.Transactor
	shifts  shift.ShiftRepository
	outlets outlet.Repository
	photos  file.PhotoService
	clock   clock.Clock
	loc     *time.Location
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewShiftService(
	tx database.Transactor,
	shifts shift.ShiftRepository,
	outlets outlet.Repository,
	photos file.PhotoService,
	clk clock.Clock,
	loc *time.Location,
	m *metrics.Metrics,
	logger *slog.Logger,
) shift.ShiftService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShiftServiceImpl{
		tx:      tx,
		shifts:  shifts,
		outlets: outlets,
		photos:  photos,
		clock:   clk,
		loc:     loc,
		metrics: m,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

// clockInResult is rebuilt on every transaction attempt.
type clockInResult struct {
	shift      shift.Shift
	autoClosed []shift.Shift
}

// ClockIn implements shift.ShiftService.
func (s *ShiftServiceImpl) ClockIn(ctx context.Context, req shift.ClockInRequest) (shift.ClockInResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ClockInResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return shift.ClockInResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if !user.HasPermission(claims.Role, user.PermissionAttendanceClock) {
		return shift.ClockInResponse{}, user.ErrInsufficientPermissions
	}

	now := s.clock.Now().In(s.loc)
	key := shift.Key{UserID: claims.UserID, OutletID: req.OutletID, BusinessID: req.BusinessID}
	logger := s.logger.With(
		slog.String("user_id", key.UserID),
		slog.String("outlet_id", key.OutletID),
		slog.String("business_id", key.BusinessID),
	)

	o, err := s.outlets.Get(ctx, req.BusinessID, req.OutletID)
	if err != nil {
		return shift.ClockInResponse{}, err
	}

	geo := geofence.Validate(o.GeofencePolicy(), req.Fix())
	s.metrics.ObserveDistance(geo.DistanceMeters)
	if !geo.Valid {
		s.metrics.IncClockIn("location_rejected")
		logger.InfoContext(ctx, "clock-in rejected by geofence",
			slog.Any("distance", geo.DistanceMeters),
			slog.String("reason", geo.Message),
		)
		return shift.ClockInResponse{}, &shift.LocationError{Result: geo}
	}

	ctx, span := s.tracer.Start(ctx, "shift.ClockIn", trace.WithAttributes(
		attribute.String("user.id", key.UserID),
		attribute.String("outlet.id", key.OutletID),
		attribute.String("business.id", key.BusinessID),
		attribute.String("shift.date", req.Date().String()),
	))
	defer span.End()

	input := shift.ClockInInput{
		Location:            req.Fix().Point(),
		FaceMatchConfidence: req.FaceMatchConfidence,
	}
	if req.Notes != nil {
		input.Notes = *req.Notes
	}

	var result clockInResult
	started := time.Now()
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		r, err := s.clockIn(ctx, key, req, input, now)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	s.metrics.ObserveTransaction("clock_in", time.Since(started))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "clock-in failed")
		return shift.ClockInResponse{}, s.clockInError(ctx, logger, err)
	}

	for _, closed := range result.autoClosed {
		logger.InfoContext(ctx, "auto-checkout on clock-in",
			slog.String("shift_id", closed.ID),
			slog.String("shift_date", closed.ShiftDate.String()),
			slog.String("clock_out", closed.ClockOut.String()),
		)
	}
	s.metrics.AddAutoCheckouts(len(result.autoClosed))
	s.metrics.IncClockIn(string(result.shift.Status))
	span.SetAttributes(
		attribute.String("shift.id", result.shift.ID),
		attribute.String("shift.status", string(result.shift.Status)),
		attribute.Int("shift.auto_closed", len(result.autoClosed)),
	)

	if req.ClockInPhoto != nil && strings.TrimSpace(*req.ClockInPhoto) != "" {
		if ref, ok := s.attachPhoto(ctx, logger, result.shift.ID, shift.PhotoClockIn, *req.ClockInPhoto); ok {
			result.shift.ClockInPhotoRef = &ref
		}
	}

	return shift.ClockInResponse{
		Shift:              s.toResponse(ctx, result.shift, now),
		LocationValidation: geo,
	}, nil
}

// clockIn runs inside the transaction. It must not touch state outside its
// return value since the transaction may be retried.
func (s *ShiftServiceImpl) clockIn(ctx context.Context, key shift.Key, req shift.ClockInRequest, input shift.ClockInInput, now time.Time) (clockInResult, error) {
	var result clockInResult

	if err := s.shifts.LockEmployee(ctx, key); err != nil {
		return result, err
	}

	active, err := s.shifts.ListActive(ctx, key)
	if err != nil {
		return result, err
	}
	for _, a := range active {
		if !shift.AutoCheckout(&a, now, s.loc) {
			return result, &shift.ActiveShiftError{
				ShiftDate:      a.ShiftDate,
				ScheduledStart: a.ScheduledStart,
				ScheduledEnd:   a.ScheduledEnd,
			}
		}
		if err := s.shifts.Update(ctx, &a); err != nil {
			return result, err
		}
		result.autoClosed = append(result.autoClosed, a)
	}

	existing, err := s.shifts.FindLatestBySchedule(ctx, key, req.Date(), req.Start())
	switch {
	case errors.Is(err, shift.ErrShiftNotFound):
		// create below
	case err != nil:
		return result, err
	case existing.ClockIn == nil:
		// The employee's stated end wins over the planned one.
		existing.ScheduledEnd = req.End()
		shift.ApplyClockIn(&existing, input, now, s.loc)
		if err := s.shifts.Update(ctx, &existing); err != nil {
			return result, err
		}
		result.shift = existing
		return result, nil
	case existing.IsActive():
		// Only reachable when the record was not among the active ones,
		// which the partial unique index rules out; close it the same way.
		if !shift.AutoCheckout(&existing, now, s.loc) {
			return result, &shift.ActiveShiftError{
				ShiftDate:      existing.ShiftDate,
				ScheduledStart: existing.ScheduledStart,
				ScheduledEnd:   existing.ScheduledEnd,
			}
		}
		if err := s.shifts.Update(ctx, &existing); err != nil {
			return result, err
		}
		result.autoClosed = append(result.autoClosed, existing)
	}

	created := shift.Shift{
		BusinessID:     key.BusinessID,
		OutletID:       key.OutletID,
		UserID:         key.UserID,
		ShiftDate:      req.Date(),
		ScheduledStart: req.Start(),
		ScheduledEnd:   req.End(),
	}
	shift.ApplyClockIn(&created, input, now, s.loc)
	if err := s.shifts.Create(ctx, &created); err != nil {
		return result, err
	}

	result.shift = created
	return result, nil
}

func (s *ShiftServiceImpl) clockInError(ctx context.Context, logger *slog.Logger, err error) error {
	var active *shift.ActiveShiftError
	switch {
	case errors.As(err, &active):
		s.metrics.IncClockIn("conflict")
		logger.InfoContext(ctx, "clock-in blocked by active shift",
			slog.String("active_shift_date", active.ShiftDate.String()),
			slog.String("active_shift_start", active.ScheduledStart.String()),
		)
		return err
	case errors.Is(err, shift.ErrActiveShiftConflict), errors.Is(err, database.ErrConcurrentUpdate):
		s.metrics.IncClockIn("conflict")
		logger.WarnContext(ctx, "clock-in lost a concurrent race", slog.Any("error", err))
		return err
	default:
		s.metrics.IncClockIn("error")
		logger.ErrorContext(ctx, "clock-in failed", slog.Any("error", err))
		return fmt.Errorf("failed to clock in: %w", err)
	}
}

// ClockOut implements shift.ShiftService.
func (s *ShiftServiceImpl) ClockOut(ctx context.Context, req shift.ClockOutRequest) (shift.ClockOutResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ClockOutResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return shift.ClockOutResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if !user.HasPermission(claims.Role, user.PermissionAttendanceClock) {
		return shift.ClockOutResponse{}, user.ErrInsufficientPermissions
	}

	now := s.clock.Now().In(s.loc)
	logger := s.logger.With(
		slog.String("user_id", claims.UserID),
		slog.String("outlet_id", req.OutletID),
		slog.String("business_id", req.BusinessID),
		slog.String("shift_id", req.ShiftID),
	)

	o, err := s.outlets.Get(ctx, req.BusinessID, req.OutletID)
	if err != nil {
		return shift.ClockOutResponse{}, err
	}
	geo := geofence.Validate(o.GeofencePolicy(), req.Fix())
	s.metrics.ObserveDistance(geo.DistanceMeters)

	ctx, span := s.tracer.Start(ctx, "shift.ClockOut", trace.WithAttributes(
		attribute.String("user.id", claims.UserID),
		attribute.String("shift.id", req.ShiftID),
	))
	defer span.End()

	var closed shift.Shift
	started := time.Now()
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		sh, err := s.shifts.GetForUpdate(ctx, req.ShiftID, req.BusinessID, req.OutletID)
		if err != nil {
			return err
		}

		canCloseAny := user.HasPermission(claims.Role, user.PermissionAttendanceCloseAny)
		switch {
		case sh.UserID != claims.UserID && !canCloseAny:
			return shift.ErrNotShiftOwner
		case sh.ClockOut != nil:
			return shift.ErrAlreadyClockedOut
		case sh.ClockIn == nil:
			return shift.ErrNotYetClockedIn
		case !geo.Valid:
			return &shift.LocationError{Result: geo}
		}

		clockOut := civil.TimeOf(now)
		sh.ClockOut = &clockOut
		sh.ClockOutLocation = req.Fix().Point()
		sh.Status = shift.StatusCompleted
		if req.Notes != nil {
			sh.Notes = shift.AppendNotes(sh.Notes, *req.Notes)
		}
		if req.FaceMatchConfidence != nil {
			sh.FaceMatchConfidence = req.FaceMatchConfidence
		}

		if err := s.shifts.Update(ctx, &sh); err != nil {
			return err
		}
		closed = sh
		return nil
	})
	s.metrics.ObserveTransaction("clock_out", time.Since(started))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "clock-out failed")
		return shift.ClockOutResponse{}, s.clockOutError(ctx, logger, err)
	}
	s.metrics.IncClockOut("completed")

	if req.ClockOutPhoto != nil && strings.TrimSpace(*req.ClockOutPhoto) != "" {
		if ref, ok := s.attachPhoto(ctx, logger, closed.ID, shift.PhotoClockOut, *req.ClockOutPhoto); ok {
			closed.ClockOutPhotoRef = &ref
		}
	}

	hours := closed.WorkedHours()
	logger.InfoContext(ctx, "clock-out recorded",
		slog.Float64("working_hours", hours),
		slog.Any("distance", geo.DistanceMeters),
	)

	return shift.ClockOutResponse{
		Shift:              s.toResponse(ctx, closed, now),
		WorkingHours:       hours,
		LocationValidation: geo,
	}, nil
}

func (s *ShiftServiceImpl) clockOutError(ctx context.Context, logger *slog.Logger, err error) error {
	outcome := "error"
	switch {
	case errors.Is(err, shift.ErrShiftNotFound):
		outcome = "not_found"
	case errors.Is(err, shift.ErrNotShiftOwner):
		outcome = "forbidden"
	case errors.Is(err, shift.ErrAlreadyClockedOut):
		outcome = "already_clocked_out"
	case errors.Is(err, shift.ErrNotYetClockedIn):
		outcome = "not_clocked_in"
	case errors.Is(err, shift.ErrLocationRejected):
		outcome = "location_rejected"
	case errors.Is(err, database.ErrConcurrentUpdate):
		outcome = "conflict"
	}
	s.metrics.IncClockOut(outcome)

	if outcome == "error" {
		logger.ErrorContext(ctx, "clock-out failed", slog.Any("error", err))
		return fmt.Errorf("failed to clock out: %w", err)
	}
	return err
}

// attachPhoto stores a photo after the shift transaction committed. Failures
// are logged and do not fail the request.
func (s *ShiftServiceImpl) attachPhoto(ctx context.Context, logger *slog.Logger, shiftID string, kind shift.PhotoKind, photo string) (string, bool) {
	ref, err := s.photos.Save(ctx, photo, file.FolderAttendance)
	if err != nil {
		logger.WarnContext(ctx, "failed to save shift photo",
			slog.String("shift_id", shiftID),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		return "", false
	}

	if err := s.shifts.AttachPhoto(ctx, shiftID, kind, ref); err != nil {
		logger.WarnContext(ctx, "failed to attach shift photo",
			slog.String("shift_id", shiftID),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		if delErr := s.photos.Delete(ctx, ref); delErr != nil {
			logger.WarnContext(ctx, "failed to remove orphaned photo", slog.String("path", ref), slog.Any("error", delErr))
		}
		return "", false
	}
	return ref, true
}

// Today implements shift.ShiftService.
func (s *ShiftServiceImpl) Today(ctx context.Context, req shift.TodayRequest) (shift.TodayResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return shift.TodayResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if !user.HasPermission(claims.Role, user.PermissionAttendanceViewOwn) {
		return shift.TodayResponse{}, user.ErrInsufficientPermissions
	}

	now := s.clock.Now().In(s.loc)
	today := civil.DateOf(now)

	shifts, err := s.shifts.FindForUserOnDate(ctx, claims.UserID, req.BusinessID, req.OutletID, today)
	if err != nil {
		return shift.TodayResponse{}, fmt.Errorf("failed to get today's shifts: %w", err)
	}

	current := pickToday(shifts)
	if current == nil {
		yesterday, err := s.shifts.FindForUserOnDate(ctx, claims.UserID, req.BusinessID, req.OutletID, today.AddDays(-1))
		if err != nil {
			return shift.TodayResponse{}, fmt.Errorf("failed to get yesterday's shifts: %w", err)
		}
		for i := range yesterday {
			if yesterday[i].IsActive() && now.Before(yesterday[i].EffectiveEnd(s.loc)) {
				current = &yesterday[i]
				break
			}
		}
	}

	if current == nil {
		return shift.TodayResponse{}, nil
	}
	resp := s.toResponse(ctx, *current, now)
	return shift.TodayResponse{Shift: &resp}, nil
}

// pickToday prefers a running shift over a finished one. shifts are ordered
// by scheduled start, newest first.
func pickToday(shifts []shift.Shift) *shift.Shift {
	for i := range shifts {
		if shifts[i].IsActive() {
			return &shifts[i]
		}
	}
	for i := range shifts {
		if shifts[i].ClockIn != nil {
			return &shifts[i]
		}
	}
	return nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context, req shift.ListShiftsRequest) (shift.ListShiftsResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ListShiftsResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return shift.ListShiftsResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if !user.HasPermission(claims.Role, user.PermissionAttendanceViewOwn) {
		return shift.ListShiftsResponse{}, user.ErrInsufficientPermissions
	}

	now := s.clock.Now().In(s.loc)
	start, end := shift.ResolveWindow(req.StartDate, req.EndDate, civil.DateOf(now), shift.DefaultListWindow)

	filter := shift.ListFilter{
		BusinessID: req.BusinessID,
		OutletID:   req.OutletID,
		StartDate:  start,
		EndDate:    end,
	}
	switch {
	case !user.HasPermission(claims.Role, user.PermissionAttendanceViewAll):
		filter.UserID = &claims.UserID
	case req.UserID != nil && *req.UserID != "":
		filter.UserID = req.UserID
	}

	shifts, err := s.shifts.List(ctx, filter)
	if err != nil {
		return shift.ListShiftsResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, min(len(shifts), req.Limit))
	for _, sh := range shifts {
		if len(responses) == req.Limit {
			break
		}
		if req.Status != nil && *req.Status != "" && string(shift.EffectiveStatus(sh, now, s.loc)) != *req.Status {
			continue
		}
		responses = append(responses, s.toResponse(ctx, sh, now))
	}

	return shift.ListShiftsResponse{
		Shifts:    responses,
		StartDate: start.String(),
		EndDate:   end.String(),
		Limit:     req.Limit,
		Count:     len(responses),
	}, nil
}

func (s *ShiftServiceImpl) toResponse(ctx context.Context, sh shift.Shift, now time.Time) shift.ShiftResponse {
	resp := shift.NewShiftResponse(sh, now, s.loc)
	resp.ClockInPhotoURL = s.photoURL(ctx, sh.ClockInPhotoRef)
	resp.ClockOutPhotoURL = s.photoURL(ctx, sh.ClockOutPhotoRef)
	return resp
}

func (s *ShiftServiceImpl) photoURL(ctx context.Context, ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	url, err := s.photos.URL(ctx, *ref)
	if err != nil {
		return nil
	}
	return &url
}
