package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/shift"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/geofence"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const activeShiftIndex = "employee_shifts_one_active_idx"

const shiftColumns = `
	s.id, s.business_id, s.outlet_id, s.user_id, s.shift_date, s.start_time, s.end_time,
	s.clock_in, s.clock_out,
	s.clock_in_latitude, s.clock_in_longitude, s.clock_out_latitude, s.clock_out_longitude,
	s.clock_in_photo, s.clock_out_photo, s.face_match_confidence,
	s.status, s.notes, s.created_at, s.updated_at,
	u.name, o.name
`

const shiftFrom = `
	FROM employee_shifts s
	LEFT JOIN users u ON u.id = s.user_id
	LEFT JOIN outlets o ON o.id = s.outlet_id
`

type shiftRepository struct {
	db *database.DB
}

// LockEmployee implements shift.ShiftRepository.
func (r *shiftRepository) LockEmployee(ctx context.Context, k shift.Key) error {
	q := GetQuerier(ctx, r.db)

	key := "shift:" + k.UserID + ":" + k.OutletID + ":" + k.BusinessID
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return fmt.Errorf("failed to lock employee shifts: %w", err)
	}
	return nil
}

// ListActive implements shift.ShiftRepository.
func (r *shiftRepository) ListActive(ctx context.Context, k shift.Key) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.user_id = $1
		  AND s.outlet_id = $2
		  AND s.business_id = $3
		  AND s.clock_in IS NOT NULL
		  AND s.clock_out IS NULL
		  AND s.status <> 'completed'
		ORDER BY s.shift_date, s.start_time
		FOR UPDATE OF s
	`

	rows, err := q.Query(ctx, query, k.UserID, k.OutletID, k.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active shifts: %w", err)
	}
	return collectShifts(rows)
}

// FindLatestBySchedule implements shift.ShiftRepository.
func (r *shiftRepository) FindLatestBySchedule(ctx context.Context, k shift.Key, date civil.Date, start civil.TimeOfDay) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.user_id = $1
		  AND s.outlet_id = $2
		  AND s.business_id = $3
		  AND s.shift_date = $4
		  AND s.start_time = $5
		ORDER BY s.created_at DESC
		LIMIT 1
		FOR UPDATE OF s
	`

	s, err := scanShift(q.QueryRow(ctx, query, k.UserID, k.OutletID, k.BusinessID, toPgDate(date), toPgTime(start)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to find shift by schedule: %w", err)
	}
	return s, nil
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate shift id: %w", err)
	}

	inLat, inLon := pointColumns(s.ClockInLocation)
	outLat, outLon := pointColumns(s.ClockOutLocation)

	query := `
		INSERT INTO employee_shifts (
			id, business_id, outlet_id, user_id, shift_date, start_time, end_time,
			clock_in, clock_out,
			clock_in_latitude, clock_in_longitude, clock_out_latitude, clock_out_longitude,
			clock_in_photo, clock_out_photo, face_match_confidence, status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		id.String(),
		s.BusinessID,
		s.OutletID,
		s.UserID,
		toPgDate(s.ShiftDate),
		toPgTime(s.ScheduledStart),
		toPgTime(s.ScheduledEnd),
		toPgTimePtr(s.ClockIn),
		toPgTimePtr(s.ClockOut),
		inLat, inLon, outLat, outLon,
		s.ClockInPhotoRef,
		s.ClockOutPhotoRef,
		s.FaceMatchConfidence,
		string(s.Status),
		s.Notes,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, activeShiftIndex) {
			return fmt.Errorf("failed to create shift: %w", shift.ErrActiveShiftConflict)
		}
		return fmt.Errorf("failed to create shift: %w", err)
	}

	s.ID = id.String()
	return nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	inLat, inLon := pointColumns(s.ClockInLocation)
	outLat, outLon := pointColumns(s.ClockOutLocation)

	query := `
		UPDATE employee_shifts SET
			clock_in = $3,
			clock_out = $4,
			clock_in_latitude = $5,
			clock_in_longitude = $6,
			clock_out_latitude = $7,
			clock_out_longitude = $8,
			face_match_confidence = $9,
			status = $10,
			notes = $11,
			scheduled_end = $12,
			updated_at = NOW()
		WHERE id = $1 AND business_id = $2
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID,
		s.BusinessID,
		toPgTimePtr(s.ClockIn),
		toPgTimePtr(s.ClockOut),
		inLat, inLon, outLat, outLon,
		s.FaceMatchConfidence,
		string(s.Status),
		s.Notes,
		toPgTime(s.ScheduledEnd),
	).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		if isUniqueViolation(err, activeShiftIndex) {
			return fmt.Errorf("failed to update shift: %w", shift.ErrActiveShiftConflict)
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return nil
}

// GetForUpdate implements shift.ShiftRepository.
func (r *shiftRepository) GetForUpdate(ctx context.Context, id, businessID, outletID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.id = $1
		  AND s.business_id = $2
		  AND s.outlet_id = $3
		FOR UPDATE OF s
	`

	s, err := scanShift(q.QueryRow(ctx, query, id, businessID, outletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return s, nil
}

// AttachPhoto implements shift.ShiftRepository.
func (r *shiftRepository) AttachPhoto(ctx context.Context, id string, kind shift.PhotoKind, ref string) error {
	q := GetQuerier(ctx, r.db)

	var column string
	switch kind {
	case shift.PhotoClockIn:
		column = "clock_in_photo"
	case shift.PhotoClockOut:
		column = "clock_out_photo"
	default:
		return fmt.Errorf("unknown photo kind %q", kind)
	}

	query := fmt.Sprintf(`UPDATE employee_shifts SET %s = $2, updated_at = NOW() WHERE id = $1`, column)
	tag, err := q.Exec(ctx, query, id, ref)
	if err != nil {
		return fmt.Errorf("failed to attach %s photo: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// FindForUserOnDate implements shift.ShiftRepository.
func (r *shiftRepository) FindForUserOnDate(ctx context.Context, userID, businessID string, outletID *string, date civil.Date) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.user_id = $1
		  AND s.business_id = $2
		  AND ($3::uuid IS NULL OR s.outlet_id = $3::uuid)
		  AND s.shift_date = $4
		ORDER BY s.start_time DESC, s.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID, businessID, outletID, toPgDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to find shifts on date: %w", err)
	}
	return collectShifts(rows)
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, filter shift.ListFilter) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.business_id = $1
		  AND s.shift_date BETWEEN $2 AND $3
		  AND ($4::uuid IS NULL OR s.outlet_id = $4::uuid)
		  AND ($5::uuid IS NULL OR s.user_id = $5::uuid)
		ORDER BY s.shift_date DESC, s.start_time DESC, s.created_at DESC
	`

	rows, err := q.Query(ctx, query,
		filter.BusinessID,
		toPgDate(filter.StartDate),
		toPgDate(filter.EndDate),
		filter.OutletID,
		filter.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return collectShifts(rows)
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}
	return shifts, nil
}

func scanShift(row pgx.Row) (shift.Shift, error) {
	var (
		s                             shift.Shift
		date                          pgtype.Date
		start, end, clockIn, clockOut pgtype.Time
		inLat, inLon, outLat, outLon  *float64
		status                        string
	)

	err := row.Scan(
		&s.ID, &s.BusinessID, &s.OutletID, &s.UserID, &date, &start, &end,
		&clockIn, &clockOut,
		&inLat, &inLon, &outLat, &outLon,
		&s.ClockInPhotoRef, &s.ClockOutPhotoRef, &s.FaceMatchConfidence,
		&status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		&s.UserName, &s.OutletName,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	s.ShiftDate = civil.DateOf(date.Time)
	s.ScheduledStart = fromPgTime(start)
	s.ScheduledEnd = fromPgTime(end)
	s.ClockIn = fromPgTimePtr(clockIn)
	s.ClockOut = fromPgTimePtr(clockOut)
	s.ClockInLocation = columnsPoint(inLat, inLon)
	s.ClockOutLocation = columnsPoint(outLat, outLon)
	s.Status = shift.Status(status)
	return s, nil
}

func toPgDate(d civil.Date) pgtype.Date {
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

func toPgTime(t civil.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Duration().Microseconds(), Valid: true}
}

func toPgTimePtr(t *civil.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return toPgTime(*t)
}

func fromPgTime(t pgtype.Time) civil.TimeOfDay {
	return civil.TimeOfDayFromDuration(time.Duration(t.Microseconds) * time.Microsecond)
}

func fromPgTimePtr(t pgtype.Time) *civil.TimeOfDay {
	if !t.Valid {
		return nil
	}
	v := fromPgTime(t)
	return &v
}

func pointColumns(p *geofence.Point) (*float64, *float64) {
	if p == nil {
		return nil, nil
	}
	lat, lon := p.Latitude, p.Longitude
	return &lat, &lon
}

func columnsPoint(lat, lon *float64) *geofence.Point {
	return geofence.Fix{Latitude: lat, Longitude: lon}.Point()
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{
		db: db,
	}
}
