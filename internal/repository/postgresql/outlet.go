package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/outlet"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type outletRepository struct {
	db *database.DB
}

func NewOutletRepository(db *database.DB) outlet.Repository {
	return &outletRepository{db: db}
}

// Get implements outlet.Repository.
func (r *outletRepository) Get(ctx context.Context, businessID, outletID string) (outlet.Outlet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, name, latitude, longitude, gps_required, attendance_radius,
			   shift_pagi_end, shift_siang_end, shift_malam_end
		FROM outlets
		WHERE id = $1 AND business_id = $2
	`

	var (
		o                  outlet.Outlet
		pagi, siang, malam pgtype.Time
	)
	err := q.QueryRow(ctx, query, outletID, businessID).Scan(
		&o.ID, &o.BusinessID, &o.Name, &o.Latitude, &o.Longitude, &o.GPSRequired, &o.RadiusMeters,
		&pagi, &siang, &malam,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return outlet.Outlet{}, outlet.ErrOutletNotFound
		}
		return outlet.Outlet{}, fmt.Errorf("failed to get outlet %s: %w", outletID, err)
	}

	o.ShiftPagiEnd = fromPgTimePtr(pagi)
	o.ShiftSiangEnd = fromPgTimePtr(siang)
	o.ShiftMalamEnd = fromPgTimePtr(malam)
	return o, nil
}

// BusinessExists implements outlet.Repository.
func (r *outletRepository) BusinessExists(ctx context.Context, businessID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM businesses WHERE id = $1)`, businessID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check business %s: %w", businessID, err)
	}
	return exists, nil
}
