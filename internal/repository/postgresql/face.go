package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/face"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type faceRepositoryImpl struct {
	db *database.DB
}

func NewFaceRepository(db *database.DB) face.FaceRepository {
	return &faceRepositoryImpl{db: db}
}

// GetProfile implements face.FaceRepository.
func (r *faceRepositoryImpl) GetProfile(ctx context.Context, userID string) (face.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, face_descriptor, face_registered FROM users WHERE id = $1`

	var (
		p   face.Profile
		raw []byte
	)
	if err := q.QueryRow(ctx, query, userID).Scan(&p.UserID, &raw, &p.Registered); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return face.Profile{}, user.ErrUserNotFound
		}
		return face.Profile{}, fmt.Errorf("failed to get face profile: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p.Descriptor); err != nil {
			return face.Profile{}, fmt.Errorf("failed to decode face descriptor: %w", err)
		}
	}
	return p, nil
}

// SaveDescriptor implements face.FaceRepository.
func (r *faceRepositoryImpl) SaveDescriptor(ctx context.Context, userID string, descriptor []float64) error {
	q := GetQuerier(ctx, r.db)

	raw, err := json.Marshal(descriptor)
	if err != nil {
		return fmt.Errorf("failed to encode face descriptor: %w", err)
	}

	query := `
		UPDATE users
		SET face_descriptor = $2, face_registered = TRUE, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, userID, raw)
	if err != nil {
		return fmt.Errorf("failed to save face descriptor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
