package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/subscription"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type subscriptionRepository struct {
	db *database.DB
}

func NewSubscriptionRepository(db *database.DB) subscription.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// GetActiveForUser implements subscription.SubscriptionRepository.
func (r *subscriptionRepository) GetActiveForUser(ctx context.Context, subject subscription.Subject) (subscription.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	// Staff inherit the subscription of the owner of the business that
	// actively employs them.
	query := `
		WITH holder AS (
			SELECT CASE WHEN $2::boolean THEN (
				SELECT b.owner_id
				FROM employees e
				JOIN businesses b ON b.id = e.business_id
				WHERE e.user_id = $1 AND e.is_active = TRUE
				ORDER BY e.created_at
				LIMIT 1
			) ELSE $1::uuid END AS user_id
		)
		SELECT us.id, us.user_id, us.status, us.starts_at, us.ends_at,
			   p.id, p.name, p.has_attendance_access
		FROM user_subscriptions us
		JOIN holder h ON h.user_id = us.user_id
		JOIN subscription_plans p ON p.id = us.subscription_plan_id
		WHERE us.status = $3
		  AND us.ends_at > NOW()
		ORDER BY us.created_at DESC
		LIMIT 1
	`

	var (
		s      subscription.Subscription
		status string
	)
	err := q.QueryRow(ctx, query, subject.UserID, subject.Role.IsStaff(), string(subscription.StatusActive)).Scan(
		&s.ID, &s.UserID, &status, &s.StartsAt, &s.EndsAt,
		&s.Plan.ID, &s.Plan.Name, &s.Plan.HasAttendanceAccess,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subscription.Subscription{}, subscription.ErrSubscriptionNotFound
		}
		return subscription.Subscription{}, fmt.Errorf("failed to get active subscription: %w", err)
	}

	s.Status = subscription.SubscriptionStatus(status)
	return s, nil
}
