//go:build integration

package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/subscription"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/pos-attendance-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_StaffInheritOwner(t *testing.T) {
	setup := NewTestDatabase(t)
	f := setup.Seed(t)
	ctx := context.Background()
	repo := postgresql.NewSubscriptionRepository(setup.DB)

	_, err := repo.GetActiveForUser(ctx, subscription.Subject{UserID: f.OwnerID, Role: user.RoleOwner})
	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)

	var planID string
	mustScan(t, setup.DB.QueryRow(ctx, `
		INSERT INTO subscription_plans (name, has_attendance_access) VALUES ('Premium', TRUE) RETURNING id
	`), &planID)
	mustExec(t, setup.DB, `
		INSERT INTO user_subscriptions (user_id, subscription_plan_id, status, ends_at)
		VALUES ($1, $2, 'active', NOW() + INTERVAL '30 days')
	`, f.OwnerID, planID)

	owner, err := repo.GetActiveForUser(ctx, subscription.Subject{UserID: f.OwnerID, Role: user.RoleOwner})
	require.NoError(t, err)
	assert.True(t, owner.Plan.HasAttendanceAccess)

	staff, err := repo.GetActiveForUser(ctx, subscription.Subject{UserID: f.StaffID, Role: user.RoleCashier})
	require.NoError(t, err)
	assert.Equal(t, f.OwnerID, staff.UserID)
	assert.Equal(t, "Premium", staff.Plan.Name)
}

func TestFaceRepository_SaveAndGet(t *testing.T) {
	setup := NewTestDatabase(t)
	f := setup.Seed(t)
	ctx := context.Background()
	repo := postgresql.NewFaceRepository(setup.DB)

	p, err := repo.GetProfile(ctx, f.StaffID)
	require.NoError(t, err)
	assert.False(t, p.IsRegistered())

	require.NoError(t, repo.SaveDescriptor(ctx, f.StaffID, []float64{0.1, -0.2, 0.3}))

	p, err = repo.GetProfile(ctx, f.StaffID)
	require.NoError(t, err)
	assert.True(t, p.IsRegistered())
	assert.Equal(t, []float64{0.1, -0.2, 0.3}, p.Descriptor)
}
