//go:build integration

package postgresql_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/pos-attendance-go/migrations"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// TestDatabaseSetup holds a migrated PostgreSQL container for a test.
type TestDatabaseSetup struct {
	Container testcontainers.Container
	DB        *database.DB
}

// NewTestDatabase starts PostgreSQL, applies the schema and registers cleanup.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("pos_attendance_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{MaxConns: 10, MinConns: 1})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(db.Close)

	scripts, err := migrations.Up()
	if err != nil {
		t.Fatalf("failed to read migrations: %v", err)
	}
	for _, script := range scripts {
		if _, err := db.Exec(ctx, script); err != nil {
			t.Fatalf("failed to apply migration: %v", err)
		}
	}

	return &TestDatabaseSetup{Container: container, DB: db}
}

// Fixture is the minimal tenant every shift test needs.
type Fixture struct {
	OwnerID    string
	StaffID    string
	BusinessID string
	OutletID   string
}

// Seed inserts an owner, a cashier employed by the owner's business and one
// outlet with GPS configured.
func (s *TestDatabaseSetup) Seed(t *testing.T) Fixture {
	t.Helper()
	ctx := context.Background()
	var f Fixture

	suffix := time.Now().UnixNano()
	mustScan(t, s.DB.QueryRow(ctx, `
		INSERT INTO users (name, email, role) VALUES ('Owner', $1, 'owner') RETURNING id
	`, fmt.Sprintf("owner-%d@example.com", suffix)), &f.OwnerID)
	mustScan(t, s.DB.QueryRow(ctx, `
		INSERT INTO users (name, email, role) VALUES ('Kasir', $1, 'kasir') RETURNING id
	`, fmt.Sprintf("kasir-%d@example.com", suffix)), &f.StaffID)
	mustScan(t, s.DB.QueryRow(ctx, `
		INSERT INTO businesses (owner_id, name) VALUES ($1, 'Warung') RETURNING id
	`, f.OwnerID), &f.BusinessID)
	mustScan(t, s.DB.QueryRow(ctx, `
		INSERT INTO outlets (business_id, name, latitude, longitude, gps_required, attendance_radius, shift_malam_end)
		VALUES ($1, 'Outlet Pusat', -6.2, 106.816666, TRUE, 100, '06:00')
		RETURNING id
	`, f.BusinessID), &f.OutletID)

	mustExec(t, s.DB, `INSERT INTO employees (business_id, user_id) VALUES ($1, $2)`, f.BusinessID, f.StaffID)
	mustExec(t, s.DB, `INSERT INTO employee_outlets (user_id, outlet_id) VALUES ($1, $2)`, f.StaffID, f.OutletID)

	return f
}

func mustScan(t *testing.T, row interface{ Scan(...any) error }, dest ...any) {
	t.Helper()
	if err := row.Scan(dest...); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func mustExec(t *testing.T, db *database.DB, sql string, args ...any) {
	t.Helper()
	if _, err := db.Exec(context.Background(), sql, args...); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}
