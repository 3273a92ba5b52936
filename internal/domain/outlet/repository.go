package outlet

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks Repository

import "context"

type Repository interface {
	// Get returns the outlet when it belongs to the business.
	Get(ctx context.Context, businessID, outletID string) (Outlet, error)
	BusinessExists(ctx context.Context, businessID string) (bool, error)
}
