package employee

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks Repository

import "context"

// Scope narrows an active-employee lookup. When OutletID is set only
// employees assigned to that outlet are returned.
type Scope struct {
	BusinessID string
	OutletID   *string
	UserID     *string
}

type Repository interface {
	ListActive(ctx context.Context, scope Scope) ([]Employee, error)
}
