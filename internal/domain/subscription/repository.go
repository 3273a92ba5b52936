package subscription

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks SubscriptionRepository

import "context"

type SubscriptionRepository interface {
	// GetActiveForUser returns the latest active, unexpired subscription of
	// the subscription holder for subject. Staff users resolve to the owner of
	// the business they are actively employed by. It returns
	// ErrSubscriptionNotFound when there is none.
	GetActiveForUser(ctx context.Context, subject Subject) (Subscription, error)
}
