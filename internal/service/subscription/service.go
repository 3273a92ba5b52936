package subscription

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks AccessCache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/subscription"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/clock"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/metrics"
)

// DefaultCacheTTL is how long an access decision is cached.
const DefaultCacheTTL = 5 * time.Minute

// AccessCache stores access decisions. *cache.Client implements it.
type AccessCache interface {
	GetBool(ctx context.Context, key string) (value bool, found bool, err error)
	SetBool(ctx context.Context, key string, value bool, ttl time.Duration) error
}

type accessGate struct {
	subscriptions subscription.SubscriptionRepository
	cache         AccessCache
	ttl           time.Duration
	clock         clock.Clock
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// NewAccessGate returns the attendance access gate. cache may be nil, in
// which case every check reads the subscription store.
func NewAccessGate(
	subscriptions subscription.SubscriptionRepository,
	cache AccessCache,
	ttl time.Duration,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) subscription.AccessGate {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &accessGate{
		subscriptions: subscriptions,
		cache:         cache,
		ttl:           ttl,
		clock:         clk,
		metrics:       m,
		logger:        logger,
	}
}

func cacheKey(userID string) string {
	return "subscription:user:" + userID + ":attendance"
}

// HasAttendanceAccess implements subscription.AccessGate.
func (g *accessGate) HasAttendanceAccess(ctx context.Context, subject subscription.Subject) (bool, error) {
	key := cacheKey(subject.UserID)

	if g.cache != nil {
		allowed, found, err := g.cache.GetBool(ctx, key)
		switch {
		case err != nil:
			g.metrics.IncAccessCache("error")
			g.logger.WarnContext(ctx, "access cache read failed", slog.String("user_id", subject.UserID), slog.Any("error", err))
		case found:
			g.metrics.IncAccessCache("hit")
			return allowed, nil
		default:
			g.metrics.IncAccessCache("miss")
		}
	}

	allowed, err := g.lookup(ctx, subject)
	if err != nil {
		return false, err
	}

	if g.cache != nil {
		if err := g.cache.SetBool(ctx, key, allowed, g.ttl); err != nil {
			g.logger.WarnContext(ctx, "access cache write failed", slog.String("user_id", subject.UserID), slog.Any("error", err))
		}
	}
	return allowed, nil
}

// HasFaceRecognitionAccess implements subscription.AccessGate.
func (g *accessGate) HasFaceRecognitionAccess(ctx context.Context, subject subscription.Subject) (bool, error) {
	return g.HasAttendanceAccess(ctx, subject)
}

// HasFeature implements subscription.AccessGate.
func (g *accessGate) HasFeature(ctx context.Context, subject subscription.Subject, feature subscription.Feature) (bool, error) {
	switch feature {
	case subscription.FeatureAttendance:
		return g.HasAttendanceAccess(ctx, subject)
	case subscription.FeatureFaceRecognition:
		return g.HasFaceRecognitionAccess(ctx, subject)
	default:
		return false, fmt.Errorf("unknown feature %q", feature)
	}
}

func (g *accessGate) lookup(ctx context.Context, subject subscription.Subject) (bool, error) {
	sub, err := g.subscriptions.GetActiveForUser(ctx, subject)
	if errors.Is(err, subscription.ErrSubscriptionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get subscription: %w", err)
	}
	return sub.IsActiveAt(g.clock.Now()) && sub.Plan.HasAttendanceAccess, nil
}
