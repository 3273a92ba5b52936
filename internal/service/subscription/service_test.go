package subscription

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/subscription"
	submocks "github.com/cmlabs-hris/pos-attendance-go/internal/domain/subscription/mocks"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/clock"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/pos-attendance-go/internal/service/subscription/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccessGateSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *submocks.MockSubscriptionRepository
	cache   *mocks.MockAccessCache
	metrics *metrics.Metrics
	now     time.Time
	gate    subscription.AccessGate
}

func TestAccessGateSuite(t *testing.T) {
	suite.Run(t, new(AccessGateSuite))
}

func (s *AccessGateSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = submocks.NewMockSubscriptionRepository(s.ctrl)
	s.cache = mocks.NewMockAccessCache(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.now = time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
	s.gate = NewAccessGate(s.repo, s.cache, time.Minute, clock.Fixed(s.now), s.metrics, s.logger())
}

func (s *AccessGateSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccessGateSuite) logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var kasir = subscription.Subject{UserID: "user-1", Role: user.RoleCashier}

func (s *AccessGateSuite) activeSubscription(hasAttendance bool) subscription.Subscription {
	return subscription.Subscription{
		ID:       "sub-1",
		UserID:   "owner-1",
		Status:   subscription.StatusActive,
		StartsAt: s.now.AddDate(0, -1, 0),
		EndsAt:   s.now.AddDate(0, 1, 0),
		Plan:     subscription.Plan{ID: "plan-1", Name: "Pro", HasAttendanceAccess: hasAttendance},
	}
}

func (s *AccessGateSuite) TestCacheHit() {
	s.cache.EXPECT().GetBool(gomock.Any(), "subscription:user:user-1:attendance").Return(true, true, nil)

	allowed, err := s.gate.HasAttendanceAccess(context.Background(), kasir)
	s.NoError(err)
	s.True(allowed)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.AccessCache.WithLabelValues("hit")))
}

func (s *AccessGateSuite) TestCacheMiss() {
	s.Run("plan with attendance", func() {
		s.cache.EXPECT().GetBool(gomock.Any(), gomock.Any()).Return(false, false, nil)
		s.repo.EXPECT().GetActiveForUser(gomock.Any(), kasir).Return(s.activeSubscription(true), nil)
		s.cache.EXPECT().SetBool(gomock.Any(), "subscription:user:user-1:attendance", true, time.Minute).Return(nil)

		allowed, err := s.gate.HasAttendanceAccess(context.Background(), kasir)
		s.NoError(err)
		s.True(allowed)
	})

	s.Run("plan without attendance", func() {
		s.cache.EXPECT().GetBool(gomock.Any(), gomock.Any()).Return(false, false, nil)
		s.repo.EXPECT().GetActiveForUser(gomock.Any(), kasir).Return(s.activeSubscription(false), nil)
		s.cache.EXPECT().SetBool(gomock.Any(), gomock.Any(), false, time.Minute).Return(nil)

		allowed, err := s.gate.HasAttendanceAccess(context.Background(), kasir)
		s.NoError(err)
		s.False(allowed)
	})

	s.Run("no subscription", func() {
		s.cache.EXPECT().GetBool(gomock.Any(), gomock.Any()).Return(false, false, nil)
		s.repo.EXPECT().GetActiveForUser(gomock.Any(), kasir).Return(subscription.Subscription{}, subscription.ErrSubscriptionNotFound)
		s.cache.EXPECT().SetBool(gomock.Any(), gomock.Any(), false, time.Minute).Return(nil)

		allowed, err := s.gate.HasAttendanceAccess(context.Background(), kasir)
		s.NoError(err)
		s.False(allowed)
	})

	s.Equal(3.0, testutil.ToFloat64(s.metrics.AccessCache.WithLabelValues("miss")))
}

func (s *AccessGateSuite) TestExpiredSubscription() {
	sub := s.activeSubscription(true)
	sub.EndsAt = s.now

	s.cache.EXPECT().GetBool(gomock.Any(), gomock.Any()).Return(false, false, nil)
	s.repo.EXPECT().GetActiveForUser(gomock.Any(), kasir).Return(sub, nil)
	s.cache.EXPECT().SetBool(gomock.Any(), gomock.Any(), false, gomock.Any()).Return(nil)

	allowed, err := s.gate.HasAttendanceAccess(context.Background(), kasir)
	s.NoError(err)
	s.False(allowed)
}

func (s *AccessGateSuite) TestCacheErrorsDegrade() {
	s.cache.EXPECT().GetBool(gomock.Any(), gomock.Any()).Return(false, false, errors.New("connection refused"))
	s.repo.EXPECT().GetActiveForUser(gomock.Any(), kasir).Return(s.activeSubscription(true), nil)
	s.cache.EXPECT().SetBool(gomock.Any(), gomock.Any(), true, gomock.Any()).Return(errors.New("connection refused"))

	allowed, err := s.gate.HasAttendanceAccess(context.Background(), kasir)
	s.NoError(err)
	s.True(allowed)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.AccessCache.WithLabelValues("error")))
}

func (s *AccessGateSuite) TestStoreErrorIsReturned() {
	s.cache.EXPECT().GetBool(gomock.Any(), gomock.Any()).Return(false, false, nil)
	s.repo.EXPECT().GetActiveForUser(gomock.Any(), kasir).Return(subscription.Subscription{}, errors.New("db down"))

	_, err := s.gate.HasAttendanceAccess(context.Background(), kasir)
	s.Error(err)
}

func (s *AccessGateSuite) TestWithoutCache() {
	gate := NewAccessGate(s.repo, nil, 0, clock.Fixed(s.now), nil, s.logger())
	s.repo.EXPECT().GetActiveForUser(gomock.Any(), kasir).Return(s.activeSubscription(true), nil)

	allowed, err := gate.HasFaceRecognitionAccess(context.Background(), kasir)
	s.NoError(err)
	s.True(allowed)
}

func (s *AccessGateSuite) TestHasFeature() {
	s.cache.EXPECT().GetBool(gomock.Any(), gomock.Any()).Return(true, true, nil).Times(2)

	for _, feature := range []subscription.Feature{subscription.FeatureAttendance, subscription.FeatureFaceRecognition} {
		allowed, err := s.gate.HasFeature(context.Background(), kasir, feature)
		s.NoError(err)
		s.True(allowed)
	}

	_, err := s.gate.HasFeature(context.Background(), kasir, subscription.Feature("has_payroll_access"))
	s.Error(err)
}
