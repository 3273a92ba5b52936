package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/subscription"
	"github.com/cmlabs-hris/pos-attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/jwt"
)

// RequireFeature checks that the caller's subscription plan includes feature.
// Staff are checked against the plan of the business owner.
func RequireFeature(gate subscription.AccessGate, feature subscription.Feature) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := jwt.ClaimsFromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, "unauthorized")
				return
			}

			subject := subscription.Subject{UserID: claims.UserID, Role: claims.Role}
			allowed, err := gate.HasFeature(r.Context(), subject, feature)
			if err != nil {
				slog.ErrorContext(r.Context(), "failed to check feature access",
					slog.String("user_id", claims.UserID),
					slog.String("feature", string(feature)),
					slog.Any("error", err),
				)
				response.InternalServerError(w, "failed to check feature access")
				return
			}

			if !allowed {
				response.HandleError(w, r, &subscription.FeatureRequiredError{Feature: feature})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
