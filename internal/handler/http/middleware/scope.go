package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/outlet"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/pos-attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/validator"
	"github.com/go-chi/httplog/v3"
)

const (
	HeaderBusinessID = "X-Business-Id"
	HeaderOutletID   = "X-Outlet-Id"
)

type scopeKey int

const (
	businessIDKey scopeKey = iota
	outletIDKey
)

// RequireBusiness reads the X-Business-Id and optional X-Outlet-Id headers
// into the request context. The business must exist.
func RequireBusiness(outlets outlet.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			businessID := strings.TrimSpace(r.Header.Get(HeaderBusinessID))
			if businessID == "" {
				response.HandleError(w, r, user.ErrBusinessIDRequired)
				return
			}
			if !validator.IsValidUUID(businessID) {
				response.BadRequest(w, HeaderBusinessID+" must be a valid UUID", nil)
				return
			}

			exists, err := outlets.BusinessExists(r.Context(), businessID)
			if err != nil {
				response.HandleError(w, r, err)
				return
			}
			if !exists {
				response.HandleError(w, r, outlet.ErrBusinessNotFound)
				return
			}

			ctx := context.WithValue(r.Context(), businessIDKey, businessID)
			attrs := []slog.Attr{slog.String("business_id", businessID)}

			if outletID := strings.TrimSpace(r.Header.Get(HeaderOutletID)); outletID != "" {
				if !validator.IsValidUUID(outletID) {
					response.BadRequest(w, HeaderOutletID+" must be a valid UUID", nil)
					return
				}
				ctx = context.WithValue(ctx, outletIDKey, outletID)
				attrs = append(attrs, slog.String("outlet_id", outletID))
			}
			httplog.SetAttrs(ctx, attrs...)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOutlet rejects requests without X-Outlet-Id. It runs after
// RequireBusiness.
func RequireOutlet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := OutletID(r.Context()); !ok {
			response.HandleError(w, r, user.ErrOutletIDRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// BusinessID returns the business scope set by RequireBusiness.
func BusinessID(ctx context.Context) string {
	id, _ := ctx.Value(businessIDKey).(string)
	return id
}

func OutletID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(outletIDKey).(string)
	return id, ok && id != ""
}
