package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/pos-attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/jwt"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. It runs
// after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.HandleError(w, r, jwt.ErrMissingToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if tokenType != "access" || !ok {
			response.HandleError(w, r, jwt.ErrInvalidClaims)
			return
		}

		c, err := jwt.ClaimsFromContext(r.Context())
		if err != nil {
			response.HandleError(w, r, err)
			return
		}
		httplog.SetAttrs(r.Context(),
			slog.String("user_id", c.UserID),
			slog.String("user_role", string(c.Role)),
		)

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}
