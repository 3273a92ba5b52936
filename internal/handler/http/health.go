package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/handler/http/response"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

type HealthHandler interface {
	Ready(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	checks map[string]HealthCheck
}

// NewHealthHandler returns a readiness handler over the named checks.
func NewHealthHandler(checks map[string]HealthCheck) HealthHandler {
	return &healthHandlerImpl{checks: checks}
}

// Ready implements HealthHandler.
func (h *healthHandlerImpl) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	failed := map[string]any{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			slog.WarnContext(ctx, "readiness check failed", slog.String("check", name), slog.Any("error", err))
			failed[name] = err.Error()
			continue
		}
		status[name] = "ok"
	}

	if len(failed) > 0 {
		response.Error(w, http.StatusServiceUnavailable, "NOT_READY", "One or more dependencies are unavailable", failed)
		return
	}
	response.Success(w, status)
}
