package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/face"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/outlet"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/shift"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/subscription"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/validator"
	"github.com/go-chi/httplog/v3"
)

const CodeFeatureRequired = "SUBSCRIPTION_FEATURE_REQUIRED"

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var featureErr *subscription.FeatureRequiredError
	if errors.As(err, &featureErr) {
		Error(w, http.StatusForbidden, CodeFeatureRequired, featureErr.Error(), map[string]any{
			"required_feature": string(featureErr.Feature),
		})
		return
	}

	var locationErr *shift.LocationError
	if errors.As(err, &locationErr) {
		details := map[string]any{}
		if d := locationErr.Result.DistanceMeters; d != nil {
			details["distance_meters"] = *d
		}
		Error(w, http.StatusBadRequest, "LOCATION_REJECTED", locationErr.Error(), details)
		return
	}

	var mismatchErr *face.MismatchError
	if errors.As(err, &mismatchErr) {
		Error(w, http.StatusBadRequest, "FACE_MISMATCH", face.ErrFaceMismatch.Error(), map[string]any{
			"confidence": mismatchErr.Confidence,
		})
		return
	}

	switch {
	// Auth
	case errors.Is(err, jwt.ErrMissingToken), errors.Is(err, jwt.ErrInvalidClaims):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrBusinessIDRequired), errors.Is(err, user.ErrOutletIDRequired):
		BadRequest(w, err.Error(), nil)

	// Scope
	case errors.Is(err, outlet.ErrOutletNotFound):
		NotFound(w, "Outlet not found")
	case errors.Is(err, outlet.ErrBusinessNotFound):
		NotFound(w, "Business not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Shift lifecycle
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNotShiftOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, shift.ErrActiveShiftConflict):
		Error(w, http.StatusBadRequest, "ACTIVE_SHIFT_CONFLICT", err.Error(), nil)
	case errors.Is(err, database.ErrConcurrentUpdate):
		Error(w, http.StatusBadRequest, "ACTIVE_SHIFT_CONFLICT", "Another clock action is in progress, please retry", nil)
	case errors.Is(err, shift.ErrAlreadyClockedOut), errors.Is(err, shift.ErrNotYetClockedIn):
		BadRequest(w, err.Error(), nil)

	// Reports
	case errors.Is(err, report.ErrInvalidDateRange), errors.Is(err, report.ErrInvalidGranularity):
		BadRequest(w, err.Error(), nil)

	// Face
	case errors.Is(err, face.ErrFaceNotRegistered):
		BadRequest(w, "Face has not been registered, please register your face first", nil)

	// Default
	default:
		ctx := r.Context()
		_ = httplog.SetError(ctx, err)
		slog.ErrorContext(ctx, "unhandled error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		InternalServerError(w, "An unexpected error occurred")
	}
}
