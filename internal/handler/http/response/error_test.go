package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/face"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/outlet"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/shift"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/subscription"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/geofence"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"feature", &subscription.FeatureRequiredError{Feature: subscription.FeatureAttendance}, http.StatusForbidden, CodeFeatureRequired},
		{"location without distance", &shift.LocationError{Result: geofence.Result{Message: geofence.MessageGPSMandatory}}, http.StatusBadRequest, "LOCATION_REJECTED"},
		{"wrapped active shift", fmt.Errorf("clock in: %w", &shift.ActiveShiftError{}), http.StatusBadRequest, "ACTIVE_SHIFT_CONFLICT"},
		{"serialization retries exhausted", fmt.Errorf("clock in: %w", database.ErrConcurrentUpdate), http.StatusBadRequest, "ACTIVE_SHIFT_CONFLICT"},
		{"outlet", outlet.ErrOutletNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"business", outlet.ErrBusinessNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"permission", user.ErrInsufficientPermissions, http.StatusForbidden, "FORBIDDEN"},
		{"claims", fmt.Errorf("failed to extract claims from context: %w", jwt.ErrInvalidClaims), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"date range", report.ErrInvalidDateRange, http.StatusBadRequest, "BAD_REQUEST"},
		{"face", face.ErrFaceNotRegistered, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)

			assert.Equal(t, tc.status, rec.Code)
			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.code, resp.Error.Code)
		})
	}
}

func TestHandleErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, httptest.NewRequest(http.MethodPost, "/", nil), &subscription.FeatureRequiredError{Feature: subscription.FeatureFaceRecognition})

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "has_face_recognition_access", resp.Error.Details["required_feature"])
}
