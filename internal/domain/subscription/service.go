package subscription

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks AccessGate

import (
	"context"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
)

// Subject is the user whose access is checked.
type Subject struct {
	UserID string
	Role   user.Role
}

// AccessGate answers feature access questions for a user.
type AccessGate interface {
	HasAttendanceAccess(ctx context.Context, subject Subject) (bool, error)

	// HasFaceRecognitionAccess follows attendance access; face matching is
	// part of the attendance feature.
	HasFaceRecognitionAccess(ctx context.Context, subject Subject) (bool, error)

	// HasFeature dispatches to the check for feature.
	HasFeature(ctx context.Context, subject Subject, feature Feature) (bool, error)
}
