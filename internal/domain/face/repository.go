package face

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks FaceRepository

import "context"

type FaceRepository interface {
	// GetProfile returns the user's face profile. A user without a
	// registered face yields a Profile with Registered false.
	GetProfile(ctx context.Context, userID string) (Profile, error)

	// SaveDescriptor stores descriptor on the user and marks the face
	// registered.
	SaveDescriptor(ctx context.Context, userID string, descriptor []float64) error
}
