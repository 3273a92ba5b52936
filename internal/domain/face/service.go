package face

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks FaceService

import "context"

type FaceService interface {
	RegisterFace(ctx context.Context, req RegisterFaceRequest) (RegisterFaceResponse, error)

	// VerifyFace matches the descriptor against the caller's registered
	// face. A mismatch returns *MismatchError.
	VerifyFace(ctx context.Context, req VerifyFaceRequest) (VerifyFaceResponse, error)
}
