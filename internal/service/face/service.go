package face

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/face"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	facematch "github.com/cmlabs-hris/pos-attendance-go/internal/pkg/face"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/pos-attendance-go/internal/service/file"
)

type FaceServiceImpl struct {
	faces  face.FaceRepository
	photos file.PhotoService
	logger *slog.Logger
}

func NewFaceService(faces face.FaceRepository, photos file.PhotoService, logger *slog.Logger) face.FaceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FaceServiceImpl{
		faces:  faces,
		photos: photos,
		logger: logger,
	}
}

// RegisterFace implements face.FaceService.
func (s *FaceServiceImpl) RegisterFace(ctx context.Context, req face.RegisterFaceRequest) (face.RegisterFaceResponse, error) {
	if err := req.Validate(); err != nil {
		return face.RegisterFaceResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return face.RegisterFaceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if !user.HasPermission(claims.Role, user.PermissionFaceManageOwn) {
		return face.RegisterFaceResponse{}, user.ErrInsufficientPermissions
	}

	path, err := s.photos.Save(ctx, req.Photo, file.FolderFaces)
	if err != nil {
		return face.RegisterFaceResponse{}, fmt.Errorf("failed to save face photo: %w", err)
	}

	if err := s.faces.SaveDescriptor(ctx, claims.UserID, req.FaceDescriptor); err != nil {
		// Don't keep a photo for a registration that did not happen
		if delErr := s.photos.Delete(ctx, path); delErr != nil {
			s.logger.WarnContext(ctx, "failed to remove face photo", slog.String("path", path), slog.Any("error", delErr))
		}
		return face.RegisterFaceResponse{}, fmt.Errorf("failed to save face descriptor: %w", err)
	}

	s.logger.InfoContext(ctx, "face registered",
		slog.String("user_id", claims.UserID),
		slog.Int("descriptor_len", len(req.FaceDescriptor)),
	)
	return face.RegisterFaceResponse{PhotoPath: path}, nil
}

// VerifyFace implements face.FaceService.
func (s *FaceServiceImpl) VerifyFace(ctx context.Context, req face.VerifyFaceRequest) (face.VerifyFaceResponse, error) {
	if err := req.Validate(); err != nil {
		return face.VerifyFaceResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return face.VerifyFaceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if !user.HasPermission(claims.Role, user.PermissionFaceManageOwn) {
		return face.VerifyFaceResponse{}, user.ErrInsufficientPermissions
	}

	profile, err := s.faces.GetProfile(ctx, claims.UserID)
	if err != nil {
		return face.VerifyFaceResponse{}, fmt.Errorf("failed to get face profile: %w", err)
	}
	if !profile.IsRegistered() {
		return face.VerifyFaceResponse{}, face.ErrFaceNotRegistered
	}

	result := facematch.Match(profile.Descriptor, req.FaceDescriptor)
	if !result.Match {
		s.logger.InfoContext(ctx, "face mismatch",
			slog.String("user_id", claims.UserID),
			slog.Float64("distance", result.Distance),
		)
		return face.VerifyFaceResponse{}, &face.MismatchError{Confidence: result.Confidence}
	}

	path, err := s.photos.Save(ctx, req.Photo, file.FolderAttendance)
	if err != nil {
		return face.VerifyFaceResponse{}, fmt.Errorf("failed to save verification photo: %w", err)
	}

	return face.VerifyFaceResponse{
		Confidence: result.Confidence,
		PhotoPath:  path,
	}, nil
}
