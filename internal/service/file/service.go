package file

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks PhotoService

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/clock"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/storage"
	"github.com/google/uuid"
)

const (
	FolderAttendance = "attendance"
	FolderFaces      = "faces"
)

// PhotoService persists base64 photos captured by the attendance client.
type PhotoService interface {
	// Save decodes a base64 image, optionally prefixed with a data URL, and
	// stores it under folder. It returns the stored relative path.
	Save(ctx context.Context, base64Image string, folder string) (string, error)

	// Delete removes a stored photo
	Delete(ctx context.Context, path string) error

	// URL returns the public URL of a stored photo
	URL(ctx context.Context, path string) (string, error)
}

type photoServiceImpl struct {
	storage storage.FileStorage
	clock   clock.Clock
}

func NewPhotoService(storage storage.FileStorage, clock clock.Clock) PhotoService {
	return &photoServiceImpl{
		storage: storage,
		clock:   clock,
	}
}

func (s *photoServiceImpl) Save(ctx context.Context, base64Image string, folder string) (string, error) {
	data, err := storage.DecodeBase64Image(base64Image)
	if err != nil {
		return "", err
	}

	// <unix>_<unique>.jpg
	filename := fmt.Sprintf("%d_%s.jpg", s.clock.Now().Unix(), uuid.NewString())
	stored, err := s.storage.Upload(ctx, bytes.NewReader(data), path.Join(folder, filename), "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to save photo: %w", err)
	}

	return stored, nil
}

func (s *photoServiceImpl) Delete(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *photoServiceImpl) URL(ctx context.Context, path string) (string, error) {
	return s.storage.GetURL(ctx, path)
}
