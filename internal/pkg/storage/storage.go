package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload stores the content under path and returns the stored path
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL returns the public URL of a stored path
	GetURL(ctx context.Context, path string) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
