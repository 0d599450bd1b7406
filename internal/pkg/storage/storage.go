package storage

import (
	"context"
	"io"
)

// FileStorage persists uploaded workbooks for later replay. Paths are
// relative keys; the backend decides where they land.
type FileStorage interface {
	// Upload stores the content under path and returns the stored key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Open retrieves a previously stored file.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists reports whether a key is already stored.
	Exists(ctx context.Context, path string) (bool, error)
}
