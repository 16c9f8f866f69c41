package storage

import (
	"context"
	"io"
)

// Storage is the file-storage abstraction behind the asset store.
type Storage interface {
	// Save stores a file at the given path relative to the storage root.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get retrieves a stored file.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file. Missing files are not an error.
	Delete(ctx context.Context, path string) error

	// Exists reports whether a file is present.
	Exists(ctx context.Context, path string) (bool, error)

	// GetSize returns the size of a stored file in bytes.
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string // root directory on disk
	BaseURL  string // public URL prefix
}
