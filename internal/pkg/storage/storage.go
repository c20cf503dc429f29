package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Get when no file exists at the given path.
var ErrNotFound = errors.New("file not found in storage")

// Storage is a blob store keyed by relative path. Paths use forward slashes
// regardless of the backing implementation.
type Storage interface {
	// Save writes content at path, replacing any existing file.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at path for reading. The caller closes the
	// returned stream. Returns ErrNotFound when the path does not exist.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at path. Deleting a missing file is not an
	// error.
	Delete(ctx context.Context, path string) error
}
