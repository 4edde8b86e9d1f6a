package storage

import (
	"context"
	"io"
)

// FileStorage is the sink for generated export documents. Delivery
// (share, mail, preview) sits on top of this interface.
type FileStorage interface {
	// Save writes a file and returns its storage path
	Save(ctx context.Context, file io.Reader, name string) (string, error)

	// Open retrieves a stored file
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, name string) error

	// Exists checks if a file exists
	Exists(ctx context.Context, name string) (bool, error)
}
