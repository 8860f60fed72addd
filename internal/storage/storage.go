package storage

import (
	"context"
	"errors"
	"io"
)

// ErrStorageDisabled is returned by every operation when the object store was
// never configured. Uploads are impossible then, but listings keep working.
var ErrStorageDisabled = errors.New("object storage is not configured")

// ObjectStorage defines the interface for object storage operations.
type ObjectStorage interface {
	// Upload writes the object under key with the given content type.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error

	// Delete removes the object under key.
	Delete(ctx context.Context, key string) error
}
