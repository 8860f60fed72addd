package storage

import (
	"context"
	"io"
)

// disabledStorage stands in when object store credentials are missing. Every
// operation fails with ErrStorageDisabled, which disables uploads while the
// rest of the app keeps serving.
type disabledStorage struct{}

// NewDisabledStorage returns an ObjectStorage whose operations always fail.
func NewDisabledStorage() ObjectStorage {
	return disabledStorage{}
}

func (disabledStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	return ErrStorageDisabled
}

func (disabledStorage) Delete(ctx context.Context, key string) error {
	return ErrStorageDisabled
}
