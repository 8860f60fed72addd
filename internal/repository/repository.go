package repository

import (
	"context"

	"vidhost/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// VideoRepository defines the interface for interacting with video metadata.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) (uint, error)
	GetByID(ctx context.Context, id uint) (*domain.Video, error)
	// GetAll returns every video, newest upload first.
	GetAll(ctx context.Context) ([]domain.Video, error)
	Delete(ctx context.Context, id uint) error
}
