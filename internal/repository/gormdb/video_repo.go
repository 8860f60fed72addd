package gormdb

import (
	"context"
	"errors"

	"vidhost/internal/domain"
	"vidhost/internal/repository"

	"gorm.io/gorm"
)

// gormVideoRepository implements repository.VideoRepository on top of GORM.
type gormVideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a GORM-backed video repository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &gormVideoRepository{db: db}
}

func (r *gormVideoRepository) Create(ctx context.Context, video *domain.Video) (uint, error) {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return 0, err
	}
	return video.ID, nil
}

func (r *gormVideoRepository) GetByID(ctx context.Context, id uint) (*domain.Video, error) {
	var video domain.Video
	err := r.db.WithContext(ctx).First(&video, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *gormVideoRepository) GetAll(ctx context.Context) ([]domain.Video, error) {
	var videos []domain.Video
	err := r.db.WithContext(ctx).Order("upload_date DESC").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *gormVideoRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Video{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
