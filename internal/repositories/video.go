package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepview/interview-api/internal/models"
)

type VideoRepository interface {
	Create(video *models.Video) error
	FindAll() ([]models.Video, error)
	FindByID(id uuid.UUID) (*models.Video, error)
	FindByType(videoType string) ([]models.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *models.Video) error {
	if err := r.db.Create(video).Error; err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

func (r *videoRepository) FindAll() ([]models.Video, error) {
	var videos []models.Video
	if err := r.db.Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("failed to find videos: %w", err)
	}
	return videos, nil
}

func (r *videoRepository) FindByID(id uuid.UUID) (*models.Video, error) {
	var video models.Video
	if err := r.db.Where("id = ?", id).First(&video).Error; err != nil {
		return nil, fmt.Errorf("failed to find video: %w", err)
	}
	return &video, nil
}

func (r *videoRepository) FindByType(videoType string) ([]models.Video, error) {
	var videos []models.Video
	err := r.db.
		Where("type = ?", videoType).
		Order("created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find videos by type: %w", err)
	}
	return videos, nil
}
