package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepview/interview-api/internal/models"
)

type ResponseRepository interface {
	Create(response *models.Response) error
	FindByID(id uuid.UUID) (*models.Response, error)
	FindByQuestionID(questionID string) ([]models.Response, error)
	UpdateTranscription(id uuid.UUID, transcription string) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *models.Response) error {
	if err := r.db.Create(response).Error; err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}
	return nil
}

func (r *responseRepository) FindByID(id uuid.UUID) (*models.Response, error) {
	var response models.Response
	if err := r.db.Where("id = ?", id).First(&response).Error; err != nil {
		return nil, fmt.Errorf("failed to find response: %w", err)
	}
	return &response, nil
}

func (r *responseRepository) FindByQuestionID(questionID string) ([]models.Response, error) {
	var responses []models.Response
	err := r.db.
		Where("question_id = ?", questionID).
		Order("created_at DESC").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find responses for question: %w", err)
	}
	return responses, nil
}

func (r *responseRepository) UpdateTranscription(id uuid.UUID, transcription string) error {
	result := r.db.Model(&models.Response{}).
		Where("id = ?", id).
		Update("transcription", transcription)

	if result.Error != nil {
		return fmt.Errorf("failed to update transcription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("response %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
