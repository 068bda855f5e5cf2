package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepview/interview-api/internal/models"
)

type VideoAnswerRepository interface {
	Create(answer *models.VideoAnswer) error
	FindAll() ([]models.VideoAnswer, error)
	FindByID(id uuid.UUID) (*models.VideoAnswer, error)
	FindByInterviewID(interviewID uuid.UUID) ([]models.VideoAnswer, error)
	UpdateTranscription(id uuid.UUID, transcription string) error
}

type videoAnswerRepository struct {
	db *gorm.DB
}

func NewVideoAnswerRepository(db *gorm.DB) VideoAnswerRepository {
	return &videoAnswerRepository{db: db}
}

func (r *videoAnswerRepository) Create(answer *models.VideoAnswer) error {
	if err := r.db.Create(answer).Error; err != nil {
		return fmt.Errorf("failed to create video answer: %w", err)
	}
	return nil
}

func (r *videoAnswerRepository) FindAll() ([]models.VideoAnswer, error) {
	var answers []models.VideoAnswer
	if err := r.db.Order("created_at DESC").Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("failed to find video answers: %w", err)
	}
	return answers, nil
}

func (r *videoAnswerRepository) FindByID(id uuid.UUID) (*models.VideoAnswer, error) {
	var answer models.VideoAnswer
	if err := r.db.Where("id = ?", id).First(&answer).Error; err != nil {
		return nil, fmt.Errorf("failed to find video answer: %w", err)
	}
	return &answer, nil
}

// FindByInterviewID returns the interview's answers oldest-first.
func (r *videoAnswerRepository) FindByInterviewID(interviewID uuid.UUID) ([]models.VideoAnswer, error) {
	var answers []models.VideoAnswer
	err := r.db.
		Where("interview_id = ?", interviewID).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find video answers for interview: %w", err)
	}
	return answers, nil
}

func (r *videoAnswerRepository) UpdateTranscription(id uuid.UUID, transcription string) error {
	result := r.db.Model(&models.VideoAnswer{}).
		Where("id = ?", id).
		Update("transcription", transcription)

	if result.Error != nil {
		return fmt.Errorf("failed to update transcription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("video answer %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
