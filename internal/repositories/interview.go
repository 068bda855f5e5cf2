package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepview/interview-api/internal/models"
)

type InterviewRepository interface {
	Create(interview *models.Interview) error
	FindAll() ([]models.Interview, error)
	FindByID(id uuid.UUID) (*models.Interview, error)
	FindByUserID(userID string) ([]models.Interview, error)
	FindLatest() (*models.Interview, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	IncrementCompleted(id uuid.UUID) error
	SetMonitoringFlag(id uuid.UUID, column string) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *models.Interview) error {
	if err := r.db.Create(interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindAll() ([]models.Interview, error) {
	var interviews []models.Interview
	if err := r.db.Order("created_at DESC").Find(&interviews).Error; err != nil {
		return nil, fmt.Errorf("failed to find interviews: %w", err)
	}
	return interviews, nil
}

func (r *interviewRepository) FindByID(id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Where("id = ?", id).First(&interview).Error; err != nil {
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}
	return &interview, nil
}

func (r *interviewRepository) FindByUserID(userID string) ([]models.Interview, error) {
	var interviews []models.Interview
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&interviews).Error; err != nil {
		return nil, fmt.Errorf("failed to find interviews for user: %w", err)
	}
	return interviews, nil
}

func (r *interviewRepository) FindLatest() (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Order("created_at DESC").First(&interview).Error; err != nil {
		return nil, fmt.Errorf("failed to find latest interview: %w", err)
	}
	return &interview, nil
}

func (r *interviewRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.Interview{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update interview: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("interview %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *interviewRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Interview{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete interview: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("interview %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// IncrementCompleted bumps completed_questions by exactly one in a single
// guarded UPDATE. The guard keeps the count from ever exceeding
// total_questions when a total is set; concurrent callers cannot lose updates
// because the arithmetic happens in the database.
func (r *interviewRepository) IncrementCompleted(id uuid.UUID) error {
	result := r.db.Model(&models.Interview{}).
		Where("id = ? AND (total_questions IS NULL OR completed_questions < total_questions)", id).
		Updates(map[string]interface{}{
			"completed_questions": gorm.Expr("completed_questions + 1"),
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to increment completed questions: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("interview %s missing or already at total: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// SetMonitoringFlag raises one of the monitoring booleans. Flags are
// write-once-true so repeating the update is harmless.
func (r *interviewRepository) SetMonitoringFlag(id uuid.UUID, column string) error {
	result := r.db.Model(&models.Interview{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			column:       true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update monitoring flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("interview %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
