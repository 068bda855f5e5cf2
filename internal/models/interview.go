package models

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	StatusPending    InterviewStatus = "pending"
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
	StatusCancelled  InterviewStatus = "cancelled"
)

func (s InterviewStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Monitoring event types raised by the proctoring frontend.
const (
	EventCopyPaste     = "copy_paste"
	EventCameraStopped = "camera_stopped"
)

type Interview struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID                string          `gorm:"type:text;not null" json:"user_id"`
	JobTitle              string          `gorm:"type:text;not null" json:"job_title"`
	CompanyName           *string         `gorm:"type:text" json:"company_name,omitempty"`
	InterviewDate         *time.Time      `gorm:"type:timestamp" json:"interview_date,omitempty"`
	Status                InterviewStatus `gorm:"not null;default:'pending'" json:"status"`
	CompletedQuestions    int             `gorm:"not null;default:0" json:"completed_questions"`
	TotalQuestions        *int            `json:"total_questions,omitempty"`
	HasAttemptedCopyPaste bool            `gorm:"not null;default:false" json:"has_attempted_copy_paste"`
	HasStoppedCamera      bool            `gorm:"not null;default:false" json:"has_stopped_camera"`
	CreatedAt             time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Interview) TableName() string {
	return "interviews"
}
