package models

import (
	"time"

	"github.com/google/uuid"
)

type VideoAnswer struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InterviewID   uuid.UUID `gorm:"type:uuid;not null;index" json:"interview_id"`
	QuestionID    string    `gorm:"type:text" json:"question_id"`
	QuestionIndex int       `json:"question_index"`
	QuestionType  string    `gorm:"type:text" json:"question_type"`
	QuestionText  string    `gorm:"type:text" json:"question_text"`
	URL           string    `gorm:"type:text;not null" json:"url"`
	Transcription *string   `gorm:"type:text" json:"transcription,omitempty"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Interview Interview `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VideoAnswer) TableName() string {
	return "video_answers"
}
