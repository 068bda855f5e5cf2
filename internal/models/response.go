package models

import (
	"time"

	"github.com/google/uuid"
)

// Response is a standalone per-question recording. It is persisted on its own
// path, separate from VideoAnswer which belongs to an Interview.
type Response struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuestionID    string    `gorm:"type:text;not null;index" json:"question_id"`
	FilePath      string    `gorm:"type:text;not null" json:"file_path"`
	FileName      string    `gorm:"type:text;not null" json:"file_name"`
	FileType      string    `gorm:"type:text;not null" json:"file_type"`
	Transcription string    `gorm:"type:text" json:"transcription"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Response) TableName() string {
	return "responses"
}
