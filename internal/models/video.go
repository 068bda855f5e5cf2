package models

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	FileName  string    `gorm:"type:text;not null" json:"file_name"`
	Type      string    `gorm:"type:text;index" json:"type"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Video) TableName() string {
	return "videos"
}
