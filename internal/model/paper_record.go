package model

import (
	"time"

	"gorm.io/gorm"
)

// PaperRecord archives one successfully generated question paper.
type PaperRecord struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Title          string         `json:"title" gorm:"not null"`
	TestType       string         `json:"test_type" gorm:"not null;index"`
	Modules        string         `json:"modules" gorm:"not null"` // comma-joined "Module N" labels
	QuestionCount  int            `json:"question_count" gorm:"not null"`
	TotalMarks     int            `json:"total_marks" gorm:"not null"`
	PaperJSON      string         `json:"-" gorm:"type:text;not null"`
	ProcessingTime float64        `json:"processing_time_seconds"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
