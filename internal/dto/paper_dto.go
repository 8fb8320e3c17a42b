package dto

import (
	"time"

	"github.com/lshigami/Sifaka/internal/model"
)

// PaperSummaryDTO is used for listing archived papers.
type PaperSummaryDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	TestType       string    `json:"test_type"`
	Modules        string    `json:"modules"`
	QuestionCount  int       `json:"question_count"`
	TotalMarks     int       `json:"total_marks"`
	ProcessingTime float64   `json:"processing_time_seconds"`
	CreatedAt      time.Time `json:"created_at"`
}

// PaperDetailDTO is the full archived paper, including the question paper
// as originally returned to the caller.
type PaperDetailDTO struct {
	ID             uint                          `json:"id"`
	Title          string                        `json:"title"`
	TestType       string                        `json:"test_type"`
	Modules        string                        `json:"modules"`
	QuestionCount  int                           `json:"question_count"`
	TotalMarks     int                           `json:"total_marks"`
	ProcessingTime float64                       `json:"processing_time_seconds"`
	CreatedAt      time.Time                     `json:"created_at"`
	QuestionPaper  *model.GeneratedQuestionPaper `json:"question_paper"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
