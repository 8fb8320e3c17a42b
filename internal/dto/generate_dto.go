package dto

import "github.com/lshigami/Sifaka/internal/model"

// GeneratePaperRequest is the inbound payload for question paper generation.
// Modules accepts loose forms ("module 3", "3"); the service normalizes
// them to "Module N" and rejects anything outside Module 1..10.
type GeneratePaperRequest struct {
	SyllabusText string   `json:"syllabus_text" binding:"required,min=10"`
	TestType     string   `json:"test_type" binding:"required,oneof=CAT-1 CAT-2 FAT"`
	Modules      []string `json:"modules" binding:"required,min=1,max=10"`
}

// QuestionGenerationResponse is the uniform outcome of a generation call.
// Failures are reported here rather than as errors, and timing is always
// populated regardless of outcome.
type QuestionGenerationResponse struct {
	Success               bool                          `json:"success"`
	Message               string                        `json:"message"`
	QuestionPaper         *model.GeneratedQuestionPaper `json:"question_paper"`
	ProcessingTimeSeconds float64                       `json:"processing_time_seconds"`
	PaperID               *uint                         `json:"paper_id,omitempty"`
}

// OptionItem is one selectable entry in the generation options form.
type OptionItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// QuestionGenerationOptions lists the static choices for the generation form.
type QuestionGenerationOptions struct {
	TestTypes      []OptionItem        `json:"test_types"`
	Modules        []OptionItem        `json:"modules"`
	DefaultModules map[string][]string `json:"default_modules"`
}
