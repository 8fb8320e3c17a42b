package model

// TestType identifies the exam format a paper is generated for.
type TestType string

const (
	TestTypeCAT1 TestType = "CAT-1"
	TestTypeCAT2 TestType = "CAT-2"
	TestTypeFAT  TestType = "FAT"
)

// IsValid reports whether the test type is one of the supported formats.
func (t TestType) IsValid() bool {
	switch t {
	case TestTypeCAT1, TestTypeCAT2, TestTypeFAT:
		return true
	}
	return false
}

// QuestionPart is one subdivision of a question. Label is nil for
// questions without subdivisions.
type QuestionPart struct {
	Label  *string  `json:"label"`
	Marks  int      `json:"marks"`
	Text   string   `json:"text"`
	Module []string `json:"module"`
}

type Question struct {
	QNo          int            `json:"q_no"`
	Marks        int            `json:"marks"`
	Parts        []QuestionPart `json:"parts"`
	Instructions *string        `json:"instructions"`
}

type QuestionPaperMetadata struct {
	Title      string   `json:"title"`
	TestType   TestType `json:"test_type"`
	Modules    []string `json:"modules"`
	TotalMarks int      `json:"total_marks"`
	Notes      *string  `json:"notes"`
}

// QuestionPaperValidation mirrors the self-check block the generator is
// asked to emit alongside the paper.
type QuestionPaperValidation struct {
	TotalMarksCheck int  `json:"total_marks_check"`
	UniqueQuestions bool `json:"unique_questions"`
}

// GeneratedQuestionPaper is the complete paper as returned to callers.
// The JSON field names here are the exact contract expected back from the
// generation model; the repair step depends on this shape.
type GeneratedQuestionPaper struct {
	Metadata   QuestionPaperMetadata   `json:"metadata"`
	Paper      []Question              `json:"paper"`
	Validation QuestionPaperValidation `json:"validation"`
}
