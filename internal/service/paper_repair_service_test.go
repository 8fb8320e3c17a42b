package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshigami/Sifaka/internal/model"
)

// validPaperJSON builds a well-formed model reply for the given profile.
func validPaperJSON(t *testing.T, testType model.TestType, module string) string {
	t.Helper()
	profile, ok := ProfileFor(testType)
	require.True(t, ok)

	questions := make([]model.Question, 0, profile.QuestionCount)
	for i := 1; i <= profile.QuestionCount; i++ {
		questions = append(questions, model.Question{
			QNo:   i,
			Marks: profile.MarksPerQuestion,
			Parts: []model.QuestionPart{{
				Marks:  profile.MarksPerQuestion,
				Text:   fmt.Sprintf("Explain the concept covered in question %d with an example.", i),
				Module: []string{module},
			}},
		})
	}
	paper := model.GeneratedQuestionPaper{
		Metadata: model.QuestionPaperMetadata{
			Title:      fmt.Sprintf("%s Question Paper", testType),
			TestType:   testType,
			Modules:    []string{module},
			TotalMarks: profile.TotalMarks,
		},
		Paper: questions,
		Validation: model.QuestionPaperValidation{
			TotalMarksCheck: profile.TotalMarks,
			UniqueQuestions: true,
		},
	}
	data, err := json.Marshal(paper)
	require.NoError(t, err)
	return string(data)
}

func TestRepair_WellFormedResponse(t *testing.T) {
	raw := "Here is your paper:\n```json\n" + validPaperJSON(t, model.TestTypeCAT1, "Module 1") + "\n```\nHope this helps!"

	paper, err := NewPaperRepairService().Repair(raw, model.TestTypeCAT1, []string{"Module 1"})
	require.NoError(t, err)

	assert.Equal(t, model.TestTypeCAT1, paper.Metadata.TestType)
	assert.Len(t, paper.Paper, 5)
	assert.Equal(t, 50, paper.Validation.TotalMarksCheck)
}

func TestRepair_NoJSON(t *testing.T) {
	for _, raw := range []string{"", "I cannot generate that paper.", "}{"} {
		_, err := NewPaperRepairService().Repair(raw, model.TestTypeCAT1, []string{"Module 1"})
		require.Error(t, err)
		var pErr *ParseError
		assert.True(t, errors.As(err, &pErr), "raw %q", raw)
	}
}

func TestRepair_MalformedJSON(t *testing.T) {
	_, err := NewPaperRepairService().Repair(`{"metadata": oops}`, model.TestTypeCAT1, []string{"Module 1"})
	require.Error(t, err)
	var pErr *ParseError
	assert.True(t, errors.As(err, &pErr))
}

func TestRepair_MissingTopLevelFields(t *testing.T) {
	_, err := NewPaperRepairService().Repair(`{"metadata": {}}`, model.TestTypeCAT1, []string{"Module 1"})
	require.Error(t, err)

	var sErr *SchemaError
	require.True(t, errors.As(err, &sErr))
	assert.ElementsMatch(t, []string{"paper", "validation"}, sErr.MissingFields)
}

func TestRepair_MinimalDocumentGetsDefaults(t *testing.T) {
	raw := `{"metadata": {}, "paper": [], "validation": {}}`

	paper, err := NewPaperRepairService().Repair(raw, model.TestTypeCAT2, []string{"Module 3", "Module 4"})
	require.NoError(t, err)

	assert.Equal(t, "CAT-2 Question Paper", paper.Metadata.Title)
	assert.Equal(t, model.TestTypeCAT2, paper.Metadata.TestType)
	assert.Equal(t, []string{"Module 3", "Module 4"}, paper.Metadata.Modules)
	assert.Equal(t, 50, paper.Metadata.TotalMarks)
	assert.Empty(t, paper.Paper)
	assert.Equal(t, 50, paper.Validation.TotalMarksCheck)
	assert.True(t, paper.Validation.UniqueQuestions)
}

func TestRepair_FillsQuestionDefaults(t *testing.T) {
	raw := `{
		"metadata": {},
		"paper": [
			{"parts": [{"text": "State and prove the sampling theorem."}]},
			{}
		],
		"validation": {}
	}`

	paper, err := NewPaperRepairService().Repair(raw, model.TestTypeCAT1, []string{"Module 2", "Module 5"})
	require.NoError(t, err)
	require.Len(t, paper.Paper, 2)

	first := paper.Paper[0]
	assert.Equal(t, 1, first.QNo)
	assert.Equal(t, 10, first.Marks)
	require.Len(t, first.Parts, 1)
	assert.Equal(t, 10, first.Parts[0].Marks)
	assert.Equal(t, []string{"Module 2"}, first.Parts[0].Module)

	// A question with no parts at all gets one synthesized part.
	second := paper.Paper[1]
	assert.Equal(t, 2, second.QNo)
	require.Len(t, second.Parts, 1)
	assert.Equal(t, "Question 2 content", second.Parts[0].Text)
	assert.Equal(t, []string{"Module 2"}, second.Parts[0].Module)
}

func TestRepair_DropsUnsalvageableEntries(t *testing.T) {
	raw := `{
		"metadata": {},
		"paper": ["not a question", 42, {"parts": [{"text": "Derive the transfer function of an RC filter."}]}],
		"validation": {}
	}`

	paper, err := NewPaperRepairService().Repair(raw, model.TestTypeCAT1, []string{"Module 1"})
	require.NoError(t, err)
	require.Len(t, paper.Paper, 1)
	assert.Equal(t, 1, paper.Paper[0].QNo)
}

func TestRepair_NonListPaperBecomesEmpty(t *testing.T) {
	raw := `{"metadata": {}, "paper": "oops", "validation": {}}`

	paper, err := NewPaperRepairService().Repair(raw, model.TestTypeFAT, []string{"Module 1"})
	require.NoError(t, err)
	assert.Empty(t, paper.Paper)
}

func TestRepair_StructuralViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"short part text", `{"metadata": {}, "paper": [{"parts": [{"text": "short"}]}], "validation": {}}`},
		{"marks out of range", `{"metadata": {}, "paper": [{"marks": 25, "parts": [{"marks": 10, "text": "Explain the working of a full adder."}]}], "validation": {}}`},
		{"part marks out of range", `{"metadata": {}, "paper": [{"parts": [{"marks": 0, "text": "Explain the working of a full adder."}]}], "validation": {}}`},
		{"unknown test type", `{"metadata": {"test_type": "QUIZ"}, "paper": [], "validation": {}}`},
		{"empty title", `{"metadata": {"title": ""}, "paper": [], "validation": {}}`},
	}

	repairer := NewPaperRepairService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repairer.Repair(tt.doc, model.TestTypeCAT1, []string{"Module 1"})
			require.Error(t, err)
			var sErr *SchemaError
			assert.True(t, errors.As(err, &sErr))
		})
	}
}

func TestRepair_SlicesOuterProse(t *testing.T) {
	inner := validPaperJSON(t, model.TestTypeCAT1, "Module 1")
	raw := strings.Repeat("chatter ", 20) + inner + " trailing remarks"

	paper, err := NewPaperRepairService().Repair(raw, model.TestTypeCAT1, []string{"Module 1"})
	require.NoError(t, err)
	assert.Len(t, paper.Paper, 5)
}
