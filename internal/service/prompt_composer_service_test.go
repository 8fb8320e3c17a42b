package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lshigami/Sifaka/internal/model"
)

func TestComposePrompt_CAT1(t *testing.T) {
	composer := NewPromptComposerService()
	prompt := composer.ComposePrompt(model.TestTypeCAT1, []string{"Module 1", "Module 2"}, "=== Module 1 CONTENT ONLY ===\nresistors")

	assert.Contains(t, prompt, "Generate a CAT-1 question paper with EXACTLY 5 questions")
	assert.Contains(t, prompt, "Each question must be exactly 10 marks")
	assert.Contains(t, prompt, "Total paper marks: 50")
	assert.Contains(t, prompt, "CAT-1 RULES:")
	assert.Contains(t, prompt, "ONLY GENERATE QUESTIONS FROM: Module 1, Module 2")
	assert.Contains(t, prompt, "resistors")
	assert.Contains(t, prompt, `"modules": ["Module 1","Module 2"]`)
	assert.Contains(t, prompt, `"total_marks": 50`)
	assert.Contains(t, prompt, `"test_type": "CAT-1"`)
}

func TestComposePrompt_FATCounts(t *testing.T) {
	prompt := NewPromptComposerService().ComposePrompt(model.TestTypeFAT, []string{"Module 3"}, "content")

	assert.Contains(t, prompt, "EXACTLY 10 questions")
	assert.Contains(t, prompt, "Total paper marks: 100")
	assert.Contains(t, prompt, "FAT RULES:")
	assert.Contains(t, prompt, "Generate 10 questions with ABSOLUTE compliance")
}

func TestComposePrompt_SchemaTemplate(t *testing.T) {
	// The embedded template is the schema contract; every top-level and
	// per-question field must be present for the repair step downstream.
	prompt := NewPromptComposerService().ComposePrompt(model.TestTypeCAT2, []string{"Module 4"}, "content")

	for _, field := range []string{`"metadata"`, `"paper"`, `"validation"`, `"q_no"`, `"marks"`, `"parts"`, `"label"`, `"text"`, `"module"`, `"instructions"`, `"total_marks_check"`, `"unique_questions"`} {
		assert.Contains(t, prompt, field, fmt.Sprintf("template missing %s", field))
	}
	assert.Contains(t, prompt, `["Module 4"]`)
}

func TestComposePrompt_CarriesErrorPayload(t *testing.T) {
	// When selection found nothing, the error payload rides through as the
	// allowed content block unchanged.
	payload := "ERROR: Cannot generate questions for the selected modules."
	prompt := NewPromptComposerService().ComposePrompt(model.TestTypeCAT1, []string{"Module 9"}, payload)

	assert.Contains(t, prompt, payload)
	assert.Contains(t, prompt, "ALLOWED MODULE CONTENT (USE ONLY THIS):")
}
