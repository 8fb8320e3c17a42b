package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lshigami/Sifaka/internal/model"
)

// PromptComposerService renders the single generation prompt. The JSON
// template embedded below must reproduce the paper schema field-for-field:
// the repair step assumes exactly this shape back from the model.
type PromptComposerService interface {
	ComposePrompt(testType model.TestType, modules []string, extractedContent string) string
}

type promptComposerService struct{}

func NewPromptComposerService() PromptComposerService {
	return &promptComposerService{}
}

func (s *promptComposerService) ComposePrompt(testType model.TestType, modules []string, extractedContent string) string {
	profile, _ := ProfileFor(testType)
	modulesStr := strings.Join(modules, ", ")

	modulesJSON, _ := json.Marshal(modules)

	firstModule := "Module 1"
	if len(modules) > 0 {
		firstModule = modules[0]
	}

	return fmt.Sprintf(`You are an expert exam paper generator. Generate a %s question paper with EXACTLY %d questions.

CRITICAL RESTRICTION:
ONLY GENERATE QUESTIONS FROM: %s
DO NOT USE ANY OTHER MODULES OR CONTENT
DO NOT USE YOUR BACKGROUND KNOWLEDGE - ONLY USE THE CONTENT SHOWN BELOW

STRICT REQUIREMENTS:
- Each question must be exactly %d marks
- Total paper marks: %d
- Generate questions EXCLUSIVELY from the module content provided below
- Each question must be tagged with ONLY these modules: %s
- FORBIDDEN: Using content from any other modules
- FORBIDDEN: Using concepts not explicitly mentioned in the module content below
- FORBIDDEN: Using any topic, concept, or terminology not explicitly listed in the provided content
- Output ONLY valid JSON, no explanations
%s
ALLOWED MODULE CONTENT (USE ONLY THIS):
%s

ABSOLUTE MODULE RESTRICTION:
ALLOWED MODULES: %s
FORBIDDEN: All other modules
FORBIDDEN: Your general knowledge about any subject

ULTRA-STRICT CONTENT RULES:
- Read the module content above carefully
- ONLY create questions about topics explicitly mentioned in that content
- If you're not sure if a concept is mentioned, DON'T use it
- Stick to the exact words and topics from the provided content
- Examples: If "LED" is mentioned, you can ask about LED. If "timer" is NOT mentioned, you CANNOT ask about timers

MODULE REQUIREMENTS:
- Distribute questions ONLY across: %s
- Each question "module" field must contain ONLY: %s
- Zero tolerance for other module content or external knowledge

REQUIRED JSON FORMAT (copy exactly, replace content):
{
  "metadata": {
    "title": "%s Question Paper - %s",
    "test_type": "%s",
    "modules": %s,
    "total_marks": %d,
    "notes": "Generated EXCLUSIVELY from %s"
  },
  "paper": [
    {
      "q_no": 1,
      "marks": %d,
      "parts": [
        {
          "label": null,
          "marks": %d,
          "text": "Question based STRICTLY on %s content only...",
          "module": ["%s"]
        }
      ],
      "instructions": null
    }
  ],
  "validation": {
    "total_marks_check": %d,
    "unique_questions": true
  }
}

FINAL WARNING:
Generate %d questions with ABSOLUTE compliance:
1. Content source: ONLY the %s content above
2. Module tags: ONLY from %s
3. Forbidden: Any reference to other modules
4. Follow %s complexity rules
5. If in doubt, prefer basic questions from allowed modules over advanced questions from forbidden modules`,
		testType, profile.QuestionCount,
		modulesStr,
		profile.MarksPerQuestion,
		profile.TotalMarks,
		modulesStr,
		profile.RuleText,
		extractedContent,
		modulesStr,
		modulesStr, modulesStr,
		testType, modulesStr,
		testType,
		string(modulesJSON),
		profile.TotalMarks,
		modulesStr,
		profile.MarksPerQuestion,
		profile.MarksPerQuestion,
		modulesStr,
		firstModule,
		profile.TotalMarks,
		profile.QuestionCount,
		modulesStr,
		modulesStr,
		testType)
}
