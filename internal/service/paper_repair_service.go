package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lshigami/Sifaka/internal/model"
	"github.com/rs/zerolog/log"
)

// PaperRepairService turns a raw model reply into a typed question paper.
// Defaulting is deterministic and runs before typed construction, so
// construction never fails on omitted-but-recoverable fields; only wrong
// types or below-minimum values survive as SchemaError.
type PaperRepairService interface {
	Repair(rawText string, testType model.TestType, modules []string) (*model.GeneratedQuestionPaper, error)
}

type paperRepairService struct{}

func NewPaperRepairService() PaperRepairService {
	return &paperRepairService{}
}

var requiredTopLevelFields = []string{"metadata", "paper", "validation"}

func (s *paperRepairService) Repair(rawText string, testType model.TestType, modules []string) (*model.GeneratedQuestionPaper, error) {
	log.Debug().Str("response", truncate(rawText, 1000)).Msg("Raw model response")

	// Models routinely wrap the JSON in prose or code fences; slicing
	// between the first '{' and the last '}' bounds the useful region.
	jsonStart := strings.Index(rawText, "{")
	jsonEnd := strings.LastIndex(rawText, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, &ParseError{}
	}
	cleanJSON := rawText[jsonStart : jsonEnd+1]

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleanJSON), &doc); err != nil {
		log.Error().Err(err).Str("json", truncate(cleanJSON, 500)).Msg("JSON parsing failed")
		return nil, &ParseError{Err: err}
	}

	var missing []string
	for _, field := range requiredTopLevelFields {
		if _, ok := doc[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		log.Error().Strs("missing", missing).Msg("Missing top-level fields in model response")
		return nil, &SchemaError{MissingFields: missing}
	}

	profile, _ := ProfileFor(testType)
	healed := defaultPaperDocument(doc, testType, profile, modules)

	healedJSON, err := json.Marshal(healed)
	if err != nil {
		return nil, &SchemaError{Err: err}
	}

	var paper model.GeneratedQuestionPaper
	if err := json.Unmarshal(healedJSON, &paper); err != nil {
		log.Error().Err(err).Msg("Healed response does not fit the paper schema")
		return nil, &SchemaError{Err: err}
	}

	if err := checkPaperStructure(&paper); err != nil {
		return nil, &SchemaError{Err: err}
	}
	return &paper, nil
}

// defaultPaperDocument is the total transform from partial to complete
// untyped paper. It never fails: malformed sub-structures are replaced
// with deterministic defaults derived from the request and the profile.
func defaultPaperDocument(doc map[string]any, testType model.TestType, profile TestTypeProfile, modules []string) map[string]any {
	metadata, ok := doc["metadata"].(map[string]any)
	if !ok {
		metadata = make(map[string]any)
		doc["metadata"] = metadata
	}
	setDefault(metadata, "title", fmt.Sprintf("%s Question Paper", testType))
	setDefault(metadata, "test_type", string(testType))
	setDefault(metadata, "modules", modules)
	setDefault(metadata, "total_marks", profile.TotalMarks)
	setDefault(metadata, "notes", "Generated based on provided syllabus")

	validation, ok := doc["validation"].(map[string]any)
	if !ok {
		validation = make(map[string]any)
		doc["validation"] = validation
	}
	setDefault(validation, "total_marks_check", profile.TotalMarks)
	setDefault(validation, "unique_questions", true)

	rawPaper, ok := doc["paper"].([]any)
	if !ok {
		rawPaper = []any{}
	}

	firstModule := modules
	if len(modules) > 1 {
		firstModule = modules[:1]
	}

	questions := make([]any, 0, len(rawPaper))
	for _, entry := range rawPaper {
		question, ok := entry.(map[string]any)
		if !ok {
			continue // unsalvageable entry, drop it
		}
		qNo := len(questions) + 1
		setDefault(question, "q_no", qNo)
		setDefault(question, "marks", profile.MarksPerQuestion)
		setDefault(question, "instructions", nil)

		parts, ok := question["parts"].([]any)
		if !ok {
			parts = []any{}
		}
		if len(parts) == 0 {
			parts = append(parts, map[string]any{})
		}
		for _, p := range parts {
			part, ok := p.(map[string]any)
			if !ok {
				continue
			}
			setDefault(part, "label", nil)
			setDefault(part, "marks", question["marks"])
			setDefault(part, "text", fmt.Sprintf("Question %v content", question["q_no"]))
			setDefault(part, "module", firstModule)
		}
		question["parts"] = parts
		questions = append(questions, question)
	}
	doc["paper"] = questions

	return doc
}

// setDefault fills a key only when it is absent; an explicit null stays
// null (optional fields) or falls through to the structural checks.
func setDefault(m map[string]any, key string, value any) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}

// checkPaperStructure enforces the field-level constraints that typed
// construction alone cannot express.
func checkPaperStructure(paper *model.GeneratedQuestionPaper) error {
	if paper.Metadata.Title == "" {
		return fmt.Errorf("metadata.title must not be empty")
	}
	if !paper.Metadata.TestType.IsValid() {
		return fmt.Errorf("metadata.test_type %q is not a known test type", paper.Metadata.TestType)
	}
	if len(paper.Metadata.Modules) == 0 {
		return fmt.Errorf("metadata.modules must not be empty")
	}
	if paper.Metadata.TotalMarks < 1 {
		return fmt.Errorf("metadata.total_marks must be at least 1")
	}
	for _, q := range paper.Paper {
		if q.QNo < 1 {
			return fmt.Errorf("question number %d is invalid", q.QNo)
		}
		if q.Marks < 1 || q.Marks > 10 {
			return fmt.Errorf("question %d marks %d out of range 1-10", q.QNo, q.Marks)
		}
		if len(q.Parts) == 0 {
			return fmt.Errorf("question %d has no parts", q.QNo)
		}
		for _, part := range q.Parts {
			if part.Marks < 1 || part.Marks > 10 {
				return fmt.Errorf("question %d part marks %d out of range 1-10", q.QNo, part.Marks)
			}
			if len(part.Text) < 10 {
				return fmt.Errorf("question %d part text is too short", q.QNo)
			}
			if len(part.Module) == 0 {
				return fmt.Errorf("question %d part has no module tags", q.QNo)
			}
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
