package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lshigami/Sifaka/internal/model"
)

// TestTypeProfile is the fixed contract for one exam format. The table
// below is immutable and shared by every request.
type TestTypeProfile struct {
	QuestionCount    int
	MarksPerQuestion int
	TotalMarks       int
	RuleText         string
}

var testTypeProfiles = map[model.TestType]TestTypeProfile{
	model.TestTypeCAT1: {
		QuestionCount:    5,
		MarksPerQuestion: 10,
		TotalMarks:       50,
		RuleText: `
CAT-1 RULES:
- Level 1: Generate one opinion-based general question from syllabus scenario
- Level 2: Generate one 10-mark no-subdivision question based on basic module knowledge
- Level 3: Generate one or two derivation-based or solving-based 10-mark no-subdivision questions
- Level 4: Generate one or two questions with 2+ subdivisions, each logically connected and formula-based
- All questions must be directly based on the syllabus content provided
- Focus on practical application scenarios from the modules
`,
	},
	model.TestTypeCAT2: {
		QuestionCount:    5,
		MarksPerQuestion: 10,
		TotalMarks:       50,
		RuleText: `
CAT-2 RULES:
- Level 1: Generate one or two real-world scenario-based questions without specifying algorithms/methods
- Level 2: For coding modules, generate complex coding scenarios requiring lengthy solutions
- Level 3: Generate two scenario-based questions with 2-3 subdivisions requiring deep logical analysis
- Questions should force students to think about what concepts to apply
- Higher-order thinking and analytical skills required
- Scenarios must be realistic and challenging
`,
	},
	model.TestTypeFAT: {
		QuestionCount:    10,
		MarksPerQuestion: 10,
		TotalMarks:       100,
		RuleText: `
FAT RULES:
- 7 out of 10 questions must follow CAT-1 rules and be syllabus-based
- Remaining 3 questions must follow CAT-2 rules requiring deeper logical thinking
- Mix of basic knowledge, derivations, and advanced analytical questions
- Comprehensive coverage of all selected modules
- Balance between theoretical knowledge and practical application
`,
	},
}

// ProfileFor returns the profile for a test type.
func ProfileFor(testType model.TestType) (TestTypeProfile, bool) {
	p, ok := testTypeProfiles[testType]
	return p, ok
}

var (
	moduleLabelRe     = regexp.MustCompile(`(?i)module\s+(\d+)`)
	bareNumberRe      = regexp.MustCompile(`^\d+$`)
	normalizedLabelRe = regexp.MustCompile(`^Module ([1-9]|10)$`)
	moduleNumberRe    = regexp.MustCompile(`(\d+)`)
)

// NormalizeModuleLabel converts user-supplied module tokens into the
// canonical "Module N" form. "module 3", "MODULE 3" and "3" all become
// "Module 3"; anything else is rejected.
func NormalizeModuleLabel(raw string) (string, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return "", &ValidationError{Reason: "empty module label"}
	}

	normalized := moduleLabelRe.ReplaceAllString(token, "Module $1")
	if bareNumberRe.MatchString(token) {
		normalized = "Module " + token
	}

	if !normalizedLabelRe.MatchString(normalized) {
		return "", &ValidationError{Reason: fmt.Sprintf("invalid module %q: must be Module 1 through Module 10", raw)}
	}
	return normalized, nil
}

// NormalizeModuleLabels normalizes every token, dropping duplicates while
// preserving the caller's order.
func NormalizeModuleLabels(raw []string) ([]string, error) {
	var labels []string
	seen := make(map[string]bool)
	for _, token := range raw {
		label, err := NormalizeModuleLabel(token)
		if err != nil {
			return nil, err
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	if len(labels) == 0 {
		return nil, &ValidationError{Reason: "at least one module must be selected"}
	}
	return labels, nil
}

// extractModuleNumber pulls the first run of digits out of a module label.
// Returns "" when the label carries no number.
func extractModuleNumber(label string) string {
	return moduleNumberRe.FindString(label)
}
