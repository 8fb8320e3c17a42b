package service

import (
	"github.com/lshigami/Sifaka/internal/model"
	"github.com/rs/zerolog/log"
)

// ValidationReport summarizes the checks run against a generated paper.
// Coverage drift is reported here instead of failing the request: the
// structural invariants are hard, topical compliance is soft because it
// cannot be verified without semantic analysis.
type ValidationReport struct {
	QuestionCount   int      `json:"question_count"`
	TotalMarks      int      `json:"total_marks"`
	CoveredModules  []string `json:"covered_modules"`
	CoverageWarning bool     `json:"coverage_warning"`
}

type PaperValidatorService interface {
	Validate(paper *model.GeneratedQuestionPaper, requestedModules []string, profile TestTypeProfile) (*ValidationReport, error)
}

type paperValidatorService struct{}

func NewPaperValidatorService() PaperValidatorService {
	return &paperValidatorService{}
}

func (s *paperValidatorService) Validate(paper *model.GeneratedQuestionPaper, requestedModules []string, profile TestTypeProfile) (*ValidationReport, error) {
	if len(paper.Paper) != profile.QuestionCount {
		return nil, &BusinessRuleError{
			Rule:     "question count",
			Expected: profile.QuestionCount,
			Actual:   len(paper.Paper),
		}
	}

	totalMarks := 0
	for _, q := range paper.Paper {
		if q.Marks != profile.MarksPerQuestion {
			return nil, &BusinessRuleError{
				Rule:     "marks per question",
				Expected: profile.MarksPerQuestion,
				Actual:   q.Marks,
			}
		}
		totalMarks += q.Marks
	}
	if totalMarks != profile.TotalMarks {
		return nil, &BusinessRuleError{
			Rule:     "total marks",
			Expected: profile.TotalMarks,
			Actual:   totalMarks,
		}
	}

	covered := make(map[string]bool)
	var coveredList []string
	for _, q := range paper.Paper {
		for _, part := range q.Parts {
			for _, m := range part.Module {
				if !covered[m] {
					covered[m] = true
					coveredList = append(coveredList, m)
				}
			}
		}
	}

	overlap := false
	for _, m := range requestedModules {
		if covered[m] {
			overlap = true
			break
		}
	}

	report := &ValidationReport{
		QuestionCount:  len(paper.Paper),
		TotalMarks:     totalMarks,
		CoveredModules: coveredList,
	}
	if !overlap {
		report.CoverageWarning = true
		log.Warn().Strs("requested", requestedModules).Strs("covered", coveredList).
			Msg("Generated questions don't cover any requested modules")
	}

	log.Info().Int("questions", report.QuestionCount).Int("totalMarks", totalMarks).
		Strs("modulesCovered", coveredList).Msg("Question paper validation passed")
	return report, nil
}
