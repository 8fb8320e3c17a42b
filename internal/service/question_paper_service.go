package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/Sifaka/internal/dto"
	"github.com/lshigami/Sifaka/internal/model"
	"github.com/rs/zerolog/log"
)

// QuestionPaperService runs the whole generation pipeline for one request:
// parse modules, select content, compose the prompt, call the model,
// repair the reply, validate the paper. A failure at any stage ends the
// request; there is no retry edge. The response always carries elapsed
// time, success or not.
type QuestionPaperService interface {
	GenerateQuestionPaper(ctx context.Context, req dto.GeneratePaperRequest) *dto.QuestionGenerationResponse
}

type questionPaperService struct {
	parser    ModuleParserService
	selector  ContentSelectorService
	composer  PromptComposerService
	llm       GeminiLLMService
	repairer  PaperRepairService
	validator PaperValidatorService
}

func NewQuestionPaperService(
	parser ModuleParserService,
	selector ContentSelectorService,
	composer PromptComposerService,
	llm GeminiLLMService,
	repairer PaperRepairService,
	validator PaperValidatorService,
) QuestionPaperService {
	return &questionPaperService{
		parser:    parser,
		selector:  selector,
		composer:  composer,
		llm:       llm,
		repairer:  repairer,
		validator: validator,
	}
}

func (s *questionPaperService) GenerateQuestionPaper(ctx context.Context, req dto.GeneratePaperRequest) *dto.QuestionGenerationResponse {
	start := time.Now()

	fail := func(err error) *dto.QuestionGenerationResponse {
		log.Error().Err(err).Str("testType", req.TestType).Msg("Question paper generation failed")
		return &dto.QuestionGenerationResponse{
			Success:               false,
			Message:               fmt.Sprintf("Generation failed: %s", err.Error()),
			QuestionPaper:         nil,
			ProcessingTimeSeconds: time.Since(start).Seconds(),
		}
	}

	testType := model.TestType(req.TestType)
	profile, ok := ProfileFor(testType)
	if !ok {
		return fail(&ValidationError{Reason: fmt.Sprintf("unknown test type %q", req.TestType)})
	}
	if strings.TrimSpace(req.SyllabusText) == "" {
		return fail(&ValidationError{Reason: "syllabus text must not be empty"})
	}
	modules, err := NormalizeModuleLabels(req.Modules)
	if err != nil {
		return fail(err)
	}

	moduleMap := s.parser.ParseModules(req.SyllabusText)
	content, found := s.selector.SelectContent(moduleMap, modules)
	if len(found) == 0 {
		// Still worth sending: the payload tells the generator to refuse,
		// and repair/validation will reject whatever comes back off-spec.
		log.Warn().Strs("requested", modules).Msg("Proceeding with missing-modules payload")
	}

	prompt := s.composer.ComposePrompt(testType, modules, content)

	rawResponse, err := s.llm.GeneratePaper(ctx, prompt, testType)
	if err != nil {
		return fail(err)
	}

	paper, err := s.repairer.Repair(rawResponse, testType, modules)
	if err != nil {
		return fail(err)
	}

	if _, err := s.validator.Validate(paper, modules, profile); err != nil {
		return fail(err)
	}

	elapsed := time.Since(start).Seconds()
	log.Info().Str("testType", req.TestType).Int("questions", len(paper.Paper)).
		Float64("seconds", elapsed).Msg("Question paper generated successfully")

	return &dto.QuestionGenerationResponse{
		Success:               true,
		Message:               "Question paper generated successfully",
		QuestionPaper:         paper,
		ProcessingTimeSeconds: elapsed,
	}
}
