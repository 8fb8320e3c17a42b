package generator

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sifaka/internal/dto"
	"github.com/lshigami/Sifaka/internal/service"
	"github.com/rs/zerolog/log"
)

type GeneratorController struct {
	questionPaperService service.QuestionPaperService
	paperArchiveService  service.PaperArchiveService
}

func NewGeneratorController(qps service.QuestionPaperService, pas service.PaperArchiveService) *GeneratorController {
	return &GeneratorController{
		questionPaperService: qps,
		paperArchiveService:  pas,
	}
}

// GenerateQuestionPaper godoc
// @Summary Generate a question paper from syllabus text
// @Description Generates a structured exam paper constrained to the selected modules of the supplied syllabus. Accepts loose module forms ("module 3", "3"); test_type is CAT-1, CAT-2 or FAT.
// @Tags Question Generation
// @Accept json
// @Produce json
// @Param request body dto.GeneratePaperRequest true "Syllabus text, test type and selected modules"
// @Success 200 {object} dto.QuestionGenerationResponse "Paper generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or module labels"
// @Failure 500 {object} dto.QuestionGenerationResponse "Generation pipeline failed; body carries the failure result"
// @Router /generate-question-paper [post]
func (c *GeneratorController) GenerateQuestionPaper(ctx *gin.Context) {
	var req dto.GeneratePaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateQuestionPaper: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	// Reject bad module labels before spending a model call.
	if _, err := service.NormalizeModuleLabels(req.Modules); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: vErr.Reason})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	result := c.questionPaperService.GenerateQuestionPaper(ctx.Request.Context(), req)
	if !result.Success {
		ctx.JSON(http.StatusInternalServerError, result)
		return
	}

	// Archiving is best effort; a storage hiccup must not fail the request.
	if record, err := c.paperArchiveService.ArchivePaper(result.QuestionPaper, result.ProcessingTimeSeconds); err != nil {
		log.Warn().Err(err).Msg("GenerateQuestionPaper: failed to archive paper")
	} else {
		result.PaperID = &record.ID
	}

	ctx.JSON(http.StatusOK, result)
}

// GetGenerationOptions godoc
// @Summary List question generation options
// @Description Static test-type and module choices for the generation form, with default module selections per test type.
// @Tags Question Generation
// @Produce json
// @Success 200 {object} dto.QuestionGenerationOptions
// @Router /question-generation-options [get]
func (c *GeneratorController) GetGenerationOptions(ctx *gin.Context) {
	options := dto.QuestionGenerationOptions{
		TestTypes: []dto.OptionItem{
			{Value: "CAT-1", Label: "CAT-1 (5 Questions, 50 Marks)"},
			{Value: "CAT-2", Label: "CAT-2 (5 Questions, 50 Marks)"},
			{Value: "FAT", Label: "FAT (10 Questions, 100 Marks)"},
		},
		DefaultModules: map[string][]string{
			"CAT-1": {"Module 1", "Module 2", "Module 3"},
			"CAT-2": {"Module 1", "Module 2", "Module 3"},
			"FAT":   allModuleLabels(),
		},
	}
	for _, label := range allModuleLabels() {
		options.Modules = append(options.Modules, dto.OptionItem{Value: label, Label: label})
	}
	ctx.JSON(http.StatusOK, options)
}

func allModuleLabels() []string {
	labels := make([]string, 0, 10)
	for i := 1; i <= 10; i++ {
		labels = append(labels, fmt.Sprintf("Module %d", i))
	}
	return labels
}
