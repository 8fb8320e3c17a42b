package paper

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sifaka/internal/dto"
	"github.com/lshigami/Sifaka/internal/service"
	"github.com/rs/zerolog/log"
)

type PaperController struct {
	paperArchiveService service.PaperArchiveService
}

func NewPaperController(pas service.PaperArchiveService) *PaperController {
	return &PaperController{paperArchiveService: pas}
}

// ListPapers godoc
// @Summary List archived question papers
// @Description Summaries of every generated paper, newest first.
// @Tags Papers
// @Produce json
// @Success 200 {array} dto.PaperSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /papers [get]
func (c *PaperController) ListPapers(ctx *gin.Context) {
	papers, err := c.paperArchiveService.ListPapers()
	if err != nil {
		log.Error().Err(err).Msg("ListPapers: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve papers", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, papers)
}

// GetPaper godoc
// @Summary Get one archived question paper
// @Description Full detail of an archived paper, including the generated questions.
// @Tags Papers
// @Produce json
// @Param paper_id path int true "Paper ID"
// @Success 200 {object} dto.PaperDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Paper ID format"
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Router /papers/{paper_id} [get]
func (c *PaperController) GetPaper(ctx *gin.Context) {
	paperIDStr := ctx.Param("paper_id")
	paperID, err := strconv.ParseUint(paperIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Paper ID format"})
		return
	}

	detail, err := c.paperArchiveService.GetPaper(uint(paperID))
	if err != nil {
		log.Warn().Err(err).Uint64("paperID", paperID).Msg("GetPaper: Paper not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
