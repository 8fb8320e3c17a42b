package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Sifaka/internal/dto"
	"github.com/lshigami/Sifaka/internal/model"
	"github.com/lshigami/Sifaka/internal/repository"
	"github.com/rs/zerolog/log"
)

// PaperArchiveService persists successfully generated papers and serves
// the history endpoints. The generation pipeline itself never reads the
// archive; archiving happens after the fact and its failure does not
// fail a generation request.
type PaperArchiveService interface {
	ArchivePaper(paper *model.GeneratedQuestionPaper, processingSeconds float64) (*model.PaperRecord, error)
	ListPapers() ([]dto.PaperSummaryDTO, error)
	GetPaper(id uint) (*dto.PaperDetailDTO, error)
}

type paperArchiveService struct {
	paperRepo repository.PaperRepository
}

func NewPaperArchiveService(paperRepo repository.PaperRepository) PaperArchiveService {
	return &paperArchiveService{paperRepo: paperRepo}
}

func (s *paperArchiveService) ArchivePaper(paper *model.GeneratedQuestionPaper, processingSeconds float64) (*model.PaperRecord, error) {
	paperJSON, err := json.Marshal(paper)
	if err != nil {
		return nil, fmt.Errorf("error serializing paper for archive: %w", err)
	}

	record := model.PaperRecord{
		Title:          paper.Metadata.Title,
		TestType:       string(paper.Metadata.TestType),
		Modules:        strings.Join(paper.Metadata.Modules, ", "),
		QuestionCount:  len(paper.Paper),
		TotalMarks:     paper.Metadata.TotalMarks,
		PaperJSON:      string(paperJSON),
		ProcessingTime: processingSeconds,
	}

	if err := s.paperRepo.Create(&record); err != nil {
		log.Error().Err(err).Msg("Failed to archive generated paper")
		return nil, fmt.Errorf("database error archiving paper: %w", err)
	}

	log.Info().Uint("paperID", record.ID).Str("testType", record.TestType).Msg("Generated paper archived")
	return &record, nil
}

func (s *paperArchiveService) ListPapers() ([]dto.PaperSummaryDTO, error) {
	records, err := s.paperRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list archived papers")
		return nil, fmt.Errorf("error fetching papers: %w", err)
	}

	var dtos []dto.PaperSummaryDTO
	for _, record := range records {
		var summary dto.PaperSummaryDTO
		if err := copier.Copy(&summary, &record); err != nil {
			return nil, fmt.Errorf("error preparing paper summary: %w", err)
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *paperArchiveService) GetPaper(id uint) (*dto.PaperDetailDTO, error) {
	record, err := s.paperRepo.FindByID(id)
	if err != nil {
		log.Warn().Err(err).Uint("paperID", id).Msg("Archived paper not found")
		return nil, fmt.Errorf("paper not found with ID %d: %w", id, err)
	}

	var detail dto.PaperDetailDTO
	if err := copier.Copy(&detail, record); err != nil {
		return nil, fmt.Errorf("error preparing paper details: %w", err)
	}

	var paper model.GeneratedQuestionPaper
	if err := json.Unmarshal([]byte(record.PaperJSON), &paper); err != nil {
		log.Error().Err(err).Uint("paperID", id).Msg("Archived paper JSON is corrupt")
		return nil, fmt.Errorf("error reading archived paper %d: %w", id, err)
	}
	detail.QuestionPaper = &paper

	return &detail, nil
}
