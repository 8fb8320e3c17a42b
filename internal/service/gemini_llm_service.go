package service

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Sifaka/config"
	"github.com/lshigami/Sifaka/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Sampling parameters are fixed: low temperature keeps the JSON structure
// stable, and the token ceiling is sized for a full 10-question FAT paper.
const (
	generationTemperature = 0.3
	generationMaxTokens   = 4096

	generationSystemInstruction = "You are an expert exam question generator. " +
		"Respond ONLY with valid JSON format. No explanations, no additional text, just the JSON object as requested."
)

// GeminiLLMService is the single boundary to the external completion
// service. One call, no streaming, no retries here.
type GeminiLLMService interface {
	GeneratePaper(ctx context.Context, prompt string, testType model.TestType) (string, error)
}

type geminiLLMService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	m := client.GenerativeModel(cfg.GeminiModel)
	m.SetTemperature(generationTemperature)
	m.SetMaxOutputTokens(generationMaxTokens)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(generationSystemInstruction)},
	}

	return &geminiLLMService{client: m, cfg: cfg}, nil
}

func (s *geminiLLMService) GeneratePaper(ctx context.Context, prompt string, testType model.TestType) (string, error) {
	if s.client == nil {
		return "", &GenerationError{Err: fmt.Errorf("gemini client not initialized")}
	}

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("testType", string(testType)).Msg("Gemini API error during paper generation")
		return "", &GenerationError{Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", &GenerationError{Err: fmt.Errorf("gemini returned no content")}
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return "", &GenerationError{Err: fmt.Errorf("gemini returned no text content")}
	}

	return fullResponseText, nil
}
