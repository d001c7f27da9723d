package enhance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/platform/ai/openrouter"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/outcome"
	"property_brochure_backend/platform/sanitize"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

const (
	maxTokens   = 2000
	temperature = float32(0.7)

	fallbackDescriptionRunes = 500
)

const (
	msgNotConfigured = "OpenRouter API key not configured"
	msgUpstream      = "Failed to enhance property description"
	msgNoContent     = "No content received from AI service"
)

// Service turns property facts into marketing copy.
type Service struct {
	llm model.LLM
	log *logger.Logger
}

// NewService creates the service. A nil llm means the API key is missing and
// every call fails with a configuration error.
func NewService(llm model.LLM, log *logger.Logger) *Service {
	return &Service{llm: llm, log: log}
}

// Enhance asks the model for copy. Prose that is not valid JSON still
// succeeds with placeholder sections and a degraded result.
func (s *Service) Enhance(ctx context.Context, req Request) (outcome.Result[domain.AIEnhancedData], error) {
	var empty outcome.Result[domain.AIEnhancedData]
	if s.llm == nil {
		return empty, apperr.Config(msgNotConfigured)
	}

	temp := temperature
	llmReq := &model.LLMRequest{
		Contents: []*genai.Content{genai.NewContentFromText(BuildPrompt(req), genai.RoleUser)},
		Config: &genai.GenerateContentConfig{
			MaxOutputTokens: maxTokens,
			Temperature:     &temp,
		},
	}

	var (
		resp   *model.LLMResponse
		genErr error
	)
	for r, err := range s.llm.GenerateContent(ctx, llmReq, false) {
		resp, genErr = r, err
		break
	}
	if genErr != nil {
		return empty, s.mapError(ctx, genErr)
	}

	content := openrouter.Text(resp)
	if strings.TrimSpace(content) == "" {
		return empty, apperr.Upstream(msgNoContent, nil).WithStatus(http.StatusInternalServerError)
	}

	data, err := ParseEnhanced(content)
	if err != nil {
		reasons := []string{"model response was not valid JSON"}
		s.log.WithContext(ctx).Degraded("ai_enhance", reasons)
		return outcome.Partial(Fallback(content), reasons...), nil
	}
	return outcome.Complete(data), nil
}

func (s *Service) mapError(ctx context.Context, err error) error {
	var statusErr *openrouter.StatusError
	switch {
	case errors.As(err, &statusErr):
		s.log.WithContext(ctx).UpstreamError("openrouter", statusErr.StatusCode, err)
		return apperr.Upstream(msgUpstream, err).WithStatus(statusErr.StatusCode)
	case errors.Is(err, openrouter.ErrNoContent):
		return apperr.Upstream(msgNoContent, err).WithStatus(http.StatusInternalServerError)
	default:
		s.log.WithContext(ctx).UpstreamError("openrouter", 0, err)
		return fmt.Errorf("enhance: %w", err)
	}
}

// ParseEnhanced decodes the JSON object spanning the first '{' to the last
// '}' of content.
func ParseEnhanced(content string) (domain.AIEnhancedData, error) {
	var data domain.AIEnhancedData
	candidate := content
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		candidate = content[start : end+1]
	}
	if err := json.Unmarshal([]byte(candidate), &data); err != nil {
		return domain.AIEnhancedData{}, err
	}
	return domain.AIEnhancedData{
		EnhancedDescription: sanitize.Text(data.EnhancedDescription),
		MarketAnalysis:      sanitize.Text(data.MarketAnalysis),
		KeyFeatures:         sanitize.Lines(data.KeyFeatures),
		TargetBuyer:         sanitize.Text(data.TargetBuyer),
		InvestmentPotential: sanitize.Text(data.InvestmentPotential),
	}, nil
}

// Fallback builds placeholder copy from raw model prose.
func Fallback(content string) domain.AIEnhancedData {
	runes := []rune(sanitize.Text(content))
	if len(runes) > fallbackDescriptionRunes {
		runes = runes[:fallbackDescriptionRunes]
	}
	return domain.AIEnhancedData{
		EnhancedDescription: string(runes) + "...",
		MarketAnalysis:      "Market analysis available upon request.",
		KeyFeatures:         []string{"Professional enhancement available", "Contact agent for details"},
		TargetBuyer:         "Suitable for various buyer profiles",
		InvestmentPotential: "Investment potential analysis available upon request",
	}
}
