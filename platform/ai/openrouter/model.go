package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"net/http"
	"strings"
	"time"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "anthropic/claude-3.5-sonnet"
)

// ErrNoContent is returned when the completion carries no message content.
var ErrNoContent = errors.New("openrouter: empty completion content")

// StatusError is returned for non-2xx answers. The status is kept so callers
// can pass it through to their own clients.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openrouter: status %d: %s", e.StatusCode, e.Body)
}

// Config for the OpenRouter chat-completions endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Referer string // sent as HTTP-Referer
	Title   string // sent as X-Title
	Timeout time.Duration
}

// Model adapts OpenRouter to the ADK model.LLM interface.
type Model struct {
	config Config
	client *http.Client
}

var _ model.LLM = (*Model)(nil)

func NewModel(cfg Config) *Model {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Model{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (m *Model) Name() string {
	return m.config.Model
}

// GenerateContent sends the request as a single non-streaming completion.
func (m *Model) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		resp, err := m.generate(ctx, req)
		yield(resp, err)
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error interface{} `json:"error"`
}

func (m *Model) generate(ctx context.Context, req *model.LLMRequest) (*model.LLMResponse, error) {
	payload := chatRequest{
		Model:    m.config.Model,
		Messages: convertMessages(req.Contents),
	}
	if req.Model != "" {
		payload.Model = req.Model
	}
	if req.Config != nil {
		if req.Config.MaxOutputTokens > 0 {
			payload.MaxTokens = int(req.Config.MaxOutputTokens)
		}
		if req.Config.Temperature != nil {
			// float32 -> float64 widening would otherwise send 0.699999988.
			t := math.Round(float64(*req.Config.Temperature)*100) / 100
			payload.Temperature = &t
		}
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode openrouter request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(m.config.BaseURL, "/")+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if m.config.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", m.config.Referer)
	}
	if m.config.Title != "" {
		httpReq.Header.Set("X-Title", m.config.Title)
	}

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode openrouter response: %w", err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("openrouter api error: %v", result.Error)
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return nil, ErrNoContent
	}

	return &model.LLMResponse{
		Content: genai.NewContentFromText(result.Choices[0].Message.Content, genai.RoleModel),
	}, nil
}

func convertMessages(contents []*genai.Content) []chatMessage {
	messages := make([]chatMessage, 0, len(contents))
	for _, content := range contents {
		if content == nil {
			continue
		}
		text := joinText(content.Parts)
		if text == "" {
			continue
		}
		messages = append(messages, chatMessage{
			Role:    roleForContent(content.Role),
			Content: text,
		})
	}
	return messages
}

func roleForContent(role string) string {
	switch role {
	case genai.RoleModel:
		return "assistant"
	case "system":
		return "system"
	default:
		return "user"
	}
}

func joinText(parts []*genai.Part) string {
	var builder strings.Builder
	for _, part := range parts {
		if part == nil || strings.TrimSpace(part.Text) == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(part.Text)
	}
	return builder.String()
}

// Text returns the concatenated text of a model response.
func Text(resp *model.LLMResponse) string {
	if resp == nil || resp.Content == nil {
		return ""
	}
	return joinText(resp.Content.Parts)
}
