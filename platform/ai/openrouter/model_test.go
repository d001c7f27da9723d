package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

func newRequest(prompt string) *model.LLMRequest {
	temp := float32(0.7)
	return &model.LLMRequest{
		Contents: []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		Config:   &genai.GenerateContentConfig{MaxOutputTokens: 2000, Temperature: &temp},
	}
}

func first(m *Model, req *model.LLMRequest) (*model.LLMResponse, error) {
	for resp, err := range m.GenerateContent(context.Background(), req, false) {
		return resp, err
	}
	return nil, errors.New("no response yielded")
}

func TestGenerateSendsHeadersAndSettings(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("HTTP-Referer") != "http://localhost:3000" || r.Header.Get("X-Title") != "Brochures" {
			t.Errorf("missing attribution headers")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	m := NewModel(Config{APIKey: "key", BaseURL: srv.URL, Referer: "http://localhost:3000", Title: "Brochures"})
	resp, err := first(m, newRequest("describe"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Text(resp) != "hello" {
		t.Fatalf("expected hello, got %q", Text(resp))
	}
	if got.Model != DefaultModel || got.MaxTokens != 2000 || got.Temperature == nil || *got.Temperature != 0.7 {
		t.Fatalf("unexpected payload %#v", got)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || got.Messages[0].Content != "describe" {
		t.Fatalf("unexpected messages %#v", got.Messages)
	}
}

func TestGenerateKeepsUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := first(NewModel(Config{APIKey: "key", BaseURL: srv.URL}), newRequest("x"))
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 status error, got %v", err)
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := first(NewModel(Config{APIKey: "key", BaseURL: srv.URL}), newRequest("x"))
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}
