package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const brevoDefaultURL = "https://api.brevo.com/v3/smtp/email"

// BrevoSender delivers mail through the Brevo transactional API.
type BrevoSender struct {
	apiKey    string
	fromName  string
	fromEmail string
	endpoint  string
	client    *http.Client
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoEmailRequest struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	ReplyTo     *brevoAddress  `json:"replyTo,omitempty"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

func NewBrevoSender(apiKey, fromEmail, fromName string) *BrevoSender {
	return &BrevoSender{
		apiKey:    apiKey,
		fromName:  fromName,
		fromEmail: fromEmail,
		endpoint:  brevoDefaultURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// WithEndpoint overrides the Brevo API URL.
func (b *BrevoSender) WithEndpoint(endpoint string) *BrevoSender {
	b.endpoint = endpoint
	return b
}

func (b *BrevoSender) Send(ctx context.Context, m Message) error {
	payload := brevoEmailRequest{
		Sender:      brevoAddress{Name: b.fromName, Email: b.fromEmail},
		To:          []brevoAddress{{Email: m.To}},
		Subject:     m.Subject,
		HTMLContent: m.HTML,
	}
	if m.ReplyTo != "" {
		payload.ReplyTo = &brevoAddress{Email: m.ReplyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", b.apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo send failed: status %d: %s", resp.StatusCode, string(data))
	}
	return nil
}
