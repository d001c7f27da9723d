// Package email renders and delivers transactional mail.
package email

import (
	"context"
	"errors"

	"property_brochure_backend/platform/config"
)

// ErrNotConfigured is returned when no mail relay credentials are set.
var ErrNotConfigured = errors.New("email delivery not configured")

// Message is a single outgoing HTML email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// disabledSender fails every send so callers report delivery errors.
type disabledSender struct{}

func (disabledSender) Send(context.Context, Message) error {
	return ErrNotConfigured
}

// NewSender prefers Brevo when BREVO_API_KEY is set and falls back to SMTP
// with the EMAIL_USER account.
func NewSender(cfg config.MailConfig) Sender {
	switch {
	case cfg.GetBrevoAPIKey() != "":
		return NewBrevoSender(cfg.GetBrevoAPIKey(), cfg.GetEmailUser(), cfg.GetEmailFromName())
	case cfg.GetEmailUser() != "" && cfg.GetEmailPass() != "":
		return NewSMTPSender(cfg.GetSMTPHost(), cfg.GetSMTPPort(), cfg.GetEmailUser(), cfg.GetEmailPass(), cfg.GetEmailUser(), cfg.GetEmailFromName())
	default:
		return disabledSender{}
	}
}

// IsConfigured reports whether s can deliver mail.
func IsConfigured(s Sender) bool {
	_, disabled := s.(disabledSender)
	return !disabled
}
