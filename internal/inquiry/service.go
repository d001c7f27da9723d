// Package inquiry handles the public business inquiry form.
package inquiry

import (
	"context"
	"strings"
	"time"

	"property_brochure_backend/internal/email"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/phone"
	"property_brochure_backend/platform/sanitize"
)

const msgSendFailed = "Failed to send email"

type Service struct {
	sender    email.Sender
	recipient string
	brand     string
	log       *logger.Logger
	now       func() time.Time
}

func NewService(sender email.Sender, recipient, brand string, log *logger.Logger) *Service {
	return &Service{sender: sender, recipient: recipient, brand: brand, log: log, now: time.Now}
}

// Submit mails the inquiry to the business inbox, then acknowledges it to
// the submitter. The auto-reply is only sent once the notification is out.
func (s *Service) Submit(ctx context.Context, req Request) error {
	in := email.Inquiry{
		CompanyName: strings.TrimSpace(req.CompanyName),
		Industry:    strings.TrimSpace(req.Industry),
		ContactName: strings.TrimSpace(req.ContactName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       phone.FormatInternational(req.Phone),
		CompanySize: strings.TrimSpace(req.CompanySize),
		Comments:    sanitize.Text(req.Comments),
		ReceivedAt:  s.now(),
	}
	notification, err := email.InquiryNotification(in, s.recipient, s.brand)
	if err != nil {
		return s.fail(ctx, "render notification", err)
	}
	if err := s.sender.Send(ctx, notification); err != nil {
		return s.fail(ctx, "send notification", err)
	}

	reply, err := email.InquiryAutoReply(in, s.brand)
	if err != nil {
		return s.fail(ctx, "render auto-reply", err)
	}
	if err := s.sender.Send(ctx, reply); err != nil {
		return s.fail(ctx, "send auto-reply", err)
	}

	s.log.WithContext(ctx).Info("inquiry delivered", "company", in.CompanyName)
	return nil
}

func (s *Service) fail(ctx context.Context, step string, err error) error {
	s.log.WithContext(ctx).Error("inquiry email failed", "step", step, "error", err)
	return apperr.Wrap(apperr.KindInternal, msgSendFailed, err).WithOp("inquiry." + step)
}
