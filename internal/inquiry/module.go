package inquiry

import (
	"property_brochure_backend/internal/email"
	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	pathInquiries = "/api/v1/inquiries"
	// pathLegacy is kept for forms still posting to the old function URL.
	pathLegacy = "/.netlify/functions/send-email"
)

// Module wires the inquiry form endpoint.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.MailConfig, sender email.Sender, val *validator.Validator, log *logger.Logger) *Module {
	if !email.IsConfigured(sender) {
		log.Warn("inquiry emails disabled: EMAIL_USER/EMAIL_PASS or BREVO_API_KEY not configured")
	}
	svc := NewService(sender, cfg.GetInquiryRecipient(), cfg.GetEmailFromName(), log)
	return &Module{handler: NewHandler(svc, val)}
}

func (m *Module) Name() string {
	return "inquiry"
}

func (m *Module) CORSPaths() []string {
	return []string{pathInquiries, pathLegacy}
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	chain := []gin.HandlerFunc{m.handler.Headers, m.handler.Methods}
	if ctx.InquiryRateLimiter != nil {
		chain = append(chain, ctx.InquiryRateLimiter.RateLimit())
	}
	chain = append(chain, m.handler.Submit)

	for _, path := range m.CORSPaths() {
		ctx.Engine.Any(path, chain...)
	}
}

var (
	_ apphttp.Module    = (*Module)(nil)
	_ apphttp.CORSOwner = (*Module)(nil)
)
