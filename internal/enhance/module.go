package enhance

import (
	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/platform/ai/openrouter"
	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/validator"

	"google.golang.org/adk/model"
)

// Module wires the AI enhancement routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(cfg config.EnhanceConfig, val *validator.Validator, log *logger.Logger) *Module {
	var llm model.LLM
	if cfg.GetOpenRouterAPIKey() != "" {
		llm = openrouter.NewModel(openrouter.Config{
			APIKey:  cfg.GetOpenRouterAPIKey(),
			BaseURL: cfg.GetOpenRouterAPIURL(),
			Model:   cfg.GetOpenRouterModel(),
			Referer: cfg.GetAppBaseURL(),
			Title:   cfg.GetBrandName() + " Property Brochure Generator",
		})
	} else {
		log.Warn("ai enhancement disabled: OPENROUTER_API_KEY not configured")
	}

	svc := NewService(llm, log)
	return &Module{service: svc, handler: NewHandler(svc, val)}
}

// Service returns the enhancement service for the brochure assembler.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) Name() string {
	return "enhance"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/ai/enhance", m.handler.Enhance)
}

var _ apphttp.Module = (*Module)(nil)
