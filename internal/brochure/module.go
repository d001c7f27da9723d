package brochure

import (
	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/internal/pdf"
	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/validator"
)

// Module wires the brochure routes.
type Module struct {
	service *Service
	handler *Handler
}

// NewModule builds the module. deps.PDF and deps.HTML are filled from cfg
// when left nil.
func NewModule(cfg config.BrochureConfig, deps Deps, val *validator.Validator, log *logger.Logger) *Module {
	if deps.PDF == nil {
		deps.PDF = pdf.NewRenderer(cfg, log)
	}
	if deps.HTML == nil {
		deps.HTML = NewHTMLRenderer(cfg.GetBrandName())
	}
	svc := NewService(deps, log)
	return &Module{service: svc, handler: NewHandler(svc, val)}
}

func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) Name() string {
	return "brochure"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/brochure")
	group.POST("/generate", m.handler.Generate)
	group.POST("/preview", m.handler.Preview)
	group.POST("/assemble", m.handler.Assemble)
}

var _ apphttp.Module = (*Module)(nil)
