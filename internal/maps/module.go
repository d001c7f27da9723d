package maps

import (
	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/validator"
)

// Module wires the mapping routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(cfg config.MapsConfig, val *validator.Validator, log *logger.Logger) *Module {
	if cfg.GetGoogleMapsAPIKey() == "" {
		log.Info("maps lookups disabled: GOOGLE_MAPS_API_KEY not configured")
	}
	svc := NewService(NewGoogleClient(cfg.GetGoogleMapsAPIKey(), "", log), log)
	return &Module{service: svc, handler: NewHandler(svc, val)}
}

// Service returns the maps service for the brochure assembler.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) Name() string {
	return "maps"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/maps")
	group.GET("/location", m.handler.Location)
}

var _ apphttp.Module = (*Module)(nil)
