// Package epc provides the energy performance certificate bounded context module.
// This file defines the module that encapsulates all EPC setup.
package epc

import (
	"property_brochure_backend/internal/epc/client"
	"property_brochure_backend/internal/epc/service"
	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/validator"
)

// Module is the EPC bounded context module.
type Module struct {
	service *service.Service
	handler *Handler
	enabled bool
}

// NewModule creates and initializes the EPC module. Without an API key the
// routes stay mounted and answer with a configuration error.
func NewModule(cfg config.EPCConfig, val *validator.Validator, log *logger.Logger) *Module {
	var svc *service.Service
	enabled := cfg.GetEPCAPIKey() != ""
	if enabled {
		svc = service.New(client.New(cfg.GetEPCAPIBaseURL(), cfg.GetEPCAPIKey(), log), log)
		log.Info("epc module initialized")
	} else {
		svc = service.New(nil, log)
		log.Info("epc lookups disabled: EPC_API_KEY not configured")
	}

	return &Module{
		service: svc,
		handler: NewHandler(svc, val),
		enabled: enabled,
	}
}

// Service returns the EPC service for external use.
func (m *Module) Service() Searcher {
	return m.service
}

// IsEnabled returns true if the EPC API key is configured.
func (m *Module) IsEnabled() bool {
	return m != nil && m.enabled
}

func (m *Module) Name() string {
	return "epc"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/epc")
	group.GET("/search", m.handler.SearchGet)
	group.POST("/search", m.handler.SearchPost)
}

var _ apphttp.Module = (*Module)(nil)
