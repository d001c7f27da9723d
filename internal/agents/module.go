package agents

import (
	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"
)

// Module wires the agent directory routes.
type Module struct {
	dir     *Directory
	handler *Handler
}

func NewModule(cfg config.AgentsConfig, log *logger.Logger) (*Module, error) {
	dir, err := LoadDirectory(cfg.GetAgentsFile())
	if err != nil {
		return nil, err
	}
	log.Info("agent directory loaded", "agents", len(dir.agents))
	return &Module{dir: dir, handler: NewHandler(dir)}, nil
}

// Directory returns the loaded directory for the brochure assembler.
func (m *Module) Directory() *Directory {
	return m.dir
}

func (m *Module) Name() string {
	return "agents"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/agents")
	group.GET("", m.handler.List)
	group.GET("/:id", m.handler.Get)
}

var _ apphttp.Module = (*Module)(nil)
