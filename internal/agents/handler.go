package agents

import (
	"property_brochure_backend/internal/domain"
	"property_brochure_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the agent directory.
type Handler struct {
	dir *Directory
}

func NewHandler(dir *Directory) *Handler {
	return &Handler{dir: dir}
}

type listResponse struct {
	Success bool           `json:"success"`
	Data    []domain.Agent `json:"data"`
}

type getResponse struct {
	Success bool         `json:"success"`
	Data    domain.Agent `json:"data"`
}

// List handles GET /api/v1/agents
func (h *Handler) List(c *gin.Context) {
	httpkit.OK(c, listResponse{Success: true, Data: h.dir.List()})
}

// Get handles GET /api/v1/agents/:id
func (h *Handler) Get(c *gin.Context) {
	agent, err := h.dir.Get(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, getResponse{Success: true, Data: agent})
}
