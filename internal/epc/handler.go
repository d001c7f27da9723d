package epc

import (
	"property_brochure_backend/internal/epc/transport"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/httpkit"
	"property_brochure_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgPostcodeRequired = "Postcode is required"

// Handler exposes the certificate search endpoints.
type Handler struct {
	svc Searcher
	val *validator.Validator
}

func NewHandler(svc Searcher, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// SearchGet handles GET /api/v1/epc/search?postcode=...&address=...
func (h *Handler) SearchGet(c *gin.Context) {
	req := transport.SearchRequest{
		Postcode: c.Query("postcode"),
		Address:  c.Query("address"),
	}
	if req.Postcode == "" {
		httpkit.HandleError(c, apperr.BadRequest(msgPostcodeRequired))
		return
	}
	h.search(c, req)
}

// SearchPost handles POST /api/v1/epc/search
func (h *Handler) SearchPost(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.Validation("Invalid request data").WithDetails(validator.Fields(err)))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation("Invalid request data").WithDetails(validator.Fields(err)))
		return
	}
	h.search(c, req)
}

func (h *Handler) search(c *gin.Context, req transport.SearchRequest) {
	result, err := h.svc.Search(c.Request.Context(), req.Postcode, req.Address)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SearchResponse{
		Success:  true,
		Data:     result.Data,
		Count:    len(result.Data),
		Degraded: result.Degraded,
	})
}
