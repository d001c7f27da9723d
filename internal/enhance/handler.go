package enhance

import (
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/httpkit"
	"property_brochure_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "Invalid request data"

// Handler exposes the copy generation endpoint.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Enhance handles POST /api/v1/ai/enhance
func (h *Handler) Enhance(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgInvalidRequest).WithDetails(validator.Fields(err)))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgInvalidRequest).WithDetails(validator.Fields(err)))
		return
	}

	result, err := h.svc.Enhance(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, Response{Success: true, Data: result.Data, Degraded: result.Degraded})
}
