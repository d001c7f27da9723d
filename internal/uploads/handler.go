package uploads

import (
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/httpkit"
	"property_brochure_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "Invalid request data"

type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// PresignPhoto handles POST /api/v1/uploads/photos/presign
func (h *Handler) PresignPhoto(c *gin.Context) {
	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgInvalidRequest).WithDetails(validator.Fields(err)))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgInvalidRequest).WithDetails(validator.Fields(err)))
		return
	}

	resp, err := h.svc.Presign(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
