package maps

import (
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/httpkit"
	"property_brochure_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the location endpoint.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Location handles GET /api/v1/maps/location?address=...
func (h *Handler) Location(c *gin.Context) {
	var query LocationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("Invalid query parameters").WithDetails(validator.Fields(err)))
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.HandleError(c, apperr.Validation("query 'address' is required (min 3 chars)").WithDetails(validator.Fields(err)))
		return
	}

	result, err := h.svc.Locate(c.Request.Context(), query.Address)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, LocationResponse{
		Success:          true,
		Data:             result.Data.Maps,
		FormattedAddress: result.Data.FormattedAddress,
		Postcode:         result.Data.Postcode,
		Degraded:         result.Degraded,
	})
}
