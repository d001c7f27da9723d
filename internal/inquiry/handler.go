package inquiry

import (
	"net/http"

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

// Headers sets the permissive CORS headers the form has always been served
// with. They go on every response, errors included.
func (h *Handler) Headers(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Next()
}

// Methods answers preflights and rejects anything but POST.
func (h *Handler) Methods(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodPost:
		c.Next()
	case http.MethodOptions:
		c.AbortWithStatus(http.StatusOK)
	default:
		httpkit.HandleError(c, apperr.MethodNotAllowed("Method Not Allowed"))
		c.Abort()
	}
}

// Submit handles POST /api/v1/inquiries
func (h *Handler) Submit(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(msgInvalidRequest).WithDetails(validator.Fields(err)))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgInvalidRequest).WithDetails(validator.Fields(err)))
		return
	}

	if httpkit.HandleError(c, h.svc.Submit(c.Request.Context(), req)) {
		return
	}
	httpkit.OK(c, Response{Message: "Email sent successfully"})
}
