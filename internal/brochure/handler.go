package brochure

import (
	"fmt"
	"net/http"
	"strings"

	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/httpkit"
	"property_brochure_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "Invalid request data"

// Handler exposes the brochure endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Generate handles POST /api/v1/brochure/generate
func (h *Handler) Generate(c *gin.Context) {
	req, ok := h.bindGenerate(c)
	if !ok {
		return
	}
	data := FromGenerateRequest(req)
	ctx := c.Request.Context()

	if req.Format == FormatHTML {
		html, err := h.svc.RenderHTML(ctx, data)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, HTMLResponse{Success: true, Data: HTMLResponseData{BrochureData: data, HTML: html}})
		return
	}

	out, err := h.svc.GeneratePDF(ctx, data)
	if httpkit.HandleError(c, err) {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFilename(data.Property.Postcode)))
	c.Data(http.StatusOK, "application/pdf", out)
}

// Preview handles POST /api/v1/brochure/preview
func (h *Handler) Preview(c *gin.Context) {
	req, ok := h.bindGenerate(c)
	if !ok {
		return
	}
	html, err := h.svc.RenderHTML(c.Request.Context(), FromGenerateRequest(req))
	if httpkit.HandleError(c, err) {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Assemble handles POST /api/v1/brochure/assemble
func (h *Handler) Assemble(c *gin.Context) {
	var req AssembleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgInvalidRequest).WithDetails(validator.Fields(err)))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgInvalidRequest).WithDetails(validator.Fields(err)))
		return
	}

	resp, err := h.svc.AssembleFromSources(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) bindGenerate(c *gin.Context) (GenerateRequest, bool) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgInvalidRequest).WithDetails(validator.Fields(err)))
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgInvalidRequest).WithDetails(validator.Fields(err)))
		return req, false
	}
	return req, true
}

// pdfFilename keeps the download name to a safe character set.
func pdfFilename(postcode string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(postcode) {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune('-')
		}
	}
	name := b.String()
	if name == "" {
		name = "property"
	}
	return "property-brochure-" + name + ".pdf"
}
