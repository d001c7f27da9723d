// Package brochure assembles property brochures and renders them to HTML
// and PDF.
package brochure

import (
	"context"
	"strconv"
	"strings"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/internal/pdf"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/phone"
)

const msgGenerateFailed = "Failed to generate brochure"

// AgentLookup resolves an agent id.
type AgentLookup interface {
	Get(id string) (domain.Agent, error)
}

// Deps are the collaborators of the brochure service. Gateways may be nil,
// in which case the matching enrichment is reported as degraded.
type Deps struct {
	PDF      pdf.Renderer
	HTML     *HTMLRenderer
	Agents   AgentLookup
	EPC      EPCSearcher
	Locator  Locator
	Enhancer Enhancer
}

type Service struct {
	pdf      pdf.Renderer
	html     *HTMLRenderer
	agents   AgentLookup
	epc      EPCSearcher
	locator  Locator
	enhancer Enhancer
	log      *logger.Logger
}

func NewService(deps Deps, log *logger.Logger) *Service {
	return &Service{
		pdf:      deps.PDF,
		html:     deps.HTML,
		agents:   deps.Agents,
		epc:      deps.EPC,
		locator:  deps.Locator,
		enhancer: deps.Enhancer,
		log:      log,
	}
}

// FromGenerateRequest builds brochure data from a fully populated request.
func FromGenerateRequest(req GenerateRequest) domain.BrochureData {
	agent := domain.Agent{
		Name:  strings.TrimSpace(req.Agent.Name),
		Email: strings.TrimSpace(req.Agent.Email),
		Phone: phone.FormatInternational(req.Agent.Phone),
	}
	return Assemble(req.Property.toDomain(), agent, req.Photos, req.EpcData, req.GoogleMapsData, req.Enhanced.toDomain())
}

// RenderHTML renders data to the brochure document.
func (s *Service) RenderHTML(ctx context.Context, data domain.BrochureData) (string, error) {
	html, err := s.html.Render(data)
	if err != nil {
		s.log.WithContext(ctx).Error("brochure html render failed", "error", err)
		return "", apperr.Wrap(apperr.KindInternal, msgGenerateFailed, err).WithOp("brochure.RenderHTML")
	}
	return html, nil
}

// GeneratePDF renders data to an A4 PDF.
func (s *Service) GeneratePDF(ctx context.Context, data domain.BrochureData) ([]byte, error) {
	html, err := s.RenderHTML(ctx, data)
	if err != nil {
		return nil, err
	}
	if s.pdf == nil {
		return nil, apperr.Internal(msgGenerateFailed).WithOp("brochure.GeneratePDF")
	}
	out, err := s.pdf.Render(ctx, html)
	if err != nil {
		s.log.WithContext(ctx).Error("brochure pdf render failed", "error", err)
		return nil, apperr.Wrap(apperr.KindInternal, msgGenerateFailed, err).WithOp("brochure.GeneratePDF")
	}
	s.log.WithContext(ctx).Info("brochure generated", "postcode", data.Property.Postcode, "bytes", len(out))
	return out, nil
}

// AssembleFromSources resolves the agent and enriches the property from the
// selected gateways.
func (s *Service) AssembleFromSources(ctx context.Context, req AssembleRequest) (AssembleResponse, error) {
	if s.agents == nil {
		return AssembleResponse{}, apperr.NotFound("Agent not found")
	}
	agent, err := s.agents.Get(req.AgentID)
	if err != nil {
		return AssembleResponse{}, err
	}

	prop := req.Property.toDomain()
	enriched := s.enrich(ctx, prop, req.Include)
	if len(enriched.reasons) > 0 {
		s.log.WithContext(ctx).Degraded("brochure.assemble", enriched.reasons)
	}

	return AssembleResponse{
		Success:  true,
		Data:     Assemble(prop, agent, req.Photos, enriched.epc, enriched.maps, enriched.ai),
		Degraded: enriched.degraded,
		Reasons:  enriched.reasons,
	}, nil
}

func parseSize(size string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(size), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
