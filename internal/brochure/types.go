package brochure

import (
	"strconv"
	"strings"

	"property_brochure_backend/internal/domain"
)

// PropertyInput is the property block of brochure requests.
type PropertyInput struct {
	Address      string   `json:"address" validate:"required"`
	Postcode     string   `json:"postcode" validate:"required"`
	PropertyType string   `json:"propertyType" validate:"required"`
	Bedrooms     *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms    *int     `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Size         *float64 `json:"size,omitempty" validate:"omitempty,gte=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description  string   `json:"description,omitempty"`
	Features     []string `json:"features,omitempty"`
}

// AgentInput is the agent block of a generate request.
type AgentInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// EnhancedInput is previously generated copy supplied by the client.
type EnhancedInput struct {
	EnhancedDescription string   `json:"enhanced_description" validate:"required"`
	MarketAnalysis      string   `json:"market_analysis" validate:"required"`
	KeyFeatures         []string `json:"key_features" validate:"required"`
	TargetBuyer         string   `json:"target_buyer" validate:"required"`
	InvestmentPotential string   `json:"investment_potential" validate:"required"`
}

const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// GenerateRequest is the body of /brochure/generate and /brochure/preview.
type GenerateRequest struct {
	Property       PropertyInput          `json:"property"`
	Photos         []string               `json:"photos,omitempty"`
	Agent          AgentInput             `json:"agent"`
	Enhanced       *EnhancedInput         `json:"enhanced,omitempty"`
	EpcData        *domain.EpcData        `json:"epcData,omitempty"`
	GoogleMapsData *domain.GoogleMapsData `json:"googleMapsData,omitempty"`
	Format         string                 `json:"format,omitempty" validate:"omitempty,oneof=pdf html"`
}

// Include selects the gateways an assemble request fans out to.
type Include struct {
	EPC  bool `json:"epc"`
	Maps bool `json:"maps"`
	AI   bool `json:"ai"`
}

// AssembleRequest is the body of /brochure/assemble.
type AssembleRequest struct {
	Property PropertyInput `json:"property"`
	AgentID  string        `json:"agentId" validate:"required"`
	Photos   []string      `json:"photos,omitempty"`
	Include  Include       `json:"include"`
}

// DegradedFlags reports which enrichments came back incomplete.
type DegradedFlags struct {
	EPC  bool `json:"epc"`
	Maps bool `json:"maps"`
	AI   bool `json:"ai"`
}

// AssembleResponse carries the assembled brochure data.
type AssembleResponse struct {
	Success  bool                `json:"success"`
	Data     domain.BrochureData `json:"data"`
	Degraded DegradedFlags       `json:"degraded"`
	Reasons  []string            `json:"reasons,omitempty"`
}

// HTMLResponse is returned for format=html.
type HTMLResponse struct {
	Success bool             `json:"success"`
	Data    HTMLResponseData `json:"data"`
}

type HTMLResponseData struct {
	BrochureData domain.BrochureData `json:"brochureData"`
	HTML         string              `json:"html"`
}

func (p PropertyInput) toDomain() domain.Property {
	prop := domain.Property{
		Address:      strings.TrimSpace(p.Address),
		Postcode:     strings.TrimSpace(p.Postcode),
		PropertyType: strings.TrimSpace(p.PropertyType),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Price:        p.Price,
		Description:  p.Description,
		Features:     p.Features,
	}
	if p.Size != nil && *p.Size > 0 {
		prop.Size = strconv.FormatFloat(*p.Size, 'f', -1, 64)
	}
	return prop
}

func (e *EnhancedInput) toDomain() *domain.AIEnhancedData {
	if e == nil {
		return nil
	}
	return &domain.AIEnhancedData{
		EnhancedDescription: e.EnhancedDescription,
		MarketAnalysis:      e.MarketAnalysis,
		KeyFeatures:         e.KeyFeatures,
		TargetBuyer:         e.TargetBuyer,
		InvestmentPotential: e.InvestmentPotential,
	}
}
