package brochure

import (
	"time"

	"property_brochure_backend/internal/domain"
)

// Assemble builds the aggregate a brochure is rendered from. Optional parts
// stay nil when absent.
func Assemble(property domain.Property, agent domain.Agent, photos []string, epc *domain.EpcData, maps *domain.GoogleMapsData, ai *domain.AIEnhancedData) domain.BrochureData {
	if photos == nil {
		photos = []string{}
	}
	property.Agent = &agent
	return domain.BrochureData{
		Property:       property,
		Agent:          agent,
		Photos:         photos,
		EpcData:        epc,
		GoogleMapsData: maps,
		AIEnhanced:     ai,
		GeneratedAt:    time.Now().UTC(),
	}
}
