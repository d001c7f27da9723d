package enhance

import "property_brochure_backend/internal/domain"

// Request is the body of POST /api/v1/ai/enhance.
type Request struct {
	Address      string   `json:"address" validate:"required,min=1"`
	PropertyType string   `json:"propertyType" validate:"required,min=1"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	Size         *float64 `json:"size,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Features     []string `json:"features,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// Response wraps the generated copy.
type Response struct {
	Success  bool                  `json:"success"`
	Data     domain.AIEnhancedData `json:"data"`
	Degraded bool                  `json:"degraded"`
}
