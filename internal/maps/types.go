package maps

import "property_brochure_backend/internal/domain"

// LocationQuery represents the query parameters of the location lookup.
type LocationQuery struct {
	Address string `form:"address" validate:"required,min=3"`
}

// LocationResponse is the location block plus what the geocoder resolved.
type LocationResponse struct {
	Success          bool                  `json:"success"`
	Data             domain.GoogleMapsData `json:"data"`
	FormattedAddress string                `json:"formattedAddress,omitempty"`
	Postcode         string                `json:"postcode,omitempty"`
	Degraded         bool                  `json:"degraded"`
}
