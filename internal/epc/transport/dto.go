// Package transport holds the EPC search request and response shapes.
package transport

import "property_brochure_backend/internal/domain"

// SearchRequest is the body of POST /api/v1/epc/search and the query of the
// GET variant.
type SearchRequest struct {
	Postcode string `json:"postcode" form:"postcode" validate:"required,min=1"`
	Address  string `json:"address,omitempty" form:"address"`
}

// SearchResponse lists certificates found for a postcode.
type SearchResponse struct {
	Success  bool             `json:"success"`
	Data     []domain.EpcData `json:"data"`
	Count    int              `json:"count"`
	Degraded bool             `json:"degraded"`
}
