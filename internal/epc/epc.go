// Package epc provides the UK energy performance certificate lookup.
// This file defines the public interfaces exposed to other domains.
package epc

import (
	"context"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/platform/outcome"
)

// Searcher defines the public interface for certificate lookups.
// Other domains should depend on this interface, not the concrete implementation.
type Searcher interface {
	// Search returns certificates for a postcode, optionally filtered by an
	// address fragment. Register failures degrade the result instead of
	// failing it.
	Search(ctx context.Context, postcode, address string) (outcome.Result[[]domain.EpcData], error)
}
