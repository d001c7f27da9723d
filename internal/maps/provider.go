package maps

import (
	"context"

	"property_brochure_backend/internal/domain"
)

// Provider is the narrow mapping capability used by this package.
// Static map URLs are built without a provider.
type Provider interface {
	// Ready reports whether the provider has the credentials it needs.
	Ready() bool
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
	NearbySearch(ctx context.Context, req NearbyRequest) ([]Place, error)
	// APIKey is embedded in static map URLs.
	APIKey() string
}

// GeocodeResult is the first geocoder match for an address.
type GeocodeResult struct {
	Coordinates       domain.Coordinates
	FormattedAddress  string
	AddressComponents []AddressComponent
}

// AddressComponent is one part of a geocoded address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// NearbyRequest searches for places of one type around a point.
type NearbyRequest struct {
	Location domain.Coordinates
	Radius   int
	Type     string
}

// Place is a nearby search hit.
type Place struct {
	Name     string
	Location domain.Coordinates
}

// ExtractPostcode returns the postal_code component, or "".
func ExtractPostcode(components []AddressComponent) string {
	for _, component := range components {
		for _, t := range component.Types {
			if t == "postal_code" {
				return component.LongName
			}
		}
	}
	return ""
}
