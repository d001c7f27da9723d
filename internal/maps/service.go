package maps

import (
	"context"
	"errors"
	"time"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/outcome"
)

const msgNotConfigured = "Google Maps API key not configured"

// Location is a geocoded address with its map block.
type Location struct {
	Maps             domain.GoogleMapsData
	FormattedAddress string
	Postcode         string
}

type Service struct {
	provider      Provider
	log           *logger.Logger
	searchTimeout time.Duration
}

func NewService(provider Provider, log *logger.Logger) *Service {
	return &Service{
		provider:      provider,
		log:           log,
		searchTimeout: defaultSearchTimeout,
	}
}

// WithSearchTimeout overrides the transport search wait.
func (s *Service) WithSearchTimeout(d time.Duration) *Service {
	s.searchTimeout = d
	return s
}

// Locate geocodes address and builds the static map and transport links.
// Missing transport links degrade the result; a failed geocode is an error.
func (s *Service) Locate(ctx context.Context, address string) (outcome.Result[Location], error) {
	var empty outcome.Result[Location]
	if s.provider == nil || !s.provider.Ready() {
		return empty, apperr.Config(msgNotConfigured)
	}

	geo, err := s.provider.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, ErrNoResults) {
			return empty, apperr.NotFound("Address could not be located")
		}
		s.log.WithContext(ctx).UpstreamError("google-geocode", 0, err)
		return empty, apperr.Upstream("Failed to look up address location", err)
	}

	links := s.FindTransportLinks(ctx, geo.Coordinates, DefaultTransportRadius)

	result := outcome.Result[Location]{
		Succeeded: true,
		Data: Location{
			Maps: domain.GoogleMapsData{
				Coordinates:     geo.Coordinates,
				StaticMapURL:    StaticMapURL(s.provider.APIKey(), geo.Coordinates, StaticMapOptions{}),
				NearbyTransport: links.Data,
			},
			FormattedAddress: geo.FormattedAddress,
			Postcode:         ExtractPostcode(geo.AddressComponents),
		},
		Degraded: links.Degraded,
		Reasons:  links.Reasons,
	}
	return result, nil
}
