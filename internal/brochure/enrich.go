package brochure

import (
	"context"
	"strings"
	"sync"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/internal/enhance"
	"property_brochure_backend/internal/maps"
	"property_brochure_backend/platform/outcome"

	"golang.org/x/sync/errgroup"
)

// EPCSearcher looks up energy certificates.
type EPCSearcher interface {
	Search(ctx context.Context, postcode, address string) (outcome.Result[[]domain.EpcData], error)
}

// Locator geocodes an address into its map block.
type Locator interface {
	Locate(ctx context.Context, address string) (outcome.Result[maps.Location], error)
}

// Enhancer generates marketing copy.
type Enhancer interface {
	Enhance(ctx context.Context, req enhance.Request) (outcome.Result[domain.AIEnhancedData], error)
}

type enrichment struct {
	epc      *domain.EpcData
	maps     *domain.GoogleMapsData
	ai       *domain.AIEnhancedData
	degraded DegradedFlags
	reasons  []string
}

// enrich queries the selected gateways concurrently. A failing gateway only
// marks its own part degraded; the other parts are still returned.
func (s *Service) enrich(ctx context.Context, prop domain.Property, include Include) enrichment {
	var (
		mu  sync.Mutex
		out enrichment
	)
	degrade := func(flag *bool, reason string) {
		mu.Lock()
		defer mu.Unlock()
		*flag = true
		out.reasons = append(out.reasons, reason)
	}

	g, gctx := errgroup.WithContext(ctx)

	if include.EPC {
		g.Go(func() error {
			if s.epc == nil {
				degrade(&out.degraded.EPC, "epc lookup unavailable")
				return nil
			}
			res, err := s.epc.Search(gctx, prop.Postcode, "")
			if err != nil {
				s.log.WithContext(ctx).Warn("brochure epc enrichment failed", "error", err)
				degrade(&out.degraded.EPC, "epc lookup failed")
				return nil
			}
			cert := pickCertificate(res.Data, prop.Address)
			mu.Lock()
			out.epc = cert
			mu.Unlock()
			if res.Degraded {
				degrade(&out.degraded.EPC, "epc lookup incomplete")
			} else if cert == nil {
				degrade(&out.degraded.EPC, "no energy certificate found")
			}
			return nil
		})
	}

	if include.Maps {
		g.Go(func() error {
			if s.locator == nil {
				degrade(&out.degraded.Maps, "maps lookup unavailable")
				return nil
			}
			res, err := s.locator.Locate(gctx, locationQuery(prop))
			if err != nil {
				s.log.WithContext(ctx).Warn("brochure maps enrichment failed", "error", err)
				degrade(&out.degraded.Maps, "maps lookup failed")
				return nil
			}
			data := res.Data.Maps
			mu.Lock()
			out.maps = &data
			mu.Unlock()
			if res.Degraded {
				degrade(&out.degraded.Maps, "transport links incomplete")
			}
			return nil
		})
	}

	if include.AI {
		g.Go(func() error {
			if s.enhancer == nil {
				degrade(&out.degraded.AI, "ai enhancement unavailable")
				return nil
			}
			res, err := s.enhancer.Enhance(gctx, enhanceRequest(prop))
			if err != nil {
				s.log.WithContext(ctx).Warn("brochure ai enrichment failed", "error", err)
				degrade(&out.degraded.AI, "ai enhancement failed")
				return nil
			}
			data := res.Data
			mu.Lock()
			out.ai = &data
			mu.Unlock()
			if res.Degraded {
				degrade(&out.degraded.AI, "ai response was not structured")
			}
			return nil
		})
	}

	_ = g.Wait()
	return out
}

// pickCertificate prefers the certificate whose first address line appears
// in the property address, falling back to the most relevant result.
func pickCertificate(certs []domain.EpcData, address string) *domain.EpcData {
	if len(certs) == 0 {
		return nil
	}
	addr := strings.ToLower(address)
	for i := range certs {
		line, _, _ := strings.Cut(certs[i].Address, ",")
		line = strings.ToLower(strings.TrimSpace(line))
		if line != "" && strings.Contains(addr, line) {
			c := certs[i]
			return &c
		}
	}
	c := certs[0]
	return &c
}

func locationQuery(p domain.Property) string {
	if p.Postcode == "" || strings.Contains(strings.ToLower(p.Address), strings.ToLower(p.Postcode)) {
		return p.Address
	}
	return p.Address + ", " + p.Postcode
}

func enhanceRequest(p domain.Property) enhance.Request {
	req := enhance.Request{
		Address:      p.Address,
		PropertyType: p.PropertyType,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Price:        p.Price,
		Features:     p.Features,
		Description:  p.Description,
	}
	if size, ok := parseSize(p.Size); ok {
		req.Size = &size
	}
	return req
}
