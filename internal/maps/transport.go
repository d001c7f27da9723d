package maps

import (
	"context"
	"sort"
	"time"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/platform/outcome"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultTransportRadius = 2000
	perCategoryLimit       = 3
	maxTransportLinks      = 6
	defaultSearchTimeout   = 5 * time.Second
)

type transportCategory struct {
	placeType string
	linkType  domain.TransportType
}

var transportCategories = []transportCategory{
	{placeType: "train_station", linkType: domain.TransportRail},
	{placeType: "bus_station", linkType: domain.TransportBus},
	{placeType: "subway_station", linkType: domain.TransportTube},
	{placeType: "airport", linkType: domain.TransportAirport},
}

type categoryResult struct {
	index int
	links []domain.TransportLink
	err   error
}

// FindTransportLinks searches every transport category concurrently and
// returns at most six links, nearest first, one per name. Searches still
// running at the timeout are cancelled and the result is degraded.
func (s *Service) FindTransportLinks(ctx context.Context, center domain.Coordinates, radius int) outcome.Result[[]domain.TransportLink] {
	if radius <= 0 {
		radius = DefaultTransportRadius
	}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan categoryResult, len(transportCategories))
	g, gctx := errgroup.WithContext(searchCtx)
	for i, category := range transportCategories {
		g.Go(func() error {
			places, err := s.provider.NearbySearch(gctx, NearbyRequest{
				Location: center,
				Radius:   radius,
				Type:     category.placeType,
			})
			results <- categoryResult{index: i, links: toLinks(center, category.linkType, places), err: err}
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	timer := time.NewTimer(s.searchTimeout)
	defer timer.Stop()

	timedOut := false
	select {
	case <-done:
	case <-timer.C:
		timedOut = true
	case <-ctx.Done():
		timedOut = true
	}

	perCategory := make([][]domain.TransportLink, len(transportCategories))
	received := 0
	var reasons []string
collect:
	for received < len(transportCategories) {
		select {
		case r := <-results:
			received++
			if r.err != nil {
				reasons = append(reasons, transportCategories[r.index].placeType+" search failed")
				continue
			}
			perCategory[r.index] = r.links
		default:
			break collect
		}
	}

	if timedOut && received < len(transportCategories) {
		reasons = append(reasons, "transport search timed out")
	}

	var all []domain.TransportLink
	for _, links := range perCategory {
		all = append(all, links...)
	}
	links := rankLinks(all)

	if len(reasons) > 0 {
		s.log.WithContext(ctx).Degraded("transport_search", reasons)
		return outcome.Partial(links, reasons...)
	}
	return outcome.Complete(links)
}

func toLinks(center domain.Coordinates, linkType domain.TransportType, places []Place) []domain.TransportLink {
	if len(places) > perCategoryLimit {
		places = places[:perCategoryLimit]
	}
	links := make([]domain.TransportLink, 0, len(places))
	for _, p := range places {
		meters := DistanceMeters(center, p.Location)
		links = append(links, domain.TransportLink{
			Name:           p.Name,
			Type:           linkType,
			Distance:       FormatDistance(meters),
			WalkingTime:    EstimateWalkingTime(meters),
			Coordinates:    p.Location,
			DistanceMeters: meters,
		})
	}
	return links
}

// rankLinks sorts by distance, keeps the first link per name and caps the
// list at six.
func rankLinks(links []domain.TransportLink) []domain.TransportLink {
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].DistanceMeters < links[j].DistanceMeters
	})

	seen := make(map[string]struct{}, len(links))
	ranked := make([]domain.TransportLink, 0, maxTransportLinks)
	for _, link := range links {
		if _, dup := seen[link.Name]; dup {
			continue
		}
		seen[link.Name] = struct{}{}
		ranked = append(ranked, link)
		if len(ranked) == maxTransportLinks {
			break
		}
	}
	return ranked
}
