// Package service combines the domestic and non-domestic EPC registers.
package service

import (
	"context"
	"strings"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/internal/epc/client"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/outcome"

	"golang.org/x/sync/errgroup"
)

const msgNotConfigured = "EPC API key not configured"

// RegisterSearcher queries one certificate register.
type RegisterSearcher interface {
	Search(ctx context.Context, category client.Category, postcode string) ([]domain.EpcData, error)
}

// Service searches both registers concurrently.
type Service struct {
	client RegisterSearcher
	log    *logger.Logger
}

// New creates a new EPC service. A nil client means the API key is missing.
func New(c RegisterSearcher, log *logger.Logger) *Service {
	return &Service{client: c, log: log}
}

var categories = []client.Category{client.Domestic, client.NonDomestic}

// Search returns domestic certificates followed by non-domestic ones,
// optionally narrowed to records whose address contains address
// (case-insensitive). A failing register is skipped and the result is
// marked degraded.
func (s *Service) Search(ctx context.Context, postcode, address string) (outcome.Result[[]domain.EpcData], error) {
	if s.client == nil {
		return outcome.Result[[]domain.EpcData]{}, apperr.Config(msgNotConfigured)
	}

	perCategory := make([][]domain.EpcData, len(categories))
	failures := make([]error, len(categories))

	var g errgroup.Group
	for i, category := range categories {
		g.Go(func() error {
			certs, err := s.client.Search(ctx, category, postcode)
			if err != nil {
				failures[i] = err
				return nil
			}
			perCategory[i] = certs
			return nil
		})
	}
	_ = g.Wait()

	result := outcome.Complete(make([]domain.EpcData, 0))
	for i, category := range categories {
		if failures[i] != nil {
			result.Degrade(string(category) + " search failed")
			continue
		}
		result.Data = append(result.Data, perCategory[i]...)
	}

	if address != "" {
		result.Data = filterByAddress(result.Data, address)
	}

	if result.Degraded {
		s.log.WithContext(ctx).Degraded("epc_search", result.Reasons)
	}
	return result, nil
}

func filterByAddress(certs []domain.EpcData, address string) []domain.EpcData {
	needle := strings.ToLower(address)
	filtered := make([]domain.EpcData, 0, len(certs))
	for _, cert := range certs {
		if strings.Contains(strings.ToLower(cert.Address), needle) {
			filtered = append(filtered, cert)
		}
	}
	return filtered
}
