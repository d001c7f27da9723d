package service

import (
	"context"
	"errors"
	"testing"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/internal/epc/client"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/logger"
)

type fakeRegisters struct {
	results map[client.Category][]domain.EpcData
	errs    map[client.Category]error
}

func (f *fakeRegisters) Search(_ context.Context, category client.Category, _ string) ([]domain.EpcData, error) {
	if err := f.errs[category]; err != nil {
		return nil, err
	}
	return f.results[category], nil
}

func certs(addresses ...string) []domain.EpcData {
	out := make([]domain.EpcData, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, domain.EpcData{Address: a})
	}
	return out
}

func TestSearchConcatenatesDomesticFirst(t *testing.T) {
	svc := New(&fakeRegisters{results: map[client.Category][]domain.EpcData{
		client.Domestic:    certs("1 High St", "2 High St"),
		client.NonDomestic: certs("Unit 4, High St"),
	}}, logger.Discard())

	result, err := svc.Search(context.Background(), "SO14 3TL", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Data) != 3 || result.Degraded {
		t.Fatalf("expected 3 complete results, got %d degraded=%v", len(result.Data), result.Degraded)
	}
	if result.Data[0].Address != "1 High St" || result.Data[2].Address != "Unit 4, High St" {
		t.Fatalf("unexpected order %v", result.Data)
	}
}

func TestSearchFiltersAddressCaseInsensitively(t *testing.T) {
	svc := New(&fakeRegisters{results: map[client.Category][]domain.EpcData{
		client.Domestic:    certs("1 HIGH STREET", "3 Low Road"),
		client.NonDomestic: certs("Unit 4, High Street"),
	}}, logger.Discard())

	result, _ := svc.Search(context.Background(), "SO14 3TL", "high street")
	if len(result.Data) != 2 {
		t.Fatalf("expected 2 filtered results, got %v", result.Data)
	}
}

func TestSearchDegradesWhenOneRegisterFails(t *testing.T) {
	svc := New(&fakeRegisters{
		results: map[client.Category][]domain.EpcData{client.Domestic: certs("1 High St")},
		errs:    map[client.Category]error{client.NonDomestic: errors.New("status 503")},
	}, logger.Discard())

	result, err := svc.Search(context.Background(), "SO14 3TL", "")
	if err != nil {
		t.Fatalf("expected swallowed error, got %v", err)
	}
	if !result.Degraded || len(result.Reasons) != 1 {
		t.Fatalf("expected degraded result with one reason, got %#v", result)
	}
	if len(result.Data) != 1 {
		t.Fatalf("expected domestic results to survive, got %v", result.Data)
	}
}

func TestSearchWithoutClientIsConfigError(t *testing.T) {
	_, err := New(nil, logger.Discard()).Search(context.Background(), "SO14 3TL", "")
	if !apperr.Is(err, apperr.KindConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}
