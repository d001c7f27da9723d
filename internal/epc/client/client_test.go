package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"property_brochure_backend/platform/logger"
)

func TestSearchSendsBasicAuthAndNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "Basic " + base64.StdEncoding.EncodeToString([]byte("secret:"))
		if r.Header.Get("Authorization") != want {
			t.Errorf("unexpected auth %q", r.Header.Get("Authorization"))
		}
		if r.URL.Path != "/domestic/search" || r.URL.Query().Get("size") != "50" || r.URL.Query().Get("postcode") != "SO14 3TL" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		_, _ = w.Write([]byte(`{"column-names":[],"rows":[{"lmk-key":"abc","address":"1 High St","current-energy-rating":"C","current-energy-efficiency":72,"total-floor-area":85.5}]}`))
	}))
	defer srv.Close()

	certs, err := New(srv.URL, "secret", logger.Discard()).Search(context.Background(), Domestic, "SO14 3TL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("expected 1 certificate, got %d", len(certs))
	}
	got := certs[0]
	if got.LmkKey != "abc" || got.CurrentEnergyRating != "C" || got.CurrentEnergyEfficiency != "72" || got.TotalFloorArea != "85.5" {
		t.Fatalf("unexpected certificate %#v", got)
	}
	if got.PotentialEnergyRating != "" || got.LodgementDate != "" {
		t.Fatalf("expected absent fields to be empty, got %#v", got)
	}
}

func TestSearchNonOKIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, "bad", logger.Discard()).Search(context.Background(), NonDomestic, "SO14"); err == nil {
		t.Fatalf("expected error for 401")
	}
}

func TestNormalizeFallsBackToCamelCase(t *testing.T) {
	got := Normalize(map[string]any{
		"lmkKey":              "camel",
		"lodgement-date":      "2019-05-01",
		"currentEnergyRating": "B",
		"transaction-type":    nil,
	})
	if got.LmkKey != "camel" || got.LodgementDate != "2019-05-01" || got.CurrentEnergyRating != "B" || got.TransactionType != "" {
		t.Fatalf("unexpected normalisation %#v", got)
	}
}
