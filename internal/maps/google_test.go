package maps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleClientGeocodeRestrictsToGB(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "country:GB", r.URL.Query().Get("components"))
		assert.Equal(t, "key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"1 High St, Southampton SO14 3TL, UK","address_components":[{"long_name":"SO14 3TL","short_name":"SO14 3TL","types":["postal_code"]}],"geometry":{"location":{"lat":50.9,"lng":-1.4}}}]}`))
	}))
	defer srv.Close()

	client := NewGoogleClient("key", srv.URL, logger.Discard())
	geo, err := client.Geocode(context.Background(), "1 High St")
	require.NoError(t, err)
	assert.Equal(t, 50.9, geo.Coordinates.Lat)
	assert.Equal(t, "SO14 3TL", ExtractPostcode(geo.AddressComponents))
}

func TestGoogleClientGeocodeZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	_, err := NewGoogleClient("key", srv.URL, logger.Discard()).Geocode(context.Background(), "nowhere")
	assert.True(t, errors.Is(err, ErrNoResults))
}

func TestGoogleClientNearbySearchNamesUnknownPlaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "train_station", r.URL.Query().Get("type"))
		assert.Equal(t, "2000", r.URL.Query().Get("radius"))
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"name":"","geometry":{"location":{"lat":1,"lng":2}}}]}`))
	}))
	defer srv.Close()

	got, err := NewGoogleClient("key", srv.URL, logger.Discard()).NearbySearch(context.Background(), NearbyRequest{Radius: 2000, Type: "train_station"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Unknown", got[0].Name)
}

func TestLocateWithoutKeyIsConfigError(t *testing.T) {
	svc := NewService(NewGoogleClient("", "", logger.Discard()), logger.Discard())
	_, err := svc.Locate(context.Background(), "1 High St")

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Google Maps API key not configured", appErr.Message)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus())
}

func TestLocateBuildsMapsData(t *testing.T) {
	provider := &fakeProvider{places: map[string][]Place{"bus_station": places("Bus", 150)}}
	result, err := NewService(provider, logger.Discard()).Locate(context.Background(), "1 High St")
	require.NoError(t, err)
	assert.Equal(t, center, result.Data.Maps.Coordinates)
	assert.Contains(t, result.Data.Maps.StaticMapURL, "key=key")
	require.Len(t, result.Data.Maps.NearbyTransport, 1)
}
