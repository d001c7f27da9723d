package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/platform/logger"
)

const googleAPIBaseURL = "https://maps.googleapis.com/maps/api"

// ErrNoResults is returned when the geocoder finds nothing for an address.
var ErrNoResults = errors.New("geocoding failed: ZERO_RESULTS")

// GoogleClient talks to the Geocoding and Places web services. The HTTP
// client is created on first use and shared for the life of the process.
type GoogleClient struct {
	apiKey  string
	baseURL string
	log     *logger.Logger

	once sync.Once
	http *http.Client
}

// NewGoogleClient creates a client. An empty baseURL uses Google's endpoint.
func NewGoogleClient(apiKey, baseURL string, log *logger.Logger) *GoogleClient {
	if baseURL == "" {
		baseURL = googleAPIBaseURL
	}
	return &GoogleClient{apiKey: apiKey, baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

func (g *GoogleClient) Ready() bool {
	return g != nil && g.apiKey != ""
}

func (g *GoogleClient) APIKey() string {
	return g.apiKey
}

func (g *GoogleClient) client() *http.Client {
	g.once.Do(func() {
		g.http = &http.Client{Timeout: 10 * time.Second}
		g.log.Info("google maps client initialized")
	})
	return g.http
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress  string             `json:"formatted_address"`
		AddressComponents []AddressComponent `json:"address_components"`
		Geometry          struct {
			Location latLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string `json:"name"`
		Geometry struct {
			Location latLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocode resolves a UK address to coordinates.
func (g *GoogleClient) Geocode(ctx context.Context, address string) (GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("components", "country:GB")
	params.Set("key", g.apiKey)

	var payload geocodeResponse
	if err := g.get(ctx, "/geocode/json", params, &payload); err != nil {
		return GeocodeResult{}, err
	}

	if payload.Status == "ZERO_RESULTS" {
		return GeocodeResult{}, ErrNoResults
	}
	if payload.Status != "OK" || len(payload.Results) == 0 {
		return GeocodeResult{}, fmt.Errorf("geocoding failed: %s", payload.Status)
	}

	first := payload.Results[0]
	return GeocodeResult{
		Coordinates:       domain.Coordinates{Lat: first.Geometry.Location.Lat, Lng: first.Geometry.Location.Lng},
		FormattedAddress:  first.FormattedAddress,
		AddressComponents: first.AddressComponents,
	}, nil
}

// NearbySearch lists places of one type within a radius.
func (g *GoogleClient) NearbySearch(ctx context.Context, req NearbyRequest) ([]Place, error) {
	params := url.Values{}
	params.Set("location", formatLatLng(req.Location))
	params.Set("radius", strconv.Itoa(req.Radius))
	params.Set("type", req.Type)
	params.Set("key", g.apiKey)

	var payload nearbyResponse
	if err := g.get(ctx, "/place/nearbysearch/json", params, &payload); err != nil {
		return nil, err
	}

	switch payload.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, fmt.Errorf("nearby search %s failed: %s", req.Type, payload.Status)
	}

	places := make([]Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		name := r.Name
		if name == "" {
			name = "Unknown"
		}
		places = append(places, Place{
			Name:     name,
			Location: domain.Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		})
	}
	return places, nil
}

func (g *GoogleClient) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s%s?%s", g.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := g.client().Do(req)
	if err != nil {
		g.log.Error("google maps request failed", "error", err, "path", path)
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		g.log.UpstreamError("google-maps", resp.StatusCode, nil)
		return fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		g.log.Error("failed to decode google maps payload", "error", err, "path", path)
		return err
	}
	return nil
}

func formatLatLng(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

var _ Provider = (*GoogleClient)(nil)
