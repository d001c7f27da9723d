// Package client provides the HTTP client for the UK EPC open data API.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/platform/logger"
)

const (
	DefaultBaseURL = "https://epc.opendatacommunities.org/api/v1"
	pageSize       = 50
)

// Category is a certificate register.
type Category string

const (
	Domestic    Category = "domestic"
	NonDomestic Category = "non-domestic"
)

// Client is the HTTP client for the EPC API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// New creates a new EPC API client.
func New(baseURL, apiKey string, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		log:        log,
	}
}

// Search fetches up to 50 certificates for postcode from one register.
func (c *Client) Search(ctx context.Context, category Category, postcode string) ([]domain.EpcData, error) {
	params := url.Values{}
	params.Set("postcode", postcode)
	params.Set("size", fmt.Sprint(pageSize))

	reqURL := fmt.Sprintf("%s/%s/search?%s", c.baseURL, category, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.apiKey+":")))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("epc request failed", "error", err, "category", category)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.UpstreamError("epc-"+string(category), resp.StatusCode, nil)
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var payload apiSearchResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		c.log.Error("epc decode failed", "error", err, "category", category)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	certs := make([]domain.EpcData, 0, len(payload.Rows))
	for _, row := range payload.Rows {
		certs = append(certs, Normalize(row))
	}
	return certs, nil
}

// apiSearchResponse is the raw search payload. Only rows is used.
type apiSearchResponse struct {
	ColumnNames []string         `json:"column-names"`
	Rows        []map[string]any `json:"rows"`
}

// Normalize maps a raw row to EpcData. Each field reads the hyphenated key,
// then the camelCase key, and defaults to "".
func Normalize(row map[string]any) domain.EpcData {
	get := func(hyphenated, camel string) string {
		if v := stringify(row[hyphenated]); v != "" {
			return v
		}
		return stringify(row[camel])
	}
	return domain.EpcData{
		LmkKey:                     get("lmk-key", "lmkKey"),
		Address:                    get("address", "address"),
		Postcode:                   get("postcode", "postcode"),
		CurrentEnergyRating:        get("current-energy-rating", "currentEnergyRating"),
		PotentialEnergyRating:      get("potential-energy-rating", "potentialEnergyRating"),
		CurrentEnergyEfficiency:    get("current-energy-efficiency", "currentEnergyEfficiency"),
		PotentialEnergyEfficiency:  get("potential-energy-efficiency", "potentialEnergyEfficiency"),
		PropertyType:               get("property-type", "propertyType"),
		TotalFloorArea:             get("total-floor-area", "totalFloorArea"),
		EnvironmentalImpactCurrent: get("environmental-impact-current", "environmentalImpactCurrent"),
		CO2EmissionsCurrent:        get("co2-emissions-current", "co2EmissionsCurrent"),
		LodgementDate:              get("lodgement-date", "lodgementDate"),
		TransactionType:            get("transaction-type", "transactionType"),
	}
}

// stringify renders scalar JSON values. Null, false, zero and empty values
// yield "" so the camelCase key gets its turn.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		if f, err := val.Float64(); err == nil && f == 0 {
			return ""
		}
		return val.String()
	case bool:
		if !val {
			return ""
		}
		return "true"
	default:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(val); err != nil {
			return ""
		}
		return strings.TrimSpace(buf.String())
	}
}
