// Package domain holds the brochure data model shared by the gateway
// modules. Nothing here is persisted.
package domain

import "time"

// UploadedFile is a photo reference supplied by the client.
type UploadedFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Property is the listing being marketed.
type Property struct {
	ID           string         `json:"id,omitempty"`
	Address      string         `json:"address" validate:"required"`
	Postcode     string         `json:"postcode" validate:"required"`
	PropertyType string         `json:"propertyType" validate:"required"`
	Bedrooms     *int           `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms    *int           `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Size         string         `json:"size,omitempty"`
	Price        *float64       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description  string         `json:"description,omitempty"`
	Photos       []UploadedFile `json:"photos,omitempty"`
	Features     []string       `json:"features,omitempty"`
	Agent        *Agent         `json:"agent,omitempty"`
	CreatedAt    *time.Time     `json:"createdAt,omitempty"`
}

// Agent is static reference data selected by id.
type Agent struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Email      string `json:"email" yaml:"email"`
	Phone      string `json:"phone" yaml:"phone"`
	Title      string `json:"title,omitempty" yaml:"title"`
	Department string `json:"department,omitempty" yaml:"department"`
	Bio        string `json:"bio,omitempty" yaml:"bio"`
	Photo      string `json:"photo,omitempty" yaml:"photo"`
}

// EpcData is one energy certificate. Every field is a string and absent
// upstream values are "".
type EpcData struct {
	LmkKey                     string `json:"lmkKey"`
	Address                    string `json:"address"`
	Postcode                   string `json:"postcode"`
	CurrentEnergyRating        string `json:"currentEnergyRating"`
	PotentialEnergyRating      string `json:"potentialEnergyRating"`
	CurrentEnergyEfficiency    string `json:"currentEnergyEfficiency"`
	PotentialEnergyEfficiency  string `json:"potentialEnergyEfficiency"`
	PropertyType               string `json:"propertyType"`
	TotalFloorArea             string `json:"totalFloorArea"`
	EnvironmentalImpactCurrent string `json:"environmentalImpactCurrent"`
	CO2EmissionsCurrent        string `json:"co2EmissionsCurrent"`
	LodgementDate              string `json:"lodgementDate"`
	TransactionType            string `json:"transactionType"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TransportType classifies a transport link.
type TransportType string

const (
	TransportRail    TransportType = "rail"
	TransportBus     TransportType = "bus"
	TransportTube    TransportType = "tube"
	TransportAirport TransportType = "airport"
)

// TransportLink is a nearby station or stop. DistanceMeters is kept for
// sorting and is not serialised.
type TransportLink struct {
	Name           string        `json:"name"`
	Type           TransportType `json:"type"`
	Distance       string        `json:"distance"`
	WalkingTime    string        `json:"walkingTime,omitempty"`
	Coordinates    Coordinates   `json:"coordinates"`
	DistanceMeters float64       `json:"-"`
}

// GoogleMapsData is the location block of a brochure.
type GoogleMapsData struct {
	Coordinates     Coordinates     `json:"coordinates"`
	StaticMapURL    string          `json:"staticMapUrl"`
	NearbyTransport []TransportLink `json:"nearbyTransport"`
}

// AIEnhancedData is the generated marketing copy.
type AIEnhancedData struct {
	EnhancedDescription string   `json:"enhanced_description"`
	MarketAnalysis      string   `json:"market_analysis"`
	KeyFeatures         []string `json:"key_features"`
	TargetBuyer         string   `json:"target_buyer"`
	InvestmentPotential string   `json:"investment_potential"`
}

// BrochureData is the aggregate rendered into a brochure.
type BrochureData struct {
	Property       Property        `json:"property"`
	Agent          Agent           `json:"agent"`
	Photos         []string        `json:"photos"`
	EpcData        *EpcData        `json:"epcData,omitempty"`
	GoogleMapsData *GoogleMapsData `json:"googleMapsData,omitempty"`
	AIEnhanced     *AIEnhancedData `json:"aiEnhanced,omitempty"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}
