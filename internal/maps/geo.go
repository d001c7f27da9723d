package maps

import (
	"fmt"
	"math"

	"property_brochure_backend/internal/domain"
)

const (
	earthRadiusMeters = 6371000.0
	walkingSpeedMps   = 1.4
)

// DistanceMeters is the haversine distance between two points.
func DistanceMeters(a, b domain.Coordinates) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FormatDistance renders "<N>m" under a kilometre and "<N.N>km" above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}

// EstimateWalkingTime assumes 1.4 m/s and rounds to whole minutes.
func EstimateWalkingTime(meters float64) string {
	minutes := int(math.Round(meters / walkingSpeedMps / 60))
	switch {
	case minutes < 1:
		return "< 1 min"
	case minutes == 1:
		return "1 min"
	default:
		return fmt.Sprintf("%d mins", minutes)
	}
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}
