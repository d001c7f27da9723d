package maps

import (
	"net/url"
	"strconv"
	"strings"

	"property_brochure_backend/internal/domain"
)

const staticMapBaseURL = "https://maps.googleapis.com/maps/api/staticmap"

var defaultMapStyles = []string{
	"feature:poi|visibility:off",
	"feature:transit|visibility:off",
	"feature:road|element:labels|visibility:off",
}

// Marker is a pin on a static map.
type Marker struct {
	Location domain.Coordinates
	Color    string
	Label    string
	Size     string // tiny, mid or small
}

// StaticMapOptions tune a static map image. Zero values take defaults.
type StaticMapOptions struct {
	Width   int
	Height  int
	Zoom    int
	MapType string // roadmap, satellite, hybrid or terrain
	Markers []Marker
	Style   string
}

// StaticMapURL builds a Static Maps image URL centred on center.
func StaticMapURL(apiKey string, center domain.Coordinates, opts StaticMapOptions) string {
	if opts.Width == 0 {
		opts.Width = 600
	}
	if opts.Height == 0 {
		opts.Height = 400
	}
	if opts.Zoom == 0 {
		opts.Zoom = 15
	}
	if opts.MapType == "" {
		opts.MapType = "roadmap"
	}

	params := url.Values{}
	params.Set("center", formatLatLng(center))
	params.Set("zoom", strconv.Itoa(opts.Zoom))
	params.Set("size", strconv.Itoa(opts.Width)+"x"+strconv.Itoa(opts.Height))
	params.Set("maptype", opts.MapType)
	params.Set("key", apiKey)

	if len(opts.Markers) == 0 {
		params.Add("markers", "color:red|size:mid|"+formatLatLng(center))
	}
	for _, m := range opts.Markers {
		params.Add("markers", markerParam(m))
	}

	if opts.Style != "" {
		params.Add("style", opts.Style)
	} else {
		for _, rule := range defaultMapStyles {
			params.Add("style", rule)
		}
	}

	return staticMapBaseURL + "?" + params.Encode()
}

func markerParam(m Marker) string {
	parts := make([]string, 0, 4)
	if m.Color != "" {
		parts = append(parts, "color:"+m.Color)
	}
	size := m.Size
	if size == "" {
		size = "mid"
	}
	parts = append(parts, "size:"+size)
	if m.Label != "" {
		parts = append(parts, "label:"+m.Label)
	}
	parts = append(parts, formatLatLng(m.Location))
	return strings.Join(parts, "|")
}
