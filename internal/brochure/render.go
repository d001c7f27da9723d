package brochure

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"
	"time"

	"property_brochure_backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var brochureTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const galleryLimit = 4

var inlineImage = regexp.MustCompile(`^data:image/(jpeg|png|webp)[;,]`)

type detailView struct {
	Label string
	Value string
}

type epcView struct {
	Rating     string
	Color      template.CSS
	Efficiency string
	CO2        string
	ValidUntil string
}

type transportView struct {
	Name        string
	Type        string
	Distance    string
	WalkingTime string
}

type brochureView struct {
	Brand      string
	BrandUpper string
	Address    string
	Postcode   string
	Details    []detailView
	EPC        *epcView

	Gallery    []template.URL
	MorePhotos int

	Description         string
	KeyFeatures         []string
	MarketAnalysis      string
	TargetBuyer         string
	InvestmentPotential string
	AdditionalInfo      string

	MapURL    string
	Transport []transportView

	Agent       domain.Agent
	AgentQR     template.URL
	GeneratedOn string
	Year        int
}

// HTMLRenderer turns BrochureData into a self-contained HTML document.
// All user-supplied text is escaped by html/template.
type HTMLRenderer struct {
	brand string
	qr    func(content string) (template.URL, error)
}

func NewHTMLRenderer(brand string) *HTMLRenderer {
	return &HTMLRenderer{brand: brand, qr: qrDataURL}
}

// Render executes the brochure template.
func (r *HTMLRenderer) Render(data domain.BrochureData) (string, error) {
	view := r.buildView(data)
	if data.Agent.Email != "" {
		qr, err := r.qr("mailto:" + data.Agent.Email)
		if err != nil {
			return "", fmt.Errorf("agent qr code: %w", err)
		}
		view.AgentQR = qr
	}

	var buf bytes.Buffer
	if err := brochureTemplate.ExecuteTemplate(&buf, "brochure", view); err != nil {
		return "", fmt.Errorf("execute brochure template: %w", err)
	}
	return buf.String(), nil
}

func (r *HTMLRenderer) buildView(data domain.BrochureData) brochureView {
	generatedAt := data.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	p := data.Property

	view := brochureView{
		Brand:          r.brand,
		BrandUpper:     strings.ToUpper(r.brand),
		Address:        p.Address,
		Postcode:       p.Postcode,
		Details:        details(p),
		AdditionalInfo: strings.TrimSpace(p.Description),
		Agent:          data.Agent,
		GeneratedOn:    generatedAt.Format("02/01/2006"),
		Year:           generatedAt.Year(),
	}

	if photos := renderablePhotos(data.Photos); len(photos) > 0 {
		n := min(len(photos), galleryLimit)
		view.Gallery = photos[:n]
		view.MorePhotos = len(photos) - n
	}

	if ai := data.AIEnhanced; ai != nil {
		view.Description = strings.TrimSpace(ai.EnhancedDescription)
		view.KeyFeatures = nonEmpty(ai.KeyFeatures)
		view.MarketAnalysis = strings.TrimSpace(ai.MarketAnalysis)
		view.TargetBuyer = strings.TrimSpace(ai.TargetBuyer)
		view.InvestmentPotential = strings.TrimSpace(ai.InvestmentPotential)
	}
	if len(view.KeyFeatures) == 0 {
		view.KeyFeatures = nonEmpty(p.Features)
	}

	if m := data.GoogleMapsData; m != nil {
		view.MapURL = m.StaticMapURL
		for _, link := range m.NearbyTransport {
			view.Transport = append(view.Transport, transportView{
				Name:        link.Name,
				Type:        string(link.Type),
				Distance:    link.Distance,
				WalkingTime: link.WalkingTime,
			})
		}
	}

	if e := data.EpcData; e != nil && e.CurrentEnergyRating != "" {
		view.EPC = &epcView{
			Rating:     strings.ToUpper(e.CurrentEnergyRating),
			Color:      template.CSS(RatingColor(e.CurrentEnergyRating)),
			Efficiency: e.CurrentEnergyEfficiency,
			CO2:        e.CO2EmissionsCurrent,
			ValidUntil: validUntil(e.LodgementDate),
		}
	}

	return view
}

// renderablePhotos keeps http(s) URLs and inline JPEG, PNG or WebP images.
// Anything else, mock:// keys from unbacked uploads included, is dropped so
// the gallery never shows a broken image.
func renderablePhotos(photos []string) []template.URL {
	var out []template.URL
	for _, photo := range photos {
		photo = strings.TrimSpace(photo)
		lower := strings.ToLower(photo)
		switch {
		case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"):
		case inlineImage.MatchString(lower):
		default:
			continue
		}
		out = append(out, template.URL(photo))
	}
	return out
}

func details(p domain.Property) []detailView {
	out := []detailView{{Label: "Property Type", Value: p.PropertyType}}
	if p.Bedrooms != nil && *p.Bedrooms > 0 {
		out = append(out, detailView{Label: "Bedrooms", Value: strconv.Itoa(*p.Bedrooms)})
	}
	if p.Bathrooms != nil && *p.Bathrooms > 0 {
		out = append(out, detailView{Label: "Bathrooms", Value: strconv.Itoa(*p.Bathrooms)})
	}
	if size := strings.TrimSpace(p.Size); size != "" && size != "0" {
		out = append(out, detailView{Label: "Size", Value: size + " sq ft"})
	}
	if p.Price != nil && *p.Price > 0 {
		out = append(out, detailView{Label: "Price", Value: domain.FormatGBP(*p.Price)})
	}
	return out
}

// RatingColor maps an EPC band to its badge colour.
func RatingColor(rating string) string {
	switch strings.ToUpper(strings.TrimSpace(rating)) {
	case "A":
		return "#00a651"
	case "B":
		return "#5cb85c"
	case "C":
		return "#f0ad4e"
	case "D":
		return "#ff9500"
	case "E":
		return "#f0ad4e"
	case "F", "G":
		return "#d9534f"
	default:
		return "#6c757d"
	}
}

// validUntil is the lodgement year plus ten, or "" when the date is unreadable.
func validUntil(lodgement string) string {
	lodgement = strings.TrimSpace(lodgement)
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, lodgement); err == nil {
			return strconv.Itoa(t.Year() + 10)
		}
	}
	return ""
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
