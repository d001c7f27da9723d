package brochure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/internal/enhance"
	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/internal/maps"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/outcome"
	"property_brochure_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePDF struct {
	html string
	err  error
}

func (f *fakePDF) Render(_ context.Context, html string) ([]byte, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeAgents map[string]domain.Agent

func (f fakeAgents) Get(id string) (domain.Agent, error) {
	a, ok := f[id]
	if !ok {
		return domain.Agent{}, apperr.NotFound("Agent not found")
	}
	return a, nil
}

type fakeEPC struct {
	certs []domain.EpcData
	err   error
}

func (f fakeEPC) Search(context.Context, string, string) (outcome.Result[[]domain.EpcData], error) {
	if f.err != nil {
		return outcome.Result[[]domain.EpcData]{}, f.err
	}
	return outcome.Complete(f.certs), nil
}

type fakeLocator struct {
	res outcome.Result[maps.Location]
	err error
}

func (f fakeLocator) Locate(context.Context, string) (outcome.Result[maps.Location], error) {
	return f.res, f.err
}

type fakeEnhancer struct {
	err error
}

func (f fakeEnhancer) Enhance(_ context.Context, req enhance.Request) (outcome.Result[domain.AIEnhancedData], error) {
	if f.err != nil {
		return outcome.Result[domain.AIEnhancedData]{}, f.err
	}
	return outcome.Complete(domain.AIEnhancedData{
		EnhancedDescription: "Bright home at " + req.Address,
		KeyFeatures:         []string{"Garden"},
	}), nil
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func sampleData() domain.BrochureData {
	return Assemble(domain.Property{
		Address:      "10 Downing Street, London",
		Postcode:     "SW1A 2AA",
		PropertyType: "Terraced",
		Bedrooms:     intPtr(3),
		Price:        floatPtr(450000),
	}, domain.Agent{Name: "Jane Smith", Email: "jane@example.com", Phone: "+44 20 7123 4567"}, nil, nil, nil, nil)
}

func newTestEngine(deps Deps) *gin.Engine {
	if deps.HTML == nil {
		deps.HTML = NewHTMLRenderer("Vail Williams")
	}
	svc := NewService(deps, logger.Discard())
	m := &Module{service: svc, handler: NewHandler(svc, validator.New())}
	engine := gin.New()
	m.RegisterRoutes(&apphttp.RouterContext{Engine: engine, V1: engine.Group("/api/v1")})
	return engine
}

func postJSON(engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func validGenerateBody(format string) map[string]any {
	return map[string]any{
		"property": map[string]any{
			"address":      "10 Downing Street, London",
			"postcode":     "SW1A 2AA",
			"propertyType": "Terraced",
			"price":        450000,
		},
		"agent":  map[string]any{"name": "Jane Smith", "email": "jane@example.com", "phone": "020 7123 4567"},
		"format": format,
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	html, err := NewHTMLRenderer("Vail Williams").Render(sampleData())
	require.NoError(t, err)

	assert.Contains(t, html, "£450,000")
	assert.Contains(t, html, "Bedrooms")
	assert.NotContains(t, html, "Bathrooms")
	for _, header := range []string{"Property Gallery", "Property Description", "Key Features", "Market Analysis", "Target Buyer", "Investment Potential", "Additional Information", "Transport Links", "Energy Performance"} {
		assert.NotContains(t, html, header)
	}
	assert.Contains(t, html, "data:image/png;base64,")
}

func TestRenderGalleryAndEnergyBlock(t *testing.T) {
	data := sampleData()
	data.Photos = []string{
		"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg", "https://cdn.example.com/c.jpg",
		"https://cdn.example.com/d.jpg", "https://cdn.example.com/e.jpg", "https://cdn.example.com/f.jpg",
	}
	data.EpcData = &domain.EpcData{CurrentEnergyRating: "c", CurrentEnergyEfficiency: "72", CO2EmissionsCurrent: "2.1", LodgementDate: "2019-05-14"}

	html, err := NewHTMLRenderer("Vail Williams").Render(data)
	require.NoError(t, err)

	assert.Contains(t, html, "Property Gallery")
	assert.Contains(t, html, "+2 more photos available")
	assert.NotContains(t, html, "e.jpg")
	assert.Contains(t, html, "Energy Performance")
	assert.Contains(t, html, "Valid until: 2029")
}

func TestRenderGalleryKeepsInlineImagesAndDropsUnrenderable(t *testing.T) {
	data := sampleData()
	data.Photos = []string{
		"mock://photos/front-door_abcd1234.jpg",
		"data:image/jpeg;base64,/9j/AAAA",
		"https://cdn.example.com/p.jpg",
		"javascript:alert(1)",
		"data:text/html;base64,PHNjcmlwdD4=",
	}

	html, err := NewHTMLRenderer("Vail Williams").Render(data)
	require.NoError(t, err)

	assert.Contains(t, html, `<img src="data:image/jpeg;base64,/9j/AAAA"`)
	assert.Contains(t, html, `<img src="https://cdn.example.com/p.jpg"`)
	assert.NotContains(t, html, "#ZgotmplZ")
	assert.NotContains(t, html, "mock://")
	assert.NotContains(t, html, "data:text/html")
	assert.NotContains(t, html, "more photos available")
}

func TestRenderOmitsGalleryWhenNoPhotoRenders(t *testing.T) {
	data := sampleData()
	data.Photos = []string{"mock://photos/a_12345678.jpg", "mock://photos/b_12345678.png"}

	html, err := NewHTMLRenderer("Vail Williams").Render(data)
	require.NoError(t, err)

	assert.NotContains(t, html, "Property Gallery")
}

func TestRenderEscapesUserText(t *testing.T) {
	data := sampleData()
	data.Property.Description = `<script>alert("x")</script>`

	html, err := NewHTMLRenderer("Vail Williams").Render(data)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRatingColorAndValidUntil(t *testing.T) {
	assert.Equal(t, "#00a651", RatingColor("a"))
	assert.Equal(t, "#d9534f", RatingColor("G"))
	assert.Equal(t, "#6c757d", RatingColor(""))
	assert.Equal(t, "2031", validUntil("2021-03-01"))
	assert.Equal(t, "", validUntil("not a date"))
}

func TestGeneratePDFSetsDownloadHeaders(t *testing.T) {
	renderer := &fakePDF{}
	engine := newTestEngine(Deps{PDF: renderer})

	rec := postJSON(engine, "/api/v1/brochure/generate", validGenerateBody(""))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="property-brochure-SW1A-2AA.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
	assert.Contains(t, renderer.html, "+44 20 7123 4567")
}

func TestGenerateRenderFailureIs500(t *testing.T) {
	engine := newTestEngine(Deps{PDF: &fakePDF{err: errors.New("chrome crashed")}})

	rec := postJSON(engine, "/api/v1/brochure/generate", validGenerateBody("pdf"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to generate brochure"}`, rec.Body.String())
}

func TestGenerateHTMLFormat(t *testing.T) {
	engine := newTestEngine(Deps{PDF: &fakePDF{}})

	rec := postJSON(engine, "/api/v1/brochure/generate", validGenerateBody("html"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body HTMLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "SW1A 2AA", body.Data.BrochureData.Property.Postcode)
	assert.Contains(t, body.Data.HTML, "10 Downing Street")
}

func TestGenerateValidation(t *testing.T) {
	engine := newTestEngine(Deps{PDF: &fakePDF{}})

	body := validGenerateBody("docx")
	delete(body["property"].(map[string]any), "postcode")
	rec := postJSON(engine, "/api/v1/brochure/generate", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request data")
}

func TestPreviewReturnsHTML(t *testing.T) {
	engine := newTestEngine(Deps{})

	rec := postJSON(engine, "/api/v1/brochure/preview", validGenerateBody(""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestAssembleUnknownAgentIs404(t *testing.T) {
	engine := newTestEngine(Deps{Agents: fakeAgents{}})

	rec := postJSON(engine, "/api/v1/brochure/assemble", map[string]any{
		"property": map[string]any{"address": "1 High St", "postcode": "AB1 2CD", "propertyType": "Flat"},
		"agentId":  "42",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Agent not found"}`, rec.Body.String())
}

func TestAssembleDegradesEachGatewayIndependently(t *testing.T) {
	svc := NewService(Deps{
		Agents: fakeAgents{"1": {ID: "1", Name: "Jane Smith"}},
		EPC: fakeEPC{certs: []domain.EpcData{
			{Address: "2 High Street, Town", CurrentEnergyRating: "D"},
			{Address: "1 High Street, Town", CurrentEnergyRating: "B"},
		}},
		Locator:  fakeLocator{err: errors.New("geocoder down")},
		Enhancer: fakeEnhancer{},
	}, logger.Discard())

	resp, err := svc.AssembleFromSources(context.Background(), AssembleRequest{
		Property: PropertyInput{Address: "1 High Street, Town", Postcode: "AB1 2CD", PropertyType: "Flat"},
		AgentID:  "1",
		Include:  Include{EPC: true, Maps: true, AI: true},
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, DegradedFlags{Maps: true}, resp.Degraded)
	require.NotNil(t, resp.Data.EpcData)
	assert.Equal(t, "B", resp.Data.EpcData.CurrentEnergyRating)
	assert.Nil(t, resp.Data.GoogleMapsData)
	require.NotNil(t, resp.Data.AIEnhanced)
	assert.Equal(t, "Jane Smith", resp.Data.Agent.Name)
	assert.Equal(t, []string{"maps lookup failed"}, resp.Reasons)
}

func TestAssembleSkipsGatewaysNotIncluded(t *testing.T) {
	svc := NewService(Deps{
		Agents:   fakeAgents{"1": {ID: "1"}},
		EPC:      fakeEPC{err: errors.New("must not be called")},
		Enhancer: fakeEnhancer{err: errors.New("must not be called")},
	}, logger.Discard())

	resp, err := svc.AssembleFromSources(context.Background(), AssembleRequest{
		Property: PropertyInput{Address: "1 High Street", Postcode: "AB1 2CD", PropertyType: "Flat"},
		AgentID:  "1",
	})
	require.NoError(t, err)
	assert.Equal(t, DegradedFlags{}, resp.Degraded)
	assert.Nil(t, resp.Data.EpcData)
	assert.Nil(t, resp.Data.AIEnhanced)
	assert.WithinDuration(t, time.Now(), resp.Data.GeneratedAt, time.Minute)
}

func TestPDFFilenameIsSanitised(t *testing.T) {
	assert.Equal(t, "property-brochure-SW1A-2AA.pdf", pdfFilename("SW1A 2AA"))
	assert.Equal(t, "property-brochure-AB12CD.pdf", pdfFilename("AB1\"2CD\r\n"))
	assert.Equal(t, "property-brochure-property.pdf", pdfFilename(""))
}
