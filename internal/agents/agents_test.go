package agents

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

func TestEmbeddedDirectoryHasThreeAgents(t *testing.T) {
	dir, err := LoadDirectory("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	list := dir.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 agents, got %d", len(list))
	}
	sarah, err := dir.Get("1")
	if err != nil || sarah.Name != "Sarah Johnson" || sarah.Phone != "+44 20 7123 4567" {
		t.Fatalf("unexpected agent %#v (%v)", sarah, err)
	}
}

func TestGetUnknownAgentIsNotFound(t *testing.T) {
	dir, _ := LoadDirectory("")
	if _, err := dir.Get("99"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestParseDirectoryRejectsDuplicates(t *testing.T) {
	data := []byte("agents:\n  - {id: a, name: A, email: a@x.io}\n  - {id: a, name: B, email: b@x.io}\n")
	if _, err := ParseDirectory(data); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestLoadDirectoryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.yaml")
	content := "agents:\n  - id: x\n    name: Pat Doe\n    email: pat@example.com\n    phone: \"023 8082 0900\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	dir, err := LoadDirectory(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	agent, _ := dir.Get("x")
	if agent.Phone != "+44 23 8082 0900" {
		t.Fatalf("expected international phone, got %q", agent.Phone)
	}
}

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	module, err := NewModule(&config.Config{}, logger.Discard())
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	engine := gin.New()
	module.RegisterRoutes(&apphttp.RouterContext{Engine: engine, V1: engine.Group("/api/v1")})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/agents/2", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Michael Thompson") {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/agents/42", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
