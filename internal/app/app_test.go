package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/team-registry/internal/config"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		SeedDemoData:       true,
		ReportWorkers:      2,
		ImportWorkers:      2,
		MetricsEnabled:     true,
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewHTTPServer_ServesSeededRegistry(t *testing.T) {
	srv, err := NewHTTPServer(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/1/captain", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected seeded captain lookup to succeed, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"playerId":11`) {
		t.Fatalf("expected seeded captain 11, got %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Fatalf("expected metrics exposition, got %d", rec.Code)
	}
}

func TestNewHTTPServer_MetricsDisabledAndEmptyRegistry(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	cfg.SeedDemoData = false
	cfg.CacheEnabled = false

	srv, err := NewHTTPServer(cfg, nil)
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected /metrics to be absent, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/1", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected unknown team, got %d", rec.Code)
	}
}
