package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

func TestNewHTTPServer_MemoryBackend(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:           ":0",
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		StatsRecentWindow:  5,
		ScoutingWorkers:    2,
	}

	srv, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	defer srv.Close()

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues/esp-liga-endesa-2025/teams/1/overview", nil)
	rec := httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	first, ok := srv.CacheStats()
	if !ok {
		t.Fatalf("expected cache stats with cache enabled")
	}
	if first.Misses == 0 || first.Entries == 0 {
		t.Fatalf("expected the first overview to fill the cache, got %+v", first)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/leagues/esp-liga-endesa-2025/teams/1/overview", nil)
	rec = httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	second, _ := srv.CacheStats()
	if second.Hits <= first.Hits || second.Misses != first.Misses {
		t.Fatalf("expected repeat overview served from cache: first=%+v second=%+v", first, second)
	}

	req = httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec = httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected docs disabled, got %d", rec.Code)
	}
}

func TestNewHTTPServer_CacheDisabled(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:          ":0",
		StatsRecentWindow: 5,
		ScoutingWorkers:   2,
	}

	srv, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	if _, ok := srv.CacheStats(); ok {
		t.Fatalf("expected no cache stats with cache disabled")
	}
	if err := srv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	if _, err := NewHTTPServer(context.Background(), config.Config{}, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
