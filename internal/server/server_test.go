package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fantasy-logo-studio/internal/domain"
	"fantasy-logo-studio/internal/providers"
)

func sampleTeamForTest() domain.Team {
	return domain.Team{
		ID:        "1",
		Name:      "Sharks",
		Owner:     "Alex",
		Mascot:    "Fox",
		Primary:   "#ddcd3c",
		Secondary: "#7d365f",
	}
}

type staticProvider struct{}

func (staticProvider) Generate(ctx context.Context, team domain.Team) (providers.Result, error) {
	_ = ctx
	_ = team
	return providers.Result{URL: "https://img.example/logo.png"}, nil
}

func newTestServerInstance(t *testing.T) *Server {
	t.Helper()
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newServerWithProvider(cfg, logger, staticProvider{})
}

func TestServerWiringServesHealth(t *testing.T) {
	srv := newTestServerInstance(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestServerWiringGenerateUsesInjectedProvider(t *testing.T) {
	srv := newTestServerInstance(t)

	body := `{"team":{"id":"1","name":"Sharks","owner":"Alex","primary":"#ddcd3c","secondary":"#7d365f"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-logo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if got := rr.Body.String(); !strings.Contains(got, "https://img.example/logo.png") {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestServerMetricsDisabledSkipsListener(t *testing.T) {
	srv := newTestServerInstance(t)
	if srv.metricsServer != nil {
		t.Fatal("expected no metrics listener when telemetry is disabled")
	}
}

func TestGracefulShutdownWithStoppedServers(t *testing.T) {
	srv := newTestServerInstance(t)
	// Nothing was started; shutdown must still be safe to call.
	srv.gracefulShutdown()
}
