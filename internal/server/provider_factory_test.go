package server

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"fantasy-logo-studio/internal/config"
	"fantasy-logo-studio/internal/metrics"
)

func testConfig() config.Config {
	return config.Config{
		Port: "0",
		OpenAI: config.OpenAIConfig{
			BaseURL: "https://api.openai.example",
			Model:   "gpt-image-1",
		},
		Sleeper: config.SleeperConfig{BaseURL: "https://api.sleeper.example"},
	}
}

func TestSelectProviderFallsBackToPlaceholder(t *testing.T) {
	cfg := testConfig()
	provider, name := selectProvider(cfg, nil)
	if provider == nil {
		t.Fatal("expected a provider")
	}
	if name != "placeholder" {
		t.Fatalf("expected placeholder provider, got %q", name)
	}

	res, err := provider.Generate(context.Background(), sampleTeamForTest())
	if err != nil {
		t.Fatalf("placeholder generation failed: %v", err)
	}
	if !strings.HasPrefix(res.URL, "data:image/svg+xml") {
		t.Fatalf("expected inline SVG, got %q", res.URL)
	}
}

func TestSelectProviderUsesRemoteWithCredential(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAI.APIKey = "sk-test"

	provider, name := selectProvider(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if provider == nil {
		t.Fatal("expected a provider")
	}
	if name != "openai" {
		t.Fatalf("expected openai provider, got %q", name)
	}
}

func TestFactoryWrapsWithLogging(t *testing.T) {
	cfg := testConfig()
	factory := newProviderFactory(slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NewRecorder())

	provider := factory.build(cfg)
	if provider == nil {
		t.Fatal("expected a wrapped provider")
	}
}
