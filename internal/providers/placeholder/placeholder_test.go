package placeholder

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"fantasy-logo-studio/internal/domain"
)

func TestGenerateReturnsSVGDataURI(t *testing.T) {
	team := domain.Team{
		ID:        "1",
		Name:      "Sharks",
		Owner:     "Alex",
		Mascot:    "Fox",
		Primary:   "#ddcd3c",
		Secondary: "#7d365f",
		Seed:      0,
	}

	result, err := New().Generate(context.Background(), team)
	if err != nil {
		t.Fatalf("placeholder must never fail, got %v", err)
	}
	if !strings.HasPrefix(result.URL, "data:image/svg+xml") {
		t.Fatalf("expected svg data URI, got %s", result.URL)
	}

	payload := strings.TrimPrefix(result.URL, "data:image/svg+xml;charset=utf-8,")
	svg, err := url.PathUnescape(payload)
	if err != nil {
		t.Fatalf("unescaping svg payload: %v", err)
	}
	for _, want := range []string{"#ddcd3c", "#7d365f", ">Fox<"} {
		if !strings.Contains(svg, want) {
			t.Fatalf("svg missing %q:\n%s", want, svg)
		}
	}
}

func TestGenerateTruncatesLongMascots(t *testing.T) {
	team := domain.Team{
		ID:        "1",
		Name:      "Sharks",
		Owner:     "Alex",
		Mascot:    "An Extremely Long Mascot Name",
		Primary:   "#ddcd3c",
		Secondary: "#7d365f",
	}

	result, err := New().Generate(context.Background(), team)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svg, err := url.PathUnescape(strings.TrimPrefix(result.URL, "data:image/svg+xml;charset=utf-8,"))
	if err != nil {
		t.Fatalf("unescaping svg payload: %v", err)
	}
	if !strings.Contains(svg, ">An Extremely Long <") {
		t.Fatalf("expected mascot label capped at 18 chars:\n%s", svg)
	}
	if strings.Contains(svg, "An Extremely Long Mascot Name") {
		t.Fatal("mascot label was not truncated")
	}
}

func TestGenerateHandlesEmptyMascot(t *testing.T) {
	result, err := New().Generate(context.Background(), domain.Team{
		ID: "1", Name: "X", Owner: "Y", Primary: "#000000", Secondary: "#ffffff",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(result.URL, "data:image/svg+xml") {
		t.Fatalf("expected svg data URI, got %s", result.URL)
	}
}
