package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecordProviderAttempt(t *testing.T) {
	rec := NewRecorder()

	rec.RecordProviderAttempt("openai", 120*time.Millisecond, nil)
	rec.RecordProviderAttempt("openai", 80*time.Millisecond, errors.New("boom"))
	rec.RecordProviderAttempt("placeholder", time.Millisecond, nil)

	if got := rec.ProviderCalls("openai"); got != 2 {
		t.Fatalf("expected 2 openai calls, got %d", got)
	}
	if got := rec.ProviderErrors("openai"); got != 1 {
		t.Fatalf("expected 1 openai error, got %d", got)
	}
	if got := rec.LastCallLatency("openai"); got != 80*time.Millisecond {
		t.Fatalf("expected last latency 80ms, got %v", got)
	}
	if got := rec.ProviderCalls("placeholder"); got != 1 {
		t.Fatalf("expected 1 placeholder call, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("openai", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if rec.ProviderCalls("openai") != 0 {
		t.Fatal("nil recorder should report zero stats")
	}
}

func TestSetupDisabledReturnsRecorderOnly(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder even when telemetry disabled")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown should be a no-op: %v", err)
	}
}

func TestSetupEnabledBuildsPromHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		_ = shutdown(context.Background())
	}()

	if rec == nil || handler == nil {
		t.Fatal("expected recorder and prometheus handler")
	}

	// Instrumented path should flow through without panics.
	rec.RecordHTTPRequest("POST", "/api/generate-logo", 200, 5*time.Millisecond)
	rec.RecordProviderAttempt("placeholder", time.Millisecond, nil)
}
