package providers

import (
	"context"
	"log/slog"
	"time"

	"fantasy-logo-studio/internal/domain"
	"fantasy-logo-studio/internal/metrics"
)

// loggingProvider wraps an ImageProvider with per-call logging and metrics.
type loggingProvider struct {
	next     ImageProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
}

// NewLoggingProvider decorates a provider so every generation attempt is
// logged and recorded against the provider's name.
func NewLoggingProvider(next ImageProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) ImageProvider {
	return &loggingProvider{
		next:     next,
		logger:   logger,
		recorder: recorder,
		name:     name,
	}
}

func (p *loggingProvider) Generate(ctx context.Context, team domain.Team) (Result, error) {
	start := time.Now()
	result, err := p.next.Generate(ctx, team)
	duration := time.Since(start)

	if p.recorder != nil {
		p.recorder.RecordProviderAttempt(p.name, duration, err)
	}

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "logo generation failed",
			slog.String("team_id", team.ID),
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.String("error", err.Error()),
		)
		return Result{}, err
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "logo generated",
		slog.String("team_id", team.ID),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
	return result, nil
}

// logWithProvider emits a log entry if logger is non-nil and always includes provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}
