package server

import (
	"log/slog"

	"fantasy-logo-studio/internal/config"
	"fantasy-logo-studio/internal/logging"
	"fantasy-logo-studio/internal/metrics"
	"fantasy-logo-studio/internal/providers"
	"fantasy-logo-studio/internal/providers/openai"
	"fantasy-logo-studio/internal/providers/placeholder"
)

// providerFactory assembles the image provider with the shared logging and
// metrics wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ImageProvider {
	base, name := selectProvider(cfg, f.logger)
	return providers.NewLoggingProvider(base, f.logger, f.metrics, name)
}

// selectProvider picks the backend by credential presence: with an API key
// the remote image API is used, otherwise logos are local placeholder SVGs.
// Deterministic for a given configuration.
func selectProvider(cfg config.Config, logger *slog.Logger) (providers.ImageProvider, string) {
	if cfg.OpenAI.APIKey != "" {
		logging.Info(logger, "using remote image provider",
			slog.String(logging.FieldProvider, openai.Name))
		return openai.NewClient(openai.Config{
			BaseURL: cfg.OpenAI.BaseURL,
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
		}), openai.Name
	}

	logging.Info(logger, "no image API credential, falling back to placeholder logos",
		slog.String(logging.FieldProvider, placeholder.Name))
	return placeholder.New(), placeholder.Name
}
