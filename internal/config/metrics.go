package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `env:"METRICS_ENABLED" env-default:"true"`
	Port         string `env:"METRICS_PORT" env-default:"9090"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" env-default:"fantasy-logo-studio"`
	OtlpEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	OtlpInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" env-default:"true"`
}
