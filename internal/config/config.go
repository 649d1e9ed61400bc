// Package config loads runtime configuration from the environment.
package config

import "github.com/ilyakaznacheev/cleanenv"

// Config holds runtime configuration for the server. All values are
// environment-sourced and read once at process start.
type Config struct {
	Port    string `env:"PORT" env-default:"4000"`
	Log     LogConfig
	OpenAI  OpenAIConfig
	Sleeper SleeperConfig
	Metrics MetricsConfig
}

// LogConfig controls logger level and output format.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
