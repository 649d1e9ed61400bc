package config

// SleeperConfig controls how we talk to the Sleeper league API.
type SleeperConfig struct {
	BaseURL string `env:"SLEEPER_BASE_URL" env-default:"https://api.sleeper.app"`
}
