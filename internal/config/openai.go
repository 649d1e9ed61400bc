package config

// OpenAIConfig controls how we talk to the image-generation API. Presence of
// the API key is what selects the remote provider; with no key the service
// falls back to local placeholder logos.
type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY" env-default:""`
	BaseURL string `env:"OPENAI_BASE_URL" env-default:"https://api.openai.com"`
	Model   string `env:"OPENAI_MODEL" env-default:"gpt-image-1"`
}
