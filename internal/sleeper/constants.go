package sleeper

import "time"

const (
	defaultBaseURL     = "https://api.sleeper.app"
	defaultHTTPTimeout = 10 * time.Second
)
