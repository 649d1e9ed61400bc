package openai

import "time"

const (
	defaultBaseURL     = "https://api.openai.com"
	defaultModel       = "gpt-image-1"
	defaultImageSize   = "1024x1024"
	defaultHTTPTimeout = 60 * time.Second

	imagesPath = "/v1/images"
)
