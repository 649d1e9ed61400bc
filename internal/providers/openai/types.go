package openai

// Name identifies this provider in logs and metrics.
const Name = "openai"

type imageRequest struct {
	Model      string `json:"model"`
	Prompt     string `json:"prompt"`
	Size       string `json:"size"`
	N          int    `json:"n"`
	Background string `json:"background"`
}

type imageResponse struct {
	Data []imageData `json:"data"`
}

type imageData struct {
	URL     string `json:"url"`
	B64JSON string `json:"b64_json"`
}
