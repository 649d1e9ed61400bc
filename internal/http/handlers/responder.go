package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"fantasy-logo-studio/internal/logging"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}

// writeError emits the error contract of the API: a plain-text message with
// the given status. The request ID still travels on the X-Request-ID header.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, fallback *slog.Logger) {
	logger := logging.FromContext(r.Context(), fallback)
	if logger != nil && status >= http.StatusInternalServerError {
		logger.Error("request failed", slog.Int(logging.FieldStatusCode, status), slog.String("message", message))
	}
	http.Error(w, message, status)
}
