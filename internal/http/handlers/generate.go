package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"fantasy-logo-studio/internal/domain"
	"fantasy-logo-studio/internal/logging"
)

var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Used by the Team struct tags: a 6-hex-digit color, leading "#" optional.
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})
	return v
}

// GenerateRequest is the payload of POST /api/generate-logo.
type GenerateRequest struct {
	Team domain.Team `json:"team" validate:"required"`
}

// GenerateResponse carries the produced image reference.
type GenerateResponse struct {
	URL string `json:"url"`
}

// GenerateLogo validates the submitted team, normalizes its colors, and
// delegates to the configured image provider.
func (h *Handler) GenerateLogo(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)

	var req GenerateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		logging.Warn(logger, "failed to decode generate request", logging.Err(err))
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err), h.logger)
		return
	}

	team := req.Team
	team.Primary = normalizeColor(team.Primary)
	team.Secondary = normalizeColor(team.Secondary)

	url, err := h.svc.Generate(r.Context(), team)
	if err != nil {
		// Upstream provider trouble, not a client mistake.
		logging.Warn(logger, "logo generation failed",
			slog.String("team_id", team.ID), logging.Err(err))
		writeError(w, r, http.StatusBadGateway, err.Error(), h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, GenerateResponse{URL: url})
}

func normalizeColor(c string) string {
	if strings.HasPrefix(c, "#") {
		return c
	}
	return "#" + c
}

func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request"
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		switch fe.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field '%s' is required", field))
		case "hexcolor6":
			msgs = append(msgs, fmt.Sprintf("field '%s' must be a 6-digit hex color", field))
		default:
			msgs = append(msgs, fmt.Sprintf("field '%s' is not valid", field))
		}
	}
	return strings.Join(msgs, ", ")
}
