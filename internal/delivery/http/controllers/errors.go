package controllers

import (
	"log/slog"
	"net/http"
	"regexp"

	"partyplanner/internal/delivery/http/helpers"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// writeServiceError logs err and writes the envelope for its sentinel class.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, code := helpers.ErrorStatus(err)
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, status, code, err.Error())
}
