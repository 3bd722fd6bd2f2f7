package controllers

import (
	"net/http"

	"partyplanner/internal/delivery/http/helpers"
)

// WelcomeMessage is the plain-text body of GET /.
const WelcomeMessage = "Welcome to the Party AI API!"

// HealthResponse is the data of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Welcome godoc
// @Summary Welcome message
// @Tags system
// @Produce plain
// @Success 200 {string} string "Welcome to the Party AI API!"
// @Router / [get]
func Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(WelcomeMessage))
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.status: ok"
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
}
