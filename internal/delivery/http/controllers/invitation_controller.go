package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"partyplanner/internal/delivery/http/helpers"
	"partyplanner/internal/delivery/http/middleware"
	"partyplanner/internal/domain"
)

// SendInvitesRequest is the request body for POST /send-invites.
// Theme is optional; when empty it is read from the plan's "Party Plan for <theme>:" heading.
type SendInvitesRequest struct {
	Plans    string         `json:"plans"`
	DateTime string         `json:"dateTime"`
	Theme    string         `json:"theme,omitempty"`
	Guests   []GuestRequest `json:"guests"`
}

// Validate implements Validator.
func (s SendInvitesRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Plans) == "" {
		errs = append(errs, "plans is required")
	}
	if strings.TrimSpace(s.DateTime) == "" {
		errs = append(errs, "dateTime is required")
	}
	return append(errs, validateGuests(s.Guests, true)...)
}

// SendInvitesSuccessResponse is the success response envelope for POST /send-invites (200).
type SendInvitesSuccessResponse struct {
	Data  *domain.InvitationResult `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// SendInvites godoc
// @Summary Send party invitations
// @Description Sends one invitation email per guest from the host address, with the plan as the body and a subject naming the theme and date. Returns a per-guest delivery report; when every delivery fails the report is returned with error.code delivery_failed.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invites body SendInvitesRequest true "Plan, date/time and guests"
// @Success 200 {object} controllers.SendInvitesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (only when invite auth is enabled)"
// @Failure 502 {object} helpers.APIResponse "error.code: delivery_failed, upstream_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /send-invites [post]
func (c *InvitationController) SendInvites(w http.ResponseWriter, r *http.Request) {
	var req SendInvitesRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if subject, ok := middleware.SubjectFromContext(r.Context()); ok {
		c.Logger.InfoContext(r.Context(), "sending invitations", "subject", subject, "guests", len(req.Guests))
	}
	result, err := c.Service.SendInvitations(r.Context(), domain.InvitationRequest{
		Plan:     req.Plans,
		DateTime: strings.TrimSpace(req.DateTime),
		Theme:    strings.TrimSpace(req.Theme),
		Guests:   toGuests(req.Guests),
	})
	if err != nil {
		if result != nil && errors.Is(err, domain.ErrNoInvitationsSent) {
			status, code := helpers.ErrorStatus(err)
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONResult(w, status, result, code, err.Error())
			return
		}
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
