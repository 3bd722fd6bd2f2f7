package controllers

import (
	"log/slog"
	"net/http"

	"partyplanner/internal/delivery/http/helpers"
	"partyplanner/internal/domain"
)

// ListContactsSuccessResponse is the success response envelope for GET /contacts (200).
type ListContactsSuccessResponse struct {
	Data  []*domain.Contact `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// ListContacts godoc
// @Summary List contacts
// @Description Returns contacts that can be invited. The source (static list, contact store, or assistant-written query) is chosen at startup.
// @Tags contacts
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListContactsSuccessResponse
// @Failure 502 {object} helpers.APIResponse "error.code: bad_model_output, upstream_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contacts [get]
func (c *ContactController) ListContacts(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	contacts, err := c.Service.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if contacts == nil {
		contacts = []*domain.Contact{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, contacts)
}
