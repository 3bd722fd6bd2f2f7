package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"partyplanner/internal/delivery/http/helpers"
	"partyplanner/internal/domain"
)

// GuestRequest is a guest in a request body. ID is accepted so contacts can be posted back as returned.
type GuestRequest struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func validateGuests(guests []GuestRequest, required bool) []string {
	var errs []string
	if required && len(guests) == 0 {
		errs = append(errs, "guests must contain at least one guest")
	}
	for i, g := range guests {
		if strings.TrimSpace(g.Email) == "" {
			errs = append(errs, fmt.Sprintf("guests[%d].email is required", i))
		} else if !emailRegex.MatchString(g.Email) {
			errs = append(errs, fmt.Sprintf("guests[%d].email is invalid", i))
		}
	}
	return errs
}

func toGuests(in []GuestRequest) []domain.Guest {
	out := make([]domain.Guest, len(in))
	for i, g := range in {
		out[i] = domain.Guest{Name: strings.TrimSpace(g.Name), Email: strings.TrimSpace(g.Email)}
	}
	return out
}

// CreatePlanRequest is the request body for POST /party-plans.
type CreatePlanRequest struct {
	Theme  string         `json:"theme"`
	Guests []GuestRequest `json:"guests"`
}

// Validate implements Validator.
func (c CreatePlanRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Theme) == "" {
		errs = append(errs, "theme is required")
	}
	return append(errs, validateGuests(c.Guests, false)...)
}

// ListThemesSuccessResponse is the success response envelope for GET /themes (200).
type ListThemesSuccessResponse struct {
	Data  []domain.Theme    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreatePlanSuccessResponse is the success response envelope for POST /party-plans (200).
type CreatePlanSuccessResponse struct {
	Data  *domain.PartyPlan `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type PartyController struct {
	Logger  *slog.Logger
	Service domain.PartyService
}

func NewPartyController(logger *slog.Logger, svc domain.PartyService) *PartyController {
	return &PartyController{
		Logger:  logger,
		Service: svc,
	}
}

// ListThemes godoc
// @Summary Generate party themes
// @Description Asks the language model for ten party themes. Without query parameters the party is for all ages and mixed company.
// @Tags party
// @Produce json
// @Param age_groups query []string false "Age groups, repeatable or comma separated (e.g. kids,adults)" collectionFormat(multi)
// @Param exclusivity query string false "Guys only, Girls only or Mixed (default Mixed)"
// @Success 200 {object} controllers.ListThemesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_model_output, upstream_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /themes [get]
func (c *PartyController) ListThemes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var ageGroups []string
	for _, v := range q["age_groups"] {
		for _, g := range strings.Split(v, ",") {
			if g = strings.TrimSpace(g); g != "" {
				ageGroups = append(ageGroups, g)
			}
		}
	}
	exclusivity := domain.ExclusivityMixed
	if s := strings.TrimSpace(q.Get("exclusivity")); s != "" {
		exclusivity = domain.Exclusivity(s)
		if !exclusivity.Valid() {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest,
				fmt.Sprintf("exclusivity must be one of %q, %q, %q", domain.ExclusivityGuysOnly, domain.ExclusivityGirlsOnly, domain.ExclusivityMixed))
			return
		}
	}

	themes, err := c.Service.GenerateThemes(r.Context(), ageGroups, exclusivity)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, themes)
}

// CreatePlan godoc
// @Summary Generate a party plan
// @Description Asks the language model for a plan for the theme and guests. The plan text is returned verbatim.
// @Tags party
// @Accept json
// @Produce json
// @Param plan body CreatePlanRequest true "Theme and guests"
// @Success 200 {object} controllers.CreatePlanSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_model_output, upstream_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /party-plans [post]
func (c *PartyController) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	plan, err := c.Service.GeneratePlan(r.Context(), strings.TrimSpace(req.Theme), toGuests(req.Guests))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, plan)
}
