package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyplanner/internal/delivery/http/helpers"
	"partyplanner/internal/domain"
)

func TestPartyController_ListThemes(t *testing.T) {
	themes := []domain.Theme{{Name: "Luau", Description: "Leis and pineapples"}}

	tests := []struct {
		name            string
		query           string
		wantStatus      int
		wantAgeGroups   []string
		wantExclusivity domain.Exclusivity
		wantCalled      bool
	}{
		{"defaults", "", http.StatusOK, nil, domain.ExclusivityMixed, true},
		{"repeated age groups", "?age_groups=kids&age_groups=adults", http.StatusOK, []string{"kids", "adults"}, domain.ExclusivityMixed, true},
		{"comma separated", "?age_groups=kids,%20teens,&exclusivity=Girls+only", http.StatusOK, []string{"kids", "teens"}, domain.ExclusivityGirlsOnly, true},
		{"invalid exclusivity", "?exclusivity=nobody", http.StatusBadRequest, nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePartyService{themes: themes}
			c := NewPartyController(testLogger, svc)
			rr := httptest.NewRecorder()
			c.ListThemes(rr, httptest.NewRequest(http.MethodGet, "/themes"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, svc.themesCalled)
			if !tt.wantCalled {
				return
			}
			assert.Equal(t, tt.wantAgeGroups, svc.lastAgeGroups)
			assert.Equal(t, tt.wantExclusivity, svc.lastExclusivity)
			var body ListThemesSuccessResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, themes, body.Data)
		})
	}
}

func TestPartyController_ListThemes_BadModelOutput(t *testing.T) {
	svc := &fakePartyService{themesErr: fmt.Errorf("parse themes: %w", domain.ErrMalformedModelOutput)}
	rr := httptest.NewRecorder()
	NewPartyController(testLogger, svc).ListThemes(rr, httptest.NewRequest(http.MethodGet, "/themes", nil))

	require.Equal(t, http.StatusBadGateway, rr.Code)
	var body helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, helpers.ErrCodeBadModelOutput, body.Error.Code)
}

func TestPartyController_CreatePlan(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCalled bool
		wantErrMsg string
	}{
		{
			name:       "valid with contact ids",
			body:       `{"theme":" Luau ","guests":[{"id":1,"name":"R. Alhawash","email":"rafat.hgh@gmail.com"}]}`,
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "no guests",
			body:       `{"theme":"Luau","guests":[]}`,
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "missing theme",
			body:       `{"guests":[]}`,
			wantStatus: http.StatusBadRequest,
			wantErrMsg: "theme is required",
		},
		{
			name:       "bad guest email",
			body:       `{"theme":"Luau","guests":[{"name":"x","email":"not-an-email"}]}`,
			wantStatus: http.StatusBadRequest,
			wantErrMsg: "guests[0].email is invalid",
		},
		{
			name:       "unknown field",
			body:       `{"theme":"Luau","budget":10}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePartyService{plan: &domain.PartyPlan{Theme: "Luau", Text: "Party Plan for Luau:\n..."}}
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/party-plans", strings.NewReader(tt.body))
			NewPartyController(testLogger, svc).CreatePlan(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, svc.planCalled)
			var body helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			if tt.wantStatus != http.StatusOK {
				require.NotNil(t, body.Error)
				assert.Equal(t, helpers.ErrCodeBadRequest, body.Error.Code)
				assert.Contains(t, body.Error.Message, tt.wantErrMsg)
				return
			}
			assert.Equal(t, "Luau", svc.lastTheme)
			assert.Equal(t, map[string]any{"theme": "Luau", "plan": "Party Plan for Luau:\n..."}, body.Data)
		})
	}
}

func TestPartyController_CreatePlan_PassesGuestsInOrder(t *testing.T) {
	svc := &fakePartyService{plan: &domain.PartyPlan{Theme: "Luau", Text: "plan"}}
	body := `{"theme":"Luau","guests":[{"name":"B","email":"b@example.com"},{"name":"A","email":"a@example.com"}]}`
	rr := httptest.NewRecorder()
	NewPartyController(testLogger, svc).CreatePlan(rr, httptest.NewRequest(http.MethodPost, "/party-plans", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []domain.Guest{{Name: "B", Email: "b@example.com"}, {Name: "A", Email: "a@example.com"}}, svc.lastGuests)
}
