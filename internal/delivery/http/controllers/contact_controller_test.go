package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyplanner/internal/delivery/http/helpers"
	"partyplanner/internal/domain"
)

func TestContactController_ListContacts(t *testing.T) {
	svc := &fakeContactService{contacts: []*domain.Contact{
		{ID: 1, Name: "R. Alhawash", Email: "rafat.hgh@gmail.com"},
		{ID: 2, Name: "R. Alhawash2", Email: "rafat.hgh@hotmail.com"},
	}}
	c := NewContactController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/contacts?page=2&page_size=10", nil)
	rr := httptest.NewRecorder()
	c.ListContacts(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 10}, svc.lastParams)
	var body ListContactsSuccessResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Nil(t, body.Error)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "rafat.hgh@hotmail.com", body.Data[1].Email)
}

func TestContactController_ListContacts_Empty(t *testing.T) {
	c := NewContactController(testLogger, &fakeContactService{})
	rr := httptest.NewRecorder()
	c.ListContacts(rr, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"error":null}`, rr.Body.String())
}

func TestContactController_ListContacts_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"malformed model output", fmt.Errorf("parse contacts: %w", domain.ErrMalformedModelOutput), http.StatusBadGateway, helpers.ErrCodeBadModelOutput},
		{"upstream", fmt.Errorf("%w: openai down", domain.ErrUpstream), http.StatusBadGateway, helpers.ErrCodeUpstream},
		{"store", fmt.Errorf("list contacts: disk I/O error"), http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContactController(testLogger, &fakeContactService{err: tt.err})
			rr := httptest.NewRecorder()
			c.ListContacts(rr, httptest.NewRequest(http.MethodGet, "/contacts", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			var body helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Nil(t, body.Data)
		})
	}
}
