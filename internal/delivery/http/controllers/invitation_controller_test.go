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
	"partyplanner/internal/delivery/http/middleware"
	"partyplanner/internal/domain"
)

const validInvitesBody = `{
  "plans": "Party Plan for Luau:\n- leis",
  "dateTime": "2026-11-14T19:30",
  "guests": [
    {"id": 1, "name": "R. Alhawash", "email": "rafat.hgh@gmail.com"},
    {"id": 2, "name": "R. Alhawash2", "email": "rafat.hgh@hotmail.com"}
  ]
}`

func TestInvitationController_SendInvites(t *testing.T) {
	result := &domain.InvitationResult{
		Summary: `Sent 2 of 2 invitations for "Luau" on Saturday, November 14, 2026 at 7:30 PM.`,
		Sent:    2,
		Deliveries: []domain.Delivery{
			{Name: "R. Alhawash", Email: "rafat.hgh@gmail.com", Status: domain.DeliveryStatusSent},
			{Name: "R. Alhawash2", Email: "rafat.hgh@hotmail.com", Status: domain.DeliveryStatusSent},
		},
	}
	svc := &fakeInvitationService{result: result}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-invites", strings.NewReader(validInvitesBody))
	NewInvitationController(testLogger, svc).SendInvites(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, svc.called)
	assert.Equal(t, "Party Plan for Luau:\n- leis", svc.lastReq.Plan)
	assert.Equal(t, "2026-11-14T19:30", svc.lastReq.DateTime)
	assert.Empty(t, svc.lastReq.Theme)
	assert.Len(t, svc.lastReq.Guests, 2)

	var body SendInvitesSuccessResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Nil(t, body.Error)
	assert.Equal(t, result, body.Data)
}

func TestInvitationController_SendInvites_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing plan", `{"dateTime":"2026-11-14","guests":[{"name":"a","email":"a@example.com"}]}`, "plans is required"},
		{"missing date", `{"plans":"p","guests":[{"name":"a","email":"a@example.com"}]}`, "dateTime is required"},
		{"no guests", `{"plans":"p","dateTime":"2026-11-14","guests":[]}`, "at least one guest"},
		{"bad email", `{"plans":"p","dateTime":"2026-11-14","guests":[{"name":"a","email":"a@b"}]}`, "guests[0].email is invalid"},
		{"malformed", `{"plans":`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeInvitationService{}
			rr := httptest.NewRecorder()
			NewInvitationController(testLogger, svc).SendInvites(rr, httptest.NewRequest(http.MethodPost, "/send-invites", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.False(t, svc.called)
			var body helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, helpers.ErrCodeBadRequest, body.Error.Code)
			assert.Contains(t, body.Error.Message, tt.wantMsg)
		})
	}
}

func TestInvitationController_SendInvites_AllFailed(t *testing.T) {
	result := &domain.InvitationResult{
		Summary: `Sent 0 of 1 invitations for "Luau" on Saturday, November 14, 2026.`,
		Failed:  1,
		Deliveries: []domain.Delivery{
			{Name: "a", Email: "a@example.com", Status: domain.DeliveryStatusFailed, Error: "mail delivery failed"},
		},
	}
	svc := &fakeInvitationService{result: result, err: fmt.Errorf("%w: 1 deliveries failed", domain.ErrNoInvitationsSent)}
	rr := httptest.NewRecorder()
	NewInvitationController(testLogger, svc).SendInvites(rr, httptest.NewRequest(http.MethodPost, "/send-invites", strings.NewReader(validInvitesBody)))

	require.Equal(t, http.StatusBadGateway, rr.Code)
	var body SendInvitesSuccessResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.Equal(t, helpers.ErrCodeDeliveryFailed, body.Error.Code)
	assert.Equal(t, result, body.Data)
}

func TestInvitationController_SendInvites_WithAuth(t *testing.T) {
	svc := &fakeInvitationService{result: &domain.InvitationResult{Sent: 2}}
	handler := middleware.RequireAuth(&staticVerifier{subject: "ops@example.com"}, testLogger)(NewInvitationController(testLogger, svc).SendInvites)

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodPost, "/send-invites", strings.NewReader(validInvitesBody)))
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, svc.called)

	req := httptest.NewRequest(http.MethodPost, "/send-invites", strings.NewReader(validInvitesBody))
	req.Header.Set("Authorization", "Bearer token")
	rr = httptest.NewRecorder()
	handler(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, svc.called)
}

type staticVerifier struct {
	subject string
}

func (s *staticVerifier) Verify(string) (string, error) { return s.subject, nil }
