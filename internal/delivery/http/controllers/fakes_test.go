package controllers

import (
	"context"
	"io"
	"log/slog"

	"partyplanner/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeContactService implements domain.ContactService for handler tests.
type fakeContactService struct {
	contacts   []*domain.Contact
	err        error
	lastParams domain.PaginationParams
}

func (f *fakeContactService) List(_ context.Context, params domain.PaginationParams) ([]*domain.Contact, error) {
	f.lastParams = params
	return f.contacts, f.err
}

// fakePartyService implements domain.PartyService for handler tests.
type fakePartyService struct {
	themes          []domain.Theme
	themesErr       error
	plan            *domain.PartyPlan
	planErr         error
	lastAgeGroups   []string
	lastExclusivity domain.Exclusivity
	lastTheme       string
	lastGuests      []domain.Guest
	themesCalled    bool
	planCalled      bool
}

func (f *fakePartyService) GenerateThemes(_ context.Context, ageGroups []string, exclusivity domain.Exclusivity) ([]domain.Theme, error) {
	f.themesCalled = true
	f.lastAgeGroups = ageGroups
	f.lastExclusivity = exclusivity
	return f.themes, f.themesErr
}

func (f *fakePartyService) GeneratePlan(_ context.Context, theme string, guests []domain.Guest) (*domain.PartyPlan, error) {
	f.planCalled = true
	f.lastTheme = theme
	f.lastGuests = guests
	return f.plan, f.planErr
}

// fakeInvitationService implements domain.InvitationService for handler tests.
type fakeInvitationService struct {
	result  *domain.InvitationResult
	err     error
	lastReq domain.InvitationRequest
	called  bool
}

func (f *fakeInvitationService) SendInvitations(_ context.Context, req domain.InvitationRequest) (*domain.InvitationResult, error) {
	f.called = true
	f.lastReq = req
	return f.result, f.err
}
