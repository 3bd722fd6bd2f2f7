package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"partyplanner/internal/domain"
)

type partyService struct {
	llm domain.Completer
}

// NewPartyService returns a PartyService that generates themes and plans with the given model.
func NewPartyService(llm domain.Completer) domain.PartyService {
	return &partyService{llm: llm}
}

type themesResponse struct {
	Themes []domain.Theme `json:"themes"`
}

func (s *partyService) GenerateThemes(ctx context.Context, ageGroups []string, exclusivity domain.Exclusivity) ([]domain.Theme, error) {
	if exclusivity == "" {
		exclusivity = domain.ExclusivityMixed
	}
	prompt := buildThemesPrompt(ageGroups, exclusivity)
	out, err := s.llm.Complete(ctx, prompt, domain.CompletionOptions{JSON: true})
	if err != nil {
		return nil, fmt.Errorf("failed to generate themes: %w", err)
	}
	return parseThemes(out)
}

// parseThemes parses the whole model answer as {"themes": [...]}. Count and
// content are not checked.
func parseThemes(out string) ([]domain.Theme, error) {
	var resp themesResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		return nil, fmt.Errorf("%w: parse themes: %v", domain.ErrMalformedModelOutput, err)
	}
	if resp.Themes == nil {
		return nil, fmt.Errorf("%w: themes key missing", domain.ErrMalformedModelOutput)
	}
	return resp.Themes, nil
}

func (s *partyService) GeneratePlan(ctx context.Context, theme string, guests []domain.Guest) (*domain.PartyPlan, error) {
	theme = strings.TrimSpace(theme)
	out, err := s.llm.Complete(ctx, buildPlanPrompt(theme, guests), domain.CompletionOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan: %w", err)
	}
	return &domain.PartyPlan{Theme: theme, Text: out}, nil
}
