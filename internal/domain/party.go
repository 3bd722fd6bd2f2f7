package domain

import "context"

// Exclusivity restricts who a party is for.
type Exclusivity string

const (
	ExclusivityGuysOnly  Exclusivity = "Guys only"
	ExclusivityGirlsOnly Exclusivity = "Girls only"
	ExclusivityMixed     Exclusivity = "Mixed"
)

// Valid reports whether e is one of the known exclusivity values.
func (e Exclusivity) Valid() bool {
	switch e {
	case ExclusivityGuysOnly, ExclusivityGirlsOnly, ExclusivityMixed:
		return true
	}
	return false
}

// Known age groups. Other values are passed to the model as given.
const (
	AgeGroupKids        = "kids"
	AgeGroupTeens       = "teens"
	AgeGroupYoungAdults = "young adults"
	AgeGroupAdults      = "adults"
	AgeGroupSeniors     = "seniors"
)

// Theme is a generated party theme.
// swagger:model Theme
type Theme struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Guest is an invitee supplied by the caller for a single request.
// swagger:model Guest
type Guest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PartyPlan holds the generated plan. Text is the model output verbatim.
// swagger:model PartyPlan
type PartyPlan struct {
	Theme string `json:"theme"`
	Text  string `json:"plan"`
}

// PartyService generates themes and plans through an LLM.
type PartyService interface {
	GenerateThemes(ctx context.Context, ageGroups []string, exclusivity Exclusivity) ([]Theme, error)
	GeneratePlan(ctx context.Context, theme string, guests []Guest) (*PartyPlan, error)
}
