package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"partyplanner/internal/domain"
	"partyplanner/internal/repository"
)

// staticContacts is served by the static contact source.
var staticContacts = []domain.Contact{
	{ID: 1, Name: "R. Alhawash", Email: "rafat.hgh@gmail.com"},
	{ID: 2, Name: "R. Alhawash2", Email: "rafat.hgh@hotmail.com"},
}

// NewContactService selects the contact listing strategy. repo is required by the
// database and assistant sources, llm by the assistant source.
func NewContactService(source domain.ContactSource, repo domain.ContactRepository, llm domain.Completer) (domain.ContactService, error) {
	switch source {
	case domain.ContactSourceStatic:
		return NewStaticContactService(), nil
	case domain.ContactSourceDatabase:
		if repo == nil {
			return nil, fmt.Errorf("contact source %q needs a contact repository", source)
		}
		return NewDatabaseContactService(repo), nil
	case domain.ContactSourceAssistant:
		if repo == nil || llm == nil {
			return nil, fmt.Errorf("contact source %q needs a contact repository and a language model", source)
		}
		return NewAssistantContactService(llm, repo), nil
	default:
		return nil, fmt.Errorf("unknown contact source %q", source)
	}
}

type staticContactService struct{}

// NewStaticContactService returns the fixed two-contact list. It performs no I/O.
func NewStaticContactService() domain.ContactService {
	return staticContactService{}
}

func (staticContactService) List(_ context.Context, params domain.PaginationParams) ([]*domain.Contact, error) {
	start, end := params.Window(len(staticContacts))
	out := make([]*domain.Contact, 0, end-start)
	for i := start; i < end; i++ {
		c := staticContacts[i]
		out = append(out, &c)
	}
	return out, nil
}

type databaseContactService struct {
	repo domain.ContactRepository
}

// NewDatabaseContactService lists contacts with a parameterized query.
func NewDatabaseContactService(repo domain.ContactRepository) domain.ContactService {
	return &databaseContactService{repo: repo}
}

func (s *databaseContactService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Contact, error) {
	contacts, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

type assistantContactService struct {
	llm  domain.Completer
	repo domain.ContactRepository
}

// NewAssistantContactService lets the model translate the listing request to SQL,
// runs it, and has the model format the rows as JSON.
func NewAssistantContactService(llm domain.Completer, repo domain.ContactRepository) domain.ContactService {
	return &assistantContactService{llm: llm, repo: repo}
}

func (s *assistantContactService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Contact, error) {
	deterministic := domain.CompletionOptions{Temperature: domain.Temperature(0)}

	out, err := s.llm.Complete(ctx, buildContactsSQLPrompt(repository.ContactsSchema, params), deterministic)
	if err != nil {
		return nil, fmt.Errorf("failed to translate contact request: %w", err)
	}
	query, err := sanitizeSelect(out)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}

	out, err = s.llm.Complete(ctx, buildContactsFormatPrompt(query, rows), deterministic)
	if err != nil {
		return nil, fmt.Errorf("failed to format contacts: %w", err)
	}
	return ParseContacts(out)
}

// ParseContacts drops any prose before the first "[{" and parses the rest as a
// JSON array of contacts.
func ParseContacts(out string) ([]*domain.Contact, error) {
	raw, err := ExtractJSONArray(out)
	if err != nil {
		return nil, err
	}
	var contacts []*domain.Contact
	if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
		return nil, fmt.Errorf("%w: parse contacts: %v", domain.ErrMalformedModelOutput, err)
	}
	return contacts, nil
}

// ExtractJSONArray returns text starting at the first "[{".
func ExtractJSONArray(text string) (string, error) {
	i := strings.Index(text, "[{")
	if i < 0 {
		return "", fmt.Errorf("%w: no JSON array of objects in response", domain.ErrMalformedModelOutput)
	}
	return strings.TrimSpace(text[i:]), nil
}

var (
	codeFence      = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	writeStatement = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|alter|create|attach|detach|pragma|vacuum|reindex|truncate|grant|revoke)\b`)
)

// sanitizeSelect accepts a single read-only SELECT, optionally wrapped in a code
// fence and terminated by one semicolon.
func sanitizeSelect(out string) (string, error) {
	q := strings.TrimSpace(out)
	if m := codeFence.FindStringSubmatch(q); m != nil {
		q = strings.TrimSpace(m[1])
	}
	q = strings.TrimSpace(strings.TrimSuffix(q, ";"))
	switch {
	case q == "":
		return "", fmt.Errorf("%w: empty query", domain.ErrMalformedModelOutput)
	case !strings.HasPrefix(strings.ToLower(q), "select"):
		return "", fmt.Errorf("%w: not a SELECT: %q", domain.ErrUnsafeQuery, q)
	case strings.Contains(q, ";"):
		return "", fmt.Errorf("%w: multiple statements: %q", domain.ErrUnsafeQuery, q)
	case writeStatement.MatchString(q):
		return "", fmt.Errorf("%w: write keyword in %q", domain.ErrUnsafeQuery, q)
	}
	return q, nil
}
