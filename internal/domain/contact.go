package domain

import "context"

// Contact is a person that can be invited to a party.
// swagger:model Contact
type Contact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContactSource names the strategy used to list contacts.
type ContactSource string

const (
	// ContactSourceStatic returns a fixed in-memory list.
	ContactSourceStatic ContactSource = "static"
	// ContactSourceDatabase reads the contact store with a parameterized query.
	ContactSourceDatabase ContactSource = "database"
	// ContactSourceAssistant lets the LLM write the query and format the rows.
	ContactSourceAssistant ContactSource = "assistant"
)

// ContactRepository defines the interface for contact storage.
type ContactRepository interface {
	List(ctx context.Context, params PaginationParams) ([]*Contact, error)
	// Query runs a read-only SELECT that yields id, name and email columns.
	Query(ctx context.Context, query string) ([]*Contact, error)
}

// ContactService lists contacts available for invitation.
type ContactService interface {
	List(ctx context.Context, params PaginationParams) ([]*Contact, error)
}
