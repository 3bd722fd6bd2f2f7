package domain

import "context"

// Delivery statuses reported per guest.
const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// InvitationRequest is the input of a dispatch.
type InvitationRequest struct {
	Plan     string
	DateTime string
	// Theme is optional; when empty it is read from the plan heading.
	Theme  string
	Guests []Guest
}

// Delivery is the outcome of sending one invitation.
// swagger:model Delivery
type Delivery struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// InvitationResult summarizes a dispatch.
// swagger:model InvitationResult
type InvitationResult struct {
	Summary    string     `json:"summary"`
	Sent       int        `json:"sent"`
	Failed     int        `json:"failed"`
	Deliveries []Delivery `json:"deliveries"`
}

// InvitationService sends one invitation email per guest.
type InvitationService interface {
	SendInvitations(ctx context.Context, req InvitationRequest) (*InvitationResult, error)
}
