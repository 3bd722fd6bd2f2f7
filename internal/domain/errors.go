package domain

import "errors"

// Sentinel errors shared by services and adapters. Wrap them with fmt.Errorf("...: %w")
// and classify with errors.Is at the delivery layer.
var (
	// ErrMalformedModelOutput means the LLM answered but not in the expected shape.
	ErrMalformedModelOutput = errors.New("malformed model output")
	// ErrUpstream means an outbound call (LLM, OpenAPI document fetch, mail provider) failed at transport or API level.
	ErrUpstream = errors.New("upstream request failed")
	// ErrMailDelivery means the email provider rejected or could not accept a message.
	ErrMailDelivery = errors.New("mail delivery failed")
	// ErrNoInvitationsSent means a dispatch ran but every delivery failed.
	ErrNoInvitationsSent = errors.New("no invitations were sent")
	// ErrUnsafeQuery means generated SQL was not a single read-only SELECT.
	ErrUnsafeQuery = errors.New("unsafe query")
)
