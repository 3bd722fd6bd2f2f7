package domain

import "context"

// EmailMessage is a single outgoing email.
type EmailMessage struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer defines the contract for sending emails (infrastructure port).
// It returns the provider's message id when one is reported.
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) (messageID string, err error)
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InvitationEmailData holds data for the invitation email templates.
type InvitationEmailData struct {
	GuestName string
	Theme     string
	When      string
	Plan      string
	HostName  string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendInvitation(ctx context.Context, to Guest, data *InvitationEmailData) (messageID string, err error)
}
