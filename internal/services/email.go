package services

import (
	"context"
	"fmt"

	"partyplanner/internal/domain"
)

const invitationTemplate = "invitation"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendInvitation renders the "invitation" template for one guest and sends it.
func (s *emailService) SendInvitation(ctx context.Context, to domain.Guest, data *domain.InvitationEmailData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("invitation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(invitationTemplate, data)
	if err != nil {
		return "", fmt.Errorf("failed to render invitation template: %w", err)
	}
	id, err := s.mailer.Send(ctx, &domain.EmailMessage{
		To:       to.Email,
		ToName:   to.Name,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send invitation email: %w", err)
	}
	return id, nil
}
