package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"partyplanner/internal/domain"
)

const defaultTheme = "Party"

var planHeading = regexp.MustCompile(`(?m)^\s*Party Plan for\s+(.+?)\s*:?\s*$`)

// dateTimeLayouts are tried in order; the second value reports whether the layout carries a time.
var dateTimeLayouts = []struct {
	layout  string
	hasTime bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02 15:04", true},
	{"2006-01-02", false},
}

type invitationService struct {
	email       domain.EmailService
	hostName    string
	concurrency int
	logger      *slog.Logger
}

// NewInvitationService returns an InvitationService that sends one email per guest,
// at most concurrency at a time.
func NewInvitationService(email domain.EmailService, hostName string, concurrency int, logger *slog.Logger) domain.InvitationService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &invitationService{
		email:       email,
		hostName:    hostName,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (s *invitationService) SendInvitations(ctx context.Context, req domain.InvitationRequest) (*domain.InvitationResult, error) {
	theme := resolveTheme(req.Theme, req.Plan)
	when := formatWhen(req.DateTime)

	deliveries := make([]domain.Delivery, len(req.Guests))
	var sent atomic.Int32

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, guest := range req.Guests {
		g.Go(func() error {
			d := domain.Delivery{Name: guest.Name, Email: guest.Email}
			id, err := s.email.SendInvitation(ctx, guest, &domain.InvitationEmailData{
				GuestName: guest.Name,
				Theme:     theme,
				When:      when,
				Plan:      req.Plan,
				HostName:  s.hostName,
			})
			if err != nil {
				d.Status = domain.DeliveryStatusFailed
				d.Error = err.Error()
				s.logger.WarnContext(ctx, "invitation not sent", "email", guest.Email, "err", err)
			} else {
				d.Status = domain.DeliveryStatusSent
				d.MessageID = id
				sent.Add(1)
			}
			deliveries[i] = d
			return nil
		})
	}
	_ = g.Wait()

	total := len(req.Guests)
	result := &domain.InvitationResult{
		Summary:    fmt.Sprintf("Sent %d of %d invitations for %q on %s.", sent.Load(), total, theme, when),
		Sent:       int(sent.Load()),
		Failed:     total - int(sent.Load()),
		Deliveries: deliveries,
	}
	s.logger.InfoContext(ctx, "invitations dispatched", "theme", theme, "sent", result.Sent, "failed", result.Failed)

	if total > 0 && result.Sent == 0 {
		return result, fmt.Errorf("%w: %d deliveries failed", domain.ErrNoInvitationsSent, result.Failed)
	}
	return result, nil
}

// resolveTheme prefers the explicit theme, then the plan's "Party Plan for X:" heading.
func resolveTheme(theme, plan string) string {
	if t := strings.TrimSpace(theme); t != "" {
		return t
	}
	if m := planHeading.FindStringSubmatch(plan); m != nil {
		if t := strings.Trim(m[1], `"' `); t != "" {
			return t
		}
	}
	return defaultTheme
}

// formatWhen renders a date/time for humans; values it cannot parse are returned as given.
func formatWhen(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, l := range dateTimeLayouts {
		t, err := time.Parse(l.layout, raw)
		if err != nil {
			continue
		}
		if l.hasTime {
			return t.Format("Monday, January 2, 2006 at 3:04 PM")
		}
		return t.Format("Monday, January 2, 2006")
	}
	return raw
}
