package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"partyplanner/internal/domain"
)

const (
	sendGridMailSendPath = "/v3/mail/send"
	sendGridDefaultHost  = "https://api.sendgrid.com"
)

// PayloadValidator checks a mail send payload before it leaves the process.
type PayloadValidator interface {
	Validate(ctx context.Context, payload []byte) error
}

// SendGridConfig holds configuration for the SendGrid v3 API.
type SendGridConfig struct {
	APIKey  string
	BaseURL string
	// Validator, when set, checks every payload against the published mail send schema.
	Validator  PayloadValidator
	HTTPClient *http.Client
}

type sendGridErrors struct {
	Errors []struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"errors"`
}

type sendGridMailer struct {
	client    *rest.Client
	apiKey    string
	host      string
	from      *mail.Email
	validator PayloadValidator
}

func newSendGridMailer(cfg SendGridConfig, fromAddress, fromName string) (*sendGridMailer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("sendgrid api key is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	host := strings.TrimRight(cfg.BaseURL, "/")
	if host == "" {
		host = sendGridDefaultHost
	}
	return &sendGridMailer{
		client:    &rest.Client{HTTPClient: httpClient},
		apiKey:    cfg.APIKey,
		host:      host,
		from:      mail.NewEmail(fromName, fromAddress),
		validator: cfg.Validator,
	}, nil
}

func (s *sendGridMailer) message(msg *domain.EmailMessage) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(s.from)
	m.Subject = msg.Subject
	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(msg.ToName, msg.To))
	m.AddPersonalizations(p)
	// SendGrid requires text/plain before text/html.
	if msg.TextBody != "" {
		m.AddContent(mail.NewContent("text/plain", msg.TextBody))
	}
	if msg.HTMLBody != "" {
		m.AddContent(mail.NewContent("text/html", msg.HTMLBody))
	}
	return m
}

func (s *sendGridMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	body := mail.GetRequestBody(s.message(msg))
	if s.validator != nil {
		if err := s.validator.Validate(ctx, body); err != nil {
			return "", fmt.Errorf("mail send payload: %w", err)
		}
	}

	// A request per send; sendgrid.Client mutates its embedded request body.
	req := sendgrid.GetRequest(s.apiKey, sendGridMailSendPath, s.host)
	req.Method = rest.Post
	req.Headers["Content-Type"] = "application/json"
	req.Body = body

	resp, err := s.client.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: sendgrid: %w", domain.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("%w: sendgrid returned status %d: %s", domain.ErrMailDelivery, resp.StatusCode, sendGridErrorMessage(resp.Body))
		if recipientRejected(resp.StatusCode) {
			return "", fmt.Errorf("%w: %w", errRecipientRejected, err)
		}
		return "", err
	}
	id := http.Header(resp.Headers).Get("X-Message-Id")
	log.Printf("[MAILER] Email sent via SendGrid. MessageID: %s", id)
	return id, nil
}

// recipientRejected reports whether status refers to the single message rather
// than the account or the provider. 401, 403 and 429 affect every send.
func recipientRejected(status int) bool {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return false
	}
	return status >= 400 && status < 500
}

func sendGridErrorMessage(raw string) string {
	var e sendGridErrors
	if err := json.Unmarshal([]byte(raw), &e); err != nil || len(e.Errors) == 0 {
		return strings.TrimSpace(raw)
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		if item.Field != "" {
			msgs = append(msgs, item.Field+": "+item.Message)
			continue
		}
		msgs = append(msgs, item.Message)
	}
	return strings.Join(msgs, "; ")
}
