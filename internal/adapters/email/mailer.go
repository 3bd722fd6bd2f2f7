package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"

	"partyplanner/internal/domain"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SendGrid    SendGridConfig
	SES         SESConfig
}

// NewMailer creates a mailer from config. Provider "sendgrid" uses the SendGrid v3 API,
// "ses" uses AWS SES; both are wrapped in a circuit breaker. "noop" or unknown uses a no-op mailer.
func NewMailer(config MailerConfig) (domain.Mailer, error) {
	switch config.Provider {
	case "sendgrid":
		m, err := newSendGridMailer(config.SendGrid, config.FromAddress, config.FromName)
		if err != nil {
			return nil, err
		}
		return withBreaker("mail-sendgrid", m), nil
	case "ses":
		return withBreaker("mail-ses", newSESMailer(config)), nil
	case "noop":
		return &noopMailer{}, nil
	default:
		log.Printf("[MAILER] Unknown email provider %q, using noop", config.Provider)
		return &noopMailer{}, nil
	}
}

func newSESMailer(config MailerConfig) *sesMailer {
	sesConfig := config.SES
	if sesConfig.InsecureSkipVerify {
		log.Printf("[MAILER] WARNING: TLS certificate verification is disabled for SES. Use only in development.")
	}
	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: sesConfig.InsecureSkipVerify,
				MinVersion:         tls.VersionTLS12,
			},
		},
	}
	awsCfg := aws.Config{
		Region: sesConfig.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				sesConfig.AccessKeyID,
				sesConfig.SecretAccessKey,
				"",
			),
		),
		HTTPClient: httpClient,
	}
	return &sesMailer{
		client: ses.NewFromConfig(awsCfg),
		source: formatAddress(config.FromName, config.FromAddress),
	}
}

// sesAPI is the subset of the SES client used by sesMailer.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailer struct {
	client sesAPI
	source string
}

func (s *sesMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	input := &ses.SendEmailInput{
		Source: aws.String(s.source),
		Destination: &types.Destination{
			ToAddresses: []string{formatAddress(msg.ToName, msg.To)},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if msg.HTMLBody != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(msg.HTMLBody),
			Charset: aws.String("UTF-8"),
		}
	}
	if msg.TextBody != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(msg.TextBody),
			Charset: aws.String("UTF-8"),
		}
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		err = fmt.Errorf("%w: send via SES: %w", domain.ErrMailDelivery, err)
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "MessageRejected" {
			return "", fmt.Errorf("%w: %w", errRecipientRejected, err)
		}
		return "", err
	}
	id := aws.ToString(result.MessageId)
	log.Printf("[MAILER] Email sent via SES. MessageID: %s", id)
	return id, nil
}

type noopMailer struct{}

func (n *noopMailer) Send(_ context.Context, msg *domain.EmailMessage) (string, error) {
	log.Println("[MAILER] Email would be sent (noop)", "to", msg.To, "subject", msg.Subject)
	return "", nil
}

// formatAddress renders "Name <address>", or the bare address when name is empty.
func formatAddress(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}
