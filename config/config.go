package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultMailSpecURL is the public OpenAPI fragment for the SendGrid mail send operation.
const DefaultMailSpecURL = "https://raw.githubusercontent.com/sendgrid/sendgrid-oai/main/spec/paths/mail_send/mail_send.json"

// LLMConfig holds configuration for the language model provider.
type LLMConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
}

// SendGridConfig holds configuration for the SendGrid v3 API.
type SendGridConfig struct {
	APIKey       string
	BaseURL      string
	SpecURL      string
	ValidateSpec bool
}

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailConfig holds configuration for outgoing invitation emails.
type MailConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	Concurrency int
	SendGrid    SendGridConfig
	SES         SESConfig
}

// Config holds all configuration for the application
type Config struct {
	DBDriver           string
	DBUrl              string
	Environment        string
	Port               string
	ContactSource      string
	CORSAllowedOrigins []string
	InvitesJWTSecret   string
	LLM                LLMConfig
	Mail               MailConfig
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:      env,
		DBDriver:         os.Getenv("DATABASE_DRIVER"),
		DBUrl:            os.Getenv("DATABASE_URL"),
		Port:             os.Getenv("PORT"),
		ContactSource:    strings.ToLower(strings.TrimSpace(os.Getenv("CONTACTS_SOURCE"))),
		InvitesJWTSecret: os.Getenv("INVITES_JWT_SECRET"),
		LLM: LLMConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   os.Getenv("LLM_MODEL"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
		Mail: MailConfig{
			Provider:    strings.ToLower(strings.TrimSpace(os.Getenv("MAIL_PROVIDER"))),
			FromAddress: os.Getenv("MAIL_FROM_ADDRESS"),
			FromName:    os.Getenv("MAIL_FROM_NAME"),
			SendGrid: SendGridConfig{
				APIKey:       os.Getenv("SG_API_KEY"),
				BaseURL:      os.Getenv("SENDGRID_BASE_URL"),
				SpecURL:      os.Getenv("SENDGRID_SPEC_URL"),
				ValidateSpec: parseBool(os.Getenv("SENDGRID_VALIDATE_SPEC")),
			},
			SES: SESConfig{
				Region:             os.Getenv("AWS_REGION"),
				AccessKeyID:        os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
				InsecureSkipVerify: parseBool(os.Getenv("SES_INSECURE_SKIP_VERIFY")),
			},
		},
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}
	if cfg.DBUrl == "" && cfg.DBDriver == "sqlite" {
		cfg.DBUrl = "party.db"
	}
	if cfg.ContactSource == "" {
		cfg.ContactSource = "static"
		if cfg.IsProduction() {
			cfg.ContactSource = "database"
		}
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-3.5-turbo"
	}
	cfg.LLM.Temperature = 0.7
	if s := os.Getenv("LLM_TEMPERATURE"); s != "" {
		t, err := strconv.ParseFloat(s, 32)
		if err != nil || t < 0 || t > 2 {
			return nil, fmt.Errorf("LLM_TEMPERATURE must be a number between 0 and 2, got %q", s)
		}
		cfg.LLM.Temperature = float32(t)
	}
	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = "noop"
		if cfg.Mail.SendGrid.APIKey != "" {
			cfg.Mail.Provider = "sendgrid"
		}
	}
	if cfg.Mail.FromAddress == "" {
		cfg.Mail.FromAddress = "ralhawash@thesmythgroup.com"
	}
	if cfg.Mail.FromName == "" {
		cfg.Mail.FromName = "R. Alhawash"
	}
	cfg.Mail.Concurrency = 5
	if s := os.Getenv("MAIL_CONCURRENCY"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("MAIL_CONCURRENCY must be a positive integer, got %q", s)
		}
		cfg.Mail.Concurrency = n
	}
	if cfg.Mail.SendGrid.BaseURL == "" {
		cfg.Mail.SendGrid.BaseURL = "https://api.sendgrid.com"
	}
	if cfg.Mail.SendGrid.SpecURL == "" {
		cfg.Mail.SendGrid.SpecURL = DefaultMailSpecURL
	}
	if cfg.Mail.SES.Region == "" {
		cfg.Mail.SES.Region = "us-east-1"
	}
	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:4200"
	}
	cfg.CORSAllowedOrigins = strings.Split(origins, ",")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be \"sqlite\" or \"postgres\", got %q", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.DBUrl == "" {
		return fmt.Errorf("DATABASE_URL is required for the postgres driver")
	}
	switch c.ContactSource {
	case "static", "database":
	case "assistant":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the assistant contact source")
		}
	default:
		return fmt.Errorf("CONTACTS_SOURCE must be \"static\", \"database\" or \"assistant\", got %q", c.ContactSource)
	}
	switch c.Mail.Provider {
	case "noop":
	case "sendgrid":
		if c.Mail.SendGrid.APIKey == "" {
			return fmt.Errorf("SG_API_KEY is required for the sendgrid mail provider")
		}
	case "ses":
		if c.Mail.SES.AccessKeyID == "" || c.Mail.SES.SecretAccessKey == "" {
			return fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are required for the ses mail provider")
		}
	default:
		return fmt.Errorf("MAIL_PROVIDER must be \"sendgrid\", \"ses\" or \"noop\", got %q", c.Mail.Provider)
	}
	return nil
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
