package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"partyplanner/config"
	"partyplanner/internal/adapters/auth"
	"partyplanner/internal/adapters/email"
	"partyplanner/internal/adapters/llm"
	"partyplanner/internal/adapters/openapi"
	httpdelivery "partyplanner/internal/delivery/http"
	"partyplanner/internal/delivery/http/controllers"
	"partyplanner/internal/domain"
	"partyplanner/internal/repository/postgres"
	"partyplanner/internal/repository/sqlite"
	"partyplanner/internal/services"
)

// needsStore reports whether the process must open the contact store. The static
// contact source serves an in-memory list and never touches it.
func needsStore(cfg *config.Config, seed bool) bool {
	return seed || domain.ContactSource(cfg.ContactSource) != domain.ContactSourceStatic
}

// openStore opens the configured contact store and makes sure the contacts table exists.
func openStore(ctx context.Context, cfg *config.Config) (*sql.DB, domain.ContactRepository, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		return db, postgres.NewContactRepository(db), nil
	default:
		db, err := sqlite.Open(cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		return db, sqlite.NewContactRepository(db), nil
	}
}

// seedStore inserts the stock contacts into the configured store.
func seedStore(ctx context.Context, cfg *config.Config, db *sql.DB) (int64, error) {
	if cfg.DBDriver == "postgres" {
		return postgres.Seed(ctx, db)
	}
	return sqlite.Seed(ctx, db)
}

func newMailer(cfg *config.Config) (domain.Mailer, error) {
	sg := email.SendGridConfig{
		APIKey:  cfg.Mail.SendGrid.APIKey,
		BaseURL: cfg.Mail.SendGrid.BaseURL,
	}
	if cfg.Mail.SendGrid.ValidateSpec {
		sg.Validator = openapi.NewMailSendValidator(openapi.NewFragmentLoader(cfg.Mail.SendGrid.SpecURL))
	}
	return email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SendGrid:    sg,
		SES: email.SESConfig{
			Region:             cfg.Mail.SES.Region,
			AccessKeyID:        cfg.Mail.SES.AccessKeyID,
			SecretAccessKey:    cfg.Mail.SES.SecretAccessKey,
			InsecureSkipVerify: cfg.Mail.SES.InsecureSkipVerify,
		},
	})
}

// newHandler wires adapters, services and controllers into the HTTP handler.
func newHandler(cfg *config.Config, logger *slog.Logger, repo domain.ContactRepository) (http.Handler, error) {
	completer := llm.NewClient(llm.ClientConfig{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
	})

	contactSvc, err := services.NewContactService(domain.ContactSource(cfg.ContactSource), repo, completer)
	if err != nil {
		return nil, err
	}
	partySvc := services.NewPartyService(completer)

	mailer, err := newMailer(cfg)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("email templates: %w", err)
	}
	invitationSvc := services.NewInvitationService(
		services.NewEmailService(mailer, renderer),
		cfg.Mail.FromName,
		cfg.Mail.Concurrency,
		logger,
	)

	var verifier domain.TokenVerifier
	if cfg.InvitesJWTSecret != "" {
		verifier = auth.NewJWT(cfg.InvitesJWTSecret)
	}

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Contacts:    controllers.NewContactController(logger, contactSvc),
		Party:       controllers.NewPartyController(logger, partySvc),
		Invitations: controllers.NewInvitationController(logger, invitationSvc),
	}, verifier, logger)
	return httpdelivery.NewHandler(mux, logger, cfg.CORSAllowedOrigins), nil
}
