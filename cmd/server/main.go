package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partyplanner/config"
	_ "partyplanner/docs"
	"partyplanner/internal/adapters/auth"
	"partyplanner/internal/domain"
)

const shutdownTimeout = 30 * time.Second

// @title Party Planner API
// @version 1.0
// @description Generates party themes and plans with a language model and emails invitations to guests.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	seed := flag.Bool("seed", false, "insert the stock contacts into the contact store and exit")
	issueToken := flag.String("issue-token", "", "print an invitation token for `subject` and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of tokens printed by -issue-token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	if *issueToken != "" {
		if cfg.InvitesJWTSecret == "" {
			log.Fatal("INVITES_JWT_SECRET is required to issue tokens")
		}
		token, err := auth.NewJWT(cfg.InvitesJWTSecret).Issue(*issueToken, *tokenTTL)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	ctx := context.Background()
	var repo domain.ContactRepository
	if needsStore(cfg, *seed) {
		db, r, err := openStore(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to open contact store: %v", err)
		}
		defer db.Close()
		repo = r

		if *seed {
			n, err := seedStore(ctx, cfg, db)
			if err != nil {
				log.Fatalf("Failed to seed contacts: %v", err)
			}
			logger.Info("contacts seeded", "inserted", n, "driver", cfg.DBDriver)
			return
		}
	}

	handler, err := newHandler(cfg, logger, repo)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Plan generation and invitation batches wait on external APIs.
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down server", "timeout", shutdownTimeout)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}()

	logger.Info("starting server",
		"addr", srv.Addr,
		"env", cfg.Environment,
		"contacts", cfg.ContactSource,
		"mail", cfg.Mail.Provider,
		"invite_auth", cfg.InvitesJWTSecret != "",
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	logger.Info("server stopped")
}
