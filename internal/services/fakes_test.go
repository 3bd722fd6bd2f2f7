package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"partyplanner/internal/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeCompleter implements domain.Completer, answering from a queue and recording prompts.
type fakeCompleter struct {
	answers []string
	err     error
	prompts []string
	opts    []domain.CompletionOptions
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	if f.err != nil {
		return "", f.err
	}
	if len(f.answers) == 0 {
		return "", errors.New("fakeCompleter: no answer queued")
	}
	out := f.answers[0]
	f.answers = f.answers[1:]
	return out, nil
}

// fakeContactRepo implements domain.ContactRepository for tests.
type fakeContactRepo struct {
	contacts   []*domain.Contact
	listErr    error
	queryErr   error
	lastParams domain.PaginationParams
	lastQuery  string
}

func (f *fakeContactRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Contact, error) {
	f.lastParams = params
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.contacts, nil
}

func (f *fakeContactRepo) Query(ctx context.Context, query string) ([]*domain.Contact, error) {
	f.lastQuery = query
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.contacts, nil
}

// fakeMailer implements domain.Mailer and records every message. Safe for concurrent use.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []*domain.EmailMessage
	failFor map[string]error
}

func (f *fakeMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[msg.To]; ok {
		return "", err
	}
	f.sent = append(f.sent, msg)
	return "msg-" + msg.To, nil
}

// fakeRenderer implements domain.EmailTemplateRenderer with fixed output derived from the data.
type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	d := data.(*domain.InvitationEmailData)
	return "You're invited: " + d.Theme + " on " + d.When, "<p>" + d.Plan + "</p>", d.Plan, nil
}
