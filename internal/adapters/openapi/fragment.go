// Package openapi loads the published SendGrid mail send operation and validates
// outgoing payloads against its request schema.
package openapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"partyplanner/internal/domain"
)

// MailSendPath is the operation path the fragment is mounted under.
const MailSendPath = "/v3/mail/send"

// FragmentLoader fetches the mail_send path fragment and assembles it into an OpenAPI 3 document.
type FragmentLoader struct {
	URL    string
	Client *http.Client
}

// NewFragmentLoader returns a loader for the fragment published at specURL.
func NewFragmentLoader(specURL string) *FragmentLoader {
	return &FragmentLoader{URL: specURL, Client: &http.Client{Timeout: 30 * time.Second}}
}

// Load performs a single GET of the fragment and returns the assembled document.
func (l *FragmentLoader) Load(ctx context.Context) (*openapi3.T, error) {
	location, err := url.Parse(l.URL)
	if err != nil {
		return nil, fmt.Errorf("parse spec url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch mail send spec: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch mail send spec: status %d", domain.ErrUpstream, resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read mail send spec: %w", domain.ErrUpstream, err)
	}

	var page struct {
		MailSend json.RawMessage `json:"mail_send"`
	}
	if err := json.Unmarshal(pageContent(raw), &page); err != nil {
		return nil, fmt.Errorf("%w: decode mail send spec: %w", domain.ErrUpstream, err)
	}
	if len(page.MailSend) == 0 || string(page.MailSend) == "null" {
		return nil, fmt.Errorf("%w: mail send spec has no mail_send field", domain.ErrUpstream)
	}

	data, err := assemble(page.MailSend)
	if err != nil {
		return nil, err
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true
	doc, err := loader.LoadFromDataWithPath(data, location)
	if err != nil {
		return nil, fmt.Errorf("%w: load mail send spec: %w", domain.ErrUpstream, err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("%w: mail send spec is invalid: %w", domain.ErrUpstream, err)
	}
	return doc, nil
}

// pageContent returns the JSON body of a fetched page. Servers that answer with
// HTML carry the document inside a <pre> block.
func pageContent(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return trimmed
	}
	doc, err := html.Parse(bytes.NewReader(trimmed))
	if err != nil {
		return trimmed
	}
	if pre := findElement(doc, atom.Pre); pre != nil {
		return []byte(textContent(pre))
	}
	return trimmed
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates the text nodes under n with entities already decoded.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func assemble(fragment json.RawMessage) ([]byte, error) {
	doc := map[string]any{
		"openapi": "3.0.1",
		"info": map[string]any{
			"title":   "Twilio SendGrid Mail API",
			"version": "v3",
		},
		"servers": []map[string]any{
			{"url": "https://api.sendgrid.com", "description": "The Twilio SendGrid Production API."},
		},
		"paths": map[string]any{
			MailSendPath: fragment,
		},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("assemble mail send spec: %w", err)
	}
	return data, nil
}

// MailSendSchema validates payloads against the request schema of POST /v3/mail/send.
type MailSendSchema struct {
	schema *openapi3.Schema
}

// NewMailSendSchema picks the application/json request schema out of doc.
func NewMailSendSchema(doc *openapi3.T) (*MailSendSchema, error) {
	if doc.Paths == nil {
		return nil, fmt.Errorf("spec has no paths")
	}
	item := doc.Paths.Value(MailSendPath)
	if item == nil || item.Post == nil {
		return nil, fmt.Errorf("spec has no POST %s operation", MailSendPath)
	}
	body := item.Post.RequestBody
	if body == nil || body.Value == nil {
		return nil, fmt.Errorf("POST %s has no request body", MailSendPath)
	}
	media := body.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("POST %s has no application/json schema", MailSendPath)
	}
	return &MailSendSchema{schema: media.Schema.Value}, nil
}

// Validate checks a JSON payload against the schema.
func (s *MailSendSchema) Validate(payload []byte) error {
	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if err := s.schema.VisitJSON(value); err != nil {
		return fmt.Errorf("payload does not match mail send schema: %w", err)
	}
	return nil
}

// MailSendValidator loads the document on first use and caches it. A failed
// load is returned to the caller and retried on the next call.
type MailSendValidator struct {
	loader *FragmentLoader

	mu     sync.Mutex
	schema *MailSendSchema
}

// NewMailSendValidator returns a validator backed by loader.
func NewMailSendValidator(loader *FragmentLoader) *MailSendValidator {
	return &MailSendValidator{loader: loader}
}

// Validate implements email.PayloadValidator.
func (v *MailSendValidator) Validate(ctx context.Context, payload []byte) error {
	schema, err := v.load(ctx)
	if err != nil {
		return err
	}
	return schema.Validate(payload)
}

func (v *MailSendValidator) load(ctx context.Context) (*MailSendSchema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.schema != nil {
		return v.schema, nil
	}
	doc, err := v.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	schema, err := NewMailSendSchema(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	v.schema = schema
	return schema, nil
}
