// Package readings annotates lesson content with pronunciation aids by
// calling the furigana and pinyin sidecar services. Annotation is
// best-effort: an unreachable sidecar degrades to unannotated content.
package readings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultFuriganaURL = "http://localhost:8000"
	defaultPinyinURL   = "http://localhost:8001"

	defaultTimeout = 10 * time.Second
)

// service holds what both sidecar clients share: a base URL and an HTTP
// client with a request timeout.
type service struct {
	baseURL string
	client  *http.Client
}

// Option configures a sidecar client.
type Option func(*service)

// WithBaseURL overrides the service base URL.
func WithBaseURL(u string) Option {
	return func(s *service) { s.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *service) { s.client = c }
}

// newService resolves the base URL from the env var, then the default,
// then applies options.
func newService(defaultBase, envVar string, opts []Option) service {
	base := defaultBase
	if v := os.Getenv(envVar); v != "" {
		base = v
	}
	s := service{
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// postJSON sends a JSON body and decodes a JSON response.
func (s *service) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, s.baseURL+path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// textRequest is the shared single-text request body.
type textRequest struct {
	Text string `json:"text"`
}
