package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-sonnet-4-20250514",
	}
}

// anthropicMessage fakes the messages API wire format around one text block.
func anthropicMessage(text string) map[string]any {
	return map[string]any{
		"id":          "msg_abc123",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": 61, "output_tokens": 17},
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	const reply = `{"word":"食べる","translation":"to eat"}`

	var gotReq map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(reply))
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a language teacher.",
		Messages:  []Message{{Role: RoleUser, Content: "Extract vocabulary."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// System rides its own top-level field, not the message list.
	if gotReq["system"] == nil {
		t.Fatal("outbound request has no system field")
	}
	if n, _ := gotReq["max_tokens"].(float64); n != 256 {
		t.Fatalf("outbound max_tokens = %v, want 256", gotReq["max_tokens"])
	}
	if string(resp.Content) != reply {
		t.Fatalf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 61 || resp.Usage.OutputTokens != 17 {
		t.Fatalf("usage = %+v, want 61 in / 17 out", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("StopReason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	isRateLimit := func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }
	isUnavailable := func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }

	tests := []struct {
		name    string
		status  int
		apiType string
		check   func(error) bool
	}{
		{"rate limited", http.StatusTooManyRequests, "rate_limit_error", isRateLimit},
		{"server error", http.StatusInternalServerError, "api_error", isUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type":  "error",
					"error": map[string]any{"type": tt.apiType, "message": "upstream failure"},
				})
			}

			p := newTestAnthropicProvider(t, handler)
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				MaxTokens: 100,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Fatalf("wrong error type: %T (%v)", err, err)
			}
		})
	}
}

func TestAnthropicProvider_ModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-sonnet-4-20250514"}
	if got := p.ModelID(); got != "claude-sonnet-4-20250514" {
		t.Fatalf("ModelID() = %q, want claude-sonnet-4-20250514", got)
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // raw IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, anthropicModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
