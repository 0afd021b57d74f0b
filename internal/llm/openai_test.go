package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}
	return p
}

// openaiCompletion fakes the chat completions wire format around one
// assistant reply.
func openaiCompletion(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-abc123",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{
			"prompt_tokens":     83,
			"completion_tokens": 42,
			"total_tokens":      125,
		},
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	const reply = `{"word":"hablar","translation":"to speak"}`

	var gotReq openai.ChatCompletionRequest
	handler := func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaiCompletion(reply))
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a language teacher.",
		Messages:  []Message{{Role: RoleUser, Content: "Extract vocabulary."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// The system prompt flattens into the first chat message.
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("outbound messages = %+v, want system first", gotReq.Messages)
	}
	if string(resp.Content) != reply {
		t.Fatalf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 83 || resp.Usage.OutputTokens != 42 {
		t.Fatalf("usage = %+v, want 83 in / 42 out", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("StopReason = %q, want end", resp.StopReason)
	}
}

func TestOpenAIProvider_SchemaRequest(t *testing.T) {
	const reply = `{"word":"晴れ","level":3}`

	var gotReq map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaiCompletion(reply))
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Extract vocabulary."}},
		MaxTokens: 256,
		Schema:    testSchema(),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	rf, ok := gotReq["response_format"].(map[string]any)
	if !ok || rf["type"] != "json_schema" {
		t.Fatalf("response_format = %v, want strict json_schema", gotReq["response_format"])
	}
	js, _ := rf["json_schema"].(map[string]any)
	if js["name"] != "vocab-item" || js["strict"] != true {
		t.Fatalf("json_schema = %v", js)
	}
	if string(resp.Content) != reply {
		t.Fatalf("content = %s", resp.Content)
	}
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	isRateLimit := func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }
	isUnavailable := func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }

	tests := []struct {
		name    string
		status  int
		apiType string
		check   func(error) bool
	}{
		{"rate limited", http.StatusTooManyRequests, "tokens", isRateLimit},
		{"server error", http.StatusInternalServerError, "server_error", isUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"type": tt.apiType, "message": "upstream failure"},
				})
			}

			p := newTestOpenAIProvider(t, handler)
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

func TestOpenAIProvider_ModelID(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
	if got := p.ModelID(); got != "gpt-4o-mini" {
		t.Fatalf("ModelID() = %q, want gpt-4o-mini", got)
	}
}

func TestOpenAIProvider_BaseURLOverride(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}
	if got := p.ModelID(); got != "gpt-4o" {
		t.Fatalf("ModelID() = %q, want gpt-4o", got)
	}
}
