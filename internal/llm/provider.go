package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between the pipeline and an LLM vendor.
// Pipeline stages depend on this interface only; retry and audit logging
// are decorators around it.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema, the provider asks for structured output
	// and the returned Content is schema-validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes one call to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Every stage in this pipeline is
	// single-turn, so this is normally one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When set,
	// the provider uses its native structured output mechanism. When
	// nil, Content comes back as raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero when unset.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema to the provider API. Kebab-case,
	// e.g. "pi-exercise-set".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition holds the raw JSON Schema as a generic map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a Schema, raw text wrapped as json.RawMessage otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
