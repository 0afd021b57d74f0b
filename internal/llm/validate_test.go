package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "vocab-item",
		Description: "One vocabulary entry",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word":  map[string]any{"type": "string"},
				"level": map[string]any{"type": "integer", "minimum": 1},
				"pos":   map[string]any{"type": "string", "enum": []any{"noun", "verb", "particle"}},
			},
			"required": []any{"word", "level"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid entry", `{"word":"猫","level":1,"pos":"noun"}`, false},
		{"optional field omitted", `{"word":"食べる","level":2}`, false},
		{"missing required field", `{"word":"は"}`, true},
		{"wrong type", `{"word":"行く","level":"two"}`, true},
		{"enum violation", `{"word":"速い","level":1,"pos":"adjective"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty response", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
			if string(invErr.Content) != tt.raw {
				t.Fatalf("error should carry the raw content, got: %s", invErr.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "phrase-breakdown",
		Description: "Phrase with component counts",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"phrase": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
					},
					"required": []any{"text"},
				},
				"counts": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"phrase", "counts"},
		},
	}

	valid := json.RawMessage(`{"phrase":{"text":"昨日レストランに行きました"},"counts":[1,2,3]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"phrase":{"text":"昨日レストランに行きました"},"counts":["one","two"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
