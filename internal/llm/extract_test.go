package llm

import (
	"errors"
	"testing"
)

func TestExtractJSONBare(t *testing.T) {
	got, err := ExtractJSON(`{"a": 1}`)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if string(got) != `{"a": 1}` {
		t.Errorf("got %s, want bare object unchanged", got)
	}
}

func TestExtractJSONFenced(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"phrases\": [\"a\"]}\n```\nHope that helps!"
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if string(got) != `{"phrases": ["a"]}` {
		t.Errorf("got %s, want fenced content", got)
	}
}

func TestExtractJSONFenceWithoutTag(t *testing.T) {
	raw := "```\n[1, 2, 3]\n```"
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if string(got) != `[1, 2, 3]` {
		t.Errorf("got %s, want array content", got)
	}
}

func TestExtractJSONSurroundingProse(t *testing.T) {
	raw := `Sure! The decomposition is {"0": ["餃子", "餃子を食べました"]} as requested.`
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if string(got) != `{"0": ["餃子", "餃子を食べました"]}` {
		t.Errorf("got %s, want braced slice", got)
	}
}

func TestExtractJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no json", "I cannot help with that."},
		{"unterminated", `{"a": 1`},
		{"invalid", `{not json}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractJSON(tt.raw)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Errorf("error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}
