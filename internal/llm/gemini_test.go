package llm

import "testing"

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // raw IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word":  map[string]any{"type": "string"},
			"level": map[string]any{"type": "integer"},
			"pos":   map[string]any{"type": "string", "enum": []any{"noun", "verb", "particle"}},
			"readings": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"word", "level"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("root type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("got %d properties, want 4", len(schema.Properties))
	}

	wantTypes := map[string]string{
		"word":     "STRING",
		"level":    "INTEGER",
		"pos":      "STRING",
		"readings": "ARRAY",
	}
	for name, want := range wantTypes {
		if got := string(schema.Properties[name].Type); got != want {
			t.Errorf("property %q type = %s, want %s", name, got, want)
		}
	}

	if len(schema.Properties["pos"].Enum) != 3 {
		t.Errorf("pos enum has %d values, want 3", len(schema.Properties["pos"].Enum))
	}
	if got := string(schema.Properties["readings"].Items.Type); got != "STRING" {
		t.Errorf("readings item type = %s, want STRING", got)
	}
	if len(schema.Required) != 2 {
		t.Errorf("got %d required fields, want 2", len(schema.Required))
	}
}
