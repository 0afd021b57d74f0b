package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantModel string
		wantErr   bool
	}{
		{
			"google model on default base URL",
			OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.5-flash"},
			"google/gemini-2.5-flash", false,
		},
		{
			"missing API key",
			OpenRouterConfig{Model: "google/gemini-2.5-flash"},
			"", true,
		},
		{
			"anthropic model",
			OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3.5-haiku"},
			"anthropic/claude-3.5-haiku", false,
		},
		{
			"custom base URL",
			OpenRouterConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3.1-8b-instruct", BaseURL: "https://custom.openrouter.example/v1"},
			"meta-llama/llama-3.1-8b-instruct", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewOpenRouterProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			// vendor/model IDs skip friendly-name resolution.
			if got := p.ModelID(); got != tt.wantModel {
				t.Errorf("ModelID() = %q, want %q", got, tt.wantModel)
			}
		})
	}
}
