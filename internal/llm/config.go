package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects the active provider and carries per-vendor settings.
type Config struct {
	// Provider picks the vendor adapter: "anthropic", "openai",
	// "gemini", "openrouter", or "mock".
	Provider string

	// Timeout bounds one request end to end, retries included.
	Timeout time.Duration

	Retry RetryConfig

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
}

// AnthropicConfig configures the Anthropic provider. Model accepts a
// short name like "claude-haiku" or a full dated model ID.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig configures the OpenAI provider. A non-empty BaseURL
// points the client at any OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig configures the Google Gemini provider.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig configures the OpenRouter provider. Model uses
// OpenRouter's "vendor/model" form. BaseURL defaults to the public
// OpenRouter API when empty.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the exponential backoff applied to transient
// provider failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the runtime defaults: Anthropic with its small
// model, three attempts with doubling backoff, 30 seconds per request.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Timeout:  30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
	}
}

// envOverride assigns the env var's value to dst when it is set.
func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv builds a Config from LESSONSMITH_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOverride(&cfg.Provider, "LESSONSMITH_LLM_PROVIDER")

	envOverride(&cfg.Anthropic.APIKey, "LESSONSMITH_ANTHROPIC_API_KEY")
	envOverride(&cfg.Anthropic.Model, "LESSONSMITH_ANTHROPIC_MODEL")

	envOverride(&cfg.OpenAI.APIKey, "LESSONSMITH_OPENAI_API_KEY")
	envOverride(&cfg.OpenAI.Model, "LESSONSMITH_OPENAI_MODEL")
	envOverride(&cfg.OpenAI.BaseURL, "LESSONSMITH_OPENAI_BASE_URL")

	envOverride(&cfg.Gemini.APIKey, "LESSONSMITH_GEMINI_API_KEY")
	envOverride(&cfg.Gemini.Model, "LESSONSMITH_GEMINI_MODEL")

	envOverride(&cfg.OpenRouter.APIKey, "LESSONSMITH_OPENROUTER_API_KEY")
	envOverride(&cfg.OpenRouter.Model, "LESSONSMITH_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the vendors' conventional API key env vars and
// returns a Config for the first provider whose key is present. Probe
// order: Gemini, OpenAI, Anthropic, OpenRouter. Returns (Config{}, false)
// when no key is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probes := []struct {
		key      string
		provider string
		dst      *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}

	for _, p := range probes {
		if k := os.Getenv(p.key); k != "" {
			cfg.Provider = p.provider
			*p.dst = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate confirms the selected provider is known and has an API key.
// The mock provider needs no key.
func (c Config) Validate() error {
	keys := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}

	key, known := keys[c.Provider]
	if !known {
		if c.Provider == "mock" {
			return nil
		}
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("LESSONSMITH_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
