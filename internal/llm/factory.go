package llm

import (
	"context"
	"fmt"

	"github.com/convolab/lessonsmith/internal/store"
)

// newBaseProvider constructs the vendor adapter selected by cfg.Provider,
// without any middleware. The mock provider is handled by callers.
func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return base, nil
}

// NewProvider creates a Provider from configuration, wrapped with audit
// logging and retry middleware. The mock provider is returned bare.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Retry wraps logging, so every attempt lands in the audit log.
	logged := WithLogging(base, cfg.Provider, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from LESSONSMITH_* configuration,
// falling back to key discovery when no provider is selected explicitly.
// Commands pass the open store's event repo so traffic lands in the audit
// log; a nil repo skips the logging middleware for store-less runs.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Provider == "" || cfg.Validate() != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set LESSONSMITH_LLM_PROVIDER or an API key env var")
		}
		cfg = discovered
	}

	if eventRepo != nil {
		return NewProvider(ctx, cfg, eventRepo)
	}

	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return WithRetry(base, cfg.Retry), nil
}
