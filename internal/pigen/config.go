package pigen

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// parsed session. They execute in order; the first failure aborts
	// the generation.
	Validators []Validator

	// ItemCount is the number of exercise items to request.
	ItemCount int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	cfg := Config{
		ItemCount:   10,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
	cfg.Validators = []Validator{
		&StructuralValidator{WantItems: cfg.ItemCount},
		&ReferentValidator{},
		&BalanceValidator{},
	}
	return cfg
}
