package pigen

import "fmt"

// Validator checks a parsed session for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, used in error
	// messages and logs, e.g. "structural", "referent", "balance".
	Name() string

	// Validate checks the session and returns nil if it passes.
	Validate(s *Session) *ValidationError
}

// ValidationError describes why a session failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
