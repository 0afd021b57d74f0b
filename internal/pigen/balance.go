package pigen

import "fmt"

// BalanceValidator checks that correct answers are spread across the two
// choice positions. A set whose correct answer always sits in slot one
// trains position-guessing, not comprehension. The bound is 7 of 10,
// scaled proportionally for other set sizes.
type BalanceValidator struct{}

func (v *BalanceValidator) Name() string { return "balance" }

func (v *BalanceValidator) Validate(s *Session) *ValidationError {
	n := len(s.Items)
	if n < 4 {
		// Too few items for a position split to mean anything.
		return nil
	}

	first := 0
	for _, it := range s.Items {
		if len(it.Choices) > 0 && it.Choices[0].IsCorrect {
			first++
		}
	}

	limit := (7*n + 9) / 10
	if first > limit || n-first > limit {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct-answer positions split %d/%d, limit %d of %d per position", first, n-first, limit, n),
		}
	}
	return nil
}
