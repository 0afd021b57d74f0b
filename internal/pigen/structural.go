package pigen

import "fmt"

// StructuralValidator checks that the session has the expected shape:
// the requested item count, two choices per item, exactly one marked
// correct, and no blank required fields.
type StructuralValidator struct {
	// WantItems is the item count the session was generated for.
	// Zero disables the count check.
	WantItems int
}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(s *Session) *ValidationError {
	if len(s.Items) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "session has no items",
		}
	}
	if v.WantItems > 0 && len(s.Items) != v.WantItems {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d items, got %d", v.WantItems, len(s.Items)),
		}
	}
	for i, it := range s.Items {
		if it.Type != TypeInterpretation && it.Type != TypeAuralDiscrimination {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d: unknown type %q", i, it.Type),
			}
		}
		if it.Question == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d: question is empty", i),
			}
		}
		if it.MainSentence == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d: main_sentence is empty", i),
			}
		}
		if it.AudioText == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d: audio_text is empty", i),
			}
		}
		if it.Explanation == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d: explanation is empty", i),
			}
		}
		if len(it.Choices) != 2 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d: expected 2 choices, got %d", i, len(it.Choices)),
			}
		}
		correct := 0
		for j, c := range it.Choices {
			if c.Text == "" {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("item %d: choice %d has empty text", i, j),
				}
			}
			if c.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d: expected exactly 1 correct choice, got %d", i, correct),
			}
		}
	}
	return nil
}
