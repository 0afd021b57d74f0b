package pigen

import (
	"fmt"
	"strings"
)

// ReferentValidator enforces the required-structure rule: every choice
// surface form, correct and incorrect alike, must appear inside the main
// sentence. An item whose wrong answer is absent from the sentence can be
// solved by scanning rather than by comprehension.
type ReferentValidator struct{}

func (v *ReferentValidator) Name() string { return "referent" }

func (v *ReferentValidator) Validate(s *Session) *ValidationError {
	for i, it := range s.Items {
		for _, c := range it.Choices {
			if !strings.Contains(it.MainSentence, c.Text) {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("item %d: choice %q not found in main sentence %q", i, c.Text, it.MainSentence),
				}
			}
		}
	}
	return nil
}
