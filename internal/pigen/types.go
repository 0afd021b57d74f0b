package pigen

import (
	"fmt"

	"github.com/convolab/lessonsmith/internal/lang"
)

// ItemType describes how the learner engages with an exercise item.
type ItemType string

const (
	// TypeInterpretation presents a sentence in writing and asks the
	// learner to pick what it means.
	TypeInterpretation ItemType = "interpretation"

	// TypeAuralDiscrimination plays a sentence and asks the learner to
	// pick the interpretation it supports.
	TypeAuralDiscrimination ItemType = "aural_discrimination"
)

// Choice is one answer slot in a binary-choice item.
type Choice struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// SentencePair holds the two sides of a minimal pair shown after the
// learner answers, when the item contrasts two near-identical sentences.
type SentencePair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// Item is one comprehension exercise. The learner never produces the
// target form; they interpret a sentence that contains it. Choices are
// binary: two slots, exactly one correct.
type Item struct {
	Type            ItemType      `json:"type"`
	Question        string        `json:"question"`
	ContextSentence string        `json:"context_sentence,omitempty"`
	MainSentence    string        `json:"main_sentence"`
	AudioText       string        `json:"audio_text"`
	Choices         []Choice      `json:"choices"`
	Explanation     string        `json:"explanation"`
	SentencePair    *SentencePair `json:"sentence_pair,omitempty"`
}

// Session is a validated exercise set targeting one grammar contrast at
// one proficiency level.
type Session struct {
	Items          []Item     `json:"items"`
	Level          lang.Level `json:"level"`
	GrammarPointID string     `json:"grammar_point_id"`
}

// GenerateInput identifies the contrast and level to generate for.
type GenerateInput struct {
	// PointID is a grammar taxonomy ID, e.g. "ha_vs_ga".
	PointID string

	// Level is the learner's proficiency level. It bounds the vocabulary
	// the exercises may use.
	Level lang.Level
}

// GenerationError reports a failed generation attempt. Exercise content is
// never fabricated to paper over a failure; the caller gets this instead.
type GenerationError struct {
	// Stage names where generation broke: "taxonomy", "request", "parse",
	// or "validate".
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("exercise generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
