// Package corephrase scores dialogue sentences for pedagogical difficulty
// and selects the core phrases a lesson drills. Pure functions, no LLM.
package corephrase

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
)

// ErrEmptyDialogue is returned when selection receives no sentences.
var ErrEmptyDialogue = errors.New("dialogue has no sentences")

const (
	questionPenalty    = 5
	naturalnessPenalty = 3
	shortPenalty       = 10
	longBonus          = 20
	shortLen           = 10
	longLen            = 50
)

// Score rates a sentence's difficulty as drill material. Higher means
// harder. Length drives the base score; structural complexity adds to it;
// conversational ease subtracts. Never negative.
func Score(text string, c lang.Code) int {
	runes := utf8.RuneCountInString(text)
	score := runes

	if lang.IsLogographic(c) {
		score += 2 * lang.LogographCount(text)
	} else {
		score += 2 * len(strings.Fields(text))
	}

	if lang.IsInterrogative(text) {
		score -= questionPenalty
	}
	if lang.HasNaturalnessMarker(text, c) {
		score -= naturalnessPenalty
	}
	if runes <= shortLen {
		score -= shortPenalty
	}
	if runes > longLen {
		score += longBonus
	}

	if score < 0 {
		score = 0
	}
	return score
}

// Select picks the core phrases for a lesson. Sentences are scored, sorted
// easiest-first, and stride-sampled so the picks span the difficulty range
// rather than clustering at one end. The target count is a third of the
// input, clamped to [min, max].
func Select(sentences []content.Sentence, c lang.Code, min, max int) ([]content.CoreItem, error) {
	if len(sentences) == 0 {
		return nil, ErrEmptyDialogue
	}

	type scored struct {
		sentence content.Sentence
		score    int
	}
	items := make([]scored, len(sentences))
	for i, s := range sentences {
		items[i] = scored{sentence: s, score: Score(s.Text, c)}
	}

	// Stable: equal scores keep dialogue order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score < items[j].score
	})

	target := len(sentences) / 3
	if target < min {
		target = min
	}
	if target > max {
		target = max
	}
	if target > len(sentences) {
		target = len(sentences)
	}

	picked := make([]content.CoreItem, 0, target)
	for _, idx := range StrideIndices(len(items), target) {
		it := items[idx]
		picked = append(picked, content.CoreItem{
			ID:               uuid.NewString(),
			SourceSentenceID: it.sentence.ID,
			Text:             it.sentence.Text,
			Translation:      it.sentence.Translation,
			Reading:          it.sentence.Reading,
			Order:            len(picked),
			Score:            it.score,
		})
	}
	return picked, nil
}

// StrideIndices returns target indices evenly spaced across [0, n), starting
// at 0. When target >= n every index is returned.
func StrideIndices(n, target int) []int {
	if n <= 0 || target <= 0 {
		return nil
	}
	if target >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	step := n / target
	if step < 1 {
		step = 1
	}
	out := make([]int, 0, target)
	for i := 0; len(out) < target && i < n; i += step {
		out = append(out, i)
	}
	return out
}
