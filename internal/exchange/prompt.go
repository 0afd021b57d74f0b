package exchange

import (
	"fmt"
	"strings"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
)

const splitSystemPrompt = `You split an overlong dialogue line into its independent sentences for audio lesson pacing.

Rules:
- Split only at sentence boundaries. Never rephrase, reorder, or drop content.
- Give each resulting sentence its own natural translation.
- Respond with a JSON array ordered as in the original text.
- Each element: {"text": "...", "translation": "..."}.
- Output raw JSON only. No commentary, no markdown fences.`

func buildSplitMessage(s content.Sentence, c lang.Code) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target language: %s\n", lang.DisplayName(c))
	fmt.Fprintf(&b, "Dialogue line: %s\n", s.Text)
	if s.Translation != "" {
		fmt.Fprintf(&b, "Original translation: %s\n", s.Translation)
	}

	return b.String()
}

const vocabSystemPrompt = `You select the vocabulary worth drilling from dialogue sentences in an audio language lesson.

Rules:
- For each sentence, pick 1 or 2 key content words (nouns, verbs, adjectives) a learner should retain.
- Never pick grammatical particles, copulas, pronouns, or ultra-common function words.
- Give a concise translation for each word. Include a reading for logographic scripts.
- Respond with a single JSON object mapping each sentence's index (string key) to an array of word entries.
- Each entry: {"word": "...", "translation": "...", "reading": "..."}.
- Output raw JSON only. No commentary, no markdown fences.`

func buildVocabMessage(sentences []content.Sentence, c lang.Code) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target language: %s\n", lang.DisplayName(c))
	fmt.Fprintf(&b, "Sentences:\n\n")
	for i, s := range sentences {
		fmt.Fprintf(&b, "[%d] %s\n", i, s.Text)
	}

	return b.String()
}
