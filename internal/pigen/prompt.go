package pigen

import (
	"fmt"
	"strings"

	"github.com/convolab/lessonsmith/internal/grammar"
)

const systemPrompt = `You are a language pedagogy author writing processing-instruction comprehension exercises.

Processing instruction trains learners to extract meaning from a grammatical form. The learner never produces the form; every item asks them to interpret a sentence that contains it.

Rules:
- Generate exactly the requested number of items, all targeting the stated grammar contrast at the stated level.
- Every item is a binary choice: two options, exactly one marked correct.
- Both option surface forms must appear verbatim inside the item's main sentence. The learner chooses between two things the sentence actually mentions.
- audio_text is what a voice actor reads aloud: the context sentence (when present) followed by the main sentence.
- The explanation names, in one or two sentences, the cue in the sentence that settles the answer.
- An item the learner can answer from world knowledge or from the context sentence alone is defective. The target form must carry the answer.

Quality-control checklist. Verify every point before responding:
1. Each choice text appears character-for-character in its main sentence.
2. Exactly one choice per item is marked correct.
3. Correct answers are split roughly evenly between the first and second choice position across the set. Never more than 7 of 10 in one position.
4. A context sentence never gives away the answer; it only sets the scene.
5. All vocabulary respects the stated ceiling.`

// buildUserMessage composes the generation request from the grammar
// point's guidance, the level's vocabulary ceiling, and the config.
func buildUserMessage(input GenerateInput, point *grammar.Point, cfg Config) string {
	g := guidanceFor(point.ID)

	var b strings.Builder

	fmt.Fprintf(&b, "Grammar contrast: %s\n", point.Name)
	fmt.Fprintf(&b, "Category: %s\n", point.Category)
	fmt.Fprintf(&b, "Level: %s\n", input.Level)
	fmt.Fprintf(&b, "Items to generate: %d\n", cfg.ItemCount)

	fmt.Fprintf(&b, "\nContrast under test: %s\n", g.contrast)
	fmt.Fprintf(&b, "Required structure: %s\n", g.structureRule)

	b.WriteString("\nWorked minimal pairs:\n")
	for _, p := range g.minimalPairs {
		fmt.Fprintf(&b, "- %s\n", p)
	}

	b.WriteString("\nTask templates:\n")
	for _, t := range g.taskTemplates {
		fmt.Fprintf(&b, "- %s\n", t)
	}

	fmt.Fprintf(&b, "\nVocabulary ceiling: %s\n", vocabCeiling(input.Level))

	b.WriteString("\nRespond with a single JSON object {\"items\": [...]}, each item shaped as:\n")
	b.WriteString(`{"type": "interpretation" | "aural_discrimination", "question": "...", "context_sentence": "", "main_sentence": "...", "audio_text": "...", "choices": [{"id": "a", "text": "...", "is_correct": true}, {"id": "b", "text": "...", "is_correct": false}], "explanation": "...", "sentence_pair": {"first": "...", "second": "..."}}`)

	return b.String()
}
