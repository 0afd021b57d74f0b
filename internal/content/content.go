// Package content defines the shared lesson content types passed between
// pipeline stages.
package content

import (
	"strings"
	"time"

	"github.com/convolab/lessonsmith/internal/lang"
)

// Sentence is one line of source dialogue. Immutable input; pipeline stages
// copy it, never mutate it.
type Sentence struct {
	ID          string `json:"id"`
	Speaker     string `json:"speaker"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
	// Reading is the pronunciation aid for logographic scripts: bracket
	// furigana for Japanese, tone-marked pinyin for Chinese. Empty until
	// annotation runs, and for alphabetic scripts.
	Reading string `json:"reading,omitempty"`
}

// PhraseComponent is one chunk of a backward-build drill. Order 0 is the
// phrase-final chunk, taught first; higher orders extend toward the start
// of the phrase.
type PhraseComponent struct {
	Text        string `json:"text"`
	Reading     string `json:"reading,omitempty"`
	Translation string `json:"translation,omitempty"`
	Order       int    `json:"order"`
}

// CoreItem is a phrase selected for focused drilling, with its backward-build
// decomposition. Order is the item's position in the selected subset.
type CoreItem struct {
	ID               string            `json:"id"`
	SourceSentenceID string            `json:"source_sentence_id"`
	Text             string            `json:"text"`
	Translation      string            `json:"translation"`
	Reading          string            `json:"reading,omitempty"`
	Score            int               `json:"score"`
	Order            int               `json:"order"`
	Components       []PhraseComponent `json:"components,omitempty"`
}

// VocabularyItem is a content word extracted from an exchange.
type VocabularyItem struct {
	Word           string     `json:"word"`
	Translation    string     `json:"translation"`
	Reading        string     `json:"reading,omitempty"`
	ProficiencyTag lang.Level `json:"proficiency_tag,omitempty"`
}

// Exchange is a minimal conversational turn in the finished lesson.
// VoiceID is stable per speaker name within one extraction run.
type Exchange struct {
	ID                string           `json:"id"`
	Order             int              `json:"order"`
	Speaker           string           `json:"speaker"`
	RelationshipLabel string           `json:"relationship_label,omitempty"`
	VoiceID           string           `json:"voice_id"`
	Text              string           `json:"text"`
	Translation       string           `json:"translation"`
	Reading           string           `json:"reading,omitempty"`
	Vocabulary        []VocabularyItem `json:"vocabulary,omitempty"`
}

// Lesson is the assembled pipeline output.
type Lesson struct {
	ID              string            `json:"id"`
	Language        lang.Code         `json:"language"`
	Title           string            `json:"title"`
	DurationMinutes float64           `json:"duration_minutes"`
	CoreItems       []CoreItem        `json:"core_items"`
	Exchanges       []Exchange        `json:"exchanges"`
	Voices          map[string]string `json:"voices"`
	CreatedAt       time.Time         `json:"created_at"`
}

// VoiceRoster maps speaker names to TTS voice IDs supplied by the caller,
// carrying voice continuity across repeated extractions of one scenario.
type VoiceRoster map[string]string

// Lookup finds the voice for a speaker name, matching case-insensitively.
func (r VoiceRoster) Lookup(speaker string) (string, bool) {
	if v, ok := r[speaker]; ok {
		return v, true
	}
	want := strings.ToLower(speaker)
	for name, v := range r {
		if strings.ToLower(name) == want {
			return v, true
		}
	}
	return "", false
}
