// Package exchange turns raw dialogue sentences into playable lesson
// exchanges sized to a target duration, each annotated with teachable
// vocabulary and a stable speaker voice.
//
// The pipeline degrades rather than fails: a failed sentence split keeps
// the sentence whole, a failed vocabulary call leaves vocabulary empty.
// Only empty input is an error.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/corephrase"
	"github.com/convolab/lessonsmith/internal/lang"
	"github.com/convolab/lessonsmith/internal/llm"
)

// secondsPerExchange is the pacing estimate used to size a lesson: one
// exchange of drilling per 90 seconds of target duration.
const secondsPerExchange = 90

// Config holds generation limits for the extraction calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default extraction config.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.3,
	}
}

// Params configures one extraction run.
type Params struct {
	Sentences       []content.Sentence
	Lang            lang.Code
	DurationMinutes float64
	// Roster carries previously assigned voices for speaker continuity
	// across repeated extractions of the same scenario. Optional.
	Roster content.VoiceRoster
	// Role genders pick the default voice pool for speakers absent from
	// the roster.
	SpeakerOneGender Gender
	SpeakerTwoGender Gender
	// Relationships labels each speaker (friend, coworker, clerk).
	// Optional.
	Relationships map[string]string
}

// Result is one extraction run's output. Voices is the per-run speaker to
// voice map, returned so the caller can persist it into the next roster.
// SplitFallbacks counts multi-sentence lines that stayed whole because the
// split call failed or returned fewer than two parts; VocabularyFailed
// reports a lost vocabulary call. Both let the caller record degradation.
type Result struct {
	Exchanges        []content.Exchange
	Voices           map[string]string
	SplitFallbacks   int
	VocabularyFailed bool
}

// Extractor runs the dialogue exchange extraction pipeline.
type Extractor struct {
	provider llm.Provider
	logger   *zap.Logger
	config   Config
}

// New creates an Extractor. A nil logger disables logging.
func New(provider llm.Provider, logger *zap.Logger, cfg Config) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{provider: provider, logger: logger, config: cfg}
}

// Extract runs the full pipeline: split overlong sentences, size the set
// to the target duration, extract and filter vocabulary, assign voices.
func (e *Extractor) Extract(ctx context.Context, p Params) (*Result, error) {
	if len(p.Sentences) == 0 {
		return nil, corephrase.ErrEmptyDialogue
	}

	sentences, splitFallbacks := e.splitLongSentences(ctx, p.Sentences, p.Lang)

	target := int(p.DurationMinutes * 60 / secondsPerExchange)
	if target < 1 {
		target = 1
	}
	if len(sentences) > target {
		idxs := corephrase.StrideIndices(len(sentences), target)
		kept := make([]content.Sentence, 0, len(idxs))
		for _, i := range idxs {
			kept = append(kept, sentences[i])
		}
		sentences = kept
	}

	vocab := e.extractVocabulary(ctx, sentences, p.Lang)

	assigner := newVoiceAssigner(p.Roster, defaultPool(p.Lang, p.SpeakerOneGender, p.SpeakerTwoGender))

	exchanges := make([]content.Exchange, 0, len(sentences))
	for i, s := range sentences {
		exchanges = append(exchanges, content.Exchange{
			ID:                uuid.NewString(),
			Order:             i,
			Speaker:           s.Speaker,
			RelationshipLabel: p.Relationships[s.Speaker],
			VoiceID:           assigner.assign(s.Speaker),
			Text:              s.Text,
			Translation:       s.Translation,
			Reading:           s.Reading,
			Vocabulary:        FilterVocabulary(vocab[i], p.Lang),
		})
	}

	return &Result{
		Exchanges:        exchanges,
		Voices:           assigner.assignments(),
		SplitFallbacks:   splitFallbacks,
		VocabularyFailed: vocab == nil,
	}, nil
}

// splitLongSentences replaces every sentence holding more than one
// terminal punctuation mark with its independent sentences. Calls run
// sequentially; source order is preserved. Failed splits keep the
// original sentence and are counted in the second return.
func (e *Extractor) splitLongSentences(ctx context.Context, in []content.Sentence, c lang.Code) ([]content.Sentence, int) {
	out := make([]content.Sentence, 0, len(in))
	fallbacks := 0
	for _, s := range in {
		if lang.TerminalMarkCount(s.Text) <= 1 {
			out = append(out, s)
			continue
		}
		parts, err := e.splitSentence(ctx, s, c)
		if err != nil {
			e.logger.Warn("sentence split failed, keeping unsplit",
				zap.String("sentence_id", s.ID),
				zap.String("text", s.Text),
				zap.Error(err))
			out = append(out, s)
			fallbacks++
			continue
		}
		out = append(out, parts...)
	}
	return out, fallbacks
}

// rawSplit tolerates key-name drift in the split response.
type rawSplit struct {
	Text          string `json:"text"`
	TextL2        string `json:"textL2"`
	Translation   string `json:"translation"`
	TranslationL1 string `json:"translationL1"`
}

func (r rawSplit) text() string {
	if r.Text != "" {
		return r.Text
	}
	return r.TextL2
}

func (r rawSplit) translation() string {
	if r.Translation != "" {
		return r.Translation
	}
	return r.TranslationL1
}

func (e *Extractor) splitSentence(ctx context.Context, s content.Sentence, c lang.Code) ([]content.Sentence, error) {
	ctx = llm.WithPurpose(ctx, "sentence-split")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: splitSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSplitMessage(s, c)},
		},
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("split request: %w", err)
	}

	doc, err := llm.ExtractJSON(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("split response: %w", err)
	}

	var raws []rawSplit
	if err := json.Unmarshal(doc, &raws); err != nil {
		return nil, fmt.Errorf("split response shape: %w", err)
	}
	if len(raws) < 2 {
		return nil, fmt.Errorf("split returned %d sentences, want at least 2", len(raws))
	}

	parts := make([]content.Sentence, 0, len(raws))
	for i, r := range raws {
		if r.text() == "" {
			return nil, fmt.Errorf("split returned a blank sentence at position %d", i)
		}
		parts = append(parts, content.Sentence{
			ID:          fmt.Sprintf("%s-%d", s.ID, i),
			Speaker:     s.Speaker,
			Text:        r.text(),
			Translation: r.translation(),
		})
	}
	return parts, nil
}

// rawVocab tolerates key-name drift in the vocabulary response.
type rawVocab struct {
	Word          string `json:"word"`
	TextL2        string `json:"textL2"`
	Translation   string `json:"translation"`
	TranslationL1 string `json:"translationL1"`
	Reading       string `json:"reading"`
	ReadingL2     string `json:"readingL2"`
}

func (r rawVocab) word() string {
	if r.Word != "" {
		return r.Word
	}
	return r.TextL2
}

func (r rawVocab) translation() string {
	if r.Translation != "" {
		return r.Translation
	}
	return r.TranslationL1
}

func (r rawVocab) reading() string {
	if r.Reading != "" {
		return r.Reading
	}
	return r.ReadingL2
}

// extractVocabulary issues the single batched vocabulary call and maps
// sentence index to candidate words. Any failure returns nil: every
// exchange then carries empty vocabulary.
func (e *Extractor) extractVocabulary(ctx context.Context, sentences []content.Sentence, c lang.Code) map[int][]content.VocabularyItem {
	ctx = llm.WithPurpose(ctx, "vocab-extract")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: vocabSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildVocabMessage(sentences, c)},
		},
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		e.logger.Warn("vocabulary extraction failed, emitting empty vocabulary",
			zap.Int("sentence_count", len(sentences)),
			zap.Error(err))
		return nil
	}

	doc, err := llm.ExtractJSON(string(resp.Content))
	if err != nil {
		e.logger.Warn("vocabulary response unparseable, emitting empty vocabulary", zap.Error(err))
		return nil
	}

	var parsed map[string][]rawVocab
	if err := json.Unmarshal(doc, &parsed); err != nil {
		e.logger.Warn("vocabulary response shape invalid, emitting empty vocabulary", zap.Error(err))
		return nil
	}

	out := make(map[int][]content.VocabularyItem, len(parsed))
	for key, raws := range parsed {
		idx, err := strconv.Atoi(key)
		if err != nil {
			e.logger.Warn("non-numeric index in vocabulary response", zap.String("key", key))
			continue
		}
		for _, r := range raws {
			if r.word() == "" {
				continue
			}
			out[idx] = append(out[idx], content.VocabularyItem{
				Word:        r.word(),
				Translation: r.translation(),
				Reading:     r.reading(),
			})
		}
	}
	return out
}
