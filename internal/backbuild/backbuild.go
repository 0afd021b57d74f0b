// Package backbuild decomposes core phrases into backward-build drill
// components: the phrase ending is taught first, then progressively longer
// tail segments. One batched LLM call covers every phrase that needs
// decomposition; any failure degrades to whole-phrase components rather
// than failing the caller.
package backbuild

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
	"github.com/convolab/lessonsmith/internal/llm"
)

const (
	// maxComponents caps a decomposition; longer chains overload the drill.
	maxComponents = 4
	// trivialUnits is the unit count at or below which a phrase is taught
	// whole.
	trivialUnits = 3
)

// Config holds generation limits for the batched decomposition call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default decomposition config.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// Decomposer orchestrates backward-build decomposition of core items.
type Decomposer struct {
	provider llm.Provider
	logger   *zap.Logger
	config   Config
}

// New creates a Decomposer. A nil logger disables logging.
func New(provider llm.Provider, logger *zap.Logger, cfg Config) *Decomposer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decomposer{provider: provider, logger: logger, config: cfg}
}

// Decompose fills in the Components of every item. The output always has
// the same length and order as the input; every item ends up with 1 to 4
// components whose orders run 0..k-1, order 0 being the phrase-final chunk.
// Failures never propagate: affected items fall back to a single
// whole-phrase component, and the number of such fallbacks is returned so
// callers can record the degradation. Phrases short enough to teach whole
// are not fallbacks.
func (d *Decomposer) Decompose(ctx context.Context, items []content.CoreItem, c lang.Code) ([]content.CoreItem, int) {
	out := make([]content.CoreItem, len(items))
	copy(out, items)

	// Short phrases are already drillable; only longer ones go to the LLM.
	var pending []int
	for i := range out {
		if lang.UnitCount(out[i].Text, c) <= trivialUnits {
			out[i].Components = wholePhraseComponent(out[i])
		} else {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return out, 0
	}

	decomposed, err := d.decomposeBatch(ctx, out, pending, c)
	if err != nil {
		d.logger.Warn("phrase decomposition failed, keeping whole phrases",
			zap.Int("phrase_count", len(pending)),
			zap.Error(err))
		for _, i := range pending {
			out[i].Components = wholePhraseComponent(out[i])
		}
		return out, len(pending)
	}

	fallbacks := 0
	for _, i := range pending {
		comps, ok := decomposed[i]
		if !ok {
			d.logger.Warn("phrase missing from decomposition response",
				zap.Int("index", i),
				zap.String("text", out[i].Text))
			out[i].Components = wholePhraseComponent(out[i])
			fallbacks++
			continue
		}
		out[i].Components = comps
	}
	return out, fallbacks
}

// rawComponent tolerates key-name drift in the service response.
type rawComponent struct {
	Text          string `json:"text"`
	TextL2        string `json:"textL2"`
	Translation   string `json:"translation"`
	TranslationL1 string `json:"translationL1"`
	Reading       string `json:"reading"`
	ReadingL2     string `json:"readingL2"`
}

func (r rawComponent) text() string {
	if r.Text != "" {
		return r.Text
	}
	return r.TextL2
}

func (r rawComponent) translation() string {
	if r.Translation != "" {
		return r.Translation
	}
	return r.TranslationL1
}

func (r rawComponent) reading() string {
	if r.Reading != "" {
		return r.Reading
	}
	return r.ReadingL2
}

// decomposeBatch issues the single batched request and maps original item
// index to validated components. Items with unusable entries are omitted
// from the result; the caller falls them back individually.
func (d *Decomposer) decomposeBatch(ctx context.Context, items []content.CoreItem, pending []int, c lang.Code) (map[int][]content.PhraseComponent, error) {
	ctx = llm.WithPurpose(ctx, "phrase-decompose")

	req := llm.Request{
		System: decomposeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDecomposeMessage(items, pending, c)},
		},
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("decomposition request: %w", err)
	}

	doc, err := llm.ExtractJSON(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("decomposition response: %w", err)
	}

	var parsed map[string][]rawComponent
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("decomposition response shape: %w", err)
	}

	result := make(map[int][]content.PhraseComponent, len(parsed))
	for key, raws := range parsed {
		idx, err := strconv.Atoi(key)
		if err != nil {
			d.logger.Warn("non-numeric index in decomposition response", zap.String("key", key))
			continue
		}
		comps, ok := d.buildComponents(idx, raws)
		if !ok {
			continue
		}
		result[idx] = comps
	}
	return result, nil
}

// buildComponents validates one phrase's component list and assigns
// backward-build orders.
func (d *Decomposer) buildComponents(idx int, raws []rawComponent) ([]content.PhraseComponent, bool) {
	if len(raws) == 0 || len(raws) > maxComponents {
		d.logger.Warn("unusable component count in decomposition response",
			zap.Int("index", idx),
			zap.Int("count", len(raws)))
		return nil, false
	}
	comps := make([]content.PhraseComponent, 0, len(raws))
	for order, r := range raws {
		if r.text() == "" {
			d.logger.Warn("blank component text in decomposition response", zap.Int("index", idx))
			return nil, false
		}
		comps = append(comps, content.PhraseComponent{
			Text:        r.text(),
			Translation: r.translation(),
			Reading:     r.reading(),
			Order:       order,
		})
	}
	return comps, true
}

func wholePhraseComponent(item content.CoreItem) []content.PhraseComponent {
	return []content.PhraseComponent{{
		Text:        item.Text,
		Translation: item.Translation,
		Reading:     item.Reading,
		Order:       0,
	}}
}
