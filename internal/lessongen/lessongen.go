// Package lessongen assembles finished lessons from raw dialogue. It chains
// the content pipeline stages (core phrase selection, backward-build
// decomposition, exchange extraction, readings annotation), reports progress
// to the job runner at stage boundaries, and records each stage's outcome in
// the audit log.
package lessongen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/convolab/lessonsmith/internal/backbuild"
	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/corephrase"
	"github.com/convolab/lessonsmith/internal/exchange"
	"github.com/convolab/lessonsmith/internal/jobs"
	"github.com/convolab/lessonsmith/internal/lang"
	"github.com/convolab/lessonsmith/internal/llm"
	"github.com/convolab/lessonsmith/internal/readings"
	"github.com/convolab/lessonsmith/internal/store"
)

// Config bounds the core item selection.
type Config struct {
	MinCoreItems int
	MaxCoreItems int
}

// DefaultConfig returns the default assembly bounds.
func DefaultConfig() Config {
	return Config{
		MinCoreItems: 4,
		MaxCoreItems: 12,
	}
}

// AssembleParams describes one lesson build.
type AssembleParams struct {
	Sentences       []content.Sentence
	Lang            lang.Code
	Title           string
	DurationMinutes float64
	// Roster carries voices assigned in earlier builds of the same
	// scenario. Optional.
	Roster content.VoiceRoster
	// Role genders pick the default voice pool for speakers absent from
	// the roster.
	SpeakerOneGender exchange.Gender
	SpeakerTwoGender exchange.Gender
	// Relationships labels each speaker (friend, coworker, clerk).
	// Optional.
	Relationships map[string]string
}

// Assembler runs the full lesson pipeline. The event repo and reporter are
// optional; a nil annotator skips the readings stage.
type Assembler struct {
	decomposer *backbuild.Decomposer
	extractor  *exchange.Extractor
	annotator  *readings.Annotator
	events     store.EventRepo
	reporter   jobs.Reporter
	logger     *zap.Logger
	config     Config
}

// New creates an Assembler. A nil logger disables logging; a nil reporter
// reports nowhere.
func New(provider llm.Provider, annotator *readings.Annotator, events store.EventRepo, reporter jobs.Reporter, logger *zap.Logger, cfg Config) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = jobs.NopReporter{}
	}
	return &Assembler{
		decomposer: backbuild.New(provider, logger, backbuild.DefaultConfig()),
		extractor:  exchange.New(provider, logger, exchange.DefaultConfig()),
		annotator:  annotator,
		events:     events,
		reporter:   reporter,
		logger:     logger,
		config:     cfg,
	}
}

// BuildCoreItems selects core phrases, decomposes them into backward builds,
// and annotates readings. It runs outside any lesson, so no pipeline events
// are recorded; Assemble is the audited path.
func (a *Assembler) BuildCoreItems(ctx context.Context, sentences []content.Sentence, c lang.Code, min, max int) ([]content.CoreItem, error) {
	items, err := corephrase.Select(sentences, c, min, max)
	if err != nil {
		return nil, fmt.Errorf("select core phrases: %w", err)
	}

	items, _ = a.decomposer.Decompose(ctx, items, c)

	if a.annotator != nil && lang.IsLogographic(c) {
		// Annotation failure already degrades inside the annotator.
		_ = a.annotator.AnnotateCoreItems(ctx, items, c)
	}
	return items, nil
}

// Assemble runs the full pipeline over one dialogue and returns the
// finished lesson. LLM-stage failures degrade the lesson and are recorded;
// only an unusable dialogue fails the build.
func (a *Assembler) Assemble(ctx context.Context, p AssembleParams) (*content.Lesson, error) {
	lessonID := uuid.NewString()
	a.start(ctx)

	items, err := corephrase.Select(p.Sentences, p.Lang, a.config.MinCoreItems, a.config.MaxCoreItems)
	if err != nil {
		a.record(ctx, lessonID, store.StageCoreSelect, store.OutcomeFailed, err.Error(), 0)
		a.done(ctx, err)
		return nil, fmt.Errorf("select core phrases: %w", err)
	}
	a.record(ctx, lessonID, store.StageCoreSelect, store.OutcomeOK, "", len(items))
	a.progress(ctx, 20, "core phrases selected")

	items, fallbacks := a.decomposer.Decompose(ctx, items, p.Lang)
	if fallbacks > 0 {
		a.record(ctx, lessonID, store.StageBackbuild, store.OutcomeDegraded,
			fmt.Sprintf("%d phrases kept whole after decomposition failures", fallbacks), len(items))
	} else {
		a.record(ctx, lessonID, store.StageBackbuild, store.OutcomeOK, "", len(items))
	}
	a.progress(ctx, 40, "backward builds decomposed")

	res, err := a.extractor.Extract(ctx, exchange.Params{
		Sentences:        p.Sentences,
		Lang:             p.Lang,
		DurationMinutes:  p.DurationMinutes,
		Roster:           p.Roster,
		SpeakerOneGender: p.SpeakerOneGender,
		SpeakerTwoGender: p.SpeakerTwoGender,
		Relationships:    p.Relationships,
	})
	if err != nil {
		a.record(ctx, lessonID, store.StageExchangeSplit, store.OutcomeFailed, err.Error(), 0)
		a.done(ctx, err)
		return nil, fmt.Errorf("extract exchanges: %w", err)
	}
	if res.SplitFallbacks > 0 {
		a.record(ctx, lessonID, store.StageExchangeSplit, store.OutcomeDegraded,
			fmt.Sprintf("%d lines kept whole after split failures", res.SplitFallbacks), len(res.Exchanges))
	} else {
		a.record(ctx, lessonID, store.StageExchangeSplit, store.OutcomeOK, "", len(res.Exchanges))
	}
	a.progress(ctx, 60, "exchanges extracted")

	if res.VocabularyFailed {
		a.record(ctx, lessonID, store.StageVocab, store.OutcomeDegraded,
			"vocabulary call lost, exchanges carry none", 0)
	} else {
		a.record(ctx, lessonID, store.StageVocab, store.OutcomeOK, "", vocabCount(res.Exchanges))
	}
	a.progress(ctx, 75, "vocabulary extracted")

	if a.annotator != nil && lang.IsLogographic(p.Lang) {
		annErr := a.annotator.AnnotateCoreItems(ctx, items, p.Lang)
		if annErr == nil {
			annErr = a.annotator.AnnotateExchanges(ctx, res.Exchanges, p.Lang)
		}
		if annErr != nil {
			a.record(ctx, lessonID, store.StageReadings, store.OutcomeDegraded, annErr.Error(), 0)
		} else {
			a.record(ctx, lessonID, store.StageReadings, store.OutcomeOK, "", len(items)+len(res.Exchanges))
		}
		a.progress(ctx, 90, "readings annotated")
	}

	lesson := &content.Lesson{
		ID:              lessonID,
		Language:        p.Lang,
		Title:           p.Title,
		DurationMinutes: p.DurationMinutes,
		CoreItems:       items,
		Exchanges:       res.Exchanges,
		Voices:          res.Voices,
		CreatedAt:       time.Now().UTC(),
	}
	a.done(ctx, nil)
	return lesson, nil
}

func vocabCount(exchanges []content.Exchange) int {
	n := 0
	for _, e := range exchanges {
		n += len(e.Vocabulary)
	}
	return n
}

// record appends one stage event. Audit failures log but never block the
// build.
func (a *Assembler) record(ctx context.Context, lessonID, stage, outcome, detail string, count int) {
	if a.events == nil {
		return
	}
	err := a.events.AppendPipelineEvent(ctx, store.PipelineEventData{
		LessonID:  lessonID,
		Stage:     stage,
		Outcome:   outcome,
		Detail:    detail,
		ItemCount: count,
	})
	if err != nil {
		a.logger.Warn("pipeline event not recorded",
			zap.String("stage", stage),
			zap.Error(err))
	}
}

func (a *Assembler) start(ctx context.Context) {
	if err := a.reporter.Start(ctx); err != nil {
		a.logger.Warn("job start not reported", zap.Error(err))
	}
}

func (a *Assembler) progress(ctx context.Context, pct int, note string) {
	if err := a.reporter.Progress(ctx, pct, note); err != nil {
		a.logger.Warn("job progress not reported", zap.Int("pct", pct), zap.Error(err))
	}
}

func (a *Assembler) done(ctx context.Context, buildErr error) {
	if err := a.reporter.Done(ctx, buildErr); err != nil {
		a.logger.Warn("job completion not reported", zap.Error(err))
	}
}
