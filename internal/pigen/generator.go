// Package pigen generates processing-instruction exercise sessions for a
// grammar contrast. Generation is fail-loud: any service, parse, or
// validation failure surfaces as a GenerationError, never as fabricated
// exercise content.
package pigen

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/convolab/lessonsmith/internal/grammar"
	"github.com/convolab/lessonsmith/internal/llm"
)

// Generator produces exercise sessions using an LLM provider.
type Generator struct {
	provider llm.Provider
	logger   *zap.Logger
	config   Config
}

// New creates a Generator. A nil logger disables logging.
func New(provider llm.Provider, logger *zap.Logger, cfg Config) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{provider: provider, logger: logger, config: cfg}
}

// rawSession and friends are the response shapes before normalization.
type rawSession struct {
	Items []rawItem `json:"items"`
}

type rawItem struct {
	Type            string      `json:"type"`
	Question        string      `json:"question"`
	ContextSentence string      `json:"context_sentence"`
	MainSentence    string      `json:"main_sentence"`
	AudioText       string      `json:"audio_text"`
	Choices         []rawChoice `json:"choices"`
	Explanation     string      `json:"explanation"`
	SentencePair    *rawPair    `json:"sentence_pair"`
}

type rawChoice struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type rawPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// Generate produces one validated exercise session for the given grammar
// point and level, using exactly one LLM call.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*Session, error) {
	point := grammar.GetPoint(input.PointID)
	if point == nil {
		return nil, g.fail("taxonomy", input, fmt.Errorf("unknown grammar point %q", input.PointID))
	}

	ctx = llm.WithPurpose(ctx, "pi-generate")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, point, g.config)},
		},
		Schema:      SessionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, g.fail("request", input, err)
	}

	doc, err := llm.ExtractJSON(string(resp.Content))
	if err != nil {
		return nil, g.fail("parse", input, err)
	}

	var raw rawSession
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, g.fail("parse", input, err)
	}

	session := &Session{
		Level:          input.Level,
		GrammarPointID: point.ID,
		Items:          make([]Item, 0, len(raw.Items)),
	}
	for _, ri := range raw.Items {
		item := Item{
			Type:            ItemType(ri.Type),
			Question:        ri.Question,
			ContextSentence: ri.ContextSentence,
			MainSentence:    ri.MainSentence,
			AudioText:       ri.AudioText,
			Explanation:     ri.Explanation,
		}
		if ri.SentencePair != nil {
			item.SentencePair = &SentencePair{
				First:  ri.SentencePair.First,
				Second: ri.SentencePair.Second,
			}
		}
		for j, rc := range ri.Choices {
			id := rc.ID
			if id == "" {
				id = string(rune('a' + j))
			}
			item.Choices = append(item.Choices, Choice{
				ID:        id,
				Text:      rc.Text,
				IsCorrect: rc.IsCorrect,
			})
		}
		session.Items = append(session.Items, item)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(session); verr != nil {
			return nil, g.fail("validate", input, verr)
		}
	}

	return session, nil
}

// fail logs and wraps a generation failure.
func (g *Generator) fail(stage string, input GenerateInput, err error) *GenerationError {
	g.logger.Error("exercise generation failed",
		zap.String("stage", stage),
		zap.String("grammar_point", input.PointID),
		zap.String("level", string(input.Level)),
		zap.Error(err))
	return &GenerationError{Stage: stage, Err: err}
}
