package readings

import (
	"context"
	"fmt"
)

// FuriganaResult carries the three renderings of one Japanese text.
// Furigana uses bracket style: 漢[かん]字[じ].
type FuriganaResult struct {
	Kanji    string `json:"kanji"`
	Kana     string `json:"kana"`
	Furigana string `json:"furigana"`
}

// FuriganaClient talks to the furigana sidecar service.
type FuriganaClient struct {
	service
}

// NewFuriganaClient creates a client for the furigana service. The base
// URL comes from LESSONSMITH_FURIGANA_URL, falling back to localhost:8000.
func NewFuriganaClient(opts ...Option) *FuriganaClient {
	return &FuriganaClient{service: newService(defaultFuriganaURL, "LESSONSMITH_FURIGANA_URL", opts)}
}

// Generate returns the kana and bracket-furigana renderings of a
// Japanese text.
func (c *FuriganaClient) Generate(ctx context.Context, text string) (*FuriganaResult, error) {
	var out FuriganaResult
	if err := c.postJSON(ctx, "/furigana", textRequest{Text: text}, &out); err != nil {
		return nil, fmt.Errorf("furigana request: %w", err)
	}
	return &out, nil
}
