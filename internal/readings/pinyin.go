package readings

import (
	"context"
	"fmt"
)

// PinyinResult carries both pinyin renderings of one Chinese text.
// The wire names are fixed by the sidecar service.
type PinyinResult struct {
	Characters        string `json:"characters"`
	PinyinToneMarks   string `json:"pinyinToneMarks"`
	PinyinToneNumbers string `json:"pinyinToneNumbers"`
}

// PinyinClient talks to the pinyin sidecar service.
type PinyinClient struct {
	service
}

// NewPinyinClient creates a client for the pinyin service. The base URL
// comes from LESSONSMITH_PINYIN_URL, falling back to localhost:8001.
func NewPinyinClient(opts ...Option) *PinyinClient {
	return &PinyinClient{service: newService(defaultPinyinURL, "LESSONSMITH_PINYIN_URL", opts)}
}

// Generate returns the pinyin renderings of a Chinese text.
func (c *PinyinClient) Generate(ctx context.Context, text string) (*PinyinResult, error) {
	var out PinyinResult
	if err := c.postJSON(ctx, "/pinyin", textRequest{Text: text}, &out); err != nil {
		return nil, fmt.Errorf("pinyin request: %w", err)
	}
	return &out, nil
}

// batchRequest is the batch endpoint's request body.
type batchRequest struct {
	Texts []string `json:"texts"`
}

// GenerateBatch returns pinyin for several texts in one request,
// ordered as the input.
func (c *PinyinClient) GenerateBatch(ctx context.Context, texts []string) ([]PinyinResult, error) {
	var out []PinyinResult
	if err := c.postJSON(ctx, "/pinyin/batch", batchRequest{Texts: texts}, &out); err != nil {
		return nil, fmt.Errorf("pinyin batch request: %w", err)
	}
	if len(out) != len(texts) {
		return nil, fmt.Errorf("pinyin batch returned %d results for %d texts", len(out), len(texts))
	}
	return out, nil
}
