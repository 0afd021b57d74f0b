package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/corephrase"
	"github.com/convolab/lessonsmith/internal/lang"
	"github.com/convolab/lessonsmith/internal/llm"
)

func jaSentences() []content.Sentence {
	return []content.Sentence{
		{ID: "s1", Speaker: "Tanaka", Text: "おはようございます。", Translation: "Good morning."},
		{ID: "s2", Speaker: "Sato", Text: "昼ご飯を食べましたか？", Translation: "Did you eat lunch?"},
	}
}

func emptyVocabJSON() json.RawMessage {
	return json.RawMessage(`{}`)
}

func jaParams(sentences []content.Sentence) Params {
	return Params{
		Sentences:       sentences,
		Lang:            lang.Japanese,
		DurationMinutes: 10,
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	ex := New(llm.NewMockProvider(), nil, DefaultConfig())

	_, err := ex.Extract(context.Background(), jaParams(nil))
	if !errors.Is(err, corephrase.ErrEmptyDialogue) {
		t.Fatalf("expected ErrEmptyDialogue, got %v", err)
	}
}

func TestExtract_ShortSentencesSkipSplitting(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: emptyVocabJSON()})
	ex := New(mock, nil, DefaultConfig())

	res, err := ex.Extract(context.Background(), jaParams(jaSentences()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only the vocabulary call; neither sentence crosses the split threshold.
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
	if len(res.Exchanges) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(res.Exchanges))
	}
	for i, e := range res.Exchanges {
		if e.Order != i {
			t.Errorf("exchange %d: order = %d", i, e.Order)
		}
		if e.ID == "" {
			t.Errorf("exchange %d: empty id", i)
		}
	}
}

func TestExtract_SplitsMultiSentenceLine(t *testing.T) {
	sentences := []content.Sentence{
		{ID: "s1", Speaker: "Tanaka", Text: "田中さんは元気です。今日は晴れです。", Translation: "Tanaka is well. It is sunny today."},
		{ID: "s2", Speaker: "Sato", Text: "そうですね。", Translation: "That's right."},
	}
	splitResp := json.RawMessage(`[
		{"text": "田中さんは元気です。", "translation": "Tanaka is well."},
		{"text": "今日は晴れです。", "translation": "It is sunny today."}
	]`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: splitResp},
		llm.MockResponse{Content: emptyVocabJSON()},
	)
	ex := New(mock, nil, DefaultConfig())

	res, err := ex.Extract(context.Background(), jaParams(sentences))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 LLM calls (split + vocab), got %d", mock.CallCount())
	}
	if mock.Purposes[0] != "sentence-split" || mock.Purposes[1] != "vocab-extract" {
		t.Errorf("purposes = %v, want [sentence-split vocab-extract]", mock.Purposes)
	}
	if len(res.Exchanges) != 3 {
		t.Fatalf("expected 3 exchanges after split, got %d", len(res.Exchanges))
	}
	if res.Exchanges[0].Text != "田中さんは元気です。" {
		t.Errorf("unexpected first text: %q", res.Exchanges[0].Text)
	}
	if res.Exchanges[1].Text != "今日は晴れです。" {
		t.Errorf("unexpected second text: %q", res.Exchanges[1].Text)
	}
	if res.Exchanges[2].Text != "そうですね。" {
		t.Errorf("unexpected third text: %q", res.Exchanges[2].Text)
	}
	// Both halves keep the original line's speaker.
	if res.Exchanges[0].Speaker != "Tanaka" || res.Exchanges[1].Speaker != "Tanaka" {
		t.Errorf("split parts lost speaker: %q, %q", res.Exchanges[0].Speaker, res.Exchanges[1].Speaker)
	}
	if res.SplitFallbacks != 0 {
		t.Errorf("SplitFallbacks = %d, want 0", res.SplitFallbacks)
	}
}

func TestExtract_SplitAcceptsAliasKeys(t *testing.T) {
	sentences := []content.Sentence{
		{ID: "s1", Speaker: "A", Text: "田中さんは元気です。今日は晴れです。"},
	}
	splitResp := json.RawMessage(`[
		{"textL2": "田中さんは元気です。", "translationL1": "Tanaka is well."},
		{"textL2": "今日は晴れです。", "translationL1": "It is sunny today."}
	]`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: splitResp},
		llm.MockResponse{Content: emptyVocabJSON()},
	)
	ex := New(mock, nil, DefaultConfig())

	res, err := ex.Extract(context.Background(), jaParams(sentences))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Exchanges) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(res.Exchanges))
	}
	if res.Exchanges[0].Translation != "Tanaka is well." {
		t.Errorf("alias translation not picked up: %q", res.Exchanges[0].Translation)
	}
}

func TestExtract_SplitFailureKeepsSentenceWhole(t *testing.T) {
	sentences := []content.Sentence{
		{ID: "s1", Speaker: "A", Text: "田中さんは元気です。今日は晴れです。"},
	}
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("service down")},
		llm.MockResponse{Content: emptyVocabJSON()},
	)
	ex := New(mock, nil, DefaultConfig())

	res, err := ex.Extract(context.Background(), jaParams(sentences))
	if err != nil {
		t.Fatalf("expected degradation, got error: %v", err)
	}
	if len(res.Exchanges) != 1 {
		t.Fatalf("expected 1 exchange, got %d", len(res.Exchanges))
	}
	if res.Exchanges[0].Text != "田中さんは元気です。今日は晴れです。" {
		t.Errorf("sentence was not kept whole: %q", res.Exchanges[0].Text)
	}
	if res.SplitFallbacks != 1 {
		t.Errorf("SplitFallbacks = %d, want 1", res.SplitFallbacks)
	}
}

func TestExtract_SplitSingleResultKeepsSentenceWhole(t *testing.T) {
	sentences := []content.Sentence{
		{ID: "s1", Speaker: "A", Text: "田中さんは元気です。今日は晴れです。"},
	}
	// One element is not a split; the original line must survive.
	splitResp := json.RawMessage(`[{"text": "田中さんは元気です。今日は晴れです。", "translation": ""}]`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: splitResp},
		llm.MockResponse{Content: emptyVocabJSON()},
	)
	ex := New(mock, nil, DefaultConfig())

	res, err := ex.Extract(context.Background(), jaParams(sentences))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Exchanges) != 1 {
		t.Fatalf("expected 1 exchange, got %d", len(res.Exchanges))
	}
	if res.Exchanges[0].Text != sentences[0].Text {
		t.Errorf("sentence was not kept whole: %q", res.Exchanges[0].Text)
	}
}

func TestExtract_SamplesToDuration(t *testing.T) {
	sentences := []content.Sentence{
		{ID: "s0", Speaker: "A", Text: "零です。"},
		{ID: "s1", Speaker: "B", Text: "一です。"},
		{ID: "s2", Speaker: "A", Text: "二です。"},
		{ID: "s3", Speaker: "B", Text: "三です。"},
		{ID: "s4", Speaker: "A", Text: "四です。"},
		{ID: "s5", Speaker: "B", Text: "五です。"},
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: emptyVocabJSON()})
	ex := New(mock, nil, DefaultConfig())

	p := jaParams(sentences)
	p.DurationMinutes = 3 // 3*60/90 = 2 exchanges
	res, err := ex.Extract(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Exchanges) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(res.Exchanges))
	}
	// Stride over 6 with target 2 picks positions 0 and 3.
	if res.Exchanges[0].Text != "零です。" {
		t.Errorf("first pick = %q", res.Exchanges[0].Text)
	}
	if res.Exchanges[1].Text != "三です。" {
		t.Errorf("second pick = %q", res.Exchanges[1].Text)
	}
	if res.Exchanges[0].Order != 0 || res.Exchanges[1].Order != 1 {
		t.Errorf("orders not renumbered: %d, %d", res.Exchanges[0].Order, res.Exchanges[1].Order)
	}
}

func TestExtract_TargetFlooredAtOne(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: emptyVocabJSON()})
	ex := New(mock, nil, DefaultConfig())

	p := jaParams(jaSentences())
	p.DurationMinutes = 0.5
	res, err := ex.Extract(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Exchanges) != 1 {
		t.Fatalf("expected 1 exchange for a sub-minute lesson, got %d", len(res.Exchanges))
	}
}

func TestExtract_VocabularyNestedPerExchange(t *testing.T) {
	vocabResp := json.RawMessage(`{
		"0": [{"word": "おはよう", "translation": "good morning"}],
		"1": [{"word": "昼ご飯", "translation": "lunch", "reading": "ひるごはん"}, {"word": "食べました", "translation": "ate"}]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: vocabResp})
	ex := New(mock, nil, DefaultConfig())

	res, err := ex.Extract(context.Background(), jaParams(jaSentences()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Exchanges[0].Vocabulary) != 1 {
		t.Fatalf("exchange 0: expected 1 vocab item, got %d", len(res.Exchanges[0].Vocabulary))
	}
	if got := res.Exchanges[0].Vocabulary[0].Word; got != "おはよう" {
		t.Errorf("exchange 0 word = %q", got)
	}
	if len(res.Exchanges[1].Vocabulary) != 2 {
		t.Fatalf("exchange 1: expected 2 vocab items, got %d", len(res.Exchanges[1].Vocabulary))
	}
	if got := res.Exchanges[1].Vocabulary[0].Reading; got != "ひるごはん" {
		t.Errorf("exchange 1 reading = %q", got)
	}
	if res.VocabularyFailed {
		t.Error("VocabularyFailed = true, want false")
	}
}

func TestExtract_VocabularyFailureLeavesVocabEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("service down")})
	ex := New(mock, nil, DefaultConfig())

	res, err := ex.Extract(context.Background(), jaParams(jaSentences()))
	if err != nil {
		t.Fatalf("expected degradation, got error: %v", err)
	}
	for i, e := range res.Exchanges {
		if len(e.Vocabulary) != 0 {
			t.Errorf("exchange %d: expected empty vocabulary, got %d items", i, len(e.Vocabulary))
		}
	}
	if !res.VocabularyFailed {
		t.Error("VocabularyFailed = false, want true")
	}
}

func TestExtract_VocabularyMalformedLeavesVocabEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json at all`)})
	ex := New(mock, nil, DefaultConfig())

	res, err := ex.Extract(context.Background(), jaParams(jaSentences()))
	if err != nil {
		t.Fatalf("expected degradation, got error: %v", err)
	}
	for i, e := range res.Exchanges {
		if len(e.Vocabulary) != 0 {
			t.Errorf("exchange %d: expected empty vocabulary, got %d items", i, len(e.Vocabulary))
		}
	}
	if !res.VocabularyFailed {
		t.Error("VocabularyFailed = false, want true")
	}
}

func TestExtract_VocabularyFiltered(t *testing.T) {
	// は is a particle, ね a single kana; only 食べる should survive.
	vocabResp := json.RawMessage(`{
		"0": [{"word": "は", "translation": "topic marker"},
		      {"word": "ね", "translation": "right?"},
		      {"word": "食べる", "translation": "to eat"}]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: vocabResp})
	ex := New(mock, nil, DefaultConfig())

	p := jaParams(jaSentences()[:1])
	res, err := ex.Extract(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vocab := res.Exchanges[0].Vocabulary
	if len(vocab) != 1 {
		t.Fatalf("expected 1 surviving vocab item, got %d", len(vocab))
	}
	if vocab[0].Word != "食べる" {
		t.Errorf("surviving word = %q", vocab[0].Word)
	}
}

func TestExtract_VocabPromptTagsIndices(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: emptyVocabJSON()})
	ex := New(mock, nil, DefaultConfig())

	_, err := ex.Extract(context.Background(), jaParams(jaSentences()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "[0] おはようございます。") {
		t.Errorf("vocab prompt missing tagged sentence 0:\n%s", msg)
	}
	if !strings.Contains(msg, "[1] 昼ご飯を食べましたか？") {
		t.Errorf("vocab prompt missing tagged sentence 1:\n%s", msg)
	}
}

func TestExtract_RelationshipLabels(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: emptyVocabJSON()})
	ex := New(mock, nil, DefaultConfig())

	p := jaParams(jaSentences())
	p.Relationships = map[string]string{"Tanaka": "coworker", "Sato": "friend"}
	res, err := ex.Extract(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Exchanges[0].RelationshipLabel; got != "coworker" {
		t.Errorf("exchange 0 relationship = %q", got)
	}
	if got := res.Exchanges[1].RelationshipLabel; got != "friend" {
		t.Errorf("exchange 1 relationship = %q", got)
	}
}

func TestExtract_VoicesStableAndDistinct(t *testing.T) {
	sentences := []content.Sentence{
		{ID: "s1", Speaker: "Tanaka", Text: "おはよう。"},
		{ID: "s2", Speaker: "Sato", Text: "おはよう。"},
		{ID: "s3", Speaker: "Tanaka", Text: "元気？"},
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: emptyVocabJSON()})
	ex := New(mock, nil, DefaultConfig())

	res, err := ex.Extract(context.Background(), jaParams(sentences))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v1 := res.Exchanges[0].VoiceID
	v2 := res.Exchanges[1].VoiceID
	v3 := res.Exchanges[2].VoiceID
	if v1 == "" || v2 == "" {
		t.Fatal("voices not assigned")
	}
	if v1 == v2 {
		t.Errorf("distinct speakers share voice %q", v1)
	}
	if v1 != v3 {
		t.Errorf("same speaker changed voice: %q then %q", v1, v3)
	}
	if len(res.Voices) != 2 {
		t.Fatalf("expected 2 roster entries, got %d", len(res.Voices))
	}
	if res.Voices["Tanaka"] != v1 || res.Voices["Sato"] != v2 {
		t.Errorf("voice map mismatch: %v", res.Voices)
	}
}

func TestExtract_RosterOverridesDefaults(t *testing.T) {
	sentences := []content.Sentence{
		{ID: "s1", Speaker: "TANAKA", Text: "おはよう。"},
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: emptyVocabJSON()})
	ex := New(mock, nil, DefaultConfig())

	p := jaParams(sentences)
	p.Roster = content.VoiceRoster{"tanaka": "ja-JP-AoiNeural"}
	res, err := ex.Extract(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Exchanges[0].VoiceID; got != "ja-JP-AoiNeural" {
		t.Errorf("roster voice not used, got %q", got)
	}
	if res.Voices["TANAKA"] != "ja-JP-AoiNeural" {
		t.Errorf("voice map missing roster assignment: %v", res.Voices)
	}
}
