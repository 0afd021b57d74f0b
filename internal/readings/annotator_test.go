package readings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
)

// furiganaStub answers every request with reading "<text>[よみ]".
func furiganaStub(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		resp := FuriganaResult{Kanji: req.Text, Kana: "よみ", Furigana: req.Text + "[よみ]"}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestAnnotateCoreItems_Japanese(t *testing.T) {
	server := furiganaStub(t)
	defer server.Close()

	ann := NewAnnotator(NewFuriganaClient(WithBaseURL(server.URL)), NewPinyinClient(), nil)
	items := []content.CoreItem{
		{
			Text: "昼ご飯を食べました",
			Components: []content.PhraseComponent{
				{Text: "食べました", Order: 0},
				{Text: "昼ご飯を", Order: 1},
			},
		},
		{Text: "元気です", Reading: "既存[きそん]"},
	}

	err := ann.AnnotateCoreItems(context.Background(), items, lang.Japanese)
	require.NoError(t, err)
	assert.Equal(t, "昼ご飯を食べました[よみ]", items[0].Reading)
	assert.Equal(t, "食べました[よみ]", items[0].Components[0].Reading)
	assert.Equal(t, "昼ご飯を[よみ]", items[0].Components[1].Reading)
	// An existing reading is not overwritten.
	assert.Equal(t, "既存[きそん]", items[1].Reading)
}

func TestAnnotateExchanges_ChineseBatchesOneCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "/pinyin/batch", r.URL.Path)
		var req batchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		out := make([]PinyinResult, len(req.Texts))
		for i, text := range req.Texts {
			out[i] = PinyinResult{Characters: text, PinyinToneMarks: fmt.Sprintf("pin%d", i)}
		}
		require.NoError(t, json.NewEncoder(w).Encode(out))
	}))
	defer server.Close()

	ann := NewAnnotator(NewFuriganaClient(), NewPinyinClient(WithBaseURL(server.URL)), nil)
	exchanges := []content.Exchange{
		{
			Text:       "你好",
			Vocabulary: []content.VocabularyItem{{Word: "朋友"}},
		},
		{Text: "再见"},
	}

	err := ann.AnnotateExchanges(context.Background(), exchanges, lang.Chinese)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "pin0", exchanges[0].Reading)
	assert.Equal(t, "pin1", exchanges[0].Vocabulary[0].Reading)
	assert.Equal(t, "pin2", exchanges[1].Reading)
}

func TestAnnotate_AlphabeticLanguageNoCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no sidecar call expected for Spanish")
	}))
	defer server.Close()

	ann := NewAnnotator(
		NewFuriganaClient(WithBaseURL(server.URL)),
		NewPinyinClient(WithBaseURL(server.URL)),
		nil,
	)
	items := []content.CoreItem{{Text: "Quiero comer"}}

	err := ann.AnnotateCoreItems(context.Background(), items, lang.Spanish)
	require.NoError(t, err)
	assert.Empty(t, items[0].Reading)
}

func TestAnnotate_SidecarDownDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	ann := NewAnnotator(NewFuriganaClient(WithBaseURL(server.URL)), NewPinyinClient(), nil)
	items := []content.CoreItem{{Text: "元気です"}}

	err := ann.AnnotateCoreItems(context.Background(), items, lang.Japanese)
	require.Error(t, err)
	// Content stays usable, just unannotated.
	assert.Empty(t, items[0].Reading)
}

func TestAnnotate_NothingToFill(t *testing.T) {
	// All readings present: no server needed, no error possible.
	ann := NewAnnotator(NewFuriganaClient(WithBaseURL("http://127.0.0.1:1")), NewPinyinClient(), nil)
	items := []content.CoreItem{{Text: "元気です", Reading: "元気[げんき]です"}}

	err := ann.AnnotateCoreItems(context.Background(), items, lang.Japanese)
	require.NoError(t, err)
}
