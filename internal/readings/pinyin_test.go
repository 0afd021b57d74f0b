package readings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinyinClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pinyin", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"characters": "你好",
			"pinyinToneMarks": "nǐ hǎo",
			"pinyinToneNumbers": "ni3 hao3"
		}`))
	}))
	defer server.Close()

	client := NewPinyinClient(WithBaseURL(server.URL))
	res, err := client.Generate(context.Background(), "你好")
	require.NoError(t, err)
	assert.Equal(t, "nǐ hǎo", res.PinyinToneMarks)
	assert.Equal(t, "ni3 hao3", res.PinyinToneNumbers)
}

func TestPinyinClient_GenerateBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pinyin/batch", r.URL.Path)

		var req batchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, []string{"你好", "再见"}, req.Texts)

		_, _ = w.Write([]byte(`[
			{"characters": "你好", "pinyinToneMarks": "nǐ hǎo", "pinyinToneNumbers": "ni3 hao3"},
			{"characters": "再见", "pinyinToneMarks": "zài jiàn", "pinyinToneNumbers": "zai4 jian4"}
		]`))
	}))
	defer server.Close()

	client := NewPinyinClient(WithBaseURL(server.URL))
	res, err := client.GenerateBatch(context.Background(), []string{"你好", "再见"})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "zài jiàn", res[1].PinyinToneMarks)
}

func TestPinyinClient_BatchLengthMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"characters": "你好", "pinyinToneMarks": "nǐ hǎo", "pinyinToneNumbers": "ni3 hao3"}]`))
	}))
	defer server.Close()

	client := NewPinyinClient(WithBaseURL(server.URL))
	_, err := client.GenerateBatch(context.Background(), []string{"你好", "再见"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 results for 2 texts")
}
