package exchange

import (
	"testing"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
)

func vocab(words ...string) []content.VocabularyItem {
	items := make([]content.VocabularyItem, len(words))
	for i, w := range words {
		items[i] = content.VocabularyItem{Word: w}
	}
	return items
}

func TestFilterVocabulary_NoStopwordListPassesThrough(t *testing.T) {
	// No curated list for French; even obvious function words survive.
	in := vocab("le", "de", "manger")
	got := FilterVocabulary(in, lang.French)
	if len(got) != 3 {
		t.Fatalf("expected pass-through, got %d of 3", len(got))
	}
}

func TestFilterVocabulary_Japanese(t *testing.T) {
	in := vocab("は", "です", "ね", "食べる", "天気", "する")
	got := FilterVocabulary(in, lang.Japanese)

	want := []string{"食べる", "天気"}
	if len(got) != len(want) {
		t.Fatalf("expected %d survivors, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Word != w {
			t.Errorf("survivor %d = %q, want %q", i, got[i].Word, w)
		}
	}
}

func TestKeepWord(t *testing.T) {
	tests := []struct {
		name string
		word string
		lang lang.Code
		want bool
	}{
		{"content verb", "食べる", lang.Japanese, true},
		{"content noun", "天気", lang.Japanese, true},
		{"blank", "  ", lang.Japanese, false},
		{"particle", "は", lang.Japanese, false},
		{"copula", "です", lang.Japanese, false},
		{"single kana", "ね", lang.Japanese, false},
		{"single katakana", "ン", lang.Japanese, false},
		{"single kanji too short", "人", lang.Japanese, false},
		{"two kanji ok", "人生", lang.Japanese, true},
		{"chinese function word", "的", lang.Chinese, false},
		{"chinese content word", "朋友", lang.Chinese, true},
		{"english stopword uppercase", "The", lang.English, false},
		{"english content word", "weather", lang.English, true},
		{"spanish stopword", "de", lang.Spanish, false},
		{"spanish short content word", "ir", lang.Spanish, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keepWord(tt.word, tt.lang); got != tt.want {
				t.Errorf("keepWord(%q, %s) = %v, want %v", tt.word, tt.lang, got, tt.want)
			}
		})
	}
}
