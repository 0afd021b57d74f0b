package exchange

import (
	"strings"
	"unicode/utf8"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
)

// FilterVocabulary drops candidate words that are not worth drilling:
// function words, bare particles, and sub-word fragments. The policy only
// applies to languages with a curated stopword list; everything passes
// through for the rest.
func FilterVocabulary(items []content.VocabularyItem, c lang.Code) []content.VocabularyItem {
	if !lang.HasStopwordList(c) {
		return items
	}
	kept := make([]content.VocabularyItem, 0, len(items))
	for _, v := range items {
		if keepWord(v.Word, c) {
			kept = append(kept, v)
		}
	}
	return kept
}

func keepWord(w string, c lang.Code) bool {
	w = strings.TrimSpace(w)
	if w == "" {
		return false
	}
	if lang.IsLogographic(c) && utf8.RuneCountInString(w) < 2 {
		return false
	}
	if lang.IsStopword(w, c) {
		return false
	}
	if lang.IsSingleSyllabicChar(w) {
		return false
	}
	return true
}
