// Package lang holds language-specific knowledge the pipeline depends on:
// script classification, text unit counting, sentence-final punctuation,
// conversational fillers, and function-word lists for vocabulary filtering.
package lang

import (
	"strings"
	"unicode"
)

// Code identifies a target language.
type Code string

const (
	Japanese Code = "ja"
	Chinese  Code = "zh"
	Spanish  Code = "es"
	English  Code = "en"
	French   Code = "fr"
	German   Code = "de"
)

// DisplayName returns a human-readable name for a language code.
func DisplayName(c Code) string {
	switch c {
	case Japanese:
		return "Japanese"
	case Chinese:
		return "Chinese"
	case Spanish:
		return "Spanish"
	case English:
		return "English"
	case French:
		return "French"
	case German:
		return "German"
	default:
		return string(c)
	}
}

// IsLogographic reports whether the language is written without spaces in a
// logographic or mixed-logographic script. Word counting and phrase
// decomposition treat these languages character-wise.
func IsLogographic(c Code) bool {
	return c == Japanese || c == Chinese
}

// LogographCount counts Han characters in s. Kana and Latin characters do
// not count; a sentence like 今日はいい天気 scores its kanji only.
func LogographCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			n++
		}
	}
	return n
}

// UnitCount returns the number of text units in s for complexity purposes:
// runes (excluding spaces) for logographic languages, whitespace-delimited
// words otherwise.
func UnitCount(s string, c Code) int {
	if IsLogographic(c) {
		n := 0
		for _, r := range s {
			if !unicode.IsSpace(r) {
				n++
			}
		}
		return n
	}
	return len(strings.Fields(s))
}

// IsInterrogative reports whether s ends with a question mark in either the
// halfwidth or fullwidth form.
func IsInterrogative(s string) bool {
	t := strings.TrimSpace(s)
	return strings.HasSuffix(t, "?") || strings.HasSuffix(t, "？")
}

// TerminalMarkCount counts sentence-terminal punctuation marks in s, in
// both halfwidth and fullwidth forms. A count above one means s holds more
// than one sentence.
func TerminalMarkCount(s string) int {
	n := 0
	for _, r := range s {
		switch r {
		case '。', '.', '！', '!', '？', '?':
			n++
		}
	}
	return n
}

// IsSingleSyllabicChar reports whether w is one isolated kana character.
// Such fragments are particles or inflection debris, never vocabulary.
func IsSingleSyllabicChar(w string) bool {
	runes := []rune(strings.TrimSpace(w))
	if len(runes) != 1 {
		return false
	}
	return unicode.Is(unicode.Hiragana, runes[0]) || unicode.Is(unicode.Katakana, runes[0])
}

// naturalnessMarkers lists conversational-filler cues per language. A
// sentence containing one reads as spoken rather than textbook language.
var naturalnessMarkers = map[Code][]string{
	Japanese: {"ね", "よ", "けど", "かな", "でしょう", "じゃん"},
	Chinese:  {"吧", "呢", "啊", "嘛", "哦"},
	Spanish:  {"¿", "¡", "pues", "bueno", "verdad"},
	English:  {"well,", "you know", "right?", "huh"},
	French:   {"hein", "bah", "quoi", "n'est-ce pas"},
	German:   {"mal", "doch", "halt", "oder?"},
}

// HasNaturalnessMarker reports whether s contains any conversational marker
// for the language. Matching is case-insensitive for alphabetic scripts;
// generic ellipsis counts for every language.
func HasNaturalnessMarker(s string, c Code) bool {
	if strings.Contains(s, "...") || strings.Contains(s, "…") {
		return true
	}
	markers := naturalnessMarkers[c]
	lower := strings.ToLower(s)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
