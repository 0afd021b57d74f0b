package lang

import "strings"

// stopwords lists function words excluded from extracted vocabulary. These
// carry grammatical rather than lexical meaning; drilling them as isolated
// vocabulary items teaches nothing. Languages without an entry pass all
// words through.
var stopwords = map[Code]map[string]struct{}{
	Japanese: setOf(
		// Particles
		"は", "が", "を", "に", "で", "と", "も", "へ", "の", "や",
		"から", "まで", "より", "か", "ね", "よ",
		// Copulas and polite endings
		"です", "だ", "である", "ます", "でした", "だった",
		// High-frequency grammatical glue
		"する", "なる", "ある", "いる", "こと", "もの", "これ", "それ", "あれ",
	),
	Chinese: setOf(
		"的", "了", "吗", "呢", "吧", "啊", "是", "在", "和", "也",
		"很", "就", "都", "这", "那",
	),
	Spanish: setOf(
		"el", "la", "los", "las", "un", "una", "de", "en", "y", "o",
		"que", "a", "es", "son", "está", "están",
	),
	English: setOf(
		"the", "a", "an", "of", "in", "on", "and", "or", "is", "are",
		"to", "it", "that", "this",
	),
}

func setOf(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// HasStopwordList reports whether the language has a curated stopword list.
// Vocabulary filtering only applies to languages that do.
func HasStopwordList(c Code) bool {
	_, ok := stopwords[c]
	return ok
}

// IsStopword reports whether w is a function word for the language.
// Alphabetic scripts match case-insensitively.
func IsStopword(w string, c Code) bool {
	set, ok := stopwords[c]
	if !ok {
		return false
	}
	w = strings.TrimSpace(w)
	if _, hit := set[w]; hit {
		return true
	}
	if !IsLogographic(c) {
		if _, hit := set[strings.ToLower(w)]; hit {
			return true
		}
	}
	return false
}
