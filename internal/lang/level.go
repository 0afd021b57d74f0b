package lang

// Level is a proficiency level on the scale native to the target language:
// JLPT for Japanese, HSK for Chinese, CEFR elsewhere.
type Level string

const (
	// JLPT (Japanese), easiest first.
	N5 Level = "N5"
	N4 Level = "N4"
	N3 Level = "N3"
	N2 Level = "N2"
	N1 Level = "N1"

	// HSK (Chinese).
	HSK1 Level = "HSK1"
	HSK2 Level = "HSK2"
	HSK3 Level = "HSK3"
	HSK4 Level = "HSK4"
	HSK5 Level = "HSK5"
	HSK6 Level = "HSK6"

	// CEFR (European languages).
	A1 Level = "A1"
	A2 Level = "A2"
	B1 Level = "B1"
	B2 Level = "B2"
	C1 Level = "C1"
	C2 Level = "C2"
)

// levelRank orders each scale easiest (0) to hardest.
var levelRank = map[Level]int{
	N5: 0, N4: 1, N3: 2, N2: 3, N1: 4,
	HSK1: 0, HSK2: 1, HSK3: 2, HSK4: 3, HSK5: 4, HSK6: 5,
	A1: 0, A2: 1, B1: 2, B2: 3, C1: 4, C2: 5,
}

// LevelsFor returns the proficiency scale for a language, easiest first.
func LevelsFor(c Code) []Level {
	switch c {
	case Japanese:
		return []Level{N5, N4, N3, N2, N1}
	case Chinese:
		return []Level{HSK1, HSK2, HSK3, HSK4, HSK5, HSK6}
	default:
		return []Level{A1, A2, B1, B2, C1, C2}
	}
}

// ValidLevel reports whether lv belongs to the scale used by language c.
func ValidLevel(lv Level, c Code) bool {
	for _, l := range LevelsFor(c) {
		if l == lv {
			return true
		}
	}
	return false
}

// Rank returns the position of lv within its scale, easiest = 0.
// Unknown levels rank as 0.
func Rank(lv Level) int {
	return levelRank[lv]
}
