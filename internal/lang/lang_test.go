package lang

import "testing"

func TestLogographCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"今日はいい天気", 4},       // kanji only, kana excluded
		{"ひらがなだけ", 0},
		{"我吃饺子", 4},
		{"hello world", 0},
		{"漢字とkanjiの混在", 4},
	}
	for _, tt := range tests {
		if got := LogographCount(tt.text); got != tt.want {
			t.Errorf("LogographCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestUnitCount(t *testing.T) {
	tests := []struct {
		text string
		code Code
		want int
	}{
		{"餃子を食べました", Japanese, 8},
		{"我 吃饭", Chinese, 3}, // space dropped
		{"me gusta comer", Spanish, 3},
		{"one", English, 1},
		{"", English, 0},
	}
	for _, tt := range tests {
		if got := UnitCount(tt.text, tt.code); got != tt.want {
			t.Errorf("UnitCount(%q, %s) = %d, want %d", tt.text, tt.code, got, tt.want)
		}
	}
}

func TestIsInterrogative(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"お元気ですか？", true},
		{"How are you?", true},
		{"元気です。", false},
		{"Is this? No.", false}, // question mark must be terminal
		{"どうですか？ ", true},        // trailing space tolerated
	}
	for _, tt := range tests {
		if got := IsInterrogative(tt.text); got != tt.want {
			t.Errorf("IsInterrogative(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestTerminalMarkCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"田中さんは元気です。今日は晴れです。", 2},
		{"元気です。", 1},
		{"How are you? Fine.", 2},
		{"すごい！本当？", 2},
		{"no terminal marks here", 0},
	}
	for _, tt := range tests {
		if got := TerminalMarkCount(tt.text); got != tt.want {
			t.Errorf("TerminalMarkCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestIsSingleSyllabicChar(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"て", true},
		{"ヒ", true},
		{"食", false}, // logograph, not syllabic
		{"たべ", false},
		{"a", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSingleSyllabicChar(tt.word); got != tt.want {
			t.Errorf("IsSingleSyllabicChar(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestHasNaturalnessMarker(t *testing.T) {
	tests := []struct {
		text string
		code Code
		want bool
	}{
		{"いい天気ですね", Japanese, true},
		{"元気です", Japanese, false},
		{"¿Cómo estás?", Spanish, true},
		{"Well, I think so", English, true},
		{"そうだけど", Japanese, true},
		{"hmm...", Chinese, true}, // ellipsis is language-independent
	}
	for _, tt := range tests {
		if got := HasNaturalnessMarker(tt.text, tt.code); got != tt.want {
			t.Errorf("HasNaturalnessMarker(%q, %s) = %v, want %v", tt.text, tt.code, got, tt.want)
		}
	}
}

func TestHasStopwordList(t *testing.T) {
	if !HasStopwordList(Japanese) {
		t.Error("Japanese should have a stopword list")
	}
	if HasStopwordList(German) {
		t.Error("German should have no stopword list")
	}
}

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		code Code
		want bool
	}{
		{"は", Japanese, true},
		{"です", Japanese, true},
		{"餃子", Japanese, false},
		{"的", Chinese, true},
		{"饺子", Chinese, false},
		{"The", English, true}, // case-insensitive for alphabetic scripts
		{"el", Spanish, true},
		{"comer", Spanish, false},
		{"der", German, false}, // no list for German: everything passes
	}
	for _, tt := range tests {
		if got := IsStopword(tt.word, tt.code); got != tt.want {
			t.Errorf("IsStopword(%q, %s) = %v, want %v", tt.word, tt.code, got, tt.want)
		}
	}
}

func TestLevelsFor(t *testing.T) {
	if got := LevelsFor(Japanese); len(got) != 5 || got[0] != N5 || got[4] != N1 {
		t.Errorf("LevelsFor(Japanese) = %v, want N5..N1", got)
	}
	if got := LevelsFor(Chinese); len(got) != 6 || got[0] != HSK1 {
		t.Errorf("LevelsFor(Chinese) = %v, want HSK1..HSK6", got)
	}
	if got := LevelsFor(Spanish); len(got) != 6 || got[0] != A1 || got[5] != C2 {
		t.Errorf("LevelsFor(Spanish) = %v, want A1..C2", got)
	}
}

func TestValidLevel(t *testing.T) {
	if !ValidLevel(N4, Japanese) {
		t.Error("N4 should be valid for Japanese")
	}
	if ValidLevel(N4, Spanish) {
		t.Error("N4 should not be valid for Spanish")
	}
	if !ValidLevel(B1, French) {
		t.Error("B1 should be valid for French")
	}
}

func TestRankOrdering(t *testing.T) {
	if Rank(N5) >= Rank(N3) {
		t.Errorf("Rank(N5)=%d should be below Rank(N3)=%d", Rank(N5), Rank(N3))
	}
	if Rank(A1) >= Rank(C2) {
		t.Errorf("Rank(A1)=%d should be below Rank(C2)=%d", Rank(A1), Rank(C2))
	}
}
