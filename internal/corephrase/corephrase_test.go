package corephrase

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
)

func TestScoreJapanese(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		// 5 runes + 2×2 kanji = 9, short penalty −10, clamped to 0.
		{"元気です。", 0},
		// 19 runes + 2×8 kanji = 35.
		{"田中さんは昨日新しい仕事を始めました。", 35},
		// 14 runes + 2×3 kanji = 20, question −5 = 15.
		{"どこで昼ご飯を食べましたか？", 15},
		// 10 runes + 2×4 kanji = 18, ね marker −3 = 15, short −10 = 5.
		{"今日はいい天気ですね", 5},
	}
	for _, tt := range tests {
		if got := Score(tt.text, lang.Japanese); got != tt.want {
			t.Errorf("Score(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestScoreSpanishWordBonus(t *testing.T) {
	// 14 runes + 2×3 words = 20.
	got := Score("Quiero comer a", lang.Spanish)
	if got != 20 {
		t.Errorf("Score = %d, want 20", got)
	}
}

func TestScoreQuestionPenaltyBothMarks(t *testing.T) {
	ascii := Score("Do you like sushi and rice?", lang.English)
	fullwidth := Score("Do you like sushi and rice？", lang.English)
	if ascii != fullwidth {
		t.Errorf("halfwidth %d != fullwidth %d, penalty should apply to both", ascii, fullwidth)
	}
	statement := Score("Do you like sushi and rice.", lang.English)
	if statement-ascii != 5 {
		t.Errorf("question penalty = %d, want 5", statement-ascii)
	}
}

func TestScoreLengthBoundaries(t *testing.T) {
	tests := []struct {
		runes int
		want  int
	}{
		{10, 2},  // 10 + 2×1 word − 10 short penalty
		{11, 13}, // 11 + 2, no penalty
		{50, 52}, // 50 + 2, no bonus
		{51, 73}, // 51 + 2 + 20 long bonus
	}
	for _, tt := range tests {
		text := strings.Repeat("a", tt.runes)
		if got := Score(text, lang.English); got != tt.want {
			t.Errorf("Score(%d×a) = %d, want %d", tt.runes, got, tt.want)
		}
	}
}

func TestScoreNeverNegative(t *testing.T) {
	// 2 runes − short penalty would be negative without the clamp.
	if got := Score("ね", lang.Japanese); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

// sentencesOfLengths builds single-word English sentences whose scores
// strictly increase with index.
func sentencesOfLengths(lengths ...int) []content.Sentence {
	out := make([]content.Sentence, len(lengths))
	for i, n := range lengths {
		out[i] = content.Sentence{
			ID:   fmt.Sprintf("s%d", i),
			Text: strings.Repeat("a", n),
		}
	}
	return out
}

func TestSelectEmpty(t *testing.T) {
	_, err := Select(nil, lang.English, 2, 5)
	if !errors.Is(err, ErrEmptyDialogue) {
		t.Fatalf("error = %v, want ErrEmptyDialogue", err)
	}
}

func TestSelectStrideSpansDifficulty(t *testing.T) {
	// 9 sentences, target = 9/3 = 3, stride step 3 over the sorted order.
	sentences := sentencesOfLengths(11, 12, 13, 14, 15, 16, 17, 18, 19)
	got, err := Select(sentences, lang.English, 2, 5)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantIDs := []string{"s0", "s3", "s6"}
	for i, item := range got {
		if item.SourceSentenceID != wantIDs[i] {
			t.Errorf("pick %d = %s, want %s", i, item.SourceSentenceID, wantIDs[i])
		}
		if item.Order != i {
			t.Errorf("pick %d Order = %d, want %d", i, item.Order, i)
		}
		if item.ID == "" {
			t.Errorf("pick %d has empty ID", i)
		}
	}
	// Easiest first.
	if got[0].Score >= got[2].Score {
		t.Errorf("scores not ascending: %d .. %d", got[0].Score, got[2].Score)
	}
}

func TestSelectMinClamp(t *testing.T) {
	sentences := sentencesOfLengths(11, 12, 13, 14)
	got, err := Select(sentences, lang.English, 3, 10)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want min clamp 3", len(got))
	}
}

func TestSelectMaxClamp(t *testing.T) {
	lengths := make([]int, 30)
	for i := range lengths {
		lengths[i] = 11 + i
	}
	got, err := Select(sentencesOfLengths(lengths...), lang.English, 2, 5)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("len = %d, want max clamp 5", len(got))
	}
}

func TestSelectTargetCappedAtInput(t *testing.T) {
	sentences := sentencesOfLengths(11, 12)
	got, err := Select(sentences, lang.English, 3, 6)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want all 2 sentences", len(got))
	}
}

func TestSelectStableOnTies(t *testing.T) {
	// Identical texts score identically; dialogue order must survive.
	sentences := []content.Sentence{
		{ID: "first", Text: "aaaaaaaaaaaa"},
		{ID: "second", Text: "aaaaaaaaaaaa"},
		{ID: "third", Text: "aaaaaaaaaaaa"},
	}
	got, err := Select(sentences, lang.English, 3, 3)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	wantIDs := []string{"first", "second", "third"}
	for i, item := range got {
		if item.SourceSentenceID != wantIDs[i] {
			t.Errorf("pick %d = %s, want %s", i, item.SourceSentenceID, wantIDs[i])
		}
	}
}

func TestStrideIndices(t *testing.T) {
	tests := []struct {
		n, target int
		want      []int
	}{
		{10, 3, []int{0, 3, 6}},
		{5, 5, []int{0, 1, 2, 3, 4}},
		{5, 8, []int{0, 1, 2, 3, 4}},
		{7, 2, []int{0, 3}},
		{0, 3, nil},
		{4, 0, nil},
	}
	for _, tt := range tests {
		got := StrideIndices(tt.n, tt.target)
		if len(got) != len(tt.want) {
			t.Errorf("StrideIndices(%d, %d) = %v, want %v", tt.n, tt.target, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("StrideIndices(%d, %d) = %v, want %v", tt.n, tt.target, got, tt.want)
				break
			}
		}
	}
}
