package pigen

import "testing"

func patternSession(firstCorrect, total int) *Session {
	pattern := make([]bool, total)
	for i := 0; i < firstCorrect; i++ {
		pattern[i] = true
	}
	return validSession(pattern...)
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name         string
		firstCorrect int
		total        int
		wantFail     bool
	}{
		{"even split of 10", 5, 10, false},
		{"7 of 10 at the bound", 7, 10, false},
		{"3 of 10 at the bound", 3, 10, false},
		{"8 of 10 over", 8, 10, true},
		{"2 of 10 over the other way", 2, 10, true},
		{"all first of 10", 10, 10, true},
		{"none first of 10", 0, 10, true},
		{"14 of 20 at the proportional bound", 14, 20, false},
		{"15 of 20 over", 15, 20, true},
		{"4 of 5 within ceil", 4, 5, false},
		{"5 of 5 over", 5, 5, true},
	}
	v := &BalanceValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(patternSession(tt.firstCorrect, tt.total))
			if tt.wantFail && err == nil {
				t.Error("expected failure")
			}
			if !tt.wantFail && err != nil {
				t.Errorf("unexpected failure: %v", err)
			}
		})
	}
}

func TestBalance_TinySetsSkipped(t *testing.T) {
	v := &BalanceValidator{}
	// All three in one position, but too few items to judge.
	if err := v.Validate(patternSession(3, 3)); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}
