package pigen

import (
	"strings"
	"testing"

	"github.com/convolab/lessonsmith/internal/lang"
)

func validItem(correctFirst bool) Item {
	return Item{
		Type:         TypeInterpretation,
		Question:     "誰が学生ですか。",
		MainSentence: "田中さんが学生で、佐藤さんは先生です。",
		AudioText:    "田中さんが学生で、佐藤さんは先生です。",
		Choices: []Choice{
			{ID: "a", Text: "田中さん", IsCorrect: correctFirst},
			{ID: "b", Text: "佐藤さん", IsCorrect: !correctFirst},
		},
		Explanation: "が picks out the referent the predicate holds of.",
	}
}

func validSession(pattern ...bool) *Session {
	s := &Session{Level: lang.N5, GrammarPointID: "ha_vs_ga"}
	for _, p := range pattern {
		s.Items = append(s.Items, validItem(p))
	}
	return s
}

func TestStructural_Valid(t *testing.T) {
	v := &StructuralValidator{WantItems: 4}
	if err := v.Validate(validSession(true, false, true, false)); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}

func TestStructural_Defects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Session)
		wantMsg string
	}{
		{
			name:    "no items",
			mutate:  func(s *Session) { s.Items = nil },
			wantMsg: "no items",
		},
		{
			name:    "wrong count",
			mutate:  func(s *Session) { s.Items = s.Items[:2] },
			wantMsg: "expected 4 items",
		},
		{
			name:    "unknown type",
			mutate:  func(s *Session) { s.Items[1].Type = "fill_in_blank" },
			wantMsg: "unknown type",
		},
		{
			name:    "empty question",
			mutate:  func(s *Session) { s.Items[0].Question = "" },
			wantMsg: "question is empty",
		},
		{
			name:    "empty main sentence",
			mutate:  func(s *Session) { s.Items[2].MainSentence = "" },
			wantMsg: "main_sentence is empty",
		},
		{
			name:    "empty audio text",
			mutate:  func(s *Session) { s.Items[0].AudioText = "" },
			wantMsg: "audio_text is empty",
		},
		{
			name:    "empty explanation",
			mutate:  func(s *Session) { s.Items[3].Explanation = "" },
			wantMsg: "explanation is empty",
		},
		{
			name:    "one choice",
			mutate:  func(s *Session) { s.Items[0].Choices = s.Items[0].Choices[:1] },
			wantMsg: "expected 2 choices",
		},
		{
			name: "three choices",
			mutate: func(s *Session) {
				s.Items[0].Choices = append(s.Items[0].Choices, Choice{ID: "c", Text: "先生"})
			},
			wantMsg: "expected 2 choices",
		},
		{
			name:    "blank choice text",
			mutate:  func(s *Session) { s.Items[1].Choices[1].Text = "" },
			wantMsg: "empty text",
		},
		{
			name: "no correct choice",
			mutate: func(s *Session) {
				s.Items[0].Choices[0].IsCorrect = false
				s.Items[0].Choices[1].IsCorrect = false
			},
			wantMsg: "exactly 1 correct",
		},
		{
			name: "two correct choices",
			mutate: func(s *Session) {
				s.Items[0].Choices[0].IsCorrect = true
				s.Items[0].Choices[1].IsCorrect = true
			},
			wantMsg: "exactly 1 correct",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession(true, false, true, false)
			tt.mutate(s)
			v := &StructuralValidator{WantItems: 4}
			err := v.Validate(s)
			if err == nil {
				t.Fatal("expected validation failure")
			}
			if !strings.Contains(err.Message, tt.wantMsg) {
				t.Errorf("message %q does not mention %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestStructural_ZeroWantItemsSkipsCountCheck(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validSession(true, false)); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}
