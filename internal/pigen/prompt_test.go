package pigen

import (
	"strings"
	"testing"

	"github.com/convolab/lessonsmith/internal/grammar"
	"github.com/convolab/lessonsmith/internal/lang"
)

func TestBuildUserMessage(t *testing.T) {
	point := grammar.GetPoint("ni_vs_de")
	if point == nil {
		t.Fatal("taxonomy missing ni_vs_de")
	}
	msg := buildUserMessage(GenerateInput{PointID: "ni_vs_de", Level: lang.N5}, point, testConfig(10))

	for _, want := range []string{
		"Grammar contrast: に vs で",
		"Level: N5",
		"Items to generate: 10",
		"公園にいます",
		"Required structure:",
		"Vocabulary ceiling:",
		`"is_correct"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSystemPrompt_StatesCoreRules(t *testing.T) {
	for _, want := range []string{
		"binary choice",
		"verbatim",
		"Quality-control checklist",
		"7 of 10",
	} {
		if !strings.Contains(systemPrompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
