package pigen

import (
	"testing"

	"github.com/convolab/lessonsmith/internal/grammar"
	"github.com/convolab/lessonsmith/internal/lang"
)

func TestGuidance_EveryTaxonomyPointCurated(t *testing.T) {
	for _, p := range grammar.AllPoints() {
		if _, ok := guidanceTable[p.ID]; !ok {
			t.Errorf("taxonomy point %q has no guidance entry", p.ID)
		}
	}
}

func TestGuidance_EntriesComplete(t *testing.T) {
	for id, g := range guidanceTable {
		if g.contrast == "" {
			t.Errorf("%s: empty contrast", id)
		}
		if g.structureRule == "" {
			t.Errorf("%s: empty structure rule", id)
		}
		if len(g.minimalPairs) == 0 {
			t.Errorf("%s: no minimal pairs", id)
		}
		if len(g.taskTemplates) == 0 {
			t.Errorf("%s: no task templates", id)
		}
	}
}

func TestGuidanceFor_UnknownIDFallsBack(t *testing.T) {
	g := guidanceFor("no_such_point")
	if g.contrast != defaultGuidance.contrast {
		t.Error("unknown ID did not fall back to the default guidance")
	}
}

func TestVocabCeiling_KnownLevels(t *testing.T) {
	for _, lv := range []lang.Level{lang.N5, lang.N4, lang.N3, lang.N2, lang.N1} {
		if vocabCeiling(lv) == "" {
			t.Errorf("no ceiling for %s", lv)
		}
	}
}

func TestVocabCeiling_UnknownLevelDefaults(t *testing.T) {
	got := vocabCeiling(lang.Level("HSK9"))
	if got == "" {
		t.Fatal("expected a default ceiling")
	}
}
