package exchange

import (
	"testing"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
)

func TestDefaultPool_MixedGenders(t *testing.T) {
	pool := defaultPool(lang.Japanese, GenderFemale, GenderMale)
	if pool[0] != "ja-JP-NanamiNeural" {
		t.Errorf("female voice = %q", pool[0])
	}
	if pool[1] != "ja-JP-KeitaNeural" {
		t.Errorf("male voice = %q", pool[1])
	}
}

func TestDefaultPool_SameGenderStaysDistinct(t *testing.T) {
	for _, g := range []Gender{GenderFemale, GenderMale} {
		pool := defaultPool(lang.Japanese, g, g)
		if pool[0] == pool[1] {
			t.Errorf("gender %s: pool voices identical: %q", g, pool[0])
		}
	}
}

func TestDefaultPool_UnsetGendersDefault(t *testing.T) {
	pool := defaultPool(lang.Japanese, "", "")
	if pool[0] != "ja-JP-NanamiNeural" || pool[1] != "ja-JP-KeitaNeural" {
		t.Errorf("unset genders should default to female/male, got %v", pool)
	}
}

func TestDefaultPool_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	pool := defaultPool(lang.Code("xx"), GenderFemale, GenderMale)
	if pool[0] != "en-US-JennyNeural" || pool[1] != "en-US-GuyNeural" {
		t.Errorf("unexpected fallback pool: %v", pool)
	}
}

func TestVoiceAssigner_RoundRobin(t *testing.T) {
	a := newVoiceAssigner(nil, [2]string{"voice-a", "voice-b"})

	if got := a.assign("Alice"); got != "voice-a" {
		t.Errorf("first speaker = %q", got)
	}
	if got := a.assign("Bob"); got != "voice-b" {
		t.Errorf("second speaker = %q", got)
	}
	// A third distinct speaker wraps around the pool.
	if got := a.assign("Carol"); got != "voice-a" {
		t.Errorf("third speaker = %q", got)
	}
}

func TestVoiceAssigner_StableWithinRun(t *testing.T) {
	a := newVoiceAssigner(nil, [2]string{"voice-a", "voice-b"})

	first := a.assign("Alice")
	a.assign("Bob")
	if got := a.assign("Alice"); got != first {
		t.Errorf("repeat assignment changed: %q then %q", first, got)
	}
}

func TestVoiceAssigner_CaseInsensitiveSpeakerNames(t *testing.T) {
	a := newVoiceAssigner(nil, [2]string{"voice-a", "voice-b"})

	if a.assign("alice") != a.assign("ALICE") {
		t.Error("case variants of one name got different voices")
	}
}

func TestVoiceAssigner_RosterWins(t *testing.T) {
	roster := content.VoiceRoster{"Alice": "custom-voice"}
	a := newVoiceAssigner(roster, [2]string{"voice-a", "voice-b"})

	if got := a.assign("alice"); got != "custom-voice" {
		t.Errorf("roster voice not used, got %q", got)
	}
	// Pool position is untouched by roster hits.
	if got := a.assign("Bob"); got != "voice-a" {
		t.Errorf("pool should start at first voice, got %q", got)
	}
}

func TestVoiceAssigner_AssignmentsKeyedByFirstSpelling(t *testing.T) {
	a := newVoiceAssigner(nil, [2]string{"voice-a", "voice-b"})
	a.assign("Alice")
	a.assign("ALICE")
	a.assign("Bob")

	got := a.assignments()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(got), got)
	}
	if got["Alice"] != "voice-a" {
		t.Errorf("Alice voice = %q", got["Alice"])
	}
	if _, ok := got["ALICE"]; ok {
		t.Error("later spelling leaked into the voice map")
	}
}
