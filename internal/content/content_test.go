package content

import "testing"

func TestVoiceRosterLookup(t *testing.T) {
	roster := VoiceRoster{
		"Tanaka": "ja-JP-KeitaNeural",
		"yuki":   "ja-JP-NanamiNeural",
	}

	tests := []struct {
		speaker string
		want    string
		found   bool
	}{
		{"Tanaka", "ja-JP-KeitaNeural", true},
		{"tanaka", "ja-JP-KeitaNeural", true},
		{"TANAKA", "ja-JP-KeitaNeural", true},
		{"Yuki", "ja-JP-NanamiNeural", true},
		{"Sato", "", false},
	}
	for _, tt := range tests {
		got, ok := roster.Lookup(tt.speaker)
		if ok != tt.found || got != tt.want {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.speaker, got, ok, tt.want, tt.found)
		}
	}
}

func TestVoiceRosterLookupEmpty(t *testing.T) {
	var roster VoiceRoster
	if _, ok := roster.Lookup("anyone"); ok {
		t.Error("nil roster should never match")
	}
}
