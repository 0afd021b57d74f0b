package exchange

import (
	"strings"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
)

// Gender selects a default voice pool for a speaker role.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// defaultVoices lists two neural TTS voices per gender per language. Two
// per gender so that a run whose speaker roles share a gender still gets
// two distinct defaults.
var defaultVoices = map[lang.Code]map[Gender][2]string{
	lang.Japanese: {
		GenderFemale: {"ja-JP-NanamiNeural", "ja-JP-MayuNeural"},
		GenderMale:   {"ja-JP-KeitaNeural", "ja-JP-DaichiNeural"},
	},
	lang.Chinese: {
		GenderFemale: {"zh-CN-XiaoxiaoNeural", "zh-CN-XiaoyiNeural"},
		GenderMale:   {"zh-CN-YunxiNeural", "zh-CN-YunjianNeural"},
	},
	lang.Spanish: {
		GenderFemale: {"es-ES-ElviraNeural", "es-ES-AbrilNeural"},
		GenderMale:   {"es-ES-AlvaroNeural", "es-ES-ArnauNeural"},
	},
	lang.English: {
		GenderFemale: {"en-US-JennyNeural", "en-US-AriaNeural"},
		GenderMale:   {"en-US-GuyNeural", "en-US-DavisNeural"},
	},
	lang.French: {
		GenderFemale: {"fr-FR-DeniseNeural", "fr-FR-EloiseNeural"},
		GenderMale:   {"fr-FR-HenriNeural", "fr-FR-AlainNeural"},
	},
	lang.German: {
		GenderFemale: {"de-DE-KatjaNeural", "de-DE-AmalaNeural"},
		GenderMale:   {"de-DE-ConradNeural", "de-DE-KillianNeural"},
	},
}

// defaultPool picks the run's 2-voice candidate pool: one voice per
// configured role gender, never the same voice twice.
func defaultPool(c lang.Code, speakerOne, speakerTwo Gender) [2]string {
	voices, ok := defaultVoices[c]
	if !ok {
		voices = defaultVoices[lang.English]
	}
	if speakerOne != GenderMale {
		speakerOne = GenderFemale
	}
	if speakerTwo != GenderFemale {
		speakerTwo = GenderMale
	}

	pool := [2]string{voices[speakerOne][0], voices[speakerTwo][0]}
	if pool[0] == pool[1] {
		pool[1] = voices[speakerTwo][1]
	}
	return pool
}

// voiceAssigner holds the per-run speaker to voice map. It is created
// fresh for every extraction and discarded with it.
type voiceAssigner struct {
	roster   content.VoiceRoster
	pool     [2]string
	next     int
	assigned map[string]string // normalized name -> voice
	names    map[string]string // normalized name -> first-seen spelling
}

func newVoiceAssigner(roster content.VoiceRoster, pool [2]string) *voiceAssigner {
	return &voiceAssigner{
		roster:   roster,
		pool:     pool,
		assigned: make(map[string]string),
		names:    make(map[string]string),
	}
}

// assign returns the stable voice for a speaker: previously assigned voice
// first, then roster match, then round-robin from the default pool.
func (a *voiceAssigner) assign(speaker string) string {
	key := strings.ToLower(speaker)
	if v, ok := a.assigned[key]; ok {
		return v
	}
	a.names[key] = speaker

	if v, ok := a.roster.Lookup(speaker); ok {
		a.assigned[key] = v
		return v
	}

	v := a.pool[a.next%len(a.pool)]
	a.next++
	a.assigned[key] = v
	return v
}

// assignments returns the run's speaker to voice map keyed by the
// first-seen spelling of each name.
func (a *voiceAssigner) assignments() map[string]string {
	out := make(map[string]string, len(a.assigned))
	for key, voice := range a.assigned {
		out[a.names[key]] = voice
	}
	return out
}
