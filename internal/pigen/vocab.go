package pigen

import "github.com/convolab/lessonsmith/internal/lang"

// vocabCeilings states the allowed vocabulary per proficiency level.
// Each line strictly widens the one below it; the prompt embeds the
// ceiling matching the requested level.
var vocabCeilings = map[lang.Level]string{
	lang.N5: "Use only the highest-frequency everyday vocabulary (roughly the first 800 words): people, family, food, places, school, weather. Plain and polite non-past and past forms only.",
	lang.N4: "Use everything allowed at N5 plus common vocabulary for errands, work, travel, and health (roughly 1,500 words). Te-form chains and simple subordinate clauses are fine.",
	lang.N3: "Use everything allowed at N4 plus everyday abstract nouns and news-register verbs (roughly 3,700 words). Ordinary compound sentences are fine.",
	lang.N2: "Use everything allowed at N3 plus opinion, workplace, and formal-correspondence vocabulary (roughly 6,000 words).",
	lang.N1: "No practical vocabulary ceiling. Anything a newspaper or a novel would use is allowed.",
}

// vocabCeiling returns the vocabulary guidance for a level, with a
// conservative default for levels outside the table.
func vocabCeiling(level lang.Level) string {
	if s, ok := vocabCeilings[level]; ok {
		return s
	}
	return "Use only high-frequency everyday vocabulary appropriate for an early-stage learner at level " + string(level) + "."
}
