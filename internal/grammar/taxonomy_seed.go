package grammar

import "github.com/convolab/lessonsmith/internal/lang"

// seedPoints defines the Japanese grammar contrast taxonomy.
// 12 points across N5-N3, four per level.
var seedPoints = []Point{
	// N5 (4)
	{
		ID:          "ha_vs_ga",
		Name:        "は vs が",
		Level:       lang.N5,
		Category:    CategoryParticles,
		Description: "Topic marker は frames what the sentence is about; subject marker が identifies who or what performs the action or holds the property.",
	},
	{
		ID:          "ni_vs_de",
		Name:        "に vs で",
		Level:       lang.N5,
		Category:    CategoryParticles,
		Description: "に marks the location where something exists or a destination; で marks the location where an action takes place.",
	},
	{
		ID:          "ni_vs_e",
		Name:        "に vs へ",
		Level:       lang.N5,
		Category:    CategoryParticles,
		Description: "に marks a specific arrival point; へ marks the direction of movement without committing to arrival.",
	},
	{
		ID:          "aru_vs_iru",
		Name:        "ある vs いる",
		Level:       lang.N5,
		Category:    CategoryExistence,
		Description: "ある expresses existence of inanimate things; いる expresses existence of people and animals.",
	},

	// N4 (4)
	{
		ID:          "te_iru_vs_ta",
		Name:        "ている vs た",
		Level:       lang.N4,
		Category:    CategoryAspect,
		Description: "ている expresses an ongoing action or a continuing result state; plain た expresses a completed past event.",
	},
	{
		ID:          "wo_vs_ga_potential",
		Name:        "を vs が (potential)",
		Level:       lang.N4,
		Category:    CategoryParticles,
		Description: "Transitive verbs take を on their object; potential-form verbs mark the same noun with が instead.",
	},
	{
		ID:          "kara_vs_node",
		Name:        "から vs ので",
		Level:       lang.N4,
		Category:    CategoryConnectives,
		Description: "から gives a subjective, assertive reason; ので gives an objective, softer cause and sounds more polite.",
	},
	{
		ID:          "ageru_vs_kureru",
		Name:        "あげる vs くれる",
		Level:       lang.N4,
		Category:    CategoryBenefactives,
		Description: "あげる describes giving away from the speaker's in-group; くれる describes giving toward the speaker or the speaker's in-group.",
	},

	// N3 (4)
	{
		ID:          "ba_vs_tara",
		Name:        "ば vs たら",
		Level:       lang.N3,
		Category:    CategoryConditionals,
		Description: "ば states a general or hypothetical condition; たら marks a specific condition or a temporal sequence (when/after).",
	},
	{
		ID:          "sou_vs_rashii",
		Name:        "そう vs らしい",
		Level:       lang.N3,
		Category:    CategoryEvidentiality,
		Description: "そう (appearance) reports a judgment from direct observation; らしい reports hearsay or inference from secondhand information.",
	},
	{
		ID:          "passive_vs_causative",
		Name:        "受身 vs 使役",
		Level:       lang.N3,
		Category:    CategoryVoice,
		Description: "The passive られる marks the subject as affected by another's action; the causative させる marks the subject as making or letting someone act.",
	},
	{
		ID:          "made_vs_made_ni",
		Name:        "まで vs までに",
		Level:       lang.N3,
		Category:    CategoryTemporal,
		Description: "まで marks continuation up to an endpoint; までに marks a deadline by which a one-time event must happen.",
	},
}
