package pigen

// guidance carries the authoring notes for one grammar contrast: the
// meaning difference the items must test, the structure rule every main
// sentence must satisfy, worked minimal pairs, and task templates.
type guidance struct {
	contrast      string
	structureRule string
	minimalPairs  []string
	taskTemplates []string
}

// defaultGuidance frames the topic-vs-subject contrast. It doubles as the
// fallback for taxonomy points without a curated entry.
var defaultGuidance = guidance{
	contrast:      "は frames what the sentence is about; が singles out which referent, among the alternatives, the predicate is true of. The learner must hear が as answering an implicit who/which question.",
	structureRule: "Both candidate referents must appear in the main sentence itself, never only in the context sentence.",
	minimalPairs: []string{
		"田中さんは学生です。(About Tanaka: he is a student.) / 田中さんが学生です。(Tanaka is the one who is the student.)",
		"猫は魚を食べた。(As for the cat, it ate the fish.) / 猫が魚を食べた。(The cat is the one that ate the fish.)",
	},
	taskTemplates: []string{
		"Name two referents in one sentence, attach the predicate to one of them with が, and ask which referent the predicate holds of.",
		"Pose a question like 誰が来ましたか in the context sentence and ask which referent in the main sentence answers it.",
	},
}

var guidanceTable = map[string]guidance{
	"ha_vs_ga": defaultGuidance,

	"ni_vs_de": {
		contrast:      "に marks where something is or ends up; で marks where an action happens. The learner must separate location-of-state from location-of-event readings.",
		structureRule: "Both candidate locations must appear in the main sentence; the choice tests which one hosts the probed activity or state.",
		minimalPairs: []string{
			"公園にいます。(Is at the park.) / 公園で遊びます。(Plays at the park.)",
			"東京に住んでいます。(Lives in Tokyo.) / 東京で働いています。(Works in Tokyo.)",
		},
		taskTemplates: []string{
			"Name two places in one sentence, one with に and one with で, and ask where the action itself takes place.",
			"Name two places and ask where the person or thing ends up staying.",
		},
	},

	"ni_vs_e": {
		contrast:      "に commits to arrival at the goal; へ only gives the direction of movement. The learner must hear the difference between reaching a place and heading toward it.",
		structureRule: "Both candidate destinations must appear in the main sentence, one as an arrival point and one as a bare direction.",
		minimalPairs: []string{
			"駅に行きます。(Goes to the station and gets there.) / 海へ向かいます。(Heads toward the sea.)",
			"家に帰った。(Returned home.) / 北へ進んだ。(Advanced northward.)",
		},
		taskTemplates: []string{
			"Name two places, one marked に and one marked へ, and ask which one the mover actually reaches.",
			"Ask which of two named places the sentence merely points the movement toward.",
		},
	},

	"aru_vs_iru": {
		contrast:      "ある asserts the existence of inanimate things; いる of people and animals. The learner must use the verb alone to pick out the animate or inanimate referent.",
		structureRule: "Both candidate subjects, one animate and one inanimate, must appear in the main sentence.",
		minimalPairs: []string{
			"部屋に猫がいます。(There is a cat in the room.) / 部屋に本があります。(There is a book in the room.)",
			"庭に子供がいる。(A child is in the garden.) / 庭に木がある。(A tree is in the garden.)",
		},
		taskTemplates: []string{
			"Mention an animate and an inanimate referent in one sentence and ask which one the sentence-final いる (or ある) reports.",
			"Play a sentence ending in いる or ある and ask which of the two named referents it asserts to be present.",
		},
	},

	"te_iru_vs_ta": {
		contrast:      "ている reports an action still in progress or a state that resulted; た reports a completed event. The learner must hear ongoing versus finished.",
		structureRule: "Both candidate referents must appear in the main sentence, one bound to the ている clause and one to the た clause.",
		minimalPairs: []string{
			"田中さんは食べている。(Tanaka is eating.) / 田中さんは食べた。(Tanaka ate.)",
			"ドアが開いている。(The door stands open.) / ドアが開いた。(The door opened.)",
		},
		taskTemplates: []string{
			"Name two referents, one doing the action with ている and one having finished it with た, and ask which one is still mid-action.",
			"Name two referents and ask which one's action is already over.",
		},
	},

	"wo_vs_ga_potential": {
		contrast:      "Transitive を marks what is acted on; potential-form が marks what someone is able to do. The learner must map が plus a potential verb to ability, not to an actor.",
		structureRule: "Both candidate objects of ability or action must appear in the main sentence.",
		minimalPairs: []string{
			"日本語を話します。(Speaks Japanese.) / 日本語が話せます。(Can speak Japanese.)",
			"漢字を書く。(Writes kanji.) / 漢字が書ける。(Can write kanji.)",
		},
		taskTemplates: []string{
			"Name two skills or objects in one sentence, one with を and a plain verb and one with が and a potential verb, and ask which one the person can do rather than does.",
			"Ask which of two named things the sentence claims an ability over.",
		},
	},

	"kara_vs_node": {
		contrast:      "から gives the speaker's own, asserted reason and comfortably justifies requests and commands; ので presents the cause as accepted fact and softens. The learner must identify which clause is offered as the cause.",
		structureRule: "Both candidate causes must appear in the main sentence as stated clauses or referents.",
		minimalPairs: []string{
			"暑いから窓を開けた。(It is hot, so I opened the window.) / 暑いので窓を開けた。(Because it is hot, I opened the window.)",
			"時間がないから急ごう。(We have no time, so let us hurry.) / 時間がないので失礼します。(As there is no time, I must excuse myself.)",
		},
		taskTemplates: []string{
			"State two facts in one sentence, attach から or ので to one of them, and ask which fact is given as the reason.",
			"Ask which of two named events caused the other.",
		},
	},

	"ageru_vs_kureru": {
		contrast:      "あげる describes giving away from the speaker's in-group; くれる describes giving into it. The learner must recover the giver and the receiver from the verb alone.",
		structureRule: "Both participants of the transfer must be named in the main sentence.",
		minimalPairs: []string{
			"私は田中さんに本をあげた。(I gave Tanaka a book.) / 田中さんが本をくれた。(Tanaka gave me a book.)",
			"妹にお菓子をあげる。(I give my sister sweets.) / 妹がお菓子をくれる。(My sister gives me sweets.)",
		},
		taskTemplates: []string{
			"Name two people and an item in one sentence and ask which person ends up with the item.",
			"Name two people and ask which one is the giver.",
		},
	},

	"ba_vs_tara": {
		contrast:      "ば states a general, lawlike conditional; たら a one-off when-or-if followed by a consequence. The learner must hear rule versus occasion.",
		structureRule: "Both candidate conditions or outcomes must appear in the main sentence.",
		minimalPairs: []string{
			"安ければ買います。(If it is cheap, I buy it.) / 安かったら買います。(If it turns out cheap, I will buy it.)",
			"春になれば花が咲く。(When spring comes, flowers bloom.) / 家に着いたら電話して。(Once you arrive home, call me.)",
		},
		taskTemplates: []string{
			"State two events in one sentence, one as condition and one as outcome, and ask which event must happen first.",
			"Ask whether the sentence states a habitual rule or a single planned sequence, anchoring both readings to referents in the sentence.",
		},
	},

	"sou_vs_rashii": {
		contrast:      "そう reports how things look to the speaker's own eyes; らしい reports what the speaker has heard or inferred secondhand. The learner must identify the evidence source.",
		structureRule: "Both candidate claims or referents must appear in the main sentence so the choice can name what was seen versus what was heard.",
		minimalPairs: []string{
			"雨が降りそうだ。(Looks like it will rain.) / 雨が降るらしい。(I hear it will rain.)",
			"このケーキはおいしそうだ。(This cake looks tasty.) / あの店はおいしいらしい。(That shop is said to be good.)",
		},
		taskTemplates: []string{
			"Name two referents, one judged by sight with そう and one by hearsay with らしい, and ask which one the speaker actually observed.",
			"Ask which of two named claims rests on secondhand information.",
		},
	},

	"passive_vs_causative": {
		contrast:      "られる marks the party affected by someone else's act; させる marks the party made or allowed to act. The learner must work out who acts on whom.",
		structureRule: "Both participants must be named in the main sentence.",
		minimalPairs: []string{
			"先生に褒められた。(Was praised by the teacher.) / 子供に野菜を食べさせた。(Made the child eat vegetables.)",
			"弟にケーキを食べられた。(Had my cake eaten by my brother.) / 弟にケーキを食べさせた。(Let my brother eat the cake.)",
		},
		taskTemplates: []string{
			"Name two participants in one sentence and ask which one performs the underlying action.",
			"Name two participants and ask which one is on the receiving end.",
		},
	},

	"made_vs_made_ni": {
		contrast:      "まで bounds an action that continues up to a limit; までに sets a deadline by which a single act completes. The learner must hear duration versus deadline.",
		structureRule: "Both candidate time points or events must appear in the main sentence.",
		minimalPairs: []string{
			"五時まで働きます。(Works until five.) / 五時までに帰ります。(Will be home by five.)",
			"夏休みまで待つ。(Waits until summer break.) / 金曜日までに出す。(Submits by Friday.)",
		},
		taskTemplates: []string{
			"Name two times in one sentence, one with まで and one with までに, and ask up to which time the action keeps going.",
			"Ask which of two named times is the deadline rather than the endpoint of a stretch.",
		},
	},
}

// guidanceFor returns the authoring guidance for a grammar point, falling
// back to the topic-vs-subject framing for IDs without a curated entry.
func guidanceFor(pointID string) guidance {
	if g, ok := guidanceTable[pointID]; ok {
		return g
	}
	return defaultGuidance
}
