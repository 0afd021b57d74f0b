package pigen

import "github.com/convolab/lessonsmith/internal/llm"

// SessionSchema defines the JSON schema for exercise generation responses.
var SessionSchema = &llm.Schema{
	Name:        "pi-exercise-set",
	Description: "A set of binary-choice comprehension exercises targeting one grammar contrast",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":        "array",
				"description": "The exercise items, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"interpretation", "aural_discrimination"},
							"description": "Whether the learner reads or listens to the main sentence",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The comprehension question put to the learner",
						},
						"context_sentence": map[string]any{
							"type":        "string",
							"description": "Optional scene-setting sentence. Empty string when unused. Must never bias the answer.",
						},
						"main_sentence": map[string]any{
							"type":        "string",
							"description": "The sentence containing the target form. Both choice texts must appear inside it.",
						},
						"audio_text": map[string]any{
							"type":        "string",
							"description": "Text read aloud by the voice actor: context sentence (if any) followed by the main sentence",
						},
						"choices": map[string]any{
							"type":        "array",
							"description": "Exactly 2 options, exactly one marked correct",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id": map[string]any{
										"type":        "string",
										"description": "Stable option ID, \"a\" or \"b\"",
									},
									"text": map[string]any{
										"type":        "string",
										"description": "Option surface form, verbatim from the main sentence",
									},
									"is_correct": map[string]any{
										"type":        "boolean",
										"description": "Whether this option is the correct answer",
									},
								},
								"required":             []any{"id", "text", "is_correct"},
								"additionalProperties": false,
							},
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences naming the cue that settles the answer",
						},
						"sentence_pair": map[string]any{
							"type":        "object",
							"description": "Optional minimal pair shown after answering",
							"properties": map[string]any{
								"first": map[string]any{
									"type": "string",
								},
								"second": map[string]any{
									"type": "string",
								},
							},
							"required":             []any{"first", "second"},
							"additionalProperties": false,
						},
					},
					"required":             []any{"type", "question", "context_sentence", "main_sentence", "audio_text", "choices", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
