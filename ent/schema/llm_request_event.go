package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is the audit row behind `lessonsmith llm`: one row per
// provider call, with the prompt and raw output captured verbatim.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Immutable().
			Comment("Vendor adapter that served the call"),
		field.String("model").
			NotEmpty().
			Immutable().
			Comment("Resolved model ID, after friendly-name mapping"),
		field.String("purpose").
			Immutable().
			Comment("Caller tag: sentence-split, vocab-extract, phrase-decompose, pi-generate, or unknown"),
		field.Int("input_tokens").
			Default(0).
			Immutable().
			Comment("Prompt tokens as billed"),
		field.Int("output_tokens").
			Default(0).
			Immutable().
			Comment("Completion tokens as billed"),
		field.Int64("latency_ms").
			Default(0).
			Immutable().
			Comment("Wall-clock round trip"),
		field.Bool("success").
			Immutable(),
		field.String("error_message").
			Default("").
			Immutable().
			Comment("Set when success is false"),
		field.Text("request_body").
			Default("").
			Immutable().
			Comment("Serialized system prompt, messages, and schema name"),
		field.Text("response_body").
			Default("").
			Immutable().
			Comment("Raw model output before validation"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
