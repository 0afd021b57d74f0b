package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineEvent records the outcome of one stage of a lesson build.
type PipelineEvent struct {
	ent.Schema
}

func (PipelineEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PipelineEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty().
			Immutable().
			Comment("Correlation key: the lesson ID, or the grammar point ID for pi_generate"),
		field.String("stage").
			NotEmpty().
			Immutable().
			Comment("Pipeline stage: core_select, backbuild, exchange_split, vocab, pi_generate, readings"),
		field.String("outcome").
			NotEmpty().
			Immutable().
			Comment("ok, degraded, or failed"),
		field.String("detail").
			Default("").
			Immutable().
			Comment("Note on the outcome, e.g. the degradation reason"),
		field.Int("item_count").
			Default(0).
			Immutable().
			Comment("Items the stage produced"),
	}
}

func (PipelineEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("stage"),
		index.Fields("outcome"),
	}
}
