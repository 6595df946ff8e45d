package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationEvent records one AI evaluation of a writing task or speaking
// part. Append-only; the idempotency key deduplicates repeated submissions
// of the same content.
type EvaluationEvent struct {
	ent.Schema
}

func (EvaluationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvaluationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("section").
			NotEmpty().
			Comment("writing or speaking"),
		field.String("task_ref").
			NotEmpty().
			Comment("Writing task or speaking part identifier"),
		field.String("idempotency_key").
			Unique().
			NotEmpty(),
		field.Float("band").
			Comment("Overall band for this task, half-point steps"),
		field.JSON("criteria", map[string]float64{}).
			Optional().
			Comment("Per-criterion bands as returned by the evaluator"),
		field.Text("feedback").
			Default(""),
		field.String("model").
			Default("").
			Comment("Model that produced the evaluation"),
	}
}

func (EvaluationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "section"),
	}
}
