package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerRecord is one answer to one question within a section. The
// (session_id, question_id, section) key is unique; re-submitting the same
// question updates the row in place, which makes double-click submissions
// harmless.
type AnswerRecord struct {
	ent.Schema
}

func (AnswerRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("section").
			NotEmpty().
			Comment("Section the answer belongs to"),
		field.Text("answer").
			Default(""),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Seconds the candidate spent on the question"),
		field.Time("received_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (AnswerRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question_id", "section").Unique(),
		index.Fields("session_id", "section"),
	}
}
