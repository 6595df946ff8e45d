package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TestSession is one candidate's test attempt. current_section only moves
// forward through the fixed progression; the session service is the sole
// writer.
type TestSession struct {
	ent.Schema
}

func (TestSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("candidate_name").
			NotEmpty(),
		field.String("candidate_email").
			Default(""),
		field.String("current_section").
			Default("listening").
			Comment("listening, reading, writing, speaking, or completed"),
		field.Bool("writing_completed").
			Default(false),
		field.Bool("speaking_completed").
			Default(false),
		field.String("status").
			Default("in_progress").
			Comment("in_progress, completed, or expired"),
		field.Int("listening_test_id").
			Optional().
			Comment("Listening test assigned at session start"),
		field.Int("reading_test_id").
			Optional().
			Comment("Reading test assigned at session start"),
		field.Float("listening_band").
			Optional().
			Nillable(),
		field.Float("reading_band").
			Optional().
			Nillable(),
		field.Float("writing_band").
			Optional().
			Nillable(),
		field.Float("speaking_band").
			Optional().
			Nillable(),
		field.Float("overall_band").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_activity_at").
			Default(time.Now).
			Comment("Bumped on every write; the sweeper expires idle sessions"),
	}
}

func (TestSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("current_section"),
		index.Fields("last_activity_at"),
	}
}
