package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WritingTask is an authored writing prompt. Task 1 describes a chart or
// diagram (150 word minimum); task 2 is the essay (250 word minimum).
type WritingTask struct {
	ent.Schema
}

func (WritingTask) Fields() []ent.Field {
	return []ent.Field{
		field.Int("task_number").
			Range(1, 2),
		field.Text("prompt").
			NotEmpty(),
		field.Int("min_words").
			Default(0).
			Comment("0 means the standard minimum for the task number"),
		field.Bool("active").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (WritingTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_number", "active"),
	}
}
