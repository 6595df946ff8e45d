package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SpeakingPart is an authored speaking prompt set: part 1 (interview),
// part 2 (cue card with preparation time), part 3 (discussion).
type SpeakingPart struct {
	ent.Schema
}

func (SpeakingPart) Fields() []ent.Field {
	return []ent.Field{
		field.Int("part_number").
			Range(1, 3),
		field.String("topic").
			NotEmpty(),
		field.JSON("questions", []string{}),
		field.Int("prep_seconds").
			Default(0).
			Comment("Preparation time before speaking (part 2 only)"),
		field.Int("speak_seconds").
			Default(120).
			Comment("Expected speaking duration"),
		field.Bool("active").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (SpeakingPart) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("part_number", "active"),
	}
}
