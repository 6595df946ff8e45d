package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReadingPassage is one passage of a reading test with its question set.
type ReadingPassage struct {
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Questions []Question `json:"questions"`
}

// ReadingTest is an authored academic reading test: three passages,
// forty questions.
type ReadingTest struct {
	ent.Schema
}

func (ReadingTest) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.JSON("passages", []ReadingPassage{}),
		field.Bool("active").
			Default(false).
			Comment("Only active tests are assigned to new sessions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ReadingTest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
