package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is the serialized form of one question inside test content.
// Objective sections carry the correct answer for server-side scoring.
type Question struct {
	ID            string   `json:"id"`
	Number        int      `json:"number"`
	Type          string   `json:"type"` // multiple_choice, fill_blank, true_false_notgiven, matching
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
}

// ListeningSection is one of the four parts of a listening test.
type ListeningSection struct {
	Title        string     `json:"title"`
	Instructions string     `json:"instructions"`
	Questions    []Question `json:"questions"`
}

// ListeningTest is an authored listening test: four sections played
// against one audio asset.
type ListeningTest struct {
	ent.Schema
}

func (ListeningTest) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.Int("audio_asset_id").
			Optional().
			Comment("Uploaded audio this test plays"),
		field.JSON("sections", []ListeningSection{}),
		field.Bool("active").
			Default(false).
			Comment("Only active tests are assigned to new sessions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ListeningTest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
