package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AudioAsset is an uploaded audio file for listening tests. The bytes live
// on disk under the data directory; this row holds the metadata.
type AudioAsset struct {
	ent.Schema
}

func (AudioAsset) Fields() []ent.Field {
	return []ent.Field{
		field.String("file_name").
			NotEmpty().
			Comment("Original upload name"),
		field.String("stored_name").
			Unique().
			NotEmpty().
			Comment("UUID-based name on disk"),
		field.String("content_type").
			NotEmpty(),
		field.Int64("size_bytes"),
		field.Time("uploaded_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AudioAsset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uploaded_at"),
	}
}
