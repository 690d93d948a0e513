package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ExtractFailure counts pdf-to-text failures per PDF filename. Rows survive
// process restarts so the retry ceiling holds across runs.
type ExtractFailure struct{ ent.Schema }

func (ExtractFailure) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_failures"},
	}
}

func (ExtractFailure) Fields() []ent.Field {
	return []ent.Field{
		field.String("filename").NotEmpty().Unique(),
		field.Int("attempts").Default(0),
		field.String("last_error").Optional(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
