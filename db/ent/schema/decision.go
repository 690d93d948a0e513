package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Decision struct{ ent.Schema }

func (Decision) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "decisions"},
	}
}

func (Decision) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// source_id is the cross-reference hash, not the primary key.
		field.Int64("source_id").Unique(),
		field.String("source_name").NotEmpty(),
		field.Text("original_text"),
		field.String("jurisdiction_id").NotEmpty(),
		field.String("jurisdiction_code").Optional(),
		field.String("jurisdiction_name").Optional(),
		field.String("chamber_id").Optional(),
		field.String("chamber_name").Optional(),
		field.String("group_id").Optional(),
		field.String("case_number").NotEmpty(),
		field.String("register_number").Optional(),
		field.String("matter_code").Optional(),
		field.String("matter_label").Optional(),
		field.String("procedure_code").Optional(),
		field.String("solution").Optional(),
		field.Bool("public").Default(false),
		field.Bool("debat_public").Default(false),
		field.Bool("selection").Default(false),
		field.JSON("parties", json.RawMessage{}).Optional(),
		field.JSON("composition", json.RawMessage{}).Optional(),
		field.String("occultation_additional_terms").Optional(),
		field.JSON("occultation_categories", []string{}).Optional(),
		field.Bool("occultation_motivation").Default(false),
		field.String("label_status").NotEmpty(),
		field.String("publish_status").NotEmpty(),
		field.Time("date_decision").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("date_creation").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Decision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_name", "label_status", "date_decision"),
		index.Fields("source_id"),
	}
}
