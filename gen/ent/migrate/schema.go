// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DecisionsColumns holds the columns for the "decisions" table.
	DecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_id", Type: field.TypeInt64, Unique: true},
		{Name: "source_name", Type: field.TypeString},
		{Name: "original_text", Type: field.TypeString, Size: 2147483647},
		{Name: "jurisdiction_id", Type: field.TypeString},
		{Name: "jurisdiction_code", Type: field.TypeString, Nullable: true},
		{Name: "jurisdiction_name", Type: field.TypeString, Nullable: true},
		{Name: "chamber_id", Type: field.TypeString, Nullable: true},
		{Name: "chamber_name", Type: field.TypeString, Nullable: true},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "case_number", Type: field.TypeString},
		{Name: "register_number", Type: field.TypeString, Nullable: true},
		{Name: "matter_code", Type: field.TypeString, Nullable: true},
		{Name: "matter_label", Type: field.TypeString, Nullable: true},
		{Name: "procedure_code", Type: field.TypeString, Nullable: true},
		{Name: "solution", Type: field.TypeString, Nullable: true},
		{Name: "public", Type: field.TypeBool, Default: false},
		{Name: "debat_public", Type: field.TypeBool, Default: false},
		{Name: "selection", Type: field.TypeBool, Default: false},
		{Name: "parties", Type: field.TypeJSON, Nullable: true},
		{Name: "composition", Type: field.TypeJSON, Nullable: true},
		{Name: "occultation_additional_terms", Type: field.TypeString, Nullable: true},
		{Name: "occultation_categories", Type: field.TypeJSON, Nullable: true},
		{Name: "occultation_motivation", Type: field.TypeBool, Default: false},
		{Name: "label_status", Type: field.TypeString},
		{Name: "publish_status", Type: field.TypeString},
		{Name: "date_decision", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "date_creation", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DecisionsTable holds the schema information for the "decisions" table.
	DecisionsTable = &schema.Table{
		Name:       "decisions",
		Columns:    DecisionsColumns,
		PrimaryKey: []*schema.Column{DecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decision_source_name_label_status_date_decision",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[2], DecisionsColumns[24], DecisionsColumns[26]},
			},
			{
				Name:    "decision_source_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[1]},
			},
		},
	}
	// ExtractFailuresColumns holds the columns for the "extract_failures" table.
	ExtractFailuresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "filename", Type: field.TypeString, Unique: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExtractFailuresTable holds the schema information for the "extract_failures" table.
	ExtractFailuresTable = &schema.Table{
		Name:       "extract_failures",
		Columns:    ExtractFailuresColumns,
		PrimaryKey: []*schema.Column{ExtractFailuresColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DecisionsTable,
		ExtractFailuresTable,
	}
)

func init() {
	DecisionsTable.Annotation = &entsql.Annotation{
		Table: "decisions",
	}
	ExtractFailuresTable.Annotation = &entsql.Annotation{
		Table: "extract_failures",
	}
}
