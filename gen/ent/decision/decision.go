// Code generated by ent, DO NOT EDIT.

package decision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the decision type in the database.
	Label = "decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldOriginalText holds the string denoting the original_text field in the database.
	FieldOriginalText = "original_text"
	// FieldJurisdictionID holds the string denoting the jurisdiction_id field in the database.
	FieldJurisdictionID = "jurisdiction_id"
	// FieldJurisdictionCode holds the string denoting the jurisdiction_code field in the database.
	FieldJurisdictionCode = "jurisdiction_code"
	// FieldJurisdictionName holds the string denoting the jurisdiction_name field in the database.
	FieldJurisdictionName = "jurisdiction_name"
	// FieldChamberID holds the string denoting the chamber_id field in the database.
	FieldChamberID = "chamber_id"
	// FieldChamberName holds the string denoting the chamber_name field in the database.
	FieldChamberName = "chamber_name"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldCaseNumber holds the string denoting the case_number field in the database.
	FieldCaseNumber = "case_number"
	// FieldRegisterNumber holds the string denoting the register_number field in the database.
	FieldRegisterNumber = "register_number"
	// FieldMatterCode holds the string denoting the matter_code field in the database.
	FieldMatterCode = "matter_code"
	// FieldMatterLabel holds the string denoting the matter_label field in the database.
	FieldMatterLabel = "matter_label"
	// FieldProcedureCode holds the string denoting the procedure_code field in the database.
	FieldProcedureCode = "procedure_code"
	// FieldSolution holds the string denoting the solution field in the database.
	FieldSolution = "solution"
	// FieldPublic holds the string denoting the public field in the database.
	FieldPublic = "public"
	// FieldDebatPublic holds the string denoting the debat_public field in the database.
	FieldDebatPublic = "debat_public"
	// FieldSelection holds the string denoting the selection field in the database.
	FieldSelection = "selection"
	// FieldParties holds the string denoting the parties field in the database.
	FieldParties = "parties"
	// FieldComposition holds the string denoting the composition field in the database.
	FieldComposition = "composition"
	// FieldOccultationAdditionalTerms holds the string denoting the occultation_additional_terms field in the database.
	FieldOccultationAdditionalTerms = "occultation_additional_terms"
	// FieldOccultationCategories holds the string denoting the occultation_categories field in the database.
	FieldOccultationCategories = "occultation_categories"
	// FieldOccultationMotivation holds the string denoting the occultation_motivation field in the database.
	FieldOccultationMotivation = "occultation_motivation"
	// FieldLabelStatus holds the string denoting the label_status field in the database.
	FieldLabelStatus = "label_status"
	// FieldPublishStatus holds the string denoting the publish_status field in the database.
	FieldPublishStatus = "publish_status"
	// FieldDateDecision holds the string denoting the date_decision field in the database.
	FieldDateDecision = "date_decision"
	// FieldDateCreation holds the string denoting the date_creation field in the database.
	FieldDateCreation = "date_creation"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the decision in the database.
	Table = "decisions"
)

// Columns holds all SQL columns for decision fields.
var Columns = []string{
	FieldID,
	FieldSourceID,
	FieldSourceName,
	FieldOriginalText,
	FieldJurisdictionID,
	FieldJurisdictionCode,
	FieldJurisdictionName,
	FieldChamberID,
	FieldChamberName,
	FieldGroupID,
	FieldCaseNumber,
	FieldRegisterNumber,
	FieldMatterCode,
	FieldMatterLabel,
	FieldProcedureCode,
	FieldSolution,
	FieldPublic,
	FieldDebatPublic,
	FieldSelection,
	FieldParties,
	FieldComposition,
	FieldOccultationAdditionalTerms,
	FieldOccultationCategories,
	FieldOccultationMotivation,
	FieldLabelStatus,
	FieldPublishStatus,
	FieldDateDecision,
	FieldDateCreation,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceNameValidator is a validator for the "source_name" field. It is called by the builders before save.
	SourceNameValidator func(string) error
	// JurisdictionIDValidator is a validator for the "jurisdiction_id" field. It is called by the builders before save.
	JurisdictionIDValidator func(string) error
	// CaseNumberValidator is a validator for the "case_number" field. It is called by the builders before save.
	CaseNumberValidator func(string) error
	// DefaultPublic holds the default value on creation for the "public" field.
	DefaultPublic bool
	// DefaultDebatPublic holds the default value on creation for the "debat_public" field.
	DefaultDebatPublic bool
	// DefaultSelection holds the default value on creation for the "selection" field.
	DefaultSelection bool
	// DefaultOccultationMotivation holds the default value on creation for the "occultation_motivation" field.
	DefaultOccultationMotivation bool
	// LabelStatusValidator is a validator for the "label_status" field. It is called by the builders before save.
	LabelStatusValidator func(string) error
	// PublishStatusValidator is a validator for the "publish_status" field. It is called by the builders before save.
	PublishStatusValidator func(string) error
	// DefaultDateCreation holds the default value on creation for the "date_creation" field.
	DefaultDateCreation func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Decision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// ByOriginalText orders the results by the original_text field.
func ByOriginalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalText, opts...).ToFunc()
}

// ByJurisdictionID orders the results by the jurisdiction_id field.
func ByJurisdictionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJurisdictionID, opts...).ToFunc()
}

// ByJurisdictionCode orders the results by the jurisdiction_code field.
func ByJurisdictionCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJurisdictionCode, opts...).ToFunc()
}

// ByJurisdictionName orders the results by the jurisdiction_name field.
func ByJurisdictionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJurisdictionName, opts...).ToFunc()
}

// ByChamberID orders the results by the chamber_id field.
func ByChamberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChamberID, opts...).ToFunc()
}

// ByChamberName orders the results by the chamber_name field.
func ByChamberName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChamberName, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByCaseNumber orders the results by the case_number field.
func ByCaseNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseNumber, opts...).ToFunc()
}

// ByRegisterNumber orders the results by the register_number field.
func ByRegisterNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegisterNumber, opts...).ToFunc()
}

// ByMatterCode orders the results by the matter_code field.
func ByMatterCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatterCode, opts...).ToFunc()
}

// ByMatterLabel orders the results by the matter_label field.
func ByMatterLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatterLabel, opts...).ToFunc()
}

// ByProcedureCode orders the results by the procedure_code field.
func ByProcedureCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcedureCode, opts...).ToFunc()
}

// BySolution orders the results by the solution field.
func BySolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolution, opts...).ToFunc()
}

// ByPublic orders the results by the public field.
func ByPublic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublic, opts...).ToFunc()
}

// ByDebatPublic orders the results by the debat_public field.
func ByDebatPublic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebatPublic, opts...).ToFunc()
}

// BySelection orders the results by the selection field.
func BySelection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelection, opts...).ToFunc()
}

// ByOccultationAdditionalTerms orders the results by the occultation_additional_terms field.
func ByOccultationAdditionalTerms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccultationAdditionalTerms, opts...).ToFunc()
}

// ByOccultationMotivation orders the results by the occultation_motivation field.
func ByOccultationMotivation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccultationMotivation, opts...).ToFunc()
}

// ByLabelStatus orders the results by the label_status field.
func ByLabelStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelStatus, opts...).ToFunc()
}

// ByPublishStatus orders the results by the publish_status field.
func ByPublishStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishStatus, opts...).ToFunc()
}

// ByDateDecision orders the results by the date_decision field.
func ByDateDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateDecision, opts...).ToFunc()
}

// ByDateCreation orders the results by the date_creation field.
func ByDateCreation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateCreation, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
