// Code generated by ent, DO NOT EDIT.

package decision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aferrand/decisions-collector/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldID, id))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSourceID, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSourceName, v))
}

// OriginalText applies equality check predicate on the "original_text" field. It's identical to OriginalTextEQ.
func OriginalText(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOriginalText, v))
}

// JurisdictionID applies equality check predicate on the "jurisdiction_id" field. It's identical to JurisdictionIDEQ.
func JurisdictionID(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldJurisdictionID, v))
}

// JurisdictionCode applies equality check predicate on the "jurisdiction_code" field. It's identical to JurisdictionCodeEQ.
func JurisdictionCode(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldJurisdictionCode, v))
}

// JurisdictionName applies equality check predicate on the "jurisdiction_name" field. It's identical to JurisdictionNameEQ.
func JurisdictionName(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldJurisdictionName, v))
}

// ChamberID applies equality check predicate on the "chamber_id" field. It's identical to ChamberIDEQ.
func ChamberID(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldChamberID, v))
}

// ChamberName applies equality check predicate on the "chamber_name" field. It's identical to ChamberNameEQ.
func ChamberName(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldChamberName, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldGroupID, v))
}

// CaseNumber applies equality check predicate on the "case_number" field. It's identical to CaseNumberEQ.
func CaseNumber(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCaseNumber, v))
}

// RegisterNumber applies equality check predicate on the "register_number" field. It's identical to RegisterNumberEQ.
func RegisterNumber(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldRegisterNumber, v))
}

// MatterCode applies equality check predicate on the "matter_code" field. It's identical to MatterCodeEQ.
func MatterCode(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldMatterCode, v))
}

// MatterLabel applies equality check predicate on the "matter_label" field. It's identical to MatterLabelEQ.
func MatterLabel(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldMatterLabel, v))
}

// ProcedureCode applies equality check predicate on the "procedure_code" field. It's identical to ProcedureCodeEQ.
func ProcedureCode(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldProcedureCode, v))
}

// Solution applies equality check predicate on the "solution" field. It's identical to SolutionEQ.
func Solution(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSolution, v))
}

// Public applies equality check predicate on the "public" field. It's identical to PublicEQ.
func Public(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldPublic, v))
}

// DebatPublic applies equality check predicate on the "debat_public" field. It's identical to DebatPublicEQ.
func DebatPublic(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldDebatPublic, v))
}

// Selection applies equality check predicate on the "selection" field. It's identical to SelectionEQ.
func Selection(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSelection, v))
}

// OccultationAdditionalTerms applies equality check predicate on the "occultation_additional_terms" field. It's identical to OccultationAdditionalTermsEQ.
func OccultationAdditionalTerms(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOccultationAdditionalTerms, v))
}

// OccultationMotivation applies equality check predicate on the "occultation_motivation" field. It's identical to OccultationMotivationEQ.
func OccultationMotivation(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOccultationMotivation, v))
}

// LabelStatus applies equality check predicate on the "label_status" field. It's identical to LabelStatusEQ.
func LabelStatus(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldLabelStatus, v))
}

// PublishStatus applies equality check predicate on the "publish_status" field. It's identical to PublishStatusEQ.
func PublishStatus(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldPublishStatus, v))
}

// DateDecision applies equality check predicate on the "date_decision" field. It's identical to DateDecisionEQ.
func DateDecision(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldDateDecision, v))
}

// DateCreation applies equality check predicate on the "date_creation" field. It's identical to DateCreationEQ.
func DateCreation(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldDateCreation, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...int64) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...int64) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldSourceID, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldSourceName, v))
}

// OriginalTextEQ applies the EQ predicate on the "original_text" field.
func OriginalTextEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOriginalText, v))
}

// OriginalTextNEQ applies the NEQ predicate on the "original_text" field.
func OriginalTextNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldOriginalText, v))
}

// OriginalTextIn applies the In predicate on the "original_text" field.
func OriginalTextIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldOriginalText, vs...))
}

// OriginalTextNotIn applies the NotIn predicate on the "original_text" field.
func OriginalTextNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldOriginalText, vs...))
}

// OriginalTextGT applies the GT predicate on the "original_text" field.
func OriginalTextGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldOriginalText, v))
}

// OriginalTextGTE applies the GTE predicate on the "original_text" field.
func OriginalTextGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldOriginalText, v))
}

// OriginalTextLT applies the LT predicate on the "original_text" field.
func OriginalTextLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldOriginalText, v))
}

// OriginalTextLTE applies the LTE predicate on the "original_text" field.
func OriginalTextLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldOriginalText, v))
}

// OriginalTextContains applies the Contains predicate on the "original_text" field.
func OriginalTextContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldOriginalText, v))
}

// OriginalTextHasPrefix applies the HasPrefix predicate on the "original_text" field.
func OriginalTextHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldOriginalText, v))
}

// OriginalTextHasSuffix applies the HasSuffix predicate on the "original_text" field.
func OriginalTextHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldOriginalText, v))
}

// OriginalTextEqualFold applies the EqualFold predicate on the "original_text" field.
func OriginalTextEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldOriginalText, v))
}

// OriginalTextContainsFold applies the ContainsFold predicate on the "original_text" field.
func OriginalTextContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldOriginalText, v))
}

// JurisdictionIDEQ applies the EQ predicate on the "jurisdiction_id" field.
func JurisdictionIDEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldJurisdictionID, v))
}

// JurisdictionIDNEQ applies the NEQ predicate on the "jurisdiction_id" field.
func JurisdictionIDNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldJurisdictionID, v))
}

// JurisdictionIDIn applies the In predicate on the "jurisdiction_id" field.
func JurisdictionIDIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldJurisdictionID, vs...))
}

// JurisdictionIDNotIn applies the NotIn predicate on the "jurisdiction_id" field.
func JurisdictionIDNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldJurisdictionID, vs...))
}

// JurisdictionIDGT applies the GT predicate on the "jurisdiction_id" field.
func JurisdictionIDGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldJurisdictionID, v))
}

// JurisdictionIDGTE applies the GTE predicate on the "jurisdiction_id" field.
func JurisdictionIDGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldJurisdictionID, v))
}

// JurisdictionIDLT applies the LT predicate on the "jurisdiction_id" field.
func JurisdictionIDLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldJurisdictionID, v))
}

// JurisdictionIDLTE applies the LTE predicate on the "jurisdiction_id" field.
func JurisdictionIDLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldJurisdictionID, v))
}

// JurisdictionIDContains applies the Contains predicate on the "jurisdiction_id" field.
func JurisdictionIDContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldJurisdictionID, v))
}

// JurisdictionIDHasPrefix applies the HasPrefix predicate on the "jurisdiction_id" field.
func JurisdictionIDHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldJurisdictionID, v))
}

// JurisdictionIDHasSuffix applies the HasSuffix predicate on the "jurisdiction_id" field.
func JurisdictionIDHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldJurisdictionID, v))
}

// JurisdictionIDEqualFold applies the EqualFold predicate on the "jurisdiction_id" field.
func JurisdictionIDEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldJurisdictionID, v))
}

// JurisdictionIDContainsFold applies the ContainsFold predicate on the "jurisdiction_id" field.
func JurisdictionIDContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldJurisdictionID, v))
}

// JurisdictionCodeEQ applies the EQ predicate on the "jurisdiction_code" field.
func JurisdictionCodeEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldJurisdictionCode, v))
}

// JurisdictionCodeNEQ applies the NEQ predicate on the "jurisdiction_code" field.
func JurisdictionCodeNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldJurisdictionCode, v))
}

// JurisdictionCodeIn applies the In predicate on the "jurisdiction_code" field.
func JurisdictionCodeIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldJurisdictionCode, vs...))
}

// JurisdictionCodeNotIn applies the NotIn predicate on the "jurisdiction_code" field.
func JurisdictionCodeNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldJurisdictionCode, vs...))
}

// JurisdictionCodeGT applies the GT predicate on the "jurisdiction_code" field.
func JurisdictionCodeGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldJurisdictionCode, v))
}

// JurisdictionCodeGTE applies the GTE predicate on the "jurisdiction_code" field.
func JurisdictionCodeGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldJurisdictionCode, v))
}

// JurisdictionCodeLT applies the LT predicate on the "jurisdiction_code" field.
func JurisdictionCodeLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldJurisdictionCode, v))
}

// JurisdictionCodeLTE applies the LTE predicate on the "jurisdiction_code" field.
func JurisdictionCodeLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldJurisdictionCode, v))
}

// JurisdictionCodeContains applies the Contains predicate on the "jurisdiction_code" field.
func JurisdictionCodeContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldJurisdictionCode, v))
}

// JurisdictionCodeHasPrefix applies the HasPrefix predicate on the "jurisdiction_code" field.
func JurisdictionCodeHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldJurisdictionCode, v))
}

// JurisdictionCodeHasSuffix applies the HasSuffix predicate on the "jurisdiction_code" field.
func JurisdictionCodeHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldJurisdictionCode, v))
}

// JurisdictionCodeIsNil applies the IsNil predicate on the "jurisdiction_code" field.
func JurisdictionCodeIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldJurisdictionCode))
}

// JurisdictionCodeNotNil applies the NotNil predicate on the "jurisdiction_code" field.
func JurisdictionCodeNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldJurisdictionCode))
}

// JurisdictionCodeEqualFold applies the EqualFold predicate on the "jurisdiction_code" field.
func JurisdictionCodeEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldJurisdictionCode, v))
}

// JurisdictionCodeContainsFold applies the ContainsFold predicate on the "jurisdiction_code" field.
func JurisdictionCodeContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldJurisdictionCode, v))
}

// JurisdictionNameEQ applies the EQ predicate on the "jurisdiction_name" field.
func JurisdictionNameEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldJurisdictionName, v))
}

// JurisdictionNameNEQ applies the NEQ predicate on the "jurisdiction_name" field.
func JurisdictionNameNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldJurisdictionName, v))
}

// JurisdictionNameIn applies the In predicate on the "jurisdiction_name" field.
func JurisdictionNameIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldJurisdictionName, vs...))
}

// JurisdictionNameNotIn applies the NotIn predicate on the "jurisdiction_name" field.
func JurisdictionNameNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldJurisdictionName, vs...))
}

// JurisdictionNameGT applies the GT predicate on the "jurisdiction_name" field.
func JurisdictionNameGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldJurisdictionName, v))
}

// JurisdictionNameGTE applies the GTE predicate on the "jurisdiction_name" field.
func JurisdictionNameGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldJurisdictionName, v))
}

// JurisdictionNameLT applies the LT predicate on the "jurisdiction_name" field.
func JurisdictionNameLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldJurisdictionName, v))
}

// JurisdictionNameLTE applies the LTE predicate on the "jurisdiction_name" field.
func JurisdictionNameLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldJurisdictionName, v))
}

// JurisdictionNameContains applies the Contains predicate on the "jurisdiction_name" field.
func JurisdictionNameContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldJurisdictionName, v))
}

// JurisdictionNameHasPrefix applies the HasPrefix predicate on the "jurisdiction_name" field.
func JurisdictionNameHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldJurisdictionName, v))
}

// JurisdictionNameHasSuffix applies the HasSuffix predicate on the "jurisdiction_name" field.
func JurisdictionNameHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldJurisdictionName, v))
}

// JurisdictionNameIsNil applies the IsNil predicate on the "jurisdiction_name" field.
func JurisdictionNameIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldJurisdictionName))
}

// JurisdictionNameNotNil applies the NotNil predicate on the "jurisdiction_name" field.
func JurisdictionNameNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldJurisdictionName))
}

// JurisdictionNameEqualFold applies the EqualFold predicate on the "jurisdiction_name" field.
func JurisdictionNameEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldJurisdictionName, v))
}

// JurisdictionNameContainsFold applies the ContainsFold predicate on the "jurisdiction_name" field.
func JurisdictionNameContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldJurisdictionName, v))
}

// ChamberIDEQ applies the EQ predicate on the "chamber_id" field.
func ChamberIDEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldChamberID, v))
}

// ChamberIDNEQ applies the NEQ predicate on the "chamber_id" field.
func ChamberIDNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldChamberID, v))
}

// ChamberIDIn applies the In predicate on the "chamber_id" field.
func ChamberIDIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldChamberID, vs...))
}

// ChamberIDNotIn applies the NotIn predicate on the "chamber_id" field.
func ChamberIDNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldChamberID, vs...))
}

// ChamberIDGT applies the GT predicate on the "chamber_id" field.
func ChamberIDGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldChamberID, v))
}

// ChamberIDGTE applies the GTE predicate on the "chamber_id" field.
func ChamberIDGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldChamberID, v))
}

// ChamberIDLT applies the LT predicate on the "chamber_id" field.
func ChamberIDLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldChamberID, v))
}

// ChamberIDLTE applies the LTE predicate on the "chamber_id" field.
func ChamberIDLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldChamberID, v))
}

// ChamberIDContains applies the Contains predicate on the "chamber_id" field.
func ChamberIDContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldChamberID, v))
}

// ChamberIDHasPrefix applies the HasPrefix predicate on the "chamber_id" field.
func ChamberIDHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldChamberID, v))
}

// ChamberIDHasSuffix applies the HasSuffix predicate on the "chamber_id" field.
func ChamberIDHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldChamberID, v))
}

// ChamberIDIsNil applies the IsNil predicate on the "chamber_id" field.
func ChamberIDIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldChamberID))
}

// ChamberIDNotNil applies the NotNil predicate on the "chamber_id" field.
func ChamberIDNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldChamberID))
}

// ChamberIDEqualFold applies the EqualFold predicate on the "chamber_id" field.
func ChamberIDEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldChamberID, v))
}

// ChamberIDContainsFold applies the ContainsFold predicate on the "chamber_id" field.
func ChamberIDContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldChamberID, v))
}

// ChamberNameEQ applies the EQ predicate on the "chamber_name" field.
func ChamberNameEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldChamberName, v))
}

// ChamberNameNEQ applies the NEQ predicate on the "chamber_name" field.
func ChamberNameNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldChamberName, v))
}

// ChamberNameIn applies the In predicate on the "chamber_name" field.
func ChamberNameIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldChamberName, vs...))
}

// ChamberNameNotIn applies the NotIn predicate on the "chamber_name" field.
func ChamberNameNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldChamberName, vs...))
}

// ChamberNameGT applies the GT predicate on the "chamber_name" field.
func ChamberNameGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldChamberName, v))
}

// ChamberNameGTE applies the GTE predicate on the "chamber_name" field.
func ChamberNameGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldChamberName, v))
}

// ChamberNameLT applies the LT predicate on the "chamber_name" field.
func ChamberNameLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldChamberName, v))
}

// ChamberNameLTE applies the LTE predicate on the "chamber_name" field.
func ChamberNameLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldChamberName, v))
}

// ChamberNameContains applies the Contains predicate on the "chamber_name" field.
func ChamberNameContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldChamberName, v))
}

// ChamberNameHasPrefix applies the HasPrefix predicate on the "chamber_name" field.
func ChamberNameHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldChamberName, v))
}

// ChamberNameHasSuffix applies the HasSuffix predicate on the "chamber_name" field.
func ChamberNameHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldChamberName, v))
}

// ChamberNameIsNil applies the IsNil predicate on the "chamber_name" field.
func ChamberNameIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldChamberName))
}

// ChamberNameNotNil applies the NotNil predicate on the "chamber_name" field.
func ChamberNameNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldChamberName))
}

// ChamberNameEqualFold applies the EqualFold predicate on the "chamber_name" field.
func ChamberNameEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldChamberName, v))
}

// ChamberNameContainsFold applies the ContainsFold predicate on the "chamber_name" field.
func ChamberNameContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldChamberName, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDIsNil applies the IsNil predicate on the "group_id" field.
func GroupIDIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldGroupID))
}

// GroupIDNotNil applies the NotNil predicate on the "group_id" field.
func GroupIDNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldGroupID))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldGroupID, v))
}

// CaseNumberEQ applies the EQ predicate on the "case_number" field.
func CaseNumberEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCaseNumber, v))
}

// CaseNumberNEQ applies the NEQ predicate on the "case_number" field.
func CaseNumberNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldCaseNumber, v))
}

// CaseNumberIn applies the In predicate on the "case_number" field.
func CaseNumberIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldCaseNumber, vs...))
}

// CaseNumberNotIn applies the NotIn predicate on the "case_number" field.
func CaseNumberNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldCaseNumber, vs...))
}

// CaseNumberGT applies the GT predicate on the "case_number" field.
func CaseNumberGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldCaseNumber, v))
}

// CaseNumberGTE applies the GTE predicate on the "case_number" field.
func CaseNumberGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldCaseNumber, v))
}

// CaseNumberLT applies the LT predicate on the "case_number" field.
func CaseNumberLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldCaseNumber, v))
}

// CaseNumberLTE applies the LTE predicate on the "case_number" field.
func CaseNumberLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldCaseNumber, v))
}

// CaseNumberContains applies the Contains predicate on the "case_number" field.
func CaseNumberContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldCaseNumber, v))
}

// CaseNumberHasPrefix applies the HasPrefix predicate on the "case_number" field.
func CaseNumberHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldCaseNumber, v))
}

// CaseNumberHasSuffix applies the HasSuffix predicate on the "case_number" field.
func CaseNumberHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldCaseNumber, v))
}

// CaseNumberEqualFold applies the EqualFold predicate on the "case_number" field.
func CaseNumberEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldCaseNumber, v))
}

// CaseNumberContainsFold applies the ContainsFold predicate on the "case_number" field.
func CaseNumberContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldCaseNumber, v))
}

// RegisterNumberEQ applies the EQ predicate on the "register_number" field.
func RegisterNumberEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldRegisterNumber, v))
}

// RegisterNumberNEQ applies the NEQ predicate on the "register_number" field.
func RegisterNumberNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldRegisterNumber, v))
}

// RegisterNumberIn applies the In predicate on the "register_number" field.
func RegisterNumberIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldRegisterNumber, vs...))
}

// RegisterNumberNotIn applies the NotIn predicate on the "register_number" field.
func RegisterNumberNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldRegisterNumber, vs...))
}

// RegisterNumberGT applies the GT predicate on the "register_number" field.
func RegisterNumberGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldRegisterNumber, v))
}

// RegisterNumberGTE applies the GTE predicate on the "register_number" field.
func RegisterNumberGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldRegisterNumber, v))
}

// RegisterNumberLT applies the LT predicate on the "register_number" field.
func RegisterNumberLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldRegisterNumber, v))
}

// RegisterNumberLTE applies the LTE predicate on the "register_number" field.
func RegisterNumberLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldRegisterNumber, v))
}

// RegisterNumberContains applies the Contains predicate on the "register_number" field.
func RegisterNumberContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldRegisterNumber, v))
}

// RegisterNumberHasPrefix applies the HasPrefix predicate on the "register_number" field.
func RegisterNumberHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldRegisterNumber, v))
}

// RegisterNumberHasSuffix applies the HasSuffix predicate on the "register_number" field.
func RegisterNumberHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldRegisterNumber, v))
}

// RegisterNumberIsNil applies the IsNil predicate on the "register_number" field.
func RegisterNumberIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldRegisterNumber))
}

// RegisterNumberNotNil applies the NotNil predicate on the "register_number" field.
func RegisterNumberNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldRegisterNumber))
}

// RegisterNumberEqualFold applies the EqualFold predicate on the "register_number" field.
func RegisterNumberEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldRegisterNumber, v))
}

// RegisterNumberContainsFold applies the ContainsFold predicate on the "register_number" field.
func RegisterNumberContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldRegisterNumber, v))
}

// MatterCodeEQ applies the EQ predicate on the "matter_code" field.
func MatterCodeEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldMatterCode, v))
}

// MatterCodeNEQ applies the NEQ predicate on the "matter_code" field.
func MatterCodeNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldMatterCode, v))
}

// MatterCodeIn applies the In predicate on the "matter_code" field.
func MatterCodeIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldMatterCode, vs...))
}

// MatterCodeNotIn applies the NotIn predicate on the "matter_code" field.
func MatterCodeNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldMatterCode, vs...))
}

// MatterCodeGT applies the GT predicate on the "matter_code" field.
func MatterCodeGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldMatterCode, v))
}

// MatterCodeGTE applies the GTE predicate on the "matter_code" field.
func MatterCodeGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldMatterCode, v))
}

// MatterCodeLT applies the LT predicate on the "matter_code" field.
func MatterCodeLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldMatterCode, v))
}

// MatterCodeLTE applies the LTE predicate on the "matter_code" field.
func MatterCodeLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldMatterCode, v))
}

// MatterCodeContains applies the Contains predicate on the "matter_code" field.
func MatterCodeContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldMatterCode, v))
}

// MatterCodeHasPrefix applies the HasPrefix predicate on the "matter_code" field.
func MatterCodeHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldMatterCode, v))
}

// MatterCodeHasSuffix applies the HasSuffix predicate on the "matter_code" field.
func MatterCodeHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldMatterCode, v))
}

// MatterCodeIsNil applies the IsNil predicate on the "matter_code" field.
func MatterCodeIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldMatterCode))
}

// MatterCodeNotNil applies the NotNil predicate on the "matter_code" field.
func MatterCodeNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldMatterCode))
}

// MatterCodeEqualFold applies the EqualFold predicate on the "matter_code" field.
func MatterCodeEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldMatterCode, v))
}

// MatterCodeContainsFold applies the ContainsFold predicate on the "matter_code" field.
func MatterCodeContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldMatterCode, v))
}

// MatterLabelEQ applies the EQ predicate on the "matter_label" field.
func MatterLabelEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldMatterLabel, v))
}

// MatterLabelNEQ applies the NEQ predicate on the "matter_label" field.
func MatterLabelNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldMatterLabel, v))
}

// MatterLabelIn applies the In predicate on the "matter_label" field.
func MatterLabelIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldMatterLabel, vs...))
}

// MatterLabelNotIn applies the NotIn predicate on the "matter_label" field.
func MatterLabelNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldMatterLabel, vs...))
}

// MatterLabelGT applies the GT predicate on the "matter_label" field.
func MatterLabelGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldMatterLabel, v))
}

// MatterLabelGTE applies the GTE predicate on the "matter_label" field.
func MatterLabelGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldMatterLabel, v))
}

// MatterLabelLT applies the LT predicate on the "matter_label" field.
func MatterLabelLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldMatterLabel, v))
}

// MatterLabelLTE applies the LTE predicate on the "matter_label" field.
func MatterLabelLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldMatterLabel, v))
}

// MatterLabelContains applies the Contains predicate on the "matter_label" field.
func MatterLabelContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldMatterLabel, v))
}

// MatterLabelHasPrefix applies the HasPrefix predicate on the "matter_label" field.
func MatterLabelHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldMatterLabel, v))
}

// MatterLabelHasSuffix applies the HasSuffix predicate on the "matter_label" field.
func MatterLabelHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldMatterLabel, v))
}

// MatterLabelIsNil applies the IsNil predicate on the "matter_label" field.
func MatterLabelIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldMatterLabel))
}

// MatterLabelNotNil applies the NotNil predicate on the "matter_label" field.
func MatterLabelNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldMatterLabel))
}

// MatterLabelEqualFold applies the EqualFold predicate on the "matter_label" field.
func MatterLabelEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldMatterLabel, v))
}

// MatterLabelContainsFold applies the ContainsFold predicate on the "matter_label" field.
func MatterLabelContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldMatterLabel, v))
}

// ProcedureCodeEQ applies the EQ predicate on the "procedure_code" field.
func ProcedureCodeEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldProcedureCode, v))
}

// ProcedureCodeNEQ applies the NEQ predicate on the "procedure_code" field.
func ProcedureCodeNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldProcedureCode, v))
}

// ProcedureCodeIn applies the In predicate on the "procedure_code" field.
func ProcedureCodeIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldProcedureCode, vs...))
}

// ProcedureCodeNotIn applies the NotIn predicate on the "procedure_code" field.
func ProcedureCodeNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldProcedureCode, vs...))
}

// ProcedureCodeGT applies the GT predicate on the "procedure_code" field.
func ProcedureCodeGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldProcedureCode, v))
}

// ProcedureCodeGTE applies the GTE predicate on the "procedure_code" field.
func ProcedureCodeGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldProcedureCode, v))
}

// ProcedureCodeLT applies the LT predicate on the "procedure_code" field.
func ProcedureCodeLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldProcedureCode, v))
}

// ProcedureCodeLTE applies the LTE predicate on the "procedure_code" field.
func ProcedureCodeLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldProcedureCode, v))
}

// ProcedureCodeContains applies the Contains predicate on the "procedure_code" field.
func ProcedureCodeContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldProcedureCode, v))
}

// ProcedureCodeHasPrefix applies the HasPrefix predicate on the "procedure_code" field.
func ProcedureCodeHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldProcedureCode, v))
}

// ProcedureCodeHasSuffix applies the HasSuffix predicate on the "procedure_code" field.
func ProcedureCodeHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldProcedureCode, v))
}

// ProcedureCodeIsNil applies the IsNil predicate on the "procedure_code" field.
func ProcedureCodeIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldProcedureCode))
}

// ProcedureCodeNotNil applies the NotNil predicate on the "procedure_code" field.
func ProcedureCodeNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldProcedureCode))
}

// ProcedureCodeEqualFold applies the EqualFold predicate on the "procedure_code" field.
func ProcedureCodeEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldProcedureCode, v))
}

// ProcedureCodeContainsFold applies the ContainsFold predicate on the "procedure_code" field.
func ProcedureCodeContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldProcedureCode, v))
}

// SolutionEQ applies the EQ predicate on the "solution" field.
func SolutionEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSolution, v))
}

// SolutionNEQ applies the NEQ predicate on the "solution" field.
func SolutionNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldSolution, v))
}

// SolutionIn applies the In predicate on the "solution" field.
func SolutionIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldSolution, vs...))
}

// SolutionNotIn applies the NotIn predicate on the "solution" field.
func SolutionNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldSolution, vs...))
}

// SolutionGT applies the GT predicate on the "solution" field.
func SolutionGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldSolution, v))
}

// SolutionGTE applies the GTE predicate on the "solution" field.
func SolutionGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldSolution, v))
}

// SolutionLT applies the LT predicate on the "solution" field.
func SolutionLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldSolution, v))
}

// SolutionLTE applies the LTE predicate on the "solution" field.
func SolutionLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldSolution, v))
}

// SolutionContains applies the Contains predicate on the "solution" field.
func SolutionContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldSolution, v))
}

// SolutionHasPrefix applies the HasPrefix predicate on the "solution" field.
func SolutionHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldSolution, v))
}

// SolutionHasSuffix applies the HasSuffix predicate on the "solution" field.
func SolutionHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldSolution, v))
}

// SolutionIsNil applies the IsNil predicate on the "solution" field.
func SolutionIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldSolution))
}

// SolutionNotNil applies the NotNil predicate on the "solution" field.
func SolutionNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldSolution))
}

// SolutionEqualFold applies the EqualFold predicate on the "solution" field.
func SolutionEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldSolution, v))
}

// SolutionContainsFold applies the ContainsFold predicate on the "solution" field.
func SolutionContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldSolution, v))
}

// PublicEQ applies the EQ predicate on the "public" field.
func PublicEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldPublic, v))
}

// PublicNEQ applies the NEQ predicate on the "public" field.
func PublicNEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldPublic, v))
}

// DebatPublicEQ applies the EQ predicate on the "debat_public" field.
func DebatPublicEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldDebatPublic, v))
}

// DebatPublicNEQ applies the NEQ predicate on the "debat_public" field.
func DebatPublicNEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldDebatPublic, v))
}

// SelectionEQ applies the EQ predicate on the "selection" field.
func SelectionEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldSelection, v))
}

// SelectionNEQ applies the NEQ predicate on the "selection" field.
func SelectionNEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldSelection, v))
}

// PartiesIsNil applies the IsNil predicate on the "parties" field.
func PartiesIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldParties))
}

// PartiesNotNil applies the NotNil predicate on the "parties" field.
func PartiesNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldParties))
}

// CompositionIsNil applies the IsNil predicate on the "composition" field.
func CompositionIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldComposition))
}

// CompositionNotNil applies the NotNil predicate on the "composition" field.
func CompositionNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldComposition))
}

// OccultationAdditionalTermsEQ applies the EQ predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOccultationAdditionalTerms, v))
}

// OccultationAdditionalTermsNEQ applies the NEQ predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldOccultationAdditionalTerms, v))
}

// OccultationAdditionalTermsIn applies the In predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldOccultationAdditionalTerms, vs...))
}

// OccultationAdditionalTermsNotIn applies the NotIn predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldOccultationAdditionalTerms, vs...))
}

// OccultationAdditionalTermsGT applies the GT predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldOccultationAdditionalTerms, v))
}

// OccultationAdditionalTermsGTE applies the GTE predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldOccultationAdditionalTerms, v))
}

// OccultationAdditionalTermsLT applies the LT predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldOccultationAdditionalTerms, v))
}

// OccultationAdditionalTermsLTE applies the LTE predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldOccultationAdditionalTerms, v))
}

// OccultationAdditionalTermsContains applies the Contains predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldOccultationAdditionalTerms, v))
}

// OccultationAdditionalTermsHasPrefix applies the HasPrefix predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldOccultationAdditionalTerms, v))
}

// OccultationAdditionalTermsHasSuffix applies the HasSuffix predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldOccultationAdditionalTerms, v))
}

// OccultationAdditionalTermsIsNil applies the IsNil predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldOccultationAdditionalTerms))
}

// OccultationAdditionalTermsNotNil applies the NotNil predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldOccultationAdditionalTerms))
}

// OccultationAdditionalTermsEqualFold applies the EqualFold predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldOccultationAdditionalTerms, v))
}

// OccultationAdditionalTermsContainsFold applies the ContainsFold predicate on the "occultation_additional_terms" field.
func OccultationAdditionalTermsContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldOccultationAdditionalTerms, v))
}

// OccultationCategoriesIsNil applies the IsNil predicate on the "occultation_categories" field.
func OccultationCategoriesIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldOccultationCategories))
}

// OccultationCategoriesNotNil applies the NotNil predicate on the "occultation_categories" field.
func OccultationCategoriesNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldOccultationCategories))
}

// OccultationMotivationEQ applies the EQ predicate on the "occultation_motivation" field.
func OccultationMotivationEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOccultationMotivation, v))
}

// OccultationMotivationNEQ applies the NEQ predicate on the "occultation_motivation" field.
func OccultationMotivationNEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldOccultationMotivation, v))
}

// LabelStatusEQ applies the EQ predicate on the "label_status" field.
func LabelStatusEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldLabelStatus, v))
}

// LabelStatusNEQ applies the NEQ predicate on the "label_status" field.
func LabelStatusNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldLabelStatus, v))
}

// LabelStatusIn applies the In predicate on the "label_status" field.
func LabelStatusIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldLabelStatus, vs...))
}

// LabelStatusNotIn applies the NotIn predicate on the "label_status" field.
func LabelStatusNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldLabelStatus, vs...))
}

// LabelStatusGT applies the GT predicate on the "label_status" field.
func LabelStatusGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldLabelStatus, v))
}

// LabelStatusGTE applies the GTE predicate on the "label_status" field.
func LabelStatusGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldLabelStatus, v))
}

// LabelStatusLT applies the LT predicate on the "label_status" field.
func LabelStatusLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldLabelStatus, v))
}

// LabelStatusLTE applies the LTE predicate on the "label_status" field.
func LabelStatusLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldLabelStatus, v))
}

// LabelStatusContains applies the Contains predicate on the "label_status" field.
func LabelStatusContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldLabelStatus, v))
}

// LabelStatusHasPrefix applies the HasPrefix predicate on the "label_status" field.
func LabelStatusHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldLabelStatus, v))
}

// LabelStatusHasSuffix applies the HasSuffix predicate on the "label_status" field.
func LabelStatusHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldLabelStatus, v))
}

// LabelStatusEqualFold applies the EqualFold predicate on the "label_status" field.
func LabelStatusEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldLabelStatus, v))
}

// LabelStatusContainsFold applies the ContainsFold predicate on the "label_status" field.
func LabelStatusContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldLabelStatus, v))
}

// PublishStatusEQ applies the EQ predicate on the "publish_status" field.
func PublishStatusEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldPublishStatus, v))
}

// PublishStatusNEQ applies the NEQ predicate on the "publish_status" field.
func PublishStatusNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldPublishStatus, v))
}

// PublishStatusIn applies the In predicate on the "publish_status" field.
func PublishStatusIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldPublishStatus, vs...))
}

// PublishStatusNotIn applies the NotIn predicate on the "publish_status" field.
func PublishStatusNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldPublishStatus, vs...))
}

// PublishStatusGT applies the GT predicate on the "publish_status" field.
func PublishStatusGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldPublishStatus, v))
}

// PublishStatusGTE applies the GTE predicate on the "publish_status" field.
func PublishStatusGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldPublishStatus, v))
}

// PublishStatusLT applies the LT predicate on the "publish_status" field.
func PublishStatusLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldPublishStatus, v))
}

// PublishStatusLTE applies the LTE predicate on the "publish_status" field.
func PublishStatusLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldPublishStatus, v))
}

// PublishStatusContains applies the Contains predicate on the "publish_status" field.
func PublishStatusContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldPublishStatus, v))
}

// PublishStatusHasPrefix applies the HasPrefix predicate on the "publish_status" field.
func PublishStatusHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldPublishStatus, v))
}

// PublishStatusHasSuffix applies the HasSuffix predicate on the "publish_status" field.
func PublishStatusHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldPublishStatus, v))
}

// PublishStatusEqualFold applies the EqualFold predicate on the "publish_status" field.
func PublishStatusEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldPublishStatus, v))
}

// PublishStatusContainsFold applies the ContainsFold predicate on the "publish_status" field.
func PublishStatusContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldPublishStatus, v))
}

// DateDecisionEQ applies the EQ predicate on the "date_decision" field.
func DateDecisionEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldDateDecision, v))
}

// DateDecisionNEQ applies the NEQ predicate on the "date_decision" field.
func DateDecisionNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldDateDecision, v))
}

// DateDecisionIn applies the In predicate on the "date_decision" field.
func DateDecisionIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldDateDecision, vs...))
}

// DateDecisionNotIn applies the NotIn predicate on the "date_decision" field.
func DateDecisionNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldDateDecision, vs...))
}

// DateDecisionGT applies the GT predicate on the "date_decision" field.
func DateDecisionGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldDateDecision, v))
}

// DateDecisionGTE applies the GTE predicate on the "date_decision" field.
func DateDecisionGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldDateDecision, v))
}

// DateDecisionLT applies the LT predicate on the "date_decision" field.
func DateDecisionLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldDateDecision, v))
}

// DateDecisionLTE applies the LTE predicate on the "date_decision" field.
func DateDecisionLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldDateDecision, v))
}

// DateCreationEQ applies the EQ predicate on the "date_creation" field.
func DateCreationEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldDateCreation, v))
}

// DateCreationNEQ applies the NEQ predicate on the "date_creation" field.
func DateCreationNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldDateCreation, v))
}

// DateCreationIn applies the In predicate on the "date_creation" field.
func DateCreationIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldDateCreation, vs...))
}

// DateCreationNotIn applies the NotIn predicate on the "date_creation" field.
func DateCreationNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldDateCreation, vs...))
}

// DateCreationGT applies the GT predicate on the "date_creation" field.
func DateCreationGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldDateCreation, v))
}

// DateCreationGTE applies the GTE predicate on the "date_creation" field.
func DateCreationGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldDateCreation, v))
}

// DateCreationLT applies the LT predicate on the "date_creation" field.
func DateCreationLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldDateCreation, v))
}

// DateCreationLTE applies the LTE predicate on the "date_creation" field.
func DateCreationLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldDateCreation, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.NotPredicates(p))
}
