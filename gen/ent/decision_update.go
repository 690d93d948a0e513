// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/aferrand/decisions-collector/gen/ent/decision"
	"github.com/aferrand/decisions-collector/gen/ent/predicate"
)

// DecisionUpdate is the builder for updating Decision entities.
type DecisionUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionMutation
}

// Where appends a list predicates to the DecisionUpdate builder.
func (_u *DecisionUpdate) Where(ps ...predicate.Decision) *DecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *DecisionUpdate) SetSourceID(v int64) *DecisionUpdate {
	_u.mutation.ResetSourceID()
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableSourceID(v *int64) *DecisionUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// AddSourceID adds value to the "source_id" field.
func (_u *DecisionUpdate) AddSourceID(v int64) *DecisionUpdate {
	_u.mutation.AddSourceID(v)
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *DecisionUpdate) SetSourceName(v string) *DecisionUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableSourceName(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *DecisionUpdate) SetOriginalText(v string) *DecisionUpdate {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableOriginalText(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// SetJurisdictionID sets the "jurisdiction_id" field.
func (_u *DecisionUpdate) SetJurisdictionID(v string) *DecisionUpdate {
	_u.mutation.SetJurisdictionID(v)
	return _u
}

// SetNillableJurisdictionID sets the "jurisdiction_id" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableJurisdictionID(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetJurisdictionID(*v)
	}
	return _u
}

// SetJurisdictionCode sets the "jurisdiction_code" field.
func (_u *DecisionUpdate) SetJurisdictionCode(v string) *DecisionUpdate {
	_u.mutation.SetJurisdictionCode(v)
	return _u
}

// SetNillableJurisdictionCode sets the "jurisdiction_code" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableJurisdictionCode(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetJurisdictionCode(*v)
	}
	return _u
}

// ClearJurisdictionCode clears the value of the "jurisdiction_code" field.
func (_u *DecisionUpdate) ClearJurisdictionCode() *DecisionUpdate {
	_u.mutation.ClearJurisdictionCode()
	return _u
}

// SetJurisdictionName sets the "jurisdiction_name" field.
func (_u *DecisionUpdate) SetJurisdictionName(v string) *DecisionUpdate {
	_u.mutation.SetJurisdictionName(v)
	return _u
}

// SetNillableJurisdictionName sets the "jurisdiction_name" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableJurisdictionName(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetJurisdictionName(*v)
	}
	return _u
}

// ClearJurisdictionName clears the value of the "jurisdiction_name" field.
func (_u *DecisionUpdate) ClearJurisdictionName() *DecisionUpdate {
	_u.mutation.ClearJurisdictionName()
	return _u
}

// SetChamberID sets the "chamber_id" field.
func (_u *DecisionUpdate) SetChamberID(v string) *DecisionUpdate {
	_u.mutation.SetChamberID(v)
	return _u
}

// SetNillableChamberID sets the "chamber_id" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableChamberID(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetChamberID(*v)
	}
	return _u
}

// ClearChamberID clears the value of the "chamber_id" field.
func (_u *DecisionUpdate) ClearChamberID() *DecisionUpdate {
	_u.mutation.ClearChamberID()
	return _u
}

// SetChamberName sets the "chamber_name" field.
func (_u *DecisionUpdate) SetChamberName(v string) *DecisionUpdate {
	_u.mutation.SetChamberName(v)
	return _u
}

// SetNillableChamberName sets the "chamber_name" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableChamberName(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetChamberName(*v)
	}
	return _u
}

// ClearChamberName clears the value of the "chamber_name" field.
func (_u *DecisionUpdate) ClearChamberName() *DecisionUpdate {
	_u.mutation.ClearChamberName()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *DecisionUpdate) SetGroupID(v string) *DecisionUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableGroupID(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *DecisionUpdate) ClearGroupID() *DecisionUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *DecisionUpdate) SetCaseNumber(v string) *DecisionUpdate {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableCaseNumber(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// SetRegisterNumber sets the "register_number" field.
func (_u *DecisionUpdate) SetRegisterNumber(v string) *DecisionUpdate {
	_u.mutation.SetRegisterNumber(v)
	return _u
}

// SetNillableRegisterNumber sets the "register_number" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableRegisterNumber(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetRegisterNumber(*v)
	}
	return _u
}

// ClearRegisterNumber clears the value of the "register_number" field.
func (_u *DecisionUpdate) ClearRegisterNumber() *DecisionUpdate {
	_u.mutation.ClearRegisterNumber()
	return _u
}

// SetMatterCode sets the "matter_code" field.
func (_u *DecisionUpdate) SetMatterCode(v string) *DecisionUpdate {
	_u.mutation.SetMatterCode(v)
	return _u
}

// SetNillableMatterCode sets the "matter_code" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableMatterCode(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetMatterCode(*v)
	}
	return _u
}

// ClearMatterCode clears the value of the "matter_code" field.
func (_u *DecisionUpdate) ClearMatterCode() *DecisionUpdate {
	_u.mutation.ClearMatterCode()
	return _u
}

// SetMatterLabel sets the "matter_label" field.
func (_u *DecisionUpdate) SetMatterLabel(v string) *DecisionUpdate {
	_u.mutation.SetMatterLabel(v)
	return _u
}

// SetNillableMatterLabel sets the "matter_label" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableMatterLabel(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetMatterLabel(*v)
	}
	return _u
}

// ClearMatterLabel clears the value of the "matter_label" field.
func (_u *DecisionUpdate) ClearMatterLabel() *DecisionUpdate {
	_u.mutation.ClearMatterLabel()
	return _u
}

// SetProcedureCode sets the "procedure_code" field.
func (_u *DecisionUpdate) SetProcedureCode(v string) *DecisionUpdate {
	_u.mutation.SetProcedureCode(v)
	return _u
}

// SetNillableProcedureCode sets the "procedure_code" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableProcedureCode(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetProcedureCode(*v)
	}
	return _u
}

// ClearProcedureCode clears the value of the "procedure_code" field.
func (_u *DecisionUpdate) ClearProcedureCode() *DecisionUpdate {
	_u.mutation.ClearProcedureCode()
	return _u
}

// SetSolution sets the "solution" field.
func (_u *DecisionUpdate) SetSolution(v string) *DecisionUpdate {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableSolution(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// ClearSolution clears the value of the "solution" field.
func (_u *DecisionUpdate) ClearSolution() *DecisionUpdate {
	_u.mutation.ClearSolution()
	return _u
}

// SetPublic sets the "public" field.
func (_u *DecisionUpdate) SetPublic(v bool) *DecisionUpdate {
	_u.mutation.SetPublic(v)
	return _u
}

// SetNillablePublic sets the "public" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillablePublic(v *bool) *DecisionUpdate {
	if v != nil {
		_u.SetPublic(*v)
	}
	return _u
}

// SetDebatPublic sets the "debat_public" field.
func (_u *DecisionUpdate) SetDebatPublic(v bool) *DecisionUpdate {
	_u.mutation.SetDebatPublic(v)
	return _u
}

// SetNillableDebatPublic sets the "debat_public" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableDebatPublic(v *bool) *DecisionUpdate {
	if v != nil {
		_u.SetDebatPublic(*v)
	}
	return _u
}

// SetSelection sets the "selection" field.
func (_u *DecisionUpdate) SetSelection(v bool) *DecisionUpdate {
	_u.mutation.SetSelection(v)
	return _u
}

// SetNillableSelection sets the "selection" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableSelection(v *bool) *DecisionUpdate {
	if v != nil {
		_u.SetSelection(*v)
	}
	return _u
}

// SetParties sets the "parties" field.
func (_u *DecisionUpdate) SetParties(v json.RawMessage) *DecisionUpdate {
	_u.mutation.SetParties(v)
	return _u
}

// AppendParties appends value to the "parties" field.
func (_u *DecisionUpdate) AppendParties(v json.RawMessage) *DecisionUpdate {
	_u.mutation.AppendParties(v)
	return _u
}

// ClearParties clears the value of the "parties" field.
func (_u *DecisionUpdate) ClearParties() *DecisionUpdate {
	_u.mutation.ClearParties()
	return _u
}

// SetComposition sets the "composition" field.
func (_u *DecisionUpdate) SetComposition(v json.RawMessage) *DecisionUpdate {
	_u.mutation.SetComposition(v)
	return _u
}

// AppendComposition appends value to the "composition" field.
func (_u *DecisionUpdate) AppendComposition(v json.RawMessage) *DecisionUpdate {
	_u.mutation.AppendComposition(v)
	return _u
}

// ClearComposition clears the value of the "composition" field.
func (_u *DecisionUpdate) ClearComposition() *DecisionUpdate {
	_u.mutation.ClearComposition()
	return _u
}

// SetOccultationAdditionalTerms sets the "occultation_additional_terms" field.
func (_u *DecisionUpdate) SetOccultationAdditionalTerms(v string) *DecisionUpdate {
	_u.mutation.SetOccultationAdditionalTerms(v)
	return _u
}

// SetNillableOccultationAdditionalTerms sets the "occultation_additional_terms" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableOccultationAdditionalTerms(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetOccultationAdditionalTerms(*v)
	}
	return _u
}

// ClearOccultationAdditionalTerms clears the value of the "occultation_additional_terms" field.
func (_u *DecisionUpdate) ClearOccultationAdditionalTerms() *DecisionUpdate {
	_u.mutation.ClearOccultationAdditionalTerms()
	return _u
}

// SetOccultationCategories sets the "occultation_categories" field.
func (_u *DecisionUpdate) SetOccultationCategories(v []string) *DecisionUpdate {
	_u.mutation.SetOccultationCategories(v)
	return _u
}

// AppendOccultationCategories appends value to the "occultation_categories" field.
func (_u *DecisionUpdate) AppendOccultationCategories(v []string) *DecisionUpdate {
	_u.mutation.AppendOccultationCategories(v)
	return _u
}

// ClearOccultationCategories clears the value of the "occultation_categories" field.
func (_u *DecisionUpdate) ClearOccultationCategories() *DecisionUpdate {
	_u.mutation.ClearOccultationCategories()
	return _u
}

// SetOccultationMotivation sets the "occultation_motivation" field.
func (_u *DecisionUpdate) SetOccultationMotivation(v bool) *DecisionUpdate {
	_u.mutation.SetOccultationMotivation(v)
	return _u
}

// SetNillableOccultationMotivation sets the "occultation_motivation" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableOccultationMotivation(v *bool) *DecisionUpdate {
	if v != nil {
		_u.SetOccultationMotivation(*v)
	}
	return _u
}

// SetLabelStatus sets the "label_status" field.
func (_u *DecisionUpdate) SetLabelStatus(v string) *DecisionUpdate {
	_u.mutation.SetLabelStatus(v)
	return _u
}

// SetNillableLabelStatus sets the "label_status" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableLabelStatus(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetLabelStatus(*v)
	}
	return _u
}

// SetPublishStatus sets the "publish_status" field.
func (_u *DecisionUpdate) SetPublishStatus(v string) *DecisionUpdate {
	_u.mutation.SetPublishStatus(v)
	return _u
}

// SetNillablePublishStatus sets the "publish_status" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillablePublishStatus(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetPublishStatus(*v)
	}
	return _u
}

// SetDateDecision sets the "date_decision" field.
func (_u *DecisionUpdate) SetDateDecision(v time.Time) *DecisionUpdate {
	_u.mutation.SetDateDecision(v)
	return _u
}

// SetNillableDateDecision sets the "date_decision" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableDateDecision(v *time.Time) *DecisionUpdate {
	if v != nil {
		_u.SetDateDecision(*v)
	}
	return _u
}

// SetDateCreation sets the "date_creation" field.
func (_u *DecisionUpdate) SetDateCreation(v time.Time) *DecisionUpdate {
	_u.mutation.SetDateCreation(v)
	return _u
}

// SetNillableDateCreation sets the "date_creation" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableDateCreation(v *time.Time) *DecisionUpdate {
	if v != nil {
		_u.SetDateCreation(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DecisionUpdate) SetUpdatedAt(v time.Time) *DecisionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DecisionMutation object of the builder.
func (_u *DecisionUpdate) Mutation() *DecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DecisionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := decision.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionUpdate) check() error {
	if v, ok := _u.mutation.SourceName(); ok {
		if err := decision.SourceNameValidator(v); err != nil {
			return &ValidationError{Name: "source_name", err: fmt.Errorf(`ent: validator failed for field "Decision.source_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JurisdictionID(); ok {
		if err := decision.JurisdictionIDValidator(v); err != nil {
			return &ValidationError{Name: "jurisdiction_id", err: fmt.Errorf(`ent: validator failed for field "Decision.jurisdiction_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseNumber(); ok {
		if err := decision.CaseNumberValidator(v); err != nil {
			return &ValidationError{Name: "case_number", err: fmt.Errorf(`ent: validator failed for field "Decision.case_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LabelStatus(); ok {
		if err := decision.LabelStatusValidator(v); err != nil {
			return &ValidationError{Name: "label_status", err: fmt.Errorf(`ent: validator failed for field "Decision.label_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PublishStatus(); ok {
		if err := decision.PublishStatusValidator(v); err != nil {
			return &ValidationError{Name: "publish_status", err: fmt.Errorf(`ent: validator failed for field "Decision.publish_status": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decision.Table, decision.Columns, sqlgraph.NewFieldSpec(decision.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(decision.FieldSourceID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSourceID(); ok {
		_spec.AddField(decision.FieldSourceID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(decision.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(decision.FieldOriginalText, field.TypeString, value)
	}
	if value, ok := _u.mutation.JurisdictionID(); ok {
		_spec.SetField(decision.FieldJurisdictionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JurisdictionCode(); ok {
		_spec.SetField(decision.FieldJurisdictionCode, field.TypeString, value)
	}
	if _u.mutation.JurisdictionCodeCleared() {
		_spec.ClearField(decision.FieldJurisdictionCode, field.TypeString)
	}
	if value, ok := _u.mutation.JurisdictionName(); ok {
		_spec.SetField(decision.FieldJurisdictionName, field.TypeString, value)
	}
	if _u.mutation.JurisdictionNameCleared() {
		_spec.ClearField(decision.FieldJurisdictionName, field.TypeString)
	}
	if value, ok := _u.mutation.ChamberID(); ok {
		_spec.SetField(decision.FieldChamberID, field.TypeString, value)
	}
	if _u.mutation.ChamberIDCleared() {
		_spec.ClearField(decision.FieldChamberID, field.TypeString)
	}
	if value, ok := _u.mutation.ChamberName(); ok {
		_spec.SetField(decision.FieldChamberName, field.TypeString, value)
	}
	if _u.mutation.ChamberNameCleared() {
		_spec.ClearField(decision.FieldChamberName, field.TypeString)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(decision.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(decision.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(decision.FieldCaseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegisterNumber(); ok {
		_spec.SetField(decision.FieldRegisterNumber, field.TypeString, value)
	}
	if _u.mutation.RegisterNumberCleared() {
		_spec.ClearField(decision.FieldRegisterNumber, field.TypeString)
	}
	if value, ok := _u.mutation.MatterCode(); ok {
		_spec.SetField(decision.FieldMatterCode, field.TypeString, value)
	}
	if _u.mutation.MatterCodeCleared() {
		_spec.ClearField(decision.FieldMatterCode, field.TypeString)
	}
	if value, ok := _u.mutation.MatterLabel(); ok {
		_spec.SetField(decision.FieldMatterLabel, field.TypeString, value)
	}
	if _u.mutation.MatterLabelCleared() {
		_spec.ClearField(decision.FieldMatterLabel, field.TypeString)
	}
	if value, ok := _u.mutation.ProcedureCode(); ok {
		_spec.SetField(decision.FieldProcedureCode, field.TypeString, value)
	}
	if _u.mutation.ProcedureCodeCleared() {
		_spec.ClearField(decision.FieldProcedureCode, field.TypeString)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(decision.FieldSolution, field.TypeString, value)
	}
	if _u.mutation.SolutionCleared() {
		_spec.ClearField(decision.FieldSolution, field.TypeString)
	}
	if value, ok := _u.mutation.Public(); ok {
		_spec.SetField(decision.FieldPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DebatPublic(); ok {
		_spec.SetField(decision.FieldDebatPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Selection(); ok {
		_spec.SetField(decision.FieldSelection, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Parties(); ok {
		_spec.SetField(decision.FieldParties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decision.FieldParties, value)
		})
	}
	if _u.mutation.PartiesCleared() {
		_spec.ClearField(decision.FieldParties, field.TypeJSON)
	}
	if value, ok := _u.mutation.Composition(); ok {
		_spec.SetField(decision.FieldComposition, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedComposition(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decision.FieldComposition, value)
		})
	}
	if _u.mutation.CompositionCleared() {
		_spec.ClearField(decision.FieldComposition, field.TypeJSON)
	}
	if value, ok := _u.mutation.OccultationAdditionalTerms(); ok {
		_spec.SetField(decision.FieldOccultationAdditionalTerms, field.TypeString, value)
	}
	if _u.mutation.OccultationAdditionalTermsCleared() {
		_spec.ClearField(decision.FieldOccultationAdditionalTerms, field.TypeString)
	}
	if value, ok := _u.mutation.OccultationCategories(); ok {
		_spec.SetField(decision.FieldOccultationCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOccultationCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decision.FieldOccultationCategories, value)
		})
	}
	if _u.mutation.OccultationCategoriesCleared() {
		_spec.ClearField(decision.FieldOccultationCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.OccultationMotivation(); ok {
		_spec.SetField(decision.FieldOccultationMotivation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LabelStatus(); ok {
		_spec.SetField(decision.FieldLabelStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishStatus(); ok {
		_spec.SetField(decision.FieldPublishStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateDecision(); ok {
		_spec.SetField(decision.FieldDateDecision, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DateCreation(); ok {
		_spec.SetField(decision.FieldDateCreation, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(decision.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionUpdateOne is the builder for updating a single Decision entity.
type DecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionMutation
}

// SetSourceID sets the "source_id" field.
func (_u *DecisionUpdateOne) SetSourceID(v int64) *DecisionUpdateOne {
	_u.mutation.ResetSourceID()
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableSourceID(v *int64) *DecisionUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// AddSourceID adds value to the "source_id" field.
func (_u *DecisionUpdateOne) AddSourceID(v int64) *DecisionUpdateOne {
	_u.mutation.AddSourceID(v)
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *DecisionUpdateOne) SetSourceName(v string) *DecisionUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableSourceName(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *DecisionUpdateOne) SetOriginalText(v string) *DecisionUpdateOne {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableOriginalText(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// SetJurisdictionID sets the "jurisdiction_id" field.
func (_u *DecisionUpdateOne) SetJurisdictionID(v string) *DecisionUpdateOne {
	_u.mutation.SetJurisdictionID(v)
	return _u
}

// SetNillableJurisdictionID sets the "jurisdiction_id" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableJurisdictionID(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetJurisdictionID(*v)
	}
	return _u
}

// SetJurisdictionCode sets the "jurisdiction_code" field.
func (_u *DecisionUpdateOne) SetJurisdictionCode(v string) *DecisionUpdateOne {
	_u.mutation.SetJurisdictionCode(v)
	return _u
}

// SetNillableJurisdictionCode sets the "jurisdiction_code" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableJurisdictionCode(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetJurisdictionCode(*v)
	}
	return _u
}

// ClearJurisdictionCode clears the value of the "jurisdiction_code" field.
func (_u *DecisionUpdateOne) ClearJurisdictionCode() *DecisionUpdateOne {
	_u.mutation.ClearJurisdictionCode()
	return _u
}

// SetJurisdictionName sets the "jurisdiction_name" field.
func (_u *DecisionUpdateOne) SetJurisdictionName(v string) *DecisionUpdateOne {
	_u.mutation.SetJurisdictionName(v)
	return _u
}

// SetNillableJurisdictionName sets the "jurisdiction_name" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableJurisdictionName(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetJurisdictionName(*v)
	}
	return _u
}

// ClearJurisdictionName clears the value of the "jurisdiction_name" field.
func (_u *DecisionUpdateOne) ClearJurisdictionName() *DecisionUpdateOne {
	_u.mutation.ClearJurisdictionName()
	return _u
}

// SetChamberID sets the "chamber_id" field.
func (_u *DecisionUpdateOne) SetChamberID(v string) *DecisionUpdateOne {
	_u.mutation.SetChamberID(v)
	return _u
}

// SetNillableChamberID sets the "chamber_id" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableChamberID(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetChamberID(*v)
	}
	return _u
}

// ClearChamberID clears the value of the "chamber_id" field.
func (_u *DecisionUpdateOne) ClearChamberID() *DecisionUpdateOne {
	_u.mutation.ClearChamberID()
	return _u
}

// SetChamberName sets the "chamber_name" field.
func (_u *DecisionUpdateOne) SetChamberName(v string) *DecisionUpdateOne {
	_u.mutation.SetChamberName(v)
	return _u
}

// SetNillableChamberName sets the "chamber_name" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableChamberName(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetChamberName(*v)
	}
	return _u
}

// ClearChamberName clears the value of the "chamber_name" field.
func (_u *DecisionUpdateOne) ClearChamberName() *DecisionUpdateOne {
	_u.mutation.ClearChamberName()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *DecisionUpdateOne) SetGroupID(v string) *DecisionUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableGroupID(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *DecisionUpdateOne) ClearGroupID() *DecisionUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *DecisionUpdateOne) SetCaseNumber(v string) *DecisionUpdateOne {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableCaseNumber(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// SetRegisterNumber sets the "register_number" field.
func (_u *DecisionUpdateOne) SetRegisterNumber(v string) *DecisionUpdateOne {
	_u.mutation.SetRegisterNumber(v)
	return _u
}

// SetNillableRegisterNumber sets the "register_number" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableRegisterNumber(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetRegisterNumber(*v)
	}
	return _u
}

// ClearRegisterNumber clears the value of the "register_number" field.
func (_u *DecisionUpdateOne) ClearRegisterNumber() *DecisionUpdateOne {
	_u.mutation.ClearRegisterNumber()
	return _u
}

// SetMatterCode sets the "matter_code" field.
func (_u *DecisionUpdateOne) SetMatterCode(v string) *DecisionUpdateOne {
	_u.mutation.SetMatterCode(v)
	return _u
}

// SetNillableMatterCode sets the "matter_code" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableMatterCode(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetMatterCode(*v)
	}
	return _u
}

// ClearMatterCode clears the value of the "matter_code" field.
func (_u *DecisionUpdateOne) ClearMatterCode() *DecisionUpdateOne {
	_u.mutation.ClearMatterCode()
	return _u
}

// SetMatterLabel sets the "matter_label" field.
func (_u *DecisionUpdateOne) SetMatterLabel(v string) *DecisionUpdateOne {
	_u.mutation.SetMatterLabel(v)
	return _u
}

// SetNillableMatterLabel sets the "matter_label" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableMatterLabel(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetMatterLabel(*v)
	}
	return _u
}

// ClearMatterLabel clears the value of the "matter_label" field.
func (_u *DecisionUpdateOne) ClearMatterLabel() *DecisionUpdateOne {
	_u.mutation.ClearMatterLabel()
	return _u
}

// SetProcedureCode sets the "procedure_code" field.
func (_u *DecisionUpdateOne) SetProcedureCode(v string) *DecisionUpdateOne {
	_u.mutation.SetProcedureCode(v)
	return _u
}

// SetNillableProcedureCode sets the "procedure_code" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableProcedureCode(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetProcedureCode(*v)
	}
	return _u
}

// ClearProcedureCode clears the value of the "procedure_code" field.
func (_u *DecisionUpdateOne) ClearProcedureCode() *DecisionUpdateOne {
	_u.mutation.ClearProcedureCode()
	return _u
}

// SetSolution sets the "solution" field.
func (_u *DecisionUpdateOne) SetSolution(v string) *DecisionUpdateOne {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableSolution(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// ClearSolution clears the value of the "solution" field.
func (_u *DecisionUpdateOne) ClearSolution() *DecisionUpdateOne {
	_u.mutation.ClearSolution()
	return _u
}

// SetPublic sets the "public" field.
func (_u *DecisionUpdateOne) SetPublic(v bool) *DecisionUpdateOne {
	_u.mutation.SetPublic(v)
	return _u
}

// SetNillablePublic sets the "public" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillablePublic(v *bool) *DecisionUpdateOne {
	if v != nil {
		_u.SetPublic(*v)
	}
	return _u
}

// SetDebatPublic sets the "debat_public" field.
func (_u *DecisionUpdateOne) SetDebatPublic(v bool) *DecisionUpdateOne {
	_u.mutation.SetDebatPublic(v)
	return _u
}

// SetNillableDebatPublic sets the "debat_public" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableDebatPublic(v *bool) *DecisionUpdateOne {
	if v != nil {
		_u.SetDebatPublic(*v)
	}
	return _u
}

// SetSelection sets the "selection" field.
func (_u *DecisionUpdateOne) SetSelection(v bool) *DecisionUpdateOne {
	_u.mutation.SetSelection(v)
	return _u
}

// SetNillableSelection sets the "selection" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableSelection(v *bool) *DecisionUpdateOne {
	if v != nil {
		_u.SetSelection(*v)
	}
	return _u
}

// SetParties sets the "parties" field.
func (_u *DecisionUpdateOne) SetParties(v json.RawMessage) *DecisionUpdateOne {
	_u.mutation.SetParties(v)
	return _u
}

// AppendParties appends value to the "parties" field.
func (_u *DecisionUpdateOne) AppendParties(v json.RawMessage) *DecisionUpdateOne {
	_u.mutation.AppendParties(v)
	return _u
}

// ClearParties clears the value of the "parties" field.
func (_u *DecisionUpdateOne) ClearParties() *DecisionUpdateOne {
	_u.mutation.ClearParties()
	return _u
}

// SetComposition sets the "composition" field.
func (_u *DecisionUpdateOne) SetComposition(v json.RawMessage) *DecisionUpdateOne {
	_u.mutation.SetComposition(v)
	return _u
}

// AppendComposition appends value to the "composition" field.
func (_u *DecisionUpdateOne) AppendComposition(v json.RawMessage) *DecisionUpdateOne {
	_u.mutation.AppendComposition(v)
	return _u
}

// ClearComposition clears the value of the "composition" field.
func (_u *DecisionUpdateOne) ClearComposition() *DecisionUpdateOne {
	_u.mutation.ClearComposition()
	return _u
}

// SetOccultationAdditionalTerms sets the "occultation_additional_terms" field.
func (_u *DecisionUpdateOne) SetOccultationAdditionalTerms(v string) *DecisionUpdateOne {
	_u.mutation.SetOccultationAdditionalTerms(v)
	return _u
}

// SetNillableOccultationAdditionalTerms sets the "occultation_additional_terms" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableOccultationAdditionalTerms(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetOccultationAdditionalTerms(*v)
	}
	return _u
}

// ClearOccultationAdditionalTerms clears the value of the "occultation_additional_terms" field.
func (_u *DecisionUpdateOne) ClearOccultationAdditionalTerms() *DecisionUpdateOne {
	_u.mutation.ClearOccultationAdditionalTerms()
	return _u
}

// SetOccultationCategories sets the "occultation_categories" field.
func (_u *DecisionUpdateOne) SetOccultationCategories(v []string) *DecisionUpdateOne {
	_u.mutation.SetOccultationCategories(v)
	return _u
}

// AppendOccultationCategories appends value to the "occultation_categories" field.
func (_u *DecisionUpdateOne) AppendOccultationCategories(v []string) *DecisionUpdateOne {
	_u.mutation.AppendOccultationCategories(v)
	return _u
}

// ClearOccultationCategories clears the value of the "occultation_categories" field.
func (_u *DecisionUpdateOne) ClearOccultationCategories() *DecisionUpdateOne {
	_u.mutation.ClearOccultationCategories()
	return _u
}

// SetOccultationMotivation sets the "occultation_motivation" field.
func (_u *DecisionUpdateOne) SetOccultationMotivation(v bool) *DecisionUpdateOne {
	_u.mutation.SetOccultationMotivation(v)
	return _u
}

// SetNillableOccultationMotivation sets the "occultation_motivation" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableOccultationMotivation(v *bool) *DecisionUpdateOne {
	if v != nil {
		_u.SetOccultationMotivation(*v)
	}
	return _u
}

// SetLabelStatus sets the "label_status" field.
func (_u *DecisionUpdateOne) SetLabelStatus(v string) *DecisionUpdateOne {
	_u.mutation.SetLabelStatus(v)
	return _u
}

// SetNillableLabelStatus sets the "label_status" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableLabelStatus(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetLabelStatus(*v)
	}
	return _u
}

// SetPublishStatus sets the "publish_status" field.
func (_u *DecisionUpdateOne) SetPublishStatus(v string) *DecisionUpdateOne {
	_u.mutation.SetPublishStatus(v)
	return _u
}

// SetNillablePublishStatus sets the "publish_status" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillablePublishStatus(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetPublishStatus(*v)
	}
	return _u
}

// SetDateDecision sets the "date_decision" field.
func (_u *DecisionUpdateOne) SetDateDecision(v time.Time) *DecisionUpdateOne {
	_u.mutation.SetDateDecision(v)
	return _u
}

// SetNillableDateDecision sets the "date_decision" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableDateDecision(v *time.Time) *DecisionUpdateOne {
	if v != nil {
		_u.SetDateDecision(*v)
	}
	return _u
}

// SetDateCreation sets the "date_creation" field.
func (_u *DecisionUpdateOne) SetDateCreation(v time.Time) *DecisionUpdateOne {
	_u.mutation.SetDateCreation(v)
	return _u
}

// SetNillableDateCreation sets the "date_creation" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableDateCreation(v *time.Time) *DecisionUpdateOne {
	if v != nil {
		_u.SetDateCreation(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DecisionUpdateOne) SetUpdatedAt(v time.Time) *DecisionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DecisionMutation object of the builder.
func (_u *DecisionUpdateOne) Mutation() *DecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionUpdate builder.
func (_u *DecisionUpdateOne) Where(ps ...predicate.Decision) *DecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionUpdateOne) Select(field string, fields ...string) *DecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Decision entity.
func (_u *DecisionUpdateOne) Save(ctx context.Context) (*Decision, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionUpdateOne) SaveX(ctx context.Context) *Decision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DecisionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := decision.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionUpdateOne) check() error {
	if v, ok := _u.mutation.SourceName(); ok {
		if err := decision.SourceNameValidator(v); err != nil {
			return &ValidationError{Name: "source_name", err: fmt.Errorf(`ent: validator failed for field "Decision.source_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JurisdictionID(); ok {
		if err := decision.JurisdictionIDValidator(v); err != nil {
			return &ValidationError{Name: "jurisdiction_id", err: fmt.Errorf(`ent: validator failed for field "Decision.jurisdiction_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseNumber(); ok {
		if err := decision.CaseNumberValidator(v); err != nil {
			return &ValidationError{Name: "case_number", err: fmt.Errorf(`ent: validator failed for field "Decision.case_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LabelStatus(); ok {
		if err := decision.LabelStatusValidator(v); err != nil {
			return &ValidationError{Name: "label_status", err: fmt.Errorf(`ent: validator failed for field "Decision.label_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PublishStatus(); ok {
		if err := decision.PublishStatusValidator(v); err != nil {
			return &ValidationError{Name: "publish_status", err: fmt.Errorf(`ent: validator failed for field "Decision.publish_status": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionUpdateOne) sqlSave(ctx context.Context) (_node *Decision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decision.Table, decision.Columns, sqlgraph.NewFieldSpec(decision.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Decision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decision.FieldID)
		for _, f := range fields {
			if !decision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decision.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(decision.FieldSourceID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSourceID(); ok {
		_spec.AddField(decision.FieldSourceID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(decision.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(decision.FieldOriginalText, field.TypeString, value)
	}
	if value, ok := _u.mutation.JurisdictionID(); ok {
		_spec.SetField(decision.FieldJurisdictionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JurisdictionCode(); ok {
		_spec.SetField(decision.FieldJurisdictionCode, field.TypeString, value)
	}
	if _u.mutation.JurisdictionCodeCleared() {
		_spec.ClearField(decision.FieldJurisdictionCode, field.TypeString)
	}
	if value, ok := _u.mutation.JurisdictionName(); ok {
		_spec.SetField(decision.FieldJurisdictionName, field.TypeString, value)
	}
	if _u.mutation.JurisdictionNameCleared() {
		_spec.ClearField(decision.FieldJurisdictionName, field.TypeString)
	}
	if value, ok := _u.mutation.ChamberID(); ok {
		_spec.SetField(decision.FieldChamberID, field.TypeString, value)
	}
	if _u.mutation.ChamberIDCleared() {
		_spec.ClearField(decision.FieldChamberID, field.TypeString)
	}
	if value, ok := _u.mutation.ChamberName(); ok {
		_spec.SetField(decision.FieldChamberName, field.TypeString, value)
	}
	if _u.mutation.ChamberNameCleared() {
		_spec.ClearField(decision.FieldChamberName, field.TypeString)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(decision.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(decision.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(decision.FieldCaseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegisterNumber(); ok {
		_spec.SetField(decision.FieldRegisterNumber, field.TypeString, value)
	}
	if _u.mutation.RegisterNumberCleared() {
		_spec.ClearField(decision.FieldRegisterNumber, field.TypeString)
	}
	if value, ok := _u.mutation.MatterCode(); ok {
		_spec.SetField(decision.FieldMatterCode, field.TypeString, value)
	}
	if _u.mutation.MatterCodeCleared() {
		_spec.ClearField(decision.FieldMatterCode, field.TypeString)
	}
	if value, ok := _u.mutation.MatterLabel(); ok {
		_spec.SetField(decision.FieldMatterLabel, field.TypeString, value)
	}
	if _u.mutation.MatterLabelCleared() {
		_spec.ClearField(decision.FieldMatterLabel, field.TypeString)
	}
	if value, ok := _u.mutation.ProcedureCode(); ok {
		_spec.SetField(decision.FieldProcedureCode, field.TypeString, value)
	}
	if _u.mutation.ProcedureCodeCleared() {
		_spec.ClearField(decision.FieldProcedureCode, field.TypeString)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(decision.FieldSolution, field.TypeString, value)
	}
	if _u.mutation.SolutionCleared() {
		_spec.ClearField(decision.FieldSolution, field.TypeString)
	}
	if value, ok := _u.mutation.Public(); ok {
		_spec.SetField(decision.FieldPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DebatPublic(); ok {
		_spec.SetField(decision.FieldDebatPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Selection(); ok {
		_spec.SetField(decision.FieldSelection, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Parties(); ok {
		_spec.SetField(decision.FieldParties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decision.FieldParties, value)
		})
	}
	if _u.mutation.PartiesCleared() {
		_spec.ClearField(decision.FieldParties, field.TypeJSON)
	}
	if value, ok := _u.mutation.Composition(); ok {
		_spec.SetField(decision.FieldComposition, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedComposition(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decision.FieldComposition, value)
		})
	}
	if _u.mutation.CompositionCleared() {
		_spec.ClearField(decision.FieldComposition, field.TypeJSON)
	}
	if value, ok := _u.mutation.OccultationAdditionalTerms(); ok {
		_spec.SetField(decision.FieldOccultationAdditionalTerms, field.TypeString, value)
	}
	if _u.mutation.OccultationAdditionalTermsCleared() {
		_spec.ClearField(decision.FieldOccultationAdditionalTerms, field.TypeString)
	}
	if value, ok := _u.mutation.OccultationCategories(); ok {
		_spec.SetField(decision.FieldOccultationCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOccultationCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decision.FieldOccultationCategories, value)
		})
	}
	if _u.mutation.OccultationCategoriesCleared() {
		_spec.ClearField(decision.FieldOccultationCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.OccultationMotivation(); ok {
		_spec.SetField(decision.FieldOccultationMotivation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LabelStatus(); ok {
		_spec.SetField(decision.FieldLabelStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishStatus(); ok {
		_spec.SetField(decision.FieldPublishStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateDecision(); ok {
		_spec.SetField(decision.FieldDateDecision, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DateCreation(); ok {
		_spec.SetField(decision.FieldDateCreation, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(decision.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Decision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
