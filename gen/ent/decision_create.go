// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aferrand/decisions-collector/gen/ent/decision"
	"github.com/google/uuid"
)

// DecisionCreate is the builder for creating a Decision entity.
type DecisionCreate struct {
	config
	mutation *DecisionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceID sets the "source_id" field.
func (_c *DecisionCreate) SetSourceID(v int64) *DecisionCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *DecisionCreate) SetSourceName(v string) *DecisionCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetOriginalText sets the "original_text" field.
func (_c *DecisionCreate) SetOriginalText(v string) *DecisionCreate {
	_c.mutation.SetOriginalText(v)
	return _c
}

// SetJurisdictionID sets the "jurisdiction_id" field.
func (_c *DecisionCreate) SetJurisdictionID(v string) *DecisionCreate {
	_c.mutation.SetJurisdictionID(v)
	return _c
}

// SetJurisdictionCode sets the "jurisdiction_code" field.
func (_c *DecisionCreate) SetJurisdictionCode(v string) *DecisionCreate {
	_c.mutation.SetJurisdictionCode(v)
	return _c
}

// SetNillableJurisdictionCode sets the "jurisdiction_code" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableJurisdictionCode(v *string) *DecisionCreate {
	if v != nil {
		_c.SetJurisdictionCode(*v)
	}
	return _c
}

// SetJurisdictionName sets the "jurisdiction_name" field.
func (_c *DecisionCreate) SetJurisdictionName(v string) *DecisionCreate {
	_c.mutation.SetJurisdictionName(v)
	return _c
}

// SetNillableJurisdictionName sets the "jurisdiction_name" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableJurisdictionName(v *string) *DecisionCreate {
	if v != nil {
		_c.SetJurisdictionName(*v)
	}
	return _c
}

// SetChamberID sets the "chamber_id" field.
func (_c *DecisionCreate) SetChamberID(v string) *DecisionCreate {
	_c.mutation.SetChamberID(v)
	return _c
}

// SetNillableChamberID sets the "chamber_id" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableChamberID(v *string) *DecisionCreate {
	if v != nil {
		_c.SetChamberID(*v)
	}
	return _c
}

// SetChamberName sets the "chamber_name" field.
func (_c *DecisionCreate) SetChamberName(v string) *DecisionCreate {
	_c.mutation.SetChamberName(v)
	return _c
}

// SetNillableChamberName sets the "chamber_name" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableChamberName(v *string) *DecisionCreate {
	if v != nil {
		_c.SetChamberName(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *DecisionCreate) SetGroupID(v string) *DecisionCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableGroupID(v *string) *DecisionCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetCaseNumber sets the "case_number" field.
func (_c *DecisionCreate) SetCaseNumber(v string) *DecisionCreate {
	_c.mutation.SetCaseNumber(v)
	return _c
}

// SetRegisterNumber sets the "register_number" field.
func (_c *DecisionCreate) SetRegisterNumber(v string) *DecisionCreate {
	_c.mutation.SetRegisterNumber(v)
	return _c
}

// SetNillableRegisterNumber sets the "register_number" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableRegisterNumber(v *string) *DecisionCreate {
	if v != nil {
		_c.SetRegisterNumber(*v)
	}
	return _c
}

// SetMatterCode sets the "matter_code" field.
func (_c *DecisionCreate) SetMatterCode(v string) *DecisionCreate {
	_c.mutation.SetMatterCode(v)
	return _c
}

// SetNillableMatterCode sets the "matter_code" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableMatterCode(v *string) *DecisionCreate {
	if v != nil {
		_c.SetMatterCode(*v)
	}
	return _c
}

// SetMatterLabel sets the "matter_label" field.
func (_c *DecisionCreate) SetMatterLabel(v string) *DecisionCreate {
	_c.mutation.SetMatterLabel(v)
	return _c
}

// SetNillableMatterLabel sets the "matter_label" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableMatterLabel(v *string) *DecisionCreate {
	if v != nil {
		_c.SetMatterLabel(*v)
	}
	return _c
}

// SetProcedureCode sets the "procedure_code" field.
func (_c *DecisionCreate) SetProcedureCode(v string) *DecisionCreate {
	_c.mutation.SetProcedureCode(v)
	return _c
}

// SetNillableProcedureCode sets the "procedure_code" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableProcedureCode(v *string) *DecisionCreate {
	if v != nil {
		_c.SetProcedureCode(*v)
	}
	return _c
}

// SetSolution sets the "solution" field.
func (_c *DecisionCreate) SetSolution(v string) *DecisionCreate {
	_c.mutation.SetSolution(v)
	return _c
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableSolution(v *string) *DecisionCreate {
	if v != nil {
		_c.SetSolution(*v)
	}
	return _c
}

// SetPublic sets the "public" field.
func (_c *DecisionCreate) SetPublic(v bool) *DecisionCreate {
	_c.mutation.SetPublic(v)
	return _c
}

// SetNillablePublic sets the "public" field if the given value is not nil.
func (_c *DecisionCreate) SetNillablePublic(v *bool) *DecisionCreate {
	if v != nil {
		_c.SetPublic(*v)
	}
	return _c
}

// SetDebatPublic sets the "debat_public" field.
func (_c *DecisionCreate) SetDebatPublic(v bool) *DecisionCreate {
	_c.mutation.SetDebatPublic(v)
	return _c
}

// SetNillableDebatPublic sets the "debat_public" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableDebatPublic(v *bool) *DecisionCreate {
	if v != nil {
		_c.SetDebatPublic(*v)
	}
	return _c
}

// SetSelection sets the "selection" field.
func (_c *DecisionCreate) SetSelection(v bool) *DecisionCreate {
	_c.mutation.SetSelection(v)
	return _c
}

// SetNillableSelection sets the "selection" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableSelection(v *bool) *DecisionCreate {
	if v != nil {
		_c.SetSelection(*v)
	}
	return _c
}

// SetParties sets the "parties" field.
func (_c *DecisionCreate) SetParties(v json.RawMessage) *DecisionCreate {
	_c.mutation.SetParties(v)
	return _c
}

// SetComposition sets the "composition" field.
func (_c *DecisionCreate) SetComposition(v json.RawMessage) *DecisionCreate {
	_c.mutation.SetComposition(v)
	return _c
}

// SetOccultationAdditionalTerms sets the "occultation_additional_terms" field.
func (_c *DecisionCreate) SetOccultationAdditionalTerms(v string) *DecisionCreate {
	_c.mutation.SetOccultationAdditionalTerms(v)
	return _c
}

// SetNillableOccultationAdditionalTerms sets the "occultation_additional_terms" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableOccultationAdditionalTerms(v *string) *DecisionCreate {
	if v != nil {
		_c.SetOccultationAdditionalTerms(*v)
	}
	return _c
}

// SetOccultationCategories sets the "occultation_categories" field.
func (_c *DecisionCreate) SetOccultationCategories(v []string) *DecisionCreate {
	_c.mutation.SetOccultationCategories(v)
	return _c
}

// SetOccultationMotivation sets the "occultation_motivation" field.
func (_c *DecisionCreate) SetOccultationMotivation(v bool) *DecisionCreate {
	_c.mutation.SetOccultationMotivation(v)
	return _c
}

// SetNillableOccultationMotivation sets the "occultation_motivation" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableOccultationMotivation(v *bool) *DecisionCreate {
	if v != nil {
		_c.SetOccultationMotivation(*v)
	}
	return _c
}

// SetLabelStatus sets the "label_status" field.
func (_c *DecisionCreate) SetLabelStatus(v string) *DecisionCreate {
	_c.mutation.SetLabelStatus(v)
	return _c
}

// SetPublishStatus sets the "publish_status" field.
func (_c *DecisionCreate) SetPublishStatus(v string) *DecisionCreate {
	_c.mutation.SetPublishStatus(v)
	return _c
}

// SetDateDecision sets the "date_decision" field.
func (_c *DecisionCreate) SetDateDecision(v time.Time) *DecisionCreate {
	_c.mutation.SetDateDecision(v)
	return _c
}

// SetDateCreation sets the "date_creation" field.
func (_c *DecisionCreate) SetDateCreation(v time.Time) *DecisionCreate {
	_c.mutation.SetDateCreation(v)
	return _c
}

// SetNillableDateCreation sets the "date_creation" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableDateCreation(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetDateCreation(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DecisionCreate) SetUpdatedAt(v time.Time) *DecisionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableUpdatedAt(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DecisionCreate) SetID(v uuid.UUID) *DecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableID(v *uuid.UUID) *DecisionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DecisionMutation object of the builder.
func (_c *DecisionCreate) Mutation() *DecisionMutation {
	return _c.mutation
}

// Save creates the Decision in the database.
func (_c *DecisionCreate) Save(ctx context.Context) (*Decision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionCreate) SaveX(ctx context.Context) *Decision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionCreate) defaults() {
	if _, ok := _c.mutation.Public(); !ok {
		v := decision.DefaultPublic
		_c.mutation.SetPublic(v)
	}
	if _, ok := _c.mutation.DebatPublic(); !ok {
		v := decision.DefaultDebatPublic
		_c.mutation.SetDebatPublic(v)
	}
	if _, ok := _c.mutation.Selection(); !ok {
		v := decision.DefaultSelection
		_c.mutation.SetSelection(v)
	}
	if _, ok := _c.mutation.OccultationMotivation(); !ok {
		v := decision.DefaultOccultationMotivation
		_c.mutation.SetOccultationMotivation(v)
	}
	if _, ok := _c.mutation.DateCreation(); !ok {
		v := decision.DefaultDateCreation()
		_c.mutation.SetDateCreation(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := decision.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := decision.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "Decision.source_id"`)}
	}
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`ent: missing required field "Decision.source_name"`)}
	}
	if v, ok := _c.mutation.SourceName(); ok {
		if err := decision.SourceNameValidator(v); err != nil {
			return &ValidationError{Name: "source_name", err: fmt.Errorf(`ent: validator failed for field "Decision.source_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalText(); !ok {
		return &ValidationError{Name: "original_text", err: errors.New(`ent: missing required field "Decision.original_text"`)}
	}
	if _, ok := _c.mutation.JurisdictionID(); !ok {
		return &ValidationError{Name: "jurisdiction_id", err: errors.New(`ent: missing required field "Decision.jurisdiction_id"`)}
	}
	if v, ok := _c.mutation.JurisdictionID(); ok {
		if err := decision.JurisdictionIDValidator(v); err != nil {
			return &ValidationError{Name: "jurisdiction_id", err: fmt.Errorf(`ent: validator failed for field "Decision.jurisdiction_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CaseNumber(); !ok {
		return &ValidationError{Name: "case_number", err: errors.New(`ent: missing required field "Decision.case_number"`)}
	}
	if v, ok := _c.mutation.CaseNumber(); ok {
		if err := decision.CaseNumberValidator(v); err != nil {
			return &ValidationError{Name: "case_number", err: fmt.Errorf(`ent: validator failed for field "Decision.case_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Public(); !ok {
		return &ValidationError{Name: "public", err: errors.New(`ent: missing required field "Decision.public"`)}
	}
	if _, ok := _c.mutation.DebatPublic(); !ok {
		return &ValidationError{Name: "debat_public", err: errors.New(`ent: missing required field "Decision.debat_public"`)}
	}
	if _, ok := _c.mutation.Selection(); !ok {
		return &ValidationError{Name: "selection", err: errors.New(`ent: missing required field "Decision.selection"`)}
	}
	if _, ok := _c.mutation.OccultationMotivation(); !ok {
		return &ValidationError{Name: "occultation_motivation", err: errors.New(`ent: missing required field "Decision.occultation_motivation"`)}
	}
	if _, ok := _c.mutation.LabelStatus(); !ok {
		return &ValidationError{Name: "label_status", err: errors.New(`ent: missing required field "Decision.label_status"`)}
	}
	if v, ok := _c.mutation.LabelStatus(); ok {
		if err := decision.LabelStatusValidator(v); err != nil {
			return &ValidationError{Name: "label_status", err: fmt.Errorf(`ent: validator failed for field "Decision.label_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PublishStatus(); !ok {
		return &ValidationError{Name: "publish_status", err: errors.New(`ent: missing required field "Decision.publish_status"`)}
	}
	if v, ok := _c.mutation.PublishStatus(); ok {
		if err := decision.PublishStatusValidator(v); err != nil {
			return &ValidationError{Name: "publish_status", err: fmt.Errorf(`ent: validator failed for field "Decision.publish_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DateDecision(); !ok {
		return &ValidationError{Name: "date_decision", err: errors.New(`ent: missing required field "Decision.date_decision"`)}
	}
	if _, ok := _c.mutation.DateCreation(); !ok {
		return &ValidationError{Name: "date_creation", err: errors.New(`ent: missing required field "Decision.date_creation"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Decision.updated_at"`)}
	}
	return nil
}

func (_c *DecisionCreate) sqlSave(ctx context.Context) (*Decision, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DecisionCreate) createSpec() (*Decision, *sqlgraph.CreateSpec) {
	var (
		_node = &Decision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decision.Table, sqlgraph.NewFieldSpec(decision.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(decision.FieldSourceID, field.TypeInt64, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(decision.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.OriginalText(); ok {
		_spec.SetField(decision.FieldOriginalText, field.TypeString, value)
		_node.OriginalText = value
	}
	if value, ok := _c.mutation.JurisdictionID(); ok {
		_spec.SetField(decision.FieldJurisdictionID, field.TypeString, value)
		_node.JurisdictionID = value
	}
	if value, ok := _c.mutation.JurisdictionCode(); ok {
		_spec.SetField(decision.FieldJurisdictionCode, field.TypeString, value)
		_node.JurisdictionCode = value
	}
	if value, ok := _c.mutation.JurisdictionName(); ok {
		_spec.SetField(decision.FieldJurisdictionName, field.TypeString, value)
		_node.JurisdictionName = value
	}
	if value, ok := _c.mutation.ChamberID(); ok {
		_spec.SetField(decision.FieldChamberID, field.TypeString, value)
		_node.ChamberID = value
	}
	if value, ok := _c.mutation.ChamberName(); ok {
		_spec.SetField(decision.FieldChamberName, field.TypeString, value)
		_node.ChamberName = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(decision.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.CaseNumber(); ok {
		_spec.SetField(decision.FieldCaseNumber, field.TypeString, value)
		_node.CaseNumber = value
	}
	if value, ok := _c.mutation.RegisterNumber(); ok {
		_spec.SetField(decision.FieldRegisterNumber, field.TypeString, value)
		_node.RegisterNumber = value
	}
	if value, ok := _c.mutation.MatterCode(); ok {
		_spec.SetField(decision.FieldMatterCode, field.TypeString, value)
		_node.MatterCode = value
	}
	if value, ok := _c.mutation.MatterLabel(); ok {
		_spec.SetField(decision.FieldMatterLabel, field.TypeString, value)
		_node.MatterLabel = value
	}
	if value, ok := _c.mutation.ProcedureCode(); ok {
		_spec.SetField(decision.FieldProcedureCode, field.TypeString, value)
		_node.ProcedureCode = value
	}
	if value, ok := _c.mutation.Solution(); ok {
		_spec.SetField(decision.FieldSolution, field.TypeString, value)
		_node.Solution = value
	}
	if value, ok := _c.mutation.Public(); ok {
		_spec.SetField(decision.FieldPublic, field.TypeBool, value)
		_node.Public = value
	}
	if value, ok := _c.mutation.DebatPublic(); ok {
		_spec.SetField(decision.FieldDebatPublic, field.TypeBool, value)
		_node.DebatPublic = value
	}
	if value, ok := _c.mutation.Selection(); ok {
		_spec.SetField(decision.FieldSelection, field.TypeBool, value)
		_node.Selection = value
	}
	if value, ok := _c.mutation.Parties(); ok {
		_spec.SetField(decision.FieldParties, field.TypeJSON, value)
		_node.Parties = value
	}
	if value, ok := _c.mutation.Composition(); ok {
		_spec.SetField(decision.FieldComposition, field.TypeJSON, value)
		_node.Composition = value
	}
	if value, ok := _c.mutation.OccultationAdditionalTerms(); ok {
		_spec.SetField(decision.FieldOccultationAdditionalTerms, field.TypeString, value)
		_node.OccultationAdditionalTerms = value
	}
	if value, ok := _c.mutation.OccultationCategories(); ok {
		_spec.SetField(decision.FieldOccultationCategories, field.TypeJSON, value)
		_node.OccultationCategories = value
	}
	if value, ok := _c.mutation.OccultationMotivation(); ok {
		_spec.SetField(decision.FieldOccultationMotivation, field.TypeBool, value)
		_node.OccultationMotivation = value
	}
	if value, ok := _c.mutation.LabelStatus(); ok {
		_spec.SetField(decision.FieldLabelStatus, field.TypeString, value)
		_node.LabelStatus = value
	}
	if value, ok := _c.mutation.PublishStatus(); ok {
		_spec.SetField(decision.FieldPublishStatus, field.TypeString, value)
		_node.PublishStatus = value
	}
	if value, ok := _c.mutation.DateDecision(); ok {
		_spec.SetField(decision.FieldDateDecision, field.TypeTime, value)
		_node.DateDecision = value
	}
	if value, ok := _c.mutation.DateCreation(); ok {
		_spec.SetField(decision.FieldDateCreation, field.TypeTime, value)
		_node.DateCreation = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(decision.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Decision.Create().
//		SetSourceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DecisionUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DecisionCreate) OnConflict(opts ...sql.ConflictOption) *DecisionUpsertOne {
	_c.conflict = opts
	return &DecisionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Decision.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DecisionCreate) OnConflictColumns(columns ...string) *DecisionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DecisionUpsertOne{
		create: _c,
	}
}

type (
	// DecisionUpsertOne is the builder for "upsert"-ing
	//  one Decision node.
	DecisionUpsertOne struct {
		create *DecisionCreate
	}

	// DecisionUpsert is the "OnConflict" setter.
	DecisionUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceID sets the "source_id" field.
func (u *DecisionUpsert) SetSourceID(v int64) *DecisionUpsert {
	u.Set(decision.FieldSourceID, v)
	return u
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateSourceID() *DecisionUpsert {
	u.SetExcluded(decision.FieldSourceID)
	return u
}

// AddSourceID adds v to the "source_id" field.
func (u *DecisionUpsert) AddSourceID(v int64) *DecisionUpsert {
	u.Add(decision.FieldSourceID, v)
	return u
}

// SetSourceName sets the "source_name" field.
func (u *DecisionUpsert) SetSourceName(v string) *DecisionUpsert {
	u.Set(decision.FieldSourceName, v)
	return u
}

// UpdateSourceName sets the "source_name" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateSourceName() *DecisionUpsert {
	u.SetExcluded(decision.FieldSourceName)
	return u
}

// SetOriginalText sets the "original_text" field.
func (u *DecisionUpsert) SetOriginalText(v string) *DecisionUpsert {
	u.Set(decision.FieldOriginalText, v)
	return u
}

// UpdateOriginalText sets the "original_text" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateOriginalText() *DecisionUpsert {
	u.SetExcluded(decision.FieldOriginalText)
	return u
}

// SetJurisdictionID sets the "jurisdiction_id" field.
func (u *DecisionUpsert) SetJurisdictionID(v string) *DecisionUpsert {
	u.Set(decision.FieldJurisdictionID, v)
	return u
}

// UpdateJurisdictionID sets the "jurisdiction_id" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateJurisdictionID() *DecisionUpsert {
	u.SetExcluded(decision.FieldJurisdictionID)
	return u
}

// SetJurisdictionCode sets the "jurisdiction_code" field.
func (u *DecisionUpsert) SetJurisdictionCode(v string) *DecisionUpsert {
	u.Set(decision.FieldJurisdictionCode, v)
	return u
}

// UpdateJurisdictionCode sets the "jurisdiction_code" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateJurisdictionCode() *DecisionUpsert {
	u.SetExcluded(decision.FieldJurisdictionCode)
	return u
}

// ClearJurisdictionCode clears the value of the "jurisdiction_code" field.
func (u *DecisionUpsert) ClearJurisdictionCode() *DecisionUpsert {
	u.SetNull(decision.FieldJurisdictionCode)
	return u
}

// SetJurisdictionName sets the "jurisdiction_name" field.
func (u *DecisionUpsert) SetJurisdictionName(v string) *DecisionUpsert {
	u.Set(decision.FieldJurisdictionName, v)
	return u
}

// UpdateJurisdictionName sets the "jurisdiction_name" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateJurisdictionName() *DecisionUpsert {
	u.SetExcluded(decision.FieldJurisdictionName)
	return u
}

// ClearJurisdictionName clears the value of the "jurisdiction_name" field.
func (u *DecisionUpsert) ClearJurisdictionName() *DecisionUpsert {
	u.SetNull(decision.FieldJurisdictionName)
	return u
}

// SetChamberID sets the "chamber_id" field.
func (u *DecisionUpsert) SetChamberID(v string) *DecisionUpsert {
	u.Set(decision.FieldChamberID, v)
	return u
}

// UpdateChamberID sets the "chamber_id" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateChamberID() *DecisionUpsert {
	u.SetExcluded(decision.FieldChamberID)
	return u
}

// ClearChamberID clears the value of the "chamber_id" field.
func (u *DecisionUpsert) ClearChamberID() *DecisionUpsert {
	u.SetNull(decision.FieldChamberID)
	return u
}

// SetChamberName sets the "chamber_name" field.
func (u *DecisionUpsert) SetChamberName(v string) *DecisionUpsert {
	u.Set(decision.FieldChamberName, v)
	return u
}

// UpdateChamberName sets the "chamber_name" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateChamberName() *DecisionUpsert {
	u.SetExcluded(decision.FieldChamberName)
	return u
}

// ClearChamberName clears the value of the "chamber_name" field.
func (u *DecisionUpsert) ClearChamberName() *DecisionUpsert {
	u.SetNull(decision.FieldChamberName)
	return u
}

// SetGroupID sets the "group_id" field.
func (u *DecisionUpsert) SetGroupID(v string) *DecisionUpsert {
	u.Set(decision.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateGroupID() *DecisionUpsert {
	u.SetExcluded(decision.FieldGroupID)
	return u
}

// ClearGroupID clears the value of the "group_id" field.
func (u *DecisionUpsert) ClearGroupID() *DecisionUpsert {
	u.SetNull(decision.FieldGroupID)
	return u
}

// SetCaseNumber sets the "case_number" field.
func (u *DecisionUpsert) SetCaseNumber(v string) *DecisionUpsert {
	u.Set(decision.FieldCaseNumber, v)
	return u
}

// UpdateCaseNumber sets the "case_number" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateCaseNumber() *DecisionUpsert {
	u.SetExcluded(decision.FieldCaseNumber)
	return u
}

// SetRegisterNumber sets the "register_number" field.
func (u *DecisionUpsert) SetRegisterNumber(v string) *DecisionUpsert {
	u.Set(decision.FieldRegisterNumber, v)
	return u
}

// UpdateRegisterNumber sets the "register_number" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateRegisterNumber() *DecisionUpsert {
	u.SetExcluded(decision.FieldRegisterNumber)
	return u
}

// ClearRegisterNumber clears the value of the "register_number" field.
func (u *DecisionUpsert) ClearRegisterNumber() *DecisionUpsert {
	u.SetNull(decision.FieldRegisterNumber)
	return u
}

// SetMatterCode sets the "matter_code" field.
func (u *DecisionUpsert) SetMatterCode(v string) *DecisionUpsert {
	u.Set(decision.FieldMatterCode, v)
	return u
}

// UpdateMatterCode sets the "matter_code" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateMatterCode() *DecisionUpsert {
	u.SetExcluded(decision.FieldMatterCode)
	return u
}

// ClearMatterCode clears the value of the "matter_code" field.
func (u *DecisionUpsert) ClearMatterCode() *DecisionUpsert {
	u.SetNull(decision.FieldMatterCode)
	return u
}

// SetMatterLabel sets the "matter_label" field.
func (u *DecisionUpsert) SetMatterLabel(v string) *DecisionUpsert {
	u.Set(decision.FieldMatterLabel, v)
	return u
}

// UpdateMatterLabel sets the "matter_label" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateMatterLabel() *DecisionUpsert {
	u.SetExcluded(decision.FieldMatterLabel)
	return u
}

// ClearMatterLabel clears the value of the "matter_label" field.
func (u *DecisionUpsert) ClearMatterLabel() *DecisionUpsert {
	u.SetNull(decision.FieldMatterLabel)
	return u
}

// SetProcedureCode sets the "procedure_code" field.
func (u *DecisionUpsert) SetProcedureCode(v string) *DecisionUpsert {
	u.Set(decision.FieldProcedureCode, v)
	return u
}

// UpdateProcedureCode sets the "procedure_code" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateProcedureCode() *DecisionUpsert {
	u.SetExcluded(decision.FieldProcedureCode)
	return u
}

// ClearProcedureCode clears the value of the "procedure_code" field.
func (u *DecisionUpsert) ClearProcedureCode() *DecisionUpsert {
	u.SetNull(decision.FieldProcedureCode)
	return u
}

// SetSolution sets the "solution" field.
func (u *DecisionUpsert) SetSolution(v string) *DecisionUpsert {
	u.Set(decision.FieldSolution, v)
	return u
}

// UpdateSolution sets the "solution" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateSolution() *DecisionUpsert {
	u.SetExcluded(decision.FieldSolution)
	return u
}

// ClearSolution clears the value of the "solution" field.
func (u *DecisionUpsert) ClearSolution() *DecisionUpsert {
	u.SetNull(decision.FieldSolution)
	return u
}

// SetPublic sets the "public" field.
func (u *DecisionUpsert) SetPublic(v bool) *DecisionUpsert {
	u.Set(decision.FieldPublic, v)
	return u
}

// UpdatePublic sets the "public" field to the value that was provided on create.
func (u *DecisionUpsert) UpdatePublic() *DecisionUpsert {
	u.SetExcluded(decision.FieldPublic)
	return u
}

// SetDebatPublic sets the "debat_public" field.
func (u *DecisionUpsert) SetDebatPublic(v bool) *DecisionUpsert {
	u.Set(decision.FieldDebatPublic, v)
	return u
}

// UpdateDebatPublic sets the "debat_public" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateDebatPublic() *DecisionUpsert {
	u.SetExcluded(decision.FieldDebatPublic)
	return u
}

// SetSelection sets the "selection" field.
func (u *DecisionUpsert) SetSelection(v bool) *DecisionUpsert {
	u.Set(decision.FieldSelection, v)
	return u
}

// UpdateSelection sets the "selection" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateSelection() *DecisionUpsert {
	u.SetExcluded(decision.FieldSelection)
	return u
}

// SetParties sets the "parties" field.
func (u *DecisionUpsert) SetParties(v json.RawMessage) *DecisionUpsert {
	u.Set(decision.FieldParties, v)
	return u
}

// UpdateParties sets the "parties" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateParties() *DecisionUpsert {
	u.SetExcluded(decision.FieldParties)
	return u
}

// ClearParties clears the value of the "parties" field.
func (u *DecisionUpsert) ClearParties() *DecisionUpsert {
	u.SetNull(decision.FieldParties)
	return u
}

// SetComposition sets the "composition" field.
func (u *DecisionUpsert) SetComposition(v json.RawMessage) *DecisionUpsert {
	u.Set(decision.FieldComposition, v)
	return u
}

// UpdateComposition sets the "composition" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateComposition() *DecisionUpsert {
	u.SetExcluded(decision.FieldComposition)
	return u
}

// ClearComposition clears the value of the "composition" field.
func (u *DecisionUpsert) ClearComposition() *DecisionUpsert {
	u.SetNull(decision.FieldComposition)
	return u
}

// SetOccultationAdditionalTerms sets the "occultation_additional_terms" field.
func (u *DecisionUpsert) SetOccultationAdditionalTerms(v string) *DecisionUpsert {
	u.Set(decision.FieldOccultationAdditionalTerms, v)
	return u
}

// UpdateOccultationAdditionalTerms sets the "occultation_additional_terms" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateOccultationAdditionalTerms() *DecisionUpsert {
	u.SetExcluded(decision.FieldOccultationAdditionalTerms)
	return u
}

// ClearOccultationAdditionalTerms clears the value of the "occultation_additional_terms" field.
func (u *DecisionUpsert) ClearOccultationAdditionalTerms() *DecisionUpsert {
	u.SetNull(decision.FieldOccultationAdditionalTerms)
	return u
}

// SetOccultationCategories sets the "occultation_categories" field.
func (u *DecisionUpsert) SetOccultationCategories(v []string) *DecisionUpsert {
	u.Set(decision.FieldOccultationCategories, v)
	return u
}

// UpdateOccultationCategories sets the "occultation_categories" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateOccultationCategories() *DecisionUpsert {
	u.SetExcluded(decision.FieldOccultationCategories)
	return u
}

// ClearOccultationCategories clears the value of the "occultation_categories" field.
func (u *DecisionUpsert) ClearOccultationCategories() *DecisionUpsert {
	u.SetNull(decision.FieldOccultationCategories)
	return u
}

// SetOccultationMotivation sets the "occultation_motivation" field.
func (u *DecisionUpsert) SetOccultationMotivation(v bool) *DecisionUpsert {
	u.Set(decision.FieldOccultationMotivation, v)
	return u
}

// UpdateOccultationMotivation sets the "occultation_motivation" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateOccultationMotivation() *DecisionUpsert {
	u.SetExcluded(decision.FieldOccultationMotivation)
	return u
}

// SetLabelStatus sets the "label_status" field.
func (u *DecisionUpsert) SetLabelStatus(v string) *DecisionUpsert {
	u.Set(decision.FieldLabelStatus, v)
	return u
}

// UpdateLabelStatus sets the "label_status" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateLabelStatus() *DecisionUpsert {
	u.SetExcluded(decision.FieldLabelStatus)
	return u
}

// SetPublishStatus sets the "publish_status" field.
func (u *DecisionUpsert) SetPublishStatus(v string) *DecisionUpsert {
	u.Set(decision.FieldPublishStatus, v)
	return u
}

// UpdatePublishStatus sets the "publish_status" field to the value that was provided on create.
func (u *DecisionUpsert) UpdatePublishStatus() *DecisionUpsert {
	u.SetExcluded(decision.FieldPublishStatus)
	return u
}

// SetDateDecision sets the "date_decision" field.
func (u *DecisionUpsert) SetDateDecision(v time.Time) *DecisionUpsert {
	u.Set(decision.FieldDateDecision, v)
	return u
}

// UpdateDateDecision sets the "date_decision" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateDateDecision() *DecisionUpsert {
	u.SetExcluded(decision.FieldDateDecision)
	return u
}

// SetDateCreation sets the "date_creation" field.
func (u *DecisionUpsert) SetDateCreation(v time.Time) *DecisionUpsert {
	u.Set(decision.FieldDateCreation, v)
	return u
}

// UpdateDateCreation sets the "date_creation" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateDateCreation() *DecisionUpsert {
	u.SetExcluded(decision.FieldDateCreation)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DecisionUpsert) SetUpdatedAt(v time.Time) *DecisionUpsert {
	u.Set(decision.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DecisionUpsert) UpdateUpdatedAt() *DecisionUpsert {
	u.SetExcluded(decision.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Decision.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(decision.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DecisionUpsertOne) UpdateNewValues() *DecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(decision.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Decision.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DecisionUpsertOne) Ignore() *DecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DecisionUpsertOne) DoNothing() *DecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DecisionCreate.OnConflict
// documentation for more info.
func (u *DecisionUpsertOne) Update(set func(*DecisionUpsert)) *DecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DecisionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceID sets the "source_id" field.
func (u *DecisionUpsertOne) SetSourceID(v int64) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetSourceID(v)
	})
}

// AddSourceID adds v to the "source_id" field.
func (u *DecisionUpsertOne) AddSourceID(v int64) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.AddSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateSourceID() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateSourceID()
	})
}

// SetSourceName sets the "source_name" field.
func (u *DecisionUpsertOne) SetSourceName(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetSourceName(v)
	})
}

// UpdateSourceName sets the "source_name" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateSourceName() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateSourceName()
	})
}

// SetOriginalText sets the "original_text" field.
func (u *DecisionUpsertOne) SetOriginalText(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetOriginalText(v)
	})
}

// UpdateOriginalText sets the "original_text" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateOriginalText() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateOriginalText()
	})
}

// SetJurisdictionID sets the "jurisdiction_id" field.
func (u *DecisionUpsertOne) SetJurisdictionID(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetJurisdictionID(v)
	})
}

// UpdateJurisdictionID sets the "jurisdiction_id" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateJurisdictionID() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateJurisdictionID()
	})
}

// SetJurisdictionCode sets the "jurisdiction_code" field.
func (u *DecisionUpsertOne) SetJurisdictionCode(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetJurisdictionCode(v)
	})
}

// UpdateJurisdictionCode sets the "jurisdiction_code" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateJurisdictionCode() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateJurisdictionCode()
	})
}

// ClearJurisdictionCode clears the value of the "jurisdiction_code" field.
func (u *DecisionUpsertOne) ClearJurisdictionCode() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearJurisdictionCode()
	})
}

// SetJurisdictionName sets the "jurisdiction_name" field.
func (u *DecisionUpsertOne) SetJurisdictionName(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetJurisdictionName(v)
	})
}

// UpdateJurisdictionName sets the "jurisdiction_name" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateJurisdictionName() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateJurisdictionName()
	})
}

// ClearJurisdictionName clears the value of the "jurisdiction_name" field.
func (u *DecisionUpsertOne) ClearJurisdictionName() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearJurisdictionName()
	})
}

// SetChamberID sets the "chamber_id" field.
func (u *DecisionUpsertOne) SetChamberID(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetChamberID(v)
	})
}

// UpdateChamberID sets the "chamber_id" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateChamberID() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateChamberID()
	})
}

// ClearChamberID clears the value of the "chamber_id" field.
func (u *DecisionUpsertOne) ClearChamberID() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearChamberID()
	})
}

// SetChamberName sets the "chamber_name" field.
func (u *DecisionUpsertOne) SetChamberName(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetChamberName(v)
	})
}

// UpdateChamberName sets the "chamber_name" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateChamberName() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateChamberName()
	})
}

// ClearChamberName clears the value of the "chamber_name" field.
func (u *DecisionUpsertOne) ClearChamberName() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearChamberName()
	})
}

// SetGroupID sets the "group_id" field.
func (u *DecisionUpsertOne) SetGroupID(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateGroupID() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *DecisionUpsertOne) ClearGroupID() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearGroupID()
	})
}

// SetCaseNumber sets the "case_number" field.
func (u *DecisionUpsertOne) SetCaseNumber(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetCaseNumber(v)
	})
}

// UpdateCaseNumber sets the "case_number" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateCaseNumber() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateCaseNumber()
	})
}

// SetRegisterNumber sets the "register_number" field.
func (u *DecisionUpsertOne) SetRegisterNumber(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetRegisterNumber(v)
	})
}

// UpdateRegisterNumber sets the "register_number" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateRegisterNumber() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateRegisterNumber()
	})
}

// ClearRegisterNumber clears the value of the "register_number" field.
func (u *DecisionUpsertOne) ClearRegisterNumber() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearRegisterNumber()
	})
}

// SetMatterCode sets the "matter_code" field.
func (u *DecisionUpsertOne) SetMatterCode(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetMatterCode(v)
	})
}

// UpdateMatterCode sets the "matter_code" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateMatterCode() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateMatterCode()
	})
}

// ClearMatterCode clears the value of the "matter_code" field.
func (u *DecisionUpsertOne) ClearMatterCode() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearMatterCode()
	})
}

// SetMatterLabel sets the "matter_label" field.
func (u *DecisionUpsertOne) SetMatterLabel(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetMatterLabel(v)
	})
}

// UpdateMatterLabel sets the "matter_label" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateMatterLabel() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateMatterLabel()
	})
}

// ClearMatterLabel clears the value of the "matter_label" field.
func (u *DecisionUpsertOne) ClearMatterLabel() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearMatterLabel()
	})
}

// SetProcedureCode sets the "procedure_code" field.
func (u *DecisionUpsertOne) SetProcedureCode(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetProcedureCode(v)
	})
}

// UpdateProcedureCode sets the "procedure_code" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateProcedureCode() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateProcedureCode()
	})
}

// ClearProcedureCode clears the value of the "procedure_code" field.
func (u *DecisionUpsertOne) ClearProcedureCode() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearProcedureCode()
	})
}

// SetSolution sets the "solution" field.
func (u *DecisionUpsertOne) SetSolution(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetSolution(v)
	})
}

// UpdateSolution sets the "solution" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateSolution() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateSolution()
	})
}

// ClearSolution clears the value of the "solution" field.
func (u *DecisionUpsertOne) ClearSolution() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearSolution()
	})
}

// SetPublic sets the "public" field.
func (u *DecisionUpsertOne) SetPublic(v bool) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetPublic(v)
	})
}

// UpdatePublic sets the "public" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdatePublic() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdatePublic()
	})
}

// SetDebatPublic sets the "debat_public" field.
func (u *DecisionUpsertOne) SetDebatPublic(v bool) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetDebatPublic(v)
	})
}

// UpdateDebatPublic sets the "debat_public" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateDebatPublic() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateDebatPublic()
	})
}

// SetSelection sets the "selection" field.
func (u *DecisionUpsertOne) SetSelection(v bool) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetSelection(v)
	})
}

// UpdateSelection sets the "selection" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateSelection() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateSelection()
	})
}

// SetParties sets the "parties" field.
func (u *DecisionUpsertOne) SetParties(v json.RawMessage) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetParties(v)
	})
}

// UpdateParties sets the "parties" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateParties() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateParties()
	})
}

// ClearParties clears the value of the "parties" field.
func (u *DecisionUpsertOne) ClearParties() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearParties()
	})
}

// SetComposition sets the "composition" field.
func (u *DecisionUpsertOne) SetComposition(v json.RawMessage) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetComposition(v)
	})
}

// UpdateComposition sets the "composition" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateComposition() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateComposition()
	})
}

// ClearComposition clears the value of the "composition" field.
func (u *DecisionUpsertOne) ClearComposition() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearComposition()
	})
}

// SetOccultationAdditionalTerms sets the "occultation_additional_terms" field.
func (u *DecisionUpsertOne) SetOccultationAdditionalTerms(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetOccultationAdditionalTerms(v)
	})
}

// UpdateOccultationAdditionalTerms sets the "occultation_additional_terms" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateOccultationAdditionalTerms() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateOccultationAdditionalTerms()
	})
}

// ClearOccultationAdditionalTerms clears the value of the "occultation_additional_terms" field.
func (u *DecisionUpsertOne) ClearOccultationAdditionalTerms() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearOccultationAdditionalTerms()
	})
}

// SetOccultationCategories sets the "occultation_categories" field.
func (u *DecisionUpsertOne) SetOccultationCategories(v []string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetOccultationCategories(v)
	})
}

// UpdateOccultationCategories sets the "occultation_categories" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateOccultationCategories() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateOccultationCategories()
	})
}

// ClearOccultationCategories clears the value of the "occultation_categories" field.
func (u *DecisionUpsertOne) ClearOccultationCategories() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearOccultationCategories()
	})
}

// SetOccultationMotivation sets the "occultation_motivation" field.
func (u *DecisionUpsertOne) SetOccultationMotivation(v bool) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetOccultationMotivation(v)
	})
}

// UpdateOccultationMotivation sets the "occultation_motivation" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateOccultationMotivation() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateOccultationMotivation()
	})
}

// SetLabelStatus sets the "label_status" field.
func (u *DecisionUpsertOne) SetLabelStatus(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetLabelStatus(v)
	})
}

// UpdateLabelStatus sets the "label_status" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateLabelStatus() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateLabelStatus()
	})
}

// SetPublishStatus sets the "publish_status" field.
func (u *DecisionUpsertOne) SetPublishStatus(v string) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetPublishStatus(v)
	})
}

// UpdatePublishStatus sets the "publish_status" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdatePublishStatus() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdatePublishStatus()
	})
}

// SetDateDecision sets the "date_decision" field.
func (u *DecisionUpsertOne) SetDateDecision(v time.Time) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetDateDecision(v)
	})
}

// UpdateDateDecision sets the "date_decision" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateDateDecision() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateDateDecision()
	})
}

// SetDateCreation sets the "date_creation" field.
func (u *DecisionUpsertOne) SetDateCreation(v time.Time) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetDateCreation(v)
	})
}

// UpdateDateCreation sets the "date_creation" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateDateCreation() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateDateCreation()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DecisionUpsertOne) SetUpdatedAt(v time.Time) *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DecisionUpsertOne) UpdateUpdatedAt() *DecisionUpsertOne {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DecisionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DecisionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DecisionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DecisionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DecisionUpsertOne.ID is not supported by MySQL driver. Use DecisionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DecisionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DecisionCreateBulk is the builder for creating many Decision entities in bulk.
type DecisionCreateBulk struct {
	config
	err      error
	builders []*DecisionCreate
	conflict []sql.ConflictOption
}

// Save creates the Decision entities in the database.
func (_c *DecisionCreateBulk) Save(ctx context.Context) ([]*Decision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Decision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DecisionCreateBulk) SaveX(ctx context.Context) []*Decision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Decision.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DecisionUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DecisionCreateBulk) OnConflict(opts ...sql.ConflictOption) *DecisionUpsertBulk {
	_c.conflict = opts
	return &DecisionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Decision.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DecisionCreateBulk) OnConflictColumns(columns ...string) *DecisionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DecisionUpsertBulk{
		create: _c,
	}
}

// DecisionUpsertBulk is the builder for "upsert"-ing
// a bulk of Decision nodes.
type DecisionUpsertBulk struct {
	create *DecisionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Decision.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(decision.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DecisionUpsertBulk) UpdateNewValues() *DecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(decision.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Decision.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DecisionUpsertBulk) Ignore() *DecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DecisionUpsertBulk) DoNothing() *DecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DecisionCreateBulk.OnConflict
// documentation for more info.
func (u *DecisionUpsertBulk) Update(set func(*DecisionUpsert)) *DecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DecisionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceID sets the "source_id" field.
func (u *DecisionUpsertBulk) SetSourceID(v int64) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetSourceID(v)
	})
}

// AddSourceID adds v to the "source_id" field.
func (u *DecisionUpsertBulk) AddSourceID(v int64) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.AddSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateSourceID() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateSourceID()
	})
}

// SetSourceName sets the "source_name" field.
func (u *DecisionUpsertBulk) SetSourceName(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetSourceName(v)
	})
}

// UpdateSourceName sets the "source_name" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateSourceName() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateSourceName()
	})
}

// SetOriginalText sets the "original_text" field.
func (u *DecisionUpsertBulk) SetOriginalText(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetOriginalText(v)
	})
}

// UpdateOriginalText sets the "original_text" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateOriginalText() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateOriginalText()
	})
}

// SetJurisdictionID sets the "jurisdiction_id" field.
func (u *DecisionUpsertBulk) SetJurisdictionID(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetJurisdictionID(v)
	})
}

// UpdateJurisdictionID sets the "jurisdiction_id" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateJurisdictionID() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateJurisdictionID()
	})
}

// SetJurisdictionCode sets the "jurisdiction_code" field.
func (u *DecisionUpsertBulk) SetJurisdictionCode(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetJurisdictionCode(v)
	})
}

// UpdateJurisdictionCode sets the "jurisdiction_code" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateJurisdictionCode() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateJurisdictionCode()
	})
}

// ClearJurisdictionCode clears the value of the "jurisdiction_code" field.
func (u *DecisionUpsertBulk) ClearJurisdictionCode() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearJurisdictionCode()
	})
}

// SetJurisdictionName sets the "jurisdiction_name" field.
func (u *DecisionUpsertBulk) SetJurisdictionName(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetJurisdictionName(v)
	})
}

// UpdateJurisdictionName sets the "jurisdiction_name" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateJurisdictionName() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateJurisdictionName()
	})
}

// ClearJurisdictionName clears the value of the "jurisdiction_name" field.
func (u *DecisionUpsertBulk) ClearJurisdictionName() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearJurisdictionName()
	})
}

// SetChamberID sets the "chamber_id" field.
func (u *DecisionUpsertBulk) SetChamberID(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetChamberID(v)
	})
}

// UpdateChamberID sets the "chamber_id" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateChamberID() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateChamberID()
	})
}

// ClearChamberID clears the value of the "chamber_id" field.
func (u *DecisionUpsertBulk) ClearChamberID() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearChamberID()
	})
}

// SetChamberName sets the "chamber_name" field.
func (u *DecisionUpsertBulk) SetChamberName(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetChamberName(v)
	})
}

// UpdateChamberName sets the "chamber_name" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateChamberName() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateChamberName()
	})
}

// ClearChamberName clears the value of the "chamber_name" field.
func (u *DecisionUpsertBulk) ClearChamberName() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearChamberName()
	})
}

// SetGroupID sets the "group_id" field.
func (u *DecisionUpsertBulk) SetGroupID(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateGroupID() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *DecisionUpsertBulk) ClearGroupID() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearGroupID()
	})
}

// SetCaseNumber sets the "case_number" field.
func (u *DecisionUpsertBulk) SetCaseNumber(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetCaseNumber(v)
	})
}

// UpdateCaseNumber sets the "case_number" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateCaseNumber() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateCaseNumber()
	})
}

// SetRegisterNumber sets the "register_number" field.
func (u *DecisionUpsertBulk) SetRegisterNumber(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetRegisterNumber(v)
	})
}

// UpdateRegisterNumber sets the "register_number" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateRegisterNumber() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateRegisterNumber()
	})
}

// ClearRegisterNumber clears the value of the "register_number" field.
func (u *DecisionUpsertBulk) ClearRegisterNumber() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearRegisterNumber()
	})
}

// SetMatterCode sets the "matter_code" field.
func (u *DecisionUpsertBulk) SetMatterCode(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetMatterCode(v)
	})
}

// UpdateMatterCode sets the "matter_code" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateMatterCode() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateMatterCode()
	})
}

// ClearMatterCode clears the value of the "matter_code" field.
func (u *DecisionUpsertBulk) ClearMatterCode() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearMatterCode()
	})
}

// SetMatterLabel sets the "matter_label" field.
func (u *DecisionUpsertBulk) SetMatterLabel(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetMatterLabel(v)
	})
}

// UpdateMatterLabel sets the "matter_label" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateMatterLabel() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateMatterLabel()
	})
}

// ClearMatterLabel clears the value of the "matter_label" field.
func (u *DecisionUpsertBulk) ClearMatterLabel() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearMatterLabel()
	})
}

// SetProcedureCode sets the "procedure_code" field.
func (u *DecisionUpsertBulk) SetProcedureCode(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetProcedureCode(v)
	})
}

// UpdateProcedureCode sets the "procedure_code" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateProcedureCode() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateProcedureCode()
	})
}

// ClearProcedureCode clears the value of the "procedure_code" field.
func (u *DecisionUpsertBulk) ClearProcedureCode() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearProcedureCode()
	})
}

// SetSolution sets the "solution" field.
func (u *DecisionUpsertBulk) SetSolution(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetSolution(v)
	})
}

// UpdateSolution sets the "solution" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateSolution() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateSolution()
	})
}

// ClearSolution clears the value of the "solution" field.
func (u *DecisionUpsertBulk) ClearSolution() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearSolution()
	})
}

// SetPublic sets the "public" field.
func (u *DecisionUpsertBulk) SetPublic(v bool) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetPublic(v)
	})
}

// UpdatePublic sets the "public" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdatePublic() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdatePublic()
	})
}

// SetDebatPublic sets the "debat_public" field.
func (u *DecisionUpsertBulk) SetDebatPublic(v bool) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetDebatPublic(v)
	})
}

// UpdateDebatPublic sets the "debat_public" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateDebatPublic() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateDebatPublic()
	})
}

// SetSelection sets the "selection" field.
func (u *DecisionUpsertBulk) SetSelection(v bool) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetSelection(v)
	})
}

// UpdateSelection sets the "selection" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateSelection() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateSelection()
	})
}

// SetParties sets the "parties" field.
func (u *DecisionUpsertBulk) SetParties(v json.RawMessage) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetParties(v)
	})
}

// UpdateParties sets the "parties" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateParties() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateParties()
	})
}

// ClearParties clears the value of the "parties" field.
func (u *DecisionUpsertBulk) ClearParties() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearParties()
	})
}

// SetComposition sets the "composition" field.
func (u *DecisionUpsertBulk) SetComposition(v json.RawMessage) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetComposition(v)
	})
}

// UpdateComposition sets the "composition" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateComposition() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateComposition()
	})
}

// ClearComposition clears the value of the "composition" field.
func (u *DecisionUpsertBulk) ClearComposition() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearComposition()
	})
}

// SetOccultationAdditionalTerms sets the "occultation_additional_terms" field.
func (u *DecisionUpsertBulk) SetOccultationAdditionalTerms(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetOccultationAdditionalTerms(v)
	})
}

// UpdateOccultationAdditionalTerms sets the "occultation_additional_terms" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateOccultationAdditionalTerms() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateOccultationAdditionalTerms()
	})
}

// ClearOccultationAdditionalTerms clears the value of the "occultation_additional_terms" field.
func (u *DecisionUpsertBulk) ClearOccultationAdditionalTerms() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearOccultationAdditionalTerms()
	})
}

// SetOccultationCategories sets the "occultation_categories" field.
func (u *DecisionUpsertBulk) SetOccultationCategories(v []string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetOccultationCategories(v)
	})
}

// UpdateOccultationCategories sets the "occultation_categories" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateOccultationCategories() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateOccultationCategories()
	})
}

// ClearOccultationCategories clears the value of the "occultation_categories" field.
func (u *DecisionUpsertBulk) ClearOccultationCategories() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.ClearOccultationCategories()
	})
}

// SetOccultationMotivation sets the "occultation_motivation" field.
func (u *DecisionUpsertBulk) SetOccultationMotivation(v bool) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetOccultationMotivation(v)
	})
}

// UpdateOccultationMotivation sets the "occultation_motivation" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateOccultationMotivation() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateOccultationMotivation()
	})
}

// SetLabelStatus sets the "label_status" field.
func (u *DecisionUpsertBulk) SetLabelStatus(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetLabelStatus(v)
	})
}

// UpdateLabelStatus sets the "label_status" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateLabelStatus() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateLabelStatus()
	})
}

// SetPublishStatus sets the "publish_status" field.
func (u *DecisionUpsertBulk) SetPublishStatus(v string) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetPublishStatus(v)
	})
}

// UpdatePublishStatus sets the "publish_status" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdatePublishStatus() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdatePublishStatus()
	})
}

// SetDateDecision sets the "date_decision" field.
func (u *DecisionUpsertBulk) SetDateDecision(v time.Time) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetDateDecision(v)
	})
}

// UpdateDateDecision sets the "date_decision" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateDateDecision() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateDateDecision()
	})
}

// SetDateCreation sets the "date_creation" field.
func (u *DecisionUpsertBulk) SetDateCreation(v time.Time) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetDateCreation(v)
	})
}

// UpdateDateCreation sets the "date_creation" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateDateCreation() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateDateCreation()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DecisionUpsertBulk) SetUpdatedAt(v time.Time) *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DecisionUpsertBulk) UpdateUpdatedAt() *DecisionUpsertBulk {
	return u.Update(func(s *DecisionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DecisionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DecisionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DecisionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DecisionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
