// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aferrand/decisions-collector/gen/ent/decision"
	"github.com/aferrand/decisions-collector/gen/ent/extractfailure"
	"github.com/aferrand/decisions-collector/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDecision       = "Decision"
	TypeExtractFailure = "ExtractFailure"
)

// DecisionMutation represents an operation that mutates the Decision nodes in the graph.
type DecisionMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	source_id                    *int64
	addsource_id                 *int64
	source_name                  *string
	original_text                *string
	jurisdiction_id              *string
	jurisdiction_code            *string
	jurisdiction_name            *string
	chamber_id                   *string
	chamber_name                 *string
	group_id                     *string
	case_number                  *string
	register_number              *string
	matter_code                  *string
	matter_label                 *string
	procedure_code               *string
	solution                     *string
	public                       *bool
	debat_public                 *bool
	selection                    *bool
	parties                      *json.RawMessage
	appendparties                json.RawMessage
	composition                  *json.RawMessage
	appendcomposition            json.RawMessage
	occultation_additional_terms *string
	occultation_categories       *[]string
	appendoccultation_categories []string
	occultation_motivation       *bool
	label_status                 *string
	publish_status               *string
	date_decision                *time.Time
	date_creation                *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*Decision, error)
	predicates                   []predicate.Decision
}

var _ ent.Mutation = (*DecisionMutation)(nil)

// decisionOption allows management of the mutation configuration using functional options.
type decisionOption func(*DecisionMutation)

// newDecisionMutation creates new mutation for the Decision entity.
func newDecisionMutation(c config, op Op, opts ...decisionOption) *DecisionMutation {
	m := &DecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDecisionID sets the ID field of the mutation.
func withDecisionID(id uuid.UUID) decisionOption {
	return func(m *DecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *Decision
		)
		m.oldValue = func(ctx context.Context) (*Decision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Decision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDecision sets the old Decision of the mutation.
func withDecision(node *Decision) decisionOption {
	return func(m *DecisionMutation) {
		m.oldValue = func(context.Context) (*Decision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Decision entities.
func (m *DecisionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DecisionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DecisionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Decision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceID sets the "source_id" field.
func (m *DecisionMutation) SetSourceID(i int64) {
	m.source_id = &i
	m.addsource_id = nil
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *DecisionMutation) SourceID() (r int64, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldSourceID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// AddSourceID adds i to the "source_id" field.
func (m *DecisionMutation) AddSourceID(i int64) {
	if m.addsource_id != nil {
		*m.addsource_id += i
	} else {
		m.addsource_id = &i
	}
}

// AddedSourceID returns the value that was added to the "source_id" field in this mutation.
func (m *DecisionMutation) AddedSourceID() (r int64, exists bool) {
	v := m.addsource_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *DecisionMutation) ResetSourceID() {
	m.source_id = nil
	m.addsource_id = nil
}

// SetSourceName sets the "source_name" field.
func (m *DecisionMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *DecisionMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *DecisionMutation) ResetSourceName() {
	m.source_name = nil
}

// SetOriginalText sets the "original_text" field.
func (m *DecisionMutation) SetOriginalText(s string) {
	m.original_text = &s
}

// OriginalText returns the value of the "original_text" field in the mutation.
func (m *DecisionMutation) OriginalText() (r string, exists bool) {
	v := m.original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalText returns the old "original_text" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldOriginalText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalText: %w", err)
	}
	return oldValue.OriginalText, nil
}

// ResetOriginalText resets all changes to the "original_text" field.
func (m *DecisionMutation) ResetOriginalText() {
	m.original_text = nil
}

// SetJurisdictionID sets the "jurisdiction_id" field.
func (m *DecisionMutation) SetJurisdictionID(s string) {
	m.jurisdiction_id = &s
}

// JurisdictionID returns the value of the "jurisdiction_id" field in the mutation.
func (m *DecisionMutation) JurisdictionID() (r string, exists bool) {
	v := m.jurisdiction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJurisdictionID returns the old "jurisdiction_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldJurisdictionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJurisdictionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJurisdictionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJurisdictionID: %w", err)
	}
	return oldValue.JurisdictionID, nil
}

// ResetJurisdictionID resets all changes to the "jurisdiction_id" field.
func (m *DecisionMutation) ResetJurisdictionID() {
	m.jurisdiction_id = nil
}

// SetJurisdictionCode sets the "jurisdiction_code" field.
func (m *DecisionMutation) SetJurisdictionCode(s string) {
	m.jurisdiction_code = &s
}

// JurisdictionCode returns the value of the "jurisdiction_code" field in the mutation.
func (m *DecisionMutation) JurisdictionCode() (r string, exists bool) {
	v := m.jurisdiction_code
	if v == nil {
		return
	}
	return *v, true
}

// OldJurisdictionCode returns the old "jurisdiction_code" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldJurisdictionCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJurisdictionCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJurisdictionCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJurisdictionCode: %w", err)
	}
	return oldValue.JurisdictionCode, nil
}

// ClearJurisdictionCode clears the value of the "jurisdiction_code" field.
func (m *DecisionMutation) ClearJurisdictionCode() {
	m.jurisdiction_code = nil
	m.clearedFields[decision.FieldJurisdictionCode] = struct{}{}
}

// JurisdictionCodeCleared returns if the "jurisdiction_code" field was cleared in this mutation.
func (m *DecisionMutation) JurisdictionCodeCleared() bool {
	_, ok := m.clearedFields[decision.FieldJurisdictionCode]
	return ok
}

// ResetJurisdictionCode resets all changes to the "jurisdiction_code" field.
func (m *DecisionMutation) ResetJurisdictionCode() {
	m.jurisdiction_code = nil
	delete(m.clearedFields, decision.FieldJurisdictionCode)
}

// SetJurisdictionName sets the "jurisdiction_name" field.
func (m *DecisionMutation) SetJurisdictionName(s string) {
	m.jurisdiction_name = &s
}

// JurisdictionName returns the value of the "jurisdiction_name" field in the mutation.
func (m *DecisionMutation) JurisdictionName() (r string, exists bool) {
	v := m.jurisdiction_name
	if v == nil {
		return
	}
	return *v, true
}

// OldJurisdictionName returns the old "jurisdiction_name" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldJurisdictionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJurisdictionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJurisdictionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJurisdictionName: %w", err)
	}
	return oldValue.JurisdictionName, nil
}

// ClearJurisdictionName clears the value of the "jurisdiction_name" field.
func (m *DecisionMutation) ClearJurisdictionName() {
	m.jurisdiction_name = nil
	m.clearedFields[decision.FieldJurisdictionName] = struct{}{}
}

// JurisdictionNameCleared returns if the "jurisdiction_name" field was cleared in this mutation.
func (m *DecisionMutation) JurisdictionNameCleared() bool {
	_, ok := m.clearedFields[decision.FieldJurisdictionName]
	return ok
}

// ResetJurisdictionName resets all changes to the "jurisdiction_name" field.
func (m *DecisionMutation) ResetJurisdictionName() {
	m.jurisdiction_name = nil
	delete(m.clearedFields, decision.FieldJurisdictionName)
}

// SetChamberID sets the "chamber_id" field.
func (m *DecisionMutation) SetChamberID(s string) {
	m.chamber_id = &s
}

// ChamberID returns the value of the "chamber_id" field in the mutation.
func (m *DecisionMutation) ChamberID() (r string, exists bool) {
	v := m.chamber_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChamberID returns the old "chamber_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldChamberID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChamberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChamberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChamberID: %w", err)
	}
	return oldValue.ChamberID, nil
}

// ClearChamberID clears the value of the "chamber_id" field.
func (m *DecisionMutation) ClearChamberID() {
	m.chamber_id = nil
	m.clearedFields[decision.FieldChamberID] = struct{}{}
}

// ChamberIDCleared returns if the "chamber_id" field was cleared in this mutation.
func (m *DecisionMutation) ChamberIDCleared() bool {
	_, ok := m.clearedFields[decision.FieldChamberID]
	return ok
}

// ResetChamberID resets all changes to the "chamber_id" field.
func (m *DecisionMutation) ResetChamberID() {
	m.chamber_id = nil
	delete(m.clearedFields, decision.FieldChamberID)
}

// SetChamberName sets the "chamber_name" field.
func (m *DecisionMutation) SetChamberName(s string) {
	m.chamber_name = &s
}

// ChamberName returns the value of the "chamber_name" field in the mutation.
func (m *DecisionMutation) ChamberName() (r string, exists bool) {
	v := m.chamber_name
	if v == nil {
		return
	}
	return *v, true
}

// OldChamberName returns the old "chamber_name" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldChamberName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChamberName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChamberName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChamberName: %w", err)
	}
	return oldValue.ChamberName, nil
}

// ClearChamberName clears the value of the "chamber_name" field.
func (m *DecisionMutation) ClearChamberName() {
	m.chamber_name = nil
	m.clearedFields[decision.FieldChamberName] = struct{}{}
}

// ChamberNameCleared returns if the "chamber_name" field was cleared in this mutation.
func (m *DecisionMutation) ChamberNameCleared() bool {
	_, ok := m.clearedFields[decision.FieldChamberName]
	return ok
}

// ResetChamberName resets all changes to the "chamber_name" field.
func (m *DecisionMutation) ResetChamberName() {
	m.chamber_name = nil
	delete(m.clearedFields, decision.FieldChamberName)
}

// SetGroupID sets the "group_id" field.
func (m *DecisionMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *DecisionMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *DecisionMutation) ClearGroupID() {
	m.group_id = nil
	m.clearedFields[decision.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *DecisionMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[decision.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *DecisionMutation) ResetGroupID() {
	m.group_id = nil
	delete(m.clearedFields, decision.FieldGroupID)
}

// SetCaseNumber sets the "case_number" field.
func (m *DecisionMutation) SetCaseNumber(s string) {
	m.case_number = &s
}

// CaseNumber returns the value of the "case_number" field in the mutation.
func (m *DecisionMutation) CaseNumber() (r string, exists bool) {
	v := m.case_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseNumber returns the old "case_number" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldCaseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseNumber: %w", err)
	}
	return oldValue.CaseNumber, nil
}

// ResetCaseNumber resets all changes to the "case_number" field.
func (m *DecisionMutation) ResetCaseNumber() {
	m.case_number = nil
}

// SetRegisterNumber sets the "register_number" field.
func (m *DecisionMutation) SetRegisterNumber(s string) {
	m.register_number = &s
}

// RegisterNumber returns the value of the "register_number" field in the mutation.
func (m *DecisionMutation) RegisterNumber() (r string, exists bool) {
	v := m.register_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisterNumber returns the old "register_number" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldRegisterNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisterNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisterNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisterNumber: %w", err)
	}
	return oldValue.RegisterNumber, nil
}

// ClearRegisterNumber clears the value of the "register_number" field.
func (m *DecisionMutation) ClearRegisterNumber() {
	m.register_number = nil
	m.clearedFields[decision.FieldRegisterNumber] = struct{}{}
}

// RegisterNumberCleared returns if the "register_number" field was cleared in this mutation.
func (m *DecisionMutation) RegisterNumberCleared() bool {
	_, ok := m.clearedFields[decision.FieldRegisterNumber]
	return ok
}

// ResetRegisterNumber resets all changes to the "register_number" field.
func (m *DecisionMutation) ResetRegisterNumber() {
	m.register_number = nil
	delete(m.clearedFields, decision.FieldRegisterNumber)
}

// SetMatterCode sets the "matter_code" field.
func (m *DecisionMutation) SetMatterCode(s string) {
	m.matter_code = &s
}

// MatterCode returns the value of the "matter_code" field in the mutation.
func (m *DecisionMutation) MatterCode() (r string, exists bool) {
	v := m.matter_code
	if v == nil {
		return
	}
	return *v, true
}

// OldMatterCode returns the old "matter_code" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldMatterCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatterCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatterCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatterCode: %w", err)
	}
	return oldValue.MatterCode, nil
}

// ClearMatterCode clears the value of the "matter_code" field.
func (m *DecisionMutation) ClearMatterCode() {
	m.matter_code = nil
	m.clearedFields[decision.FieldMatterCode] = struct{}{}
}

// MatterCodeCleared returns if the "matter_code" field was cleared in this mutation.
func (m *DecisionMutation) MatterCodeCleared() bool {
	_, ok := m.clearedFields[decision.FieldMatterCode]
	return ok
}

// ResetMatterCode resets all changes to the "matter_code" field.
func (m *DecisionMutation) ResetMatterCode() {
	m.matter_code = nil
	delete(m.clearedFields, decision.FieldMatterCode)
}

// SetMatterLabel sets the "matter_label" field.
func (m *DecisionMutation) SetMatterLabel(s string) {
	m.matter_label = &s
}

// MatterLabel returns the value of the "matter_label" field in the mutation.
func (m *DecisionMutation) MatterLabel() (r string, exists bool) {
	v := m.matter_label
	if v == nil {
		return
	}
	return *v, true
}

// OldMatterLabel returns the old "matter_label" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldMatterLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatterLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatterLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatterLabel: %w", err)
	}
	return oldValue.MatterLabel, nil
}

// ClearMatterLabel clears the value of the "matter_label" field.
func (m *DecisionMutation) ClearMatterLabel() {
	m.matter_label = nil
	m.clearedFields[decision.FieldMatterLabel] = struct{}{}
}

// MatterLabelCleared returns if the "matter_label" field was cleared in this mutation.
func (m *DecisionMutation) MatterLabelCleared() bool {
	_, ok := m.clearedFields[decision.FieldMatterLabel]
	return ok
}

// ResetMatterLabel resets all changes to the "matter_label" field.
func (m *DecisionMutation) ResetMatterLabel() {
	m.matter_label = nil
	delete(m.clearedFields, decision.FieldMatterLabel)
}

// SetProcedureCode sets the "procedure_code" field.
func (m *DecisionMutation) SetProcedureCode(s string) {
	m.procedure_code = &s
}

// ProcedureCode returns the value of the "procedure_code" field in the mutation.
func (m *DecisionMutation) ProcedureCode() (r string, exists bool) {
	v := m.procedure_code
	if v == nil {
		return
	}
	return *v, true
}

// OldProcedureCode returns the old "procedure_code" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldProcedureCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcedureCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcedureCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcedureCode: %w", err)
	}
	return oldValue.ProcedureCode, nil
}

// ClearProcedureCode clears the value of the "procedure_code" field.
func (m *DecisionMutation) ClearProcedureCode() {
	m.procedure_code = nil
	m.clearedFields[decision.FieldProcedureCode] = struct{}{}
}

// ProcedureCodeCleared returns if the "procedure_code" field was cleared in this mutation.
func (m *DecisionMutation) ProcedureCodeCleared() bool {
	_, ok := m.clearedFields[decision.FieldProcedureCode]
	return ok
}

// ResetProcedureCode resets all changes to the "procedure_code" field.
func (m *DecisionMutation) ResetProcedureCode() {
	m.procedure_code = nil
	delete(m.clearedFields, decision.FieldProcedureCode)
}

// SetSolution sets the "solution" field.
func (m *DecisionMutation) SetSolution(s string) {
	m.solution = &s
}

// Solution returns the value of the "solution" field in the mutation.
func (m *DecisionMutation) Solution() (r string, exists bool) {
	v := m.solution
	if v == nil {
		return
	}
	return *v, true
}

// OldSolution returns the old "solution" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldSolution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolution: %w", err)
	}
	return oldValue.Solution, nil
}

// ClearSolution clears the value of the "solution" field.
func (m *DecisionMutation) ClearSolution() {
	m.solution = nil
	m.clearedFields[decision.FieldSolution] = struct{}{}
}

// SolutionCleared returns if the "solution" field was cleared in this mutation.
func (m *DecisionMutation) SolutionCleared() bool {
	_, ok := m.clearedFields[decision.FieldSolution]
	return ok
}

// ResetSolution resets all changes to the "solution" field.
func (m *DecisionMutation) ResetSolution() {
	m.solution = nil
	delete(m.clearedFields, decision.FieldSolution)
}

// SetPublic sets the "public" field.
func (m *DecisionMutation) SetPublic(b bool) {
	m.public = &b
}

// Public returns the value of the "public" field in the mutation.
func (m *DecisionMutation) Public() (r bool, exists bool) {
	v := m.public
	if v == nil {
		return
	}
	return *v, true
}

// OldPublic returns the old "public" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublic: %w", err)
	}
	return oldValue.Public, nil
}

// ResetPublic resets all changes to the "public" field.
func (m *DecisionMutation) ResetPublic() {
	m.public = nil
}

// SetDebatPublic sets the "debat_public" field.
func (m *DecisionMutation) SetDebatPublic(b bool) {
	m.debat_public = &b
}

// DebatPublic returns the value of the "debat_public" field in the mutation.
func (m *DecisionMutation) DebatPublic() (r bool, exists bool) {
	v := m.debat_public
	if v == nil {
		return
	}
	return *v, true
}

// OldDebatPublic returns the old "debat_public" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldDebatPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebatPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebatPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebatPublic: %w", err)
	}
	return oldValue.DebatPublic, nil
}

// ResetDebatPublic resets all changes to the "debat_public" field.
func (m *DecisionMutation) ResetDebatPublic() {
	m.debat_public = nil
}

// SetSelection sets the "selection" field.
func (m *DecisionMutation) SetSelection(b bool) {
	m.selection = &b
}

// Selection returns the value of the "selection" field in the mutation.
func (m *DecisionMutation) Selection() (r bool, exists bool) {
	v := m.selection
	if v == nil {
		return
	}
	return *v, true
}

// OldSelection returns the old "selection" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldSelection(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelection: %w", err)
	}
	return oldValue.Selection, nil
}

// ResetSelection resets all changes to the "selection" field.
func (m *DecisionMutation) ResetSelection() {
	m.selection = nil
}

// SetParties sets the "parties" field.
func (m *DecisionMutation) SetParties(jm json.RawMessage) {
	m.parties = &jm
	m.appendparties = nil
}

// Parties returns the value of the "parties" field in the mutation.
func (m *DecisionMutation) Parties() (r json.RawMessage, exists bool) {
	v := m.parties
	if v == nil {
		return
	}
	return *v, true
}

// OldParties returns the old "parties" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldParties(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParties: %w", err)
	}
	return oldValue.Parties, nil
}

// AppendParties adds jm to the "parties" field.
func (m *DecisionMutation) AppendParties(jm json.RawMessage) {
	m.appendparties = append(m.appendparties, jm...)
}

// AppendedParties returns the list of values that were appended to the "parties" field in this mutation.
func (m *DecisionMutation) AppendedParties() (json.RawMessage, bool) {
	if len(m.appendparties) == 0 {
		return nil, false
	}
	return m.appendparties, true
}

// ClearParties clears the value of the "parties" field.
func (m *DecisionMutation) ClearParties() {
	m.parties = nil
	m.appendparties = nil
	m.clearedFields[decision.FieldParties] = struct{}{}
}

// PartiesCleared returns if the "parties" field was cleared in this mutation.
func (m *DecisionMutation) PartiesCleared() bool {
	_, ok := m.clearedFields[decision.FieldParties]
	return ok
}

// ResetParties resets all changes to the "parties" field.
func (m *DecisionMutation) ResetParties() {
	m.parties = nil
	m.appendparties = nil
	delete(m.clearedFields, decision.FieldParties)
}

// SetComposition sets the "composition" field.
func (m *DecisionMutation) SetComposition(jm json.RawMessage) {
	m.composition = &jm
	m.appendcomposition = nil
}

// Composition returns the value of the "composition" field in the mutation.
func (m *DecisionMutation) Composition() (r json.RawMessage, exists bool) {
	v := m.composition
	if v == nil {
		return
	}
	return *v, true
}

// OldComposition returns the old "composition" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldComposition(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComposition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComposition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComposition: %w", err)
	}
	return oldValue.Composition, nil
}

// AppendComposition adds jm to the "composition" field.
func (m *DecisionMutation) AppendComposition(jm json.RawMessage) {
	m.appendcomposition = append(m.appendcomposition, jm...)
}

// AppendedComposition returns the list of values that were appended to the "composition" field in this mutation.
func (m *DecisionMutation) AppendedComposition() (json.RawMessage, bool) {
	if len(m.appendcomposition) == 0 {
		return nil, false
	}
	return m.appendcomposition, true
}

// ClearComposition clears the value of the "composition" field.
func (m *DecisionMutation) ClearComposition() {
	m.composition = nil
	m.appendcomposition = nil
	m.clearedFields[decision.FieldComposition] = struct{}{}
}

// CompositionCleared returns if the "composition" field was cleared in this mutation.
func (m *DecisionMutation) CompositionCleared() bool {
	_, ok := m.clearedFields[decision.FieldComposition]
	return ok
}

// ResetComposition resets all changes to the "composition" field.
func (m *DecisionMutation) ResetComposition() {
	m.composition = nil
	m.appendcomposition = nil
	delete(m.clearedFields, decision.FieldComposition)
}

// SetOccultationAdditionalTerms sets the "occultation_additional_terms" field.
func (m *DecisionMutation) SetOccultationAdditionalTerms(s string) {
	m.occultation_additional_terms = &s
}

// OccultationAdditionalTerms returns the value of the "occultation_additional_terms" field in the mutation.
func (m *DecisionMutation) OccultationAdditionalTerms() (r string, exists bool) {
	v := m.occultation_additional_terms
	if v == nil {
		return
	}
	return *v, true
}

// OldOccultationAdditionalTerms returns the old "occultation_additional_terms" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldOccultationAdditionalTerms(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccultationAdditionalTerms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccultationAdditionalTerms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccultationAdditionalTerms: %w", err)
	}
	return oldValue.OccultationAdditionalTerms, nil
}

// ClearOccultationAdditionalTerms clears the value of the "occultation_additional_terms" field.
func (m *DecisionMutation) ClearOccultationAdditionalTerms() {
	m.occultation_additional_terms = nil
	m.clearedFields[decision.FieldOccultationAdditionalTerms] = struct{}{}
}

// OccultationAdditionalTermsCleared returns if the "occultation_additional_terms" field was cleared in this mutation.
func (m *DecisionMutation) OccultationAdditionalTermsCleared() bool {
	_, ok := m.clearedFields[decision.FieldOccultationAdditionalTerms]
	return ok
}

// ResetOccultationAdditionalTerms resets all changes to the "occultation_additional_terms" field.
func (m *DecisionMutation) ResetOccultationAdditionalTerms() {
	m.occultation_additional_terms = nil
	delete(m.clearedFields, decision.FieldOccultationAdditionalTerms)
}

// SetOccultationCategories sets the "occultation_categories" field.
func (m *DecisionMutation) SetOccultationCategories(s []string) {
	m.occultation_categories = &s
	m.appendoccultation_categories = nil
}

// OccultationCategories returns the value of the "occultation_categories" field in the mutation.
func (m *DecisionMutation) OccultationCategories() (r []string, exists bool) {
	v := m.occultation_categories
	if v == nil {
		return
	}
	return *v, true
}

// OldOccultationCategories returns the old "occultation_categories" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldOccultationCategories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccultationCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccultationCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccultationCategories: %w", err)
	}
	return oldValue.OccultationCategories, nil
}

// AppendOccultationCategories adds s to the "occultation_categories" field.
func (m *DecisionMutation) AppendOccultationCategories(s []string) {
	m.appendoccultation_categories = append(m.appendoccultation_categories, s...)
}

// AppendedOccultationCategories returns the list of values that were appended to the "occultation_categories" field in this mutation.
func (m *DecisionMutation) AppendedOccultationCategories() ([]string, bool) {
	if len(m.appendoccultation_categories) == 0 {
		return nil, false
	}
	return m.appendoccultation_categories, true
}

// ClearOccultationCategories clears the value of the "occultation_categories" field.
func (m *DecisionMutation) ClearOccultationCategories() {
	m.occultation_categories = nil
	m.appendoccultation_categories = nil
	m.clearedFields[decision.FieldOccultationCategories] = struct{}{}
}

// OccultationCategoriesCleared returns if the "occultation_categories" field was cleared in this mutation.
func (m *DecisionMutation) OccultationCategoriesCleared() bool {
	_, ok := m.clearedFields[decision.FieldOccultationCategories]
	return ok
}

// ResetOccultationCategories resets all changes to the "occultation_categories" field.
func (m *DecisionMutation) ResetOccultationCategories() {
	m.occultation_categories = nil
	m.appendoccultation_categories = nil
	delete(m.clearedFields, decision.FieldOccultationCategories)
}

// SetOccultationMotivation sets the "occultation_motivation" field.
func (m *DecisionMutation) SetOccultationMotivation(b bool) {
	m.occultation_motivation = &b
}

// OccultationMotivation returns the value of the "occultation_motivation" field in the mutation.
func (m *DecisionMutation) OccultationMotivation() (r bool, exists bool) {
	v := m.occultation_motivation
	if v == nil {
		return
	}
	return *v, true
}

// OldOccultationMotivation returns the old "occultation_motivation" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldOccultationMotivation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccultationMotivation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccultationMotivation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccultationMotivation: %w", err)
	}
	return oldValue.OccultationMotivation, nil
}

// ResetOccultationMotivation resets all changes to the "occultation_motivation" field.
func (m *DecisionMutation) ResetOccultationMotivation() {
	m.occultation_motivation = nil
}

// SetLabelStatus sets the "label_status" field.
func (m *DecisionMutation) SetLabelStatus(s string) {
	m.label_status = &s
}

// LabelStatus returns the value of the "label_status" field in the mutation.
func (m *DecisionMutation) LabelStatus() (r string, exists bool) {
	v := m.label_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelStatus returns the old "label_status" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldLabelStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelStatus: %w", err)
	}
	return oldValue.LabelStatus, nil
}

// ResetLabelStatus resets all changes to the "label_status" field.
func (m *DecisionMutation) ResetLabelStatus() {
	m.label_status = nil
}

// SetPublishStatus sets the "publish_status" field.
func (m *DecisionMutation) SetPublishStatus(s string) {
	m.publish_status = &s
}

// PublishStatus returns the value of the "publish_status" field in the mutation.
func (m *DecisionMutation) PublishStatus() (r string, exists bool) {
	v := m.publish_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishStatus returns the old "publish_status" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldPublishStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishStatus: %w", err)
	}
	return oldValue.PublishStatus, nil
}

// ResetPublishStatus resets all changes to the "publish_status" field.
func (m *DecisionMutation) ResetPublishStatus() {
	m.publish_status = nil
}

// SetDateDecision sets the "date_decision" field.
func (m *DecisionMutation) SetDateDecision(t time.Time) {
	m.date_decision = &t
}

// DateDecision returns the value of the "date_decision" field in the mutation.
func (m *DecisionMutation) DateDecision() (r time.Time, exists bool) {
	v := m.date_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDateDecision returns the old "date_decision" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldDateDecision(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateDecision: %w", err)
	}
	return oldValue.DateDecision, nil
}

// ResetDateDecision resets all changes to the "date_decision" field.
func (m *DecisionMutation) ResetDateDecision() {
	m.date_decision = nil
}

// SetDateCreation sets the "date_creation" field.
func (m *DecisionMutation) SetDateCreation(t time.Time) {
	m.date_creation = &t
}

// DateCreation returns the value of the "date_creation" field in the mutation.
func (m *DecisionMutation) DateCreation() (r time.Time, exists bool) {
	v := m.date_creation
	if v == nil {
		return
	}
	return *v, true
}

// OldDateCreation returns the old "date_creation" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldDateCreation(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateCreation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateCreation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateCreation: %w", err)
	}
	return oldValue.DateCreation, nil
}

// ResetDateCreation resets all changes to the "date_creation" field.
func (m *DecisionMutation) ResetDateCreation() {
	m.date_creation = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DecisionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DecisionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Decision entity.
// If the Decision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DecisionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DecisionMutation builder.
func (m *DecisionMutation) Where(ps ...predicate.Decision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Decision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Decision).
func (m *DecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DecisionMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.source_id != nil {
		fields = append(fields, decision.FieldSourceID)
	}
	if m.source_name != nil {
		fields = append(fields, decision.FieldSourceName)
	}
	if m.original_text != nil {
		fields = append(fields, decision.FieldOriginalText)
	}
	if m.jurisdiction_id != nil {
		fields = append(fields, decision.FieldJurisdictionID)
	}
	if m.jurisdiction_code != nil {
		fields = append(fields, decision.FieldJurisdictionCode)
	}
	if m.jurisdiction_name != nil {
		fields = append(fields, decision.FieldJurisdictionName)
	}
	if m.chamber_id != nil {
		fields = append(fields, decision.FieldChamberID)
	}
	if m.chamber_name != nil {
		fields = append(fields, decision.FieldChamberName)
	}
	if m.group_id != nil {
		fields = append(fields, decision.FieldGroupID)
	}
	if m.case_number != nil {
		fields = append(fields, decision.FieldCaseNumber)
	}
	if m.register_number != nil {
		fields = append(fields, decision.FieldRegisterNumber)
	}
	if m.matter_code != nil {
		fields = append(fields, decision.FieldMatterCode)
	}
	if m.matter_label != nil {
		fields = append(fields, decision.FieldMatterLabel)
	}
	if m.procedure_code != nil {
		fields = append(fields, decision.FieldProcedureCode)
	}
	if m.solution != nil {
		fields = append(fields, decision.FieldSolution)
	}
	if m.public != nil {
		fields = append(fields, decision.FieldPublic)
	}
	if m.debat_public != nil {
		fields = append(fields, decision.FieldDebatPublic)
	}
	if m.selection != nil {
		fields = append(fields, decision.FieldSelection)
	}
	if m.parties != nil {
		fields = append(fields, decision.FieldParties)
	}
	if m.composition != nil {
		fields = append(fields, decision.FieldComposition)
	}
	if m.occultation_additional_terms != nil {
		fields = append(fields, decision.FieldOccultationAdditionalTerms)
	}
	if m.occultation_categories != nil {
		fields = append(fields, decision.FieldOccultationCategories)
	}
	if m.occultation_motivation != nil {
		fields = append(fields, decision.FieldOccultationMotivation)
	}
	if m.label_status != nil {
		fields = append(fields, decision.FieldLabelStatus)
	}
	if m.publish_status != nil {
		fields = append(fields, decision.FieldPublishStatus)
	}
	if m.date_decision != nil {
		fields = append(fields, decision.FieldDateDecision)
	}
	if m.date_creation != nil {
		fields = append(fields, decision.FieldDateCreation)
	}
	if m.updated_at != nil {
		fields = append(fields, decision.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case decision.FieldSourceID:
		return m.SourceID()
	case decision.FieldSourceName:
		return m.SourceName()
	case decision.FieldOriginalText:
		return m.OriginalText()
	case decision.FieldJurisdictionID:
		return m.JurisdictionID()
	case decision.FieldJurisdictionCode:
		return m.JurisdictionCode()
	case decision.FieldJurisdictionName:
		return m.JurisdictionName()
	case decision.FieldChamberID:
		return m.ChamberID()
	case decision.FieldChamberName:
		return m.ChamberName()
	case decision.FieldGroupID:
		return m.GroupID()
	case decision.FieldCaseNumber:
		return m.CaseNumber()
	case decision.FieldRegisterNumber:
		return m.RegisterNumber()
	case decision.FieldMatterCode:
		return m.MatterCode()
	case decision.FieldMatterLabel:
		return m.MatterLabel()
	case decision.FieldProcedureCode:
		return m.ProcedureCode()
	case decision.FieldSolution:
		return m.Solution()
	case decision.FieldPublic:
		return m.Public()
	case decision.FieldDebatPublic:
		return m.DebatPublic()
	case decision.FieldSelection:
		return m.Selection()
	case decision.FieldParties:
		return m.Parties()
	case decision.FieldComposition:
		return m.Composition()
	case decision.FieldOccultationAdditionalTerms:
		return m.OccultationAdditionalTerms()
	case decision.FieldOccultationCategories:
		return m.OccultationCategories()
	case decision.FieldOccultationMotivation:
		return m.OccultationMotivation()
	case decision.FieldLabelStatus:
		return m.LabelStatus()
	case decision.FieldPublishStatus:
		return m.PublishStatus()
	case decision.FieldDateDecision:
		return m.DateDecision()
	case decision.FieldDateCreation:
		return m.DateCreation()
	case decision.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case decision.FieldSourceID:
		return m.OldSourceID(ctx)
	case decision.FieldSourceName:
		return m.OldSourceName(ctx)
	case decision.FieldOriginalText:
		return m.OldOriginalText(ctx)
	case decision.FieldJurisdictionID:
		return m.OldJurisdictionID(ctx)
	case decision.FieldJurisdictionCode:
		return m.OldJurisdictionCode(ctx)
	case decision.FieldJurisdictionName:
		return m.OldJurisdictionName(ctx)
	case decision.FieldChamberID:
		return m.OldChamberID(ctx)
	case decision.FieldChamberName:
		return m.OldChamberName(ctx)
	case decision.FieldGroupID:
		return m.OldGroupID(ctx)
	case decision.FieldCaseNumber:
		return m.OldCaseNumber(ctx)
	case decision.FieldRegisterNumber:
		return m.OldRegisterNumber(ctx)
	case decision.FieldMatterCode:
		return m.OldMatterCode(ctx)
	case decision.FieldMatterLabel:
		return m.OldMatterLabel(ctx)
	case decision.FieldProcedureCode:
		return m.OldProcedureCode(ctx)
	case decision.FieldSolution:
		return m.OldSolution(ctx)
	case decision.FieldPublic:
		return m.OldPublic(ctx)
	case decision.FieldDebatPublic:
		return m.OldDebatPublic(ctx)
	case decision.FieldSelection:
		return m.OldSelection(ctx)
	case decision.FieldParties:
		return m.OldParties(ctx)
	case decision.FieldComposition:
		return m.OldComposition(ctx)
	case decision.FieldOccultationAdditionalTerms:
		return m.OldOccultationAdditionalTerms(ctx)
	case decision.FieldOccultationCategories:
		return m.OldOccultationCategories(ctx)
	case decision.FieldOccultationMotivation:
		return m.OldOccultationMotivation(ctx)
	case decision.FieldLabelStatus:
		return m.OldLabelStatus(ctx)
	case decision.FieldPublishStatus:
		return m.OldPublishStatus(ctx)
	case decision.FieldDateDecision:
		return m.OldDateDecision(ctx)
	case decision.FieldDateCreation:
		return m.OldDateCreation(ctx)
	case decision.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Decision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case decision.FieldSourceID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case decision.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case decision.FieldOriginalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalText(v)
		return nil
	case decision.FieldJurisdictionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJurisdictionID(v)
		return nil
	case decision.FieldJurisdictionCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJurisdictionCode(v)
		return nil
	case decision.FieldJurisdictionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJurisdictionName(v)
		return nil
	case decision.FieldChamberID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChamberID(v)
		return nil
	case decision.FieldChamberName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChamberName(v)
		return nil
	case decision.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case decision.FieldCaseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseNumber(v)
		return nil
	case decision.FieldRegisterNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisterNumber(v)
		return nil
	case decision.FieldMatterCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatterCode(v)
		return nil
	case decision.FieldMatterLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatterLabel(v)
		return nil
	case decision.FieldProcedureCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcedureCode(v)
		return nil
	case decision.FieldSolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolution(v)
		return nil
	case decision.FieldPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublic(v)
		return nil
	case decision.FieldDebatPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebatPublic(v)
		return nil
	case decision.FieldSelection:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelection(v)
		return nil
	case decision.FieldParties:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParties(v)
		return nil
	case decision.FieldComposition:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComposition(v)
		return nil
	case decision.FieldOccultationAdditionalTerms:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccultationAdditionalTerms(v)
		return nil
	case decision.FieldOccultationCategories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccultationCategories(v)
		return nil
	case decision.FieldOccultationMotivation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccultationMotivation(v)
		return nil
	case decision.FieldLabelStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelStatus(v)
		return nil
	case decision.FieldPublishStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishStatus(v)
		return nil
	case decision.FieldDateDecision:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateDecision(v)
		return nil
	case decision.FieldDateCreation:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateCreation(v)
		return nil
	case decision.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Decision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DecisionMutation) AddedFields() []string {
	var fields []string
	if m.addsource_id != nil {
		fields = append(fields, decision.FieldSourceID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case decision.FieldSourceID:
		return m.AddedSourceID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case decision.FieldSourceID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceID(v)
		return nil
	}
	return fmt.Errorf("unknown Decision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(decision.FieldJurisdictionCode) {
		fields = append(fields, decision.FieldJurisdictionCode)
	}
	if m.FieldCleared(decision.FieldJurisdictionName) {
		fields = append(fields, decision.FieldJurisdictionName)
	}
	if m.FieldCleared(decision.FieldChamberID) {
		fields = append(fields, decision.FieldChamberID)
	}
	if m.FieldCleared(decision.FieldChamberName) {
		fields = append(fields, decision.FieldChamberName)
	}
	if m.FieldCleared(decision.FieldGroupID) {
		fields = append(fields, decision.FieldGroupID)
	}
	if m.FieldCleared(decision.FieldRegisterNumber) {
		fields = append(fields, decision.FieldRegisterNumber)
	}
	if m.FieldCleared(decision.FieldMatterCode) {
		fields = append(fields, decision.FieldMatterCode)
	}
	if m.FieldCleared(decision.FieldMatterLabel) {
		fields = append(fields, decision.FieldMatterLabel)
	}
	if m.FieldCleared(decision.FieldProcedureCode) {
		fields = append(fields, decision.FieldProcedureCode)
	}
	if m.FieldCleared(decision.FieldSolution) {
		fields = append(fields, decision.FieldSolution)
	}
	if m.FieldCleared(decision.FieldParties) {
		fields = append(fields, decision.FieldParties)
	}
	if m.FieldCleared(decision.FieldComposition) {
		fields = append(fields, decision.FieldComposition)
	}
	if m.FieldCleared(decision.FieldOccultationAdditionalTerms) {
		fields = append(fields, decision.FieldOccultationAdditionalTerms)
	}
	if m.FieldCleared(decision.FieldOccultationCategories) {
		fields = append(fields, decision.FieldOccultationCategories)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DecisionMutation) ClearField(name string) error {
	switch name {
	case decision.FieldJurisdictionCode:
		m.ClearJurisdictionCode()
		return nil
	case decision.FieldJurisdictionName:
		m.ClearJurisdictionName()
		return nil
	case decision.FieldChamberID:
		m.ClearChamberID()
		return nil
	case decision.FieldChamberName:
		m.ClearChamberName()
		return nil
	case decision.FieldGroupID:
		m.ClearGroupID()
		return nil
	case decision.FieldRegisterNumber:
		m.ClearRegisterNumber()
		return nil
	case decision.FieldMatterCode:
		m.ClearMatterCode()
		return nil
	case decision.FieldMatterLabel:
		m.ClearMatterLabel()
		return nil
	case decision.FieldProcedureCode:
		m.ClearProcedureCode()
		return nil
	case decision.FieldSolution:
		m.ClearSolution()
		return nil
	case decision.FieldParties:
		m.ClearParties()
		return nil
	case decision.FieldComposition:
		m.ClearComposition()
		return nil
	case decision.FieldOccultationAdditionalTerms:
		m.ClearOccultationAdditionalTerms()
		return nil
	case decision.FieldOccultationCategories:
		m.ClearOccultationCategories()
		return nil
	}
	return fmt.Errorf("unknown Decision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DecisionMutation) ResetField(name string) error {
	switch name {
	case decision.FieldSourceID:
		m.ResetSourceID()
		return nil
	case decision.FieldSourceName:
		m.ResetSourceName()
		return nil
	case decision.FieldOriginalText:
		m.ResetOriginalText()
		return nil
	case decision.FieldJurisdictionID:
		m.ResetJurisdictionID()
		return nil
	case decision.FieldJurisdictionCode:
		m.ResetJurisdictionCode()
		return nil
	case decision.FieldJurisdictionName:
		m.ResetJurisdictionName()
		return nil
	case decision.FieldChamberID:
		m.ResetChamberID()
		return nil
	case decision.FieldChamberName:
		m.ResetChamberName()
		return nil
	case decision.FieldGroupID:
		m.ResetGroupID()
		return nil
	case decision.FieldCaseNumber:
		m.ResetCaseNumber()
		return nil
	case decision.FieldRegisterNumber:
		m.ResetRegisterNumber()
		return nil
	case decision.FieldMatterCode:
		m.ResetMatterCode()
		return nil
	case decision.FieldMatterLabel:
		m.ResetMatterLabel()
		return nil
	case decision.FieldProcedureCode:
		m.ResetProcedureCode()
		return nil
	case decision.FieldSolution:
		m.ResetSolution()
		return nil
	case decision.FieldPublic:
		m.ResetPublic()
		return nil
	case decision.FieldDebatPublic:
		m.ResetDebatPublic()
		return nil
	case decision.FieldSelection:
		m.ResetSelection()
		return nil
	case decision.FieldParties:
		m.ResetParties()
		return nil
	case decision.FieldComposition:
		m.ResetComposition()
		return nil
	case decision.FieldOccultationAdditionalTerms:
		m.ResetOccultationAdditionalTerms()
		return nil
	case decision.FieldOccultationCategories:
		m.ResetOccultationCategories()
		return nil
	case decision.FieldOccultationMotivation:
		m.ResetOccultationMotivation()
		return nil
	case decision.FieldLabelStatus:
		m.ResetLabelStatus()
		return nil
	case decision.FieldPublishStatus:
		m.ResetPublishStatus()
		return nil
	case decision.FieldDateDecision:
		m.ResetDateDecision()
		return nil
	case decision.FieldDateCreation:
		m.ResetDateCreation()
		return nil
	case decision.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Decision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DecisionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DecisionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DecisionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Decision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DecisionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Decision edge %s", name)
}

// ExtractFailureMutation represents an operation that mutates the ExtractFailure nodes in the graph.
type ExtractFailureMutation struct {
	config
	op            Op
	typ           string
	id            *int
	filename      *string
	attempts      *int
	addattempts   *int
	last_error    *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ExtractFailure, error)
	predicates    []predicate.ExtractFailure
}

var _ ent.Mutation = (*ExtractFailureMutation)(nil)

// extractfailureOption allows management of the mutation configuration using functional options.
type extractfailureOption func(*ExtractFailureMutation)

// newExtractFailureMutation creates new mutation for the ExtractFailure entity.
func newExtractFailureMutation(c config, op Op, opts ...extractfailureOption) *ExtractFailureMutation {
	m := &ExtractFailureMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractFailure,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractFailureID sets the ID field of the mutation.
func withExtractFailureID(id int) extractfailureOption {
	return func(m *ExtractFailureMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractFailure
		)
		m.oldValue = func(ctx context.Context) (*ExtractFailure, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractFailure.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractFailure sets the old ExtractFailure of the mutation.
func withExtractFailure(node *ExtractFailure) extractfailureOption {
	return func(m *ExtractFailureMutation) {
		m.oldValue = func(context.Context) (*ExtractFailure, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractFailureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractFailureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractFailureMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractFailureMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractFailure.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ExtractFailureMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ExtractFailureMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ExtractFailure entity.
// If the ExtractFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractFailureMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ExtractFailureMutation) ResetFilename() {
	m.filename = nil
}

// SetAttempts sets the "attempts" field.
func (m *ExtractFailureMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ExtractFailureMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ExtractFailure entity.
// If the ExtractFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractFailureMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ExtractFailureMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ExtractFailureMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ExtractFailureMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *ExtractFailureMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ExtractFailureMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ExtractFailure entity.
// If the ExtractFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractFailureMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ExtractFailureMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[extractfailure.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ExtractFailureMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[extractfailure.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ExtractFailureMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, extractfailure.FieldLastError)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractFailureMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractFailureMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractFailure entity.
// If the ExtractFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractFailureMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractFailureMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ExtractFailureMutation builder.
func (m *ExtractFailureMutation) Where(ps ...predicate.ExtractFailure) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractFailureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractFailureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractFailure, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractFailureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractFailureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractFailure).
func (m *ExtractFailureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractFailureMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.filename != nil {
		fields = append(fields, extractfailure.FieldFilename)
	}
	if m.attempts != nil {
		fields = append(fields, extractfailure.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, extractfailure.FieldLastError)
	}
	if m.updated_at != nil {
		fields = append(fields, extractfailure.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractFailureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractfailure.FieldFilename:
		return m.Filename()
	case extractfailure.FieldAttempts:
		return m.Attempts()
	case extractfailure.FieldLastError:
		return m.LastError()
	case extractfailure.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractFailureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractfailure.FieldFilename:
		return m.OldFilename(ctx)
	case extractfailure.FieldAttempts:
		return m.OldAttempts(ctx)
	case extractfailure.FieldLastError:
		return m.OldLastError(ctx)
	case extractfailure.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractFailure field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractFailureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractfailure.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case extractfailure.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case extractfailure.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case extractfailure.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractFailure field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractFailureMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, extractfailure.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractFailureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractfailure.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractFailureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractfailure.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractFailure numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractFailureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractfailure.FieldLastError) {
		fields = append(fields, extractfailure.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractFailureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractFailureMutation) ClearField(name string) error {
	switch name {
	case extractfailure.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown ExtractFailure nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractFailureMutation) ResetField(name string) error {
	switch name {
	case extractfailure.FieldFilename:
		m.ResetFilename()
		return nil
	case extractfailure.FieldAttempts:
		m.ResetAttempts()
		return nil
	case extractfailure.FieldLastError:
		m.ResetLastError()
		return nil
	case extractfailure.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractFailure field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractFailureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractFailureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractFailureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractFailureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractFailureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractFailureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractFailureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractFailure unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractFailureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractFailure edge %s", name)
}
