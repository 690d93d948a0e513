// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aferrand/decisions-collector/gen/ent/extractfailure"
	"github.com/aferrand/decisions-collector/gen/ent/predicate"
)

// ExtractFailureUpdate is the builder for updating ExtractFailure entities.
type ExtractFailureUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractFailureMutation
}

// Where appends a list predicates to the ExtractFailureUpdate builder.
func (_u *ExtractFailureUpdate) Where(ps ...predicate.ExtractFailure) *ExtractFailureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ExtractFailureUpdate) SetFilename(v string) *ExtractFailureUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExtractFailureUpdate) SetNillableFilename(v *string) *ExtractFailureUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ExtractFailureUpdate) SetAttempts(v int) *ExtractFailureUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ExtractFailureUpdate) SetNillableAttempts(v *int) *ExtractFailureUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ExtractFailureUpdate) AddAttempts(v int) *ExtractFailureUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ExtractFailureUpdate) SetLastError(v string) *ExtractFailureUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ExtractFailureUpdate) SetNillableLastError(v *string) *ExtractFailureUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ExtractFailureUpdate) ClearLastError() *ExtractFailureUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractFailureUpdate) SetUpdatedAt(v time.Time) *ExtractFailureUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExtractFailureMutation object of the builder.
func (_u *ExtractFailureUpdate) Mutation() *ExtractFailureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractFailureUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractFailureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractFailureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractFailureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractFailureUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractfailure.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractFailureUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := extractfailure.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ExtractFailure.filename": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractFailureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractfailure.Table, extractfailure.Columns, sqlgraph.NewFieldSpec(extractfailure.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(extractfailure.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(extractfailure.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(extractfailure.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(extractfailure.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(extractfailure.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractfailure.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractfailure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractFailureUpdateOne is the builder for updating a single ExtractFailure entity.
type ExtractFailureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractFailureMutation
}

// SetFilename sets the "filename" field.
func (_u *ExtractFailureUpdateOne) SetFilename(v string) *ExtractFailureUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExtractFailureUpdateOne) SetNillableFilename(v *string) *ExtractFailureUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ExtractFailureUpdateOne) SetAttempts(v int) *ExtractFailureUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ExtractFailureUpdateOne) SetNillableAttempts(v *int) *ExtractFailureUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ExtractFailureUpdateOne) AddAttempts(v int) *ExtractFailureUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ExtractFailureUpdateOne) SetLastError(v string) *ExtractFailureUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ExtractFailureUpdateOne) SetNillableLastError(v *string) *ExtractFailureUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ExtractFailureUpdateOne) ClearLastError() *ExtractFailureUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractFailureUpdateOne) SetUpdatedAt(v time.Time) *ExtractFailureUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExtractFailureMutation object of the builder.
func (_u *ExtractFailureUpdateOne) Mutation() *ExtractFailureMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractFailureUpdate builder.
func (_u *ExtractFailureUpdateOne) Where(ps ...predicate.ExtractFailure) *ExtractFailureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractFailureUpdateOne) Select(field string, fields ...string) *ExtractFailureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractFailure entity.
func (_u *ExtractFailureUpdateOne) Save(ctx context.Context) (*ExtractFailure, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractFailureUpdateOne) SaveX(ctx context.Context) *ExtractFailure {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractFailureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractFailureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractFailureUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractfailure.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractFailureUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := extractfailure.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ExtractFailure.filename": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractFailureUpdateOne) sqlSave(ctx context.Context) (_node *ExtractFailure, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractfailure.Table, extractfailure.Columns, sqlgraph.NewFieldSpec(extractfailure.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractFailure.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractfailure.FieldID)
		for _, f := range fields {
			if !extractfailure.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractfailure.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(extractfailure.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(extractfailure.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(extractfailure.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(extractfailure.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(extractfailure.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractfailure.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ExtractFailure{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractfailure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
