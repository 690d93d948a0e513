// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aferrand/decisions-collector/gen/ent/extractfailure"
	"github.com/aferrand/decisions-collector/gen/ent/predicate"
)

// ExtractFailureDelete is the builder for deleting a ExtractFailure entity.
type ExtractFailureDelete struct {
	config
	hooks    []Hook
	mutation *ExtractFailureMutation
}

// Where appends a list predicates to the ExtractFailureDelete builder.
func (_d *ExtractFailureDelete) Where(ps ...predicate.ExtractFailure) *ExtractFailureDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractFailureDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractFailureDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractFailureDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractfailure.Table, sqlgraph.NewFieldSpec(extractfailure.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractFailureDeleteOne is the builder for deleting a single ExtractFailure entity.
type ExtractFailureDeleteOne struct {
	_d *ExtractFailureDelete
}

// Where appends a list predicates to the ExtractFailureDelete builder.
func (_d *ExtractFailureDeleteOne) Where(ps ...predicate.ExtractFailure) *ExtractFailureDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractFailureDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractfailure.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractFailureDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
