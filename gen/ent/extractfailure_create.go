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
)

// ExtractFailureCreate is the builder for creating a ExtractFailure entity.
type ExtractFailureCreate struct {
	config
	mutation *ExtractFailureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFilename sets the "filename" field.
func (_c *ExtractFailureCreate) SetFilename(v string) *ExtractFailureCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ExtractFailureCreate) SetAttempts(v int) *ExtractFailureCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ExtractFailureCreate) SetNillableAttempts(v *int) *ExtractFailureCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ExtractFailureCreate) SetLastError(v string) *ExtractFailureCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ExtractFailureCreate) SetNillableLastError(v *string) *ExtractFailureCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractFailureCreate) SetUpdatedAt(v time.Time) *ExtractFailureCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractFailureCreate) SetNillableUpdatedAt(v *time.Time) *ExtractFailureCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ExtractFailureMutation object of the builder.
func (_c *ExtractFailureCreate) Mutation() *ExtractFailureMutation {
	return _c.mutation
}

// Save creates the ExtractFailure in the database.
func (_c *ExtractFailureCreate) Save(ctx context.Context) (*ExtractFailure, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractFailureCreate) SaveX(ctx context.Context) *ExtractFailure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractFailureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractFailureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractFailureCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := extractfailure.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractfailure.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractFailureCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ExtractFailure.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := extractfailure.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ExtractFailure.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ExtractFailure.attempts"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractFailure.updated_at"`)}
	}
	return nil
}

func (_c *ExtractFailureCreate) sqlSave(ctx context.Context) (*ExtractFailure, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractFailureCreate) createSpec() (*ExtractFailure, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractFailure{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractfailure.Table, sqlgraph.NewFieldSpec(extractfailure.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(extractfailure.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(extractfailure.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(extractfailure.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractfailure.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractFailure.Create().
//		SetFilename(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractFailureUpsert) {
//			SetFilename(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractFailureCreate) OnConflict(opts ...sql.ConflictOption) *ExtractFailureUpsertOne {
	_c.conflict = opts
	return &ExtractFailureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractFailure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractFailureCreate) OnConflictColumns(columns ...string) *ExtractFailureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractFailureUpsertOne{
		create: _c,
	}
}

type (
	// ExtractFailureUpsertOne is the builder for "upsert"-ing
	//  one ExtractFailure node.
	ExtractFailureUpsertOne struct {
		create *ExtractFailureCreate
	}

	// ExtractFailureUpsert is the "OnConflict" setter.
	ExtractFailureUpsert struct {
		*sql.UpdateSet
	}
)

// SetFilename sets the "filename" field.
func (u *ExtractFailureUpsert) SetFilename(v string) *ExtractFailureUpsert {
	u.Set(extractfailure.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *ExtractFailureUpsert) UpdateFilename() *ExtractFailureUpsert {
	u.SetExcluded(extractfailure.FieldFilename)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *ExtractFailureUpsert) SetAttempts(v int) *ExtractFailureUpsert {
	u.Set(extractfailure.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ExtractFailureUpsert) UpdateAttempts() *ExtractFailureUpsert {
	u.SetExcluded(extractfailure.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *ExtractFailureUpsert) AddAttempts(v int) *ExtractFailureUpsert {
	u.Add(extractfailure.FieldAttempts, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *ExtractFailureUpsert) SetLastError(v string) *ExtractFailureUpsert {
	u.Set(extractfailure.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ExtractFailureUpsert) UpdateLastError() *ExtractFailureUpsert {
	u.SetExcluded(extractfailure.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *ExtractFailureUpsert) ClearLastError() *ExtractFailureUpsert {
	u.SetNull(extractfailure.FieldLastError)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractFailureUpsert) SetUpdatedAt(v time.Time) *ExtractFailureUpsert {
	u.Set(extractfailure.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractFailureUpsert) UpdateUpdatedAt() *ExtractFailureUpsert {
	u.SetExcluded(extractfailure.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExtractFailure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtractFailureUpsertOne) UpdateNewValues() *ExtractFailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractFailure.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractFailureUpsertOne) Ignore() *ExtractFailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractFailureUpsertOne) DoNothing() *ExtractFailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractFailureCreate.OnConflict
// documentation for more info.
func (u *ExtractFailureUpsertOne) Update(set func(*ExtractFailureUpsert)) *ExtractFailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractFailureUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *ExtractFailureUpsertOne) SetFilename(v string) *ExtractFailureUpsertOne {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *ExtractFailureUpsertOne) UpdateFilename() *ExtractFailureUpsertOne {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.UpdateFilename()
	})
}

// SetAttempts sets the "attempts" field.
func (u *ExtractFailureUpsertOne) SetAttempts(v int) *ExtractFailureUpsertOne {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *ExtractFailureUpsertOne) AddAttempts(v int) *ExtractFailureUpsertOne {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ExtractFailureUpsertOne) UpdateAttempts() *ExtractFailureUpsertOne {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastError sets the "last_error" field.
func (u *ExtractFailureUpsertOne) SetLastError(v string) *ExtractFailureUpsertOne {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ExtractFailureUpsertOne) UpdateLastError() *ExtractFailureUpsertOne {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ExtractFailureUpsertOne) ClearLastError() *ExtractFailureUpsertOne {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractFailureUpsertOne) SetUpdatedAt(v time.Time) *ExtractFailureUpsertOne {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractFailureUpsertOne) UpdateUpdatedAt() *ExtractFailureUpsertOne {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtractFailureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractFailureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractFailureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractFailureUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractFailureUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractFailureCreateBulk is the builder for creating many ExtractFailure entities in bulk.
type ExtractFailureCreateBulk struct {
	config
	err      error
	builders []*ExtractFailureCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractFailure entities in the database.
func (_c *ExtractFailureCreateBulk) Save(ctx context.Context) ([]*ExtractFailure, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractFailure, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractFailureMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ExtractFailureCreateBulk) SaveX(ctx context.Context) []*ExtractFailure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractFailureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractFailureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractFailure.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractFailureUpsert) {
//			SetFilename(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractFailureCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractFailureUpsertBulk {
	_c.conflict = opts
	return &ExtractFailureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractFailure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractFailureCreateBulk) OnConflictColumns(columns ...string) *ExtractFailureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractFailureUpsertBulk{
		create: _c,
	}
}

// ExtractFailureUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractFailure nodes.
type ExtractFailureUpsertBulk struct {
	create *ExtractFailureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractFailure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtractFailureUpsertBulk) UpdateNewValues() *ExtractFailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractFailure.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractFailureUpsertBulk) Ignore() *ExtractFailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractFailureUpsertBulk) DoNothing() *ExtractFailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractFailureCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractFailureUpsertBulk) Update(set func(*ExtractFailureUpsert)) *ExtractFailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractFailureUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *ExtractFailureUpsertBulk) SetFilename(v string) *ExtractFailureUpsertBulk {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *ExtractFailureUpsertBulk) UpdateFilename() *ExtractFailureUpsertBulk {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.UpdateFilename()
	})
}

// SetAttempts sets the "attempts" field.
func (u *ExtractFailureUpsertBulk) SetAttempts(v int) *ExtractFailureUpsertBulk {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *ExtractFailureUpsertBulk) AddAttempts(v int) *ExtractFailureUpsertBulk {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ExtractFailureUpsertBulk) UpdateAttempts() *ExtractFailureUpsertBulk {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastError sets the "last_error" field.
func (u *ExtractFailureUpsertBulk) SetLastError(v string) *ExtractFailureUpsertBulk {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ExtractFailureUpsertBulk) UpdateLastError() *ExtractFailureUpsertBulk {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ExtractFailureUpsertBulk) ClearLastError() *ExtractFailureUpsertBulk {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractFailureUpsertBulk) SetUpdatedAt(v time.Time) *ExtractFailureUpsertBulk {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractFailureUpsertBulk) UpdateUpdatedAt() *ExtractFailureUpsertBulk {
	return u.Update(func(s *ExtractFailureUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtractFailureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractFailureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractFailureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractFailureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
