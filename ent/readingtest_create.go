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
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/readingtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
)

// ReadingTestCreate is the builder for creating a ReadingTest entity.
type ReadingTestCreate struct {
	config
	mutation *ReadingTestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *ReadingTestCreate) SetTitle(v string) *ReadingTestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ReadingTestCreate) SetDescription(v string) *ReadingTestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ReadingTestCreate) SetNillableDescription(v *string) *ReadingTestCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPassages sets the "passages" field.
func (_c *ReadingTestCreate) SetPassages(v []schema.ReadingPassage) *ReadingTestCreate {
	_c.mutation.SetPassages(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ReadingTestCreate) SetActive(v bool) *ReadingTestCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ReadingTestCreate) SetNillableActive(v *bool) *ReadingTestCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReadingTestCreate) SetCreatedAt(v time.Time) *ReadingTestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReadingTestCreate) SetNillableCreatedAt(v *time.Time) *ReadingTestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ReadingTestMutation object of the builder.
func (_c *ReadingTestCreate) Mutation() *ReadingTestMutation {
	return _c.mutation
}

// Save creates the ReadingTest in the database.
func (_c *ReadingTestCreate) Save(ctx context.Context) (*ReadingTest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReadingTestCreate) SaveX(ctx context.Context) *ReadingTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadingTestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadingTestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReadingTestCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := readingtest.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := readingtest.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := readingtest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReadingTestCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ReadingTest.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := readingtest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ReadingTest.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ReadingTest.description"`)}
	}
	if _, ok := _c.mutation.Passages(); !ok {
		return &ValidationError{Name: "passages", err: errors.New(`ent: missing required field "ReadingTest.passages"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ReadingTest.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReadingTest.created_at"`)}
	}
	return nil
}

func (_c *ReadingTestCreate) sqlSave(ctx context.Context) (*ReadingTest, error) {
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

func (_c *ReadingTestCreate) createSpec() (*ReadingTest, *sqlgraph.CreateSpec) {
	var (
		_node = &ReadingTest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(readingtest.Table, sqlgraph.NewFieldSpec(readingtest.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(readingtest.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(readingtest.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Passages(); ok {
		_spec.SetField(readingtest.FieldPassages, field.TypeJSON, value)
		_node.Passages = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(readingtest.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(readingtest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReadingTest.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReadingTestUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ReadingTestCreate) OnConflict(opts ...sql.ConflictOption) *ReadingTestUpsertOne {
	_c.conflict = opts
	return &ReadingTestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReadingTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReadingTestCreate) OnConflictColumns(columns ...string) *ReadingTestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReadingTestUpsertOne{
		create: _c,
	}
}

type (
	// ReadingTestUpsertOne is the builder for "upsert"-ing
	//  one ReadingTest node.
	ReadingTestUpsertOne struct {
		create *ReadingTestCreate
	}

	// ReadingTestUpsert is the "OnConflict" setter.
	ReadingTestUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ReadingTestUpsert) SetTitle(v string) *ReadingTestUpsert {
	u.Set(readingtest.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReadingTestUpsert) UpdateTitle() *ReadingTestUpsert {
	u.SetExcluded(readingtest.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ReadingTestUpsert) SetDescription(v string) *ReadingTestUpsert {
	u.Set(readingtest.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ReadingTestUpsert) UpdateDescription() *ReadingTestUpsert {
	u.SetExcluded(readingtest.FieldDescription)
	return u
}

// SetPassages sets the "passages" field.
func (u *ReadingTestUpsert) SetPassages(v []schema.ReadingPassage) *ReadingTestUpsert {
	u.Set(readingtest.FieldPassages, v)
	return u
}

// UpdatePassages sets the "passages" field to the value that was provided on create.
func (u *ReadingTestUpsert) UpdatePassages() *ReadingTestUpsert {
	u.SetExcluded(readingtest.FieldPassages)
	return u
}

// SetActive sets the "active" field.
func (u *ReadingTestUpsert) SetActive(v bool) *ReadingTestUpsert {
	u.Set(readingtest.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ReadingTestUpsert) UpdateActive() *ReadingTestUpsert {
	u.SetExcluded(readingtest.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReadingTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReadingTestUpsertOne) UpdateNewValues() *ReadingTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(readingtest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReadingTest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReadingTestUpsertOne) Ignore() *ReadingTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReadingTestUpsertOne) DoNothing() *ReadingTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReadingTestCreate.OnConflict
// documentation for more info.
func (u *ReadingTestUpsertOne) Update(set func(*ReadingTestUpsert)) *ReadingTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReadingTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ReadingTestUpsertOne) SetTitle(v string) *ReadingTestUpsertOne {
	return u.Update(func(s *ReadingTestUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReadingTestUpsertOne) UpdateTitle() *ReadingTestUpsertOne {
	return u.Update(func(s *ReadingTestUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ReadingTestUpsertOne) SetDescription(v string) *ReadingTestUpsertOne {
	return u.Update(func(s *ReadingTestUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ReadingTestUpsertOne) UpdateDescription() *ReadingTestUpsertOne {
	return u.Update(func(s *ReadingTestUpsert) {
		s.UpdateDescription()
	})
}

// SetPassages sets the "passages" field.
func (u *ReadingTestUpsertOne) SetPassages(v []schema.ReadingPassage) *ReadingTestUpsertOne {
	return u.Update(func(s *ReadingTestUpsert) {
		s.SetPassages(v)
	})
}

// UpdatePassages sets the "passages" field to the value that was provided on create.
func (u *ReadingTestUpsertOne) UpdatePassages() *ReadingTestUpsertOne {
	return u.Update(func(s *ReadingTestUpsert) {
		s.UpdatePassages()
	})
}

// SetActive sets the "active" field.
func (u *ReadingTestUpsertOne) SetActive(v bool) *ReadingTestUpsertOne {
	return u.Update(func(s *ReadingTestUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ReadingTestUpsertOne) UpdateActive() *ReadingTestUpsertOne {
	return u.Update(func(s *ReadingTestUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *ReadingTestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReadingTestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReadingTestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReadingTestUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReadingTestUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReadingTestCreateBulk is the builder for creating many ReadingTest entities in bulk.
type ReadingTestCreateBulk struct {
	config
	err      error
	builders []*ReadingTestCreate
	conflict []sql.ConflictOption
}

// Save creates the ReadingTest entities in the database.
func (_c *ReadingTestCreateBulk) Save(ctx context.Context) ([]*ReadingTest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReadingTest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReadingTestMutation)
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
func (_c *ReadingTestCreateBulk) SaveX(ctx context.Context) []*ReadingTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadingTestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadingTestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReadingTest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReadingTestUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ReadingTestCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReadingTestUpsertBulk {
	_c.conflict = opts
	return &ReadingTestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReadingTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReadingTestCreateBulk) OnConflictColumns(columns ...string) *ReadingTestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReadingTestUpsertBulk{
		create: _c,
	}
}

// ReadingTestUpsertBulk is the builder for "upsert"-ing
// a bulk of ReadingTest nodes.
type ReadingTestUpsertBulk struct {
	create *ReadingTestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReadingTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReadingTestUpsertBulk) UpdateNewValues() *ReadingTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(readingtest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReadingTest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReadingTestUpsertBulk) Ignore() *ReadingTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReadingTestUpsertBulk) DoNothing() *ReadingTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReadingTestCreateBulk.OnConflict
// documentation for more info.
func (u *ReadingTestUpsertBulk) Update(set func(*ReadingTestUpsert)) *ReadingTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReadingTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ReadingTestUpsertBulk) SetTitle(v string) *ReadingTestUpsertBulk {
	return u.Update(func(s *ReadingTestUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReadingTestUpsertBulk) UpdateTitle() *ReadingTestUpsertBulk {
	return u.Update(func(s *ReadingTestUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ReadingTestUpsertBulk) SetDescription(v string) *ReadingTestUpsertBulk {
	return u.Update(func(s *ReadingTestUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ReadingTestUpsertBulk) UpdateDescription() *ReadingTestUpsertBulk {
	return u.Update(func(s *ReadingTestUpsert) {
		s.UpdateDescription()
	})
}

// SetPassages sets the "passages" field.
func (u *ReadingTestUpsertBulk) SetPassages(v []schema.ReadingPassage) *ReadingTestUpsertBulk {
	return u.Update(func(s *ReadingTestUpsert) {
		s.SetPassages(v)
	})
}

// UpdatePassages sets the "passages" field to the value that was provided on create.
func (u *ReadingTestUpsertBulk) UpdatePassages() *ReadingTestUpsertBulk {
	return u.Update(func(s *ReadingTestUpsert) {
		s.UpdatePassages()
	})
}

// SetActive sets the "active" field.
func (u *ReadingTestUpsertBulk) SetActive(v bool) *ReadingTestUpsertBulk {
	return u.Update(func(s *ReadingTestUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ReadingTestUpsertBulk) UpdateActive() *ReadingTestUpsertBulk {
	return u.Update(func(s *ReadingTestUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *ReadingTestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReadingTestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReadingTestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReadingTestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
