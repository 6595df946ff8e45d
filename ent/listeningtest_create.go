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
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/listeningtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
)

// ListeningTestCreate is the builder for creating a ListeningTest entity.
type ListeningTestCreate struct {
	config
	mutation *ListeningTestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *ListeningTestCreate) SetTitle(v string) *ListeningTestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ListeningTestCreate) SetDescription(v string) *ListeningTestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ListeningTestCreate) SetNillableDescription(v *string) *ListeningTestCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAudioAssetID sets the "audio_asset_id" field.
func (_c *ListeningTestCreate) SetAudioAssetID(v int) *ListeningTestCreate {
	_c.mutation.SetAudioAssetID(v)
	return _c
}

// SetNillableAudioAssetID sets the "audio_asset_id" field if the given value is not nil.
func (_c *ListeningTestCreate) SetNillableAudioAssetID(v *int) *ListeningTestCreate {
	if v != nil {
		_c.SetAudioAssetID(*v)
	}
	return _c
}

// SetSections sets the "sections" field.
func (_c *ListeningTestCreate) SetSections(v []schema.ListeningSection) *ListeningTestCreate {
	_c.mutation.SetSections(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ListeningTestCreate) SetActive(v bool) *ListeningTestCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ListeningTestCreate) SetNillableActive(v *bool) *ListeningTestCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ListeningTestCreate) SetCreatedAt(v time.Time) *ListeningTestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ListeningTestCreate) SetNillableCreatedAt(v *time.Time) *ListeningTestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ListeningTestMutation object of the builder.
func (_c *ListeningTestCreate) Mutation() *ListeningTestMutation {
	return _c.mutation
}

// Save creates the ListeningTest in the database.
func (_c *ListeningTestCreate) Save(ctx context.Context) (*ListeningTest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ListeningTestCreate) SaveX(ctx context.Context) *ListeningTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListeningTestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListeningTestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ListeningTestCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := listeningtest.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := listeningtest.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := listeningtest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ListeningTestCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ListeningTest.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := listeningtest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ListeningTest.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ListeningTest.description"`)}
	}
	if _, ok := _c.mutation.Sections(); !ok {
		return &ValidationError{Name: "sections", err: errors.New(`ent: missing required field "ListeningTest.sections"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ListeningTest.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ListeningTest.created_at"`)}
	}
	return nil
}

func (_c *ListeningTestCreate) sqlSave(ctx context.Context) (*ListeningTest, error) {
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

func (_c *ListeningTestCreate) createSpec() (*ListeningTest, *sqlgraph.CreateSpec) {
	var (
		_node = &ListeningTest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(listeningtest.Table, sqlgraph.NewFieldSpec(listeningtest.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(listeningtest.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(listeningtest.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AudioAssetID(); ok {
		_spec.SetField(listeningtest.FieldAudioAssetID, field.TypeInt, value)
		_node.AudioAssetID = value
	}
	if value, ok := _c.mutation.Sections(); ok {
		_spec.SetField(listeningtest.FieldSections, field.TypeJSON, value)
		_node.Sections = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(listeningtest.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(listeningtest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ListeningTest.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ListeningTestUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ListeningTestCreate) OnConflict(opts ...sql.ConflictOption) *ListeningTestUpsertOne {
	_c.conflict = opts
	return &ListeningTestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ListeningTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ListeningTestCreate) OnConflictColumns(columns ...string) *ListeningTestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ListeningTestUpsertOne{
		create: _c,
	}
}

type (
	// ListeningTestUpsertOne is the builder for "upsert"-ing
	//  one ListeningTest node.
	ListeningTestUpsertOne struct {
		create *ListeningTestCreate
	}

	// ListeningTestUpsert is the "OnConflict" setter.
	ListeningTestUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ListeningTestUpsert) SetTitle(v string) *ListeningTestUpsert {
	u.Set(listeningtest.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ListeningTestUpsert) UpdateTitle() *ListeningTestUpsert {
	u.SetExcluded(listeningtest.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ListeningTestUpsert) SetDescription(v string) *ListeningTestUpsert {
	u.Set(listeningtest.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ListeningTestUpsert) UpdateDescription() *ListeningTestUpsert {
	u.SetExcluded(listeningtest.FieldDescription)
	return u
}

// SetAudioAssetID sets the "audio_asset_id" field.
func (u *ListeningTestUpsert) SetAudioAssetID(v int) *ListeningTestUpsert {
	u.Set(listeningtest.FieldAudioAssetID, v)
	return u
}

// UpdateAudioAssetID sets the "audio_asset_id" field to the value that was provided on create.
func (u *ListeningTestUpsert) UpdateAudioAssetID() *ListeningTestUpsert {
	u.SetExcluded(listeningtest.FieldAudioAssetID)
	return u
}

// AddAudioAssetID adds v to the "audio_asset_id" field.
func (u *ListeningTestUpsert) AddAudioAssetID(v int) *ListeningTestUpsert {
	u.Add(listeningtest.FieldAudioAssetID, v)
	return u
}

// ClearAudioAssetID clears the value of the "audio_asset_id" field.
func (u *ListeningTestUpsert) ClearAudioAssetID() *ListeningTestUpsert {
	u.SetNull(listeningtest.FieldAudioAssetID)
	return u
}

// SetSections sets the "sections" field.
func (u *ListeningTestUpsert) SetSections(v []schema.ListeningSection) *ListeningTestUpsert {
	u.Set(listeningtest.FieldSections, v)
	return u
}

// UpdateSections sets the "sections" field to the value that was provided on create.
func (u *ListeningTestUpsert) UpdateSections() *ListeningTestUpsert {
	u.SetExcluded(listeningtest.FieldSections)
	return u
}

// SetActive sets the "active" field.
func (u *ListeningTestUpsert) SetActive(v bool) *ListeningTestUpsert {
	u.Set(listeningtest.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ListeningTestUpsert) UpdateActive() *ListeningTestUpsert {
	u.SetExcluded(listeningtest.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ListeningTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ListeningTestUpsertOne) UpdateNewValues() *ListeningTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(listeningtest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ListeningTest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ListeningTestUpsertOne) Ignore() *ListeningTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ListeningTestUpsertOne) DoNothing() *ListeningTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ListeningTestCreate.OnConflict
// documentation for more info.
func (u *ListeningTestUpsertOne) Update(set func(*ListeningTestUpsert)) *ListeningTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ListeningTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ListeningTestUpsertOne) SetTitle(v string) *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ListeningTestUpsertOne) UpdateTitle() *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ListeningTestUpsertOne) SetDescription(v string) *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ListeningTestUpsertOne) UpdateDescription() *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.UpdateDescription()
	})
}

// SetAudioAssetID sets the "audio_asset_id" field.
func (u *ListeningTestUpsertOne) SetAudioAssetID(v int) *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.SetAudioAssetID(v)
	})
}

// AddAudioAssetID adds v to the "audio_asset_id" field.
func (u *ListeningTestUpsertOne) AddAudioAssetID(v int) *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.AddAudioAssetID(v)
	})
}

// UpdateAudioAssetID sets the "audio_asset_id" field to the value that was provided on create.
func (u *ListeningTestUpsertOne) UpdateAudioAssetID() *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.UpdateAudioAssetID()
	})
}

// ClearAudioAssetID clears the value of the "audio_asset_id" field.
func (u *ListeningTestUpsertOne) ClearAudioAssetID() *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.ClearAudioAssetID()
	})
}

// SetSections sets the "sections" field.
func (u *ListeningTestUpsertOne) SetSections(v []schema.ListeningSection) *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.SetSections(v)
	})
}

// UpdateSections sets the "sections" field to the value that was provided on create.
func (u *ListeningTestUpsertOne) UpdateSections() *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.UpdateSections()
	})
}

// SetActive sets the "active" field.
func (u *ListeningTestUpsertOne) SetActive(v bool) *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ListeningTestUpsertOne) UpdateActive() *ListeningTestUpsertOne {
	return u.Update(func(s *ListeningTestUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *ListeningTestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ListeningTestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ListeningTestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ListeningTestUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ListeningTestUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ListeningTestCreateBulk is the builder for creating many ListeningTest entities in bulk.
type ListeningTestCreateBulk struct {
	config
	err      error
	builders []*ListeningTestCreate
	conflict []sql.ConflictOption
}

// Save creates the ListeningTest entities in the database.
func (_c *ListeningTestCreateBulk) Save(ctx context.Context) ([]*ListeningTest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ListeningTest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ListeningTestMutation)
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
func (_c *ListeningTestCreateBulk) SaveX(ctx context.Context) []*ListeningTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListeningTestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListeningTestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ListeningTest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ListeningTestUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ListeningTestCreateBulk) OnConflict(opts ...sql.ConflictOption) *ListeningTestUpsertBulk {
	_c.conflict = opts
	return &ListeningTestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ListeningTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ListeningTestCreateBulk) OnConflictColumns(columns ...string) *ListeningTestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ListeningTestUpsertBulk{
		create: _c,
	}
}

// ListeningTestUpsertBulk is the builder for "upsert"-ing
// a bulk of ListeningTest nodes.
type ListeningTestUpsertBulk struct {
	create *ListeningTestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ListeningTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ListeningTestUpsertBulk) UpdateNewValues() *ListeningTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(listeningtest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ListeningTest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ListeningTestUpsertBulk) Ignore() *ListeningTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ListeningTestUpsertBulk) DoNothing() *ListeningTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ListeningTestCreateBulk.OnConflict
// documentation for more info.
func (u *ListeningTestUpsertBulk) Update(set func(*ListeningTestUpsert)) *ListeningTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ListeningTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ListeningTestUpsertBulk) SetTitle(v string) *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ListeningTestUpsertBulk) UpdateTitle() *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ListeningTestUpsertBulk) SetDescription(v string) *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ListeningTestUpsertBulk) UpdateDescription() *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.UpdateDescription()
	})
}

// SetAudioAssetID sets the "audio_asset_id" field.
func (u *ListeningTestUpsertBulk) SetAudioAssetID(v int) *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.SetAudioAssetID(v)
	})
}

// AddAudioAssetID adds v to the "audio_asset_id" field.
func (u *ListeningTestUpsertBulk) AddAudioAssetID(v int) *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.AddAudioAssetID(v)
	})
}

// UpdateAudioAssetID sets the "audio_asset_id" field to the value that was provided on create.
func (u *ListeningTestUpsertBulk) UpdateAudioAssetID() *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.UpdateAudioAssetID()
	})
}

// ClearAudioAssetID clears the value of the "audio_asset_id" field.
func (u *ListeningTestUpsertBulk) ClearAudioAssetID() *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.ClearAudioAssetID()
	})
}

// SetSections sets the "sections" field.
func (u *ListeningTestUpsertBulk) SetSections(v []schema.ListeningSection) *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.SetSections(v)
	})
}

// UpdateSections sets the "sections" field to the value that was provided on create.
func (u *ListeningTestUpsertBulk) UpdateSections() *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.UpdateSections()
	})
}

// SetActive sets the "active" field.
func (u *ListeningTestUpsertBulk) SetActive(v bool) *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ListeningTestUpsertBulk) UpdateActive() *ListeningTestUpsertBulk {
	return u.Update(func(s *ListeningTestUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *ListeningTestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ListeningTestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ListeningTestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ListeningTestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
