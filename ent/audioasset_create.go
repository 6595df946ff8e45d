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
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/audioasset"
)

// AudioAssetCreate is the builder for creating a AudioAsset entity.
type AudioAssetCreate struct {
	config
	mutation *AudioAssetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFileName sets the "file_name" field.
func (_c *AudioAssetCreate) SetFileName(v string) *AudioAssetCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetStoredName sets the "stored_name" field.
func (_c *AudioAssetCreate) SetStoredName(v string) *AudioAssetCreate {
	_c.mutation.SetStoredName(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *AudioAssetCreate) SetContentType(v string) *AudioAssetCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *AudioAssetCreate) SetSizeBytes(v int64) *AudioAssetCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *AudioAssetCreate) SetUploadedAt(v time.Time) *AudioAssetCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *AudioAssetCreate) SetNillableUploadedAt(v *time.Time) *AudioAssetCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// Mutation returns the AudioAssetMutation object of the builder.
func (_c *AudioAssetCreate) Mutation() *AudioAssetMutation {
	return _c.mutation
}

// Save creates the AudioAsset in the database.
func (_c *AudioAssetCreate) Save(ctx context.Context) (*AudioAsset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AudioAssetCreate) SaveX(ctx context.Context) *AudioAsset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AudioAssetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AudioAssetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AudioAssetCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := audioasset.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AudioAssetCreate) check() error {
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "AudioAsset.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := audioasset.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "AudioAsset.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoredName(); !ok {
		return &ValidationError{Name: "stored_name", err: errors.New(`ent: missing required field "AudioAsset.stored_name"`)}
	}
	if v, ok := _c.mutation.StoredName(); ok {
		if err := audioasset.StoredNameValidator(v); err != nil {
			return &ValidationError{Name: "stored_name", err: fmt.Errorf(`ent: validator failed for field "AudioAsset.stored_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "AudioAsset.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := audioasset.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "AudioAsset.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "AudioAsset.size_bytes"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "AudioAsset.uploaded_at"`)}
	}
	return nil
}

func (_c *AudioAssetCreate) sqlSave(ctx context.Context) (*AudioAsset, error) {
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

func (_c *AudioAssetCreate) createSpec() (*AudioAsset, *sqlgraph.CreateSpec) {
	var (
		_node = &AudioAsset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(audioasset.Table, sqlgraph.NewFieldSpec(audioasset.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(audioasset.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.StoredName(); ok {
		_spec.SetField(audioasset.FieldStoredName, field.TypeString, value)
		_node.StoredName = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(audioasset.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(audioasset.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(audioasset.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AudioAsset.Create().
//		SetFileName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AudioAssetUpsert) {
//			SetFileName(v+v).
//		}).
//		Exec(ctx)
func (_c *AudioAssetCreate) OnConflict(opts ...sql.ConflictOption) *AudioAssetUpsertOne {
	_c.conflict = opts
	return &AudioAssetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AudioAsset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AudioAssetCreate) OnConflictColumns(columns ...string) *AudioAssetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AudioAssetUpsertOne{
		create: _c,
	}
}

type (
	// AudioAssetUpsertOne is the builder for "upsert"-ing
	//  one AudioAsset node.
	AudioAssetUpsertOne struct {
		create *AudioAssetCreate
	}

	// AudioAssetUpsert is the "OnConflict" setter.
	AudioAssetUpsert struct {
		*sql.UpdateSet
	}
)

// SetFileName sets the "file_name" field.
func (u *AudioAssetUpsert) SetFileName(v string) *AudioAssetUpsert {
	u.Set(audioasset.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *AudioAssetUpsert) UpdateFileName() *AudioAssetUpsert {
	u.SetExcluded(audioasset.FieldFileName)
	return u
}

// SetStoredName sets the "stored_name" field.
func (u *AudioAssetUpsert) SetStoredName(v string) *AudioAssetUpsert {
	u.Set(audioasset.FieldStoredName, v)
	return u
}

// UpdateStoredName sets the "stored_name" field to the value that was provided on create.
func (u *AudioAssetUpsert) UpdateStoredName() *AudioAssetUpsert {
	u.SetExcluded(audioasset.FieldStoredName)
	return u
}

// SetContentType sets the "content_type" field.
func (u *AudioAssetUpsert) SetContentType(v string) *AudioAssetUpsert {
	u.Set(audioasset.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *AudioAssetUpsert) UpdateContentType() *AudioAssetUpsert {
	u.SetExcluded(audioasset.FieldContentType)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AudioAssetUpsert) SetSizeBytes(v int64) *AudioAssetUpsert {
	u.Set(audioasset.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AudioAssetUpsert) UpdateSizeBytes() *AudioAssetUpsert {
	u.SetExcluded(audioasset.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AudioAssetUpsert) AddSizeBytes(v int64) *AudioAssetUpsert {
	u.Add(audioasset.FieldSizeBytes, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AudioAsset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AudioAssetUpsertOne) UpdateNewValues() *AudioAssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UploadedAt(); exists {
			s.SetIgnore(audioasset.FieldUploadedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AudioAsset.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AudioAssetUpsertOne) Ignore() *AudioAssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AudioAssetUpsertOne) DoNothing() *AudioAssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AudioAssetCreate.OnConflict
// documentation for more info.
func (u *AudioAssetUpsertOne) Update(set func(*AudioAssetUpsert)) *AudioAssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AudioAssetUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileName sets the "file_name" field.
func (u *AudioAssetUpsertOne) SetFileName(v string) *AudioAssetUpsertOne {
	return u.Update(func(s *AudioAssetUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *AudioAssetUpsertOne) UpdateFileName() *AudioAssetUpsertOne {
	return u.Update(func(s *AudioAssetUpsert) {
		s.UpdateFileName()
	})
}

// SetStoredName sets the "stored_name" field.
func (u *AudioAssetUpsertOne) SetStoredName(v string) *AudioAssetUpsertOne {
	return u.Update(func(s *AudioAssetUpsert) {
		s.SetStoredName(v)
	})
}

// UpdateStoredName sets the "stored_name" field to the value that was provided on create.
func (u *AudioAssetUpsertOne) UpdateStoredName() *AudioAssetUpsertOne {
	return u.Update(func(s *AudioAssetUpsert) {
		s.UpdateStoredName()
	})
}

// SetContentType sets the "content_type" field.
func (u *AudioAssetUpsertOne) SetContentType(v string) *AudioAssetUpsertOne {
	return u.Update(func(s *AudioAssetUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *AudioAssetUpsertOne) UpdateContentType() *AudioAssetUpsertOne {
	return u.Update(func(s *AudioAssetUpsert) {
		s.UpdateContentType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AudioAssetUpsertOne) SetSizeBytes(v int64) *AudioAssetUpsertOne {
	return u.Update(func(s *AudioAssetUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AudioAssetUpsertOne) AddSizeBytes(v int64) *AudioAssetUpsertOne {
	return u.Update(func(s *AudioAssetUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AudioAssetUpsertOne) UpdateSizeBytes() *AudioAssetUpsertOne {
	return u.Update(func(s *AudioAssetUpsert) {
		s.UpdateSizeBytes()
	})
}

// Exec executes the query.
func (u *AudioAssetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AudioAssetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AudioAssetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AudioAssetUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AudioAssetUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AudioAssetCreateBulk is the builder for creating many AudioAsset entities in bulk.
type AudioAssetCreateBulk struct {
	config
	err      error
	builders []*AudioAssetCreate
	conflict []sql.ConflictOption
}

// Save creates the AudioAsset entities in the database.
func (_c *AudioAssetCreateBulk) Save(ctx context.Context) ([]*AudioAsset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AudioAsset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AudioAssetMutation)
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
func (_c *AudioAssetCreateBulk) SaveX(ctx context.Context) []*AudioAsset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AudioAssetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AudioAssetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AudioAsset.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AudioAssetUpsert) {
//			SetFileName(v+v).
//		}).
//		Exec(ctx)
func (_c *AudioAssetCreateBulk) OnConflict(opts ...sql.ConflictOption) *AudioAssetUpsertBulk {
	_c.conflict = opts
	return &AudioAssetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AudioAsset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AudioAssetCreateBulk) OnConflictColumns(columns ...string) *AudioAssetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AudioAssetUpsertBulk{
		create: _c,
	}
}

// AudioAssetUpsertBulk is the builder for "upsert"-ing
// a bulk of AudioAsset nodes.
type AudioAssetUpsertBulk struct {
	create *AudioAssetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AudioAsset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AudioAssetUpsertBulk) UpdateNewValues() *AudioAssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UploadedAt(); exists {
				s.SetIgnore(audioasset.FieldUploadedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AudioAsset.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AudioAssetUpsertBulk) Ignore() *AudioAssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AudioAssetUpsertBulk) DoNothing() *AudioAssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AudioAssetCreateBulk.OnConflict
// documentation for more info.
func (u *AudioAssetUpsertBulk) Update(set func(*AudioAssetUpsert)) *AudioAssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AudioAssetUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileName sets the "file_name" field.
func (u *AudioAssetUpsertBulk) SetFileName(v string) *AudioAssetUpsertBulk {
	return u.Update(func(s *AudioAssetUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *AudioAssetUpsertBulk) UpdateFileName() *AudioAssetUpsertBulk {
	return u.Update(func(s *AudioAssetUpsert) {
		s.UpdateFileName()
	})
}

// SetStoredName sets the "stored_name" field.
func (u *AudioAssetUpsertBulk) SetStoredName(v string) *AudioAssetUpsertBulk {
	return u.Update(func(s *AudioAssetUpsert) {
		s.SetStoredName(v)
	})
}

// UpdateStoredName sets the "stored_name" field to the value that was provided on create.
func (u *AudioAssetUpsertBulk) UpdateStoredName() *AudioAssetUpsertBulk {
	return u.Update(func(s *AudioAssetUpsert) {
		s.UpdateStoredName()
	})
}

// SetContentType sets the "content_type" field.
func (u *AudioAssetUpsertBulk) SetContentType(v string) *AudioAssetUpsertBulk {
	return u.Update(func(s *AudioAssetUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *AudioAssetUpsertBulk) UpdateContentType() *AudioAssetUpsertBulk {
	return u.Update(func(s *AudioAssetUpsert) {
		s.UpdateContentType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AudioAssetUpsertBulk) SetSizeBytes(v int64) *AudioAssetUpsertBulk {
	return u.Update(func(s *AudioAssetUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AudioAssetUpsertBulk) AddSizeBytes(v int64) *AudioAssetUpsertBulk {
	return u.Update(func(s *AudioAssetUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AudioAssetUpsertBulk) UpdateSizeBytes() *AudioAssetUpsertBulk {
	return u.Update(func(s *AudioAssetUpsert) {
		s.UpdateSizeBytes()
	})
}

// Exec executes the query.
func (u *AudioAssetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AudioAssetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AudioAssetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AudioAssetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
