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
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/speakingpart"
)

// SpeakingPartCreate is the builder for creating a SpeakingPart entity.
type SpeakingPartCreate struct {
	config
	mutation *SpeakingPartMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPartNumber sets the "part_number" field.
func (_c *SpeakingPartCreate) SetPartNumber(v int) *SpeakingPartCreate {
	_c.mutation.SetPartNumber(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *SpeakingPartCreate) SetTopic(v string) *SpeakingPartCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *SpeakingPartCreate) SetQuestions(v []string) *SpeakingPartCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetPrepSeconds sets the "prep_seconds" field.
func (_c *SpeakingPartCreate) SetPrepSeconds(v int) *SpeakingPartCreate {
	_c.mutation.SetPrepSeconds(v)
	return _c
}

// SetNillablePrepSeconds sets the "prep_seconds" field if the given value is not nil.
func (_c *SpeakingPartCreate) SetNillablePrepSeconds(v *int) *SpeakingPartCreate {
	if v != nil {
		_c.SetPrepSeconds(*v)
	}
	return _c
}

// SetSpeakSeconds sets the "speak_seconds" field.
func (_c *SpeakingPartCreate) SetSpeakSeconds(v int) *SpeakingPartCreate {
	_c.mutation.SetSpeakSeconds(v)
	return _c
}

// SetNillableSpeakSeconds sets the "speak_seconds" field if the given value is not nil.
func (_c *SpeakingPartCreate) SetNillableSpeakSeconds(v *int) *SpeakingPartCreate {
	if v != nil {
		_c.SetSpeakSeconds(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *SpeakingPartCreate) SetActive(v bool) *SpeakingPartCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *SpeakingPartCreate) SetNillableActive(v *bool) *SpeakingPartCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpeakingPartCreate) SetCreatedAt(v time.Time) *SpeakingPartCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpeakingPartCreate) SetNillableCreatedAt(v *time.Time) *SpeakingPartCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SpeakingPartMutation object of the builder.
func (_c *SpeakingPartCreate) Mutation() *SpeakingPartMutation {
	return _c.mutation
}

// Save creates the SpeakingPart in the database.
func (_c *SpeakingPartCreate) Save(ctx context.Context) (*SpeakingPart, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpeakingPartCreate) SaveX(ctx context.Context) *SpeakingPart {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpeakingPartCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpeakingPartCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpeakingPartCreate) defaults() {
	if _, ok := _c.mutation.PrepSeconds(); !ok {
		v := speakingpart.DefaultPrepSeconds
		_c.mutation.SetPrepSeconds(v)
	}
	if _, ok := _c.mutation.SpeakSeconds(); !ok {
		v := speakingpart.DefaultSpeakSeconds
		_c.mutation.SetSpeakSeconds(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := speakingpart.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := speakingpart.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpeakingPartCreate) check() error {
	if _, ok := _c.mutation.PartNumber(); !ok {
		return &ValidationError{Name: "part_number", err: errors.New(`ent: missing required field "SpeakingPart.part_number"`)}
	}
	if v, ok := _c.mutation.PartNumber(); ok {
		if err := speakingpart.PartNumberValidator(v); err != nil {
			return &ValidationError{Name: "part_number", err: fmt.Errorf(`ent: validator failed for field "SpeakingPart.part_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "SpeakingPart.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := speakingpart.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SpeakingPart.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "SpeakingPart.questions"`)}
	}
	if _, ok := _c.mutation.PrepSeconds(); !ok {
		return &ValidationError{Name: "prep_seconds", err: errors.New(`ent: missing required field "SpeakingPart.prep_seconds"`)}
	}
	if _, ok := _c.mutation.SpeakSeconds(); !ok {
		return &ValidationError{Name: "speak_seconds", err: errors.New(`ent: missing required field "SpeakingPart.speak_seconds"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "SpeakingPart.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SpeakingPart.created_at"`)}
	}
	return nil
}

func (_c *SpeakingPartCreate) sqlSave(ctx context.Context) (*SpeakingPart, error) {
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

func (_c *SpeakingPartCreate) createSpec() (*SpeakingPart, *sqlgraph.CreateSpec) {
	var (
		_node = &SpeakingPart{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(speakingpart.Table, sqlgraph.NewFieldSpec(speakingpart.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.PartNumber(); ok {
		_spec.SetField(speakingpart.FieldPartNumber, field.TypeInt, value)
		_node.PartNumber = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(speakingpart.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(speakingpart.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.PrepSeconds(); ok {
		_spec.SetField(speakingpart.FieldPrepSeconds, field.TypeInt, value)
		_node.PrepSeconds = value
	}
	if value, ok := _c.mutation.SpeakSeconds(); ok {
		_spec.SetField(speakingpart.FieldSpeakSeconds, field.TypeInt, value)
		_node.SpeakSeconds = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(speakingpart.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(speakingpart.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SpeakingPart.Create().
//		SetPartNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpeakingPartUpsert) {
//			SetPartNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *SpeakingPartCreate) OnConflict(opts ...sql.ConflictOption) *SpeakingPartUpsertOne {
	_c.conflict = opts
	return &SpeakingPartUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SpeakingPart.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpeakingPartCreate) OnConflictColumns(columns ...string) *SpeakingPartUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpeakingPartUpsertOne{
		create: _c,
	}
}

type (
	// SpeakingPartUpsertOne is the builder for "upsert"-ing
	//  one SpeakingPart node.
	SpeakingPartUpsertOne struct {
		create *SpeakingPartCreate
	}

	// SpeakingPartUpsert is the "OnConflict" setter.
	SpeakingPartUpsert struct {
		*sql.UpdateSet
	}
)

// SetPartNumber sets the "part_number" field.
func (u *SpeakingPartUpsert) SetPartNumber(v int) *SpeakingPartUpsert {
	u.Set(speakingpart.FieldPartNumber, v)
	return u
}

// UpdatePartNumber sets the "part_number" field to the value that was provided on create.
func (u *SpeakingPartUpsert) UpdatePartNumber() *SpeakingPartUpsert {
	u.SetExcluded(speakingpart.FieldPartNumber)
	return u
}

// AddPartNumber adds v to the "part_number" field.
func (u *SpeakingPartUpsert) AddPartNumber(v int) *SpeakingPartUpsert {
	u.Add(speakingpart.FieldPartNumber, v)
	return u
}

// SetTopic sets the "topic" field.
func (u *SpeakingPartUpsert) SetTopic(v string) *SpeakingPartUpsert {
	u.Set(speakingpart.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *SpeakingPartUpsert) UpdateTopic() *SpeakingPartUpsert {
	u.SetExcluded(speakingpart.FieldTopic)
	return u
}

// SetQuestions sets the "questions" field.
func (u *SpeakingPartUpsert) SetQuestions(v []string) *SpeakingPartUpsert {
	u.Set(speakingpart.FieldQuestions, v)
	return u
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *SpeakingPartUpsert) UpdateQuestions() *SpeakingPartUpsert {
	u.SetExcluded(speakingpart.FieldQuestions)
	return u
}

// SetPrepSeconds sets the "prep_seconds" field.
func (u *SpeakingPartUpsert) SetPrepSeconds(v int) *SpeakingPartUpsert {
	u.Set(speakingpart.FieldPrepSeconds, v)
	return u
}

// UpdatePrepSeconds sets the "prep_seconds" field to the value that was provided on create.
func (u *SpeakingPartUpsert) UpdatePrepSeconds() *SpeakingPartUpsert {
	u.SetExcluded(speakingpart.FieldPrepSeconds)
	return u
}

// AddPrepSeconds adds v to the "prep_seconds" field.
func (u *SpeakingPartUpsert) AddPrepSeconds(v int) *SpeakingPartUpsert {
	u.Add(speakingpart.FieldPrepSeconds, v)
	return u
}

// SetSpeakSeconds sets the "speak_seconds" field.
func (u *SpeakingPartUpsert) SetSpeakSeconds(v int) *SpeakingPartUpsert {
	u.Set(speakingpart.FieldSpeakSeconds, v)
	return u
}

// UpdateSpeakSeconds sets the "speak_seconds" field to the value that was provided on create.
func (u *SpeakingPartUpsert) UpdateSpeakSeconds() *SpeakingPartUpsert {
	u.SetExcluded(speakingpart.FieldSpeakSeconds)
	return u
}

// AddSpeakSeconds adds v to the "speak_seconds" field.
func (u *SpeakingPartUpsert) AddSpeakSeconds(v int) *SpeakingPartUpsert {
	u.Add(speakingpart.FieldSpeakSeconds, v)
	return u
}

// SetActive sets the "active" field.
func (u *SpeakingPartUpsert) SetActive(v bool) *SpeakingPartUpsert {
	u.Set(speakingpart.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SpeakingPartUpsert) UpdateActive() *SpeakingPartUpsert {
	u.SetExcluded(speakingpart.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SpeakingPart.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SpeakingPartUpsertOne) UpdateNewValues() *SpeakingPartUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(speakingpart.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SpeakingPart.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SpeakingPartUpsertOne) Ignore() *SpeakingPartUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpeakingPartUpsertOne) DoNothing() *SpeakingPartUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpeakingPartCreate.OnConflict
// documentation for more info.
func (u *SpeakingPartUpsertOne) Update(set func(*SpeakingPartUpsert)) *SpeakingPartUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpeakingPartUpsert{UpdateSet: update})
	}))
	return u
}

// SetPartNumber sets the "part_number" field.
func (u *SpeakingPartUpsertOne) SetPartNumber(v int) *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetPartNumber(v)
	})
}

// AddPartNumber adds v to the "part_number" field.
func (u *SpeakingPartUpsertOne) AddPartNumber(v int) *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.AddPartNumber(v)
	})
}

// UpdatePartNumber sets the "part_number" field to the value that was provided on create.
func (u *SpeakingPartUpsertOne) UpdatePartNumber() *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdatePartNumber()
	})
}

// SetTopic sets the "topic" field.
func (u *SpeakingPartUpsertOne) SetTopic(v string) *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *SpeakingPartUpsertOne) UpdateTopic() *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdateTopic()
	})
}

// SetQuestions sets the "questions" field.
func (u *SpeakingPartUpsertOne) SetQuestions(v []string) *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *SpeakingPartUpsertOne) UpdateQuestions() *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdateQuestions()
	})
}

// SetPrepSeconds sets the "prep_seconds" field.
func (u *SpeakingPartUpsertOne) SetPrepSeconds(v int) *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetPrepSeconds(v)
	})
}

// AddPrepSeconds adds v to the "prep_seconds" field.
func (u *SpeakingPartUpsertOne) AddPrepSeconds(v int) *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.AddPrepSeconds(v)
	})
}

// UpdatePrepSeconds sets the "prep_seconds" field to the value that was provided on create.
func (u *SpeakingPartUpsertOne) UpdatePrepSeconds() *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdatePrepSeconds()
	})
}

// SetSpeakSeconds sets the "speak_seconds" field.
func (u *SpeakingPartUpsertOne) SetSpeakSeconds(v int) *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetSpeakSeconds(v)
	})
}

// AddSpeakSeconds adds v to the "speak_seconds" field.
func (u *SpeakingPartUpsertOne) AddSpeakSeconds(v int) *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.AddSpeakSeconds(v)
	})
}

// UpdateSpeakSeconds sets the "speak_seconds" field to the value that was provided on create.
func (u *SpeakingPartUpsertOne) UpdateSpeakSeconds() *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdateSpeakSeconds()
	})
}

// SetActive sets the "active" field.
func (u *SpeakingPartUpsertOne) SetActive(v bool) *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SpeakingPartUpsertOne) UpdateActive() *SpeakingPartUpsertOne {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *SpeakingPartUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpeakingPartCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpeakingPartUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SpeakingPartUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SpeakingPartUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SpeakingPartCreateBulk is the builder for creating many SpeakingPart entities in bulk.
type SpeakingPartCreateBulk struct {
	config
	err      error
	builders []*SpeakingPartCreate
	conflict []sql.ConflictOption
}

// Save creates the SpeakingPart entities in the database.
func (_c *SpeakingPartCreateBulk) Save(ctx context.Context) ([]*SpeakingPart, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpeakingPart, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpeakingPartMutation)
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
func (_c *SpeakingPartCreateBulk) SaveX(ctx context.Context) []*SpeakingPart {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpeakingPartCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpeakingPartCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SpeakingPart.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpeakingPartUpsert) {
//			SetPartNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *SpeakingPartCreateBulk) OnConflict(opts ...sql.ConflictOption) *SpeakingPartUpsertBulk {
	_c.conflict = opts
	return &SpeakingPartUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SpeakingPart.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpeakingPartCreateBulk) OnConflictColumns(columns ...string) *SpeakingPartUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpeakingPartUpsertBulk{
		create: _c,
	}
}

// SpeakingPartUpsertBulk is the builder for "upsert"-ing
// a bulk of SpeakingPart nodes.
type SpeakingPartUpsertBulk struct {
	create *SpeakingPartCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SpeakingPart.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SpeakingPartUpsertBulk) UpdateNewValues() *SpeakingPartUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(speakingpart.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SpeakingPart.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SpeakingPartUpsertBulk) Ignore() *SpeakingPartUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpeakingPartUpsertBulk) DoNothing() *SpeakingPartUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpeakingPartCreateBulk.OnConflict
// documentation for more info.
func (u *SpeakingPartUpsertBulk) Update(set func(*SpeakingPartUpsert)) *SpeakingPartUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpeakingPartUpsert{UpdateSet: update})
	}))
	return u
}

// SetPartNumber sets the "part_number" field.
func (u *SpeakingPartUpsertBulk) SetPartNumber(v int) *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetPartNumber(v)
	})
}

// AddPartNumber adds v to the "part_number" field.
func (u *SpeakingPartUpsertBulk) AddPartNumber(v int) *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.AddPartNumber(v)
	})
}

// UpdatePartNumber sets the "part_number" field to the value that was provided on create.
func (u *SpeakingPartUpsertBulk) UpdatePartNumber() *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdatePartNumber()
	})
}

// SetTopic sets the "topic" field.
func (u *SpeakingPartUpsertBulk) SetTopic(v string) *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *SpeakingPartUpsertBulk) UpdateTopic() *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdateTopic()
	})
}

// SetQuestions sets the "questions" field.
func (u *SpeakingPartUpsertBulk) SetQuestions(v []string) *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *SpeakingPartUpsertBulk) UpdateQuestions() *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdateQuestions()
	})
}

// SetPrepSeconds sets the "prep_seconds" field.
func (u *SpeakingPartUpsertBulk) SetPrepSeconds(v int) *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetPrepSeconds(v)
	})
}

// AddPrepSeconds adds v to the "prep_seconds" field.
func (u *SpeakingPartUpsertBulk) AddPrepSeconds(v int) *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.AddPrepSeconds(v)
	})
}

// UpdatePrepSeconds sets the "prep_seconds" field to the value that was provided on create.
func (u *SpeakingPartUpsertBulk) UpdatePrepSeconds() *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdatePrepSeconds()
	})
}

// SetSpeakSeconds sets the "speak_seconds" field.
func (u *SpeakingPartUpsertBulk) SetSpeakSeconds(v int) *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetSpeakSeconds(v)
	})
}

// AddSpeakSeconds adds v to the "speak_seconds" field.
func (u *SpeakingPartUpsertBulk) AddSpeakSeconds(v int) *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.AddSpeakSeconds(v)
	})
}

// UpdateSpeakSeconds sets the "speak_seconds" field to the value that was provided on create.
func (u *SpeakingPartUpsertBulk) UpdateSpeakSeconds() *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdateSpeakSeconds()
	})
}

// SetActive sets the "active" field.
func (u *SpeakingPartUpsertBulk) SetActive(v bool) *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SpeakingPartUpsertBulk) UpdateActive() *SpeakingPartUpsertBulk {
	return u.Update(func(s *SpeakingPartUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *SpeakingPartUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SpeakingPartCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpeakingPartCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpeakingPartUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
