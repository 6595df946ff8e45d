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
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/evaluationevent"
)

// EvaluationEventCreate is the builder for creating a EvaluationEvent entity.
type EvaluationEventCreate struct {
	config
	mutation *EvaluationEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *EvaluationEventCreate) SetSequence(v int64) *EvaluationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvaluationEventCreate) SetTimestamp(v time.Time) *EvaluationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableTimestamp(v *time.Time) *EvaluationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *EvaluationEventCreate) SetSessionID(v string) *EvaluationEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *EvaluationEventCreate) SetSection(v string) *EvaluationEventCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetTaskRef sets the "task_ref" field.
func (_c *EvaluationEventCreate) SetTaskRef(v string) *EvaluationEventCreate {
	_c.mutation.SetTaskRef(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *EvaluationEventCreate) SetIdempotencyKey(v string) *EvaluationEventCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetBand sets the "band" field.
func (_c *EvaluationEventCreate) SetBand(v float64) *EvaluationEventCreate {
	_c.mutation.SetBand(v)
	return _c
}

// SetCriteria sets the "criteria" field.
func (_c *EvaluationEventCreate) SetCriteria(v map[string]float64) *EvaluationEventCreate {
	_c.mutation.SetCriteria(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *EvaluationEventCreate) SetFeedback(v string) *EvaluationEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableFeedback(v *string) *EvaluationEventCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *EvaluationEventCreate) SetModel(v string) *EvaluationEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableModel(v *string) *EvaluationEventCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_c *EvaluationEventCreate) Mutation() *EvaluationEventMutation {
	return _c.mutation
}

// Save creates the EvaluationEvent in the database.
func (_c *EvaluationEventCreate) Save(ctx context.Context) (*EvaluationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationEventCreate) SaveX(ctx context.Context) *EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := evaluationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		v := evaluationevent.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := evaluationevent.DefaultModel
		_c.mutation.SetModel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvaluationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvaluationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "EvaluationEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := evaluationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "EvaluationEvent.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := evaluationevent.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskRef(); !ok {
		return &ValidationError{Name: "task_ref", err: errors.New(`ent: missing required field "EvaluationEvent.task_ref"`)}
	}
	if v, ok := _c.mutation.TaskRef(); ok {
		if err := evaluationevent.TaskRefValidator(v); err != nil {
			return &ValidationError{Name: "task_ref", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.task_ref": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "EvaluationEvent.idempotency_key"`)}
	}
	if v, ok := _c.mutation.IdempotencyKey(); ok {
		if err := evaluationevent.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.idempotency_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Band(); !ok {
		return &ValidationError{Name: "band", err: errors.New(`ent: missing required field "EvaluationEvent.band"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "EvaluationEvent.feedback"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "EvaluationEvent.model"`)}
	}
	return nil
}

func (_c *EvaluationEventCreate) sqlSave(ctx context.Context) (*EvaluationEvent, error) {
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

func (_c *EvaluationEventCreate) createSpec() (*EvaluationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationevent.Table, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evaluationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evaluationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(evaluationevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(evaluationevent.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.TaskRef(); ok {
		_spec.SetField(evaluationevent.FieldTaskRef, field.TypeString, value)
		_node.TaskRef = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(evaluationevent.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.Band(); ok {
		_spec.SetField(evaluationevent.FieldBand, field.TypeFloat64, value)
		_node.Band = value
	}
	if value, ok := _c.mutation.Criteria(); ok {
		_spec.SetField(evaluationevent.FieldCriteria, field.TypeJSON, value)
		_node.Criteria = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(evaluationevent.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(evaluationevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationEventCreate) OnConflict(opts ...sql.ConflictOption) *EvaluationEventUpsertOne {
	_c.conflict = opts
	return &EvaluationEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationEventCreate) OnConflictColumns(columns ...string) *EvaluationEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationEventUpsertOne{
		create: _c,
	}
}

type (
	// EvaluationEventUpsertOne is the builder for "upsert"-ing
	//  one EvaluationEvent node.
	EvaluationEventUpsertOne struct {
		create *EvaluationEventCreate
	}

	// EvaluationEventUpsert is the "OnConflict" setter.
	EvaluationEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *EvaluationEventUpsert) SetSessionID(v string) *EvaluationEventUpsert {
	u.Set(evaluationevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *EvaluationEventUpsert) UpdateSessionID() *EvaluationEventUpsert {
	u.SetExcluded(evaluationevent.FieldSessionID)
	return u
}

// SetSection sets the "section" field.
func (u *EvaluationEventUpsert) SetSection(v string) *EvaluationEventUpsert {
	u.Set(evaluationevent.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *EvaluationEventUpsert) UpdateSection() *EvaluationEventUpsert {
	u.SetExcluded(evaluationevent.FieldSection)
	return u
}

// SetTaskRef sets the "task_ref" field.
func (u *EvaluationEventUpsert) SetTaskRef(v string) *EvaluationEventUpsert {
	u.Set(evaluationevent.FieldTaskRef, v)
	return u
}

// UpdateTaskRef sets the "task_ref" field to the value that was provided on create.
func (u *EvaluationEventUpsert) UpdateTaskRef() *EvaluationEventUpsert {
	u.SetExcluded(evaluationevent.FieldTaskRef)
	return u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *EvaluationEventUpsert) SetIdempotencyKey(v string) *EvaluationEventUpsert {
	u.Set(evaluationevent.FieldIdempotencyKey, v)
	return u
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *EvaluationEventUpsert) UpdateIdempotencyKey() *EvaluationEventUpsert {
	u.SetExcluded(evaluationevent.FieldIdempotencyKey)
	return u
}

// SetBand sets the "band" field.
func (u *EvaluationEventUpsert) SetBand(v float64) *EvaluationEventUpsert {
	u.Set(evaluationevent.FieldBand, v)
	return u
}

// UpdateBand sets the "band" field to the value that was provided on create.
func (u *EvaluationEventUpsert) UpdateBand() *EvaluationEventUpsert {
	u.SetExcluded(evaluationevent.FieldBand)
	return u
}

// AddBand adds v to the "band" field.
func (u *EvaluationEventUpsert) AddBand(v float64) *EvaluationEventUpsert {
	u.Add(evaluationevent.FieldBand, v)
	return u
}

// SetCriteria sets the "criteria" field.
func (u *EvaluationEventUpsert) SetCriteria(v map[string]float64) *EvaluationEventUpsert {
	u.Set(evaluationevent.FieldCriteria, v)
	return u
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *EvaluationEventUpsert) UpdateCriteria() *EvaluationEventUpsert {
	u.SetExcluded(evaluationevent.FieldCriteria)
	return u
}

// ClearCriteria clears the value of the "criteria" field.
func (u *EvaluationEventUpsert) ClearCriteria() *EvaluationEventUpsert {
	u.SetNull(evaluationevent.FieldCriteria)
	return u
}

// SetFeedback sets the "feedback" field.
func (u *EvaluationEventUpsert) SetFeedback(v string) *EvaluationEventUpsert {
	u.Set(evaluationevent.FieldFeedback, v)
	return u
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *EvaluationEventUpsert) UpdateFeedback() *EvaluationEventUpsert {
	u.SetExcluded(evaluationevent.FieldFeedback)
	return u
}

// SetModel sets the "model" field.
func (u *EvaluationEventUpsert) SetModel(v string) *EvaluationEventUpsert {
	u.Set(evaluationevent.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *EvaluationEventUpsert) UpdateModel() *EvaluationEventUpsert {
	u.SetExcluded(evaluationevent.FieldModel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.EvaluationEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EvaluationEventUpsertOne) UpdateNewValues() *EvaluationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(evaluationevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(evaluationevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvaluationEventUpsertOne) Ignore() *EvaluationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationEventUpsertOne) DoNothing() *EvaluationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationEventCreate.OnConflict
// documentation for more info.
func (u *EvaluationEventUpsertOne) Update(set func(*EvaluationEventUpsert)) *EvaluationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *EvaluationEventUpsertOne) SetSessionID(v string) *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *EvaluationEventUpsertOne) UpdateSessionID() *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetSection sets the "section" field.
func (u *EvaluationEventUpsertOne) SetSection(v string) *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *EvaluationEventUpsertOne) UpdateSection() *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateSection()
	})
}

// SetTaskRef sets the "task_ref" field.
func (u *EvaluationEventUpsertOne) SetTaskRef(v string) *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetTaskRef(v)
	})
}

// UpdateTaskRef sets the "task_ref" field to the value that was provided on create.
func (u *EvaluationEventUpsertOne) UpdateTaskRef() *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateTaskRef()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *EvaluationEventUpsertOne) SetIdempotencyKey(v string) *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *EvaluationEventUpsertOne) UpdateIdempotencyKey() *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// SetBand sets the "band" field.
func (u *EvaluationEventUpsertOne) SetBand(v float64) *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetBand(v)
	})
}

// AddBand adds v to the "band" field.
func (u *EvaluationEventUpsertOne) AddBand(v float64) *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.AddBand(v)
	})
}

// UpdateBand sets the "band" field to the value that was provided on create.
func (u *EvaluationEventUpsertOne) UpdateBand() *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateBand()
	})
}

// SetCriteria sets the "criteria" field.
func (u *EvaluationEventUpsertOne) SetCriteria(v map[string]float64) *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetCriteria(v)
	})
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *EvaluationEventUpsertOne) UpdateCriteria() *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateCriteria()
	})
}

// ClearCriteria clears the value of the "criteria" field.
func (u *EvaluationEventUpsertOne) ClearCriteria() *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.ClearCriteria()
	})
}

// SetFeedback sets the "feedback" field.
func (u *EvaluationEventUpsertOne) SetFeedback(v string) *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *EvaluationEventUpsertOne) UpdateFeedback() *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateFeedback()
	})
}

// SetModel sets the "model" field.
func (u *EvaluationEventUpsertOne) SetModel(v string) *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *EvaluationEventUpsertOne) UpdateModel() *EvaluationEventUpsertOne {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateModel()
	})
}

// Exec executes the query.
func (u *EvaluationEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvaluationEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvaluationEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvaluationEventCreateBulk is the builder for creating many EvaluationEvent entities in bulk.
type EvaluationEventCreateBulk struct {
	config
	err      error
	builders []*EvaluationEventCreate
	conflict []sql.ConflictOption
}

// Save creates the EvaluationEvent entities in the database.
func (_c *EvaluationEventCreateBulk) Save(ctx context.Context) ([]*EvaluationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationEventMutation)
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
func (_c *EvaluationEventCreateBulk) SaveX(ctx context.Context) []*EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvaluationEventUpsertBulk {
	_c.conflict = opts
	return &EvaluationEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationEventCreateBulk) OnConflictColumns(columns ...string) *EvaluationEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationEventUpsertBulk{
		create: _c,
	}
}

// EvaluationEventUpsertBulk is the builder for "upsert"-ing
// a bulk of EvaluationEvent nodes.
type EvaluationEventUpsertBulk struct {
	create *EvaluationEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvaluationEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EvaluationEventUpsertBulk) UpdateNewValues() *EvaluationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(evaluationevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(evaluationevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvaluationEventUpsertBulk) Ignore() *EvaluationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationEventUpsertBulk) DoNothing() *EvaluationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationEventCreateBulk.OnConflict
// documentation for more info.
func (u *EvaluationEventUpsertBulk) Update(set func(*EvaluationEventUpsert)) *EvaluationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *EvaluationEventUpsertBulk) SetSessionID(v string) *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *EvaluationEventUpsertBulk) UpdateSessionID() *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetSection sets the "section" field.
func (u *EvaluationEventUpsertBulk) SetSection(v string) *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *EvaluationEventUpsertBulk) UpdateSection() *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateSection()
	})
}

// SetTaskRef sets the "task_ref" field.
func (u *EvaluationEventUpsertBulk) SetTaskRef(v string) *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetTaskRef(v)
	})
}

// UpdateTaskRef sets the "task_ref" field to the value that was provided on create.
func (u *EvaluationEventUpsertBulk) UpdateTaskRef() *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateTaskRef()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *EvaluationEventUpsertBulk) SetIdempotencyKey(v string) *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *EvaluationEventUpsertBulk) UpdateIdempotencyKey() *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// SetBand sets the "band" field.
func (u *EvaluationEventUpsertBulk) SetBand(v float64) *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetBand(v)
	})
}

// AddBand adds v to the "band" field.
func (u *EvaluationEventUpsertBulk) AddBand(v float64) *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.AddBand(v)
	})
}

// UpdateBand sets the "band" field to the value that was provided on create.
func (u *EvaluationEventUpsertBulk) UpdateBand() *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateBand()
	})
}

// SetCriteria sets the "criteria" field.
func (u *EvaluationEventUpsertBulk) SetCriteria(v map[string]float64) *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetCriteria(v)
	})
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *EvaluationEventUpsertBulk) UpdateCriteria() *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateCriteria()
	})
}

// ClearCriteria clears the value of the "criteria" field.
func (u *EvaluationEventUpsertBulk) ClearCriteria() *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.ClearCriteria()
	})
}

// SetFeedback sets the "feedback" field.
func (u *EvaluationEventUpsertBulk) SetFeedback(v string) *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *EvaluationEventUpsertBulk) UpdateFeedback() *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateFeedback()
	})
}

// SetModel sets the "model" field.
func (u *EvaluationEventUpsertBulk) SetModel(v string) *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *EvaluationEventUpsertBulk) UpdateModel() *EvaluationEventUpsertBulk {
	return u.Update(func(s *EvaluationEventUpsert) {
		s.UpdateModel()
	})
}

// Exec executes the query.
func (u *EvaluationEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvaluationEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
