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
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/writingtask"
)

// WritingTaskCreate is the builder for creating a WritingTask entity.
type WritingTaskCreate struct {
	config
	mutation *WritingTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskNumber sets the "task_number" field.
func (_c *WritingTaskCreate) SetTaskNumber(v int) *WritingTaskCreate {
	_c.mutation.SetTaskNumber(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *WritingTaskCreate) SetPrompt(v string) *WritingTaskCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetMinWords sets the "min_words" field.
func (_c *WritingTaskCreate) SetMinWords(v int) *WritingTaskCreate {
	_c.mutation.SetMinWords(v)
	return _c
}

// SetNillableMinWords sets the "min_words" field if the given value is not nil.
func (_c *WritingTaskCreate) SetNillableMinWords(v *int) *WritingTaskCreate {
	if v != nil {
		_c.SetMinWords(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *WritingTaskCreate) SetActive(v bool) *WritingTaskCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *WritingTaskCreate) SetNillableActive(v *bool) *WritingTaskCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WritingTaskCreate) SetCreatedAt(v time.Time) *WritingTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WritingTaskCreate) SetNillableCreatedAt(v *time.Time) *WritingTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the WritingTaskMutation object of the builder.
func (_c *WritingTaskCreate) Mutation() *WritingTaskMutation {
	return _c.mutation
}

// Save creates the WritingTask in the database.
func (_c *WritingTaskCreate) Save(ctx context.Context) (*WritingTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WritingTaskCreate) SaveX(ctx context.Context) *WritingTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WritingTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WritingTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WritingTaskCreate) defaults() {
	if _, ok := _c.mutation.MinWords(); !ok {
		v := writingtask.DefaultMinWords
		_c.mutation.SetMinWords(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := writingtask.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := writingtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WritingTaskCreate) check() error {
	if _, ok := _c.mutation.TaskNumber(); !ok {
		return &ValidationError{Name: "task_number", err: errors.New(`ent: missing required field "WritingTask.task_number"`)}
	}
	if v, ok := _c.mutation.TaskNumber(); ok {
		if err := writingtask.TaskNumberValidator(v); err != nil {
			return &ValidationError{Name: "task_number", err: fmt.Errorf(`ent: validator failed for field "WritingTask.task_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "WritingTask.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := writingtask.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "WritingTask.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinWords(); !ok {
		return &ValidationError{Name: "min_words", err: errors.New(`ent: missing required field "WritingTask.min_words"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "WritingTask.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WritingTask.created_at"`)}
	}
	return nil
}

func (_c *WritingTaskCreate) sqlSave(ctx context.Context) (*WritingTask, error) {
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

func (_c *WritingTaskCreate) createSpec() (*WritingTask, *sqlgraph.CreateSpec) {
	var (
		_node = &WritingTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(writingtask.Table, sqlgraph.NewFieldSpec(writingtask.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TaskNumber(); ok {
		_spec.SetField(writingtask.FieldTaskNumber, field.TypeInt, value)
		_node.TaskNumber = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(writingtask.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.MinWords(); ok {
		_spec.SetField(writingtask.FieldMinWords, field.TypeInt, value)
		_node.MinWords = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(writingtask.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(writingtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WritingTask.Create().
//		SetTaskNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WritingTaskUpsert) {
//			SetTaskNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *WritingTaskCreate) OnConflict(opts ...sql.ConflictOption) *WritingTaskUpsertOne {
	_c.conflict = opts
	return &WritingTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WritingTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WritingTaskCreate) OnConflictColumns(columns ...string) *WritingTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WritingTaskUpsertOne{
		create: _c,
	}
}

type (
	// WritingTaskUpsertOne is the builder for "upsert"-ing
	//  one WritingTask node.
	WritingTaskUpsertOne struct {
		create *WritingTaskCreate
	}

	// WritingTaskUpsert is the "OnConflict" setter.
	WritingTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskNumber sets the "task_number" field.
func (u *WritingTaskUpsert) SetTaskNumber(v int) *WritingTaskUpsert {
	u.Set(writingtask.FieldTaskNumber, v)
	return u
}

// UpdateTaskNumber sets the "task_number" field to the value that was provided on create.
func (u *WritingTaskUpsert) UpdateTaskNumber() *WritingTaskUpsert {
	u.SetExcluded(writingtask.FieldTaskNumber)
	return u
}

// AddTaskNumber adds v to the "task_number" field.
func (u *WritingTaskUpsert) AddTaskNumber(v int) *WritingTaskUpsert {
	u.Add(writingtask.FieldTaskNumber, v)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *WritingTaskUpsert) SetPrompt(v string) *WritingTaskUpsert {
	u.Set(writingtask.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *WritingTaskUpsert) UpdatePrompt() *WritingTaskUpsert {
	u.SetExcluded(writingtask.FieldPrompt)
	return u
}

// SetMinWords sets the "min_words" field.
func (u *WritingTaskUpsert) SetMinWords(v int) *WritingTaskUpsert {
	u.Set(writingtask.FieldMinWords, v)
	return u
}

// UpdateMinWords sets the "min_words" field to the value that was provided on create.
func (u *WritingTaskUpsert) UpdateMinWords() *WritingTaskUpsert {
	u.SetExcluded(writingtask.FieldMinWords)
	return u
}

// AddMinWords adds v to the "min_words" field.
func (u *WritingTaskUpsert) AddMinWords(v int) *WritingTaskUpsert {
	u.Add(writingtask.FieldMinWords, v)
	return u
}

// SetActive sets the "active" field.
func (u *WritingTaskUpsert) SetActive(v bool) *WritingTaskUpsert {
	u.Set(writingtask.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WritingTaskUpsert) UpdateActive() *WritingTaskUpsert {
	u.SetExcluded(writingtask.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.WritingTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WritingTaskUpsertOne) UpdateNewValues() *WritingTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(writingtask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WritingTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WritingTaskUpsertOne) Ignore() *WritingTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WritingTaskUpsertOne) DoNothing() *WritingTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WritingTaskCreate.OnConflict
// documentation for more info.
func (u *WritingTaskUpsertOne) Update(set func(*WritingTaskUpsert)) *WritingTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WritingTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskNumber sets the "task_number" field.
func (u *WritingTaskUpsertOne) SetTaskNumber(v int) *WritingTaskUpsertOne {
	return u.Update(func(s *WritingTaskUpsert) {
		s.SetTaskNumber(v)
	})
}

// AddTaskNumber adds v to the "task_number" field.
func (u *WritingTaskUpsertOne) AddTaskNumber(v int) *WritingTaskUpsertOne {
	return u.Update(func(s *WritingTaskUpsert) {
		s.AddTaskNumber(v)
	})
}

// UpdateTaskNumber sets the "task_number" field to the value that was provided on create.
func (u *WritingTaskUpsertOne) UpdateTaskNumber() *WritingTaskUpsertOne {
	return u.Update(func(s *WritingTaskUpsert) {
		s.UpdateTaskNumber()
	})
}

// SetPrompt sets the "prompt" field.
func (u *WritingTaskUpsertOne) SetPrompt(v string) *WritingTaskUpsertOne {
	return u.Update(func(s *WritingTaskUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *WritingTaskUpsertOne) UpdatePrompt() *WritingTaskUpsertOne {
	return u.Update(func(s *WritingTaskUpsert) {
		s.UpdatePrompt()
	})
}

// SetMinWords sets the "min_words" field.
func (u *WritingTaskUpsertOne) SetMinWords(v int) *WritingTaskUpsertOne {
	return u.Update(func(s *WritingTaskUpsert) {
		s.SetMinWords(v)
	})
}

// AddMinWords adds v to the "min_words" field.
func (u *WritingTaskUpsertOne) AddMinWords(v int) *WritingTaskUpsertOne {
	return u.Update(func(s *WritingTaskUpsert) {
		s.AddMinWords(v)
	})
}

// UpdateMinWords sets the "min_words" field to the value that was provided on create.
func (u *WritingTaskUpsertOne) UpdateMinWords() *WritingTaskUpsertOne {
	return u.Update(func(s *WritingTaskUpsert) {
		s.UpdateMinWords()
	})
}

// SetActive sets the "active" field.
func (u *WritingTaskUpsertOne) SetActive(v bool) *WritingTaskUpsertOne {
	return u.Update(func(s *WritingTaskUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WritingTaskUpsertOne) UpdateActive() *WritingTaskUpsertOne {
	return u.Update(func(s *WritingTaskUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *WritingTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WritingTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WritingTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WritingTaskUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WritingTaskUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WritingTaskCreateBulk is the builder for creating many WritingTask entities in bulk.
type WritingTaskCreateBulk struct {
	config
	err      error
	builders []*WritingTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the WritingTask entities in the database.
func (_c *WritingTaskCreateBulk) Save(ctx context.Context) ([]*WritingTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WritingTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WritingTaskMutation)
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
func (_c *WritingTaskCreateBulk) SaveX(ctx context.Context) []*WritingTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WritingTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WritingTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WritingTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WritingTaskUpsert) {
//			SetTaskNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *WritingTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *WritingTaskUpsertBulk {
	_c.conflict = opts
	return &WritingTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WritingTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WritingTaskCreateBulk) OnConflictColumns(columns ...string) *WritingTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WritingTaskUpsertBulk{
		create: _c,
	}
}

// WritingTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of WritingTask nodes.
type WritingTaskUpsertBulk struct {
	create *WritingTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WritingTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WritingTaskUpsertBulk) UpdateNewValues() *WritingTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(writingtask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WritingTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WritingTaskUpsertBulk) Ignore() *WritingTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WritingTaskUpsertBulk) DoNothing() *WritingTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WritingTaskCreateBulk.OnConflict
// documentation for more info.
func (u *WritingTaskUpsertBulk) Update(set func(*WritingTaskUpsert)) *WritingTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WritingTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskNumber sets the "task_number" field.
func (u *WritingTaskUpsertBulk) SetTaskNumber(v int) *WritingTaskUpsertBulk {
	return u.Update(func(s *WritingTaskUpsert) {
		s.SetTaskNumber(v)
	})
}

// AddTaskNumber adds v to the "task_number" field.
func (u *WritingTaskUpsertBulk) AddTaskNumber(v int) *WritingTaskUpsertBulk {
	return u.Update(func(s *WritingTaskUpsert) {
		s.AddTaskNumber(v)
	})
}

// UpdateTaskNumber sets the "task_number" field to the value that was provided on create.
func (u *WritingTaskUpsertBulk) UpdateTaskNumber() *WritingTaskUpsertBulk {
	return u.Update(func(s *WritingTaskUpsert) {
		s.UpdateTaskNumber()
	})
}

// SetPrompt sets the "prompt" field.
func (u *WritingTaskUpsertBulk) SetPrompt(v string) *WritingTaskUpsertBulk {
	return u.Update(func(s *WritingTaskUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *WritingTaskUpsertBulk) UpdatePrompt() *WritingTaskUpsertBulk {
	return u.Update(func(s *WritingTaskUpsert) {
		s.UpdatePrompt()
	})
}

// SetMinWords sets the "min_words" field.
func (u *WritingTaskUpsertBulk) SetMinWords(v int) *WritingTaskUpsertBulk {
	return u.Update(func(s *WritingTaskUpsert) {
		s.SetMinWords(v)
	})
}

// AddMinWords adds v to the "min_words" field.
func (u *WritingTaskUpsertBulk) AddMinWords(v int) *WritingTaskUpsertBulk {
	return u.Update(func(s *WritingTaskUpsert) {
		s.AddMinWords(v)
	})
}

// UpdateMinWords sets the "min_words" field to the value that was provided on create.
func (u *WritingTaskUpsertBulk) UpdateMinWords() *WritingTaskUpsertBulk {
	return u.Update(func(s *WritingTaskUpsert) {
		s.UpdateMinWords()
	})
}

// SetActive sets the "active" field.
func (u *WritingTaskUpsertBulk) SetActive(v bool) *WritingTaskUpsertBulk {
	return u.Update(func(s *WritingTaskUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WritingTaskUpsertBulk) UpdateActive() *WritingTaskUpsertBulk {
	return u.Update(func(s *WritingTaskUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *WritingTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WritingTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WritingTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WritingTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
