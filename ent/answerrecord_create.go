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
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/answerrecord"
)

// AnswerRecordCreate is the builder for creating a AnswerRecord entity.
type AnswerRecordCreate struct {
	config
	mutation *AnswerRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerRecordCreate) SetSessionID(v string) *AnswerRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerRecordCreate) SetQuestionID(v string) *AnswerRecordCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *AnswerRecordCreate) SetSection(v string) *AnswerRecordCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *AnswerRecordCreate) SetAnswer(v string) *AnswerRecordCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableAnswer(v *string) *AnswerRecordCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *AnswerRecordCreate) SetTimeSpentSecs(v int) *AnswerRecordCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableTimeSpentSecs(v *int) *AnswerRecordCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *AnswerRecordCreate) SetReceivedAt(v time.Time) *AnswerRecordCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableReceivedAt(v *time.Time) *AnswerRecordCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_c *AnswerRecordCreate) Mutation() *AnswerRecordMutation {
	return _c.mutation
}

// Save creates the AnswerRecord in the database.
func (_c *AnswerRecordCreate) Save(ctx context.Context) (*AnswerRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerRecordCreate) SaveX(ctx context.Context) *AnswerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerRecordCreate) defaults() {
	if _, ok := _c.mutation.Answer(); !ok {
		v := answerrecord.DefaultAnswer
		_c.mutation.SetAnswer(v)
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := answerrecord.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := answerrecord.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answerrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerRecord.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := answerrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "AnswerRecord.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := answerrecord.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "AnswerRecord.answer"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "AnswerRecord.time_spent_secs"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "AnswerRecord.received_at"`)}
	}
	return nil
}

func (_c *AnswerRecordCreate) sqlSave(ctx context.Context) (*AnswerRecord, error) {
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

func (_c *AnswerRecordCreate) createSpec() (*AnswerRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerrecord.Table, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answerrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(answerrecord.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(answerrecord.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(answerrecord.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(answerrecord.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(answerrecord.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnswerRecord.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerRecordUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerRecordCreate) OnConflict(opts ...sql.ConflictOption) *AnswerRecordUpsertOne {
	_c.conflict = opts
	return &AnswerRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnswerRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerRecordCreate) OnConflictColumns(columns ...string) *AnswerRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerRecordUpsertOne{
		create: _c,
	}
}

type (
	// AnswerRecordUpsertOne is the builder for "upsert"-ing
	//  one AnswerRecord node.
	AnswerRecordUpsertOne struct {
		create *AnswerRecordCreate
	}

	// AnswerRecordUpsert is the "OnConflict" setter.
	AnswerRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *AnswerRecordUpsert) SetSessionID(v string) *AnswerRecordUpsert {
	u.Set(answerrecord.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AnswerRecordUpsert) UpdateSessionID() *AnswerRecordUpsert {
	u.SetExcluded(answerrecord.FieldSessionID)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *AnswerRecordUpsert) SetQuestionID(v string) *AnswerRecordUpsert {
	u.Set(answerrecord.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AnswerRecordUpsert) UpdateQuestionID() *AnswerRecordUpsert {
	u.SetExcluded(answerrecord.FieldQuestionID)
	return u
}

// SetSection sets the "section" field.
func (u *AnswerRecordUpsert) SetSection(v string) *AnswerRecordUpsert {
	u.Set(answerrecord.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *AnswerRecordUpsert) UpdateSection() *AnswerRecordUpsert {
	u.SetExcluded(answerrecord.FieldSection)
	return u
}

// SetAnswer sets the "answer" field.
func (u *AnswerRecordUpsert) SetAnswer(v string) *AnswerRecordUpsert {
	u.Set(answerrecord.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *AnswerRecordUpsert) UpdateAnswer() *AnswerRecordUpsert {
	u.SetExcluded(answerrecord.FieldAnswer)
	return u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (u *AnswerRecordUpsert) SetTimeSpentSecs(v int) *AnswerRecordUpsert {
	u.Set(answerrecord.FieldTimeSpentSecs, v)
	return u
}

// UpdateTimeSpentSecs sets the "time_spent_secs" field to the value that was provided on create.
func (u *AnswerRecordUpsert) UpdateTimeSpentSecs() *AnswerRecordUpsert {
	u.SetExcluded(answerrecord.FieldTimeSpentSecs)
	return u
}

// AddTimeSpentSecs adds v to the "time_spent_secs" field.
func (u *AnswerRecordUpsert) AddTimeSpentSecs(v int) *AnswerRecordUpsert {
	u.Add(answerrecord.FieldTimeSpentSecs, v)
	return u
}

// SetReceivedAt sets the "received_at" field.
func (u *AnswerRecordUpsert) SetReceivedAt(v time.Time) *AnswerRecordUpsert {
	u.Set(answerrecord.FieldReceivedAt, v)
	return u
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *AnswerRecordUpsert) UpdateReceivedAt() *AnswerRecordUpsert {
	u.SetExcluded(answerrecord.FieldReceivedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AnswerRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnswerRecordUpsertOne) UpdateNewValues() *AnswerRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnswerRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnswerRecordUpsertOne) Ignore() *AnswerRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerRecordUpsertOne) DoNothing() *AnswerRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerRecordCreate.OnConflict
// documentation for more info.
func (u *AnswerRecordUpsertOne) Update(set func(*AnswerRecordUpsert)) *AnswerRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AnswerRecordUpsertOne) SetSessionID(v string) *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AnswerRecordUpsertOne) UpdateSessionID() *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateSessionID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *AnswerRecordUpsertOne) SetQuestionID(v string) *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AnswerRecordUpsertOne) UpdateQuestionID() *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateQuestionID()
	})
}

// SetSection sets the "section" field.
func (u *AnswerRecordUpsertOne) SetSection(v string) *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *AnswerRecordUpsertOne) UpdateSection() *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateSection()
	})
}

// SetAnswer sets the "answer" field.
func (u *AnswerRecordUpsertOne) SetAnswer(v string) *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *AnswerRecordUpsertOne) UpdateAnswer() *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateAnswer()
	})
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (u *AnswerRecordUpsertOne) SetTimeSpentSecs(v int) *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetTimeSpentSecs(v)
	})
}

// AddTimeSpentSecs adds v to the "time_spent_secs" field.
func (u *AnswerRecordUpsertOne) AddTimeSpentSecs(v int) *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.AddTimeSpentSecs(v)
	})
}

// UpdateTimeSpentSecs sets the "time_spent_secs" field to the value that was provided on create.
func (u *AnswerRecordUpsertOne) UpdateTimeSpentSecs() *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateTimeSpentSecs()
	})
}

// SetReceivedAt sets the "received_at" field.
func (u *AnswerRecordUpsertOne) SetReceivedAt(v time.Time) *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetReceivedAt(v)
	})
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *AnswerRecordUpsertOne) UpdateReceivedAt() *AnswerRecordUpsertOne {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateReceivedAt()
	})
}

// Exec executes the query.
func (u *AnswerRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnswerRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnswerRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnswerRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnswerRecordCreateBulk is the builder for creating many AnswerRecord entities in bulk.
type AnswerRecordCreateBulk struct {
	config
	err      error
	builders []*AnswerRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the AnswerRecord entities in the database.
func (_c *AnswerRecordCreateBulk) Save(ctx context.Context) ([]*AnswerRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerRecordMutation)
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
func (_c *AnswerRecordCreateBulk) SaveX(ctx context.Context) []*AnswerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnswerRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerRecordUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnswerRecordUpsertBulk {
	_c.conflict = opts
	return &AnswerRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnswerRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerRecordCreateBulk) OnConflictColumns(columns ...string) *AnswerRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerRecordUpsertBulk{
		create: _c,
	}
}

// AnswerRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of AnswerRecord nodes.
type AnswerRecordUpsertBulk struct {
	create *AnswerRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnswerRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnswerRecordUpsertBulk) UpdateNewValues() *AnswerRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnswerRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnswerRecordUpsertBulk) Ignore() *AnswerRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerRecordUpsertBulk) DoNothing() *AnswerRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerRecordCreateBulk.OnConflict
// documentation for more info.
func (u *AnswerRecordUpsertBulk) Update(set func(*AnswerRecordUpsert)) *AnswerRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AnswerRecordUpsertBulk) SetSessionID(v string) *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AnswerRecordUpsertBulk) UpdateSessionID() *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateSessionID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *AnswerRecordUpsertBulk) SetQuestionID(v string) *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AnswerRecordUpsertBulk) UpdateQuestionID() *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateQuestionID()
	})
}

// SetSection sets the "section" field.
func (u *AnswerRecordUpsertBulk) SetSection(v string) *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *AnswerRecordUpsertBulk) UpdateSection() *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateSection()
	})
}

// SetAnswer sets the "answer" field.
func (u *AnswerRecordUpsertBulk) SetAnswer(v string) *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *AnswerRecordUpsertBulk) UpdateAnswer() *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateAnswer()
	})
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (u *AnswerRecordUpsertBulk) SetTimeSpentSecs(v int) *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetTimeSpentSecs(v)
	})
}

// AddTimeSpentSecs adds v to the "time_spent_secs" field.
func (u *AnswerRecordUpsertBulk) AddTimeSpentSecs(v int) *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.AddTimeSpentSecs(v)
	})
}

// UpdateTimeSpentSecs sets the "time_spent_secs" field to the value that was provided on create.
func (u *AnswerRecordUpsertBulk) UpdateTimeSpentSecs() *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateTimeSpentSecs()
	})
}

// SetReceivedAt sets the "received_at" field.
func (u *AnswerRecordUpsertBulk) SetReceivedAt(v time.Time) *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.SetReceivedAt(v)
	})
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *AnswerRecordUpsertBulk) UpdateReceivedAt() *AnswerRecordUpsertBulk {
	return u.Update(func(s *AnswerRecordUpsert) {
		s.UpdateReceivedAt()
	})
}

// Exec executes the query.
func (u *AnswerRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnswerRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnswerRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
