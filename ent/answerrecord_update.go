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
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// AnswerRecordUpdate is the builder for updating AnswerRecord entities.
type AnswerRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (_u *AnswerRecordUpdate) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerRecordUpdate) SetSessionID(v string) *AnswerRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableSessionID(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerRecordUpdate) SetQuestionID(v string) *AnswerRecordUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableQuestionID(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *AnswerRecordUpdate) SetSection(v string) *AnswerRecordUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableSection(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AnswerRecordUpdate) SetAnswer(v string) *AnswerRecordUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableAnswer(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *AnswerRecordUpdate) SetTimeSpentSecs(v int) *AnswerRecordUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableTimeSpentSecs(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *AnswerRecordUpdate) AddTimeSpentSecs(v int) *AnswerRecordUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *AnswerRecordUpdate) SetReceivedAt(v time.Time) *AnswerRecordUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_u *AnswerRecordUpdate) Mutation() *AnswerRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnswerRecordUpdate) defaults() {
	if _, ok := _u.mutation.ReceivedAt(); !ok {
		v := answerrecord.UpdateDefaultReceivedAt()
		_u.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := answerrecord.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.section": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(answerrecord.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(answerrecord.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(answerrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(answerrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(answerrecord.FieldReceivedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerRecordUpdateOne is the builder for updating a single AnswerRecord entity.
type AnswerRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerRecordUpdateOne) SetSessionID(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableSessionID(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerRecordUpdateOne) SetQuestionID(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableQuestionID(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *AnswerRecordUpdateOne) SetSection(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableSection(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AnswerRecordUpdateOne) SetAnswer(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableAnswer(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *AnswerRecordUpdateOne) SetTimeSpentSecs(v int) *AnswerRecordUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableTimeSpentSecs(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *AnswerRecordUpdateOne) AddTimeSpentSecs(v int) *AnswerRecordUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *AnswerRecordUpdateOne) SetReceivedAt(v time.Time) *AnswerRecordUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_u *AnswerRecordUpdateOne) Mutation() *AnswerRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (_u *AnswerRecordUpdateOne) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerRecordUpdateOne) Select(field string, fields ...string) *AnswerRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerRecord entity.
func (_u *AnswerRecordUpdateOne) Save(ctx context.Context) (*AnswerRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerRecordUpdateOne) SaveX(ctx context.Context) *AnswerRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnswerRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.ReceivedAt(); !ok {
		v := answerrecord.UpdateDefaultReceivedAt()
		_u.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := answerrecord.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.section": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerRecordUpdateOne) sqlSave(ctx context.Context) (_node *AnswerRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerrecord.FieldID)
		for _, f := range fields {
			if !answerrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerrecord.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(answerrecord.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(answerrecord.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(answerrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(answerrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(answerrecord.FieldReceivedAt, field.TypeTime, value)
	}
	_node = &AnswerRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
