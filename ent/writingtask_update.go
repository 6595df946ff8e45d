// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/writingtask"
)

// WritingTaskUpdate is the builder for updating WritingTask entities.
type WritingTaskUpdate struct {
	config
	hooks    []Hook
	mutation *WritingTaskMutation
}

// Where appends a list predicates to the WritingTaskUpdate builder.
func (_u *WritingTaskUpdate) Where(ps ...predicate.WritingTask) *WritingTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskNumber sets the "task_number" field.
func (_u *WritingTaskUpdate) SetTaskNumber(v int) *WritingTaskUpdate {
	_u.mutation.ResetTaskNumber()
	_u.mutation.SetTaskNumber(v)
	return _u
}

// SetNillableTaskNumber sets the "task_number" field if the given value is not nil.
func (_u *WritingTaskUpdate) SetNillableTaskNumber(v *int) *WritingTaskUpdate {
	if v != nil {
		_u.SetTaskNumber(*v)
	}
	return _u
}

// AddTaskNumber adds value to the "task_number" field.
func (_u *WritingTaskUpdate) AddTaskNumber(v int) *WritingTaskUpdate {
	_u.mutation.AddTaskNumber(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *WritingTaskUpdate) SetPrompt(v string) *WritingTaskUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *WritingTaskUpdate) SetNillablePrompt(v *string) *WritingTaskUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetMinWords sets the "min_words" field.
func (_u *WritingTaskUpdate) SetMinWords(v int) *WritingTaskUpdate {
	_u.mutation.ResetMinWords()
	_u.mutation.SetMinWords(v)
	return _u
}

// SetNillableMinWords sets the "min_words" field if the given value is not nil.
func (_u *WritingTaskUpdate) SetNillableMinWords(v *int) *WritingTaskUpdate {
	if v != nil {
		_u.SetMinWords(*v)
	}
	return _u
}

// AddMinWords adds value to the "min_words" field.
func (_u *WritingTaskUpdate) AddMinWords(v int) *WritingTaskUpdate {
	_u.mutation.AddMinWords(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *WritingTaskUpdate) SetActive(v bool) *WritingTaskUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WritingTaskUpdate) SetNillableActive(v *bool) *WritingTaskUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the WritingTaskMutation object of the builder.
func (_u *WritingTaskUpdate) Mutation() *WritingTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WritingTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WritingTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WritingTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WritingTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WritingTaskUpdate) check() error {
	if v, ok := _u.mutation.TaskNumber(); ok {
		if err := writingtask.TaskNumberValidator(v); err != nil {
			return &ValidationError{Name: "task_number", err: fmt.Errorf(`ent: validator failed for field "WritingTask.task_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := writingtask.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "WritingTask.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *WritingTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(writingtask.Table, writingtask.Columns, sqlgraph.NewFieldSpec(writingtask.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskNumber(); ok {
		_spec.SetField(writingtask.FieldTaskNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskNumber(); ok {
		_spec.AddField(writingtask.FieldTaskNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(writingtask.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinWords(); ok {
		_spec.SetField(writingtask.FieldMinWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinWords(); ok {
		_spec.AddField(writingtask.FieldMinWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(writingtask.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{writingtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WritingTaskUpdateOne is the builder for updating a single WritingTask entity.
type WritingTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WritingTaskMutation
}

// SetTaskNumber sets the "task_number" field.
func (_u *WritingTaskUpdateOne) SetTaskNumber(v int) *WritingTaskUpdateOne {
	_u.mutation.ResetTaskNumber()
	_u.mutation.SetTaskNumber(v)
	return _u
}

// SetNillableTaskNumber sets the "task_number" field if the given value is not nil.
func (_u *WritingTaskUpdateOne) SetNillableTaskNumber(v *int) *WritingTaskUpdateOne {
	if v != nil {
		_u.SetTaskNumber(*v)
	}
	return _u
}

// AddTaskNumber adds value to the "task_number" field.
func (_u *WritingTaskUpdateOne) AddTaskNumber(v int) *WritingTaskUpdateOne {
	_u.mutation.AddTaskNumber(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *WritingTaskUpdateOne) SetPrompt(v string) *WritingTaskUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *WritingTaskUpdateOne) SetNillablePrompt(v *string) *WritingTaskUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetMinWords sets the "min_words" field.
func (_u *WritingTaskUpdateOne) SetMinWords(v int) *WritingTaskUpdateOne {
	_u.mutation.ResetMinWords()
	_u.mutation.SetMinWords(v)
	return _u
}

// SetNillableMinWords sets the "min_words" field if the given value is not nil.
func (_u *WritingTaskUpdateOne) SetNillableMinWords(v *int) *WritingTaskUpdateOne {
	if v != nil {
		_u.SetMinWords(*v)
	}
	return _u
}

// AddMinWords adds value to the "min_words" field.
func (_u *WritingTaskUpdateOne) AddMinWords(v int) *WritingTaskUpdateOne {
	_u.mutation.AddMinWords(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *WritingTaskUpdateOne) SetActive(v bool) *WritingTaskUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WritingTaskUpdateOne) SetNillableActive(v *bool) *WritingTaskUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the WritingTaskMutation object of the builder.
func (_u *WritingTaskUpdateOne) Mutation() *WritingTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the WritingTaskUpdate builder.
func (_u *WritingTaskUpdateOne) Where(ps ...predicate.WritingTask) *WritingTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WritingTaskUpdateOne) Select(field string, fields ...string) *WritingTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WritingTask entity.
func (_u *WritingTaskUpdateOne) Save(ctx context.Context) (*WritingTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WritingTaskUpdateOne) SaveX(ctx context.Context) *WritingTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WritingTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WritingTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WritingTaskUpdateOne) check() error {
	if v, ok := _u.mutation.TaskNumber(); ok {
		if err := writingtask.TaskNumberValidator(v); err != nil {
			return &ValidationError{Name: "task_number", err: fmt.Errorf(`ent: validator failed for field "WritingTask.task_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := writingtask.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "WritingTask.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *WritingTaskUpdateOne) sqlSave(ctx context.Context) (_node *WritingTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(writingtask.Table, writingtask.Columns, sqlgraph.NewFieldSpec(writingtask.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WritingTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, writingtask.FieldID)
		for _, f := range fields {
			if !writingtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != writingtask.FieldID {
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
	if value, ok := _u.mutation.TaskNumber(); ok {
		_spec.SetField(writingtask.FieldTaskNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskNumber(); ok {
		_spec.AddField(writingtask.FieldTaskNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(writingtask.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinWords(); ok {
		_spec.SetField(writingtask.FieldMinWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinWords(); ok {
		_spec.AddField(writingtask.FieldMinWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(writingtask.FieldActive, field.TypeBool, value)
	}
	_node = &WritingTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{writingtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
