// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/evaluationevent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// EvaluationEventUpdate is the builder for updating EvaluationEvent entities.
type EvaluationEventUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdate) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *EvaluationEventUpdate) SetSessionID(v string) *EvaluationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableSessionID(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *EvaluationEventUpdate) SetSection(v string) *EvaluationEventUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableSection(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetTaskRef sets the "task_ref" field.
func (_u *EvaluationEventUpdate) SetTaskRef(v string) *EvaluationEventUpdate {
	_u.mutation.SetTaskRef(v)
	return _u
}

// SetNillableTaskRef sets the "task_ref" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableTaskRef(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetTaskRef(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *EvaluationEventUpdate) SetIdempotencyKey(v string) *EvaluationEventUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableIdempotencyKey(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetBand sets the "band" field.
func (_u *EvaluationEventUpdate) SetBand(v float64) *EvaluationEventUpdate {
	_u.mutation.ResetBand()
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableBand(v *float64) *EvaluationEventUpdate {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// AddBand adds value to the "band" field.
func (_u *EvaluationEventUpdate) AddBand(v float64) *EvaluationEventUpdate {
	_u.mutation.AddBand(v)
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *EvaluationEventUpdate) SetCriteria(v map[string]float64) *EvaluationEventUpdate {
	_u.mutation.SetCriteria(v)
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *EvaluationEventUpdate) ClearCriteria() *EvaluationEventUpdate {
	_u.mutation.ClearCriteria()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *EvaluationEventUpdate) SetFeedback(v string) *EvaluationEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableFeedback(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *EvaluationEventUpdate) SetModel(v string) *EvaluationEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableModel(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdate) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := evaluationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := evaluationevent.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.section": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskRef(); ok {
		if err := evaluationevent.TaskRefValidator(v); err != nil {
			return &ValidationError{Name: "task_ref", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.task_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdempotencyKey(); ok {
		if err := evaluationevent.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.idempotency_key": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(evaluationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(evaluationevent.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskRef(); ok {
		_spec.SetField(evaluationevent.FieldTaskRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(evaluationevent.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(evaluationevent.FieldBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBand(); ok {
		_spec.AddField(evaluationevent.FieldBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(evaluationevent.FieldCriteria, field.TypeJSON, value)
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(evaluationevent.FieldCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(evaluationevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(evaluationevent.FieldModel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationEventUpdateOne is the builder for updating a single EvaluationEvent entity.
type EvaluationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *EvaluationEventUpdateOne) SetSessionID(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableSessionID(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *EvaluationEventUpdateOne) SetSection(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableSection(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetTaskRef sets the "task_ref" field.
func (_u *EvaluationEventUpdateOne) SetTaskRef(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetTaskRef(v)
	return _u
}

// SetNillableTaskRef sets the "task_ref" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableTaskRef(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetTaskRef(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *EvaluationEventUpdateOne) SetIdempotencyKey(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableIdempotencyKey(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetBand sets the "band" field.
func (_u *EvaluationEventUpdateOne) SetBand(v float64) *EvaluationEventUpdateOne {
	_u.mutation.ResetBand()
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableBand(v *float64) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// AddBand adds value to the "band" field.
func (_u *EvaluationEventUpdateOne) AddBand(v float64) *EvaluationEventUpdateOne {
	_u.mutation.AddBand(v)
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *EvaluationEventUpdateOne) SetCriteria(v map[string]float64) *EvaluationEventUpdateOne {
	_u.mutation.SetCriteria(v)
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *EvaluationEventUpdateOne) ClearCriteria() *EvaluationEventUpdateOne {
	_u.mutation.ClearCriteria()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *EvaluationEventUpdateOne) SetFeedback(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableFeedback(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *EvaluationEventUpdateOne) SetModel(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableModel(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdateOne) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdateOne) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationEventUpdateOne) Select(field string, fields ...string) *EvaluationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationEvent entity.
func (_u *EvaluationEventUpdateOne) Save(ctx context.Context) (*EvaluationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) SaveX(ctx context.Context) *EvaluationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := evaluationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := evaluationevent.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.section": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskRef(); ok {
		if err := evaluationevent.TaskRefValidator(v); err != nil {
			return &ValidationError{Name: "task_ref", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.task_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdempotencyKey(); ok {
		if err := evaluationevent.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.idempotency_key": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationevent.FieldID)
		for _, f := range fields {
			if !evaluationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationevent.FieldID {
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
		_spec.SetField(evaluationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(evaluationevent.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskRef(); ok {
		_spec.SetField(evaluationevent.FieldTaskRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(evaluationevent.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(evaluationevent.FieldBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBand(); ok {
		_spec.AddField(evaluationevent.FieldBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(evaluationevent.FieldCriteria, field.TypeJSON, value)
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(evaluationevent.FieldCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(evaluationevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(evaluationevent.FieldModel, field.TypeString, value)
	}
	_node = &EvaluationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
