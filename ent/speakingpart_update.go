// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/speakingpart"
)

// SpeakingPartUpdate is the builder for updating SpeakingPart entities.
type SpeakingPartUpdate struct {
	config
	hooks    []Hook
	mutation *SpeakingPartMutation
}

// Where appends a list predicates to the SpeakingPartUpdate builder.
func (_u *SpeakingPartUpdate) Where(ps ...predicate.SpeakingPart) *SpeakingPartUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPartNumber sets the "part_number" field.
func (_u *SpeakingPartUpdate) SetPartNumber(v int) *SpeakingPartUpdate {
	_u.mutation.ResetPartNumber()
	_u.mutation.SetPartNumber(v)
	return _u
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_u *SpeakingPartUpdate) SetNillablePartNumber(v *int) *SpeakingPartUpdate {
	if v != nil {
		_u.SetPartNumber(*v)
	}
	return _u
}

// AddPartNumber adds value to the "part_number" field.
func (_u *SpeakingPartUpdate) AddPartNumber(v int) *SpeakingPartUpdate {
	_u.mutation.AddPartNumber(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SpeakingPartUpdate) SetTopic(v string) *SpeakingPartUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SpeakingPartUpdate) SetNillableTopic(v *string) *SpeakingPartUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *SpeakingPartUpdate) SetQuestions(v []string) *SpeakingPartUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *SpeakingPartUpdate) AppendQuestions(v []string) *SpeakingPartUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetPrepSeconds sets the "prep_seconds" field.
func (_u *SpeakingPartUpdate) SetPrepSeconds(v int) *SpeakingPartUpdate {
	_u.mutation.ResetPrepSeconds()
	_u.mutation.SetPrepSeconds(v)
	return _u
}

// SetNillablePrepSeconds sets the "prep_seconds" field if the given value is not nil.
func (_u *SpeakingPartUpdate) SetNillablePrepSeconds(v *int) *SpeakingPartUpdate {
	if v != nil {
		_u.SetPrepSeconds(*v)
	}
	return _u
}

// AddPrepSeconds adds value to the "prep_seconds" field.
func (_u *SpeakingPartUpdate) AddPrepSeconds(v int) *SpeakingPartUpdate {
	_u.mutation.AddPrepSeconds(v)
	return _u
}

// SetSpeakSeconds sets the "speak_seconds" field.
func (_u *SpeakingPartUpdate) SetSpeakSeconds(v int) *SpeakingPartUpdate {
	_u.mutation.ResetSpeakSeconds()
	_u.mutation.SetSpeakSeconds(v)
	return _u
}

// SetNillableSpeakSeconds sets the "speak_seconds" field if the given value is not nil.
func (_u *SpeakingPartUpdate) SetNillableSpeakSeconds(v *int) *SpeakingPartUpdate {
	if v != nil {
		_u.SetSpeakSeconds(*v)
	}
	return _u
}

// AddSpeakSeconds adds value to the "speak_seconds" field.
func (_u *SpeakingPartUpdate) AddSpeakSeconds(v int) *SpeakingPartUpdate {
	_u.mutation.AddSpeakSeconds(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *SpeakingPartUpdate) SetActive(v bool) *SpeakingPartUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SpeakingPartUpdate) SetNillableActive(v *bool) *SpeakingPartUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the SpeakingPartMutation object of the builder.
func (_u *SpeakingPartUpdate) Mutation() *SpeakingPartMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpeakingPartUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpeakingPartUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpeakingPartUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpeakingPartUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpeakingPartUpdate) check() error {
	if v, ok := _u.mutation.PartNumber(); ok {
		if err := speakingpart.PartNumberValidator(v); err != nil {
			return &ValidationError{Name: "part_number", err: fmt.Errorf(`ent: validator failed for field "SpeakingPart.part_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := speakingpart.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SpeakingPart.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *SpeakingPartUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(speakingpart.Table, speakingpart.Columns, sqlgraph.NewFieldSpec(speakingpart.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PartNumber(); ok {
		_spec.SetField(speakingpart.FieldPartNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPartNumber(); ok {
		_spec.AddField(speakingpart.FieldPartNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(speakingpart.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(speakingpart.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, speakingpart.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.PrepSeconds(); ok {
		_spec.SetField(speakingpart.FieldPrepSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrepSeconds(); ok {
		_spec.AddField(speakingpart.FieldPrepSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpeakSeconds(); ok {
		_spec.SetField(speakingpart.FieldSpeakSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpeakSeconds(); ok {
		_spec.AddField(speakingpart.FieldSpeakSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(speakingpart.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{speakingpart.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpeakingPartUpdateOne is the builder for updating a single SpeakingPart entity.
type SpeakingPartUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpeakingPartMutation
}

// SetPartNumber sets the "part_number" field.
func (_u *SpeakingPartUpdateOne) SetPartNumber(v int) *SpeakingPartUpdateOne {
	_u.mutation.ResetPartNumber()
	_u.mutation.SetPartNumber(v)
	return _u
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_u *SpeakingPartUpdateOne) SetNillablePartNumber(v *int) *SpeakingPartUpdateOne {
	if v != nil {
		_u.SetPartNumber(*v)
	}
	return _u
}

// AddPartNumber adds value to the "part_number" field.
func (_u *SpeakingPartUpdateOne) AddPartNumber(v int) *SpeakingPartUpdateOne {
	_u.mutation.AddPartNumber(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SpeakingPartUpdateOne) SetTopic(v string) *SpeakingPartUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SpeakingPartUpdateOne) SetNillableTopic(v *string) *SpeakingPartUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *SpeakingPartUpdateOne) SetQuestions(v []string) *SpeakingPartUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *SpeakingPartUpdateOne) AppendQuestions(v []string) *SpeakingPartUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetPrepSeconds sets the "prep_seconds" field.
func (_u *SpeakingPartUpdateOne) SetPrepSeconds(v int) *SpeakingPartUpdateOne {
	_u.mutation.ResetPrepSeconds()
	_u.mutation.SetPrepSeconds(v)
	return _u
}

// SetNillablePrepSeconds sets the "prep_seconds" field if the given value is not nil.
func (_u *SpeakingPartUpdateOne) SetNillablePrepSeconds(v *int) *SpeakingPartUpdateOne {
	if v != nil {
		_u.SetPrepSeconds(*v)
	}
	return _u
}

// AddPrepSeconds adds value to the "prep_seconds" field.
func (_u *SpeakingPartUpdateOne) AddPrepSeconds(v int) *SpeakingPartUpdateOne {
	_u.mutation.AddPrepSeconds(v)
	return _u
}

// SetSpeakSeconds sets the "speak_seconds" field.
func (_u *SpeakingPartUpdateOne) SetSpeakSeconds(v int) *SpeakingPartUpdateOne {
	_u.mutation.ResetSpeakSeconds()
	_u.mutation.SetSpeakSeconds(v)
	return _u
}

// SetNillableSpeakSeconds sets the "speak_seconds" field if the given value is not nil.
func (_u *SpeakingPartUpdateOne) SetNillableSpeakSeconds(v *int) *SpeakingPartUpdateOne {
	if v != nil {
		_u.SetSpeakSeconds(*v)
	}
	return _u
}

// AddSpeakSeconds adds value to the "speak_seconds" field.
func (_u *SpeakingPartUpdateOne) AddSpeakSeconds(v int) *SpeakingPartUpdateOne {
	_u.mutation.AddSpeakSeconds(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *SpeakingPartUpdateOne) SetActive(v bool) *SpeakingPartUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SpeakingPartUpdateOne) SetNillableActive(v *bool) *SpeakingPartUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the SpeakingPartMutation object of the builder.
func (_u *SpeakingPartUpdateOne) Mutation() *SpeakingPartMutation {
	return _u.mutation
}

// Where appends a list predicates to the SpeakingPartUpdate builder.
func (_u *SpeakingPartUpdateOne) Where(ps ...predicate.SpeakingPart) *SpeakingPartUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpeakingPartUpdateOne) Select(field string, fields ...string) *SpeakingPartUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpeakingPart entity.
func (_u *SpeakingPartUpdateOne) Save(ctx context.Context) (*SpeakingPart, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpeakingPartUpdateOne) SaveX(ctx context.Context) *SpeakingPart {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpeakingPartUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpeakingPartUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpeakingPartUpdateOne) check() error {
	if v, ok := _u.mutation.PartNumber(); ok {
		if err := speakingpart.PartNumberValidator(v); err != nil {
			return &ValidationError{Name: "part_number", err: fmt.Errorf(`ent: validator failed for field "SpeakingPart.part_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := speakingpart.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SpeakingPart.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *SpeakingPartUpdateOne) sqlSave(ctx context.Context) (_node *SpeakingPart, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(speakingpart.Table, speakingpart.Columns, sqlgraph.NewFieldSpec(speakingpart.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpeakingPart.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, speakingpart.FieldID)
		for _, f := range fields {
			if !speakingpart.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != speakingpart.FieldID {
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
	if value, ok := _u.mutation.PartNumber(); ok {
		_spec.SetField(speakingpart.FieldPartNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPartNumber(); ok {
		_spec.AddField(speakingpart.FieldPartNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(speakingpart.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(speakingpart.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, speakingpart.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.PrepSeconds(); ok {
		_spec.SetField(speakingpart.FieldPrepSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrepSeconds(); ok {
		_spec.AddField(speakingpart.FieldPrepSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpeakSeconds(); ok {
		_spec.SetField(speakingpart.FieldSpeakSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpeakSeconds(); ok {
		_spec.AddField(speakingpart.FieldSpeakSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(speakingpart.FieldActive, field.TypeBool, value)
	}
	_node = &SpeakingPart{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{speakingpart.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
