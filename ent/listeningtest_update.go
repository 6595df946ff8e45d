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
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/listeningtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
)

// ListeningTestUpdate is the builder for updating ListeningTest entities.
type ListeningTestUpdate struct {
	config
	hooks    []Hook
	mutation *ListeningTestMutation
}

// Where appends a list predicates to the ListeningTestUpdate builder.
func (_u *ListeningTestUpdate) Where(ps ...predicate.ListeningTest) *ListeningTestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ListeningTestUpdate) SetTitle(v string) *ListeningTestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ListeningTestUpdate) SetNillableTitle(v *string) *ListeningTestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ListeningTestUpdate) SetDescription(v string) *ListeningTestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ListeningTestUpdate) SetNillableDescription(v *string) *ListeningTestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAudioAssetID sets the "audio_asset_id" field.
func (_u *ListeningTestUpdate) SetAudioAssetID(v int) *ListeningTestUpdate {
	_u.mutation.ResetAudioAssetID()
	_u.mutation.SetAudioAssetID(v)
	return _u
}

// SetNillableAudioAssetID sets the "audio_asset_id" field if the given value is not nil.
func (_u *ListeningTestUpdate) SetNillableAudioAssetID(v *int) *ListeningTestUpdate {
	if v != nil {
		_u.SetAudioAssetID(*v)
	}
	return _u
}

// AddAudioAssetID adds value to the "audio_asset_id" field.
func (_u *ListeningTestUpdate) AddAudioAssetID(v int) *ListeningTestUpdate {
	_u.mutation.AddAudioAssetID(v)
	return _u
}

// ClearAudioAssetID clears the value of the "audio_asset_id" field.
func (_u *ListeningTestUpdate) ClearAudioAssetID() *ListeningTestUpdate {
	_u.mutation.ClearAudioAssetID()
	return _u
}

// SetSections sets the "sections" field.
func (_u *ListeningTestUpdate) SetSections(v []schema.ListeningSection) *ListeningTestUpdate {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *ListeningTestUpdate) AppendSections(v []schema.ListeningSection) *ListeningTestUpdate {
	_u.mutation.AppendSections(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ListeningTestUpdate) SetActive(v bool) *ListeningTestUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ListeningTestUpdate) SetNillableActive(v *bool) *ListeningTestUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ListeningTestMutation object of the builder.
func (_u *ListeningTestUpdate) Mutation() *ListeningTestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListeningTestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListeningTestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListeningTestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListeningTestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListeningTestUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := listeningtest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ListeningTest.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ListeningTestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listeningtest.Table, listeningtest.Columns, sqlgraph.NewFieldSpec(listeningtest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(listeningtest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(listeningtest.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioAssetID(); ok {
		_spec.SetField(listeningtest.FieldAudioAssetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioAssetID(); ok {
		_spec.AddField(listeningtest.FieldAudioAssetID, field.TypeInt, value)
	}
	if _u.mutation.AudioAssetIDCleared() {
		_spec.ClearField(listeningtest.FieldAudioAssetID, field.TypeInt)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(listeningtest.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, listeningtest.FieldSections, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(listeningtest.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listeningtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListeningTestUpdateOne is the builder for updating a single ListeningTest entity.
type ListeningTestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListeningTestMutation
}

// SetTitle sets the "title" field.
func (_u *ListeningTestUpdateOne) SetTitle(v string) *ListeningTestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ListeningTestUpdateOne) SetNillableTitle(v *string) *ListeningTestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ListeningTestUpdateOne) SetDescription(v string) *ListeningTestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ListeningTestUpdateOne) SetNillableDescription(v *string) *ListeningTestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAudioAssetID sets the "audio_asset_id" field.
func (_u *ListeningTestUpdateOne) SetAudioAssetID(v int) *ListeningTestUpdateOne {
	_u.mutation.ResetAudioAssetID()
	_u.mutation.SetAudioAssetID(v)
	return _u
}

// SetNillableAudioAssetID sets the "audio_asset_id" field if the given value is not nil.
func (_u *ListeningTestUpdateOne) SetNillableAudioAssetID(v *int) *ListeningTestUpdateOne {
	if v != nil {
		_u.SetAudioAssetID(*v)
	}
	return _u
}

// AddAudioAssetID adds value to the "audio_asset_id" field.
func (_u *ListeningTestUpdateOne) AddAudioAssetID(v int) *ListeningTestUpdateOne {
	_u.mutation.AddAudioAssetID(v)
	return _u
}

// ClearAudioAssetID clears the value of the "audio_asset_id" field.
func (_u *ListeningTestUpdateOne) ClearAudioAssetID() *ListeningTestUpdateOne {
	_u.mutation.ClearAudioAssetID()
	return _u
}

// SetSections sets the "sections" field.
func (_u *ListeningTestUpdateOne) SetSections(v []schema.ListeningSection) *ListeningTestUpdateOne {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *ListeningTestUpdateOne) AppendSections(v []schema.ListeningSection) *ListeningTestUpdateOne {
	_u.mutation.AppendSections(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ListeningTestUpdateOne) SetActive(v bool) *ListeningTestUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ListeningTestUpdateOne) SetNillableActive(v *bool) *ListeningTestUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ListeningTestMutation object of the builder.
func (_u *ListeningTestUpdateOne) Mutation() *ListeningTestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ListeningTestUpdate builder.
func (_u *ListeningTestUpdateOne) Where(ps ...predicate.ListeningTest) *ListeningTestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListeningTestUpdateOne) Select(field string, fields ...string) *ListeningTestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ListeningTest entity.
func (_u *ListeningTestUpdateOne) Save(ctx context.Context) (*ListeningTest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListeningTestUpdateOne) SaveX(ctx context.Context) *ListeningTest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListeningTestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListeningTestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListeningTestUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := listeningtest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ListeningTest.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ListeningTestUpdateOne) sqlSave(ctx context.Context) (_node *ListeningTest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listeningtest.Table, listeningtest.Columns, sqlgraph.NewFieldSpec(listeningtest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ListeningTest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listeningtest.FieldID)
		for _, f := range fields {
			if !listeningtest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listeningtest.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(listeningtest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(listeningtest.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioAssetID(); ok {
		_spec.SetField(listeningtest.FieldAudioAssetID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioAssetID(); ok {
		_spec.AddField(listeningtest.FieldAudioAssetID, field.TypeInt, value)
	}
	if _u.mutation.AudioAssetIDCleared() {
		_spec.ClearField(listeningtest.FieldAudioAssetID, field.TypeInt)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(listeningtest.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, listeningtest.FieldSections, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(listeningtest.FieldActive, field.TypeBool, value)
	}
	_node = &ListeningTest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listeningtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
