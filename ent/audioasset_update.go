// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/audioasset"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// AudioAssetUpdate is the builder for updating AudioAsset entities.
type AudioAssetUpdate struct {
	config
	hooks    []Hook
	mutation *AudioAssetMutation
}

// Where appends a list predicates to the AudioAssetUpdate builder.
func (_u *AudioAssetUpdate) Where(ps ...predicate.AudioAsset) *AudioAssetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *AudioAssetUpdate) SetFileName(v string) *AudioAssetUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableFileName(v *string) *AudioAssetUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetStoredName sets the "stored_name" field.
func (_u *AudioAssetUpdate) SetStoredName(v string) *AudioAssetUpdate {
	_u.mutation.SetStoredName(v)
	return _u
}

// SetNillableStoredName sets the "stored_name" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableStoredName(v *string) *AudioAssetUpdate {
	if v != nil {
		_u.SetStoredName(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *AudioAssetUpdate) SetContentType(v string) *AudioAssetUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableContentType(v *string) *AudioAssetUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AudioAssetUpdate) SetSizeBytes(v int64) *AudioAssetUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AudioAssetUpdate) SetNillableSizeBytes(v *int64) *AudioAssetUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AudioAssetUpdate) AddSizeBytes(v int64) *AudioAssetUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// Mutation returns the AudioAssetMutation object of the builder.
func (_u *AudioAssetUpdate) Mutation() *AudioAssetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AudioAssetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AudioAssetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AudioAssetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AudioAssetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AudioAssetUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := audioasset.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "AudioAsset.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoredName(); ok {
		if err := audioasset.StoredNameValidator(v); err != nil {
			return &ValidationError{Name: "stored_name", err: fmt.Errorf(`ent: validator failed for field "AudioAsset.stored_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := audioasset.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "AudioAsset.content_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AudioAssetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audioasset.Table, audioasset.Columns, sqlgraph.NewFieldSpec(audioasset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(audioasset.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredName(); ok {
		_spec.SetField(audioasset.FieldStoredName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(audioasset.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(audioasset.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(audioasset.FieldSizeBytes, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audioasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AudioAssetUpdateOne is the builder for updating a single AudioAsset entity.
type AudioAssetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AudioAssetMutation
}

// SetFileName sets the "file_name" field.
func (_u *AudioAssetUpdateOne) SetFileName(v string) *AudioAssetUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableFileName(v *string) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetStoredName sets the "stored_name" field.
func (_u *AudioAssetUpdateOne) SetStoredName(v string) *AudioAssetUpdateOne {
	_u.mutation.SetStoredName(v)
	return _u
}

// SetNillableStoredName sets the "stored_name" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableStoredName(v *string) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetStoredName(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *AudioAssetUpdateOne) SetContentType(v string) *AudioAssetUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableContentType(v *string) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AudioAssetUpdateOne) SetSizeBytes(v int64) *AudioAssetUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AudioAssetUpdateOne) SetNillableSizeBytes(v *int64) *AudioAssetUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AudioAssetUpdateOne) AddSizeBytes(v int64) *AudioAssetUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// Mutation returns the AudioAssetMutation object of the builder.
func (_u *AudioAssetUpdateOne) Mutation() *AudioAssetMutation {
	return _u.mutation
}

// Where appends a list predicates to the AudioAssetUpdate builder.
func (_u *AudioAssetUpdateOne) Where(ps ...predicate.AudioAsset) *AudioAssetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AudioAssetUpdateOne) Select(field string, fields ...string) *AudioAssetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AudioAsset entity.
func (_u *AudioAssetUpdateOne) Save(ctx context.Context) (*AudioAsset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AudioAssetUpdateOne) SaveX(ctx context.Context) *AudioAsset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AudioAssetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AudioAssetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AudioAssetUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := audioasset.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "AudioAsset.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoredName(); ok {
		if err := audioasset.StoredNameValidator(v); err != nil {
			return &ValidationError{Name: "stored_name", err: fmt.Errorf(`ent: validator failed for field "AudioAsset.stored_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := audioasset.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "AudioAsset.content_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AudioAssetUpdateOne) sqlSave(ctx context.Context) (_node *AudioAsset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audioasset.Table, audioasset.Columns, sqlgraph.NewFieldSpec(audioasset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AudioAsset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audioasset.FieldID)
		for _, f := range fields {
			if !audioasset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != audioasset.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(audioasset.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredName(); ok {
		_spec.SetField(audioasset.FieldStoredName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(audioasset.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(audioasset.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(audioasset.FieldSizeBytes, field.TypeInt64, value)
	}
	_node = &AudioAsset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audioasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
