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
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/readingtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
)

// ReadingTestUpdate is the builder for updating ReadingTest entities.
type ReadingTestUpdate struct {
	config
	hooks    []Hook
	mutation *ReadingTestMutation
}

// Where appends a list predicates to the ReadingTestUpdate builder.
func (_u *ReadingTestUpdate) Where(ps ...predicate.ReadingTest) *ReadingTestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReadingTestUpdate) SetTitle(v string) *ReadingTestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReadingTestUpdate) SetNillableTitle(v *string) *ReadingTestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ReadingTestUpdate) SetDescription(v string) *ReadingTestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ReadingTestUpdate) SetNillableDescription(v *string) *ReadingTestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPassages sets the "passages" field.
func (_u *ReadingTestUpdate) SetPassages(v []schema.ReadingPassage) *ReadingTestUpdate {
	_u.mutation.SetPassages(v)
	return _u
}

// AppendPassages appends value to the "passages" field.
func (_u *ReadingTestUpdate) AppendPassages(v []schema.ReadingPassage) *ReadingTestUpdate {
	_u.mutation.AppendPassages(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ReadingTestUpdate) SetActive(v bool) *ReadingTestUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ReadingTestUpdate) SetNillableActive(v *bool) *ReadingTestUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ReadingTestMutation object of the builder.
func (_u *ReadingTestUpdate) Mutation() *ReadingTestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReadingTestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadingTestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReadingTestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadingTestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadingTestUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := readingtest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ReadingTest.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadingTestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readingtest.Table, readingtest.Columns, sqlgraph.NewFieldSpec(readingtest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(readingtest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(readingtest.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passages(); ok {
		_spec.SetField(readingtest.FieldPassages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPassages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, readingtest.FieldPassages, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(readingtest.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readingtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReadingTestUpdateOne is the builder for updating a single ReadingTest entity.
type ReadingTestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReadingTestMutation
}

// SetTitle sets the "title" field.
func (_u *ReadingTestUpdateOne) SetTitle(v string) *ReadingTestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReadingTestUpdateOne) SetNillableTitle(v *string) *ReadingTestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ReadingTestUpdateOne) SetDescription(v string) *ReadingTestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ReadingTestUpdateOne) SetNillableDescription(v *string) *ReadingTestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPassages sets the "passages" field.
func (_u *ReadingTestUpdateOne) SetPassages(v []schema.ReadingPassage) *ReadingTestUpdateOne {
	_u.mutation.SetPassages(v)
	return _u
}

// AppendPassages appends value to the "passages" field.
func (_u *ReadingTestUpdateOne) AppendPassages(v []schema.ReadingPassage) *ReadingTestUpdateOne {
	_u.mutation.AppendPassages(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ReadingTestUpdateOne) SetActive(v bool) *ReadingTestUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ReadingTestUpdateOne) SetNillableActive(v *bool) *ReadingTestUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ReadingTestMutation object of the builder.
func (_u *ReadingTestUpdateOne) Mutation() *ReadingTestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReadingTestUpdate builder.
func (_u *ReadingTestUpdateOne) Where(ps ...predicate.ReadingTest) *ReadingTestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReadingTestUpdateOne) Select(field string, fields ...string) *ReadingTestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReadingTest entity.
func (_u *ReadingTestUpdateOne) Save(ctx context.Context) (*ReadingTest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadingTestUpdateOne) SaveX(ctx context.Context) *ReadingTest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReadingTestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadingTestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadingTestUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := readingtest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ReadingTest.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadingTestUpdateOne) sqlSave(ctx context.Context) (_node *ReadingTest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readingtest.Table, readingtest.Columns, sqlgraph.NewFieldSpec(readingtest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReadingTest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, readingtest.FieldID)
		for _, f := range fields {
			if !readingtest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != readingtest.FieldID {
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
		_spec.SetField(readingtest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(readingtest.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passages(); ok {
		_spec.SetField(readingtest.FieldPassages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPassages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, readingtest.FieldPassages, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(readingtest.FieldActive, field.TypeBool, value)
	}
	_node = &ReadingTest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readingtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
