// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/answerrecord"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// AnswerRecordDelete is the builder for deleting a AnswerRecord entity.
type AnswerRecordDelete struct {
	config
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// Where appends a list predicates to the AnswerRecordDelete builder.
func (_d *AnswerRecordDelete) Where(ps ...predicate.AnswerRecord) *AnswerRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnswerRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnswerRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnswerRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(answerrecord.Table, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnswerRecordDeleteOne is the builder for deleting a single AnswerRecord entity.
type AnswerRecordDeleteOne struct {
	_d *AnswerRecordDelete
}

// Where appends a list predicates to the AnswerRecordDelete builder.
func (_d *AnswerRecordDeleteOne) Where(ps ...predicate.AnswerRecord) *AnswerRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnswerRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{answerrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnswerRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
