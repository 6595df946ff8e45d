// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/audioasset"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/predicate"
)

// AudioAssetDelete is the builder for deleting a AudioAsset entity.
type AudioAssetDelete struct {
	config
	hooks    []Hook
	mutation *AudioAssetMutation
}

// Where appends a list predicates to the AudioAssetDelete builder.
func (_d *AudioAssetDelete) Where(ps ...predicate.AudioAsset) *AudioAssetDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AudioAssetDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AudioAssetDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AudioAssetDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(audioasset.Table, sqlgraph.NewFieldSpec(audioasset.FieldID, field.TypeInt))
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

// AudioAssetDeleteOne is the builder for deleting a single AudioAsset entity.
type AudioAssetDeleteOne struct {
	_d *AudioAssetDelete
}

// Where appends a list predicates to the AudioAssetDelete builder.
func (_d *AudioAssetDeleteOne) Where(ps ...predicate.AudioAsset) *AudioAssetDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AudioAssetDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{audioasset.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AudioAssetDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
