// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/formstate/formstate/ent/formbehavior"
	"github.com/formstate/formstate/ent/predicate"
)

// FormBehaviorDelete is the builder for deleting a FormBehavior entity.
type FormBehaviorDelete struct {
	config
	hooks    []Hook
	mutation *FormBehaviorMutation
}

// Where appends a list predicates to the FormBehaviorDelete builder.
func (_d *FormBehaviorDelete) Where(ps ...predicate.FormBehavior) *FormBehaviorDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FormBehaviorDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FormBehaviorDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FormBehaviorDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(formbehavior.Table, sqlgraph.NewFieldSpec(formbehavior.FieldID, field.TypeUUID))
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

// FormBehaviorDeleteOne is the builder for deleting a single FormBehavior entity.
type FormBehaviorDeleteOne struct {
	_d *FormBehaviorDelete
}

// Where appends a list predicates to the FormBehaviorDelete builder.
func (_d *FormBehaviorDeleteOne) Where(ps ...predicate.FormBehavior) *FormBehaviorDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FormBehaviorDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{formbehavior.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FormBehaviorDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
