// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/formstate/formstate/ent/formbehavior"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/internal/behavior"
	"github.com/google/uuid"
)

// FormBehaviorCreate is the builder for creating a FormBehavior entity.
type FormBehaviorCreate struct {
	config
	mutation *FormBehaviorMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FormBehaviorCreate) SetCreatedAt(v time.Time) *FormBehaviorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FormBehaviorCreate) SetNillableCreatedAt(v *time.Time) *FormBehaviorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FormBehaviorCreate) SetUpdatedAt(v time.Time) *FormBehaviorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FormBehaviorCreate) SetNillableUpdatedAt(v *time.Time) *FormBehaviorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *FormBehaviorCreate) SetCreatedBy(v string) *FormBehaviorCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *FormBehaviorCreate) SetUpdatedBy(v string) *FormBehaviorCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *FormBehaviorCreate) SetSource(v formbehavior.Source) *FormBehaviorCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *FormBehaviorCreate) SetCorrelationID(v string) *FormBehaviorCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *FormBehaviorCreate) SetNillableCorrelationID(v *string) *FormBehaviorCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *FormBehaviorCreate) SetState(v string) *FormBehaviorCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *FormBehaviorCreate) SetAction(v formbehavior.Action) *FormBehaviorCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_c *FormBehaviorCreate) SetNillableAction(v *formbehavior.Action) *FormBehaviorCreate {
	if v != nil {
		_c.SetAction(*v)
	}
	return _c
}

// SetRows sets the "rows" field.
func (_c *FormBehaviorCreate) SetRows(v []behavior.Row) *FormBehaviorCreate {
	_c.mutation.SetRows(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FormBehaviorCreate) SetID(v uuid.UUID) *FormBehaviorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FormBehaviorCreate) SetNillableID(v *uuid.UUID) *FormBehaviorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFormID sets the "form" edge to the FormDefinition entity by ID.
func (_c *FormBehaviorCreate) SetFormID(id uuid.UUID) *FormBehaviorCreate {
	_c.mutation.SetFormID(id)
	return _c
}

// SetForm sets the "form" edge to the FormDefinition entity.
func (_c *FormBehaviorCreate) SetForm(v *FormDefinition) *FormBehaviorCreate {
	return _c.SetFormID(v.ID)
}

// Mutation returns the FormBehaviorMutation object of the builder.
func (_c *FormBehaviorCreate) Mutation() *FormBehaviorMutation {
	return _c.mutation
}

// Save creates the FormBehavior in the database.
func (_c *FormBehaviorCreate) Save(ctx context.Context) (*FormBehavior, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FormBehaviorCreate) SaveX(ctx context.Context) *FormBehavior {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FormBehaviorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FormBehaviorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FormBehaviorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := formbehavior.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := formbehavior.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Action(); !ok {
		v := formbehavior.DefaultAction
		_c.mutation.SetAction(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := formbehavior.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FormBehaviorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FormBehavior.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FormBehavior.updated_at"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "FormBehavior.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := formbehavior.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.created_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedBy(); !ok {
		return &ValidationError{Name: "updated_by", err: errors.New(`ent: missing required field "FormBehavior.updated_by"`)}
	}
	if v, ok := _c.mutation.UpdatedBy(); ok {
		if err := formbehavior.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.updated_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "FormBehavior.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := formbehavior.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "FormBehavior.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := formbehavior.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "FormBehavior.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := formbehavior.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.action": %w`, err)}
		}
	}
	if len(_c.mutation.FormIDs()) == 0 {
		return &ValidationError{Name: "form", err: errors.New(`ent: missing required edge "FormBehavior.form"`)}
	}
	return nil
}

func (_c *FormBehaviorCreate) sqlSave(ctx context.Context) (*FormBehavior, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FormBehaviorCreate) createSpec() (*FormBehavior, *sqlgraph.CreateSpec) {
	var (
		_node = &FormBehavior{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(formbehavior.Table, sqlgraph.NewFieldSpec(formbehavior.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(formbehavior.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(formbehavior.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(formbehavior.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(formbehavior.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(formbehavior.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(formbehavior.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(formbehavior.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(formbehavior.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Rows(); ok {
		_spec.SetField(formbehavior.FieldRows, field.TypeJSON, value)
		_node.Rows = value
	}
	if nodes := _c.mutation.FormIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   formbehavior.FormTable,
			Columns: []string{formbehavior.FormColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formdefinition.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.form_definition_behaviors = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FormBehaviorCreateBulk is the builder for creating many FormBehavior entities in bulk.
type FormBehaviorCreateBulk struct {
	config
	err      error
	builders []*FormBehaviorCreate
}

// Save creates the FormBehavior entities in the database.
func (_c *FormBehaviorCreateBulk) Save(ctx context.Context) ([]*FormBehavior, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FormBehavior, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FormBehaviorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FormBehaviorCreateBulk) SaveX(ctx context.Context) []*FormBehavior {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FormBehaviorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FormBehaviorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
