// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/ent/formentry"
	"github.com/google/uuid"
)

// FormEntryCreate is the builder for creating a FormEntry entity.
type FormEntryCreate struct {
	config
	mutation *FormEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FormEntryCreate) SetCreatedAt(v time.Time) *FormEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FormEntryCreate) SetNillableCreatedAt(v *time.Time) *FormEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FormEntryCreate) SetUpdatedAt(v time.Time) *FormEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FormEntryCreate) SetNillableUpdatedAt(v *time.Time) *FormEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *FormEntryCreate) SetCreatedBy(v string) *FormEntryCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *FormEntryCreate) SetUpdatedBy(v string) *FormEntryCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *FormEntryCreate) SetSource(v formentry.Source) *FormEntryCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *FormEntryCreate) SetCorrelationID(v string) *FormEntryCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *FormEntryCreate) SetNillableCorrelationID(v *string) *FormEntryCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *FormEntryCreate) SetState(v string) *FormEntryCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetData sets the "data" field.
func (_c *FormEntryCreate) SetData(v map[string]interface{}) *FormEntryCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FormEntryCreate) SetID(v uuid.UUID) *FormEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FormEntryCreate) SetNillableID(v *uuid.UUID) *FormEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFormID sets the "form" edge to the FormDefinition entity by ID.
func (_c *FormEntryCreate) SetFormID(id uuid.UUID) *FormEntryCreate {
	_c.mutation.SetFormID(id)
	return _c
}

// SetForm sets the "form" edge to the FormDefinition entity.
func (_c *FormEntryCreate) SetForm(v *FormDefinition) *FormEntryCreate {
	return _c.SetFormID(v.ID)
}

// Mutation returns the FormEntryMutation object of the builder.
func (_c *FormEntryCreate) Mutation() *FormEntryMutation {
	return _c.mutation
}

// Save creates the FormEntry in the database.
func (_c *FormEntryCreate) Save(ctx context.Context) (*FormEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FormEntryCreate) SaveX(ctx context.Context) *FormEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FormEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FormEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FormEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := formentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := formentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := formentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FormEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FormEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FormEntry.updated_at"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "FormEntry.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := formentry.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FormEntry.created_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedBy(); !ok {
		return &ValidationError{Name: "updated_by", err: errors.New(`ent: missing required field "FormEntry.updated_by"`)}
	}
	if v, ok := _c.mutation.UpdatedBy(); ok {
		if err := formentry.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FormEntry.updated_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "FormEntry.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := formentry.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FormEntry.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "FormEntry.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := formentry.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "FormEntry.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "FormEntry.data"`)}
	}
	if len(_c.mutation.FormIDs()) == 0 {
		return &ValidationError{Name: "form", err: errors.New(`ent: missing required edge "FormEntry.form"`)}
	}
	return nil
}

func (_c *FormEntryCreate) sqlSave(ctx context.Context) (*FormEntry, error) {
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

func (_c *FormEntryCreate) createSpec() (*FormEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &FormEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(formentry.Table, sqlgraph.NewFieldSpec(formentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(formentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(formentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(formentry.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(formentry.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(formentry.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(formentry.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(formentry.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(formentry.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if nodes := _c.mutation.FormIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   formentry.FormTable,
			Columns: []string{formentry.FormColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formdefinition.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.form_definition_entries = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FormEntryCreateBulk is the builder for creating many FormEntry entities in bulk.
type FormEntryCreateBulk struct {
	config
	err      error
	builders []*FormEntryCreate
}

// Save creates the FormEntry entities in the database.
func (_c *FormEntryCreateBulk) Save(ctx context.Context) ([]*FormEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FormEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FormEntryMutation)
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
func (_c *FormEntryCreateBulk) SaveX(ctx context.Context) []*FormEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FormEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FormEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
