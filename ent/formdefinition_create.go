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
	"github.com/formstate/formstate/ent/formentry"
	"github.com/formstate/formstate/internal/form"
	"github.com/google/uuid"
)

// FormDefinitionCreate is the builder for creating a FormDefinition entity.
type FormDefinitionCreate struct {
	config
	mutation *FormDefinitionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FormDefinitionCreate) SetCreatedAt(v time.Time) *FormDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FormDefinitionCreate) SetNillableCreatedAt(v *time.Time) *FormDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FormDefinitionCreate) SetUpdatedAt(v time.Time) *FormDefinitionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FormDefinitionCreate) SetNillableUpdatedAt(v *time.Time) *FormDefinitionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *FormDefinitionCreate) SetCreatedBy(v string) *FormDefinitionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *FormDefinitionCreate) SetUpdatedBy(v string) *FormDefinitionCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *FormDefinitionCreate) SetSource(v formdefinition.Source) *FormDefinitionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *FormDefinitionCreate) SetCorrelationID(v string) *FormDefinitionCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *FormDefinitionCreate) SetNillableCorrelationID(v *string) *FormDefinitionCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *FormDefinitionCreate) SetName(v string) *FormDefinitionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *FormDefinitionCreate) SetDescription(v string) *FormDefinitionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *FormDefinitionCreate) SetNillableDescription(v *string) *FormDefinitionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSchema sets the "schema" field.
func (_c *FormDefinitionCreate) SetSchema(v *form.Node) *FormDefinitionCreate {
	_c.mutation.SetSchema(v)
	return _c
}

// SetStates sets the "states" field.
func (_c *FormDefinitionCreate) SetStates(v []string) *FormDefinitionCreate {
	_c.mutation.SetStates(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FormDefinitionCreate) SetID(v uuid.UUID) *FormDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FormDefinitionCreate) SetNillableID(v *uuid.UUID) *FormDefinitionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddBehaviorIDs adds the "behaviors" edge to the FormBehavior entity by IDs.
func (_c *FormDefinitionCreate) AddBehaviorIDs(ids ...uuid.UUID) *FormDefinitionCreate {
	_c.mutation.AddBehaviorIDs(ids...)
	return _c
}

// AddBehaviors adds the "behaviors" edges to the FormBehavior entity.
func (_c *FormDefinitionCreate) AddBehaviors(v ...*FormBehavior) *FormDefinitionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBehaviorIDs(ids...)
}

// AddEntryIDs adds the "entries" edge to the FormEntry entity by IDs.
func (_c *FormDefinitionCreate) AddEntryIDs(ids ...uuid.UUID) *FormDefinitionCreate {
	_c.mutation.AddEntryIDs(ids...)
	return _c
}

// AddEntries adds the "entries" edges to the FormEntry entity.
func (_c *FormDefinitionCreate) AddEntries(v ...*FormEntry) *FormDefinitionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntryIDs(ids...)
}

// Mutation returns the FormDefinitionMutation object of the builder.
func (_c *FormDefinitionCreate) Mutation() *FormDefinitionMutation {
	return _c.mutation
}

// Save creates the FormDefinition in the database.
func (_c *FormDefinitionCreate) Save(ctx context.Context) (*FormDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FormDefinitionCreate) SaveX(ctx context.Context) *FormDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FormDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FormDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FormDefinitionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := formdefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := formdefinition.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := formdefinition.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FormDefinitionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FormDefinition.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FormDefinition.updated_at"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "FormDefinition.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := formdefinition.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.created_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedBy(); !ok {
		return &ValidationError{Name: "updated_by", err: errors.New(`ent: missing required field "FormDefinition.updated_by"`)}
	}
	if v, ok := _c.mutation.UpdatedBy(); ok {
		if err := formdefinition.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.updated_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "FormDefinition.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := formdefinition.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "FormDefinition.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := formdefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Schema(); !ok {
		return &ValidationError{Name: "schema", err: errors.New(`ent: missing required field "FormDefinition.schema"`)}
	}
	if _, ok := _c.mutation.States(); !ok {
		return &ValidationError{Name: "states", err: errors.New(`ent: missing required field "FormDefinition.states"`)}
	}
	return nil
}

func (_c *FormDefinitionCreate) sqlSave(ctx context.Context) (*FormDefinition, error) {
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

func (_c *FormDefinitionCreate) createSpec() (*FormDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &FormDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(formdefinition.Table, sqlgraph.NewFieldSpec(formdefinition.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(formdefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(formdefinition.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(formdefinition.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(formdefinition.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(formdefinition.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(formdefinition.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(formdefinition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(formdefinition.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Schema(); ok {
		_spec.SetField(formdefinition.FieldSchema, field.TypeJSON, value)
		_node.Schema = value
	}
	if value, ok := _c.mutation.States(); ok {
		_spec.SetField(formdefinition.FieldStates, field.TypeJSON, value)
		_node.States = value
	}
	if nodes := _c.mutation.BehaviorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   formdefinition.BehaviorsTable,
			Columns: []string{formdefinition.BehaviorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formbehavior.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   formdefinition.EntriesTable,
			Columns: []string{formdefinition.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FormDefinitionCreateBulk is the builder for creating many FormDefinition entities in bulk.
type FormDefinitionCreateBulk struct {
	config
	err      error
	builders []*FormDefinitionCreate
}

// Save creates the FormDefinition entities in the database.
func (_c *FormDefinitionCreateBulk) Save(ctx context.Context) ([]*FormDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FormDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FormDefinitionMutation)
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
func (_c *FormDefinitionCreateBulk) SaveX(ctx context.Context) []*FormDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FormDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FormDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
