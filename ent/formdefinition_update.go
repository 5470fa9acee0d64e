// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/formstate/formstate/ent/formbehavior"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/ent/formentry"
	"github.com/formstate/formstate/ent/predicate"
	"github.com/formstate/formstate/internal/form"
	"github.com/google/uuid"
)

// FormDefinitionUpdate is the builder for updating FormDefinition entities.
type FormDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *FormDefinitionMutation
}

// Where appends a list predicates to the FormDefinitionUpdate builder.
func (_u *FormDefinitionUpdate) Where(ps ...predicate.FormDefinition) *FormDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FormDefinitionUpdate) SetUpdatedAt(v time.Time) *FormDefinitionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *FormDefinitionUpdate) SetCreatedBy(v string) *FormDefinitionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *FormDefinitionUpdate) SetNillableCreatedBy(v *string) *FormDefinitionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *FormDefinitionUpdate) SetUpdatedBy(v string) *FormDefinitionUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *FormDefinitionUpdate) SetNillableUpdatedBy(v *string) *FormDefinitionUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FormDefinitionUpdate) SetSource(v formdefinition.Source) *FormDefinitionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FormDefinitionUpdate) SetNillableSource(v *formdefinition.Source) *FormDefinitionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *FormDefinitionUpdate) SetCorrelationID(v string) *FormDefinitionUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *FormDefinitionUpdate) SetNillableCorrelationID(v *string) *FormDefinitionUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *FormDefinitionUpdate) ClearCorrelationID() *FormDefinitionUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetName sets the "name" field.
func (_u *FormDefinitionUpdate) SetName(v string) *FormDefinitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FormDefinitionUpdate) SetNillableName(v *string) *FormDefinitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FormDefinitionUpdate) SetDescription(v string) *FormDefinitionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FormDefinitionUpdate) SetNillableDescription(v *string) *FormDefinitionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FormDefinitionUpdate) ClearDescription() *FormDefinitionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSchema sets the "schema" field.
func (_u *FormDefinitionUpdate) SetSchema(v *form.Node) *FormDefinitionUpdate {
	_u.mutation.SetSchema(v)
	return _u
}

// SetStates sets the "states" field.
func (_u *FormDefinitionUpdate) SetStates(v []string) *FormDefinitionUpdate {
	_u.mutation.SetStates(v)
	return _u
}

// AppendStates appends value to the "states" field.
func (_u *FormDefinitionUpdate) AppendStates(v []string) *FormDefinitionUpdate {
	_u.mutation.AppendStates(v)
	return _u
}

// AddBehaviorIDs adds the "behaviors" edge to the FormBehavior entity by IDs.
func (_u *FormDefinitionUpdate) AddBehaviorIDs(ids ...uuid.UUID) *FormDefinitionUpdate {
	_u.mutation.AddBehaviorIDs(ids...)
	return _u
}

// AddBehaviors adds the "behaviors" edges to the FormBehavior entity.
func (_u *FormDefinitionUpdate) AddBehaviors(v ...*FormBehavior) *FormDefinitionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBehaviorIDs(ids...)
}

// AddEntryIDs adds the "entries" edge to the FormEntry entity by IDs.
func (_u *FormDefinitionUpdate) AddEntryIDs(ids ...uuid.UUID) *FormDefinitionUpdate {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the FormEntry entity.
func (_u *FormDefinitionUpdate) AddEntries(v ...*FormEntry) *FormDefinitionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// Mutation returns the FormDefinitionMutation object of the builder.
func (_u *FormDefinitionUpdate) Mutation() *FormDefinitionMutation {
	return _u.mutation
}

// ClearBehaviors clears all "behaviors" edges to the FormBehavior entity.
func (_u *FormDefinitionUpdate) ClearBehaviors() *FormDefinitionUpdate {
	_u.mutation.ClearBehaviors()
	return _u
}

// RemoveBehaviorIDs removes the "behaviors" edge to FormBehavior entities by IDs.
func (_u *FormDefinitionUpdate) RemoveBehaviorIDs(ids ...uuid.UUID) *FormDefinitionUpdate {
	_u.mutation.RemoveBehaviorIDs(ids...)
	return _u
}

// RemoveBehaviors removes "behaviors" edges to FormBehavior entities.
func (_u *FormDefinitionUpdate) RemoveBehaviors(v ...*FormBehavior) *FormDefinitionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBehaviorIDs(ids...)
}

// ClearEntries clears all "entries" edges to the FormEntry entity.
func (_u *FormDefinitionUpdate) ClearEntries() *FormDefinitionUpdate {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to FormEntry entities by IDs.
func (_u *FormDefinitionUpdate) RemoveEntryIDs(ids ...uuid.UUID) *FormDefinitionUpdate {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to FormEntry entities.
func (_u *FormDefinitionUpdate) RemoveEntries(v ...*FormEntry) *FormDefinitionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FormDefinitionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FormDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FormDefinitionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := formdefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormDefinitionUpdate) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := formdefinition.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := formdefinition.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := formdefinition.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := formdefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FormDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formdefinition.Table, formdefinition.Columns, sqlgraph.NewFieldSpec(formdefinition.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(formdefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(formdefinition.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(formdefinition.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(formdefinition.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(formdefinition.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(formdefinition.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(formdefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(formdefinition.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(formdefinition.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(formdefinition.FieldSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.States(); ok {
		_spec.SetField(formdefinition.FieldStates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, formdefinition.FieldStates, value)
		})
	}
	if _u.mutation.BehaviorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBehaviorsIDs(); len(nodes) > 0 && !_u.mutation.BehaviorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BehaviorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FormDefinitionUpdateOne is the builder for updating a single FormDefinition entity.
type FormDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FormDefinitionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FormDefinitionUpdateOne) SetUpdatedAt(v time.Time) *FormDefinitionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *FormDefinitionUpdateOne) SetCreatedBy(v string) *FormDefinitionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *FormDefinitionUpdateOne) SetNillableCreatedBy(v *string) *FormDefinitionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *FormDefinitionUpdateOne) SetUpdatedBy(v string) *FormDefinitionUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *FormDefinitionUpdateOne) SetNillableUpdatedBy(v *string) *FormDefinitionUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FormDefinitionUpdateOne) SetSource(v formdefinition.Source) *FormDefinitionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FormDefinitionUpdateOne) SetNillableSource(v *formdefinition.Source) *FormDefinitionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *FormDefinitionUpdateOne) SetCorrelationID(v string) *FormDefinitionUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *FormDefinitionUpdateOne) SetNillableCorrelationID(v *string) *FormDefinitionUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *FormDefinitionUpdateOne) ClearCorrelationID() *FormDefinitionUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetName sets the "name" field.
func (_u *FormDefinitionUpdateOne) SetName(v string) *FormDefinitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FormDefinitionUpdateOne) SetNillableName(v *string) *FormDefinitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FormDefinitionUpdateOne) SetDescription(v string) *FormDefinitionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FormDefinitionUpdateOne) SetNillableDescription(v *string) *FormDefinitionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FormDefinitionUpdateOne) ClearDescription() *FormDefinitionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSchema sets the "schema" field.
func (_u *FormDefinitionUpdateOne) SetSchema(v *form.Node) *FormDefinitionUpdateOne {
	_u.mutation.SetSchema(v)
	return _u
}

// SetStates sets the "states" field.
func (_u *FormDefinitionUpdateOne) SetStates(v []string) *FormDefinitionUpdateOne {
	_u.mutation.SetStates(v)
	return _u
}

// AppendStates appends value to the "states" field.
func (_u *FormDefinitionUpdateOne) AppendStates(v []string) *FormDefinitionUpdateOne {
	_u.mutation.AppendStates(v)
	return _u
}

// AddBehaviorIDs adds the "behaviors" edge to the FormBehavior entity by IDs.
func (_u *FormDefinitionUpdateOne) AddBehaviorIDs(ids ...uuid.UUID) *FormDefinitionUpdateOne {
	_u.mutation.AddBehaviorIDs(ids...)
	return _u
}

// AddBehaviors adds the "behaviors" edges to the FormBehavior entity.
func (_u *FormDefinitionUpdateOne) AddBehaviors(v ...*FormBehavior) *FormDefinitionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBehaviorIDs(ids...)
}

// AddEntryIDs adds the "entries" edge to the FormEntry entity by IDs.
func (_u *FormDefinitionUpdateOne) AddEntryIDs(ids ...uuid.UUID) *FormDefinitionUpdateOne {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the FormEntry entity.
func (_u *FormDefinitionUpdateOne) AddEntries(v ...*FormEntry) *FormDefinitionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// Mutation returns the FormDefinitionMutation object of the builder.
func (_u *FormDefinitionUpdateOne) Mutation() *FormDefinitionMutation {
	return _u.mutation
}

// ClearBehaviors clears all "behaviors" edges to the FormBehavior entity.
func (_u *FormDefinitionUpdateOne) ClearBehaviors() *FormDefinitionUpdateOne {
	_u.mutation.ClearBehaviors()
	return _u
}

// RemoveBehaviorIDs removes the "behaviors" edge to FormBehavior entities by IDs.
func (_u *FormDefinitionUpdateOne) RemoveBehaviorIDs(ids ...uuid.UUID) *FormDefinitionUpdateOne {
	_u.mutation.RemoveBehaviorIDs(ids...)
	return _u
}

// RemoveBehaviors removes "behaviors" edges to FormBehavior entities.
func (_u *FormDefinitionUpdateOne) RemoveBehaviors(v ...*FormBehavior) *FormDefinitionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBehaviorIDs(ids...)
}

// ClearEntries clears all "entries" edges to the FormEntry entity.
func (_u *FormDefinitionUpdateOne) ClearEntries() *FormDefinitionUpdateOne {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to FormEntry entities by IDs.
func (_u *FormDefinitionUpdateOne) RemoveEntryIDs(ids ...uuid.UUID) *FormDefinitionUpdateOne {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to FormEntry entities.
func (_u *FormDefinitionUpdateOne) RemoveEntries(v ...*FormEntry) *FormDefinitionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// Where appends a list predicates to the FormDefinitionUpdate builder.
func (_u *FormDefinitionUpdateOne) Where(ps ...predicate.FormDefinition) *FormDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FormDefinitionUpdateOne) Select(field string, fields ...string) *FormDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FormDefinition entity.
func (_u *FormDefinitionUpdateOne) Save(ctx context.Context) (*FormDefinition, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormDefinitionUpdateOne) SaveX(ctx context.Context) *FormDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FormDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FormDefinitionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := formdefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := formdefinition.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := formdefinition.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := formdefinition.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := formdefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FormDefinition.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FormDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *FormDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formdefinition.Table, formdefinition.Columns, sqlgraph.NewFieldSpec(formdefinition.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FormDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, formdefinition.FieldID)
		for _, f := range fields {
			if !formdefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != formdefinition.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(formdefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(formdefinition.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(formdefinition.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(formdefinition.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(formdefinition.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(formdefinition.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(formdefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(formdefinition.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(formdefinition.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(formdefinition.FieldSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.States(); ok {
		_spec.SetField(formdefinition.FieldStates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, formdefinition.FieldStates, value)
		})
	}
	if _u.mutation.BehaviorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBehaviorsIDs(); len(nodes) > 0 && !_u.mutation.BehaviorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BehaviorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FormDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
