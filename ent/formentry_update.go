// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/ent/formentry"
	"github.com/formstate/formstate/ent/predicate"
	"github.com/google/uuid"
)

// FormEntryUpdate is the builder for updating FormEntry entities.
type FormEntryUpdate struct {
	config
	hooks    []Hook
	mutation *FormEntryMutation
}

// Where appends a list predicates to the FormEntryUpdate builder.
func (_u *FormEntryUpdate) Where(ps ...predicate.FormEntry) *FormEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FormEntryUpdate) SetUpdatedAt(v time.Time) *FormEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *FormEntryUpdate) SetCreatedBy(v string) *FormEntryUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *FormEntryUpdate) SetNillableCreatedBy(v *string) *FormEntryUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *FormEntryUpdate) SetUpdatedBy(v string) *FormEntryUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *FormEntryUpdate) SetNillableUpdatedBy(v *string) *FormEntryUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FormEntryUpdate) SetSource(v formentry.Source) *FormEntryUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FormEntryUpdate) SetNillableSource(v *formentry.Source) *FormEntryUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *FormEntryUpdate) SetCorrelationID(v string) *FormEntryUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *FormEntryUpdate) SetNillableCorrelationID(v *string) *FormEntryUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *FormEntryUpdate) ClearCorrelationID() *FormEntryUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetState sets the "state" field.
func (_u *FormEntryUpdate) SetState(v string) *FormEntryUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *FormEntryUpdate) SetNillableState(v *string) *FormEntryUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *FormEntryUpdate) SetData(v map[string]interface{}) *FormEntryUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetFormID sets the "form" edge to the FormDefinition entity by ID.
func (_u *FormEntryUpdate) SetFormID(id uuid.UUID) *FormEntryUpdate {
	_u.mutation.SetFormID(id)
	return _u
}

// SetForm sets the "form" edge to the FormDefinition entity.
func (_u *FormEntryUpdate) SetForm(v *FormDefinition) *FormEntryUpdate {
	return _u.SetFormID(v.ID)
}

// Mutation returns the FormEntryMutation object of the builder.
func (_u *FormEntryUpdate) Mutation() *FormEntryMutation {
	return _u.mutation
}

// ClearForm clears the "form" edge to the FormDefinition entity.
func (_u *FormEntryUpdate) ClearForm() *FormEntryUpdate {
	_u.mutation.ClearForm()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FormEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FormEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FormEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := formentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormEntryUpdate) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := formentry.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FormEntry.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := formentry.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FormEntry.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := formentry.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FormEntry.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := formentry.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "FormEntry.state": %w`, err)}
		}
	}
	if _u.mutation.FormCleared() && len(_u.mutation.FormIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FormEntry.form"`)
	}
	return nil
}

func (_u *FormEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formentry.Table, formentry.Columns, sqlgraph.NewFieldSpec(formentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(formentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(formentry.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(formentry.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(formentry.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(formentry.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(formentry.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(formentry.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(formentry.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.FormCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FormEntryUpdateOne is the builder for updating a single FormEntry entity.
type FormEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FormEntryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FormEntryUpdateOne) SetUpdatedAt(v time.Time) *FormEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *FormEntryUpdateOne) SetCreatedBy(v string) *FormEntryUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *FormEntryUpdateOne) SetNillableCreatedBy(v *string) *FormEntryUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *FormEntryUpdateOne) SetUpdatedBy(v string) *FormEntryUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *FormEntryUpdateOne) SetNillableUpdatedBy(v *string) *FormEntryUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FormEntryUpdateOne) SetSource(v formentry.Source) *FormEntryUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FormEntryUpdateOne) SetNillableSource(v *formentry.Source) *FormEntryUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *FormEntryUpdateOne) SetCorrelationID(v string) *FormEntryUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *FormEntryUpdateOne) SetNillableCorrelationID(v *string) *FormEntryUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *FormEntryUpdateOne) ClearCorrelationID() *FormEntryUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetState sets the "state" field.
func (_u *FormEntryUpdateOne) SetState(v string) *FormEntryUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *FormEntryUpdateOne) SetNillableState(v *string) *FormEntryUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *FormEntryUpdateOne) SetData(v map[string]interface{}) *FormEntryUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetFormID sets the "form" edge to the FormDefinition entity by ID.
func (_u *FormEntryUpdateOne) SetFormID(id uuid.UUID) *FormEntryUpdateOne {
	_u.mutation.SetFormID(id)
	return _u
}

// SetForm sets the "form" edge to the FormDefinition entity.
func (_u *FormEntryUpdateOne) SetForm(v *FormDefinition) *FormEntryUpdateOne {
	return _u.SetFormID(v.ID)
}

// Mutation returns the FormEntryMutation object of the builder.
func (_u *FormEntryUpdateOne) Mutation() *FormEntryMutation {
	return _u.mutation
}

// ClearForm clears the "form" edge to the FormDefinition entity.
func (_u *FormEntryUpdateOne) ClearForm() *FormEntryUpdateOne {
	_u.mutation.ClearForm()
	return _u
}

// Where appends a list predicates to the FormEntryUpdate builder.
func (_u *FormEntryUpdateOne) Where(ps ...predicate.FormEntry) *FormEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FormEntryUpdateOne) Select(field string, fields ...string) *FormEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FormEntry entity.
func (_u *FormEntryUpdateOne) Save(ctx context.Context) (*FormEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormEntryUpdateOne) SaveX(ctx context.Context) *FormEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FormEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FormEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := formentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormEntryUpdateOne) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := formentry.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FormEntry.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := formentry.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FormEntry.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := formentry.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FormEntry.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := formentry.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "FormEntry.state": %w`, err)}
		}
	}
	if _u.mutation.FormCleared() && len(_u.mutation.FormIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FormEntry.form"`)
	}
	return nil
}

func (_u *FormEntryUpdateOne) sqlSave(ctx context.Context) (_node *FormEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formentry.Table, formentry.Columns, sqlgraph.NewFieldSpec(formentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FormEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, formentry.FieldID)
		for _, f := range fields {
			if !formentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != formentry.FieldID {
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
		_spec.SetField(formentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(formentry.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(formentry.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(formentry.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(formentry.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(formentry.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(formentry.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(formentry.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.FormCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FormEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
