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
	"github.com/formstate/formstate/ent/predicate"
	"github.com/formstate/formstate/internal/behavior"
	"github.com/google/uuid"
)

// FormBehaviorUpdate is the builder for updating FormBehavior entities.
type FormBehaviorUpdate struct {
	config
	hooks    []Hook
	mutation *FormBehaviorMutation
}

// Where appends a list predicates to the FormBehaviorUpdate builder.
func (_u *FormBehaviorUpdate) Where(ps ...predicate.FormBehavior) *FormBehaviorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FormBehaviorUpdate) SetUpdatedAt(v time.Time) *FormBehaviorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *FormBehaviorUpdate) SetCreatedBy(v string) *FormBehaviorUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *FormBehaviorUpdate) SetNillableCreatedBy(v *string) *FormBehaviorUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *FormBehaviorUpdate) SetUpdatedBy(v string) *FormBehaviorUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *FormBehaviorUpdate) SetNillableUpdatedBy(v *string) *FormBehaviorUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FormBehaviorUpdate) SetSource(v formbehavior.Source) *FormBehaviorUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FormBehaviorUpdate) SetNillableSource(v *formbehavior.Source) *FormBehaviorUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *FormBehaviorUpdate) SetCorrelationID(v string) *FormBehaviorUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *FormBehaviorUpdate) SetNillableCorrelationID(v *string) *FormBehaviorUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *FormBehaviorUpdate) ClearCorrelationID() *FormBehaviorUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetState sets the "state" field.
func (_u *FormBehaviorUpdate) SetState(v string) *FormBehaviorUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *FormBehaviorUpdate) SetNillableState(v *string) *FormBehaviorUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *FormBehaviorUpdate) SetAction(v formbehavior.Action) *FormBehaviorUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *FormBehaviorUpdate) SetNillableAction(v *formbehavior.Action) *FormBehaviorUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetRows sets the "rows" field.
func (_u *FormBehaviorUpdate) SetRows(v []behavior.Row) *FormBehaviorUpdate {
	_u.mutation.SetRows(v)
	return _u
}

// AppendRows appends value to the "rows" field.
func (_u *FormBehaviorUpdate) AppendRows(v []behavior.Row) *FormBehaviorUpdate {
	_u.mutation.AppendRows(v)
	return _u
}

// ClearRows clears the value of the "rows" field.
func (_u *FormBehaviorUpdate) ClearRows() *FormBehaviorUpdate {
	_u.mutation.ClearRows()
	return _u
}

// SetFormID sets the "form" edge to the FormDefinition entity by ID.
func (_u *FormBehaviorUpdate) SetFormID(id uuid.UUID) *FormBehaviorUpdate {
	_u.mutation.SetFormID(id)
	return _u
}

// SetForm sets the "form" edge to the FormDefinition entity.
func (_u *FormBehaviorUpdate) SetForm(v *FormDefinition) *FormBehaviorUpdate {
	return _u.SetFormID(v.ID)
}

// Mutation returns the FormBehaviorMutation object of the builder.
func (_u *FormBehaviorUpdate) Mutation() *FormBehaviorMutation {
	return _u.mutation
}

// ClearForm clears the "form" edge to the FormDefinition entity.
func (_u *FormBehaviorUpdate) ClearForm() *FormBehaviorUpdate {
	_u.mutation.ClearForm()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FormBehaviorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormBehaviorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FormBehaviorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormBehaviorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FormBehaviorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := formbehavior.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormBehaviorUpdate) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := formbehavior.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := formbehavior.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := formbehavior.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := formbehavior.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := formbehavior.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.action": %w`, err)}
		}
	}
	if _u.mutation.FormCleared() && len(_u.mutation.FormIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FormBehavior.form"`)
	}
	return nil
}

func (_u *FormBehaviorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formbehavior.Table, formbehavior.Columns, sqlgraph.NewFieldSpec(formbehavior.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(formbehavior.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(formbehavior.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(formbehavior.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(formbehavior.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(formbehavior.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(formbehavior.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(formbehavior.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(formbehavior.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(formbehavior.FieldRows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, formbehavior.FieldRows, value)
		})
	}
	if _u.mutation.RowsCleared() {
		_spec.ClearField(formbehavior.FieldRows, field.TypeJSON)
	}
	if _u.mutation.FormCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formbehavior.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FormBehaviorUpdateOne is the builder for updating a single FormBehavior entity.
type FormBehaviorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FormBehaviorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FormBehaviorUpdateOne) SetUpdatedAt(v time.Time) *FormBehaviorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *FormBehaviorUpdateOne) SetCreatedBy(v string) *FormBehaviorUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *FormBehaviorUpdateOne) SetNillableCreatedBy(v *string) *FormBehaviorUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *FormBehaviorUpdateOne) SetUpdatedBy(v string) *FormBehaviorUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *FormBehaviorUpdateOne) SetNillableUpdatedBy(v *string) *FormBehaviorUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FormBehaviorUpdateOne) SetSource(v formbehavior.Source) *FormBehaviorUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FormBehaviorUpdateOne) SetNillableSource(v *formbehavior.Source) *FormBehaviorUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *FormBehaviorUpdateOne) SetCorrelationID(v string) *FormBehaviorUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *FormBehaviorUpdateOne) SetNillableCorrelationID(v *string) *FormBehaviorUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *FormBehaviorUpdateOne) ClearCorrelationID() *FormBehaviorUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetState sets the "state" field.
func (_u *FormBehaviorUpdateOne) SetState(v string) *FormBehaviorUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *FormBehaviorUpdateOne) SetNillableState(v *string) *FormBehaviorUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *FormBehaviorUpdateOne) SetAction(v formbehavior.Action) *FormBehaviorUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *FormBehaviorUpdateOne) SetNillableAction(v *formbehavior.Action) *FormBehaviorUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetRows sets the "rows" field.
func (_u *FormBehaviorUpdateOne) SetRows(v []behavior.Row) *FormBehaviorUpdateOne {
	_u.mutation.SetRows(v)
	return _u
}

// AppendRows appends value to the "rows" field.
func (_u *FormBehaviorUpdateOne) AppendRows(v []behavior.Row) *FormBehaviorUpdateOne {
	_u.mutation.AppendRows(v)
	return _u
}

// ClearRows clears the value of the "rows" field.
func (_u *FormBehaviorUpdateOne) ClearRows() *FormBehaviorUpdateOne {
	_u.mutation.ClearRows()
	return _u
}

// SetFormID sets the "form" edge to the FormDefinition entity by ID.
func (_u *FormBehaviorUpdateOne) SetFormID(id uuid.UUID) *FormBehaviorUpdateOne {
	_u.mutation.SetFormID(id)
	return _u
}

// SetForm sets the "form" edge to the FormDefinition entity.
func (_u *FormBehaviorUpdateOne) SetForm(v *FormDefinition) *FormBehaviorUpdateOne {
	return _u.SetFormID(v.ID)
}

// Mutation returns the FormBehaviorMutation object of the builder.
func (_u *FormBehaviorUpdateOne) Mutation() *FormBehaviorMutation {
	return _u.mutation
}

// ClearForm clears the "form" edge to the FormDefinition entity.
func (_u *FormBehaviorUpdateOne) ClearForm() *FormBehaviorUpdateOne {
	_u.mutation.ClearForm()
	return _u
}

// Where appends a list predicates to the FormBehaviorUpdate builder.
func (_u *FormBehaviorUpdateOne) Where(ps ...predicate.FormBehavior) *FormBehaviorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FormBehaviorUpdateOne) Select(field string, fields ...string) *FormBehaviorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FormBehavior entity.
func (_u *FormBehaviorUpdateOne) Save(ctx context.Context) (*FormBehavior, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormBehaviorUpdateOne) SaveX(ctx context.Context) *FormBehavior {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FormBehaviorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormBehaviorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FormBehaviorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := formbehavior.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormBehaviorUpdateOne) check() error {
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := formbehavior.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.created_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpdatedBy(); ok {
		if err := formbehavior.UpdatedByValidator(v); err != nil {
			return &ValidationError{Name: "updated_by", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.updated_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := formbehavior.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := formbehavior.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := formbehavior.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "FormBehavior.action": %w`, err)}
		}
	}
	if _u.mutation.FormCleared() && len(_u.mutation.FormIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FormBehavior.form"`)
	}
	return nil
}

func (_u *FormBehaviorUpdateOne) sqlSave(ctx context.Context) (_node *FormBehavior, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formbehavior.Table, formbehavior.Columns, sqlgraph.NewFieldSpec(formbehavior.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FormBehavior.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, formbehavior.FieldID)
		for _, f := range fields {
			if !formbehavior.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != formbehavior.FieldID {
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
		_spec.SetField(formbehavior.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(formbehavior.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(formbehavior.FieldUpdatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(formbehavior.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(formbehavior.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(formbehavior.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(formbehavior.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(formbehavior.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(formbehavior.FieldRows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, formbehavior.FieldRows, value)
		})
	}
	if _u.mutation.RowsCleared() {
		_spec.ClearField(formbehavior.FieldRows, field.TypeJSON)
	}
	if _u.mutation.FormCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FormBehavior{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formbehavior.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
