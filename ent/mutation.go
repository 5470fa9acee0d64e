// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/formstate/formstate/ent/formbehavior"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/ent/formentry"
	"github.com/formstate/formstate/ent/predicate"
	"github.com/formstate/formstate/internal/behavior"
	"github.com/formstate/formstate/internal/form"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFormBehavior   = "FormBehavior"
	TypeFormDefinition = "FormDefinition"
	TypeFormEntry      = "FormEntry"
)

// FormBehaviorMutation represents an operation that mutates the FormBehavior nodes in the graph.
type FormBehaviorMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	created_by     *string
	updated_by     *string
	source         *formbehavior.Source
	correlation_id *string
	state          *string
	action         *formbehavior.Action
	rows           *[]behavior.Row
	appendrows     []behavior.Row
	clearedFields  map[string]struct{}
	form           *uuid.UUID
	clearedform    bool
	done           bool
	oldValue       func(context.Context) (*FormBehavior, error)
	predicates     []predicate.FormBehavior
}

var _ ent.Mutation = (*FormBehaviorMutation)(nil)

// formbehaviorOption allows management of the mutation configuration using functional options.
type formbehaviorOption func(*FormBehaviorMutation)

// newFormBehaviorMutation creates new mutation for the FormBehavior entity.
func newFormBehaviorMutation(c config, op Op, opts ...formbehaviorOption) *FormBehaviorMutation {
	m := &FormBehaviorMutation{
		config:        c,
		op:            op,
		typ:           TypeFormBehavior,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFormBehaviorID sets the ID field of the mutation.
func withFormBehaviorID(id uuid.UUID) formbehaviorOption {
	return func(m *FormBehaviorMutation) {
		var (
			err   error
			once  sync.Once
			value *FormBehavior
		)
		m.oldValue = func(ctx context.Context) (*FormBehavior, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FormBehavior.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFormBehavior sets the old FormBehavior of the mutation.
func withFormBehavior(node *FormBehavior) formbehaviorOption {
	return func(m *FormBehaviorMutation) {
		m.oldValue = func(context.Context) (*FormBehavior, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FormBehaviorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FormBehaviorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FormBehavior entities.
func (m *FormBehaviorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FormBehaviorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FormBehaviorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FormBehavior.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FormBehaviorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FormBehaviorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FormBehavior entity.
// If the FormBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormBehaviorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FormBehaviorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FormBehaviorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FormBehaviorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FormBehavior entity.
// If the FormBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormBehaviorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FormBehaviorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *FormBehaviorMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *FormBehaviorMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the FormBehavior entity.
// If the FormBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormBehaviorMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *FormBehaviorMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *FormBehaviorMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *FormBehaviorMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the FormBehavior entity.
// If the FormBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormBehaviorMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *FormBehaviorMutation) ResetUpdatedBy() {
	m.updated_by = nil
}

// SetSource sets the "source" field.
func (m *FormBehaviorMutation) SetSource(f formbehavior.Source) {
	m.source = &f
}

// Source returns the value of the "source" field in the mutation.
func (m *FormBehaviorMutation) Source() (r formbehavior.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the FormBehavior entity.
// If the FormBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormBehaviorMutation) OldSource(ctx context.Context) (v formbehavior.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *FormBehaviorMutation) ResetSource() {
	m.source = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *FormBehaviorMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *FormBehaviorMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the FormBehavior entity.
// If the FormBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormBehaviorMutation) OldCorrelationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *FormBehaviorMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[formbehavior.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *FormBehaviorMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[formbehavior.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *FormBehaviorMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, formbehavior.FieldCorrelationID)
}

// SetState sets the "state" field.
func (m *FormBehaviorMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *FormBehaviorMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the FormBehavior entity.
// If the FormBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormBehaviorMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *FormBehaviorMutation) ResetState() {
	m.state = nil
}

// SetAction sets the "action" field.
func (m *FormBehaviorMutation) SetAction(f formbehavior.Action) {
	m.action = &f
}

// Action returns the value of the "action" field in the mutation.
func (m *FormBehaviorMutation) Action() (r formbehavior.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the FormBehavior entity.
// If the FormBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormBehaviorMutation) OldAction(ctx context.Context) (v formbehavior.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *FormBehaviorMutation) ResetAction() {
	m.action = nil
}

// SetRows sets the "rows" field.
func (m *FormBehaviorMutation) SetRows(b []behavior.Row) {
	m.rows = &b
	m.appendrows = nil
}

// Rows returns the value of the "rows" field in the mutation.
func (m *FormBehaviorMutation) Rows() (r []behavior.Row, exists bool) {
	v := m.rows
	if v == nil {
		return
	}
	return *v, true
}

// OldRows returns the old "rows" field's value of the FormBehavior entity.
// If the FormBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormBehaviorMutation) OldRows(ctx context.Context) (v []behavior.Row, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRows: %w", err)
	}
	return oldValue.Rows, nil
}

// AppendRows adds b to the "rows" field.
func (m *FormBehaviorMutation) AppendRows(b []behavior.Row) {
	m.appendrows = append(m.appendrows, b...)
}

// AppendedRows returns the list of values that were appended to the "rows" field in this mutation.
func (m *FormBehaviorMutation) AppendedRows() ([]behavior.Row, bool) {
	if len(m.appendrows) == 0 {
		return nil, false
	}
	return m.appendrows, true
}

// ClearRows clears the value of the "rows" field.
func (m *FormBehaviorMutation) ClearRows() {
	m.rows = nil
	m.appendrows = nil
	m.clearedFields[formbehavior.FieldRows] = struct{}{}
}

// RowsCleared returns if the "rows" field was cleared in this mutation.
func (m *FormBehaviorMutation) RowsCleared() bool {
	_, ok := m.clearedFields[formbehavior.FieldRows]
	return ok
}

// ResetRows resets all changes to the "rows" field.
func (m *FormBehaviorMutation) ResetRows() {
	m.rows = nil
	m.appendrows = nil
	delete(m.clearedFields, formbehavior.FieldRows)
}

// SetFormID sets the "form" edge to the FormDefinition entity by id.
func (m *FormBehaviorMutation) SetFormID(id uuid.UUID) {
	m.form = &id
}

// ClearForm clears the "form" edge to the FormDefinition entity.
func (m *FormBehaviorMutation) ClearForm() {
	m.clearedform = true
}

// FormCleared reports if the "form" edge to the FormDefinition entity was cleared.
func (m *FormBehaviorMutation) FormCleared() bool {
	return m.clearedform
}

// FormID returns the "form" edge ID in the mutation.
func (m *FormBehaviorMutation) FormID() (id uuid.UUID, exists bool) {
	if m.form != nil {
		return *m.form, true
	}
	return
}

// FormIDs returns the "form" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FormID instead. It exists only for internal usage by the builders.
func (m *FormBehaviorMutation) FormIDs() (ids []uuid.UUID) {
	if id := m.form; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetForm resets all changes to the "form" edge.
func (m *FormBehaviorMutation) ResetForm() {
	m.form = nil
	m.clearedform = false
}

// Where appends a list predicates to the FormBehaviorMutation builder.
func (m *FormBehaviorMutation) Where(ps ...predicate.FormBehavior) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FormBehaviorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FormBehaviorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FormBehavior, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FormBehaviorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FormBehaviorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FormBehavior).
func (m *FormBehaviorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FormBehaviorMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, formbehavior.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, formbehavior.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, formbehavior.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, formbehavior.FieldUpdatedBy)
	}
	if m.source != nil {
		fields = append(fields, formbehavior.FieldSource)
	}
	if m.correlation_id != nil {
		fields = append(fields, formbehavior.FieldCorrelationID)
	}
	if m.state != nil {
		fields = append(fields, formbehavior.FieldState)
	}
	if m.action != nil {
		fields = append(fields, formbehavior.FieldAction)
	}
	if m.rows != nil {
		fields = append(fields, formbehavior.FieldRows)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FormBehaviorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case formbehavior.FieldCreatedAt:
		return m.CreatedAt()
	case formbehavior.FieldUpdatedAt:
		return m.UpdatedAt()
	case formbehavior.FieldCreatedBy:
		return m.CreatedBy()
	case formbehavior.FieldUpdatedBy:
		return m.UpdatedBy()
	case formbehavior.FieldSource:
		return m.Source()
	case formbehavior.FieldCorrelationID:
		return m.CorrelationID()
	case formbehavior.FieldState:
		return m.State()
	case formbehavior.FieldAction:
		return m.Action()
	case formbehavior.FieldRows:
		return m.Rows()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FormBehaviorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case formbehavior.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case formbehavior.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case formbehavior.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case formbehavior.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case formbehavior.FieldSource:
		return m.OldSource(ctx)
	case formbehavior.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case formbehavior.FieldState:
		return m.OldState(ctx)
	case formbehavior.FieldAction:
		return m.OldAction(ctx)
	case formbehavior.FieldRows:
		return m.OldRows(ctx)
	}
	return nil, fmt.Errorf("unknown FormBehavior field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FormBehaviorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case formbehavior.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case formbehavior.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case formbehavior.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case formbehavior.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case formbehavior.FieldSource:
		v, ok := value.(formbehavior.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case formbehavior.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case formbehavior.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case formbehavior.FieldAction:
		v, ok := value.(formbehavior.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case formbehavior.FieldRows:
		v, ok := value.([]behavior.Row)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRows(v)
		return nil
	}
	return fmt.Errorf("unknown FormBehavior field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FormBehaviorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FormBehaviorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FormBehaviorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FormBehavior numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FormBehaviorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(formbehavior.FieldCorrelationID) {
		fields = append(fields, formbehavior.FieldCorrelationID)
	}
	if m.FieldCleared(formbehavior.FieldRows) {
		fields = append(fields, formbehavior.FieldRows)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FormBehaviorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FormBehaviorMutation) ClearField(name string) error {
	switch name {
	case formbehavior.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case formbehavior.FieldRows:
		m.ClearRows()
		return nil
	}
	return fmt.Errorf("unknown FormBehavior nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FormBehaviorMutation) ResetField(name string) error {
	switch name {
	case formbehavior.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case formbehavior.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case formbehavior.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case formbehavior.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case formbehavior.FieldSource:
		m.ResetSource()
		return nil
	case formbehavior.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case formbehavior.FieldState:
		m.ResetState()
		return nil
	case formbehavior.FieldAction:
		m.ResetAction()
		return nil
	case formbehavior.FieldRows:
		m.ResetRows()
		return nil
	}
	return fmt.Errorf("unknown FormBehavior field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FormBehaviorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.form != nil {
		edges = append(edges, formbehavior.EdgeForm)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FormBehaviorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case formbehavior.EdgeForm:
		if id := m.form; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FormBehaviorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FormBehaviorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FormBehaviorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedform {
		edges = append(edges, formbehavior.EdgeForm)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FormBehaviorMutation) EdgeCleared(name string) bool {
	switch name {
	case formbehavior.EdgeForm:
		return m.clearedform
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FormBehaviorMutation) ClearEdge(name string) error {
	switch name {
	case formbehavior.EdgeForm:
		m.ClearForm()
		return nil
	}
	return fmt.Errorf("unknown FormBehavior unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FormBehaviorMutation) ResetEdge(name string) error {
	switch name {
	case formbehavior.EdgeForm:
		m.ResetForm()
		return nil
	}
	return fmt.Errorf("unknown FormBehavior edge %s", name)
}

// FormDefinitionMutation represents an operation that mutates the FormDefinition nodes in the graph.
type FormDefinitionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	created_by       *string
	updated_by       *string
	source           *formdefinition.Source
	correlation_id   *string
	name             *string
	description      *string
	schema           **form.Node
	states           *[]string
	appendstates     []string
	clearedFields    map[string]struct{}
	behaviors        map[uuid.UUID]struct{}
	removedbehaviors map[uuid.UUID]struct{}
	clearedbehaviors bool
	entries          map[uuid.UUID]struct{}
	removedentries   map[uuid.UUID]struct{}
	clearedentries   bool
	done             bool
	oldValue         func(context.Context) (*FormDefinition, error)
	predicates       []predicate.FormDefinition
}

var _ ent.Mutation = (*FormDefinitionMutation)(nil)

// formdefinitionOption allows management of the mutation configuration using functional options.
type formdefinitionOption func(*FormDefinitionMutation)

// newFormDefinitionMutation creates new mutation for the FormDefinition entity.
func newFormDefinitionMutation(c config, op Op, opts ...formdefinitionOption) *FormDefinitionMutation {
	m := &FormDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeFormDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFormDefinitionID sets the ID field of the mutation.
func withFormDefinitionID(id uuid.UUID) formdefinitionOption {
	return func(m *FormDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *FormDefinition
		)
		m.oldValue = func(ctx context.Context) (*FormDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FormDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFormDefinition sets the old FormDefinition of the mutation.
func withFormDefinition(node *FormDefinition) formdefinitionOption {
	return func(m *FormDefinitionMutation) {
		m.oldValue = func(context.Context) (*FormDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FormDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FormDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FormDefinition entities.
func (m *FormDefinitionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FormDefinitionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FormDefinitionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FormDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FormDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FormDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FormDefinition entity.
// If the FormDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FormDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FormDefinitionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FormDefinitionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FormDefinition entity.
// If the FormDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormDefinitionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FormDefinitionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *FormDefinitionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *FormDefinitionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the FormDefinition entity.
// If the FormDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormDefinitionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *FormDefinitionMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *FormDefinitionMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *FormDefinitionMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the FormDefinition entity.
// If the FormDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormDefinitionMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *FormDefinitionMutation) ResetUpdatedBy() {
	m.updated_by = nil
}

// SetSource sets the "source" field.
func (m *FormDefinitionMutation) SetSource(f formdefinition.Source) {
	m.source = &f
}

// Source returns the value of the "source" field in the mutation.
func (m *FormDefinitionMutation) Source() (r formdefinition.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the FormDefinition entity.
// If the FormDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormDefinitionMutation) OldSource(ctx context.Context) (v formdefinition.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *FormDefinitionMutation) ResetSource() {
	m.source = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *FormDefinitionMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *FormDefinitionMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the FormDefinition entity.
// If the FormDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormDefinitionMutation) OldCorrelationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *FormDefinitionMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[formdefinition.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *FormDefinitionMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[formdefinition.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *FormDefinitionMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, formdefinition.FieldCorrelationID)
}

// SetName sets the "name" field.
func (m *FormDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FormDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FormDefinition entity.
// If the FormDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FormDefinitionMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *FormDefinitionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *FormDefinitionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the FormDefinition entity.
// If the FormDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormDefinitionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *FormDefinitionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[formdefinition.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *FormDefinitionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[formdefinition.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *FormDefinitionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, formdefinition.FieldDescription)
}

// SetSchema sets the "schema" field.
func (m *FormDefinitionMutation) SetSchema(f *form.Node) {
	m.schema = &f
}

// Schema returns the value of the "schema" field in the mutation.
func (m *FormDefinitionMutation) Schema() (r *form.Node, exists bool) {
	v := m.schema
	if v == nil {
		return
	}
	return *v, true
}

// OldSchema returns the old "schema" field's value of the FormDefinition entity.
// If the FormDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormDefinitionMutation) OldSchema(ctx context.Context) (v *form.Node, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchema: %w", err)
	}
	return oldValue.Schema, nil
}

// ResetSchema resets all changes to the "schema" field.
func (m *FormDefinitionMutation) ResetSchema() {
	m.schema = nil
}

// SetStates sets the "states" field.
func (m *FormDefinitionMutation) SetStates(s []string) {
	m.states = &s
	m.appendstates = nil
}

// States returns the value of the "states" field in the mutation.
func (m *FormDefinitionMutation) States() (r []string, exists bool) {
	v := m.states
	if v == nil {
		return
	}
	return *v, true
}

// OldStates returns the old "states" field's value of the FormDefinition entity.
// If the FormDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormDefinitionMutation) OldStates(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStates: %w", err)
	}
	return oldValue.States, nil
}

// AppendStates adds s to the "states" field.
func (m *FormDefinitionMutation) AppendStates(s []string) {
	m.appendstates = append(m.appendstates, s...)
}

// AppendedStates returns the list of values that were appended to the "states" field in this mutation.
func (m *FormDefinitionMutation) AppendedStates() ([]string, bool) {
	if len(m.appendstates) == 0 {
		return nil, false
	}
	return m.appendstates, true
}

// ResetStates resets all changes to the "states" field.
func (m *FormDefinitionMutation) ResetStates() {
	m.states = nil
	m.appendstates = nil
}

// AddBehaviorIDs adds the "behaviors" edge to the FormBehavior entity by ids.
func (m *FormDefinitionMutation) AddBehaviorIDs(ids ...uuid.UUID) {
	if m.behaviors == nil {
		m.behaviors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.behaviors[ids[i]] = struct{}{}
	}
}

// ClearBehaviors clears the "behaviors" edge to the FormBehavior entity.
func (m *FormDefinitionMutation) ClearBehaviors() {
	m.clearedbehaviors = true
}

// BehaviorsCleared reports if the "behaviors" edge to the FormBehavior entity was cleared.
func (m *FormDefinitionMutation) BehaviorsCleared() bool {
	return m.clearedbehaviors
}

// RemoveBehaviorIDs removes the "behaviors" edge to the FormBehavior entity by IDs.
func (m *FormDefinitionMutation) RemoveBehaviorIDs(ids ...uuid.UUID) {
	if m.removedbehaviors == nil {
		m.removedbehaviors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.behaviors, ids[i])
		m.removedbehaviors[ids[i]] = struct{}{}
	}
}

// RemovedBehaviors returns the removed IDs of the "behaviors" edge to the FormBehavior entity.
func (m *FormDefinitionMutation) RemovedBehaviorsIDs() (ids []uuid.UUID) {
	for id := range m.removedbehaviors {
		ids = append(ids, id)
	}
	return
}

// BehaviorsIDs returns the "behaviors" edge IDs in the mutation.
func (m *FormDefinitionMutation) BehaviorsIDs() (ids []uuid.UUID) {
	for id := range m.behaviors {
		ids = append(ids, id)
	}
	return
}

// ResetBehaviors resets all changes to the "behaviors" edge.
func (m *FormDefinitionMutation) ResetBehaviors() {
	m.behaviors = nil
	m.clearedbehaviors = false
	m.removedbehaviors = nil
}

// AddEntryIDs adds the "entries" edge to the FormEntry entity by ids.
func (m *FormDefinitionMutation) AddEntryIDs(ids ...uuid.UUID) {
	if m.entries == nil {
		m.entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the FormEntry entity.
func (m *FormDefinitionMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the FormEntry entity was cleared.
func (m *FormDefinitionMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the FormEntry entity by IDs.
func (m *FormDefinitionMutation) RemoveEntryIDs(ids ...uuid.UUID) {
	if m.removedentries == nil {
		m.removedentries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the FormEntry entity.
func (m *FormDefinitionMutation) RemovedEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *FormDefinitionMutation) EntriesIDs() (ids []uuid.UUID) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *FormDefinitionMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// Where appends a list predicates to the FormDefinitionMutation builder.
func (m *FormDefinitionMutation) Where(ps ...predicate.FormDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FormDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FormDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FormDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FormDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FormDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FormDefinition).
func (m *FormDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FormDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, formdefinition.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, formdefinition.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, formdefinition.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, formdefinition.FieldUpdatedBy)
	}
	if m.source != nil {
		fields = append(fields, formdefinition.FieldSource)
	}
	if m.correlation_id != nil {
		fields = append(fields, formdefinition.FieldCorrelationID)
	}
	if m.name != nil {
		fields = append(fields, formdefinition.FieldName)
	}
	if m.description != nil {
		fields = append(fields, formdefinition.FieldDescription)
	}
	if m.schema != nil {
		fields = append(fields, formdefinition.FieldSchema)
	}
	if m.states != nil {
		fields = append(fields, formdefinition.FieldStates)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FormDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case formdefinition.FieldCreatedAt:
		return m.CreatedAt()
	case formdefinition.FieldUpdatedAt:
		return m.UpdatedAt()
	case formdefinition.FieldCreatedBy:
		return m.CreatedBy()
	case formdefinition.FieldUpdatedBy:
		return m.UpdatedBy()
	case formdefinition.FieldSource:
		return m.Source()
	case formdefinition.FieldCorrelationID:
		return m.CorrelationID()
	case formdefinition.FieldName:
		return m.Name()
	case formdefinition.FieldDescription:
		return m.Description()
	case formdefinition.FieldSchema:
		return m.Schema()
	case formdefinition.FieldStates:
		return m.States()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FormDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case formdefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case formdefinition.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case formdefinition.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case formdefinition.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case formdefinition.FieldSource:
		return m.OldSource(ctx)
	case formdefinition.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case formdefinition.FieldName:
		return m.OldName(ctx)
	case formdefinition.FieldDescription:
		return m.OldDescription(ctx)
	case formdefinition.FieldSchema:
		return m.OldSchema(ctx)
	case formdefinition.FieldStates:
		return m.OldStates(ctx)
	}
	return nil, fmt.Errorf("unknown FormDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FormDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case formdefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case formdefinition.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case formdefinition.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case formdefinition.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case formdefinition.FieldSource:
		v, ok := value.(formdefinition.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case formdefinition.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case formdefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case formdefinition.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case formdefinition.FieldSchema:
		v, ok := value.(*form.Node)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchema(v)
		return nil
	case formdefinition.FieldStates:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStates(v)
		return nil
	}
	return fmt.Errorf("unknown FormDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FormDefinitionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FormDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FormDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FormDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FormDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(formdefinition.FieldCorrelationID) {
		fields = append(fields, formdefinition.FieldCorrelationID)
	}
	if m.FieldCleared(formdefinition.FieldDescription) {
		fields = append(fields, formdefinition.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FormDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FormDefinitionMutation) ClearField(name string) error {
	switch name {
	case formdefinition.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case formdefinition.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown FormDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FormDefinitionMutation) ResetField(name string) error {
	switch name {
	case formdefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case formdefinition.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case formdefinition.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case formdefinition.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case formdefinition.FieldSource:
		m.ResetSource()
		return nil
	case formdefinition.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case formdefinition.FieldName:
		m.ResetName()
		return nil
	case formdefinition.FieldDescription:
		m.ResetDescription()
		return nil
	case formdefinition.FieldSchema:
		m.ResetSchema()
		return nil
	case formdefinition.FieldStates:
		m.ResetStates()
		return nil
	}
	return fmt.Errorf("unknown FormDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FormDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.behaviors != nil {
		edges = append(edges, formdefinition.EdgeBehaviors)
	}
	if m.entries != nil {
		edges = append(edges, formdefinition.EdgeEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FormDefinitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case formdefinition.EdgeBehaviors:
		ids := make([]ent.Value, 0, len(m.behaviors))
		for id := range m.behaviors {
			ids = append(ids, id)
		}
		return ids
	case formdefinition.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FormDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedbehaviors != nil {
		edges = append(edges, formdefinition.EdgeBehaviors)
	}
	if m.removedentries != nil {
		edges = append(edges, formdefinition.EdgeEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FormDefinitionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case formdefinition.EdgeBehaviors:
		ids := make([]ent.Value, 0, len(m.removedbehaviors))
		for id := range m.removedbehaviors {
			ids = append(ids, id)
		}
		return ids
	case formdefinition.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FormDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbehaviors {
		edges = append(edges, formdefinition.EdgeBehaviors)
	}
	if m.clearedentries {
		edges = append(edges, formdefinition.EdgeEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FormDefinitionMutation) EdgeCleared(name string) bool {
	switch name {
	case formdefinition.EdgeBehaviors:
		return m.clearedbehaviors
	case formdefinition.EdgeEntries:
		return m.clearedentries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FormDefinitionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FormDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FormDefinitionMutation) ResetEdge(name string) error {
	switch name {
	case formdefinition.EdgeBehaviors:
		m.ResetBehaviors()
		return nil
	case formdefinition.EdgeEntries:
		m.ResetEntries()
		return nil
	}
	return fmt.Errorf("unknown FormDefinition edge %s", name)
}

// FormEntryMutation represents an operation that mutates the FormEntry nodes in the graph.
type FormEntryMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	created_by     *string
	updated_by     *string
	source         *formentry.Source
	correlation_id *string
	state          *string
	data           *map[string]interface{}
	clearedFields  map[string]struct{}
	form           *uuid.UUID
	clearedform    bool
	done           bool
	oldValue       func(context.Context) (*FormEntry, error)
	predicates     []predicate.FormEntry
}

var _ ent.Mutation = (*FormEntryMutation)(nil)

// formentryOption allows management of the mutation configuration using functional options.
type formentryOption func(*FormEntryMutation)

// newFormEntryMutation creates new mutation for the FormEntry entity.
func newFormEntryMutation(c config, op Op, opts ...formentryOption) *FormEntryMutation {
	m := &FormEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeFormEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFormEntryID sets the ID field of the mutation.
func withFormEntryID(id uuid.UUID) formentryOption {
	return func(m *FormEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *FormEntry
		)
		m.oldValue = func(ctx context.Context) (*FormEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FormEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFormEntry sets the old FormEntry of the mutation.
func withFormEntry(node *FormEntry) formentryOption {
	return func(m *FormEntryMutation) {
		m.oldValue = func(context.Context) (*FormEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FormEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FormEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FormEntry entities.
func (m *FormEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FormEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FormEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FormEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FormEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FormEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FormEntry entity.
// If the FormEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FormEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FormEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FormEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FormEntry entity.
// If the FormEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FormEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *FormEntryMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *FormEntryMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the FormEntry entity.
// If the FormEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormEntryMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *FormEntryMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *FormEntryMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *FormEntryMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the FormEntry entity.
// If the FormEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormEntryMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *FormEntryMutation) ResetUpdatedBy() {
	m.updated_by = nil
}

// SetSource sets the "source" field.
func (m *FormEntryMutation) SetSource(f formentry.Source) {
	m.source = &f
}

// Source returns the value of the "source" field in the mutation.
func (m *FormEntryMutation) Source() (r formentry.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the FormEntry entity.
// If the FormEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormEntryMutation) OldSource(ctx context.Context) (v formentry.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *FormEntryMutation) ResetSource() {
	m.source = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *FormEntryMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *FormEntryMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the FormEntry entity.
// If the FormEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormEntryMutation) OldCorrelationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *FormEntryMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[formentry.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *FormEntryMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[formentry.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *FormEntryMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, formentry.FieldCorrelationID)
}

// SetState sets the "state" field.
func (m *FormEntryMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *FormEntryMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the FormEntry entity.
// If the FormEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormEntryMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *FormEntryMutation) ResetState() {
	m.state = nil
}

// SetData sets the "data" field.
func (m *FormEntryMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *FormEntryMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the FormEntry entity.
// If the FormEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormEntryMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *FormEntryMutation) ResetData() {
	m.data = nil
}

// SetFormID sets the "form" edge to the FormDefinition entity by id.
func (m *FormEntryMutation) SetFormID(id uuid.UUID) {
	m.form = &id
}

// ClearForm clears the "form" edge to the FormDefinition entity.
func (m *FormEntryMutation) ClearForm() {
	m.clearedform = true
}

// FormCleared reports if the "form" edge to the FormDefinition entity was cleared.
func (m *FormEntryMutation) FormCleared() bool {
	return m.clearedform
}

// FormID returns the "form" edge ID in the mutation.
func (m *FormEntryMutation) FormID() (id uuid.UUID, exists bool) {
	if m.form != nil {
		return *m.form, true
	}
	return
}

// FormIDs returns the "form" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FormID instead. It exists only for internal usage by the builders.
func (m *FormEntryMutation) FormIDs() (ids []uuid.UUID) {
	if id := m.form; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetForm resets all changes to the "form" edge.
func (m *FormEntryMutation) ResetForm() {
	m.form = nil
	m.clearedform = false
}

// Where appends a list predicates to the FormEntryMutation builder.
func (m *FormEntryMutation) Where(ps ...predicate.FormEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FormEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FormEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FormEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FormEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FormEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FormEntry).
func (m *FormEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FormEntryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, formentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, formentry.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, formentry.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, formentry.FieldUpdatedBy)
	}
	if m.source != nil {
		fields = append(fields, formentry.FieldSource)
	}
	if m.correlation_id != nil {
		fields = append(fields, formentry.FieldCorrelationID)
	}
	if m.state != nil {
		fields = append(fields, formentry.FieldState)
	}
	if m.data != nil {
		fields = append(fields, formentry.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FormEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case formentry.FieldCreatedAt:
		return m.CreatedAt()
	case formentry.FieldUpdatedAt:
		return m.UpdatedAt()
	case formentry.FieldCreatedBy:
		return m.CreatedBy()
	case formentry.FieldUpdatedBy:
		return m.UpdatedBy()
	case formentry.FieldSource:
		return m.Source()
	case formentry.FieldCorrelationID:
		return m.CorrelationID()
	case formentry.FieldState:
		return m.State()
	case formentry.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FormEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case formentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case formentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case formentry.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case formentry.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case formentry.FieldSource:
		return m.OldSource(ctx)
	case formentry.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case formentry.FieldState:
		return m.OldState(ctx)
	case formentry.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown FormEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FormEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case formentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case formentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case formentry.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case formentry.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case formentry.FieldSource:
		v, ok := value.(formentry.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case formentry.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case formentry.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case formentry.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown FormEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FormEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FormEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FormEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FormEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FormEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(formentry.FieldCorrelationID) {
		fields = append(fields, formentry.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FormEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FormEntryMutation) ClearField(name string) error {
	switch name {
	case formentry.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown FormEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FormEntryMutation) ResetField(name string) error {
	switch name {
	case formentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case formentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case formentry.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case formentry.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case formentry.FieldSource:
		m.ResetSource()
		return nil
	case formentry.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case formentry.FieldState:
		m.ResetState()
		return nil
	case formentry.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown FormEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FormEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.form != nil {
		edges = append(edges, formentry.EdgeForm)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FormEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case formentry.EdgeForm:
		if id := m.form; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FormEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FormEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FormEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedform {
		edges = append(edges, formentry.EdgeForm)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FormEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case formentry.EdgeForm:
		return m.clearedform
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FormEntryMutation) ClearEdge(name string) error {
	switch name {
	case formentry.EdgeForm:
		m.ClearForm()
		return nil
	}
	return fmt.Errorf("unknown FormEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FormEntryMutation) ResetEdge(name string) error {
	switch name {
	case formentry.EdgeForm:
		m.ResetForm()
		return nil
	}
	return fmt.Errorf("unknown FormEntry edge %s", name)
}
