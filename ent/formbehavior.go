// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/formstate/formstate/ent/formbehavior"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/internal/behavior"
	"github.com/google/uuid"
)

// FormBehavior is the model entity for the FormBehavior schema.
type FormBehavior struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// When the entity was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the entity was last updated
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// User ID or 'system' who created this entity
	CreatedBy string `json:"created_by,omitempty"`
	// User ID or 'system' who last updated this entity
	UpdatedBy string `json:"updated_by,omitempty"`
	// Origin of the change
	Source formbehavior.Source `json:"source,omitempty"`
	// Links related changes across entities
	CorrelationID *string `json:"correlation_id,omitempty"`
	// Workflow state these rules apply to
	State string `json:"state,omitempty"`
	// Aggregate action classification for the state
	Action formbehavior.Action `json:"action,omitempty"`
	// Per-field rules in wire form
	Rows []behavior.Row `json:"rows,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FormBehaviorQuery when eager-loading is set.
	Edges                     FormBehaviorEdges `json:"edges"`
	form_definition_behaviors *uuid.UUID
	selectValues              sql.SelectValues
}

// FormBehaviorEdges holds the relations/edges for other nodes in the graph.
type FormBehaviorEdges struct {
	// Form holds the value of the form edge.
	Form *FormDefinition `json:"form,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FormOrErr returns the Form value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FormBehaviorEdges) FormOrErr() (*FormDefinition, error) {
	if e.Form != nil {
		return e.Form, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: formdefinition.Label}
	}
	return nil, &NotLoadedError{edge: "form"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FormBehavior) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case formbehavior.FieldRows:
			values[i] = new([]byte)
		case formbehavior.FieldCreatedBy, formbehavior.FieldUpdatedBy, formbehavior.FieldSource, formbehavior.FieldCorrelationID, formbehavior.FieldState, formbehavior.FieldAction:
			values[i] = new(sql.NullString)
		case formbehavior.FieldCreatedAt, formbehavior.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case formbehavior.FieldID:
			values[i] = new(uuid.UUID)
		case formbehavior.ForeignKeys[0]: // form_definition_behaviors
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FormBehavior fields.
func (_m *FormBehavior) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case formbehavior.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case formbehavior.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case formbehavior.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case formbehavior.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case formbehavior.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = value.String
			}
		case formbehavior.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = formbehavior.Source(value.String)
			}
		case formbehavior.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = new(string)
				*_m.CorrelationID = value.String
			}
		case formbehavior.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case formbehavior.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = formbehavior.Action(value.String)
			}
		case formbehavior.FieldRows:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rows", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rows); err != nil {
					return fmt.Errorf("unmarshal field rows: %w", err)
				}
			}
		case formbehavior.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field form_definition_behaviors", values[i])
			} else if value.Valid {
				_m.form_definition_behaviors = new(uuid.UUID)
				*_m.form_definition_behaviors = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FormBehavior.
// This includes values selected through modifiers, order, etc.
func (_m *FormBehavior) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryForm queries the "form" edge of the FormBehavior entity.
func (_m *FormBehavior) QueryForm() *FormDefinitionQuery {
	return NewFormBehaviorClient(_m.config).QueryForm(_m)
}

// Update returns a builder for updating this FormBehavior.
// Note that you need to call FormBehavior.Unwrap() before calling this method if this FormBehavior
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FormBehavior) Update() *FormBehaviorUpdateOne {
	return NewFormBehaviorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FormBehavior entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FormBehavior) Unwrap() *FormBehavior {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FormBehavior is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FormBehavior) String() string {
	var builder strings.Builder
	builder.WriteString("FormBehavior(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(_m.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	if v := _m.CorrelationID; v != nil {
		builder.WriteString("correlation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rows))
	builder.WriteByte(')')
	return builder.String()
}

// FormBehaviors is a parsable slice of FormBehavior.
type FormBehaviors []*FormBehavior
