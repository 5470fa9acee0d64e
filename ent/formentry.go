// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/ent/formentry"
	"github.com/google/uuid"
)

// FormEntry is the model entity for the FormEntry schema.
type FormEntry struct {
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
	Source formentry.Source `json:"source,omitempty"`
	// Links related changes across entities
	CorrelationID *string `json:"correlation_id,omitempty"`
	// Workflow state the entry was submitted in
	State string `json:"state,omitempty"`
	// Submitted field values, keyed by field key
	Data map[string]interface{} `json:"data,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FormEntryQuery when eager-loading is set.
	Edges                   FormEntryEdges `json:"edges"`
	form_definition_entries *uuid.UUID
	selectValues            sql.SelectValues
}

// FormEntryEdges holds the relations/edges for other nodes in the graph.
type FormEntryEdges struct {
	// Form holds the value of the form edge.
	Form *FormDefinition `json:"form,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FormOrErr returns the Form value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FormEntryEdges) FormOrErr() (*FormDefinition, error) {
	if e.Form != nil {
		return e.Form, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: formdefinition.Label}
	}
	return nil, &NotLoadedError{edge: "form"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FormEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case formentry.FieldData:
			values[i] = new([]byte)
		case formentry.FieldCreatedBy, formentry.FieldUpdatedBy, formentry.FieldSource, formentry.FieldCorrelationID, formentry.FieldState:
			values[i] = new(sql.NullString)
		case formentry.FieldCreatedAt, formentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case formentry.FieldID:
			values[i] = new(uuid.UUID)
		case formentry.ForeignKeys[0]: // form_definition_entries
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FormEntry fields.
func (_m *FormEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case formentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case formentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case formentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case formentry.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case formentry.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = value.String
			}
		case formentry.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = formentry.Source(value.String)
			}
		case formentry.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = new(string)
				*_m.CorrelationID = value.String
			}
		case formentry.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case formentry.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case formentry.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field form_definition_entries", values[i])
			} else if value.Valid {
				_m.form_definition_entries = new(uuid.UUID)
				*_m.form_definition_entries = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FormEntry.
// This includes values selected through modifiers, order, etc.
func (_m *FormEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryForm queries the "form" edge of the FormEntry entity.
func (_m *FormEntry) QueryForm() *FormDefinitionQuery {
	return NewFormEntryClient(_m.config).QueryForm(_m)
}

// Update returns a builder for updating this FormEntry.
// Note that you need to call FormEntry.Unwrap() before calling this method if this FormEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FormEntry) Update() *FormEntryUpdateOne {
	return NewFormEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FormEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FormEntry) Unwrap() *FormEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FormEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FormEntry) String() string {
	var builder strings.Builder
	builder.WriteString("FormEntry(")
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
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// FormEntries is a parsable slice of FormEntry.
type FormEntries []*FormEntry
