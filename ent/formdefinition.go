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
	"github.com/formstate/formstate/internal/form"
	"github.com/google/uuid"
)

// FormDefinition is the model entity for the FormDefinition schema.
type FormDefinition struct {
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
	Source formdefinition.Source `json:"source,omitempty"`
	// Links related changes across entities
	CorrelationID *string `json:"correlation_id,omitempty"`
	// Display name of the form
	Name string `json:"name,omitempty"`
	// Optional operator-facing description
	Description string `json:"description,omitempty"`
	// The designed schema tree, stored verbatim
	Schema *form.Node `json:"schema,omitempty"`
	// Ordered workflow states; the first is the entry state
	States []string `json:"states,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FormDefinitionQuery when eager-loading is set.
	Edges        FormDefinitionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FormDefinitionEdges holds the relations/edges for other nodes in the graph.
type FormDefinitionEdges struct {
	// Behaviors holds the value of the behaviors edge.
	Behaviors []*FormBehavior `json:"behaviors,omitempty"`
	// Entries holds the value of the entries edge.
	Entries []*FormEntry `json:"entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BehaviorsOrErr returns the Behaviors value or an error if the edge
// was not loaded in eager-loading.
func (e FormDefinitionEdges) BehaviorsOrErr() ([]*FormBehavior, error) {
	if e.loadedTypes[0] {
		return e.Behaviors, nil
	}
	return nil, &NotLoadedError{edge: "behaviors"}
}

// EntriesOrErr returns the Entries value or an error if the edge
// was not loaded in eager-loading.
func (e FormDefinitionEdges) EntriesOrErr() ([]*FormEntry, error) {
	if e.loadedTypes[1] {
		return e.Entries, nil
	}
	return nil, &NotLoadedError{edge: "entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FormDefinition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case formdefinition.FieldSchema, formdefinition.FieldStates:
			values[i] = new([]byte)
		case formdefinition.FieldCreatedBy, formdefinition.FieldUpdatedBy, formdefinition.FieldSource, formdefinition.FieldCorrelationID, formdefinition.FieldName, formdefinition.FieldDescription:
			values[i] = new(sql.NullString)
		case formdefinition.FieldCreatedAt, formdefinition.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case formdefinition.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FormDefinition fields.
func (_m *FormDefinition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case formdefinition.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case formdefinition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case formdefinition.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case formdefinition.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case formdefinition.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = value.String
			}
		case formdefinition.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = formdefinition.Source(value.String)
			}
		case formdefinition.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = new(string)
				*_m.CorrelationID = value.String
			}
		case formdefinition.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case formdefinition.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case formdefinition.FieldSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Schema); err != nil {
					return fmt.Errorf("unmarshal field schema: %w", err)
				}
			}
		case formdefinition.FieldStates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field states", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.States); err != nil {
					return fmt.Errorf("unmarshal field states: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FormDefinition.
// This includes values selected through modifiers, order, etc.
func (_m *FormDefinition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBehaviors queries the "behaviors" edge of the FormDefinition entity.
func (_m *FormDefinition) QueryBehaviors() *FormBehaviorQuery {
	return NewFormDefinitionClient(_m.config).QueryBehaviors(_m)
}

// QueryEntries queries the "entries" edge of the FormDefinition entity.
func (_m *FormDefinition) QueryEntries() *FormEntryQuery {
	return NewFormDefinitionClient(_m.config).QueryEntries(_m)
}

// Update returns a builder for updating this FormDefinition.
// Note that you need to call FormDefinition.Unwrap() before calling this method if this FormDefinition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FormDefinition) Update() *FormDefinitionUpdateOne {
	return NewFormDefinitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FormDefinition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FormDefinition) Unwrap() *FormDefinition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FormDefinition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FormDefinition) String() string {
	var builder strings.Builder
	builder.WriteString("FormDefinition(")
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
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.Schema))
	builder.WriteString(", ")
	builder.WriteString("states=")
	builder.WriteString(fmt.Sprintf("%v", _m.States))
	builder.WriteByte(')')
	return builder.String()
}

// FormDefinitions is a parsable slice of FormDefinition.
type FormDefinitions []*FormDefinition
