// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FormBehaviorsColumns holds the columns for the "form_behaviors" table.
	FormBehaviorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString},
		{Name: "updated_by", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"user", "import", "system"}},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"view", "create", "update"}, Default: "view"},
		{Name: "rows", Type: field.TypeJSON, Nullable: true},
		{Name: "form_definition_behaviors", Type: field.TypeUUID},
	}
	// FormBehaviorsTable holds the schema information for the "form_behaviors" table.
	FormBehaviorsTable = &schema.Table{
		Name:       "form_behaviors",
		Columns:    FormBehaviorsColumns,
		PrimaryKey: []*schema.Column{FormBehaviorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "form_behaviors_form_definitions_behaviors",
				Columns:    []*schema.Column{FormBehaviorsColumns[10]},
				RefColumns: []*schema.Column{FormDefinitionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "formbehavior_state_form_definition_behaviors",
				Unique:  true,
				Columns: []*schema.Column{FormBehaviorsColumns[7], FormBehaviorsColumns[10]},
			},
		},
	}
	// FormDefinitionsColumns holds the columns for the "form_definitions" table.
	FormDefinitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString},
		{Name: "updated_by", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"user", "import", "system"}},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "schema", Type: field.TypeJSON},
		{Name: "states", Type: field.TypeJSON},
	}
	// FormDefinitionsTable holds the schema information for the "form_definitions" table.
	FormDefinitionsTable = &schema.Table{
		Name:       "form_definitions",
		Columns:    FormDefinitionsColumns,
		PrimaryKey: []*schema.Column{FormDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "formdefinition_name",
				Unique:  false,
				Columns: []*schema.Column{FormDefinitionsColumns[7]},
			},
		},
	}
	// FormEntriesColumns holds the columns for the "form_entries" table.
	FormEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString},
		{Name: "updated_by", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"user", "import", "system"}},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "form_definition_entries", Type: field.TypeUUID},
	}
	// FormEntriesTable holds the schema information for the "form_entries" table.
	FormEntriesTable = &schema.Table{
		Name:       "form_entries",
		Columns:    FormEntriesColumns,
		PrimaryKey: []*schema.Column{FormEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "form_entries_form_definitions_entries",
				Columns:    []*schema.Column{FormEntriesColumns[9]},
				RefColumns: []*schema.Column{FormDefinitionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "formentry_state_form_definition_entries",
				Unique:  false,
				Columns: []*schema.Column{FormEntriesColumns[7], FormEntriesColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FormBehaviorsTable,
		FormDefinitionsTable,
		FormEntriesTable,
	}
)

func init() {
	FormBehaviorsTable.ForeignKeys[0].RefTable = FormDefinitionsTable
	FormEntriesTable.ForeignKeys[0].RefTable = FormDefinitionsTable
}
