package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// FormEntry is one submission of data against a form in a specific workflow
// state. The data column holds whatever the runtime collected for the fields
// visible and editable in that state.
type FormEntry struct {
	ent.Schema
}

func (FormEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

func (FormEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("state").
			NotEmpty().
			Comment("Workflow state the entry was submitted in"),
		field.JSON("data", map[string]any{}).
			Comment("Submitted field values, keyed by field key"),
	}
}

func (FormEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("form", FormDefinition.Type).
			Ref("entries").
			Unique().
			Required(),
	}
}

func (FormEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state").
			Edges("form"),
	}
}
