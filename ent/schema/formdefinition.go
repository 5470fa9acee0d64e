package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/formstate/formstate/internal/form"
)

// FormDefinition is a designed form: its schema tree and the ordered list of
// workflow states it adapts to. The schema is stored as a JSON column; fields
// are always re-derived from it, never persisted separately.
type FormDefinition struct {
	ent.Schema
}

func (FormDefinition) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

func (FormDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("name").
			NotEmpty().
			Comment("Display name of the form"),
		field.String("description").
			Optional().
			Comment("Optional operator-facing description"),
		field.JSON("schema", &form.Node{}).
			Comment("The designed schema tree, stored verbatim"),
		field.Strings("states").
			Comment("Ordered workflow states; the first is the entry state"),
	}
}

func (FormDefinition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("behaviors", FormBehavior.Type),
		edge.To("entries", FormEntry.Type),
	}
}

func (FormDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
