package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/formstate/formstate/internal/behavior"
)

// FormBehavior is one state's resolved rule set for a form — the persisted
// shape of a behavior.Bundle. The canonical in-memory model is the matrix;
// these rows are its row-oriented projection and are rewritten wholesale
// whenever the matrix is saved.
type FormBehavior struct {
	ent.Schema
}

func (FormBehavior) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

func (FormBehavior) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("state").
			NotEmpty().
			Comment("Workflow state these rules apply to"),
		field.Enum("action").
			Values("view", "create", "update").
			Default("view").
			Comment("Aggregate action classification for the state"),
		field.JSON("rows", []behavior.Row{}).
			Optional().
			Comment("Per-field rules in wire form"),
	}
}

func (FormBehavior) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("form", FormDefinition.Type).
			Ref("behaviors").
			Unique().
			Required(),
	}
}

func (FormBehavior) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state").
			Edges("form").
			Unique(),
	}
}
