package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// AuditMixin provides standard audit fields for every persisted entity,
// giving full traceability for every change a designer or import makes.
type AuditMixin struct {
	mixin.Schema
}

// Fields of the AuditMixin.
func (AuditMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the entity was created"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the entity was last updated"),
		field.String("created_by").
			NotEmpty().
			Comment("User ID or 'system' who created this entity"),
		field.String("updated_by").
			NotEmpty().
			Comment("User ID or 'system' who last updated this entity"),
		field.Enum("source").
			Values("user", "import", "system").
			Comment("Origin of the change"),
		field.String("correlation_id").
			Optional().
			Nillable().
			Comment("Links related changes across entities"),
	}
}
