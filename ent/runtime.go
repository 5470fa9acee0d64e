// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/formstate/formstate/ent/formbehavior"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/ent/formentry"
	"github.com/formstate/formstate/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	formbehaviorMixin := schema.FormBehavior{}.Mixin()
	formbehaviorMixinFields0 := formbehaviorMixin[0].Fields()
	_ = formbehaviorMixinFields0
	formbehaviorFields := schema.FormBehavior{}.Fields()
	_ = formbehaviorFields
	// formbehaviorDescCreatedAt is the schema descriptor for created_at field.
	formbehaviorDescCreatedAt := formbehaviorMixinFields0[0].Descriptor()
	// formbehavior.DefaultCreatedAt holds the default value on creation for the created_at field.
	formbehavior.DefaultCreatedAt = formbehaviorDescCreatedAt.Default.(func() time.Time)
	// formbehaviorDescUpdatedAt is the schema descriptor for updated_at field.
	formbehaviorDescUpdatedAt := formbehaviorMixinFields0[1].Descriptor()
	// formbehavior.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	formbehavior.DefaultUpdatedAt = formbehaviorDescUpdatedAt.Default.(func() time.Time)
	// formbehavior.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	formbehavior.UpdateDefaultUpdatedAt = formbehaviorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// formbehaviorDescCreatedBy is the schema descriptor for created_by field.
	formbehaviorDescCreatedBy := formbehaviorMixinFields0[2].Descriptor()
	// formbehavior.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	formbehavior.CreatedByValidator = formbehaviorDescCreatedBy.Validators[0].(func(string) error)
	// formbehaviorDescUpdatedBy is the schema descriptor for updated_by field.
	formbehaviorDescUpdatedBy := formbehaviorMixinFields0[3].Descriptor()
	// formbehavior.UpdatedByValidator is a validator for the "updated_by" field. It is called by the builders before save.
	formbehavior.UpdatedByValidator = formbehaviorDescUpdatedBy.Validators[0].(func(string) error)
	// formbehaviorDescState is the schema descriptor for state field.
	formbehaviorDescState := formbehaviorFields[1].Descriptor()
	// formbehavior.StateValidator is a validator for the "state" field. It is called by the builders before save.
	formbehavior.StateValidator = formbehaviorDescState.Validators[0].(func(string) error)
	// formbehaviorDescID is the schema descriptor for id field.
	formbehaviorDescID := formbehaviorFields[0].Descriptor()
	// formbehavior.DefaultID holds the default value on creation for the id field.
	formbehavior.DefaultID = formbehaviorDescID.Default.(func() uuid.UUID)
	formdefinitionMixin := schema.FormDefinition{}.Mixin()
	formdefinitionMixinFields0 := formdefinitionMixin[0].Fields()
	_ = formdefinitionMixinFields0
	formdefinitionFields := schema.FormDefinition{}.Fields()
	_ = formdefinitionFields
	// formdefinitionDescCreatedAt is the schema descriptor for created_at field.
	formdefinitionDescCreatedAt := formdefinitionMixinFields0[0].Descriptor()
	// formdefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	formdefinition.DefaultCreatedAt = formdefinitionDescCreatedAt.Default.(func() time.Time)
	// formdefinitionDescUpdatedAt is the schema descriptor for updated_at field.
	formdefinitionDescUpdatedAt := formdefinitionMixinFields0[1].Descriptor()
	// formdefinition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	formdefinition.DefaultUpdatedAt = formdefinitionDescUpdatedAt.Default.(func() time.Time)
	// formdefinition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	formdefinition.UpdateDefaultUpdatedAt = formdefinitionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// formdefinitionDescCreatedBy is the schema descriptor for created_by field.
	formdefinitionDescCreatedBy := formdefinitionMixinFields0[2].Descriptor()
	// formdefinition.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	formdefinition.CreatedByValidator = formdefinitionDescCreatedBy.Validators[0].(func(string) error)
	// formdefinitionDescUpdatedBy is the schema descriptor for updated_by field.
	formdefinitionDescUpdatedBy := formdefinitionMixinFields0[3].Descriptor()
	// formdefinition.UpdatedByValidator is a validator for the "updated_by" field. It is called by the builders before save.
	formdefinition.UpdatedByValidator = formdefinitionDescUpdatedBy.Validators[0].(func(string) error)
	// formdefinitionDescName is the schema descriptor for name field.
	formdefinitionDescName := formdefinitionFields[1].Descriptor()
	// formdefinition.NameValidator is a validator for the "name" field. It is called by the builders before save.
	formdefinition.NameValidator = formdefinitionDescName.Validators[0].(func(string) error)
	// formdefinitionDescID is the schema descriptor for id field.
	formdefinitionDescID := formdefinitionFields[0].Descriptor()
	// formdefinition.DefaultID holds the default value on creation for the id field.
	formdefinition.DefaultID = formdefinitionDescID.Default.(func() uuid.UUID)
	formentryMixin := schema.FormEntry{}.Mixin()
	formentryMixinFields0 := formentryMixin[0].Fields()
	_ = formentryMixinFields0
	formentryFields := schema.FormEntry{}.Fields()
	_ = formentryFields
	// formentryDescCreatedAt is the schema descriptor for created_at field.
	formentryDescCreatedAt := formentryMixinFields0[0].Descriptor()
	// formentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	formentry.DefaultCreatedAt = formentryDescCreatedAt.Default.(func() time.Time)
	// formentryDescUpdatedAt is the schema descriptor for updated_at field.
	formentryDescUpdatedAt := formentryMixinFields0[1].Descriptor()
	// formentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	formentry.DefaultUpdatedAt = formentryDescUpdatedAt.Default.(func() time.Time)
	// formentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	formentry.UpdateDefaultUpdatedAt = formentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// formentryDescCreatedBy is the schema descriptor for created_by field.
	formentryDescCreatedBy := formentryMixinFields0[2].Descriptor()
	// formentry.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	formentry.CreatedByValidator = formentryDescCreatedBy.Validators[0].(func(string) error)
	// formentryDescUpdatedBy is the schema descriptor for updated_by field.
	formentryDescUpdatedBy := formentryMixinFields0[3].Descriptor()
	// formentry.UpdatedByValidator is a validator for the "updated_by" field. It is called by the builders before save.
	formentry.UpdatedByValidator = formentryDescUpdatedBy.Validators[0].(func(string) error)
	// formentryDescState is the schema descriptor for state field.
	formentryDescState := formentryFields[1].Descriptor()
	// formentry.StateValidator is a validator for the "state" field. It is called by the builders before save.
	formentry.StateValidator = formentryDescState.Validators[0].(func(string) error)
	// formentryDescID is the schema descriptor for id field.
	formentryDescID := formentryFields[0].Descriptor()
	// formentry.DefaultID holds the default value on creation for the id field.
	formentry.DefaultID = formentryDescID.Default.(func() uuid.UUID)
}
