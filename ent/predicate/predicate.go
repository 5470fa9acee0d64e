// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FormBehavior is the predicate function for formbehavior builders.
type FormBehavior func(*sql.Selector)

// FormDefinition is the predicate function for formdefinition builders.
type FormDefinition func(*sql.Selector)

// FormEntry is the predicate function for formentry builders.
type FormEntry func(*sql.Selector)
