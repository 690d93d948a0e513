// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Decision is the predicate function for decision builders.
type Decision func(*sql.Selector)

// ExtractFailure is the predicate function for extractfailure builders.
type ExtractFailure func(*sql.Selector)
