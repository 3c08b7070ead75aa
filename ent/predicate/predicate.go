// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdaptationEvent is the predicate function for adaptationevent builders.
type AdaptationEvent func(*sql.Selector)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// StateSnapshot is the predicate function for statesnapshot builders.
type StateSnapshot func(*sql.Selector)
