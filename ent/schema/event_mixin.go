package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin carries the fields every audit event table shares. The
// sequence comes from the store's global counter, not the table's own
// auto-increment, so attempt and adaptation events stay totally
// ordered against each other.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Position in the global event order, assigned at append time"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

// Events are queried by sequence range (replay since a snapshot) and
// by time (pruning), so both get an index.
func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
