package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptationEvent records one difficulty-controller cycle, including
// cycles that made no adjustment.
type AdaptationEvent struct {
	ent.Schema
}

func (AdaptationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdaptationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.Bool("adapted"),
		field.Float("old_difficulty"),
		field.Float("new_difficulty"),
		field.Float("adjustment"),
		field.String("trigger"),
		field.String("reason"),
		field.Float("confidence"),
	}
}

func (AdaptationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
