package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one processed attempt for audit and analytics.
// The ability and rating fields hold the post-update values.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.Float("score"),
		field.Int("binary_score"),
		field.Int64("time_taken_ms"),
		field.Int("hints_used").Default(0),
		field.Float("ability"),
		field.Float("rating"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("item_id"),
	}
}
