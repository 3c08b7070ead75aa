// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdaptationEventsColumns holds the columns for the "adaptation_events" table.
	AdaptationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "adapted", Type: field.TypeBool},
		{Name: "old_difficulty", Type: field.TypeFloat64},
		{Name: "new_difficulty", Type: field.TypeFloat64},
		{Name: "adjustment", Type: field.TypeFloat64},
		{Name: "trigger", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
	}
	// AdaptationEventsTable holds the schema information for the "adaptation_events" table.
	AdaptationEventsTable = &schema.Table{
		Name:       "adaptation_events",
		Columns:    AdaptationEventsColumns,
		PrimaryKey: []*schema.Column{AdaptationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adaptationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[1]},
			},
			{
				Name:    "adaptationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[2]},
			},
			{
				Name:    "adaptationevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[3]},
			},
		},
	}
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "binary_score", Type: field.TypeInt},
		{Name: "time_taken_ms", Type: field.TypeInt64},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "ability", Type: field.TypeFloat64},
		{Name: "rating", Type: field.TypeFloat64},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// StateSnapshotsColumns holds the columns for the "state_snapshots" table.
	StateSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// StateSnapshotsTable holds the schema information for the "state_snapshots" table.
	StateSnapshotsTable = &schema.Table{
		Name:       "state_snapshots",
		Columns:    StateSnapshotsColumns,
		PrimaryKey: []*schema.Column{StateSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "statesnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StateSnapshotsColumns[2]},
			},
			{
				Name:    "statesnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{StateSnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdaptationEventsTable,
		AttemptEventsTable,
		StateSnapshotsTable,
	}
)

func init() {
}
