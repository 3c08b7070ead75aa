// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adaptationevent type in the database.
	Label = "adaptation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAdapted holds the string denoting the adapted field in the database.
	FieldAdapted = "adapted"
	// FieldOldDifficulty holds the string denoting the old_difficulty field in the database.
	FieldOldDifficulty = "old_difficulty"
	// FieldNewDifficulty holds the string denoting the new_difficulty field in the database.
	FieldNewDifficulty = "new_difficulty"
	// FieldAdjustment holds the string denoting the adjustment field in the database.
	FieldAdjustment = "adjustment"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// Table holds the table name of the adaptationevent in the database.
	Table = "adaptation_events"
)

// Columns holds all SQL columns for adaptationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldAdapted,
	FieldOldDifficulty,
	FieldNewDifficulty,
	FieldAdjustment,
	FieldTrigger,
	FieldReason,
	FieldConfidence,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
)

// OrderOption defines the ordering options for the AdaptationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAdapted orders the results by the adapted field.
func ByAdapted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdapted, opts...).ToFunc()
}

// ByOldDifficulty orders the results by the old_difficulty field.
func ByOldDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldDifficulty, opts...).ToFunc()
}

// ByNewDifficulty orders the results by the new_difficulty field.
func ByNewDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewDifficulty, opts...).ToFunc()
}

// ByAdjustment orders the results by the adjustment field.
func ByAdjustment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdjustment, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}
