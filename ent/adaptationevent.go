// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mpetrov/caliber/ent/adaptationevent"
)

// AdaptationEvent is the model entity for the AdaptationEvent schema.
type AdaptationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event order, assigned at append time
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Adapted holds the value of the "adapted" field.
	Adapted bool `json:"adapted,omitempty"`
	// OldDifficulty holds the value of the "old_difficulty" field.
	OldDifficulty float64 `json:"old_difficulty,omitempty"`
	// NewDifficulty holds the value of the "new_difficulty" field.
	NewDifficulty float64 `json:"new_difficulty,omitempty"`
	// Adjustment holds the value of the "adjustment" field.
	Adjustment float64 `json:"adjustment,omitempty"`
	// Trigger holds the value of the "trigger" field.
	Trigger string `json:"trigger,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence   float64 `json:"confidence,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdaptationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldAdapted:
			values[i] = new(sql.NullBool)
		case adaptationevent.FieldOldDifficulty, adaptationevent.FieldNewDifficulty, adaptationevent.FieldAdjustment, adaptationevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case adaptationevent.FieldID, adaptationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case adaptationevent.FieldUserID, adaptationevent.FieldTrigger, adaptationevent.FieldReason:
			values[i] = new(sql.NullString)
		case adaptationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdaptationEvent fields.
func (_m *AdaptationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case adaptationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case adaptationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case adaptationevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case adaptationevent.FieldAdapted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field adapted", values[i])
			} else if value.Valid {
				_m.Adapted = value.Bool
			}
		case adaptationevent.FieldOldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field old_difficulty", values[i])
			} else if value.Valid {
				_m.OldDifficulty = value.Float64
			}
		case adaptationevent.FieldNewDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field new_difficulty", values[i])
			} else if value.Valid {
				_m.NewDifficulty = value.Float64
			}
		case adaptationevent.FieldAdjustment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field adjustment", values[i])
			} else if value.Valid {
				_m.Adjustment = value.Float64
			}
		case adaptationevent.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = value.String
			}
		case adaptationevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case adaptationevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdaptationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AdaptationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdaptationEvent.
// Note that you need to call AdaptationEvent.Unwrap() before calling this method if this AdaptationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdaptationEvent) Update() *AdaptationEventUpdateOne {
	return NewAdaptationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdaptationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdaptationEvent) Unwrap() *AdaptationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdaptationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdaptationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AdaptationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("adapted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Adapted))
	builder.WriteString(", ")
	builder.WriteString("old_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.OldDifficulty))
	builder.WriteString(", ")
	builder.WriteString("new_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewDifficulty))
	builder.WriteString(", ")
	builder.WriteString("adjustment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Adjustment))
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(_m.Trigger)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// AdaptationEvents is a parsable slice of AdaptationEvent.
type AdaptationEvents []*AdaptationEvent
