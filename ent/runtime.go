// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mpetrov/caliber/ent/adaptationevent"
	"github.com/mpetrov/caliber/ent/attemptevent"
	"github.com/mpetrov/caliber/ent/schema"
	"github.com/mpetrov/caliber/ent/statesnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptationeventMixin := schema.AdaptationEvent{}.Mixin()
	adaptationeventMixinFields0 := adaptationeventMixin[0].Fields()
	_ = adaptationeventMixinFields0
	adaptationeventFields := schema.AdaptationEvent{}.Fields()
	_ = adaptationeventFields
	// adaptationeventDescTimestamp is the schema descriptor for timestamp field.
	adaptationeventDescTimestamp := adaptationeventMixinFields0[1].Descriptor()
	// adaptationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	adaptationevent.DefaultTimestamp = adaptationeventDescTimestamp.Default.(func() time.Time)
	// adaptationeventDescUserID is the schema descriptor for user_id field.
	adaptationeventDescUserID := adaptationeventFields[0].Descriptor()
	// adaptationevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	adaptationevent.UserIDValidator = adaptationeventDescUserID.Validators[0].(func(string) error)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[0].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[1].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescHintsUsed is the schema descriptor for hints_used field.
	attempteventDescHintsUsed := attempteventFields[5].Descriptor()
	// attemptevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	attemptevent.DefaultHintsUsed = attempteventDescHintsUsed.Default.(int)
	statesnapshotFields := schema.StateSnapshot{}.Fields()
	_ = statesnapshotFields
	// statesnapshotDescTimestamp is the schema descriptor for timestamp field.
	statesnapshotDescTimestamp := statesnapshotFields[1].Descriptor()
	// statesnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	statesnapshot.DefaultTimestamp = statesnapshotDescTimestamp.Default.(func() time.Time)
}
