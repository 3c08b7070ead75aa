// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mpetrov/caliber/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldUserID, v))
}

// Adapted applies equality check predicate on the "adapted" field. It's identical to AdaptedEQ.
func Adapted(v bool) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAdapted, v))
}

// OldDifficulty applies equality check predicate on the "old_difficulty" field. It's identical to OldDifficultyEQ.
func OldDifficulty(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldOldDifficulty, v))
}

// NewDifficulty applies equality check predicate on the "new_difficulty" field. It's identical to NewDifficultyEQ.
func NewDifficulty(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldNewDifficulty, v))
}

// Adjustment applies equality check predicate on the "adjustment" field. It's identical to AdjustmentEQ.
func Adjustment(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAdjustment, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTrigger, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReason, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldConfidence, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldUserID, v))
}

// AdaptedEQ applies the EQ predicate on the "adapted" field.
func AdaptedEQ(v bool) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAdapted, v))
}

// AdaptedNEQ applies the NEQ predicate on the "adapted" field.
func AdaptedNEQ(v bool) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldAdapted, v))
}

// OldDifficultyEQ applies the EQ predicate on the "old_difficulty" field.
func OldDifficultyEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldOldDifficulty, v))
}

// OldDifficultyNEQ applies the NEQ predicate on the "old_difficulty" field.
func OldDifficultyNEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldOldDifficulty, v))
}

// OldDifficultyIn applies the In predicate on the "old_difficulty" field.
func OldDifficultyIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldOldDifficulty, vs...))
}

// OldDifficultyNotIn applies the NotIn predicate on the "old_difficulty" field.
func OldDifficultyNotIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldOldDifficulty, vs...))
}

// OldDifficultyGT applies the GT predicate on the "old_difficulty" field.
func OldDifficultyGT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldOldDifficulty, v))
}

// OldDifficultyGTE applies the GTE predicate on the "old_difficulty" field.
func OldDifficultyGTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldOldDifficulty, v))
}

// OldDifficultyLT applies the LT predicate on the "old_difficulty" field.
func OldDifficultyLT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldOldDifficulty, v))
}

// OldDifficultyLTE applies the LTE predicate on the "old_difficulty" field.
func OldDifficultyLTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldOldDifficulty, v))
}

// NewDifficultyEQ applies the EQ predicate on the "new_difficulty" field.
func NewDifficultyEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldNewDifficulty, v))
}

// NewDifficultyNEQ applies the NEQ predicate on the "new_difficulty" field.
func NewDifficultyNEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldNewDifficulty, v))
}

// NewDifficultyIn applies the In predicate on the "new_difficulty" field.
func NewDifficultyIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldNewDifficulty, vs...))
}

// NewDifficultyNotIn applies the NotIn predicate on the "new_difficulty" field.
func NewDifficultyNotIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldNewDifficulty, vs...))
}

// NewDifficultyGT applies the GT predicate on the "new_difficulty" field.
func NewDifficultyGT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldNewDifficulty, v))
}

// NewDifficultyGTE applies the GTE predicate on the "new_difficulty" field.
func NewDifficultyGTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldNewDifficulty, v))
}

// NewDifficultyLT applies the LT predicate on the "new_difficulty" field.
func NewDifficultyLT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldNewDifficulty, v))
}

// NewDifficultyLTE applies the LTE predicate on the "new_difficulty" field.
func NewDifficultyLTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldNewDifficulty, v))
}

// AdjustmentEQ applies the EQ predicate on the "adjustment" field.
func AdjustmentEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAdjustment, v))
}

// AdjustmentNEQ applies the NEQ predicate on the "adjustment" field.
func AdjustmentNEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldAdjustment, v))
}

// AdjustmentIn applies the In predicate on the "adjustment" field.
func AdjustmentIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldAdjustment, vs...))
}

// AdjustmentNotIn applies the NotIn predicate on the "adjustment" field.
func AdjustmentNotIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldAdjustment, vs...))
}

// AdjustmentGT applies the GT predicate on the "adjustment" field.
func AdjustmentGT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldAdjustment, v))
}

// AdjustmentGTE applies the GTE predicate on the "adjustment" field.
func AdjustmentGTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldAdjustment, v))
}

// AdjustmentLT applies the LT predicate on the "adjustment" field.
func AdjustmentLT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldAdjustment, v))
}

// AdjustmentLTE applies the LTE predicate on the "adjustment" field.
func AdjustmentLTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldAdjustment, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldReason, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldConfidence, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.NotPredicates(p))
}
