// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mpetrov/caliber/ent/adaptationevent"
	"github.com/mpetrov/caliber/ent/predicate"
)

// AdaptationEventUpdate is the builder for updating AdaptationEvent entities.
type AdaptationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdate) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AdaptationEventUpdate) SetUserID(v string) *AdaptationEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableUserID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAdapted sets the "adapted" field.
func (_u *AdaptationEventUpdate) SetAdapted(v bool) *AdaptationEventUpdate {
	_u.mutation.SetAdapted(v)
	return _u
}

// SetNillableAdapted sets the "adapted" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableAdapted(v *bool) *AdaptationEventUpdate {
	if v != nil {
		_u.SetAdapted(*v)
	}
	return _u
}

// SetOldDifficulty sets the "old_difficulty" field.
func (_u *AdaptationEventUpdate) SetOldDifficulty(v float64) *AdaptationEventUpdate {
	_u.mutation.ResetOldDifficulty()
	_u.mutation.SetOldDifficulty(v)
	return _u
}

// SetNillableOldDifficulty sets the "old_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableOldDifficulty(v *float64) *AdaptationEventUpdate {
	if v != nil {
		_u.SetOldDifficulty(*v)
	}
	return _u
}

// AddOldDifficulty adds value to the "old_difficulty" field.
func (_u *AdaptationEventUpdate) AddOldDifficulty(v float64) *AdaptationEventUpdate {
	_u.mutation.AddOldDifficulty(v)
	return _u
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_u *AdaptationEventUpdate) SetNewDifficulty(v float64) *AdaptationEventUpdate {
	_u.mutation.ResetNewDifficulty()
	_u.mutation.SetNewDifficulty(v)
	return _u
}

// SetNillableNewDifficulty sets the "new_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableNewDifficulty(v *float64) *AdaptationEventUpdate {
	if v != nil {
		_u.SetNewDifficulty(*v)
	}
	return _u
}

// AddNewDifficulty adds value to the "new_difficulty" field.
func (_u *AdaptationEventUpdate) AddNewDifficulty(v float64) *AdaptationEventUpdate {
	_u.mutation.AddNewDifficulty(v)
	return _u
}

// SetAdjustment sets the "adjustment" field.
func (_u *AdaptationEventUpdate) SetAdjustment(v float64) *AdaptationEventUpdate {
	_u.mutation.ResetAdjustment()
	_u.mutation.SetAdjustment(v)
	return _u
}

// SetNillableAdjustment sets the "adjustment" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableAdjustment(v *float64) *AdaptationEventUpdate {
	if v != nil {
		_u.SetAdjustment(*v)
	}
	return _u
}

// AddAdjustment adds value to the "adjustment" field.
func (_u *AdaptationEventUpdate) AddAdjustment(v float64) *AdaptationEventUpdate {
	_u.mutation.AddAdjustment(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *AdaptationEventUpdate) SetTrigger(v string) *AdaptationEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableTrigger(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdaptationEventUpdate) SetReason(v string) *AdaptationEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableReason(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AdaptationEventUpdate) SetConfidence(v float64) *AdaptationEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableConfidence(v *float64) *AdaptationEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AdaptationEventUpdate) AddConfidence(v float64) *AdaptationEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdate) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdaptationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdaptationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adapted(); ok {
		_spec.SetField(adaptationevent.FieldAdapted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OldDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldOldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOldDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldOldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldNewDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNewDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldNewDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Adjustment(); ok {
		_spec.SetField(adaptationevent.FieldAdjustment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdjustment(); ok {
		_spec.AddField(adaptationevent.FieldAdjustment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(adaptationevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(adaptationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(adaptationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdaptationEventUpdateOne is the builder for updating a single AdaptationEvent entity.
type AdaptationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AdaptationEventUpdateOne) SetUserID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableUserID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAdapted sets the "adapted" field.
func (_u *AdaptationEventUpdateOne) SetAdapted(v bool) *AdaptationEventUpdateOne {
	_u.mutation.SetAdapted(v)
	return _u
}

// SetNillableAdapted sets the "adapted" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableAdapted(v *bool) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetAdapted(*v)
	}
	return _u
}

// SetOldDifficulty sets the "old_difficulty" field.
func (_u *AdaptationEventUpdateOne) SetOldDifficulty(v float64) *AdaptationEventUpdateOne {
	_u.mutation.ResetOldDifficulty()
	_u.mutation.SetOldDifficulty(v)
	return _u
}

// SetNillableOldDifficulty sets the "old_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableOldDifficulty(v *float64) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetOldDifficulty(*v)
	}
	return _u
}

// AddOldDifficulty adds value to the "old_difficulty" field.
func (_u *AdaptationEventUpdateOne) AddOldDifficulty(v float64) *AdaptationEventUpdateOne {
	_u.mutation.AddOldDifficulty(v)
	return _u
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_u *AdaptationEventUpdateOne) SetNewDifficulty(v float64) *AdaptationEventUpdateOne {
	_u.mutation.ResetNewDifficulty()
	_u.mutation.SetNewDifficulty(v)
	return _u
}

// SetNillableNewDifficulty sets the "new_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableNewDifficulty(v *float64) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetNewDifficulty(*v)
	}
	return _u
}

// AddNewDifficulty adds value to the "new_difficulty" field.
func (_u *AdaptationEventUpdateOne) AddNewDifficulty(v float64) *AdaptationEventUpdateOne {
	_u.mutation.AddNewDifficulty(v)
	return _u
}

// SetAdjustment sets the "adjustment" field.
func (_u *AdaptationEventUpdateOne) SetAdjustment(v float64) *AdaptationEventUpdateOne {
	_u.mutation.ResetAdjustment()
	_u.mutation.SetAdjustment(v)
	return _u
}

// SetNillableAdjustment sets the "adjustment" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableAdjustment(v *float64) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetAdjustment(*v)
	}
	return _u
}

// AddAdjustment adds value to the "adjustment" field.
func (_u *AdaptationEventUpdateOne) AddAdjustment(v float64) *AdaptationEventUpdateOne {
	_u.mutation.AddAdjustment(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *AdaptationEventUpdateOne) SetTrigger(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableTrigger(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdaptationEventUpdateOne) SetReason(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableReason(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AdaptationEventUpdateOne) SetConfidence(v float64) *AdaptationEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableConfidence(v *float64) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AdaptationEventUpdateOne) AddConfidence(v float64) *AdaptationEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdateOne) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdateOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdaptationEventUpdateOne) Select(field string, fields ...string) *AdaptationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdaptationEvent entity.
func (_u *AdaptationEventUpdateOne) Save(ctx context.Context) (*AdaptationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) SaveX(ctx context.Context) *AdaptationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdaptationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdateOne) sqlSave(ctx context.Context) (_node *AdaptationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptationevent.FieldID)
		for _, f := range fields {
			if !adaptationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adapted(); ok {
		_spec.SetField(adaptationevent.FieldAdapted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OldDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldOldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOldDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldOldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldNewDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNewDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldNewDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Adjustment(); ok {
		_spec.SetField(adaptationevent.FieldAdjustment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdjustment(); ok {
		_spec.AddField(adaptationevent.FieldAdjustment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(adaptationevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(adaptationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(adaptationevent.FieldConfidence, field.TypeFloat64, value)
	}
	_node = &AdaptationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
