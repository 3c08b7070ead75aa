// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mpetrov/caliber/ent/attemptevent"
	"github.com/mpetrov/caliber/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdate) SetUserID(v string) *AttemptEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptEventUpdate) SetItemID(v string) *AttemptEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableItemID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdate) SetScore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdate) AddScore(v float64) *AttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetBinaryScore sets the "binary_score" field.
func (_u *AttemptEventUpdate) SetBinaryScore(v int) *AttemptEventUpdate {
	_u.mutation.ResetBinaryScore()
	_u.mutation.SetBinaryScore(v)
	return _u
}

// SetNillableBinaryScore sets the "binary_score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableBinaryScore(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetBinaryScore(*v)
	}
	return _u
}

// AddBinaryScore adds value to the "binary_score" field.
func (_u *AttemptEventUpdate) AddBinaryScore(v int) *AttemptEventUpdate {
	_u.mutation.AddBinaryScore(v)
	return _u
}

// SetTimeTakenMs sets the "time_taken_ms" field.
func (_u *AttemptEventUpdate) SetTimeTakenMs(v int64) *AttemptEventUpdate {
	_u.mutation.ResetTimeTakenMs()
	_u.mutation.SetTimeTakenMs(v)
	return _u
}

// SetNillableTimeTakenMs sets the "time_taken_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeTakenMs(v *int64) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeTakenMs(*v)
	}
	return _u
}

// AddTimeTakenMs adds value to the "time_taken_ms" field.
func (_u *AttemptEventUpdate) AddTimeTakenMs(v int64) *AttemptEventUpdate {
	_u.mutation.AddTimeTakenMs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AttemptEventUpdate) SetHintsUsed(v int) *AttemptEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableHintsUsed(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AttemptEventUpdate) AddHintsUsed(v int) *AttemptEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetAbility sets the "ability" field.
func (_u *AttemptEventUpdate) SetAbility(v float64) *AttemptEventUpdate {
	_u.mutation.ResetAbility()
	_u.mutation.SetAbility(v)
	return _u
}

// SetNillableAbility sets the "ability" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAbility(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetAbility(*v)
	}
	return _u
}

// AddAbility adds value to the "ability" field.
func (_u *AttemptEventUpdate) AddAbility(v float64) *AttemptEventUpdate {
	_u.mutation.AddAbility(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *AttemptEventUpdate) SetRating(v float64) *AttemptEventUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableRating(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *AttemptEventUpdate) AddRating(v float64) *AttemptEventUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BinaryScore(); ok {
		_spec.SetField(attemptevent.FieldBinaryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBinaryScore(); ok {
		_spec.AddField(attemptevent.FieldBinaryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeTakenMs(); ok {
		_spec.SetField(attemptevent.FieldTimeTakenMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenMs(); ok {
		_spec.AddField(attemptevent.FieldTimeTakenMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(attemptevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(attemptevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ability(); ok {
		_spec.SetField(attemptevent.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbility(); ok {
		_spec.AddField(attemptevent.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(attemptevent.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(attemptevent.FieldRating, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdateOne) SetUserID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptEventUpdateOne) SetItemID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableItemID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdateOne) SetScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdateOne) AddScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetBinaryScore sets the "binary_score" field.
func (_u *AttemptEventUpdateOne) SetBinaryScore(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetBinaryScore()
	_u.mutation.SetBinaryScore(v)
	return _u
}

// SetNillableBinaryScore sets the "binary_score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableBinaryScore(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetBinaryScore(*v)
	}
	return _u
}

// AddBinaryScore adds value to the "binary_score" field.
func (_u *AttemptEventUpdateOne) AddBinaryScore(v int) *AttemptEventUpdateOne {
	_u.mutation.AddBinaryScore(v)
	return _u
}

// SetTimeTakenMs sets the "time_taken_ms" field.
func (_u *AttemptEventUpdateOne) SetTimeTakenMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeTakenMs()
	_u.mutation.SetTimeTakenMs(v)
	return _u
}

// SetNillableTimeTakenMs sets the "time_taken_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeTakenMs(v *int64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeTakenMs(*v)
	}
	return _u
}

// AddTimeTakenMs adds value to the "time_taken_ms" field.
func (_u *AttemptEventUpdateOne) AddTimeTakenMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.AddTimeTakenMs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AttemptEventUpdateOne) SetHintsUsed(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableHintsUsed(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AttemptEventUpdateOne) AddHintsUsed(v int) *AttemptEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetAbility sets the "ability" field.
func (_u *AttemptEventUpdateOne) SetAbility(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetAbility()
	_u.mutation.SetAbility(v)
	return _u
}

// SetNillableAbility sets the "ability" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAbility(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAbility(*v)
	}
	return _u
}

// AddAbility adds value to the "ability" field.
func (_u *AttemptEventUpdateOne) AddAbility(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddAbility(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *AttemptEventUpdateOne) SetRating(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableRating(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *AttemptEventUpdateOne) AddRating(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BinaryScore(); ok {
		_spec.SetField(attemptevent.FieldBinaryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBinaryScore(); ok {
		_spec.AddField(attemptevent.FieldBinaryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeTakenMs(); ok {
		_spec.SetField(attemptevent.FieldTimeTakenMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenMs(); ok {
		_spec.AddField(attemptevent.FieldTimeTakenMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(attemptevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(attemptevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ability(); ok {
		_spec.SetField(attemptevent.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbility(); ok {
		_spec.AddField(attemptevent.FieldAbility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(attemptevent.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(attemptevent.FieldRating, field.TypeFloat64, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
