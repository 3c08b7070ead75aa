// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mpetrov/caliber/ent/adaptationevent"
)

// AdaptationEventCreate is the builder for creating a AdaptationEvent entity.
type AdaptationEventCreate struct {
	config
	mutation *AdaptationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AdaptationEventCreate) SetSequence(v int64) *AdaptationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AdaptationEventCreate) SetTimestamp(v time.Time) *AdaptationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AdaptationEventCreate) SetNillableTimestamp(v *time.Time) *AdaptationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AdaptationEventCreate) SetUserID(v string) *AdaptationEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAdapted sets the "adapted" field.
func (_c *AdaptationEventCreate) SetAdapted(v bool) *AdaptationEventCreate {
	_c.mutation.SetAdapted(v)
	return _c
}

// SetOldDifficulty sets the "old_difficulty" field.
func (_c *AdaptationEventCreate) SetOldDifficulty(v float64) *AdaptationEventCreate {
	_c.mutation.SetOldDifficulty(v)
	return _c
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_c *AdaptationEventCreate) SetNewDifficulty(v float64) *AdaptationEventCreate {
	_c.mutation.SetNewDifficulty(v)
	return _c
}

// SetAdjustment sets the "adjustment" field.
func (_c *AdaptationEventCreate) SetAdjustment(v float64) *AdaptationEventCreate {
	_c.mutation.SetAdjustment(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *AdaptationEventCreate) SetTrigger(v string) *AdaptationEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *AdaptationEventCreate) SetReason(v string) *AdaptationEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AdaptationEventCreate) SetConfidence(v float64) *AdaptationEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_c *AdaptationEventCreate) Mutation() *AdaptationEventMutation {
	return _c.mutation
}

// Save creates the AdaptationEvent in the database.
func (_c *AdaptationEventCreate) Save(ctx context.Context) (*AdaptationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdaptationEventCreate) SaveX(ctx context.Context) *AdaptationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdaptationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := adaptationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdaptationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AdaptationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AdaptationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AdaptationEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Adapted(); !ok {
		return &ValidationError{Name: "adapted", err: errors.New(`ent: missing required field "AdaptationEvent.adapted"`)}
	}
	if _, ok := _c.mutation.OldDifficulty(); !ok {
		return &ValidationError{Name: "old_difficulty", err: errors.New(`ent: missing required field "AdaptationEvent.old_difficulty"`)}
	}
	if _, ok := _c.mutation.NewDifficulty(); !ok {
		return &ValidationError{Name: "new_difficulty", err: errors.New(`ent: missing required field "AdaptationEvent.new_difficulty"`)}
	}
	if _, ok := _c.mutation.Adjustment(); !ok {
		return &ValidationError{Name: "adjustment", err: errors.New(`ent: missing required field "AdaptationEvent.adjustment"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "AdaptationEvent.trigger"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "AdaptationEvent.reason"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AdaptationEvent.confidence"`)}
	}
	return nil
}

func (_c *AdaptationEventCreate) sqlSave(ctx context.Context) (*AdaptationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdaptationEventCreate) createSpec() (*AdaptationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AdaptationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adaptationevent.Table, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(adaptationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(adaptationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Adapted(); ok {
		_spec.SetField(adaptationevent.FieldAdapted, field.TypeBool, value)
		_node.Adapted = value
	}
	if value, ok := _c.mutation.OldDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldOldDifficulty, field.TypeFloat64, value)
		_node.OldDifficulty = value
	}
	if value, ok := _c.mutation.NewDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldNewDifficulty, field.TypeFloat64, value)
		_node.NewDifficulty = value
	}
	if value, ok := _c.mutation.Adjustment(); ok {
		_spec.SetField(adaptationevent.FieldAdjustment, field.TypeFloat64, value)
		_node.Adjustment = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(adaptationevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(adaptationevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	return _node, _spec
}

// AdaptationEventCreateBulk is the builder for creating many AdaptationEvent entities in bulk.
type AdaptationEventCreateBulk struct {
	config
	err      error
	builders []*AdaptationEventCreate
}

// Save creates the AdaptationEvent entities in the database.
func (_c *AdaptationEventCreateBulk) Save(ctx context.Context) ([]*AdaptationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdaptationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdaptationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AdaptationEventCreateBulk) SaveX(ctx context.Context) []*AdaptationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
