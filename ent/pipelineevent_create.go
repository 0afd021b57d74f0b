// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/convolab/lessonsmith/ent/pipelineevent"
)

// PipelineEventCreate is the builder for creating a PipelineEvent entity.
type PipelineEventCreate struct {
	config
	mutation *PipelineEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PipelineEventCreate) SetSequence(v int64) *PipelineEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PipelineEventCreate) SetTimestamp(v time.Time) *PipelineEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PipelineEventCreate) SetNillableTimestamp(v *time.Time) *PipelineEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *PipelineEventCreate) SetLessonID(v string) *PipelineEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *PipelineEventCreate) SetStage(v string) *PipelineEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *PipelineEventCreate) SetOutcome(v string) *PipelineEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *PipelineEventCreate) SetDetail(v string) *PipelineEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *PipelineEventCreate) SetNillableDetail(v *string) *PipelineEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *PipelineEventCreate) SetItemCount(v int) *PipelineEventCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_c *PipelineEventCreate) SetNillableItemCount(v *int) *PipelineEventCreate {
	if v != nil {
		_c.SetItemCount(*v)
	}
	return _c
}

// Mutation returns the PipelineEventMutation object of the builder.
func (_c *PipelineEventCreate) Mutation() *PipelineEventMutation {
	return _c.mutation
}

// Save creates the PipelineEvent in the database.
func (_c *PipelineEventCreate) Save(ctx context.Context) (*PipelineEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineEventCreate) SaveX(ctx context.Context) *PipelineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pipelineevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := pipelineevent.DefaultDetail
		_c.mutation.SetDetail(v)
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		v := pipelineevent.DefaultItemCount
		_c.mutation.SetItemCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PipelineEvent.sequence"`)}
	}
	if v, ok := _c.mutation.Sequence(); ok {
		if err := pipelineevent.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "PipelineEvent.sequence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PipelineEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "PipelineEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := pipelineevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PipelineEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "PipelineEvent.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := pipelineevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PipelineEvent.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "PipelineEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := pipelineevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "PipelineEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "PipelineEvent.detail"`)}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "PipelineEvent.item_count"`)}
	}
	return nil
}

func (_c *PipelineEventCreate) sqlSave(ctx context.Context) (*PipelineEvent, error) {
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

func (_c *PipelineEventCreate) createSpec() (*PipelineEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelineevent.Table, sqlgraph.NewFieldSpec(pipelineevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pipelineevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pipelineevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(pipelineevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(pipelineevent.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(pipelineevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(pipelineevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(pipelineevent.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	return _node, _spec
}

// PipelineEventCreateBulk is the builder for creating many PipelineEvent entities in bulk.
type PipelineEventCreateBulk struct {
	config
	err      error
	builders []*PipelineEventCreate
}

// Save creates the PipelineEvent entities in the database.
func (_c *PipelineEventCreateBulk) Save(ctx context.Context) ([]*PipelineEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineEventMutation)
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
func (_c *PipelineEventCreateBulk) SaveX(ctx context.Context) []*PipelineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
