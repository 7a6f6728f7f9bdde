// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nrqlkit/nrqltutor/ent/lessonactionevent"
)

// LessonActionEventCreate is the builder for creating a LessonActionEvent entity.
type LessonActionEventCreate struct {
	config
	mutation *LessonActionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LessonActionEventCreate) SetSequence(v int64) *LessonActionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LessonActionEventCreate) SetTimestamp(v time.Time) *LessonActionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LessonActionEventCreate) SetNillableTimestamp(v *time.Time) *LessonActionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *LessonActionEventCreate) SetLevel(v int) *LessonActionEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetLessonTitle sets the "lesson_title" field.
func (_c *LessonActionEventCreate) SetLessonTitle(v string) *LessonActionEventCreate {
	_c.mutation.SetLessonTitle(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *LessonActionEventCreate) SetAction(v lessonactionevent.Action) *LessonActionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetNrql sets the "nrql" field.
func (_c *LessonActionEventCreate) SetNrql(v string) *LessonActionEventCreate {
	_c.mutation.SetNrql(v)
	return _c
}

// SetNillableNrql sets the "nrql" field if the given value is not nil.
func (_c *LessonActionEventCreate) SetNillableNrql(v *string) *LessonActionEventCreate {
	if v != nil {
		_c.SetNrql(*v)
	}
	return _c
}

// Mutation returns the LessonActionEventMutation object of the builder.
func (_c *LessonActionEventCreate) Mutation() *LessonActionEventMutation {
	return _c.mutation
}

// Save creates the LessonActionEvent in the database.
func (_c *LessonActionEventCreate) Save(ctx context.Context) (*LessonActionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonActionEventCreate) SaveX(ctx context.Context) *LessonActionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonActionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonActionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonActionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := lessonactionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Nrql(); !ok {
		v := lessonactionevent.DefaultNrql
		_c.mutation.SetNrql(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonActionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LessonActionEvent.sequence"`)}
	}
	if v, ok := _c.mutation.Sequence(); ok {
		if err := lessonactionevent.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "LessonActionEvent.sequence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LessonActionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LessonActionEvent.level"`)}
	}
	if _, ok := _c.mutation.LessonTitle(); !ok {
		return &ValidationError{Name: "lesson_title", err: errors.New(`ent: missing required field "LessonActionEvent.lesson_title"`)}
	}
	if v, ok := _c.mutation.LessonTitle(); ok {
		if err := lessonactionevent.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "LessonActionEvent.lesson_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "LessonActionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := lessonactionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LessonActionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Nrql(); !ok {
		return &ValidationError{Name: "nrql", err: errors.New(`ent: missing required field "LessonActionEvent.nrql"`)}
	}
	return nil
}

func (_c *LessonActionEventCreate) sqlSave(ctx context.Context) (*LessonActionEvent, error) {
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

func (_c *LessonActionEventCreate) createSpec() (*LessonActionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonActionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonactionevent.Table, sqlgraph.NewFieldSpec(lessonactionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(lessonactionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(lessonactionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(lessonactionevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.LessonTitle(); ok {
		_spec.SetField(lessonactionevent.FieldLessonTitle, field.TypeString, value)
		_node.LessonTitle = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(lessonactionevent.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Nrql(); ok {
		_spec.SetField(lessonactionevent.FieldNrql, field.TypeString, value)
		_node.Nrql = value
	}
	return _node, _spec
}

// LessonActionEventCreateBulk is the builder for creating many LessonActionEvent entities in bulk.
type LessonActionEventCreateBulk struct {
	config
	err      error
	builders []*LessonActionEventCreate
}

// Save creates the LessonActionEvent entities in the database.
func (_c *LessonActionEventCreateBulk) Save(ctx context.Context) ([]*LessonActionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonActionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonActionEventMutation)
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
func (_c *LessonActionEventCreateBulk) SaveX(ctx context.Context) []*LessonActionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonActionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonActionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
