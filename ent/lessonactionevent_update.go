// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nrqlkit/nrqltutor/ent/lessonactionevent"
	"github.com/nrqlkit/nrqltutor/ent/predicate"
)

// LessonActionEventUpdate is the builder for updating LessonActionEvent entities.
type LessonActionEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonActionEventMutation
}

// Where appends a list predicates to the LessonActionEventUpdate builder.
func (_u *LessonActionEventUpdate) Where(ps ...predicate.LessonActionEvent) *LessonActionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *LessonActionEventUpdate) SetLevel(v int) *LessonActionEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LessonActionEventUpdate) SetNillableLevel(v *int) *LessonActionEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LessonActionEventUpdate) AddLevel(v int) *LessonActionEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *LessonActionEventUpdate) SetLessonTitle(v string) *LessonActionEventUpdate {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *LessonActionEventUpdate) SetNillableLessonTitle(v *string) *LessonActionEventUpdate {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *LessonActionEventUpdate) SetAction(v lessonactionevent.Action) *LessonActionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *LessonActionEventUpdate) SetNillableAction(v *lessonactionevent.Action) *LessonActionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetNrql sets the "nrql" field.
func (_u *LessonActionEventUpdate) SetNrql(v string) *LessonActionEventUpdate {
	_u.mutation.SetNrql(v)
	return _u
}

// SetNillableNrql sets the "nrql" field if the given value is not nil.
func (_u *LessonActionEventUpdate) SetNillableNrql(v *string) *LessonActionEventUpdate {
	if v != nil {
		_u.SetNrql(*v)
	}
	return _u
}

// Mutation returns the LessonActionEventMutation object of the builder.
func (_u *LessonActionEventUpdate) Mutation() *LessonActionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonActionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonActionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonActionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonActionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonActionEventUpdate) check() error {
	if v, ok := _u.mutation.LessonTitle(); ok {
		if err := lessonactionevent.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "LessonActionEvent.lesson_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := lessonactionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LessonActionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonActionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonactionevent.Table, lessonactionevent.Columns, sqlgraph.NewFieldSpec(lessonactionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(lessonactionevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(lessonactionevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(lessonactionevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(lessonactionevent.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Nrql(); ok {
		_spec.SetField(lessonactionevent.FieldNrql, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonActionEventUpdateOne is the builder for updating a single LessonActionEvent entity.
type LessonActionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonActionEventMutation
}

// SetLevel sets the "level" field.
func (_u *LessonActionEventUpdateOne) SetLevel(v int) *LessonActionEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LessonActionEventUpdateOne) SetNillableLevel(v *int) *LessonActionEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LessonActionEventUpdateOne) AddLevel(v int) *LessonActionEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *LessonActionEventUpdateOne) SetLessonTitle(v string) *LessonActionEventUpdateOne {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *LessonActionEventUpdateOne) SetNillableLessonTitle(v *string) *LessonActionEventUpdateOne {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *LessonActionEventUpdateOne) SetAction(v lessonactionevent.Action) *LessonActionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *LessonActionEventUpdateOne) SetNillableAction(v *lessonactionevent.Action) *LessonActionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetNrql sets the "nrql" field.
func (_u *LessonActionEventUpdateOne) SetNrql(v string) *LessonActionEventUpdateOne {
	_u.mutation.SetNrql(v)
	return _u
}

// SetNillableNrql sets the "nrql" field if the given value is not nil.
func (_u *LessonActionEventUpdateOne) SetNillableNrql(v *string) *LessonActionEventUpdateOne {
	if v != nil {
		_u.SetNrql(*v)
	}
	return _u
}

// Mutation returns the LessonActionEventMutation object of the builder.
func (_u *LessonActionEventUpdateOne) Mutation() *LessonActionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonActionEventUpdate builder.
func (_u *LessonActionEventUpdateOne) Where(ps ...predicate.LessonActionEvent) *LessonActionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonActionEventUpdateOne) Select(field string, fields ...string) *LessonActionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonActionEvent entity.
func (_u *LessonActionEventUpdateOne) Save(ctx context.Context) (*LessonActionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonActionEventUpdateOne) SaveX(ctx context.Context) *LessonActionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonActionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonActionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonActionEventUpdateOne) check() error {
	if v, ok := _u.mutation.LessonTitle(); ok {
		if err := lessonactionevent.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "LessonActionEvent.lesson_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := lessonactionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LessonActionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonActionEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonActionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonactionevent.Table, lessonactionevent.Columns, sqlgraph.NewFieldSpec(lessonactionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonActionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonactionevent.FieldID)
		for _, f := range fields {
			if !lessonactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonactionevent.FieldID {
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
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(lessonactionevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(lessonactionevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(lessonactionevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(lessonactionevent.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Nrql(); ok {
		_spec.SetField(lessonactionevent.FieldNrql, field.TypeString, value)
	}
	_node = &LessonActionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
