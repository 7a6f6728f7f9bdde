// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nrqlkit/nrqltutor/ent/bookmark"
	"github.com/nrqlkit/nrqltutor/ent/predicate"
)

// BookmarkUpdate is the builder for updating Bookmark entities.
type BookmarkUpdate struct {
	config
	hooks    []Hook
	mutation *BookmarkMutation
}

// Where appends a list predicates to the BookmarkUpdate builder.
func (_u *BookmarkUpdate) Where(ps ...predicate.Bookmark) *BookmarkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *BookmarkUpdate) SetLevel(v int) *BookmarkUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableLevel(v *int) *BookmarkUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *BookmarkUpdate) AddLevel(v int) *BookmarkUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLesson sets the "lesson" field.
func (_u *BookmarkUpdate) SetLesson(v int) *BookmarkUpdate {
	_u.mutation.ResetLesson()
	_u.mutation.SetLesson(v)
	return _u
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableLesson(v *int) *BookmarkUpdate {
	if v != nil {
		_u.SetLesson(*v)
	}
	return _u
}

// AddLesson adds value to the "lesson" field.
func (_u *BookmarkUpdate) AddLesson(v int) *BookmarkUpdate {
	_u.mutation.AddLesson(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *BookmarkUpdate) SetTitle(v string) *BookmarkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableTitle(v *string) *BookmarkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *BookmarkUpdate) SetSavedAt(v time.Time) *BookmarkUpdate {
	_u.mutation.SetSavedAt(v)
	return _u
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_u *BookmarkUpdate) SetNillableSavedAt(v *time.Time) *BookmarkUpdate {
	if v != nil {
		_u.SetSavedAt(*v)
	}
	return _u
}

// Mutation returns the BookmarkMutation object of the builder.
func (_u *BookmarkUpdate) Mutation() *BookmarkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookmarkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookmarkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookmarkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookmarkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookmarkUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := bookmark.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Bookmark.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Lesson(); ok {
		if err := bookmark.LessonValidator(v); err != nil {
			return &ValidationError{Name: "lesson", err: fmt.Errorf(`ent: validator failed for field "Bookmark.lesson": %w`, err)}
		}
	}
	return nil
}

func (_u *BookmarkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookmark.Table, bookmark.Columns, sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(bookmark.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(bookmark.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lesson(); ok {
		_spec.SetField(bookmark.FieldLesson, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLesson(); ok {
		_spec.AddField(bookmark.FieldLesson, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(bookmark.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(bookmark.FieldSavedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookmarkUpdateOne is the builder for updating a single Bookmark entity.
type BookmarkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookmarkMutation
}

// SetLevel sets the "level" field.
func (_u *BookmarkUpdateOne) SetLevel(v int) *BookmarkUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableLevel(v *int) *BookmarkUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *BookmarkUpdateOne) AddLevel(v int) *BookmarkUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLesson sets the "lesson" field.
func (_u *BookmarkUpdateOne) SetLesson(v int) *BookmarkUpdateOne {
	_u.mutation.ResetLesson()
	_u.mutation.SetLesson(v)
	return _u
}

// SetNillableLesson sets the "lesson" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableLesson(v *int) *BookmarkUpdateOne {
	if v != nil {
		_u.SetLesson(*v)
	}
	return _u
}

// AddLesson adds value to the "lesson" field.
func (_u *BookmarkUpdateOne) AddLesson(v int) *BookmarkUpdateOne {
	_u.mutation.AddLesson(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *BookmarkUpdateOne) SetTitle(v string) *BookmarkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableTitle(v *string) *BookmarkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *BookmarkUpdateOne) SetSavedAt(v time.Time) *BookmarkUpdateOne {
	_u.mutation.SetSavedAt(v)
	return _u
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_u *BookmarkUpdateOne) SetNillableSavedAt(v *time.Time) *BookmarkUpdateOne {
	if v != nil {
		_u.SetSavedAt(*v)
	}
	return _u
}

// Mutation returns the BookmarkMutation object of the builder.
func (_u *BookmarkUpdateOne) Mutation() *BookmarkMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookmarkUpdate builder.
func (_u *BookmarkUpdateOne) Where(ps ...predicate.Bookmark) *BookmarkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookmarkUpdateOne) Select(field string, fields ...string) *BookmarkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bookmark entity.
func (_u *BookmarkUpdateOne) Save(ctx context.Context) (*Bookmark, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookmarkUpdateOne) SaveX(ctx context.Context) *Bookmark {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookmarkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookmarkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookmarkUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := bookmark.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Bookmark.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Lesson(); ok {
		if err := bookmark.LessonValidator(v); err != nil {
			return &ValidationError{Name: "lesson", err: fmt.Errorf(`ent: validator failed for field "Bookmark.lesson": %w`, err)}
		}
	}
	return nil
}

func (_u *BookmarkUpdateOne) sqlSave(ctx context.Context) (_node *Bookmark, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookmark.Table, bookmark.Columns, sqlgraph.NewFieldSpec(bookmark.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bookmark.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bookmark.FieldID)
		for _, f := range fields {
			if !bookmark.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bookmark.FieldID {
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
		_spec.SetField(bookmark.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(bookmark.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lesson(); ok {
		_spec.SetField(bookmark.FieldLesson, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLesson(); ok {
		_spec.AddField(bookmark.FieldLesson, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(bookmark.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(bookmark.FieldSavedAt, field.TypeTime, value)
	}
	_node = &Bookmark{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
