// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nrqlkit/nrqltutor/ent/predicate"
	"github.com/nrqlkit/nrqltutor/ent/queryrunevent"
)

// QueryRunEventUpdate is the builder for updating QueryRunEvent entities.
type QueryRunEventUpdate struct {
	config
	hooks    []Hook
	mutation *QueryRunEventMutation
}

// Where appends a list predicates to the QueryRunEventUpdate builder.
func (_u *QueryRunEventUpdate) Where(ps ...predicate.QueryRunEvent) *QueryRunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *QueryRunEventUpdate) SetRunID(v string) *QueryRunEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *QueryRunEventUpdate) SetNillableRunID(v *string) *QueryRunEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *QueryRunEventUpdate) SetAccountID(v int) *QueryRunEventUpdate {
	_u.mutation.ResetAccountID()
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *QueryRunEventUpdate) SetNillableAccountID(v *int) *QueryRunEventUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// AddAccountID adds value to the "account_id" field.
func (_u *QueryRunEventUpdate) AddAccountID(v int) *QueryRunEventUpdate {
	_u.mutation.AddAccountID(v)
	return _u
}

// SetNrql sets the "nrql" field.
func (_u *QueryRunEventUpdate) SetNrql(v string) *QueryRunEventUpdate {
	_u.mutation.SetNrql(v)
	return _u
}

// SetNillableNrql sets the "nrql" field if the given value is not nil.
func (_u *QueryRunEventUpdate) SetNillableNrql(v *string) *QueryRunEventUpdate {
	if v != nil {
		_u.SetNrql(*v)
	}
	return _u
}

// SetEngine sets the "engine" field.
func (_u *QueryRunEventUpdate) SetEngine(v string) *QueryRunEventUpdate {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *QueryRunEventUpdate) SetNillableEngine(v *string) *QueryRunEventUpdate {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// SetSeries sets the "series" field.
func (_u *QueryRunEventUpdate) SetSeries(v int) *QueryRunEventUpdate {
	_u.mutation.ResetSeries()
	_u.mutation.SetSeries(v)
	return _u
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (_u *QueryRunEventUpdate) SetNillableSeries(v *int) *QueryRunEventUpdate {
	if v != nil {
		_u.SetSeries(*v)
	}
	return _u
}

// AddSeries adds value to the "series" field.
func (_u *QueryRunEventUpdate) AddSeries(v int) *QueryRunEventUpdate {
	_u.mutation.AddSeries(v)
	return _u
}

// SetRows sets the "rows" field.
func (_u *QueryRunEventUpdate) SetRows(v int) *QueryRunEventUpdate {
	_u.mutation.ResetRows()
	_u.mutation.SetRows(v)
	return _u
}

// SetNillableRows sets the "rows" field if the given value is not nil.
func (_u *QueryRunEventUpdate) SetNillableRows(v *int) *QueryRunEventUpdate {
	if v != nil {
		_u.SetRows(*v)
	}
	return _u
}

// AddRows adds value to the "rows" field.
func (_u *QueryRunEventUpdate) AddRows(v int) *QueryRunEventUpdate {
	_u.mutation.AddRows(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *QueryRunEventUpdate) SetLatencyMs(v int64) *QueryRunEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *QueryRunEventUpdate) SetNillableLatencyMs(v *int64) *QueryRunEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *QueryRunEventUpdate) AddLatencyMs(v int64) *QueryRunEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *QueryRunEventUpdate) SetSuccess(v bool) *QueryRunEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *QueryRunEventUpdate) SetNillableSuccess(v *bool) *QueryRunEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueryRunEventUpdate) SetErrorMessage(v string) *QueryRunEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueryRunEventUpdate) SetNillableErrorMessage(v *string) *QueryRunEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the QueryRunEventMutation object of the builder.
func (_u *QueryRunEventUpdate) Mutation() *QueryRunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueryRunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryRunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueryRunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryRunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueryRunEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := queryrunevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "QueryRunEvent.run_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QueryRunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queryrunevent.Table, queryrunevent.Columns, sqlgraph.NewFieldSpec(queryrunevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(queryrunevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(queryrunevent.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccountID(); ok {
		_spec.AddField(queryrunevent.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Nrql(); ok {
		_spec.SetField(queryrunevent.FieldNrql, field.TypeString, value)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(queryrunevent.FieldEngine, field.TypeString, value)
	}
	if value, ok := _u.mutation.Series(); ok {
		_spec.SetField(queryrunevent.FieldSeries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeries(); ok {
		_spec.AddField(queryrunevent.FieldSeries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(queryrunevent.FieldRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRows(); ok {
		_spec.AddField(queryrunevent.FieldRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(queryrunevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(queryrunevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(queryrunevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queryrunevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryrunevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueryRunEventUpdateOne is the builder for updating a single QueryRunEvent entity.
type QueryRunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueryRunEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *QueryRunEventUpdateOne) SetRunID(v string) *QueryRunEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *QueryRunEventUpdateOne) SetNillableRunID(v *string) *QueryRunEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *QueryRunEventUpdateOne) SetAccountID(v int) *QueryRunEventUpdateOne {
	_u.mutation.ResetAccountID()
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *QueryRunEventUpdateOne) SetNillableAccountID(v *int) *QueryRunEventUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// AddAccountID adds value to the "account_id" field.
func (_u *QueryRunEventUpdateOne) AddAccountID(v int) *QueryRunEventUpdateOne {
	_u.mutation.AddAccountID(v)
	return _u
}

// SetNrql sets the "nrql" field.
func (_u *QueryRunEventUpdateOne) SetNrql(v string) *QueryRunEventUpdateOne {
	_u.mutation.SetNrql(v)
	return _u
}

// SetNillableNrql sets the "nrql" field if the given value is not nil.
func (_u *QueryRunEventUpdateOne) SetNillableNrql(v *string) *QueryRunEventUpdateOne {
	if v != nil {
		_u.SetNrql(*v)
	}
	return _u
}

// SetEngine sets the "engine" field.
func (_u *QueryRunEventUpdateOne) SetEngine(v string) *QueryRunEventUpdateOne {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *QueryRunEventUpdateOne) SetNillableEngine(v *string) *QueryRunEventUpdateOne {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// SetSeries sets the "series" field.
func (_u *QueryRunEventUpdateOne) SetSeries(v int) *QueryRunEventUpdateOne {
	_u.mutation.ResetSeries()
	_u.mutation.SetSeries(v)
	return _u
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (_u *QueryRunEventUpdateOne) SetNillableSeries(v *int) *QueryRunEventUpdateOne {
	if v != nil {
		_u.SetSeries(*v)
	}
	return _u
}

// AddSeries adds value to the "series" field.
func (_u *QueryRunEventUpdateOne) AddSeries(v int) *QueryRunEventUpdateOne {
	_u.mutation.AddSeries(v)
	return _u
}

// SetRows sets the "rows" field.
func (_u *QueryRunEventUpdateOne) SetRows(v int) *QueryRunEventUpdateOne {
	_u.mutation.ResetRows()
	_u.mutation.SetRows(v)
	return _u
}

// SetNillableRows sets the "rows" field if the given value is not nil.
func (_u *QueryRunEventUpdateOne) SetNillableRows(v *int) *QueryRunEventUpdateOne {
	if v != nil {
		_u.SetRows(*v)
	}
	return _u
}

// AddRows adds value to the "rows" field.
func (_u *QueryRunEventUpdateOne) AddRows(v int) *QueryRunEventUpdateOne {
	_u.mutation.AddRows(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *QueryRunEventUpdateOne) SetLatencyMs(v int64) *QueryRunEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *QueryRunEventUpdateOne) SetNillableLatencyMs(v *int64) *QueryRunEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *QueryRunEventUpdateOne) AddLatencyMs(v int64) *QueryRunEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *QueryRunEventUpdateOne) SetSuccess(v bool) *QueryRunEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *QueryRunEventUpdateOne) SetNillableSuccess(v *bool) *QueryRunEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueryRunEventUpdateOne) SetErrorMessage(v string) *QueryRunEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueryRunEventUpdateOne) SetNillableErrorMessage(v *string) *QueryRunEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the QueryRunEventMutation object of the builder.
func (_u *QueryRunEventUpdateOne) Mutation() *QueryRunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueryRunEventUpdate builder.
func (_u *QueryRunEventUpdateOne) Where(ps ...predicate.QueryRunEvent) *QueryRunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueryRunEventUpdateOne) Select(field string, fields ...string) *QueryRunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueryRunEvent entity.
func (_u *QueryRunEventUpdateOne) Save(ctx context.Context) (*QueryRunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryRunEventUpdateOne) SaveX(ctx context.Context) *QueryRunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueryRunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryRunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueryRunEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := queryrunevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "QueryRunEvent.run_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QueryRunEventUpdateOne) sqlSave(ctx context.Context) (_node *QueryRunEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queryrunevent.Table, queryrunevent.Columns, sqlgraph.NewFieldSpec(queryrunevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueryRunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queryrunevent.FieldID)
		for _, f := range fields {
			if !queryrunevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queryrunevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(queryrunevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(queryrunevent.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccountID(); ok {
		_spec.AddField(queryrunevent.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Nrql(); ok {
		_spec.SetField(queryrunevent.FieldNrql, field.TypeString, value)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(queryrunevent.FieldEngine, field.TypeString, value)
	}
	if value, ok := _u.mutation.Series(); ok {
		_spec.SetField(queryrunevent.FieldSeries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeries(); ok {
		_spec.AddField(queryrunevent.FieldSeries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(queryrunevent.FieldRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRows(); ok {
		_spec.AddField(queryrunevent.FieldRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(queryrunevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(queryrunevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(queryrunevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queryrunevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &QueryRunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryrunevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
