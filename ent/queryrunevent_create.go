// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nrqlkit/nrqltutor/ent/queryrunevent"
)

// QueryRunEventCreate is the builder for creating a QueryRunEvent entity.
type QueryRunEventCreate struct {
	config
	mutation *QueryRunEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QueryRunEventCreate) SetSequence(v int64) *QueryRunEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QueryRunEventCreate) SetTimestamp(v time.Time) *QueryRunEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QueryRunEventCreate) SetNillableTimestamp(v *time.Time) *QueryRunEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *QueryRunEventCreate) SetRunID(v string) *QueryRunEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *QueryRunEventCreate) SetAccountID(v int) *QueryRunEventCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetNrql sets the "nrql" field.
func (_c *QueryRunEventCreate) SetNrql(v string) *QueryRunEventCreate {
	_c.mutation.SetNrql(v)
	return _c
}

// SetEngine sets the "engine" field.
func (_c *QueryRunEventCreate) SetEngine(v string) *QueryRunEventCreate {
	_c.mutation.SetEngine(v)
	return _c
}

// SetSeries sets the "series" field.
func (_c *QueryRunEventCreate) SetSeries(v int) *QueryRunEventCreate {
	_c.mutation.SetSeries(v)
	return _c
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (_c *QueryRunEventCreate) SetNillableSeries(v *int) *QueryRunEventCreate {
	if v != nil {
		_c.SetSeries(*v)
	}
	return _c
}

// SetRows sets the "rows" field.
func (_c *QueryRunEventCreate) SetRows(v int) *QueryRunEventCreate {
	_c.mutation.SetRows(v)
	return _c
}

// SetNillableRows sets the "rows" field if the given value is not nil.
func (_c *QueryRunEventCreate) SetNillableRows(v *int) *QueryRunEventCreate {
	if v != nil {
		_c.SetRows(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *QueryRunEventCreate) SetLatencyMs(v int64) *QueryRunEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *QueryRunEventCreate) SetNillableLatencyMs(v *int64) *QueryRunEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *QueryRunEventCreate) SetSuccess(v bool) *QueryRunEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *QueryRunEventCreate) SetErrorMessage(v string) *QueryRunEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *QueryRunEventCreate) SetNillableErrorMessage(v *string) *QueryRunEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the QueryRunEventMutation object of the builder.
func (_c *QueryRunEventCreate) Mutation() *QueryRunEventMutation {
	return _c.mutation
}

// Save creates the QueryRunEvent in the database.
func (_c *QueryRunEventCreate) Save(ctx context.Context) (*QueryRunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueryRunEventCreate) SaveX(ctx context.Context) *QueryRunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryRunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryRunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueryRunEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := queryrunevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Series(); !ok {
		v := queryrunevent.DefaultSeries
		_c.mutation.SetSeries(v)
	}
	if _, ok := _c.mutation.Rows(); !ok {
		v := queryrunevent.DefaultRows
		_c.mutation.SetRows(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := queryrunevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := queryrunevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueryRunEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QueryRunEvent.sequence"`)}
	}
	if v, ok := _c.mutation.Sequence(); ok {
		if err := queryrunevent.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "QueryRunEvent.sequence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QueryRunEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "QueryRunEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := queryrunevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "QueryRunEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "QueryRunEvent.account_id"`)}
	}
	if _, ok := _c.mutation.Nrql(); !ok {
		return &ValidationError{Name: "nrql", err: errors.New(`ent: missing required field "QueryRunEvent.nrql"`)}
	}
	if _, ok := _c.mutation.Engine(); !ok {
		return &ValidationError{Name: "engine", err: errors.New(`ent: missing required field "QueryRunEvent.engine"`)}
	}
	if _, ok := _c.mutation.Series(); !ok {
		return &ValidationError{Name: "series", err: errors.New(`ent: missing required field "QueryRunEvent.series"`)}
	}
	if _, ok := _c.mutation.Rows(); !ok {
		return &ValidationError{Name: "rows", err: errors.New(`ent: missing required field "QueryRunEvent.rows"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "QueryRunEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "QueryRunEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "QueryRunEvent.error_message"`)}
	}
	return nil
}

func (_c *QueryRunEventCreate) sqlSave(ctx context.Context) (*QueryRunEvent, error) {
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

func (_c *QueryRunEventCreate) createSpec() (*QueryRunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QueryRunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queryrunevent.Table, sqlgraph.NewFieldSpec(queryrunevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(queryrunevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(queryrunevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(queryrunevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(queryrunevent.FieldAccountID, field.TypeInt, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.Nrql(); ok {
		_spec.SetField(queryrunevent.FieldNrql, field.TypeString, value)
		_node.Nrql = value
	}
	if value, ok := _c.mutation.Engine(); ok {
		_spec.SetField(queryrunevent.FieldEngine, field.TypeString, value)
		_node.Engine = value
	}
	if value, ok := _c.mutation.Series(); ok {
		_spec.SetField(queryrunevent.FieldSeries, field.TypeInt, value)
		_node.Series = value
	}
	if value, ok := _c.mutation.Rows(); ok {
		_spec.SetField(queryrunevent.FieldRows, field.TypeInt, value)
		_node.Rows = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(queryrunevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(queryrunevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(queryrunevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// QueryRunEventCreateBulk is the builder for creating many QueryRunEvent entities in bulk.
type QueryRunEventCreateBulk struct {
	config
	err      error
	builders []*QueryRunEventCreate
}

// Save creates the QueryRunEvent entities in the database.
func (_c *QueryRunEventCreateBulk) Save(ctx context.Context) ([]*QueryRunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueryRunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueryRunEventMutation)
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
func (_c *QueryRunEventCreateBulk) SaveX(ctx context.Context) []*QueryRunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryRunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryRunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
