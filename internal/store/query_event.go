package store

import (
	"context"
	"fmt"

	"github.com/nrqlkit/nrqltutor/ent"
	"github.com/nrqlkit/nrqltutor/ent/predicate"
)

func (r *eventRepo) AppendQueryRun(ctx context.Context, d QueryRunEventData) error {
	seq, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	err = r.client.QueryRunEvent.Create().
		SetSequence(seq).
		SetRunID(d.RunID).
		SetAccountID(d.AccountID).
		SetNrql(d.Query).
		SetEngine(d.Engine).
		SetSeries(d.Series).
		SetRows(d.Rows).
		SetLatencyMs(d.LatencyMs).
		SetSuccess(d.Success).
		SetErrorMessage(d.ErrorMessage).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append query run %s: %w", d.RunID, err)
	}
	return nil
}

func (r *eventRepo) QueryRuns(ctx context.Context, opts QueryOpts) ([]QueryRunRecord, error) {
	q := r.client.QueryRunEvent.Query().
		Where(window[predicate.QueryRunEvent](opts)...).
		Order(newestFirst)
	if opts.Limit > 0 {
		q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list query runs: %w", err)
	}

	out := make([]QueryRunRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, queryRunRecord(e))
	}
	return out, nil
}

func queryRunRecord(e *ent.QueryRunEvent) QueryRunRecord {
	return QueryRunRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		QueryRunEventData: QueryRunEventData{
			RunID:        e.RunID,
			AccountID:    e.AccountID,
			Query:        e.Nrql,
			Engine:       e.Engine,
			Series:       e.Series,
			Rows:         e.Rows,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
		},
	}
}
