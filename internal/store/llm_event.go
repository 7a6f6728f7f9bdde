package store

import (
	"context"
	"fmt"

	"github.com/nrqlkit/nrqltutor/ent"
	"github.com/nrqlkit/nrqltutor/ent/predicate"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, d LLMRequestEventData) error {
	seq, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	err = r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetProvider(d.Provider).
		SetModel(d.Model).
		SetPurpose(d.Purpose).
		SetInputTokens(d.InputTokens).
		SetOutputTokens(d.OutputTokens).
		SetLatencyMs(d.LatencyMs).
		SetSuccess(d.Success).
		SetErrorMessage(d.ErrorMessage).
		SetRequestBody(d.RequestBody).
		SetResponseBody(d.ResponseBody).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Where(window[predicate.LLMRequestEvent](opts)...).
		Order(newestFirst)
	if opts.Limit > 0 {
		q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list llm requests: %w", err)
	}
	out := make([]LLMRequestRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, llmRecord(e))
	}
	return out, nil
}

// GetLLMEvent returns nil, nil for an unknown id.
func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm request %d: %w", id, err)
	}
	rec := llmRecord(e)
	return &rec, nil
}

func llmRecord(e *ent.LLMRequestEvent) LLMRequestRecord {
	return LLMRequestRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
