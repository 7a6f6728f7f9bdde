package nerdgraph

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/store"
)

// LoggingQuerier records every query as a QueryRunEvent and a log entry.
type LoggingQuerier struct {
	inner     Querier
	eventRepo store.EventRepo
	logger    *zap.Logger
}

// WithLogging wraps a Querier with event logging. repo may be nil.
func WithLogging(q Querier, repo store.EventRepo, logger *zap.Logger) Querier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingQuerier{inner: q, eventRepo: repo, logger: logger}
}

func (l *LoggingQuerier) Query(ctx context.Context, accountID int, nrql string) (*Result, error) {
	start := time.Now()
	res, err := l.inner.Query(ctx, accountID, nrql)

	data := store.QueryRunEventData{
		RunID:     uuid.NewString(),
		AccountID: accountID,
		Query:     nrql,
		Engine:    l.inner.Engine(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if res != nil {
		data.Series = len(res.Series)
		data.Rows = res.RowCount()
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	fields := []zap.Field{
		zap.String("run_id", data.RunID),
		zap.Int("account_id", accountID),
		zap.String("engine", data.Engine),
		zap.Int64("latency_ms", data.LatencyMs),
		zap.Int("rows", data.Rows),
	}
	if err != nil {
		l.logger.Warn("nrql query failed", append(fields, zap.String("nrql", nrql), zap.Error(err))...)
	} else {
		l.logger.Debug("nrql query", fields...)
	}

	if l.eventRepo != nil {
		// A failed append must not fail the query.
		if logErr := l.eventRepo.AppendQueryRun(context.WithoutCancel(ctx), data); logErr != nil {
			l.logger.Warn("record query run", zap.Error(logErr))
		}
	}

	return res, err
}

func (l *LoggingQuerier) Engine() string {
	return l.inner.Engine()
}
