package nerdgraph

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/store"
)

// recordingRepo captures query runs; other EventRepo methods are unused.
type recordingRepo struct {
	store.EventRepo
	mu   sync.Mutex
	runs []store.QueryRunEventData
	err  error
}

func (r *recordingRepo) AppendQueryRun(_ context.Context, data store.QueryRunEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, data)
	return r.err
}

func TestLoggingRecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	res := &Result{Series: []Series{
		{Name: "a", Data: []map[string]any{{"count": 1.0}, {"count": 2.0}}},
		{Name: "b", Data: []map[string]any{{"count": 3.0}}},
	}}
	q := WithLogging(&replay{errs: []error{nil}, res: res}, repo, zap.NewNop())

	got, err := q.Query(context.Background(), 99, "SELECT count(*) FROM X FACET y")
	require.NoError(t, err)
	assert.Same(t, res, got)

	require.Len(t, repo.runs, 1)
	run := repo.runs[0]
	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, 99, run.AccountID)
	assert.Equal(t, "SELECT count(*) FROM X FACET y", run.Query)
	assert.Equal(t, "replay", run.Engine)
	assert.Equal(t, 2, run.Series)
	assert.Equal(t, 3, run.Rows)
	assert.True(t, run.Success)
}

func TestLoggingRecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	q := WithLogging(failing(&ErrQuery{Messages: []string{"bad"}}), repo, nil)

	_, err := q.Query(context.Background(), 1, "SELEC")
	require.Error(t, err)

	require.Len(t, repo.runs, 1)
	assert.False(t, repo.runs[0].Success)
	assert.Contains(t, repo.runs[0].ErrorMessage, "bad")
}

func TestLoggingRepoFailureDoesNotFailQuery(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	q := WithLogging(failing(nil), repo, nil)

	_, err := q.Query(context.Background(), 1, "q")
	assert.NoError(t, err)
}

func TestLoggingNilRepo(t *testing.T) {
	q := WithLogging(failing(nil), nil, nil)
	_, err := q.Query(context.Background(), 1, "q")
	assert.NoError(t, err)
	assert.Equal(t, "replay", q.Engine())
}
