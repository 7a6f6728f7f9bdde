// Package nerdgraphtest provides a scripted nerdgraph.Querier for tests of
// packages that run queries.
package nerdgraphtest

import (
	"context"
	"sync"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
)

// Reply is one scripted answer.
type Reply struct {
	Result *nerdgraph.Result
	Err    error
}

// Call is one query the Querier received.
type Call struct {
	AccountID int
	NRQL      string
}

// Querier hands out replies in order. When they run out it reports the
// endpoint unavailable.
type Querier struct {
	mu      sync.Mutex
	replies []Reply
	calls   []Call
}

var _ nerdgraph.Querier = (*Querier)(nil)

func New(replies ...Reply) *Querier {
	return &Querier{replies: replies}
}

func (q *Querier) Query(_ context.Context, accountID int, nrql string) (*nerdgraph.Result, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.calls = append(q.calls, Call{AccountID: accountID, NRQL: nrql})
	if len(q.replies) == 0 {
		return nil, &nerdgraph.ErrUnavailable{}
	}
	r := q.replies[0]
	q.replies = q.replies[1:]
	return r.Result, r.Err
}

func (q *Querier) Engine() string { return "scripted" }

// Calls returns a copy of the queries received so far.
func (q *Querier) Calls() []Call {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Call(nil), q.calls...)
}
