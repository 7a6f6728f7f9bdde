package nerdgraph

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnauthorized means the API key was rejected. It is never retried.
var ErrUnauthorized = errors.New("nerdgraph: API key rejected (check nerdgraph.api_key)")

// ErrRateLimit indicates NerdGraph returned 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("nerdgraph rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrUnavailable indicates NerdGraph is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nerdgraph unavailable: %v", e.Err)
	}
	return "nerdgraph unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrQuery carries GraphQL errors, typically an NRQL syntax error. Sending
// the same query again will not help.
type ErrQuery struct {
	Messages []string
}

func (e *ErrQuery) Error() string {
	return "nrql query failed: " + strings.Join(e.Messages, "; ")
}
