// Package nerdgraph runs NRQL queries, either against the NerdGraph GraphQL
// API or against an offline synthetic engine for demo mode and tests.
package nerdgraph

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nrqlkit/nrqltutor/internal/backoff"
)

// Querier executes one NRQL query for an account.
type Querier interface {
	Query(ctx context.Context, accountID int, nrql string) (*Result, error)

	// Engine names the backend for logging, e.g. "nerdgraph-us" or "offline".
	Engine() string
}

// Result is a query result split into series. Unfaceted queries produce a
// single series; faceted ones produce one series per facet value.
type Result struct {
	Series []Series
	Facets []string
	Raw    json.RawMessage
}

// Series is the data points for one facet value.
type Series struct {
	Name string
	Data []map[string]any
}

// First returns the first data point of the first series, or nil.
func (r *Result) First() map[string]any {
	if r == nil || len(r.Series) == 0 || len(r.Series[0].Data) == 0 {
		return nil
	}
	return r.Series[0].Data[0]
}

// Rows returns every data point across all series.
func (r *Result) Rows() []map[string]any {
	if r == nil {
		return nil
	}
	var rows []map[string]any
	for _, s := range r.Series {
		rows = append(rows, s.Data...)
	}
	return rows
}

// RowCount is len(Rows()) without the copy.
func (r *Result) RowCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, s := range r.Series {
		n += len(s.Data)
	}
	return n
}

// Empty reports whether the result has no data points.
func (r *Result) Empty() bool {
	return r.RowCount() == 0
}

// Config holds NerdGraph client configuration.
type Config struct {
	APIKey   string
	Region   string // "US" or "EU"
	Endpoint string // overrides the region endpoint
	Timeout  time.Duration
	Retry    backoff.Policy
}

const (
	EndpointUS = "https://api.newrelic.com/graphql"
	EndpointEU = "https://api.eu.newrelic.com/graphql"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Region:  "US",
		Timeout: 30 * time.Second,
		Retry: backoff.Policy{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     8 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// URL resolves the GraphQL endpoint.
func (c Config) URL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	if c.Region == "EU" {
		return EndpointEU
	}
	return EndpointUS
}
