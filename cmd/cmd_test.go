package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/config"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/store"
)

func TestAggregateUsage(t *testing.T) {
	rec := func(purpose, model string, in, out int, ms int64) store.LLMRequestRecord {
		return store.LLMRequestRecord{LLMRequestEventData: store.LLMRequestEventData{
			Purpose: purpose, Model: model, InputTokens: in, OutputTokens: out, LatencyMs: ms,
		}}
	}
	events := []store.LLMRequestRecord{
		rec("explain", "claude-sonnet-4-5", 100, 50, 300),
		rec("explain", "gpt-4o", 200, 20, 100),
		rec("other", "gpt-4o", 10, 5, 50),
	}

	byPurpose := aggregateUsage(events, func(e store.LLMRequestRecord) string { return e.Purpose })
	assert.Equal(t, []usage{
		{Key: "explain", Calls: 2, InputTokens: 300, OutputTokens: 70, latencyMs: 400},
		{Key: "other", Calls: 1, InputTokens: 10, OutputTokens: 5, latencyMs: 50},
	}, byPurpose)
	assert.Equal(t, int64(200), byPurpose[0].AvgLatencyMs())

	byModel := aggregateUsage(events, func(e store.LLMRequestRecord) string { return e.Model })
	assert.Equal(t, "gpt-4o", byModel[0].Key)
	assert.Equal(t, 2, byModel[0].Calls)

	assert.Empty(t, aggregateUsage(nil, func(e store.LLMRequestRecord) string { return e.Model }))
	assert.Zero(t, usage{}.AvgLatencyMs())
}

func TestQuerierConfig(t *testing.T) {
	cfg := &config.Config{NerdGraph: config.NerdGraphConfig{
		APIKey: "NRAK-x", Region: "EU", Timeout: 5 * time.Second,
	}}
	nc := querierConfig(cfg)
	assert.Equal(t, "NRAK-x", nc.APIKey)
	assert.Equal(t, nerdgraph.EndpointEU, nc.URL())
	assert.Equal(t, 5*time.Second, nc.Timeout)
	assert.Equal(t, nerdgraph.DefaultConfig().Retry, nc.Retry)
}

func TestEstimateCosts(t *testing.T) {
	r := estimateCosts([]usage{
		{Key: "openai/gpt-4o-mini", Calls: 2, InputTokens: 1_000_000, OutputTokens: 1_000_000},
		{Key: "homegrown-model", Calls: 1, InputTokens: 10, OutputTokens: 10},
	})
	require.Len(t, r.rows, 2)
	assert.True(t, r.rows[0].priced)
	assert.InDelta(t, 0.75, r.rows[0].usd, 1e-9)
	assert.False(t, r.rows[1].priced)
	assert.InDelta(t, 0.75, r.total, 1e-9)
	assert.Equal(t, []string{"homegrown-model"}, r.unpriced)
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.0012))
	assert.Equal(t, "$1.50", formatCost(1.5))
	assert.Equal(t, "✓", mark(true))
	assert.Equal(t, "✗", mark(false))
}
