package charts

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph/nerdgraphtest"
)

func TestPanelInitRunsQuery(t *testing.T) {
	mock := nerdgraphtest.New(nerdgraphtest.Reply{Result: single(map[string]any{"count": 7.0})})
	p := NewPanel(mock, 42, "SELECT count(*) FROM X", Resolve("json", ""))

	assert.Contains(t, p.View(40, 5), LoadingText)

	cmd := p.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	rm, ok := msg.(ResultMsg)
	require.True(t, ok)
	assert.Equal(t, p.ID(), rm.PanelID)

	require.Len(t, mock.Calls(), 1)
	assert.Equal(t, 42, mock.Calls()[0].AccountID)
	assert.Equal(t, "SELECT count(*) FROM X", mock.Calls()[0].NRQL)

	next := p.Update(rm)
	assert.Nil(t, next, "non-timeseries queries do not poll")
	assert.Contains(t, p.View(40, 5), `"count": 7`)
}

func TestPanelIgnoresOtherPanels(t *testing.T) {
	p := NewPanel(nerdgraphtest.New(), 1, "q", Resolve("json", ""))
	cmd := p.Update(ResultMsg{PanelID: "someone-else", Result: single(map[string]any{"x": 1.0})})
	assert.Nil(t, cmd)
	assert.Nil(t, p.Result())
}

func TestPanelErrorKeepsLastData(t *testing.T) {
	p := NewPanel(nerdgraphtest.New(), 1, "q", Resolve("json", ""))
	p.Update(ResultMsg{PanelID: p.ID(), Result: single(map[string]any{"x": 1.0})})
	p.Update(ResultMsg{PanelID: p.ID(), Err: errors.New("boom")})

	assert.NotNil(t, p.Result())
	assert.EqualError(t, p.Err(), "boom")
	assert.Contains(t, p.View(40, 5), `"x": 1`)
}

func TestPanelErrorBeforeDataLooksLikeLoading(t *testing.T) {
	p := NewPanel(nerdgraphtest.New(), 1, "q", Resolve("json", ""))
	p.Update(ResultMsg{PanelID: p.ID(), Err: errors.New("boom")})
	assert.Contains(t, p.View(40, 5), LoadingText)
}

func TestPanelPollsTimeseries(t *testing.T) {
	p := NewPanel(nerdgraphtest.New(), 1, "SELECT count(*) FROM X TIMESERIES", Resolve("", "TIMESERIES"),
		WithPollInterval(time.Millisecond))

	cmd := p.Update(ResultMsg{PanelID: p.ID(), Result: single(map[string]any{"count": 1.0})})
	require.NotNil(t, cmd)
	msg := cmd()
	pm, ok := msg.(pollMsg)
	require.True(t, ok)
	assert.Equal(t, p.ID(), pm.panelID)

	assert.NotNil(t, p.Update(pm), "poll message triggers a fetch")
}

func TestPanelPollingDisabled(t *testing.T) {
	p := NewPanel(nerdgraphtest.New(), 1, "SELECT count(*) FROM X TIMESERIES", Resolve("", ""))
	assert.Nil(t, p.Update(ResultMsg{PanelID: p.ID(), Result: &nerdgraph.Result{}}))
}

func TestPanelIDsUnique(t *testing.T) {
	a := NewPanel(nil, 1, "q", Resolve("", ""))
	b := NewPanel(nil, 1, "q", Resolve("", ""))
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Nil(t, a.Init(), "no querier, no query")
}
