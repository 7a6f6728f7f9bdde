package editor

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/charts"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph/nerdgraphtest"
	"github.com/nrqlkit/nrqltutor/internal/router"
)

func oneRow() *nerdgraph.Result {
	return &nerdgraph.Result{Series: []nerdgraph.Series{{Data: []map[string]any{{"count": 5.0}}}}}
}

func TestDestinationBuildsFromState(t *testing.T) {
	d := NewDestination(Deps{Querier: nerdgraphtest.New()})

	s, err := d(State{InitialAccountID: 7, InitialNRQLValue: "SELECT 1 FROM X"})
	require.NoError(t, err)
	ed := s.(*EditorScreen)
	assert.Equal(t, "SELECT 1 FROM X", ed.Value())

	_, err = d(42)
	assert.Error(t, err)
}

func TestViewingQueryRunsOnInit(t *testing.T) {
	mock := nerdgraphtest.New(nerdgraphtest.Reply{Result: oneRow()})
	ed := New(State{
		InitialActiveInterface: InterfaceEditor,
		InitialAccountID:       99,
		InitialNRQLValue:       "SELECT count(*) FROM Transaction",
		IsViewingQuery:         true,
	}, Deps{Querier: mock})

	require.NotNil(t, ed.Init())
	require.NotNil(t, ed.Panel())
	assert.Equal(t, charts.Billboard, ed.Panel().Renderer().Kind())
	assert.True(t, ed.CapturesInput())

	ed.Panel().Init()()
	assert.Equal(t, "SELECT count(*) FROM Transaction", ed.Panel().Query())
	require.Equal(t, 1, len(mock.Calls()))
	assert.Equal(t, 99, mock.Calls()[0].AccountID)
}

func TestNotViewingDoesNotRun(t *testing.T) {
	ed := New(State{InitialNRQLValue: "SELECT 1 FROM X"}, Deps{Querier: nerdgraphtest.New()})
	ed.Init()
	assert.Nil(t, ed.Panel())
}

func TestResultsInterfaceStartsBlurred(t *testing.T) {
	ed := New(State{InitialActiveInterface: InterfaceResults}, Deps{})
	ed.Init()
	assert.False(t, ed.CapturesInput())
}

func TestCtrlRRunsAndResolvesByQuery(t *testing.T) {
	ed := New(State{InitialNRQLValue: "SELECT count(*) FROM X FACET y"}, Deps{Querier: nerdgraphtest.New()})
	ed.Init()

	_, cmd := ed.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	assert.NotNil(t, cmd)
	require.NotNil(t, ed.Panel())
	assert.Equal(t, charts.Table, ed.Panel().Renderer().Kind())
}

func TestCtrlTCyclesChartType(t *testing.T) {
	ed := New(State{InitialNRQLValue: "SELECT count(*) FROM X"}, Deps{Querier: nerdgraphtest.New()})
	ed.Init()

	ed.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	assert.Equal(t, charts.Line, ed.Panel().Renderer().Kind())
	ed.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	assert.Equal(t, charts.Billboard, ed.Panel().Renderer().Kind())
}

func TestEscPops(t *testing.T) {
	ed := New(State{}, Deps{})
	_, cmd := ed.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestViewShowsResult(t *testing.T) {
	ed := New(State{InitialNRQLValue: "SELECT count(*) FROM X", IsViewingQuery: true},
		Deps{Querier: nerdgraphtest.New(nerdgraphtest.Reply{Result: oneRow()})})
	ed.Init()
	msg := ed.Panel().Init()()
	ed.Update(msg)

	out := ed.View(100, 30)
	assert.Contains(t, out, "Result")
	assert.Contains(t, out, "count")
}
