package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screens/editor"
	"github.com/nrqlkit/nrqltutor/internal/store"
)

type fakeRepo struct {
	store.EventRepo
	runs []store.QueryRunRecord
	err  error
}

func (f *fakeRepo) QueryRuns(context.Context, store.QueryOpts) ([]store.QueryRunRecord, error) {
	return f.runs, f.err
}

func loaded(t *testing.T, repo *fakeRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	s.Update(s.Init()())
	return s
}

func TestHistory_ListsRuns(t *testing.T) {
	repo := &fakeRepo{runs: []store.QueryRunRecord{
		{Timestamp: time.Now().Add(-2 * time.Minute), QueryRunEventData: store.QueryRunEventData{
			AccountID: 1, Query: "SELECT count(*) FROM Log", Engine: "offline", Rows: 1200, LatencyMs: 12, Success: true,
		}},
		{Timestamp: time.Now().Add(-time.Hour), QueryRunEventData: store.QueryRunEventData{
			AccountID: 1, Query: "SELECT nope", Engine: "nerdgraph-us", ErrorMessage: "NRQL Syntax Error",
		}},
	}}
	s := loaded(t, repo)

	view := s.View(120, 30)
	assert.Contains(t, view, "SELECT count(*) FROM Log")
	assert.Contains(t, view, "1,200")
	assert.Contains(t, view, "2 minutes ago")
	assert.NotContains(t, view, "NRQL Syntax Error")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(120, 30), "NRQL Syntax Error")
}

func TestHistory_OpenInEditor(t *testing.T) {
	repo := &fakeRepo{runs: []store.QueryRunRecord{
		{Timestamp: time.Now(), QueryRunEventData: store.QueryRunEventData{AccountID: 5, Query: "SELECT 1 FROM Log"}},
	}}
	s := loaded(t, repo)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	require.NotNil(t, cmd)
	msg := cmd().(router.OpenStackedMsg)
	assert.Equal(t, editor.Destination, msg.Destination)
	assert.Equal(t, "SELECT 1 FROM Log", msg.State.(editor.State).InitialNRQLValue)
	assert.Equal(t, 5, msg.State.(editor.State).InitialAccountID)
}

func TestHistory_Empty(t *testing.T) {
	s := loaded(t, &fakeRepo{})
	assert.Contains(t, s.View(100, 20), "No queries yet")
}

func TestHistory_Error(t *testing.T) {
	s := loaded(t, &fakeRepo{err: errors.New("disk")})
	assert.Contains(t, s.View(100, 20), "disk")
}

func TestNewDestination_NeedsRepo(t *testing.T) {
	_, err := NewDestination(nil)(nil)
	assert.Error(t, err)
}

func TestHistory_FailedOnly(t *testing.T) {
	repo := &fakeRepo{runs: []store.QueryRunRecord{
		{Timestamp: time.Now(), QueryRunEventData: store.QueryRunEventData{Query: "SELECT count(*) FROM Log", Success: true}},
		{Timestamp: time.Now(), QueryRunEventData: store.QueryRunEventData{Query: "SELECT nope", ErrorMessage: "bad"}},
	}}
	s := loaded(t, repo)

	s.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	view := s.View(120, 30)
	assert.Contains(t, view, "SELECT nope")
	assert.NotContains(t, view, "FROM Log")
	assert.Equal(t, "Show all", s.KeyHints()[2].Description)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	require.NotNil(t, cmd)
	assert.Equal(t, "SELECT nope", cmd().(router.OpenStackedMsg).State.(editor.State).InitialNRQLValue)
}

func TestHistory_FailedOnlyEmpty(t *testing.T) {
	repo := &fakeRepo{runs: []store.QueryRunRecord{
		{Timestamp: time.Now(), QueryRunEventData: store.QueryRunEventData{Query: "SELECT 1 FROM Log", Success: true}},
	}}
	s := loaded(t, repo)
	s.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	assert.Contains(t, s.View(100, 20), "No failed queries.")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "SELECT 1", clip("SELECT\n   1", 20))
	assert.Equal(t, "ééé…", clip("éééééé", 4))
}
