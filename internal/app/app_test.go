package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/config"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screens/editor"
	"github.com/nrqlkit/nrqltutor/internal/screens/lesson"
	"github.com/nrqlkit/nrqltutor/internal/ui/toast"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	m := newAppModel(Options{
		Config:  &config.Config{AccountID: 12, NerdGraph: config.NerdGraphConfig{APIKey: "NRAK-test"}},
		Querier: nerdgraph.NewOffline(),
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(AppModel)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	assert.True(t, isQuit(cmd))
}

func TestApp_OpensLesson(t *testing.T) {
	m := testModel(t)
	m.Update(router.OpenStackedMsg{Destination: lesson.Destination, State: lesson.State{Level: 4, Lesson: 1}})

	require.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "Level 4 · Aggregation and bucketing", m.router.Active().Title())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_QIgnoredWhileTyping(t *testing.T) {
	m := testModel(t)
	m.Update(router.OpenStackedMsg{Destination: editor.Destination, State: editor.State{InitialActiveInterface: editor.InterfaceEditor}})
	m.router.Active().Init()

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	assert.False(t, isQuit(cmd))

	home := testModel(t)
	_, cmd = home.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	assert.True(t, isQuit(cmd))
}

func TestApp_ToastAboveFooter(t *testing.T) {
	m := testModel(t)
	m.Update(toast.ShowMsg{Title: "Query copied to clipboard", Level: toast.Normal})

	content := m.render()
	assert.Contains(t, content, "Query copied to clipboard")
	assert.Contains(t, content, "account 12")
}

func TestApp_DemoStatus(t *testing.T) {
	m := newAppModel(Options{Config: &config.Config{}, Querier: nerdgraph.NewOffline()})
	assert.Equal(t, "demo mode", m.status)
}
