package lesson

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/lessons"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screens/editor"
	"github.com/nrqlkit/nrqltutor/internal/store"
	"github.com/nrqlkit/nrqltutor/internal/ui/markdown"
)

type fakeEvents struct {
	store.EventRepo
	actions []store.LessonActionEventData
	visited map[string]bool
}

func (f *fakeEvents) AppendLessonAction(_ context.Context, d store.LessonActionEventData) error {
	f.actions = append(f.actions, d)
	return nil
}

func (f *fakeEvents) VisitedLessons(context.Context, int) (map[string]bool, error) {
	return f.visited, nil
}

type fakeBookmarks struct {
	saved []store.Bookmark
}

func (f *fakeBookmarks) Save(_ context.Context, b store.Bookmark) error {
	f.saved = append(f.saved, b)
	return nil
}

func (f *fakeBookmarks) Latest(context.Context) (*store.Bookmark, error) { return nil, nil }

func testDeps() Deps {
	return Deps{
		AccountID: 99,
		Querier:   nerdgraph.NewOffline(),
		Markdown:  markdown.New("notty"),
	}
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestNew(t *testing.T) {
	s, err := New(4, 99, testDeps())
	require.NoError(t, err)
	assert.Equal(t, 5, s.Index())

	s, err = New(4, -3, testDeps())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Index())

	_, err = New(1, 0, testDeps())
	assert.Error(t, err)
}

func TestInit_BuildsPresenters(t *testing.T) {
	s, err := New(4, 0, testDeps())
	require.NoError(t, err)
	s.Init()

	want := len(lessons.Level4()[0].Unit().Samples())
	assert.Len(t, s.Presenters(), want)
	for _, p := range s.Presenters() {
		assert.True(t, p.ShowButton())
	}
}

func TestNavigation(t *testing.T) {
	s, err := New(4, 0, testDeps())
	require.NoError(t, err)
	s.Init()

	s.Update(key("left"))
	assert.Equal(t, 0, s.Index())

	s.Update(key("right"))
	assert.Equal(t, "Aggregation and bucketing", s.Current().Title)

	s.Update(key("l"))
	s.Update(key("n"))
	assert.Equal(t, 3, s.Index())

	s.Update(key("h"))
	assert.Equal(t, 2, s.Index())

	s.Go(5)
	s.Update(key("right"))
	assert.Equal(t, "Nested aggregation", s.Current().Title)
}

func TestTry_UsesFocusedPresenter(t *testing.T) {
	s, err := New(4, 1, testDeps())
	require.NoError(t, err)
	s.Init()
	require.Greater(t, len(s.Presenters()), 1)

	s.Update(key("tab"))
	s.Update(key("tab"))
	require.Same(t, s.Presenters()[1], s.Focused())

	_, cmd := s.Update(key("t"))
	require.NotNil(t, cmd)
	open, ok := cmd().(router.OpenStackedMsg)
	require.True(t, ok)
	assert.Equal(t, editor.Destination, open.Destination)
	state := open.State.(editor.State)
	assert.Equal(t, 99, state.InitialAccountID)
	assert.Equal(t, s.Presenters()[1].Query(), state.InitialNRQLValue)
}

func TestExplain_DisabledWithoutLLM(t *testing.T) {
	s, err := New(4, 0, testDeps())
	require.NoError(t, err)
	s.Init()

	_, cmd := s.Update(key("e"))
	assert.Nil(t, cmd)
}

func TestRecordsViewAndProgress(t *testing.T) {
	events := &fakeEvents{visited: map[string]bool{"Advanced maths": true}}
	marks := &fakeBookmarks{}
	d := testDeps()
	d.Events = events
	d.Bookmarks = marks

	s, err := New(4, 2, d)
	require.NoError(t, err)
	s.load()
	s.recordView()()
	s.Update(s.loadVisited()())

	require.Len(t, events.actions, 1)
	assert.Equal(t, store.ActionViewed, events.actions[0].Action)
	assert.Equal(t, "Advanced maths", events.actions[0].LessonTitle)
	require.NotEmpty(t, marks.saved)
	assert.Equal(t, store.Bookmark{Level: 4, Lesson: 2, Title: "Advanced maths"}, marks.saved[0])
	assert.True(t, s.visited["Advanced maths"])
}

func TestView_ScrollsAndHovers(t *testing.T) {
	s, err := New(4, 1, testDeps())
	require.NoError(t, err)
	s.Init()

	view := s.View(140, 30)
	assert.Contains(t, view, "Level 4")
	require.NotEmpty(t, s.regions)

	s.Update(tea.MouseMotionMsg{X: 10, Y: s.bodyTop + s.regions[0].top})
	assert.True(t, s.Presenters()[0].ShowButton())

	s.Update(key("j"))
	s.View(140, 30)
	assert.Equal(t, 1, s.offset)
}

func TestPanelsKeepUpdatingUnderEditor(t *testing.T) {
	s, err := New(4, 0, testDeps())
	require.NoError(t, err)
	s.Init()
	require.NotEmpty(t, s.Presenters())
	panel := s.Presenters()[0].Panel()
	pending := panel.Init()
	require.NotNil(t, pending)

	r := router.New(s)
	r.Register(editor.Destination, editor.NewDestination(editor.Deps{Querier: nerdgraph.NewOffline()}))
	_, try := s.Update(key("t"))
	require.NotNil(t, try)
	r.Update(try())
	require.Equal(t, 2, r.Depth())

	r.Update(pending())
	r.Update(router.PopScreenMsg{})

	require.Same(t, s, r.Active())
	assert.NotNil(t, panel.Result(), "result delivered while covered is kept")
	assert.NoError(t, panel.Err())
}
