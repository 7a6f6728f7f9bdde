package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screens/lesson"
	"github.com/nrqlkit/nrqltutor/internal/store"
)

type fakeBookmarks struct {
	latest *store.Bookmark
}

func (f *fakeBookmarks) Save(context.Context, store.Bookmark) error      { return nil }
func (f *fakeBookmarks) Latest(context.Context) (*store.Bookmark, error) { return f.latest, nil }

type fakeEvents struct {
	store.EventRepo
}

func (fakeEvents) VisitedLessons(context.Context, int) (map[string]bool, error) {
	return map[string]bool{"Introduction": true, "Advanced maths": true}, nil
}

func TestHome_ResumeDisabledWithoutProgress(t *testing.T) {
	h := New(Deps{})
	h.Update(h.load()())
	assert.Equal(t, "Level 4", h.Selected())
}

func TestHome_ResumeOpensSavedLesson(t *testing.T) {
	marks := &fakeBookmarks{latest: &store.Bookmark{Level: 4, Lesson: 2, Title: "Advanced maths"}}
	h := New(Deps{Bookmarks: marks, Events: fakeEvents{}})
	h.Update(h.load()())

	require.Equal(t, "Resume", h.Selected())
	assert.Contains(t, h.View(120, 40), "Advanced maths")
	assert.Contains(t, h.View(120, 40), "2/6 LESSONS")

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.OpenStackedMsg{
		Destination: lesson.Destination,
		State:       lesson.State{Level: 4, Lesson: 2},
	}, cmd())
}

func TestHome_DemoBadgeAndUpdateNote(t *testing.T) {
	h := New(Deps{
		Demo:          true,
		LatestVersion: func(context.Context) (string, bool) { return "v1.2.0", true },
	})
	h.Update(h.checkUpdate()())

	view := h.View(120, 40)
	assert.Contains(t, view, "DEMO MODE")
	assert.Contains(t, view, "v1.2.0")
}
