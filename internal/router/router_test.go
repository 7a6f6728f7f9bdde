package router

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/screen"
	"github.com/nrqlkit/nrqltutor/internal/ui/toast"
)

type page struct {
	name   string
	inits  int
	seen   []tea.Msg
	closed bool
}

func (p *page) Init() tea.Cmd { p.inits++; return nil }
func (p *page) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	p.seen = append(p.seen, msg)
	return p, nil
}
func (p *page) View(w, h int) string { return p.name }
func (p *page) Title() string        { return p.name }

type closingPage struct{ page }

func (p *closingPage) Close() { p.closed = true }

func withPage(r *Router, id string, p screen.Screen) {
	r.Register(id, func(any) (screen.Screen, error) { return p, nil })
}

func TestOpenStacked(t *testing.T) {
	r := New(&page{name: "home"})
	lesson := &page{name: "lesson"}
	var got any
	r.Register("lesson", func(state any) (screen.Screen, error) {
		got = state
		return lesson, nil
	})

	r.Update(OpenStackedMsg{Destination: "lesson", State: 3})

	assert.Equal(t, 3, got)
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, lesson, r.Active())
	assert.Equal(t, 1, lesson.inits)
	assert.Equal(t, "lesson", r.View(80, 24))
}

func TestRegisterReplaces(t *testing.T) {
	r := New(&page{name: "home"})
	withPage(r, "x", &page{name: "old"})
	withPage(r, "x", &page{name: "new"})

	r.Update(OpenStackedMsg{Destination: "x"})
	assert.Equal(t, "new", r.Active().Title())
}

func TestPop(t *testing.T) {
	home := &page{name: "home"}
	r := New(home)
	top := &closingPage{page{name: "explain"}}
	withPage(r, "explain", top)
	r.Update(OpenStackedMsg{Destination: "explain"})

	r.Update(PopScreenMsg{})

	assert.Equal(t, 1, r.Depth())
	assert.Same(t, home, r.Active())
	assert.True(t, top.closed)
	assert.Zero(t, home.inits, "returning to a screen does not re-run Init")
}

func TestPopKeepsRoot(t *testing.T) {
	home := &page{name: "home"}
	r := New(home)

	assert.Nil(t, r.Update(PopScreenMsg{}))
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, home, r.Active())
}

func TestUpdateReachesOnlyActive(t *testing.T) {
	home := &page{name: "home"}
	top := &page{name: "top"}
	r := New(home)
	withPage(r, "top", top)
	r.Update(OpenStackedMsg{Destination: "top"})

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	assert.Empty(t, home.seen)
	require.Len(t, top.seen, 1)
	assert.IsType(t, tea.KeyPressMsg{}, top.seen[0])
}

type tick struct{}

func TestUpdateReachesCoveredScreens(t *testing.T) {
	home := &page{name: "home"}
	top := &page{name: "top"}
	r := New(home)
	withPage(r, "top", top)
	r.Update(OpenStackedMsg{Destination: "top"})

	r.Update(tick{})
	r.Update(tea.MouseWheelMsg{})
	r.Update(PopScreenMsg{})

	assert.Equal(t, []tea.Msg{tick{}}, home.seen)
	assert.Equal(t, []tea.Msg{tick{}, tea.MouseWheelMsg{}}, top.seen)
}

func TestOpenStackedFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Router)
	}{
		{"unknown destination", func(*Router) {}},
		{"builder error", func(r *Router) {
			r.Register("missing", func(any) (screen.Screen, error) {
				return nil, errors.New("bad state")
			})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&page{name: "home"})
			tt.setup(r)

			cmd := r.Update(OpenStackedMsg{Destination: "missing"})

			require.NotNil(t, cmd)
			msg, ok := cmd().(toast.ShowMsg)
			require.True(t, ok)
			assert.Equal(t, toast.Critical, msg.Level)
			assert.Equal(t, 1, r.Depth())
		})
	}
}
