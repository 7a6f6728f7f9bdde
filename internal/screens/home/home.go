// Package home is the start screen: resume, pick a level, open the editor
// or the query history.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/lessons"
	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screen"
	"github.com/nrqlkit/nrqltutor/internal/screens/editor"
	"github.com/nrqlkit/nrqltutor/internal/screens/history"
	"github.com/nrqlkit/nrqltutor/internal/screens/lesson"
	"github.com/nrqlkit/nrqltutor/internal/store"
	"github.com/nrqlkit/nrqltutor/internal/ui/components"
)

// Deps are the collaborators of the home screen.
type Deps struct {
	AccountID int
	Demo      bool
	Events    store.EventRepo
	Bookmarks store.BookmarkRepo
	Logger    *zap.Logger
	// LatestVersion reports a newer release, if any. Optional.
	LatestVersion func(ctx context.Context) (string, bool)
}

type loadedMsg struct {
	progress *store.Bookmark
	visited  map[int]int
}

type updateMsg struct {
	version string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps     Deps
	menu     components.Menu
	progress *store.Bookmark
	visited  map[int]int
	latest   string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	h := &HomeScreen{deps: deps, visited: make(map[int]int)}
	h.menu = components.NewMenu(h.items())
	return h
}

func (h *HomeScreen) items() []components.MenuItem {
	open := func(dest string, state any) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.OpenStackedMsg{Destination: dest, State: state} }
		}
	}

	resume := components.MenuItem{Label: "Resume", Disabled: true}
	if p := h.progress; p != nil {
		if ls, ok := lessons.Level(p.Level); ok && p.Lesson < len(ls) {
			resume.Disabled = false
			resume.Hint = fmt.Sprintf("Level %d · %s", p.Level, ls[p.Lesson].Title)
			resume.Action = open(lesson.Destination, lesson.State{Level: p.Level, Lesson: p.Lesson})
		}
	}

	items := []components.MenuItem{resume}
	for _, n := range lessons.Numbers() {
		ls, _ := lessons.Level(n)
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("Level %d", n),
			Hint:   fmt.Sprintf("%d lessons", len(ls)),
			Action: open(lesson.Destination, lesson.State{Level: n}),
		})
	}
	return append(items,
		components.MenuItem{
			Label: "Query editor",
			Action: open(editor.Destination, editor.State{
				InitialActiveInterface: editor.InterfaceEditor,
				InitialAccountID:       h.deps.AccountID,
			}),
		},
		components.MenuItem{
			Label:    "History",
			Action:   open(history.Destination, nil),
			Disabled: h.deps.Events == nil,
		},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	)
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.load(), h.checkUpdate())
}

func (h *HomeScreen) load() tea.Cmd {
	d := h.deps
	return func() tea.Msg {
		ctx := context.Background()
		msg := loadedMsg{visited: make(map[int]int)}
		if d.Bookmarks != nil {
			p, err := d.Bookmarks.Latest(ctx)
			if err != nil {
				d.Logger.Warn("load progress", zap.Error(err))
			}
			msg.progress = p
		}
		if d.Events != nil {
			for _, n := range lessons.Numbers() {
				v, err := d.Events.VisitedLessons(ctx, n)
				if err != nil {
					d.Logger.Warn("load visited lessons", zap.Error(err))
					continue
				}
				msg.visited[n] = len(v)
			}
		}
		return msg
	}
}

func (h *HomeScreen) checkUpdate() tea.Cmd {
	check := h.deps.LatestVersion
	if check == nil {
		return nil
	}
	return func() tea.Msg {
		if v, ok := check(context.Background()); ok {
			return updateMsg{version: v}
		}
		return nil
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		h.progress = msg.progress
		h.visited = msg.visited
		h.menu = components.NewMenu(h.items())
		return h, nil
	case updateMsg:
		h.latest = msg.version
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Selected returns the label of the highlighted menu item.
func (h *HomeScreen) Selected() string {
	return h.menu.Items[h.menu.Selected].Label
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 24 || width < 100
	cw := contentWidth(width)

	visited, total := 0, 0
	for _, n := range lessons.Numbers() {
		ls, _ := lessons.Level(n)
		total += len(ls)
		visited += h.visited[n]
	}

	account := fmt.Sprintf("account %d", h.deps.AccountID)
	if h.deps.Demo {
		account = "demo mode"
	}

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(visited, total, account, cw),
		renderMenuBox(h.menu.View(), cw),
	}
	if h.latest != "" {
		sections = append(sections, renderUpdateNote(h.latest, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
