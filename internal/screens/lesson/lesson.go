// Package lesson is the lesson navigator: one level's lessons with a
// stepper, Markdown prose and sample query presenters.
package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/lessons"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/presenter"
	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screen"
	"github.com/nrqlkit/nrqltutor/internal/store"
	"github.com/nrqlkit/nrqltutor/internal/ui/components"
	"github.com/nrqlkit/nrqltutor/internal/ui/layout"
	"github.com/nrqlkit/nrqltutor/internal/ui/markdown"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

// Destination is the router id of the navigator.
const Destination = "tutorial.lesson"

// State selects the level and the lesson to open.
type State struct {
	Level  int
	Lesson int
}

// Deps are the collaborators of the navigator.
type Deps struct {
	AccountID    int
	Querier      nerdgraph.Querier
	PollInterval time.Duration
	Markdown     *markdown.Renderer
	Events       store.EventRepo
	Bookmarks    store.BookmarkRepo
	Logger       *zap.Logger
	CanExplain   bool
}

type visitedMsg struct {
	level   int
	visited map[string]bool
}

// region is the line range a presenter occupies in the rendered body.
type region struct {
	top, bottom int
}

// LessonScreen navigates the lessons of one level.
type LessonScreen struct {
	level   int
	lessons []lessons.Lesson
	index   int
	deps    Deps

	content    lessons.Content
	presenters []*presenter.SampleQuery
	focus      int
	visited    map[string]bool

	offset  int
	regions []region
	// bodyTop is the terminal row of the first body line in the last view.
	bodyTop int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a navigator for level positioned at lesson index. Out of
// range indexes are clamped.
func New(level int, index int, deps Deps) (*LessonScreen, error) {
	ls, ok := lessons.Level(level)
	if !ok || len(ls) == 0 {
		return nil, fmt.Errorf("no lessons for level %d", level)
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Markdown == nil {
		deps.Markdown = markdown.New("")
	}
	return &LessonScreen{
		level:   level,
		lessons: ls,
		index:   min(max(index, 0), len(ls)-1),
		deps:    deps,
		focus:   -1,
		visited: make(map[string]bool),
	}, nil
}

// NewDestination returns a router destination for deps.
func NewDestination(deps Deps) router.Destination {
	return func(state any) (screen.Screen, error) {
		s, ok := state.(State)
		if !ok {
			return nil, fmt.Errorf("unexpected lesson state %T", state)
		}
		return New(s.Level, s.Lesson, deps)
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	return tea.Batch(s.load(), s.loadVisited())
}

func (s *LessonScreen) Title() string {
	return fmt.Sprintf("Level %d · %s", s.level, s.Current().Title)
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Lesson"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Tab", Description: "Next query"},
		{Key: "t", Description: "Try"},
		{Key: "c", Description: "Copy"},
	}
	if s.deps.CanExplain {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Current returns the lesson on screen.
func (s *LessonScreen) Current() lessons.Lesson { return s.lessons[s.index] }

// Index returns the position of the current lesson in the level.
func (s *LessonScreen) Index() int { return s.index }

// Presenters returns the sample queries of the current lesson.
func (s *LessonScreen) Presenters() []*presenter.SampleQuery { return s.presenters }

// Focused returns the presenter with keyboard focus, or nil.
func (s *LessonScreen) Focused() *presenter.SampleQuery {
	if s.focus < 0 || s.focus >= len(s.presenters) {
		return nil
	}
	return s.presenters[s.focus]
}

// load builds the current lesson and starts its subscriptions. Results of
// the previous lesson's panels no longer match any presenter and are
// dropped.
func (s *LessonScreen) load() tea.Cmd {
	l := s.Current()
	s.content = l.Unit()
	s.presenters = nil
	s.focus = -1
	s.offset = 0
	s.regions = nil

	deps := presenter.Deps{
		Querier:      s.deps.Querier,
		PollInterval: s.deps.PollInterval,
		Markdown:     s.deps.Markdown,
		Events:       s.deps.Events,
		Logger:       s.deps.Logger,
		CanExplain:   s.deps.CanExplain,
		Origin:       presenter.Origin{Level: s.level, Lesson: l.Title},
	}

	cmds := []tea.Cmd{s.recordView()}
	for _, props := range s.content.Samples() {
		p := presenter.New(props, s.deps.AccountID, deps)
		s.presenters = append(s.presenters, p)
		cmds = append(cmds, p.Init())
	}
	s.visited[l.Title] = true
	return tea.Batch(cmds...)
}

func (s *LessonScreen) recordView() tea.Cmd {
	events, marks, logger := s.deps.Events, s.deps.Bookmarks, s.deps.Logger
	level, index, title := s.level, s.index, s.Current().Title
	return func() tea.Msg {
		ctx := context.Background()
		if events != nil {
			err := events.AppendLessonAction(ctx, store.LessonActionEventData{
				Level:       level,
				LessonTitle: title,
				Action:      store.ActionViewed,
			})
			if err != nil {
				logger.Warn("record lesson view", zap.Error(err))
			}
		}
		if marks != nil {
			if err := marks.Save(ctx, store.Bookmark{Level: level, Lesson: index, Title: title}); err != nil {
				logger.Warn("save bookmark", zap.Error(err))
			}
		}
		return nil
	}
}

func (s *LessonScreen) loadVisited() tea.Cmd {
	events, level, logger := s.deps.Events, s.level, s.deps.Logger
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		v, err := events.VisitedLessons(context.Background(), level)
		if err != nil {
			logger.Warn("load visited lessons", zap.Error(err))
			return nil
		}
		return visitedMsg{level: level, visited: v}
	}
}

// Go moves to lesson i. Out of range indexes are ignored.
func (s *LessonScreen) Go(i int) tea.Cmd {
	if i < 0 || i >= len(s.lessons) || i == s.index {
		return nil
	}
	s.index = i
	return s.load()
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case visitedMsg:
		if msg.level == s.level {
			for t := range msg.visited {
				s.visited[t] = true
			}
		}
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)

	case tea.MouseMotionMsg:
		m := msg.Mouse()
		s.hover(m.Y)
		return s, nil

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			s.scroll(-3)
		case tea.MouseWheelDown:
			s.scroll(3)
		}
		return s, nil
	}

	cmds := make([]tea.Cmd, 0, len(s.presenters))
	for _, p := range s.presenters {
		cmds = append(cmds, p.Update(msg))
	}
	return s, tea.Batch(cmds...)
}

func (s *LessonScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return func() tea.Msg { return router.PopScreenMsg{} }
	case "right", "l", "n":
		return s.Go(s.index + 1)
	case "left", "h", "p":
		return s.Go(s.index - 1)
	case "tab":
		s.cycleFocus(1)
	case "shift+tab":
		s.cycleFocus(-1)
	case "up", "k":
		s.scroll(-1)
	case "down", "j":
		s.scroll(1)
	case "pgup":
		s.scroll(-10)
	case "pgdown", "space":
		s.scroll(10)
	case "t":
		if p := s.target(); p != nil {
			return p.Try()
		}
	case "c":
		if p := s.target(); p != nil {
			return p.Copy()
		}
	case "e":
		if p := s.target(); p != nil {
			return p.Explain()
		}
	}
	return nil
}

// target is the focused presenter, or the first one when none has focus.
func (s *LessonScreen) target() *presenter.SampleQuery {
	if p := s.Focused(); p != nil {
		return p
	}
	if len(s.presenters) > 0 {
		return s.presenters[0]
	}
	return nil
}

func (s *LessonScreen) cycleFocus(delta int) {
	n := len(s.presenters)
	if n == 0 {
		return
	}
	if cur := s.Focused(); cur != nil {
		cur.Blur()
	}
	switch {
	case s.focus < 0 && delta > 0:
		s.focus = 0
	case s.focus < 0:
		s.focus = n - 1
	default:
		s.focus = (s.focus + delta + n) % n
	}
	s.presenters[s.focus].Focus()
	if s.focus < len(s.regions) {
		s.offset = s.regions[s.focus].top
	}
}

// hover forwards pointer movement at terminal row y to the presenters.
func (s *LessonScreen) hover(y int) {
	line := y - s.bodyTop + s.offset
	for i, p := range s.presenters {
		if i >= len(s.regions) {
			return
		}
		if r := s.regions[i]; line >= r.top && line < r.bottom {
			p.PointerEnter()
		} else {
			p.PointerLeave()
		}
	}
}

func (s *LessonScreen) scroll(delta int) {
	s.offset = max(s.offset+delta, 0)
}

var (
	levelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	moreStyle  = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
)

func (s *LessonScreen) View(width, height int) string {
	inner := max(width-4, 20)

	titles := make([]string, len(s.lessons))
	visited := 0
	for i, l := range s.lessons {
		titles[i] = l.Title
		if s.visited[l.Title] {
			visited++
		}
	}
	stepper := components.Stepper{Titles: titles, Current: s.index, Visited: s.visited}
	progress := components.NewProgressBar("Visited", visited, len(s.lessons), min(inner, 50))
	top := lipgloss.JoinVertical(lipgloss.Left,
		levelStyle.Render(fmt.Sprintf("Level %d", s.level))+"  "+progress.View(),
		stepper.View(inner),
		"",
	)

	body := s.renderBody(inner)
	topHeight := lipgloss.Height(top)
	s.bodyTop = layout.HeaderHeight + topHeight

	lines := strings.Split(body, "\n")
	avail := max(height-topHeight-1, 1)
	s.offset = min(s.offset, max(len(lines)-avail, 0))
	end := min(s.offset+avail, len(lines))
	window := strings.Join(lines[s.offset:end], "\n")

	footer := ""
	if end < len(lines) {
		footer = moreStyle.Render(fmt.Sprintf("↓ %d more lines", len(lines)-end))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, top, window, footer))
}

// renderBody renders every block and records where each presenter lands.
func (s *LessonScreen) renderBody(width int) string {
	var parts []string
	s.regions = s.regions[:0]
	line, sample := 0, 0

	for _, b := range s.content.Blocks {
		var out string
		if b.IsSample() {
			if sample >= len(s.presenters) {
				continue
			}
			out = s.presenters[sample].View(width)
			h := lipgloss.Height(out)
			s.regions = append(s.regions, region{top: line, bottom: line + h})
			sample++
		} else {
			out = s.deps.Markdown.Render(b.Markdown, width)
		}
		parts = append(parts, out)
		line += lipgloss.Height(out) + 1
	}
	return strings.Join(parts, "\n\n")
}
