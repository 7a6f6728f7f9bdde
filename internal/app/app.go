// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/config"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screen"
	"github.com/nrqlkit/nrqltutor/internal/screens/editor"
	"github.com/nrqlkit/nrqltutor/internal/screens/explanation"
	"github.com/nrqlkit/nrqltutor/internal/screens/history"
	"github.com/nrqlkit/nrqltutor/internal/screens/home"
	"github.com/nrqlkit/nrqltutor/internal/screens/lesson"
	"github.com/nrqlkit/nrqltutor/internal/store"
	"github.com/nrqlkit/nrqltutor/internal/ui/layout"
	"github.com/nrqlkit/nrqltutor/internal/ui/markdown"
	"github.com/nrqlkit/nrqltutor/internal/ui/toast"
)

// Options are the collaborators of the application.
type Options struct {
	Config  *config.Config
	Querier nerdgraph.Querier
	// EventRepo and Bookmarks may be nil, which disables history and
	// resuming.
	EventRepo store.EventRepo
	Bookmarks store.BookmarkRepo
	// Explainer is nil when no LLM provider is configured.
	Explainer     explanation.Explainer
	Logger        *zap.Logger
	LatestVersion func(ctx context.Context) (string, bool)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	toasts *toast.Model
	status string
	width  int
	height int
}

// newAppModel creates the router with the home screen and every stacked
// destination registered.
func newAppModel(opts Options) AppModel {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	md := markdown.New("")

	r := router.New(home.New(home.Deps{
		AccountID:     cfg.AccountID,
		Demo:          cfg.Demo(),
		Events:        opts.EventRepo,
		Bookmarks:     opts.Bookmarks,
		Logger:        logger,
		LatestVersion: opts.LatestVersion,
	}))

	r.Register(lesson.Destination, lesson.NewDestination(lesson.Deps{
		AccountID:    cfg.AccountID,
		Querier:      opts.Querier,
		PollInterval: cfg.PollInterval,
		Markdown:     md,
		Events:       opts.EventRepo,
		Bookmarks:    opts.Bookmarks,
		Logger:       logger,
		CanExplain:   opts.Explainer != nil,
	}))
	r.Register(editor.Destination, editor.NewDestination(editor.Deps{
		Querier:      opts.Querier,
		PollInterval: cfg.PollInterval,
		Logger:       logger,
	}))
	r.Register(explanation.Destination, explanation.NewDestination(explanation.Deps{
		Explainer: opts.Explainer,
		Markdown:  md,
		Logger:    logger,
	}))
	r.Register(history.Destination, history.NewDestination(opts.EventRepo))

	status := fmt.Sprintf("account %d", cfg.AccountID)
	if cfg.Demo() {
		status = "demo mode"
	}

	return AppModel{
		router: r,
		toasts: toast.New(),
		status: status,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.capturesInput() {
				return m, tea.Quit
			}
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	if cmd := m.toasts.Update(msg); cmd != nil {
		return m, cmd
	}
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) capturesInput() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturesInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the whole frame.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	toasts := m.toasts.View(m.width)
	toastHeight := 0
	if toasts != "" {
		toastHeight = lipgloss.Height(toasts)
	}

	content := m.router.View(m.width, max(contentHeight-toastHeight, 0))
	if toasts != "" {
		content = placeBottom(content, toasts, contentHeight)
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

// placeBottom pads content so that bottom sits on the last lines of height.
func placeBottom(content, bottom string, height int) string {
	lines := strings.Split(content, "\n")
	room := height - lipgloss.Height(bottom)
	if len(lines) > room {
		lines = lines[:max(room, 0)]
	}
	for len(lines) < room {
		lines = append(lines, "")
	}
	return strings.Join(append(lines, bottom), "\n")
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
