// Package history lists recent query runs.
package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screen"
	"github.com/nrqlkit/nrqltutor/internal/screens/editor"
	"github.com/nrqlkit/nrqltutor/internal/store"
	"github.com/nrqlkit/nrqltutor/internal/ui/layout"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

// Destination is the router id of the history screen.
const Destination = "history"

const pageSize = 50

var keys = struct {
	up, down, toggle, failed, open, back key.Binding
}{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	toggle: key.NewBinding(key.WithKeys("enter")),
	failed: key.NewBinding(key.WithKeys("f")),
	open:   key.NewBinding(key.WithKeys("t")),
	back:   key.NewBinding(key.WithKeys("esc")),
}

type loadedMsg struct {
	runs []store.QueryRunRecord
	err  error
}

// HistoryScreen shows the latest query runs, newest first. Enter expands
// a run, f hides successful runs and t reopens a run in the editor.
type HistoryScreen struct {
	repo       store.EventRepo
	runs       []store.QueryRunRecord
	cursor     int
	expanded   int
	failedOnly bool
	loaded     bool
	err        error
}

var (
	_ screen.Screen          = (*HistoryScreen)(nil)
	_ screen.KeyHintProvider = (*HistoryScreen)(nil)
)

func New(repo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo, expanded: -1}
}

// NewDestination returns a router destination reading from repo.
func NewDestination(repo store.EventRepo) router.Destination {
	return func(any) (screen.Screen, error) {
		if repo == nil {
			return nil, fmt.Errorf("history needs a database")
		}
		return New(repo), nil
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		runs, err := repo.QueryRuns(context.Background(), store.QueryOpts{Limit: pageSize})
		return loadedMsg{runs: runs, err: err}
	}
}

func (s *HistoryScreen) Title() string { return "Query History" }

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	filter := "Failed only"
	if s.failedOnly {
		filter = "Show all"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "t", Description: "Open in editor"},
		{Key: "f", Description: filter},
		{Key: "Esc", Description: "Back"},
	}
}

// visible returns the runs the current filter lets through.
func (s *HistoryScreen) visible() []store.QueryRunRecord {
	if !s.failedOnly {
		return s.runs
	}
	var out []store.QueryRunRecord
	for _, r := range s.runs {
		if !r.Success {
			out = append(out, r)
		}
	}
	return out
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.runs, s.err, s.loaded = msg.runs, msg.err, true

	case tea.KeyPressMsg:
		runs := s.visible()
		switch {
		case key.Matches(msg, keys.back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, keys.up):
			s.cursor = max(s.cursor-1, 0)
		case key.Matches(msg, keys.down):
			s.cursor = min(s.cursor+1, max(len(runs)-1, 0))
		case key.Matches(msg, keys.toggle):
			if s.expanded == s.cursor {
				s.expanded = -1
			} else {
				s.expanded = s.cursor
			}
		case key.Matches(msg, keys.failed):
			s.failedOnly = !s.failedOnly
			s.cursor, s.expanded = 0, -1
		case key.Matches(msg, keys.open):
			if s.cursor < len(runs) {
				return s, reopen(runs[s.cursor])
			}
		}
	}
	return s, nil
}

func reopen(run store.QueryRunRecord) tea.Cmd {
	return func() tea.Msg {
		return router.OpenStackedMsg{
			Destination: editor.Destination,
			State: editor.State{
				InitialActiveInterface: editor.InterfaceEditor,
				InitialAccountID:       run.AccountID,
				InitialNRQLValue:       run.Query,
				IsViewingQuery:         true,
			},
		}
	}
}

var (
	rowStyle      = lipgloss.NewStyle().Foreground(theme.Text)
	selectedStyle = rowStyle.Foreground(theme.Primary).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(theme.Success)
	failStyle     = lipgloss.NewStyle().Foreground(theme.Error)
	dimStyle      = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// clip flattens whitespace and cuts q to n runes.
func clip(q string, n int) string {
	q = strings.Join(strings.Fields(q), " ")
	r := []rune(q)
	if len(r) <= n {
		return q
	}
	return string(r[:n-1]) + "…"
}

func (s *HistoryScreen) View(width, height int) string {
	notice := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render("\n\n" + text)
	}
	runs := s.visible()
	switch {
	case s.err != nil:
		return notice(failStyle, "Error: "+s.err.Error())
	case !s.loaded:
		return notice(dimStyle, "Loading history...")
	case len(s.runs) == 0:
		return notice(dimStyle.Italic(true), "No queries yet. Open a lesson and try one!")
	case len(runs) == 0:
		return notice(dimStyle.Italic(true), "No failed queries.")
	}

	qw := max(width-48, 20)
	rows := []string{""}
	for i, run := range runs {
		mark, st := "  ", rowStyle
		if i == s.cursor {
			mark, st = "> ", selectedStyle
		}
		status := okStyle.Render("✓")
		if !run.Success {
			status = failStyle.Render("✗")
		}
		query := clip(run.Query, qw)
		if i == s.expanded {
			query = strings.Join(strings.Fields(run.Query), " ")
		}
		rows = append(rows, st.Render(fmt.Sprintf("%s%s %-14s %6s rows %6dms  %s",
			mark, status, humanize.Time(run.Timestamp), humanize.Comma(int64(run.Rows)), run.LatencyMs, query)))

		if i != s.expanded {
			continue
		}
		rows = append(rows, dimStyle.Render(fmt.Sprintf("      account %d · %s · %d series", run.AccountID, run.Engine, run.Series)))
		if run.ErrorMessage != "" {
			rows = append(rows, failStyle.Render("      "+run.ErrorMessage))
		}
	}
	return lipgloss.NewStyle().MaxHeight(height).Render(strings.Join(rows, "\n"))
}
