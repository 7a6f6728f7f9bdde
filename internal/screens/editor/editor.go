// Package editor is the NRQL editor destination opened by "Try this query".
package editor

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/charts"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screen"
	"github.com/nrqlkit/nrqltutor/internal/ui/layout"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

// Destination is the router id of the editor.
const Destination = "data-explorer.nrql-editor"

// Interface names accepted in State.InitialActiveInterface.
const (
	InterfaceEditor  = "nrqlEditor"
	InterfaceResults = "results"
)

// State is the initial state handed over by OpenStackedMsg.
type State struct {
	InitialActiveInterface string
	InitialAccountID       int
	InitialNRQLValue       string
	// IsViewingQuery runs the initial query as soon as the editor opens.
	IsViewingQuery bool
}

// Deps are the collaborators the editor needs.
type Deps struct {
	Querier      nerdgraph.Querier
	PollInterval time.Duration
	Logger       *zap.Logger
}

const editorLines = 5

// EditorScreen lets the learner edit and run a query.
type EditorScreen struct {
	state     State
	deps      Deps
	input     textarea.Model
	panel     *charts.Panel
	chartType string
	ranQuery  string
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)
var _ screen.InputCapturer = (*EditorScreen)(nil)

// New creates an editor from its initial state.
func New(state State, deps Deps) *EditorScreen {
	ta := textarea.New()
	ta.Placeholder = "SELECT count(*) FROM Transaction SINCE 1 hour ago"
	ta.ShowLineNumbers = false
	ta.CharLimit = 4096
	ta.SetHeight(editorLines)
	ta.SetValue(state.InitialNRQLValue)

	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &EditorScreen{state: state, deps: deps, input: ta}
}

// NewDestination returns a router destination building editors with deps.
func NewDestination(deps Deps) router.Destination {
	return func(state any) (screen.Screen, error) {
		switch s := state.(type) {
		case State:
			return New(s, deps), nil
		case *State:
			return New(*s, deps), nil
		case nil:
			return New(State{InitialActiveInterface: InterfaceEditor}, deps), nil
		default:
			return nil, fmt.Errorf("unexpected editor state %T", state)
		}
	}
}

func (s *EditorScreen) Init() tea.Cmd {
	var cmds []tea.Cmd
	if s.state.InitialActiveInterface != InterfaceResults {
		cmds = append(cmds, s.input.Focus())
	}
	if s.state.IsViewingQuery && strings.TrimSpace(s.input.Value()) != "" {
		cmds = append(cmds, s.run())
	}
	return tea.Batch(cmds...)
}

func (s *EditorScreen) Title() string {
	return "NRQL Editor"
}

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+R", Description: "Run"},
		{Key: "Ctrl+T", Description: "Chart type"},
		{Key: "Tab", Description: "Focus"},
		{Key: "Esc", Description: "Back"},
	}
}

// CapturesInput is true while the query input has focus.
func (s *EditorScreen) CapturesInput() bool {
	return s.input.Focused()
}

// Value returns the current query text.
func (s *EditorScreen) Value() string {
	return s.input.Value()
}

// Panel returns the result panel of the last run, nil before the first run.
func (s *EditorScreen) Panel() *charts.Panel {
	return s.panel
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "ctrl+r", "ctrl+enter":
			return s, s.run()
		case "ctrl+t":
			return s, s.cycleChart()
		case "tab":
			if s.input.Focused() {
				s.input.Blur()
				return s, nil
			}
			return s, s.input.Focus()
		}

	case charts.ResultMsg:
		if s.panel != nil {
			return s, s.panel.Update(msg)
		}
		return s, nil
	}

	var cmds []tea.Cmd
	if s.panel != nil {
		cmds = append(cmds, s.panel.Update(msg))
	}
	if s.input.Focused() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return s, tea.Batch(cmds...)
}

// run starts a new panel for the current text. The previous panel is
// dropped, so its pending results are ignored by id.
func (s *EditorScreen) run() tea.Cmd {
	q := strings.TrimSpace(s.input.Value())
	if q == "" {
		return nil
	}
	s.ranQuery = q
	s.panel = charts.NewPanel(s.deps.Querier, s.state.InitialAccountID, q,
		charts.Resolve(s.chartType, q),
		charts.WithPollInterval(s.deps.PollInterval),
		charts.WithLogger(s.deps.Logger))
	return s.panel.Init()
}

// cycleChart moves to the next chart type hint, wrapping back to automatic
// resolution, and re-runs the query.
func (s *EditorScreen) cycleChart() tea.Cmd {
	hints := charts.Hints()
	next := ""
	if s.chartType == "" {
		next = hints[0]
	} else {
		for i, h := range hints {
			if h == s.chartType && i+1 < len(hints) {
				next = hints[i+1]
			}
		}
	}
	s.chartType = next
	return s.run()
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(theme.Error)
)

func (s *EditorScreen) View(width, height int) string {
	inner := max(width-4, 10)
	s.input.SetWidth(inner - 2)

	box := theme.Blurred
	if s.input.Focused() {
		box = theme.Focused
	}

	chart := "auto"
	if s.chartType != "" {
		chart = s.chartType
	}
	header := labelStyle.Render(fmt.Sprintf("Account %d", s.state.InitialAccountID)) +
		"  " + labelStyle.Render("Chart: "+chart)

	editor := box.Width(inner).Render(s.input.View())

	var result string
	switch {
	case s.panel == nil:
		result = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Press Ctrl+R to run the query")
	default:
		used := lipgloss.Height(header) + lipgloss.Height(editor) + 3
		result = s.panel.View(inner, max(height-used, 5))
		if err := s.panel.Err(); err != nil {
			result += "\n" + errStyle.Render(err.Error())
		}
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, editor, labelStyle.Render("Result"), result))
}
