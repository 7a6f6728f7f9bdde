// Package explanation shows an LLM explanation of a query.
package explanation

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/explain"
	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screen"
	"github.com/nrqlkit/nrqltutor/internal/ui/layout"
	"github.com/nrqlkit/nrqltutor/internal/ui/markdown"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

// Destination is the router id of the explanation screen.
const Destination = "nrql.explain"

const requestTimeout = 60 * time.Second

// State is the query to explain.
type State struct {
	AccountID int
	NRQL      string
}

// Explainer produces explanations. Satisfied by *explain.Service.
type Explainer interface {
	Explain(ctx context.Context, nrql string) (*explain.Explanation, error)
}

// Deps are the collaborators of the screen.
type Deps struct {
	Explainer Explainer
	Markdown  *markdown.Renderer
	Logger    *zap.Logger
}

type explainedMsg struct {
	explanation *explain.Explanation
	err         error
}

// ExplanationScreen waits for and shows one explanation.
type ExplanationScreen struct {
	state   State
	deps    Deps
	spinner spinner.Model
	result  *explain.Explanation
	err     error

	ctx    context.Context
	cancel context.CancelFunc
}

var (
	_ screen.Screen = (*ExplanationScreen)(nil)
	_ screen.Closer = (*ExplanationScreen)(nil)
)

// New creates the screen.
func New(state State, deps Deps) *ExplanationScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Markdown == nil {
		deps.Markdown = markdown.New("")
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ExplanationScreen{
		state:  state,
		deps:   deps,
		ctx:    ctx,
		cancel: cancel,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

// NewDestination returns a router destination for deps.
func NewDestination(deps Deps) router.Destination {
	return func(state any) (screen.Screen, error) {
		s, ok := state.(State)
		if !ok {
			return nil, fmt.Errorf("unexpected explanation state %T", state)
		}
		return New(s, deps), nil
	}
}

func (s *ExplanationScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.explain())
}

func (s *ExplanationScreen) explain() tea.Cmd {
	ex, q, logger, parent := s.deps.Explainer, s.state.NRQL, s.deps.Logger, s.ctx
	return func() tea.Msg {
		if ex == nil {
			return explainedMsg{err: fmt.Errorf("no LLM provider configured")}
		}
		ctx, cancel := context.WithTimeout(parent, requestTimeout)
		defer cancel()
		e, err := ex.Explain(ctx, q)
		if err != nil {
			logger.Warn("explain query", zap.String("nrql", q), zap.Error(err))
		}
		return explainedMsg{explanation: e, err: err}
	}
}

// Close abandons a request still in flight.
func (s *ExplanationScreen) Close() {
	s.cancel()
}

func (s *ExplanationScreen) Title() string {
	return "Explain Query"
}

func (s *ExplanationScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Retry"},
		{Key: "Esc", Description: "Back"},
	}
}

// Loading reports whether the explanation is still being generated.
func (s *ExplanationScreen) Loading() bool {
	return s.result == nil && s.err == nil
}

func (s *ExplanationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainedMsg:
		s.result, s.err = msg.explanation, msg.err
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			if s.err != nil {
				s.err = nil
				return s, tea.Batch(s.spinner.Tick, s.explain())
			}
		}

	case spinner.TickMsg:
		if s.Loading() {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s *ExplanationScreen) View(width, height int) string {
	inner := max(width-6, 20)
	query := theme.Blurred.Width(inner).Padding(0, 1).Render(theme.Code.Render(s.state.NRQL))

	var body string
	switch {
	case s.err != nil:
		body = lipgloss.NewStyle().Foreground(theme.Error).Render("Could not explain the query: "+s.err.Error()) +
			"\n\n" + theme.Hint.Render("Press r to retry")
	case s.result == nil:
		body = s.spinner.View() + " " + theme.Hint.Render("Asking the model...")
	default:
		body = s.deps.Markdown.Render(s.result.Markdown(), inner)
	}

	return lipgloss.NewStyle().Padding(1, 2).MaxHeight(height).Render(
		lipgloss.JoinVertical(lipgloss.Left, theme.Heading.Render("Query"), query, "", body))
}
