// Package presenter shows a sample query next to a live chart of its
// results, with actions to try, copy or explain the query.
package presenter

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/nrqlkit/nrqltutor/internal/charts"
	"github.com/nrqlkit/nrqltutor/internal/clipboard"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/nrql"
	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screens/editor"
	"github.com/nrqlkit/nrqltutor/internal/screens/explanation"
	"github.com/nrqlkit/nrqltutor/internal/store"
	"github.com/nrqlkit/nrqltutor/internal/ui/components"
	"github.com/nrqlkit/nrqltutor/internal/ui/layout"
	"github.com/nrqlkit/nrqltutor/internal/ui/markdown"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
	"github.com/nrqlkit/nrqltutor/internal/ui/toast"
)

// DefaultSpan is the column span used when Props.Span is not a number.
const DefaultSpan = 6

// CopiedMessage is the toast shown after a copy.
const CopiedMessage = "Query copied to clipboard"

// Props describe one sample query of a lesson.
type Props struct {
	// ChartType is a chart hint such as "line" or "table". Empty picks one
	// from the query.
	ChartType string
	NRQL      string
	// Span is the decimal column span of both columns out of 12.
	Span string
	// Markdown set to "no" shows NRQL as plain text; anything else renders
	// it as Markdown.
	Markdown string
}

// Origin is the lesson a presenter belongs to, recorded with its actions.
type Origin struct {
	Level  int
	Lesson string
}

// Deps are the collaborators of a presenter.
type Deps struct {
	Querier      nerdgraph.Querier
	PollInterval time.Duration
	Markdown     *markdown.Renderer
	Events       store.EventRepo
	Logger       *zap.Logger
	// CanExplain enables the Explain action.
	CanExplain bool
	Origin     Origin
}

// SampleQuery is a query column and a result column side by side.
type SampleQuery struct {
	props     Props
	accountID int
	deps      Deps

	span       int
	query      string
	panel      *charts.Panel
	showButton bool
	focused    bool
}

// New creates a presenter for props against accountID.
func New(props Props, accountID int, deps Deps) *SampleQuery {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Markdown == nil {
		deps.Markdown = markdown.New("")
	}

	span, err := strconv.Atoi(strings.TrimSpace(props.Span))
	if err != nil {
		span = DefaultSpan
	}

	q := nrql.Normalize(props.NRQL, props.Markdown)
	return &SampleQuery{
		props:      props,
		accountID:  accountID,
		deps:       deps,
		span:       span,
		query:      q,
		showButton: true,
		panel: charts.NewPanel(deps.Querier, accountID, q,
			charts.Resolve(props.ChartType, q),
			charts.WithPollInterval(deps.PollInterval),
			charts.WithLogger(deps.Logger)),
	}
}

func (p *SampleQuery) Props() Props         { return p.props }
func (p *SampleQuery) Span() int            { return p.span }
func (p *SampleQuery) Panel() *charts.Panel { return p.panel }
func (p *SampleQuery) ShowButton() bool     { return p.showButton }
func (p *SampleQuery) Focused() bool        { return p.focused }

// Query is the normalized query text shared by every action.
func (p *SampleQuery) Query() string { return p.query }

// Init starts the result subscription.
func (p *SampleQuery) Init() tea.Cmd {
	return p.panel.Init()
}

// Update forwards panel messages.
func (p *SampleQuery) Update(msg tea.Msg) tea.Cmd {
	return p.panel.Update(msg)
}

// PointerEnter shows the action row.
func (p *SampleQuery) PointerEnter() {
	p.showButton = true
}

// PointerLeave is intentionally inert: once shown, the action row stays.
func (p *SampleQuery) PointerLeave() {}

// Focus gives the presenter keyboard focus, which counts as pointer-enter.
func (p *SampleQuery) Focus() {
	p.focused = true
	p.PointerEnter()
}

// Blur removes keyboard focus.
func (p *SampleQuery) Blur() {
	p.focused = false
	p.PointerLeave()
}

// Try opens the query editor preloaded with the query.
func (p *SampleQuery) Try() tea.Cmd {
	p.record(store.ActionTried)
	msg := router.OpenStackedMsg{
		Destination: editor.Destination,
		State: editor.State{
			InitialActiveInterface: editor.InterfaceEditor,
			InitialAccountID:       p.accountID,
			InitialNRQLValue:       p.query,
			IsViewingQuery:         true,
		},
	}
	return func() tea.Msg { return msg }
}

// Copy puts the query on the clipboard and confirms with a toast. The
// clipboard result is not checked.
func (p *SampleQuery) Copy() tea.Cmd {
	p.record(store.ActionCopied)
	return tea.Batch(
		clipboard.Copy(p.query, p.deps.Logger),
		toast.Show(CopiedMessage, toast.Normal),
	)
}

// Explain opens the explanation screen. Nil when no LLM is configured.
func (p *SampleQuery) Explain() tea.Cmd {
	if !p.deps.CanExplain {
		return nil
	}
	p.record(store.ActionExplained)
	msg := router.OpenStackedMsg{
		Destination: explanation.Destination,
		State:       explanation.State{AccountID: p.accountID, NRQL: p.query},
	}
	return func() tea.Msg { return msg }
}

func (p *SampleQuery) record(action store.LessonAction) {
	if p.deps.Events == nil {
		return
	}
	err := p.deps.Events.AppendLessonAction(context.Background(), store.LessonActionEventData{
		Level:       p.deps.Origin.Level,
		LessonTitle: p.deps.Origin.Lesson,
		Action:      action,
		Query:       p.query,
	})
	if err != nil {
		p.deps.Logger.Warn("record lesson action", zap.String("action", string(action)), zap.Error(err))
	}
}

const resultHeight = 12

// View renders both columns in width. When two spans do not fit on one
// grid row the result column wraps below the query column.
func (p *SampleQuery) View(width int) string {
	colWidth := layout.SpanWidth(width, p.span)
	sideBySide := layout.FitsSideBySide(p.span, p.span)
	if !sideBySide {
		colWidth = layout.SpanWidth(width, layout.GridColumns)
	}
	inner := max(colWidth-4, 10)

	left := p.queryColumn(inner)
	right := theme.Heading.Render("Result") + "\n" + p.panel.View(inner, resultHeight)

	box := theme.Blurred
	if p.focused {
		box = theme.Focused
	}
	left = box.Width(colWidth).Padding(0, 1).Render(left)
	right = box.Width(colWidth).Padding(0, 1).Render(right)

	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, left, right)
}

func (p *SampleQuery) queryColumn(width int) string {
	var body string
	if p.props.Markdown == nrql.MarkdownOff {
		body = theme.Code.Width(width).Render(p.query)
	} else {
		body = p.deps.Markdown.Render(p.props.NRQL, width)
	}

	parts := []string{theme.Heading.Render("NRQL"), body}
	if p.showButton {
		buttons := []components.Button{
			components.NewButton("Try this query", "t"),
			components.NewButton("Copy", "c"),
		}
		if p.deps.CanExplain {
			buttons = append(buttons, components.NewButton("Explain", "e"))
		}
		for i := range buttons {
			buttons[i].Active = p.focused
		}
		parts = append(parts, "", components.ButtonRow(buttons...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
