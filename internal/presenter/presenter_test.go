package presenter

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/charts"
	"github.com/nrqlkit/nrqltutor/internal/clipboard"
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/screens/editor"
	"github.com/nrqlkit/nrqltutor/internal/screens/explanation"
	"github.com/nrqlkit/nrqltutor/internal/store"
	"github.com/nrqlkit/nrqltutor/internal/ui/markdown"
	"github.com/nrqlkit/nrqltutor/internal/ui/toast"
)

const escaped = `SELECT **count**(\*) FROM Transaction WHERE name LIKE '%\_api%' TIMESERIES`

type actionRepo struct {
	store.EventRepo
	actions []store.LessonActionEventData
}

func (r *actionRepo) AppendLessonAction(_ context.Context, d store.LessonActionEventData) error {
	r.actions = append(r.actions, d)
	return nil
}

func testDeps() Deps {
	return Deps{
		Querier:  nerdgraph.NewOffline(),
		Markdown: markdown.New("notty"),
		Origin:   Origin{Level: 4, Lesson: "Introduction"},
	}
}

func TestNew_Span(t *testing.T) {
	tests := []struct {
		span string
		want int
	}{
		{"6", 6},
		{"12", 12},
		{" 4 ", 4},
		{"", DefaultSpan},
		{"wide", DefaultSpan},
	}
	for _, tt := range tests {
		p := New(Props{NRQL: "SELECT 1 FROM Log", Span: tt.span}, 1, testDeps())
		assert.Equal(t, tt.want, p.Span(), "span %q", tt.span)
	}
}

func TestNew_NormalizesOnlyInMarkdownMode(t *testing.T) {
	p := New(Props{NRQL: `SELECT **count**(\*) FROM Log`}, 1, testDeps())
	assert.Equal(t, "SELECT count(*) FROM Log", p.Query())

	raw := New(Props{NRQL: `SELECT \* FROM Log`, Markdown: "no"}, 1, testDeps())
	assert.Equal(t, `SELECT \* FROM Log`, raw.Query())
	assert.Equal(t, raw.Query(), raw.Panel().Query())
}

func TestNew_ResolvesChart(t *testing.T) {
	p := New(Props{NRQL: "SELECT count(*) FROM Log FACET level"}, 1, testDeps())
	assert.Equal(t, charts.Table, p.Panel().Renderer().Kind())

	p = New(Props{NRQL: "SELECT count(*) FROM Log FACET level", ChartType: "pie"}, 1, testDeps())
	assert.Equal(t, charts.Pie, p.Panel().Renderer().Kind())
}

func TestShowButton_Sticky(t *testing.T) {
	p := New(Props{NRQL: "SELECT 1 FROM Log"}, 1, testDeps())
	assert.True(t, p.ShowButton())

	p.PointerLeave()
	assert.True(t, p.ShowButton())

	p.PointerEnter()
	p.Blur()
	assert.True(t, p.ShowButton())
	assert.Contains(t, p.View(120), "Try this query")
}

func TestTry_OpensEditor(t *testing.T) {
	repo := &actionRepo{}
	d := testDeps()
	d.Events = repo
	p := New(Props{NRQL: escaped}, 42, d)

	msg := p.Try()()
	open, ok := msg.(router.OpenStackedMsg)
	require.True(t, ok)
	assert.Equal(t, editor.Destination, open.Destination)
	assert.Equal(t, editor.State{
		InitialActiveInterface: "nrqlEditor",
		InitialAccountID:       42,
		InitialNRQLValue:       "SELECT count(*) FROM Transaction WHERE name LIKE '%_api%' TIMESERIES",
		IsViewingQuery:         true,
	}, open.State)

	require.Len(t, repo.actions, 1)
	assert.Equal(t, store.ActionTried, repo.actions[0].Action)
	assert.Equal(t, "Introduction", repo.actions[0].LessonTitle)
}

func TestCopy_WritesAndToasts(t *testing.T) {
	var copied string
	restore := clipboard.Swap(func(s string) error {
		copied = s
		return nil
	})
	defer restore()

	p := New(Props{NRQL: escaped}, 1, testDeps())
	batch, ok := p.Copy()().(tea.BatchMsg)
	require.True(t, ok)

	var toasts []toast.ShowMsg
	for _, cmd := range batch {
		if m, ok := cmd().(toast.ShowMsg); ok {
			toasts = append(toasts, m)
		}
	}
	assert.Equal(t, p.Query(), copied)
	assert.Equal(t, []toast.ShowMsg{{Title: "Query copied to clipboard", Level: toast.Normal}}, toasts)
}

func TestExplain_OnlyWhenConfigured(t *testing.T) {
	p := New(Props{NRQL: "SELECT 1 FROM Log"}, 7, testDeps())
	assert.Nil(t, p.Explain())
	assert.NotContains(t, p.View(120), "Explain")

	d := testDeps()
	d.CanExplain = true
	p = New(Props{NRQL: "SELECT 1 FROM Log"}, 7, d)
	msg := p.Explain()().(router.OpenStackedMsg)
	assert.Equal(t, explanation.Destination, msg.Destination)
	assert.Equal(t, explanation.State{AccountID: 7, NRQL: "SELECT 1 FROM Log"}, msg.State)
}

func TestView_LoadingThenData(t *testing.T) {
	p := New(Props{NRQL: "SELECT count(*) FROM Transaction", Span: "6"}, 1, testDeps())
	assert.Contains(t, p.View(120), charts.LoadingText)

	p.Update(p.Init()())
	view := p.View(120)
	assert.NotContains(t, view, charts.LoadingText)
	assert.Contains(t, view, "NRQL")
	assert.Contains(t, view, "Result")
}
