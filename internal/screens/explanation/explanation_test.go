package explanation

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/explain"
	"github.com/nrqlkit/nrqltutor/internal/router"
	"github.com/nrqlkit/nrqltutor/internal/ui/markdown"
)

type fakeExplainer struct {
	got    string
	ctxErr error
	e      *explain.Explanation
	err    error
}

func (f *fakeExplainer) Explain(ctx context.Context, nrql string) (*explain.Explanation, error) {
	f.got = nrql
	f.ctxErr = ctx.Err()
	return f.e, f.err
}

func deps(f *fakeExplainer) Deps {
	return Deps{Explainer: f, Markdown: markdown.New("notty")}
}

func TestExplanationScreen_ShowsResult(t *testing.T) {
	f := &fakeExplainer{e: &explain.Explanation{Summary: "Counts logs by level."}}
	s := New(State{NRQL: "SELECT count(*) FROM Log FACET level"}, deps(f))
	assert.True(t, s.Loading())

	msg := s.explain()()
	s.Update(msg)

	assert.Equal(t, "SELECT count(*) FROM Log FACET level", f.got)
	assert.False(t, s.Loading())
	assert.Contains(t, s.View(100, 30), "Counts logs by level.")
}

func TestExplanationScreen_ErrorAndRetry(t *testing.T) {
	f := &fakeExplainer{err: errors.New("quota")}
	s := New(State{NRQL: "SELECT 1 FROM Log"}, deps(f))

	s.Update(s.explain()())
	assert.Contains(t, s.View(100, 30), "quota")

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	assert.NotNil(t, cmd)
	assert.True(t, s.Loading())
}

func TestExplanationScreen_NoProvider(t *testing.T) {
	s := New(State{NRQL: "SELECT 1 FROM Log"}, Deps{})
	s.Update(s.explain()())
	assert.Contains(t, s.View(100, 30), "no LLM provider configured")
}

func TestNewDestination(t *testing.T) {
	d := NewDestination(deps(&fakeExplainer{}))

	scr, err := d(State{NRQL: "SELECT 1 FROM Log"})
	require.NoError(t, err)
	assert.Equal(t, "Explain Query", scr.Title())

	_, err = d("nope")
	assert.Error(t, err)
}

func TestExplanationScreen_EscPops(t *testing.T) {
	s := New(State{}, deps(&fakeExplainer{}))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestExplanationScreen_CloseCancelsRequest(t *testing.T) {
	f := &fakeExplainer{e: &explain.Explanation{}}
	s := New(State{NRQL: "SELECT 1 FROM Log"}, deps(f))
	pending := s.explain()

	s.Close()
	pending()

	assert.ErrorIs(t, f.ctxErr, context.Canceled)
}
