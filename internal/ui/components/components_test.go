package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Resume", Disabled: true},
		{Label: "Level 4"},
		{Label: "History", Disabled: true},
		{Label: "Exit"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)

	// Wraps past both ends.
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnd})
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyHome})
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_AllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a", Disabled: true}, {Label: "b", Disabled: true}})
	assert.Equal(t, 0, m.Selected)
	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Selected)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "b")
}

func TestMenu_EnterRunsAction(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		called = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, called)
}

func TestProgressBar_Fraction(t *testing.T) {
	assert.Equal(t, 0.5, NewProgressBar("", 3, 6, 20).Fraction())
	assert.Equal(t, 0.0, NewProgressBar("", 1, 0, 20).Fraction())
	assert.Equal(t, 1.0, NewProgressBar("", 9, 6, 20).Fraction())
	assert.Contains(t, NewProgressBar("Visited", 3, 6, 40).View(), "3/6")
}

func TestStepper_CollapsesWhenNarrow(t *testing.T) {
	s := Stepper{Titles: []string{"Introduction", "Aggregation and bucketing", "Advanced maths"}, Current: 1}

	wide := s.View(200)
	assert.Contains(t, wide, "Introduction")
	assert.Contains(t, wide, "Advanced maths")

	narrow := s.View(40)
	assert.NotContains(t, narrow, "Introduction")
	assert.Contains(t, narrow, "Aggregation and bucketing")
}

func TestButtonRow(t *testing.T) {
	row := ButtonRow(NewButton("Try this query", "t"), NewButton("Copy", "c"))
	assert.True(t, strings.Contains(row, "Try this query"))
	assert.Contains(t, row, "[c]")
}
