package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Disabled items are drawn but never
// selected.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with a cursor that wraps around.
type Menu struct {
	Items    []MenuItem
	Selected int
}

var menuKeys = struct {
	prev, next, first, last, choose key.Binding
}{
	prev:   key.NewBinding(key.WithKeys("up", "k")),
	next:   key.NewBinding(key.WithKeys("down", "j", "tab")),
	first:  key.NewBinding(key.WithKeys("home", "g")),
	last:   key.NewBinding(key.WithKeys("end", "G")),
	choose: key.NewBinding(key.WithKeys("enter", "space")),
}

// NewMenu selects the first enabled item, or the first item when all are
// disabled.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = max(m.step(-1, 1), 0)
	return m
}

// step walks from start in direction dir and returns the first enabled
// index, or -1.
func (m Menu) step(start, dir int) int {
	n := len(m.Items)
	for i := 1; i <= n; i++ {
		j := ((start+dir*i)%n + n) % n
		if !m.Items[j].Disabled {
			return j
		}
	}
	return -1
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	move := func(start, dir int) {
		if j := m.step(start, dir); j >= 0 {
			m.Selected = j
		}
	}
	switch {
	case key.Matches(kp, menuKeys.prev):
		move(m.Selected, -1)
	case key.Matches(kp, menuKeys.next):
		move(m.Selected, 1)
	case key.Matches(kp, menuKeys.first):
		move(-1, 1)
	case key.Matches(kp, menuKeys.last):
		move(len(m.Items), -1)
	case key.Matches(kp, menuKeys.choose):
		if it := m.Items[m.Selected]; !it.Disabled && it.Action != nil {
			return m, it.Action()
		}
	}
	return m, nil
}

var (
	menuStyles = map[string]lipgloss.Style{
		"on":  lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		"off": lipgloss.NewStyle().Foreground(theme.Text),
		"na":  lipgloss.NewStyle().Foreground(theme.Border),
	}
	menuHint = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
)

func (m Menu) View() string {
	lines := make([]string, 0, len(m.Items))
	for i, it := range m.Items {
		cursor, style := "    ", menuStyles["off"]
		switch {
		case it.Disabled:
			style = menuStyles["na"]
		case i == m.Selected:
			cursor, style = "  ▸ ", menuStyles["on"]
		}
		line := style.Render(cursor + it.Label)
		if it.Hint != "" {
			line += "  " + menuHint.Render(it.Hint)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n") + "\n"
}
