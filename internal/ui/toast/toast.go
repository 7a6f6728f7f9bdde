// Package toast shows short-lived notifications above the footer.
package toast

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3 * time.Second

// maxVisible caps the stack; older toasts are dropped first.
const maxVisible = 3

// Level is the severity of a toast.
type Level int

const (
	Normal Level = iota
	Critical
	Success
)

// ShowMsg asks the app to display a toast.
type ShowMsg struct {
	Title string
	Level Level
}

// Show returns a command that displays a toast. Fire and forget.
func Show(title string, level Level) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Title: title, Level: level}
	}
}

type expireMsg struct {
	id int
}

// Toast is one visible notification.
type Toast struct {
	ID    int
	Title string
	Level Level
}

// Model holds the visible toasts.
type Model struct {
	items  []Toast
	nextID int
	ttl    time.Duration
}

// New creates an empty toast stack.
func New() *Model {
	return &Model{ttl: DefaultTTL}
}

// Update handles ShowMsg and expiry ticks.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ShowMsg:
		m.nextID++
		id := m.nextID
		m.items = append(m.items, Toast{ID: id, Title: msg.Title, Level: msg.Level})
		if len(m.items) > maxVisible {
			m.items = m.items[len(m.items)-maxVisible:]
		}
		return tea.Tick(m.ttl, func(time.Time) tea.Msg { return expireMsg{id: id} })

	case expireMsg:
		for i, t := range m.items {
			if t.ID == msg.id {
				m.items = append(m.items[:i], m.items[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Active returns the visible toasts, oldest first.
func (m *Model) Active() []Toast {
	return append([]Toast(nil), m.items...)
}

// Empty reports whether nothing is shown.
func (m *Model) Empty() bool {
	return len(m.items) == 0
}

var levelColors = map[Level]lipgloss.Style{
	Normal:   lipgloss.NewStyle().BorderForeground(theme.Secondary),
	Critical: lipgloss.NewStyle().BorderForeground(theme.Error),
	Success:  lipgloss.NewStyle().BorderForeground(theme.Success),
}

var icons = map[Level]string{
	Normal:   "ℹ",
	Critical: "✖",
	Success:  "✔",
}

// View renders the toasts right-aligned in width. Empty when none are shown.
func (m *Model) View(width int) string {
	if len(m.items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.items))
	for _, t := range m.items {
		box := levelColors[t.Level].
			Border(lipgloss.RoundedBorder()).
			Foreground(theme.Text).
			Padding(0, 1).
			Render(icons[t.Level] + " " + t.Title)
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, box))
	}
	return strings.Join(lines, "\n")
}
