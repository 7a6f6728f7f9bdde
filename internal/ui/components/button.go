package components

import (
	"charm.land/lipgloss/v2"

	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

// Button is an action with a keyboard shortcut, e.g. "[t] Try this query".
type Button struct {
	Label string
	Key   string
	// Active highlights the button, used when its owner has focus.
	Active bool
}

// NewButton creates a new button.
func NewButton(label, key string) Button {
	return Button{Label: label, Key: key}
}

var keyStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = keyStyle.Render("["+b.Key+"]") + " " + label
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons left to right separated by a space.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, " ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
