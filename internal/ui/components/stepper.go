package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

// Stepper shows the lessons of a level as numbered steps with the current
// one highlighted. Visited steps are marked with a check.
type Stepper struct {
	Titles  []string
	Current int
	Visited map[string]bool
}

var (
	stepCurrent = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Primary).Bold(true).Padding(0, 1)
	stepVisited = lipgloss.NewStyle().Foreground(theme.Secondary)
	stepPending = lipgloss.NewStyle().Foreground(theme.TextDim)
	stepSep     = lipgloss.NewStyle().Foreground(theme.Border)
)

// View renders the stepper in width. When the full titles do not fit only
// the current title is spelled out.
func (s Stepper) View(width int) string {
	full := s.render(func(int) bool { return true })
	if lipgloss.Width(full) <= width {
		return full
	}
	return s.render(func(i int) bool { return i == s.Current })
}

func (s Stepper) render(spell func(int) bool) string {
	parts := make([]string, 0, len(s.Titles))
	for i, t := range s.Titles {
		label := fmt.Sprintf("%d", i+1)
		if spell(i) {
			label += " " + t
		}
		switch {
		case i == s.Current:
			parts = append(parts, stepCurrent.Render(label))
		case s.Visited[t]:
			parts = append(parts, stepVisited.Render("✓ "+label))
		default:
			parts = append(parts, stepPending.Render(label))
		}
	}
	return strings.Join(parts, stepSep.Render(" ─ "))
}
