package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nrqlkit/nrqltutor/internal/ui/components"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

var banner = []string{
	" ███╗   ██╗██████╗  ██████╗ ██╗",
	" ████╗  ██║██╔══██╗██╔═══██╗██║",
	" ██╔██╗ ██║██████╔╝██║   ██║██║",
	" ██║╚██╗██║██╔══██╗██║▄▄ ██║██║",
	" ██║ ╚████║██║  ██║╚██████╔╝███████╗",
	" ╚═╝  ╚═══╝╚═╝  ╚═╝ ╚══▀▀═╝ ╚══════╝",
}

const (
	bannerCompact = "N · R · Q · L   tutor"
	tagline       = "Learn the New Relic Query Language in your terminal"
)

var (
	bannerStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	lessonsStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	accountStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
)

// contentWidth is the inner width shared by every dashboard section.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

func centered(cw int) lipgloss.Style {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
}

func renderTitle(cw int, compact bool) string {
	title := bannerCompact
	if !compact {
		title = strings.Join(banner, "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		centered(cw).Render(bannerStyle.Render(title)),
		theme.Subtitle.Width(cw).Render(tagline))
}

// renderStatsBar shows lesson progress and where queries run.
func renderStatsBar(visited, total int, account string, cw int) string {
	inner := cw - 6
	head := lessonsStyle.Render(fmt.Sprintf("✓ %d/%d LESSONS", visited, total)) +
		"   " + accountStyle.Render(strings.ToUpper(account))
	bar := components.NewProgressBar("", visited, total, inner).View()
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Padding(0, 1).
		Align(lipgloss.Center).
		Render(head + "\n" + bar)
}

func renderMenuBox(menu string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(strings.TrimRight(menu, "\n"))
}

func renderUpdateNote(latest string, cw int) string {
	return centered(cw).Foreground(theme.TextDim).
		Render("New version " + latest + " available, run nrqltutor update")
}

// renderFrame centers content inside a double border filling the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width-2).
		Height(height-2).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
