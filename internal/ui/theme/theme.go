// Package theme is the tutor's palette and the shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette, tuned for dark terminals.
var (
	Primary   = lipgloss.Color("#00AC69")
	Secondary = lipgloss.Color("#1CE783")
	Accent    = lipgloss.Color("#F7B500")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Chart series colors stay hex strings: ntcharts is still on lipgloss v1
// and takes its own color type.
var seriesHex = [...]string{
	"#1CE783", "#3B82F6", "#F7B500", "#A855F7",
	"#F43F5E", "#14B8A6", "#F97316", "#94A3B8",
}

// SeriesHex is the hex color of series i. Colors repeat after eight series.
func SeriesHex(i int) string {
	if i < 0 {
		i = -i
	}
	return seriesHex[i%len(seriesHex)]
}

func SeriesColor(i int) color.Color {
	return lipgloss.Color(SeriesHex(i))
}

func fg(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

func framed(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c)
}

var (
	Subtitle = fg(TextDim).Align(lipgloss.Center)
	Hint     = fg(TextDim).Italic(true)
	Heading  = fg(TextDim).Bold(true)
	Code     = fg(Secondary)

	// Focused and Blurred frame presenters and panels.
	Focused = framed(Primary)
	Blurred = framed(Border)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	ButtonActive   = fg(Text).Background(Primary).Bold(true).Padding(0, 2)
	ButtonInactive = framed(Border).Background(BgCard).Padding(0, 2)
)
