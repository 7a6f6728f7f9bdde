// Package layout draws the application chrome and measures the 12-column
// grid presenters are placed on.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

// Smallest terminal the frame is drawn in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// HeaderHeight is the rendered height of RenderHeader, border included.
const HeaderHeight = 3

// GridColumns is the number of columns spans are measured against.
const GridColumns = 12

// KeyHint is one "key action" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small\n\nnrqltutor needs %d×%d\nthis one is %d×%d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader draws the brand on the left, title centered and status on
// the right.
func RenderHeader(title, status string, width int) string {
	inner := max(width-bar.GetHorizontalFrameSize(), 0)
	third := inner / 3

	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Width(third).Render(" nrqltutor")
	right := lipgloss.NewStyle().Foreground(theme.Accent).
		Width(inner - 2*third).Align(lipgloss.Right).Render(status + " ")
	center := lipgloss.NewStyle().Foreground(theme.Text).
		Width(third).Align(lipgloss.Center).Render(title)

	return bar.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, brand, center, right))
}

func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(key.Render(h.Key) + " " + desc.Render(h.Description))
	}
	return bar.Width(width).PaddingLeft(1).Render(b.String())
}

// RenderFrame stacks header, content and footer; content is stretched or
// cut to fill the rows between them.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).MaxHeight(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// SpanWidth is the number of cells a block spanning span of GridColumns
// gets out of width. span is clamped to 1..GridColumns.
func SpanWidth(width, span int) int {
	if width <= 0 {
		return 0
	}
	return width * clampSpan(span) / GridColumns
}

// FitsSideBySide reports whether two spans share a grid row. Otherwise the
// second block wraps below the first.
func FitsSideBySide(leftSpan, rightSpan int) bool {
	return clampSpan(leftSpan)+clampSpan(rightSpan) <= GridColumns
}

func clampSpan(s int) int {
	return min(max(s, 1), GridColumns)
}
