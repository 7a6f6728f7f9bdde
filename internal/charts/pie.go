package charts

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

type pieRenderer struct{}

func (pieRenderer) Kind() Kind { return Pie }

// Render approximates a pie as a stacked bar of shares over a legend with
// percentages.
func (pieRenderer) Render(res *nerdgraph.Result, width, height int) string {
	if res == nil {
		return placeholder()
	}
	items := shares(res)
	var total float64
	for _, it := range items {
		if it.Value > 0 {
			total += it.Value
		}
	}
	if len(items) == 0 || total == 0 {
		return noResults()
	}

	var stacked strings.Builder
	used := 0
	for i, it := range items {
		if it.Value <= 0 {
			continue
		}
		n := int(float64(width) * it.Value / total)
		if i == len(items)-1 {
			n = width - used
		}
		if n <= 0 {
			continue
		}
		used += n
		stacked.WriteString(lipgloss.NewStyle().Foreground(theme.SeriesColor(i)).Render(strings.Repeat("█", n)))
	}

	lines := []string{stacked.String(), ""}
	for i, it := range items {
		pct := 0.0
		if it.Value > 0 {
			pct = 100 * it.Value / total
		}
		swatch := lipgloss.NewStyle().Foreground(theme.SeriesColor(i)).Render("■")
		pctText := valueStyle.Render(fmt.Sprintf("%5.1f%%", pct))
		name := truncate(it.Name, max(width-16, 4))
		lines = append(lines, fmt.Sprintf("%s %s %s %s", swatch, pctText, name, labelStyle.Render(formatNumber(it.Value))))
	}
	return clipLines(strings.Join(lines, "\n"), height)
}
