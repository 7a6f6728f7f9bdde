package charts

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

type funnelRenderer struct{}

func (funnelRenderer) Kind() Kind { return Funnel }

// Render draws each funnel step as a centered bar sized relative to the
// first step.
func (funnelRenderer) Render(res *nerdgraph.Result, width, height int) string {
	if res == nil {
		return placeholder()
	}
	steps := funnelSteps(res.First())
	if len(steps) == 0 || steps[0] <= 0 {
		return noResults()
	}

	barWidth := max(width-2, 4)
	lines := make([]string, 0, len(steps)*2)
	for i, v := range steps {
		ratio := v / steps[0]
		n := max(int(float64(barWidth)*ratio), 1)
		pad := (barWidth - n) / 2
		bar := lipgloss.NewStyle().Foreground(theme.SeriesColor(i)).Render(strings.Repeat("█", n))
		lines = append(lines,
			strings.Repeat(" ", pad)+bar,
			fmt.Sprintf("%s %s %s",
				labelStyle.Render(fmt.Sprintf("Step %d", i+1)),
				valueStyle.Render(formatNumber(v)),
				labelStyle.Render(fmt.Sprintf("(%.1f%%)", 100*ratio))),
		)
	}
	return clipLines(strings.Join(lines, "\n"), height)
}

// funnelSteps reads a {"steps": [...]} object, falling back to the row's
// numbers in name order.
func funnelSteps(row map[string]any) []float64 {
	for _, k := range sortedKeys(row) {
		obj, ok := row[k].(map[string]any)
		if !ok {
			continue
		}
		if arr, ok := obj["steps"].([]any); ok {
			out := make([]float64, 0, len(arr))
			for _, v := range arr {
				if f, ok := v.(float64); ok {
					out = append(out, f)
				}
			}
			return out
		}
	}
	if arr, ok := row["steps"].([]any); ok {
		out := make([]float64, 0, len(arr))
		for _, v := range arr {
			if f, ok := v.(float64); ok {
				out = append(out, f)
			}
		}
		return out
	}
	fs := numericFields(row)
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = f.Value
	}
	return out
}
