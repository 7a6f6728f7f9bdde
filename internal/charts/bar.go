package charts

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

type barRenderer struct{}

func (barRenderer) Kind() Kind { return Bar }

// Render draws horizontal bars, one per facet, or one per number when the
// result is not faceted.
func (barRenderer) Render(res *nerdgraph.Result, width, height int) string {
	if res == nil {
		return placeholder()
	}
	items := shares(res)
	if len(items) == 0 {
		return noResults()
	}

	labelWidth := max(width/3, 8)
	data := make([]barchart.BarData, 0, len(items))
	for i, it := range items {
		data = append(data, barchart.BarData{
			Label: truncate(it.Name+" ("+formatNumber(it.Value)+")", labelWidth),
			Values: []barchart.BarValue{{
				Name:  it.Name,
				Value: it.Value,
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SeriesHex(i))),
			}},
		})
	}

	// Two lines per bar: the bar and a gap.
	h := min(len(data)*2, height)
	if h < 1 {
		return ""
	}
	bc := barchart.New(width, h, barchart.WithDataSet(data), barchart.WithHorizontalBars())
	bc.Draw()
	return bc.View()
}

// shares extracts the labelled values for part-of-whole charts. Faceted
// results contribute the first value summed over each facet's rows; other
// results contribute every number of their first row.
func shares(res *nerdgraph.Result) []field {
	if res.Empty() {
		return nil
	}
	if len(res.Series) == 1 && res.Series[0].Name == "" {
		return numericFields(res.First())
	}
	out := make([]field, 0, len(res.Series))
	for _, s := range res.Series {
		var total float64
		found := false
		for _, row := range s.Data {
			if f, ok := firstValue(row); ok {
				total += f.Value
				found = true
			}
		}
		if found {
			out = append(out, field{Name: seriesLabel(s, "other"), Value: total})
		}
	}
	return out
}
