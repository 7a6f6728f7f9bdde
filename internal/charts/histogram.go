package charts

import (
	"strconv"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

type histogramRenderer struct{}

func (histogramRenderer) Kind() Kind { return Histogram }

func (histogramRenderer) Render(res *nerdgraph.Result, width, height int) string {
	if res == nil {
		return placeholder()
	}
	buckets := histogramBuckets(res.First())
	if len(buckets) == 0 {
		return noResults()
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SeriesHex(0)))
	data := make([]barchart.BarData, len(buckets))
	for i, v := range buckets {
		data[i] = barchart.BarData{
			Label:  strconv.Itoa(i + 1),
			Values: []barchart.BarValue{{Name: "count", Value: v, Style: style}},
		}
	}

	bc := barchart.New(width, max(height, 3), barchart.WithDataSet(data))
	bc.Draw()
	return bc.View()
}

// histogramBuckets finds the first array of numbers in the row, which is how
// histogram() results arrive.
func histogramBuckets(row map[string]any) []float64 {
	for _, k := range sortedKeys(row) {
		arr, ok := row[k].([]any)
		if !ok {
			continue
		}
		out := make([]float64, 0, len(arr))
		for _, v := range arr {
			if f, ok := v.(float64); ok {
				out = append(out, f)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
