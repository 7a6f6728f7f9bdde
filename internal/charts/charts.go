// Package charts turns NRQL results into terminal visualizations.
//
// Every chart type is a Renderer registered once in a package-level table.
// Resolve picks one from an explicit chart type hint or, failing that, from
// the clauses of the query.
package charts

import (
	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/nrql"
)

// LoadingText is shown by every renderer until the first result arrives.
const LoadingText = "Loading data..."

// Kind identifies a renderer.
type Kind int

const (
	Billboard Kind = iota
	Line
	Table
	Bar
	Pie
	Funnel
	Histogram
	JSONInline
	JSONChart
)

var kindNames = map[Kind]string{
	Billboard:  "billboard",
	Line:       "line",
	Table:      "table",
	Bar:        "bar",
	Pie:        "pie",
	Funnel:     "funnel",
	Histogram:  "histogram",
	JSONInline: "json",
	JSONChart:  "jsonchart",
}

// String returns the chart type hint that selects the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Renderer draws a query result into a width x height block of text. res is
// nil while no data has arrived.
type Renderer interface {
	Kind() Kind
	Render(res *nerdgraph.Result, width, height int) string
}

var (
	lineChart      Renderer = lineRenderer{}
	billboardChart Renderer = billboardRenderer{}
	tableChart     Renderer = tableRenderer{}
	barChart       Renderer = barRenderer{}
	pieChart       Renderer = pieRenderer{}
	funnelChart    Renderer = funnelRenderer{}
	histogramChart Renderer = histogramRenderer{}
	jsonInline     Renderer = jsonInlineRenderer{}
	jsonChart      Renderer = jsonChartRenderer{}
)

// hints is checked in order; the first exact match wins.
var hints = []struct {
	name     string
	renderer Renderer
}{
	{"line", lineChart},
	{"billboard", billboardChart},
	{"table", tableChart},
	{"bar", barChart},
	{"pie", pieChart},
	{"funnel", funnelChart},
	{"json", jsonInline},
	{"jsonchart", jsonChart},
	{"histogram", histogramChart},
}

// Resolve maps a chart type hint and a query to a renderer. Hints match
// exactly and case-sensitively. Without a matching hint the query decides:
// TIMESERIES draws a line, FACET a table, anything else a billboard.
func Resolve(chartType, query string) Renderer {
	for _, h := range hints {
		if chartType == h.name {
			return h.renderer
		}
	}
	switch {
	case nrql.IsTimeseries(query):
		return lineChart
	case nrql.IsFaceted(query):
		return tableChart
	default:
		return billboardChart
	}
}

// Hints lists the accepted chart type hints in resolution order.
func Hints() []string {
	out := make([]string, len(hints))
	for i, h := range hints {
		out[i] = h.name
	}
	return out
}

// ForKind returns the registered renderer for k.
func ForKind(k Kind) Renderer {
	for _, h := range hints {
		if h.renderer.Kind() == k {
			return h.renderer
		}
	}
	return billboardChart
}
