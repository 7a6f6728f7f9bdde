package charts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
)

func TestResolveHints(t *testing.T) {
	tests := []struct {
		hint string
		want Kind
	}{
		{"line", Line},
		{"billboard", Billboard},
		{"table", Table},
		{"bar", Bar},
		{"pie", Pie},
		{"funnel", Funnel},
		{"json", JSONInline},
		{"jsonchart", JSONChart},
		{"histogram", Histogram},
	}
	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			got := Resolve(tt.hint, "SELECT count(*) FROM Transaction TIMESERIES")
			assert.Equal(t, tt.want, got.Kind())
		})
	}
}

func TestResolveHintOverridesQuery(t *testing.T) {
	queries := []string{
		"SELECT count(*) FROM X TIMESERIES",
		"SELECT count(*) FROM X FACET y",
		"SELECT count(*) FROM X",
		"",
	}
	for _, q := range queries {
		assert.Equal(t, Table, Resolve("table", q).Kind(), q)
	}
}

func TestResolveFallback(t *testing.T) {
	tests := []struct {
		query string
		want  Kind
	}{
		{"SELECT * FROM X TIMESERIES", Line},
		{"select count(*) from X timeseries", Line},
		{"SELECT * FROM X FACET y", Table},
		{"SELECT count(*) FROM X FACET y TIMESERIES", Line},
		{"SELECT count(*) FROM X", Billboard},
		{"", Billboard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve("", tt.query).Kind(), tt.query)
	}
}

func TestResolveHintIsCaseSensitive(t *testing.T) {
	assert.Equal(t, Billboard, Resolve("TABLE", "SELECT count(*) FROM X").Kind())
	assert.Equal(t, Line, Resolve("Pie", "SELECT count(*) FROM X TIMESERIES").Kind())
}

func TestResolveJSONRenderersDistinct(t *testing.T) {
	a := Resolve("json", "q")
	b := Resolve("jsonchart", "q")
	assert.NotEqual(t, a.Kind(), b.Kind())
	assert.Equal(t, jsonInline, a)
	assert.Equal(t, jsonChart, b)
}

func TestHintsOrder(t *testing.T) {
	assert.Equal(t, []string{"line", "billboard", "table", "bar", "pie", "funnel", "json", "jsonchart", "histogram"}, Hints())
}

func TestKindString(t *testing.T) {
	for _, h := range Hints() {
		assert.Equal(t, h, Resolve(h, "").Kind().String())
		assert.Equal(t, h, ForKind(Resolve(h, "").Kind()).Kind().String())
	}
}

func allRenderers() []Renderer {
	out := make([]Renderer, 0, len(hints))
	for _, h := range hints {
		out = append(out, h.renderer)
	}
	return out
}

func TestRenderersShowLoadingForNil(t *testing.T) {
	for _, r := range allRenderers() {
		assert.Contains(t, r.Render(nil, 60, 10), LoadingText, r.Kind().String())
	}
}

func single(row map[string]any) *nerdgraph.Result {
	return &nerdgraph.Result{Series: []nerdgraph.Series{{Data: []map[string]any{row}}}}
}

func faceted() *nerdgraph.Result {
	rows := []map[string]any{
		{"facet": "web", "appName": "web", "count": 300.0},
		{"facet": "api", "appName": "api", "count": 100.0},
	}
	return &nerdgraph.Result{Series: nerdgraph.GroupByFacet(rows), Facets: []string{"appName"}}
}

func TestJSONInlineFirstPointOnly(t *testing.T) {
	res := &nerdgraph.Result{Series: []nerdgraph.Series{
		{Data: []map[string]any{{"count": 1.0}, {"count": 2.0}}},
		{Data: []map[string]any{{"count": 3.0}}},
	}}
	out := jsonInline.Render(res, 60, 20)
	assert.Equal(t, "{\n  \"count\": 1\n}", out)
}

func TestJSONInlineEmptyIsLoading(t *testing.T) {
	assert.Contains(t, jsonInline.Render(&nerdgraph.Result{}, 60, 10), LoadingText)
	empty := &nerdgraph.Result{Series: []nerdgraph.Series{{Name: "x"}}}
	assert.Contains(t, jsonInline.Render(empty, 60, 10), LoadingText)
}

func TestJSONChartShowsAllRows(t *testing.T) {
	out := jsonChart.Render(faceted(), 80, 40)
	assert.Contains(t, out, "web")
	assert.Contains(t, out, "api")
}

func TestBillboardCards(t *testing.T) {
	out := billboardChart.Render(single(map[string]any{"count": 1234.0, "average.duration": 0.25}), 80, 20)
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "average.duration")
	assert.Contains(t, out, "0.25")
}

func TestBillboardPerFacet(t *testing.T) {
	out := billboardChart.Render(faceted(), 80, 20)
	assert.Contains(t, out, "web")
	assert.Contains(t, out, "300")
	assert.Contains(t, out, "api")
}

func TestTableColumnsFacetFirst(t *testing.T) {
	res := faceted()
	cols := columns(res.Rows(), res.Facets)
	assert.Equal(t, []string{"appName", "count"}, cols)

	out := tableChart.Render(res, 60, 20)
	assert.Contains(t, out, "appName")
	assert.Contains(t, out, "web")
	assert.Less(t, strings.Index(out, "web"), strings.Index(out, "api"))
}

func TestTableTruncatesRows(t *testing.T) {
	rows := make([]map[string]any, 30)
	for i := range rows {
		rows[i] = map[string]any{"n": float64(i)}
	}
	res := &nerdgraph.Result{Series: nerdgraph.GroupByFacet(rows)}
	out := tableChart.Render(res, 40, 10)
	assert.Contains(t, out, "more rows")
}

func TestPieShares(t *testing.T) {
	out := pieChart.Render(faceted(), 40, 10)
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "25.0%")
}

func TestFunnelSteps(t *testing.T) {
	row := map[string]any{"funnel.session": map[string]any{"steps": []any{1000.0, 250.0}}}
	out := funnelChart.Render(single(row), 40, 10)
	assert.Contains(t, out, "Step 2")
	assert.Contains(t, out, "25.0%")
}

func TestHistogramBuckets(t *testing.T) {
	row := map[string]any{"histogram.duration": []any{1.0, 4.0, 2.0}}
	assert.Equal(t, []float64{1, 4, 2}, histogramBuckets(row))
	assert.NotEmpty(t, histogramChart.Render(single(row), 40, 10))
	assert.Contains(t, histogramChart.Render(single(map[string]any{"count": 1.0}), 40, 10), "No results")
}

func TestBarAndLineRender(t *testing.T) {
	assert.NotEmpty(t, barChart.Render(faceted(), 60, 10))

	rows := []map[string]any{
		{"beginTimeSeconds": 0.0, "endTimeSeconds": 60.0, "count": 1.0},
		{"beginTimeSeconds": 60.0, "endTimeSeconds": 120.0, "count": 3.0},
	}
	out := lineChart.Render(&nerdgraph.Result{Series: nerdgraph.GroupByFacet(rows)}, 60, 12)
	assert.Contains(t, out, "count")
}

func TestEmptyResults(t *testing.T) {
	empty := &nerdgraph.Result{}
	for _, r := range allRenderers() {
		if r.Kind() == JSONInline {
			continue
		}
		out := r.Render(empty, 60, 10)
		assert.NotContains(t, out, LoadingText, r.Kind().String())
	}
}

func TestNumericFieldsFlattensAndSkipsTime(t *testing.T) {
	row := map[string]any{
		"beginTimeSeconds":    10.0,
		"count":               5.0,
		"percentile.duration": map[string]any{"95": 1.5},
		"appName":             "web",
	}
	fs := numericFields(row)
	require.Len(t, fs, 2)
	assert.Equal(t, "count", fs[0].Name)
	assert.Equal(t, "percentile.duration.95", fs[1].Name)
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		1234:    "1,234",
		0.25:    "0.25",
		1234.5:  "1,234.5",
		2500000: "2.5 M",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatNumber(in), in)
	}
}
