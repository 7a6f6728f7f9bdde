package charts

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/tidwall/pretty"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
)

type jsonInlineRenderer struct{}

func (jsonInlineRenderer) Kind() Kind { return JSONInline }

// Render pretty-prints the first data point of the first series. Until that
// point exists, including when the query failed, it shows the loading text.
func (jsonInlineRenderer) Render(res *nerdgraph.Result, _, height int) string {
	first := res.First()
	if first == nil {
		return placeholder()
	}
	b, err := json.Marshal(first)
	if err != nil {
		return placeholder()
	}
	out := strings.TrimRight(string(pretty.PrettyOptions(b, &pretty.Options{
		Indent:   "  ",
		SortKeys: true,
		Width:    80,
	})), "\n")
	return clipLines(out, height)
}

type jsonChartRenderer struct{}

func (jsonChartRenderer) Kind() Kind { return JSONChart }

// Render shows every result row as colorized JSON.
func (jsonChartRenderer) Render(res *nerdgraph.Result, _, height int) string {
	if res == nil {
		return placeholder()
	}
	raw := []byte(res.Raw)
	if len(raw) == 0 {
		b, err := json.Marshal(res.Rows())
		if err != nil {
			return noResults()
		}
		raw = b
	}
	formatted := pretty.PrettyOptions(raw, &pretty.Options{Indent: "  ", SortKeys: true, Width: 80})
	out := strings.TrimRight(string(pretty.Color(formatted, nil)), "\n")
	return clipLines(out, height)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
