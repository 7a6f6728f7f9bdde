package charts

import (
	"sort"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

type tableRenderer struct{}

func (tableRenderer) Kind() Kind { return Table }

// tableChrome is the border and header lines around the data rows.
const tableChrome = 4

func (tableRenderer) Render(res *nerdgraph.Result, width, height int) string {
	if res == nil {
		return placeholder()
	}
	rows := res.Rows()
	if len(rows) == 0 {
		return noResults()
	}

	cols := columns(rows, res.Facets)
	limit := len(rows)
	if height > tableChrome && limit > height-tableChrome {
		limit = height - tableChrome
	}

	cells := make([][]string, 0, limit)
	for _, row := range rows[:limit] {
		line := make([]string, len(cols))
		for i, c := range cols {
			line[i] = formatCell(c, row[c])
		}
		cells = append(cells, line)
	}

	headerStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(cols...).
		Rows(cells...).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	out := t.String()
	if limit < len(rows) {
		out += "\n" + labelStyle.Render(truncate(
			formatNumber(float64(len(rows)-limit))+" more rows", width))
	}
	return out
}

// columns is the union of row keys. Facet attributes come first in facet
// order, then the remaining keys sorted. The synthetic "facet" key is dropped
// when the attributes themselves are present.
func columns(rows []map[string]any, facets []string) []string {
	seen := make(map[string]bool)
	for _, r := range rows {
		for k := range r {
			seen[k] = true
		}
	}

	var out []string
	for _, f := range facets {
		if seen[f] {
			out = append(out, f)
			delete(seen, f)
		}
	}
	if len(out) > 0 {
		delete(seen, "facet")
	} else if seen["facet"] {
		out = append(out, "facet")
		delete(seen, "facet")
	}

	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(out, rest...)
}
