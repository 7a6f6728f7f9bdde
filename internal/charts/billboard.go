package charts

import (
	"charm.land/lipgloss/v2"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

type billboardRenderer struct{}

func (billboardRenderer) Kind() Kind { return Billboard }

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Padding(0, 2)

// Render draws one card per number. Faceted results get one card per facet
// showing its first value; otherwise every number of the first row gets a
// card.
func (billboardRenderer) Render(res *nerdgraph.Result, width, height int) string {
	if res == nil {
		return placeholder()
	}
	if res.Empty() {
		return noResults()
	}

	var cards []field
	if len(res.Series) > 1 {
		for _, s := range res.Series {
			if len(s.Data) == 0 {
				continue
			}
			if f, ok := firstValue(s.Data[0]); ok {
				cards = append(cards, field{Name: seriesLabel(s, "other"), Value: f.Value})
			}
		}
	} else {
		cards = numericFields(res.First())
	}
	if len(cards) == 0 {
		return noResults()
	}

	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = renderCard(c, i, width)
	}
	return clipLines(flow(rendered, width), height)
}

func renderCard(f field, i, maxWidth int) string {
	value := valueStyle.Foreground(theme.SeriesColor(i)).Render(formatNumber(f.Value))
	label := labelStyle.Render(truncate(f.Name, max(maxWidth-6, 1)))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, value, label))
}

// flow lays blocks out left to right, starting a new row when width runs out.
func flow(blocks []string, width int) string {
	var rows []string
	var row []string
	used := 0
	for _, b := range blocks {
		w := lipgloss.Width(b)
		if len(row) > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, b)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
