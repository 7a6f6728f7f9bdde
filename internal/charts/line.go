package charts

import (
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

type lineRenderer struct{}

func (lineRenderer) Kind() Kind { return Line }

func (lineRenderer) Render(res *nerdgraph.Result, width, height int) string {
	if res == nil {
		return placeholder()
	}
	if res.Empty() {
		return noResults()
	}

	legend := lineLegend(res, width)
	chartHeight := height
	if legend != "" {
		chartHeight -= lipgloss.Height(legend)
	}
	if chartHeight < 3 || width < 10 {
		return clipLines(legend, height)
	}

	lc := timeserieslinechart.New(width, chartHeight)
	for i, s := range res.Series {
		name := seriesLabel(s, "value")
		lc.SetDataSetStyle(name, lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SeriesHex(i))))
		for j, row := range s.Data {
			v, ok := firstValue(row)
			if !ok {
				continue
			}
			ts, ok := rowTime(row)
			if !ok {
				// Not a TIMESERIES result; lay rows out a minute apart.
				ts = time.Unix(int64(j)*60, 0)
			}
			lc.PushDataSet(name, timeserieslinechart.TimePoint{Time: ts, Value: v.Value})
		}
	}
	lc.DrawBrailleAll()

	if legend == "" {
		return lc.View()
	}
	return lc.View() + "\n" + legend
}

// lineLegend names each series in its color. A single unnamed series gets
// the measured field instead.
func lineLegend(res *nerdgraph.Result, width int) string {
	if len(res.Series) == 1 && res.Series[0].Name == "" {
		if f, ok := firstValue(res.First()); ok {
			return truncate(labelStyle.Render("── "+f.Name), width)
		}
		return ""
	}
	parts := make([]string, 0, len(res.Series))
	for i, s := range res.Series {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SeriesHex(i))).Render("●")
		parts = append(parts, dot+" "+seriesLabel(s, "other"))
	}
	return wrapJoin(parts, "  ", width)
}

// wrapJoin joins parts with sep, breaking lines at width.
func wrapJoin(parts []string, sep string, width int) string {
	var lines []string
	var cur strings.Builder
	for _, p := range parts {
		if cur.Len() > 0 && lipgloss.Width(cur.String())+len(sep)+lipgloss.Width(p) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString(sep)
		}
		cur.WriteString(p)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return strings.Join(lines, "\n")
}
