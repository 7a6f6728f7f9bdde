package charts

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/nrqlkit/nrqltutor/internal/nerdgraph"
	"github.com/nrqlkit/nrqltutor/internal/ui/theme"
)

// field is one numeric value of a result row.
type field struct {
	Name  string
	Value float64
}

// timeKeys are bucket bounds, not measurements.
var timeKeys = map[string]bool{
	"beginTimeSeconds": true,
	"endTimeSeconds":   true,
	"timestamp":        true,
}

// numericFields flattens the numeric values of a row, sorted by name.
// Nested objects such as percentile results become "percentile.duration.95".
func numericFields(row map[string]any) []field {
	var out []field
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			name := k
			if prefix != "" {
				name = prefix + "." + k
			}
			switch v := v.(type) {
			case float64:
				if prefix == "" && timeKeys[k] {
					continue
				}
				out = append(out, field{Name: name, Value: v})
			case int:
				out = append(out, field{Name: name, Value: float64(v)})
			case map[string]any:
				walk(name, v)
			}
		}
	}
	walk("", row)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// firstValue is the value a single-number chart shows for a row.
func firstValue(row map[string]any) (field, bool) {
	fs := numericFields(row)
	if len(fs) == 0 {
		return field{}, false
	}
	return fs[0], true
}

// seriesLabel names a series for legends.
func seriesLabel(s nerdgraph.Series, fallback string) string {
	if s.Name != "" {
		return s.Name
	}
	return fallback
}

// rowTime reads the bucket start of a TIMESERIES row.
func rowTime(row map[string]any) (time.Time, bool) {
	if v, ok := row["beginTimeSeconds"].(float64); ok {
		return time.Unix(int64(v), 0), true
	}
	if v, ok := row["timestamp"].(float64); ok {
		return time.UnixMilli(int64(v)), true
	}
	return time.Time{}, false
}

// formatNumber prints counts with separators and small values with a few
// significant digits.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Sprint(v)
	case math.Abs(v) >= 1e6:
		return humanize.SIWithDigits(v, 2, "")
	case v == math.Trunc(v):
		return humanize.Comma(int64(v))
	case math.Abs(v) >= 100:
		return humanize.CommafWithDigits(v, 1)
	default:
		return humanize.CommafWithDigits(v, 3)
	}
}

// formatCell renders any result value for a table cell.
func formatCell(key string, v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if timeKeys[key] {
			if key == "timestamp" {
				return time.UnixMilli(int64(v)).Format("15:04:05")
			}
			return time.Unix(int64(v), 0).Format("15:04")
		}
		return formatNumber(v)
	case bool:
		return fmt.Sprint(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

var (
	placeholderStyle = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	labelStyle       = lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle       = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
)

func placeholder() string {
	return placeholderStyle.Render(LoadingText)
}

func noResults() string {
	return placeholderStyle.Render("No results")
}

// truncate shortens s to width cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// clipLines keeps at most height lines.
func clipLines(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}
