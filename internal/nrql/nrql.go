// Package nrql holds the text helpers shared by every place a lesson query
// is shown, charted, copied or handed to the editor.
package nrql

import "strings"

// MarkdownOff is the markdown flag value that disables unescaping.
const MarkdownOff = "no"

// markers are the Markdown escapes lesson authors use so queries render as
// prose. They are undone in order, each as a global replace.
var markers = [][2]string{
	{"**", ""},
	{`\*`, "*"},
	{`\_`, "_"},
	{`\[`, "["},
}

// Normalize returns the literal query text for a lesson query. With markdown
// set to MarkdownOff the text is returned verbatim.
func Normalize(text, markdown string) string {
	if markdown == MarkdownOff {
		return text
	}
	for _, m := range markers {
		text = strings.ReplaceAll(text, m[0], m[1])
	}
	return text
}

// IsTimeseries reports whether the query contains a TIMESERIES clause.
func IsTimeseries(q string) bool {
	return containsFold(q, "timeseries")
}

// IsFaceted reports whether the query contains a FACET clause.
func IsFaceted(q string) bool {
	return containsFold(q, "facet")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
