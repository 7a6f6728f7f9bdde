package nrql

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		markdown string
		want     string
	}{
		{"all markers", `**Foo** \*bar\* \_baz\_ \[qux`, "yes", "Foo *bar* _baz_ [qux"},
		{"empty flag unescapes", `SELECT count(\*) FROM Transaction`, "", "SELECT count(*) FROM Transaction"},
		{"off is identity", `**Foo** \*bar\*`, MarkdownOff, `**Foo** \*bar\*`},
		{"no markers", "SELECT average(duration) FROM Transaction", "yes", "SELECT average(duration) FROM Transaction"},
		{"bold next to escape", `**\*`, "", "*"},
		{"attribute underscore", `FACET request\_uri`, "", "FACET request_uri"},
		{"regex bracket", `WHERE name RLIKE r'\[0-9]+'`, "", "WHERE name RLIKE r'[0-9]+'"},
		{"closing bracket untouched", `\]`, "", `\]`},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.text, tt.markdown); got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.text, tt.markdown, got, tt.want)
			}
		})
	}
}

func TestNormalizeOffIsIdentity(t *testing.T) {
	inputs := []string{"", "**", `\*\_\[`, "SELECT * FROM Log", "héllo **wörld**"}
	for _, in := range inputs {
		if got := Normalize(in, MarkdownOff); got != in {
			t.Errorf("Normalize(%q, off) = %q", in, got)
		}
	}
}

func TestNormalizeFlagIsCaseSensitive(t *testing.T) {
	if got := Normalize("**x**", "No"); got != "x" {
		t.Errorf("only the exact value %q disables unescaping, got %q", MarkdownOff, got)
	}
}

func TestClauseProbes(t *testing.T) {
	tests := []struct {
		q          string
		timeseries bool
		faceted    bool
	}{
		{"SELECT count(*) FROM Transaction TIMESERIES", true, false},
		{"select count(*) from Transaction facet appName", false, true},
		{"SELECT count(*) FROM Transaction FACET name TimeSeries 1 minute", true, true},
		{"SELECT count(*) FROM Transaction", false, false},
	}
	for _, tt := range tests {
		if got := IsTimeseries(tt.q); got != tt.timeseries {
			t.Errorf("IsTimeseries(%q) = %v", tt.q, got)
		}
		if got := IsFaceted(tt.q); got != tt.faceted {
			t.Errorf("IsFaceted(%q) = %v", tt.q, got)
		}
	}
}
