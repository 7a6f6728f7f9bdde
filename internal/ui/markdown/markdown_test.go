package markdown

import (
	"strings"
	"testing"
)

func TestRenderStripsMarkup(t *testing.T) {
	r := New("notty")
	out := r.Render("Use **FACET** to group `appName`", 60)
	if strings.Contains(out, "**") {
		t.Errorf("bold markers should be rendered, got %q", out)
	}
	if !strings.Contains(out, "FACET") || !strings.Contains(out, "appName") {
		t.Errorf("text missing from %q", out)
	}
}

func TestRenderUnescapes(t *testing.T) {
	r := New("notty")
	out := r.Render(`SELECT count(\*) FROM Transaction`, 60)
	if !strings.Contains(out, "count(*)") {
		t.Errorf("escaped asterisk should render bare, got %q", out)
	}
}

func TestRenderCachesPerWidth(t *testing.T) {
	r := New("notty")
	r.Render("a", 40)
	r.Render("b", 40)
	r.Render("c", 50)
	if len(r.byW) != 2 {
		t.Errorf("expected 2 cached renderers, got %d", len(r.byW))
	}
}
