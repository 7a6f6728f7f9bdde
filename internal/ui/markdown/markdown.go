// Package markdown renders lesson prose for the terminal with glamour.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderer caches one glamour renderer per wrap width; building one parses
// a full style sheet.
type Renderer struct {
	mu    sync.Mutex
	style string
	byW   map[int]*glamour.TermRenderer
}

// New creates a renderer using a standard glamour style ("dark", "light",
// "notty").
func New(style string) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{style: style, byW: make(map[int]*glamour.TermRenderer)}
}

// Render renders md wrapped at width. On failure the source is returned as
// is, which is still readable.
func (r *Renderer) Render(md string, width int) string {
	if width < 10 {
		width = 10
	}
	tr, err := r.term(width)
	if err != nil {
		return md
	}
	out, err := tr.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func (r *Renderer) term(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tr, ok := r.byW[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.byW[width] = tr
	return tr, nil
}
