package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestSpanWidth(t *testing.T) {
	tests := []struct {
		width, span, want int
	}{
		{120, 6, 60},
		{120, 4, 40},
		{120, 12, 120},
		{120, 0, 10},
		{120, 40, 120},
		{0, 6, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpanWidth(tt.width, tt.span), "SpanWidth(%d, %d)", tt.width, tt.span)
	}
}

func TestFitsSideBySide(t *testing.T) {
	assert.True(t, FitsSideBySide(6, 6))
	assert.True(t, FitsSideBySide(0, 11))
	assert.False(t, FitsSideBySide(8, 8))
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Level 4", "demo mode", 100)
	for _, want := range []string{"nrqltutor", "Level 4", "demo mode"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, HeaderHeight, lipgloss.Height(out))
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{"Esc", "Back"}, {"Ctrl+C", "Quit"}}, 90)
	assert.Contains(t, out, "Esc")
	assert.Contains(t, out, "Quit")
}

func TestRenderFrameFillsHeight(t *testing.T) {
	frame := RenderFrame("head", strings.Repeat("line\n", 50), "foot", 80, 24)
	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.True(t, strings.HasPrefix(frame, "head"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(frame, " "), "foot"))
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
	assert.Contains(t, RenderMinSizeMessage(60, 20), "60×20")
}
