package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/shape-arcade/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(2, 0, "Find", core.ColorYellow)
	s.DrawTextColored(7, 0, "Circle", core.ColorCyan)
	s.DrawText(0, 2, "bottom")

	out := RenderScreen(s)

	assert.Equal(t, 2, strings.Count(out, "\n"))
	for _, want := range []string{"Find", "Circle", "bottom"} {
		assert.Contains(t, out, want)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Contains(t, styleFor(core.Color(200)).Render("x"), "x")
}
