package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-seabattle/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score:")
	s.DrawTextColored(7, 0, "40", core.ColorBrightGreen)
	s.SetColored(0, 1, '■', core.ColorBrightWhite)
	s.SetColored(2, 1, 'X', core.Color(99))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"Score:", "40", "■", "X"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
