package arena

import (
	"testing"

	"github.com/vovakirdan/tui-boxhead/internal/core"
)

func TestArrowGlyph(t *testing.T) {
	tests := []struct {
		o        core.Vec2
		expected rune
	}{
		{core.V(1, 0), '→'},
		{core.V(0, 1), '↓'},
		{core.V(-1, 0), '←'},
		{core.V(0, -1), '↑'},
		{core.V(1, 1), '↘'},
		{core.V(-1, -1), '↖'},
		{core.Vec2{}, '•'},
	}
	for _, tc := range tests {
		if got := arrowGlyph(tc.o); got != tc.expected {
			t.Errorf("arrowGlyph(%v) = %q, expected %q", tc.o, got, tc.expected)
		}
	}
}

func TestHUDHealthBar(t *testing.T) {
	a, _ := newTestArena(t, "#####\n#p e#\n#####", testConfig())
	a.Player.HP = 45
	s := core.NewScreen(80, 1)
	a.DrawHUD(s, 0)

	row := []rune(s.Row(0))
	full := 0
	for _, r := range row[3:13] {
		if r == HPFullChar {
			full++
		}
	}
	if full != 5 {
		t.Errorf("filled segments = %d, expected 5", full)
	}
	if c := s.GetCell(3, 0); c.Color != core.ColorYellow {
		t.Errorf("bar color = %v, expected yellow at 45%%", c.Color)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	a, _ := newTestArena(t, BuiltinMaps()[2].Text, testConfig())
	cam := a.Camera(40, 10, 1)
	x, y := cam.ToScreen(a.Player.Center())
	if x < 0 || x >= 40 || y < 1 || y >= 11 {
		t.Errorf("player at screen (%d, %d), expected inside the 40x10 viewport", x, y)
	}
}
