package arena

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-boxhead/internal/config"
	"github.com/vovakirdan/tui-boxhead/internal/core"
)

// testConfig returns the defaults with progression and floor noise off so
// scenarios don't depend on score-driven speed changes.
func testConfig() config.ArenaConfig {
	cfg := config.DefaultArenaConfig()
	cfg.Difficulty.Enabled = false
	cfg.Effects.FloorNoise = 0
	return cfg
}

func newTestArena(t *testing.T, text string, cfg config.ArenaConfig) (*Arena, *core.SoundRecorder) {
	t.Helper()
	l, err := ParseLayout(text)
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	rec := &core.SoundRecorder{}
	a, err := New(l, cfg, 42, core.Services{Sound: rec})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a, rec
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// wallPenetration returns how deep b reaches into the nearest wall tile.
func wallPenetration(a *Arena, b *Body) float64 {
	worst := 0.0
	c := b.Center()
	tile := a.TileAt(c)
	for row := tile.Row - 1; row <= tile.Row+1; row++ {
		for col := tile.Col - 1; col <= tile.Col+1; col++ {
			if !a.layout.InBounds(col, row) || a.layout.Tiles[row][col] != TileWall {
				continue
			}
			nearest := core.ClosestPointOnBox(c, tileBox(a, Cell{Col: col, Row: row}))
			if d := b.Radius() - c.Dist(nearest); d > worst {
				worst = d
			}
		}
	}
	return worst
}
