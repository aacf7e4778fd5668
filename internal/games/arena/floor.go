package arena

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-boxhead/internal/core"
)

// FloorPatch is a small random polygon of floor texture.
type FloorPatch struct {
	Points []core.Vec2
	Glyph  rune
}

var floorGlyphs = []rune{'.', '·', ',', '`'}

// generateFloor scatters n patches over open tiles.
func generateFloor(rng *rand.Rand, l *Layout, grid float64, n int) []FloorPatch {
	if len(l.Spawns) == 0 {
		return nil
	}
	patches := make([]FloorPatch, 0, n)
	for i := 0; i < n; i++ {
		c := l.Spawns[rng.Intn(len(l.Spawns))]
		center := core.V(
			(float64(c.Col)+rng.Float64())*grid,
			(float64(c.Row)+rng.Float64())*grid,
		)
		patches = append(patches, FloorPatch{
			Points: randomPolygon(rng, center, grid/4+rng.Float64()*grid/2),
			Glyph:  floorGlyphs[rng.Intn(len(floorGlyphs))],
		})
	}
	return patches
}

// randomPolygon returns 3-6 vertices around center, sorted by angle so the
// outline never crosses itself.
func randomPolygon(rng *rand.Rand, center core.Vec2, radius float64) []core.Vec2 {
	n := 3 + rng.Intn(4)
	pts := make([]core.Vec2, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		angle := float64(i)*step + rng.Float64()*step
		r := radius * (0.5 + rng.Float64()/2)
		pts[i] = center.Add(core.V(math.Cos(angle), math.Sin(angle)).Scale(r))
	}
	return pts
}
