package arena

import "github.com/vovakirdan/tui-boxhead/internal/core"

// Body is the circular shape shared by the player and enemies.
// Pos is the top-left of the bounding square; every write goes through
// SetPos or SetCenter, which keep the square inside the arena.
type Body struct {
	Pos         core.Vec2
	Size        float64
	Vel         core.Vec2
	Orientation core.Vec2
	HP          int
	MaxHP       int
}

// Radius returns half the body size.
func (b *Body) Radius() float64 {
	return b.Size / 2
}

// Center returns the center of the body.
func (b *Body) Center() core.Vec2 {
	return b.Pos.AddScalar(b.Radius())
}

// SetPos moves the body, clamping it into [0, bounds - size].
func (b *Body) SetPos(p, bounds core.Vec2) {
	b.Pos = p.Clamp(core.Vec2{}, bounds.SubScalar(b.Size))
}

// SetCenter moves the body so its center is c, subject to SetPos clamping.
func (b *Body) SetCenter(c, bounds core.Vec2) {
	b.SetPos(c.SubScalar(b.Radius()), bounds)
}

// Alive reports whether the body has health left.
func (b *Body) Alive() bool {
	return b.HP > 0
}

// world is the read-only view of the arena that movement needs.
type world interface {
	Size() core.Vec2
	GridSize() float64
	Layout() *Layout
	// Obstacles calls fn for every body other than self until fn returns false.
	Obstacles(self *Body, fn func(other *Body) bool)
}

// tileOf returns the grid cell containing p.
func tileOf(w world, p core.Vec2) Cell {
	t := p.DivScalar(w.GridSize()).Floor()
	return Cell{Col: int(t.X), Row: int(t.Y)}
}

// tileBox returns the world square covered by a cell.
func tileBox(w world, c Cell) core.Box {
	g := w.GridSize()
	return core.NewBox(float64(c.Col)*g, float64(c.Row)*g, g, g)
}

// move integrates b.Vel for one tick and resolves collisions.
//
// The body is first clamped into the arena, then pushed out of every wall
// tile in the 3x3 neighbourhood of the tile it started the tick on, then
// pushed away from overlapping bodies. Walls are resolved once more around
// the final tile so a push from a neighbour never leaves the body inside
// a wall.
func move(w world, b *Body) {
	prev := tileOf(w, b.Center())

	if !b.Vel.IsZero() {
		b.Orientation = b.Vel.Normalize()
	}
	b.SetPos(b.Pos.Add(b.Vel), w.Size())

	resolveWalls(w, b, prev)
	separate(w, b)
	resolveWalls(w, b, tileOf(w, b.Center()))
}

// resolveWalls pushes b out of wall tiles around cell around.
func resolveWalls(w world, b *Body, around Cell) {
	l := w.Layout()
	r := b.Radius()
	c := b.Center()

	row0, row1 := core.Clamp(around.Row-1, 0, l.Rows-1), core.Clamp(around.Row+1, 0, l.Rows-1)
	col0, col1 := core.Clamp(around.Col-1, 0, l.Cols-1), core.Clamp(around.Col+1, 0, l.Cols-1)

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if l.Tiles[row][col] != TileWall {
				continue
			}
			nearest := core.ClosestPointOnBox(c, tileBox(w, Cell{Col: col, Row: row}))
			sep := c.Sub(nearest)
			dist := sep.Len()
			overlap := r - dist
			// dist == 0 means the center is inside the tile: no direction to push.
			if overlap > 0 && dist > 0 {
				b.SetCenter(c.Add(sep.Scale(overlap/dist)), w.Size())
				c = b.Center()
			}
		}
	}
}

// separate pushes b half the overlap away from every body it overlaps.
// The other body corrects itself on its own update. The summed push is
// capped at half the radius so a crowd can't shove a body through a wall
// before the final wall pass.
func separate(w world, b *Body) {
	c := b.Center()
	var push core.Vec2
	w.Obstacles(b, func(other *Body) bool {
		sep := c.Sub(other.Center())
		dist := sep.Len()
		overlap := b.Radius() + other.Radius() - dist
		if overlap > 0 && dist > 0 {
			push = push.Add(sep.Scale(overlap / 2 / dist))
		}
		return true
	})
	if limit := b.Radius() / 2; push.Len() > limit {
		push = push.Normalize().Scale(limit)
	}
	if !push.IsZero() {
		b.SetCenter(c.Add(push), w.Size())
	}
}

// touching reports whether two bodies are within margin of contact.
func touching(a, b *Body, margin float64) bool {
	return a.Center().Dist(b.Center()) <= a.Radius()+b.Radius()+margin
}
