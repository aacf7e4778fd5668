package core

import "math"

// Camera maps world coordinates onto a window of screen cells.
// One cell spans CellW x CellH world units; the viewport starts at
// screen row OffsetY so a HUD can sit above it.
type Camera struct {
	Origin  Vec2
	CellW   float64
	CellH   float64
	Cols    int
	Rows    int
	OffsetY int
}

// NewCamera creates a camera for a viewport of cols x rows cells.
func NewCamera(cellW, cellH float64, cols, rows, offsetY int) Camera {
	return Camera{CellW: cellW, CellH: cellH, Cols: cols, Rows: rows, OffsetY: offsetY}
}

// ViewSize returns the viewport size in world units.
func (c Camera) ViewSize() Vec2 {
	return Vec2{X: float64(c.Cols) * c.CellW, Y: float64(c.Rows) * c.CellH}
}

// Follow centers the viewport on focus, clamped so it never shows space
// outside world. A world smaller than the viewport is centered instead.
// The origin snaps to whole cells so static geometry doesn't shimmer.
func (c *Camera) Follow(focus Vec2, world Vec2) {
	view := c.ViewSize()
	c.Origin = Vec2{
		X: followAxis(focus.X, view.X, world.X, c.CellW),
		Y: followAxis(focus.Y, view.Y, world.Y, c.CellH),
	}
}

func followAxis(focus, view, world, cell float64) float64 {
	if world <= view {
		return math.Floor((world-view)/2/cell) * cell
	}
	o := ClampF(focus-view/2, 0, world-view)
	return math.Floor(o/cell) * cell
}

// ToScreen returns the cell containing world point p.
func (c Camera) ToScreen(p Vec2) (int, int) {
	x := int(math.Floor((p.X - c.Origin.X) / c.CellW))
	y := int(math.Floor((p.Y-c.Origin.Y)/c.CellH)) + c.OffsetY
	return x, y
}

// ToWorld returns the world position of the center of cell (sx, sy).
func (c Camera) ToWorld(sx, sy int) Vec2 {
	return Vec2{
		X: c.Origin.X + (float64(sx)+0.5)*c.CellW,
		Y: c.Origin.Y + (float64(sy-c.OffsetY)+0.5)*c.CellH,
	}
}

// InView reports whether cell (sx, sy) belongs to the viewport.
func (c Camera) InView(sx, sy int) bool {
	return sx >= 0 && sx < c.Cols && sy >= c.OffsetY && sy < c.OffsetY+c.Rows
}

// Canvas draws world-space shapes onto a Screen through a Camera.
// A cell is painted when its center lies inside the shape; shapes too
// small to cover any center still paint the cell under their middle.
type Canvas struct {
	screen *Screen
	cam    Camera
}

// NewCanvas creates a canvas over s.
func NewCanvas(s *Screen, cam Camera) *Canvas {
	return &Canvas{screen: s, cam: cam}
}

// Camera returns the camera used for mapping.
func (cv *Canvas) Camera() Camera {
	return cv.cam
}

// Screen returns the underlying buffer.
func (cv *Canvas) Screen() *Screen {
	return cv.screen
}

func (cv *Canvas) plot(sx, sy int, ch rune, col Color) {
	if cv.cam.InView(sx, sy) {
		cv.screen.SetCell(sx, sy, ch, col)
	}
}

// cellRange returns the screen cells whose bounds touch the world box.
func (cv *Canvas) cellRange(b Box) (x0, y0, x1, y1 int) {
	x0, y0 = cv.cam.ToScreen(b.Min)
	x1, y1 = cv.cam.ToScreen(b.Max)
	x0 = Clamp(x0, 0, cv.cam.Cols-1)
	x1 = Clamp(x1, 0, cv.cam.Cols-1)
	y0 = Clamp(y0, cv.cam.OffsetY, cv.cam.OffsetY+cv.cam.Rows-1)
	y1 = Clamp(y1, cv.cam.OffsetY, cv.cam.OffsetY+cv.cam.Rows-1)
	return x0, y0, x1, y1
}

// fill paints every cell in bounds whose center satisfies inside.
func (cv *Canvas) fill(bounds Box, inside func(p Vec2) bool, ch rune, col Color) {
	painted := false
	x0, y0, x1, y1 := cv.cellRange(bounds)
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			if inside(cv.cam.ToWorld(sx, sy)) {
				cv.plot(sx, sy, ch, col)
				painted = true
			}
		}
	}
	if !painted {
		sx, sy := cv.cam.ToScreen(bounds.Center())
		cv.plot(sx, sy, ch, col)
	}
}

// FillRect paints the world rectangle with top-left (x, y).
func (cv *Canvas) FillRect(x, y, w, h float64, ch rune, col Color) {
	b := NewBox(x, y, w, h)
	cv.fill(b, func(p Vec2) bool {
		return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
	}, ch, col)
}

// FillCircle paints a circle given its center and radius.
func (cv *Canvas) FillCircle(center Vec2, r float64, ch rune, col Color) {
	b := Box{Min: center.SubScalar(r), Max: center.AddScalar(r)}
	cv.fill(b, func(p Vec2) bool {
		return p.Sub(center).LenSq() <= r*r
	}, ch, col)
}

// FillPolygon paints a simple polygon using the even-odd rule.
func (cv *Canvas) FillPolygon(pts []Vec2, ch rune, col Color) {
	if len(pts) < 3 {
		return
	}
	b := Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min = Vec2{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)}
		b.Max = Vec2{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)}
	}
	cv.fill(b, func(p Vec2) bool {
		return pointInPolygon(p, pts)
	}, ch, col)
}

func pointInPolygon(p Vec2, pts []Vec2) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// DrawLine paints the cells crossed by the world segment a-b.
func (cv *Canvas) DrawLine(a, b Vec2, ch rune, col Color) {
	x0, y0 := cv.cam.ToScreen(a)
	x1, y1 := cv.cam.ToScreen(b)
	WalkGrid(x0, y0, x1, y1, func(x, y int) bool {
		cv.plot(x, y, ch, col)
		return false
	})
}

// DrawText writes text starting at the cell containing world point p.
func (cv *Canvas) DrawText(p Vec2, text string, col Color) {
	sx, sy := cv.cam.ToScreen(p)
	i := 0
	for _, r := range text {
		cv.plot(sx+i, sy, r, col)
		i++
	}
}
