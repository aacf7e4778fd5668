package arena

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-boxhead/internal/core"
)

// Glyphs used for the world.
const (
	WallGlyph   = '█'
	BodyGlyph   = '█'
	TrailGlyph  = '·'
	HPFullChar  = '█'
	HPEmptyChar = '░'
)

// Drawable is anything the arena renders in world space.
type Drawable interface {
	Draw(cv *core.Canvas)
}

type wallTile struct {
	box core.Box
}

func (w wallTile) Draw(cv *core.Canvas) {
	s := w.box.Size()
	cv.FillRect(w.box.Min.X, w.box.Min.Y, s.X, s.Y, WallGlyph, core.ColorWall)
}

func (f FloorPatch) Draw(cv *core.Canvas) {
	cv.FillPolygon(f.Points, f.Glyph, core.ColorFloor)
}

var decalShapes = [decalVariants + 1]struct {
	glyph  rune
	radius float64
}{
	1: {'∙', 6},
	2: {'•', 10},
	3: {'*', 14},
	4: {'▪', 18},
}

func (d Decal) Draw(cv *core.Canvas) {
	v := decalShapes[core.Clamp(d.Variant, 1, decalVariants)]
	cv.FillCircle(d.Pos, v.radius, v.glyph, core.ColorDarkRed)
}

func (b BulletPath) Draw(cv *core.Canvas) {
	cv.DrawLine(b.Start, b.End, TrailGlyph, b.Color)
}

func (e *Enemy) Draw(cv *core.Canvas) {
	col := core.ColorRed
	if e.HP*2 <= e.MaxHP {
		col = core.ColorDarkRed
	}
	cv.FillCircle(e.Center(), e.Radius(), BodyGlyph, col)
	cv.DrawText(e.Center(), string(arrowGlyph(e.Orientation)), core.ColorBrightRed)
}

func (p *Player) Draw(cv *core.Canvas) {
	if !p.Alive() {
		cv.FillCircle(p.Center(), p.Radius(), BodyGlyph, core.ColorGray)
		cv.DrawText(p.Center(), "✖", core.ColorBrightWhite)
		return
	}
	cv.FillCircle(p.Center(), p.Radius(), BodyGlyph, core.ColorBrightCyan)
	cv.DrawText(p.Center(), string(arrowGlyph(p.Orientation)), core.ColorBrightWhite)
}

var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// arrowGlyph picks the arrow nearest to direction o (screen y grows down).
func arrowGlyph(o core.Vec2) rune {
	if o.IsZero() {
		return '•'
	}
	angle := math.Atan2(o.Y, o.X)
	sector := int(math.Round(angle/(math.Pi/4))+8) % 8
	return arrows[sector]
}

// drawables lists what the camera can see, back to front.
func (a *Arena) drawables(cam core.Camera) []Drawable {
	list := make([]Drawable, 0, len(a.Floor)+len(a.Decals)+len(a.Bullets)+len(a.Enemies)+64)
	for _, f := range a.Floor {
		list = append(list, f)
	}
	for _, d := range a.Decals {
		list = append(list, d)
	}

	view := core.Box{Min: cam.Origin, Max: cam.Origin.Add(cam.ViewSize())}
	first := a.TileAt(view.Min)
	last := a.TileAt(view.Max)
	for row := max(first.Row, 0); row <= min(last.Row, a.layout.Rows-1); row++ {
		for col := max(first.Col, 0); col <= min(last.Col, a.layout.Cols-1); col++ {
			if a.layout.Tiles[row][col] == TileWall {
				list = append(list, wallTile{box: tileBox(a, Cell{Col: col, Row: row})})
			}
		}
	}

	for _, b := range a.Bullets {
		list = append(list, b)
	}
	for _, e := range a.Enemies {
		list = append(list, e)
	}
	return append(list, a.Player)
}

// Draw renders the world onto cv.
func (a *Arena) Draw(cv *core.Canvas) {
	for _, d := range a.drawables(cv.Camera()) {
		d.Draw(cv)
	}
}

// Camera returns a camera following the player for a viewport of
// cols x rows cells starting at screen row offsetY. A cell is half a
// tile wide and one tile tall, which keeps tiles roughly square.
func (a *Arena) Camera(cols, rows, offsetY int) core.Camera {
	g := a.GridSize()
	cam := core.NewCamera(g/2, g, cols, rows, offsetY)
	cam.Follow(a.Player.Center(), a.Size())
	return cam
}

// DrawHUD writes the status line on row y.
func (a *Arena) DrawHUD(s *core.Screen, y int) {
	p := a.Player
	const barWidth = 10
	filled := 0
	if p.MaxHP > 0 {
		filled = (p.HP*barWidth + p.MaxHP - 1) / p.MaxHP
	}
	hpColor := core.ColorBrightGreen
	switch {
	case p.HP*4 <= p.MaxHP:
		hpColor = core.ColorBrightRed
	case p.HP*2 <= p.MaxHP:
		hpColor = core.ColorYellow
	}

	x := 0
	x = put(s, x, y, "HP ", core.ColorWhite)
	x = put(s, x, y, strings.Repeat(string(HPFullChar), filled), hpColor)
	x = put(s, x, y, strings.Repeat(string(HPEmptyChar), barWidth-filled), core.ColorGray)
	x = put(s, x, y, fmt.Sprintf(" %3d", p.HP), hpColor)
	x = put(s, x, y, fmt.Sprintf("  SCORE %d", a.Score), core.ColorBrightYellow)
	x = put(s, x, y, fmt.Sprintf("  BEST %d", a.best), core.ColorYellow)
	x = put(s, x, y, fmt.Sprintf("  WAVE %d", a.Wave()+1), core.ColorBrightCyan)
	x = put(s, x, y, fmt.Sprintf("  KILLS %d", a.Kills), core.ColorWhite)
	put(s, x, y, fmt.Sprintf("  LEFT %d", len(a.Enemies)), core.ColorRed)
}

func put(s *core.Screen, x, y int, text string, c core.Color) int {
	s.DrawTextColor(x, y, text, c)
	return x + len([]rune(text))
}
