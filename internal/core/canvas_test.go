package core

import "testing"

func TestCameraFollowClamps(t *testing.T) {
	world := V(1920, 1920)

	tests := []struct {
		name     string
		focus    Vec2
		expected Vec2
	}{
		{"top-left corner", V(0, 0), V(0, 0)},
		{"bottom-right corner", V(1920, 1920), V(1680, 1680)},
		{"middle", V(960, 960), V(840, 816)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera(24, 48, 10, 5, 1)
			cam.Follow(tc.focus, world)
			if cam.Origin != tc.expected {
				t.Errorf("Origin = %v, expected %v", cam.Origin, tc.expected)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(24, 48, 10, 5, 1)
	cam.Origin = V(240, 480)

	sx, sy := cam.ToScreen(V(250, 500))
	if sx != 0 || sy != 1 {
		t.Errorf("ToScreen() = %d, %d, expected 0, 1", sx, sy)
	}
	if p := cam.ToWorld(0, 1); p != V(252, 504) {
		t.Errorf("ToWorld(0, 1) = %v, expected (252, 504)", p)
	}
	if cam.InView(0, 0) {
		t.Error("HUD row should not be part of the viewport")
	}
	if !cam.InView(9, 5) || cam.InView(10, 5) || cam.InView(9, 6) {
		t.Error("InView() bounds are wrong")
	}
}

func TestCanvasFillRect(t *testing.T) {
	s := NewScreen(10, 6)
	cv := NewCanvas(s, NewCamera(24, 48, 10, 5, 1))

	cv.FillRect(0, 0, 48, 48, '#', ColorWall)

	if s.Get(0, 1) != '#' || s.Get(1, 1) != '#' {
		t.Errorf("tile should cover two cells, got row %q", s.Row(1))
	}
	if s.Get(2, 1) != ' ' {
		t.Errorf("cell (2, 1) should be empty, got %q", s.Get(2, 1))
	}
	if c := s.GetCell(0, 1); c.Color != ColorWall {
		t.Errorf("cell color = %v, expected %v", c.Color, ColorWall)
	}
	if s.Get(0, 0) != ' ' {
		t.Error("canvas must not draw over the HUD row")
	}
}

func TestCanvasSmallShapesStillPaint(t *testing.T) {
	s := NewScreen(10, 6)
	cv := NewCanvas(s, NewCamera(24, 48, 10, 5, 1))

	cv.FillCircle(V(100, 100), 2, 'o', ColorRed)
	if s.Get(4, 3) != 'o' {
		t.Errorf("tiny circle should paint the cell under its center, screen:\n%s", s.String())
	}
}

func TestCanvasFillPolygon(t *testing.T) {
	s := NewScreen(10, 6)
	cv := NewCanvas(s, NewCamera(24, 48, 10, 5, 1))

	cv.FillPolygon([]Vec2{V(0, 0), V(96, 0), V(96, 96), V(0, 96)}, '.', ColorFloor)
	for y := 1; y <= 2; y++ {
		for x := 0; x < 4; x++ {
			if s.Get(x, y) != '.' {
				t.Errorf("cell (%d, %d) = %q, expected '.'", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(4, 1) != ' ' {
		t.Errorf("cell (4, 1) should be outside the polygon")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	s := NewScreen(10, 6)
	cv := NewCanvas(s, NewCamera(24, 48, 10, 5, 1))

	cv.DrawLine(V(12, 24), V(200, 24), '-', ColorYellow)
	for x := 0; x <= 8; x++ {
		if s.Get(x, 1) != '-' {
			t.Errorf("cell (%d, 1) = %q, expected '-'", x, s.Get(x, 1))
		}
	}
}
