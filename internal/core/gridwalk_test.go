package core

import "testing"

type cell struct{ x, y int }

func collectWalk(x0, y0, x1, y1 int) []cell {
	var cells []cell
	WalkGrid(x0, y0, x1, y1, func(x, y int) bool {
		cells = append(cells, cell{x, y})
		return false
	})
	return cells
}

func TestWalkGridHorizontal(t *testing.T) {
	got := collectWalk(0, 0, 3, 0)
	expected := []cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	if len(got) != len(expected) {
		t.Fatalf("visited %d cells, expected %d: %v", len(got), len(expected), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("cell %d = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestWalkGridConnectivity(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"diagonal", 0, 0, 2, 2},
		{"steep negative", 5, 5, 3, -4},
		{"shallow", -2, 1, 9, 4},
		{"vertical up", 0, 0, 0, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := collectWalk(tc.x0, tc.y0, tc.x1, tc.y1)
			want := 1 + Abs(tc.x1-tc.x0) + Abs(tc.y1-tc.y0)
			if len(got) != want {
				t.Fatalf("visited %d cells, expected %d", len(got), want)
			}
			if got[0] != (cell{tc.x0, tc.y0}) {
				t.Errorf("first cell = %v, expected start", got[0])
			}
			if last := got[len(got)-1]; last != (cell{tc.x1, tc.y1}) {
				t.Errorf("last cell = %v, expected end (%d, %d)", last, tc.x1, tc.y1)
			}
			for i := 1; i < len(got); i++ {
				step := Abs(got[i].x-got[i-1].x) + Abs(got[i].y-got[i-1].y)
				if step != 1 {
					t.Errorf("cells %v -> %v are not 4-connected", got[i-1], got[i])
				}
			}
		})
	}
}

func TestWalkGridStops(t *testing.T) {
	x, y, stopped := WalkGrid(0, 0, 10, 0, func(x, y int) bool {
		return x == 4
	})
	if !stopped || x != 4 || y != 0 {
		t.Errorf("WalkGrid() = %d, %d, %v, expected 4, 0, true", x, y, stopped)
	}

	x, y, stopped = WalkGrid(0, 0, 3, 3, func(int, int) bool { return false })
	if stopped || x != 3 || y != 3 {
		t.Errorf("WalkGrid() = %d, %d, %v, expected 3, 3, false", x, y, stopped)
	}
}

func TestWalkGridSinglePoint(t *testing.T) {
	got := collectWalk(7, 7, 7, 7)
	if len(got) != 1 || got[0] != (cell{7, 7}) {
		t.Errorf("single point walk = %v, expected [(7, 7)]", got)
	}
}
