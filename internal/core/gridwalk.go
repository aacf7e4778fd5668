package core

// WalkGrid visits every integer cell on the 4-connected line from (x0, y0)
// to (x1, y1), endpoints included. The visitor returns true to stop; the
// stopping cell is returned with stopped set.
func WalkGrid(x0, y0, x1, y1 int, visit func(x, y int) bool) (int, int, bool) {
	dx := Abs(x1 - x0)
	dy := Abs(y1 - y0)

	xStep, yStep := 1, 1
	if x1 < x0 {
		xStep = -1
	}
	if y1 < y0 {
		yStep = -1
	}

	x, y := x0, y0
	diff := dx - dy
	dx *= 2
	dy *= 2

	for n := 1 + Abs(x1-x0) + Abs(y1-y0); n > 0; n-- {
		if visit(x, y) {
			return x, y, true
		}
		if diff > 0 {
			x += xStep
			diff -= dy
		} else {
			y += yStep
			diff += dx
		}
	}
	return x1, y1, false
}
