package core

import "math"

// parallelEpsilon is the determinant below which two directions are
// treated as parallel.
const parallelEpsilon = 1e-7

// Segment is a line segment from A to B.
type Segment struct {
	A, B Vec2
}

// Len returns the segment length.
func (s Segment) Len() float64 {
	return s.A.Dist(s.B)
}

// LineIntersection intersects the infinite lines through a and b.
// Parallel or coincident lines report false.
func LineIntersection(a, b Segment) (Vec2, bool) {
	a1 := a.B.Y - a.A.Y
	b1 := a.A.X - a.B.X
	c1 := a1*a.A.X + b1*a.A.Y

	a2 := b.B.Y - b.A.Y
	b2 := b.A.X - b.B.X
	c2 := a2*b.A.X + b2*b.A.Y

	det := a1*b2 - a2*b1
	if math.Abs(det) < parallelEpsilon {
		return Vec2{}, false
	}
	return Vec2{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}, true
}

// RaySegment intersects the ray origin + t*dir (t >= 0) with seg.
// It returns the hit point and t, measured in multiples of dir.
func RaySegment(origin, dir Vec2, seg Segment) (Vec2, float64, bool) {
	v1 := origin.Sub(seg.A)
	v2 := seg.B.Sub(seg.A)
	v3 := Vec2{X: -dir.Y, Y: dir.X}

	d := v2.Dot(v3)
	if math.Abs(d) < parallelEpsilon {
		return Vec2{}, 0, false
	}

	t := v2.Cross(v1) / d
	u := v1.Dot(v3) / d
	if t < 0 || u < 0 || u > 1 {
		return Vec2{}, 0, false
	}
	return origin.Add(dir.Scale(t)), t, true
}

// RayBoxExit returns the point where a ray starting inside b leaves it.
// Among the edges the ray crosses it takes the farthest hit, which is the
// exit even when the origin sits exactly on an edge.
func RayBoxExit(origin, dir Vec2, b Box) (Vec2, bool) {
	if dir.IsZero() {
		return Vec2{}, false
	}
	var (
		best  Vec2
		bestT = -1.0
	)
	for _, edge := range b.Edges() {
		p, t, ok := RaySegment(origin, dir, edge)
		if ok && t > bestT {
			best, bestT = p, t
		}
	}
	return best, bestT >= 0
}

// SegmentCircle returns the intersection of seg with the circle nearest to
// seg.A. A segment starting inside the circle hits at its start.
func SegmentCircle(seg Segment, center Vec2, r float64) (Vec2, bool) {
	f := seg.A.Sub(center)
	if f.LenSq() <= r*r {
		return seg.A, true
	}

	d := seg.B.Sub(seg.A)
	a := d.Dot(d)
	if a < parallelEpsilon {
		return Vec2{}, false
	}
	b := 2 * f.Dot(d)
	c := f.Dot(f) - r*r

	disc := b*b - 4*a*c
	if disc < 0 {
		return Vec2{}, false
	}
	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t < 0 || t > 1 {
		return Vec2{}, false
	}
	return seg.A.Add(d.Scale(t)), true
}

// ClosestPointOnBox returns the point of b nearest to p.
func ClosestPointOnBox(p Vec2, b Box) Vec2 {
	return p.Clamp(b.Min, b.Max)
}
