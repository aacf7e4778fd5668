package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearVec(a, b Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	tests := []struct {
		name     string
		got      Vec2
		expected Vec2
	}{
		{"Add", a.Add(b), V(4, 2)},
		{"Sub", a.Sub(b), V(2, 6)},
		{"Scale", a.Scale(2), V(6, 8)},
		{"AddScalar", a.AddScalar(1), V(4, 5)},
		{"SubScalar", a.SubScalar(1), V(2, 3)},
		{"DivScalar", a.DivScalar(2), V(1.5, 2)},
		{"DivScalar zero", a.DivScalar(0), V(0, 0)},
		{"Floor", V(1.7, -1.2).Floor(), V(1, -2)},
		{"Clamp", V(-5, 50).Clamp(V(0, 0), V(10, 10)), V(0, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.expected)
			}
		})
	}

	if a != V(3, 4) {
		t.Errorf("receiver mutated: %v", a)
	}
}

func TestVecLengthAndProducts(t *testing.T) {
	a := V(3, 4)

	if a.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", a.Len())
	}
	if a.LenSq() != 25 {
		t.Errorf("LenSq() = %v, expected 25", a.LenSq())
	}
	if d := a.Dot(V(2, 1)); d != 10 {
		t.Errorf("Dot() = %v, expected 10", d)
	}
	if c := V(1, 0).Cross(V(0, 1)); c != 1 {
		t.Errorf("Cross() = %v, expected 1", c)
	}
	if d := V(0, 0).Dist(a); d != 5 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if !nearVec(n, V(0.6, 0.8)) {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", n)
	}
	if math.Abs(n.Len()-1) > eps {
		t.Errorf("normalized length = %v, expected 1", n.Len())
	}

	z := V(0, 0).Normalize()
	if !z.IsZero() {
		t.Errorf("Normalize() of zero vector = %v, expected zero", z)
	}
	if math.IsNaN(z.X) || math.IsNaN(z.Y) {
		t.Error("Normalize() of zero vector produced NaN")
	}
}
