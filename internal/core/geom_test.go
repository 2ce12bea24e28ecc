package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 32, 32), NewRect(16, 16, 24, 24), true},
		{"separate horizontal", NewRect(0, 0, 32, 32), NewRect(40, 0, 24, 24), false},
		{"separate vertical", NewRect(0, 0, 32, 32), NewRect(0, 40, 24, 24), false},
		{"touching right edge", NewRect(0, 0, 32, 32), NewRect(32, 0, 24, 24), false},
		{"touching bottom edge", NewRect(0, 0, 32, 32), NewRect(0, 32, 24, 24), false},
		{"player inside tile", NewRect(32, 32, 32, 32), NewRect(36, 36, 24, 24), true},
		{"single pixel overlap", NewRect(0, 0, 32, 32), NewRect(31, 31, 24, 24), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(64, 32, 32, 32)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 70, 40, true},
		{"top-left corner", 64, 32, true},
		{"last pixel", 95, 63, true},
		{"right edge exclusive", 96, 40, false},
		{"bottom edge exclusive", 70, 64, false},
		{"outside left", 63, 40, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCenterAndMoved(t *testing.T) {
	r := NewRect(36, 36, 24, 24)

	cx, cy := r.Center()
	if cx != 48 || cy != 48 {
		t.Errorf("Center() = (%d, %d), expected (48, 48)", cx, cy)
	}

	m := r.Moved(100, 4)
	if m.X != 100 || m.Y != 4 || m.W != 24 || m.H != 24 {
		t.Errorf("Moved() = %+v, expected {100 4 24 24}", m)
	}
	if r.X != 36 {
		t.Error("Moved() should not modify the receiver")
	}
}

func TestVecAndDist(t *testing.T) {
	v := Vec{X: 7, Y: 5}.Sub(Vec{X: 4, Y: 1})
	if v.X != 3 || v.Y != 4 {
		t.Errorf("Sub() = %+v, expected {3 4}", v)
	}
	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}
	if d := Dist(0, 0, 3, 4); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 776.0, 5.5},
		{-2.0, 0.0, 776.0, 0.0},
		{780.5, 0.0, 776.0, 776.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	for _, tc := range []struct{ in, out int }{{5, 5}, {-5, 5}, {0, 0}} {
		if got := Abs(tc.in); got != tc.out {
			t.Errorf("Abs(%d) = %d, expected %d", tc.in, got, tc.out)
		}
	}
}
