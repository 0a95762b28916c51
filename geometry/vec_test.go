package geometry

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	b := Vec{X: 3, Y: -4}

	if got := a.Add(b); got != (Vec{X: 4, Y: -2}) {
		t.Errorf("Add: expected (4,-2), got %v", got)
	}
	if got := a.Sub(b); got != (Vec{X: -2, Y: 6}) {
		t.Errorf("Sub: expected (-2,6), got %v", got)
	}
	if got := b.Scale(0.5); got != (Vec{X: 1.5, Y: -2}) {
		t.Errorf("Scale: expected (1.5,-2), got %v", got)
	}
}

func TestDist(t *testing.T) {
	if got := Dist(Vec{X: 0, Y: 0}, Vec{X: 3, Y: 4}); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(Vec{X: 10, Y: 0})
	if v != (Vec{X: 1, Y: 0}) {
		t.Errorf("expected unit x, got %v", v)
	}

	if Normalize(Vec{}) != (Vec{}) {
		t.Error("zero vector should normalize to zero")
	}

	if _, ok := TryNormalize(Vec{}); ok {
		t.Error("zero vector has no direction")
	}
}

func TestClamp(t *testing.T) {
	min := Vec{X: 0, Y: 0}
	max := Vec{X: 100, Y: 50}

	cases := []struct {
		name string
		in   Vec
		want Vec
	}{
		{"inside", Vec{X: 10, Y: 10}, Vec{X: 10, Y: 10}},
		{"above", Vec{X: 200, Y: 80}, Vec{X: 100, Y: 50}},
		{"below", Vec{X: -5, Y: -5}, Vec{X: 0, Y: 0}},
		{"mixed", Vec{X: -5, Y: 80}, Vec{X: 0, Y: 50}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.in, min, max); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDistToLine(t *testing.T) {
	start := Vec{X: 0, Y: 0}
	end := Vec{X: 10, Y: 0}

	if got := DistToLine(start, end, Vec{X: 5, Y: 3}); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}

	// The test is against the infinite line, so a point beyond the segment
	// end still measures its perpendicular distance.
	if got := DistToLine(start, end, Vec{X: 20, Y: 3}); got != 3 {
		t.Errorf("expected 3 beyond the endpoint, got %v", got)
	}

	if got := DistToLine(start, start, Vec{X: 5, Y: 5}); got != math.MaxFloat64 {
		t.Errorf("degenerate line should report MaxFloat64, got %v", got)
	}
}
