// Package grid models the square and circular reference grids that the
// embedding can align vertices to.
package grid

import (
	"math"

	"graphed/geometry"
)

// Segment is one straight grid line, used by frontends to draw the grid.
type Segment struct {
	Start, End geometry.Vec
}

// Square is a rectangular grid of lines spaced XDelta apart horizontally and
// YDelta apart vertically, shifted by the offsets.
type Square struct {
	XDelta  float64
	YDelta  float64
	XOffset float64
	YOffset float64
}

// NewSquare returns a square grid with the given spacings and zero offsets.
func NewSquare(xDelta, yDelta float64) *Square {
	return &Square{XDelta: xDelta, YDelta: yDelta}
}

// MakeSquare forces both spacings to the smaller of the two.
func (s *Square) MakeSquare() {
	min := math.Min(s.XDelta, s.YDelta)
	s.XDelta = min
	s.YDelta = min
}

// SetDeltas sets both spacings.
func (s *Square) SetDeltas(xDelta, yDelta float64) {
	s.XDelta = xDelta
	s.YDelta = yDelta
}

// SetDeltasSquare sets both spacings to delta.
func (s *Square) SetDeltasSquare(delta float64) {
	s.SetDeltas(delta, delta)
}

// SetOffsetsFromCanvas shifts the grid so a grid intersection falls on the
// canvas centre.
func (s *Square) SetOffsetsFromCanvas(canvas geometry.Vec) {
	mid := canvas.Scale(0.5)
	s.XOffset = math.Mod(mid.X, s.XDelta)
	s.YOffset = math.Mod(mid.Y, s.YDelta)
}

// DeltaAvg returns the mean of the two spacings.
func (s *Square) DeltaAvg() float64 {
	return (s.XDelta + s.YDelta) * 0.5
}

// Segments returns the grid lines covering the canvas. Non-positive spacings
// yield no lines.
func (s *Square) Segments(canvas geometry.Vec) []Segment {
	if s.XDelta <= 0 || s.YDelta <= 0 {
		return nil
	}

	var segments []Segment

	for x := s.XOffset; x < canvas.X; x += s.XDelta {
		segments = append(segments, Segment{
			Start: geometry.Vec{X: x},
			End:   geometry.Vec{X: x, Y: canvas.Y},
		})
	}

	for y := s.YOffset; y < canvas.Y; y += s.YDelta {
		segments = append(segments, Segment{
			Start: geometry.Vec{Y: y},
			End:   geometry.Vec{X: canvas.X, Y: y},
		})
	}

	return segments
}

// Circle is a set of concentric rings around a centre, spaced RDelta apart
// out to Max.
type Circle struct {
	RDelta float64
	Center geometry.Vec
	Max    float64
}

// NewCircle returns a circular grid centred on the canvas.
func NewCircle(rDelta float64, canvas geometry.Vec) *Circle {
	return &Circle{
		RDelta: rDelta,
		Center: canvas.Scale(0.5),
		Max:    math.Max(canvas.X, canvas.Y),
	}
}

// SetRDelta sets the ring spacing.
func (c *Circle) SetRDelta(rDelta float64) {
	c.RDelta = rDelta
}

// SetFromCanvas recentres the grid on the canvas and extends the outermost
// ring to cover it.
func (c *Circle) SetFromCanvas(canvas geometry.Vec) {
	c.Center = canvas.Scale(0.5)
	c.Max = math.Max(canvas.X, canvas.Y)
}

// Radii returns the ring radii out to Max. A non-positive spacing yields no
// rings.
func (c *Circle) Radii() []float64 {
	if c.RDelta <= 0 {
		return nil
	}

	var radii []float64
	for r := c.RDelta; r < c.Max; r += c.RDelta {
		radii = append(radii, r)
	}
	return radii
}
