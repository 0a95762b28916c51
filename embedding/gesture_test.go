package embedding

import (
	"testing"
	"time"

	"graphed/geometry"
)

func TestGestureClickUnderThreshold(t *testing.T) {
	c := NewGestureClassifier(125*time.Millisecond, 5)
	start := time.Unix(0, 0)
	pos := geometry.Vec{X: 10, Y: 10}

	c.Sample(true, pos, start)
	if c.Clicked() {
		t.Error("press alone must not fire a click")
	}
	if c.Dragging(pos, start) {
		t.Error("fresh press must not report dragging")
	}

	c.Sample(false, pos, start.Add(50*time.Millisecond))
	if !c.Clicked() {
		t.Error("release under the duration threshold must fire a click")
	}

	c.Sample(false, pos, start.Add(60*time.Millisecond))
	if c.Clicked() {
		t.Error("click must fire for exactly one sample")
	}
}

func TestGestureNoClickAfterLongHold(t *testing.T) {
	c := NewGestureClassifier(125*time.Millisecond, 5)
	start := time.Unix(0, 0)
	pos := geometry.Vec{}

	c.Sample(true, pos, start)
	c.Sample(false, pos, start.Add(200*time.Millisecond))
	if c.Clicked() {
		t.Error("release past the duration threshold must not fire a click")
	}
}

func TestGestureDragByDuration(t *testing.T) {
	c := NewGestureClassifier(125*time.Millisecond, 5)
	start := time.Unix(0, 0)
	pos := geometry.Vec{}

	c.Sample(true, pos, start)
	if c.Dragging(pos, start.Add(100*time.Millisecond)) {
		t.Error("hold under the threshold is not a drag")
	}
	if !c.Dragging(pos, start.Add(126*time.Millisecond)) {
		t.Error("hold past the threshold is a drag")
	}
}

func TestGestureDragByDistance(t *testing.T) {
	c := NewGestureClassifier(125*time.Millisecond, 5)
	start := time.Unix(0, 0)

	c.Sample(true, geometry.Vec{}, start)

	// Displacement is measured from the press point, not frame to frame.
	if c.Dragging(geometry.Vec{X: 4}, start) {
		t.Error("movement under the distance threshold is not a drag")
	}
	if !c.Dragging(geometry.Vec{X: 6}, start) {
		t.Error("movement past the distance threshold is a drag")
	}
}

func TestGestureUpWhileIdle(t *testing.T) {
	c := NewGestureClassifier(125*time.Millisecond, 5)

	c.Sample(false, geometry.Vec{}, time.Unix(0, 0))
	if c.Clicked() || c.Dragging(geometry.Vec{}, time.Unix(0, 0)) {
		t.Error("nothing fires without a press")
	}
}
