package embedding

import (
	"time"

	"graphed/geometry"
)

// GestureClassifier turns a stream of pointer samples into discrete click and
// drag signals. A press that is released before the duration threshold is a
// click; a press held past it, or moved past the distance threshold from the
// original press point, is a drag.
type GestureClassifier struct {
	pressTime time.Time
	pressPos  geometry.Vec
	pressed   bool

	clickedThisSample bool

	dragDuration time.Duration
	dragDistance float64
}

// NewGestureClassifier returns a classifier with the given thresholds.
func NewGestureClassifier(dragDuration time.Duration, dragDistance float64) GestureClassifier {
	return GestureClassifier{
		dragDuration: dragDuration,
		dragDistance: dragDistance,
	}
}

// Sample feeds one pointer sample to the classifier. Call it once per frame
// before querying Dragging or Clicked.
func (c *GestureClassifier) Sample(down bool, position geometry.Vec, now time.Time) {
	c.clickedThisSample = false

	if down {
		if !c.pressed {
			c.pressed = true
			c.pressTime = now
			c.pressPos = position
		}
	} else if c.pressed {
		c.clickedThisSample = now.Sub(c.pressTime) < c.dragDuration
		c.pressed = false
	}
}

// Dragging reports whether the active press has crossed the duration or
// distance threshold. Displacement is measured from the original press point,
// not frame to frame.
func (c *GestureClassifier) Dragging(position geometry.Vec, now time.Time) bool {
	if !c.pressed {
		return false
	}

	return now.Sub(c.pressTime) > c.dragDuration ||
		geometry.Dist(c.pressPos, position) > c.dragDistance
}

// Clicked reports whether the sample fed last fired a click. It is true for
// exactly that one sample.
func (c *GestureClassifier) Clicked() bool {
	return c.clickedThisSample
}
