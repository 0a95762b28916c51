package embedding

import (
	"math"

	"graphed/geometry"
	"graphed/graph"
	"graphed/grid"
)

// ApplyForce runs one O(V²) pass of the pairwise force model over g and
// integrates the result. Adjacent vertices attract towards the spring
// distance; non-adjacent vertices repel with exponential falloff. Coincident
// vertices receive a random jitter to break the degeneracy.
func (e *Embedding) ApplyForce(g *graph.Graph) {
	forces := make([]geometry.Vec, 0, g.Vertices)

	for mainVertex := 0; mainVertex < g.Vertices; mainVertex++ {
		var totalForce geometry.Vec

		mainPosition := e.Position(mainVertex)

		for secondaryVertex := 0; secondaryVertex < g.Vertices; secondaryVertex++ {
			if secondaryVertex == mainVertex {
				continue
			}

			secondaryPosition := e.Position(secondaryVertex)
			distance := geometry.Dist(mainPosition, secondaryPosition)

			var force geometry.Vec
			if distance == 0 {
				force = geometry.Vec{
					X: e.cfg.Rand.Float64()*2 - 1,
					Y: e.cfg.Rand.Float64()*2 - 1,
				}
			} else {
				direction := geometry.Normalize(secondaryPosition.Sub(mainPosition))

				var magnitude float64
				if g.HasEdge(mainVertex, secondaryVertex) {
					magnitude = math.Log10(distance / e.cfg.EdgeSpring)
				} else {
					magnitude = e.cfg.RepulseScale * math.Pow(0.5, distance/e.cfg.RepulseFalloff)
				}

				force = direction.Scale(magnitude)
			}

			totalForce = totalForce.Add(force)
		}

		forces = append(forces, totalForce)
	}

	e.ApplyForces(forces)
}

// parabola peaks at 1 when x == topX and crosses zero at 0 and 2·topX.
func parabola(x, topX float64) float64 {
	x = x / (2 * topX)
	return 4 * (x - x*x)
}

// AlignToSquare pulls every vertex towards its nearest grid intersection,
// with a parabolic force profile that vanishes both on the intersection and
// midway between intersections.
func (e *Embedding) AlignToSquare(g *grid.Square) {
	forces := make([]geometry.Vec, 0, len(e.Vertices))

	deltaAvg := g.DeltaAvg()

	for _, vertex := range e.Vertices {
		position := vertex.Position
		closest := geometry.Vec{
			X: math.Round((position.X-g.XOffset)/g.XDelta)*g.XDelta + g.XOffset,
			Y: math.Round((position.Y-g.YOffset)/g.YDelta)*g.YDelta + g.YOffset,
		}
		distance := geometry.Dist(closest, position)

		var force geometry.Vec
		if distance > 0 {
			direction := geometry.Normalize(closest.Sub(position))
			magnitude := e.cfg.AlignGain * parabola(distance, deltaAvg)
			force = direction.Scale(magnitude)
		}

		forces = append(forces, force)
	}

	e.ApplyForces(forces)
}

// AlignToCircle pushes every vertex radially towards its nearest ring. The
// force is signed away from the half-spacing boundary so vertices sitting
// near the midpoint between rings do not oscillate. Vertices on the grid
// centre have no radial direction and are left alone.
func (e *Embedding) AlignToCircle(g *grid.Circle) {
	forces := make([]geometry.Vec, 0, len(e.Vertices))

	for _, vertex := range e.Vertices {
		position := vertex.Position

		var force geometry.Vec
		if direction, ok := geometry.TryNormalize(position.Sub(g.Center)); ok {
			centerDistance := geometry.Dist(g.Center, position)
			distanceMod := math.Mod(centerDistance, g.RDelta)

			sign := -1.0
			if distanceMod-0.5*g.RDelta >= 0 {
				sign = 1.0
			}

			magnitude := e.cfg.AlignGain * parabola(distanceMod, 0.5*g.RDelta)
			force = direction.Scale(sign * magnitude)
		}

		forces = append(forces, force)
	}

	e.ApplyForces(forces)
}

// ApplyForces adds one force per vertex to its position and clamps the
// result to the canvas. A length mismatch skips the whole pass with a
// warning; the frame loop carries on. The dragged vertex, if any, is exempt:
// the drag has exclusive control of its position.
func (e *Embedding) ApplyForces(forces []geometry.Vec) {
	if len(forces) != len(e.Vertices) {
		e.cfg.Logger.Warn("force and vertex state counts differ, skipping pass",
			"forces", len(forces), "vertices", len(e.Vertices))
		return
	}

	for vertex, force := range forces {
		if vertex == e.DraggedVertex {
			continue
		}

		newPosition := e.Position(vertex).Add(force)
		e.SetPosition(vertex, geometry.Clamp(newPosition, geometry.Vec{}, e.canvas))
	}
}
