// Package embedding owns the per-vertex and per-edge visual state of a graph
// together with the interaction and layout passes that mutate it: pointer
// driven hover/drag/click handling, the pairwise force simulation, grid
// alignment, and the navigable highlight history.
//
// All state is owned by a single Embedding and is meant to be driven from one
// goroutine, one pointer sample per frame.
package embedding

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	"graphed/geometry"
	"graphed/graph"
)

// DrawState selects how a vertex or edge is painted.
type DrawState int

const (
	StateDefault DrawState = iota
	StateHighlighted
	StateUnhighlighted
	StateHidden
)

// Cycle advances to the next draw state, wrapping from Hidden back to
// Default.
func (s DrawState) Cycle() DrawState {
	switch s {
	case StateDefault:
		return StateHighlighted
	case StateHighlighted:
		return StateUnhighlighted
	case StateUnhighlighted:
		return StateHidden
	default:
		return StateDefault
	}
}

// String returns the draw state's name.
func (s DrawState) String() string {
	switch s {
	case StateDefault:
		return "Default"
	case StateHighlighted:
		return "Highlighted"
	case StateUnhighlighted:
		return "Unhighlighted"
	case StateHidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

// VertexState is the visual state of one vertex, addressed by the vertex's
// index in the graph.
type VertexState struct {
	Position  geometry.Vec
	HitRadius float64
	DrawState DrawState
}

// EdgeState is the visual state of one edge, in the graph's edge order.
type EdgeState struct {
	Vertices  [2]int
	Width     float64
	DrawState DrawState
}

// Config groups the interaction and layout constants so tests can override
// thresholds without depending on real timing.
type Config struct {
	// DragDuration is how long a press must be held before it counts as a
	// drag; releases under it count as clicks.
	DragDuration time.Duration
	// DragDistance is how far the pointer must move from the press point
	// before the press counts as a drag.
	DragDistance float64

	// VertexHitRadius is the default hit radius given to new vertex states.
	VertexHitRadius float64
	// EdgeWidth is the default width given to new edge states.
	EdgeWidth float64
	// LayoutMargin is kept between the initial vertex circle and the canvas
	// edge.
	LayoutMargin float64

	// EdgeSpring is the distance at which edge attraction crosses zero.
	EdgeSpring float64
	// RepulseScale scales the non-edge repulsion. Negative pushes apart.
	RepulseScale float64
	// RepulseFalloff is the distance over which repulsion halves.
	RepulseFalloff float64
	// AlignGain scales the grid alignment force.
	AlignGain float64

	// Now supplies the current time to the gesture classifier. Defaults to
	// time.Now.
	Now func() time.Time
	// Rand supplies the jitter applied to coincident vertices. Defaults to a
	// time-seeded source.
	Rand *rand.Rand
	// Logger receives consistency warnings. Defaults to slog.Default.
	Logger *slog.Logger
}

// DefaultConfig returns the standard interaction and layout constants.
func DefaultConfig() Config {
	return Config{
		DragDuration:    125 * time.Millisecond,
		DragDistance:    5,
		VertexHitRadius: 17,
		EdgeWidth:       5,
		LayoutMargin:    50,
		EdgeSpring:      70,
		RepulseScale:    -50,
		RepulseFalloff:  20,
		AlignGain:       5,
	}
}

func (c Config) withDefaults() Config {
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Embedding assigns 2D positions to a graph's vertices plus all interactive
// and visual state layered on top. The graph itself stays owned by the
// caller; the embedding only borrows it for layout passes.
type Embedding struct {
	Vertices []VertexState
	Edges    []EdgeState

	// HoveredVertex, HoveredEdge and DraggedVertex are -1 when unset.
	HoveredVertex int
	HoveredEdge   int
	DraggedVertex int

	drag    *dragState
	gesture GestureClassifier

	history      []*graph.Graph
	historyIndex int // -1 when no entry is current

	canvas geometry.Vec
	cfg    Config
}

type dragState struct {
	vertex  int
	pointer geometry.Vec
}

// New builds an embedding for g on a canvas of the given size. Vertices are
// placed evenly on a circle, vertex 0 at the top, continuing clockwise.
func New(g *graph.Graph, canvas geometry.Vec, cfg Config) *Embedding {
	cfg = cfg.withDefaults()

	center := canvas.Scale(0.5)
	tauPart := 2 * math.Pi / float64(g.Vertices)
	radius := math.Min(canvas.X, canvas.Y)/2 - cfg.LayoutMargin

	vertices := make([]VertexState, 0, g.Vertices)
	for i := 0; i < g.Vertices; i++ {
		angle := float64(i) * tauPart
		offset := geometry.Vec{
			X: math.Sin(angle) * radius,
			Y: -math.Cos(angle) * radius,
		}

		vertices = append(vertices, VertexState{
			Position:  center.Add(offset),
			HitRadius: cfg.VertexHitRadius,
		})
	}

	e := &Embedding{
		Vertices:      vertices,
		HoveredVertex: -1,
		HoveredEdge:   -1,
		DraggedVertex: -1,
		historyIndex:  -1,
		canvas:        canvas,
		cfg:           cfg,
	}
	e.gesture = NewGestureClassifier(cfg.DragDuration, cfg.DragDistance)
	e.UpdateEdges(g)

	return e
}

// UpdateEdges replaces the edge states from g's edge list. Vertex positions
// and states are untouched; this backs the "keep vertex positions" re-import
// mode.
func (e *Embedding) UpdateEdges(g *graph.Graph) {
	edges := make([]EdgeState, 0, len(g.Edges))
	for _, edge := range g.Edges {
		edges = append(edges, EdgeState{
			Vertices: edge,
			Width:    e.cfg.EdgeWidth,
		})
	}
	e.Edges = edges
}

// Canvas returns the canvas size positions are clamped to.
func (e *Embedding) Canvas() geometry.Vec {
	return e.canvas
}

// SetCanvas updates the canvas size used for clamping and grid placement.
func (e *Embedding) SetCanvas(canvas geometry.Vec) {
	e.canvas = canvas
}

// Position returns the position of vertex, or the zero vector when vertex is
// out of range. The sentinel is deliberate: lookups never fail.
func (e *Embedding) Position(vertex int) geometry.Vec {
	if vertex < 0 || vertex >= len(e.Vertices) {
		return geometry.Vec{}
	}
	return e.Vertices[vertex].Position
}

// SetPosition overwrites the position of vertex. Indexes beyond the current
// length grow the collection with default states up to and including vertex.
// The sparse growth is kept for compatibility; the intended control flow
// never reaches it.
func (e *Embedding) SetPosition(vertex int, position geometry.Vec) {
	if vertex < 0 {
		return
	}

	for len(e.Vertices) <= vertex {
		e.Vertices = append(e.Vertices, VertexState{HitRadius: e.cfg.VertexHitRadius})
	}

	e.Vertices[vertex].Position = position
}

// VertexAt returns the first vertex, by ascending index, whose distance to
// position is strictly inside its hit radius, or -1 when none is.
func (e *Embedding) VertexAt(position geometry.Vec) int {
	for index, vertex := range e.Vertices {
		if geometry.Dist(position, vertex.Position) < vertex.HitRadius {
			return index
		}
	}
	return -1
}

// EdgeAt returns the first edge, by ascending index, whose widened bounding
// box contains position and whose carrying line passes within the edge's
// width of it, or -1 when none does. The line test intentionally extends past
// the segment's ends; see geometry.DistToLine.
func (e *Embedding) EdgeAt(position geometry.Vec) int {
	for index, edge := range e.Edges {
		start := e.Position(edge.Vertices[0])
		end := e.Position(edge.Vertices[1])
		width := edge.Width

		minX, maxX := math.Min(start.X, end.X)-width, math.Max(start.X, end.X)+width
		minY, maxY := math.Min(start.Y, end.Y)-width, math.Max(start.Y, end.Y)+width

		if minX <= position.X && position.X <= maxX &&
			minY <= position.Y && position.Y <= maxY {
			if geometry.DistToLine(start, end, position) < width {
				return index
			}
		}
	}
	return -1
}

// HandlePointerSample advances the interaction state machine with one pointer
// sample. It is meant to be called exactly once per frame.
func (e *Embedding) HandlePointerSample(down bool, position geometry.Vec) {
	now := e.cfg.Now()
	e.gesture.Sample(down, position, now)

	// An active drag has exclusive control until the gesture ends.
	if e.drag != nil {
		vertex := e.drag.vertex

		if e.gesture.Dragging(position, now) {
			delta := position.Sub(e.drag.pointer)
			e.SetPosition(vertex, e.Position(vertex).Add(delta))
			e.drag.pointer = position
		} else {
			e.drag = nil
			e.DraggedVertex = -1
		}
		return
	}

	hoveredVertex := e.VertexAt(position)
	hoveredEdge := e.EdgeAt(position)

	if !e.gesture.Dragging(position, now) {
		e.HoveredVertex = hoveredVertex
	} else {
		e.HoveredVertex = -1

		if hoveredVertex >= 0 {
			e.DraggedVertex = hoveredVertex
			e.drag = &dragState{vertex: hoveredVertex, pointer: position}
		}
	}

	// Vertex hover wins over edge hover.
	if hoveredVertex < 0 {
		e.HoveredEdge = hoveredEdge
	} else {
		e.HoveredEdge = -1
	}

	if e.gesture.Clicked() {
		if e.HoveredVertex >= 0 {
			e.Vertices[e.HoveredVertex].DrawState = e.Vertices[e.HoveredVertex].DrawState.Cycle()
		}

		if e.HoveredEdge >= 0 {
			e.Edges[e.HoveredEdge].DrawState = e.Edges[e.HoveredEdge].DrawState.Cycle()
		}
	}
}
