package embedding

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphed/geometry"
	"graphed/graph"
)

// fakeClock lets tests cross the gesture thresholds without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testConfig(clock *fakeClock) Config {
	cfg := DefaultConfig()
	cfg.Now = clock.now
	cfg.Rand = rand.New(rand.NewSource(1))
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return cfg
}

func testGraph() *graph.Graph {
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(0, 3)
	g.AddEdge(1, 3)
	return g
}

func testEmbedding(t *testing.T) (*Embedding, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(0, 0)}
	return New(testGraph(), geometry.Vec{X: 800, Y: 600}, testConfig(clock)), clock
}

func TestNewPlacesVerticesOnCircle(t *testing.T) {
	e, _ := testEmbedding(t)

	require.Len(t, e.Vertices, 4)
	require.Len(t, e.Edges, 5)

	center := geometry.Vec{X: 400, Y: 300}
	radius := 600.0/2 - 50

	// Vertex 0 sits at the top of the circle.
	top := e.Vertices[0].Position
	assert.InDelta(t, center.X, top.X, 1e-9)
	assert.InDelta(t, center.Y-radius, top.Y, 1e-9)

	// All vertices lie on the circle.
	for i, v := range e.Vertices {
		assert.InDelta(t, radius, geometry.Dist(center, v.Position), 1e-9, "vertex %d", i)
	}

	assert.Equal(t, -1, e.HoveredVertex)
	assert.Equal(t, -1, e.HoveredEdge)
	assert.Equal(t, -1, e.DraggedVertex)
	assert.Equal(t, 0, e.HistorySize())
}

func TestNewEmptyGraph(t *testing.T) {
	clock := &fakeClock{}
	e := New(graph.New(0), geometry.Vec{X: 100, Y: 100}, testConfig(clock))
	assert.Empty(t, e.Vertices)
	assert.Empty(t, e.Edges)
}

func TestUpdateEdgesKeepsPositions(t *testing.T) {
	e, _ := testEmbedding(t)

	before := make([]geometry.Vec, len(e.Vertices))
	for i, v := range e.Vertices {
		before[i] = v.Position
	}

	replacement := graph.New(4)
	replacement.AddEdge(0, 2)
	replacement.AddEdge(1, 3)
	e.UpdateEdges(replacement)

	require.Len(t, e.Edges, 2)
	assert.Equal(t, [2]int{0, 2}, e.Edges[0].Vertices)

	for i, v := range e.Vertices {
		assert.Equal(t, before[i], v.Position, "vertex %d moved", i)
	}
}

func TestPositionOutOfRangeReturnsZero(t *testing.T) {
	e, _ := testEmbedding(t)

	assert.Equal(t, geometry.Vec{}, e.Position(-1))
	assert.Equal(t, geometry.Vec{}, e.Position(100))
}

func TestSetPositionGrowsSparsely(t *testing.T) {
	e, _ := testEmbedding(t)

	p := geometry.Vec{X: 10, Y: 20}
	e.SetPosition(6, p)

	require.Len(t, e.Vertices, 7)
	assert.Equal(t, p, e.Vertices[6].Position)

	// Entries grown along the way carry default state.
	assert.Equal(t, geometry.Vec{}, e.Vertices[4].Position)
	assert.Equal(t, e.cfg.VertexHitRadius, e.Vertices[4].HitRadius)
}

func TestVertexAt(t *testing.T) {
	e, _ := testEmbedding(t)

	t.Run("exact position always hits", func(t *testing.T) {
		for i := range e.Vertices {
			assert.Equal(t, i, e.VertexAt(e.Vertices[i].Position))
		}
	})

	t.Run("miss returns -1", func(t *testing.T) {
		assert.Equal(t, -1, e.VertexAt(geometry.Vec{X: -500, Y: -500}))
	})

	t.Run("ties break to the lowest index", func(t *testing.T) {
		e.SetPosition(2, e.Vertices[1].Position)
		assert.Equal(t, 1, e.VertexAt(e.Vertices[1].Position))
	})
}

func TestEdgeAt(t *testing.T) {
	clock := &fakeClock{}
	g := graph.New(2)
	g.AddEdge(0, 1)
	e := New(g, geometry.Vec{X: 400, Y: 400}, testConfig(clock))

	e.SetPosition(0, geometry.Vec{X: 100, Y: 100})
	e.SetPosition(1, geometry.Vec{X: 200, Y: 100})

	t.Run("on the segment", func(t *testing.T) {
		assert.Equal(t, 0, e.EdgeAt(geometry.Vec{X: 150, Y: 102}))
	})

	t.Run("outside the bounding box", func(t *testing.T) {
		assert.Equal(t, -1, e.EdgeAt(geometry.Vec{X: 150, Y: 150}))
	})

	t.Run("beyond the endpoint but inside the widened box", func(t *testing.T) {
		// The hit test measures distance to the carrying line, not to the
		// segment, so this point still registers.
		assert.Equal(t, 0, e.EdgeAt(geometry.Vec{X: 203, Y: 100}))
	})
}

func TestHandlePointerSampleHover(t *testing.T) {
	e, _ := testEmbedding(t)

	target := e.Vertices[1].Position
	e.HandlePointerSample(false, target)

	assert.Equal(t, 1, e.HoveredVertex)
	assert.Equal(t, -1, e.HoveredEdge, "vertex hover wins over edge hover")

	e.HandlePointerSample(false, geometry.Vec{X: -100, Y: -100})
	assert.Equal(t, -1, e.HoveredVertex)
}

func TestClickCyclesDrawState(t *testing.T) {
	e, clock := testEmbedding(t)
	target := e.Vertices[0].Position

	click := func() {
		e.HandlePointerSample(true, target)
		clock.advance(50 * time.Millisecond)
		e.HandlePointerSample(false, target)
	}

	click()
	assert.Equal(t, StateHighlighted, e.Vertices[0].DrawState)

	click()
	click()
	click()
	assert.Equal(t, StateDefault, e.Vertices[0].DrawState, "four clicks return to the original state")
}

func TestDragMovesVertex(t *testing.T) {
	e, clock := testEmbedding(t)

	start := e.Vertices[2].Position

	e.HandlePointerSample(true, start)
	clock.advance(200 * time.Millisecond) // past the drag duration threshold
	e.HandlePointerSample(true, start)

	require.Equal(t, 2, e.DraggedVertex)
	assert.Equal(t, -1, e.HoveredVertex, "hover clears once dragging starts")

	moved := start.Add(geometry.Vec{X: 30, Y: -10})
	e.HandlePointerSample(true, moved)
	assert.Equal(t, start.Add(geometry.Vec{X: 30, Y: -10}), e.Vertices[2].Position)

	e.HandlePointerSample(false, moved)
	assert.Equal(t, -1, e.DraggedVertex, "release ends the drag")
}

func TestDragByDistanceThreshold(t *testing.T) {
	e, _ := testEmbedding(t)

	start := e.Vertices[0].Position

	e.HandlePointerSample(true, start)
	// No time passes, but the pointer moves past the distance threshold.
	far := start.Add(geometry.Vec{X: 10})
	e.HandlePointerSample(true, far)

	assert.Equal(t, 0, e.DraggedVertex)
}

func TestDraggedVertexExemptFromForces(t *testing.T) {
	e, clock := testEmbedding(t)

	start := e.Vertices[1].Position
	e.HandlePointerSample(true, start)
	clock.advance(200 * time.Millisecond)
	e.HandlePointerSample(true, start)
	require.Equal(t, 1, e.DraggedVertex)

	held := e.Vertices[1].Position

	forces := make([]geometry.Vec, len(e.Vertices))
	for i := range forces {
		forces[i] = geometry.Vec{X: 50, Y: 50}
	}
	e.ApplyForces(forces)

	assert.Equal(t, held, e.Vertices[1].Position, "drag keeps exclusive control")
	assert.NotEqual(t, e.Vertices[0].Position, held, "other vertices still move")
}

func TestApplyForcesClampsToCanvas(t *testing.T) {
	e, _ := testEmbedding(t)

	forces := make([]geometry.Vec, len(e.Vertices))
	for i := range forces {
		forces[i] = geometry.Vec{X: 1e6, Y: -1e6}
	}
	e.ApplyForces(forces)

	for i, v := range e.Vertices {
		assert.GreaterOrEqual(t, v.Position.X, 0.0, "vertex %d", i)
		assert.LessOrEqual(t, v.Position.X, 800.0, "vertex %d", i)
		assert.GreaterOrEqual(t, v.Position.Y, 0.0, "vertex %d", i)
		assert.LessOrEqual(t, v.Position.Y, 600.0, "vertex %d", i)
	}
}

func TestApplyForcesLengthMismatchSkips(t *testing.T) {
	e, _ := testEmbedding(t)

	before := e.Vertices[0].Position
	e.ApplyForces([]geometry.Vec{{X: 100}})
	assert.Equal(t, before, e.Vertices[0].Position)
}

func TestApplyForceCoincidentVertices(t *testing.T) {
	e, _ := testEmbedding(t)

	// Stack everything on one point; the jitter path must not produce NaN.
	for i := range e.Vertices {
		e.SetPosition(i, geometry.Vec{X: 100, Y: 100})
	}

	g := testGraph()
	for i := 0; i < 10; i++ {
		e.ApplyForce(g)
	}

	for i, v := range e.Vertices {
		assert.False(t, math.IsNaN(v.Position.X), "vertex %d X is NaN", i)
		assert.False(t, math.IsNaN(v.Position.Y), "vertex %d Y is NaN", i)
	}
}

func TestDrawStateCycle(t *testing.T) {
	states := []DrawState{StateDefault, StateHighlighted, StateUnhighlighted, StateHidden}
	for _, s := range states {
		assert.Equal(t, s, s.Cycle().Cycle().Cycle().Cycle())
	}
	assert.Equal(t, StateHighlighted, StateDefault.Cycle())
	assert.Equal(t, StateDefault, StateHidden.Cycle())
}
