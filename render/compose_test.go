package render

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"graphed/embedding"
	"graphed/geometry"
	"graphed/graph"
)

func testEmbedding(t *testing.T) *embedding.Embedding {
	t.Helper()

	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)

	cfg := embedding.DefaultConfig()
	cfg.Now = func() time.Time { return time.Unix(0, 0) }
	cfg.Rand = rand.New(rand.NewSource(1))
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	return embedding.New(g, geometry.Vec{X: 400, Y: 400}, cfg)
}

func TestComposeCounts(t *testing.T) {
	emb := testEmbedding(t)
	d := Compose(emb, DefaultStyle())

	if len(d.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(d.Vertices))
	}
	if len(d.Edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(d.Edges))
	}
}

func TestComposeReversesVertexOrder(t *testing.T) {
	emb := testEmbedding(t)
	d := Compose(emb, DefaultStyle())

	// Vertex 0 paints last, so it comes last in the list.
	if d.Vertices[0].Position != emb.Vertices[3].Position {
		t.Error("first drawable should be the highest-index vertex")
	}
	if d.Vertices[3].Position != emb.Vertices[0].Position {
		t.Error("last drawable should be vertex 0")
	}
}

func TestComposeHiddenVertex(t *testing.T) {
	emb := testEmbedding(t)
	emb.Vertices[2].DrawState = embedding.StateHidden

	d := Compose(emb, DefaultStyle())
	if len(d.Vertices) != 3 {
		t.Fatalf("hidden vertex should be skipped, got %d vertices", len(d.Vertices))
	}

	// Hovering the hidden vertex brings it back.
	emb.HoveredVertex = 2
	d = Compose(emb, DefaultStyle())
	if len(d.Vertices) != 4 {
		t.Fatalf("hovered hidden vertex should reappear, got %d vertices", len(d.Vertices))
	}
}

func TestComposeHoverOverride(t *testing.T) {
	emb := testEmbedding(t)
	emb.HoveredVertex = 1

	style := DefaultStyle()
	d := Compose(emb, style)

	// Reverse order: index 1 sits at position 2 in the list.
	hovered := d.Vertices[2]
	if hovered.MainRadius != style.Vertex.MainSize+2 {
		t.Errorf("hover should grow the main radius by 2, got %v", hovered.MainRadius)
	}
	if hovered.MainColor != style.Vertex.HighlightColor {
		t.Error("hover should recolor the vertex")
	}
}

func TestComposeDragOverride(t *testing.T) {
	emb := testEmbedding(t)
	emb.DraggedVertex = 0

	style := DefaultStyle()
	d := Compose(emb, style)

	dragged := d.Vertices[3]
	if dragged.MainColor != style.Vertex.DragColor {
		t.Error("dragging should recolor the vertex")
	}
}

func TestComposeVertexLabels(t *testing.T) {
	emb := testEmbedding(t)

	style := DefaultStyle()
	style.Vertex.DrawIndex = true

	d := Compose(emb, style)
	if d.Vertices[3].Label == nil || d.Vertices[3].Label.Content != "1" {
		t.Error("one-indexed labels should start at 1")
	}

	style.Vertex.ZeroIndexed = true
	d = Compose(emb, style)
	if d.Vertices[3].Label.Content != "0" {
		t.Error("zero-indexed labels should start at 0")
	}

	style.Vertex.DrawIndex = false
	d = Compose(emb, style)
	if d.Vertices[3].Label != nil {
		t.Error("labels should be absent when disabled")
	}
}

func TestComposeEdgePairingIndex(t *testing.T) {
	emb := testEmbedding(t)

	style := DefaultStyle()
	style.Edge.DrawIndex = true
	style.Edge.ZeroIndexed = true

	d := Compose(emb, style)

	// Edge (1,3): 3·2/2 + 1 = 4.
	if d.Edges[2].Label == nil || d.Edges[2].Label.Content != "4" {
		t.Errorf("expected pairing index 4, got %v", d.Edges[2].Label)
	}
}

func TestComposeHiddenEdge(t *testing.T) {
	emb := testEmbedding(t)
	emb.Edges[1].DrawState = embedding.StateHidden

	d := Compose(emb, DefaultStyle())
	if len(d.Edges) != 2 {
		t.Fatalf("hidden edge should be skipped, got %d", len(d.Edges))
	}

	emb.HoveredEdge = 1
	d = Compose(emb, DefaultStyle())
	if len(d.Edges) != 3 {
		t.Fatalf("hovered hidden edge should reappear, got %d", len(d.Edges))
	}
}

func TestStateColorsPureLookup(t *testing.T) {
	style := DefaultVertexStyle()

	main, border := style.StateColors(embedding.StateDefault)
	if main != style.MainColor || border != style.BorderColor {
		t.Error("default state should use the base colors")
	}

	main, border = style.StateColors(embedding.StateHidden)
	if main != Transparent || border != Transparent {
		t.Error("hidden state should be transparent")
	}

	if DefaultEdgeStyle().StateColor(embedding.StateUnhighlighted) != DefaultEdgeStyle().UnhighlightColor {
		t.Error("unhighlighted edges should use the unhighlight color")
	}
}
