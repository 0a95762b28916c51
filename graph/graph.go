// Package graph holds the immutable graph model and the graph6 codec.
package graph

// Graph is a vertex count plus an undirected edge list. Edges conventionally
// store the smaller endpoint first. Duplicate edges are legal and kept; the
// list is never deduplicated.
type Graph struct {
	Vertices int
	Edges    [][2]int
}

// New returns a graph with the given vertex count and no edges.
func New(vertices int) *Graph {
	return &Graph{Vertices: vertices}
}

// AddEdge appends the edge (u, v) to the edge list as given.
func (g *Graph) AddEdge(u, v int) {
	g.Edges = append(g.Edges, [2]int{u, v})
}

// Contains reports whether exactly this endpoint pair appears in the edge
// list. Endpoint order matters; use HasEdge for the canonicalised test.
func (g *Graph) Contains(e [2]int) bool {
	for _, edge := range g.Edges {
		if edge == e {
			return true
		}
	}
	return false
}

// HasEdge reports whether the edge (u, v), canonicalised to smaller endpoint
// first, appears in the edge list.
func (g *Graph) HasEdge(u, v int) bool {
	if u > v {
		u, v = v, u
	}
	return g.Contains([2]int{u, v})
}
