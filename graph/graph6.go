package graph

import (
	"errors"
	"fmt"
)

// Decode errors. All malformed input is reported through one of these; the
// decoder never panics.
var (
	ErrEmptyString         = errors.New("graph6: empty string")
	ErrUnexpectedStringEnd = errors.New("graph6: unexpected end of string")
)

// InvalidStartCharacterError reports a leading byte outside the printable
// graph6 range.
type InvalidStartCharacterError struct {
	Char byte
}

func (e *InvalidStartCharacterError) Error() string {
	return fmt.Sprintf("graph6: invalid start character %q", e.Char)
}

// UnsupportedGraphSizeError reports a vertex count beyond what the decoder
// accepts.
type UnsupportedGraphSizeError struct {
	SupportedSize int
}

func (e *UnsupportedGraphSizeError) Error() string {
	return fmt.Sprintf("graph6: unsupported graph size, at most %d vertices are supported", e.SupportedSize)
}

// ParseGraph6 decodes a graph6 string into a Graph. The first byte (skipping
// the ">>graph6<<" escape prefix if present) carries the vertex count as
// byte-63; the remaining bytes carry the strict upper triangle of the
// adjacency matrix six bits at a time, most significant bit first, neighbour
// index increasing before vertex index.
func ParseGraph6(s string) (*Graph, error) {
	b := []byte(s)

	vertices, err := graph6VertexCount(b)
	if err != nil {
		return nil, err
	}

	start := 0
	if b[start] == '>' {
		start += 10
	}

	switch {
	case vertices <= 62:
		start++
	case vertices <= 64:
		start += 4
	default:
		return nil, &UnsupportedGraphSizeError{SupportedSize: 64}
	}

	g := New(vertices)

	currentVertex := 1
	currentNeighbour := 0

outer:
	for index := start; index < len(b); index++ {
		currentBits := b[index] - 63

		for currentBit := byte(1 << 5); currentBit != 0; currentBit >>= 1 {
			if currentBits&currentBit != 0 {
				g.AddEdge(currentNeighbour, currentVertex)
			}

			currentNeighbour++
			if currentNeighbour >= currentVertex {
				currentVertex++
				currentNeighbour = 0
			}

			if currentVertex >= vertices {
				break outer
			}
		}
	}

	return g, nil
}

func graph6VertexCount(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, ErrEmptyString
	}

	start := b[0]
	if (start < 63 || start > 126) && start != '>' {
		return 0, &InvalidStartCharacterError{Char: start}
	}

	index := 0
	if b[index] == '>' {
		index += 10
		if index >= len(b) {
			return 0, ErrUnexpectedStringEnd
		}
	}

	if b[index] < 126 {
		return int(b[index]) - 63, nil
	}

	return 0, &UnsupportedGraphSizeError{SupportedSize: 62}
}

// Graph6 encodes g in graph6 format. Edges are canonicalised before encoding,
// so endpoint order and duplicates do not affect the output. Graphs with more
// than 62 vertices are rejected.
func (g *Graph) Graph6() (string, error) {
	if g.Vertices > 62 {
		return "", &UnsupportedGraphSizeError{SupportedSize: 62}
	}

	adjacent := make(map[[2]int]bool, len(g.Edges))
	for _, edge := range g.Edges {
		u, v := edge[0], edge[1]
		if u > v {
			u, v = v, u
		}
		adjacent[[2]int{u, v}] = true
	}

	out := []byte{byte(g.Vertices + 63)}

	var bits byte
	nbits := 0
	for vertex := 1; vertex < g.Vertices; vertex++ {
		for neighbour := 0; neighbour < vertex; neighbour++ {
			bits <<= 1
			if adjacent[[2]int{neighbour, vertex}] {
				bits |= 1
			}
			nbits++
			if nbits == 6 {
				out = append(out, bits+63)
				bits, nbits = 0, 0
			}
		}
	}
	if nbits > 0 {
		bits <<= 6 - nbits
		out = append(out, bits+63)
	}

	return string(out), nil
}
