package render

import (
	"math"
	"strconv"

	"graphed/embedding"
	"graphed/geometry"
)

// DrawableGraph is an ordered list of draw primitives ready for a renderer
// or exporter. Edges come first in draw order; the vertex list is already in
// paint order (reversed, so vertex 0 paints last and stays on top).
type DrawableGraph struct {
	Vertices []DrawableVertex
	Edges    []DrawableEdge
}

// DrawableVertex is a border circle behind a main circle, with an optional
// index label.
type DrawableVertex struct {
	Position     geometry.Vec
	MainRadius   float64
	BorderRadius float64
	MainColor    Color
	BorderColor  Color
	Label        *DrawableLabel
}

// DrawableEdge is a straight segment with an optional index label.
type DrawableEdge struct {
	Start geometry.Vec
	End   geometry.Vec
	Width float64
	Color Color
	Label *DrawableLabel
}

// DrawableLabel is a positioned text label.
type DrawableLabel struct {
	Content  string
	Position geometry.Vec
	Size     float64
	Color    Color
}

// Compose projects the embedding's state through the style into draw
// primitives. Hidden vertices and edges are skipped unless currently hovered
// or dragged, so the user never loses track of what they are manipulating.
func Compose(emb *embedding.Embedding, style Style) *DrawableGraph {
	vertexStyle := style.Vertex

	vertices := make([]DrawableVertex, 0, len(emb.Vertices))

	for index := len(emb.Vertices) - 1; index >= 0; index-- {
		state := emb.Vertices[index]
		position := state.Position

		mainRadius := vertexStyle.MainSize
		borderRadius := vertexStyle.BorderSize + mainRadius

		mainColor, borderColor := vertexStyle.StateColors(state.DrawState)

		interacted := false

		if emb.HoveredVertex == index {
			mainRadius += 2
			borderRadius += 2

			mainColor = vertexStyle.HighlightColor
			borderColor = vertexStyle.HighlightColor

			interacted = true
		}

		if emb.DraggedVertex == index {
			mainColor = vertexStyle.DragColor
			borderColor = vertexStyle.DragColor

			interacted = true
		}

		if state.DrawState == embedding.StateHidden && !interacted {
			continue
		}

		var label *DrawableLabel
		if vertexStyle.DrawIndex {
			characterWidth := vertexStyle.LabelSize
			stringWidth := characterWidth
			if index >= 10 {
				stringWidth += characterWidth
			}

			offset := geometry.Vec{
				X: -stringWidth/2 + 9,
				Y: characterWidth/2 - 10,
			}

			content := strconv.Itoa(index + 1)
			if vertexStyle.ZeroIndexed {
				content = strconv.Itoa(index)
			}

			label = &DrawableLabel{
				Content:  content,
				Position: position.Add(offset),
				Size:     vertexStyle.LabelSize,
				Color:    vertexStyle.LabelColor,
			}
		}

		vertices = append(vertices, DrawableVertex{
			Position:     position,
			MainRadius:   mainRadius,
			BorderRadius: borderRadius,
			MainColor:    mainColor,
			BorderColor:  borderColor,
			Label:        label,
		})
	}

	edgeStyle := style.Edge

	var edges []DrawableEdge

	for index, edge := range emb.Edges {
		start := emb.Position(edge.Vertices[0])
		end := emb.Position(edge.Vertices[1])

		width := edgeStyle.Width
		color := edgeStyle.StateColor(edge.DrawState)

		hovered := false

		if emb.HoveredEdge == index {
			width += 2
			color = edgeStyle.HighlightColor
			hovered = true
		}

		if edge.DrawState == embedding.StateHidden && !hovered {
			continue
		}

		var label *DrawableLabel
		if edgeStyle.DrawIndex {
			label = edgeLabel(edge, start, end, edgeStyle)
		}

		edges = append(edges, DrawableEdge{
			Start: start,
			End:   end,
			Width: width,
			Color: color,
			Label: label,
		})
	}

	return &DrawableGraph{Vertices: vertices, Edges: edges}
}

// edgeLabel numbers an edge by the canonical pairing index of its endpoints
// and offsets the label away from the segment based on its angle quadrant.
func edgeLabel(edge embedding.EdgeState, start, end geometry.Vec, style EdgeStyle) *DrawableLabel {
	minVertex := min(edge.Vertices[0], edge.Vertices[1])
	maxVertex := max(edge.Vertices[0], edge.Vertices[1])

	labelIndex := maxVertex*(maxVertex-1)/2 + minVertex

	diff := end.Sub(start)
	angle := math.Mod(math.Atan2(diff.Y, diff.X)+math.Pi, math.Pi) - 0.3

	const xOffset, yOffset = 10.0, -10.0

	var offset geometry.Vec
	switch {
	case angle < math.Pi/4:
		offset = geometry.Vec{X: -xOffset, Y: yOffset}
	case angle < math.Pi/2:
		offset = geometry.Vec{X: xOffset, Y: yOffset}
	case angle < 3*math.Pi/4:
		offset = geometry.Vec{X: -xOffset, Y: yOffset}
	default:
		offset = geometry.Vec{X: xOffset, Y: yOffset}
	}

	content := strconv.Itoa(labelIndex + 1)
	if style.ZeroIndexed {
		content = strconv.Itoa(labelIndex)
	}

	return &DrawableLabel{
		Content:  content,
		Position: start.Add(end).Scale(0.5).Add(offset),
		Size:     style.LabelSize,
		Color:    style.LabelColor,
	}
}
