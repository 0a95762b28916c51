package export

import (
	"fmt"
	"strconv"
	"strings"

	"graphed/geometry"
	"graphed/render"
)

type raw string

func (r raw) SVGString() string {
	return string(r)
}

type viewBox struct {
	width, height float64
}

func (v viewBox) SVGString() string {
	return fmt.Sprintf(`viewBox="0 0 %s %s"`, fnum(v.width), fnum(v.height))
}

// fnum formats a coordinate without a trailing exponent or padding zeros.
func fnum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func hex(c render.Color) string {
	return c.Hex()
}

func svgCircle(position geometry.Vec, radius float64, color render.Color) string {
	return fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"/>\n",
		fnum(position.X), fnum(position.Y), fnum(radius), hex(color))
}

// LabelItem serialises a text label.
type LabelItem struct {
	Label render.DrawableLabel
}

func (i LabelItem) SVGString() string {
	return fmt.Sprintf("<text x=\"%s\" y=\"%s\" fill=\"%s\" font-size=\"24\">%s</text>\n",
		fnum(i.Label.Position.X), fnum(i.Label.Position.Y), hex(i.Label.Color), i.Label.Content)
}

// VertexItem serialises a composed vertex: the border circle first, then the
// main circle on top, sharing a centre.
type VertexItem struct {
	Vertex render.DrawableVertex
}

func (i VertexItem) SVGString() string {
	var b strings.Builder

	b.WriteString(svgCircle(i.Vertex.Position, i.Vertex.BorderRadius, i.Vertex.BorderColor))
	b.WriteString(svgCircle(i.Vertex.Position, i.Vertex.MainRadius, i.Vertex.MainColor))

	if i.Vertex.Label != nil {
		b.WriteString(LabelItem{Label: *i.Vertex.Label}.SVGString())
	}

	return b.String()
}

// EdgeItem serialises a composed edge as a straight stroked line.
type EdgeItem struct {
	Edge render.DrawableEdge
}

func (i EdgeItem) SVGString() string {
	var b strings.Builder

	fmt.Fprintf(&b, "<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
		fnum(i.Edge.Start.X), fnum(i.Edge.Start.Y),
		fnum(i.Edge.End.X), fnum(i.Edge.End.Y),
		hex(i.Edge.Color), fnum(i.Edge.Width))

	if i.Edge.Label != nil {
		b.WriteString(LabelItem{Label: *i.Edge.Label}.SVGString())
	}

	return b.String()
}

// GraphItem serialises a whole composed graph, edges underneath vertices.
type GraphItem struct {
	Graph *render.DrawableGraph
}

func (i GraphItem) SVGString() string {
	var b strings.Builder

	for _, edge := range i.Graph.Edges {
		b.WriteString(EdgeItem{Edge: edge}.SVGString())
	}

	for _, vertex := range i.Graph.Vertices {
		b.WriteString(VertexItem{Vertex: vertex}.SVGString())
	}

	return b.String()
}
