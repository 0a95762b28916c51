// Package render composes embedding state into renderer-agnostic draw
// primitives: circles, line segments and text labels. Composition is a pure
// projection; it never mutates the embedding and may run any number of times
// per frame.
package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"graphed/embedding"
)

// Color is an RGB color with an alpha channel. The RGB part is a
// colorful.Color so exporters can reuse its hex formatting.
type Color struct {
	colorful.Color
	Alpha float64
}

// RGB returns an opaque color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}, Alpha: 1}
}

// Transparent is fully invisible.
var Transparent = Color{}

// The default palette.
var (
	Black     = RGB(0, 0, 0)
	White     = RGB(1, 1, 1)
	SkyBlue   = RGB(0.40, 0.75, 1.00)
	DarkBlue  = RGB(0.00, 0.32, 0.67)
	Lime      = RGB(0.00, 0.62, 0.18)
	Maroon    = RGB(0.75, 0.13, 0.22)
	LightGray = RGB(0.78, 0.78, 0.78)
	Blue      = RGB(0.00, 0.47, 0.95)
)

// VertexStyle configures how vertices are painted.
type VertexStyle struct {
	MainColor   Color
	BorderColor Color
	MainSize    float64
	BorderSize  float64

	HighlightColor   Color
	UnhighlightColor Color
	DragColor        Color

	DrawIndex   bool
	ZeroIndexed bool
	LabelColor  Color
	LabelSize   float64
}

// DefaultVertexStyle returns the standard vertex style.
func DefaultVertexStyle() VertexStyle {
	return VertexStyle{
		MainColor:        SkyBlue,
		BorderColor:      DarkBlue,
		MainSize:         12,
		BorderSize:       5,
		HighlightColor:   Lime,
		UnhighlightColor: Maroon,
		DragColor:        DarkBlue,
		DrawIndex:        true,
		LabelColor:       Black,
		LabelSize:        35,
	}
}

// StateColors returns the base main and border colors for a draw state. The
// hover/drag override is a separate layer applied after this lookup.
func (s VertexStyle) StateColors(state embedding.DrawState) (main, border Color) {
	switch state {
	case embedding.StateHighlighted:
		return s.HighlightColor, s.HighlightColor
	case embedding.StateUnhighlighted:
		return s.UnhighlightColor, s.UnhighlightColor
	case embedding.StateHidden:
		return Transparent, Transparent
	default:
		return s.MainColor, s.BorderColor
	}
}

// EdgeStyle configures how edges are painted.
type EdgeStyle struct {
	Width float64
	Color Color

	HighlightColor   Color
	UnhighlightColor Color

	DrawIndex   bool
	ZeroIndexed bool
	LabelColor  Color
	LabelSize   float64
}

// DefaultEdgeStyle returns the standard edge style.
func DefaultEdgeStyle() EdgeStyle {
	return EdgeStyle{
		Width:            5,
		Color:            Black,
		HighlightColor:   Maroon,
		UnhighlightColor: LightGray,
		LabelColor:       Blue,
		LabelSize:        40,
	}
}

// StateColor returns the base color for a draw state. The hover override is a
// separate layer applied after this lookup.
func (s EdgeStyle) StateColor(state embedding.DrawState) Color {
	switch state {
	case embedding.StateHighlighted:
		return s.HighlightColor
	case embedding.StateUnhighlighted:
		return s.UnhighlightColor
	case embedding.StateHidden:
		return Transparent
	default:
		return s.Color
	}
}

// Style bundles the full draw configuration.
type Style struct {
	Vertex     VertexStyle
	Edge       EdgeStyle
	Background Color
}

// DefaultStyle returns the standard draw configuration.
func DefaultStyle() Style {
	return Style{
		Vertex:     DefaultVertexStyle(),
		Edge:       DefaultEdgeStyle(),
		Background: RGB(0.91, 0.91, 0.91),
	}
}
