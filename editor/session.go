// Package editor ties the graph model, the embedding engine, the grids and
// the composer together into one interactive session driven a frame at a
// time.
package editor

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"graphed/embedding"
	"graphed/export"
	"graphed/geometry"
	"graphed/graph"
	"graphed/grid"
	"graphed/render"
)

// Options holds the user-facing toggles normally flipped from a control
// panel.
type Options struct {
	ApplyForce  bool
	AlignSquare bool
	AlignCircle bool
	GridSize    float64

	// KeepPositions keeps the current vertex positions on import and only
	// replaces the edges.
	KeepPositions bool

	Style render.Style
}

// DefaultOptions returns the startup toggles.
func DefaultOptions() Options {
	return Options{
		GridSize: 30,
		Style:    render.DefaultStyle(),
	}
}

// Session owns the canonical graph and everything layered on it. All methods
// are meant to be called from the single frame-driving goroutine.
type Session struct {
	Graph     *graph.Graph
	Embedding *embedding.Embedding
	Square    *grid.Square
	Circle    *grid.Circle
	Options   Options

	canvas geometry.Vec
	cfg    embedding.Config
	log    *slog.Logger
}

// NewSession builds a session around g on a canvas of the given size.
func NewSession(g *graph.Graph, canvas geometry.Vec, cfg embedding.Config, opts Options) *Session {
	square := grid.NewSquare(opts.GridSize, opts.GridSize)
	square.MakeSquare()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		Graph:     g,
		Embedding: embedding.New(g, canvas, cfg),
		Square:    square,
		Circle:    grid.NewCircle(opts.GridSize, canvas),
		Options:   opts,
		canvas:    canvas,
		cfg:       cfg,
		log:       logger,
	}
}

// DefaultGraph returns the demo graph shown on startup.
func DefaultGraph() *graph.Graph {
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(0, 3)
	g.AddEdge(1, 3)
	return g
}

// Canvas returns the session's canvas size.
func (s *Session) Canvas() geometry.Vec {
	return s.canvas
}

// Resize changes the canvas; positions are re-clamped by the next layout
// pass.
func (s *Session) Resize(canvas geometry.Vec) {
	s.canvas = canvas
	s.Embedding.SetCanvas(canvas)
}

// Reset rebuilds the embedding from the current graph, discarding all
// interaction and highlight state.
func (s *Session) Reset() {
	s.Embedding = embedding.New(s.Graph, s.canvas, s.cfg)
}

// Step advances the session by one frame: one pointer sample, the enabled
// layout passes, then composition.
func (s *Session) Step(pointerDown bool, pointer geometry.Vec) *render.DrawableGraph {
	s.Embedding.HandlePointerSample(pointerDown, pointer)

	if s.Options.ApplyForce {
		s.Embedding.ApplyForce(s.Graph)
	}

	if s.Options.AlignSquare {
		s.Square.SetDeltasSquare(s.Options.GridSize)
		s.Square.SetOffsetsFromCanvas(s.canvas)
		s.Embedding.AlignToSquare(s.Square)
	}

	if s.Options.AlignCircle {
		s.Circle.SetRDelta(s.Options.GridSize)
		s.Circle.SetFromCanvas(s.canvas)
		s.Embedding.AlignToCircle(s.Circle)
	}

	return render.Compose(s.Embedding, s.Options.Style)
}

// ImportGraph6 replaces the graph from a graph6 string. With KeepPositions
// set, only the edge states are rebuilt and the embedding survives;
// otherwise the whole embedding is rebuilt.
func (s *Session) ImportGraph6(g6 string) error {
	g, err := graph.ParseGraph6(g6)
	if err != nil {
		return errors.Wrap(err, "import graph")
	}

	if s.Options.KeepPositions {
		s.Embedding.UpdateEdges(g)
	} else {
		s.Embedding = embedding.New(g, s.canvas, s.cfg)
	}
	s.Graph = g

	return nil
}

// HighlightGraph6Lines decodes each non-empty line as a graph6 highlight set
// and records it. Invalid lines are skipped. Returns how many sets were
// recorded.
func (s *Session) HighlightGraph6Lines(input string) int {
	recorded := 0

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		g, err := graph.ParseGraph6(line)
		if err != nil {
			s.log.Debug("skipping invalid highlight line", "err", err)
			continue
		}

		s.Embedding.HighlightAndRecord(g)
		recorded++
	}

	return recorded
}

// ExportSVG composes the current state and writes it to path as SVG.
func (s *Session) ExportSVG(path string) error {
	drawable := render.Compose(s.Embedding, s.Options.Style)

	if err := export.WriteGraphFile(drawable, s.canvas, path); err != nil {
		return errors.Wrap(err, "export svg")
	}

	return nil
}

// ExportGraph6 encodes the current graph in graph6 format.
func (s *Session) ExportGraph6() (string, error) {
	g6, err := s.Graph.Graph6()
	if err != nil {
		return "", errors.Wrap(err, "export graph")
	}
	return g6, nil
}
