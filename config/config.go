// Package config loads the optional user configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"graphed/editor"
	"graphed/embedding"
)

// Config holds graphed configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Gesture GestureConfig `toml:"gesture"`
	Labels  LabelConfig   `toml:"labels"`
	Export  ExportConfig  `toml:"export"`
}

// EditorConfig controls the startup state of the layout passes.
type EditorConfig struct {
	GridSize    float64 `toml:"grid_size"`
	Force       bool    `toml:"force"`
	AlignSquare bool    `toml:"align_square"`
	AlignCircle bool    `toml:"align_circle"`
}

// GestureConfig controls the click/drag thresholds.
type GestureConfig struct {
	DragDurationMS int     `toml:"drag_duration_ms"`
	DragDistance   float64 `toml:"drag_distance"`
}

// LabelConfig controls index labels.
type LabelConfig struct {
	VertexIndex       bool `toml:"vertex_index"`
	ZeroIndexVertices bool `toml:"zero_index_vertices"`
	EdgeIndex         bool `toml:"edge_index"`
	ZeroIndexEdges    bool `toml:"zero_index_edges"`
}

// ExportConfig controls SVG export.
type ExportConfig struct {
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			GridSize: 30,
		},
		Gesture: GestureConfig{
			DragDurationMS: 125,
			DragDistance:   5,
		},
		Labels: LabelConfig{
			VertexIndex: true,
		},
		Export: ExportConfig{
			File: "graph.svg",
		},
	}
}

// Path returns the configuration file location.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "graphed", "config.toml")
}

// Load reads the configuration file, falling back to defaults when it is
// missing or malformed.
func Load() Config {
	cfg := Default()

	path := Path()
	if path == "" {
		return cfg
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// EmbeddingConfig maps the configured thresholds onto the engine defaults.
func (c Config) EmbeddingConfig() embedding.Config {
	cfg := embedding.DefaultConfig()

	if c.Gesture.DragDurationMS > 0 {
		cfg.DragDuration = time.Duration(c.Gesture.DragDurationMS) * time.Millisecond
	}
	if c.Gesture.DragDistance > 0 {
		cfg.DragDistance = c.Gesture.DragDistance
	}

	return cfg
}

// EditorOptions maps the configured toggles onto the session options.
func (c Config) EditorOptions() editor.Options {
	opts := editor.DefaultOptions()

	if c.Editor.GridSize > 0 {
		opts.GridSize = c.Editor.GridSize
	}
	opts.ApplyForce = c.Editor.Force
	opts.AlignSquare = c.Editor.AlignSquare
	opts.AlignCircle = c.Editor.AlignCircle

	opts.Style.Vertex.DrawIndex = c.Labels.VertexIndex
	opts.Style.Vertex.ZeroIndexed = c.Labels.ZeroIndexVertices
	opts.Style.Edge.DrawIndex = c.Labels.EdgeIndex
	opts.Style.Edge.ZeroIndexed = c.Labels.ZeroIndexEdges

	return opts
}
