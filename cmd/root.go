package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"graphed/config"
	"graphed/editor"
	"graphed/geometry"
	"graphed/graph"
	"graphed/terminal"
)

var version = "0.3.0"

var (
	graphFlag         string
	keepFlag          bool
	rootHighlightFlag string
)

var rootCmd = &cobra.Command{
	Use:   "graphed",
	Short: "graphed — interactive graph6 embedding editor",
	Long: "graphed lays small graphs out in 2D and lets you drag, highlight and\n" +
		"align them interactively, then export the drawing as SVG.",
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		session, err := newSession(cfg)
		if err != nil {
			return err
		}

		if rootHighlightFlag != "" {
			if _, err := applyHighlights(session, rootHighlightFlag); err != nil {
				return err
			}
		}

		return terminal.Run(session, cfg.Export.File)
	},
}

// applyHighlights records each graph6 line of the file as a highlight set and
// returns how many were recorded. The sets are then navigable with the
// history keys.
func applyHighlights(session *editor.Session, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "read highlight file")
	}
	return session.HighlightGraph6Lines(string(data)), nil
}

func newSession(cfg config.Config) (*editor.Session, error) {
	g := editor.DefaultGraph()
	if graphFlag != "" {
		parsed, err := graph.ParseGraph6(graphFlag)
		if err != nil {
			return nil, err
		}
		g = parsed
	}

	opts := cfg.EditorOptions()
	opts.KeepPositions = keepFlag

	// The terminal frontend resizes the canvas to the real screen on startup.
	canvas := geometry.Vec{X: 800, Y: 800}

	return editor.NewSession(g, canvas, cfg.EmbeddingConfig(), opts), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&graphFlag, "graph", "g", "", "graph6 string to load")
	rootCmd.PersistentFlags().BoolVar(&keepFlag, "keep-positions", false, "keep vertex positions when re-importing")
	rootCmd.Flags().StringVar(&rootHighlightFlag, "highlight", "", "file of newline-separated graph6 highlight sets")

	rootCmd.AddCommand(exportCmd)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "graphed: %v\n", err)
		os.Exit(1)
	}
}
