// Package export serialises composed draw primitives into vector documents.
package export

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"graphed/geometry"
	"graphed/render"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`
	docstring = `<!-- Created with graphed -->`

	indentSize = 4
)

// Protocol errors. The writer enforces header-then-items-then-finalise; any
// violation aborts only the export operation.
var (
	ErrMissingHeader    = errors.New("svg: header not yet written")
	ErrAlreadyHasHeader = errors.New("svg: header already written")
	ErrAlreadyFinalised = errors.New("svg: document already finalised")
	ErrNotFinalised     = errors.New("svg: document not finalised")
)

// IndentationError reports a finalise attempt away from the top nesting
// level.
type IndentationError struct {
	Expected, Found int
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("svg: unexpected indentation level: expected %d, found %d", e.Expected, e.Found)
}

// Item is anything that can be serialised into the document body.
type Item interface {
	SVGString() string
}

// SVGWriter builds a single well-formed SVG document: one header, then
// items, then one finalise, then optionally a write to disk.
type SVGWriter struct {
	buf         strings.Builder
	indentLevel int
	hasHeader   bool
	finalised   bool
}

// NewSVGWriter returns an empty writer.
func NewSVGWriter() *SVGWriter {
	return &SVGWriter{}
}

// WriteHeader opens the document with a scalable canvas of the given size.
// It may be called exactly once, before any items.
func (w *SVGWriter) WriteHeader(width, height float64) error {
	if w.hasHeader {
		return ErrAlreadyHasHeader
	}

	w.buf.WriteString(xmlHeader + "\n")
	w.buf.WriteString(docstring + "\n\n")
	w.buf.WriteString("<svg\n")
	w.indentLevel++

	w.hasHeader = true

	if err := w.AddItem(viewBox{width: width, height: height}); err != nil {
		return err
	}
	if err := w.AddItem(raw(`version="1.1"`)); err != nil {
		return err
	}
	return w.AddItem(raw(`xmlns="http://www.w3.org/2000/svg">`))
}

// AddItem writes an item at the current indentation level. The header must
// exist and the document must not be finalised.
func (w *SVGWriter) AddItem(item Item) error {
	if !w.hasHeader {
		return ErrMissingHeader
	}
	if w.finalised {
		return ErrAlreadyFinalised
	}

	indent := strings.Repeat(" ", w.indentLevel*indentSize)
	body := strings.TrimSuffix(item.SVGString(), "\n")
	for _, line := range strings.Split(body, "\n") {
		w.buf.WriteString(indent)
		w.buf.WriteString(line)
		w.buf.WriteString("\n")
	}

	return nil
}

// Finalise closes the document. It requires the header, may only run once,
// and only back at the top nesting level.
func (w *SVGWriter) Finalise() error {
	if !w.hasHeader {
		return ErrMissingHeader
	}
	if w.finalised {
		return ErrAlreadyFinalised
	}
	if w.indentLevel != 1 {
		return &IndentationError{Expected: 1, Found: w.indentLevel}
	}

	w.indentLevel--
	w.buf.WriteString("</svg>\n")
	w.finalised = true

	return nil
}

// String returns the document text built so far.
func (w *SVGWriter) String() string {
	return w.buf.String()
}

// WriteFile writes the finalised document to path.
func (w *SVGWriter) WriteFile(path string) error {
	if !w.finalised {
		return ErrNotFinalised
	}

	return os.WriteFile(path, []byte(w.buf.String()), 0644)
}

// WriteGraphFile serialises a composed graph onto a canvas of the given size
// and writes it to path.
func WriteGraphFile(g *render.DrawableGraph, canvas geometry.Vec, path string) error {
	w := NewSVGWriter()

	if err := w.WriteHeader(canvas.X, canvas.Y); err != nil {
		return err
	}
	if err := w.AddItem(GraphItem{Graph: g}); err != nil {
		return err
	}
	if err := w.Finalise(); err != nil {
		return err
	}

	return w.WriteFile(path)
}
