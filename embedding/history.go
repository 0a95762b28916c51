package embedding

import "graphed/graph"

// The highlight history is an append-only log of edge highlight sets with a
// cursor. Each entry reuses the Graph shape to carry an edge list; stepping
// restores that entry's highlighting in full.

// ClearHighlighting resets every edge to the default draw state and unsets
// the history cursor. Recorded entries are kept.
func (e *Embedding) ClearHighlighting() {
	for i := range e.Edges {
		e.Edges[i].DrawState = StateDefault
	}
	e.historyIndex = -1
}

// Highlight sets every edge whose endpoint pair appears in edges to
// Highlighted and every other edge to Default. This is a full overwrite, not
// additive.
func (e *Embedding) Highlight(edges [][2]int) {
	e.ClearHighlighting()

	set := graph.Graph{Edges: edges}
	for i := range e.Edges {
		if set.Contains(e.Edges[i].Vertices) {
			e.Edges[i].DrawState = StateHighlighted
		}
	}
}

// AddToHistory appends a highlight set without applying it or moving the
// cursor.
func (e *Embedding) AddToHistory(g *graph.Graph) {
	e.history = append(e.history, g)
}

// HighlightAndRecord applies g's edges as the current highlighting, appends
// g to the history, and moves the cursor to it.
func (e *Embedding) HighlightAndRecord(g *graph.Graph) {
	e.Highlight(g.Edges)
	e.AddToHistory(g)
	e.historyIndex = len(e.history) - 1
}

// HistorySize returns the number of recorded highlight sets.
func (e *Embedding) HistorySize() int {
	return len(e.history)
}

// HistoryIndex returns the cursor position, or -1 when no entry is current.
func (e *Embedding) HistoryIndex() int {
	return e.historyIndex
}

// NextHighlight moves the cursor forward and applies that entry. From an
// unset cursor it targets the first entry. Stepping past the end is a no-op.
func (e *Embedding) NextHighlight() {
	target := 0
	if e.historyIndex >= 0 {
		target = e.historyIndex + 1
	}
	e.applyHistoryEntry(target)
}

// PreviousHighlight moves the cursor backward and applies that entry. From an
// unset cursor it targets the last entry. Stepping past the start is a no-op.
func (e *Embedding) PreviousHighlight() {
	target := len(e.history) - 1
	if e.historyIndex >= 0 {
		target = e.historyIndex - 1
	}
	e.applyHistoryEntry(target)
}

// ClearHistory empties the history and resets all highlighting.
func (e *Embedding) ClearHistory() {
	e.history = nil
	e.ClearHighlighting()
}

func (e *Embedding) applyHistoryEntry(target int) {
	if target < 0 || target >= len(e.history) {
		return
	}

	g := e.history[target]
	e.historyIndex = target

	for i := range e.Edges {
		if g.Contains(e.Edges[i].Vertices) {
			e.Edges[i].DrawState = StateHighlighted
		} else {
			e.Edges[i].DrawState = StateDefault
		}
	}
}
