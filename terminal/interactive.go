// Package terminal hosts the tcell frontend for the interactive editor. It
// converts mouse events into pointer samples, keyboard input into option
// toggles and engine operations, and projects the composed draw primitives
// onto the terminal cell grid.
package terminal

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"graphed/editor"
	"graphed/geometry"
	"graphed/render"
)

// Logical units per terminal cell. Terminal cells are roughly twice as tall
// as wide, so the scale differs per axis to keep circles round.
const (
	cellWidth  = 8.0
	cellHeight = 16.0

	frameRate = 30
)

const (
	gridSizeMin  = 10.0
	gridSizeMax  = 50.0
	gridSizeStep = 5.0
)

// UI drives one interactive session. A single goroutine owns all state: the
// event channel only delivers input, and every mutation happens in the frame
// tick.
type UI struct {
	screen  tcell.Screen
	session *editor.Session

	pointerDown bool
	pointer     geometry.Vec

	exportPath string
	status     string
}

// Run opens the terminal, drives the session until the user quits, and
// restores the terminal on the way out.
func Run(session *editor.Session, exportPath string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.Clear()

	ui := &UI{
		screen:     screen,
		session:    session,
		exportPath: exportPath,
		status:     "f force · s/c grids · +/- grid size · n/p history · w export · q quit",
	}

	cols, rows := screen.Size()
	session.Resize(canvasSize(cols, rows))

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if done := ui.handleEvent(ev); done {
				return nil
			}
		case <-ticker.C:
			drawable := session.Step(ui.pointerDown, ui.pointer)
			ui.draw(drawable)
		}
	}
}

func canvasSize(cols, rows int) geometry.Vec {
	// The bottom row carries the status line.
	return geometry.Vec{
		X: float64(cols) * cellWidth,
		Y: float64(rows-1) * cellHeight,
	}
}

func (u *UI) handleEvent(ev tcell.Event) (done bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		u.session.Resize(canvasSize(cols, rows))
		u.screen.Sync()

	case *tcell.EventMouse:
		x, y := ev.Position()
		u.pointer = geometry.Vec{
			X: (float64(x) + 0.5) * cellWidth,
			Y: (float64(y) + 0.5) * cellHeight,
		}
		u.pointerDown = ev.Buttons()&tcell.Button1 != 0

	case *tcell.EventKey:
		return u.handleKey(ev)
	}

	return false
}

func (u *UI) handleKey(ev *tcell.EventKey) (done bool) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}

	opts := &u.session.Options

	switch ev.Rune() {
	case 'q':
		return true
	case 'f':
		opts.ApplyForce = !opts.ApplyForce
	case 's':
		opts.AlignSquare = !opts.AlignSquare
	case 'c':
		opts.AlignCircle = !opts.AlignCircle
	case '+', '=':
		opts.GridSize = math.Min(opts.GridSize+gridSizeStep, gridSizeMax)
	case '-':
		opts.GridSize = math.Max(opts.GridSize-gridSizeStep, gridSizeMin)
	case 'n':
		u.session.Embedding.NextHighlight()
	case 'p':
		u.session.Embedding.PreviousHighlight()
	case 'x':
		u.session.Embedding.ClearHighlighting()
	case 'X':
		u.session.Embedding.ClearHistory()
	case 'r':
		u.session.Reset()
	case 'v':
		opts.Style.Vertex.DrawIndex = !opts.Style.Vertex.DrawIndex
	case 'e':
		opts.Style.Edge.DrawIndex = !opts.Style.Edge.DrawIndex
	case 'z':
		opts.Style.Vertex.ZeroIndexed = !opts.Style.Vertex.ZeroIndexed
		opts.Style.Edge.ZeroIndexed = opts.Style.Vertex.ZeroIndexed
	case 'g':
		if g6, err := u.session.ExportGraph6(); err == nil {
			u.status = "graph6: " + g6
		} else {
			u.status = err.Error()
		}
	case 'w':
		if err := u.session.ExportSVG(u.exportPath); err != nil {
			u.status = err.Error()
		} else {
			u.status = "exported " + u.exportPath
		}
	}

	return false
}

func (u *UI) draw(drawable *render.DrawableGraph) {
	u.screen.Fill(' ', tcell.StyleDefault)

	if u.session.Options.AlignSquare {
		u.drawSquareGrid()
	}
	if u.session.Options.AlignCircle {
		u.drawCircleGrid()
	}

	for _, edge := range drawable.Edges {
		u.drawEdge(edge)
	}

	// The vertex list is already in paint order.
	for _, vertex := range drawable.Vertices {
		u.drawVertex(vertex)
	}

	u.drawStatus()
	u.screen.Show()
}

func (u *UI) drawSquareGrid() {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for _, segment := range u.session.Square.Segments(u.session.Canvas()) {
		u.plotLine(segment.Start, segment.End, '·', style)
	}
}

func (u *UI) drawCircleGrid() {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	center := u.session.Circle.Center

	for _, radius := range u.session.Circle.Radii() {
		steps := int(math.Max(16, radius/2))
		for i := 0; i < steps; i++ {
			angle := 2 * math.Pi * float64(i) / float64(steps)
			point := center.Add(geometry.Vec{
				X: math.Cos(angle) * radius,
				Y: math.Sin(angle) * radius,
			})
			u.plot(point, '·', style)
		}
	}
}

func (u *UI) drawEdge(edge render.DrawableEdge) {
	style := tcell.StyleDefault.Foreground(cellColor(edge.Color))
	u.plotLine(edge.Start, edge.End, '•', style)

	if edge.Label != nil {
		u.drawLabel(*edge.Label)
	}
}

func (u *UI) drawVertex(vertex render.DrawableVertex) {
	col, row := u.cell(vertex.Position)
	style := tcell.StyleDefault.Foreground(cellColor(vertex.MainColor))

	u.screen.SetContent(col-1, row, '(', nil, tcell.StyleDefault.Foreground(cellColor(vertex.BorderColor)))
	u.screen.SetContent(col, row, '●', nil, style)
	u.screen.SetContent(col+1, row, ')', nil, tcell.StyleDefault.Foreground(cellColor(vertex.BorderColor)))

	if vertex.Label != nil {
		u.drawLabel(*vertex.Label)
	}
}

func (u *UI) drawLabel(label render.DrawableLabel) {
	col, row := u.cell(label.Position)
	style := tcell.StyleDefault.Foreground(cellColor(label.Color))

	for i, r := range label.Content {
		u.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (u *UI) drawStatus() {
	opts := u.session.Options
	emb := u.session.Embedding

	line := fmt.Sprintf("[force %s] [square %s] [circle %s] [grid %.0f] [history %d/%d]  %s",
		onOff(opts.ApplyForce), onOff(opts.AlignSquare), onOff(opts.AlignCircle),
		opts.GridSize, emb.HistoryIndex()+1, emb.HistorySize(), u.status)

	cols, rows := u.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	runes := []rune(line)
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(runes) {
			r = runes[col]
		}
		u.screen.SetContent(col, rows-1, r, nil, style)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// cell converts a logical position to a terminal cell.
func (u *UI) cell(p geometry.Vec) (col, row int) {
	return int(p.X / cellWidth), int(p.Y / cellHeight)
}

// plot draws one rune at the cell containing p.
func (u *UI) plot(p geometry.Vec, r rune, style tcell.Style) {
	col, row := u.cell(p)
	u.screen.SetContent(col, row, r, nil, style)
}

// plotLine walks from start to end in cell-sized steps.
func (u *UI) plotLine(start, end geometry.Vec, r rune, style tcell.Style) {
	distance := geometry.Dist(start, end)
	steps := int(distance/cellWidth) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		point := start.Add(end.Sub(start).Scale(t))
		u.plot(point, r, style)
	}
}

func cellColor(c render.Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(c.R*255),
		int32(c.G*255),
		int32(c.B*255),
	)
}
