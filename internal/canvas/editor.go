package canvas

import "github.com/avelou/sketchbook/internal/models"

// Editor owns the live drawing state: the current brush, the applied
// stroke list and the undo history. It is created when a drawing
// surface is mounted and discarded with it; nothing here is persisted
// except through Model().
//
// Capture is a three-state machine (idle → drawing → idle) driven by
// pointer events. All mutation happens synchronously inside the event
// methods, so the stroke slices never need locking.
type Editor struct {
	Tool  models.Tool
	Color string
	Size  float64

	width      int
	height     int
	background string

	strokes []models.Stroke
	undone  []models.Stroke
	drawing bool
}

func NewEditor(width, height int) *Editor {
	return &Editor{
		Tool:   models.ToolPen,
		Color:  "#000000",
		Size:   4,
		width:  width,
		height: height,
	}
}

func (e *Editor) SetBackground(color string) {
	e.background = color
}

// PointerDown begins a stroke seeded with the current brush and a
// single point. Starting a fresh stroke discards the redo history:
// undo is linear, not branching.
func (e *Editor) PointerDown(x, y float64) {
	e.strokes = append(e.strokes, models.Stroke{
		Tool:   e.Tool,
		Color:  e.Color,
		Size:   e.Size,
		Points: []models.Point{{X: x, Y: y}},
	})
	e.undone = nil
	e.drawing = true
}

// PointerMove extends the in-progress stroke. Moves while idle are
// ignored (the pointer left the surface, or the press started
// elsewhere).
func (e *Editor) PointerMove(x, y float64) {
	if !e.drawing {
		return
	}
	last := &e.strokes[len(e.strokes)-1]
	last.Points = append(last.Points, models.Point{X: x, Y: y})
}

// PointerUp ends the stroke wherever the pointer is, on or off the
// surface.
func (e *Editor) PointerUp() {
	e.drawing = false
}

// Undo moves the newest stroke onto the redo stack. No-op on an empty
// canvas.
func (e *Editor) Undo() bool {
	if len(e.strokes) == 0 {
		return false
	}
	n := len(e.strokes) - 1
	e.undone = append(e.undone, e.strokes[n])
	e.strokes = e.strokes[:n]
	return true
}

// Redo re-applies the most recently undone stroke. No-op if nothing
// has been undone.
func (e *Editor) Redo() bool {
	if len(e.undone) == 0 {
		return false
	}
	n := len(e.undone) - 1
	e.strokes = append(e.strokes, e.undone[n])
	e.undone = e.undone[:n]
	return true
}

// Clear drops both stacks.
func (e *Editor) Clear() {
	e.strokes = nil
	e.undone = nil
	e.drawing = false
}

func (e *Editor) StrokeCount() int {
	return len(e.strokes)
}

// Redraw clears dst and replays every applied stroke in order. There is
// no incremental path; undo/redo always repaint from scratch.
func (e *Editor) Redraw(dst Surface) {
	m := e.Model()
	Replay(dst, &m)
}

// Model snapshots the editor as a serializable DrawingModel. The stroke
// slice is copied so later edits don't mutate a saved snapshot.
func (e *Editor) Model() models.DrawingModel {
	strokes := make([]models.Stroke, len(e.strokes))
	copy(strokes, e.strokes)
	return models.DrawingModel{
		Strokes:    strokes,
		Width:      e.width,
		Height:     e.height,
		Background: e.background,
	}
}
