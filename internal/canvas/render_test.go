package canvas

import (
	"image/color"
	"testing"

	"github.com/avelou/sketchbook/internal/models"
)

// recordSurface captures surface ops so tests can assert on the render
// contract without rasterizing.
type recordSurface struct {
	cleared bool
	bg      color.Color
	ops     []recordedOp
}

type recordedOp struct {
	kind   string
	pts    []models.Point
	radius float64
	paint  Paint
}

func (r *recordSurface) Dot(p models.Point, radius float64, paint Paint) {
	r.ops = append(r.ops, recordedOp{kind: "dot", pts: []models.Point{p}, radius: radius, paint: paint})
}

func (r *recordSurface) Polyline(pts []models.Point, paint Paint) {
	r.ops = append(r.ops, recordedOp{kind: "polyline", pts: pts, paint: paint})
}

func (r *recordSurface) Rect(a, b models.Point, paint Paint) {
	r.ops = append(r.ops, recordedOp{kind: "rect", pts: []models.Point{a, b}, paint: paint})
}

func (r *recordSurface) Circle(c models.Point, radius float64, paint Paint) {
	r.ops = append(r.ops, recordedOp{kind: "circle", pts: []models.Point{c}, radius: radius, paint: paint})
}

func (r *recordSurface) Clear(bg color.Color) {
	r.cleared = true
	r.bg = bg
	r.ops = nil
}

func (r *recordSurface) lastOp(t *testing.T) recordedOp {
	t.Helper()
	if len(r.ops) == 0 {
		t.Fatal("expected at least one surface op")
	}
	return r.ops[len(r.ops)-1]
}

func TestSinglePointRendersAsDot(t *testing.T) {
	// The dot rule applies to every tool, never a zero-length line.
	for _, tool := range models.Tools {
		surf := &recordSurface{}
		s := models.Stroke{Tool: tool, Color: "#000000", Size: 8, Points: []models.Point{{X: 10, Y: 20}}}
		Render(surf, &s)

		op := surf.lastOp(t)
		if op.kind != "dot" {
			t.Errorf("%s: expected dot, got %s", tool, op.kind)
			continue
		}
		if op.radius != 4 {
			t.Errorf("%s: expected radius size/2 = 4, got %v", tool, op.radius)
		}
	}
}

func TestCircleRadiusIsEuclideanDistance(t *testing.T) {
	surf := &recordSurface{}
	s := models.Stroke{
		Tool:   models.ToolCircle,
		Color:  "#000000",
		Size:   2,
		Points: []models.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 4}},
	}
	Render(surf, &s)

	op := surf.lastOp(t)
	if op.kind != "circle" {
		t.Fatalf("expected circle, got %s", op.kind)
	}
	if op.pts[0] != (models.Point{X: 0, Y: 0}) {
		t.Errorf("expected center at first point, got %+v", op.pts[0])
	}
	if op.radius != 5 {
		t.Errorf("expected radius 5 for [[0,0],[3,4]], got %v", op.radius)
	}
}

func TestRectUsesFirstAndLastAsCorners(t *testing.T) {
	surf := &recordSurface{}
	s := models.Stroke{
		Tool:   models.ToolRect,
		Color:  "#000000",
		Size:   2,
		Points: []models.Point{{X: 1, Y: 2}, {X: 50, Y: 50}, {X: 9, Y: 8}},
	}
	Render(surf, &s)

	op := surf.lastOp(t)
	if op.kind != "rect" {
		t.Fatalf("expected rect, got %s", op.kind)
	}
	want := []models.Point{{X: 1, Y: 2}, {X: 9, Y: 8}}
	if op.pts[0] != want[0] || op.pts[1] != want[1] {
		t.Errorf("expected corners %+v, got %+v", want, op.pts)
	}
}

func TestLineUsesEndpointsOnly(t *testing.T) {
	surf := &recordSurface{}
	s := models.Stroke{
		Tool:   models.ToolLine,
		Color:  "#000000",
		Size:   2,
		Points: []models.Point{{X: 0, Y: 0}, {X: 5, Y: 9}, {X: 20, Y: 20}},
	}
	Render(surf, &s)

	op := surf.lastOp(t)
	if op.kind != "polyline" || len(op.pts) != 2 {
		t.Fatalf("expected two-point polyline, got %s with %d points", op.kind, len(op.pts))
	}
	if op.pts[0] != (models.Point{X: 0, Y: 0}) || op.pts[1] != (models.Point{X: 20, Y: 20}) {
		t.Errorf("expected first and last captured points, got %+v", op.pts)
	}
}

func TestEraserSetsErasePaint(t *testing.T) {
	surf := &recordSurface{}
	s := models.Stroke{
		Tool:   models.ToolEraser,
		Color:  "#ffffff",
		Size:   12,
		Points: []models.Point{{X: 0, Y: 0}, {X: 5, Y: 5}},
	}
	Render(surf, &s)

	op := surf.lastOp(t)
	if op.kind != "polyline" {
		t.Fatalf("expected polyline, got %s", op.kind)
	}
	if !op.paint.Erase {
		t.Error("expected eraser strokes to use erase compositing")
	}
}

func TestReplayClearsThenRendersInOrder(t *testing.T) {
	surf := &recordSurface{}
	m := models.DrawingModel{
		Width:      100,
		Height:     100,
		Background: "#ffffff",
		Strokes: []models.Stroke{
			{Tool: models.ToolPen, Color: "red", Size: 2, Points: []models.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
			{Tool: models.ToolRect, Color: "blue", Size: 2, Points: []models.Point{{X: 0, Y: 0}, {X: 9, Y: 9}}},
		},
	}
	Replay(surf, &m)

	if !surf.cleared {
		t.Fatal("expected Replay to clear the surface")
	}
	if surf.bg == nil {
		t.Error("expected background color to be used for clear")
	}
	if len(surf.ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(surf.ops))
	}
	if surf.ops[0].kind != "polyline" || surf.ops[1].kind != "rect" {
		t.Errorf("expected creation order preserved, got %s then %s", surf.ops[0].kind, surf.ops[1].kind)
	}
}
