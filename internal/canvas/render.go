package canvas

import (
	"image/color"
	"math"

	"github.com/avelou/sketchbook/internal/models"
)

// Render draws a single stroke onto dst. It reads the stroke and calls
// surface ops only, so replaying the same stroke onto two surfaces
// produces the same picture on both.
//
// A stroke with exactly one point renders as a filled dot of radius
// Size/2 whatever the tool; for rect and circle the first and last
// point coincide in that case anyway, so the dot is the only rendering
// that isn't degenerate.
func Render(dst Surface, s *models.Stroke) {
	if len(s.Points) == 0 {
		return
	}

	paint := Paint{
		Color: strokeColor(s),
		Width: s.Size,
		Erase: s.Tool == models.ToolEraser,
	}
	first := s.Points[0]
	last := s.Points[len(s.Points)-1]

	if len(s.Points) == 1 {
		dst.Dot(first, s.Size/2, paint)
		return
	}

	switch s.Tool {
	case models.ToolRect:
		dst.Rect(first, last, paint)
	case models.ToolCircle:
		dst.Circle(first, dist(first, last), paint)
	case models.ToolLine:
		dst.Polyline([]models.Point{first, last}, paint)
	default: // pen, eraser
		dst.Polyline(s.Points, paint)
	}
}

// Replay clears dst and renders every stroke of the model in z-order.
// Used for editor redraws after undo/redo and for archived drawings in
// the gallery.
func Replay(dst Surface, m *models.DrawingModel) {
	var bg color.Color
	if m.Background != "" {
		if c, err := ParseColor(m.Background); err == nil {
			bg = c
		}
	}
	dst.Clear(bg)
	for i := range m.Strokes {
		Render(dst, &m.Strokes[i])
	}
}

func strokeColor(s *models.Stroke) color.Color {
	c, err := ParseColor(s.Color)
	if err != nil {
		return color.RGBA{A: 0xff} // opaque black
	}
	return c
}

func dist(a, b models.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
