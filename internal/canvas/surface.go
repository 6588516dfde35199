package canvas

import (
	"image/color"

	"github.com/avelou/sketchbook/internal/models"
)

// Paint carries the brush settings for one drawing operation. Erase
// punches through whatever is already on the surface (pixels become
// fully transparent) instead of painting over it.
type Paint struct {
	Color color.Color
	Width float64
	Erase bool
}

// Surface is a render target. Rendering is written against this
// interface so the live editing surface, gallery thumbnails, and test
// doubles all replay the same stroke list through the same code path.
type Surface interface {
	// Dot fills a circle of the given radius centered on p.
	Dot(p models.Point, radius float64, paint Paint)
	// Polyline strokes connected segments through pts in order.
	Polyline(pts []models.Point, paint Paint)
	// Rect strokes the axis-aligned rectangle with corners a and b.
	Rect(a, b models.Point, paint Paint)
	// Circle strokes a circle centered on c.
	Circle(c models.Point, radius float64, paint Paint)
	// Clear resets the whole surface to bg (nil means transparent).
	Clear(bg color.Color)
}
