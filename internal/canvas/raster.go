package canvas

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/avelou/sketchbook/internal/models"
)

// ImageSurface rasterizes surface ops onto an RGBA image by stamping a
// round brush along the drawn path. Paint ops composite source-over;
// erase ops clear the covered pixels back to transparent.
type ImageSurface struct {
	img *image.RGBA
}

func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image. The surface keeps writing to it.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) Clear(bg color.Color) {
	b := s.img.Bounds()
	if bg == nil {
		for i := range s.img.Pix {
			s.img.Pix[i] = 0
		}
		return
	}
	c := color.RGBAModel.Convert(bg).(color.RGBA)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.img.SetRGBA(x, y, c)
		}
	}
}

func (s *ImageSurface) Dot(p models.Point, radius float64, paint Paint) {
	s.stamp(p.X, p.Y, radius, paint)
}

func (s *ImageSurface) Polyline(pts []models.Point, paint Paint) {
	if len(pts) == 0 {
		return
	}
	s.stamp(pts[0].X, pts[0].Y, paint.Width/2, paint)
	for i := 1; i < len(pts); i++ {
		s.segment(pts[i-1], pts[i], paint)
	}
}

func (s *ImageSurface) Rect(a, b models.Point, paint Paint) {
	corners := []models.Point{a, {X: b.X, Y: a.Y}, b, {X: a.X, Y: b.Y}, a}
	s.Polyline(corners, paint)
}

func (s *ImageSurface) Circle(c models.Point, radius float64, paint Paint) {
	if radius <= 0 {
		s.stamp(c.X, c.Y, paint.Width/2, paint)
		return
	}
	// Step small enough that consecutive stamps overlap.
	step := 0.5 / radius
	for a := 0.0; a < 2*math.Pi; a += step {
		s.stamp(c.X+radius*math.Cos(a), c.Y+radius*math.Sin(a), paint.Width/2, paint)
	}
}

// segment stamps the brush along a→b at sub-pixel spacing.
func (s *ImageSurface) segment(a, b models.Point, paint Paint) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	steps := int(length*2) + 1
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.stamp(a.X+dx*t, a.Y+dy*t, paint.Width/2, paint)
	}
}

func (s *ImageSurface) stamp(cx, cy, radius float64, paint Paint) {
	if radius < 0.5 {
		radius = 0.5
	}
	var src color.RGBA
	if !paint.Erase {
		src = color.RGBAModel.Convert(paint.Color).(color.RGBA)
	}
	b := s.img.Bounds()
	minX := clamp(int(math.Floor(cx-radius)), b.Min.X, b.Max.X)
	maxX := clamp(int(math.Ceil(cx+radius))+1, b.Min.X, b.Max.X)
	minY := clamp(int(math.Floor(cy-radius)), b.Min.Y, b.Max.Y)
	maxY := clamp(int(math.Ceil(cy+radius))+1, b.Min.Y, b.Max.Y)
	r2 := radius * radius
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			fx, fy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if fx*fx+fy*fy > r2 {
				continue
			}
			if paint.Erase {
				s.img.SetRGBA(x, y, color.RGBA{})
			} else {
				s.img.SetRGBA(x, y, src)
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Thumbnail replays the model at full size, then scales the result so
// its longer edge is maxEdge. Small models are returned at their own
// size rather than upscaled.
func Thumbnail(m *models.DrawingModel, maxEdge int) image.Image {
	surf := NewImageSurface(m.Width, m.Height)
	Replay(surf, m)
	full := surf.Image()

	w, h := m.Width, m.Height
	if w <= maxEdge && h <= maxEdge {
		return full
	}
	scale := float64(maxEdge) / float64(w)
	if h > w {
		scale = float64(maxEdge) / float64(h)
	}
	tw, th := int(float64(w)*scale), int(float64(h)*scale)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), full, full.Bounds(), xdraw.Over, nil)
	return dst
}
