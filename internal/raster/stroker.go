package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// MinHalfWidth keeps zero-width strokes visible as one-pixel hairlines.
const MinHalfWidth = 0.5

const (
	minDiscSides = 8
	maxDiscSides = 256
)

// Stroker expands polylines into round-joined, round-capped outlines and
// accumulates their coverage.
//
// Every emitted shape (segment body or disc) is wound in the same direction,
// so overlapping shapes saturate to full coverage instead of cancelling.
// The zero value is not usable; call Reset first.
//
// Stroker is NOT safe for concurrent use.
type Stroker struct {
	z      vector.Rasterizer
	size   image.Point
	origin Point
	hw     float64

	// clipMin and clipMax bound the window grown by hw+1, in surface
	// coordinates. Geometry outside it cannot touch a window pixel.
	clipMin, clipMax Point

	// unit holds the disc polygon for the current half width.
	unit []Point

	shapes int
}

// NewStroker creates a stroker for a width x height mask and the given stroke width.
func NewStroker(width, height int, strokeWidth float64) *Stroker {
	s := &Stroker{}
	s.Reset(width, height, strokeWidth)
	return s
}

// Reset clears accumulated coverage and reconfigures the stroker for the
// whole width x height surface.
func (s *Stroker) Reset(width, height int, strokeWidth float64) {
	s.ResetWindow(width, height, strokeWidth, image.Rect(0, 0, width, height))
}

// ResetWindow is like Reset but rasterizes only the window win of the
// surface. Mask pixel (0, 0) then corresponds to win.Min.
//
// The half width is capped at the surface diagonal plus one pixel, so a
// disc on the surface covers all of it and widths up to +Inf stay finite.
func (s *Stroker) ResetWindow(width, height int, strokeWidth float64, win image.Rectangle) {
	width, height = max(width, 0), max(height, 0)
	win = win.Intersect(image.Rect(0, 0, width, height))
	s.z.Reset(win.Dx(), win.Dy())
	s.size = win.Size()
	s.origin = Point{X: float64(win.Min.X), Y: float64(win.Min.Y)}

	hw := strokeWidth / 2
	if !(hw >= MinHalfWidth) { // also catches NaN
		hw = MinHalfWidth
	}
	hw = min(hw, MaxHalfWidth(width, height))
	if s.hw != hw || s.unit == nil {
		s.hw = hw
		s.unit = discPolygon(hw)
	}

	margin := hw + 1
	s.clipMin = Point{X: float64(win.Min.X) - margin, Y: float64(win.Min.Y) - margin}
	s.clipMax = Point{X: float64(win.Max.X) + margin, Y: float64(win.Max.Y) + margin}
	s.shapes = 0
}

// MaxHalfWidth returns the largest half width that still changes the
// coverage of a width x height surface.
func MaxHalfWidth(width, height int) float64 {
	return math.Hypot(float64(width), float64(height)) + 1
}

// HalfWidth returns the effective half stroke width in device pixels.
func (s *Stroker) HalfWidth() float64 {
	return s.hw
}

// Shapes returns the number of outline shapes accumulated since Reset.
func (s *Stroker) Shapes() int {
	return s.shapes
}

// AddPolyline strokes one polyline. A single point becomes a dot.
func (s *Stroker) AddPolyline(pts Polyline) {
	if len(pts) == 0 {
		return
	}
	s.addRun(pts, true)
}

// Add strokes every polyline.
func (s *Stroker) Add(lines []Polyline) {
	for _, l := range lines {
		s.AddPolyline(l)
	}
}

// Mask writes the accumulated coverage into dst, which must be zeroed and
// have the stroker's bounds. The stroker must be Reset before it is reused.
func (s *Stroker) Mask(dst *image.Alpha) {
	if s.size.X == 0 || s.size.Y == 0 || s.shapes == 0 {
		return
	}
	s.z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
}

// addSegment emits the body of segment (a, b) and the disc at b.
func (s *Stroker) addSegment(a, b Point) {
	ca, cb, ok := clipSegment(a, b, s.clipMin, s.clipMax)
	if !ok {
		return
	}

	d := cb.sub(ca)
	l := d.length()
	if l < 1e-12 {
		s.addDisc(cb)
		return
	}

	// n is the left normal scaled to the half width.
	k := s.hw / l
	n := Point{X: -d.Y * k, Y: d.X * k}

	o := s.origin
	s.z.MoveTo(f32(ca.X-n.X-o.X), f32(ca.Y-n.Y-o.Y))
	s.z.LineTo(f32(cb.X-n.X-o.X), f32(cb.Y-n.Y-o.Y))
	s.z.LineTo(f32(cb.X+n.X-o.X), f32(cb.Y+n.Y-o.Y))
	s.z.LineTo(f32(ca.X+n.X-o.X), f32(ca.Y+n.Y-o.Y))
	s.z.ClosePath()
	s.shapes++

	s.addDisc(cb)
}

// addDisc emits a disc of radius hw centered at c.
func (s *Stroker) addDisc(c Point) {
	if c.X < s.clipMin.X || c.Y < s.clipMin.Y || c.X > s.clipMax.X || c.Y > s.clipMax.Y {
		return
	}

	c = c.sub(s.origin)
	s.z.MoveTo(f32(c.X+s.unit[0].X), f32(c.Y+s.unit[0].Y))
	for _, u := range s.unit[1:] {
		s.z.LineTo(f32(c.X+u.X), f32(c.Y+u.Y))
	}
	s.z.ClosePath()
	s.shapes++
}

// discPolygon returns the vertices of a circle of radius r, counter-clockwise
// in math orientation, with enough sides to stay within Tolerance.
func discPolygon(r float64) []Point {
	sides := minDiscSides
	if r > Tolerance {
		step := math.Acos(1 - Tolerance/r)
		if step > 0 {
			sides = int(math.Ceil(math.Pi / step))
		}
	}
	sides = max(minDiscSides, min(sides, maxDiscSides))

	pts := make([]Point, sides)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(sides)
		pts[i] = Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	return pts
}

// clipSegment clips (a, b) to the rectangle [lo, hi] (Liang-Barsky).
func clipSegment(a, b, lo, hi Point) (Point, Point, bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, a.X - lo.X},
		{dx, hi.X - a.X},
		{-dy, a.Y - lo.Y},
		{dy, hi.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Point{}, Point{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return Point{}, Point{}, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return Point{}, Point{}, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	ca, cb := a, b
	if t0 > 0 {
		ca = Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1 {
		cb = Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	return ca, cb, true
}

func f32(v float64) float32 {
	return float32(v)
}
