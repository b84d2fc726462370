package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Filler accumulates the coverage of closed polygons.
//
// Coverage is the absolute winding number clamped to one, so holes must be
// wound opposite to their outer contour, as they are in TrueType glyphs.
//
// Filler is NOT safe for concurrent use.
type Filler struct {
	z      vector.Rasterizer
	size   image.Point
	shapes int
}

// NewFiller creates a filler for a width x height mask.
func NewFiller(width, height int) *Filler {
	f := &Filler{}
	f.Reset(width, height)
	return f
}

// Reset clears accumulated coverage and resizes the filler.
func (f *Filler) Reset(width, height int) {
	width, height = max(width, 0), max(height, 0)
	f.z.Reset(width, height)
	f.size = image.Pt(width, height)
	f.shapes = 0
}

// AddPolygon fills one closed polygon. Polygons with fewer than three
// vertices cover nothing.
func (f *Filler) AddPolygon(pts Polyline) {
	if len(pts) < 3 {
		return
	}
	f.z.MoveTo(f32(pts[0].X), f32(pts[0].Y))
	for _, p := range pts[1:] {
		f.z.LineTo(f32(p.X), f32(p.Y))
	}
	f.z.ClosePath()
	f.shapes++
}

// Add fills every polygon.
func (f *Filler) Add(polys []Polyline) {
	for _, p := range polys {
		f.AddPolygon(p)
	}
}

// Mask writes the accumulated coverage into dst, which must be zeroed and
// have the filler's bounds.
func (f *Filler) Mask(dst *image.Alpha) {
	if f.size.X == 0 || f.size.Y == 0 || f.shapes == 0 {
		return
	}
	f.z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
}

// RoundedRect returns the outline of a rectangle with circular corners of
// radius r, clockwise on screen. The radius is clamped to half the shorter
// side.
func RoundedRect(minX, minY, maxX, maxY, r float64) Polyline {
	r = math.Max(0, math.Min(r, math.Min(maxX-minX, maxY-minY)/2))
	if r == 0 {
		return Polyline{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}}
	}

	arc := discPolygon(r)
	quarter := max(len(arc)/4, 1)
	corners := [4]struct {
		c     Point
		start float64
	}{
		{Point{maxX - r, minY + r}, -math.Pi / 2},
		{Point{maxX - r, maxY - r}, 0},
		{Point{minX + r, maxY - r}, math.Pi / 2},
		{Point{minX + r, minY + r}, math.Pi},
	}

	out := make(Polyline, 0, 4*(quarter+1))
	for _, k := range corners {
		for i := 0; i <= quarter; i++ {
			theta := k.start + math.Pi/2*float64(i)/float64(quarter)
			out = append(out, Point{X: k.c.X + r*math.Cos(theta), Y: k.c.Y + r*math.Sin(theta)})
		}
	}
	return out
}

// Reversed returns the polyline in opposite order, turning an outer contour
// into a hole.
func (pl Polyline) Reversed() Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}
