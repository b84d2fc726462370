// Package raster turns stroke geometry into antialiased coverage masks.
//
// Paths arrive in device space (already multiplied by the output scale).
// Curves are flattened into polylines, every polyline is expanded into
// round-joined, round-capped outlines, and the outlines are accumulated in a
// golang.org/x/image/vector rasterizer.
package raster

import "math"

// Point represents a 2D point in device space (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance, in device pixels, between a curve and
// its flattened polyline.
const Tolerance = 0.1

// maxDepth bounds curve subdivision for degenerate or enormous curves.
const maxDepth = 16

// PathElement represents an element in a device-space path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubeTo draws a cubic curve. Stroke paths never contain cubics; they come
// from font outlines.
type CubeTo struct{ Control1, Control2, Point Point }

func (CubeTo) isPathElement() {}

// Polyline is one flattened subpath.
type Polyline []Point

// Flatten converts a path into one polyline per subpath.
// A subpath made of a lone MoveTo yields a single-point polyline.
func Flatten(elements []PathElement, tolerance float64) []Polyline {
	var (
		lines   []Polyline
		current Polyline
		pen     Point
	)
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, current)
		}
		current = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			pen = e.Point
			current = Polyline{pen}

		case LineTo:
			if current == nil {
				current = Polyline{pen}
			}
			pen = e.Point
			current = append(current, pen)

		case QuadTo:
			if current == nil {
				current = Polyline{pen}
			}
			current = flattenQuadRec(pen, e.Control, e.Point, tolerance, 0, current)
			pen = e.Point

		case CubeTo:
			if current == nil {
				current = Polyline{pen}
			}
			current = flattenCubeRec(pen, e.Control1, e.Control2, e.Point, tolerance, 0, current)
			pen = e.Point
		}
	}
	flush()
	return lines
}

// flattenQuadRec recursively subdivides a quadratic Bezier curve and appends
// the end points of the flat pieces.
func flattenQuadRec(p0, p1, p2 Point, tolerance float64, depth int, out Polyline) Polyline {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		return append(out, p2)
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := q0.lerp(q1, 0.5)

	out = flattenQuadRec(p0, q0, q2, tolerance, depth+1, out)
	return flattenQuadRec(q2, q1, p2, tolerance, depth+1, out)
}

// flattenCubeRec subdivides a cubic Bezier curve with de Casteljau's
// algorithm.
func flattenCubeRec(p0, p1, p2, p3 Point, tolerance float64, depth int, out Polyline) Polyline {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || d < tolerance {
		return append(out, p3)
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)

	out = flattenCubeRec(p0, q0, r0, s, tolerance, depth+1, out)
	return flattenCubeRec(s, r1, q2, p3, tolerance, depth+1, out)
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) length() float64 {
	return math.Hypot(p.X, p.Y)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen2 := ab.dot(ab)
	if abLen2 < 1e-20 {
		return p.sub(a).length()
	}

	t := p.sub(a).dot(ab) / abLen2
	switch {
	case t < 0:
		return p.sub(a).length()
	case t > 1:
		return p.sub(b).length()
	}
	closest := Point{X: a.X + ab.X*t, Y: a.Y + ab.Y*t}
	return p.sub(closest).length()
}
