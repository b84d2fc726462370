package signpad

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Path is the accumulated geometry of every stroke since the last clear.
// Subpaths are never closed; each MoveTo begins a new stroke.
type Path struct {
	elements []PathElement
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 64),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve to (x, y) with control point (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// Clear removes all elements from the path, keeping its storage.
func (p *Path) Clear() {
	clear(p.elements)
	p.elements = p.elements[:0]
	p.current = Point{}
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the end point of the last element.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Subpaths returns the number of strokes (MoveTo elements) in the path.
func (p *Path) Subpaths() int {
	n := 0
	for _, e := range p.elements {
		if _, ok := e.(MoveTo); ok {
			n++
		}
	}
	return n
}

// Bounds returns the bounding box of every end and control point.
// The curve itself never leaves this box.
func (p *Path) Bounds() Rect {
	r := EmptyRect()
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			r = r.Union(RectOf(e.Point))
		case LineTo:
			r = r.Union(RectOf(e.Point))
		case QuadTo:
			r = r.Union(RectOf(e.Control, e.Point))
		}
	}
	return r
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		current:  p.current,
	}
	copy(result.elements, p.elements)
	return result
}
