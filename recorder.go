package signpad

// StrokeRecorder converts pointer samples into a smoothed stroke path.
//
// Each move sample becomes a quadratic segment whose control point is the
// previous raw sample and whose end point is the midpoint between the
// previous and the current sample. The curve therefore passes through the
// midpoints and never overshoots the raw input.
//
// StrokeRecorder is NOT safe for concurrent use.
type StrokeRecorder struct {
	path    *Path
	last    Point
	hasLast bool

	// onDamage receives the logical bounds of every appended segment.
	onDamage func(Rect)
}

// NewStrokeRecorder creates an empty recorder.
func NewStrokeRecorder() *StrokeRecorder {
	return &StrokeRecorder{path: NewPath()}
}

// OnDamage sets the callback that receives the logical region touched by
// each ingestion. Pass nil to remove it.
func (r *StrokeRecorder) OnDamage(fn func(Rect)) {
	r.onDamage = fn
}

// BeginStroke starts a new subpath at p. Earlier strokes are kept.
// Non-finite samples are dropped.
func (r *StrokeRecorder) BeginStroke(p Point) {
	if !p.IsFinite() {
		Logger().Debug("signpad: dropped non-finite sample", "op", "begin", "x", p.X, "y", p.Y)
		return
	}
	r.path.MoveTo(p.X, p.Y)
	r.last = p
	r.hasLast = true
	r.damage(RectOf(p))
}

// ExtendStroke appends a smoothed segment towards p.
//
// With a previous sample the segment is a quadratic curve controlled by that
// sample and ending at the midpoint. Without one (after EndStroke) it is a
// straight line from the current point. On an empty path there is nothing to
// extend and the sample is dropped.
func (r *StrokeRecorder) ExtendStroke(p Point) {
	if !p.IsFinite() {
		Logger().Debug("signpad: dropped non-finite sample", "op", "extend", "x", p.X, "y", p.Y)
		return
	}
	if r.path.IsEmpty() {
		Logger().Debug("signpad: dropped sample without stroke", "x", p.X, "y", p.Y)
		return
	}

	start := r.path.CurrentPoint()
	if !r.hasLast {
		r.path.LineTo(p.X, p.Y)
		r.last = p
		r.hasLast = true
		r.damage(RectOf(start, p))
		return
	}

	mid := r.last.Mid(p)
	r.path.QuadraticTo(r.last.X, r.last.Y, mid.X, mid.Y)
	r.damage(RectOf(start, r.last, mid))
	r.last = p
}

// EndStroke finishes the current stroke. The geometry is already complete;
// only the previous-sample memory is dropped.
func (r *StrokeRecorder) EndStroke() {
	r.hasLast = false
}

// Clear drops all strokes.
func (r *StrokeRecorder) Clear() {
	b := r.path.Bounds()
	r.path.Clear()
	r.last = Point{}
	r.hasLast = false
	r.damage(b)
}

// IsEmpty reports whether no stroke was begun since the last Clear.
func (r *StrokeRecorder) IsEmpty() bool {
	return r.path.IsEmpty()
}

// Stroking reports whether a previous sample is remembered, i.e. a stroke
// was begun or extended and not yet ended.
func (r *StrokeRecorder) Stroking() bool {
	return r.hasLast
}

// Path returns a copy of the recorded geometry.
func (r *StrokeRecorder) Path() *Path {
	return r.path.Clone()
}

// Bounds returns the logical bounding box of all control and end points.
func (r *StrokeRecorder) Bounds() Rect {
	return r.path.Bounds()
}

// elements exposes the live elements to the renderer without copying.
func (r *StrokeRecorder) elements() []PathElement {
	return r.path.Elements()
}

func (r *StrokeRecorder) damage(b Rect) {
	if r.onDamage != nil && !b.Empty() {
		r.onDamage(b)
	}
}
