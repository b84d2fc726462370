package raster

import "math"

// runLength is the number of points per run of a Batch.
const runLength = 32

// Batch is flattened stroke geometry split into short runs with bounding
// boxes, so a stroker window only visits the runs near it.
//
// Stroking a Batch emits exactly the shapes AddPolyline emits for the
// polylines it was built from.
type Batch struct {
	runs []run
}

type run struct {
	pts      Polyline
	start    bool // first run of its polyline; carries the start cap
	min, max Point
}

// NewBatch splits lines into runs. Consecutive runs of one polyline share
// their boundary point.
func NewBatch(lines []Polyline) *Batch {
	b := &Batch{}
	for _, l := range lines {
		if len(l) == 0 {
			continue
		}
		for i := 0; ; i += runLength - 1 {
			end := min(i+runLength, len(l))
			b.runs = append(b.runs, newRun(l[i:end], i == 0))
			if end == len(l) {
				break
			}
		}
	}
	return b
}

func newRun(pts Polyline, start bool) run {
	r := run{
		pts:   pts,
		start: start,
		min:   Point{X: math.Inf(1), Y: math.Inf(1)},
		max:   Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range pts {
		r.min.X = math.Min(r.min.X, p.X)
		r.min.Y = math.Min(r.min.Y, p.Y)
		r.max.X = math.Max(r.max.X, p.X)
		r.max.Y = math.Max(r.max.Y, p.Y)
	}
	return r
}

// Len returns the number of runs.
func (b *Batch) Len() int {
	return len(b.runs)
}

// AddBatch strokes the runs of b whose bounds reach the stroker window.
func (s *Stroker) AddBatch(b *Batch) {
	for i := range b.runs {
		r := &b.runs[i]
		if r.max.X < s.clipMin.X || r.max.Y < s.clipMin.Y || r.min.X > s.clipMax.X || r.min.Y > s.clipMax.Y {
			continue
		}
		s.addRun(r.pts, r.start)
	}
}

// addRun strokes pts, with a disc at pts[0] only when start is set.
func (s *Stroker) addRun(pts Polyline, start bool) {
	prev := pts[0]
	if start {
		s.addDisc(prev)
	}
	for _, p := range pts[1:] {
		if p == prev {
			continue
		}
		s.addSegment(prev, p)
		prev = p
	}
}
