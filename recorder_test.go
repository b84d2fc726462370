package signpad

import (
	"math"
	"testing"
)

func TestStrokeRecorder_EmptyUntilBegin(t *testing.T) {
	r := NewStrokeRecorder()
	if !r.IsEmpty() {
		t.Fatal("new recorder should be empty")
	}

	r.BeginStroke(Pt(5, 5))
	if r.IsEmpty() {
		t.Error("IsEmpty() = true after BeginStroke, want false")
	}

	r.EndStroke()
	if r.IsEmpty() {
		t.Error("IsEmpty() = true after EndStroke, want false")
	}

	r.Clear()
	if !r.IsEmpty() {
		t.Error("IsEmpty() = false after Clear, want true")
	}
}

func TestStrokeRecorder_MidpointSmoothing(t *testing.T) {
	r := NewStrokeRecorder()
	r.BeginStroke(Pt(0, 0))
	r.ExtendStroke(Pt(100, 100))

	elems := r.Path().Elements()
	if len(elems) != 2 {
		t.Fatalf("len(Elements()) = %d, want 2", len(elems))
	}
	if m, ok := elems[0].(MoveTo); !ok || m.Point != Pt(0, 0) {
		t.Errorf("Elements()[0] = %#v, want MoveTo(0,0)", elems[0])
	}
	q, ok := elems[1].(QuadTo)
	if !ok {
		t.Fatalf("Elements()[1] = %T, want QuadTo", elems[1])
	}
	if q.Control != Pt(0, 0) {
		t.Errorf("control = %v, want (0,0)", q.Control)
	}
	if q.Point != Pt(50, 50) {
		t.Errorf("end point = %v, want (50,50)", q.Point)
	}
}

func TestStrokeRecorder_ControlIsPreviousSample(t *testing.T) {
	r := NewStrokeRecorder()
	r.BeginStroke(Pt(10, 10))
	r.ExtendStroke(Pt(20, 10))
	r.ExtendStroke(Pt(30, 10))

	want := []QuadTo{
		{Control: Pt(10, 10), Point: Pt(15, 10)},
		{Control: Pt(20, 10), Point: Pt(25, 10)},
	}
	elems := r.Path().Elements()
	if len(elems) != 1+len(want) {
		t.Fatalf("len(Elements()) = %d, want %d", len(elems), 1+len(want))
	}
	for i, w := range want {
		if got := elems[i+1]; got != w {
			t.Errorf("Elements()[%d] = %#v, want %#v", i+1, got, w)
		}
	}
}

func TestStrokeRecorder_ExtendAfterEndDrawsLine(t *testing.T) {
	r := NewStrokeRecorder()
	r.BeginStroke(Pt(0, 0))
	r.ExtendStroke(Pt(10, 0))
	r.EndStroke()
	r.ExtendStroke(Pt(10, 10))

	elems := r.Path().Elements()
	last, ok := elems[len(elems)-1].(LineTo)
	if !ok {
		t.Fatalf("last element = %T, want LineTo", elems[len(elems)-1])
	}
	if last.Point != Pt(10, 10) {
		t.Errorf("LineTo point = %v, want (10,10)", last.Point)
	}

	// The line sample becomes the control of the next segment.
	r.ExtendStroke(Pt(20, 10))
	q := r.Path().Elements()[len(elems)].(QuadTo)
	if q.Control != Pt(10, 10) || q.Point != Pt(15, 10) {
		t.Errorf("next segment = %#v, want control (10,10) point (15,10)", q)
	}
}

func TestStrokeRecorder_ExtendWithoutStrokeIgnored(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *StrokeRecorder)
	}{
		{"fresh", func(*StrokeRecorder) {}},
		{"after clear", func(r *StrokeRecorder) {
			r.BeginStroke(Pt(1, 1))
			r.Clear()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewStrokeRecorder()
			tt.setup(r)
			r.ExtendStroke(Pt(3, 4))

			if !r.IsEmpty() {
				t.Error("IsEmpty() = false after ExtendStroke without BeginStroke")
			}
			if n := len(r.Path().Elements()); n != 0 {
				t.Errorf("len(Elements()) = %d, want 0", n)
			}
		})
	}
}

func TestStrokeRecorder_MultiStrokeAccumulation(t *testing.T) {
	r := NewStrokeRecorder()
	for i := range 3 {
		x := float64(i * 20)
		r.BeginStroke(Pt(x, 0))
		r.ExtendStroke(Pt(x+5, 5))
		r.EndStroke()
	}
	if got := r.Path().Subpaths(); got != 3 {
		t.Errorf("Subpaths() = %d, want 3", got)
	}
}

func TestStrokeRecorder_DropsNonFinite(t *testing.T) {
	r := NewStrokeRecorder()
	r.BeginStroke(Pt(math.NaN(), 1))
	if !r.IsEmpty() {
		t.Fatal("NaN BeginStroke should be dropped")
	}

	r.BeginStroke(Pt(1, 1))
	r.ExtendStroke(Pt(math.Inf(1), 1))
	if got := r.Path().Len(); got != 1 {
		t.Errorf("Len() = %d after Inf sample, want 1", got)
	}
	if b := r.Bounds(); b != RectOf(Pt(1, 1)) {
		t.Errorf("Bounds() = %v, want point rect at (1,1)", b)
	}
}

func TestStrokeRecorder_Damage(t *testing.T) {
	r := NewStrokeRecorder()
	var got []Rect
	r.OnDamage(func(b Rect) { got = append(got, b) })

	r.BeginStroke(Pt(10, 10))
	r.ExtendStroke(Pt(30, 20))
	r.EndStroke()
	r.Clear()

	want := []Rect{
		RectOf(Pt(10, 10)),
		RectOf(Pt(10, 10), Pt(20, 15)),
		RectOf(Pt(10, 10), Pt(20, 15)),
	}
	if len(got) != len(want) {
		t.Fatalf("damage callbacks = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("damage[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStrokeRecorder_PathIsCopy(t *testing.T) {
	r := NewStrokeRecorder()
	r.BeginStroke(Pt(1, 1))
	p := r.Path()
	r.ExtendStroke(Pt(2, 2))
	if p.Len() != 1 {
		t.Errorf("snapshot Len() = %d, want 1", p.Len())
	}
}

func TestStrokeRecorder_ClearReusesStorage(t *testing.T) {
	r := NewStrokeRecorder()
	r.BeginStroke(Pt(0, 0))
	for i := range 100 {
		r.ExtendStroke(Pt(float64(i), float64(i)))
	}
	before := cap(r.path.elements)
	r.Clear()
	if got := cap(r.path.elements); got != before {
		t.Errorf("cap after Clear = %d, want %d", got, before)
	}
	if r.Stroking() {
		t.Error("Stroking() = true after Clear")
	}
}
