package raster

import (
	"image"
	"testing"
)

func fillMask(w, h int, polys ...Polyline) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	f := NewFiller(w, h)
	f.Add(polys)
	f.Mask(m)
	return m
}

func TestFiller_Rect(t *testing.T) {
	m := fillMask(40, 40, RoundedRect(10, 10, 30, 30, 0))
	tests := []struct {
		x, y int
		want uint8
	}{
		{20, 20, 0xFF},
		{10, 10, 0xFF},
		{29, 29, 0xFF},
		{5, 5, 0},
		{30, 20, 0},
	}
	for _, tt := range tests {
		if got := m.AlphaAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("alpha at (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFiller_ReversedContourIsHole(t *testing.T) {
	outer := RoundedRect(0, 0, 40, 40, 0)
	inner := RoundedRect(10, 10, 30, 30, 0).Reversed()
	m := fillMask(40, 40, outer, inner)

	if got := m.AlphaAt(20, 20).A; got != 0 {
		t.Errorf("hole alpha = %d, want 0", got)
	}
	if got := m.AlphaAt(5, 20).A; got != 0xFF {
		t.Errorf("ring alpha = %d, want 255", got)
	}
}

func TestFiller_DegeneratePolygon(t *testing.T) {
	m := fillMask(10, 10, Polyline{{1, 1}, {8, 8}})
	for i, a := range m.Pix {
		if a != 0 {
			t.Fatalf("pixel %d = %d, want untouched mask", i, a)
		}
	}
}

func TestRoundedRect_Corners(t *testing.T) {
	m := fillMask(40, 40, RoundedRect(0, 0, 40, 40, 10))
	if got := m.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("corner alpha = %d, want 0", got)
	}
	if got := m.AlphaAt(39, 39).A; got != 0 {
		t.Errorf("corner alpha = %d, want 0", got)
	}
	if got := m.AlphaAt(0, 20).A; got != 0xFF {
		t.Errorf("edge alpha = %d, want 255", got)
	}
	if got := m.AlphaAt(20, 20).A; got != 0xFF {
		t.Errorf("center alpha = %d, want 255", got)
	}
}

func TestRoundedRect_RadiusClamped(t *testing.T) {
	pl := RoundedRect(0, 0, 10, 4, 100)
	for _, p := range pl {
		if p.X < -1e-9 || p.X > 10+1e-9 || p.Y < -1e-9 || p.Y > 4+1e-9 {
			t.Fatalf("point %v outside the rectangle", p)
		}
	}
}

func TestPolyline_Reversed(t *testing.T) {
	pl := Polyline{{0, 0}, {1, 0}, {1, 1}}
	got := pl.Reversed()
	want := Polyline{{1, 1}, {1, 0}, {0, 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Reversed()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if pl[0] != (Point{0, 0}) {
		t.Error("Reversed() modified the receiver")
	}
}
