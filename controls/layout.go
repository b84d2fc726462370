package controls

import (
	"math"

	"github.com/gogpu/signpad"
)

// Widget geometry in logical points.
const (
	StripWidth    = 180.0
	StripHeight   = 40.0
	StripSpacing  = 12.0
	BottomInset   = 1.0
	ButtonRadius  = 8.0
	BorderWidth   = 1.0
	SurfaceRadius = 14.0
	LabelSize     = 16.0
)

// Button identifies a control in the button strip.
type Button int

// Buttons.
const (
	None Button = iota
	Rewrite
	Confirm
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case Rewrite:
		return "Rewrite"
	case Confirm:
		return "Confirm"
	default:
		return "None"
	}
}

// Layout places the drawing surface and the button strip inside a widget.
//
// The strip holds two equal buttons, rewrite on the left and confirm on the
// right, and sits centered just above the bottom edge. The surface fills
// the full width above the strip.
type Layout struct {
	Bounds  signpad.Rect
	Surface signpad.Rect
	Rewrite signpad.Rect
	Confirm signpad.Rect
}

// NewLayout lays out a width x height widget.
func NewLayout(width, height float64) Layout {
	top := height - BottomInset - StripHeight
	left := (width - StripWidth) / 2
	bw := (StripWidth - StripSpacing) / 2

	return Layout{
		Bounds:  signpad.Rect{Max: signpad.Pt(width, height)},
		Surface: signpad.Rect{Max: signpad.Pt(width, math.Max(top, 0))},
		Rewrite: signpad.Rect{
			Min: signpad.Pt(left, top),
			Max: signpad.Pt(left+bw, top+StripHeight),
		},
		Confirm: signpad.Rect{
			Min: signpad.Pt(left+bw+StripSpacing, top),
			Max: signpad.Pt(left+StripWidth, top+StripHeight),
		},
	}
}

// SurfaceSize returns the drawing surface size in whole points.
func (l Layout) SurfaceSize() (width, height int) {
	return int(math.Floor(l.Surface.Max.X)), int(math.Floor(l.Surface.Max.Y))
}

// Hit returns the button under (x, y), or None.
func (l Layout) Hit(x, y float64) Button {
	switch {
	case contains(l.Rewrite, x, y):
		return Rewrite
	case contains(l.Confirm, x, y):
		return Confirm
	}
	return None
}

// InSurface reports whether (x, y) lies on the drawing surface.
func (l Layout) InSurface(x, y float64) bool {
	return contains(l.Surface, x, y)
}

// ButtonRect returns the rectangle of b.
func (l Layout) ButtonRect(b Button) signpad.Rect {
	if b == Confirm {
		return l.Confirm
	}
	return l.Rewrite
}

// Landscape returns the widget size for landscape presentation: the longer
// side becomes the width.
func Landscape(width, height int) (int, int) {
	if width < height {
		return height, width
	}
	return width, height
}

// contains reports whether (x, y) is in the half-open rectangle r.
func contains(r signpad.Rect, x, y float64) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
