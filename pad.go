package signpad

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gpucontext"
)

// Pad is a signature capture surface.
//
// A Pad owns one StrokeRecorder and one SurfaceRenderer. Pointer input feeds
// the recorder, every change marks the touched region dirty and asks the
// host to redraw, and Confirm exports the ink through the confirm callback.
//
// Pad is NOT safe for concurrent use. Use Snapshot to hand the current ink
// to another goroutine.
type Pad struct {
	width  int
	height int
	scale  float64

	rec      *StrokeRecorder
	renderer *SurfaceRenderer
	state    State

	rewriteTitle string
	confirmTitle string
	requester    RedrawRequester

	onConfirm      func(image.Image)
	onRewrite      func()
	onEmptyConfirm func()

	// activePointer is the pointer ID that owns the current stroke.
	activePointer int
	pointerDown   bool
}

// New creates a pad with a width x height logical surface.
func New(width, height int, opts ...Option) (*Pad, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.scale > 0) || math.IsInf(o.scale, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, o.scale)
	}

	p := &Pad{
		width:        width,
		height:       height,
		scale:        o.scale,
		rec:          NewStrokeRecorder(),
		rewriteTitle: o.rewriteTitle,
		confirmTitle: o.confirmTitle,
		requester:    o.requester,
	}
	p.renderer = NewSurfaceRenderer(p.rec, width, height, o.scale, o.style)
	p.rec.OnDamage(p.renderer.InvalidateStroke)

	Logger().Info("signpad: pad created",
		"width", width,
		"height", height,
		"scale", o.scale)
	return p, nil
}

// MustNew is like New but panics on error.
// Use only when the dimensions are known to be valid.
func MustNew(width, height int, opts ...Option) *Pad {
	p, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// PointerDown begins a stroke at (x, y).
func (p *Pad) PointerDown(x, y float64) {
	p.rec.BeginStroke(Pt(x, y))
	if p.rec.Stroking() {
		p.state = Drawing
	}
	p.requestRedraw()
}

// PointerMove extends the current stroke towards (x, y).
// Moves without an active stroke are ignored.
func (p *Pad) PointerMove(x, y float64) {
	if !p.rec.Stroking() {
		return
	}
	p.rec.ExtendStroke(Pt(x, y))
	p.state = Drawing
	p.requestRedraw()
}

// PointerUp ends the current stroke. The release position adds no geometry.
func (p *Pad) PointerUp(_, _ float64) {
	p.rec.EndStroke()
	if p.state == Drawing {
		p.state = IdleWithInk
	}
}

// HandlePointer dispatches a host pointer event.
//
// The pointer that goes down first owns the stroke until it is released or
// cancelled; events from other pointers are ignored.
func (p *Pad) HandlePointer(ev gpucontext.PointerEvent) {
	if p.pointerDown && ev.PointerID != p.activePointer {
		Logger().Debug("signpad: ignored secondary pointer", "id", ev.PointerID, "type", ev.Type)
		return
	}

	switch ev.Type {
	case gpucontext.PointerDown:
		p.activePointer = ev.PointerID
		p.pointerDown = true
		p.PointerDown(ev.X, ev.Y)
	case gpucontext.PointerMove:
		if p.pointerDown {
			p.PointerMove(ev.X, ev.Y)
		}
	case gpucontext.PointerUp, gpucontext.PointerCancel:
		if p.pointerDown {
			p.pointerDown = false
			p.PointerUp(ev.X, ev.Y)
		}
	}
}

// Clear removes all ink and returns to the Idle state.
func (p *Pad) Clear() {
	p.rec.Clear()
	p.pointerDown = false
	p.state = Idle
	p.renderer.InvalidateAll()
	p.requestRedraw()
}

// IsEmpty reports whether no stroke was begun since the last clear.
func (p *Pad) IsEmpty() bool {
	return p.rec.IsEmpty()
}

// ExportImage renders the ink at scale device pixels per point. A
// non-positive scale selects the display scale. No callback fires.
func (p *Pad) ExportImage(scale float64) *image.RGBA {
	return p.renderer.ExportImage(scale)
}

// Rewrite clears the pad and fires the rewrite callback.
func (p *Pad) Rewrite() {
	p.Clear()
	Logger().Info("signpad: rewrite")
	if p.onRewrite != nil {
		p.onRewrite()
	}
}

// Confirm exports the ink at the display scale and passes it to the confirm
// callback. On an empty pad the empty-confirm callback fires instead and
// Confirm returns false.
func (p *Pad) Confirm() bool {
	if p.rec.IsEmpty() {
		Logger().Info("signpad: confirm on empty pad")
		if p.onEmptyConfirm != nil {
			p.onEmptyConfirm()
		}
		return false
	}

	img := p.renderer.ExportImage(p.scale)
	p.state = Exported
	b := img.Bounds()
	Logger().Info("signpad: signature confirmed", "width", b.Dx(), "height", b.Dy())
	if p.onConfirm != nil {
		p.onConfirm(img)
	}
	return true
}

// OnConfirm sets the callback that receives the exported signature.
// Pass nil to remove it.
func (p *Pad) OnConfirm(fn func(image.Image)) {
	p.onConfirm = fn
}

// OnRewrite sets the callback fired after Rewrite. Pass nil to remove it.
func (p *Pad) OnRewrite(fn func()) {
	p.onRewrite = fn
}

// OnEmptyConfirm sets the callback fired when Confirm finds no ink.
// Pass nil to remove it.
func (p *Pad) OnEmptyConfirm(fn func()) {
	p.onEmptyConfirm = fn
}

// SetStrokeColor sets the ink color and repaints.
func (p *Pad) SetStrokeColor(c RGBA) {
	s := p.renderer.Style()
	s.StrokeColor = c
	p.renderer.SetStyle(s)
	p.requestRedraw()
}

// SetStrokeWidth sets the line width in points and repaints.
// Negative widths are treated as 0.
func (p *Pad) SetStrokeWidth(w float64) {
	s := p.renderer.Style()
	s.StrokeWidth = w
	p.renderer.SetStyle(s)
	p.requestRedraw()
}

// SetTransparentBackground selects the export background. The visible
// surface is unaffected.
func (p *Pad) SetTransparentBackground(transparent bool) {
	s := p.renderer.Style()
	s.TransparentBackground = transparent
	p.renderer.SetStyle(s)
}

// SetRewriteTitle sets the rewrite button label.
func (p *Pad) SetRewriteTitle(title string) {
	p.rewriteTitle = title
	p.requestRedraw()
}

// SetConfirmTitle sets the confirm button label.
func (p *Pad) SetConfirmTitle(title string) {
	p.confirmTitle = title
	p.requestRedraw()
}

// Titles returns the rewrite and confirm button labels.
func (p *Pad) Titles() (rewrite, confirm string) {
	return p.rewriteTitle, p.confirmTitle
}

// Redraw repaints the dirty parts of the visible surface and returns it.
// The returned image is owned by the pad and must not be modified.
func (p *Pad) Redraw() *image.RGBA {
	return p.renderer.Redraw()
}

// Dirty reports whether the visible surface needs repainting.
func (p *Pad) Dirty() bool {
	return p.renderer.Dirty()
}

// DirtyRects returns the device-pixel rectangles the next Redraw repaints.
func (p *Pad) DirtyRects() []image.Rectangle {
	return p.renderer.DirtyRects()
}

// State returns the interaction state.
func (p *Pad) State() State {
	return p.state
}

// Size returns the logical surface size.
func (p *Pad) Size() (width, height int) {
	return p.width, p.height
}

// DisplayScale returns the device pixels per logical point of the visible
// surface.
func (p *Pad) DisplayScale() float64 {
	return p.scale
}

// Style returns the current style.
func (p *Pad) Style() Style {
	return p.renderer.Style()
}

// Path returns a copy of the recorded geometry.
func (p *Pad) Path() *Path {
	return p.rec.Path()
}

func (p *Pad) requestRedraw() {
	if p.requester != nil {
		p.requester.RequestRedraw()
	}
}
