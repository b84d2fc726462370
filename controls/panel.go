package controls

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/signpad"
)

// Panel is the complete signature widget: a Pad on top and the rewrite and
// confirm buttons below it.
//
// Panel routes host pointer events: a press that starts on a button
// activates that button when released over it, a press that starts on the
// surface draws. Buttons never draw and strokes never press buttons.
//
// Panel is NOT safe for concurrent use.
type Panel struct {
	pad    *signpad.Pad
	layout Layout
	ts     *Typesetter

	pressed Button
	pressID int

	drawing bool
	drawID  int
}

// NewPanel creates a width x height widget. The pad receives the surface
// area above the button strip and the given options.
func NewPanel(width, height int, opts ...signpad.Option) (*Panel, error) {
	layout := NewLayout(float64(width), float64(height))
	sw, sh := layout.SurfaceSize()
	pad, err := signpad.New(sw, sh, opts...)
	if err != nil {
		return nil, fmt.Errorf("controls: widget %dx%d: %w", width, height, err)
	}
	ts, err := NewTypesetter()
	if err != nil {
		return nil, err
	}
	return &Panel{pad: pad, layout: layout, ts: ts}, nil
}

// Pad returns the drawing pad.
func (p *Panel) Pad() *signpad.Pad {
	return p.pad
}

// Layout returns the widget layout.
func (p *Panel) Layout() Layout {
	return p.layout
}

// Pressed returns the button currently held down, or None.
func (p *Panel) Pressed() Button {
	return p.pressed
}

// Tap activates a button: Rewrite clears the pad, Confirm exports it.
func (p *Panel) Tap(b Button) {
	switch b {
	case Rewrite:
		p.pad.Rewrite()
	case Confirm:
		p.pad.Confirm()
	}
}

// HandlePointer dispatches a host pointer event in widget coordinates.
func (p *Panel) HandlePointer(ev gpucontext.PointerEvent) {
	switch ev.Type {
	case gpucontext.PointerDown:
		if p.drawing || p.pressed != None {
			p.forward(ev)
			return
		}
		if b := p.layout.Hit(ev.X, ev.Y); b != None {
			p.pressed = b
			p.pressID = ev.PointerID
			return
		}
		if p.layout.InSurface(ev.X, ev.Y) {
			p.drawing = true
			p.drawID = ev.PointerID
			p.pad.HandlePointer(ev)
		}

	case gpucontext.PointerMove:
		p.forward(ev)

	case gpucontext.PointerUp, gpucontext.PointerCancel:
		if p.pressed != None && ev.PointerID == p.pressID {
			b := p.pressed
			p.pressed = None
			if ev.Type == gpucontext.PointerUp && p.layout.Hit(ev.X, ev.Y) == b {
				p.Tap(b)
			}
			return
		}
		p.forward(ev)
		if p.drawing && ev.PointerID == p.drawID {
			p.drawing = false
		}
	}
}

// forward passes ev to the pad while a stroke is active. The pad drops
// events from other pointers.
func (p *Panel) forward(ev gpucontext.PointerEvent) {
	if p.drawing {
		p.pad.HandlePointer(ev)
	}
}
