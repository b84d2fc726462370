// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package padcanvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/signpad"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("padcanvas: canvas is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("padcanvas: nil DeviceProvider")

	// ErrNilPad is returned when a nil pad is passed.
	ErrNilPad = errors.New("padcanvas: nil pad")

	// ErrNilWindow is returned when a nil WindowProvider is passed.
	ErrNilWindow = errors.New("padcanvas: nil WindowProvider")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas shows a signpad.Pad in a gogpu window. It uploads the repainted
// parts of the pad surface to a GPU texture and draws it.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	pad      *signpad.Pad
	provider gpucontext.DeviceProvider
	texture  gpucontext.Texture
	width    int
	height   int
	headless bool
	uploads  int
	closed   bool
}

// New creates a Canvas for pad. The provider should come from
// gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, pad *signpad.Pad) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if pad == nil {
		return nil, ErrNilPad
	}

	// The texture matches the pad surface in device pixels.
	b := pad.Redraw().Bounds()

	c := &Canvas{
		pad:      pad,
		provider: provider,
		width:    b.Dx(),
		height:   b.Dy(),
		headless: provider.SurfaceFormat() == gputypes.TextureFormatUndefined,
	}
	info := provider.AdapterInfo()
	signpad.Logger().Info("padcanvas: created",
		"width", c.width, "height", c.height,
		"adapter", info.Name, "headless", c.headless)
	return c, nil
}

// NewForWindow creates a pad filling the window client area and a Canvas
// showing it. The pad uses the window scale factor and asks the window for
// a new frame when its surface changes. Further options apply after those.
func NewForWindow(provider gpucontext.DeviceProvider, window gpucontext.WindowProvider, opts ...signpad.Option) (*Canvas, error) {
	if window == nil {
		return nil, ErrNilWindow
	}
	w, h := window.Size()
	all := append([]signpad.Option{
		signpad.WithDisplayScale(window.ScaleFactor()),
		signpad.WithRedrawRequester(window),
	}, opts...)
	pad, err := signpad.New(w, h, all...)
	if err != nil {
		return nil, fmt.Errorf("padcanvas: window pad: %w", err)
	}
	return New(provider, pad)
}

// MustNew is like New but panics on error.
func MustNew(provider gpucontext.DeviceProvider, pad *signpad.Pad) *Canvas {
	c, err := New(provider, pad)
	if err != nil {
		panic(err)
	}
	return c
}

// Pad returns the pad shown by the canvas, or nil once closed.
func (c *Canvas) Pad() *signpad.Pad {
	if c.closed {
		return nil
	}
	return c.pad
}

// Size returns the texture size in device pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Headless reports whether the provider has no presentation surface.
func (c *Canvas) Headless() bool {
	return c.headless
}

// IsDirty reports whether the pad surface changed since the last upload.
func (c *Canvas) IsDirty() bool {
	return c.texture == nil || c.pad.Dirty()
}

// Uploads returns the number of texture uploads made so far. A region
// upload counts once per rectangle.
func (c *Canvas) Uploads() int {
	return c.uploads
}

// AttachPointer routes the pointer events of src to the pad.
func (c *Canvas) AttachPointer(src gpucontext.PointerEventSource) {
	src.OnPointer(func(ev gpucontext.PointerEvent) {
		if c.closed {
			return
		}
		c.pad.HandlePointer(ev)
	})
}

// Flush repaints the pad and uploads the changed pixels.
//
// The texture is created lazily by RenderTo; until then Flush returns a
// placeholder holding the full surface. Textures that support region
// updates receive only the dirty rectangles, others are re-uploaded whole.
func (c *Canvas) Flush() (gpucontext.Texture, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	rects := c.pad.DirtyRects()
	surface := c.pad.Redraw()

	if c.texture == nil {
		return &pendingTexture{width: c.width, height: c.height, data: surface.Pix}, nil
	}
	if len(rects) == 0 {
		return c.texture, nil
	}

	if ru, ok := c.texture.(gpucontext.TextureRegionUpdater); ok {
		for _, r := range rects {
			if err := ru.UpdateRegion(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), packRegion(surface, r)); err != nil {
				return nil, fmt.Errorf("padcanvas: region update %v failed: %w", r, err)
			}
			c.uploads++
		}
		return c.texture, nil
	}
	if u, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := u.UpdateData(surface.Pix); err != nil {
			return nil, fmt.Errorf("padcanvas: texture update failed: %w", err)
		}
		c.uploads++
		return c.texture, nil
	}
	signpad.Logger().Warn("padcanvas: texture is not updatable, frame dropped", "rects", len(rects))
	return c.texture, nil
}

// Texture returns the current GPU texture without flushing, or nil before
// the first RenderTo.
func (c *Canvas) Texture() gpucontext.Texture {
	return c.texture
}

// Close releases the texture. The pad stays usable. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if d, ok := c.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	c.texture = nil
	c.provider = nil
	return nil
}

// Provider returns the DeviceProvider, or nil once closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// packRegion copies r out of img as densely packed RGBA rows.
func packRegion(img *image.RGBA, r image.Rectangle) []byte {
	rowLen := r.Dx() * 4
	out := make([]byte, 0, rowLen*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := img.PixOffset(r.Min.X, y)
		out = append(out, img.Pix[off:off+rowLen]...)
	}
	return out
}

// pendingTexture holds the first frame until RenderTo has a
// TextureCreator to build the real texture with.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}

func (p *pendingTexture) Width() int  { return p.width }
func (p *pendingTexture) Height() int { return p.height }
