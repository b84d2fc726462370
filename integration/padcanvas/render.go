// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package padcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// ErrInvalidRenderer is returned when the draw context has no
// gpucontext.TextureCreator.
var ErrInvalidRenderer = errors.New("padcanvas: draw context has no TextureCreator")

// RenderTo draws the pad at (0, 0).
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition flushes the pad and draws its texture with the top-left
// corner at (x, y) device pixels.
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}

	tex, err := c.Flush()
	if err != nil {
		return err
	}

	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("padcanvas: NewTextureFromRGBA failed: %w", err)
		}

		// The pad surface is premultiplied.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		c.texture = realTex
		c.uploads++
		tex = realTex
	}

	return dc.DrawTexture(tex, x, y)
}
