// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package padcanvas shows a signpad.Pad in a gogpu GPU window.
//
// The data flow is:
//
//	pointer events -> Pad (CPU surface) -> GPU texture -> window
//
// # Usage
//
//	canvas, err := padcanvas.NewForWindow(app.GPUContextProvider(), app, signpad.WithStrokeWidth(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer canvas.Close()
//
//	canvas.AttachPointer(app)
//	canvas.Pad().OnConfirm(func(img image.Image) { save(img) })
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Uploads
//
// The texture is created on the first RenderTo. After that only the
// rectangles the pad repainted are uploaded when the texture implements
// gpucontext.TextureRegionUpdater, otherwise the full surface is.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Pointer callbacks and RenderTo
// must run on the same (UI) thread.
package padcanvas
