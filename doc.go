// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package signpad captures handwritten signatures.
//
// # Overview
//
// A Pad records freehand pointer strokes, renders them smoothed in real
// time and exports the ink as an image, optionally on a transparent
// background for stamping onto documents. Two actions complete the widget:
// Rewrite clears the ink, Confirm exports it. Confirming an empty pad is
// reported through its own callback instead of producing a blank image.
//
// # Quick Start
//
//	pad, err := signpad.New(320, 240, signpad.WithDisplayScale(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pad.OnConfirm(func(img image.Image) { save(img) })
//	pad.OnEmptyConfirm(func() { showHint() })
//
//	pad.PointerDown(10, 10)
//	pad.PointerMove(20, 10)
//	pad.PointerMove(30, 10)
//	pad.PointerUp(30, 10)
//	pad.Confirm()
//
// # Smoothing
//
// Each move sample adds a quadratic segment whose control point is the
// previous raw sample and whose end point is the midpoint between the
// previous and current samples. The first move after a down therefore draws
// from the down position to the first midpoint.
//
// # States
//
//	Idle --down--> Drawing --up--> IdleWithInk --down--> Drawing ...
//	any --Clear/Rewrite--> Idle
//	IdleWithInk or Drawing --Confirm--> Exported
//	Idle --Confirm--> Idle (empty-confirm callback)
//
// Exported accepts further strokes and confirms like IdleWithInk.
//
// # Rendering
//
// The visible surface is kept at the display scale on a white background
// and repainted per dirty tile. Exports are rendered from geometry into a
// fresh buffer of ceil(width*scale) x ceil(height*scale) pixels. Strokes use
// round caps and round joins; a tap without movement draws a dot.
//
// # Coordinate System
//
// Logical points with the origin at the top-left, X to the right and Y down.
//
// # Concurrency
//
// Pad, StrokeRecorder and SurfaceRenderer belong to one goroutine. Snapshot
// returns an immutable copy that can be exported elsewhere.
package signpad
