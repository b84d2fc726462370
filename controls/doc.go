// Package controls provides the button strip around a signpad.Pad.
//
// A Panel lays out the drawing surface above two buttons, rewrite and
// confirm, routes pointer input between them and composes a preview image
// of the whole widget. Button labels are shaped with go-text/typesetting
// and rendered from the glyph outlines of the Go Regular font.
//
// Example:
//
//	w, h := controls.Landscape(390, 844)
//	panel, err := controls.NewPanel(w, h, signpad.WithDisplayScale(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	panel.Pad().OnConfirm(func(img image.Image) { upload(img) })
//	window.OnPointer(panel.HandlePointer)
//
// Orientation is host policy: Landscape only computes the preferred size.
package controls
