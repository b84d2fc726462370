package signpad

import "image"

// Snapshot is an immutable copy of a pad's ink and style. Unlike the Pad it
// may be used from any goroutine.
type Snapshot struct {
	path   *Path
	style  Style
	width  int
	height int
	scale  float64
}

// Snapshot captures the current ink and style.
func (p *Pad) Snapshot() *Snapshot {
	return &Snapshot{
		path:   p.rec.Path(),
		style:  p.renderer.Style(),
		width:  p.width,
		height: p.height,
		scale:  p.scale,
	}
}

// IsEmpty reports whether the snapshot holds no ink.
func (s *Snapshot) IsEmpty() bool {
	return s.path.IsEmpty()
}

// Style returns the captured style.
func (s *Snapshot) Style() Style {
	return s.style
}

// Path returns a copy of the captured geometry.
func (s *Snapshot) Path() *Path {
	return s.path.Clone()
}

// Export renders the captured ink exactly as Pad.ExportImage would have at
// capture time.
func (s *Snapshot) Export(scale float64) *image.RGBA {
	return exportImage(s.path.Elements(), s.style, s.width, s.height, resolveScale(scale, s.scale))
}
