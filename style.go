package signpad

import "math"

// Default style values.
const (
	DefaultStrokeWidth  = 2.0
	DefaultRewriteTitle = "Rewrite"
	DefaultConfirmTitle = "Confirm"
)

// Style is the ink and export configuration read by every redraw and export.
// Strokes are always drawn with round caps and round joins.
type Style struct {
	// StrokeColor is the ink color. Default: SystemRed.
	StrokeColor RGBA

	// StrokeWidth is the line width in logical points. Zero draws a
	// one-pixel hairline. Default: 2.
	StrokeWidth float64

	// TransparentBackground makes exports start fully transparent instead of
	// opaque white. Default: true, which suits stamping onto documents.
	TransparentBackground bool
}

// DefaultStyle returns the style a new Pad starts with.
func DefaultStyle() Style {
	return Style{
		StrokeColor:           SystemRed,
		StrokeWidth:           DefaultStrokeWidth,
		TransparentBackground: true,
	}
}

// normalized returns the style with a usable stroke width.
func (s Style) normalized() Style {
	s.StrokeWidth = sanitizeWidth(s.StrokeWidth)
	return s
}

// sanitizeWidth maps negative and NaN widths to zero and infinite widths to
// the largest finite value.
func sanitizeWidth(w float64) float64 {
	switch {
	case math.IsNaN(w), w < 0:
		return 0
	case math.IsInf(w, 1):
		return math.MaxFloat64
	}
	return w
}
