package controls

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/signpad"
	"github.com/gogpu/signpad/internal/raster"
)

// ErrFont is returned when label font data cannot be parsed.
var ErrFont = errors.New("controls: invalid font")

// Glyph is one shaped glyph, positioned relative to the label origin (left
// end of the baseline), in points, Y down.
type Glyph struct {
	ID   font.GID
	X, Y float64
}

// Label is shaped button text.
type Label struct {
	Text    string
	Size    float64
	RTL     bool
	Glyphs  []Glyph
	Width   float64
	Ascent  float64
	Descent float64 // negative below the baseline
}

// Typesetter shapes and outlines button labels with one font.
//
// Shaping goes through go-text's HarfBuzz port; glyph outlines are read
// with golang.org/x/image/font/sfnt from the same font data.
//
// Typesetter is NOT safe for concurrent use.
type Typesetter struct {
	face   *font.Face
	sfont  *sfnt.Font
	buf    sfnt.Buffer
	shaper shaping.HarfbuzzShaper
}

// NewTypesetter creates a typesetter using the Go Regular font.
func NewTypesetter() (*Typesetter, error) {
	return NewTypesetterFromTTF(goregular.TTF)
}

// NewTypesetterFromTTF creates a typesetter from TrueType or OpenType data.
func NewTypesetterFromTTF(data []byte) (*Typesetter, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFont, err)
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFont, err)
	}
	return &Typesetter{face: face, sfont: sf}, nil
}

// Shape shapes text at size points.
func (t *Typesetter) Shape(text string, size float64) Label {
	l := Label{Text: text, Size: size, RTL: isRTL(text)}
	if text == "" || size <= 0 {
		return l
	}

	runes := []rune(text)
	dir := di.DirectionLTR
	if l.RTL {
		dir = di.DirectionRTL
	}
	out := t.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      t.face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	var x float64
	l.Glyphs = make([]Glyph, 0, len(out.Glyphs))
	for _, g := range out.Glyphs {
		l.Glyphs = append(l.Glyphs, Glyph{
			ID: g.GlyphID,
			X:  x + fixedToFloat(g.XOffset),
			Y:  -fixedToFloat(g.YOffset),
		})
		x += fixedToFloat(g.Advance)
	}
	l.Width = x
	l.Ascent = fixedToFloat(out.LineBounds.Ascent)
	l.Descent = fixedToFloat(out.LineBounds.Descent)
	return l
}

// Outline returns the glyph contours of l in device space, with the label
// origin at (x, y) points and scale device pixels per point.
// Glyphs the font cannot outline are skipped.
func (t *Typesetter) Outline(l Label, x, y, scale float64) []raster.PathElement {
	ppem := fixed.Int26_6(l.Size * scale * 64)
	var out []raster.PathElement
	for _, g := range l.Glyphs {
		if g.ID > 0xFFFF {
			continue
		}
		segs, err := t.sfont.LoadGlyph(&t.buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			signpad.Logger().Debug("controls: glyph outline unavailable", "gid", g.ID, "err", err)
			continue
		}

		ox := (x + g.X) * scale
		oy := (y + g.Y) * scale
		pt := func(p fixed.Point26_6) raster.Point {
			return raster.Point{X: ox + fixedToFloat(p.X), Y: oy + fixedToFloat(p.Y)}
		}
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				out = append(out, raster.MoveTo{Point: pt(s.Args[0])})
			case sfnt.SegmentOpLineTo:
				out = append(out, raster.LineTo{Point: pt(s.Args[0])})
			case sfnt.SegmentOpQuadTo:
				out = append(out, raster.QuadTo{Control: pt(s.Args[0]), Point: pt(s.Args[1])})
			case sfnt.SegmentOpCubeTo:
				out = append(out, raster.CubeTo{Control1: pt(s.Args[0]), Control2: pt(s.Args[1]), Point: pt(s.Args[2])})
			}
		}
	}
	return out
}

// isRTL reports whether the paragraph direction of text is right-to-left.
func isRTL(text string) bool {
	if text == "" {
		return false
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return false
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return false
	}
	return o.Direction() == bidi.RightToLeft
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
