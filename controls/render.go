package controls

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/signpad"
	"github.com/gogpu/signpad/internal/raster"
)

// Render composes the whole widget at the pad's display scale: the drawing
// surface with rounded corners, the outlined rewrite button and the filled
// confirm button with their labels.
func (p *Panel) Render() *image.RGBA {
	scale := p.pad.DisplayScale()
	w := int(math.Ceil(p.layout.Bounds.Max.X * scale))
	h := int(math.Ceil(p.layout.Bounds.Max.Y * scale))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	surface := p.pad.Redraw()
	clip := fill(w, h, roundedRect(p.layout.Surface, SurfaceRadius, scale))
	draw.DrawMask(dst, surface.Bounds(), surface, image.Point{}, clip, image.Point{}, draw.Over)

	ink := image.NewUniform(signpad.SystemRed.Color())
	rw := p.layout.Rewrite
	ring := []raster.Polyline{
		roundedRect(rw, ButtonRadius, scale),
		roundedRect(inset(rw, BorderWidth), ButtonRadius-BorderWidth, scale).Reversed(),
	}
	draw.DrawMask(dst, dst.Bounds(), ink, image.Point{}, fill(w, h, ring...), image.Point{}, draw.Over)
	draw.DrawMask(dst, dst.Bounds(), ink, image.Point{}, fill(w, h, roundedRect(p.layout.Confirm, ButtonRadius, scale)), image.Point{}, draw.Over)

	rewriteTitle, confirmTitle := p.pad.Titles()
	p.drawLabel(dst, rewriteTitle, p.layout.Rewrite, ink, scale)
	p.drawLabel(dst, confirmTitle, p.layout.Confirm, image.White, scale)
	return dst
}

// drawLabel centers text in r.
func (p *Panel) drawLabel(dst *image.RGBA, text string, r signpad.Rect, src image.Image, scale float64) {
	l := p.ts.Shape(text, LabelSize)
	if len(l.Glyphs) == 0 {
		return
	}
	x := (r.Min.X+r.Max.X)/2 - l.Width/2
	y := (r.Min.Y+r.Max.Y)/2 + (l.Ascent+l.Descent)/2

	b := dst.Bounds()
	polys := raster.Flatten(p.ts.Outline(l, x, y, scale), raster.Tolerance)
	draw.DrawMask(dst, b, src, image.Point{}, fill(b.Dx(), b.Dy(), polys...), image.Point{}, draw.Over)
}

// fill rasterizes polygons into a new w x h mask.
func fill(w, h int, polys ...raster.Polyline) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	f := raster.NewFiller(w, h)
	f.Add(polys)
	f.Mask(m)
	return m
}

// roundedRect returns r with corner radius, in device space.
func roundedRect(r signpad.Rect, radius, scale float64) raster.Polyline {
	return raster.RoundedRect(r.Min.X*scale, r.Min.Y*scale, r.Max.X*scale, r.Max.Y*scale, radius*scale)
}

func inset(r signpad.Rect, d float64) signpad.Rect {
	return r.Outset(-d)
}
