package signpad

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/signpad/internal/damage"
	"github.com/gogpu/signpad/internal/raster"
)

// MaxExportSize caps each side of an exported image, in pixels. Larger
// requests are scaled down to fit.
const MaxExportSize = 16384

// SurfaceRenderer paints a recorder's geometry onto the visible surface and
// renders exports.
//
// The visible surface is kept at the display scale on a white background.
// Only tiles marked dirty are repainted by Redraw. Exports are always
// re-rendered from geometry.
//
// Every tile is rasterized on its own, so a pixel depends only on the
// geometry and style, never on which other tiles were repainted with it.
//
// SurfaceRenderer is NOT safe for concurrent use.
type SurfaceRenderer struct {
	rec    *StrokeRecorder
	width  int
	height int
	scale  float64
	style  Style

	surface *image.RGBA
	tiles   *tilePainter
	dirty   *damage.Region
}

// NewSurfaceRenderer creates a renderer for a width x height logical surface
// displayed at scale device pixels per point. The whole surface starts dirty.
func NewSurfaceRenderer(rec *StrokeRecorder, width, height int, scale float64, style Style) *SurfaceRenderer {
	dw, dh := deviceSize(width, height, scale)
	return &SurfaceRenderer{
		rec:     rec,
		width:   width,
		height:  height,
		scale:   scale,
		style:   style.normalized(),
		surface: image.NewRGBA(image.Rect(0, 0, dw, dh)),
		tiles:   newTilePainter(),
		dirty:   damage.New(dw, dh),
	}
}

// Style returns the current style.
func (r *SurfaceRenderer) Style() Style {
	return r.style
}

// SetStyle replaces the style and marks the whole surface dirty.
func (r *SurfaceRenderer) SetStyle(s Style) {
	r.style = s.normalized()
	r.InvalidateAll()
}

// Scale returns the display scale.
func (r *SurfaceRenderer) Scale() float64 {
	return r.scale
}

// Invalidate marks the logical rectangle dirty.
func (r *SurfaceRenderer) Invalidate(rect Rect) {
	if rect.Empty() {
		return
	}
	dr := image.Rectangle{
		Min: image.Pt(floorInt(rect.Min.X*r.scale), floorInt(rect.Min.Y*r.scale)),
		Max: image.Pt(ceilInt(rect.Max.X*r.scale), ceilInt(rect.Max.Y*r.scale)),
	}
	r.dirty.MarkRect(dr)
}

// InvalidateStroke marks the logical rectangle dirty after growing it by the
// distance ink can reach past its geometry.
func (r *SurfaceRenderer) InvalidateStroke(rect Rect) {
	r.Invalidate(rect.Outset(r.inkMargin()))
}

// InvalidateAll marks the whole surface dirty.
func (r *SurfaceRenderer) InvalidateAll() {
	r.dirty.MarkAll()
}

// Dirty reports whether any part of the surface needs repainting.
func (r *SurfaceRenderer) Dirty() bool {
	return !r.dirty.IsEmpty()
}

// DirtyRects returns the device-pixel rectangles Redraw would repaint.
func (r *SurfaceRenderer) DirtyRects() []image.Rectangle {
	return r.dirty.Rects()
}

// Redraw repaints the dirty tiles of the surface and returns it.
// The result is a function of the geometry and style alone: a full repaint
// and any sequence of partial repaints produce identical pixels.
// The returned image is owned by the renderer and must not be modified.
func (r *SurfaceRenderer) Redraw() *image.RGBA {
	if r.dirty.IsEmpty() {
		return r.surface
	}

	batch := raster.NewBatch(raster.Flatten(toDevice(r.rec.elements(), r.scale), raster.Tolerance))
	ink := image.NewUniform(r.style.StrokeColor.Color())
	b := r.surface.Bounds()
	tilesX, tilesY := r.dirty.Tiles()
	painted, shapes := 0, 0
	for ty := range tilesY {
		for tx := range tilesX {
			if !r.dirty.IsDirty(tx, ty) {
				continue
			}
			shapes += r.tiles.paint(r.surface, tileRect(tx, ty, b), batch, ink, r.style.StrokeWidth*r.scale, true)
			painted++
		}
	}

	Logger().Debug("signpad: redraw", "tiles", painted, "shapes", shapes)
	r.dirty.Clear()
	return r.surface
}

// Surface returns the visible surface without repainting.
func (r *SurfaceRenderer) Surface() *image.RGBA {
	return r.surface
}

// ExportImage renders the geometry into a new image at the given scale.
// A non-positive or non-finite scale selects the display scale.
func (r *SurfaceRenderer) ExportImage(scale float64) *image.RGBA {
	return exportImage(r.rec.elements(), r.style, r.width, r.height, resolveScale(scale, r.scale))
}

// resolveScale returns scale, or display when scale is not a positive
// finite number.
func resolveScale(scale, display float64) float64 {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return display
	}
	return scale
}

// inkMargin returns how far, in logical points, ink reaches past the
// geometry: half the stroke width plus one device pixel of antialiasing.
func (r *SurfaceRenderer) inkMargin() float64 {
	hw := max(r.style.StrokeWidth*r.scale/2, raster.MinHalfWidth)
	return (hw + 1) / r.scale
}

// exportImage renders elements into a fresh buffer of
// ceil(width*scale) x ceil(height*scale) pixels. The style is read once.
func exportImage(elems []PathElement, style Style, width, height int, scale float64) *image.RGBA {
	style = style.normalized()
	dw, dh, scale := exportSize(width, height, scale)
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	if !style.TransparentBackground {
		draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	}
	if len(elems) == 0 {
		return dst
	}

	batch := raster.NewBatch(raster.Flatten(toDevice(elems, scale), raster.Tolerance))
	ink := image.NewUniform(style.StrokeColor.Color())
	tp := newTilePainter()
	b := dst.Bounds()
	for ty := 0; ty*damage.TileSize < dh; ty++ {
		for tx := 0; tx*damage.TileSize < dw; tx++ {
			tp.paint(dst, tileRect(tx, ty, b), batch, ink, style.StrokeWidth*scale, false)
		}
	}

	Logger().Debug("signpad: export", "width", dw, "height", dh, "scale", scale, "transparent", style.TransparentBackground)
	return dst
}

// exportSize returns the export buffer size for scale, and the scale
// reduced so that neither side exceeds MaxExportSize.
func exportSize(width, height int, scale float64) (int, int, float64) {
	if m := float64(max(width, height)); m*scale > MaxExportSize {
		scale = MaxExportSize / m
	}
	dw, dh := deviceSize(width, height, scale)
	return min(dw, MaxExportSize), min(dh, MaxExportSize), scale
}

// tileRect returns tile (tx, ty) clipped to bounds.
func tileRect(tx, ty int, bounds image.Rectangle) image.Rectangle {
	const ts = damage.TileSize
	return image.Rect(tx*ts, ty*ts, (tx+1)*ts, (ty+1)*ts).Intersect(bounds)
}

// tilePainter strokes geometry into one tile at a time.
type tilePainter struct {
	stroker *raster.Stroker
	buf     []byte
}

func newTilePainter() *tilePainter {
	return &tilePainter{
		stroker: &raster.Stroker{},
		buf:     make([]byte, damage.TileSize*damage.TileSize),
	}
}

// paint composites the stroked batch over the tile win of dst, first
// filling the tile white when background is set. It returns the number of
// shapes that reached the tile.
func (tp *tilePainter) paint(dst *image.RGBA, win image.Rectangle, batch *raster.Batch, ink image.Image, strokeWidth float64, background bool) int {
	if win.Empty() {
		return 0
	}
	b := dst.Bounds()
	if background {
		draw.Draw(dst, win, image.White, image.Point{}, draw.Src)
	}
	tp.stroker.ResetWindow(b.Dx(), b.Dy(), strokeWidth, win)
	tp.stroker.AddBatch(batch)
	if tp.stroker.Shapes() == 0 {
		return 0
	}

	// The rasterizer writes rows back to back, so the mask stride must be
	// its width.
	w, h := win.Dx(), win.Dy()
	mask := &image.Alpha{Pix: tp.buf[:w*h], Stride: w, Rect: image.Rect(0, 0, w, h)}
	clear(mask.Pix)
	tp.stroker.Mask(mask)
	draw.DrawMask(dst, win, ink, image.Point{}, mask, image.Point{}, draw.Over)
	return tp.stroker.Shapes()
}

// toDevice converts logical path elements to device space.
func toDevice(elems []PathElement, scale float64) []raster.PathElement {
	out := make([]raster.PathElement, 0, len(elems))
	dev := func(p Point) raster.Point {
		return raster.Point{X: p.X * scale, Y: p.Y * scale}
	}
	for _, e := range elems {
		switch e := e.(type) {
		case MoveTo:
			out = append(out, raster.MoveTo{Point: dev(e.Point)})
		case LineTo:
			out = append(out, raster.LineTo{Point: dev(e.Point)})
		case QuadTo:
			out = append(out, raster.QuadTo{Control: dev(e.Control), Point: dev(e.Point)})
		}
	}
	return out
}

// deviceSize returns the pixel size of a logical surface at scale.
func deviceSize(width, height int, scale float64) (int, int) {
	return max(ceilInt(float64(width)*scale), 1), max(ceilInt(float64(height)*scale), 1)
}

func floorInt(v float64) int {
	return clampInt(math.Floor(v))
}

func ceilInt(v float64) int {
	return clampInt(math.Ceil(v))
}

// clampInt converts v to int, saturating far outside any surface.
func clampInt(v float64) int {
	const limit = 1 << 30
	switch {
	case math.IsNaN(v):
		return 0
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return int(v)
}
