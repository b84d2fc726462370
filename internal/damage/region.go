// Package damage tracks which parts of a pixel surface need repainting.
package damage

import (
	"image"
	"math/bits"
)

// TileSize is the edge length, in pixels, of one tracked tile.
const TileSize = 32

// Region tracks dirty tiles of a surface using a bitmap.
//
// The bitmap uses one bit per tile, packed into uint64 words (64 tiles per word).
// Bit index = ty * tilesX + tx.
//
// Region is NOT safe for concurrent use; it belongs to the goroutine that
// owns the surface.
type Region struct {
	words  []uint64
	width  int
	height int
	tilesX int
	tilesY int
}

// New creates a region for a width x height pixel surface.
// All tiles start dirty, since nothing has been painted yet.
func New(width, height int) *Region {
	d := &Region{}
	d.Resize(width, height)
	return d
}

// Resize changes the tracked surface size. All tiles of the resized region
// are marked dirty.
func (d *Region) Resize(width, height int) {
	d.width = max(width, 0)
	d.height = max(height, 0)
	d.tilesX = (d.width + TileSize - 1) / TileSize
	d.tilesY = (d.height + TileSize - 1) / TileSize
	d.words = make([]uint64, (d.tilesX*d.tilesY+63)/64)
	d.MarkAll()
}

// Size returns the tracked surface size in pixels.
func (d *Region) Size() (width, height int) {
	return d.width, d.height
}

// Tiles returns the tile grid dimensions.
func (d *Region) Tiles() (tilesX, tilesY int) {
	return d.tilesX, d.tilesY
}

// Mark marks a single tile as dirty.
// Does nothing if coordinates are out of bounds.
func (d *Region) Mark(tx, ty int) {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return
	}
	idx := ty*d.tilesX + tx
	d.words[idx/64] |= 1 << (idx & 63)
}

// MarkRect marks every tile intersecting r (pixel space) as dirty.
// Parts of r outside the surface are ignored.
func (d *Region) MarkRect(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, d.width, d.height))
	if r.Empty() {
		return
	}

	tx1 := r.Min.X / TileSize
	ty1 := r.Min.Y / TileSize
	tx2 := (r.Max.X - 1) / TileSize
	ty2 := (r.Max.Y - 1) / TileSize
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			d.Mark(tx, ty)
		}
	}
}

// MarkAll marks all tiles as dirty.
func (d *Region) MarkAll() {
	total := d.tilesX * d.tilesY
	full := total / 64
	for i := 0; i < full; i++ {
		d.words[i] = ^uint64(0)
	}
	if rem := total % 64; rem > 0 {
		d.words[full] = (uint64(1) << rem) - 1
	}
}

// Clear marks all tiles clean.
func (d *Region) Clear() {
	clear(d.words)
}

// IsDirty reports whether the tile at (tx, ty) is dirty.
// Returns false for out-of-bounds coordinates.
func (d *Region) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return false
	}
	idx := ty*d.tilesX + tx
	return d.words[idx/64]&(1<<(idx&63)) != 0
}

// IsEmpty reports whether no tile is dirty.
func (d *Region) IsEmpty() bool {
	for _, w := range d.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of dirty tiles.
func (d *Region) Count() int {
	n := 0
	for _, w := range d.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Rects returns the dirty area as pixel rectangles, one per horizontal run
// of dirty tiles, in row-major order and clipped to the surface.
func (d *Region) Rects() []image.Rectangle {
	var rects []image.Rectangle
	for ty := 0; ty < d.tilesY; ty++ {
		for tx := 0; tx < d.tilesX; {
			if !d.IsDirty(tx, ty) {
				tx++
				continue
			}
			start := tx
			for tx < d.tilesX && d.IsDirty(tx, ty) {
				tx++
			}
			rects = append(rects, d.tileSpan(start, tx, ty))
		}
	}
	return rects
}

// Bounds returns the smallest pixel rectangle covering every dirty tile.
func (d *Region) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, r := range d.Rects() {
		b = b.Union(r)
	}
	return b
}

// tileSpan returns the pixel rectangle of tiles [tx1, tx2) in row ty.
func (d *Region) tileSpan(tx1, tx2, ty int) image.Rectangle {
	r := image.Rect(tx1*TileSize, ty*TileSize, tx2*TileSize, (ty+1)*TileSize)
	return r.Intersect(image.Rect(0, 0, d.width, d.height))
}
