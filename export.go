package signpad

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("signpad: encode png: %w", err)
	}
	return nil
}

// SavePNG exports the ink at scale and writes it to path as PNG.
func (p *Pad) SavePNG(path string, scale float64) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := EncodePNG(f, p.ExportImage(scale)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Thumbnail scales img down to fit within maxW x maxH, keeping its aspect
// ratio. Images that already fit are copied unscaled.
func Thumbnail(img image.Image, maxW, maxH int) *image.RGBA {
	if img == nil || maxW <= 0 || maxH <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxW || h > maxH {
		s := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
		w = max(int(float64(w)*s+0.5), 1)
		h = max(int(float64(h)*s+0.5), 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
