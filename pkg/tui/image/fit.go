// ABOUTME: Cell-box geometry for page images: fits a bitmap into columns x rows
// ABOUTME: Downscales with CatmullRom and encodes payloads with a PNG-then-JPEG size fallback

package image

import (
	"bytes"
	"fmt"
	goimage "image"
	"image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

// Default virtual cell size in pixels. Terminals rarely report the real one.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Box is the terminal area an image may occupy.
type Box struct {
	Cols, Rows   int
	CellW, CellH int
}

func (b Box) cell() (int, int) {
	w, h := b.CellW, b.CellH
	if w < 1 {
		w = DefaultCellWidth
	}
	if h < 1 {
		h = DefaultCellHeight
	}
	return w, h
}

// Pixels returns the box size in virtual pixels.
func (b Box) Pixels() (int, int) {
	cw, ch := b.cell()
	return b.Cols * cw, b.Rows * ch
}

// Fit returns the cell footprint of a w x h bitmap inside box. Bitmaps are
// shrunk to fit but never enlarged, so a page rendered at a larger scale
// covers more cells. A zero footprint means nothing can be drawn.
func Fit(w, h int, box Box) (cols, rows int) {
	if w < 1 || h < 1 || box.Cols < 1 || box.Rows < 1 {
		return 0, 0
	}
	cw, ch := box.cell()
	bw, bh := box.Pixels()
	s := min(1, float64(bw)/float64(w), float64(bh)/float64(h))

	cols = clampCells(int(math.Round(float64(w)*s/float64(cw))), box.Cols)
	rows = clampCells(int(math.Round(float64(h)*s/float64(ch))), box.Rows)
	return cols, rows
}

func clampCells(n, limit int) int {
	return max(1, min(n, limit))
}

// Shrink scales img down to fit within maxW x maxH, preserving aspect ratio.
// Images already inside the bounds are returned unchanged.
func Shrink(img goimage.Image, maxW, maxH int) goimage.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH || maxW < 1 || maxH < 1 {
		return img
	}
	s := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	return scaleTo(img, max(1, int(float64(w)*s)), max(1, int(float64(h)*s)))
}

// scaleTo resamples src to exactly w x h using CatmullRom interpolation.
func scaleTo(src goimage.Image, w, h int) *goimage.RGBA {
	dst := goimage.NewRGBA(goimage.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// EncodePNG encodes img as PNG.
func EncodePNG(img goimage.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeWithFallback tries PNG first, then JPEG at decreasing quality levels.
// The smallest attempt is returned even when it is still over maxBytes.
func encodeWithFallback(img goimage.Image, maxBytes int) ([]byte, string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return nil, "", err
	}
	if len(data) <= maxBytes {
		return data, "image/png", nil
	}

	var buf bytes.Buffer
	for _, q := range []int{85, 70, 55, 40} {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}); err != nil {
			return nil, "", fmt.Errorf("encoding JPEG: %w", err)
		}
		if buf.Len() <= maxBytes {
			break
		}
	}
	return buf.Bytes(), "image/jpeg", nil
}
