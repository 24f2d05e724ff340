// ABOUTME: ANSI half-block character fallback renderer for terminals without image protocols
// ABOUTME: Uses ▄ with fg/bg true-color escapes to double vertical resolution

package image

import (
	"fmt"
	goimage "image"
	"strings"
)

// RenderHalfBlock converts an image to ANSI art using the lower-half block
// character (▄), filling exactly cols x rows cells. For every 2 rows of
// pixels: background = top pixel color, foreground = bottom pixel color.
// Callers pick cols and rows with Fit so the aspect ratio is kept.
func RenderHalfBlock(img goimage.Image, cols, rows int) []string {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 || cols < 1 || rows < 1 {
		return nil
	}

	targetW, targetH := cols, rows*2
	var scaled goimage.Image = img
	if targetW != bounds.Dx() || targetH != bounds.Dy() {
		scaled = scaleTo(img, targetW, targetH)
	}
	origin := scaled.Bounds().Min

	lines := make([]string, 0, rows)
	for y := 0; y < targetH; y += 2 {
		var b strings.Builder
		b.Grow(targetW * 40)
		for x := range targetW {
			topR, topG, topB := rgbAt(scaled, origin.X+x, origin.Y+y)
			botR, botG, botB := rgbAt(scaled, origin.X+x, origin.Y+y+1)

			fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄",
				topR, topG, topB, botR, botG, botB)
		}
		b.WriteString("\x1b[0m")
		lines = append(lines, b.String())
	}

	return lines
}

// rgbAt extracts the 8-bit RGB components of the pixel at (x, y).
func rgbAt(img goimage.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
