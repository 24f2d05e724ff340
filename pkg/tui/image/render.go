// ABOUTME: Page image dispatcher: turns a rendered page bitmap into terminal lines
// ABOUTME: Routes to Kitty, iTerm2, or half-block based on the resolved protocol

package image

import (
	"fmt"
	goimage "image"

	// Register decoders for formats page sources may carry.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"
)

// MaxFileSize is the largest inline payload sent to iTerm2 (4.5 MB).
const MaxFileSize = 4_500_000

// Frame is a page encoded for one protocol. Lines always has Rows entries
// so the caller can lay it out like text; escape-based protocols carry the
// whole image on the first line and leave the rest blank.
type Frame struct {
	Lines    []string
	Cols     int
	Rows     int
	Protocol ImageProtocol
}

// RenderPage encodes img to fit inside box using proto.
//   - Kitty: shrinks to the box, encodes PNG, clears earlier placements
//   - iTerm2: shrinks to the box, encodes PNG or JPEG under MaxFileSize
//   - None: resamples into half-block cells
func RenderPage(img goimage.Image, proto ImageProtocol, box Box) (Frame, error) {
	if img == nil {
		return Frame{}, fmt.Errorf("no page image")
	}
	b := img.Bounds()
	cols, rows := Fit(b.Dx(), b.Dy(), box)
	if cols == 0 {
		return Frame{}, fmt.Errorf("page %dx%d does not fit a %dx%d cell box", b.Dx(), b.Dy(), box.Cols, box.Rows)
	}
	frame := Frame{Cols: cols, Rows: rows, Protocol: proto}

	switch proto {
	case ProtoKitty, ProtoITerm2:
		cw, ch := box.cell()
		small := Shrink(img, cols*cw, rows*ch)

		var seq string
		if proto == ProtoKitty {
			data, err := EncodePNG(small)
			if err != nil {
				return Frame{}, fmt.Errorf("preparing PNG for Kitty: %w", err)
			}
			seq = KittyDeleteAll + EncodeKitty(data, cols, rows)
		} else {
			data, _, err := encodeWithFallback(small, MaxFileSize)
			if err != nil {
				return Frame{}, fmt.Errorf("preparing iTerm2 payload: %w", err)
			}
			seq = EncodeITerm2(data, cols, rows)
		}
		frame.Lines = make([]string, rows)
		frame.Lines[0] = seq
	default:
		frame.Lines = RenderHalfBlock(img, cols, rows)
	}
	return frame, nil
}
