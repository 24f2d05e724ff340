// ABOUTME: Page view: encodes the latest rendered page for the terminal image protocol
// ABOUTME: Re-encodes only when the frame or the available cell box changes

package btea

import (
	"strings"

	"github.com/mauromedda/pdfview-go/internal/log"
	"github.com/mauromedda/pdfview-go/internal/render"
	"github.com/mauromedda/pdfview-go/pkg/tui/image"
)

// pageView holds the encoded form of one render result.
type pageView struct {
	seq   uint64
	box   image.Box
	frame image.Frame
	err   error
	ok    bool
}

// update re-encodes res into box unless it already has. Encoding runs on
// the event loop because the frame is small compared to the raster step.
func (v pageView) update(res render.Result, proto image.ImageProtocol, box image.Box) pageView {
	if v.ok && v.seq == res.Job.Seq && v.box == box {
		return v
	}
	f, err := image.RenderPage(res.Image, proto, box)
	if err != nil {
		log.Warn("encoding page %d for %s: %v", res.Job.Page, proto, err)
	}
	return pageView{seq: res.Job.Seq, box: box, frame: f, err: err, ok: true}
}

// lines lays the frame out as exactly rows lines of width cols, centred
// horizontally. Image escapes sit on the first frame line.
func (v pageView) lines(cols, rows int) []string {
	out := make([]string, 0, rows)
	if v.ok && v.err == nil {
		pad := (cols - v.frame.Cols) / 2
		if pad < 0 {
			pad = 0
		}
		top := (rows - v.frame.Rows) / 2
		if top < 0 || v.frame.Protocol != image.ProtoNone {
			// Escape based images anchor at the top so a repaint of the
			// first line redraws the whole picture.
			top = 0
		}
		for range top {
			out = append(out, "")
		}
		indent := strings.Repeat(" ", pad)
		for _, l := range v.frame.Lines {
			if len(out) == rows {
				break
			}
			if l == "" {
				out = append(out, "")
				continue
			}
			out = append(out, indent+l)
		}
	}
	for len(out) < rows {
		out = append(out, "")
	}
	return out
}
