// ABOUTME: Help overlay compositing: centres a rendered box over the page rows
// ABOUTME: Rows and columns outside the box keep their background content

package btea

import (
	"strings"

	"github.com/mauromedda/pdfview-go/pkg/tui/width"
)

// overlayRender centres box over background, which is cut or padded to
// exactly rows lines.
func overlayRender(background, box string, cols, rows int) string {
	bg := strings.Split(background, "\n")
	for len(bg) < rows {
		bg = append(bg, "")
	}
	bg = bg[:rows]

	lines := strings.Split(box, "\n")
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, width.VisibleWidth(l))
	}
	top := max((rows-len(lines))/2, 0)
	left := max((cols-boxW)/2, 0)

	for i, l := range lines {
		y := top + i
		if y >= rows {
			break
		}
		row := bg[y]
		bg[y] = width.Pad(width.Head(row, left), left) + l + width.Tail(row, left+width.VisibleWidth(l))
	}
	return strings.Join(bg, "\n")
}
