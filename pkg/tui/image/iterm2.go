// ABOUTME: iTerm2 inline images protocol encoder
// ABOUTME: OSC 1337 sized in cells, wrapped in cursor save/restore to keep the layout

package image

import (
	"encoding/base64"
	"fmt"
)

// EncodeITerm2 encodes image data into an iTerm2 inline image escape
// sequence occupying cols x rows cells. The cursor position is saved
// before and restored after, since iTerm2 moves it below the image.
func EncodeITerm2(data []byte, cols, rows int) string {
	if len(data) == 0 {
		return ""
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("\x1b7\x1b]1337;File=inline=1;size=%d;width=%d;height=%d;preserveAspectRatio=1:%s\a\x1b8",
		len(data), cols, rows, encoded)
}
