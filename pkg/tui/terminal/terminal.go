// ABOUTME: Defines the Terminal interface for size queries and output
// ABOUTME: Lets one-shot page output target the real stdout or a virtual terminal in tests

package terminal

// Terminal is an output surface with a size in cells.
type Terminal interface {
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
}

// Fallback size used when the output is not a terminal.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// SizeOr returns t's size, or the fallback size when it cannot be read.
func SizeOr(t Terminal) (width, height int) {
	w, h, err := t.Size()
	if err != nil || w <= 0 || h <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}
