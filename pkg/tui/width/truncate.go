// ABOUTME: Column-based cutting of styled strings: Head keeps a prefix, Tail keeps a suffix
// ABOUTME: TruncateToWidth shortens to a width and marks the cut with an ellipsis

package width

import "strings"

// Head returns the longest prefix of s that fits in n columns. Escape
// sequences inside the prefix are kept.
func Head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	walk(s, func(piece string, col, w int) bool {
		if col+w > n {
			return false
		}
		b.WriteString(piece)
		return true
	})
	return b.String()
}

// Tail returns the part of s from column from onwards. A wide cluster cut
// in half by from is replaced by spaces for its right half.
func Tail(s string, from int) string {
	if from <= 0 {
		return s
	}
	var b strings.Builder
	walk(s, func(piece string, col, w int) bool {
		switch {
		case col >= from:
			b.WriteString(piece)
		case col+w > from:
			b.WriteString(strings.Repeat(" ", col+w-from))
		}
		return true
	})
	return b.String()
}

// TruncateToWidth shortens s to at most maxWidth columns, replacing the last
// visible column with an ellipsis when anything was cut.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	head := Head(s, maxWidth-1)
	if containsESC(head) {
		head += "\x1b[0m"
	}
	return head + "…"
}
