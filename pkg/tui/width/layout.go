// ABOUTME: Fixed-width line layout helpers for single-row bars
// ABOUTME: Pad fills to a width; Spread places a left and right part on one row

package width

import "strings"

// Pad truncates s to w columns and right-pads it with spaces to exactly w.
func Pad(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = TruncateToWidth(s, w)
	if gap := w - VisibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Spread lays out left and right on a single row of exactly w columns.
// The right part wins when space is short: left is truncated first, then
// right itself.
func Spread(left, right string, w int) string {
	if w <= 0 {
		return ""
	}
	rw := VisibleWidth(right)
	if rw >= w {
		return Pad(right, w)
	}
	room := w - rw - 1 // keep one space between the parts
	if room <= 0 {
		return Pad("", w-rw) + right
	}
	left = TruncateToWidth(left, room)
	return left + strings.Repeat(" ", w-VisibleWidth(left)-rw) + right
}
