// ABOUTME: Display width of terminal strings: escapes are zero wide, graphemes use East Asian width
// ABOUTME: Used to lay out the status bar and help overlay around page images

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal columns s occupies. Escape
// sequences, including image payloads, count as zero.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		w += clusterWidth(g.Str())
	}
	return w
}

// isPlainASCII reports whether s is printable ASCII only, so that bytes and
// columns coincide.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// clusterWidth measures one grapheme cluster by its base rune. An emoji
// presentation selector widens a narrow base.
func clusterWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	w := runewidth.RuneWidth(r)
	if w == 1 && strings.ContainsRune(cluster, '\uFE0F') {
		return 2
	}
	return w
}

// walk visits s piece by piece: each escape sequence (width 0) and each
// grapheme cluster, with the column the piece starts at. It stops early when
// fn returns false.
func walk(s string, fn func(piece string, col, w int) bool) {
	col := 0
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			if !fn(s[i:end], col, 0) {
				return
			}
			i = end
			continue
		}
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := clusterWidth(cluster)
		if !fn(cluster, col, w) {
			return
		}
		col += w
		i += len(cluster)
	}
}
