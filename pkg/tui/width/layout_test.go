// ABOUTME: Tests for Pad and Spread row layout
// ABOUTME: Checks exact output width with wide runes, ANSI styling, and narrow rows

package width

import "testing"

func TestPad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		w    int
		want string
	}{
		{"pads short", "ab", 5, "ab   "},
		{"exact", "abcde", 5, "abcde"},
		{"truncates", "abcdefgh", 5, "abcd…"},
		{"wide runes", "日本", 6, "日本  "},
		{"zero width", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Pad(tt.in, tt.w)
			if got != tt.want {
				t.Errorf("Pad(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.want)
			}
			if tt.w > 0 && VisibleWidth(got) != tt.w {
				t.Errorf("width = %d, want %d", VisibleWidth(got), tt.w)
			}
		})
	}
}

func TestSpread(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		left, right string
		w           int
		want        string
	}{
		{"both fit", "Title", "1 / 9", 20, "Title          1 / 9"},
		{"left truncated", "A long document title", "3 / 12", 16, "A long d… 3 / 12"},
		{"right only", "Title", "1 / 9", 6, " 1 / 9"},
		{"right too wide", "Title", "120 / 999", 5, "120 …"},
		{"styled right", "T", "\x1b[1m2\x1b[0m", 4, "T  \x1b[1m2\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Spread(tt.left, tt.right, tt.w)
			if got != tt.want {
				t.Errorf("Spread = %q, want %q", got, tt.want)
			}
			if VisibleWidth(got) != tt.w {
				t.Errorf("width = %d, want %d", VisibleWidth(got), tt.w)
			}
		})
	}
}
