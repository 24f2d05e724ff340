// ABOUTME: Tests for Head, Tail and TruncateToWidth on styled and wide text
// ABOUTME: Head and Tail must split a row so the overlay can be spliced between them

package width

import "testing"

func TestHead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than n", "abc", 5, "abc"},
		{"cut", "abcdef", 3, "abc"},
		{"keeps styling", "\x1b[1mabc\x1b[0mdef", 4, "\x1b[1mabc\x1b[0md"},
		{"wide rune not split", "你好", 3, "你"},
		{"zero", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Head(tt.in, tt.n); got != tt.want {
				t.Errorf("Head(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestTail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		from int
		want string
	}{
		{"from start", "abc", 0, "abc"},
		{"suffix", "abcdef", 4, "ef"},
		{"past end", "abc", 10, ""},
		{"wide rune split", "你好", 1, " 好"},
		{"escape after cut", "abc\x1b[0mdef", 3, "\x1b[0mdef"},
		{"image escape before cut dropped", "\x1b_Ga=T;AAAA\x1b\\abc", 1, "bc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Tail(tt.in, tt.from); got != tt.want {
				t.Errorf("Tail(%q, %d) = %q, want %q", tt.in, tt.from, got, tt.want)
			}
		})
	}
}

func TestHeadTail_Rejoin(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"plain row", "\x1b[2mdim\x1b[0m row"} {
		for n := 0; n <= VisibleWidth(s); n++ {
			head, tail := Head(s, n), Tail(s, n)
			if got := StripANSI(head + tail); got != StripANSI(s) {
				t.Errorf("Head/Tail(%q, %d) rejoined to %q", s, n, got)
			}
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "hi", 5, "hi"},
		{"exact", "hello", 5, "hello"},
		{"ellipsis", "hello world", 5, "hell…"},
		{"one column", "hello", 1, "…"},
		{"zero", "hello", 0, ""},
		{"styled resets before ellipsis", "\x1b[1mhello world", 5, "\x1b[1mhell\x1b[0m…"},
		{"wide rune leaves a gap", "你好世界", 4, "你…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TruncateToWidth(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("TruncateToWidth(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if VisibleWidth(got) > tt.max {
				t.Errorf("width %d exceeds %d", VisibleWidth(got), tt.max)
			}
		})
	}
}
