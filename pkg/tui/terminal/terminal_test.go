// ABOUTME: Tests for the terminal abstraction: virtual capture, resizing, and size fallback
// ABOUTME: Verifies both implementations satisfy Terminal

package terminal

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

var (
	_ Terminal = (*ProcessTerminal)(nil)
	_ Terminal = (*VirtualTerminal)(nil)
)

func TestVirtualTerminal_CapturesOutput(t *testing.T) {
	t.Parallel()
	v := NewVirtualTerminal(100, 30)
	fmt.Fprintf(v, "page %d", 3)
	if got := v.Output(); got != "page 3" {
		t.Errorf("Output() = %q", got)
	}
	v.Reset()
	if v.Output() != "" {
		t.Error("Reset did not clear output")
	}
}

func TestVirtualTerminal_SetSize(t *testing.T) {
	t.Parallel()
	v := NewVirtualTerminal(100, 30)
	v.SetSize(60, 20)
	if w, h, _ := v.Size(); w != 60 || h != 20 {
		t.Errorf("Size() = %d,%d; want 60,20", w, h)
	}
}

type brokenTerminal struct{ VirtualTerminal }

func (b *brokenTerminal) Size() (int, int, error) { return 0, 0, errors.New("not a tty") }

func TestSizeOr(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		term   Terminal
		wW, wH int
	}{
		{"virtual", NewVirtualTerminal(120, 40), 120, 40},
		{"zero size", NewVirtualTerminal(0, 0), FallbackWidth, FallbackHeight},
		{"error", &brokenTerminal{}, FallbackWidth, FallbackHeight},
	}
	for _, tt := range tests {
		w, h := SizeOr(tt.term)
		if w != tt.wW || h != tt.wH {
			t.Errorf("%s: SizeOr = %d,%d; want %d,%d", tt.name, w, h, tt.wW, tt.wH)
		}
	}
}

func TestProcessTerminal_NotATTY(t *testing.T) {
	t.Parallel()
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	pt := &ProcessTerminal{out: f}
	if pt.IsTerminal() {
		t.Error("a regular file reported as a terminal")
	}
	if _, _, err := pt.Size(); err == nil {
		t.Error("Size on a regular file should fail")
	}
	if w, h := SizeOr(pt); w != FallbackWidth || h != FallbackHeight {
		t.Errorf("SizeOr = %d,%d; want fallback", w, h)
	}
	if _, err := pt.Write([]byte("x")); err != nil {
		t.Errorf("Write: %v", err)
	}
}
