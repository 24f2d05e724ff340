// ABOUTME: Tests for the iTerm2 inline images protocol encoder
// ABOUTME: Verifies the cell-sized OSC 1337 sequence and its cursor save/restore wrapper

package image

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
)

func TestEncodeITerm2_Structure(t *testing.T) {
	data := []byte("fake png data")
	result := EncodeITerm2(data, 60, 30)

	if !strings.HasPrefix(result, "\x1b7\x1b]1337;File=") {
		t.Errorf("expected cursor save then OSC 1337 prefix, got %q", result[:12])
	}
	if !strings.HasSuffix(result, "\a\x1b8") {
		t.Error("expected BEL terminator followed by cursor restore")
	}
	for _, want := range []string{
		"inline=1",
		fmt.Sprintf("size=%d", len(data)),
		"width=60",
		"height=30",
		"preserveAspectRatio=1",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("missing %q in %q", want, result)
		}
	}
}

func TestEncodeITerm2_Base64Content(t *testing.T) {
	data := []byte("test image payload")
	result := EncodeITerm2(data, 80, 40)

	expected := base64.StdEncoding.EncodeToString(data)
	if !strings.Contains(result, ":"+expected+"\a") {
		t.Error("expected base64 payload before BEL")
	}
}

func TestEncodeITerm2_EmptyData(t *testing.T) {
	if got := EncodeITerm2(nil, 10, 10); got != "" {
		t.Errorf("expected empty string for nil data, got %q", got)
	}
	if got := EncodeITerm2([]byte{}, 10, 10); got != "" {
		t.Errorf("expected empty string for empty data, got %q", got)
	}
}
