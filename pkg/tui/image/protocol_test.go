// ABOUTME: Tests for terminal image protocol detection and --protocol parsing
// ABOUTME: Table of environment fingerprints mapped to the protocol a page is drawn with

package image

import (
	"os"
	"testing"
)

var detectVars = []string{
	"KITTY_WINDOW_ID", "TERM_PROGRAM", "GHOSTTY_RESOURCES_DIR",
	"WEZTERM_PANE", "ITERM_SESSION_ID",
}

// cleanEnv blanks every variable detection looks at and drops the cache.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, v := range detectVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
	resetDetectCache()
	t.Cleanup(resetDetectCache)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		want      ImageProtocol
		trueColor bool
	}{
		{"kitty window", map[string]string{"KITTY_WINDOW_ID": "1"}, ProtoKitty, true},
		{"kitty term program", map[string]string{"TERM_PROGRAM": "kitty"}, ProtoKitty, true},
		{"ghostty resources", map[string]string{"GHOSTTY_RESOURCES_DIR": "/usr/share/ghostty"}, ProtoKitty, true},
		{"ghostty term program", map[string]string{"TERM_PROGRAM": "ghostty"}, ProtoKitty, true},
		{"wezterm pane", map[string]string{"WEZTERM_PANE": "0"}, ProtoKitty, true},
		{"iterm session", map[string]string{"ITERM_SESSION_ID": "w0t0p0:12345"}, ProtoITerm2, true},
		{"iterm term program", map[string]string{"TERM_PROGRAM": "iTerm.app"}, ProtoITerm2, true},
		{"vscode", map[string]string{"TERM_PROGRAM": "vscode"}, ProtoNone, true},
		{"alacritty", map[string]string{"TERM_PROGRAM": "alacritty"}, ProtoNone, true},
		{"plain", nil, ProtoNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got := Detect()
			if got.Images != tt.want {
				t.Errorf("Images = %v, want %v", got.Images, tt.want)
			}
			if got.TrueColor != tt.trueColor {
				t.Errorf("TrueColor = %v, want %v", got.TrueColor, tt.trueColor)
			}
		})
	}
}

func TestDetect_Cached(t *testing.T) {
	cleanEnv(t)
	t.Setenv("KITTY_WINDOW_ID", "7")
	first := Detect()
	os.Unsetenv("KITTY_WINDOW_ID")
	if Detect() != first {
		t.Error("second Detect call re-probed the environment")
	}
}

func TestParseProtocol(t *testing.T) {
	cleanEnv(t)
	t.Setenv("ITERM_SESSION_ID", "w0")

	tests := []struct {
		in      string
		want    ImageProtocol
		wantErr bool
	}{
		{"", ProtoITerm2, false},
		{"auto", ProtoITerm2, false},
		{"Kitty", ProtoKitty, false},
		{"iterm2", ProtoITerm2, false},
		{"halfblock", ProtoNone, false},
		{"none", ProtoNone, false},
		{"sixel", ProtoNone, true},
	}
	for _, tt := range tests {
		got, err := ParseProtocol(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseProtocol(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseProtocol(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestImageProtocol_String(t *testing.T) {
	tests := []struct {
		proto ImageProtocol
		want  string
	}{
		{ProtoNone, "none"},
		{ProtoKitty, "kitty"},
		{ProtoITerm2, "iterm2"},
		{ImageProtocol(99), "none"},
	}
	for _, tt := range tests {
		if got := tt.proto.String(); got != tt.want {
			t.Errorf("ImageProtocol(%d).String() = %q, want %q", tt.proto, got, tt.want)
		}
	}
}
