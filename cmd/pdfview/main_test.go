// ABOUTME: Tests for the command tree: version, info over an image directory, and flag overrides
// ABOUTME: Runs cobra commands in-process with captured output and a missing config file

package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/pdfview-go/internal/config"
	"github.com/mauromedda/pdfview-go/pkg/tui/terminal"
	"github.com/mauromedda/pdfview-go/pkg/tui/theme"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func pageDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"p1.png", "p2.png", "p10.png"} {
		var buf bytes.Buffer
		if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 30, 40))); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "pdfview "+version) {
		t.Errorf("output = %q", out)
	}
}

func TestInfoCmd_JSON(t *testing.T) {
	dir := pageDir(t)
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")

	out, err := execute(t, "info", dir, "--config", cfgPath, "-o", "json")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	var info struct {
		Engine string `json:"engine"`
		Pages  []struct {
			Number int `json:"number"`
		} `json:"pages"`
	}
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if info.Engine != "images" || len(info.Pages) != 3 {
		t.Errorf("info = %+v; want 3 pages from the images engine", info)
	}
}

func TestInfoCmd_MissingDocument(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := execute(t, "info", filepath.Join(t.TempDir(), "nope.pdf"), "--config", cfgPath)
	if err == nil {
		t.Fatal("info on a missing document succeeded")
	}
}

func TestRootCmd_InvalidEngine(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := execute(t, "info", "doc.pdf", "--config", cfgPath, "--engine", "ghostscript")
	if err == nil || !strings.Contains(err.Error(), "invalid engine") {
		t.Errorf("err = %v; want invalid engine", err)
	}
}

func TestCLIArgs_Overrides(t *testing.T) {
	cfg := config.DefaultConfig()
	args := cliArgs{engine: "images", prefs: "memory", logFile: "/tmp/x.log", verbose: true}
	args.overrides(cfg, []string{"book.cbz"})

	if cfg.Document != "book.cbz" || cfg.Engine != "images" || cfg.Prefs.Backend != "memory" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Log.File != "/tmp/x.log" || cfg.Log.Level != "debug" {
		t.Errorf("log overrides not applied: %+v", cfg.Log)
	}

	untouched := config.DefaultConfig()
	cliArgs{}.overrides(untouched, nil)
	if untouched.Document != config.DefaultDocument || untouched.Engine != config.EngineAuto {
		t.Errorf("empty flags changed config: %+v", untouched)
	}
}

func TestSetupLogging_File(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "pdfview.log")
	c, err := setupLogging(cfg, false)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cfg.Log.File); err != nil {
		t.Errorf("log file not created: %v", err)
	}

	cfg.Log.Level = "chatty"
	if _, err := setupLogging(cfg, false); err == nil {
		t.Error("unknown level accepted")
	}
}

func TestSetupTheme_RestoresAndOverrides(t *testing.T) {
	prev := theme.Current()
	t.Cleanup(func() { theme.Set(prev) })

	dir := t.TempDir()
	darkFile := filepath.Join(dir, "dark.json")
	if err := os.WriteFile(darkFile, []byte(`{"name":"midnight","dark":true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Prefs.Backend = config.PrefsFile
	cfg.Prefs.Path = filepath.Join(dir, "prefs.yaml")
	cfg.Theme.DarkFile = darkFile

	ctrl, store := setupTheme(cfg)
	if ctrl.Value() != theme.Light {
		t.Fatalf("first run value = %v; want light", ctrl.Value())
	}
	if _, err := ctrl.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got := theme.Current().Name; got != "midnight" {
		t.Errorf("dark palette = %q; want the override", got)
	}
	store.Close()

	// A second start restores dark from the file store.
	ctrl, store = setupTheme(cfg)
	defer store.Close()
	if ctrl.Value() != theme.Dark {
		t.Errorf("restored value = %v; want dark", ctrl.Value())
	}
}

func TestViewerOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Document = "a.pdf"
	opts := viewerOptions(cfg)
	if opts.Path != "a.pdf" || opts.Scale.For(768) != 1.2 || opts.Scale.For(769) != 1.5 {
		t.Errorf("viewerOptions = %+v", opts)
	}
}

func TestPageCmd_UsesTerminalSize(t *testing.T) {
	prev := stdout
	stdout = terminal.NewVirtualTerminal(40, 11)
	t.Cleanup(func() { stdout = prev })

	dir := pageDir(t)
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")
	out, err := execute(t, "page", dir, "--config", cfgPath, "--protocol", "halfblock", "-p", "2", "--scale", "4")
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	// 30x40 pt at scale 4 is 120x160 px; the 40x10 cell box caps it at 10 rows.
	if n := strings.Count(out, "\n"); n != 10 {
		t.Errorf("rows = %d; want 10", n)
	}
}

func TestPageCmd_BadProtocol(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := execute(t, "page", pageDir(t), "--config", cfgPath, "--protocol", "sixel")
	if err == nil || !strings.Contains(err.Error(), "unknown image protocol") {
		t.Errorf("err = %v; want unknown image protocol", err)
	}
}
