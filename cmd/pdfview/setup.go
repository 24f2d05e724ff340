// ABOUTME: Startup wiring shared by every command: config, logging, engine, theme, terminal size
// ABOUTME: Each helper returns what it built plus a cleanup the caller defers

package main

import (
	"fmt"
	"io"

	"github.com/mauromedda/pdfview-go/internal/config"
	"github.com/mauromedda/pdfview-go/internal/document"
	pvlog "github.com/mauromedda/pdfview-go/internal/log"
	"github.com/mauromedda/pdfview-go/internal/prefs"
	"github.com/mauromedda/pdfview-go/internal/viewer"
	"github.com/mauromedda/pdfview-go/pkg/tui/terminal"
	"github.com/mauromedda/pdfview-go/pkg/tui/theme"
)

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(args cliArgs, positional []string) (*config.Config, error) {
	cfg, err := config.Load(args.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	args.overrides(cfg, positional)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogging applies the log level and, when a file is configured (or the
// TUI owns the terminal), redirects output there.
func setupLogging(cfg *config.Config, tui bool) (io.Closer, error) {
	level, err := pvlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	pvlog.SetLevel(level)

	path := cfg.Log.File
	if path == "" && tui {
		path = config.LogFile()
	}
	if path == "" {
		return nopCloser{}, nil
	}
	return pvlog.OpenFile(path)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func engineOptions(cfg *config.Config) document.Options {
	return document.Options{
		Engine:   cfg.Engine,
		PDFInfo:  cfg.Poppler.PDFInfo,
		PDFToPPM: cfg.Poppler.PDFToPPM,
	}
}

func viewerOptions(cfg *config.Config) viewer.Options {
	return viewer.Options{
		Path: cfg.Document,
		Scale: viewer.ScalePolicy{
			Small:      cfg.Scale.Small,
			Default:    cfg.Scale.Default,
			Breakpoint: cfg.Scale.Breakpoint,
		},
		SwipeThreshold:    cfg.Swipe.Threshold,
		VerticalThreshold: cfg.Swipe.VerticalThreshold,
	}
}

// setupTheme opens the preference store and restores the saved theme.
// Storage trouble never stops the viewer; it is logged and the theme
// falls back to light.
func setupTheme(cfg *config.Config) (*theme.Controller, io.Closer) {
	store := prefs.Open(cfg.Prefs.Backend, cfg.PrefsPath())
	ctrl := theme.NewController(store)

	overrides := []struct {
		value theme.Value
		path  string
	}{
		{theme.Light, cfg.Theme.LightFile},
		{theme.Dark, cfg.Theme.DarkFile},
	}
	for _, o := range overrides {
		if o.path == "" {
			continue
		}
		t, err := theme.LoadFile(o.path, theme.Builtin(string(o.value)))
		if err != nil {
			pvlog.Warn("theme %s: %v", o.value, err)
			continue
		}
		ctrl.Override(o.value, t)
	}

	if _, err := ctrl.Init(); err != nil {
		pvlog.Warn("restoring theme: %v", err)
	}
	return ctrl, store
}

// stdout is the terminal the viewer and page output size themselves to.
var stdout terminal.Terminal = terminal.NewProcessTerminal()

// terminalSize returns the terminal size in cells, or 80x24 when stdout is
// not a terminal.
func terminalSize() (cols, rows int) {
	return terminal.SizeOr(stdout)
}

// requireTerminal fails early when the interactive viewer has no terminal.
func requireTerminal() error {
	if pt, ok := stdout.(*terminal.ProcessTerminal); ok && !pt.IsTerminal() {
		return fmt.Errorf("stdout is not a terminal; use `pdfview page` or `pdfview info` for piped output")
	}
	return nil
}
