// ABOUTME: Engine selection by path: PDFs go to poppler, directories and CBZ archives to images
// ABOUTME: An explicit engine name overrides detection

package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Engine names accepted by Select.
const (
	EngineAuto    = "auto"
	EnginePoppler = "poppler"
	EngineImages  = "images"
)

// Options configures the built-in engines.
type Options struct {
	Engine   string // auto, poppler or images
	PDFInfo  string // pdfinfo binary
	PDFToPPM string // pdftoppm binary
}

// Select returns the engine that should open path.
func Select(path string, opts Options) (Engine, error) {
	switch opts.Engine {
	case EnginePoppler:
		return NewPoppler(opts.PDFInfo, opts.PDFToPPM), nil
	case EngineImages:
		return NewImages(0), nil
	case EngineAuto, "":
	default:
		return nil, fmt.Errorf("%w: engine %q", ErrUnsupported, opts.Engine)
	}

	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return NewImages(0), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return NewPoppler(opts.PDFInfo, opts.PDFToPPM), nil
	case ".cbz", ".zip":
		return NewImages(0), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
}

// Open selects an engine for path and opens the document.
func Open(ctx context.Context, path string, opts Options) (Document, error) {
	eng, err := Select(path, opts)
	if err != nil {
		return nil, err
	}
	return eng.Open(ctx, path)
}

// selectingEngine defers Select until Open is called.
type selectingEngine struct {
	opts Options
}

// Auto returns an Engine that picks the concrete engine per path.
func Auto(opts Options) Engine {
	return selectingEngine{opts: opts}
}

func (e selectingEngine) Name() string { return EngineAuto }

func (e selectingEngine) Open(ctx context.Context, path string) (Document, error) {
	return Open(ctx, path, e.opts)
}

// titleFromPath derives a display title from a file or directory name.
func titleFromPath(path string) string {
	base := filepath.Base(filepath.Clean(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
