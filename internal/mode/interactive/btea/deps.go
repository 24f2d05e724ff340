// ABOUTME: Dependency injection struct for the Bubble Tea viewer app
// ABOUTME: Engine, session options, theme controller, and terminal image settings

package btea

import (
	"github.com/mauromedda/pdfview-go/internal/document"
	"github.com/mauromedda/pdfview-go/internal/keybindings"
	"github.com/mauromedda/pdfview-go/internal/render"
	"github.com/mauromedda/pdfview-go/internal/viewer"
	"github.com/mauromedda/pdfview-go/pkg/tui/image"
	"github.com/mauromedda/pdfview-go/pkg/tui/theme"
)

// AppDeps bundles all dependencies for the Bubble Tea viewer app.
type AppDeps struct {
	Engine   document.Engine
	Options  viewer.Options
	Theme    *theme.Controller
	Protocol image.ImageProtocol
	Keys     *keybindings.Manager // nil uses the default bindings

	// Virtual cell size in pixels; zero picks the image package defaults.
	CellW, CellH int
	// InitialCols is the terminal width before the first WindowSizeMsg.
	InitialCols int
	Version     string

	// Executor replaces the goroutine executor. Tests use it to step
	// renders by hand.
	Executor render.Executor
}

func (d AppDeps) cellSize() (int, int) {
	w, h := d.CellW, d.CellH
	if w < 1 {
		w = image.DefaultCellWidth
	}
	if h < 1 {
		h = image.DefaultCellHeight
	}
	return w, h
}
