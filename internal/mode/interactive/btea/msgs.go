// ABOUTME: Custom tea.Msg types for the viewer TUI
// ABOUTME: Document open outcome and render completions sent back onto the event loop

package btea

import (
	"github.com/mauromedda/pdfview-go/internal/document"
	"github.com/mauromedda/pdfview-go/internal/render"
)

// DocumentOpenedMsg carries the outcome of the asynchronous document open.
type DocumentOpenedMsg struct {
	Doc document.Document
	Err error
}

// RenderDoneMsg carries a finished render job. Sent by the executor
// goroutine via Program.Send.
type RenderDoneMsg struct {
	Result render.Result
}
