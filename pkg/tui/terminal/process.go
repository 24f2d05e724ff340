// ABOUTME: ProcessTerminal implements Terminal using os.Stdout and golang.org/x/term
// ABOUTME: Size reads the window of stdout; output goes straight to stdout

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a file, normally os.Stdout.
type ProcessTerminal struct {
	out *os.File
}

// NewProcessTerminal returns a ProcessTerminal over os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{out: os.Stdout}
}

// IsTerminal reports whether the output is attached to a terminal.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.out.Fd()))
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to %s: %w", t.out.Name(), err)
	}
	return n, nil
}
