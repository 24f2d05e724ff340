// ABOUTME: Entry point for the Bubble Tea viewer TUI
// ABOUTME: Creates the tea.Program, injects the program reference, and blocks until exit

package btea

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the viewer. Blocks until the user quits, then waits for any
// in-flight render and closes the document.
func Run(deps AppDeps) error {
	m := NewAppModel(deps)
	defer m.close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Inject the program reference into the shared state.
	// NewAppModel allocates sh as a pointer, so the copy held by the
	// program sees it too; the executor reads it only after Run starts.
	m.sh.program = p

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
