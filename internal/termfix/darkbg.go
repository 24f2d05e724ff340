// ABOUTME: Pins the lipgloss background hint before Bubble Tea's init() can query the terminal
// ABOUTME: Starts light to match the default theme; the theme controller flips it on Apply

package termfix

import "github.com/charmbracelet/lipgloss"

// Light is the background hint installed at startup.
const Light = false

func init() {
	// An explicit hint makes lipgloss skip the OSC 10/11 probe, whose late
	// reply would otherwise land in the key stream as garbage input.
	// This package must not import bubbletea, directly or transitively.
	lipgloss.SetHasDarkBackground(Light)
}
