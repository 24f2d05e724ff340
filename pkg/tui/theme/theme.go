// ABOUTME: Semantic color theme types: Color, Palette, Theme
// ABOUTME: Color.Apply wraps text in ANSI codes; Palette maps viewer roles to colors

package theme

// Color represents a terminal color that can style text.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Apply wraps text with the ANSI color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Bold returns a new Color that prepends bold (\x1b[1m) to the code.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Dim returns a new Color that prepends dim (\x1b[2m) to the code.
func (c Color) Dim() Color {
	return Color{code: "\x1b[2m" + c.code}
}

// Palette holds all semantic colors for a theme.
type Palette struct {
	// Text
	Primary Color
	Muted   Color
	Accent  Color

	// Semantic
	Warning Color
	Error   Color

	// Chrome around the page
	Border     Color
	StatusBar  Color // Background of the status line
	Title      Color
	PageNumber Color
	Spinner    Color

	// Formatting
	Bold Color
	Dim  Color
}

// Theme holds a named palette. Dark marks palettes meant for dark
// backgrounds; it drives the lipgloss background hint and help styling.
type Theme struct {
	Name    string  `json:"name"`
	Dark    bool    `json:"dark"`
	Palette Palette `json:"palette"`
}

// DefaultPalette returns the light palette.
func DefaultPalette() Palette {
	return Palette{
		Primary: NewColor("\x1b[30m"),
		Muted:   NewColor("\x1b[38;5;244m"),
		Accent:  NewColor("\x1b[38;5;166m"),

		Warning: NewColor("\x1b[38;5;130m"),
		Error:   NewColor("\x1b[38;5;160m"),

		Border:     NewColor("\x1b[38;5;249m"),
		StatusBar:  NewColor("\x1b[48;5;254m"),
		Title:      NewColor("\x1b[1m\x1b[30m"),
		PageNumber: NewColor("\x1b[38;5;25m"),
		Spinner:    NewColor("\x1b[38;5;166m"),

		Bold: NewColor("\x1b[1m"),
		Dim:  NewColor("\x1b[2m"),
	}
}
