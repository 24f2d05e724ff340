// ABOUTME: Built-in themes: light and dark
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"light": {
		Name:    "light",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Dark: true,
		Palette: Palette{
			Primary: NewColor("\x1b[97m"),
			Muted:   NewColor("\x1b[90m"),
			Accent:  NewColor("\x1b[38;5;214m"),

			Warning: NewColor("\x1b[38;5;221m"),
			Error:   NewColor("\x1b[38;5;203m"),

			Border:     NewColor("\x1b[38;5;240m"),
			StatusBar:  NewColor("\x1b[48;5;236m"),
			Title:      NewColor("\x1b[1m\x1b[97m"),
			PageNumber: NewColor("\x1b[38;5;117m"),
			Spinner:    NewColor("\x1b[38;5;214m"),

			Bold: NewColor("\x1b[1m"),
			Dim:  NewColor("\x1b[2m"),
		},
	},
}

// Builtin returns a copy of a built-in theme by name, or nil if unknown.
// Callers may mutate the copy without affecting other lookups.
func Builtin(name string) *Theme {
	t, ok := builtins[name]
	if !ok {
		return nil
	}
	cp := *t
	return &cp
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"light", "dark"}
}
