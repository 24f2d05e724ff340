// ABOUTME: Light/dark theme controller backed by a key/value preference store
// ABOUTME: Init restores the saved value, Toggle flips it, Apply activates, persists and sets the icon

package theme

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Value is a theme selection.
type Value string

const (
	Light Value = "light"
	Dark  Value = "dark"
)

// StoreKey is the preference key the selection is saved under.
const StoreKey = "theme"

// Icons shown by the toggle: the moon offers dark mode, the sun offers light.
const (
	IconMoon = "☾"
	IconSun  = "☀"
)

// ParseValue maps a stored string to a Value. Anything other than the two
// known names is rejected.
func ParseValue(s string) (Value, bool) {
	switch Value(s) {
	case Light, Dark:
		return Value(s), true
	}
	return "", false
}

// Opposite returns the other value.
func (v Value) Opposite() Value {
	if v == Dark {
		return Light
	}
	return Dark
}

// Icon returns the toggle indicator for v.
func (v Value) Icon() string {
	if v == Dark {
		return IconSun
	}
	return IconMoon
}

// Store is the subset of a preference store the controller needs.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Controller owns the active light/dark selection.
type Controller struct {
	store Store

	mu     sync.Mutex
	value  Value
	themes map[Value]*Theme
}

// NewController returns a controller using the built-in palettes. The store
// may be nil, in which case nothing is read or persisted.
func NewController(store Store) *Controller {
	return &Controller{
		store: store,
		value: Light,
		themes: map[Value]*Theme{
			Light: Builtin(string(Light)),
			Dark:  Builtin(string(Dark)),
		},
	}
}

// Override replaces the palette used for v. It takes effect on the next Apply.
func (c *Controller) Override(v Value, t *Theme) {
	if t == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.themes[v] = t
}

// Init reads the persisted selection and applies it. A missing,
// unreadable or unrecognized value falls back to Light.
func (c *Controller) Init() (Value, error) {
	v := Light
	var readErr error
	if c.store != nil {
		s, ok, err := c.store.Get(StoreKey)
		switch {
		case err != nil:
			readErr = fmt.Errorf("reading theme preference: %w", err)
		case ok:
			if parsed, valid := ParseValue(s); valid {
				v = parsed
			}
		}
	}
	if err := c.Apply(v); err != nil && readErr == nil {
		readErr = err
	}
	return v, readErr
}

// Toggle applies the opposite of the current selection and returns it.
func (c *Controller) Toggle() (Value, error) {
	next := c.Value().Opposite()
	return next, c.Apply(next)
}

// Apply activates the palette for v and persists the choice. The theme is
// active even when persisting fails; the returned error only reports the
// storage problem. Unknown values apply Light.
func (c *Controller) Apply(v Value) error {
	if _, ok := ParseValue(string(v)); !ok {
		v = Light
	}

	c.mu.Lock()
	c.value = v
	t := c.themes[v]
	c.mu.Unlock()

	Set(t)
	lipgloss.SetHasDarkBackground(v == Dark)

	if c.store == nil {
		return nil
	}
	if err := c.store.Set(StoreKey, string(v)); err != nil {
		return fmt.Errorf("saving theme preference: %w", err)
	}
	return nil
}

// Value returns the active selection.
func (c *Controller) Value() Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Icon returns the indicator for the active selection.
func (c *Controller) Icon() string {
	return c.Value().Icon()
}

// Theme returns the palette for the active selection.
func (c *Controller) Theme() *Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.themes[c.value]
}
