// ABOUTME: Key bindings for the viewer TUI built on bubbles/key
// ABOUTME: Built from the keybindings manager; maps terminal keys to navigation, theme, help, quit

package btea

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pdfview-go/internal/keybindings"
	"github.com/mauromedda/pdfview-go/internal/viewer"
)

// KeyMap holds every binding the viewer reacts to.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Theme key.Binding
	Help  key.Binding
	Close key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from m. A nil manager yields the defaults.
func NewKeyMap(m *keybindings.Manager) KeyMap {
	if m == nil {
		m = defaultBindings()
	}
	bind := func(a keybindings.Action) key.Binding {
		return key.NewBinding(
			key.WithKeys(m.Keys(a)...),
			key.WithHelp(m.Display(a), keybindings.Descriptions[a]),
		)
	}
	return KeyMap{
		Next:  bind(keybindings.ActionNext),
		Prev:  bind(keybindings.ActionPrev),
		First: bind(keybindings.ActionFirst),
		Last:  bind(keybindings.ActionLast),
		Theme: bind(keybindings.ActionTheme),
		Help:  bind(keybindings.ActionHelp),
		Close: bind(keybindings.ActionClose),
		Quit:  bind(keybindings.ActionQuit),
	}
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap { return NewKeyMap(nil) }

func defaultBindings() *keybindings.Manager {
	m, err := keybindings.New(nil)
	if err != nil {
		panic("keybindings: defaults conflict: " + err.Error())
	}
	return m
}

// Bindings lists the bindings in help order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.First, k.Last, k.Theme, k.Help, k.Close, k.Quit}
}

// navKey translates a key message into a viewer navigation key.
func (k KeyMap) navKey(msg tea.KeyMsg) viewer.Key {
	switch {
	case key.Matches(msg, k.Next):
		return viewer.KeyRight
	case key.Matches(msg, k.Prev):
		return viewer.KeyLeft
	case key.Matches(msg, k.First):
		return viewer.KeyHome
	case key.Matches(msg, k.Last):
		return viewer.KeyEnd
	}
	return viewer.KeyNone
}
