// ABOUTME: Keybindings manager with O(1) key-to-action lookup for the viewer actions
// ABOUTME: Merges config overrides over the defaults, rejects unknown actions, detects conflicts

package keybindings

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Action names a viewer command a key can trigger.
type Action string

const (
	ActionNext  Action = "next"
	ActionPrev  Action = "prev"
	ActionFirst Action = "first"
	ActionLast  Action = "last"
	ActionTheme Action = "theme"
	ActionHelp  Action = "help"
	ActionClose Action = "close"
	ActionQuit  Action = "quit"
)

// Actions lists every action in help order.
var Actions = []Action{
	ActionNext, ActionPrev, ActionFirst, ActionLast,
	ActionTheme, ActionHelp, ActionClose, ActionQuit,
}

// Descriptions are the help texts shown for each action.
var Descriptions = map[Action]string{
	ActionNext:  "next page",
	ActionPrev:  "previous page",
	ActionFirst: "first page",
	ActionLast:  "last page",
	ActionTheme: "toggle light/dark",
	ActionHelp:  "show this help",
	ActionClose: "close help",
	ActionQuit:  "quit",
}

// Defaults returns the stock bindings. Keys use Bubble Tea's key names
// ("right", "ctrl+c", "G").
func Defaults() map[Action][]string {
	return map[Action][]string{
		ActionNext:  {"right", "l"},
		ActionPrev:  {"left", "h"},
		ActionFirst: {"home", "g"},
		ActionLast:  {"end", "G"},
		ActionTheme: {"t"},
		ActionHelp:  {"?"},
		ActionClose: {"esc"},
		ActionQuit:  {"q", "ctrl+c"},
	}
}

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []Action
}

// Manager provides O(1) key-to-action lookup from merged keybindings.
type Manager struct {
	bindings map[Action][]string
	lookup   map[string]Action
}

// New merges overrides (action name to keys) over the defaults. An
// override replaces the whole key list of its action.
func New(overrides map[string][]string) (*Manager, error) {
	kb := Defaults()
	for name, keys := range overrides {
		a := Action(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := Descriptions[a]; !ok {
			return nil, fmt.Errorf("unknown key action %q", name)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("key action %q has no keys", name)
		}
		kb[a] = slices.Clone(keys)
	}

	m := &Manager{bindings: kb}
	m.buildLookup()
	if c := m.Conflicts(); len(c) > 0 {
		return nil, fmt.Errorf("key %q is bound to %v", c[0].Key, c[0].Actions)
	}
	return m, nil
}

// ActionForKey returns the action bound to the given key, or "" if unbound.
func (m *Manager) ActionForKey(k string) Action {
	return m.lookup[k]
}

// Keys returns the keys bound to a.
func (m *Manager) Keys(a Action) []string {
	return slices.Clone(m.bindings[a])
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]Action)
	for _, action := range Actions {
		for _, k := range m.bindings[action] {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for _, k := range slices.Sorted(maps.Keys(keyActions)) {
		if actions := keyActions[k]; len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

// Display returns the keys of a joined for help text, arrows spelled as glyphs.
func (m *Manager) Display(a Action) string {
	keys := m.bindings[a]
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = displayKey(k)
	}
	return strings.Join(out, "/")
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[string]Action, len(m.bindings)*2)
	for action, keys := range m.bindings {
		for _, k := range keys {
			m.lookup[k] = action
		}
	}
}

var glyphs = map[string]string{
	"right": "→",
	"left":  "←",
	"up":    "↑",
	"down":  "↓",
}

func displayKey(k string) string {
	if g, ok := glyphs[k]; ok {
		return g
	}
	return k
}
