package teatabs

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/tabkit/core"
)

// KeyMap holds the bindings active while the tab list has focus.
type KeyMap struct {
	Prev key.Binding
	Next key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMapFromRegistry(core.NewKeyRegistry(core.DefaultKeyBindings()))
}

func KeyMapFromRegistry(reg *core.KeyRegistry) KeyMap {
	return KeyMap{
		Prev: reg.Binding(core.ActionTabPrev, core.ScopeTabList),
		Next: reg.Binding(core.ActionTabNext, core.ScopeTabList),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
