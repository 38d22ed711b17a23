package core

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

const (
	ActionTabPrev = "tab-prev"
	ActionTabNext = "tab-next"

	ScopeTabList = "tablist"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// Binding merges every registration of action in scope into one
// bubbles key binding, with help taken from the first registration.
func (r *KeyRegistry) Binding(action, scope string) key.Binding {
	var keys []string
	desc := ""
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		keys = append(keys, b.Keys...)
		if desc == "" {
			desc = b.Description
		}
	}
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
