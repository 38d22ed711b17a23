// Package widgets contains dumb render primitives for the terminal binding.
//
// Allowed here:
// - stateless drawing helpers (tab bar, pane chrome, theme)
//
// Not allowed here:
// - key handling, selection state, or navigation policy
package widgets
