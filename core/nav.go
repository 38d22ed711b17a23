package core

// Focuser is a live tab control that can take input focus.
type Focuser interface {
	Focus()
}

// FocusRegistry maps tab keys to their mounted controls. Bindings register
// controls when they mount and unregister them when they unmount; the
// registry never owns them.
type FocusRegistry struct {
	controls map[string]Focuser

	// OnMiss, when set, is called with the key of a focus command that
	// found no mounted control.
	OnMiss func(key string)
}

func NewFocusRegistry() *FocusRegistry {
	return &FocusRegistry{controls: make(map[string]Focuser)}
}

func (r *FocusRegistry) Register(key string, c Focuser) {
	if c == nil {
		delete(r.controls, key)
		return
	}
	r.controls[key] = c
}

func (r *FocusRegistry) Unregister(key string) {
	delete(r.controls, key)
}

// Focus focuses the control mounted under key. It reports false and does
// nothing when no control is mounted.
func (r *FocusRegistry) Focus(key string) bool {
	c, ok := r.controls[key]
	if !ok || c == nil {
		if r.OnMiss != nil {
			r.OnMiss(key)
		}
		return false
	}
	c.Focus()
	return true
}

type Direction int

const (
	Prev Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// UnmatchedPolicy decides how arrow keys behave when the selection matches
// no tab, for example when it names a panel without a tab.
type UnmatchedPolicy int

const (
	// UnmatchedCompat: Next jumps to the first tab, Prev does nothing.
	UnmatchedCompat UnmatchedPolicy = iota
	// UnmatchedSymmetric: Next jumps to the first tab, Prev to the last.
	UnmatchedSymmetric
)

// Key names accepted by HandleKey.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Navigator moves the selection between adjacent tabs and asks the focus
// registry to focus the newly selected control. It never wraps.
type Navigator[C any] struct {
	set    Set[C]
	sel    *Selection
	focus  *FocusRegistry
	policy UnmatchedPolicy
}

func NewNavigator[C any](set Set[C], sel *Selection, focus *FocusRegistry, policy UnmatchedPolicy) *Navigator[C] {
	if focus == nil {
		focus = NewFocusRegistry()
	}
	return &Navigator[C]{set: set, sel: sel, focus: focus, policy: policy}
}

func (n *Navigator[C]) Focus() *FocusRegistry { return n.focus }

// Move selects the tab adjacent to the current one. It returns the newly
// selected tab, or false when the move was a no-op.
func (n *Navigator[C]) Move(dir Direction) (Entry[C], bool) {
	tabs := n.set.Tabs
	if len(tabs) == 0 {
		return Entry[C]{}, false
	}
	idx := n.set.TabIndex(n.sel.Get())
	target := -1
	switch dir {
	case Prev:
		switch {
		case idx > 0:
			target = idx - 1
		case idx < 0 && n.policy == UnmatchedSymmetric:
			target = len(tabs) - 1
		}
	case Next:
		// idx == -1 lands on tabs[0] under both policies.
		if idx < len(tabs)-1 {
			target = idx + 1
		}
	}
	if target < 0 {
		return Entry[C]{}, false
	}
	next := tabs[target]
	n.sel.Set(next.ID)
	n.focus.Focus(next.Key)
	return next, true
}

// HandleKey maps a key name to a move. Keys other than ArrowLeft and
// ArrowRight are ignored.
func (n *Navigator[C]) HandleKey(name string) bool {
	switch name {
	case KeyArrowLeft:
		_, ok := n.Move(Prev)
		return ok
	case KeyArrowRight:
		_, ok := n.Move(Next)
		return ok
	}
	return false
}

// Select applies a click on the tab with the given prefixed key. Focus is
// left to the host's default click behavior.
func (n *Navigator[C]) Select(tabKey string) bool {
	tab, ok := n.set.TabByKey(tabKey)
	if !ok {
		return false
	}
	n.sel.Set(tab.ID)
	return true
}
