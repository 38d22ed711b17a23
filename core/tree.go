package core

const (
	RoleTabList  = "tablist"
	RoleTab      = "tab"
	RoleTabPanel = "tabpanel"
)

// TabNode is one focusable tab control.
type TabNode[C any] struct {
	Role     string
	ID       string
	BaseID   string
	Selected bool
	TabIndex int
	Content  C
}

// PanelNode is one panel container. LabelledBy may name a tab that does
// not exist when the panel has no matching tab.
type PanelNode[C any] struct {
	Role       string
	Key        string
	BaseID     string
	Hidden     bool
	LabelledBy string
	Content    C
}

type TabList[C any] struct {
	Role string
	Tabs []TabNode[C]
}

// Tree is the structural output both bindings draw.
type Tree[C any] struct {
	List   TabList[C]
	Panels []PanelNode[C]
}

func BuildTree[C any](p Prefixes, set Set[C], selected string) Tree[C] {
	tree := Tree[C]{
		List:   TabList[C]{Role: RoleTabList, Tabs: make([]TabNode[C], 0, len(set.Tabs))},
		Panels: make([]PanelNode[C], 0, len(set.Panels)),
	}
	for _, t := range set.Tabs {
		on := t.ID == selected
		idx := -1
		if on {
			idx = 0
		}
		tree.List.Tabs = append(tree.List.Tabs, TabNode[C]{
			Role:     RoleTab,
			ID:       t.Key,
			BaseID:   t.ID,
			Selected: on,
			TabIndex: idx,
			Content:  t.Content,
		})
	}
	for _, pn := range set.Panels {
		tree.Panels = append(tree.Panels, PanelNode[C]{
			Role:       RoleTabPanel,
			Key:        pn.Key,
			BaseID:     pn.ID,
			Hidden:     pn.ID != selected,
			LabelledBy: p.TabKey(pn.ID),
			Content:    pn.Content,
		})
	}
	return tree
}

// Visible returns the first panel that is not hidden.
func (t Tree[C]) Visible() (PanelNode[C], bool) {
	for _, p := range t.Panels {
		if !p.Hidden {
			return p, true
		}
	}
	return PanelNode[C]{}, false
}
