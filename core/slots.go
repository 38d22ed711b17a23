package core

import "strings"

// Prefixes is the key convention a binding uses to tell tab slots from
// panel slots. The remainder of a key after its prefix is the base id that
// pairs a tab with its panel.
type Prefixes struct {
	Tab   string
	Panel string
}

var (
	DotPrefixes  = Prefixes{Tab: "tab.", Panel: "panel."}
	DashPrefixes = Prefixes{Tab: "tab-", Panel: "panel-"}
)

func (p Prefixes) IsTab(key string) bool   { return strings.HasPrefix(key, p.Tab) }
func (p Prefixes) IsPanel(key string) bool { return strings.HasPrefix(key, p.Panel) }

func (p Prefixes) StripTab(key string) string   { return strings.TrimPrefix(key, p.Tab) }
func (p Prefixes) StripPanel(key string) string { return strings.TrimPrefix(key, p.Panel) }

func (p Prefixes) TabKey(id string) string   { return p.Tab + id }
func (p Prefixes) PanelKey(id string) string { return p.Panel + id }

// Slot is one named piece of caller-supplied content.
type Slot[C any] struct {
	Key     string
	Content C
}

// Entry is a classified slot with its prefix stripped into ID.
type Entry[C any] struct {
	Key     string
	ID      string
	Content C
}

// Set holds tab and panel entries in the order they were supplied.
type Set[C any] struct {
	Tabs   []Entry[C]
	Panels []Entry[C]
}

// Partition classifies slots in a single pass. Keys matching neither prefix
// are dropped. When both prefixes match a key, it is a tab.
func Partition[C any](p Prefixes, slots []Slot[C]) Set[C] {
	var set Set[C]
	for _, s := range slots {
		switch {
		case p.IsTab(s.Key):
			set.Tabs = append(set.Tabs, Entry[C]{Key: s.Key, ID: p.StripTab(s.Key), Content: s.Content})
		case p.IsPanel(s.Key):
			set.Panels = append(set.Panels, Entry[C]{Key: s.Key, ID: p.StripPanel(s.Key), Content: s.Content})
		}
	}
	return set
}

// FirstPanelID is the initial selection: the first panel's base id, or ""
// when there are no panels.
func (s Set[C]) FirstPanelID() string {
	if len(s.Panels) == 0 {
		return ""
	}
	return s.Panels[0].ID
}

// TabIndex returns the index of the first tab with base id id, or -1.
func (s Set[C]) TabIndex(id string) int {
	for i, t := range s.Tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// TabByKey looks a tab up by its original prefixed key.
func (s Set[C]) TabByKey(key string) (Entry[C], bool) {
	for _, t := range s.Tabs {
		if t.Key == key {
			return t, true
		}
	}
	return Entry[C]{}, false
}
