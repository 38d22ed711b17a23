package core

import "testing"

func scenarioSlots() []Slot[string] {
	return []Slot[string]{
		{Key: "tab.intro", Content: "Intro"},
		{Key: "tab.detail", Content: "Detail"},
		{Key: "panel.intro", Content: "<p>A</p>"},
		{Key: "panel.detail", Content: "<p>B</p>"},
	}
}

func TestPartitionKeepsInsertionOrder(t *testing.T) {
	set := Partition(DotPrefixes, []Slot[string]{
		{Key: "panel.b", Content: "pb"},
		{Key: "tab.b", Content: "tb"},
		{Key: "sharedStore", Content: "ignored"},
		{Key: "tab.a", Content: "ta"},
		{Key: "panel.a", Content: "pa"},
		{Key: "footer", Content: "ignored"},
	})
	if len(set.Tabs) != 2 || len(set.Panels) != 2 {
		t.Fatalf("expected 2 tabs and 2 panels, got %d/%d", len(set.Tabs), len(set.Panels))
	}
	if set.Tabs[0].ID != "b" || set.Tabs[1].ID != "a" {
		t.Fatalf("tab order mismatch: %+v", set.Tabs)
	}
	if set.Panels[0].Key != "panel.b" || set.Panels[0].Content != "pb" {
		t.Fatalf("panel entry mismatch: %+v", set.Panels[0])
	}
	if set.FirstPanelID() != "b" {
		t.Fatalf("first panel id = %q, want b", set.FirstPanelID())
	}
}

func TestPartitionCountsMatchPrefixes(t *testing.T) {
	cases := []struct {
		name   string
		p      Prefixes
		keys   []string
		tabs   int
		panels int
	}{
		{name: "empty", p: DotPrefixes, keys: nil},
		{name: "dot", p: DotPrefixes, keys: []string{"tab.a", "tab.b", "panel.a", "tab-c"}, tabs: 2, panels: 1},
		{name: "dash", p: DashPrefixes, keys: []string{"tab-a", "panel-a", "panel-b", "panel.c"}, tabs: 1, panels: 2},
		{name: "bare prefix", p: DotPrefixes, keys: []string{"tab.", "panel."}, tabs: 1, panels: 1},
		{name: "no match", p: DotPrefixes, keys: []string{"tabs.a", "Panel.a", "sharedStore"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := make([]Slot[int], 0, len(tc.keys))
			for i, k := range tc.keys {
				slots = append(slots, Slot[int]{Key: k, Content: i})
			}
			set := Partition(tc.p, slots)
			if len(set.Tabs) != tc.tabs || len(set.Panels) != tc.panels {
				t.Fatalf("got %d tabs / %d panels, want %d / %d", len(set.Tabs), len(set.Panels), tc.tabs, tc.panels)
			}
		})
	}
}

func TestFirstPanelIDEmpty(t *testing.T) {
	set := Partition(DotPrefixes, []Slot[string]{{Key: "tab.a"}})
	if got := set.FirstPanelID(); got != "" {
		t.Fatalf("expected empty initial selection, got %q", got)
	}
}

func TestPrefixRoundTrip(t *testing.T) {
	for _, p := range []Prefixes{DotPrefixes, DashPrefixes} {
		for _, id := range []string{"", "intro", "a.b", "multi word", "ünï"} {
			if got := p.StripTab(p.TabKey(id)); got != id {
				t.Fatalf("%+v: StripTab(TabKey(%q)) = %q", p, id, got)
			}
			if got := p.StripPanel(p.PanelKey(id)); got != id {
				t.Fatalf("%+v: StripPanel(PanelKey(%q)) = %q", p, id, got)
			}
		}
	}
}

func TestTabIndexAndLookup(t *testing.T) {
	set := Partition(DotPrefixes, scenarioSlots())
	if got := set.TabIndex("detail"); got != 1 {
		t.Fatalf("TabIndex(detail) = %d", got)
	}
	if got := set.TabIndex("missing"); got != -1 {
		t.Fatalf("TabIndex(missing) = %d", got)
	}
	if _, ok := set.TabByKey("tab.intro"); !ok {
		t.Fatalf("expected tab.intro lookup to succeed")
	}
	if _, ok := set.TabByKey("intro"); ok {
		t.Fatalf("lookup by base id must not match")
	}
}
