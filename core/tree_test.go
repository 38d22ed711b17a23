package core

import "testing"

func TestBuildTreeScenario(t *testing.T) {
	set := Partition(DotPrefixes, scenarioSlots())
	sel := NewSelection(set.FirstPanelID())
	if sel.Get() != "intro" {
		t.Fatalf("initial selection = %q", sel.Get())
	}

	tree := BuildTree(DotPrefixes, set, sel.Get())
	if tree.List.Role != RoleTabList {
		t.Fatalf("tab list role = %q", tree.List.Role)
	}
	if len(tree.List.Tabs) != 2 || tree.List.Tabs[0].ID != "tab.intro" || tree.List.Tabs[1].ID != "tab.detail" {
		t.Fatalf("unexpected tabs: %+v", tree.List.Tabs)
	}
	if !tree.List.Tabs[0].Selected || tree.List.Tabs[0].TabIndex != 0 {
		t.Fatalf("intro tab should be selected with tabindex 0")
	}
	if tree.List.Tabs[1].Selected || tree.List.Tabs[1].TabIndex != -1 {
		t.Fatalf("detail tab should be unselected with tabindex -1")
	}
	if tree.Panels[0].Hidden || !tree.Panels[1].Hidden {
		t.Fatalf("only intro panel should be visible")
	}
	if tree.Panels[1].LabelledBy != "tab.detail" || tree.Panels[1].Role != RoleTabPanel {
		t.Fatalf("panel cross reference mismatch: %+v", tree.Panels[1])
	}

	nav := NewNavigator(set, sel, nil, UnmatchedCompat)
	nav.Select("tab.detail")
	tree = BuildTree(DotPrefixes, set, sel.Get())
	visible, ok := tree.Visible()
	if !ok || visible.Key != "panel.detail" {
		t.Fatalf("expected detail panel visible, got %+v", visible)
	}
	if !tree.Panels[0].Hidden {
		t.Fatalf("intro panel should be hidden after click")
	}
}

func TestBuildTreeAtMostOneVisible(t *testing.T) {
	set := Partition(DashPrefixes, []Slot[string]{
		{Key: "tab-a"}, {Key: "panel-a"}, {Key: "panel-b"}, {Key: "panel-c"},
	})
	for _, selected := range []string{"a", "b", "c", "nope", ""} {
		tree := BuildTree(DashPrefixes, set, selected)
		visible := 0
		for _, p := range tree.Panels {
			if !p.Hidden {
				visible++
				if p.BaseID != selected {
					t.Fatalf("visible panel %q does not match selection %q", p.BaseID, selected)
				}
			}
		}
		want := 1
		if selected == "nope" || selected == "" {
			want = 0
		}
		if visible != want {
			t.Fatalf("selection %q: %d visible panels, want %d", selected, visible, want)
		}
	}
}

func TestBuildTreeOrphanPanelLabel(t *testing.T) {
	set := Partition(DashPrefixes, []Slot[string]{{Key: "panel-solo"}})
	tree := BuildTree(DashPrefixes, set, set.FirstPanelID())
	if len(tree.List.Tabs) != 0 {
		t.Fatalf("expected no tabs")
	}
	if tree.Panels[0].LabelledBy != "tab-solo" || tree.Panels[0].Hidden {
		t.Fatalf("orphan panel should stay visible and reference tab-solo: %+v", tree.Panels[0])
	}
}
