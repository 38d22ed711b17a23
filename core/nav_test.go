package core

import "testing"

type fakeControl struct {
	key     string
	focused *[]string
}

func (c fakeControl) Focus() { *c.focused = append(*c.focused, c.key) }

func newTestNav(t *testing.T, keys []string, initial string, policy UnmatchedPolicy) (*Navigator[string], *Selection, *[]string) {
	t.Helper()
	slots := make([]Slot[string], 0, len(keys))
	for _, k := range keys {
		slots = append(slots, Slot[string]{Key: k})
	}
	set := Partition(DotPrefixes, slots)
	sel := NewSelection(initial)
	reg := NewFocusRegistry()
	focused := &[]string{}
	for _, tab := range set.Tabs {
		reg.Register(tab.Key, fakeControl{key: tab.Key, focused: focused})
	}
	return NewNavigator(set, sel, reg, policy), sel, focused
}

func TestNavigatorMovesWithoutWrapping(t *testing.T) {
	keys := []string{"tab.A", "tab.B", "tab.C", "panel.A", "panel.B", "panel.C"}
	nav, sel, focused := newTestNav(t, keys, "B", UnmatchedCompat)

	if !nav.HandleKey(KeyArrowRight) || sel.Get() != "C" {
		t.Fatalf("ArrowRight from B should select C, got %q", sel.Get())
	}
	if nav.HandleKey(KeyArrowRight) || sel.Get() != "C" {
		t.Fatalf("ArrowRight at end must be a no-op, got %q", sel.Get())
	}

	sel.Set("B")
	if !nav.HandleKey(KeyArrowLeft) || sel.Get() != "A" {
		t.Fatalf("ArrowLeft from B should select A, got %q", sel.Get())
	}
	if nav.HandleKey(KeyArrowLeft) || sel.Get() != "A" {
		t.Fatalf("ArrowLeft at start must be a no-op, got %q", sel.Get())
	}

	want := []string{"tab.C", "tab.A"}
	if len(*focused) != len(want) || (*focused)[0] != want[0] || (*focused)[1] != want[1] {
		t.Fatalf("focus calls = %v, want %v", *focused, want)
	}
}

func TestNavigatorIgnoresOtherKeys(t *testing.T) {
	nav, sel, focused := newTestNav(t, []string{"tab.a", "tab.b"}, "a", UnmatchedCompat)
	for _, k := range []string{"ArrowUp", "ArrowDown", "Enter", "left", ""} {
		if nav.HandleKey(k) {
			t.Fatalf("key %q should be ignored", k)
		}
	}
	if sel.Get() != "a" || len(*focused) != 0 {
		t.Fatalf("state changed on ignored keys")
	}
}

func TestNavigatorEmptyTabsIsNoop(t *testing.T) {
	nav, sel, _ := newTestNav(t, []string{"panel.a"}, "a", UnmatchedSymmetric)
	if nav.HandleKey(KeyArrowLeft) || nav.HandleKey(KeyArrowRight) {
		t.Fatalf("navigation with no tabs must be a no-op")
	}
	if sel.Get() != "a" {
		t.Fatalf("selection changed: %q", sel.Get())
	}
}

func TestNavigatorUnmatchedSelection(t *testing.T) {
	keys := []string{"tab.a", "tab.b", "tab.c", "panel.orphan"}
	cases := []struct {
		name   string
		policy UnmatchedPolicy
		key    string
		want   string
	}{
		{name: "compat right jumps to first", policy: UnmatchedCompat, key: KeyArrowRight, want: "a"},
		{name: "compat left is noop", policy: UnmatchedCompat, key: KeyArrowLeft, want: "orphan"},
		{name: "symmetric right jumps to first", policy: UnmatchedSymmetric, key: KeyArrowRight, want: "a"},
		{name: "symmetric left jumps to last", policy: UnmatchedSymmetric, key: KeyArrowLeft, want: "c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nav, sel, _ := newTestNav(t, keys, "orphan", tc.policy)
			nav.HandleKey(tc.key)
			if sel.Get() != tc.want {
				t.Fatalf("selection = %q, want %q", sel.Get(), tc.want)
			}
		})
	}
}

func TestNavigatorStaleFocusEntry(t *testing.T) {
	nav, sel, focused := newTestNav(t, []string{"tab.a", "tab.b"}, "a", UnmatchedCompat)
	nav.Focus().Unregister("tab.b")
	if !nav.HandleKey(KeyArrowRight) {
		t.Fatalf("selection should move even when the control is unmounted")
	}
	if sel.Get() != "b" || len(*focused) != 0 {
		t.Fatalf("expected selection b and no focus call, got %q / %v", sel.Get(), *focused)
	}
}

func TestNavigatorSelectByKey(t *testing.T) {
	nav, sel, focused := newTestNav(t, []string{"tab.a", "tab.b"}, "a", UnmatchedCompat)
	if !nav.Select("tab.b") || sel.Get() != "b" {
		t.Fatalf("click on tab.b should select b")
	}
	if nav.Select("b") || nav.Select("tab.zzz") {
		t.Fatalf("unknown keys must not select")
	}
	if len(*focused) != 0 {
		t.Fatalf("click must not issue focus commands")
	}
}
