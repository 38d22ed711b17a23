package slotfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jask/tabkit/core"
)

func keys(slots []core.Slot[string]) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Key)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseYAMLKeepsOrder(t *testing.T) {
	f, err := ParseYAML([]byte(`
tab.zeta: Zeta
sharedStore: docs
tab.alpha: Alpha
panel.zeta: |
  first line
  second line
panel.alpha: a
`))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	want := []string{"tab.zeta", "tab.alpha", "panel.zeta", "panel.alpha"}
	if got := keys(f.Slots); !equal(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	if f.SharedStore != "docs" {
		t.Fatalf("shared store = %q", f.SharedStore)
	}
	if f.Slots[2].Content != "first line\nsecond line\n" {
		t.Fatalf("block scalar content = %q", f.Slots[2].Content)
	}
}

func TestParseYAMLRejectsNested(t *testing.T) {
	if _, err := ParseYAML([]byte("tab.a:\n  nested: true\n")); err == nil {
		t.Fatalf("expected error for nested value")
	}
	if _, err := ParseYAML([]byte("- a\n- b\n")); err == nil {
		t.Fatalf("expected error for sequence document")
	}
}

func TestParseYAMLEmpty(t *testing.T) {
	f, err := ParseYAML(nil)
	if err != nil {
		t.Fatalf("ParseYAML(nil): %v", err)
	}
	if len(f.Slots) != 0 {
		t.Fatalf("expected no slots")
	}
}

func TestParseTOML(t *testing.T) {
	f, err := ParseTOML([]byte(`
shared_store = "docs"

[[slot]]
key = "tab-b"
content = "B"

[[slot]]
key = "tab-a"
content = "A"

[[slot]]
key = "panel-b"
content = """
body"""
`))
	if err != nil {
		t.Fatalf("ParseTOML: %v", err)
	}
	if got := keys(f.Slots); !equal(got, []string{"tab-b", "tab-a", "panel-b"}) {
		t.Fatalf("keys = %v", got)
	}
	if f.SharedStore != "docs" || f.Slots[2].Content != "body" {
		t.Fatalf("unexpected file %+v", f)
	}
}

func TestParseTOMLMissingKey(t *testing.T) {
	if _, err := ParseTOML([]byte("[[slot]]\ncontent = \"x\"\n")); err == nil {
		t.Fatalf("expected missing key error")
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "slots.yml")
	if err := os.WriteFile(yml, []byte("tab.a: A\npanel.a: body\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(yml)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(f.Slots))
	}

	txt := filepath.Join(dir, "slots.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(txt); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
}
