// Package slotfile loads ordered slot collections from YAML or TOML files.
//
// YAML files are a single mapping; key order in the file is slot order:
//
//	sharedStore: docs
//	tab.intro: Intro
//	panel.intro: |
//	  Welcome.
//
// TOML files use an array of tables, since TOML tables are unordered:
//
//	shared_store = "docs"
//
//	[[slot]]
//	key = "tab.intro"
//	content = "Intro"
package slotfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jask/tabkit/core"
)

var ErrUnsupportedFormat = errors.New("unsupported slot file format")

// sharedStoreKey is a named option, not a slot.
const sharedStoreKey = "sharedStore"

type File struct {
	SharedStore string
	Slots       []core.Slot[string]
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read slot file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return File{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func ParseYAML(data []byte) (File, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return File{}, fmt.Errorf("parse yaml slots: %w", err)
	}
	if doc.Kind == 0 {
		return File{}, nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return File{}, fmt.Errorf("parse yaml slots: top level must be a mapping")
	}
	root := doc.Content[0]

	var f File
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return File{}, fmt.Errorf("parse yaml slots: line %d: %q must be a string", v.Line, k.Value)
		}
		if k.Value == sharedStoreKey {
			f.SharedStore = v.Value
			continue
		}
		f.Slots = append(f.Slots, core.Slot[string]{Key: k.Value, Content: v.Value})
	}
	return f, nil
}

type tomlFile struct {
	SharedStore string     `toml:"shared_store"`
	Slot        []tomlSlot `toml:"slot"`
}

type tomlSlot struct {
	Key     string `toml:"key"`
	Content string `toml:"content"`
}

func ParseTOML(data []byte) (File, error) {
	var raw tomlFile
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return File{}, fmt.Errorf("parse toml slots: %w", err)
	}
	f := File{SharedStore: raw.SharedStore}
	for i, s := range raw.Slot {
		if s.Key == "" {
			return File{}, fmt.Errorf("parse toml slots: slot[%d]: key is required", i)
		}
		f.Slots = append(f.Slots, core.Slot[string]{Key: s.Key, Content: s.Content})
	}
	return f, nil
}
