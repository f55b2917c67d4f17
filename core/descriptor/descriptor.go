// Package descriptor maps hardware NoC IDs to block descriptor keys.
//
// The mapping comes from a manifest file listing which descriptor key
// describes the block behind each NoC ID:
//
//	blocks:
//	  - key: gain
//	    noc_id: "0x00000B16"
//
// An Index built from the manifest implements registry.Translator. Nothing
// is derived from the NoC ID itself; an id absent from the manifest is
// simply not translated.
package descriptor

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/fabric/core/block"
)

// Descriptor is one manifest row.
type Descriptor struct {
	Key   string `json:"key"`
	NocID string `json:"noc_id"`
	// Name is an optional human-readable label.
	Name string `json:"name"`
}

// Manifest is the on-disk layout.
type Manifest struct {
	Blocks []Descriptor `json:"blocks"`
}

// Mapping is one validated NocID to key binding.
type Mapping struct {
	NocID block.NocID
	Key   block.Key
	Name  string
}

// Index translates NocIDs to descriptor keys.
type Index struct {
	byID map[block.NocID]Mapping
}

// NewIndex validates descs and builds an index. Keys must be non-empty and
// each NocID may appear only once.
func NewIndex(descs []Descriptor) (*Index, error) {
	idx := &Index{byID: make(map[block.NocID]Mapping, len(descs))}
	for i, d := range descs {
		key := strings.TrimSpace(d.Key)
		if key == "" {
			return nil, fmt.Errorf("descriptor %d: key is required", i)
		}
		id, err := block.ParseNocID(d.NocID)
		if err != nil {
			return nil, fmt.Errorf("descriptor %q: %w", key, err)
		}
		if prev, ok := idx.byID[id]; ok {
			return nil, fmt.Errorf("descriptor %q: noc id %s already mapped to %q", key, id, prev.Key)
		}
		idx.byID[id] = Mapping{NocID: id, Key: block.Key(key), Name: d.Name}
	}
	return idx, nil
}

// Load reads a YAML or JSON manifest from path.
func Load(path string) (*Index, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", filepath.Ext(path))
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}
	var m Manifest
	if err := k.UnmarshalWithConf("", &m, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return NewIndex(m.Blocks)
}

// Translate implements registry.Translator.
func (i *Index) Translate(id block.NocID) (block.Key, bool) {
	if i == nil {
		return "", false
	}
	m, ok := i.byID[id]
	return m.Key, ok
}

// Len returns the number of mappings.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.byID)
}

// Mappings returns all mappings ordered by NocID.
func (i *Index) Mappings() []Mapping {
	if i == nil {
		return nil
	}
	out := make([]Mapping, 0, len(i.byID))
	for _, m := range i.byID {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b Mapping) int {
		switch {
		case a.NocID < b.NocID:
			return -1
		case a.NocID > b.NocID:
			return 1
		}
		return 0
	})
	return out
}
