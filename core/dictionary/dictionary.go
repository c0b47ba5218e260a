// Package dictionary maps typst identifiers to mathlog fragments.
//
// A Dictionary is a recursive table: idents holds leaf fragments and
// modules holds nested dictionaries, so `arrow.r.long` resolves module
// "arrow", then module "r", then ident "long". Dictionaries are built and
// loaded once, then shared read-only by every translation.
package dictionary

import (
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/mathlog/core/errors"
)

// jsonMarshal is injectable for testing.
var jsonMarshal = json.Marshal

// Dictionary is one level of the nested identifier table.
type Dictionary struct {
	Idents  map[string]string      `json:"idents"`
	Modules map[string]*Dictionary `json:"modules"`
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		Idents:  make(map[string]string),
		Modules: make(map[string]*Dictionary),
	}
}

// Lookup resolves path to its fragment. Every name but the last selects a
// module; the last selects an ident. Failures carry the full path.
func (d *Dictionary) Lookup(path ...string) (string, error) {
	if len(path) == 0 {
		return "", errors.NewUnsupportedIdent(path)
	}

	cur := d
	for _, name := range path[:len(path)-1] {
		next, ok := cur.module(name)
		if !ok {
			return "", errors.NewUnsupportedModule(path)
		}
		cur = next
	}

	if cur != nil {
		if fragment, ok := cur.Idents[path[len(path)-1]]; ok {
			return fragment, nil
		}
	}
	return "", errors.NewUnsupportedIdent(path)
}

// Module resolves a module path. An empty path returns d itself.
func (d *Dictionary) Module(path ...string) (*Dictionary, error) {
	cur := d
	for _, name := range path {
		next, ok := cur.module(name)
		if !ok {
			return nil, errors.NewUnsupportedModule(path)
		}
		cur = next
	}
	return cur, nil
}

func (d *Dictionary) module(name string) (*Dictionary, bool) {
	if d == nil {
		return nil, false
	}
	m, ok := d.Modules[name]
	return m, ok && m != nil
}

// Insert stores fragment at path, creating intermediate modules.
func (d *Dictionary) Insert(path []string, fragment string) error {
	if len(path) == 0 {
		return errors.NewValidation("path", "empty identifier path")
	}

	cur := d
	for _, name := range path[:len(path)-1] {
		cur.init()
		next, ok := cur.Modules[name]
		if !ok || next == nil {
			next = New()
			cur.Modules[name] = next
		}
		cur = next
	}
	cur.init()
	cur.Idents[path[len(path)-1]] = fragment
	return nil
}

func (d *Dictionary) init() {
	if d.Idents == nil {
		d.Idents = make(map[string]string)
	}
	if d.Modules == nil {
		d.Modules = make(map[string]*Dictionary)
	}
}

// Patch merges other into d. Entries from other win; modules present in
// both are merged recursively.
func (d *Dictionary) Patch(other *Dictionary) {
	if other == nil {
		return
	}
	d.init()
	for name, fragment := range other.Idents {
		d.Idents[name] = fragment
	}
	for name, m := range other.Modules {
		if m == nil {
			continue
		}
		existing, ok := d.Modules[name]
		if !ok || existing == nil {
			existing = New()
			d.Modules[name] = existing
		}
		existing.Patch(m)
	}
}

// Clone returns a deep copy of d.
func (d *Dictionary) Clone() *Dictionary {
	out := New()
	out.Patch(d)
	return out
}

// FromFlat builds a dictionary from dotted keys such as "arrow.r.long".
func FromFlat(entries map[string]string) (*Dictionary, error) {
	d := New()
	for key, fragment := range entries {
		path, err := ParsePath(key)
		if err != nil {
			return nil, err
		}
		if err := d.Insert(path, fragment); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Walk visits every ident in sorted order: a level's idents before its
// modules. fn receives its own copy of the path.
func (d *Dictionary) Walk(fn func(path []string, fragment string) error) error {
	return d.walk(nil, fn)
}

func (d *Dictionary) walk(prefix []string, fn func([]string, string) error) error {
	if d == nil {
		return nil
	}
	for _, name := range sortedKeys(d.Idents) {
		path := append(append([]string(nil), prefix...), name)
		if err := fn(path, d.Idents[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(d.Modules) {
		path := append(append([]string(nil), prefix...), name)
		if err := d.Modules[name].walk(path, fn); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stats summarizes a dictionary.
type Stats struct {
	Idents   int `json:"idents"`
	Modules  int `json:"modules"`
	MaxDepth int `json:"max_depth"`
}

// Stats counts idents and modules across every level.
func (d *Dictionary) Stats() Stats {
	var s Stats
	type level struct {
		dict  *Dictionary
		depth int
	}
	queue := []level{{d, 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.dict == nil {
			continue
		}
		if cur.depth > s.MaxDepth {
			s.MaxDepth = cur.depth
		}
		s.Idents += len(cur.dict.Idents)
		for _, m := range cur.dict.Modules {
			s.Modules++
			queue = append(queue, level{m, cur.depth + 1})
		}
	}
	return s
}

// Fingerprint returns the BLAKE3 hex digest of the canonical JSON encoding.
// Map keys are sorted by encoding/json, so equal dictionaries hash equal.
func (d *Dictionary) Fingerprint() (string, error) {
	data, err := jsonMarshal(d.normalized())
	if err != nil {
		return "", errors.Wrap(err, "failed to encode dictionary")
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// normalized replaces nil maps so that nil and empty encode the same way.
func (d *Dictionary) normalized() *Dictionary {
	if d == nil {
		return New()
	}
	return d.Clone()
}
