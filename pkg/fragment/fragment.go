package fragment

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Fragment is a partially specified resource descriptor, as read from
// a fragment file: an ordered mapping from string keys to scalars,
// sequences, and nested mappings. It is the intermediate
// representation between raw file bytes and a typed resource, and is
// not meant to outlive enrichment.
type Fragment struct {
	items yaml.MapSlice
}

// Parse reads YAML or JSON bytes into a Fragment. JSON documents are
// valid YAML flow syntax, so a single decoder handles both. The
// returned error wraps the underlying syntax error with the source
// path, for diagnosability.
func Parse(content []byte, source string) (*Fragment, error) {
	var items yaml.MapSlice
	if err := yaml.Unmarshal(content, &items); err != nil {
		return nil, errors.Wrapf(err, "parsing %q", source)
	}
	return &Fragment{items: items}, nil
}

// Get returns the value at a top-level key, if present.
func (f *Fragment) Get(key string) (interface{}, bool) {
	for _, item := range f.items {
		if k, ok := item.Key.(string); ok && k == key {
			return item.Value, true
		}
	}
	return nil, false
}

// Has reports whether a top-level key is present, whatever its value.
func (f *Fragment) Has(key string) bool {
	_, ok := f.Get(key)
	return ok
}

// Set replaces the value at a top-level key, appending the key (and
// thereby preserving the order of everything already present) if it is
// not there yet.
func (f *Fragment) Set(key string, value interface{}) {
	for i, item := range f.items {
		if k, ok := item.Key.(string); ok && k == key {
			f.items[i].Value = value
			return
		}
	}
	f.items = append(f.items, yaml.MapItem{Key: key, Value: value})
}

// SetIfAbsent sets a top-level key only when it is not already
// present. User-supplied values are never overwritten.
func (f *Fragment) SetIfAbsent(key string, value interface{}) {
	if !f.Has(key) {
		f.items = append(f.items, yaml.MapItem{Key: key, Value: value})
	}
}

// StringAt returns the value at a key if it is a non-empty string.
func (f *Fragment) StringAt(key string) (string, bool) {
	v, ok := f.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Tree exposes the underlying ordered mapping, for conversion and
// serialization once enrichment is done.
func (f *Fragment) Tree() yaml.MapSlice {
	return f.items
}

// Bytes renders the fragment back to YAML, preserving key order.
func (f *Fragment) Bytes() ([]byte, error) {
	return yaml.Marshal(f.items)
}

// mapItemSet mirrors Set/SetIfAbsent for a nested mapping value. The
// caller is responsible for writing the returned slice back into the
// parent, since appending may reallocate.
func mapItemSetIfAbsent(m yaml.MapSlice, key string, value interface{}) yaml.MapSlice {
	for _, item := range m {
		if k, ok := item.Key.(string); ok && k == key {
			return m
		}
	}
	return append(m, yaml.MapItem{Key: key, Value: value})
}
