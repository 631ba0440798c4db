// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dump

import (
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Names resolves integer parameter values to symbolic names. A value is
// looked up by the type of the object holding the parameter, the parameter
// name and the value itself. Names is immutable once built.
type Names struct {
	byValue map[nameKey]string
}

type nameKey struct {
	context string
	field   string
	value   int64
}

// Name is one entry of a Names table.
type Name struct {
	Context string // Type of the owning object.
	Field   string // Parameter name.
	Value   int64
	Name    string
}

// NewNames builds a table from entries. Later entries replace earlier ones
// for the same value.
func NewNames(entries ...Name) Names {
	n := Names{byValue: make(map[nameKey]string, len(entries))}
	for _, e := range entries {
		n.byValue[nameKey{e.Context, e.Field, e.Value}] = e.Name
	}
	return n
}

// Lookup returns the name of value for the parameter field of an object of
// type context.
func (n Names) Lookup(context, field string, value int64) (string, bool) {
	name, ok := n.byValue[nameKey{context, field, value}]
	return name, ok
}

// Len returns the number of entries in the table.
func (n Names) Len() int { return len(n.byValue) }

// Entries returns the table sorted by context, field and value.
func (n Names) Entries() []Name {
	out := make([]Name, 0, len(n.byValue))
	for k, v := range n.byValue {
		out = append(out, Name{Context: k.context, Field: k.field, Value: k.value, Name: v})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.Context != b.Context:
			return a.Context < b.Context
		case a.Field != b.Field:
			return a.Field < b.Field
		}
		return a.Value < b.Value
	})
	return out
}

// With returns a new table holding the entries of n and of others, the
// later tables taking precedence.
func (n Names) With(others ...Names) Names {
	entries := n.Entries()
	for _, o := range others {
		entries = append(entries, o.Entries()...)
	}
	return NewNames(entries...)
}

// ParseNames reads a table from YAML of the form
//
//	Light:
//	  type:
//	    Point: 1
//	    Spot: 3
//
// mapping object type, then parameter name, then symbolic name to value.
func ParseNames(data []byte) (Names, error) {
	doc := map[string]map[string]map[string]int64{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Names{}, errors.Wrap(err, "parsing names")
	}
	entries := []Name{}
	for context, fields := range doc {
		for field, values := range fields {
			for name, value := range values {
				entries = append(entries, Name{Context: context, Field: field, Value: value, Name: name})
			}
		}
	}
	// Map iteration order is random, make duplicate values deterministic.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name > entries[j].Name })
	return NewNames(entries...), nil
}

// LoadNames reads a YAML table from the file at path.
func LoadNames(path string) (Names, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Names{}, errors.Wrapf(err, "reading names %s", path)
	}
	n, err := ParseNames(data)
	return n, errors.Wrap(err, path)
}
