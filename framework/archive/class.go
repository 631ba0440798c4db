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

package archive

import (
	"context"
	"fmt"
	"sort"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/arena"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// Handle identifies an object within the storage of its class.
type Handle = arena.Handle

// Class writes and reconstructs the objects of one type tag.
type Class interface {
	// Type returns the type tag of the objects of this class.
	Type() string
	// Encode writes the parameters and children of object h to w.
	Encode(ctx context.Context, w *Writer, h Handle) error
	// Decode returns a Builder that constructs one object as its elements
	// are read.
	Decode(ctx context.Context) (Builder, error)
}

// ParamFunc consumes the payload of a recognised parameter.
type ParamFunc func(t element.ParamType, data []byte) error

// ChildFunc attaches a recognised child object to the object being built.
type ChildFunc func(h Handle) error

// Builder accumulates the contents of an object being read.
type Builder interface {
	// Parameter returns the consumer of the parameter name of type t, or nil
	// if the parameter is not recognised and should be skipped.
	Parameter(name string, t element.ParamType) ParamFunc
	// Child returns the function attaching the child name of type typ, or
	// nil if the child is not recognised and should be skipped.
	Child(name, typ string) ChildFunc
	// Build is called once the End of the object has been read and returns
	// the handle of the constructed object.
	Build(ctx context.Context) (Handle, error)
}

// Funcs is a Class built from a pair of closures.
type Funcs struct {
	Name  string
	Write func(ctx context.Context, w *Writer, h Handle) error
	Read  func(ctx context.Context) (Builder, error)
}

var _ Class = &Funcs{}

// Type implements Class.
func (c *Funcs) Type() string { return c.Name }

// Encode implements Class.
func (c *Funcs) Encode(ctx context.Context, w *Writer, h Handle) error { return c.Write(ctx, w, h) }

// Decode implements Class.
func (c *Funcs) Decode(ctx context.Context) (Builder, error) { return c.Read(ctx) }

// Child is a child slot of a Fields builder.
type Child struct {
	Type string
	Set  ChildFunc
}

// Param is a parameter slot of a Fields builder. A parameter fills the slot
// only if it has the slot's name and Type.
type Param struct {
	Type element.ParamType
	Set  ParamFunc
}

// Fields is a Builder driven by tables of named parameter and child handlers.
type Fields struct {
	Params   map[string]Param
	Children map[string]Child
	Done     func(ctx context.Context) (Handle, error)
}

var _ Builder = &Fields{}

// Parameter implements Builder.
func (f *Fields) Parameter(name string, t element.ParamType) ParamFunc {
	if p, ok := f.Params[name]; ok && p.Type == t {
		return p.Set
	}
	return nil
}

// Child implements Builder.
func (f *Fields) Child(name, typ string) ChildFunc {
	if c, ok := f.Children[name]; ok && c.Type == typ {
		return c.Set
	}
	return nil
}

// Build implements Builder.
func (f *Fields) Build(ctx context.Context) (Handle, error) {
	return f.Done(ctx)
}

// Namespace maps type tags to their Class.
type Namespace struct {
	fallbacks []*Namespace
	classes   map[string]Class
}

// NewNamespace creates a new namespace layered on top of the specified
// fallbacks.
func NewNamespace(fallbacks ...*Namespace) *Namespace {
	return &Namespace{
		fallbacks: fallbacks,
		classes:   map[string]Class{},
	}
}

// Add adds a class to the Namespace. It panics if a class with the same type
// tag is already present.
func (n *Namespace) Add(class Class) {
	if class == nil {
		panic(fmt.Errorf("Attempt to add nil class to namespace"))
	}
	typ := class.Type()
	if _, found := n.classes[typ]; found {
		panic(fmt.Errorf("Class for %s already present", typ))
	}
	n.classes[typ] = class
}

// Lookup returns the Class for the type tag typ, or nil if there is none.
func (n *Namespace) Lookup(typ string) Class {
	if class, found := n.classes[typ]; found {
		return class
	}
	for _, f := range n.fallbacks {
		if class := f.Lookup(typ); class != nil {
			return class
		}
	}
	return nil
}

// Types returns the sorted type tags reachable through this namespace.
func (n *Namespace) Types() []string {
	seen := map[string]bool{}
	n.visit(func(typ string) { seen[typ] = true })
	out := make([]string, 0, len(seen))
	for typ := range seen {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}

func (n *Namespace) visit(f func(string)) {
	for typ := range n.classes {
		f(typ)
	}
	for _, fb := range n.fallbacks {
		fb.visit(f)
	}
}
