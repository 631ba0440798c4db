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
	"context"
	"io"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// Object describes one object definition or reference found in an archive.
// Its exported fields are the variables available to list filters.
type Object struct {
	Depth  int
	Kind   string // "Begin" or "Reference".
	Name   string
	Type   string
	ID     int32
	Parent string // Type of the enclosing object, empty at the top level.
	// Definitions only.
	Params   int
	Children int
	Bytes    uint64 // Total parameter payload.
	// References only.
	Resolved bool
}

// Objects lists every object definition and reference of the archive in, in
// stream order.
func Objects(ctx context.Context, in io.Reader) ([]Object, error) {
	l := &lister{}
	if err := walk(ctx, in, 0, false, l); err != nil {
		return nil, err
	}
	return l.out, nil
}

type lister struct {
	out  []Object
	open []int // Indices in out of the open definitions.
}

func (l *lister) header(archive.Mode) {}

func (l *lister) child() {
	if n := len(l.open); n > 0 {
		l.out[l.open[n-1]].Children++
	}
}

func (l *lister) begin(h element.Header, depth int, parent string) error {
	l.child()
	l.open = append(l.open, len(l.out))
	l.out = append(l.out, Object{
		Depth:  depth,
		Kind:   h.Kind.String(),
		Name:   h.Name,
		Type:   h.Type,
		ID:     h.ID,
		Parent: parent,
	})
	return nil
}

func (l *lister) end(element.Header, int) error {
	l.open = l.open[:len(l.open)-1]
	return nil
}

func (l *lister) parameter(h element.Header, depth int, owner string, data []byte) error {
	if n := len(l.open); n > 0 {
		o := &l.out[l.open[n-1]]
		o.Params++
		o.Bytes += h.Size
	}
	return nil
}

func (l *lister) reference(h element.Header, depth int, parent string, resolved bool) error {
	l.child()
	l.out = append(l.out, Object{
		Depth:    depth,
		Kind:     h.Kind.String(),
		Name:     h.Name,
		Type:     h.Type,
		ID:       h.ID,
		Parent:   parent,
		Resolved: resolved,
	})
	return nil
}

func (l *lister) trailer(element.Header) error { return nil }
