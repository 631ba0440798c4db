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

// Package registry tracks object identities for one archive read or write
// session.
//
// The write side answers "has this object already been written, and under
// which id?" so that a shared object is written once and referenced
// afterwards. The read side maps ids back to the handles of objects that
// have been completely read. Objects are registered on the write side when
// their Begin element is emitted and on the read side only when their End
// element has been consumed, so a reader can never resolve a reference to an
// object that is still open.
package registry

import (
	"fmt"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/arena"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// FirstID is the first object id handed out by Writes. Starting well above
// zero keeps object ids visually distinct from small domain values in dumps.
const FirstID int32 = 1000

// Record is a registered object.
type Record struct {
	ID     int32
	Type   string
	Name   string
	Handle arena.Handle
}

// Format implements fmt.Formatter.
func (r Record) Format(f fmt.State, c rune) {
	fmt.Fprintf(f, "%s %q #%d -> %v", r.Type, r.Name, r.ID, r.Handle)
}

type key struct {
	typ    string
	handle arena.Handle
}

// Writes is the write side registry.
type Writes struct {
	next    int32
	byKey   map[key]int32
	open    map[int32]bool
	records []Record
}

// NewWrites returns an empty write side registry.
func NewWrites() *Writes {
	return &Writes{next: FirstID, byKey: map[key]int32{}, open: map[int32]bool{}}
}

// Find returns the id of the object of type typ with handle h, if it has been
// registered.
func (w *Writes) Find(typ string, h arena.Handle) (int32, bool) {
	id, ok := w.byKey[key{typ, h}]
	return id, ok
}

// Register assigns the next id to the object of type typ with handle h.
// It panics if the object is already registered, as that means the writer
// failed to call Find first.
func (w *Writes) Register(name, typ string, h arena.Handle) int32 {
	k := key{typ, h}
	if _, dup := w.byKey[k]; dup {
		panic(fmt.Errorf("Object %s %v registered twice", typ, h))
	}
	id := w.next
	w.next++
	w.byKey[k] = id
	w.open[id] = true
	w.records = append(w.records, Record{ID: id, Type: typ, Name: name, Handle: h})
	return id
}

// Close marks the object id as completely written.
func (w *Writes) Close(id int32) { delete(w.open, id) }

// Open returns true if the object id has been registered but not closed.
// A reader only resolves references to closed objects.
func (w *Writes) Open(id int32) bool { return w.open[id] }

// Records returns every registered object in registration order.
func (w *Writes) Records() []Record { return w.records }

// Reads is the read side registry.
type Reads struct {
	byID    map[int32]int
	records []Record
}

// NewReads returns an empty read side registry.
func NewReads() *Reads {
	return &Reads{byID: map[int32]int{}}
}

// Register records that the object id of type typ has been completely read
// and is now available as h.
// Registering the same id twice is an ErrFormat error.
func (r *Reads) Register(id int32, name, typ string, h arena.Handle) error {
	if i, dup := r.byID[id]; dup {
		return element.Errorf(element.ErrFormat, nil, "object id %d declared twice (%v and %s)",
			id, r.records[i], typ)
	}
	r.byID[id] = len(r.records)
	r.records = append(r.records, Record{ID: id, Type: typ, Name: name, Handle: h})
	return nil
}

// Resolve returns the handle of the completely read object id.
// An id that has not been registered is ErrUnresolvedReference, one that was
// registered with a different type is ErrFormat.
func (r *Reads) Resolve(typ string, id int32) (arena.Handle, error) {
	i, ok := r.byID[id]
	if !ok {
		return 0, element.Errorf(element.ErrUnresolvedReference, nil, "%s #%d", typ, id)
	}
	if rec := r.records[i]; rec.Type != typ {
		return 0, element.Errorf(element.ErrFormat, nil, "reference to #%d expects %s, found %s",
			id, typ, rec.Type)
	}
	return r.records[i].Handle, nil
}

// Records returns every registered object in registration order.
func (r *Reads) Records() []Record { return r.records }
