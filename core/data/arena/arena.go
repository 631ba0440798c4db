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

// Package arena stores values behind stable integer handles.
//
// A Handle stays valid for the lifetime of its Arena and never aliases another
// value, so (kind, handle) pairs can be used as object identities without
// relying on pointer equality.
package arena

import (
	"fmt"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/fault"
)

// ErrInvalidHandle is returned when a handle does not name a value of the
// arena.
const ErrInvalidHandle = fault.Const("Invalid arena handle")

// Handle is the stable index of a value in an Arena.
type Handle uint32

// Format implements fmt.Formatter.
func (h Handle) Format(f fmt.State, c rune) {
	fmt.Fprintf(f, "#%d", uint32(h))
}

// Arena is an append-only store of T.
// The zero value is an empty arena ready for use.
type Arena[T any] struct {
	items []*T
}

// Add stores v and returns its handle.
func (a *Arena[T]) Add(v T) Handle {
	a.items = append(a.items, &v)
	return Handle(len(a.items) - 1)
}

// New stores a zero T and returns a pointer to it along with its handle.
func (a *Arena[T]) New() (*T, Handle) {
	h := a.Add(*new(T))
	return a.items[h], h
}

// Get returns the value for h, or nil if h is not a handle of this arena.
// The returned pointer stays valid as the arena grows.
func (a *Arena[T]) Get(h Handle) *T {
	if int(h) >= len(a.items) {
		return nil
	}
	return a.items[h]
}

// Lookup is like Get but reports a missing handle as ErrInvalidHandle.
func (a *Arena[T]) Lookup(h Handle) (*T, error) {
	if v := a.Get(h); v != nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %v of %d", ErrInvalidHandle, h, len(a.items))
}

// Len returns the number of values stored.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Handles returns every handle of the arena in insertion order.
func (a *Arena[T]) Handles() []Handle {
	out := make([]Handle, len(a.items))
	for i := range out {
		out[i] = Handle(i)
	}
	return out
}

// Values returns a copy of every value of the arena in insertion order.
func (a *Arena[T]) Values() []T {
	out := make([]T, len(a.items))
	for i, v := range a.items {
		out[i] = *v
	}
	return out
}
