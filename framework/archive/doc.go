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

// Package archive reads and writes scene archives: streams of possibly shared
// objects built from the elements of the element package.
//
// An archive starts with an eight byte header
//
//	magic   [4]byte // Sentinel while writing, Magic once finished
//	version int32
//
// followed by the elements of the root objects. Every object is written as a
// Begin element carrying a fresh id, its parameters and children, and an End
// element. An object that has already been written is written again as a
// single Reference element carrying its id, so shared objects are stored
// once.
//
// Objects are identified by their type tag and an arena.Handle. What an object
// of a given type contains is up to its Class, registered in a Namespace.
// Readers hand unrecognised parameters and children to no one: they are
// skipped, which lets older readers load archives written by newer writers.
//
// The header is first written as Sentinel and only overwritten with Magic once
// the whole body has been written, so an archive whose writer failed or was
// killed part way is always rejected by ReadHeader. Sinks that cannot seek get
// StreamMagic instead and a closing Trailer element that plays the same role.
//
// A Reference can only be resolved once the End of the referenced object has
// been read. Writers must therefore write the defining occurrence of a shared
// object before any object that refers to it from another branch.
package archive
