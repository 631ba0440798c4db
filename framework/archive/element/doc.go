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

// Package element reads and writes the primitive elements of a scene archive.
//
// An archive body is a flat sequence of elements, each introduced by a 32 bit
// kind:
//
//	kind uint32 // Begin=1, End=2, Parameter=3, Reference=4, Trailer=5
//	name string // uint32 length followed by the bytes, empty for End
//
// Begin and Reference continue with
//
//	type string // the object type tag
//	id   int32  // the object identifier
//
// Parameter continues with
//
//	type uint32 // a ParamType tag
//	size uint64 // the payload size in bytes
//	data [size]byte
//
// and Trailer, which closes archives written to unseekable sinks, with
//
//	magic [4]byte
//	count uint64 // number of elements before the trailer
//
// All integers are little-endian. The package knows nothing about what
// objects mean; nesting, identity and typing are handled by the archive
// package.
package element
