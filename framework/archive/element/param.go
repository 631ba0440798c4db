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

package element

import "fmt"

// ParamType is the shape of a Parameter payload.
type ParamType uint32

// The tag values are part of the file format and must never be renumbered.
const (
	Undefined ParamType = iota
	Float1
	Float2
	Float3
	Float4
	Float16
	Uint32x1
	Uint32x2
	Uint32x3
	Uint32x4
	Int32x1
	Int32x2
	Int32x3
	Int32x4
	Uint64x1
	Uint64x2
	Uint64x3
	Uint64x4
	Int64x1
	Int64x2
	Int64x3
	Int64x4
	String
)

// Scalar is the element type of a fixed-shape ParamType.
type Scalar int

const (
	NoScalar Scalar = iota
	Float32Scalar
	Uint32Scalar
	Int32Scalar
	Uint64Scalar
	Int64Scalar
)

var scalarSizes = [...]int{
	NoScalar:      0,
	Float32Scalar: 4,
	Uint32Scalar:  4,
	Int32Scalar:   4,
	Uint64Scalar:  8,
	Int64Scalar:   8,
}

type paramInfo struct {
	name   string
	scalar Scalar
	count  int
}

var params = [...]paramInfo{
	Undefined: {"Undefined", NoScalar, 0},
	Float1:    {"Float1", Float32Scalar, 1},
	Float2:    {"Float2", Float32Scalar, 2},
	Float3:    {"Float3", Float32Scalar, 3},
	Float4:    {"Float4", Float32Scalar, 4},
	Float16:   {"Float16", Float32Scalar, 16},
	Uint32x1:  {"UInt32_1", Uint32Scalar, 1},
	Uint32x2:  {"UInt32_2", Uint32Scalar, 2},
	Uint32x3:  {"UInt32_3", Uint32Scalar, 3},
	Uint32x4:  {"UInt32_4", Uint32Scalar, 4},
	Int32x1:   {"Int32_1", Int32Scalar, 1},
	Int32x2:   {"Int32_2", Int32Scalar, 2},
	Int32x3:   {"Int32_3", Int32Scalar, 3},
	Int32x4:   {"Int32_4", Int32Scalar, 4},
	Uint64x1:  {"UInt64_1", Uint64Scalar, 1},
	Uint64x2:  {"UInt64_2", Uint64Scalar, 2},
	Uint64x3:  {"UInt64_3", Uint64Scalar, 3},
	Uint64x4:  {"UInt64_4", Uint64Scalar, 4},
	Int64x1:   {"Int64_1", Int64Scalar, 1},
	Int64x2:   {"Int64_2", Int64Scalar, 2},
	Int64x3:   {"Int64_3", Int64Scalar, 3},
	Int64x4:   {"Int64_4", Int64Scalar, 4},
	String:    {"String", NoScalar, 0},
}

func (t ParamType) info() (paramInfo, bool) {
	if int(t) >= len(params) {
		return paramInfo{}, false
	}
	return params[t], true
}

// Known returns true if t is one of the ParamTypes of this format version.
// Payloads of unknown types can still be skipped as their size is explicit.
func (t ParamType) Known() bool {
	_, ok := t.info()
	return ok
}

// Size returns the payload size of a fixed-shape type. fixed is false for
// String, Undefined and unknown tags, whose size is carried by the element.
func (t ParamType) Size() (size uint64, fixed bool) {
	i, ok := t.info()
	if !ok || i.scalar == NoScalar {
		return 0, false
	}
	return uint64(scalarSizes[i.scalar] * i.count), true
}

// Scalar returns the element type and count of a fixed-shape type.
func (t ParamType) Scalar() (Scalar, int) {
	i, _ := t.info()
	return i.scalar, i.count
}

func (t ParamType) String() string {
	if i, ok := t.info(); ok {
		return i.name
	}
	return fmt.Sprintf("ParamType(%d)", uint32(t))
}

// ParamFor returns the fixed-shape type holding count values of s.
func ParamFor(s Scalar, count int) (ParamType, bool) {
	for t, i := range params {
		if i.scalar == s && i.count == count && s != NoScalar {
			return ParamType(t), true
		}
	}
	return Undefined, false
}
