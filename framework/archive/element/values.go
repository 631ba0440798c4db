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

import (
	"fmt"
	"math"
	"strings"
)

// Float32s encodes v as the Float type of matching length (1, 2, 3, 4 or 16).
func Float32s(v ...float32) (ParamType, []byte, error) {
	t, ok := ParamFor(Float32Scalar, len(v))
	if !ok {
		return Undefined, nil, Errorf(ErrFormat, nil, "no float parameter type holds %d values", len(v))
	}
	out := make([]byte, 4*len(v))
	for i, f := range v {
		ByteOrder.PutUint32(out[4*i:], math.Float32bits(f))
	}
	return t, out, nil
}

// Uint32s encodes v as the UInt32 type of matching length (1 to 4).
func Uint32s(v ...uint32) (ParamType, []byte, error) {
	t, ok := ParamFor(Uint32Scalar, len(v))
	if !ok {
		return Undefined, nil, Errorf(ErrFormat, nil, "no uint32 parameter type holds %d values", len(v))
	}
	out := make([]byte, 4*len(v))
	for i, u := range v {
		ByteOrder.PutUint32(out[4*i:], u)
	}
	return t, out, nil
}

// Int32s encodes v as the Int32 type of matching length (1 to 4).
func Int32s(v ...int32) (ParamType, []byte, error) {
	t, ok := ParamFor(Int32Scalar, len(v))
	if !ok {
		return Undefined, nil, Errorf(ErrFormat, nil, "no int32 parameter type holds %d values", len(v))
	}
	out := make([]byte, 4*len(v))
	for i, u := range v {
		ByteOrder.PutUint32(out[4*i:], uint32(u))
	}
	return t, out, nil
}

// Uint64s encodes v as the UInt64 type of matching length (1 to 4).
func Uint64s(v ...uint64) (ParamType, []byte, error) {
	t, ok := ParamFor(Uint64Scalar, len(v))
	if !ok {
		return Undefined, nil, Errorf(ErrFormat, nil, "no uint64 parameter type holds %d values", len(v))
	}
	out := make([]byte, 8*len(v))
	for i, u := range v {
		ByteOrder.PutUint64(out[8*i:], u)
	}
	return t, out, nil
}

// Int64s encodes v as the Int64 type of matching length (1 to 4).
func Int64s(v ...int64) (ParamType, []byte, error) {
	t, ok := ParamFor(Int64Scalar, len(v))
	if !ok {
		return Undefined, nil, Errorf(ErrFormat, nil, "no int64 parameter type holds %d values", len(v))
	}
	out := make([]byte, 8*len(v))
	for i, u := range v {
		ByteOrder.PutUint64(out[8*i:], uint64(u))
	}
	return t, out, nil
}

func check(t ParamType, want Scalar, data []byte) (int, error) {
	s, n := t.Scalar()
	if s != want {
		return 0, Errorf(ErrFormat, nil, "parameter type %v is not a %v", t, want)
	}
	if size, _ := t.Size(); uint64(len(data)) != size {
		return 0, Errorf(ErrFormat, nil, "%v payload has %d bytes, expected %d", t, len(data), size)
	}
	return n, nil
}

// DecodeFloat32s decodes a Float payload.
func DecodeFloat32s(t ParamType, data []byte) ([]float32, error) {
	n, err := check(t, Float32Scalar, data)
	if err != nil {
		return nil, err
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(ByteOrder.Uint32(data[4*i:]))
	}
	return out, nil
}

// DecodeUint32s decodes a UInt32 payload.
func DecodeUint32s(t ParamType, data []byte) ([]uint32, error) {
	n, err := check(t, Uint32Scalar, data)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = ByteOrder.Uint32(data[4*i:])
	}
	return out, nil
}

// DecodeInt32s decodes an Int32 payload.
func DecodeInt32s(t ParamType, data []byte) ([]int32, error) {
	n, err := check(t, Int32Scalar, data)
	if err != nil {
		return nil, err
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(ByteOrder.Uint32(data[4*i:]))
	}
	return out, nil
}

// DecodeUint64s decodes a UInt64 payload.
func DecodeUint64s(t ParamType, data []byte) ([]uint64, error) {
	n, err := check(t, Uint64Scalar, data)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = ByteOrder.Uint64(data[8*i:])
	}
	return out, nil
}

// DecodeInt64s decodes an Int64 payload.
func DecodeInt64s(t ParamType, data []byte) ([]int64, error) {
	n, err := check(t, Int64Scalar, data)
	if err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(ByteOrder.Uint64(data[8*i:]))
	}
	return out, nil
}

// DecodeString decodes a String payload.
func DecodeString(t ParamType, data []byte) (string, error) {
	if t != String {
		return "", Errorf(ErrFormat, nil, "parameter type %v is not a String", t)
	}
	return string(data), nil
}

// Integers decodes any integer payload widened to int64, for consumers that
// only need the numeric value such as flag name lookups.
func Integers(t ParamType, data []byte) ([]int64, bool) {
	s, _ := t.Scalar()
	switch s {
	case Uint32Scalar:
		v, err := DecodeUint32s(t, data)
		if err != nil {
			return nil, false
		}
		out := make([]int64, len(v))
		for i, u := range v {
			out[i] = int64(u)
		}
		return out, true
	case Int32Scalar:
		v, err := DecodeInt32s(t, data)
		if err != nil {
			return nil, false
		}
		out := make([]int64, len(v))
		for i, u := range v {
			out[i] = int64(u)
		}
		return out, true
	case Uint64Scalar:
		v, err := DecodeUint64s(t, data)
		if err != nil {
			return nil, false
		}
		out := make([]int64, len(v))
		for i, u := range v {
			out[i] = int64(u)
		}
		return out, true
	case Int64Scalar:
		v, err := DecodeInt64s(t, data)
		return v, err == nil
	}
	return nil, false
}

// Describe renders a payload as text: numbers for fixed-shape types, a quoted
// string for String and a byte count for anything else.
func Describe(t ParamType, data []byte) string {
	s, _ := t.Scalar()
	var parts []string
	switch s {
	case Float32Scalar:
		v, err := DecodeFloat32s(t, data)
		if err != nil {
			break
		}
		for _, f := range v {
			parts = append(parts, fmt.Sprint(f))
		}
	case Uint64Scalar:
		v, err := DecodeUint64s(t, data)
		if err != nil {
			break
		}
		for _, u := range v {
			parts = append(parts, fmt.Sprint(u))
		}
	case Uint32Scalar, Int32Scalar, Int64Scalar:
		v, ok := Integers(t, data)
		if !ok {
			break
		}
		for _, i := range v {
			parts = append(parts, fmt.Sprint(i))
		}
	default:
		if t == String {
			return fmt.Sprintf("%q", data)
		}
	}
	if parts == nil {
		return fmt.Sprintf("<%d bytes>", len(data))
	}
	return strings.Join(parts, " ")
}

func (s Scalar) String() string {
	switch s {
	case Float32Scalar:
		return "float32"
	case Uint32Scalar:
		return "uint32"
	case Int32Scalar:
		return "int32"
	case Uint64Scalar:
		return "uint64"
	case Int64Scalar:
		return "int64"
	}
	return "none"
}
