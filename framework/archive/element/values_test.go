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

package element_test

import (
	"testing"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/assert"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

func TestParamSizes(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		t     element.ParamType
		size  uint64
		fixed bool
	}{
		{element.Float1, 4, true},
		{element.Float3, 12, true},
		{element.Float16, 64, true},
		{element.Uint32x4, 16, true},
		{element.Int32x2, 8, true},
		{element.Uint64x3, 24, true},
		{element.Int64x4, 32, true},
		{element.String, 0, false},
		{element.Undefined, 0, false},
		{element.ParamType(99), 0, false},
	} {
		size, fixed := test.t.Size()
		assert.For(ctx, "%v size", test.t).That(size).Equals(test.size)
		assert.For(ctx, "%v fixed", test.t).ThatBoolean(fixed).Equals(test.fixed)
	}
	assert.For(ctx, "known").ThatBoolean(element.ParamType(99).Known()).IsFalse()
	assert.For(ctx, "unknown name").ThatString(element.ParamType(99).String()).Equals("ParamType(99)")
	assert.For(ctx, "name").ThatString(element.Uint32x4.String()).Equals("UInt32_4")
}

func TestParamFor(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		scalar element.Scalar
		count  int
		expect element.ParamType
		ok     bool
	}{
		{element.Float32Scalar, 1, element.Float1, true},
		{element.Float32Scalar, 16, element.Float16, true},
		{element.Int64Scalar, 1, element.Int64x1, true},
		{element.Uint32Scalar, 3, element.Uint32x3, true},
		{element.Float32Scalar, 5, element.Undefined, false},
		{element.NoScalar, 1, element.Undefined, false},
	} {
		got, ok := element.ParamFor(test.scalar, test.count)
		assert.For(ctx, "%v x %d", test.scalar, test.count).That(got).Equals(test.expect)
		assert.For(ctx, "%v x %d found", test.scalar, test.count).ThatBoolean(ok).Equals(test.ok)
	}
}

func TestTypedValues(t *testing.T) {
	ctx := log.Testing(t)
	typ, data, err := element.Float32s(1, 2, 3)
	assert.For(ctx, "pack floats").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "float type").That(typ).Equals(element.Float3)
	f, err := element.DecodeFloat32s(typ, data)
	assert.For(ctx, "unpack floats").ThatError(err).Succeeded()
	assert.For(ctx, "floats").ThatSlice(f).Equals([]float32{1, 2, 3})

	m := make([]float32, 16)
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	typ, data, err = element.Float32s(m...)
	assert.For(ctx, "pack matrix").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "matrix type").That(typ).Equals(element.Float16)
	f, err = element.DecodeFloat32s(typ, data)
	assert.For(ctx, "unpack matrix").ThatError(err).Succeeded()
	assert.For(ctx, "matrix").ThatSlice(f).Equals(m)

	typ, data, err = element.Int32s(-1, 2)
	assert.For(ctx, "pack int32").Critical().ThatError(err).Succeeded()
	i, err := element.DecodeInt32s(typ, data)
	assert.For(ctx, "unpack int32").ThatError(err).Succeeded()
	assert.For(ctx, "int32").ThatSlice(i).Equals([]int32{-1, 2})

	typ, data, err = element.Uint64s(1 << 40)
	assert.For(ctx, "pack uint64").Critical().ThatError(err).Succeeded()
	u, err := element.DecodeUint64s(typ, data)
	assert.For(ctx, "unpack uint64").ThatError(err).Succeeded()
	assert.For(ctx, "uint64").ThatSlice(u).Equals([]uint64{1 << 40})
	assert.For(ctx, "describe uint64").ThatString(element.Describe(typ, data)).Equals("1099511627776")

	typ, data, err = element.Int64s(-5, 6, 7, 8)
	assert.For(ctx, "pack int64").Critical().ThatError(err).Succeeded()
	l, err := element.DecodeInt64s(typ, data)
	assert.For(ctx, "unpack int64").ThatError(err).Succeeded()
	assert.For(ctx, "int64").ThatSlice(l).Equals([]int64{-5, 6, 7, 8})

	typ, data, err = element.Uint32s(7)
	assert.For(ctx, "pack uint32").Critical().ThatError(err).Succeeded()
	n, ok := element.Integers(typ, data)
	assert.For(ctx, "integers").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "widened").ThatSlice(n).Equals([]int64{7})
}

func TestTypedValueErrors(t *testing.T) {
	ctx := log.Testing(t)
	_, _, err := element.Float32s(1, 2, 3, 4, 5)
	assert.For(ctx, "five floats").ThatError(err).Is(element.ErrFormat)
	_, _, err = element.Uint32s()
	assert.For(ctx, "no values").ThatError(err).Is(element.ErrFormat)

	_, err = element.DecodeFloat32s(element.Uint32x1, make([]byte, 4))
	assert.For(ctx, "wrong scalar").ThatError(err).Is(element.ErrFormat)
	_, err = element.DecodeUint32s(element.Uint32x2, make([]byte, 4))
	assert.For(ctx, "wrong size").ThatError(err).Is(element.ErrFormat)
	_, err = element.DecodeString(element.Undefined, nil)
	assert.For(ctx, "not a string").ThatError(err).Is(element.ErrFormat)
}

func TestDescribe(t *testing.T) {
	ctx := log.Testing(t)
	typ, data, _ := element.Float32s(0.5, 2)
	assert.For(ctx, "floats").ThatString(element.Describe(typ, data)).Equals("0.5 2")
	typ, data, _ = element.Int32s(-3)
	assert.For(ctx, "int").ThatString(element.Describe(typ, data)).Equals("-3")
	assert.For(ctx, "string").ThatString(element.Describe(element.String, []byte("hi"))).Equals("\"hi\"")
	assert.For(ctx, "blob").ThatString(element.Describe(element.Undefined, []byte{1, 2, 3})).Equals("<3 bytes>")
}
