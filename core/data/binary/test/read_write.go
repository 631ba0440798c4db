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

// Package test holds table driven checks shared by binary.Reader and
// binary.Writer implementations.
package test

import (
	"bytes"
	"context"
	"io"
	"reflect"
	"testing"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/assert"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/binary"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
)

// ReadWriteTests is a single table entry: Values are written with the method
// called Name and must produce exactly Data, then read back with the reader
// method of the same name.
type ReadWriteTests struct {
	Name   string
	Values interface{}
	Data   []byte
}

// Factory builds a reader and writer pair over the given streams.
type Factory func(io.Reader, io.Writer) (binary.Reader, binary.Writer)

// ReadWrite runs every entry of tests against the pair built by factory.
func ReadWrite(ctx context.Context, t *testing.T, tests []ReadWriteTests, factory Factory) {
	for _, e := range tests {
		e := e
		t.Run(e.Name, func(t *testing.T) {
			ctx := log.SubTest(ctx, t)
			b := &bytes.Buffer{}
			reader, writer := factory(b, b)
			r := reflect.ValueOf(reader).MethodByName(e.Name)
			w := reflect.ValueOf(writer).MethodByName(e.Name)
			s := reflect.ValueOf(e.Values)
			for i := 0; i < s.Len(); i++ {
				w.Call([]reflect.Value{s.Index(i)})
			}
			assert.For(ctx, "write").Critical().ThatError(writer.Error()).Succeeded()
			assert.For(ctx, "written bytes").ThatSlice(b.Bytes()).Equals(e.Data)
			assert.For(ctx, "written count").That(writer.Written()).Equals(int64(len(e.Data)))
			for i := 0; i < s.Len(); i++ {
				got := r.Call(nil)[0]
				assert.For(ctx, "read %d", i).Critical().ThatError(reader.Error()).Succeeded()
				assert.For(ctx, "value %d", i).That(got.Interface()).Equals(s.Index(i).Interface())
			}
		})
	}
}

// ReadWriteData checks that raw data passes through the pair unchanged.
func ReadWriteData(ctx context.Context, data []byte, factory Factory) {
	b := &bytes.Buffer{}
	reader, writer := factory(b, b)
	writer.Data(data)
	assert.For(ctx, "written").ThatSlice(b.Bytes()).Equals(data)
	got := make([]byte, len(data))
	reader.Data(got)
	assert.For(ctx, "read").ThatError(reader.Error()).Succeeded()
	assert.For(ctx, "result").ThatSlice(got).Equals(data)
}
