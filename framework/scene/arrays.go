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

package scene

import (
	"bytes"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/endian"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// Vertex data is stored as opaque parameters holding packed 32 bit values.

func packFloats(v []float32) []byte {
	buf := &bytes.Buffer{}
	w := endian.Writer(buf, element.ByteOrder)
	for _, f := range v {
		w.Float32(f)
	}
	return buf.Bytes()
}

func packUints(v []uint32) []byte {
	buf := &bytes.Buffer{}
	w := endian.Writer(buf, element.ByteOrder)
	for _, u := range v {
		w.Uint32(u)
	}
	return buf.Bytes()
}

func unpackFloats(t element.ParamType, data []byte) ([]float32, error) {
	if err := checkPacked(t, data); err != nil {
		return nil, err
	}
	r := endian.Reader(bytes.NewReader(data), element.ByteOrder)
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = r.Float32()
	}
	return out, r.Error()
}

func unpackUints(t element.ParamType, data []byte) ([]uint32, error) {
	if err := checkPacked(t, data); err != nil {
		return nil, err
	}
	r := endian.Reader(bytes.NewReader(data), element.ByteOrder)
	out := make([]uint32, len(data)/4)
	for i := range out {
		out[i] = r.Uint32()
	}
	return out, r.Error()
}

func checkPacked(t element.ParamType, data []byte) error {
	if t != element.Undefined {
		return element.Errorf(archive.ErrFormat, nil, "packed array stored as %v", t)
	}
	if len(data)%4 != 0 {
		return element.Errorf(archive.ErrFormat, nil, "packed array of %d bytes", len(data))
	}
	return nil
}
