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
	eb "encoding/binary"
	"io"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/binary"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/endian"
)

// ByteOrder is the byte order of every integer in an archive.
var ByteOrder = eb.LittleEndian

// Encoder writes elements to a stream.
type Encoder struct {
	w     binary.Writer
	count uint64
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: endian.Writer(w, ByteOrder)}
}

// Begin writes the element opening object id of type typ.
func (e *Encoder) Begin(name, typ string, id int32) error {
	e.w.Uint32(uint32(Begin))
	e.w.String(name)
	e.w.String(typ)
	e.w.Int32(id)
	return e.done()
}

// End writes the element closing the innermost open object.
func (e *Encoder) End() error {
	e.w.Uint32(uint32(End))
	e.w.String("")
	return e.done()
}

// Reference writes an element standing in for the already written object id.
func (e *Encoder) Reference(name, typ string, id int32) error {
	e.w.Uint32(uint32(Reference))
	e.w.String(name)
	e.w.String(typ)
	e.w.Int32(id)
	return e.done()
}

// Parameter writes a value of type t. If t has a fixed shape data must be
// exactly its size, otherwise nothing is written and an ErrFormat error is
// returned.
func (e *Encoder) Parameter(name string, t ParamType, data []byte) error {
	if err := e.w.Error(); err != nil {
		return Errorf(ErrIO, err, "writing parameter %q", name)
	}
	if size, fixed := t.Size(); fixed && size != uint64(len(data)) {
		return Errorf(ErrFormat, nil, "parameter %q of type %v has %d bytes, expected %d",
			name, t, len(data), size)
	}
	e.w.Uint32(uint32(Parameter))
	e.w.String(name)
	e.w.Uint32(uint32(t))
	e.w.Uint64(uint64(len(data)))
	e.w.Data(data)
	return e.done()
}

// Trailer writes the closing integrity record of an unseekable archive.
// It records the number of elements written before it.
func (e *Encoder) Trailer(magic [4]byte) error {
	e.w.Uint32(uint32(Trailer))
	e.w.String("")
	e.w.Data(magic[:])
	e.w.Uint64(e.count)
	if err := e.w.Error(); err != nil {
		return Errorf(ErrIO, err, "writing trailer")
	}
	return nil
}

// Count returns the number of elements written, not counting a trailer.
func (e *Encoder) Count() uint64 { return e.count }

// Written returns the number of bytes written.
func (e *Encoder) Written() int64 { return e.w.Written() }

// Error returns the first write failure, if any.
func (e *Encoder) Error() error { return e.w.Error() }

func (e *Encoder) done() error {
	if err := e.w.Error(); err != nil {
		return Errorf(ErrIO, err, "writing element %d", e.count)
	}
	e.count++
	return nil
}
