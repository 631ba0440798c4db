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

// Package endian implements binary.Reader and binary.Writer over plain byte
// streams with a chosen byte order.
package endian

import (
	eb "encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/binary"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/fault"
)

// ErrStringTooLong is reported when a string length prefix exceeds MaxString.
const ErrStringTooLong = fault.Const("String length exceeds limit")

// MaxString is the longest string the reader will allocate for.
const MaxString = 1 << 24

// Reader creates a binary.Reader that reads from the provided io.Reader, with
// the specified byte order.
func Reader(r io.Reader, order eb.ByteOrder) binary.Reader {
	return &reader{reader: r, byteOrder: order}
}

// Writer creates a binary.Writer that writes to the supplied stream, with the
// specified byte order.
func Writer(w io.Writer, order eb.ByteOrder) binary.Writer {
	return &writer{writer: w, byteOrder: order}
}

type reader struct {
	reader    io.Reader
	tmp       [8]byte
	byteOrder eb.ByteOrder
	consumed  int64
	err       fault.One
}

type writer struct {
	writer    io.Writer
	tmp       [8]byte
	byteOrder eb.ByteOrder
	written   int64
	err       fault.One
}

// fill reads exactly len(p) bytes. A stream that ends before the first byte
// reports io.EOF, one that ends part way through reports io.ErrUnexpectedEOF.
func (r *reader) fill(p []byte) bool {
	if r.err.First() != nil {
		return false
	}
	n, err := io.ReadFull(r.reader, p)
	r.consumed += int64(n)
	r.err.Collect(err)
	return err == nil
}

func (r *reader) Data(p []byte) {
	r.fill(p)
}

func (w *writer) Data(data []byte) {
	if w.err.First() != nil {
		return
	}
	n, err := w.writer.Write(data)
	w.written += int64(n)
	switch {
	case err != nil:
		w.err.Collect(errors.Wrapf(err, "after writing %d bytes", w.written))
	case n != len(data):
		w.err.Collect(io.ErrShortWrite)
	}
}

func (r *reader) Int32() int32 {
	return int32(r.Uint32())
}

func (w *writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

func (r *reader) Uint32() uint32 {
	if !r.fill(r.tmp[:4]) {
		return 0
	}
	return r.byteOrder.Uint32(r.tmp[:4])
}

func (w *writer) Uint32(v uint32) {
	w.byteOrder.PutUint32(w.tmp[:4], v)
	w.Data(w.tmp[:4])
}

func (r *reader) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

func (w *writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

func (r *reader) Int64() int64 {
	return int64(r.Uint64())
}

func (w *writer) Int64(v int64) {
	w.Uint64(uint64(v))
}

func (r *reader) Uint64() uint64 {
	if !r.fill(r.tmp[:8]) {
		return 0
	}
	return r.byteOrder.Uint64(r.tmp[:8])
}

func (w *writer) Uint64(v uint64) {
	w.byteOrder.PutUint64(w.tmp[:8], v)
	w.Data(w.tmp[:8])
}

func (r *reader) String() string {
	n := r.Uint32()
	if n == 0 || r.err.First() != nil {
		return ""
	}
	if n > MaxString {
		r.err.Collect(errors.Wrapf(ErrStringTooLong, "length %d", n))
		return ""
	}
	s := make([]byte, n)
	if !r.fill(s) {
		if r.err.First() == io.EOF {
			r.err.Set(io.ErrUnexpectedEOF)
		}
		return ""
	}
	return string(s)
}

func (w *writer) String(v string) {
	w.Uint32(uint32(len(v)))
	if len(v) > 0 {
		w.Data([]byte(v))
	}
}

func (r *reader) Skip(n uint64) uint64 {
	if r.err.First() != nil {
		return 0
	}
	got, err := io.CopyN(io.Discard, r.reader, int64(n))
	r.consumed += got
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	r.err.Collect(err)
	return uint64(got)
}

func (r *reader) Consumed() int64 {
	return r.consumed
}

func (w *writer) Written() int64 {
	return w.written
}

func (w *writer) Error() error {
	return w.err.First()
}

func (r *reader) Error() error {
	return r.err.First()
}

func (r *reader) SetError(err error) {
	r.err.Collect(err)
}

func (w *writer) SetError(err error) {
	w.err.Collect(err)
}
