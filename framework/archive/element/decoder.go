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
	"errors"
	"io"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/binary"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/endian"
)

// DefaultMaxPayload is the default limit on a single parameter payload.
const DefaultMaxPayload = 1 << 30

// payloadChunk is the most Payload reads ahead of the data it has received.
const payloadChunk = 64 << 10

// Decoder reads elements from a stream.
//
// Peek decodes the next element header without consuming it; the header is
// held back and handed out again by the following Peek or Next. This gives
// one element of lookahead on streams that cannot seek.
type Decoder struct {
	r          binary.Reader
	head       Header
	peeked     bool
	pending    uint64 // unread payload of the last Parameter returned by Next
	count      uint64
	maxPayload uint64
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:          endian.Reader(r, ByteOrder),
		maxPayload: DefaultMaxPayload,
	}
}

// SetMaxPayload limits the size of parameter payloads. Larger payloads are
// reported as ErrFormat when their header is read.
func (d *Decoder) SetMaxPayload(n uint64) { d.maxPayload = n }

// Peek returns the next element header without consuming it.
// It returns io.EOF, unwrapped, if the stream ends cleanly where an element
// was expected.
func (d *Decoder) Peek() (Header, error) {
	if d.peeked {
		return d.head, nil
	}
	if err := d.Discard(); err != nil {
		return Header{}, err
	}
	h, err := d.readHeader()
	if err != nil {
		return Header{}, err
	}
	d.head, d.peeked = h, true
	return h, nil
}

// Next consumes and returns the next element header.
// After a Parameter the payload must be read with Payload or skipped with
// Discard; a following Peek or Next skips it implicitly.
func (d *Decoder) Next() (Header, error) {
	h, err := d.Peek()
	if err != nil {
		return h, err
	}
	d.peeked = false
	if h.Kind == Parameter {
		d.pending = h.Size
	}
	if h.Kind != Trailer {
		d.count++
	}
	return h, nil
}

// Payload reads the payload of the Parameter last returned by Next.
// The result grows with the bytes received, so a size field larger than the
// stream costs at most one chunk before the short read is reported.
func (d *Decoder) Payload() ([]byte, error) {
	n := d.pending
	d.pending = 0
	chunk := make([]byte, min(n, payloadChunk))
	data := make([]byte, 0, len(chunk))
	for remain := n; remain > 0; {
		step := chunk[:min(remain, payloadChunk)]
		d.r.Data(step)
		if err := d.r.Error(); err != nil {
			return nil, d.ioError(err, "reading payload")
		}
		data = append(data, step...)
		remain -= uint64(len(step))
	}
	return data, nil
}

// Discard skips the unread payload of the Parameter last returned by Next.
func (d *Decoder) Discard() error {
	if d.pending == 0 {
		return nil
	}
	n := d.pending
	d.pending = 0
	d.r.Skip(n)
	if err := d.r.Error(); err != nil {
		return d.ioError(err, "skipping payload")
	}
	return nil
}

// Count returns the number of elements consumed, not counting trailers.
func (d *Decoder) Count() uint64 { return d.count }

func (d *Decoder) ioError(err error, what string) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if errors.Is(err, endian.ErrStringTooLong) {
		return Errorf(ErrFormat, err, "%s of element %d, %d bytes past the header", what, d.count, d.r.Consumed())
	}
	return Errorf(ErrIO, err, "%s of element %d, %d bytes past the header", what, d.count, d.r.Consumed())
}

func (d *Decoder) readHeader() (Header, error) {
	h := Header{Kind: Kind(d.r.Uint32())}
	if err := d.r.Error(); err != nil {
		if err == io.EOF {
			return h, io.EOF
		}
		return h, d.ioError(err, "reading kind")
	}
	if !h.Kind.Valid() {
		return h, Errorf(ErrFormat, nil, "unknown element kind %d at element %d", uint32(h.Kind), d.count)
	}
	h.Name = d.r.String()
	switch h.Kind {
	case Begin, Reference:
		h.Type = d.r.String()
		h.ID = d.r.Int32()
	case Parameter:
		h.Param = ParamType(d.r.Uint32())
		h.Size = d.r.Uint64()
	case Trailer:
		d.r.Data(h.Magic[:])
		h.Count = d.r.Uint64()
	}
	if err := d.r.Error(); err != nil {
		return h, d.ioError(err, "reading header")
	}
	if h.Kind == Parameter {
		if size, fixed := h.Param.Size(); fixed && size != h.Size {
			return h, Errorf(ErrFormat, nil, "parameter %q of type %v has %d bytes, expected %d",
				h.Name, h.Param, h.Size, size)
		}
		if h.Size > d.maxPayload {
			return h, Errorf(ErrFormat, nil, "parameter %q payload of %d bytes exceeds limit %d",
				h.Name, h.Size, d.maxPayload)
		}
	}
	return h, nil
}
