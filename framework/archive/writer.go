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

package archive

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/registry"
)

// writeState tracks the progress of the header guard.
type writeState int

const (
	unwritten writeState = iota
	sentinelWritten
	versionWritten
	bodyWritten
	finalized
	failed
)

// Writer writes objects to an archive.
// A Writer is not safe for concurrent use.
type Writer struct {
	enc     *element.Encoder
	seeker  io.WriteSeeker // nil when streaming
	start   int64
	classes *Namespace
	objects *registry.Writes
	level   int
	state   writeState
}

// Root names a top level object to write.
type Root struct {
	Name   string
	Type   string
	Handle Handle
}

// NewWriter writes the provisional header to out and returns a Writer for the
// archive body.
//
// If out can seek, the header is written as Sentinel and patched to Magic by
// Finish. Otherwise the header is StreamMagic and Finish appends a Trailer.
func NewWriter(ctx context.Context, out io.Writer, classes *Namespace) (*Writer, error) {
	w := &Writer{
		classes: classes,
		objects: registry.NewWrites(),
	}
	magic := StreamMagic
	if s, ok := out.(io.WriteSeeker); ok {
		if pos, err := s.Seek(0, io.SeekCurrent); err == nil {
			w.seeker, w.start, magic = s, pos, Sentinel
		}
	}
	if err := writeHeader(out, magic); err != nil {
		return nil, err
	}
	w.state = versionWritten
	w.enc = element.NewEncoder(out)
	if w.seeker == nil {
		log.D(ctx, "Archive sink cannot seek, writing a trailer")
	}
	return w, nil
}

// Object writes the object h of type typ under name.
//
// The first time an object is written its id is registered and its contents
// are encoded by its Class between a Begin and an End element. Every later
// call for the same object writes only a Reference. Referring to an object
// from inside its own contents is an ErrFormat error, as the reference could
// never be resolved.
func (w *Writer) Object(ctx context.Context, name, typ string, h Handle) error {
	if err := w.writable(); err != nil {
		return err
	}
	if id, ok := w.objects.Find(typ, h); ok {
		if w.objects.Open(id) {
			return w.fail(element.Errorf(ErrFormat, nil, "%s %q refers to the open object #%d", typ, name, id))
		}
		return w.fail(w.enc.Reference(name, typ, id))
	}
	class := w.classes.Lookup(typ)
	if class == nil {
		return w.fail(element.Errorf(ErrFormat, nil, "no class registered for type %s", typ))
	}
	id := w.objects.Register(name, typ, h)
	if err := w.enc.Begin(name, typ, id); err != nil {
		return w.fail(err)
	}
	w.level++
	if err := class.Encode(ctx, w, h); err != nil {
		return w.fail(errors.Wrapf(err, "writing %s %q", typ, name))
	}
	if err := w.enc.End(); err != nil {
		return w.fail(err)
	}
	w.objects.Close(id)
	w.level--
	return nil
}

// Parameter writes a raw parameter of the object being encoded.
func (w *Writer) Parameter(name string, t element.ParamType, data []byte) error {
	if err := w.writable(); err != nil {
		return err
	}
	if w.level == 0 {
		return w.fail(element.Errorf(ErrFormat, nil, "parameter %q written outside of an object", name))
	}
	return w.fail(w.enc.Parameter(name, t, data))
}

func (w *Writer) typed(name string, t element.ParamType, data []byte, err error) error {
	if err != nil {
		return w.fail(errors.Wrapf(err, "parameter %q", name))
	}
	return w.Parameter(name, t, data)
}

// Float32 writes a Float1, Float2, Float3, Float4 or Float16 parameter.
func (w *Writer) Float32(name string, v ...float32) error {
	t, data, err := element.Float32s(v...)
	return w.typed(name, t, data, err)
}

// Uint32 writes a UInt32 parameter of one to four values.
func (w *Writer) Uint32(name string, v ...uint32) error {
	t, data, err := element.Uint32s(v...)
	return w.typed(name, t, data, err)
}

// Int32 writes an Int32 parameter of one to four values.
func (w *Writer) Int32(name string, v ...int32) error {
	t, data, err := element.Int32s(v...)
	return w.typed(name, t, data, err)
}

// Uint64 writes a UInt64 parameter of one to four values.
func (w *Writer) Uint64(name string, v ...uint64) error {
	t, data, err := element.Uint64s(v...)
	return w.typed(name, t, data, err)
}

// Int64 writes an Int64 parameter of one to four values.
func (w *Writer) Int64(name string, v ...int64) error {
	t, data, err := element.Int64s(v...)
	return w.typed(name, t, data, err)
}

// String writes a String parameter.
func (w *Writer) String(name, v string) error {
	return w.Parameter(name, element.String, []byte(v))
}

// Bytes writes an opaque Undefined parameter.
func (w *Writer) Bytes(name string, v []byte) error {
	return w.Parameter(name, element.Undefined, v)
}

// Level returns the number of objects currently open.
func (w *Writer) Level() int { return w.level }

// Finish completes the archive. It fails with ErrUnterminatedObject if an
// object is still open. On success the header of a seekable archive is
// rewritten to Magic, and a streamed archive gets its Trailer.
func (w *Writer) Finish(ctx context.Context) error {
	if err := w.writable(); err != nil {
		return err
	}
	if w.level != 0 {
		return w.fail(element.Errorf(ErrUnterminatedObject, nil, "%d objects still open", w.level))
	}
	w.state = bodyWritten
	if w.seeker == nil {
		if err := w.enc.Trailer(Magic); err != nil {
			return w.fail(err)
		}
	} else if err := w.patch(); err != nil {
		return w.fail(err)
	}
	w.state = finalized
	log.D(ctx, "Archive finished: %d elements, %d objects", w.enc.Count(), len(w.objects.Records()))
	return nil
}

func (w *Writer) patch() error {
	if _, err := w.seeker.Seek(w.start, io.SeekStart); err != nil {
		return element.Errorf(ErrIO, err, "seeking to header")
	}
	if _, err := w.seeker.Write(Magic[:]); err != nil {
		return element.Errorf(ErrIO, err, "patching header")
	}
	if _, err := w.seeker.Seek(0, io.SeekEnd); err != nil {
		return element.Errorf(ErrIO, err, "seeking to end")
	}
	return nil
}

// Records returns every object written so far, in id order.
func (w *Writer) Records() []registry.Record { return w.objects.Records() }

func (w *Writer) writable() error {
	switch w.state {
	case finalized:
		return element.Errorf(ErrFormat, nil, "archive already finished")
	case failed:
		return element.Errorf(ErrFormat, nil, "archive writer failed earlier")
	}
	return nil
}

// fail marks the writer as failed if err is not nil. The header is left as
// written, so the archive reads as corrupt.
func (w *Writer) fail(err error) error {
	if err != nil {
		w.state = failed
	}
	return err
}

// Store writes a complete archive holding roots, in order.
func Store(ctx context.Context, out io.Writer, classes *Namespace, roots ...Root) error {
	w, err := NewWriter(ctx, out, classes)
	if err != nil {
		return err
	}
	for _, r := range roots {
		if err := w.Object(ctx, r.Name, r.Type, r.Handle); err != nil {
			return err
		}
	}
	return w.Finish(ctx)
}
