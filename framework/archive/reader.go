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
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/registry"
)

// Reader reconstructs objects from an archive.
// A Reader is not safe for concurrent use.
type Reader struct {
	dec     *element.Decoder
	mode    Mode
	classes *Namespace
	objects *registry.Reads
	level   int
	skipped int
}

// Option configures a Reader.
type Option func(*Reader)

// WithMaxPayload limits the size of any single parameter payload.
func WithMaxPayload(n uint64) Option {
	return func(r *Reader) { r.dec.SetMaxPayload(n) }
}

// NewReader validates the archive header of in and returns a Reader for its
// body. Nothing past the header is read if it is invalid.
func NewReader(ctx context.Context, in io.Reader, classes *Namespace, opts ...Option) (*Reader, error) {
	mode, err := ReadHeader(in)
	if err != nil {
		return nil, err
	}
	r := &Reader{
		dec:     element.NewDecoder(in),
		mode:    mode,
		classes: classes,
		objects: registry.NewReads(),
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// Mode returns how the archive was finished.
func (r *Reader) Mode() Mode { return r.mode }

// Level returns the number of objects currently open.
func (r *Reader) Level() int { return r.level }

// Skipped returns the number of parameters and objects skipped as
// unrecognised.
func (r *Reader) Skipped() int { return r.skipped }

// Records returns every object completely read so far, in the order their
// End elements were read.
func (r *Reader) Records() []registry.Record { return r.objects.Records() }

// Object reads the next object, which must be of type typ: either its full
// definition or a Reference to an object already read.
func (r *Reader) Object(ctx context.Context, typ string) (Handle, error) {
	h, err := r.peek()
	if err != nil {
		return 0, err
	}
	if h.Type != typ || (h.Kind != element.Begin && h.Kind != element.Reference) {
		return 0, element.Errorf(ErrFormat, nil, "expected %s object, found %v", typ, h)
	}
	if _, err := r.dec.Next(); err != nil {
		return 0, err
	}
	if h.Kind == element.Reference {
		return r.objects.Resolve(typ, h.ID)
	}
	return r.body(ctx, h)
}

// body reads the contents of the object opened by begin up to and including
// its End, and registers it.
func (r *Reader) body(ctx context.Context, begin element.Header) (Handle, error) {
	class := r.classes.Lookup(begin.Type)
	if class == nil {
		return 0, element.Errorf(ErrFormat, nil, "no class registered for type %s", begin.Type)
	}
	b, err := class.Decode(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "creating %s %q", begin.Type, begin.Name)
	}
	r.level++
	for {
		h, err := r.peek()
		if err != nil {
			return 0, errors.Wrapf(err, "reading %s %q", begin.Type, begin.Name)
		}
		switch h.Kind {
		case element.Parameter:
			if err := r.parameter(ctx, begin, b); err != nil {
				return 0, errors.Wrapf(err, "reading %s %q", begin.Type, begin.Name)
			}
		case element.Begin, element.Reference:
			set := b.Child(h.Name, h.Type)
			if set == nil || r.classes.Lookup(h.Type) == nil {
				log.D(ctx, "Skipping unknown child %v of %s %q", h, begin.Type, begin.Name)
				if err := r.skip(ctx); err != nil {
					return 0, errors.Wrapf(err, "reading %s %q", begin.Type, begin.Name)
				}
				continue
			}
			child, err := r.Object(ctx, h.Type)
			if err != nil {
				return 0, errors.Wrapf(err, "reading %s %q", begin.Type, begin.Name)
			}
			if err := set(child); err != nil {
				return 0, errors.Wrapf(err, "attaching %s %q to %s %q", h.Type, h.Name, begin.Type, begin.Name)
			}
		case element.End:
			if _, err := r.dec.Next(); err != nil {
				return 0, err
			}
			r.level--
			out, err := b.Build(ctx)
			if err != nil {
				return 0, errors.Wrapf(err, "building %s %q", begin.Type, begin.Name)
			}
			if err := r.objects.Register(begin.ID, begin.Name, begin.Type, out); err != nil {
				return 0, err
			}
			return out, nil
		default:
			return 0, element.Errorf(ErrFormat, nil, "unexpected %v inside %s %q", h, begin.Type, begin.Name)
		}
	}
}

func (r *Reader) parameter(ctx context.Context, owner element.Header, b Builder) error {
	h, err := r.dec.Next()
	if err != nil {
		return err
	}
	f := b.Parameter(h.Name, h.Param)
	if f == nil {
		log.D(ctx, "Skipping unknown parameter %v of %s %q", h, owner.Type, owner.Name)
		r.skipped++
		return r.dec.Discard()
	}
	data, err := r.dec.Payload()
	if err != nil {
		return err
	}
	return errors.Wrapf(f(h.Param, data), "parameter %q", h.Name)
}

// skip consumes the next Reference, or Begin and everything up to its
// matching End, without interpreting it.
func (r *Reader) skip(ctx context.Context) error {
	h, err := r.dec.Next()
	if err != nil {
		return err
	}
	r.skipped++
	if h.Kind != element.Begin {
		return nil
	}
	depth := r.level
	r.level++
	for r.level > depth {
		h, err := r.dec.Next()
		switch {
		case err == io.EOF:
			return element.Errorf(ErrUnterminatedObject, nil, "archive ends inside skipped object")
		case err != nil:
			return err
		}
		switch h.Kind {
		case element.Begin:
			r.level++
		case element.End:
			r.level--
		case element.Trailer:
			return element.Errorf(ErrFormat, nil, "trailer inside skipped object")
		}
	}
	return nil
}

// peek returns the next element header, reporting the end of the archive
// in the middle of an object as ErrUnterminatedObject.
func (r *Reader) peek() (element.Header, error) {
	h, err := r.dec.Peek()
	switch {
	case err == io.EOF && r.level > 0:
		return h, element.Errorf(ErrUnterminatedObject, nil, "archive ends with %d objects open", r.level)
	case err == io.EOF:
		return h, element.Errorf(ErrFormat, nil, "unexpected end of archive")
	}
	return h, err
}

// Finish reads the rest of the archive, skipping any further top level
// objects, and checks that it ends properly. A streamed archive must end with
// a Trailer matching the elements read.
func (r *Reader) Finish(ctx context.Context) error {
	if r.level != 0 {
		return element.Errorf(ErrUnterminatedObject, nil, "%d objects still open", r.level)
	}
	for {
		h, err := r.dec.Peek()
		switch {
		case err == io.EOF:
			if r.mode == Streamed {
				return element.Errorf(ErrCorruptOrIncompatible, nil, "streamed archive has no trailer")
			}
			return nil
		case err != nil:
			return err
		}
		switch h.Kind {
		case element.Trailer:
			return r.trailer(ctx)
		case element.Begin, element.Reference:
			log.D(ctx, "Skipping unread top level object %v", h)
			if err := r.skip(ctx); err != nil {
				return err
			}
		case element.Parameter:
			if _, err := r.dec.Next(); err != nil {
				return err
			}
			r.skipped++
		default:
			return element.Errorf(ErrFormat, nil, "unexpected %v at top level", h)
		}
	}
}

func (r *Reader) trailer(ctx context.Context) error {
	count := r.dec.Count()
	h, err := r.dec.Next()
	if err != nil {
		return err
	}
	if r.mode != Streamed {
		return element.Errorf(ErrFormat, nil, "trailer in a patched archive")
	}
	if !bytes.Equal(h.Magic[:], Magic[:]) || h.Count != count {
		return element.Errorf(ErrCorruptOrIncompatible, nil, "trailer %v does not match %d elements read", h, count)
	}
	if _, err := r.dec.Peek(); err != io.EOF {
		if err != nil {
			return err
		}
		return element.Errorf(ErrFormat, nil, "data after trailer")
	}
	return nil
}

// Load reads one root object of each of types, in order, and checks that the
// archive ends properly.
func Load(ctx context.Context, in io.Reader, classes *Namespace, types ...string) ([]Handle, error) {
	r, err := NewReader(ctx, in, classes)
	if err != nil {
		return nil, err
	}
	out := make([]Handle, len(types))
	for i, typ := range types {
		if out[i], err = r.Object(ctx, typ); err != nil {
			return nil, err
		}
	}
	if err := r.Finish(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
