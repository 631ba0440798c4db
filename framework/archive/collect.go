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

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// Collection holds the handles of every object read from an archive, grouped
// by type tag, in the order the objects were completed.
type Collection map[string][]Handle

// Collect reads every top level object of an archive whose type has a class
// in classes, without expecting any particular root shape. Objects of unknown
// types are skipped. Nested objects that were reconstructed are collected
// along with the top level ones.
func Collect(ctx context.Context, in io.Reader, classes *Namespace, opts ...Option) (Collection, error) {
	r, err := NewReader(ctx, in, classes, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.collect(ctx); err != nil {
		return nil, err
	}
	out := Collection{}
	for _, rec := range r.Records() {
		out[rec.Type] = append(out[rec.Type], rec.Handle)
	}
	return out, nil
}

func (r *Reader) collect(ctx context.Context) error {
	for {
		h, err := r.dec.Peek()
		switch {
		case err == io.EOF:
			return r.Finish(ctx)
		case err != nil:
			return err
		}
		switch {
		case h.Kind == element.Trailer:
			return r.Finish(ctx)
		case h.Kind == element.Begin && r.classes.Lookup(h.Type) != nil:
			if _, err := r.Object(ctx, h.Type); err != nil {
				return err
			}
		case h.Kind == element.Reference && r.classes.Lookup(h.Type) != nil:
			// Already collected when its definition was read.
			if _, err := r.Object(ctx, h.Type); err != nil {
				return err
			}
		case h.Kind == element.End:
			return element.Errorf(ErrFormat, nil, "unbalanced %v at top level", h)
		default:
			log.D(ctx, "Collect skipping %v", h)
			if h.Kind == element.Parameter {
				if _, err := r.dec.Next(); err != nil {
					return err
				}
				r.skipped++
				continue
			}
			if err := r.skip(ctx); err != nil {
				return err
			}
		}
	}
}
