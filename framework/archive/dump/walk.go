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

package dump

import (
	"bytes"
	"context"
	"io"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// visitor receives the elements of an archive in stream order.
type visitor interface {
	header(mode archive.Mode)
	begin(h element.Header, depth int, parent string) error
	end(begin element.Header, depth int) error
	// parameter gets a nil payload for opaque or unknown parameter types, or
	// when payloads were not requested.
	parameter(h element.Header, depth int, owner string, data []byte) error
	reference(h element.Header, depth int, parent string, resolved bool) error
	trailer(h element.Header) error
}

// walk validates the archive in and reports its elements to v. It checks
// the same structure as archive.Reader without interpreting any object.
func walk(ctx context.Context, in io.Reader, maxPayload uint64, payloads bool, v visitor) error {
	mode, err := archive.ReadHeader(in)
	if err != nil {
		return err
	}
	v.header(mode)
	d := element.NewDecoder(in)
	if maxPayload != 0 {
		d.SetMaxPayload(maxPayload)
	}
	stack := []element.Header{}
	done := map[int32]bool{}
	parent := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1].Type
	}
	trailed := false
	for {
		count := d.Count()
		h, err := d.Next()
		switch {
		case err == io.EOF && len(stack) > 0:
			return element.Errorf(archive.ErrUnterminatedObject, nil, "archive ends with %d objects open", len(stack))
		case err == io.EOF && mode == archive.Streamed && !trailed:
			return element.Errorf(archive.ErrCorruptOrIncompatible, nil, "streamed archive has no trailer")
		case err == io.EOF:
			log.D(ctx, "Walked %d elements", d.Count())
			return nil
		case err != nil:
			return err
		}
		if trailed {
			return element.Errorf(archive.ErrFormat, nil, "data after trailer")
		}
		switch h.Kind {
		case element.Begin:
			err = v.begin(h, len(stack), parent())
			stack = append(stack, h)
		case element.End:
			if len(stack) == 0 {
				return element.Errorf(archive.ErrFormat, nil, "unbalanced %v at top level", h)
			}
			begin := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			done[begin.ID] = true
			err = v.end(begin, len(stack))
		case element.Parameter:
			var data []byte
			if payloads && h.Param.Known() && h.Param != element.Undefined {
				if data, err = d.Payload(); err != nil {
					return err
				}
			} else if err := d.Discard(); err != nil {
				return err
			}
			err = v.parameter(h, len(stack), parent(), data)
		case element.Reference:
			err = v.reference(h, len(stack), parent(), done[h.ID])
		case element.Trailer:
			switch {
			case mode != archive.Streamed:
				return element.Errorf(archive.ErrFormat, nil, "trailer in a %v archive", mode)
			case len(stack) > 0:
				return element.Errorf(archive.ErrFormat, nil, "trailer inside %s %q", parent(), stack[len(stack)-1].Name)
			case !bytes.Equal(h.Magic[:], archive.Magic[:]) || h.Count != count:
				return element.Errorf(archive.ErrCorruptOrIncompatible, nil, "trailer %v does not match %d elements read", h, count)
			}
			trailed = true
			err = v.trailer(h)
		}
		if err != nil {
			return err
		}
	}
}
