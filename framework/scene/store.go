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
	"context"
	"io"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
)

// Store writes s to out as a single Scene object holding everything else.
func Store(ctx context.Context, out io.Writer, s *Scene) error {
	ctx = log.V{"scene": s.Name}.Bind(ctx)
	if err := archive.Store(ctx, out, Classes(s), archive.Root{Name: s.Name, Type: SceneType}); err != nil {
		return log.Err(ctx, err, "Storing scene")
	}
	return nil
}

// Load reads a scene written by Store.
func Load(ctx context.Context, in io.Reader, opts ...archive.Option) (*Scene, error) {
	s := &Scene{}
	r, err := archive.NewReader(ctx, in, Classes(s), opts...)
	if err != nil {
		return nil, err
	}
	if _, err := r.Object(ctx, SceneType); err != nil {
		return nil, log.Err(ctx, err, "Loading scene")
	}
	if err := r.Finish(ctx); err != nil {
		return nil, err
	}
	if r.Skipped() > 0 {
		log.I(ctx, "Scene %q: skipped %d unknown parameters and objects", s.Name, r.Skipped())
	}
	return s, nil
}

// StoreLibrary writes the objects of s as top level objects, without a
// Scene container. The scene name and active camera are not stored.
func StoreLibrary(ctx context.Context, out io.Writer, s *Scene) error {
	return archive.Store(ctx, out, Classes(s), s.roots()...)
}

// LoadLibrary collects every catalogue object of an archive into a new
// scene, whatever the shape of the archive. Objects of other types are
// skipped.
func LoadLibrary(ctx context.Context, in io.Reader, opts ...archive.Option) (*Scene, archive.Collection, error) {
	s := &Scene{}
	c, err := archive.Collect(ctx, in, Classes(s), opts...)
	if err != nil {
		return nil, nil, err
	}
	return s, c, nil
}
