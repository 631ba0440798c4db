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

package scene_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/assert"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/arena"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/dump"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/test"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/scene"
)

// contents is the comparable state of a scene.
type contents struct {
	Name      string
	Cameras   []scene.Camera
	Materials []scene.Material
	Meshes    []scene.Mesh
	Instances []scene.Instance
	Lights    []scene.Light
	Camera    arena.Handle
	HasCamera bool
}

func contentsOf(s *scene.Scene) contents {
	return contents{
		Name:      s.Name,
		Cameras:   s.Cameras.Values(),
		Materials: s.Materials.Values(),
		Meshes:    s.Meshes.Values(),
		Instances: s.Instances.Values(),
		Lights:    s.Lights.Values(),
		Camera:    s.Camera,
		HasCamera: s.HasCamera,
	}
}

func store(ctx context.Context, out io.Writer, s *scene.Scene) {
	assert.For(ctx, "store").Critical().ThatError(scene.Store(ctx, out, s)).Succeeded()
}

// handWritten returns a finished archive holding one scene whose contents
// are written by body.
func handWritten(ctx context.Context, body func(e *element.Encoder)) []byte {
	buf := &bytes.Buffer{}
	buf.Write(archive.Magic[:])
	buf.Write([]byte{1, 0, 0, 0})
	e := element.NewEncoder(buf)
	e.Begin("s", scene.SceneType, 1000)
	body(e)
	e.End()
	assert.For(ctx, "encode").Critical().ThatError(e.Error()).Succeeded()
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	for _, tc := range []struct {
		name  string
		out   func() (io.Writer, func() []byte)
		magic [4]byte
	}{
		{"seekable", func() (io.Writer, func() []byte) {
			b := &test.Buffer{}
			return b, b.Bytes
		}, archive.Magic},
		{"stream", func() (io.Writer, func() []byte) {
			b := &bytes.Buffer{}
			return b, b.Bytes
		}, archive.StreamMagic},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := log.SubTest(ctx, t)
			want := scene.Demo()
			out, data := tc.out()
			store(ctx, out, want)
			assert.For(ctx, "magic").ThatSlice(data()[:4]).Equals(tc.magic[:])

			got, err := scene.Load(ctx, bytes.NewReader(data()))
			assert.For(ctx, "load").Critical().ThatError(err).Succeeded()
			assert.For(ctx, "scene").That(contentsOf(got)).DeepEquals(contentsOf(want))
		})
	}
}

func TestSharedObjectsWrittenOnce(t *testing.T) {
	ctx := log.Testing(t)
	buf := &test.Buffer{}
	store(ctx, buf, scene.Demo())
	objects, err := dump.Objects(ctx, bytes.NewReader(buf.Bytes()))
	assert.For(ctx, "objects").Critical().ThatError(err).Succeeded()

	begins, refs := map[string]int{}, map[string]int{}
	for _, o := range objects {
		if o.Kind == "Begin" {
			begins[o.Type]++
		} else {
			assert.For(ctx, "%s %q resolved", o.Type, o.Name).ThatBoolean(o.Resolved).IsTrue()
			refs[o.Type]++
		}
	}
	assert.For(ctx, "begins").ThatMap(begins).DeepEquals(map[string]int{
		scene.SceneType: 1, scene.MaterialType: 2, scene.MeshType: 1,
		scene.InstanceType: 2, scene.LightType: 2, scene.CameraType: 2,
	})
	// Mesh: two instance bases and the area light shape.
	// Material: the gloss layer, the mesh material and the instance override.
	// Camera: the active camera.
	assert.For(ctx, "references").ThatMap(refs).DeepEquals(map[string]int{scene.MeshType: 3, scene.MaterialType: 3, scene.CameraType: 1})
}

func TestWritingOrder(t *testing.T) {
	ctx := log.Testing(t)
	s := scene.New("order")
	// The layered material is created first but must be written last.
	layered := s.Materials.Add(scene.Material{Name: "top", HasLayer: true, Layer: 1})
	s.Materials.Add(scene.Material{Name: "bottom"})
	s.Lights.Add(scene.Light{Kind: scene.Area, Shape: 0, HasShape: true})
	s.Lights.Add(scene.Light{Kind: scene.Point})
	s.Meshes.Add(scene.Mesh{Name: "m"})

	buf := &test.Buffer{}
	store(ctx, buf, s)
	objects, err := dump.Objects(ctx, bytes.NewReader(buf.Bytes()))
	assert.For(ctx, "objects").Critical().ThatError(err).Succeeded()
	names := []string{}
	for _, o := range objects {
		if o.Depth == 1 && o.Kind == "Begin" {
			names = append(names, o.Type+":"+o.Name)
		}
	}
	assert.For(ctx, "order").ThatSlice(names).Equals([]string{
		"Material:material", "Material:material", "Mesh:mesh", "Light:light", "Light:light",
	})

	got, err := scene.Load(ctx, bytes.NewReader(buf.Bytes()))
	assert.For(ctx, "load").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "materials").Critical().ThatInteger(got.Materials.Len()).Equals(2)
	assert.For(ctx, "first").ThatString(got.Materials.Get(0).Name).Equals("bottom")
	top := got.Materials.Get(1)
	assert.For(ctx, "second").ThatString(top.Name).Equals(s.Materials.Get(layered).Name)
	assert.For(ctx, "layer").That(top.Layer).Equals(arena.Handle(0))
	assert.For(ctx, "light").That(got.Lights.Get(0).Kind).Equals(scene.Point)
}

func TestLibrary(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	assert.For(ctx, "store").Critical().ThatError(scene.StoreLibrary(ctx, buf, scene.Demo())).Succeeded()

	got, c, err := scene.LoadLibrary(ctx, bytes.NewReader(buf.Bytes()))
	assert.For(ctx, "load").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "materials").ThatSlice(c[scene.MaterialType]).IsLength(2)
	assert.For(ctx, "meshes").Critical().ThatSlice(c[scene.MeshType]).IsLength(1)
	assert.For(ctx, "instances").ThatSlice(c[scene.InstanceType]).IsLength(2)
	assert.For(ctx, "lights").ThatSlice(c[scene.LightType]).IsLength(2)
	assert.For(ctx, "cameras").ThatSlice(c[scene.CameraType]).IsLength(2)
	assert.For(ctx, "scenes").ThatSlice(c[scene.SceneType]).IsEmpty()
	assert.For(ctx, "active camera").ThatBoolean(got.HasCamera).IsFalse()
	assert.For(ctx, "mesh").ThatString(got.Meshes.Get(c[scene.MeshType][0]).Name).Equals("quad")

	// A full scene archive collects the same objects plus the scene.
	full := &test.Buffer{}
	store(ctx, full, scene.Demo())
	got, c, err = scene.LoadLibrary(ctx, bytes.NewReader(full.Bytes()))
	assert.For(ctx, "load full").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "full scenes").ThatSlice(c[scene.SceneType]).IsLength(1)
	assert.For(ctx, "full instances").ThatSlice(c[scene.InstanceType]).IsLength(2)
	assert.For(ctx, "full active camera").ThatBoolean(got.HasCamera).IsTrue()
}

func TestInvalidMesh(t *testing.T) {
	ctx := log.Testing(t)
	for _, tc := range []struct {
		name string
		mesh scene.Mesh
	}{
		{"index out of range", scene.Mesh{Positions: make([]float32, 9), Indices: []uint32{0, 1, 3}}},
		{"partial triangle", scene.Mesh{Positions: make([]float32, 9), Indices: []uint32{0, 1}}},
		{"partial vertex", scene.Mesh{Positions: make([]float32, 8)}},
		{"normals", scene.Mesh{Positions: make([]float32, 9), Normals: make([]float32, 6)}},
		{"uvs", scene.Mesh{Positions: make([]float32, 9), UVs: make([]float32, 3)}},
	} {
		s := scene.New("bad")
		s.Meshes.Add(tc.mesh)
		buf := &test.Buffer{}
		store(ctx, buf, s)
		_, err := scene.Load(ctx, bytes.NewReader(buf.Bytes()))
		assert.For(ctx, "%s", tc.name).ThatError(err).Is(archive.ErrFormat)
	}
}

func TestInstanceWithoutBase(t *testing.T) {
	ctx := log.Testing(t)
	data := handWritten(ctx, func(e *element.Encoder) {
		e.Begin("instance", scene.InstanceType, 1001)
		e.End()
	})
	_, err := scene.Load(ctx, bytes.NewReader(data))
	assert.For(ctx, "err").ThatError(err).Is(archive.ErrFormat)
}

func TestParameterWithOtherType(t *testing.T) {
	ctx := log.Testing(t)
	data := handWritten(ctx, func(e *element.Encoder) {
		e.Begin("light", scene.LightType, 1001)
		_, kind, _ := element.Int64s(int64(scene.Spot))
		e.Parameter("kind", element.Int64x1, kind)
		_, position, _ := element.Float32s(1, 2, 3, 4)
		e.Parameter("position", element.Float4, position)
		_, radiance, _ := element.Float32s(5, 6, 7)
		e.Parameter("radiance", element.Float3, radiance)
		e.End()
	})
	got, err := scene.Load(ctx, bytes.NewReader(data))
	assert.For(ctx, "load").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "lights").Critical().ThatInteger(got.Lights.Len()).Equals(1)
	l := got.Lights.Get(0)
	assert.For(ctx, "kind").That(l.Kind).Equals(scene.LightKind(0))
	assert.For(ctx, "position").That(l.Position).Equals([3]float32{})
	assert.For(ctx, "radiance").That(l.Radiance).Equals([3]float32{5, 6, 7})
}

func TestStoreInvalidHandle(t *testing.T) {
	ctx := log.Testing(t)
	s := scene.New("broken")
	s.Instances.Add(scene.Instance{Name: "orphan", Base: 5})
	err := scene.Store(ctx, &test.Buffer{}, s)
	assert.For(ctx, "err").ThatError(err).Is(arena.ErrInvalidHandle)
	assert.For(ctx, "message").ThatString(err.Error()).Contains("[scene: broken]")
}

func TestNames(t *testing.T) {
	ctx := log.Testing(t)
	names := scene.Names()
	for _, tc := range []struct {
		context, field string
		value          int64
		want           string
	}{
		{scene.LightType, "kind", int64(scene.Spot), "Spot"},
		{scene.MaterialType, "kind", int64(scene.Refraction), "Refraction"},
		{scene.CameraType, "mode", int64(scene.Perspective), "Perspective"},
	} {
		got, ok := names.Lookup(tc.context, tc.field, tc.value)
		assert.For(ctx, "%s %s found", tc.context, tc.field).ThatBoolean(ok).IsTrue()
		assert.For(ctx, "%s %s", tc.context, tc.field).ThatString(got).Equals(tc.want)
	}
	_, ok := names.Lookup(scene.LightType, "mode", int64(scene.Spot))
	assert.For(ctx, "wrong field").ThatBoolean(ok).IsFalse()
}
