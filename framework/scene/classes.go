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
	"fmt"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/arena"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// Classes returns the archive classes of the catalogue. Objects are written
// from s and read into s.
func Classes(s *Scene) *archive.Namespace {
	ns := archive.NewNamespace()
	ns.Add(&archive.Funcs{Name: SceneType, Write: s.writeScene, Read: s.readScene})
	ns.Add(&archive.Funcs{Name: CameraType, Write: s.writeCamera, Read: s.readCamera})
	ns.Add(&archive.Funcs{Name: MaterialType, Write: s.writeMaterial, Read: s.readMaterial})
	ns.Add(&archive.Funcs{Name: MeshType, Write: s.writeMesh, Read: s.readMesh})
	ns.Add(&archive.Funcs{Name: InstanceType, Write: s.writeInstance, Read: s.readInstance})
	ns.Add(&archive.Funcs{Name: LightType, Write: s.writeLight, Read: s.readLight})
	return ns
}

// emit writes parameters until the first failure.
type emit struct {
	w   *archive.Writer
	err error
}

func (e *emit) float(name string, v ...float32) {
	if e.err == nil {
		e.err = e.w.Float32(name, v...)
	}
}

func (e *emit) uint32(name string, v uint32) {
	if e.err == nil {
		e.err = e.w.Uint32(name, v)
	}
}

func (e *emit) str(name, v string) {
	if e.err == nil {
		e.err = e.w.String(name, v)
	}
}

func (e *emit) packed(name string, data []byte) {
	if e.err == nil && len(data) > 0 {
		e.err = e.w.Bytes(name, data)
	}
}

func (e *emit) object(ctx context.Context, name, typ string, h arena.Handle) {
	if e.err == nil {
		e.err = e.w.Object(ctx, name, typ, h)
	}
}

// floatsParam fills dst from the Float parameter of matching length.
func floatsParam(dst []float32) archive.Param {
	t, ok := element.ParamFor(element.Float32Scalar, len(dst))
	if !ok {
		panic(fmt.Errorf("No float parameter holds %d values", len(dst)))
	}
	return archive.Param{Type: t, Set: func(t element.ParamType, data []byte) error {
		v, err := element.DecodeFloat32s(t, data)
		if err == nil {
			copy(dst, v)
		}
		return err
	}}
}

func floatParam(dst *float32) archive.Param {
	return archive.Param{Type: element.Float1, Set: func(t element.ParamType, data []byte) error {
		v, err := element.DecodeFloat32s(t, data)
		if err == nil {
			*dst = v[0]
		}
		return err
	}}
}

func uint32Param(dst *uint32) archive.Param {
	return archive.Param{Type: element.Uint32x1, Set: func(t element.ParamType, data []byte) error {
		v, err := element.DecodeUint32s(t, data)
		if err == nil {
			*dst = v[0]
		}
		return err
	}}
}

func stringParam(dst *string) archive.Param {
	return archive.Param{Type: element.String, Set: func(t element.ParamType, data []byte) (err error) {
		*dst, err = element.DecodeString(t, data)
		return err
	}}
}

func handle(dst *arena.Handle, set *bool) archive.ChildFunc {
	return func(h arena.Handle) error {
		*dst, *set = h, true
		return nil
	}
}

func ignore(arena.Handle) error { return nil }

// roots returns every object of s in writing order: unlayered materials
// before layered ones, meshes before the instances and lights using them,
// then cameras. Shared objects are thus always complete before the first
// reference to them.
func (s *Scene) roots() []archive.Root {
	out := []archive.Root{}
	add := func(name, typ string, h arena.Handle) {
		out = append(out, archive.Root{Name: name, Type: typ, Handle: h})
	}
	for _, layered := range []bool{false, true} {
		for _, h := range s.Materials.Handles() {
			if s.Materials.Get(h).HasLayer == layered {
				add("material", MaterialType, h)
			}
		}
	}
	for _, h := range s.Meshes.Handles() {
		add("mesh", MeshType, h)
	}
	for _, h := range s.Instances.Handles() {
		add("instance", InstanceType, h)
	}
	for _, shaped := range []bool{false, true} {
		for _, h := range s.Lights.Handles() {
			if s.Lights.Get(h).HasShape == shaped {
				add("light", LightType, h)
			}
		}
	}
	for _, h := range s.Cameras.Handles() {
		add("camera", CameraType, h)
	}
	return out
}

func (s *Scene) writeScene(ctx context.Context, w *archive.Writer, _ arena.Handle) error {
	e := &emit{w: w}
	e.str("name", s.Name)
	for _, r := range s.roots() {
		e.object(ctx, r.Name, r.Type, r.Handle)
	}
	if s.HasCamera {
		e.object(ctx, "active", CameraType, s.Camera)
	}
	return e.err
}

func (s *Scene) readScene(ctx context.Context) (archive.Builder, error) {
	return &archive.Fields{
		Params: map[string]archive.Param{"name": stringParam(&s.Name)},
		Children: map[string]archive.Child{
			"material": {Type: MaterialType, Set: ignore},
			"mesh":     {Type: MeshType, Set: ignore},
			"instance": {Type: InstanceType, Set: ignore},
			"light":    {Type: LightType, Set: ignore},
			"camera":   {Type: CameraType, Set: ignore},
			"active":   {Type: CameraType, Set: handle(&s.Camera, &s.HasCamera)},
		},
		Done: func(context.Context) (arena.Handle, error) { return 0, nil },
	}, nil
}

func (s *Scene) writeCamera(ctx context.Context, w *archive.Writer, h arena.Handle) error {
	c, err := s.Cameras.Lookup(h)
	if err != nil {
		return err
	}
	e := &emit{w: w}
	e.uint32("mode", uint32(c.Mode))
	e.float("position", c.Position[:]...)
	e.float("at", c.At[:]...)
	e.float("up", c.Up[:]...)
	e.float("fov", c.Fov)
	e.float("sensor", c.Sensor[:]...)
	e.float("aperture", c.Aperture)
	e.float("focus", c.Focus)
	return e.err
}

func (s *Scene) readCamera(ctx context.Context) (archive.Builder, error) {
	c := Camera{}
	return &archive.Fields{
		Params: map[string]archive.Param{
			"mode":     uint32Param((*uint32)(&c.Mode)),
			"position": floatsParam(c.Position[:]),
			"at":       floatsParam(c.At[:]),
			"up":       floatsParam(c.Up[:]),
			"fov":      floatParam(&c.Fov),
			"sensor":   floatsParam(c.Sensor[:]),
			"aperture": floatParam(&c.Aperture),
			"focus":    floatParam(&c.Focus),
		},
		Done: func(context.Context) (arena.Handle, error) { return s.Cameras.Add(c), nil },
	}, nil
}

func (s *Scene) writeMaterial(ctx context.Context, w *archive.Writer, h arena.Handle) error {
	m, err := s.Materials.Lookup(h)
	if err != nil {
		return err
	}
	e := &emit{w: w}
	e.str("name", m.Name)
	e.uint32("kind", uint32(m.Kind))
	e.float("color", m.Color[:]...)
	e.float("roughness", m.Roughness)
	e.float("ior", m.Ior)
	if m.HasLayer {
		e.object(ctx, "layer", MaterialType, m.Layer)
	}
	return e.err
}

func (s *Scene) readMaterial(ctx context.Context) (archive.Builder, error) {
	m := Material{}
	return &archive.Fields{
		Params: map[string]archive.Param{
			"name":      stringParam(&m.Name),
			"kind":      uint32Param((*uint32)(&m.Kind)),
			"color":     floatsParam(m.Color[:]),
			"roughness": floatParam(&m.Roughness),
			"ior":       floatParam(&m.Ior),
		},
		Children: map[string]archive.Child{
			"layer": {Type: MaterialType, Set: handle(&m.Layer, &m.HasLayer)},
		},
		Done: func(context.Context) (arena.Handle, error) { return s.Materials.Add(m), nil },
	}, nil
}

func (s *Scene) writeMesh(ctx context.Context, w *archive.Writer, h arena.Handle) error {
	m, err := s.Meshes.Lookup(h)
	if err != nil {
		return err
	}
	e := &emit{w: w}
	e.str("name", m.Name)
	e.uint32("vertices", uint32(len(m.Positions)/3))
	e.packed("positions", packFloats(m.Positions))
	e.packed("normals", packFloats(m.Normals))
	e.packed("uvs", packFloats(m.UVs))
	e.packed("indices", packUints(m.Indices))
	if m.HasMaterial {
		e.object(ctx, "material", MaterialType, m.Material)
	}
	return e.err
}

func (s *Scene) readMesh(ctx context.Context) (archive.Builder, error) {
	m := Mesh{}
	vertices, counted := uint32(0), false
	packed := func(dst *[]float32) archive.Param {
		return archive.Param{Type: element.Undefined, Set: func(t element.ParamType, data []byte) (err error) {
			*dst, err = unpackFloats(t, data)
			return err
		}}
	}
	return &archive.Fields{
		Params: map[string]archive.Param{
			"name": stringParam(&m.Name),
			"vertices": {Type: element.Uint32x1, Set: func(t element.ParamType, data []byte) error {
				counted = true
				return uint32Param(&vertices).Set(t, data)
			}},
			"positions": packed(&m.Positions),
			"normals":   packed(&m.Normals),
			"uvs":       packed(&m.UVs),
			"indices": {Type: element.Undefined, Set: func(t element.ParamType, data []byte) (err error) {
				m.Indices, err = unpackUints(t, data)
				return err
			}},
		},
		Children: map[string]archive.Child{
			"material": {Type: MaterialType, Set: handle(&m.Material, &m.HasMaterial)},
		},
		Done: func(context.Context) (arena.Handle, error) {
			if err := m.check(vertices, counted); err != nil {
				return 0, err
			}
			return s.Meshes.Add(m), nil
		},
	}, nil
}

// check validates the vertex data of a mesh read from an archive.
func (m *Mesh) check(vertices uint32, counted bool) error {
	n := len(m.Positions) / 3
	switch {
	case len(m.Positions)%3 != 0:
		return element.Errorf(archive.ErrFormat, nil, "mesh %q has %d position values", m.Name, len(m.Positions))
	case counted && uint32(n) != vertices:
		return element.Errorf(archive.ErrFormat, nil, "mesh %q has %d vertices, expected %d", m.Name, n, vertices)
	case m.Normals != nil && len(m.Normals) != 3*n:
		return element.Errorf(archive.ErrFormat, nil, "mesh %q has %d normal values for %d vertices", m.Name, len(m.Normals), n)
	case m.UVs != nil && len(m.UVs) != 2*n:
		return element.Errorf(archive.ErrFormat, nil, "mesh %q has %d uv values for %d vertices", m.Name, len(m.UVs), n)
	case len(m.Indices)%3 != 0:
		return element.Errorf(archive.ErrFormat, nil, "mesh %q has %d indices", m.Name, len(m.Indices))
	}
	for _, i := range m.Indices {
		if int(i) >= n {
			return element.Errorf(archive.ErrFormat, nil, "mesh %q index %d out of %d vertices", m.Name, i, n)
		}
	}
	return nil
}

func (s *Scene) writeInstance(ctx context.Context, w *archive.Writer, h arena.Handle) error {
	i, err := s.Instances.Lookup(h)
	if err != nil {
		return err
	}
	e := &emit{w: w}
	e.str("name", i.Name)
	e.float("transform", i.Transform[:]...)
	e.object(ctx, "base", MeshType, i.Base)
	if i.HasMaterial {
		e.object(ctx, "material", MaterialType, i.Material)
	}
	return e.err
}

func (s *Scene) readInstance(ctx context.Context) (archive.Builder, error) {
	i := Instance{}
	hasBase := false
	return &archive.Fields{
		Params: map[string]archive.Param{
			"name":      stringParam(&i.Name),
			"transform": floatsParam(i.Transform[:]),
		},
		Children: map[string]archive.Child{
			"base":     {Type: MeshType, Set: handle(&i.Base, &hasBase)},
			"material": {Type: MaterialType, Set: handle(&i.Material, &i.HasMaterial)},
		},
		Done: func(context.Context) (arena.Handle, error) {
			if !hasBase {
				return 0, element.Errorf(archive.ErrFormat, nil, "instance %q has no base mesh", i.Name)
			}
			return s.Instances.Add(i), nil
		},
	}, nil
}

func (s *Scene) writeLight(ctx context.Context, w *archive.Writer, h arena.Handle) error {
	l, err := s.Lights.Lookup(h)
	if err != nil {
		return err
	}
	e := &emit{w: w}
	e.uint32("kind", uint32(l.Kind))
	e.float("position", l.Position[:]...)
	e.float("direction", l.Direction[:]...)
	e.float("radiance", l.Radiance[:]...)
	if l.Kind == Spot {
		e.float("cone", l.Cone[:]...)
	}
	if l.HasShape {
		e.object(ctx, "shape", MeshType, l.Shape)
	}
	return e.err
}

func (s *Scene) readLight(ctx context.Context) (archive.Builder, error) {
	l := Light{}
	return &archive.Fields{
		Params: map[string]archive.Param{
			"kind":      uint32Param((*uint32)(&l.Kind)),
			"position":  floatsParam(l.Position[:]),
			"direction": floatsParam(l.Direction[:]),
			"radiance":  floatsParam(l.Radiance[:]),
			"cone":      floatsParam(l.Cone[:]),
		},
		Children: map[string]archive.Child{
			"shape": {Type: MeshType, Set: handle(&l.Shape, &l.HasShape)},
		},
		Done: func(context.Context) (arena.Handle, error) {
			if l.Kind == Area && !l.HasShape {
				return 0, element.Errorf(archive.ErrFormat, nil, "area light has no shape")
			}
			return s.Lights.Add(l), nil
		},
	}, nil
}
