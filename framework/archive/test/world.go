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

// Package test holds a small object catalogue used to exercise the archive
// reader and writer.
package test

import (
	"context"
	"io"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/arena"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// Type tags of the catalogue.
const (
	WorldType    = "World"
	MeshType     = "Mesh"
	MaterialType = "Material"
	InstanceType = "Instance"
	GizmoType    = "Gizmo"
)

// Material is a leaf object.
type Material struct {
	Color [4]float32
	Flags uint32
}

// Mesh optionally refers to a Material.
type Mesh struct {
	Name        string
	Scale       float32
	Offset      [3]float32
	Material    arena.Handle
	HasMaterial bool
}

// Instance places a base Mesh.
type Instance struct {
	Base      arena.Handle
	Transform [16]float32
}

// World owns every object and lists the top level ones.
type World struct {
	Meshes    arena.Arena[Mesh]
	Materials arena.Arena[Material]
	Instances arena.Arena[Instance]

	// Roots of each kind, in the order World writes them.
	RootMaterials []arena.Handle
	RootMeshes    []arena.Handle
	RootInstances []arena.Handle

	// Extra makes meshes carry a parameter and a child that no reader of
	// this catalogue understands.
	Extra bool
}

// Classes returns the namespace reading into and writing from w.
func Classes(w *World) *archive.Namespace {
	ns := archive.NewNamespace()
	ns.Add(worldClass(w))
	ns.Add(meshClass(w))
	ns.Add(materialClass(w))
	ns.Add(instanceClass(w))
	if w.Extra {
		ns.Add(&archive.Funcs{
			Name: GizmoType,
			Write: func(ctx context.Context, aw *archive.Writer, h arena.Handle) error {
				return aw.String("label", "from the future")
			},
		})
	}
	return ns
}

// Store writes w as a single World root.
func Store(ctx context.Context, out io.Writer, w *World) error {
	return archive.Store(ctx, out, Classes(w), archive.Root{Name: "world", Type: WorldType})
}

// Load reads a World written by Store.
func Load(ctx context.Context, in io.Reader) (*World, error) {
	w := &World{}
	if _, err := archive.Load(ctx, in, Classes(w), WorldType); err != nil {
		return nil, err
	}
	return w, nil
}

func worldClass(w *World) archive.Class {
	return &archive.Funcs{
		Name: WorldType,
		Write: func(ctx context.Context, aw *archive.Writer, _ arena.Handle) error {
			for _, h := range w.RootMaterials {
				if err := aw.Object(ctx, "material", MaterialType, h); err != nil {
					return err
				}
			}
			for _, h := range w.RootMeshes {
				if err := aw.Object(ctx, "mesh", MeshType, h); err != nil {
					return err
				}
			}
			for _, h := range w.RootInstances {
				if err := aw.Object(ctx, "instance", InstanceType, h); err != nil {
					return err
				}
			}
			return nil
		},
		Read: func(ctx context.Context) (archive.Builder, error) {
			appendTo := func(list *[]arena.Handle) archive.ChildFunc {
				return func(h arena.Handle) error {
					*list = append(*list, h)
					return nil
				}
			}
			return &archive.Fields{
				Children: map[string]archive.Child{
					"material": {Type: MaterialType, Set: appendTo(&w.RootMaterials)},
					"mesh":     {Type: MeshType, Set: appendTo(&w.RootMeshes)},
					"instance": {Type: InstanceType, Set: appendTo(&w.RootInstances)},
				},
				Done: func(context.Context) (arena.Handle, error) { return 0, nil },
			}, nil
		},
	}
}

func meshClass(w *World) archive.Class {
	return &archive.Funcs{
		Name: MeshType,
		Write: func(ctx context.Context, aw *archive.Writer, h arena.Handle) error {
			m, err := w.Meshes.Lookup(h)
			if err != nil {
				return err
			}
			if err := aw.String("name", m.Name); err != nil {
				return err
			}
			if err := aw.Float32("scale", m.Scale); err != nil {
				return err
			}
			if err := aw.Float32("offset", m.Offset[:]...); err != nil {
				return err
			}
			if w.Extra {
				if err := aw.Uint32("future", 7); err != nil {
					return err
				}
				if err := aw.Object(ctx, "gizmo", GizmoType, h); err != nil {
					return err
				}
			}
			if m.HasMaterial {
				return aw.Object(ctx, "material", MaterialType, m.Material)
			}
			return nil
		},
		Read: func(ctx context.Context) (archive.Builder, error) {
			m := Mesh{}
			return &archive.Fields{
				Params: map[string]archive.Param{
					"name": {Type: element.String, Set: func(t element.ParamType, data []byte) (err error) {
						m.Name, err = element.DecodeString(t, data)
						return err
					}},
					"scale": {Type: element.Float1, Set: func(t element.ParamType, data []byte) error {
						v, err := element.DecodeFloat32s(t, data)
						if err == nil {
							m.Scale = v[0]
						}
						return err
					}},
					"offset": {Type: element.Float3, Set: func(t element.ParamType, data []byte) error {
						v, err := element.DecodeFloat32s(t, data)
						if err == nil {
							copy(m.Offset[:], v)
						}
						return err
					}},
				},
				Children: map[string]archive.Child{
					"material": {Type: MaterialType, Set: func(h arena.Handle) error {
						m.Material, m.HasMaterial = h, true
						return nil
					}},
				},
				Done: func(context.Context) (arena.Handle, error) { return w.Meshes.Add(m), nil },
			}, nil
		},
	}
}

func materialClass(w *World) archive.Class {
	return &archive.Funcs{
		Name: MaterialType,
		Write: func(ctx context.Context, aw *archive.Writer, h arena.Handle) error {
			m, err := w.Materials.Lookup(h)
			if err != nil {
				return err
			}
			if err := aw.Float32("color", m.Color[:]...); err != nil {
				return err
			}
			return aw.Uint32("flags", m.Flags)
		},
		Read: func(ctx context.Context) (archive.Builder, error) {
			m := Material{}
			return &archive.Fields{
				Params: map[string]archive.Param{
					"color": {Type: element.Float4, Set: func(t element.ParamType, data []byte) error {
						v, err := element.DecodeFloat32s(t, data)
						if err == nil {
							copy(m.Color[:], v)
						}
						return err
					}},
					"flags": {Type: element.Uint32x1, Set: func(t element.ParamType, data []byte) error {
						v, err := element.DecodeUint32s(t, data)
						if err == nil {
							m.Flags = v[0]
						}
						return err
					}},
				},
				Done: func(context.Context) (arena.Handle, error) { return w.Materials.Add(m), nil },
			}, nil
		},
	}
}

func instanceClass(w *World) archive.Class {
	return &archive.Funcs{
		Name: InstanceType,
		Write: func(ctx context.Context, aw *archive.Writer, h arena.Handle) error {
			i, err := w.Instances.Lookup(h)
			if err != nil {
				return err
			}
			if err := aw.Float32("transform", i.Transform[:]...); err != nil {
				return err
			}
			return aw.Object(ctx, "base", MeshType, i.Base)
		},
		Read: func(ctx context.Context) (archive.Builder, error) {
			i := Instance{}
			return &archive.Fields{
				Params: map[string]archive.Param{
					"transform": {Type: element.Float16, Set: func(t element.ParamType, data []byte) error {
						v, err := element.DecodeFloat32s(t, data)
						if err == nil {
							copy(i.Transform[:], v)
						}
						return err
					}},
				},
				Children: map[string]archive.Child{
					"base": {Type: MeshType, Set: func(h arena.Handle) error {
						i.Base = h
						return nil
					}},
				},
				Done: func(context.Context) (arena.Handle, error) { return w.Instances.Add(i), nil },
			}, nil
		},
	}
}

// Identity is a 4x4 identity transform.
func Identity() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
