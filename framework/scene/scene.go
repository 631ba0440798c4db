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

// Package scene is a catalogue of renderable scene objects stored in
// archives: cameras, materials, meshes, instances of meshes and lights.
//
// Objects live in arenas owned by a Scene and refer to one another through
// arena handles, so shared meshes and materials are written once and
// referenced from every user.
package scene

import (
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/arena"
)

// Type tags of the catalogue.
const (
	SceneType    = "Scene"
	CameraType   = "Camera"
	MaterialType = "Material"
	MeshType     = "Mesh"
	InstanceType = "Instance"
	LightType    = "Light"
)

// CameraMode is the projection of a Camera.
type CameraMode uint32

const (
	Perspective CameraMode = iota + 1
	Orthographic
	Panorama
)

// MaterialKind is the shading model of a Material.
type MaterialKind uint32

const (
	Diffuse MaterialKind = iota + 1
	Reflection
	Refraction
	Emissive
	Transparent
)

// LightKind is the emission model of a Light.
type LightKind uint32

const (
	Point LightKind = iota + 1
	Directional
	Spot
	Area
	Environment
)

// Camera is the scene viewpoint.
type Camera struct {
	Mode     CameraMode
	Position [3]float32
	At       [3]float32
	Up       [3]float32
	Fov      float32
	Sensor   [2]float32
	Aperture float32
	Focus    float32
}

// Material describes the surface of meshes.
type Material struct {
	Name      string
	Kind      MaterialKind
	Color     [4]float32
	Roughness float32
	Ior       float32
	// Layer is an optional base material blended under this one.
	Layer    arena.Handle
	HasLayer bool
}

// Mesh is indexed triangle geometry.
type Mesh struct {
	Name      string
	Positions []float32 // x, y, z per vertex.
	Normals   []float32 // x, y, z per vertex.
	UVs       []float32 // u, v per vertex.
	Indices   []uint32  // Three per triangle.
	Material  arena.Handle
	// HasMaterial is false for meshes using the renderer's default.
	HasMaterial bool
}

// Instance draws a base Mesh with its own transform and optionally its own
// material.
type Instance struct {
	Name        string
	Base        arena.Handle
	Transform   [16]float32 // Row major.
	Material    arena.Handle
	HasMaterial bool
}

// Light emits light into the scene.
type Light struct {
	Kind      LightKind
	Position  [3]float32
	Direction [3]float32
	Radiance  [3]float32
	// Cone holds the inner and outer angles of Spot lights.
	Cone [2]float32
	// Area lights emit from the surface of a mesh.
	Shape    arena.Handle
	HasShape bool
}

// Scene owns every object of a scene.
// The zero value is an empty scene without a camera.
type Scene struct {
	Name      string
	Cameras   arena.Arena[Camera]
	Materials arena.Arena[Material]
	Meshes    arena.Arena[Mesh]
	Instances arena.Arena[Instance]
	Lights    arena.Arena[Light]
	// Camera is the active camera.
	Camera    arena.Handle
	HasCamera bool
}

// New returns an empty scene called name.
func New(name string) *Scene {
	return &Scene{Name: name}
}

// SetCamera adds c and makes it the active camera.
func (s *Scene) SetCamera(c Camera) arena.Handle {
	s.Camera, s.HasCamera = s.Cameras.Add(c), true
	return s.Camera
}

// Identity is the 4x4 identity transform.
func Identity() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a transform moving points by x, y and z.
func Translate(x, y, z float32) [16]float32 {
	m := Identity()
	m[3], m[7], m[11] = x, y, z
	return m
}
