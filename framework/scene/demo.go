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

// Demo returns a small scene exercising every object kind: a quad mesh
// shared by two instances, a layered material shared by the mesh and an
// instance override, an area light emitting from the mesh and two cameras.
func Demo() *Scene {
	s := New("demo")
	base := s.Materials.Add(Material{Name: "base", Kind: Diffuse, Color: [4]float32{0.8, 0.8, 0.8, 1}, Roughness: 1, Ior: 1})
	gloss := s.Materials.Add(Material{
		Name: "gloss", Kind: Reflection, Color: [4]float32{1, 1, 1, 1}, Roughness: 0.1, Ior: 1.5,
		Layer: base, HasLayer: true,
	})
	quad := s.Meshes.Add(Mesh{
		Name:      "quad",
		Positions: []float32{-1, 0, -1, 1, 0, -1, 1, 0, 1, -1, 0, 1},
		Normals:   []float32{0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0},
		UVs:       []float32{0, 0, 1, 0, 1, 1, 0, 1},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
		Material:  base, HasMaterial: true,
	})
	s.Instances.Add(Instance{Name: "left", Base: quad, Transform: Translate(-2, 0, 0)})
	s.Instances.Add(Instance{Name: "right", Base: quad, Transform: Translate(2, 0, 0), Material: gloss, HasMaterial: true})
	s.Lights.Add(Light{Kind: Spot, Position: [3]float32{0, 5, 0}, Direction: [3]float32{0, -1, 0},
		Radiance: [3]float32{10, 10, 10}, Cone: [2]float32{0.3, 0.5}})
	s.Lights.Add(Light{Kind: Area, Radiance: [3]float32{4, 4, 4}, Shape: quad, HasShape: true})
	s.Cameras.Add(Camera{Mode: Orthographic, Position: [3]float32{0, 10, 0}, Up: [3]float32{0, 0, 1}, Sensor: [2]float32{1, 1}})
	s.SetCamera(Camera{
		Mode: Perspective, Position: [3]float32{0, 2, 8}, Up: [3]float32{0, 1, 0},
		Fov: 0.8, Sensor: [2]float32{0.036, 0.024}, Focus: 8,
	})
	return s
}
