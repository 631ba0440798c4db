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
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/dump"
)

// Names returns the symbolic names of the catalogue's enumerated
// parameters.
func Names() dump.Names {
	return dump.NewNames(
		dump.Name{Context: CameraType, Field: "mode", Value: int64(Perspective), Name: "Perspective"},
		dump.Name{Context: CameraType, Field: "mode", Value: int64(Orthographic), Name: "Orthographic"},
		dump.Name{Context: CameraType, Field: "mode", Value: int64(Panorama), Name: "Panorama"},

		dump.Name{Context: MaterialType, Field: "kind", Value: int64(Diffuse), Name: "Diffuse"},
		dump.Name{Context: MaterialType, Field: "kind", Value: int64(Reflection), Name: "Reflection"},
		dump.Name{Context: MaterialType, Field: "kind", Value: int64(Refraction), Name: "Refraction"},
		dump.Name{Context: MaterialType, Field: "kind", Value: int64(Emissive), Name: "Emissive"},
		dump.Name{Context: MaterialType, Field: "kind", Value: int64(Transparent), Name: "Transparent"},

		dump.Name{Context: LightType, Field: "kind", Value: int64(Point), Name: "Point"},
		dump.Name{Context: LightType, Field: "kind", Value: int64(Directional), Name: "Directional"},
		dump.Name{Context: LightType, Field: "kind", Value: int64(Spot), Name: "Spot"},
		dump.Name{Context: LightType, Field: "kind", Value: int64(Area), Name: "Area"},
		dump.Name{Context: LightType, Field: "kind", Value: int64(Environment), Name: "Environment"},
	)
}
