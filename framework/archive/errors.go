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

import "github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"

// The error kinds returned by this package. Test with errors.Is.
const (
	ErrIO                    = element.ErrIO
	ErrFormat                = element.ErrFormat
	ErrCorruptOrIncompatible = element.ErrCorruptOrIncompatible
	ErrUnresolvedReference   = element.ErrUnresolvedReference
	ErrUnterminatedObject    = element.ErrUnterminatedObject
)

// Error is the concrete error type returned by this package.
type Error = element.Error
