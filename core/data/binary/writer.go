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

package binary

// Writer encodes the values a Reader decodes.
type Writer interface {
	Data(p []byte)
	Int32(int32)
	Uint32(uint32)
	Float32(float32)
	Int64(int64)
	Uint64(uint64)
	// String writes the uint32 byte count of s followed by its bytes.
	String(s string)
	// Written is the number of bytes accepted by the stream so far.
	Written() int64
	// Error is the first error met, or nil. Once set, writes are dropped.
	Error() error
	SetError(err error)
}
