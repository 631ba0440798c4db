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

// Reader decodes fixed size primitives and length prefixed strings from a
// byte stream.
type Reader interface {
	// Data fills p from the stream.
	Data(p []byte)
	Int32() int32
	Uint32() uint32
	Float32() float32
	Int64() int64
	Uint64() uint64
	// String reads a uint32 byte count followed by that many bytes.
	String() string
	// Skip discards up to n bytes and returns the number discarded. Running
	// out of input part way is an io.ErrUnexpectedEOF.
	Skip(n uint64) uint64
	// Consumed is the number of bytes read from the stream so far.
	Consumed() int64
	// Error is the first error met, or nil. Once set, reads return zero
	// values without touching the stream.
	Error() error
	// SetError stops the reader with err unless it has already stopped.
	SetError(err error)
}
