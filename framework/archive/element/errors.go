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

package element

import (
	"fmt"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/fault"
)

// The error kinds reported by the archive packages.
// Use errors.Is to test an error against them.
const (
	// ErrIO is a failed read, write or seek of the underlying stream.
	ErrIO = fault.Const("Archive I/O failure")
	// ErrFormat is a structurally invalid element stream.
	ErrFormat = fault.Const("Archive format violation")
	// ErrCorruptOrIncompatible is an archive whose header is not the valid
	// magic and version, or an unfinished stream.
	ErrCorruptOrIncompatible = fault.Const("Archive corrupt or incompatible")
	// ErrUnresolvedReference is a reference to an id that has not been fully
	// read yet.
	ErrUnresolvedReference = fault.Const("Unresolved archive reference")
	// ErrUnterminatedObject is an object left open at the end of a top level
	// read or write.
	ErrUnterminatedObject = fault.Const("Unterminated archive object")
)

// Error is an archive error of a given Kind, with an optional underlying
// Cause.
type Error struct {
	Kind  fault.Const
	Msg   string
	Cause error
}

// Errorf returns a new Error of kind k wrapping cause.
func Errorf(k fault.Const, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(fault.Const)
	return ok && k == e.Kind
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }
