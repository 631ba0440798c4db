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

import "fmt"

// Kind identifies the type of an element on the wire.
type Kind uint32

const (
	Begin     Kind = 1
	End       Kind = 2
	Parameter Kind = 3
	Reference Kind = 4
	Trailer   Kind = 5
)

var kindNames = map[Kind]string{
	Begin:     "Begin",
	End:       "End",
	Parameter: "Parameter",
	Reference: "Reference",
	Trailer:   "Trailer",
}

// Valid returns true if k is one of the known element kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", uint32(k))
}

// Header is the decoded fixed part of an element.
// Which fields are meaningful depends on Kind.
type Header struct {
	Kind Kind
	Name string

	// Begin and Reference.
	Type string
	ID   int32

	// Parameter.
	Param ParamType
	Size  uint64

	// Trailer.
	Magic [4]byte
	Count uint64
}

// Format implements fmt.Formatter.
func (h Header) Format(f fmt.State, c rune) {
	switch h.Kind {
	case Begin, Reference:
		fmt.Fprintf(f, "%v(%q, %s, %d)", h.Kind, h.Name, h.Type, h.ID)
	case Parameter:
		fmt.Fprintf(f, "%v(%q, %v, %d bytes)", h.Kind, h.Name, h.Param, h.Size)
	case Trailer:
		fmt.Fprintf(f, "%v(%q, %d elements)", h.Kind, h.Magic[:], h.Count)
	default:
		fmt.Fprint(f, h.Kind.String())
	}
}
