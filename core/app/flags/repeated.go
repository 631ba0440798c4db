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

package flags

import (
	"flag"
	"fmt"
	"reflect"
	"strings"
)

// repeated is a slice flag; every use of the flag appends one value.
type repeated struct {
	slice reflect.Value
	elem  reflect.Value
	// parse sets elem from a single argument.
	parse flag.Value
}

const single = "single"

func newRepeatedFlag(slice reflect.Value) flag.Value {
	elem := reflect.New(slice.Type().Elem())
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	switch v := elem.Interface().(type) {
	case *bool:
		fs.BoolVar(v, single, false, "")
	case *int:
		fs.IntVar(v, single, 0, "")
	case *uint64:
		fs.Uint64Var(v, single, 0, "")
	case *float64:
		fs.Float64Var(v, single, 0, "")
	case *string:
		fs.StringVar(v, single, "", "")
	case flag.Value:
		fs.Var(v, single, "")
	default:
		panic(fmt.Sprintf("Unhandled repeated flag type: %v", elem.Type()))
	}
	return &repeated{slice: slice, elem: elem, parse: fs.Lookup(single).Value}
}

func (f *repeated) String() string {
	if !f.slice.IsValid() {
		return "[]"
	}
	parts := make([]string, f.slice.Len())
	for i := range parts {
		parts[i] = fmt.Sprint(f.slice.Index(i).Interface())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (f *repeated) Set(v string) error {
	if err := f.parse.Set(v); err != nil {
		return err
	}
	f.slice.Set(reflect.Append(f.slice, f.elem.Elem()))
	return nil
}
