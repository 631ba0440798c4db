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

// Package flags binds command line flags to the fields of tagged structs.
//
// Each exported field of a bound struct becomes a flag named after the field
// in lower case, or after its name tag. A help tag gives the usage text; help
// text starting with an underscore is only shown in the full help. Nested
// structs are flattened with their field name as a dash separated prefix.
package flags

import (
	"flag"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
)

// FullHelpFlag is the name of the flag used to show the full help.
const FullHelpFlag = "fullhelp"

// Set is a set of bound flags.
type Set struct {
	// Raw is the underlying flag set.
	Raw flag.FlagSet
}

// NewSet returns an empty set called name whose parse errors are returned
// rather than exiting.
func NewSet(name string) *Set {
	s := &Set{}
	s.Raw.Init(name, flag.ContinueOnError)
	s.Raw.SetOutput(io.Discard)
	return s
}

// Bind uses reflection to bind flag values to the fields of value, which
// must be a pointer. It recurses into nested structures adding all leaf
// fields.
func (s *Set) Bind(name string, value interface{}, help string) {
	switch val := value.(type) {
	case *bool:
		s.Raw.BoolVar(val, name, *val, help)
		return
	case *int:
		s.Raw.IntVar(val, name, *val, help)
		return
	case *int64:
		s.Raw.Int64Var(val, name, *val, help)
		return
	case *uint:
		s.Raw.UintVar(val, name, *val, help)
		return
	case *uint64:
		s.Raw.Uint64Var(val, name, *val, help)
		return
	case *float64:
		s.Raw.Float64Var(val, name, *val, help)
		return
	case *string:
		s.Raw.StringVar(val, name, *val, help)
		return
	case *time.Duration:
		s.Raw.DurationVar(val, name, *val, help)
		return
	case flag.Value:
		s.Raw.Var(val, name, help)
		return
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("Flag value not a pointer: %v", rv.Type()))
	}
	switch e := rv.Elem(); e.Kind() {
	case reflect.Slice:
		s.Raw.Var(newRepeatedFlag(e), name, help)
	case reflect.Struct:
		t := e.Type()
		for i := 0; i < e.NumField(); i++ {
			tf := t.Field(i)
			if tf.PkgPath != "" {
				continue // Unexported.
			}
			fname := strings.ToLower(tf.Name)
			if tf.Anonymous {
				fname = ""
			}
			if n := tf.Tag.Get("name"); n != "" {
				fname = n
			}
			full := name
			switch {
			case fname == "":
			case name == "":
				full = fname
			default:
				full = name + "-" + fname
			}
			s.Bind(full, e.Field(i).Addr().Interface(), tf.Tag.Get("help"))
		}
	default:
		panic(fmt.Sprintf("Unhandled flag type: %v", rv.Type()))
	}
}

// HasVisibleFlags returns true if the set has bound flags for the specified
// verbosity.
func (s *Set) HasVisibleFlags(verbose bool) bool {
	result := false
	s.Raw.VisitAll(func(f *flag.Flag) {
		if _, _, hidden := flagUsage(f, verbose); !hidden {
			result = true
		}
	})
	return result
}

func flagUsage(f *flag.Flag, verbose bool) (name, usage string, hidden bool) {
	name, usage = flag.UnquoteUsage(f)
	hidden = f.Name == FullHelpFlag
	if !strings.HasPrefix(usage, "_") {
		return name, usage, hidden
	}
	return name, usage[1:], hidden || !verbose
}

// Usage returns the usage text of the flags.
func (s *Set) Usage(verbose bool) string {
	lines := []string{}
	s.Raw.VisitAll(func(f *flag.Flag) {
		name, usage, hidden := flagUsage(f, verbose)
		if hidden {
			return
		}
		line := fmt.Sprintf("  -%s %s\n\t%s", f.Name, name, usage)
		switch f.DefValue {
		case "", "false", "0", "[]":
		default:
			line += fmt.Sprintf(" (default %v)", f.DefValue)
		}
		lines = append(lines, line)
	})
	return strings.Join(lines, "\n")
}

// Parse processes args to fill in the flags. If fullHelp is not nil it is
// bound to the hidden FullHelpFlag.
func (s *Set) Parse(fullHelp *bool, args ...string) error {
	if fullHelp != nil && s.Raw.Lookup(FullHelpFlag) == nil {
		s.Raw.BoolVar(fullHelp, FullHelpFlag, *fullHelp, "")
	}
	return s.Raw.Parse(args)
}

// Args returns the unprocessed part of the command line passed to Parse.
func (s *Set) Args() []string {
	return s.Raw.Args()
}
