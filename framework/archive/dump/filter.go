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

package dump

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
)

// Filter selects objects with a boolean expression over the fields of
// Object, for example `Type == "Mesh" && Depth > 0`.
type Filter struct {
	source  string
	program *vm.Program
}

// NewFilter compiles the expression where. An empty expression matches every
// object.
func NewFilter(where string) (*Filter, error) {
	f := &Filter{source: where}
	if where == "" {
		return f, nil
	}
	prg, err := expr.Compile(where, expr.Env(Object{}), expr.AsBool())
	if err != nil {
		return nil, errors.Wrapf(err, "compiling filter %q", where)
	}
	f.program = prg
	return f, nil
}

// Match reports whether o satisfies the filter.
func (f *Filter) Match(o Object) (bool, error) {
	if f.program == nil {
		return true, nil
	}
	res, err := expr.Run(f.program, o)
	if err != nil {
		return false, errors.Wrapf(err, "evaluating filter %q", f.source)
	}
	return res.(bool), nil
}

// Select returns the objects of list matching the filter.
func (f *Filter) Select(list []Object) ([]Object, error) {
	out := []Object{}
	for _, o := range list {
		ok, err := f.Match(o)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, o)
		}
	}
	return out, nil
}
