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

package log

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// V is a map of key-value pairs to attach to log messages and errors.
type V map[string]interface{}

type valuesKeyTy string

const valuesKey valuesKeyTy = "log.valuesKey"

type values struct {
	v      V
	parent *values
}

// Bind returns a new context with V attached.
func (v V) Bind(ctx context.Context) context.Context {
	return context.WithValue(ctx, valuesKey, &values{v, getValues(ctx)})
}

func getValues(ctx context.Context) *values {
	out, _ := ctx.Value(valuesKey).(*values)
	return out
}

// flatten returns the bound values, with values bound closer to the leaf
// context taking precedence over their ancestors.
func (n *values) flatten() V {
	out := V{}
	var chain []*values
	for ; n != nil; n = n.parent {
		chain = append(chain, n)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].v {
			out[k] = v
		}
	}
	return out
}

func (n *values) fields() []zap.Field {
	if n == nil {
		return nil
	}
	flat := n.flatten()
	names := make([]string, 0, len(flat))
	for k := range flat {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]zap.Field, len(names))
	for i, k := range names {
		out[i] = zap.Any(k, flat[k])
	}
	return out
}
