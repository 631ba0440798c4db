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

package arena_test

import (
	"fmt"
	"testing"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/assert"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/arena"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
)

type mesh struct {
	name string
}

func TestArena(t *testing.T) {
	ctx := log.Testing(t)
	var a arena.Arena[mesh]
	assert.For(ctx, "empty len").ThatInteger(a.Len()).Equals(0)
	h0 := a.Add(mesh{"a"})
	m, h1 := a.New()
	m.name = "b"
	assert.For(ctx, "first handle").That(h0).Equals(arena.Handle(0))
	assert.For(ctx, "second handle").That(h1).Equals(arena.Handle(1))

	first := a.Get(h0)
	for i := 0; i < 100; i++ {
		a.Add(mesh{})
	}
	assert.For(ctx, "pointers survive growth").ThatBoolean(a.Get(h0) == first).IsTrue()
	assert.For(ctx, "name").That(a.Get(h1).name).Equals("b")
	assert.For(ctx, "handles").ThatSlice(a.Handles()).IsLength(102)
}

func TestInvalidHandle(t *testing.T) {
	ctx := log.Testing(t)
	var a arena.Arena[mesh]
	assert.For(ctx, "get").That(a.Get(3)).IsNil()
	_, err := a.Lookup(3)
	assert.For(ctx, "lookup").ThatError(err).Is(arena.ErrInvalidHandle)
	assert.For(ctx, "format").ThatString(fmt.Sprint(arena.Handle(3))).Equals("#3")
}

func TestValues(t *testing.T) {
	ctx := log.Testing(t)
	var a arena.Arena[mesh]
	a.Add(mesh{name: "a"})
	p, _ := a.New()
	p.name = "b"
	values := a.Values()
	assert.For(ctx, "values").ThatSlice(values).Equals([]mesh{{name: "a"}, {name: "b"}})
	values[0].name = "changed"
	assert.For(ctx, "copies").That(a.Get(0).name).Equals("a")
}
