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

package registry_test

import (
	"testing"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/assert"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/arena"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/registry"
)

func registerPanic(w *registry.Writes, name, typ string, h arena.Handle) (p interface{}) {
	defer func() { p = recover() }()
	w.Register(name, typ, h)
	return nil
}

func TestWrites(t *testing.T) {
	ctx := log.Testing(t)
	w := registry.NewWrites()
	_, found := w.Find("Mesh", 0)
	assert.For(ctx, "empty").ThatBoolean(found).IsFalse()

	assert.For(ctx, "first").That(w.Register("a", "Mesh", 0)).Equals(registry.FirstID)
	assert.For(ctx, "same handle, other type").That(w.Register("m", "Material", 0)).Equals(registry.FirstID + 1)
	assert.For(ctx, "third").That(w.Register("b", "Mesh", 1)).Equals(registry.FirstID + 2)

	id, found := w.Find("Mesh", 0)
	assert.For(ctx, "mesh found").ThatBoolean(found).IsTrue()
	assert.For(ctx, "mesh id").That(id).Equals(registry.FirstID)
	id, found = w.Find("Material", 0)
	assert.For(ctx, "material found").ThatBoolean(found).IsTrue()
	assert.For(ctx, "material id").That(id).Equals(registry.FirstID + 1)
	_, found = w.Find("Light", 0)
	assert.For(ctx, "light").ThatBoolean(found).IsFalse()

	assert.For(ctx, "records").ThatSlice(w.Records()).IsLength(3)
	assert.For(ctx, "last record").ThatString(w.Records()[2].Name).Equals("b")
	assert.For(ctx, "registered twice").That(registerPanic(w, "again", "Mesh", 1)).IsNotNil()
}

func TestWritesOpen(t *testing.T) {
	ctx := log.Testing(t)
	w := registry.NewWrites()
	outer := w.Register("outer", "Mesh", 0)
	inner := w.Register("inner", "Material", 0)
	assert.For(ctx, "outer open").ThatBoolean(w.Open(outer)).IsTrue()
	assert.For(ctx, "inner open").ThatBoolean(w.Open(inner)).IsTrue()
	w.Close(inner)
	assert.For(ctx, "inner closed").ThatBoolean(w.Open(inner)).IsFalse()
	assert.For(ctx, "outer still open").ThatBoolean(w.Open(outer)).IsTrue()
	w.Close(outer)
	assert.For(ctx, "outer closed").ThatBoolean(w.Open(outer)).IsFalse()
	assert.For(ctx, "unknown").ThatBoolean(w.Open(5)).IsFalse()
}

func TestReads(t *testing.T) {
	ctx := log.Testing(t)
	r := registry.NewReads()
	_, err := r.Resolve("Mesh", 1000)
	assert.For(ctx, "unregistered").ThatError(err).Is(element.ErrUnresolvedReference)

	assert.For(ctx, "register").ThatError(r.Register(1000, "a", "Mesh", arena.Handle(4))).Succeeded()
	h, err := r.Resolve("Mesh", 1000)
	assert.For(ctx, "resolve").ThatError(err).Succeeded()
	assert.For(ctx, "handle").That(h).Equals(arena.Handle(4))

	_, err = r.Resolve("Material", 1000)
	assert.For(ctx, "type mismatch").ThatError(err).Is(element.ErrFormat)

	err = r.Register(1000, "b", "Mesh", arena.Handle(5))
	assert.For(ctx, "duplicate id").ThatError(err).Is(element.ErrFormat)
	assert.For(ctx, "records").ThatSlice(r.Records()).IsLength(1)
}
