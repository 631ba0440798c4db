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

package dump_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/assert"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/dump"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/test"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/scene"
)

func spotScene() *scene.Scene {
	s := scene.New("s")
	s.Lights.Add(scene.Light{
		Kind:      scene.Spot,
		Position:  [3]float32{0, 5, 0},
		Direction: [3]float32{0, -1, 0},
		Radiance:  [3]float32{1, 1, 1},
		Cone:      [2]float32{0.5, 1},
	})
	return s
}

func stored(ctx context.Context, s *scene.Scene) []byte {
	buf := &test.Buffer{}
	assert.For(ctx, "store").Critical().ThatError(scene.Store(ctx, buf, s)).Succeeded()
	return buf.Bytes()
}

func TestWrite(t *testing.T) {
	ctx := log.Testing(t)
	out := &bytes.Buffer{}
	err := dump.Write(ctx, out, bytes.NewReader(stored(ctx, spotScene())), dump.Options{Names: scene.Names()})
	assert.For(ctx, "write").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "text").ThatString(out.String()).Equals(`# patched archive, version 1
Scene "s" #1000 {
  name: String "s"
  Light "light" #1001 {
    kind: UInt32_1 3 (Spot)
    position: Float3 0 5 0
    direction: Float3 0 -1 0
    radiance: Float3 1 1 1
    cone: Float2 0.5 1
  }
}
`)
}

func TestWriteDemo(t *testing.T) {
	ctx := log.Testing(t)
	out := &bytes.Buffer{}
	err := dump.Write(ctx, out, bytes.NewReader(stored(ctx, scene.Demo())), dump.Options{Names: scene.Names(), Indent: "\t"})
	assert.For(ctx, "write").Critical().ThatError(err).Succeeded()
	text := assert.For(ctx, "text").ThatString(out.String())
	text.Contains("\tMaterial \"material\" #1001 {\n")
	text.Contains("\t\tkind: UInt32_1 2 (Reflection)\n")
	text.Contains("\t\tpositions: Undefined <48 bytes>\n")
	text.Contains("\t\tMesh \"base\" -> #")
	text.Contains("\tCamera \"active\" -> #")
	text.DoesNotContain("unresolved")
	text.DoesNotContain("\x1b[")
}

func TestWriteUnnamed(t *testing.T) {
	ctx := log.Testing(t)
	out := &bytes.Buffer{}
	err := dump.Write(ctx, out, bytes.NewReader(stored(ctx, spotScene())), dump.Options{})
	assert.For(ctx, "write").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "text").ThatString(out.String()).Contains("    kind: UInt32_1 3\n")
}

func TestWriteColor(t *testing.T) {
	ctx := log.Testing(t)
	out := &bytes.Buffer{}
	err := dump.Write(ctx, out, bytes.NewReader(stored(ctx, spotScene())), dump.Options{Color: true})
	assert.For(ctx, "write").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "text").ThatString(out.String()).Contains("\x1b[")
}

// archiveOf builds an archive body by hand.
func archiveOf(ctx context.Context, magic [4]byte, body func(e *element.Encoder)) []byte {
	buf := &bytes.Buffer{}
	buf.Write(magic[:])
	buf.Write([]byte{1, 0, 0, 0})
	e := element.NewEncoder(buf)
	body(e)
	assert.For(ctx, "encode").Critical().ThatError(e.Error()).Succeeded()
	return buf.Bytes()
}

func TestWriteUnresolved(t *testing.T) {
	ctx := log.Testing(t)
	data := archiveOf(ctx, archive.Magic, func(e *element.Encoder) {
		e.Begin("i", "Instance", 1000)
		e.Reference("base", "Mesh", 1001)
		e.End()
		e.Begin("m", "Mesh", 1001)
		e.End()
		e.Reference("again", "Mesh", 1001)
	})
	out := &bytes.Buffer{}
	assert.For(ctx, "write").Critical().ThatError(dump.Write(ctx, out, bytes.NewReader(data), dump.Options{})).Succeeded()
	text := assert.For(ctx, "text").ThatString(out.String())
	text.Contains("  Mesh \"base\" -> #1001 (unresolved)\n")
	text.Contains("Mesh \"again\" -> #1001\n")
}

func TestWriteErrors(t *testing.T) {
	ctx := log.Testing(t)
	complete := stored(ctx, spotScene())
	streamed := &bytes.Buffer{}
	assert.For(ctx, "store").Critical().ThatError(scene.Store(ctx, streamed, spotScene())).Succeeded()
	for _, tc := range []struct {
		name string
		data []byte
		kind error
	}{
		{"sentinel", append([]byte("BAD0"), complete[4:]...), archive.ErrCorruptOrIncompatible},
		{"unterminated", complete[:len(complete)-8], archive.ErrUnterminatedObject},
		{"no trailer", streamed.Bytes()[:streamed.Len()-20], archive.ErrCorruptOrIncompatible},
		{"unbalanced", archiveOf(ctx, archive.Magic, func(e *element.Encoder) { e.End() }), archive.ErrFormat},
		{"trailer in patched", archiveOf(ctx, archive.Magic, func(e *element.Encoder) { e.Trailer(archive.Magic) }), archive.ErrFormat},
		{"trailer inside object", archiveOf(ctx, archive.StreamMagic, func(e *element.Encoder) {
			e.Begin("m", "Mesh", 1000)
			e.End()
			e.Begin("m", "Mesh", 1001)
			e.Trailer(archive.Magic)
		}), archive.ErrFormat},
	} {
		err := dump.Write(ctx, &bytes.Buffer{}, bytes.NewReader(tc.data), dump.Options{})
		assert.For(ctx, "%s", tc.name).ThatError(err).Is(tc.kind)
	}
}

func TestParseNames(t *testing.T) {
	ctx := log.Testing(t)
	names, err := dump.ParseNames([]byte(`
Light:
  kind:
    Bulb: 1
    Sun: 2
Material:
  kind:
    Matte: 1
`))
	assert.For(ctx, "parse").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "len").ThatInteger(names.Len()).Equals(3)
	n, ok := names.Lookup("Light", "kind", 2)
	assert.For(ctx, "found").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "name").ThatString(n).Equals("Sun")

	merged := scene.Names().With(names)
	n, _ = merged.Lookup("Light", "kind", 1)
	assert.For(ctx, "later tables take precedence").ThatString(n).Equals("Bulb")
	n, _ = merged.Lookup("Light", "kind", 3)
	assert.For(ctx, "inherited").ThatString(n).Equals("Spot")
	// Building a merged table leaves the originals untouched.
	n, _ = scene.Names().Lookup("Light", "kind", 1)
	assert.For(ctx, "original").ThatString(n).Equals("Point")

	_, err = dump.ParseNames([]byte("Light: [1, 2"))
	assert.For(ctx, "bad yaml").ThatError(err).Failed()
	_, err = dump.ParseNames([]byte("Light:\n  kind:\n    Bulb: one\n"))
	assert.For(ctx, "bad value").ThatError(err).Failed()
}

func TestLoadNames(t *testing.T) {
	ctx := log.Testing(t)
	path := filepath.Join(t.TempDir(), "names.yaml")
	err := os.WriteFile(path, []byte("Camera:\n  mode:\n    Fisheye: 4\n"), 0644)
	assert.For(ctx, "write").Critical().ThatError(err).Succeeded()
	names, err := dump.LoadNames(path)
	assert.For(ctx, "load").Critical().ThatError(err).Succeeded()
	n, ok := names.Lookup("Camera", "mode", 4)
	assert.For(ctx, "found").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "name").ThatString(n).Equals("Fisheye")
	assert.For(ctx, "entries").ThatSlice(names.Entries()).Equals([]dump.Name{{Context: "Camera", Field: "mode", Value: 4, Name: "Fisheye"}})

	_, err = dump.LoadNames(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.For(ctx, "missing").ThatError(err).Failed()
}

func TestObjects(t *testing.T) {
	ctx := log.Testing(t)
	objects, err := dump.Objects(ctx, bytes.NewReader(stored(ctx, scene.Demo())))
	assert.For(ctx, "objects").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "root").That(objects[0]).Equals(dump.Object{
		Depth: 0, Kind: "Begin", Name: "demo", Type: scene.SceneType, ID: 1000,
		Params: 1, Children: 10, Bytes: 4,
	})

	var quad dump.Object
	for _, o := range objects {
		if o.Type == scene.MeshType && o.Kind == "Begin" {
			quad = o
		}
	}
	assert.For(ctx, "parent").ThatString(quad.Parent).Equals(scene.SceneType)
	assert.For(ctx, "depth").ThatInteger(quad.Depth).Equals(1)
	assert.For(ctx, "params").ThatInteger(quad.Params).Equals(6)
	assert.For(ctx, "children").ThatInteger(quad.Children).Equals(1)
}

func TestFilter(t *testing.T) {
	ctx := log.Testing(t)
	objects, err := dump.Objects(ctx, bytes.NewReader(stored(ctx, scene.Demo())))
	assert.For(ctx, "objects").Critical().ThatError(err).Succeeded()

	f, err := dump.NewFilter(`Type == "Mesh" && Kind == "Reference"`)
	assert.For(ctx, "compile").Critical().ThatError(err).Succeeded()
	refs, err := f.Select(objects)
	assert.For(ctx, "select").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "references").ThatSlice(refs).IsLength(3)
	for _, o := range refs {
		assert.For(ctx, "%s resolved", o.Name).ThatBoolean(o.Resolved).IsTrue()
	}

	all, err := dump.NewFilter("")
	assert.For(ctx, "compile empty").Critical().ThatError(err).Succeeded()
	got, err := all.Select(objects)
	assert.For(ctx, "select all").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "all").ThatSlice(got).Equals(objects)

	_, err = dump.NewFilter("Depth +")
	assert.For(ctx, "syntax").ThatError(err).Failed()
	_, err = dump.NewFilter("Depth + 1")
	assert.For(ctx, "filters must be boolean").ThatError(err).Failed()
	_, err = dump.NewFilter("Colour == 1")
	assert.For(ctx, "unknown fields are rejected").ThatError(err).Failed()
}

func hasLine(lines []dump.Line, l dump.Line) bool {
	for _, got := range lines {
		if got == l {
			return true
		}
	}
	return false
}

func TestCompare(t *testing.T) {
	ctx := log.Testing(t)
	a := stored(ctx, spotScene())
	changed := spotScene()
	changed.Lights.Get(0).Radiance = [3]float32{2, 2, 2}
	b := stored(ctx, changed)

	lines, err := dump.Compare(ctx, bytes.NewReader(a), bytes.NewReader(a), dump.Options{})
	assert.For(ctx, "compare same").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "same").ThatBoolean(dump.Changed(lines)).IsFalse()

	lines, err = dump.Compare(ctx, bytes.NewReader(a), bytes.NewReader(b), dump.Options{Color: true})
	assert.For(ctx, "compare changed").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "changed").Critical().ThatBoolean(dump.Changed(lines)).IsTrue()
	assert.For(ctx, "deleted").ThatBoolean(hasLine(lines, dump.Line{Op: diffmatchpatch.DiffDelete, Text: "    radiance: Float3 1 1 1"})).IsTrue()
	assert.For(ctx, "inserted").ThatBoolean(hasLine(lines, dump.Line{Op: diffmatchpatch.DiffInsert, Text: "    radiance: Float3 2 2 2"})).IsTrue()

	out := &bytes.Buffer{}
	assert.For(ctx, "write").Critical().ThatError(dump.WriteDiff(out, lines, 1, false)).Succeeded()
	assert.For(ctx, "diff").ThatString(out.String()).Equals(strings.Join([]string{
		"...",
		"      direction: Float3 0 -1 0",
		"-     radiance: Float3 1 1 1",
		"+     radiance: Float3 2 2 2",
		"      cone: Float2 0.5 1",
		"",
	}, "\n"))

	_, err = dump.Compare(ctx, bytes.NewReader(a[:4]), bytes.NewReader(b), dump.Options{})
	assert.For(ctx, "truncated").ThatError(err).Is(archive.ErrCorruptOrIncompatible)
}
