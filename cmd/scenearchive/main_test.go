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

package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/app"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/assert"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
)

func argSet(ctx context.Context, args ...string) flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	assert.For(ctx, "args").Critical().ThatError(fs.Parse(args)).Succeeded()
	return *fs
}

type runner interface {
	Run(ctx context.Context, flags flag.FlagSet) error
}

func capture(ctx context.Context, v runner, args ...string) (string, error) {
	out := &bytes.Buffer{}
	prev := app.Stdout
	app.Stdout = out
	defer func() { app.Stdout = prev }()
	err := v.Run(ctx, argSet(ctx, args...))
	return out.String(), err
}

func writeDemo(ctx context.Context, dir string, flags DemoFlags) string {
	path := filepath.Join(dir, "demo.bksc")
	out, err := capture(ctx, &demoVerb{flags}, path)
	assert.For(ctx, "demo").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "demo output").ThatString(out).Equals("Wrote " + path + "\n")
	return path
}

func TestDemoAndVerify(t *testing.T) {
	ctx := log.Testing(t)
	for _, tc := range []struct {
		name  string
		flags DemoFlags
		mode  string
	}{
		{"patched", DemoFlags{}, "patched"},
		{"stream", DemoFlags{Stream: true}, "streamed"},
		{"library", DemoFlags{Library: true}, "patched"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := log.SubTest(ctx, t)
			path := writeDemo(ctx, t.TempDir(), tc.flags)

			out, err := capture(ctx, &verifyVerb{}, path)
			assert.For(ctx, "verify").Critical().ThatError(err).Succeeded()
			assert.For(ctx, "verify output").ThatString(out).Equals(path + ": ok, " + tc.mode + "\n")

			out, err = capture(ctx, &verifyVerb{VerifyFlags{Scene: true}}, path)
			assert.For(ctx, "verify scene").Critical().ThatError(err).Succeeded()
			text := assert.For(ctx, "verify scene output").ThatString(out)
			text.HasPrefix(path + ": ok, " + tc.mode + ", ")
			text.Contains("Mesh")
		})
	}
}

func TestVerifyTruncated(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()
	path := writeDemo(ctx, dir, DemoFlags{})
	data, err := os.ReadFile(path)
	assert.For(ctx, "read").Critical().ThatError(err).Succeeded()
	broken := filepath.Join(dir, "broken.bksc")
	assert.For(ctx, "write").Critical().ThatError(os.WriteFile(broken, data[:len(data)/2], 0644)).Succeeded()

	out, err := capture(ctx, &verifyVerb{}, path, broken)
	assert.For(ctx, "err").ThatError(err).HasMessage("1 of 2 archives failed verification")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.For(ctx, "lines").Critical().ThatSlice(lines).IsLength(2)
	assert.For(ctx, "good").ThatString(lines[0]).Equals(path + ": ok, patched")
	assert.For(ctx, "broken").ThatString(lines[1]).HasPrefix(broken + ": ")
}

func TestDump(t *testing.T) {
	ctx := log.Testing(t)
	path := writeDemo(ctx, t.TempDir(), DemoFlags{})
	out, err := capture(ctx, &dumpVerb{defaultDumpFlags()}, path)
	assert.For(ctx, "dump").Critical().ThatError(err).Succeeded()
	text := assert.For(ctx, "output").ThatString(out)
	text.HasPrefix("# patched archive, version 1\n")
	text.Contains("(Perspective)")
	text.HasSuffix("}\n")
}

func TestList(t *testing.T) {
	ctx := log.Testing(t)
	path := writeDemo(ctx, t.TempDir(), DemoFlags{})
	out, err := capture(ctx, &listVerb{ListFlags{Where: `Kind == "Begin" && Type == "Mesh"`}}, path)
	assert.For(ctx, "list meshes").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "mesh lines").ThatInteger(strings.Count(out, "\n")).Equals(1)
	assert.For(ctx, "mesh").ThatString(out).Contains(`  Mesh "mesh" #`)

	out, err = capture(ctx, &listVerb{ListFlags{Where: `Kind == "Reference"`}}, path)
	assert.For(ctx, "list references").Critical().ThatError(err).Succeeded()
	refs := assert.For(ctx, "references").ThatString(out)
	refs.Contains("(resolved)")
	refs.DoesNotContain("(unresolved)")

	_, err = capture(ctx, &listVerb{ListFlags{Where: "Kind +"}}, path)
	assert.For(ctx, "bad filter").ThatError(err).Failed()
}

func TestDiff(t *testing.T) {
	ctx := log.Testing(t)
	a := writeDemo(ctx, t.TempDir(), DemoFlags{})
	b := writeDemo(ctx, t.TempDir(), DemoFlags{})
	flags := DiffFlags{DumpFlags: defaultDumpFlags(), Context: 3}
	out, err := capture(ctx, &diffVerb{flags}, a, b)
	assert.For(ctx, "diff same").Critical().ThatError(err).Succeeded()
	assert.For(ctx, "same").ThatString(out).Equals("Archives are identical\n")

	c := writeDemo(ctx, t.TempDir(), DemoFlags{Stream: true})
	out, err = capture(ctx, &diffVerb{flags}, a, c)
	assert.For(ctx, "diff changed").Critical().ThatError(err).Succeeded()
	text := assert.For(ctx, "changed").ThatString(out)
	text.Contains("- # patched archive, version 1\n")
	text.Contains("+ # streamed archive, version 1\n")
	text.Contains("+ # trailer, ")
}
