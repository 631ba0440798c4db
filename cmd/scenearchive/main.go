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

// The scenearchive command inspects and compares scene archives.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/app"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/dump"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/scene"
)

func main() {
	app.ShortHelp = "scenearchive inspects, verifies and compares scene archives."
	app.Version = app.VersionSpec{Major: 1, Minor: 0, Point: -1}
	app.Run(app.VerbMain)
}

// openArchive opens the archive at path, binding the path to the returned
// context.
func openArchive(ctx context.Context, path string) (*os.File, context.Context, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, ctx, log.Err(ctx, err, "Could not find archive")
	}
	ctx = log.V{"archive": abs}.Bind(ctx)
	f, err := os.Open(abs)
	if err != nil {
		return nil, ctx, log.Err(ctx, err, "Could not open archive")
	}
	return f, ctx, nil
}

// useColor resolves a color mode for the application output.
func useColor(ctx context.Context, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	case "auto", "":
		f, ok := app.Stdout.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
	app.Usage(ctx, "Unknown color mode %q, expected auto, always or never", mode)
	return false
}

// options builds the dump options from the flags.
func (f DumpFlags) options(ctx context.Context) (dump.Options, error) {
	names := dump.NewNames()
	if f.Builtin {
		names = scene.Names()
	}
	for _, path := range f.Names {
		n, err := dump.LoadNames(path)
		if err != nil {
			return dump.Options{}, err
		}
		names = names.With(n)
	}
	log.D(ctx, "Using %d parameter names", names.Len())
	return dump.Options{
		Names:      names,
		Color:      useColor(ctx, f.Color),
		Indent:     f.Indent,
		MaxPayload: f.MaxPayload,
	}, nil
}

func (f ReadFlags) options() []archive.Option {
	if f.MaxPayload == 0 {
		return nil
	}
	return []archive.Option{archive.WithMaxPayload(f.MaxPayload)}
}
