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
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/app"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/scene"
)

type demoVerb struct{ DemoFlags }

func init() {
	verb := &demoVerb{}
	app.AddVerb(&app.Verb{
		Name:       "demo",
		ShortHelp:  "Writes a small example scene archive",
		ShortUsage: "<archive>",
		Action:     verb,
	})
}

func (verb *demoVerb) Run(ctx context.Context, flags flag.FlagSet) error {
	if flags.NArg() != 1 {
		app.Usage(ctx, "Exactly one output file expected, got %d", flags.NArg())
		return nil
	}
	path := flags.Arg(0)
	ctx = log.V{"archive": path}.Bind(ctx)
	f, err := os.Create(path)
	if err != nil {
		return log.Err(ctx, err, "Could not create archive")
	}
	defer f.Close()

	// A buffered writer cannot seek, so the archive gets a trailer.
	var out io.Writer = f
	var buf *bufio.Writer
	if verb.Stream {
		buf = bufio.NewWriter(f)
		out = buf
	}
	store := scene.Store
	if verb.Library {
		store = scene.StoreLibrary
	}
	if err := store(ctx, out, scene.Demo()); err != nil {
		return err
	}
	if buf != nil {
		if err := buf.Flush(); err != nil {
			return log.Err(ctx, err, "Could not write archive")
		}
	}
	fmt.Fprintf(app.Stdout, "Wrote %s\n", path)
	return f.Close()
}
