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
	"context"
	"flag"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/app"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/dump"
)

type dumpVerb struct{ DumpFlags }

func init() {
	verb := &dumpVerb{defaultDumpFlags()}
	app.AddVerb(&app.Verb{
		Name:       "dump",
		ShortHelp:  "Prints the element tree of an archive",
		ShortUsage: "<archive>",
		Action:     verb,
	})
}

func (verb *dumpVerb) Run(ctx context.Context, flags flag.FlagSet) error {
	if flags.NArg() != 1 {
		app.Usage(ctx, "Exactly one archive expected, got %d", flags.NArg())
		return nil
	}
	opts, err := verb.options(ctx)
	if err != nil {
		return err
	}
	f, ctx, err := openArchive(ctx, flags.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()
	return dump.Write(ctx, app.Stdout, f, opts)
}
