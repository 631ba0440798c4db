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
	"fmt"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/app"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/dump"
)

type diffVerb struct{ DiffFlags }

func init() {
	verb := &diffVerb{DiffFlags{DumpFlags: defaultDumpFlags(), Context: 3}}
	app.AddVerb(&app.Verb{
		Name:       "diff",
		ShortHelp:  "Compares the element trees of two archives",
		ShortUsage: "<old archive> <new archive>",
		Action:     verb,
	})
}

func (verb *diffVerb) Run(ctx context.Context, flags flag.FlagSet) error {
	if flags.NArg() != 2 {
		app.Usage(ctx, "Exactly two archives expected, got %d", flags.NArg())
		return nil
	}
	opts, err := verb.options(ctx)
	if err != nil {
		return err
	}
	a, actx, err := openArchive(ctx, flags.Arg(0))
	if err != nil {
		return err
	}
	defer a.Close()
	b, _, err := openArchive(ctx, flags.Arg(1))
	if err != nil {
		return err
	}
	defer b.Close()
	lines, err := dump.Compare(actx, a, b, opts)
	if err != nil {
		return err
	}
	if !dump.Changed(lines) {
		fmt.Fprintln(app.Stdout, "Archives are identical")
		return nil
	}
	return dump.WriteDiff(app.Stdout, lines, verb.Context, opts.Color)
}
