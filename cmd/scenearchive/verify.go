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
	"io"
	"sort"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/app"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/dump"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/scene"
)

type verifyVerb struct{ VerifyFlags }

func init() {
	verb := &verifyVerb{}
	app.AddVerb(&app.Verb{
		Name:       "verify",
		ShortHelp:  "Checks that archives are complete and well formed",
		ShortUsage: "<archive>...",
		Action:     verb,
	})
}

func (verb *verifyVerb) Run(ctx context.Context, flags flag.FlagSet) error {
	if flags.NArg() < 1 {
		app.Usage(ctx, "At least one archive expected")
		return nil
	}
	failed := 0
	for _, path := range flags.Args() {
		if err := verb.verify(ctx, path); err != nil {
			fmt.Fprintf(app.Stdout, "%s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d archives failed verification", failed, flags.NArg())
	}
	return nil
}

func (verb *verifyVerb) verify(ctx context.Context, path string) error {
	f, ctx, err := openArchive(ctx, path)
	if err != nil {
		return err
	}
	defer f.Close()
	mode, err := archive.ReadHeader(f)
	if err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if !verb.Scene {
		err := dump.Write(ctx, io.Discard, f, dump.Options{MaxPayload: verb.MaxPayload})
		if err != nil {
			return err
		}
		fmt.Fprintf(app.Stdout, "%s: ok, %v\n", path, mode)
		return nil
	}
	_, c, err := scene.LoadLibrary(ctx, f, verb.options()...)
	if err != nil {
		return err
	}
	types := make([]string, 0, len(c))
	for typ := range c {
		types = append(types, typ)
	}
	sort.Strings(types)
	fmt.Fprintf(app.Stdout, "%s: ok, %v", path, mode)
	for _, typ := range types {
		fmt.Fprintf(app.Stdout, ", %d %s", len(c[typ]), typ)
	}
	fmt.Fprintln(app.Stdout)
	return nil
}
