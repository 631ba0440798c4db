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
	"strings"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/app"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/dump"
)

type listVerb struct{ ListFlags }

func init() {
	verb := &listVerb{}
	app.AddVerb(&app.Verb{
		Name:       "list",
		ShortHelp:  "Lists the objects and references of an archive",
		ShortUsage: "<archive>",
		Action:     verb,
	})
}

func (verb *listVerb) Run(ctx context.Context, flags flag.FlagSet) error {
	if flags.NArg() != 1 {
		app.Usage(ctx, "Exactly one archive expected, got %d", flags.NArg())
		return nil
	}
	filter, err := dump.NewFilter(verb.Where)
	if err != nil {
		return err
	}
	f, ctx, err := openArchive(ctx, flags.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()
	objects, err := dump.Objects(ctx, f)
	if err != nil {
		return err
	}
	selected, err := filter.Select(objects)
	if err != nil {
		return err
	}
	log.D(ctx, "Listing %d of %d objects", len(selected), len(objects))
	for _, o := range selected {
		fmt.Fprintln(app.Stdout, describe(o))
	}
	return nil
}

func describe(o dump.Object) string {
	indent := strings.Repeat("  ", o.Depth)
	if o.Kind == "Reference" {
		state := "resolved"
		if !o.Resolved {
			state = "unresolved"
		}
		return fmt.Sprintf("%s%s %q -> #%d (%s)", indent, o.Type, o.Name, o.ID, state)
	}
	return fmt.Sprintf("%s%s %q #%d: %d params, %d bytes, %d children",
		indent, o.Type, o.Name, o.ID, o.Params, o.Bytes, o.Children)
}
