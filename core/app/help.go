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

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
)

// Usage prints message followed by the usage of the application and the
// selected verbs, then panics with UsageExit.
func Usage(ctx context.Context, message string, args ...interface{}) {
	log.D(ctx, "Usage: "+message, args...)
	usage(Stderr, fmt.Sprintf(message, args...), false)
	panic(UsageExit)
}

func usage(out io.Writer, message string, verbose bool) {
	if message != "" {
		fmt.Fprintf(out, "\n%s\n\n", message)
	}
	verbShortHelp(out, &globalVerbs)
	fmt.Fprint(out, "Usage:")
	verbUsage(out, &globalVerbs, verbose)
	verbHelp(out, &globalVerbs, verbose)
	fmt.Fprint(out, UsageFooter)
}

func verbShortHelp(out io.Writer, v *Verb) {
	if v.ShortHelp != "" {
		fmt.Fprintf(out, "%s: %s\n", v.Name, v.ShortHelp)
	}
	if v.selected != nil {
		verbShortHelp(out, v.selected)
	}
}

func verbUsage(out io.Writer, v *Verb, verbose bool) {
	fmt.Fprintf(out, " %s", v.Name)
	if v.Flags.HasVisibleFlags(verbose) {
		fmt.Fprintf(out, " [%s-flags]", v.Name)
	}
	switch {
	case v.selected != nil:
		verbUsage(out, v.selected, verbose)
	case v.ShortUsage != "":
		fmt.Fprintf(out, " %s\n", v.ShortUsage)
	case len(v.verbs) > 0:
		fmt.Fprint(out, " verb [args]\n")
	default:
		fmt.Fprintln(out)
	}
}

func verbHelp(out io.Writer, v *Verb, verbose bool) {
	if v.Flags.HasVisibleFlags(verbose) {
		fmt.Fprintf(out, "%s-flags:\n%s\n", v.Name, v.Flags.Usage(verbose))
	}
	if v.selected != nil {
		verbHelp(out, v.selected, verbose)
		return
	}
	if len(v.verbs) == 0 {
		return
	}
	fmt.Fprintf(out, "%s verbs:\n", v.Name)
	longest := 0
	for _, child := range v.verbs {
		if longest < len(child.Name) {
			longest = len(child.Name)
		}
	}
	for _, child := range v.verbs {
		fmt.Fprintf(out, "    %-*s - %s\n", longest, child.Name, child.ShortHelp)
	}
}
