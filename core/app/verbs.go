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
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/app/flags"
)

// Action is the behaviour of a verb. The exported fields of the value
// implementing it are bound as the verb's flags.
type Action interface {
	// Run performs the action with the parsed flags of the verb.
	Run(ctx context.Context, flags flag.FlagSet) error
}

// Verb is a command of the application. Verbs either have an Action or
// sub-verbs.
type Verb struct {
	Name       string    // The name of the command.
	ShortHelp  string    // Help for the purpose of the command.
	ShortUsage string    // Help for how to use the command.
	Action     Action    // The action for the command.
	Flags      flags.Set // The command line flags it accepts.
	verbs      []*Verb
	selected   *Verb
}

var (
	globalVerbs Verb
	fullHelp    bool
)

// Add adds a sub-verb to v, binding the flags of its action.
func (v *Verb) Add(child *Verb) {
	child.Flags.Raw.Init(child.Name, flag.ContinueOnError)
	child.Flags.Raw.SetOutput(io.Discard)
	if child.Action != nil {
		child.Flags.Bind("", child.Action, "")
	}
	for _, c := range v.verbs {
		if c.Name == child.Name {
			panic(fmt.Errorf("Duplicate verb name %s", child.Name))
		}
	}
	v.verbs = append(v.verbs, child)
}

// Filter returns the sub-verbs whose name starts with prefix. A verb named
// exactly prefix is the only match.
func (v *Verb) Filter(prefix string) (result []*Verb) {
	for _, child := range v.verbs {
		if child.Name == prefix {
			return []*Verb{child}
		}
		if strings.HasPrefix(child.Name, prefix) {
			result = append(result, child)
		}
	}
	return result
}

// Invoke runs the sub-verb named by the first of args with the rest.
// Unknown or ambiguous verbs print the usage and panic with UsageExit.
func (v *Verb) Invoke(ctx context.Context, args []string) error {
	if len(args) < 1 {
		Usage(ctx, "Must supply a verb to %s", v.Name)
	}
	verb := args[0]
	matches := v.Filter(verb)
	switch len(matches) {
	case 1:
		v.selected = matches[0]
		if err := v.selected.Flags.Parse(&fullHelp, args[1:]...); err != nil {
			Usage(ctx, "%v", err)
		}
		if fullHelp {
			usage(Stdout, "", true)
			panic(SuccessExit)
		}
		if v.selected.Action == nil {
			return v.selected.Invoke(ctx, v.selected.Flags.Args())
		}
		return v.selected.Action.Run(ctx, v.selected.Flags.Raw)
	case 0:
		if verb == "help" {
			usage(Stdout, "", len(args) > 1)
			panic(SuccessExit)
		}
		Usage(ctx, "Verb '%s' is unknown", verb)
	default:
		Usage(ctx, "Verb '%s' is ambiguous", verb)
	}
	return nil
}

// AddVerb adds a new verb to the application.
func AddVerb(v *Verb) {
	globalVerbs.Add(v)
}

// FilterVerbs returns the application verbs that match the prefix.
func FilterVerbs(prefix string) []*Verb {
	return globalVerbs.Filter(prefix)
}

// VerbMain is a main function that dispatches to the verb named on the
// command line.
func VerbMain(ctx context.Context) error {
	return globalVerbs.Invoke(ctx, globalVerbs.Flags.Args())
}

func prepareVerbs(f *AppFlags) {
	globalVerbs.Name = Name
	globalVerbs.ShortHelp = ShortHelp
	globalVerbs.selected = nil
	globalVerbs.Flags = *flags.NewSet(Name)
	globalVerbs.Flags.Bind("", f, "")
	fullHelp = false
}
