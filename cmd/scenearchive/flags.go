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

type (
	ReadFlags struct {
		MaxPayload uint64 `name:"max-payload" help:"_largest parameter payload accepted, in bytes (0 for the default)"`
	}
	DumpFlags struct {
		Names      []string `help:"YAML file naming integer parameter values, may be repeated"`
		Builtin    bool     `help:"name the parameters of the scene catalogue"`
		Color      string   `help:"highlight the output: auto, always or never"`
		Indent     string   `help:"_indentation of each nesting level"`
		MaxPayload uint64   `name:"max-payload" help:"_largest parameter payload accepted, in bytes (0 for the default)"`
	}
	VerifyFlags struct {
		ReadFlags
		Scene bool `help:"also reconstruct the scene catalogue objects"`
	}
	ListFlags struct {
		Where string `help:"only list objects matching this expression, e.g. 'Type == \"Mesh\" && Depth > 1'"`
	}
	DiffFlags struct {
		DumpFlags
		Context int `help:"unchanged lines shown around each change"`
	}
	DemoFlags struct {
		Stream  bool `help:"write without seeking, ending the archive with a trailer"`
		Library bool `help:"write the objects without a scene container"`
	}
)

func defaultDumpFlags() DumpFlags {
	return DumpFlags{Builtin: true, Color: "auto"}
}
