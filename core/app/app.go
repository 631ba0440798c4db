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

// Package app provides the entry point and verb dispatch of command line
// tools.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/log"
)

// ExitCode is the type for named return values from the application main
// entry point.
type ExitCode int

const (
	// SuccessExit is the exit code for successful exit.
	SuccessExit ExitCode = iota
	// FatalExit is the exit code if the main task failed or something logged
	// a fatal message that stops the process.
	FatalExit
	// UsageExit is the exit code if the usage function was invoked.
	UsageExit
)

var (
	// Name is the full name of the application.
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// UsageFooter is printed at the bottom of the usage text.
	UsageFooter = ""
	// Version holds the version specification for the application.
	// If valid a command line option to report it will be added automatically.
	Version = VersionSpec{Major: -1}
	// ExitFuncForTesting can be set to change the behaviour when the
	// application exits. It defaults to os.Exit.
	ExitFuncForTesting = os.Exit
	// Stdout and Stderr are the outputs of the application.
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// VersionSpec is the version of the application.
type VersionSpec struct {
	// Major version, the version structure is invalid if <0.
	Major int
	// Minor version, not used if <0.
	Minor int
	// Point version, not used if <0.
	Point int
	// The build identifier, not used if an empty string.
	Build string
}

// IsValid reports whether the version has been set.
func (v VersionSpec) IsValid() bool {
	return v.Major >= 0
}

// Format implements fmt.Formatter.
func (v VersionSpec) Format(f fmt.State, c rune) {
	fmt.Fprint(f, v.Major)
	if v.Minor >= 0 {
		fmt.Fprint(f, ".", v.Minor)
	}
	if v.Point >= 0 {
		fmt.Fprint(f, ".", v.Point)
	}
	if v.Build != "" {
		fmt.Fprint(f, ":", v.Build)
	}
}

// LogFlags are the logging flags common to all applications.
type LogFlags struct {
	Level log.Severity `help:"the minimum severity of messages to log"`
	File  string       `help:"_write the log to this file instead of stderr"`
}

// AppFlags are the flags common to all applications.
type AppFlags struct {
	Log     LogFlags
	Version bool `help:"print the version and exit"`
}

// Run parses the command line, sets up logging and runs main. The process
// exits with FatalExit if main fails.
func Run(main func(ctx context.Context) error) {
	ExitFuncForTesting(int(run(os.Args[1:], main)))
}

func run(args []string, main func(ctx context.Context) error) (code ExitCode) {
	defer func() {
		switch cause := recover().(type) {
		case nil:
		case ExitCode:
			code = cause
		case log.Stop:
			code = FatalExit
		default:
			panic(cause)
		}
	}()
	flags := &AppFlags{}
	ctx := log.Put(context.Background(), log.New(Stderr, log.Info))
	prepareVerbs(flags)
	if err := globalVerbs.Flags.Parse(&fullHelp, args...); err != nil {
		Usage(ctx, "%v", err)
	}
	if flags.Version {
		fmt.Fprint(Stdout, Name, " version ", Version, "\n")
		return SuccessExit
	}

	out := Stderr
	if flags.Log.File != "" {
		f, err := os.Create(flags.Log.File)
		if err != nil {
			log.E(ctx, "Failed to create log file %v: %v", flags.Log.File, err)
			return FatalExit
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, flags.Log.Level)
	defer logger.Sync()
	ctx = log.Put(ctx, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if err := main(ctx); err != nil {
		log.F(ctx, false, "Main failed\nError: %v", err)
		return FatalExit
	}
	return SuccessExit
}
