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

package dump

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// Line is one line of a dump comparison.
type Line struct {
	Op   diffmatchpatch.Operation
	Text string
}

func (l Line) String() string {
	switch l.Op {
	case diffmatchpatch.DiffDelete:
		return "- " + l.Text
	case diffmatchpatch.DiffInsert:
		return "+ " + l.Text
	}
	return "  " + l.Text
}

// Compare dumps the archives a and b and returns their line by line
// difference. Colors in opts are ignored.
func Compare(ctx context.Context, a, b io.Reader, opts Options) ([]Line, error) {
	opts.Color = false
	text := func(in io.Reader, which string) (string, error) {
		buf := &bytes.Buffer{}
		if err := Write(ctx, buf, in, opts); err != nil {
			return "", errors.Wrap(err, which)
		}
		return buf.String(), nil
	}
	ta, err := text(a, "first archive")
	if err != nil {
		return nil, err
	}
	tb, err := text(b, "second archive")
	if err != nil {
		return nil, err
	}
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(ta, tb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	out := []Line{}
	for _, d := range diffs {
		for _, s := range strings.SplitAfter(d.Text, "\n") {
			if s == "" {
				continue
			}
			out = append(out, Line{Op: d.Type, Text: strings.TrimSuffix(s, "\n")})
		}
	}
	return out, nil
}

// Changed reports whether any line of a comparison differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

// WriteDiff writes the changed lines of a comparison to out, with around
// unchanged lines on each side of a change.
func WriteDiff(out io.Writer, lines []Line, around int, colored bool) error {
	del, ins := color.New(color.FgRed), color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := i - around; j <= i+around; j++ {
			if j >= 0 && j < len(lines) {
				keep[j] = true
			}
		}
	}
	skipped := false
	for i, l := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			if _, err := fmt.Fprintln(out, "..."); err != nil {
				return element.Errorf(archive.ErrIO, err, "writing diff")
			}
			skipped = false
		}
		s := l.String()
		switch l.Op {
		case diffmatchpatch.DiffDelete:
			s = del.Sprint(s)
		case diffmatchpatch.DiffInsert:
			s = ins.Sprint(s)
		}
		if _, err := fmt.Fprintln(out, s); err != nil {
			return element.Errorf(archive.ErrIO, err, "writing diff")
		}
	}
	return nil
}
