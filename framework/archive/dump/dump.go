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
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// DefaultIndent is the indentation of each nesting level.
const DefaultIndent = "  "

// Options control the textual dump.
type Options struct {
	// Names annotates integer parameters with symbolic names.
	Names Names
	// Color highlights the output with terminal escape sequences.
	Color bool
	// Indent replaces DefaultIndent when not empty.
	Indent string
	// MaxPayload overrides the decoder's payload limit when not zero.
	MaxPayload uint64
}

// Write replays the archive in as an indented tree to out.
//
// Structural problems are reported with the same error kinds as the archive
// reader, after the elements before them have been written.
func Write(ctx context.Context, out io.Writer, in io.Reader, opts Options) error {
	p := newPrinter(out, opts)
	if err := walk(ctx, in, opts.MaxPayload, true, p); err != nil {
		return err
	}
	return p.err
}

// palette holds the highlighting of each part of a line.
type palette struct {
	typ, id, field, value, name, comment, missing func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	c := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		typ:     c(color.FgCyan, color.Bold),
		id:      c(color.FgYellow),
		field:   c(color.FgGreen),
		value:   c(color.Reset),
		name:    c(color.FgMagenta),
		comment: c(color.Faint),
		missing: c(color.FgRed),
	}
}

type printer struct {
	out    io.Writer
	names  Names
	indent string
	pal    palette
	err    error
}

func newPrinter(out io.Writer, opts Options) *printer {
	indent := opts.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	return &printer{
		out:    out,
		names:  opts.Names,
		indent: indent,
		pal:    newPalette(opts.Color),
	}
}

func (p *printer) line(depth int, format string, args ...interface{}) error {
	if p.err != nil {
		return p.err
	}
	_, p.err = fmt.Fprintf(p.out, "%s%s\n", strings.Repeat(p.indent, depth), fmt.Sprintf(format, args...))
	if p.err != nil {
		p.err = element.Errorf(archive.ErrIO, p.err, "writing dump")
	}
	return p.err
}

func (p *printer) header(mode archive.Mode) {
	p.line(0, "%s", p.pal.comment(fmt.Sprintf("# %v archive, version %d", mode, archive.Version)))
}

func (p *printer) begin(h element.Header, depth int, parent string) error {
	return p.line(depth, "%s %s %s {", p.pal.typ(h.Type), strconv.Quote(h.Name), p.pal.id(fmt.Sprintf("#%d", h.ID)))
}

func (p *printer) end(begin element.Header, depth int) error {
	return p.line(depth, "}")
}

func (p *printer) parameter(h element.Header, depth int, owner string, data []byte) error {
	var text string
	if data == nil {
		text = fmt.Sprintf("<%d bytes>", h.Size)
	} else {
		text = element.Describe(h.Param, data)
	}
	text = p.pal.value(text)
	if s := p.symbols(owner, h, data); s != "" {
		text += " " + p.pal.name("("+s+")")
	}
	return p.line(depth, "%s: %v %s", p.pal.field(h.Name), h.Param, text)
}

// symbols returns the names of the integer values in data, or nothing if
// any of them is unnamed.
func (p *printer) symbols(owner string, h element.Header, data []byte) string {
	if p.names.Len() == 0 || data == nil {
		return ""
	}
	values, ok := element.Integers(h.Param, data)
	if !ok {
		return ""
	}
	names := make([]string, len(values))
	for i, v := range values {
		if names[i], ok = p.names.Lookup(owner, h.Name, v); !ok {
			return ""
		}
	}
	return strings.Join(names, ", ")
}

func (p *printer) reference(h element.Header, depth int, parent string, resolved bool) error {
	note := ""
	if !resolved {
		note = " " + p.pal.missing("(unresolved)")
	}
	return p.line(depth, "%s %s -> %s%s", p.pal.typ(h.Type), strconv.Quote(h.Name), p.pal.id(fmt.Sprintf("#%d", h.ID)), note)
}

func (p *printer) trailer(h element.Header) error {
	return p.line(0, "%s", p.pal.comment(fmt.Sprintf("# trailer, %d elements", h.Count)))
}
