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

package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/core/data/endian"
	"github.com/GPUOpen-LibrariesAndSDKs/RadeonProRender-Baikal-sub001/framework/archive/element"
)

// Version is the archive format version written and accepted.
const Version int32 = 1

var (
	// Magic marks a completely written archive.
	Magic = [4]byte{'B', 'K', 'S', 'C'}
	// Sentinel is the header of an archive that is still being written, or
	// whose writer never finished.
	Sentinel = [4]byte{'B', 'A', 'D', '0'}
	// StreamMagic marks an archive written to an unseekable sink. It is only
	// complete if it ends with a Trailer element carrying Magic.
	StreamMagic = [4]byte{'B', 'K', 'S', 'T'}
)

// HeaderSize is the size in bytes of the archive header.
const HeaderSize = 8

// Mode is how an archive was finished.
type Mode int

const (
	// Patched archives had their header rewritten to Magic.
	Patched Mode = iota + 1
	// Streamed archives end with a Trailer element.
	Streamed
)

func (m Mode) String() string {
	switch m {
	case Patched:
		return "patched"
	case Streamed:
		return "streamed"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ReadHeader reads and validates the archive header from r.
// Unfinished archives, foreign files and other format versions are all
// reported as ErrCorruptOrIncompatible.
func ReadHeader(r io.Reader) (Mode, error) {
	var raw [HeaderSize]byte
	if n, err := io.ReadFull(r, raw[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, element.Errorf(ErrCorruptOrIncompatible, err, "header truncated at %d bytes", n)
		}
		return 0, element.Errorf(ErrIO, err, "reading header")
	}
	var mode Mode
	switch magic := raw[:4]; {
	case bytes.Equal(magic, Magic[:]):
		mode = Patched
	case bytes.Equal(magic, StreamMagic[:]):
		mode = Streamed
	case bytes.Equal(magic, Sentinel[:]):
		return 0, element.Errorf(ErrCorruptOrIncompatible, nil, "archive was never finished")
	default:
		return 0, element.Errorf(ErrCorruptOrIncompatible, nil, "unknown magic %q", magic)
	}
	br := endian.Reader(bytes.NewReader(raw[4:]), element.ByteOrder)
	if v := br.Int32(); v != Version {
		return 0, element.Errorf(ErrCorruptOrIncompatible, nil, "version %d, expected %d", v, Version)
	}
	return mode, nil
}

// writeHeader writes magic and the format version.
func writeHeader(w io.Writer, magic [4]byte) error {
	bw := endian.Writer(w, element.ByteOrder)
	bw.Data(magic[:])
	bw.Int32(Version)
	if err := bw.Error(); err != nil {
		return element.Errorf(ErrIO, err, "writing header")
	}
	return nil
}
