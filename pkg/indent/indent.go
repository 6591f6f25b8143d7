// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package indent prefixes every line written to an underlying io.Writer
// with a fixed string. It is used by the debug printer to nest children
// under their parent without the parent needing to know how deep it is.
package indent

import (
	"bytes"
	"io"
)

// Writer indents every line of data written to it with prefix.
type Writer struct {
	w      io.Writer
	prefix []byte
	atBOL  bool
}

// NewWriter returns a Writer that writes to w, prefixing every line with
// prefix.
func NewWriter(w io.Writer, prefix string) *Writer {
	return &Writer{w: w, prefix: []byte(prefix), atBOL: true}
}

// Write implements io.Writer.  It assembles the fully-prefixed buffer for
// p and issues a single underlying Write, then maps however many bytes
// the underlying writer actually accepted back to the number of p's
// bytes (excluding any prefix bytes) that were flushed, so a short write
// is reported against the caller's input precisely rather than against
// the expanded, prefixed byte count.
func (iw *Writer) Write(p []byte) (n int, err error) {
	var buf bytes.Buffer

	// inputRun records one contiguous run of p's bytes (never
	// interrupted by a prefix) as the offset in buf where it starts and
	// how many bytes of p it covers.
	type inputRun struct {
		offset, length int
	}
	var runs []inputRun

	atBOL := iw.atBOL
	i := 0
	for i < len(p) {
		if atBOL {
			buf.Write(iw.prefix)
			atBOL = false
		}
		start := i
		runOffset := buf.Len()
		for i < len(p) {
			b := p[i]
			buf.WriteByte(b)
			i++
			if b == '\n' {
				atBOL = true
				break
			}
		}
		runs = append(runs, inputRun{offset: runOffset, length: i - start})
	}

	out := buf.Bytes()
	m, werr := iw.w.Write(out)
	if m > len(out) {
		m = len(out)
	}
	if m < 0 {
		m = 0
	}

	for _, r := range runs {
		if r.offset >= m {
			break
		}
		if r.offset+r.length <= m {
			n += r.length
		} else {
			n += m - r.offset
			break
		}
	}

	if m == len(out) {
		iw.atBOL = atBOL
	}

	return n, werr
}

// String returns in with every line prefixed by prefix.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

// Bytes returns in with every line prefixed by prefix.
func Bytes(prefix, in []byte) []byte {
	var buf bytes.Buffer
	w := NewWriter(&buf, string(prefix))
	w.Write(in)
	return buf.Bytes()
}
