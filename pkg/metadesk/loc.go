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

package metadesk

import "strings"

// CodeLoc is a human-facing source position: a 1-based line, a 1-based,
// byte-counted column, and the file it is in.
type CodeLoc struct {
	Filename string
	Line     int
	Column   int
}

// CodeLocFromFileOffset scans base[0:offset] counting newlines to produce
// a CodeLoc.  Unlike the teacher's lexer, which maintains line/col
// incrementally as it advances (cheap, but only usable while that
// specific lexer is still running), this rescans from the start of the
// file every time: spec.md §4.5 requires resolving the location of an
// arbitrary already-parsed node, long after the lexer that produced it is
// gone.
func CodeLocFromFileOffset(filename, base string, offset int) CodeLoc {
	if offset > len(base) {
		offset = len(base)
	}
	if offset < 0 {
		offset = 0
	}
	prefix := base[:offset]
	line := 1 + strings.Count(prefix, "\n")
	col := offset - strings.LastIndexByte(prefix, '\n')
	return CodeLoc{Filename: filename, Line: line, Column: col}
}

// CodeLocFromNode walks up to node's root File node to recover the
// (filename, source) pair and resolves node's own offset within it.  If
// node has no File ancestor (e.g. it is a user-constructed List or
// Reference node), the zero CodeLoc is returned.
func CodeLocFromNode(node *Node) CodeLoc {
	root := RootFromNode(node)
	if root.IsNil() || root.Kind != NodeKindFile {
		return CodeLoc{}
	}
	return CodeLocFromFileOffset(root.String, root.fileSource, node.Offset)
}
