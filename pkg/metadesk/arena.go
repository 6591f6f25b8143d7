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

// arenaSlabSize is the number of Nodes allocated per slab.  Grounded in
// the slice-backed pooling technique other_examples/1453b643_boergens-
// gotypst__syntax-parser.go.go's MemoArena uses to cut down on
// allocations during heavy backtracking; here the pool additionally
// promises pointer stability across growth, which a bare append-growing
// slice cannot (see Arena.NewNode).
const arenaSlabSize = 256

// Arena is a bump allocator that owns every Node produced by a parse.
// Nodes are never freed individually - the whole Arena is dropped as a
// unit when the caller is done with the parse.  An Arena is not safe for
// concurrent use; each goroutine parsing independently must own its own
// Arena (spec.md §5).
//
// Arena only owns Node struct storage.  String bytes referenced by a
// Node's String/RawString are never copied: Go strings are immutable and
// slicing one does not copy its backing array, so the runtime keeps that
// array alive for as long as any Node (or the caller) holds a slice into
// it. The caller's source string must simply outlive the Arena's nodes,
// exactly as the teacher's *Statement.Argument aliases its file's input
// string rather than copying it.
type Arena struct {
	slabs    [][]Node
	nextID   int
}

// NewArena returns an empty Arena ready to allocate Nodes from.
func NewArena() *Arena {
	return &Arena{}
}

// NewNode allocates a zeroed Node from a, initializes its kind and
// content fields, and wires every tree/tag/sibling/reference link to the
// global sentinel.  It never returns nil.
func (a *Arena) NewNode(kind NodeKind, text, raw string, offset int) *Node {
	n := a.alloc()
	n.Kind = kind
	n.String = text
	n.RawString = raw
	n.StringHash = hashString(text)
	n.Offset = offset
	n.Parent = nilNode
	n.FirstChild = nilNode
	n.LastChild = nilNode
	n.Next = nilNode
	n.Prev = nilNode
	n.FirstTag = nilNode
	n.LastTag = nilNode
	n.RefTarget = nilNode
	return n
}

// alloc returns a pointer to a fresh, zero-valued Node from the current
// slab, growing the arena with a new slab if the current one is full.
// Because a slab, once allocated, is never regrown or copied, pointers
// returned by alloc remain valid for the Arena's lifetime.
func (a *Arena) alloc() *Node {
	if len(a.slabs) == 0 || len(a.slabs[len(a.slabs)-1]) == cap(a.slabs[len(a.slabs)-1]) {
		a.slabs = append(a.slabs, make([]Node, 0, arenaSlabSize))
	}
	last := &a.slabs[len(a.slabs)-1]
	*last = (*last)[:len(*last)+1]
	n := &(*last)[len(*last)-1]
	a.nextID++
	n.id = a.nextID
	return n
}

// CopyString returns a byte-for-byte independent copy of s.  It exists so
// callers who build node content from a scratch buffer (rather than
// slicing the original source, as the lexer and parser do) can detach
// the result from that buffer; it is not needed for Nodes produced by
// Parse, whose String/RawString always alias the source.
func (a *Arena) CopyString(s string) string {
	b := make([]byte, len(s))
	copy(b, s)
	return string(b)
}
