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

// Node is the uniform tree/DOM entity every parsed or constructed
// metadesk entity is made of.  Where the teacher has one typed Go struct
// per YANG statement (Module, Leaf, Grouping, ...) reached through
// reflection and a `yang:"..."` struct tag, metadesk has exactly one
// shape for every node: children, tags, and cross-tree references all
// use the same doubly-linked-list links, so the traversal helpers below
// need no reflection at all.
type Node struct {
	// Tree relationship data.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Next       *Node
	Prev       *Node

	// Tag list.  Tags are a separate doubly-linked list: a tag's Parent
	// is the tagged node, but a tag never appears among that node's
	// FirstChild..LastChild (spec.md §3 invariant 2).
	FirstTag *Node
	LastTag  *Node

	Kind       NodeKind
	Flags      NodeFlags
	String     string
	RawString  string
	StringHash uint64

	PrevComment string
	NextComment string

	Offset int

	// RefTarget is only meaningful on NodeKindReference nodes.
	RefTarget *Node

	// id is a cheap, debug-only monotonic counter local to the owning
	// Arena, assigned by Arena.alloc. It carries no parsing semantics;
	// nothing else in the package reads it, and neither DebugString nor
	// Write includes it.
	id int

	// fileSource holds the complete source text a NodeKindFile node was
	// parsed from, so CodeLocFromNode can resolve any descendant's
	// offset without a package-level table (which would need locking
	// to stay safe under spec.md §5's "distinct arena per goroutine"
	// concurrency model). Meaningless on every other kind of node.
	fileSource string
}

// nilNode is the unique, immutable sentinel node (spec.md §3 invariant
// 3).  It is its own parent, sibling, and child; IsNil is true only for
// this node.  Every absent link in the tree resolves to it rather than
// to a Go nil pointer, so traversal code never needs a nil check.
var nilNode = newSentinel()

func newSentinel() *Node {
	n := &Node{Kind: NodeKindNil}
	n.Parent = n
	n.FirstChild = n
	n.LastChild = n
	n.Next = n
	n.Prev = n
	n.FirstTag = n
	n.LastTag = n
	n.RefTarget = n
	return n
}

// Nil returns the global sentinel node.
func Nil() *Node { return nilNode }

// IsNil reports whether n is the sentinel node (or a literal Go nil,
// which is treated the same way so callers that forget to initialize a
// *Node still fail safely).
func (n *Node) IsNil() bool { return n == nil || n == nilNode }

// PushChild appends child to parent's child list and sets child.Parent.
// It is a no-op if either node is the sentinel (spec.md §4.3).
func PushChild(parent, child *Node) {
	if parent.IsNil() || child.IsNil() {
		return
	}
	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nilNode
	if parent.LastChild.IsNil() {
		parent.FirstChild = child
	} else {
		parent.LastChild.Next = child
	}
	parent.LastChild = child
}

// PushTag appends tag to node's tag list and sets tag.Parent to node.
func PushTag(node, tag *Node) {
	if node.IsNil() || tag.IsNil() {
		return
	}
	tag.Parent = node
	tag.Prev = node.LastTag
	tag.Next = nilNode
	if node.LastTag.IsNil() {
		node.FirstTag = tag
	} else {
		node.LastTag.Next = tag
	}
	node.LastTag = tag
}

// stringMatches reports whether a and b match under flags, per the
// string-specific bits of MatchFlags (case sensitivity, slash
// insensitivity, and "sloppy" prefix matching).
func stringMatches(a, b string, flags MatchFlags) bool {
	if flags.Any(MatchSlashInsensitive) {
		a = strings.ReplaceAll(a, "\\", "/")
		b = strings.ReplaceAll(b, "\\", "/")
	}
	if flags.Any(MatchCaseInsensitive) {
		a = strings.ToLower(a)
		b = strings.ToLower(b)
	}
	if a == b {
		return true
	}
	if flags.Any(MatchRightSideSloppy) {
		return strings.HasPrefix(a, b) || strings.HasPrefix(b, a)
	}
	return false
}

// NodeFromString performs a linear scan over the sibling range
// [first, onePastLast) for a node whose String matches s under flags.
// onePastLast may be the sentinel, meaning "scan to the end of the
// list". MatchFindLast reverses the scan direction so the last match
// wins instead of the first.
func NodeFromString(first, onePastLast *Node, s string, flags MatchFlags) *Node {
	if flags.Any(MatchFindLast) {
		var found *Node = nilNode
		for n := first; n != onePastLast && !n.IsNil(); n = n.Next {
			if stringMatches(n.String, s, flags) {
				found = n
			}
		}
		return found
	}
	for n := first; n != onePastLast && !n.IsNil(); n = n.Next {
		if stringMatches(n.String, s, flags) {
			return n
		}
	}
	return nilNode
}

// NodeFromIndex returns the nth (0-based) node in [first, onePastLast),
// or the sentinel if n is out of range.
func NodeFromIndex(first, onePastLast *Node, n int) *Node {
	if n < 0 {
		return nilNode
	}
	i := 0
	for c := first; c != onePastLast && !c.IsNil(); c = c.Next {
		if i == n {
			return c
		}
		i++
	}
	return nilNode
}

// ChildFromString finds node's child matching name under flags.
func ChildFromString(node *Node, name string, flags MatchFlags) *Node {
	return NodeFromString(node.FirstChild, nilNode, name, flags)
}

// TagFromString finds node's tag matching name under flags.
func TagFromString(node *Node, name string, flags MatchFlags) *Node {
	return NodeFromString(node.FirstTag, nilNode, name, flags)
}

// ChildFromIndex returns node's nth (0-based) child.
func ChildFromIndex(node *Node, n int) *Node {
	return NodeFromIndex(node.FirstChild, nilNode, n)
}

// TagFromIndex returns node's nth (0-based) tag.
func TagFromIndex(node *Node, n int) *Node {
	return NodeFromIndex(node.FirstTag, nilNode, n)
}

// TagArgFromIndex returns the nth (0-based) argument of tag (i.e. the nth
// child of tag's argument set).
func TagArgFromIndex(tag *Node, n int) *Node {
	return NodeFromIndex(tag.FirstChild, nilNode, n)
}

// TagArgFromString finds tag's argument matching s under flags.
func TagArgFromString(tag *Node, s string, flags MatchFlags) *Node {
	return NodeFromString(tag.FirstChild, nilNode, s, flags)
}

// NodeHasTag reports whether node carries a tag named name.
func NodeHasTag(node *Node, name string, flags MatchFlags) bool {
	return !TagFromString(node, name, flags).IsNil()
}

// ChildCountFromNode counts node's children by walking the list.
func ChildCountFromNode(node *Node) int {
	return countList(node.FirstChild)
}

// TagCountFromNode counts node's tags by walking the list.
func TagCountFromNode(node *Node) int {
	return countList(node.FirstTag)
}

func countList(first *Node) int {
	n := 0
	for c := first; !c.IsNil(); c = c.Next {
		n++
	}
	return n
}

// RootFromNode walks Parent links until it reaches a File node or a node
// whose parent is the sentinel.
func RootFromNode(node *Node) *Node {
	n := node
	for !n.IsNil() && n.Kind != NodeKindFile && !n.Parent.IsNil() {
		n = n.Parent
	}
	return n
}
