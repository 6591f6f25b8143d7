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

import "testing"

func TestNilNodeIsSelfReferencing(t *testing.T) {
	n := Nil()
	if !n.IsNil() {
		t.Fatal("Nil() is not IsNil()")
	}
	if n.Parent != n || n.FirstChild != n || n.LastChild != n || n.Next != n || n.Prev != n {
		t.Error("sentinel tree links are not all self-referencing")
	}
	if n.FirstTag != n || n.LastTag != n || n.RefTarget != n {
		t.Error("sentinel tag/reference links are not all self-referencing")
	}
	var zero *Node
	if !zero.IsNil() {
		t.Error("literal nil *Node should be IsNil()")
	}
}

func TestPushChildOrdering(t *testing.T) {
	a := NewArena()
	parent := a.NewNode(NodeKindMain, "parent", "parent", 0)
	var kids []*Node
	for _, s := range []string{"a", "b", "c"} {
		c := a.NewNode(NodeKindMain, s, s, 0)
		PushChild(parent, c)
		kids = append(kids, c)
	}
	if ChildCountFromNode(parent) != 3 {
		t.Fatalf("ChildCountFromNode = %d, want 3", ChildCountFromNode(parent))
	}
	i := 0
	for c := parent.FirstChild; !c.IsNil(); c = c.Next {
		if c != kids[i] {
			t.Errorf("child %d = %v, want %v", i, c.String, kids[i].String)
		}
		if c.Parent != parent {
			t.Errorf("child %d has wrong parent", i)
		}
		i++
	}
	if parent.LastChild != kids[len(kids)-1] {
		t.Error("LastChild not updated to final pushed child")
	}
	if kids[0].Prev.IsNil() != true {
		t.Error("first child's Prev should be sentinel")
	}
	if kids[1].Prev != kids[0] || kids[2].Prev != kids[1] {
		t.Error("Prev links not wired correctly")
	}
}

func TestPushChildOnSentinelIsNoop(t *testing.T) {
	a := NewArena()
	c := a.NewNode(NodeKindMain, "x", "x", 0)
	PushChild(Nil(), c)
	if !c.Parent.IsNil() {
		t.Error("PushChild(Nil(), c) should leave c unparented")
	}
}

func TestChildFromStringAndIndex(t *testing.T) {
	a := NewArena()
	parent := a.NewNode(NodeKindMain, "parent", "parent", 0)
	for _, s := range []string{"Alpha", "beta", "gamma"} {
		PushChild(parent, a.NewNode(NodeKindMain, s, s, 0))
	}

	if got := ChildFromString(parent, "beta", 0); got.String != "beta" {
		t.Errorf("ChildFromString(beta) = %q", got.String)
	}
	if got := ChildFromString(parent, "ALPHA", MatchCaseInsensitive); got.String != "Alpha" {
		t.Errorf("ChildFromString(ALPHA, CaseInsensitive) = %q", got.String)
	}
	if got := ChildFromString(parent, "nope", 0); !got.IsNil() {
		t.Errorf("ChildFromString(nope) = %q, want sentinel", got.String)
	}
	if got := ChildFromIndex(parent, 1); got.String != "beta" {
		t.Errorf("ChildFromIndex(1) = %q, want beta", got.String)
	}
	if got := ChildFromIndex(parent, 99); !got.IsNil() {
		t.Errorf("ChildFromIndex(99) = %q, want sentinel", got.String)
	}
}

func TestNodeFromStringFindLast(t *testing.T) {
	a := NewArena()
	parent := a.NewNode(NodeKindMain, "parent", "parent", 0)
	for _, s := range []string{"dup", "other", "dup"} {
		PushChild(parent, a.NewNode(NodeKindMain, s, s, 0))
	}
	first := ChildFromString(parent, "dup", 0)
	last := ChildFromString(parent, "dup", MatchFindLast)
	if first == last {
		t.Fatal("MatchFindLast should find a different node than the default forward scan")
	}
	if first.Next.Next != last {
		t.Error("expected first and last dup to be the first and third children")
	}
}

func TestNodeHasTagAndTagAccessors(t *testing.T) {
	a := NewArena()
	node := a.NewNode(NodeKindMain, "node", "node", 0)
	tag := a.NewNode(NodeKindTag, "max", "max", 0)
	PushChild(tag, a.NewNode(NodeKindMain, "10", "10", 0))
	PushTag(node, tag)

	if !NodeHasTag(node, "max", 0) {
		t.Error("NodeHasTag(max) = false, want true")
	}
	if NodeHasTag(node, "min", 0) {
		t.Error("NodeHasTag(min) = true, want false")
	}
	if got := TagArgFromIndex(TagFromString(node, "max", 0), 0); got.String != "10" {
		t.Errorf("TagArgFromIndex(0) = %q, want 10", got.String)
	}
	if TagCountFromNode(node) != 1 {
		t.Errorf("TagCountFromNode = %d, want 1", TagCountFromNode(node))
	}
	// Tags never appear among a node's own children (spec invariant).
	if ChildCountFromNode(node) != 0 {
		t.Errorf("ChildCountFromNode = %d, want 0: tags must not be children", ChildCountFromNode(node))
	}
}

func TestRootFromNode(t *testing.T) {
	result := ParseWholeString("f.md", "b { c }")
	b := ChildFromString(result.Node, "b", 0)
	c := ChildFromString(b, "c", 0)
	if got := RootFromNode(c); got != result.Node {
		t.Errorf("RootFromNode(c) = %v, want file root", got)
	}
}
