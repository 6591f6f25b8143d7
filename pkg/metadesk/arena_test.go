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

// TestArenaSlabStability allocates enough Nodes to force the Arena to grow
// past one slab, then verifies every previously returned pointer is still
// valid and unchanged - the property spec.md §5 depends on to let a Node
// tree hold direct *Node pointers instead of indices.
func TestArenaSlabStability(t *testing.T) {
	a := NewArena()
	n := arenaSlabSize*2 + 17
	nodes := make([]*Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = a.NewNode(NodeKindMain, string(rune('a'+i%26)), "", i)
	}
	for i, node := range nodes {
		if node.Offset != i {
			t.Fatalf("node %d: Offset = %d, want %d (pointer invalidated by growth?)", i, node.Offset, i)
		}
	}
	if len(a.slabs) < 3 {
		t.Fatalf("expected allocation to span at least 3 slabs, got %d", len(a.slabs))
	}
}

func TestArenaNewNodeWiresSentinels(t *testing.T) {
	a := NewArena()
	n := a.NewNode(NodeKindMain, "x", "x", 0)
	if !n.Parent.IsNil() || !n.FirstChild.IsNil() || !n.LastChild.IsNil() ||
		!n.Next.IsNil() || !n.Prev.IsNil() || !n.FirstTag.IsNil() || !n.LastTag.IsNil() || !n.RefTarget.IsNil() {
		t.Error("a freshly allocated node must have every link pointing at the sentinel")
	}
	if n.StringHash != hashString("x") {
		t.Error("NewNode did not set StringHash")
	}
}

func TestCopyStringIsIndependent(t *testing.T) {
	a := NewArena()
	buf := []byte("hello")
	s := a.CopyString(string(buf))
	buf[0] = 'H'
	if s != "hello" {
		t.Errorf("CopyString result mutated alongside source buffer: got %q", s)
	}
}
