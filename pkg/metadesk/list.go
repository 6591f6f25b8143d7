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

// MakeList allocates an empty NodeKindList node from a.  User code grows
// it with PushNewReference to aggregate trees parsed independently (in
// separate arenas, even) without copying them - see Collection in
// file.go, which is this mechanism applied to loading multiple files.
func (a *Arena) MakeList() *Node {
	return a.NewNode(NodeKindList, "", "", 0)
}

// PushNewReference allocates a NodeKindReference node wrapping target and
// appends it as a child of list.  Dereferencing it (via RefTarget, or by
// iterating with ListTargets) yields target without ever copying the
// tree target belongs to.
func (a *Arena) PushNewReference(list, target *Node) *Node {
	ref := a.NewNode(NodeKindReference, target.String, target.RawString, target.Offset)
	ref.RefTarget = target
	PushChild(list, ref)
	return ref
}

// ListTargets returns the dereferenced targets of every Reference child
// of list, in order, transparently following the reference links the way
// spec.md §4.6 requires of list iteration.
func ListTargets(list *Node) []*Node {
	var out []*Node
	for c := list.FirstChild; !c.IsNil(); c = c.Next {
		if c.Kind == NodeKindReference && !c.RefTarget.IsNil() {
			out = append(out, c.RefTarget)
		} else {
			out = append(out, c)
		}
	}
	return out
}
