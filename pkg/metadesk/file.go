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

import (
	"fmt"
	"os"
)

// This file adapts the teacher's Modules/findFile machinery
// (pkg/yang/modules.go, pkg/yang/file.go) from "read a named YANG module,
// resolving imports across a search Path" to spec.md §4.6's simpler need:
// load any number of independently-arena'd files and aggregate their
// top-level elements into one searchable Collection, via Reference nodes
// rather than copying.

// readFile is swappable in tests, exactly as the teacher's own readFile var
// lets pkg/yang/file_test.go stub the filesystem.
var readFile = os.ReadFile

// Collection aggregates the File roots of any number of separately parsed
// inputs. Because each File lives in its own Arena, Collection cannot store
// them as ordinary children (that would require them to share one Arena);
// instead it is itself a NodeKindList whose children are Reference nodes
// pointing at each File root, so ListTargets/NodeFromString-style lookups
// work uniformly across every loaded file without copying any tree.
type Collection struct {
	arena    *Arena
	list     *Node
	Messages MessageList
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	a := NewArena()
	return &Collection{arena: a, list: a.MakeList()}
}

// AddString parses contents under the given filename and adds the result to
// the Collection, returning its (possibly error-decorated) File node.
func (c *Collection) AddString(filename, contents string) *Node {
	result := ParseWholeString(filename, contents)
	c.Messages.Concat(&result.Messages)
	c.arena.PushNewReference(c.list, result.Node)
	return result.Node
}

// AddFile reads name from disk and adds it to the Collection the way AddString
// does, returning an error only for an I/O failure - parse errors are
// reported through c.Messages the same as any other file, never by a Go
// error return, keeping AddFile's contract consistent with
// ParseWholeString's "never aborts outright" rule.
func (c *Collection) AddFile(name string) (*Node, error) {
	data, err := readFile(name)
	if err != nil {
		return nilNode, fmt.Errorf("metadesk: %w", err)
	}
	return c.AddString(name, string(data)), nil
}

// Files returns the File root of every input added to c, in the order they
// were added.
func (c *Collection) Files() []*Node {
	return ListTargets(c.list)
}

// FileByName returns the File root named name, or the sentinel if none
// matches.
func (c *Collection) FileByName(name string) *Node {
	for _, f := range c.Files() {
		if f.String == name {
			return f
		}
	}
	return nilNode
}

// TopLevel returns every top-level element across every file in c, in the
// order the files were added and elements appear within each file - the
// Collection-wide equivalent of a single File node's child list.
func (c *Collection) TopLevel() []*Node {
	var out []*Node
	for _, f := range c.Files() {
		for ch := f.FirstChild; !ch.IsNil(); ch = ch.Next {
			out = append(out, ch)
		}
	}
	return out
}

// TopLevelByName returns the first top-level element named name across every
// file in c, searching files in the order they were added.
func (c *Collection) TopLevelByName(name string, flags MatchFlags) *Node {
	for _, f := range c.Files() {
		if n := ChildFromString(f, name, flags); !n.IsNil() {
			return n
		}
	}
	return nilNode
}
