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
	"io"

	"github.com/kylelemons/godebug/pretty"

	"github.com/ottodesk/metadesk/pkg/indent"
)

// Write re-serializes n (recursively, including its tags and children) as
// metadesk source, the way the teacher's tree.go Write walks an Entry and
// its Dir map. It is not guaranteed to reproduce n's original RawString
// byte-for-byte - separators and whitespace are normalized and comments
// are dropped, while a string's quote style is kept - but
// re-parsing its output reproduces the same shape and content, which is
// what spec.md §8's round-trip property actually requires.
func Write(w io.Writer, n *Node) {
	if n.IsNil() {
		return
	}
	switch n.Kind {
	case NodeKindFile:
		for c := n.FirstChild; !c.IsNil(); c = c.Next {
			Write(w, c)
			fmt.Fprintln(w)
		}
		return
	case NodeKindList:
		for _, t := range ListTargets(n) {
			Write(w, t)
			fmt.Fprintln(w)
		}
		return
	}

	for t := n.FirstTag; !t.IsNil(); t = t.Next {
		fmt.Fprintf(w, "@%s", t.String)
		if !t.FirstChild.IsNil() {
			fmt.Fprint(w, "(")
			writeChildren(w, t, ", ")
			fmt.Fprint(w, ")")
		}
		fmt.Fprint(w, " ")
	}

	if n.String != "" {
		fmt.Fprint(w, quoteIfNeeded(n))
	}

	switch {
	case n.Flags.Has(NodeFlagsParenPair):
		if n.String != "" {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, "(")
		writeChildren(w, n, ", ")
		fmt.Fprint(w, ")")
	case n.Flags.Has(NodeFlagsBracketPair):
		if n.String != "" {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, "[")
		writeChildren(w, n, ", ")
		fmt.Fprint(w, "]")
	case n.Flags.Has(NodeFlagsBracePair):
		if n.String != "" {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintln(w, "{")
		iw := indent.NewWriter(w, "  ")
		for c := n.FirstChild; !c.IsNil(); c = c.Next {
			Write(iw, c)
			fmt.Fprintln(iw, ";")
		}
		fmt.Fprint(w, "}")
	case !n.FirstChild.IsNil():
		// No complete delimiter pair but a child exists. In a tree parsed
		// without errors this is the "label: element" form (spec.md §4.2),
		// the single production that gives a node a child without wrapping
		// it in a set. A set ended by a mismatched closer or by end of
		// input has only its opener flag and also reaches this case, which
		// writes just its first child.
		fmt.Fprint(w, ": ")
		Write(w, n.FirstChild)
	}
}

func writeChildren(w io.Writer, n *Node, sep string) {
	for c := n.FirstChild; !c.IsNil(); c = c.Next {
		if c != n.FirstChild {
			fmt.Fprint(w, sep)
		}
		Write(w, c)
	}
}

// quoteIfNeeded renders n's label, adding quotes back if n was lexed as a
// string literal (its text alone, unquoted, may not round-trip through the
// lexer otherwise - e.g. it could contain whitespace or a reserved byte).
func quoteIfNeeded(n *Node) string {
	if !n.Flags.Any(NodeFlagStringLiteral) {
		return n.String
	}
	q := byte('"')
	switch {
	case n.Flags.Any(NodeFlagStringSingleQuote):
		q = '\''
	case n.Flags.Any(NodeFlagStringTick):
		q = '`'
	}
	quote := string(q)
	if n.Flags.Any(NodeFlagStringTriplet) {
		quote = quote + quote + quote
	}
	return quote + n.String + quote
}

// DebugString renders n's struct fields (not its reconstructed source) for
// use in test failure output, via kylelemons/godebug/pretty the way the
// rest of the corpus's go-cmp-based tests diff expected-vs-actual trees.
func DebugString(n *Node) string {
	return pretty.Sprint(debugView(n))
}

type debugNode struct {
	Kind     string
	String   string
	Flags    NodeFlags
	Tags     []*debugNode
	Children []*debugNode
}

func debugView(n *Node) *debugNode {
	if n.IsNil() {
		return nil
	}
	d := &debugNode{Kind: n.Kind.String(), String: n.String, Flags: n.Flags}
	for t := n.FirstTag; !t.IsNil(); t = t.Next {
		d.Tags = append(d.Tags, debugView(t))
	}
	for c := n.FirstChild; !c.IsNil(); c = c.Next {
		d.Children = append(d.Children, debugView(c))
	}
	return d
}
