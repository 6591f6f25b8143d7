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

import "fmt"

// MessageKind is the severity of a Message, ordered so that higher values
// are more severe.  This generalizes the teacher's binary "error was
// written to errout or it wasn't" into the four levels spec.md §3/§7
// require.
type MessageKind int

const (
	MessageKindNull MessageKind = iota
	MessageKindNote
	MessageKindWarning
	MessageKindError
	MessageKindCatastrophicError
)

func (k MessageKind) String() string {
	switch k {
	case MessageKindNull:
		return "null"
	case MessageKindNote:
		return "note"
	case MessageKindWarning:
		return "warning"
	case MessageKindError:
		return "error"
	case MessageKindCatastrophicError:
		return "fatal"
	default:
		return "unknown"
	}
}

// Message is one diagnostic, bound to the node that triggered it.
type Message struct {
	Next    *Message
	Kind    MessageKind
	Node    *Node
	Text    string
}

// MessageList is an ordered, singly-linked list of Messages.  MaxKind
// tracks the highest severity seen so far, the way the teacher's parser
// tracked only whether its errout buffer was non-empty
// (pkg/yang/parse.go's Parse); here callers can distinguish "only notes"
// from "a real error" without rescanning the list.
type MessageList struct {
	First, Last *Message
	MaxKind     MessageKind
	Count       int
}

// Push appends m to the end of l and updates MaxKind.  A nil m is a no-op
// so callers can push the result of a conditional construction directly.
func (l *MessageList) Push(m *Message) {
	if m == nil {
		return
	}
	m.Next = nil
	if l.Last == nil {
		l.First = m
	} else {
		l.Last.Next = m
	}
	l.Last = m
	l.Count++
	if m.Kind > l.MaxKind {
		l.MaxKind = m.Kind
	}
}

// Concat appends every message in other to l, in order, leaving other
// empty.
func (l *MessageList) Concat(other *MessageList) {
	if other == nil || other.First == nil {
		return
	}
	if l.Last == nil {
		l.First = other.First
	} else {
		l.Last.Next = other.First
	}
	l.Last = other.Last
	l.Count += other.Count
	if other.MaxKind > l.MaxKind {
		l.MaxKind = other.MaxKind
	}
	*other = MessageList{}
}

// makeNodeError builds a Message bound to node without linking it into any
// list; callers push it themselves (mirroring MD_MakeNodeError, which
// returns a detached message).
func makeNodeError(node *Node, kind MessageKind, text string) *Message {
	return &Message{Kind: kind, Node: node, Text: text}
}

// makeTokenError builds a Message bound to an ErrorMarker node positioned
// at tok's offset, the way lexical/grammar errors are reported per
// spec.md §7.
func makeTokenError(a *Arena, tok Token, kind MessageKind, text string) (*Message, *Node) {
	marker := a.NewNode(NodeKindErrorMarker, tok.Text, tok.Raw, tok.Offset)
	marker.Flags = tok.Flags
	return makeNodeError(marker, kind, text), marker
}

// FormatMessage renders a message the way spec.md §6 requires:
// FILE:LINE:COLUMN: KIND: MESSAGE.
func FormatMessage(loc CodeLoc, kind MessageKind, text string) string {
	if loc.Filename == "" {
		return fmt.Sprintf("%d:%d: %s: %s", loc.Line, loc.Column, kind, text)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", loc.Filename, loc.Line, loc.Column, kind, text)
}
