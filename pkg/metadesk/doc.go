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

// Package metadesk parses a small, regular data-description language into
// a uniform tree of Nodes.
//
// A metadesk file is a sequence of elements.  An element is an optional
// run of tags, a label (an identifier, number, string, or symbol), and an
// optional set:
//
//	// a plain label
//	foo
//
//	// a tagged, labeled set
//	@max(10) bounds { 0, 10 }
//
//	// a labeled element: a becomes the parent of S32
//	a: S32
//
// At the lowest level, ParseWholeString returns a File node whose children
// are the top-level elements.  ParseOneNode parses a single element and
// reports how many bytes it consumed.  Both report structured diagnostics
// via a MessageList rather than panicking or returning a bare Go error;
// callers decide what MessageList.MaxKind constitutes success.
//
//	result := metadesk.ParseWholeString("in-memory", "foo: 123")
//	if result.Messages.MaxKind >= metadesk.MessageKindError {
//		// handle diagnostics
//	}
//	for c := result.Node.FirstChild; !c.IsNil(); c = c.Next {
//		// walk result.Node's children
//	}
package metadesk
