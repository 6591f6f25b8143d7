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

func TestMessageListPushTracksMaxKind(t *testing.T) {
	var l MessageList
	l.Push(makeNodeError(Nil(), MessageKindNote, "n1"))
	if l.MaxKind != MessageKindNote {
		t.Fatalf("MaxKind = %v, want Note", l.MaxKind)
	}
	l.Push(makeNodeError(Nil(), MessageKindWarning, "w1"))
	if l.MaxKind != MessageKindWarning {
		t.Fatalf("MaxKind = %v, want Warning", l.MaxKind)
	}
	l.Push(makeNodeError(Nil(), MessageKindNote, "n2"))
	if l.MaxKind != MessageKindWarning {
		t.Fatalf("MaxKind regressed to %v after pushing a lower-severity message", l.MaxKind)
	}
	if l.Count != 3 {
		t.Errorf("Count = %d, want 3", l.Count)
	}
	var texts []string
	for m := l.First; m != nil; m = m.Next {
		texts = append(texts, m.Text)
	}
	want := []string{"n1", "w1", "n2"}
	for i, w := range want {
		if texts[i] != w {
			t.Errorf("message %d = %q, want %q", i, texts[i], w)
		}
	}
}

func TestMessageListPushNilIsNoop(t *testing.T) {
	var l MessageList
	l.Push(nil)
	if l.Count != 0 || l.First != nil {
		t.Error("Push(nil) should not modify the list")
	}
}

func TestMessageListConcat(t *testing.T) {
	var a, b MessageList
	a.Push(makeNodeError(Nil(), MessageKindNote, "a1"))
	b.Push(makeNodeError(Nil(), MessageKindError, "b1"))
	b.Push(makeNodeError(Nil(), MessageKindNote, "b2"))

	a.Concat(&b)
	if a.Count != 3 {
		t.Fatalf("Count after Concat = %d, want 3", a.Count)
	}
	if a.MaxKind != MessageKindError {
		t.Errorf("MaxKind after Concat = %v, want Error", a.MaxKind)
	}
	if b.Count != 0 || b.First != nil {
		t.Error("Concat should leave the source list empty")
	}
	var texts []string
	for m := a.First; m != nil; m = m.Next {
		texts = append(texts, m.Text)
	}
	want := []string{"a1", "b1", "b2"}
	for i, w := range want {
		if texts[i] != w {
			t.Errorf("message %d = %q, want %q", i, texts[i], w)
		}
	}
}

func TestFormatMessage(t *testing.T) {
	loc := CodeLoc{Filename: "f.md", Line: 3, Column: 5}
	got := FormatMessage(loc, MessageKindError, "boom")
	want := "f.md:3:5: error: boom"
	if got != want {
		t.Errorf("FormatMessage = %q, want %q", got, want)
	}

	noFile := FormatMessage(CodeLoc{Line: 1, Column: 1}, MessageKindWarning, "hmm")
	if noFile != "1:1: warning: hmm" {
		t.Errorf("FormatMessage with no filename = %q", noFile)
	}
}
