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

// TokenKind classifies a single lexical token.  Unlike the single-byte
// "code" the teacher used for YANG's three-symbol grammar, TokenKind is a
// bitset: individual bits so TokenGroup values can be built by ORing kinds
// together, the same technique metadesk's own C headers use.
type TokenKind uint32

const (
	TokenIdentifier TokenKind = 1 << iota
	TokenNumericLiteral
	TokenStringLiteral
	TokenSymbol
	TokenReserved
	TokenComment
	TokenWhitespace
	TokenNewline
	TokenBrokenComment
	TokenBrokenStringLiteral
	TokenBadCharacter
)

func (k TokenKind) String() string {
	switch k {
	case TokenIdentifier:
		return "Identifier"
	case TokenNumericLiteral:
		return "NumericLiteral"
	case TokenStringLiteral:
		return "StringLiteral"
	case TokenSymbol:
		return "Symbol"
	case TokenReserved:
		return "Reserved"
	case TokenComment:
		return "Comment"
	case TokenWhitespace:
		return "Whitespace"
	case TokenNewline:
		return "Newline"
	case TokenBrokenComment:
		return "BrokenComment"
	case TokenBrokenStringLiteral:
		return "BrokenStringLiteral"
	case TokenBadCharacter:
		return "BadCharacter"
	default:
		return fmt.Sprintf("TokenKind(%#x)", uint32(k))
	}
}

// TokenGroup is a set of TokenKinds, used by skip helpers and by the
// parser's "is this a label token" checks.
type TokenGroup = TokenKind

const (
	TokenGroupComment    TokenGroup = TokenComment
	TokenGroupWhitespace TokenGroup = TokenWhitespace | TokenNewline
	TokenGroupIrregular  TokenGroup = TokenGroupComment | TokenGroupWhitespace
	TokenGroupRegular    TokenGroup = ^TokenGroupIrregular
	TokenGroupLabel      TokenGroup = TokenIdentifier | TokenNumericLiteral | TokenStringLiteral | TokenSymbol
	TokenGroupError      TokenGroup = TokenBrokenComment | TokenBrokenStringLiteral | TokenBadCharacter
)

// In reports whether k belongs to group g.
func (k TokenKind) In(g TokenGroup) bool { return k&g != 0 }

// Token is one lexical unit read from the input by tokenFrom.  Offset and
// Raw together locate the token's exact source span; Text is the token's
// semantically-cleaned content (e.g. a string literal with its quotes
// stripped).
type Token struct {
	Kind   TokenKind
	Raw    string // exact source span, including any quotes/delimiters
	Text   string // semantic content
	Offset int    // byte offset of Raw's first byte in the source
	Flags  NodeFlags
}

// Len returns the number of source bytes the token spans.
func (t Token) Len() int { return len(t.Raw) }
