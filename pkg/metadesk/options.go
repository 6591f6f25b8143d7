// Copyright 2017 Google Inc.
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

// Options defines library-level tunables for parsing, following the
// teacher's pkg/yang/options.go pattern of a single exported struct
// consulted by the parser, set once by the embedding program.
type Options struct {
	// MaxErrors caps the number of Error/CatastrophicError messages a
	// single parse will accumulate before it gives up and stops
	// descending further into the input, the way the teacher's lexer
	// caps itself at 8 (pkg/yang/lex.go's maxErrors). 0 means
	// unlimited.
	MaxErrors int

	// TrackComments controls whether PrevComment/NextComment are
	// populated at all. Some callers parse large generated files where
	// comment association is pure overhead; set to false to skip it.
	TrackComments bool
}

// ParseOptions is consulted by every ParseWholeString/ParseOneNode call,
// exactly as the teacher's package-level yang.ParseOptions is consulted
// by every Parse call. It is not goroutine-safe to mutate concurrently
// with an in-flight parse.
var ParseOptions = Options{TrackComments: true}
