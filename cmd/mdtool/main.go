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

// Program mdtool parses metadesk files, reports diagnostics, and prints the
// resulting tree.
//
// Usage: mdtool [--max-errors N] [--quiet] [FILE ...]
//
// Every FILE is parsed into its own File node and aggregated into one
// Collection. If no FILE is given, standard input is parsed under the name
// "<STDIN>". Diagnostics are written to standard error in
// FILE:LINE:COLUMN: KIND: MESSAGE form, and the tree is then written to
// standard output unless --quiet is given. mdtool exits 1 if any file
// produced a message of Error severity or worse, with or without --quiet.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt"

	"github.com/ottodesk/metadesk/pkg/metadesk"
)

var stop = os.Exit

func main() {
	var help bool
	var quiet bool
	var maxErrors int
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.BoolVarLong(&quiet, "quiet", 'q', "suppress the tree dump; only report diagnostics and exit status")
	getopt.IntVarLong(&maxErrors, "max-errors", 0, "stop a file's parse after N errors (0 = unlimited)", "N")
	getopt.SetParameters("[FILE ...]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(0)
	}

	metadesk.ParseOptions.MaxErrors = maxErrors

	files := getopt.Args()
	coll := metadesk.NewCollection()

	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
		}
		coll.AddString("<STDIN>", string(data))
	}

	for _, name := range files {
		if _, err := coll.AddFile(name); err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
		}
	}

	worst := metadesk.MessageKindNull
	for m := coll.Messages.First; m != nil; m = m.Next {
		loc := metadesk.CodeLocFromNode(m.Node)
		fmt.Fprintln(os.Stderr, metadesk.FormatMessage(loc, m.Kind, m.Text))
		if m.Kind > worst {
			worst = m.Kind
		}
	}

	if !quiet {
		for _, f := range coll.Files() {
			metadesk.Write(os.Stdout, f)
		}
	}

	if worst >= metadesk.MessageKindError {
		stop(1)
	}
}
