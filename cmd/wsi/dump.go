// Copyright 2026 The Whitespace Authors.
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

package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/google/subcommands"
	"github.com/pkg/errors"

	"github.com/dcw/whitespace/interp"
)

type dumpCmd struct{}

func (*dumpCmd) Name() string     { return "dump" }
func (*dumpCmd) Synopsis() string { return "disassemble a Whitespace source file" }
func (*dumpCmd) Usage() string {
	return `dump <file>:
Tokenize the Whitespace program in file and print its mnemonic form to
stdout, one instruction per line.
`
}

func (*dumpCmd) SetFlags(*flag.FlagSet) {}

func (*dumpCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "dump: expected exactly one source file")
		return subcommands.ExitUsageError
	}
	src, err := ioutil.ReadFile(f.Arg(0))
	if err != nil {
		atExit(errors.Wrap(err, "read source"))
		return subcommands.ExitFailure
	}
	out, err := interp.Disassemble(string(src))
	if err != nil {
		atExit(err)
		return subcommands.ExitFailure
	}
	if _, werr := fmt.Fprint(os.Stdout, out); werr != nil {
		atExit(errors.Wrap(werr, "write output"))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
