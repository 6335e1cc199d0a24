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
	"strconv"

	"github.com/google/subcommands"
	"github.com/pkg/errors"

	"github.com/dcw/whitespace/interp"
)

type runCmd struct {
	input       string
	interactive bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute a Whitespace source file" }
func (*runCmd) Usage() string {
	return `run [-input text] [-interactive] <file>:
Tokenize and execute the Whitespace program in file, writing its output to
stdout.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "input", "", "text fed to read instructions, with backslash escapes decoded")
	f.BoolVar(&c.interactive, "interactive", false, "read input from the controlling terminal in raw mode instead of -input")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "run: expected exactly one source file")
		return subcommands.ExitUsageError
	}
	src, err := ioutil.ReadFile(f.Arg(0))
	if err != nil {
		atExit(errors.Wrap(err, "read source"))
		return subcommands.ExitFailure
	}

	in := c.input
	if c.interactive {
		raw, tearDown, err := readRawTTY()
		if err != nil {
			atExit(errors.Wrap(err, "enter raw tty mode"))
			return subcommands.ExitFailure
		}
		if tearDown != nil {
			defer tearDown()
		}
		in = raw
	} else if s, err := strconv.Unquote(`"` + in + `"`); err == nil {
		in = s
	}

	out, runErr := interp.Run(string(src), in)
	if _, werr := fmt.Fprint(os.Stdout, out); werr != nil {
		atExit(errors.Wrap(werr, "write output"))
		return subcommands.ExitFailure
	}
	if runErr != nil {
		atExit(runErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
