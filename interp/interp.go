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

// Package interp wires together the lexer and vm packages into the two
// operations a Whitespace source file supports: running it and
// disassembling it.
package interp

import (
	"github.com/pkg/errors"

	"github.com/dcw/whitespace/lexer"
	"github.com/dcw/whitespace/vm"
)

func tokenize(program string) (*lexer.Program, error) {
	prog, err := lexer.Tokenize(lexer.Sanitize([]byte(program)))
	if err != nil {
		return nil, errors.Wrap(err, "tokenize")
	}
	return prog, nil
}

// Run sanitizes and tokenizes program, then executes it against input,
// returning everything written by its output instructions. A lexing failure
// is returned as a wrapped *lexer.SyntaxError and a failure at run time as a
// wrapped *vm.RuntimeError; errors.As recovers either one.
func Run(program, input string) (string, error) {
	prog, err := tokenize(program)
	if err != nil {
		return "", err
	}
	out, err := vm.New(prog, input).Run()
	if err != nil {
		return out, errors.Wrap(err, "run")
	}
	return out, nil
}

// Disassemble sanitizes and tokenizes program, then renders its token
// sequence as mnemonic text, one instruction per line.
func Disassemble(program string) (string, error) {
	prog, err := tokenize(program)
	if err != nil {
		return "", err
	}
	return prog.Disassemble(), nil
}
