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

package vm

import (
	"strings"
	"testing"

	"github.com/dcw/whitespace/lexer"
)

// src turns a mnemonic string of S/T/L characters into Whitespace source
// bytes, mirroring the helper in package lexer's own tests.
func src(s string) []byte {
	r := strings.NewReplacer("S", " ", "T", "\t", "L", "\n")
	return []byte(r.Replace(s))
}

func run(t *testing.T, program, input string) string {
	t.Helper()
	prog, err := lexer.Tokenize(lexer.Sanitize([]byte(program)))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	out, err := New(prog, input).Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return out
}

// E1: push 1, write integer, halt.
func TestPushAndPrintNumber(t *testing.T) {
	got := run(t, string(src("SSSTL"+"TLST"+"LLL")), "")
	if got != "1" {
		t.Fatalf("got %q, want %q", got, "1")
	}
}

// E2: push 73, write char, halt.
func TestPushAndPrintCharacter(t *testing.T) {
	got := run(t, string(src("SSSTSSTSSTL"+"TLSS"+"LLL")), "")
	if got != "I" {
		t.Fatalf("got %q, want %q", got, "I")
	}
}

// E3: 2 + 3, write integer, halt.
func TestAddition(t *testing.T) {
	got := run(t, string(src("SSSTSL"+"SSSTTL"+"TSSS"+"TLST"+"LLL")), "")
	if got != "5" {
		t.Fatalf("got %q, want %q", got, "5")
	}
}

// E4: 7 - 3 must be 4, not -4: operand order matters.
func TestSubtractionOperandOrder(t *testing.T) {
	got := run(t, string(src("SSSTTTL"+"SSSTTL"+"TSST"+"TLST"+"LLL")), "")
	if got != "4" {
		t.Fatalf("got %q, want %q", got, "4")
	}
}

// E6: read an integer with each supported base prefix, store, load, print.
func TestReadIntegerBasePrefixes(t *testing.T) {
	// push 0 (heap address); read integer into heap[0]; push 0; load; write
	// integer; halt.
	program := string(src("SSSL" + "TLTT" + "SSSL" + "TTT" + "TLST" + "LLL"))
	for _, in := range []string{"42\n", "0x2A\n", "052\n", "0b101010\n"} {
		if got := run(t, program, in); got != "42" {
			t.Fatalf("input %q: got %q, want %q", in, got, "42")
		}
	}
}

func TestUndefinedLabelIsRuntimeError(t *testing.T) {
	// jump to a label that's never marked, then halt (unreachable).
	program := string(src("LSL" + "S" + "L" + "LLL"))
	prog, err := lexer.Tokenize(lexer.Sanitize([]byte(program)))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	_, err = New(prog, "").Run()
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != UndefinedLabel {
		t.Fatalf("got %v, want a RuntimeError{Kind: UndefinedLabel}", err)
	}
}

// Property 4: for a terminating program whose every call is matched by a
// return, the call stack is empty at halt.
func TestCallReturnPairingEmptiesCallStack(t *testing.T) {
	// main: push 73; call A; halt.
	// A:    write char; return.
	program := string(src("SSSTSSTSSTL" + "LSTSL" + "LLL" + "LSSSL" + "TLSS" + "LTL"))
	prog, err := lexer.Tokenize(lexer.Sanitize([]byte(program)))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	inst := New(prog, "")
	out, err := inst.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "I" {
		t.Fatalf("got %q, want %q", out, "I")
	}
	if len(inst.calls) != 0 {
		t.Fatalf("call stack not empty at halt: %v", inst.calls)
	}
}

func TestDivModAreFloored(t *testing.T) {
	// -7 div 2 = -4, -7 mod 2 = 1, written back to back as "-41".
	prog, err := lexer.Tokenize(lexer.Sanitize([]byte(string(src("SSTTTTL" + "SSSTSL" + "TSTS" + "TLST" +
		"SSTTTTL" + "SSSTSL" + "TSTT" + "TLST" + "LLL")))))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	out, err := New(prog, "").Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "-41" {
		t.Fatalf("got %q, want %q", out, "-41")
	}
}

func TestDivideByZero(t *testing.T) {
	prog, err := lexer.Tokenize(lexer.Sanitize([]byte(string(src("SSSTL" + "SSSL" + "TSTS" + "LLL")))))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	_, err = New(prog, "").Run()
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != DivideByZero {
		t.Fatalf("got %v, want a RuntimeError{Kind: DivideByZero}", err)
	}
}

// TestStackManipulationOpcodes covers the four stack opcodes that a plain
// push/arithmetic/print program never exercises: copy, slide, swap and
// discard, including their underflow and invalid-index failure modes.
func TestStackManipulationOpcodes(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		wantOut  string
		wantErr  bool
		wantKind Kind
	}{
		{
			name:    "copy duplicates an element below the top",
			program: "SSSTSTSL" + "SSSTSTSSL" + "SSSTTTTSL" + "STSSTL" + "TLST" + "LLL",
			wantOut: "20",
		},
		{
			name:     "copy with a negative index is invalid",
			program:  "SSSTSTL" + "STSTTL" + "LLL",
			wantErr:  true,
			wantKind: InvalidIndex,
		},
		{
			name:     "copy deeper than the stack underflows",
			program:  "SSSTSTL" + "STSSTSTL" + "LLL",
			wantErr:  true,
			wantKind: StackUnderflow,
		},
		{
			name:    "slide removes a specific count below the top",
			program: "SSSTL" + "SSSTSL" + "SSSTTL" + "SSSTSSL" + "STLSTSL" + "TLST" + "TLST" + "LLL",
			wantOut: "41",
		},
		{
			name:    "slide saturates when the count is at least the depth",
			program: "SSSTL" + "SSSTSL" + "SSSTTL" + "STLSTTSSTSSL" + "TLST" + "LLL",
			wantOut: "3",
		},
		{
			name:    "swap exchanges the top two elements",
			program: "SSSTL" + "SSSTSL" + "SLT" + "TLST" + "TLST" + "LLL",
			wantOut: "12",
		},
		{
			name:     "swap needs two elements",
			program:  "SSSTL" + "SLT" + "LLL",
			wantErr:  true,
			wantKind: StackUnderflow,
		},
		{
			name:    "discard drops the top element",
			program: "SSSTL" + "SSSTSL" + "SLL" + "TLST" + "LLL",
			wantOut: "1",
		},
		{
			name:     "discard on an empty stack underflows",
			program:  "SLL" + "LLL",
			wantErr:  true,
			wantKind: StackUnderflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := lexer.Tokenize(lexer.Sanitize(src(tt.program)))
			if err != nil {
				t.Fatalf("tokenize: %v", err)
			}
			out, err := New(prog, "").Run()
			if tt.wantErr {
				rerr, ok := err.(*RuntimeError)
				if !ok || rerr.Kind != tt.wantKind {
					t.Fatalf("got %v, want a RuntimeError{Kind: %s}", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if out != tt.wantOut {
				t.Fatalf("got %q, want %q", out, tt.wantOut)
			}
		})
	}
}

// TestStoreThenLoadRoundTrip exercises OpStore directly, unlike
// TestReadIntegerBasePrefixes which only ever stores through read-integer.
func TestStoreThenLoadRoundTrip(t *testing.T) {
	// push 0 (address); push 42 (value); store; push 0; load; write integer; halt.
	program := string(src("SSSL" + "SSSTSTSTSL" + "TTS" + "SSSL" + "TTT" + "TLST" + "LLL"))
	got := run(t, program, "")
	if got != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}
}

func TestUnterminatedProgramIsRuntimeError(t *testing.T) {
	prog, err := lexer.Tokenize(lexer.Sanitize([]byte(string(src("SSSTL")))))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	_, err = New(prog, "").Run()
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != UnterminatedProgram {
		t.Fatalf("got %v, want a RuntimeError{Kind: UnterminatedProgram}", err)
	}
}
