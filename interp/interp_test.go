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

package interp

import (
	"strings"
	"testing"
)

func src(s string) string {
	r := strings.NewReplacer("S", " ", "T", "\t", "L", "\n")
	return r.Replace(s)
}

func TestRunPushAndPrintNumber(t *testing.T) {
	out, err := Run(src("SSSTL"+"TLST"+"LLL"), "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "1" {
		t.Fatalf("got %q, want %q", out, "1")
	}
}

func TestRunSyntaxErrorPropagates(t *testing.T) {
	_, err := Run(src("TTL"), "")
	if err == nil {
		t.Fatal("expected a tokenize error")
	}
}

func TestRunRuntimeErrorPropagates(t *testing.T) {
	_, err := Run(src("SSSTL"), "")
	if err == nil {
		t.Fatal("expected a run error for a program missing halt")
	}
}

func TestDisassemble(t *testing.T) {
	out, err := Disassemble(src("SSSTL" + "LLL"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "push 1") || !strings.Contains(out, "halt") {
		t.Fatalf("Disassemble() = %q, want it to mention push 1 and halt", out)
	}
}
