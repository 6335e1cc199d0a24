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

// Package vm executes the token sequence produced by package lexer.
//
// An Instance owns a value stack, a sparse heap keyed by arbitrary-precision
// integers, a call stack of return addresses, an input cursor and an output
// accumulator. Run drives the program counter over the token sequence one
// token at a time until a halt instruction, a malformed program falling off
// the end, or a runtime error.
//
// All of an Instance's state is created fresh by New and is only ever used
// for a single Run; nothing is reused across runs, and nothing here is safe
// for concurrent use by multiple goroutines.
package vm
