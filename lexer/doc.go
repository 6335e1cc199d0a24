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

// Package lexer turns Whitespace source text into a token sequence and a
// resolved label table.
//
// Only three bytes carry meaning in a Whitespace program: space, tab and
// line feed. Everything else is a comment and is discarded by Sanitize. The
// remaining S/T/L stream is then segmented by Tokenize into one Token per
// instruction other than mark, which leaves no token and only populates the
// label table: a 1- or 2-symbol prefix selects the instruction family
// (Stack, Arithmetic, Heap, I/O, Flow control), a further discriminator
// selects the opcode within that family, and some opcodes carry an integer
// or label immediate that is itself S/T/L-encoded and self-terminating.
//
// Tokenize builds the label table as it goes: a mark instruction records the
// index of the token that follows it, so that forward jumps resolve
// correctly once tokenization completes. Tokens and the label table are
// produced once and are immutable afterwards; see package vm for the
// machine that executes them.
package lexer
