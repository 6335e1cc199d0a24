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

package lexer

import "math/big"

// Label is the raw S/T symbol sequence preceding a terminating line feed.
// Labels are compared by exact sequence equality, so Label is a plain string
// over the two-byte alphabet {'S','T'} and usable directly as a map key.
type Label string

// DecodeInt decodes a signed, arbitrary-precision integer literal starting
// at pos in sym: one sign symbol (space = non-negative, tab = negative)
// followed by magnitude bits (space = 0, tab = 1) most-significant first,
// terminated by a line feed. It returns the decoded value and the position
// immediately after the consumed terminator.
//
// The first symbol must not be a line feed; an empty sym slice or a literal
// missing its terminator is reported via the ok return being false.
func DecodeInt(sym []Symbol, pos int) (v *big.Int, next int, ok bool) {
	if pos >= len(sym) || sym[pos] == SymLF {
		return nil, pos, false
	}
	negative := sym[pos] == SymTab
	pos++

	mag := new(big.Int)
	for pos < len(sym) && sym[pos] != SymLF {
		mag.Lsh(mag, 1)
		if sym[pos] == SymTab {
			mag.SetBit(mag, 0, 1)
		}
		pos++
	}
	if pos >= len(sym) {
		return nil, pos, false
	}
	pos++ // consume terminating LF

	if negative {
		mag.Neg(mag)
	}
	return mag, pos, true
}

// DecodeLabel decodes a label literal: the run of space/tab symbols
// (including none) starting at pos, up to and including its terminating
// line feed. It returns the label text and the position immediately after
// the consumed terminator; ok is false if no terminator is found.
func DecodeLabel(sym []Symbol, pos int) (lbl Label, next int, ok bool) {
	start := pos
	for pos < len(sym) && sym[pos] != SymLF {
		pos++
	}
	if pos >= len(sym) {
		return "", pos, false
	}
	buf := make([]byte, pos-start)
	for i, s := range sym[start:pos] {
		if s == SymTab {
			buf[i] = 'T'
		} else {
			buf[i] = 'S'
		}
	}
	return Label(buf), pos + 1, true
}
