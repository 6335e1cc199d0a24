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

import (
	"bytes"
	"math/big"
	"strconv"
)

// Family identifies the instruction family an opcode belongs to.
type Family uint8

const (
	FamilyStack Family = iota
	FamilyArith
	FamilyHeap
	FamilyIO
	FamilyFlow
)

// Op identifies a specific opcode within its Family.
type Op uint8

const (
	// Stack family.
	OpPush Op = iota
	OpCopy
	OpSlide
	OpDup
	OpSwap
	OpDiscard

	// Arithmetic family.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod

	// Heap family.
	OpStore
	OpLoad

	// I/O family.
	OpWriteChar
	OpWriteInt
	OpReadChar
	OpReadInt

	// Flow control family.
	OpMark
	OpCall
	OpJump
	OpJumpZero
	OpJumpNeg
	OpReturn
	OpHalt
)

var mnemonics = [...]string{
	OpPush:      "push",
	OpCopy:      "copy",
	OpSlide:     "slide",
	OpDup:       "dup",
	OpSwap:      "swap",
	OpDiscard:   "discard",
	OpAdd:       "add",
	OpSub:       "sub",
	OpMul:       "mul",
	OpDiv:       "div",
	OpMod:       "mod",
	OpStore:     "store",
	OpLoad:      "load",
	OpWriteChar: "writechar",
	OpWriteInt:  "writeint",
	OpReadChar:  "readchar",
	OpReadInt:   "readint",
	OpMark:      "mark",
	OpCall:      "call",
	OpJump:      "jump",
	OpJumpZero:  "jz",
	OpJumpNeg:   "jn",
	OpReturn:    "ret",
	OpHalt:      "halt",
}

func (op Op) String() string {
	if int(op) < len(mnemonics) && mnemonics[op] != "" {
		return mnemonics[op]
	}
	return "?"
}

// Token is a single fully-parsed Whitespace instruction: its family, its
// opcode, and its immediate operand if it has one. At most one of Int or
// Label is meaningful, depending on Op; HasIntArg and HasLabelArg report
// which.
type Token struct {
	Family Family
	Op     Op
	Int    *big.Int
	Label  Label
}

// HasIntArg reports whether Op carries an integer immediate.
func (op Op) HasIntArg() bool {
	switch op {
	case OpPush, OpCopy, OpSlide:
		return true
	default:
		return false
	}
}

// HasLabelArg reports whether Op carries a label immediate.
func (op Op) HasLabelArg() bool {
	switch op {
	case OpMark, OpCall, OpJump, OpJumpZero, OpJumpNeg:
		return true
	default:
		return false
	}
}

// Program is the result of Tokenize: an immutable token sequence and its
// completed label table, mapping each mark's label to the index of the
// token immediately following it.
type Program struct {
	Tokens []Token
	Labels map[Label]int
}

// Disassemble renders the program as one mnemonic-and-operand line per
// token, in token order. It is a debugging aid, not part of the execution
// contract.
func (p *Program) Disassemble() string {
	var b bytes.Buffer
	for i, tok := range p.Tokens {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('\t')
		b.WriteString(tok.Op.String())
		switch {
		case tok.Op.HasIntArg():
			b.WriteByte(' ')
			b.WriteString(tok.Int.String())
		case tok.Op.HasLabelArg():
			b.WriteByte(' ')
			b.WriteString(string(tok.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
