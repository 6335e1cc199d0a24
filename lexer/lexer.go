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

// tokenizer holds the cursor state used while segmenting a sanitized symbol
// stream into tokens. It is discarded once Tokenize returns.
type tokenizer struct {
	sym []Symbol
	pos int
	out []Token
}

// Tokenize segments a sanitized S/T/L stream into a token sequence and
// builds the accompanying label table. It fails with a *SyntaxError on a
// duplicate label definition or a malformed token (invalid
// prefix/discriminator, a literal missing its terminator, or an integer
// literal beginning with a line feed).
func Tokenize(sym []Symbol) (*Program, error) {
	t := &tokenizer{sym: sym}
	labels := make(map[Label]int)

	for t.pos < len(t.sym) {
		tok, labelDef, err := t.next()
		if err != nil {
			return nil, err
		}
		if labelDef {
			if _, dup := labels[tok.Label]; dup {
				return nil, syntaxErrorf(t.pos, "duplicate label %q", string(tok.Label))
			}
			labels[tok.Label] = len(t.out)
			continue // mark carries no runtime token
		}
		t.out = append(t.out, tok)
	}
	return &Program{Tokens: t.out, Labels: labels}, nil
}

// advance returns the symbol at pos and reports whether one was available,
// consuming it on success.
func (t *tokenizer) advance() (Symbol, bool) {
	if t.pos >= len(t.sym) {
		return 0, false
	}
	s := t.sym[t.pos]
	t.pos++
	return s, true
}

// next parses exactly one instruction starting at the tokenizer's current
// position. labelDef is true when the parsed instruction is a mark, whose
// Token.Label is the defined label and which the caller must not append to
// the token sequence.
func (t *tokenizer) next() (tok Token, labelDef bool, err error) {
	start := t.pos
	prefix, ok := t.advance()
	if !ok {
		return Token{}, false, syntaxErrorf(start, "unexpected end of program")
	}
	switch prefix {
	case SymSpace:
		return t.stackInstr(start)
	case SymTab:
		return t.tabPrefixedInstr(start)
	case SymLF:
		return t.flowInstr(start)
	}
	panic("unreachable")
}

func (t *tokenizer) tabPrefixedInstr(start int) (Token, bool, error) {
	s2, ok := t.advance()
	if !ok {
		return Token{}, false, syntaxErrorf(start, "truncated instruction")
	}
	switch s2 {
	case SymSpace:
		return t.arithInstr(start)
	case SymTab:
		return t.heapInstr(start)
	case SymLF:
		return t.ioInstr(start)
	}
	panic("unreachable")
}

func (t *tokenizer) stackInstr(start int) (Token, bool, error) {
	s1, ok := t.advance()
	if !ok {
		return Token{}, false, syntaxErrorf(start, "truncated stack instruction")
	}
	switch s1 {
	case SymSpace:
		n, ok := t.decodeInt(start)
		if !ok {
			return Token{}, false, syntaxErrorf(start, "malformed push literal")
		}
		return Token{Family: FamilyStack, Op: OpPush, Int: n}, false, nil
	case SymTab:
		s2, ok := t.advance()
		if !ok {
			return Token{}, false, syntaxErrorf(start, "truncated stack instruction")
		}
		switch s2 {
		case SymSpace:
			n, ok := t.decodeInt(start)
			if !ok {
				return Token{}, false, syntaxErrorf(start, "malformed copy literal")
			}
			return Token{Family: FamilyStack, Op: OpCopy, Int: n}, false, nil
		case SymLF:
			n, ok := t.decodeInt(start)
			if !ok {
				return Token{}, false, syntaxErrorf(start, "malformed slide literal")
			}
			return Token{Family: FamilyStack, Op: OpSlide, Int: n}, false, nil
		default:
			return Token{}, false, syntaxErrorf(start, "malformed stack instruction")
		}
	case SymLF:
		s2, ok := t.advance()
		if !ok {
			return Token{}, false, syntaxErrorf(start, "truncated stack instruction")
		}
		switch s2 {
		case SymSpace:
			return Token{Family: FamilyStack, Op: OpDup}, false, nil
		case SymTab:
			return Token{Family: FamilyStack, Op: OpSwap}, false, nil
		case SymLF:
			return Token{Family: FamilyStack, Op: OpDiscard}, false, nil
		}
	}
	panic("unreachable")
}

func (t *tokenizer) arithInstr(start int) (Token, bool, error) {
	s1, ok1 := t.advance()
	s2, ok2 := t.advance()
	if !ok1 || !ok2 {
		return Token{}, false, syntaxErrorf(start, "truncated arithmetic instruction")
	}
	var op Op
	switch {
	case s1 == SymSpace && s2 == SymSpace:
		op = OpAdd
	case s1 == SymSpace && s2 == SymTab:
		op = OpSub
	case s1 == SymSpace && s2 == SymLF:
		op = OpMul
	case s1 == SymTab && s2 == SymSpace:
		op = OpDiv
	case s1 == SymTab && s2 == SymTab:
		op = OpMod
	default:
		return Token{}, false, syntaxErrorf(start, "malformed arithmetic instruction")
	}
	return Token{Family: FamilyArith, Op: op}, false, nil
}

func (t *tokenizer) heapInstr(start int) (Token, bool, error) {
	s1, ok := t.advance()
	if !ok {
		return Token{}, false, syntaxErrorf(start, "truncated heap instruction")
	}
	switch s1 {
	case SymSpace:
		return Token{Family: FamilyHeap, Op: OpStore}, false, nil
	case SymTab:
		return Token{Family: FamilyHeap, Op: OpLoad}, false, nil
	default:
		return Token{}, false, syntaxErrorf(start, "malformed heap instruction")
	}
}

func (t *tokenizer) ioInstr(start int) (Token, bool, error) {
	s1, ok1 := t.advance()
	s2, ok2 := t.advance()
	if !ok1 || !ok2 {
		return Token{}, false, syntaxErrorf(start, "truncated I/O instruction")
	}
	var op Op
	switch {
	case s1 == SymSpace && s2 == SymSpace:
		op = OpWriteChar
	case s1 == SymSpace && s2 == SymTab:
		op = OpWriteInt
	case s1 == SymTab && s2 == SymSpace:
		op = OpReadChar
	case s1 == SymTab && s2 == SymTab:
		op = OpReadInt
	default:
		return Token{}, false, syntaxErrorf(start, "malformed I/O instruction")
	}
	return Token{Family: FamilyIO, Op: op}, false, nil
}

func (t *tokenizer) flowInstr(start int) (Token, bool, error) {
	s1, ok1 := t.advance()
	if !ok1 {
		return Token{}, false, syntaxErrorf(start, "truncated flow control instruction")
	}
	switch s1 {
	case SymSpace:
		s2, ok2 := t.advance()
		if !ok2 {
			return Token{}, false, syntaxErrorf(start, "truncated flow control instruction")
		}
		switch s2 {
		case SymSpace:
			lbl, ok := t.decodeLabel(start)
			if !ok {
				return Token{}, false, syntaxErrorf(start, "malformed label")
			}
			return Token{Family: FamilyFlow, Op: OpMark, Label: lbl}, true, nil
		case SymTab:
			lbl, ok := t.decodeLabel(start)
			if !ok {
				return Token{}, false, syntaxErrorf(start, "malformed label")
			}
			return Token{Family: FamilyFlow, Op: OpCall, Label: lbl}, false, nil
		case SymLF:
			lbl, ok := t.decodeLabel(start)
			if !ok {
				return Token{}, false, syntaxErrorf(start, "malformed label")
			}
			return Token{Family: FamilyFlow, Op: OpJump, Label: lbl}, false, nil
		}
	case SymTab:
		s2, ok2 := t.advance()
		if !ok2 {
			return Token{}, false, syntaxErrorf(start, "truncated flow control instruction")
		}
		switch s2 {
		case SymSpace:
			lbl, ok := t.decodeLabel(start)
			if !ok {
				return Token{}, false, syntaxErrorf(start, "malformed label")
			}
			return Token{Family: FamilyFlow, Op: OpJumpZero, Label: lbl}, false, nil
		case SymTab:
			lbl, ok := t.decodeLabel(start)
			if !ok {
				return Token{}, false, syntaxErrorf(start, "malformed label")
			}
			return Token{Family: FamilyFlow, Op: OpJumpNeg, Label: lbl}, false, nil
		case SymLF:
			return Token{Family: FamilyFlow, Op: OpReturn}, false, nil
		}
	case SymLF:
		s2, ok2 := t.advance()
		if !ok2 {
			return Token{}, false, syntaxErrorf(start, "truncated flow control instruction")
		}
		if s2 == SymLF {
			return Token{Family: FamilyFlow, Op: OpHalt}, false, nil
		}
		return Token{}, false, syntaxErrorf(start, "malformed flow control instruction")
	}
	return Token{}, false, syntaxErrorf(start, "malformed flow control instruction")
}

func (t *tokenizer) decodeInt(start int) (*big.Int, bool) {
	v, next, ok := DecodeInt(t.sym, t.pos)
	if !ok {
		return nil, false
	}
	t.pos = next
	_ = start
	return v, true
}

func (t *tokenizer) decodeLabel(start int) (Label, bool) {
	lbl, next, ok := DecodeLabel(t.sym, t.pos)
	if !ok {
		return "", false
	}
	t.pos = next
	_ = start
	return lbl, true
}
