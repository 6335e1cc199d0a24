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

import "math/big"

// writeChar appends the Unicode character with code point v to the output
// accumulator.
func (i *Instance) writeChar(v *big.Int) {
	i.out.WriteRune(rune(v.Int64()))
}

// writeInt appends the decimal text representation of v to the output
// accumulator.
func (i *Instance) writeInt(v *big.Int) {
	i.out.WriteString(v.String())
}

// readChar consumes the next character of input and returns its code point.
func (i *Instance) readChar() (*big.Int, error) {
	r, err := i.in.ReadRune()
	if err != nil {
		return nil, runtimeErrorf(InputExhausted, i.pc, "%v", err)
	}
	return big.NewInt(int64(r)), nil
}

// readInt parses one integer from the input stream, per the base-selection
// grammar of the instruction set: a leading "0x"/"0X" selects base 16, a
// leading "0b"/"0B" selects base 2, a lone leading '0' selects base 8,
// anything else is base 10. The digits run up to but excluding the next
// line feed, which is then consumed as the terminator.
func (i *Instance) readInt() (*big.Int, error) {
	base := 10
	switch peek := i.in.PeekRunes(2); {
	case len(peek) >= 2 && peek[0] == '0' && (peek[1] == 'x' || peek[1] == 'X'):
		base = 16
		if err := i.in.Discard(2); err != nil {
			return nil, runtimeErrorf(InputExhausted, i.pc, "%v", err)
		}
	case len(peek) >= 2 && peek[0] == '0' && (peek[1] == 'b' || peek[1] == 'B'):
		base = 2
		if err := i.in.Discard(2); err != nil {
			return nil, runtimeErrorf(InputExhausted, i.pc, "%v", err)
		}
	case len(peek) >= 1 && peek[0] == '0':
		base = 8
		if err := i.in.Discard(1); err != nil {
			return nil, runtimeErrorf(InputExhausted, i.pc, "%v", err)
		}
	}

	var text []rune
	for {
		r, err := i.in.ReadRune()
		if err != nil {
			return nil, runtimeErrorf(InputExhausted, i.pc, "unterminated integer literal: %v", err)
		}
		if r == '\n' {
			break
		}
		text = append(text, r)
	}

	v, ok := new(big.Int).SetString(string(text), base)
	if !ok {
		return nil, runtimeErrorf(InputMalformed, i.pc, "invalid base-%d digits %q", base, string(text))
	}
	return v, nil
}
