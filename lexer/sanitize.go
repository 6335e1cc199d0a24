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

// Symbol is one of the three lexically significant bytes of a Whitespace
// program.
type Symbol byte

const (
	SymSpace Symbol = iota
	SymTab
	SymLF
)

func (s Symbol) String() string {
	switch s {
	case SymSpace:
		return "S"
	case SymTab:
		return "T"
	case SymLF:
		return "L"
	default:
		return "?"
	}
}

// Sanitize strips every byte of src that is not a space, tab or line feed,
// returning the surviving bytes in order as Symbols. All other bytes are
// comments; Sanitize does no structural validation of the result.
func Sanitize(src []byte) []Symbol {
	out := make([]Symbol, 0, len(src))
	for _, b := range src {
		switch b {
		case ' ':
			out = append(out, SymSpace)
		case '\t':
			out = append(out, SymTab)
		case '\n':
			out = append(out, SymLF)
		}
	}
	return out
}
