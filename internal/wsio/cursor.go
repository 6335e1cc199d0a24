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

// Package wsio wraps a program's input string into a forward-only rune
// cursor, the way vm/io_helpers.go wraps an io.Reader into a runeReader for
// the Ngaro VM.
package wsio

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Cursor is a forward-only rune-at-a-time reader over a program's input
// string, used by read-character and read-integer instructions. The cursor
// never moves backward.
type Cursor struct {
	r *bufio.Reader
}

// NewCursor returns a Cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{r: bufio.NewReader(strings.NewReader(input))}
}

// ReadRune consumes and returns the next rune of input.
func (c *Cursor) ReadRune() (rune, error) {
	r, _, err := c.r.ReadRune()
	if err != nil {
		return 0, errors.Wrap(err, "input exhausted")
	}
	return r, nil
}

// PeekRunes returns up to n runes starting at the cursor without consuming
// them. It returns fewer than n runes at the end of input.
func (c *Cursor) PeekRunes(n int) []rune {
	b, _ := c.r.Peek(n * utf8.UTFMax)
	runes := make([]rune, 0, n)
	for pos := 0; len(runes) < n && pos < len(b); {
		r, size := utf8.DecodeRune(b[pos:])
		if size == 0 {
			break
		}
		runes = append(runes, r)
		pos += size
	}
	return runes
}

// Discard consumes n runes without returning them. It is used to skip a
// recognized base prefix ("0x", "0b" or a lone leading "0") before reading
// an integer literal's digits.
func (c *Cursor) Discard(n int) error {
	for k := 0; k < n; k++ {
		if _, err := c.ReadRune(); err != nil {
			return err
		}
	}
	return nil
}
