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

import "github.com/pkg/errors"

// SyntaxError reports a load-time defect in a Whitespace program: a
// duplicate label definition, a malformed prefix/discriminator sequence, or
// a literal missing its terminator.
type SyntaxError struct {
	Pos int // symbol offset in the sanitized stream
	Err error
}

func (e *SyntaxError) Error() string {
	return errors.Wrapf(e.Err, "syntax error at symbol %d", e.Pos).Error()
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxErrorf(pos int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Pos: pos, Err: errors.Errorf(format, args...)}
}
