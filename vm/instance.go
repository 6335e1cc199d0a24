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

import (
	"math/big"
	"strings"

	"github.com/dcw/whitespace/internal/wsio"
	"github.com/dcw/whitespace/lexer"
)

// Instance is one run of a Whitespace program: a value stack, a sparse
// heap, a call stack of return addresses, an input cursor and an output
// accumulator, all scoped to a single Run.
type Instance struct {
	prog  *lexer.Program
	pc    int
	stack []*big.Int
	heap  map[string]*big.Int
	calls []int
	in    *wsio.Cursor
	out   strings.Builder
}

// New creates an Instance ready to execute prog, consuming input as its
// read-character and read-integer source.
func New(prog *lexer.Program, input string) *Instance {
	return &Instance{
		prog: prog,
		heap: make(map[string]*big.Int),
		in:   wsio.NewCursor(input),
	}
}

// Depth returns the current value stack depth.
func (i *Instance) Depth() int { return len(i.stack) }

func (i *Instance) push(v *big.Int) {
	i.stack = append(i.stack, v)
}

func (i *Instance) pop() (*big.Int, error) {
	if len(i.stack) == 0 {
		return nil, runtimeErrorf(StackUnderflow, i.pc, "pop from empty stack")
	}
	v := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	return v, nil
}

func (i *Instance) top() (*big.Int, error) {
	if len(i.stack) == 0 {
		return nil, runtimeErrorf(StackUnderflow, i.pc, "peek on empty stack")
	}
	return i.stack[len(i.stack)-1], nil
}

func (i *Instance) rpush(idx int) {
	i.calls = append(i.calls, idx)
}

func (i *Instance) rpop() (int, error) {
	if len(i.calls) == 0 {
		return 0, runtimeErrorf(EmptyCallStack, i.pc, "return with no pending call")
	}
	idx := i.calls[len(i.calls)-1]
	i.calls = i.calls[:len(i.calls)-1]
	return idx, nil
}

func heapKey(addr *big.Int) string { return addr.String() }

func (i *Instance) heapLoad(addr *big.Int) (*big.Int, error) {
	v, ok := i.heap[heapKey(addr)]
	if !ok {
		return nil, runtimeErrorf(HeapMiss, i.pc, "load of unset address %s", addr)
	}
	return v, nil
}

func (i *Instance) heapStore(addr, v *big.Int) {
	i.heap[heapKey(addr)] = v
}

func (i *Instance) target(lbl lexer.Label) (int, error) {
	idx, ok := i.prog.Labels[lbl]
	if !ok {
		return 0, runtimeErrorf(UndefinedLabel, i.pc, "undefined label %q", string(lbl))
	}
	return idx, nil
}
