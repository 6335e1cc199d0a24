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

	"github.com/dcw/whitespace/lexer"
)

// Run drives the program counter over the token sequence until a halt
// instruction is reached, at which point it returns the accumulated output.
// Falling off the end of the token sequence without halting, or any
// operation whose preconditions are not met (insufficient stack depth, an
// unset heap address, a zero divisor, exhausted input, an undefined label,
// an empty call stack) is reported as a *RuntimeError.
func (i *Instance) Run() (string, error) {
	for i.pc < len(i.prog.Tokens) {
		tok := i.prog.Tokens[i.pc]
		halt, err := i.step(tok)
		if err != nil {
			return i.out.String(), err
		}
		if halt {
			return i.out.String(), nil
		}
	}
	return i.out.String(), runtimeErrorf(UnterminatedProgram, i.pc, "reached end of program without halt")
}

// step executes a single token. halt is true when the token was the halt
// instruction; the program counter has already been advanced (or set to a
// jump/call/return target) by the time step returns.
func (i *Instance) step(tok lexer.Token) (halt bool, err error) {
	switch tok.Family {
	case lexer.FamilyStack:
		err = i.stepStack(tok)
	case lexer.FamilyArith:
		err = i.stepArith(tok)
	case lexer.FamilyHeap:
		err = i.stepHeap(tok)
	case lexer.FamilyIO:
		err = i.stepIO(tok)
	case lexer.FamilyFlow:
		return i.stepFlow(tok)
	}
	if err != nil {
		return false, err
	}
	i.pc++
	return false, nil
}

func (i *Instance) stepStack(tok lexer.Token) error {
	switch tok.Op {
	case lexer.OpPush:
		i.push(new(big.Int).Set(tok.Int))
	case lexer.OpDup:
		v, err := i.top()
		if err != nil {
			return err
		}
		i.push(new(big.Int).Set(v))
	case lexer.OpSwap:
		if len(i.stack) < 2 {
			return runtimeErrorf(StackUnderflow, i.pc, "swap needs 2 elements, have %d", len(i.stack))
		}
		n := len(i.stack)
		i.stack[n-1], i.stack[n-2] = i.stack[n-2], i.stack[n-1]
	case lexer.OpDiscard:
		_, err := i.pop()
		return err
	case lexer.OpCopy:
		return i.stackCopy(tok.Int)
	case lexer.OpSlide:
		i.stackSlide(tok.Int)
	}
	return nil
}

func (i *Instance) stackCopy(n *big.Int) error {
	if n.Sign() < 0 {
		return runtimeErrorf(InvalidIndex, i.pc, "copy with negative index %s", n)
	}
	if !n.IsInt64() {
		return runtimeErrorf(StackUnderflow, i.pc, "copy index %s out of range", n)
	}
	idx := len(i.stack) - 1 - int(n.Int64())
	if idx < 0 || idx >= len(i.stack) {
		return runtimeErrorf(StackUnderflow, i.pc, "copy index %s out of range for depth %d", n, len(i.stack))
	}
	i.push(new(big.Int).Set(i.stack[idx]))
	return nil
}

func (i *Instance) stackSlide(n *big.Int) {
	depth := len(i.stack)
	if depth == 0 {
		return
	}
	// Default: negative N, or N >= depth, saturates to removing everything
	// below the top (equivalent to N = depth-1).
	remove := depth - 1
	if n.Sign() >= 0 && n.IsInt64() && n.Int64() < int64(depth) {
		remove = int(n.Int64())
	}
	top := i.stack[depth-1]
	i.stack = append(i.stack[:depth-1-remove], top)
}

func (i *Instance) stepArith(tok lexer.Token) error {
	b, err := i.pop()
	if err != nil {
		return err
	}
	a, err := i.pop()
	if err != nil {
		return err
	}
	switch tok.Op {
	case lexer.OpAdd:
		i.push(new(big.Int).Add(a, b))
	case lexer.OpSub:
		i.push(new(big.Int).Sub(a, b))
	case lexer.OpMul:
		i.push(new(big.Int).Mul(a, b))
	case lexer.OpDiv:
		if b.Sign() == 0 {
			return runtimeErrorf(DivideByZero, i.pc, "division by zero")
		}
		q, _ := floorDivMod(a, b)
		i.push(q)
	case lexer.OpMod:
		if b.Sign() == 0 {
			return runtimeErrorf(DivideByZero, i.pc, "modulo by zero")
		}
		_, r := floorDivMod(a, b)
		i.push(r)
	}
	return nil
}

func (i *Instance) stepHeap(tok lexer.Token) error {
	switch tok.Op {
	case lexer.OpStore:
		v, err := i.pop()
		if err != nil {
			return err
		}
		addr, err := i.pop()
		if err != nil {
			return err
		}
		i.heapStore(addr, v)
	case lexer.OpLoad:
		addr, err := i.pop()
		if err != nil {
			return err
		}
		v, err := i.heapLoad(addr)
		if err != nil {
			return err
		}
		i.push(new(big.Int).Set(v))
	}
	return nil
}

func (i *Instance) stepIO(tok lexer.Token) error {
	switch tok.Op {
	case lexer.OpWriteChar:
		v, err := i.pop()
		if err != nil {
			return err
		}
		i.writeChar(v)
	case lexer.OpWriteInt:
		v, err := i.pop()
		if err != nil {
			return err
		}
		i.writeInt(v)
	case lexer.OpReadChar:
		addr, err := i.pop()
		if err != nil {
			return err
		}
		v, err := i.readChar()
		if err != nil {
			return err
		}
		i.heapStore(addr, v)
	case lexer.OpReadInt:
		addr, err := i.pop()
		if err != nil {
			return err
		}
		v, err := i.readInt()
		if err != nil {
			return err
		}
		i.heapStore(addr, v)
	}
	return nil
}

func (i *Instance) stepFlow(tok lexer.Token) (halt bool, err error) {
	switch tok.Op {
	case lexer.OpCall:
		target, err := i.target(tok.Label)
		if err != nil {
			return false, err
		}
		i.rpush(i.pc + 1)
		i.pc = target
	case lexer.OpJump:
		target, err := i.target(tok.Label)
		if err != nil {
			return false, err
		}
		i.pc = target
	case lexer.OpJumpZero:
		v, err := i.pop()
		if err != nil {
			return false, err
		}
		if v.Sign() == 0 {
			target, err := i.target(tok.Label)
			if err != nil {
				return false, err
			}
			i.pc = target
		} else {
			i.pc++
		}
	case lexer.OpJumpNeg:
		v, err := i.pop()
		if err != nil {
			return false, err
		}
		if v.Sign() < 0 {
			target, err := i.target(tok.Label)
			if err != nil {
				return false, err
			}
			i.pc = target
		} else {
			i.pc++
		}
	case lexer.OpReturn:
		target, err := i.rpop()
		if err != nil {
			return false, err
		}
		i.pc = target
	case lexer.OpHalt:
		return true, nil
	}
	return false, nil
}
