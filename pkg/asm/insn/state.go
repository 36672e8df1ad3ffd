// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package insn

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrStackUnderflow is returned when popping from an empty stack.
var ErrStackUnderflow = errors.New("stack underflow")

// ErrDivisionByZero is returned when dividing by a zero register.
var ErrDivisionByZero = errors.New("division by zero")

// ErrDivisionOverflow is returned when a quotient does not fit in 64 bits.
var ErrDivisionOverflow = errors.New("division overflow")

// State captures the registers and stack of a machine executing a sequence of
// instructions.
type State struct {
	registers [NUM_REGISTERS]int64
	stack     []int64
	halted    bool
}

// Read returns the current value of a register.
func (p *State) Read(reg Register) int64 {
	return p.registers[reg]
}

// Write assigns a new value to a register.
func (p *State) Write(reg Register, value int64) {
	p.registers[reg] = value
}

// Push a value onto the stack.
func (p *State) Push(value int64) {
	p.stack = append(p.stack, value)
}

// Pop the most recently pushed value off the stack.
func (p *State) Pop() (int64, error) {
	var n = len(p.stack)
	//
	if n == 0 {
		return 0, ErrStackUnderflow
	}
	//
	value := p.stack[n-1]
	p.stack = p.stack[:n-1]
	//
	return value, nil
}

// Depth returns the number of values currently on the stack.
func (p *State) Depth() uint {
	return uint(len(p.stack))
}

// Halt signals that the routine has returned.
func (p *State) Halt() {
	p.halted = true
}

// Halted checks whether the routine has returned.
func (p *State) Halted() bool {
	return p.halted
}

var (
	two64  = new(big.Int).Lsh(big.NewInt(1), 64)
	minI64 = new(big.Int).Lsh(big.NewInt(-1), 63)
	maxI64 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 63), big.NewInt(1))
)

// Signed division of the 128-bit value hi:lo by a given divisor, as performed
// by idiv.  The quotient truncates toward zero, and the remainder has the sign
// of the dividend.
func divide(hi int64, lo int64, divisor int64) (int64, int64, error) {
	var quotient, remainder big.Int
	//
	if divisor == 0 {
		return 0, 0, ErrDivisionByZero
	}
	// dividend = hi * 2^64 + unsigned(lo)
	dividend := new(big.Int).Mul(big.NewInt(hi), two64)
	dividend.Add(dividend, new(big.Int).SetUint64(uint64(lo)))
	//
	quotient.QuoRem(dividend, big.NewInt(divisor), &remainder)
	//
	if quotient.Cmp(minI64) < 0 || quotient.Cmp(maxI64) > 0 {
		return 0, 0, ErrDivisionOverflow
	}
	//
	return quotient.Int64(), remainder.Int64(), nil
}
