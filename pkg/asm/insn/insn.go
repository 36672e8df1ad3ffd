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
	"fmt"
)

// Register identifies one of the machine registers used by generated code.
type Register uint

// RAX is the accumulator, which holds the in-progress result.
const RAX Register = 0

// RDX holds the upper half of the dividend for a division.
const RDX Register = 1

// RDI is the secondary register, which holds the right operand.
const RDI Register = 2

// NUM_REGISTERS determines the number of registers.
const NUM_REGISTERS = 3

var registerNames = [NUM_REGISTERS]string{"rax", "rdx", "rdi"}

func (r Register) String() string {
	return "%" + registerNames[r]
}

// LookupRegister finds the register with a given name (without the leading
// "%"), or returns false if no such register exists.
func LookupRegister(name string) (Register, bool) {
	for i, n := range registerNames {
		if n == name {
			return Register(i), true
		}
	}
	//
	return 0, false
}

// Instruction provides an abstract notion of a line of assembly, which is
// either a directive, a label or a machine instruction.
type Instruction interface {
	// Execute this instruction on a given machine state.  Directives and labels
	// have no effect.
	Execute(state *State) error
	// String returns the text of this instruction, as it appears in an assembly
	// file.
	String() string
}

// ============================================================================
// Directives & Labels
// ============================================================================

// Global declares a symbol as visible to the linker.
type Global struct {
	Symbol string
}

// Execute implementation for Instruction interface.
func (p *Global) Execute(state *State) error {
	return nil
}

func (p *Global) String() string {
	return fmt.Sprintf("    .globl %s", p.Symbol)
}

// Label marks a position in the instruction sequence.
type Label struct {
	Name string
}

// Execute implementation for Instruction interface.
func (p *Label) Execute(state *State) error {
	return nil
}

func (p *Label) String() string {
	return fmt.Sprintf("%s:", p.Name)
}

// ============================================================================
// Data movement
// ============================================================================

// Mov loads an immediate value into a register.
type Mov struct {
	Value  int64
	Target Register
}

// Execute implementation for Instruction interface.
func (p *Mov) Execute(state *State) error {
	state.Write(p.Target, p.Value)
	return nil
}

func (p *Mov) String() string {
	return fmt.Sprintf("    mov $%d, %s", p.Value, p.Target)
}

// Push saves a register onto the stack.
type Push struct {
	Source Register
}

// Execute implementation for Instruction interface.
func (p *Push) Execute(state *State) error {
	state.Push(state.Read(p.Source))
	return nil
}

func (p *Push) String() string {
	return fmt.Sprintf("    push %s", p.Source)
}

// Pop restores a register from the stack.
type Pop struct {
	Target Register
}

// Execute implementation for Instruction interface.
func (p *Pop) Execute(state *State) error {
	value, err := state.Pop()
	if err != nil {
		return err
	}
	//
	state.Write(p.Target, value)
	//
	return nil
}

func (p *Pop) String() string {
	return fmt.Sprintf("    pop %s", p.Target)
}

// ============================================================================
// Arithmetic
// ============================================================================

// Add computes target += source.
type Add struct {
	Source Register
	Target Register
}

// Execute implementation for Instruction interface.
func (p *Add) Execute(state *State) error {
	state.Write(p.Target, state.Read(p.Target)+state.Read(p.Source))
	return nil
}

func (p *Add) String() string {
	return fmt.Sprintf("    add %s, %s", p.Source, p.Target)
}

// Sub computes target -= source.
type Sub struct {
	Source Register
	Target Register
}

// Execute implementation for Instruction interface.
func (p *Sub) Execute(state *State) error {
	state.Write(p.Target, state.Read(p.Target)-state.Read(p.Source))
	return nil
}

func (p *Sub) String() string {
	return fmt.Sprintf("    sub %s, %s", p.Source, p.Target)
}

// Mul computes target *= source (signed, keeping the lower 64 bits).
type Mul struct {
	Source Register
	Target Register
}

// Execute implementation for Instruction interface.
func (p *Mul) Execute(state *State) error {
	state.Write(p.Target, state.Read(p.Target)*state.Read(p.Source))
	return nil
}

func (p *Mul) String() string {
	return fmt.Sprintf("    imul %s, %s", p.Source, p.Target)
}

// Cqo sign-extends the accumulator into rdx, so that rdx:rax holds the
// accumulator as a 128-bit dividend.
type Cqo struct{}

// Execute implementation for Instruction interface.
func (p *Cqo) Execute(state *State) error {
	state.Write(RDX, state.Read(RAX)>>63)
	return nil
}

func (p *Cqo) String() string {
	return "    cqo"
}

// Div divides the 128-bit dividend rdx:rax by the source register, writing the
// quotient (truncated toward zero) to rax and the remainder to rdx.
type Div struct {
	Source Register
}

// Execute implementation for Instruction interface.
func (p *Div) Execute(state *State) error {
	quotient, remainder, err := divide(state.Read(RDX), state.Read(RAX), state.Read(p.Source))
	//
	if err != nil {
		return err
	}
	//
	state.Write(RAX, quotient)
	state.Write(RDX, remainder)
	//
	return nil
}

func (p *Div) String() string {
	return fmt.Sprintf("    idiv %s", p.Source)
}

// Ret returns from the enclosing routine, with rax as the result.
type Ret struct{}

// Execute implementation for Instruction interface.
func (p *Ret) Execute(state *State) error {
	state.Halt()
	return nil
}

func (p *Ret) String() string {
	return "    ret"
}
