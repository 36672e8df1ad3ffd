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
package vm

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xiaguan/tiny-c-compiler/pkg/asm/insn"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

// ENTRY is the label at which execution begins.
const ENTRY = "main"

// ErrMissingEntry is returned when a program has no entry label.
var ErrMissingEntry = errors.New("missing entry label")

// ErrMissingReturn is returned when execution runs off the end of a program.
var ErrMissingReturn = errors.New("missing return")

// Machine executes generated assembly directly, so that the value a program
// computes can be determined without an external assembler.  Only the
// instructions produced by the code generator are supported.
type Machine struct {
	program []insn.Instruction
	state   insn.State
	// Index of the next instruction to execute.
	pc uint
}

// NewMachine constructs a machine for a given program.
func NewMachine(program []insn.Instruction) *Machine {
	return &Machine{program: program}
}

// State returns the current state of the machine.
func (p *Machine) State() *insn.State {
	return &p.state
}

// Execute runs the program from its entry label until it returns, producing
// the final value of the accumulator.
func (p *Machine) Execute() (int64, error) {
	if err := p.Start(); err != nil {
		return 0, err
	}
	//
	for !p.state.Halted() {
		if err := p.Step(); err != nil {
			return 0, err
		}
	}
	//
	return p.state.Read(insn.RAX), nil
}

// Start positions the machine at its entry label.
func (p *Machine) Start() error {
	entry, ok := p.find(ENTRY)
	if !ok {
		return ErrMissingEntry
	}
	//
	p.pc = entry
	p.state = insn.State{}
	//
	return nil
}

// PC returns the index of the next instruction to execute.
func (p *Machine) PC() uint {
	return p.pc
}

// Step executes a single instruction.  The machine must have been started,
// and must not have halted.
func (p *Machine) Step() error {
	if p.pc >= uint(len(p.program)) {
		return ErrMissingReturn
	}
	//
	next := p.program[p.pc]
	log.Debugf("[%d] %s", p.pc, next.String())
	//
	if err := next.Execute(&p.state); err != nil {
		return errors.Wrapf(err, "executing \"%s\"", strings.TrimSpace(next.String()))
	}
	//
	p.pc++
	//
	return nil
}

func (p *Machine) find(label string) (uint, bool) {
	for i, ith := range p.program {
		if l, ok := ith.(*insn.Label); ok && l.Name == label {
			return uint(i), true
		}
	}
	//
	return 0, false
}

// Run parses and executes a given assembly file.  Syntax errors are returned
// separately from errors arising at runtime.
func Run(srcfile *source.File) (int64, []source.SyntaxError, error) {
	program, errs := insn.Parse(srcfile)
	//
	if len(errs) > 0 {
		return 0, errs, nil
	}
	//
	value, err := NewMachine(program).Execute()
	//
	return value, nil, err
}

// ExitStatus determines the exit status observed by a parent process when the
// routine returns a given value.  Only the low eight bits survive.
func ExitStatus(value int64) uint8 {
	return uint8(value)
}
