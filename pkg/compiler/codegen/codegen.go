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
package codegen

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/xiaguan/tiny-c-compiler/pkg/asm/insn"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/ast"
)

// ENTRY is the symbol of the routine generated for an expression.
const ENTRY = "main"

// Generator translates an abstract syntax tree into instructions for a stack
// machine with a single accumulator (rax) and a secondary register (rdi).  The
// tree is only read, never modified.
type Generator struct {
	sink Sink
}

// NewGenerator constructs a generator which writes to a given sink.
func NewGenerator(sink Sink) *Generator {
	return &Generator{sink}
}

// GenerateProgram writes a complete routine which returns the value of the
// given expression: a global declaration of the entry symbol, its label, the
// instructions evaluating the expression and finally a return.
func (p *Generator) GenerateProgram(node ast.Node) error {
	if err := p.emit(&insn.Global{Symbol: ENTRY}); err != nil {
		return err
	} else if err := p.emit(&insn.Label{Name: ENTRY}); err != nil {
		return err
	} else if err := p.Generate(node); err != nil {
		return err
	}
	//
	return p.emit(&insn.Ret{})
}

// Generate writes instructions which leave the value of the given expression in
// the accumulator.  Binary operations are generated in post-order, with the
// right operand evaluated and saved on the stack before the left operand
// overwrites the accumulator.
func (p *Generator) Generate(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Literal:
		return p.emit(&insn.Mov{Value: n.Value, Target: insn.RAX})
	case *ast.BinaryOp:
		if err := p.Generate(n.Right); err != nil {
			return err
		} else if err := p.emit(&insn.Push{Source: insn.RAX}); err != nil {
			return err
		} else if err := p.Generate(n.Left); err != nil {
			return err
		} else if err := p.emit(&insn.Pop{Target: insn.RDI}); err != nil {
			return err
		}
		//
		return p.generateOperator(n.Op)
	default:
		panic(fmt.Sprintf("unknown node %T", node))
	}
}

// Combine the accumulator (left) with the secondary register (right).  Observe
// that division does not check for a zero divisor, this being a runtime fault
// of the generated program.
func (p *Generator) generateOperator(op ast.OpKind) error {
	switch op {
	case ast.ADD:
		return p.emit(&insn.Add{Source: insn.RDI, Target: insn.RAX})
	case ast.SUB:
		return p.emit(&insn.Sub{Source: insn.RDI, Target: insn.RAX})
	case ast.MUL:
		return p.emit(&insn.Mul{Source: insn.RDI, Target: insn.RAX})
	case ast.DIV:
		if err := p.emit(&insn.Cqo{}); err != nil {
			return err
		}
		//
		return p.emit(&insn.Div{Source: insn.RDI})
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", uint(op)))
}

func (p *Generator) emit(instruction insn.Instruction) error {
	line := instruction.String()
	log.Debugf("emit %s", line)
	//
	return p.sink.WriteLine(line)
}
