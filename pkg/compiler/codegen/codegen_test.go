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
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/ast"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/assert"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

func Test_Codegen_01(t *testing.T) {
	checkProgram(t, lit(42),
		"    .globl main",
		"main:",
		"    mov $42, %rax",
		"    ret")
}

func Test_Codegen_02(t *testing.T) {
	checkBody(t, ast.NewBinaryOp(ast.ADD, lit(1), lit(2)),
		"    mov $2, %rax",
		"    push %rax",
		"    mov $1, %rax",
		"    pop %rdi",
		"    add %rdi, %rax")
}

func Test_Codegen_03(t *testing.T) {
	checkBody(t, ast.NewBinaryOp(ast.SUB, lit(9), lit(6)),
		"    mov $6, %rax",
		"    push %rax",
		"    mov $9, %rax",
		"    pop %rdi",
		"    sub %rdi, %rax")
}

func Test_Codegen_04(t *testing.T) {
	checkBody(t, ast.NewBinaryOp(ast.MUL, lit(6), lit(7)),
		"    mov $7, %rax",
		"    push %rax",
		"    mov $6, %rax",
		"    pop %rdi",
		"    imul %rdi, %rax")
}

func Test_Codegen_05(t *testing.T) {
	checkBody(t, ast.NewBinaryOp(ast.DIV, lit(8), lit(2)),
		"    mov $2, %rax",
		"    push %rax",
		"    mov $8, %rax",
		"    pop %rdi",
		"    cqo",
		"    idiv %rdi")
}

func Test_Codegen_06(t *testing.T) {
	// (1+2)*3 evaluates the right operand (3) first
	node := ast.NewBinaryOp(ast.MUL, ast.NewBinaryOp(ast.ADD, lit(1), lit(2)), lit(3))
	//
	checkBody(t, node,
		"    mov $3, %rax",
		"    push %rax",
		"    mov $2, %rax",
		"    push %rax",
		"    mov $1, %rax",
		"    pop %rdi",
		"    add %rdi, %rax",
		"    pop %rdi",
		"    imul %rdi, %rax")
}

func Test_Codegen_07(t *testing.T) {
	var buffer bytes.Buffer
	//
	sink := NewWriterSink(&buffer)
	assert.NoError(t, NewGenerator(sink).GenerateProgram(lit(0)))
	// Nothing appears until flushed
	assert.Equal(t, 0, buffer.Len())
	assert.NoError(t, sink.Flush())
	assert.Equal(t, "    .globl main\nmain:\n    mov $0, %rax\n    ret\n", buffer.String())
}

func Test_Codegen_08(t *testing.T) {
	sink := &failingSink{2}
	err := NewGenerator(sink).GenerateProgram(ast.NewBinaryOp(ast.ADD, lit(1), lit(2)))
	//
	assert.True(t, errors.Is(err, errFull))
}

func Test_Codegen_09(t *testing.T) {
	// Generation never modifies the tree, so can be repeated
	var first, second Listing
	//
	node := ast.NewBinaryOp(ast.DIV, lit(4), ast.NewBinaryOp(ast.SUB, lit(3), lit(1)))
	assert.NoError(t, NewGenerator(&first).GenerateProgram(node))
	assert.NoError(t, NewGenerator(&second).GenerateProgram(node))
	assert.Equal(t, first.Lines, second.Lines)
	assert.Equal(t, "(/ 4 (- 3 1))", node.String())
}

func checkProgram(t *testing.T, node ast.Node, expected ...string) {
	var listing Listing
	//
	assert.NoError(t, NewGenerator(&listing).GenerateProgram(node))
	assert.Equal(t, expected, listing.Lines)
}

func checkBody(t *testing.T, node ast.Node, expected ...string) {
	var listing Listing
	//
	assert.NoError(t, NewGenerator(&listing).Generate(node))
	assert.Equal(t, expected, listing.Lines)
}

func lit(value int64) *ast.Literal {
	return ast.NewLiteral(value, source.NewSpan(0, 0))
}

var errFull = errors.New("sink full")

// Sink which fails once a given number of lines have been written.
type failingSink struct {
	remaining int
}

func (p *failingSink) WriteLine(line string) error {
	if p.remaining == 0 {
		return errFull
	}
	//
	p.remaining--
	//
	return nil
}
