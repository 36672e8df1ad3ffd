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
	"testing"

	"github.com/pkg/errors"
	"github.com/xiaguan/tiny-c-compiler/pkg/asm/insn"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/assert"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

func Test_Machine_01(t *testing.T) {
	checkValue(t, "5+20-4", 21)
}

func Test_Machine_02(t *testing.T) {
	checkValue(t, " 12 + 34 - 5 ", 41)
}

func Test_Machine_03(t *testing.T) {
	checkValue(t, "5+6*7", 47)
}

func Test_Machine_04(t *testing.T) {
	checkValue(t, "(3+5)/2", 4)
}

func Test_Machine_05(t *testing.T) {
	checkValue(t, "(1+2)*(3+4)", 21)
}

func Test_Machine_06(t *testing.T) {
	checkValue(t, "5*(9-6)", 15)
}

func Test_Machine_07(t *testing.T) {
	checkValue(t, "0", 0)
}

func Test_Machine_08(t *testing.T) {
	checkValue(t, "1234567", 1234567)
}

func Test_Machine_09(t *testing.T) {
	checkValue(t, "4/2/2/2", 0)
}

func Test_Machine_10(t *testing.T) {
	checkValue(t, "0-7/2", -3)
}

func Test_Machine_11(t *testing.T) {
	checkRuntimeError(t, "1/0", insn.ErrDivisionByZero)
}

func Test_Machine_12(t *testing.T) {
	checkRuntimeError(t, "5/(3-3)", insn.ErrDivisionByZero)
}

func Test_Machine_13(t *testing.T) {
	_, errs, err := Run(source.NewSourceString("test.s", "    mov $1, %rax\n    ret\n"))
	//
	assert.Equal(t, 0, len(errs))
	assert.True(t, errors.Is(err, ErrMissingEntry))
}

func Test_Machine_14(t *testing.T) {
	_, errs, err := Run(source.NewSourceString("test.s", "main:\n    mov $1, %rax\n"))
	//
	assert.Equal(t, 0, len(errs))
	assert.True(t, errors.Is(err, ErrMissingReturn))
}

func Test_Machine_15(t *testing.T) {
	_, errs, err := Run(source.NewSourceString("test.s", "main:\n    pop %rdi\n    ret\n"))
	//
	assert.Equal(t, 0, len(errs))
	assert.True(t, errors.Is(err, insn.ErrStackUnderflow))
}

func Test_Machine_16(t *testing.T) {
	_, errs, err := Run(source.NewSourceString("test.s", "main:\n    jmp main\n"))
	//
	assert.Equal(t, 1, len(errs))
	assert.NoError(t, err)
}

func Test_Machine_17(t *testing.T) {
	// Execution starts at the entry label
	program := []insn.Instruction{
		&insn.Mov{Value: 9, Target: insn.RAX},
		&insn.Ret{},
		&insn.Label{Name: ENTRY},
		&insn.Mov{Value: 3, Target: insn.RAX},
		&insn.Ret{},
	}
	machine := NewMachine(program)
	value, err := machine.Execute()
	//
	assert.NoError(t, err)
	assert.Equal(t, int64(3), value)
	assert.True(t, machine.State().Halted())
}

func Test_Machine_18(t *testing.T) {
	// Every push is balanced by a pop
	lines, errs := compiler.CompileString("((1+2)*(3+4))/(5-6)")
	assert.Equal(t, 0, len(errs))
	//
	program, errs := insn.Parse(source.NewSourceString("test.s", join(lines)))
	assert.Equal(t, 0, len(errs))
	//
	machine := NewMachine(program)
	value, err := machine.Execute()
	assert.NoError(t, err)
	assert.Equal(t, int64(-21), value)
	assert.Equal(t, 0, machine.State().Depth())
}

func Test_ExitStatus_01(t *testing.T) {
	assert.Equal(t, uint8(21), ExitStatus(21))
	assert.Equal(t, uint8(135), ExitStatus(1234567))
	assert.Equal(t, uint8(255), ExitStatus(-1))
	assert.Equal(t, uint8(0), ExitStatus(256))
}

func checkValue(t *testing.T, expr string, expected int64) {
	value, err := runExpression(t, expr)
	//
	assert.NoError(t, err)
	assert.Equal(t, expected, value, expr)
}

func checkRuntimeError(t *testing.T, expr string, expected error) {
	_, err := runExpression(t, expr)
	//
	assert.True(t, errors.Is(err, expected), expr)
}

func runExpression(t *testing.T, expr string) (int64, error) {
	lines, errs := compiler.CompileString(expr)
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	}
	//
	value, errs, err := Run(source.NewSourceString("test.s", join(lines)))
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	}
	//
	return value, err
}

func join(lines []string) string {
	text := ""
	//
	for _, line := range lines {
		text = text + line + "\n"
	}
	//
	return text
}

func Test_Machine_19(t *testing.T) {
	program := []insn.Instruction{
		&insn.Label{Name: ENTRY},
		&insn.Mov{Value: 2, Target: insn.RAX},
		&insn.Push{Source: insn.RAX},
		&insn.Pop{Target: insn.RDI},
		&insn.Ret{},
	}
	machine := NewMachine(program)
	assert.NoError(t, machine.Start())
	// Step through one instruction at a time
	for i := 0; i < 3; i++ {
		assert.NoError(t, machine.Step())
	}
	//
	assert.Equal(t, 3, machine.PC())
	assert.Equal(t, 1, machine.State().Depth())
	assert.NoError(t, machine.Step())
	assert.Equal(t, int64(2), machine.State().Read(insn.RDI))
	assert.False(t, machine.State().Halted())
	assert.NoError(t, machine.Step())
	assert.True(t, machine.State().Halted())
}
