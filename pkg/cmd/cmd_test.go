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
package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/xiaguan/tiny-c-compiler/pkg/asm/insn"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/ast"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/stream"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/assert"
)

// Commands which exit the process are run in a child process, which is this
// test binary with its arguments given through the environment.
const commandArgs = "SUSUNCC_COMMAND_ARGS"

// Separates the arguments held in commandArgs.
const argSeparator = "\x1f"

func TestMain(m *testing.M) {
	if args, ok := os.LookupEnv(commandArgs); ok {
		rootCmd.SetArgs(strings.Split(args, argSeparator))
		Execute()
		os.Exit(0)
	}
	//
	os.Exit(m.Run())
}

// ===================================================================
// Executing generated programs
// ===================================================================

func Test_Execute_01(t *testing.T) {
	checkExecute(t, "5+20-4", 21)
	checkExecute(t, "12+34-5", 41)
}

func Test_Execute_02(t *testing.T) {
	checkExecute(t, "5+6*7", 47)
	checkExecute(t, "(3+5)/2", 4)
}

func Test_Execute_03(t *testing.T) {
	checkExecute(t, "(1+2)*(3+4)", 21)
	checkExecute(t, "5*(9-6)", 15)
}

func Test_Execute_04(t *testing.T) {
	checkExecute(t, "0", 0)
	checkExecute(t, "1234567", 1234567)
	checkExecute(t, "4/2/2/2", 0)
}

func Test_Execute_05(t *testing.T) {
	_, err := executeProgram(parseExpression(t, "7/(2-2)"), false)
	//
	assert.True(t, errors.Is(err, insn.ErrDivisionByZero))
}

// ===================================================================
// Commands
// ===================================================================

func Test_Command_01(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.s")
	stdout, status := runCommand(t, "compile", "-o", output, "1+*2")
	//
	assert.Equal(t, 4, status)
	assert.True(t, strings.Contains(stdout, "unexpected token"), stdout)
	assert.False(t, strings.Contains(stdout, ".globl"), stdout)
	// Nothing written
	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func Test_Command_02(t *testing.T) {
	for _, expr := range []string{"1+", "(1+2", "@"} {
		stdout, status := runCommand(t, "compile", expr)
		//
		assert.Equal(t, 4, status, expr)
		assert.False(t, strings.Contains(stdout, ".globl"), expr)
	}
}

func Test_Command_03(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.s")
	_, status := runCommand(t, "compile", "-o", output, "5+6*7")
	assert.Equal(t, 0, status)
	//
	contents, err := os.ReadFile(output)
	assert.NoError(t, err)
	//
	lines, errs := compiler.CompileString("5+6*7")
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, strings.Join(lines, "\n")+"\n", string(contents))
}

func Test_Command_04(t *testing.T) {
	stdout, status := runCommand(t, "eval", "5+6*7")
	//
	assert.Equal(t, 0, status)
	assert.Equal(t, "47\n", stdout)
}

func Test_Command_05(t *testing.T) {
	stdout, status := runCommand(t, "eval", "--exit-status", "0-1")
	//
	assert.Equal(t, 0, status)
	assert.Equal(t, "255\n", stdout)
}

func Test_Command_06(t *testing.T) {
	_, status := runCommand(t, "eval", "1/0")
	//
	assert.Equal(t, 5, status)
}

func Test_Command_07(t *testing.T) {
	stdout, status := runCommand(t, "eval", "--trace", "(1+2)*3")
	//
	assert.Equal(t, 0, status)
	assert.True(t, strings.Contains(stdout, "imul %rdi, %rax"), stdout)
	assert.True(t, strings.HasSuffix(stdout, "9\n"), stdout)
}

func checkExecute(t *testing.T, expr string, expected int64) {
	tree := parseExpression(t, expr)
	//
	for _, trace := range []bool{false, true} {
		value, err := executeProgram(tree, trace)
		//
		assert.NoError(t, err, expr)
		assert.Equal(t, expected, value, expr)
	}
}

func parseExpression(t *testing.T, expr string) ast.Node {
	tree, errs, err := compiler.Parse(stream.NewStringStream("test", expr, 0))
	//
	assert.NoError(t, err)
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error parsing \"%s\": %s", expr, errs[0].Error())
	}
	//
	return tree
}

// Run the command line in a child process, returning what it printed and its
// exit status.
func runCommand(t *testing.T, args ...string) (string, int) {
	var (
		stdout bytes.Buffer
		child  = exec.Command(os.Args[0])
	)
	//
	child.Env = append(os.Environ(), commandArgs+"="+strings.Join(args, argSeparator))
	child.Stdout = &stdout
	//
	err := child.Run()
	//
	var exit *exec.ExitError
	//
	if errors.As(err, &exit) {
		return stdout.String(), exit.ExitCode()
	} else if err != nil {
		t.Fatal(err)
	}
	//
	return stdout.String(), 0
}
