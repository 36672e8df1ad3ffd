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
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xiaguan/tiny-c-compiler/pkg/asm/insn"
	"github.com/xiaguan/tiny-c-compiler/pkg/asm/vm"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/ast"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/codegen"
	"github.com/xiaguan/tiny-c-compiler/pkg/util"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/termio"
	"golang.org/x/term"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expression]",
	Short: "compile an expression and execute the resulting program.",
	Long: `Compile a given expression (or the expression held in a file) and execute the
generated assembly program on a built-in machine, reporting the value it returns.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEvalCmd,
}

func runEvalCmd(cmd *cobra.Command, args []string) {
	configureLogging(cmd)
	//
	var (
		exitStatus = GetFlag(cmd, "exit-status")
		reference  = GetFlag(cmd, "reference")
		trace      = GetFlag(cmd, "trace")
		input      = OpenInput(cmd, args)
		value      int64
		err        error
	)
	//
	defer input.Close()
	//
	tree := ParseInput(input)
	stats := util.NewPerfStats()
	//
	if reference {
		value, err = ast.Evaluate(tree)
	} else {
		value, err = executeProgram(tree, trace)
	}
	//
	stats.Log("Evaluating expression")
	//
	if err != nil {
		log.Error(err)
		os.Exit(5)
	} else if exitStatus {
		fmt.Println(vm.ExitStatus(value))
	} else {
		fmt.Println(value)
	}
}

// Generate the program for a given tree, then execute it (optionally printing
// each step as it goes).
func executeProgram(tree ast.Node, trace bool) (int64, error) {
	var listing codegen.Listing
	//
	if err := codegen.NewGenerator(&listing).GenerateProgram(tree); err != nil {
		return 0, err
	}
	//
	srcfile := source.NewSourceString("<generated>", listing.String())
	program, errs := insn.Parse(srcfile)
	// Sanity check
	if len(errs) > 0 {
		for _, e := range errs {
			printSyntaxError(srcfile, &e)
		}
		//
		panic("generated program is malformed")
	}
	//
	machine := vm.NewMachine(program)
	//
	if !trace {
		return machine.Execute()
	}
	//
	return traceProgram(machine, program)
}

// Execute a program one step at a time, printing the machine state after each
// step.  Registers which a step changes are highlighted.
func traceProgram(machine *vm.Machine, program []insn.Instruction) (int64, error) {
	var (
		table     = termio.NewTablePrinter(6)
		registers = []insn.Register{insn.RAX, insn.RDX, insn.RDI}
		highlight = termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW)
		err       error
	)
	//
	table.AddRow("pc", "instruction", "%rax", "%rdx", "%rdi", "stack")
	table.AnsiEscapes(term.IsTerminal(int(os.Stdout.Fd())))
	//
	if err = machine.Start(); err == nil {
		for !machine.State().Halted() {
			var (
				pc     = machine.PC()
				before = readRegisters(machine.State(), registers)
			)
			//
			if err = machine.Step(); err != nil {
				break
			}
			//
			after := readRegisters(machine.State(), registers)
			text := strings.TrimSpace(program[pc].String())
			row := table.AddRow(fmt.Sprintf("%d", pc), text, fmt.Sprintf("%d", after[0]),
				fmt.Sprintf("%d", after[1]), fmt.Sprintf("%d", after[2]),
				fmt.Sprintf("%d", machine.State().Depth()))
			//
			for i := range registers {
				if before[i] != after[i] {
					table.SetEscape(uint(2+i), row, highlight)
				}
			}
		}
	}
	//
	table.Print(os.Stdout)
	//
	if err != nil {
		return 0, err
	}
	//
	return machine.State().Read(insn.RAX), nil
}

func readRegisters(state *insn.State, registers []insn.Register) []int64 {
	values := make([]int64, len(registers))
	//
	for i, reg := range registers {
		values[i] = state.Read(reg)
	}
	//
	return values
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Bool("exit-status", false, "report the 8-bit exit status (rather than the full value)")
	evalCmd.Flags().Bool("reference", false, "evaluate the syntax tree directly (rather than the generated program)")
	evalCmd.Flags().Bool("trace", false, "print the machine state after each executed instruction")
}
