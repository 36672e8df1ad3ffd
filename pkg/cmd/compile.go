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

	"github.com/spf13/cobra"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/codegen"
	"github.com/xiaguan/tiny-c-compiler/pkg/util"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] [expression]",
	Short: "compile an expression into an assembly program.",
	Long: `Compile a given expression (or the expression held in a file) into an x86-64
assembly program, whose exit status is the value of the expression.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCompileCmd,
}

func runCompileCmd(cmd *cobra.Command, args []string) {
	configureLogging(cmd)
	//
	var (
		output   = GetString(cmd, "output")
		printAst = GetFlag(cmd, "ast")
		input    = OpenInput(cmd, args)
	)
	//
	defer input.Close()
	// Parse the complete expression before any output is opened, such that
	// nothing is written for a malformed expression.
	stats := util.NewPerfStats()
	tree := ParseInput(input)
	//
	stats.Log("Parsing expression")
	//
	if printAst {
		fmt.Println(tree.String())
		return
	}
	//
	writer := os.Stdout
	//
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		defer file.Close()
		//
		writer = file
	}
	//
	sink := codegen.NewWriterSink(writer)
	stats = util.NewPerfStats()
	//
	if err := codegen.NewGenerator(sink).GenerateProgram(tree); err != nil {
		fmt.Println(err)
		os.Exit(2)
	} else if err := sink.Flush(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	stats.Log("Generating assembly")
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("output", "o", "", "write assembly to a file (rather than stdout)")
	compileCmd.Flags().Bool("ast", false, "Output the abstract syntax tree (rather than assembly)")
}
