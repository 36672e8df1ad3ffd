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
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/ast"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/codegen"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/scanner"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/stream"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/termio"
	"golang.org/x/term"
)

var debugCmd = &cobra.Command{
	Use:   "debug [flags] [expression]",
	Short: "print an expression at various stages of compilation.",
	Long: `Print the tokens of a given expression (or the expression held in a file),
its abstract syntax tree, and summary information about the program generated
for it, in order to debug the compiler.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			tokens    = GetFlag(cmd, "tokens")
			stats     = GetFlag(cmd, "stats")
			textWidth = GetUint(cmd, "textwidth")
			chunkSize = GetUint(cmd, "chunk-size")
			input     = OpenInput(cmd, args)
		)
		//
		defer input.Close()
		// Each stage reads its own stream over the same text
		srcfile := input.Source()
		//
		if tokens {
			printTokens(stream.NewStringStream(srcfile.Filename(), srcfile.Text(), chunkSize), textWidth)
		}
		//
		tree, errs, err := compiler.Parse(stream.NewStringStream(srcfile.Filename(), srcfile.Text(), chunkSize))
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		} else if len(errs) > 0 {
			for _, e := range errs {
				printSyntaxError(srcfile, &e)
			}
			//
			os.Exit(4)
		}
		//
		if stats {
			printStats(tree)
		}
		//
		if !tokens && !stats {
			fmt.Println(tree.String())
		}
	},
}

// Print the tokens of an expression as a table, up to the end of input (or the
// first lexical error).
func printTokens(input stream.Stream, textWidth uint) {
	var (
		lexer = scanner.New(input)
		table = termio.NewTablePrinter(3)
	)
	//
	table.AddRow("kind", "span", "token")
	table.AnsiEscapes(term.IsTerminal(int(os.Stdout.Fd())))
	table.SetMaxWidth(textWidth)
	//
	for {
		token, err := lexer.Next()
		//
		if err != nil {
			row := table.AddRow("error", err.Span().String(), err.Message())
			table.SetEscape(0, row, termio.NewAnsiEscape().FgColour(termio.TERM_RED))
			//
			break
		}
		//
		row := table.AddRow(tokenKind(token), token.Span.String(), token.String())
		//
		if token.Kind == scanner.END_OF {
			table.SetEscape(0, row, termio.NewAnsiEscape().FgColour(termio.TERM_CYAN))
			break
		}
	}
	//
	table.Print(os.Stdout)
	//
	if lexer.Truncated() {
		fmt.Printf("(%s exceeds a single chunk, remaining input ignored)\n", input.Name())
	}
}

func tokenKind(token scanner.Token) string {
	switch token.Kind {
	case scanner.END_OF:
		return "END_OF"
	case scanner.NUMBER:
		return "NUMBER"
	case scanner.LBRACE:
		return "LBRACE"
	case scanner.RBRACE:
		return "RBRACE"
	default:
		return "OPERATOR"
	}
}

// Print summary information about an expression and its generated program.
func printStats(tree ast.Node) {
	var listing codegen.Listing
	//
	if err := codegen.NewGenerator(&listing).GenerateProgram(tree); err != nil {
		panic(err)
	}
	//
	table := termio.NewTablePrinter(2)
	table.AddRow("nodes", fmt.Sprintf("%d", ast.Size(tree)))
	table.AddRow("depth", fmt.Sprintf("%d", ast.Depth(tree)))
	table.AddRow("lines", fmt.Sprintf("%d", len(listing.Lines)))
	table.AddRow("span", tree.Span().String())
	table.Print(os.Stdout)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().Bool("tokens", false, "Print the tokens of the expression")
	debugCmd.Flags().Bool("stats", false, "Print summary information")
	debugCmd.Flags().Uint("textwidth", 40, "Set maximum width of any column")
}
