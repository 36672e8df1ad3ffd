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
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/ast"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/stream"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/termio"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Input captures where an expression is read from.  This is either the single
// command-line argument, or the file given with "--file".
type Input struct {
	// Name of the file (or "<expression>" for a command-line argument).
	name string
	// Expression given on the command line (if applicable).
	expr *string
	// Stream being read from
	stream stream.Stream
	// Open file (if applicable)
	file *stream.FileStream
}

// OpenInput determines the input for a given command, or exits if none (or
// both) were given.
func OpenInput(cmd *cobra.Command, args []string) *Input {
	var (
		filename  = GetString(cmd, "file")
		chunkSize = GetUint(cmd, "chunk-size")
	)
	//
	switch {
	case filename != "" && len(args) != 0:
		fmt.Println("cannot combine an expression with --file")
		os.Exit(2)
	case filename != "":
		log.Debug(fmt.Sprintf("including source file %s", filename))
		//
		file, err := stream.OpenFile(filename, chunkSize)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		return &Input{filename, nil, file, file}
	case len(args) == 1:
		expr := args[0]
		return &Input{"<expression>", &expr, stream.NewStringStream("<expression>", expr, chunkSize), nil}
	}
	//
	fmt.Println("expected an expression (or --file)")
	os.Exit(2)
	// unreachable
	return nil
}

// Close releases any file held open by this input.
func (p *Input) Close() {
	if p.file != nil {
		if err := p.file.Close(); err != nil {
			log.Warn(err)
		}
	}
}

// Source returns the complete source text, as needed for error reporting.
func (p *Input) Source() *source.File {
	if p.expr != nil {
		return source.NewSourceString(p.name, *p.expr)
	}
	//
	srcfile, err := source.ReadFile(p.name)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return srcfile
}

// ParseInput parses the expression of a given input, or reports errors and
// exits.
func ParseInput(input *Input) ast.Node {
	tree, errs, err := compiler.Parse(input.stream)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	} else if len(errs) > 0 {
		srcfile := input.Source()
		// Report errors
		for _, e := range errs {
			printSyntaxError(srcfile, &e)
		}
		// Fail
		os.Exit(4)
	}
	//
	return tree
}

// Print a syntax error with appropriate highlighting.  The highlight is
// coloured when writing to a terminal.
func printSyntaxError(srcfile *source.File, err *source.SyntaxError) {
	span := err.Span()
	line := srcfile.FindFirstEnclosingLine(span)
	lineOffset := max(0, span.Start()-line.Start())
	// Calculate length (ensures don't overflow line), whilst always
	// highlighting at least one column (e.g. for end of input).
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s: %s\n", srcfile.Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Kind().String(), err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(termio.NewAnsiEscape().FgColour(termio.TERM_RED).Wrap(strings.Repeat("^", length)))
	} else {
		fmt.Println(strings.Repeat("^", length))
	}
}
