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
package compiler

import (
	log "github.com/sirupsen/logrus"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/ast"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/codegen"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/parser"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/scanner"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/stream"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

// Compile translates the expression held in a given stream into an assembly
// program written to a given sink.  This can result in one or more syntax
// errors, in which case nothing is written to the sink.  Failures reading the
// stream or writing the sink are returned as an error.
func Compile(input stream.Stream, sink codegen.Sink) ([]source.SyntaxError, error) {
	tree, errs, err := Parse(input)
	//
	if err != nil || len(errs) > 0 {
		return errs, err
	}
	//
	return nil, codegen.NewGenerator(sink).GenerateProgram(tree)
}

// Parse the expression held in a given stream into an abstract syntax tree,
// rejecting any trailing input.
func Parse(input stream.Stream) (ast.Node, []source.SyntaxError, error) {
	var (
		lexer   = scanner.New(input)
		tree    ast.Node
		p, errs = parser.New(lexer)
	)
	//
	if len(errs) == 0 {
		tree, errs = p.ParseExpression()
	}
	//
	if len(errs) == 0 {
		errs = p.ExpectEnd()
	}
	// A read failure ends the stream early, and so explains any syntax errors.
	if err := input.Err(); err != nil {
		return nil, nil, err
	} else if len(errs) > 0 {
		return nil, errs, nil
	}
	//
	if lexer.Truncated() {
		log.Warnf("%s exceeds a single chunk, remaining input ignored", input.Name())
	}
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("parsed %s (depth %d)", tree.String(), ast.Depth(tree))
	}
	//
	return tree, nil, nil
}

// CompileString translates a given expression into the lines of an assembly
// program.
func CompileString(expr string) ([]string, []source.SyntaxError) {
	var listing codegen.Listing
	//
	errs, err := Compile(stream.NewStringStream("expression", expr, 0), &listing)
	// Neither strings nor listings can fail.
	if err != nil {
		panic(err)
	}
	//
	return listing.Lines, errs
}
